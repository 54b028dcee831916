package native

import (
	"strings"
	"unicode"

	"github.com/creachadair/mds/mapset"
	imguibridge "github.com/wippyai/imgui-bridge"
)

// Text editor languages.
const (
	LanguageNone int32 = iota
	LanguageSQL
	LanguageCPP
	LanguageC
	LanguageLua
)

var languageKeywords = map[int32][]string{
	LanguageSQL: {"SELECT", "FROM", "WHERE", "INSERT", "INTO", "VALUES", "UPDATE", "SET", "DELETE",
		"CREATE", "TABLE", "DROP", "JOIN", "ON", "AND", "OR", "NOT", "NULL", "ORDER", "BY", "GROUP", "AS"},
	LanguageC: {"auto", "break", "case", "char", "const", "continue", "default", "do", "double", "else",
		"enum", "extern", "float", "for", "goto", "if", "int", "long", "register", "return", "short",
		"signed", "sizeof", "static", "struct", "switch", "typedef", "union", "unsigned", "void",
		"volatile", "while"},
	LanguageLua: {"and", "break", "do", "else", "elseif", "end", "false", "for", "function", "goto", "if",
		"in", "local", "nil", "not", "or", "repeat", "return", "then", "true", "until", "while"},
}

func init() {
	cpp := append([]string{"bool", "class", "constexpr", "delete", "false", "namespace", "new", "nullptr",
		"private", "protected", "public", "template", "this", "throw", "true", "try", "catch", "using",
		"virtual"}, languageKeywords[LanguageC]...)
	languageKeywords[LanguageCPP] = cpp
}

// coord is a (line, column) position; columns count runes.
type coord struct {
	line, column int32
}

func (a coord) less(b coord) bool {
	return a.line < b.line || (a.line == b.line && a.column < b.column)
}

// textEditor is a multi-line editor widget rendered into a child window.
type textEditor struct {
	lib    *Library
	handle Handle

	lines          [][]rune
	tabSize        int32
	showWhitespace bool
	language       int32
	keywords       mapset.Set[string]
	caseFold       bool
	markers        map[int32]string

	cursor     coord
	selStart   coord
	selEnd     coord
	changed    bool
	focusFrame int32

	text    vector
	extract vector
}

// NewTextEditor allocates an empty editor. The caller releases it with
// DeleteTextEditor.
func (l *Library) NewTextEditor() Handle {
	e := &textEditor{
		lib:        l,
		lines:      [][]rune{{}},
		tabSize:    4,
		focusFrame: -1,
		markers:    make(map[int32]string),
		text:       newVector(l, ElementAlpha8),
		extract:    newVector(l, ElementAlpha8),
	}
	e.handle = l.newObject(e)
	return e.handle
}

// DeleteTextEditor releases an editor and its text buffers.
func (l *Library) DeleteTextEditor(h Handle) {
	e := deref[textEditor](l, h)
	for _, c := range l.objects {
		if ctx, ok := c.(*uiContext); ok && ctx.focusedEditor == e {
			ctx.focusedEditor = nil
		}
	}
	e.text.release()
	e.extract.release()
	l.dropObject(h)
}

func (e *textEditor) setText(s string) {
	parts := strings.Split(s, "\n")
	e.lines = make([][]rune, len(parts))
	for i, p := range parts {
		e.lines[i] = []rune(strings.TrimSuffix(p, "\r"))
	}
	e.cursor, e.selStart, e.selEnd = coord{}, coord{}, coord{}
	e.changed = true
}

func (e *textEditor) String() string {
	var b strings.Builder
	for i, line := range e.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(line))
	}
	return b.String()
}

func (e *textEditor) hasSelection() bool {
	return e.selStart.less(e.selEnd)
}

func (e *textEditor) textBetween(from, to coord) string {
	var b strings.Builder
	for line := from.line; line <= to.line && int(line) < len(e.lines); line++ {
		runes := e.lines[line]
		start, end := int32(0), int32(len(runes))
		if line == from.line {
			start = min(from.column, end)
		}
		if line == to.line {
			end = min(to.column, end)
		}
		b.WriteString(string(runes[start:end]))
		if line < to.line {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (e *textEditor) clampCoord(p coord) coord {
	p.line = min(max(p.line, 0), int32(len(e.lines)-1))
	p.column = min(max(p.column, 0), int32(len(e.lines[p.line])))
	return p
}

func (e *textEditor) deleteSelection() {
	if !e.hasSelection() {
		return
	}
	from, to := e.selStart, e.selEnd
	head := e.lines[from.line][:from.column]
	tail := e.lines[to.line][to.column:]
	merged := append(append([]rune{}, head...), tail...)
	e.lines = append(e.lines[:from.line], append([][]rune{merged}, e.lines[to.line+1:]...)...)
	e.cursor = from
	e.selStart, e.selEnd = from, from
	e.changed = true
}

func (e *textEditor) insertRune(r rune) {
	e.deleteSelection()
	cur := e.cursor
	line := e.lines[cur.line]
	if r == '\n' {
		rest := append([]rune{}, line[cur.column:]...)
		e.lines[cur.line] = line[:cur.column]
		e.lines = append(e.lines[:cur.line+1], append([][]rune{rest}, e.lines[cur.line+1:]...)...)
		e.cursor = coord{line: cur.line + 1}
	} else {
		line = append(line[:cur.column], append([]rune{r}, line[cur.column:]...)...)
		e.lines[cur.line] = line
		e.cursor.column++
	}
	e.selStart, e.selEnd = e.cursor, e.cursor
	e.changed = true
}

func (e *textEditor) backspace() {
	if e.hasSelection() {
		e.deleteSelection()
		return
	}
	cur := e.cursor
	switch {
	case cur.column > 0:
		line := e.lines[cur.line]
		e.lines[cur.line] = append(line[:cur.column-1], line[cur.column:]...)
		e.cursor.column--
	case cur.line > 0:
		prev := e.lines[cur.line-1]
		e.cursor = coord{line: cur.line - 1, column: int32(len(prev))}
		e.lines[cur.line-1] = append(prev, e.lines[cur.line]...)
		e.lines = append(e.lines[:cur.line], e.lines[cur.line+1:]...)
	default:
		return
	}
	e.selStart, e.selEnd = e.cursor, e.cursor
	e.changed = true
}

func (e *textEditor) deleteForward() {
	if e.hasSelection() {
		e.deleteSelection()
		return
	}
	cur := e.cursor
	line := e.lines[cur.line]
	switch {
	case int(cur.column) < len(line):
		e.lines[cur.line] = append(line[:cur.column], line[cur.column+1:]...)
	case int(cur.line) < len(e.lines)-1:
		e.lines[cur.line] = append(line, e.lines[cur.line+1]...)
		e.lines = append(e.lines[:cur.line+1], e.lines[cur.line+2:]...)
	default:
		return
	}
	e.changed = true
}

// moveCursor moves the cursor and either extends the selection from its
// anchor or collapses it.
func (e *textEditor) moveCursor(to coord, extend bool) {
	anchor := e.cursor
	if e.hasSelection() {
		if e.cursor == e.selStart {
			anchor = e.selEnd
		} else {
			anchor = e.selStart
		}
	}
	e.cursor = e.clampCoord(to)
	if !extend {
		e.selStart, e.selEnd = e.cursor, e.cursor
		return
	}
	e.selStart, e.selEnd = anchor, e.cursor
	if e.selEnd.less(e.selStart) {
		e.selStart, e.selEnd = e.selEnd, e.selStart
	}
}

func (e *textEditor) handleKeyboard(io *ioState) {
	shift := io.keyShift
	cur := e.cursor
	switch {
	case io.keyPressed(KeyLeftArrow):
		if cur.column > 0 {
			cur.column--
		} else if cur.line > 0 {
			cur.line--
			cur.column = int32(len(e.lines[cur.line]))
		}
		e.moveCursor(cur, shift)
	case io.keyPressed(KeyRightArrow):
		if int(cur.column) < len(e.lines[cur.line]) {
			cur.column++
		} else if int(cur.line) < len(e.lines)-1 {
			cur = coord{line: cur.line + 1}
		}
		e.moveCursor(cur, shift)
	case io.keyPressed(KeyUpArrow):
		cur.line--
		e.moveCursor(cur, shift)
	case io.keyPressed(KeyDownArrow):
		cur.line++
		e.moveCursor(cur, shift)
	case io.keyPressed(KeyHome):
		cur.column = 0
		e.moveCursor(cur, shift)
	case io.keyPressed(KeyEnd):
		cur.column = int32(len(e.lines[cur.line]))
		e.moveCursor(cur, shift)
	case io.keyPressed(KeyBackspace):
		e.backspace()
	case io.keyPressed(KeyDelete):
		e.deleteForward()
	case io.keyPressed(KeyEnter):
		e.insertRune('\n')
	case io.keyPressed(KeyTab):
		e.insertRune('\t')
	}
	for _, r := range io.inputChars {
		if r == '\n' || r == '\t' || unicode.IsPrint(r) {
			e.insertRune(r)
		}
	}
}

func (e *textEditor) isKeyword(word string) bool {
	if e.keywords == nil {
		return false
	}
	if e.caseFold {
		word = strings.ToUpper(word)
	}
	return e.keywords.Has(word)
}

// expandTabs returns the visible text of a line and, for each rune, its
// visual column.
func (e *textEditor) expandTabs(line []rune) (string, []int32) {
	var b strings.Builder
	cols := make([]int32, len(line)+1)
	col := int32(0)
	for i, r := range line {
		cols[i] = col
		switch {
		case r == '\t':
			n := e.tabSize - col%e.tabSize
			if e.showWhitespace {
				b.WriteString("»")
				n--
				col++
			}
			b.WriteString(strings.Repeat(" ", int(n)))
			col += n
		case r == ' ' && e.showWhitespace:
			b.WriteString("·")
			col++
		default:
			b.WriteRune(r)
			col++
		}
	}
	cols[len(line)] = col
	return b.String(), cols
}

func (c *uiContext) renderTextEditor(e *textEditor, title string, size Vec2, border bool) {
	l := c.lib
	l.BeginChild(title, size, border, WindowFlagsNoMove)
	w := c.current
	io := c.io
	e.changed = false

	if c.hoveredWindowContains(w) && io.mouseClicked[0] {
		c.focusedEditor = e
	} else if io.mouseClicked[0] && c.focusedEditor == e {
		c.focusedEditor = nil
	}
	focused := c.focusedEditor == e
	if focused {
		e.focusFrame = c.frameCount
		e.handleKeyboard(io)
	}

	lineHeight := c.fontSize + c.style.itemSpacing.Y
	charWidth := c.calcTextSize("#").X
	gutter := c.calcTextSize(formatValue("%d ", int32(len(e.lines)))).X + charWidth
	origin := w.cursorPos

	if focused && io.mouseClicked[0] && contains(w.innerClip, io.mousePos) && charWidth > 0 {
		line := int32((io.mousePos.Y - origin.Y) / lineHeight)
		line = min(max(line, 0), int32(len(e.lines)-1))
		_, cols := e.expandTabs(e.lines[line])
		visual := int32((io.mousePos.X - origin.X - gutter) / charWidth)
		column := int32(len(cols) - 1)
		for i, vc := range cols {
			if vc >= visual {
				column = int32(i)
				break
			}
		}
		e.moveCursor(coord{line: line, column: column}, io.keyShift)
	}

	var clipper ClipperState
	c.clipperBegin(w, &clipper, int32(len(e.lines)), lineHeight)
	for c.clipperStep(w, &clipper) {
		for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
			e.renderLine(c, w, i, gutter, charWidth, focused)
		}
	}
	c.clipperEnd(w, &clipper)
	l.EndChild()
}

func (e *textEditor) renderLine(c *uiContext, w *window, i int32, gutter, charWidth float32, focused bool) {
	pos := w.cursorPos
	lineHeight := c.fontSize
	dl := w.drawList
	if _, ok := e.markers[i+1]; ok {
		dl.addRectFilled(pos, Vec2{X: w.innerClip.Z, Y: pos.Y + lineHeight}, 0x800020FF)
	}
	dl.addText(c.font, c.fontSize, pos, c.colorU32(ColTextDisabled), formatValue("%d", i+1))

	visible, cols := e.expandTabs(e.lines[i])
	textPos := Vec2{X: pos.X + gutter, Y: pos.Y}
	if e.hasSelection() && e.selStart.line <= i && i <= e.selEnd.line {
		from, to := cols[0], cols[len(cols)-1]
		if i == e.selStart.line {
			from = cols[min(e.selStart.column, int32(len(cols)-1))]
		}
		if i == e.selEnd.line {
			to = cols[min(e.selEnd.column, int32(len(cols)-1))]
		}
		dl.addRectFilled(Vec2{X: textPos.X + float32(from)*charWidth, Y: pos.Y},
			Vec2{X: textPos.X + float32(to)*charWidth, Y: pos.Y + lineHeight}, c.colorU32(ColTextSelectedBg))
	}

	textCol := c.colorU32(ColText)
	keywordCol := c.colorU32(ColPlotHistogram)
	x := textPos.X
	for _, tok := range splitWords(visible) {
		col := textCol
		if e.isKeyword(tok) {
			col = keywordCol
		}
		dl.addText(c.font, c.fontSize, Vec2{X: x, Y: pos.Y}, col, tok)
		x += c.calcTextSize(tok).X
	}

	if focused && e.cursor.line == i {
		cx := textPos.X + float32(cols[min(e.cursor.column, int32(len(cols)-1))])*charWidth
		dl.addLine(Vec2{X: cx, Y: pos.Y}, Vec2{X: cx, Y: pos.Y + lineHeight}, textCol, 1)
	}
	c.itemSize(w, Vec2{X: gutter + c.calcTextSize(visible).X, Y: lineHeight})
}

// splitWords splits s into runs of identifier characters and runs of
// everything else, preserving every rune.
func splitWords(s string) []string {
	var out []string
	start := 0
	prevWord := false
	for i, r := range s {
		word := r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
		if i > start && word != prevWord {
			out = append(out, s[start:i])
			start = i
		}
		prevWord = word
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

func (c *uiContext) hoveredWindowContains(w *window) bool {
	return contains(w.innerClip, c.io.mousePos) && c.hoveredWindow != nil && (c.hoveredWindow == w || c.hoveredWindow == w.rootWindow())
}

func (w *window) rootWindow() *window {
	for w.parent != nil {
		w = w.parent
	}
	return w
}

func (l *Library) textEditor(h Handle) *textEditor {
	return deref[textEditor](l, h)
}

// TextEditorRender draws the editor into a child region titled title.
func (l *Library) TextEditorRender(h Handle, title string, size Vec2, border bool) {
	c := l.ctx()
	c.currentWindow("TextEditorRender")
	c.renderTextEditor(l.textEditor(h), title, size, border)
}

// TextEditorSetText replaces the whole text and resets the cursor.
func (l *Library) TextEditorSetText(h Handle, text string) {
	l.textEditor(h).setText(text)
}

// TextEditorTextBuffer exports the text as a NUL-terminated native buffer.
// Count excludes the terminator. It is valid until the next call for h.
func (l *Library) TextEditorTextBuffer(h Handle) imguibridge.BufferDescriptor {
	e := l.textEditor(h)
	return exportString(&e.text, e.String())
}

// TextEditorSelectedText returns the selection as a native C string, valid
// until the next selection or current-line query for h.
func (l *Library) TextEditorSelectedText(h Handle) Ptr {
	e := l.textEditor(h)
	return exportString(&e.extract, e.textBetween(e.selStart, e.selEnd)).Ptr
}

// TextEditorCurrentLineText returns the cursor's line as a native C string,
// valid until the next selection or current-line query for h.
func (l *Library) TextEditorCurrentLineText(h Handle) Ptr {
	e := l.textEditor(h)
	return exportString(&e.extract, string(e.lines[e.cursor.line])).Ptr
}

func exportString(v *vector, s string) imguibridge.BufferDescriptor {
	v.resize(uint32(len(s)) + 1)
	b := v.bytes()
	copy(b, s)
	b[len(s)] = 0
	d := v.descriptor()
	d.Count--
	d.ByteSize--
	return d
}

// TextEditorHasSelection reports whether any text is selected.
func (l *Library) TextEditorHasSelection(h Handle) bool {
	return l.textEditor(h).hasSelection()
}

// TextEditorIsTextChanged reports whether the last render or SetText changed the text.
func (l *Library) TextEditorIsTextChanged(h Handle) bool {
	return l.textEditor(h).changed
}

// TextEditorSetTabSize sets the tab width in columns, clamped to [1, 32].
func (l *Library) TextEditorSetTabSize(h Handle, size int32) {
	l.textEditor(h).tabSize = min(max(size, 1), 32)
}

// TextEditorSetShowWhitespaces toggles visible spaces and tabs.
func (l *Library) TextEditorSetShowWhitespaces(h Handle, show bool) {
	l.textEditor(h).showWhitespace = show
}

// TextEditorSetLanguage selects the keyword set used for highlighting.
func (l *Library) TextEditorSetLanguage(h Handle, lang int32) {
	e := l.textEditor(h)
	e.language = lang
	e.keywords = nil
	e.caseFold = lang == LanguageSQL
	if words, ok := languageKeywords[lang]; ok {
		e.keywords = mapset.New(words...)
	}
}

// TextEditorCursorPos returns the cursor as (column, line).
func (l *Library) TextEditorCursorPos(h Handle) (column, line int32) {
	e := l.textEditor(h)
	return e.cursor.column, e.cursor.line
}

// TextEditorSelectionStart returns the selection start as (column, line).
func (l *Library) TextEditorSelectionStart(h Handle) (column, line int32) {
	e := l.textEditor(h)
	return e.selStart.column, e.selStart.line
}

// TextEditorSetSelection selects from start to end, both (line, column).
func (l *Library) TextEditorSetSelection(h Handle, startLine, startColumn, endLine, endColumn int32) {
	e := l.textEditor(h)
	from := e.clampCoord(coord{line: startLine, column: startColumn})
	to := e.clampCoord(coord{line: endLine, column: endColumn})
	if to.less(from) {
		from, to = to, from
	}
	e.selStart, e.selEnd, e.cursor = from, to, to
}

// TextEditorSetErrorMarkers copies a marker set into the editor.
func (l *Library) TextEditorSetErrorMarkers(h, markers Handle) {
	e := l.textEditor(h)
	m := deref[errorMarkers](l, markers)
	clear(e.markers)
	for _, line := range m.lines() {
		e.markers[line] = m.entries[line]
	}
}
