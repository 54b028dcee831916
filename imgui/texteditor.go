package imgui

import (
	"go.uber.org/zap"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/boundary"
	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/transfer"
)

// Languages for TextEditor.SetLanguageDefinition.
const (
	LanguageNone = native.LanguageNone
	LanguageSQL  = native.LanguageSQL
	LanguageCPP  = native.LanguageCPP
	LanguageC    = native.LanguageC
	LanguageLua  = native.LanguageLua
)

// TextEditor is a multi-line code editor widget. Instances are owned by the
// caller and must be released with Delete.
type TextEditor imguibridge.Handle

// NewTextEditor creates an empty editor.
func NewTextEditor() TextEditor {
	editor := TextEditor(boundary.NewTextEditor())
	Logger().Debug("text editor created", zap.Uint32("handle", uint32(editor)))
	return editor
}

// WithTextEditor runs fn with a fresh editor and deletes it afterwards,
// also when fn panics.
func WithTextEditor(fn func(editor TextEditor)) {
	editor := NewTextEditor()
	defer editor.Delete()
	fn(editor)
}

func (editor TextEditor) handle() imguibridge.Handle {
	return imguibridge.Handle(editor)
}

// Delete releases the editor. Deleting a released editor does nothing.
func (editor *TextEditor) Delete() {
	if *editor == 0 {
		return
	}
	boundary.DeleteTextEditor(editor.handle())
	Logger().Debug("text editor released", zap.Uint32("handle", uint32(*editor)))
	*editor = 0
}

// Render draws the editor as a child region and processes input while it
// is focused. A zero size uses the remaining space.
func (editor TextEditor) Render(title string, size Vec2, border bool) {
	s := scope()
	defer s.Exit()
	boundary.TextEditorRender(editor.handle(), s.String(title), vec2Ptr(s, size), imguibridge.BoolOf(border))
}

func (editor TextEditor) SetText(text string) {
	s := scope()
	defer s.Exit()
	boundary.TextEditorSetText(editor.handle(), s.String(text))
}

// Text returns a copy of the whole text.
func (editor TextEditor) Text() string {
	return string(editor.TextBuffer())
}

// TextBuffer returns the text aliasing native memory. It is valid until
// the editor changes.
func (editor TextEditor) TextBuffer() []byte {
	return Bytes(boundary.TextEditorTextBuffer(editor.handle()))
}

func (editor TextEditor) SelectedText() string {
	return native.Lib().Memory().CString(boundary.TextEditorSelectedText(editor.handle()))
}

func (editor TextEditor) CurrentLineText() string {
	return native.Lib().Memory().CString(boundary.TextEditorCurrentLineText(editor.handle()))
}

func (editor TextEditor) HasSelection() bool {
	return isTrue(boundary.TextEditorHasSelection(editor.handle()))
}

// IsTextChanged reports whether the text changed during the last Render.
func (editor TextEditor) IsTextChanged() bool {
	return isTrue(boundary.TextEditorIsTextChanged(editor.handle()))
}

func (editor TextEditor) SetTabSize(size int) {
	boundary.TextEditorSetTabSize(editor.handle(), int32(size))
}

func (editor TextEditor) SetShowWhitespaces(show bool) {
	boundary.TextEditorSetShowWhitespaces(editor.handle(), imguibridge.BoolOf(show))
}

// SetLanguageDefinition selects the keywords to highlight.
func (editor TextEditor) SetLanguageDefinition(lang int32) {
	boundary.TextEditorSetLanguage(editor.handle(), lang)
}

// CursorPos returns the zero-based column and line of the cursor.
func (editor TextEditor) CursorPos() (column, line int) {
	return editor.position(boundary.TextEditorCursorPos)
}

// SelectionStart returns the zero-based column and line where the
// selection starts.
func (editor TextEditor) SelectionStart() (column, line int) {
	return editor.position(boundary.TextEditorSelectionStart)
}

func (editor TextEditor) position(get func(imguibridge.Handle, imguibridge.Ptr, imguibridge.Ptr)) (int, int) {
	var column, line int32
	func() {
		s := scope()
		defer s.Exit()
		get(editor.handle(), transfer.Wrap(s, transfer.Int32, &column), transfer.Wrap(s, transfer.Int32, &line))
	}()
	return int(column), int(line)
}

// SetSelection selects from the start to the end position. Positions are
// clamped to the text.
func (editor TextEditor) SetSelection(startLine, startColumn, endLine, endColumn int) {
	boundary.TextEditorSetSelection(editor.handle(), int32(startLine), int32(startColumn),
		int32(endLine), int32(endColumn))
}

// SetErrorMarkers copies markers into the editor.
func (editor TextEditor) SetErrorMarkers(markers ErrorMarkers) {
	boundary.TextEditorSetErrorMarkers(editor.handle(), markers.handle())
}

// ErrorMarkers maps one-based line numbers to messages. Instances are owned
// by the caller and must be released with Delete.
type ErrorMarkers imguibridge.Handle

func NewErrorMarkers() ErrorMarkers {
	return ErrorMarkers(boundary.NewErrorMarkers())
}

// WithErrorMarkers runs fn with a fresh map and deletes it afterwards.
func WithErrorMarkers(fn func(markers ErrorMarkers)) {
	markers := NewErrorMarkers()
	defer markers.Delete()
	fn(markers)
}

func (markers ErrorMarkers) handle() imguibridge.Handle {
	return imguibridge.Handle(markers)
}

func (markers *ErrorMarkers) Delete() {
	if *markers == 0 {
		return
	}
	boundary.DeleteErrorMarkers(markers.handle())
	*markers = 0
}

// Insert adds a message for line. An existing message for the line is kept.
func (markers ErrorMarkers) Insert(line int, message string) {
	s := scope()
	defer s.Exit()
	boundary.ErrorMarkersInsert(markers.handle(), int32(line), s.String(message))
}

func (markers ErrorMarkers) Clear() {
	boundary.ErrorMarkersClear(markers.handle())
}

func (markers ErrorMarkers) Size() int {
	return int(boundary.ErrorMarkersSize(markers.handle()))
}
