package native

import (
	"hash/crc32"
	"math"
	"strings"
)

// Window flags, numbered as the engine's public enumeration.
const (
	WindowFlagsNoTitleBar   int32 = 1 << 0
	WindowFlagsNoResize     int32 = 1 << 1
	WindowFlagsNoMove       int32 = 1 << 2
	WindowFlagsNoScrollbar  int32 = 1 << 3
	WindowFlagsNoBackground int32 = 1 << 7
	WindowFlagsChildWindow  int32 = 1 << 24
)

// Conditions for the SetNextWindow* calls.
const (
	CondAlways       int32 = 1 << 0
	CondOnce         int32 = 1 << 1
	CondFirstUseEver int32 = 1 << 2
	CondAppearing    int32 = 1 << 3
)

const fallbackWindowName = "Debug##Default"

type window struct {
	ctx      *uiContext
	name     string
	id       uint32
	flags    int32
	parent   *window
	drawList *drawList

	pos            Vec2
	size           Vec2
	contentSize    Vec2
	scroll         Vec2
	scrollMaxY     float32
	titleBarHeight float32
	innerClip      Vec4

	lastFrameActive int32
	active          bool
	written         bool
	fallback        bool
	skipItems       bool
	border          bool
	condOnceUsed    int32

	cursorStartPos    Vec2
	cursorPos         Vec2
	cursorMaxPos      Vec2
	cursorPosPrevLine Vec2
	prevLineSize      Vec2
	currLineSize      Vec2
	idStack           []uint32
}

type nextWindowData struct {
	hasPos   bool
	posCond  int32
	pos      Vec2
	pivot    Vec2
	hasSize  bool
	sizeCond int32
	size     Vec2
}

type lastItem struct {
	id      uint32
	rect    Vec4
	hovered bool
	clipped bool
	window  *window
}

// hashString hashes s with seed. A "###" marker restarts the hash so the
// visible label can change without changing the identifier.
func hashString(s string, seed uint32) uint32 {
	if i := strings.Index(s, "###"); i >= 0 {
		s = s[i:]
	}
	return crc32.Update(seed, crc32.IEEETable, []byte(s))
}

// displayText strips the "##" suffix used only for identifiers.
func displayText(s string) string {
	if i := strings.Index(s, "##"); i >= 0 {
		return s[:i]
	}
	return s
}

func (w *window) getID(s string) uint32 {
	return hashString(s, w.idStack[len(w.idStack)-1])
}

func (w *window) rect() Vec4 {
	return Vec4{X: w.pos.X, Y: w.pos.Y, Z: w.pos.X + w.size.X, W: w.pos.Y + w.size.Y}
}

func trunc(v float32) float32 {
	return float32(math.Trunc(float64(v)))
}

func contains(r Vec4, p Vec2) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X < r.Z && p.Y < r.W
}

func (c *uiContext) createWindow(name string, id uint32, flags int32) *window {
	w := &window{
		ctx:             c,
		name:            name,
		id:              id,
		flags:           flags,
		pos:             Vec2{X: 60, Y: 60},
		size:            Vec2{X: 400, Y: 300},
		lastFrameActive: -1,
		idStack:         []uint32{id},
	}
	w.drawList = newDrawList(c.lib, c)
	w.drawList.reset()
	c.windows = append(c.windows, w)
	c.windowsByID[id] = w
	return w
}

func condAllows(cond int32, created, appearing bool, onceUsed *int32) bool {
	switch {
	case cond == 0 || cond&CondAlways != 0:
		return true
	case cond&CondFirstUseEver != 0:
		return created
	case cond&CondAppearing != 0:
		return appearing
	case cond&CondOnce != 0:
		if *onceUsed&cond != 0 {
			return false
		}
		*onceUsed |= cond
		return true
	}
	return false
}

func (c *uiContext) begin(name string, open Ptr, flags int32) bool {
	l := c.lib
	parent := c.current
	id := hashString(name, 0)
	if flags&WindowFlagsChildWindow != 0 && parent != nil {
		id = hashString(name, parent.id)
	}
	w, ok := c.windowsByID[id]
	created := !ok
	if created {
		w = c.createWindow(name, id, flags)
	}

	first := w.lastFrameActive != c.frameCount
	c.windowStack = append(c.windowStack, w)
	c.current = w

	if !first {
		w.drawList.pushClipRect(Vec2{X: w.innerClip.X, Y: w.innerClip.Y}, Vec2{X: w.innerClip.Z, Y: w.innerClip.W}, false)
		return !w.skipItems
	}

	appearing := w.lastFrameActive < c.frameCount-1
	w.flags = flags
	w.parent = nil
	if flags&WindowFlagsChildWindow != 0 {
		w.parent = parent
	}
	w.lastFrameActive = c.frameCount
	w.active = true
	w.written = false

	nw := c.nextWindow
	c.nextWindow = nextWindowData{}
	if nw.hasSize && condAllows(nw.sizeCond, created, appearing, &w.condOnceUsed) {
		w.size = nw.size
	}
	if nw.hasPos && condAllows(nw.posCond, created, appearing, &w.condOnceUsed) {
		w.pos = Vec2{X: nw.pos.X - nw.pivot.X*w.size.X, Y: nw.pos.Y - nw.pivot.Y*w.size.Y}
	}

	style := c.style
	pad := style.windowPadding
	w.titleBarHeight = 0
	if flags&WindowFlagsNoTitleBar == 0 {
		w.titleBarHeight = c.fontSize + style.framePadding.Y*2
	}

	w.scrollMaxY = max(0, w.contentSize.Y+pad.Y*2-(w.size.Y-w.titleBarHeight))
	w.scroll.Y = min(max(w.scroll.Y, 0), w.scrollMaxY)

	w.cursorStartPos = Vec2{
		X: trunc(w.pos.X + pad.X - w.scroll.X),
		Y: trunc(w.pos.Y + w.titleBarHeight + pad.Y - w.scroll.Y),
	}
	w.cursorPos = w.cursorStartPos
	w.cursorMaxPos = w.cursorStartPos
	w.cursorPosPrevLine = w.cursorPos
	w.prevLineSize = Vec2{}
	w.currLineSize = Vec2{}
	w.idStack = w.idStack[:1]

	clipPad := max(1, trunc(pad.X*0.5))
	w.innerClip = Vec4{
		X: w.pos.X + clipPad,
		Y: w.pos.Y + w.titleBarHeight,
		Z: w.pos.X + w.size.X - clipPad,
		W: w.pos.Y + w.size.Y,
	}
	if w.parent != nil {
		w.innerClip = intersect(w.innerClip, w.parent.innerClip)
	}

	w.skipItems = w.innerClip.W <= w.innerClip.Y || w.innerClip.Z <= w.innerClip.X
	if open != 0 && l.mem.u8(uint32(open)) == 0 {
		w.skipItems = true
	}

	dl := w.drawList
	full := w.rect()
	dl.pushClipRect(Vec2{X: full.X, Y: full.Y}, Vec2{X: full.Z, Y: full.W}, false)
	if w.parent != nil {
		dl.clipStack[len(dl.clipStack)-1] = intersect(full, w.parent.innerClip)
		dl.updateCommand()
	}
	if flags&WindowFlagsNoBackground == 0 {
		bg := ColWindowBg
		if w.parent != nil {
			bg = ColChildBg
		}
		dl.addRectFilled(w.pos, w.pos.Plus(w.size), c.colorU32(bg))
	}
	if style.windowBorderSize > 0 && (w.parent == nil || w.border) {
		dl.addRect(w.pos, w.pos.Plus(w.size), c.colorU32(ColBorder), style.windowBorderSize)
	}
	if w.titleBarHeight > 0 {
		dl.addRectFilled(w.pos, Vec2{X: w.pos.X + w.size.X, Y: w.pos.Y + w.titleBarHeight}, c.colorU32(ColTitleBgActive))
		dl.addText(c.font, c.fontSize, w.pos.Plus(style.framePadding), c.colorU32(ColText), displayText(name))
		if open != 0 {
			c.closeButton(w, open)
		}
	}
	dl.popClipRect()
	dl.pushClipRect(Vec2{X: w.innerClip.X, Y: w.innerClip.Y}, Vec2{X: w.innerClip.Z, Y: w.innerClip.W}, false)
	return !w.skipItems
}

func (c *uiContext) closeButton(w *window, open Ptr) {
	size := c.fontSize
	pad := c.style.framePadding
	corner := Vec2{X: w.pos.X + w.size.X - pad.X - size, Y: w.pos.Y + pad.Y}
	bb := Vec4{X: corner.X, Y: corner.Y, Z: corner.X + size, W: corner.Y + size}
	id := w.getID("#CLOSE")
	hovered := contains(bb, c.io.mousePos)
	held, pressed := c.buttonBehavior(id, hovered)
	if hovered || held {
		col := ColButtonHovered
		if held {
			col = ColButtonActive
		}
		w.drawList.addRectFilled(corner, Vec2{X: bb.Z, Y: bb.W}, c.colorU32(col))
	}
	cross := size * 0.5 * 0.7071
	center := Vec2{X: corner.X + size*0.5, Y: corner.Y + size*0.5}
	textCol := c.colorU32(ColText)
	w.drawList.addLine(Vec2{X: center.X - cross, Y: center.Y - cross}, Vec2{X: center.X + cross, Y: center.Y + cross}, textCol, 1)
	w.drawList.addLine(Vec2{X: center.X + cross, Y: center.Y - cross}, Vec2{X: center.X - cross, Y: center.Y + cross}, textCol, 1)
	if pressed {
		c.lib.mem.setU8(uint32(open), 0)
	}
}

func (c *uiContext) end() {
	w := c.current
	w.drawList.popClipRect()
	w.contentSize = Vec2{
		X: w.cursorMaxPos.X - w.cursorStartPos.X,
		Y: w.cursorMaxPos.Y - w.cursorStartPos.Y,
	}
	c.windowStack = c.windowStack[:len(c.windowStack)-1]
	c.current = nil
	if n := len(c.windowStack); n > 0 {
		c.current = c.windowStack[n-1]
	}
}

// itemSize advances the layout cursor past an item of the given size.
func (c *uiContext) itemSize(w *window, size Vec2) {
	if w.skipItems {
		return
	}
	spacing := c.style.itemSpacing
	lineHeight := max(w.currLineSize.Y, size.Y)
	w.cursorPosPrevLine = Vec2{X: w.cursorPos.X + size.X, Y: w.cursorPos.Y}
	w.cursorPos = Vec2{
		X: w.cursorStartPos.X,
		Y: trunc(w.cursorPos.Y + lineHeight + spacing.Y),
	}
	w.cursorMaxPos.X = max(w.cursorMaxPos.X, w.cursorPosPrevLine.X)
	w.cursorMaxPos.Y = max(w.cursorMaxPos.Y, w.cursorPos.Y-spacing.Y)
	w.prevLineSize.Y = lineHeight
	w.currLineSize.Y = 0
}

// itemAdd registers an item and reports whether it is visible.
func (c *uiContext) itemAdd(w *window, bb Vec4, id uint32) bool {
	c.lastItem = lastItem{id: id, rect: bb, window: w}
	w.written = true
	clip := w.innerClip
	if bb.Y > clip.W || bb.W < clip.Y || bb.X > clip.Z || bb.Z < clip.X {
		c.lastItem.clipped = true
		return false
	}
	c.lastItem.hovered = contains(bb, c.io.mousePos) && contains(clip, c.io.mousePos)
	return true
}

// buttonBehavior implements press-on-release with the item held between
// click and release.
func (c *uiContext) buttonBehavior(id uint32, hovered bool) (held, pressed bool) {
	io := c.io
	if hovered && io.mouseClicked[0] {
		c.activeID = id
	}
	held = c.activeID == id && io.mouseDown[0]
	if c.activeID == id && io.mouseReleased[0] {
		pressed = hovered
		c.activeID = 0
	}
	return held, pressed
}

// setCursorPosYAndSetupDummyPrevLine moves the cursor to a window-local Y as
// if a line of lineHeight had just been submitted.
func (c *uiContext) setCursorPosYAndSetupDummyPrevLine(w *window, posY, lineHeight float32) {
	w.cursorPos.Y = w.pos.Y - w.scroll.Y + posY
	w.cursorMaxPos.Y = max(w.cursorMaxPos.Y, w.cursorPos.Y)
	w.cursorPosPrevLine.Y = w.cursorPos.Y - lineHeight
	w.prevLineSize.Y = lineHeight - c.style.itemSpacing.Y
}

func (c *uiContext) currentWindow(where string) *window {
	c.lib.assert(c.current != nil, where, "no current window: call NewFrame() and Begin() first")
	return c.current
}

// Begin pushes a window. open may be 0; when it points at a false bool the
// window's items are skipped, and its close button clears it.
func (l *Library) Begin(name string, open Ptr, flags int32) bool {
	c := l.ctx()
	l.assert(c.withinFrame, "Begin", "forgot to call NewFrame()")
	l.assert(name != "", "Begin", "window name must not be empty")
	return c.begin(name, open, flags)
}

// End pops the current window.
func (l *Library) End() {
	c := l.ctx()
	l.assert(len(c.windowStack) > 1, "End", "calling End() too many times")
	l.assert(c.current.flags&WindowFlagsChildWindow == 0, "End", "must call EndChild() and not End()")
	c.end()
}

// BeginChild opens a child region inside the current window. A size
// component of 0 fills the remaining space; a negative one leaves that much.
func (l *Library) BeginChild(strID string, size Vec2, border bool, flags int32) bool {
	c := l.ctx()
	parent := c.currentWindow("BeginChild")
	avail := c.contentRegionAvail(parent)
	if size.X <= 0 {
		size.X = max(avail.X+size.X, 4)
	}
	if size.Y <= 0 {
		size.Y = max(avail.Y+size.Y, 4)
	}
	c.nextWindow.hasPos, c.nextWindow.posCond, c.nextWindow.pos, c.nextWindow.pivot = true, CondAlways, parent.cursorPos, Vec2{}
	c.nextWindow.hasSize, c.nextWindow.sizeCond, c.nextWindow.size = true, CondAlways, size

	name := parent.name + "/" + strID
	ret := c.begin(name, 0, flags|WindowFlagsNoTitleBar|WindowFlagsChildWindow)
	c.current.border = border
	return ret
}

// EndChild closes a child region and advances the parent's cursor past it.
func (l *Library) EndChild() {
	c := l.ctx()
	w := c.currentWindow("EndChild")
	l.assert(w.flags&WindowFlagsChildWindow != 0 && len(c.windowStack) > 1, "EndChild",
		"mismatched BeginChild()/EndChild() calls")
	size := w.size
	c.end()
	parent := c.current
	bb := Vec4{X: parent.cursorPos.X, Y: parent.cursorPos.Y, Z: parent.cursorPos.X + size.X, W: parent.cursorPos.Y + size.Y}
	c.itemSize(parent, size)
	c.itemAdd(parent, bb, 0)
}

// SetNextWindowPos positions the next window. pivot (0,0) anchors its top-left corner.
func (l *Library) SetNextWindowPos(pos Vec2, cond int32, pivot Vec2) {
	c := l.ctx()
	c.nextWindow.hasPos, c.nextWindow.posCond, c.nextWindow.pos, c.nextWindow.pivot = true, cond, pos, pivot
}

// SetNextWindowSize sizes the next window.
func (l *Library) SetNextWindowSize(size Vec2, cond int32) {
	c := l.ctx()
	c.nextWindow.hasSize, c.nextWindow.sizeCond, c.nextWindow.size = true, cond, size
}

// GetWindowDrawList returns the draw list of the current window.
func (l *Library) GetWindowDrawList() Handle {
	return l.ctx().currentWindow("GetWindowDrawList").drawList.handle
}

// GetWindowPos returns the current window's position.
func (l *Library) GetWindowPos() Vec2 {
	return l.ctx().currentWindow("GetWindowPos").pos
}

// GetWindowSize returns the current window's size.
func (l *Library) GetWindowSize() Vec2 {
	return l.ctx().currentWindow("GetWindowSize").size
}

func (c *uiContext) contentRegionAvail(w *window) Vec2 {
	pad := c.style.windowPadding
	return Vec2{
		X: w.pos.X + w.size.X - pad.X - w.cursorPos.X,
		Y: w.pos.Y + w.size.Y - pad.Y - w.cursorPos.Y,
	}
}

// GetContentRegionAvail returns the space left in the current window from the cursor.
func (l *Library) GetContentRegionAvail() Vec2 {
	c := l.ctx()
	return c.contentRegionAvail(c.currentWindow("GetContentRegionAvail"))
}

// GetCursorPos returns the cursor in window coordinates.
func (l *Library) GetCursorPos() Vec2 {
	w := l.ctx().currentWindow("GetCursorPos")
	return w.cursorPos.Minus(w.pos).Plus(w.scroll)
}

// SetCursorPos moves the cursor in window coordinates.
func (l *Library) SetCursorPos(local Vec2) {
	w := l.ctx().currentWindow("SetCursorPos")
	w.cursorPos = w.pos.Minus(w.scroll).Plus(local)
	w.cursorMaxPos.X = max(w.cursorMaxPos.X, w.cursorPos.X)
	w.cursorMaxPos.Y = max(w.cursorMaxPos.Y, w.cursorPos.Y)
}

// GetCursorPosY returns the cursor's window-relative Y.
func (l *Library) GetCursorPosY() float32 {
	return l.GetCursorPos().Y
}

// SetCursorPosY moves the cursor to a window-relative Y.
func (l *Library) SetCursorPosY(y float32) {
	w := l.ctx().currentWindow("SetCursorPosY")
	w.cursorPos.Y = w.pos.Y - w.scroll.Y + y
	w.cursorMaxPos.Y = max(w.cursorMaxPos.Y, w.cursorPos.Y)
}

// GetCursorScreenPos returns the cursor in screen coordinates.
func (l *Library) GetCursorScreenPos() Vec2 {
	return l.ctx().currentWindow("GetCursorScreenPos").cursorPos
}

// SetCursorScreenPos moves the cursor in screen coordinates.
func (l *Library) SetCursorScreenPos(pos Vec2) {
	w := l.ctx().currentWindow("SetCursorScreenPos")
	w.cursorPos = pos
	w.cursorMaxPos.X = max(w.cursorMaxPos.X, pos.X)
	w.cursorMaxPos.Y = max(w.cursorMaxPos.Y, pos.Y)
}

// GetScrollY returns the vertical scroll of the current window.
func (l *Library) GetScrollY() float32 {
	return l.ctx().currentWindow("GetScrollY").scroll.Y
}

// GetScrollMaxY returns the maximum vertical scroll of the current window.
func (l *Library) GetScrollMaxY() float32 {
	return l.ctx().currentWindow("GetScrollMaxY").scrollMaxY
}

// SetScrollY scrolls the current window. It takes effect at its next Begin.
func (l *Library) SetScrollY(y float32) {
	l.ctx().currentWindow("SetScrollY").scroll.Y = y
}

// GetTextLineHeight returns the font size.
func (l *Library) GetTextLineHeight() float32 {
	return l.ctx().fontSize
}

// GetTextLineHeightWithSpacing returns the font size plus vertical item spacing.
func (l *Library) GetTextLineHeightWithSpacing() float32 {
	c := l.ctx()
	return c.fontSize + c.style.itemSpacing.Y
}

// GetFrameHeight returns the height of a framed widget.
func (l *Library) GetFrameHeight() float32 {
	c := l.ctx()
	return c.fontSize + c.style.framePadding.Y*2
}

// SameLine places the next item to the right of the previous one.
func (l *Library) SameLine(offsetFromStartX, spacing float32) {
	c := l.ctx()
	w := c.currentWindow("SameLine")
	if w.skipItems {
		return
	}
	if offsetFromStartX != 0 {
		if spacing < 0 {
			spacing = 0
		}
		w.cursorPos.X = w.pos.X - w.scroll.X + offsetFromStartX + spacing
	} else {
		if spacing < 0 {
			spacing = c.style.itemSpacing.X
		}
		w.cursorPos.X = w.cursorPosPrevLine.X + spacing
	}
	w.cursorPos.Y = w.cursorPosPrevLine.Y
	w.currLineSize = w.prevLineSize
}

// PushID pushes a string onto the identifier stack of the current window.
func (l *Library) PushID(id string) {
	w := l.ctx().currentWindow("PushID")
	w.idStack = append(w.idStack, w.getID(id))
}

// PopID pops the identifier stack.
func (l *Library) PopID() {
	w := l.ctx().currentWindow("PopID")
	l.assert(len(w.idStack) > 1, "PopID", "calling PopID() too many times")
	w.idStack = w.idStack[:len(w.idStack)-1]
}

// IsItemHovered reports whether the last item is under the mouse.
func (l *Library) IsItemHovered() bool {
	return l.ctx().lastItem.hovered
}

// IsItemActive reports whether the last item is being held.
func (l *Library) IsItemActive() bool {
	c := l.ctx()
	return c.lastItem.id != 0 && c.activeID == c.lastItem.id
}

// IsItemClipped reports whether the last item fell outside the clip rectangle.
func (l *Library) IsItemClipped() bool {
	return l.ctx().lastItem.clipped
}
