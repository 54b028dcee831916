package native

import "math"

// ClipperState is the complete state of a list clipper. It is stored in
// linear memory between calls with the ElementClipperState layout.
type ClipperState struct {
	StartPosY    float32
	ItemsHeight  float32
	ItemsCount   int32
	StepNo       int32
	DisplayStart int32
	DisplayEnd   int32
}

// Clipper steps.
const (
	clipperStepMeasure  = 0 // first item submitted so its height can be measured
	clipperStepRange    = 1 // height inferred, visible range computed
	clipperStepExplicit = 2 // dummy step after an explicit height
	clipperStepEnd      = 3 // cursor seeked to the end of the list
)

// calcListClipping returns the range of items of height h intersecting the
// window's clip rectangle, starting at the cursor.
func (c *uiContext) calcListClipping(w *window, count int32, h float32) (start, end int32) {
	if w.skipItems {
		return 0, 0
	}
	clip := w.innerClip
	y := w.cursorPos.Y
	start = int32((clip.Y - y) / h)
	end = int32((clip.W - y) / h)
	start = min(max(start, 0), count)
	end = min(max(end+1, start), count)
	return start, end
}

func (c *uiContext) cursorLocalY(w *window) float32 {
	return w.cursorPos.Y - w.pos.Y + w.scroll.Y
}

func (c *uiContext) clipperBegin(w *window, s *ClipperState, count int32, h float32) {
	s.StartPosY = c.cursorLocalY(w)
	s.ItemsHeight = h
	s.ItemsCount = count
	s.StepNo = clipperStepMeasure
	s.DisplayStart, s.DisplayEnd = -1, -1
	if h > 0 {
		s.DisplayStart, s.DisplayEnd = c.calcListClipping(w, count, h)
		if s.DisplayStart > 0 {
			c.setCursorPosYAndSetupDummyPrevLine(w, s.StartPosY+float32(s.DisplayStart)*h, h)
		}
		s.StepNo = clipperStepExplicit
	}
}

func (c *uiContext) clipperEnd(w *window, s *ClipperState) {
	if s.ItemsCount < 0 {
		return
	}
	if s.ItemsCount < math.MaxInt32 {
		c.setCursorPosYAndSetupDummyPrevLine(w, s.StartPosY+float32(s.ItemsCount)*s.ItemsHeight, s.ItemsHeight)
	}
	s.ItemsCount = -1
	s.StepNo = clipperStepEnd
}

func (c *uiContext) clipperStep(w *window, s *ClipperState) bool {
	if s.ItemsCount == 0 || w.skipItems {
		s.ItemsCount = -1
		return false
	}
	switch s.StepNo {
	case clipperStepMeasure:
		s.DisplayStart, s.DisplayEnd = 0, 1
		s.StartPosY = c.cursorLocalY(w)
		s.StepNo = clipperStepRange
		return true
	case clipperStepRange:
		if s.ItemsCount == 1 {
			s.ItemsCount = -1
			return false
		}
		h := c.cursorLocalY(w) - s.StartPosY
		c.lib.assert(h > 0, "ListClipper.Step", "item 0 did not move the cursor vertically")
		c.clipperBegin(w, s, s.ItemsCount-1, h)
		s.DisplayStart++
		s.DisplayEnd++
		s.StepNo = clipperStepEnd
		return true
	case clipperStepExplicit:
		c.lib.assert(s.DisplayStart >= 0 && s.DisplayEnd >= 0, "ListClipper.Step", "invalid display range")
		s.StepNo = clipperStepEnd
		return true
	case clipperStepEnd:
		c.clipperEnd(w, s)
	}
	return false
}

func (l *Library) loadClipper(p Ptr) ClipperState {
	l.assert(p != 0, "ListClipper", "state pointer must not be null")
	at := uint32(p)
	return ClipperState{
		StartPosY:    l.mem.f32(at + clipStartPosY),
		ItemsHeight:  l.mem.f32(at + clipItemsHeight),
		ItemsCount:   l.mem.s32(at + clipItemsCount),
		StepNo:       l.mem.s32(at + clipStepNo),
		DisplayStart: l.mem.s32(at + clipDisplayStart),
		DisplayEnd:   l.mem.s32(at + clipDisplayEnd),
	}
}

func (l *Library) storeClipper(p Ptr, s ClipperState) {
	at := uint32(p)
	l.mem.setF32(at+clipStartPosY, s.StartPosY)
	l.mem.setF32(at+clipItemsHeight, s.ItemsHeight)
	l.mem.setS32(at+clipItemsCount, s.ItemsCount)
	l.mem.setS32(at+clipStepNo, s.StepNo)
	l.mem.setS32(at+clipDisplayStart, s.DisplayStart)
	l.mem.setS32(at+clipDisplayEnd, s.DisplayEnd)
}

// ListClipperBegin starts a clipped traversal of count items of height h in
// the current window and stores the state at state. A height <= 0 makes the
// first step measure item 0.
func (l *Library) ListClipperBegin(state Ptr, count int32, h float32) {
	l.assert(state != 0, "ListClipperBegin", "state pointer must not be null")
	c := l.ctx()
	var s ClipperState
	c.clipperBegin(c.currentWindow("ListClipperBegin"), &s, count, h)
	l.storeClipper(state, s)
}

// ListClipperStep advances the traversal stored at state by one step and
// reports whether the caller should submit DisplayStart..DisplayEnd.
func (l *Library) ListClipperStep(state Ptr) bool {
	c := l.ctx()
	s := l.loadClipper(state)
	ok := c.clipperStep(c.currentWindow("ListClipperStep"), &s)
	l.storeClipper(state, s)
	return ok
}

// ListClipperEnd seeks the cursor to the end of the list. It is a no-op once
// the traversal has ended.
func (l *Library) ListClipperEnd(state Ptr) {
	c := l.ctx()
	s := l.loadClipper(state)
	c.clipperEnd(c.currentWindow("ListClipperEnd"), &s)
	l.storeClipper(state, s)
}

// LiveClipper is a clipper retained across its whole traversal. Closing it
// before the traversal has ended is an assertion failure.
type LiveClipper struct {
	lib   *Library
	state ClipperState
}

// NewLiveClipper returns a clipper in the ended state.
func (l *Library) NewLiveClipper() *LiveClipper {
	return &LiveClipper{lib: l, state: ClipperState{ItemsCount: -1, DisplayStart: -1, DisplayEnd: -1}}
}

func (lc *LiveClipper) window(where string) (*uiContext, *window) {
	c := lc.lib.ctx()
	return c, c.currentWindow(where)
}

// Begin starts the traversal.
func (lc *LiveClipper) Begin(count int32, h float32) {
	c, w := lc.window("LiveClipper.Begin")
	c.clipperBegin(w, &lc.state, count, h)
}

// Step advances the traversal.
func (lc *LiveClipper) Step() bool {
	c, w := lc.window("LiveClipper.Step")
	return c.clipperStep(w, &lc.state)
}

// End seeks to the end of the list.
func (lc *LiveClipper) End() {
	c, w := lc.window("LiveClipper.End")
	c.clipperEnd(w, &lc.state)
}

// State returns a copy of the clipper state.
func (lc *LiveClipper) State() ClipperState {
	return lc.state
}

// Close checks that the traversal ran to completion.
func (lc *LiveClipper) Close() {
	lc.lib.assert(lc.state.ItemsCount == -1, "LiveClipper.Close",
		"forgot to call End(), or to Step() until false?")
}
