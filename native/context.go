package native

import (
	"go.uber.org/zap"
)

// uiContext is one engine context: IO, style, font atlas, windows and the
// per-frame state that goes with them.
type uiContext struct {
	lib       *Library
	handle    Handle
	io        *ioState
	style     *styleState
	atlas     *fontAtlas
	ownsAtlas bool
	drawData  *drawData
	payload   *payload

	windows     []*window
	windowsByID map[uint32]*window
	windowStack []*window
	current     *window

	frameCount      int32
	frameCountEnded int32
	withinFrame     bool

	font      *font
	fontSize  float32
	fontStack []*font

	styleVarStack  []styleVarBackup
	colorStack     []colorBackup
	nextWindow     nextWindowData
	lastItem       lastItem
	activeID       uint32
	hoveredWindow  *window
	focusedEditor  *textEditor
	textInputID    uint32
	textInputFrame int32
	dragDrop       dragDropState

	framerateSamples [120]float32
	framerateIdx     int
	framerateAcc     float32
}

// CreateContext creates a context using the given font atlas, or a new one
// owned by the context when atlas is 0. The first context created becomes
// current.
func (l *Library) CreateContext(atlas Handle) Handle {
	c := &uiContext{
		lib:             l,
		windowsByID:     make(map[uint32]*window),
		frameCountEnded: -1,
	}
	c.handle = l.newObject(c)

	if atlas == 0 {
		c.atlas = l.newFontAtlas()
		c.ownsAtlas = true
	} else {
		c.atlas = deref[fontAtlas](l, atlas)
	}
	c.atlas.users++

	c.io = newIO(l, c)
	c.style = newStyle(l)
	c.drawData = newDrawData(l)
	c.payload = newPayload(l)
	c.clearDragDrop()

	l.contexts++
	if l.current == 0 {
		l.current = c.handle
	}
	l.log.Debug("context created",
		zap.Uint32("handle", uint32(c.handle)),
		zap.Bool("shared_atlas", !c.ownsAtlas))
	return c.handle
}

// DestroyContext releases a context and every object it owns. Passing 0
// destroys the current context.
func (l *Library) DestroyContext(h Handle) {
	if h == 0 {
		h = l.current
	}
	if h == 0 {
		return
	}
	c := deref[uiContext](l, h)

	for _, w := range c.windows {
		w.drawList.release()
	}
	c.io.release()
	c.style.release()
	c.drawData.release()
	c.payload.release()

	c.atlas.users--
	if c.ownsAtlas {
		l.destroyFontAtlas(c.atlas)
	}

	l.dropObject(h)
	l.contexts--
	if l.current == h {
		l.current = 0
	}
	l.log.Debug("context destroyed", zap.Uint32("handle", uint32(h)))
}

// CurrentContext returns the current context, or 0 when there is none.
func (l *Library) CurrentContext() Handle {
	return l.current
}

// SetCurrentContext makes h current. 0 clears the slot.
func (l *Library) SetCurrentContext(h Handle) {
	l.current = h
}

// ctx returns the current context. Calling into the engine without one is a
// contract violation.
func (l *Library) ctx() *uiContext {
	l.assert(l.current != 0, "CurrentContext",
		"no current context: call CreateContext and SetCurrentContext first")
	return deref[uiContext](l, l.current)
}

// GetIO returns the current context's IO handle.
func (l *Library) GetIO() Handle {
	return l.ctx().io.handle
}

// GetStyle returns the current context's style handle.
func (l *Library) GetStyle() Handle {
	return l.ctx().style.handle
}

// FrameCount returns the number of frames started in the current context.
func (l *Library) FrameCount() int32 {
	return l.ctx().frameCount
}

// window returns the window receiving items.
func (c *uiContext) window() *window {
	return c.current
}
