package imgui

import (
	"go.uber.org/zap"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/boundary"
)

// Context is one independent UI state scope.
//
// Contexts created without an atlas get their own default font atlas.
// Passing an atlas shares it; the atlas must then outlive every context
// using it.
type Context struct {
	handle imguibridge.Handle
}

// CreateContext produces a new state scope. It becomes current when no other
// context is.
func CreateContext(fontAtlas *FontAtlas) *Context {
	var atlas imguibridge.Handle
	if fontAtlas != nil {
		atlas = fontAtlas.handle()
	}
	c := &Context{handle: boundary.CreateContext(atlas)}
	Logger().Debug("context created", zap.Uint32("handle", uint32(c.handle)))
	return c
}

// CurrentContext returns the current state scope, or ErrNoContext.
func CurrentContext() (*Context, error) {
	raw := boundary.CurrentContext()
	if raw == 0 {
		return nil, ErrNoContext
	}
	return &Context{handle: raw}, nil
}

// Destroy releases the state scope and everything it owns. Destroying an
// already destroyed context does nothing.
func (context *Context) Destroy() {
	if context.handle == 0 {
		return
	}
	boundary.DestroyContext(context.handle)
	Logger().Debug("context destroyed", zap.Uint32("handle", uint32(context.handle)))
	context.handle = 0
}

// SetCurrent activates this context.
func (context *Context) SetCurrent() error {
	if context.handle == 0 {
		return ErrContextDestroyed
	}
	boundary.SetCurrentContext(context.handle)
	return nil
}

// Use makes the context current for the duration of fn and then restores
// whichever context was current before, also when fn panics.
func (context *Context) Use(fn func()) error {
	if context.handle == 0 {
		return ErrContextDestroyed
	}
	prev := boundary.CurrentContext()
	boundary.SetCurrentContext(context.handle)
	defer func() {
		boundary.SetCurrentContext(prev)
		Logger().Debug("context restored", zap.Uint32("handle", uint32(prev)))
	}()
	fn()
	return nil
}

// Destroyed reports whether Destroy was called on this value.
func (context *Context) Destroyed() bool {
	return context.handle == 0
}

// FrameCount returns the number of frames started in the current context.
func FrameCount() int {
	return int(boundary.FrameCount())
}

// NewFrame starts a new frame. Buffers exported from the previous frame
// become invalid.
func NewFrame() {
	boundary.NewFrame()
}

// EndFrame ends the frame without rendering. Render calls it.
func EndFrame() {
	boundary.EndFrame()
}

// Render ends the frame and finalizes the draw data.
func Render() {
	boundary.Render()
}

// RenderedDrawData returns the draw data of the last Render. It is valid
// until the next NewFrame.
func RenderedDrawData() DrawData {
	return DrawData(boundary.RenderedDrawData())
}
