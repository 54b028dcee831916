package imgui_test

import (
	"testing"

	"github.com/wippyai/imgui-bridge/imgui"
)

// newTestContext creates and selects a context with an 800x600 display and
// a built default font.
func newTestContext(t *testing.T) *imgui.Context {
	t.Helper()
	ctx := imgui.CreateContext(nil)
	if err := ctx.SetCurrent(); err != nil {
		t.Fatalf("SetCurrent() error = %v", err)
	}
	t.Cleanup(ctx.Destroy)

	io := imgui.CurrentIO()
	io.SetDisplaySize(imgui.Vec2{X: 800, Y: 600})
	if !io.Fonts().Build() {
		t.Fatal("Build() = false")
	}
	return ctx
}

// frame runs fn inside a title-less window of the given size at the origin
// and renders.
func frame(size imgui.Vec2, fn func()) {
	imgui.NewFrame()
	imgui.SetNextWindowPosV(imgui.Vec2{}, imgui.CondAlways, imgui.Vec2{})
	imgui.SetNextWindowSizeV(size, imgui.CondAlways)
	imgui.BeginV("test", nil, imgui.WindowFlagsNoTitleBar)
	fn()
	imgui.End()
	imgui.Render()
}

// inputFrame runs one 200x100 frame with the mouse at pos and the primary
// button in the given state.
func inputFrame(pos imgui.Vec2, down bool, fn func()) {
	io := imgui.CurrentIO()
	io.SetMousePosition(pos)
	io.SetMouseButtonDown(0, down)
	frame(imgui.Vec2{X: 200, Y: 100}, fn)
}

// click presses and releases the primary button over pos in two frames.
func click(pos imgui.Vec2, fn func()) {
	inputFrame(pos, true, fn)
	inputFrame(pos, false, fn)
}
