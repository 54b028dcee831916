package imgui

import (
	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/boundary"
)

// IO is the input/output state of a context.
type IO struct {
	handle imguibridge.Handle
}

// CurrentIO returns the IO of the current context.
func CurrentIO() IO {
	return IO{handle: boundary.GetIO()}
}

// WantCaptureMouse is set when the engine uses the mouse; the application
// should not dispatch it to its own logic then.
func (io IO) WantCaptureMouse() bool {
	return isTrue(boundary.IOWantCaptureMouse(io.handle))
}

// WantCaptureKeyboard is set when the engine uses the keyboard.
func (io IO) WantCaptureKeyboard() bool {
	return isTrue(boundary.IOWantCaptureKeyboard(io.handle))
}

// WantTextInput is set when a text widget is active.
func (io IO) WantTextInput() bool {
	return isTrue(boundary.IOWantTextInput(io.handle))
}

func (io IO) SetDisplaySize(value Vec2) {
	s := scope()
	defer s.Exit()
	boundary.IOSetDisplaySize(io.handle, vec2Ptr(s, value))
}

func (io IO) DisplaySize() Vec2 {
	return readVec2(func(out imguibridge.Ptr) { boundary.IODisplaySize(io.handle, out) })
}

func (io IO) GetMouseDrawCursor() bool {
	return isTrue(boundary.IOMouseDrawCursor(io.handle))
}

func (io IO) SetMouseDrawCursor(b bool) {
	boundary.IOSetMouseDrawCursor(io.handle, imguibridge.BoolOf(b))
}

// Fonts returns the font atlas of the context.
func (io IO) Fonts() FontAtlas {
	return FontAtlas(boundary.IOFonts(io.handle))
}

// SetMousePosition sets the mouse position in display coordinates.
func (io IO) SetMousePosition(value Vec2) {
	s := scope()
	defer s.Exit()
	boundary.IOSetMousePosition(io.handle, vec2Ptr(s, value))
}

// SetMouseButtonDown sets the state of a mouse button: 0 left, 1 right,
// 2 middle, 3 and 4 extra.
func (io IO) SetMouseButtonDown(index int, down bool) {
	boundary.IOSetMouseButtonDown(io.handle, int32(index), imguibridge.BoolOf(down))
}

func (io IO) AddMouseWheelDelta(horizontal, vertical float32) {
	boundary.IOAddMouseWheelDelta(io.handle, horizontal, vertical)
}

func (io IO) GetMouseDelta() Vec2 {
	return readVec2(func(out imguibridge.Ptr) { boundary.IOMouseDelta(io.handle, out) })
}

// SetDeltaTime sets the time elapsed since the last frame, in seconds.
func (io IO) SetDeltaTime(value float32) {
	boundary.IOSetDeltaTime(io.handle, value)
}

func (io IO) SetFontGlobalScale(value float32) {
	boundary.IOSetFontGlobalScale(io.handle, value)
}

// KeyPress marks a native key as pressed.
func (io IO) KeyPress(key int) {
	boundary.IOKeyPress(io.handle, int32(key))
}

func (io IO) KeyRelease(key int) {
	boundary.IOKeyRelease(io.handle, int32(key))
}

// KeyMap maps an engine key to the native key code the application reports.
func (io IO) KeyMap(imguiKey int, nativeKey int) {
	boundary.IOKeyMap(io.handle, int32(imguiKey), int32(nativeKey))
}

// SetModifiers sets the state of the modifier keys.
func (io IO) SetModifiers(ctrl, shift, alt, super bool) {
	boundary.IOSetModifiers(io.handle, imguibridge.BoolOf(ctrl), imguibridge.BoolOf(shift),
		imguibridge.BoolOf(alt), imguibridge.BoolOf(super))
}

// AddInputCharacters queues text input for the next frame.
func (io IO) AddInputCharacters(chars string) {
	s := scope()
	defer s.Exit()
	boundary.IOAddInputCharactersUTF8(io.handle, s.String(chars))
}

func (io IO) SetIniFilename(value string) {
	s := scope()
	defer s.Exit()
	boundary.IOSetIniFilename(io.handle, s.String(value))
}

func (io IO) SetConfigFlags(flags int) {
	boundary.IOSetConfigFlags(io.handle, int32(flags))
}

func (io IO) GetConfigFlags() int {
	return int(boundary.IOConfigFlags(io.handle))
}

func (io IO) Framerate() float32 {
	return boundary.IOFramerate(io.handle)
}

// Metrics are the totals of the last rendered frame.
type Metrics struct {
	RenderVertices int
	RenderIndices  int
	ActiveWindows  int
}

func (io IO) Metrics() Metrics {
	return Metrics{
		RenderVertices: int(boundary.IOMetricsRenderVertices(io.handle)),
		RenderIndices:  int(boundary.IOMetricsRenderIndices(io.handle)),
		ActiveWindows:  int(boundary.IOMetricsActiveWindows(io.handle)),
	}
}
