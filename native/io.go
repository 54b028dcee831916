package native

import (
	"math"
	"unicode/utf8"

	"github.com/creachadair/mds/queue"
)

// Mouse buttons tracked by IO.
const mouseButtonCount = 5

// Keys the engine reacts to. The host maps its own key codes onto them.
const (
	KeyTab int32 = iota
	KeyLeftArrow
	KeyRightArrow
	KeyUpArrow
	KeyDownArrow
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyEscape
	KeyCount
)

const keysDownCount = 512

type ioState struct {
	lib    *Library
	handle Handle
	ctx    *uiContext

	displaySize     Vec2
	deltaTime       float32
	fontGlobalScale float32
	configFlags     int32
	mouseDrawCursor bool

	mousePos       Vec2
	mousePosPrev   Vec2
	mouseDelta     Vec2
	mouseDown      [mouseButtonCount]bool
	mouseDownPrev  [mouseButtonCount]bool
	mouseClicked   [mouseButtonCount]bool
	mouseReleased  [mouseButtonCount]bool
	mouseClickPos  [mouseButtonCount]Vec2
	mouseWheel     float32
	mouseWheelH    float32
	keysDown       [keysDownCount]bool
	keysDownPrev   [keysDownCount]bool
	keyMap         [KeyCount]int32
	keyCtrl        bool
	keyShift       bool
	keyAlt         bool
	keySuper       bool
	pendingChars   queue.Queue[rune]
	inputChars     []rune
	iniFilename    string

	wantCaptureMouse    bool
	wantCaptureKeyboard bool
	wantTextInput       bool
	framerate           float32

	metricsRenderVertices int32
	metricsRenderIndices  int32
	metricsActiveWindows  int32
}

func newIO(l *Library, c *uiContext) *ioState {
	io := &ioState{
		lib:             l,
		ctx:             c,
		displaySize:     Vec2{X: -1, Y: -1},
		deltaTime:       1.0 / 60.0,
		fontGlobalScale: 1,
		mousePos:        Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32},
		mousePosPrev:    Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32},
		iniFilename:     "imgui.ini",
	}
	for i := range io.keyMap {
		io.keyMap[i] = -1
	}
	io.handle = l.newObject(io)
	return io
}

func (io *ioState) release() {
	io.pendingChars.Clear()
	io.lib.dropObject(io.handle)
}

func validMousePos(p Vec2) bool {
	return p.X >= -256000 && p.Y >= -256000
}

// beginFrame latches input for the new frame.
func (io *ioState) beginFrame() {
	if validMousePos(io.mousePos) && validMousePos(io.mousePosPrev) {
		io.mouseDelta = io.mousePos.Minus(io.mousePosPrev)
	} else {
		io.mouseDelta = Vec2{}
	}
	io.mousePosPrev = io.mousePos

	for i := range io.mouseDown {
		io.mouseClicked[i] = io.mouseDown[i] && !io.mouseDownPrev[i]
		io.mouseReleased[i] = !io.mouseDown[i] && io.mouseDownPrev[i]
		if io.mouseClicked[i] {
			io.mouseClickPos[i] = io.mousePos
		}
		io.mouseDownPrev[i] = io.mouseDown[i]
	}

	io.inputChars = io.inputChars[:0]
	for io.pendingChars.Len() > 0 {
		r, _ := io.pendingChars.Pop()
		io.inputChars = append(io.inputChars, r)
	}
}

// endFrame clears per-frame input.
func (io *ioState) endFrame() {
	io.mouseWheel = 0
	io.mouseWheelH = 0
	io.keysDownPrev = io.keysDown
}

func (io *ioState) keyPressed(key int32) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	native := io.keyMap[key]
	if native < 0 || native >= keysDownCount {
		return false
	}
	return io.keysDown[native] && !io.keysDownPrev[native]
}

func (io *ioState) mouseDragDistance(button int) float32 {
	if !io.mouseDown[button] {
		return 0
	}
	d := io.mousePos.Minus(io.mouseClickPos[button])
	return float32(math.Sqrt(float64(d.X*d.X + d.Y*d.Y)))
}

func (l *Library) io(h Handle) *ioState {
	return deref[ioState](l, h)
}

// IOSetDisplaySize sets the display size in pixels.
func (l *Library) IOSetDisplaySize(h Handle, size Vec2) {
	l.io(h).displaySize = size
}

// IODisplaySize returns the display size in pixels.
func (l *Library) IODisplaySize(h Handle) Vec2 {
	return l.io(h).displaySize
}

// IOSetDeltaTime sets the time elapsed since the previous frame, in seconds.
func (l *Library) IOSetDeltaTime(h Handle, seconds float32) {
	l.io(h).deltaTime = seconds
}

// IOSetFontGlobalScale scales every font.
func (l *Library) IOSetFontGlobalScale(h Handle, scale float32) {
	l.io(h).fontGlobalScale = scale
}

// IOSetMousePosition sets the mouse position in pixels.
func (l *Library) IOSetMousePosition(h Handle, pos Vec2) {
	l.io(h).mousePos = pos
}

// IOMouseDelta returns how far the mouse moved during the last frame.
func (l *Library) IOMouseDelta(h Handle) Vec2 {
	return l.io(h).mouseDelta
}

// IOSetMouseButtonDown sets the state of one mouse button.
func (l *Library) IOSetMouseButtonDown(h Handle, button int32, down bool) {
	io := l.io(h)
	if button < 0 || button >= mouseButtonCount {
		return
	}
	io.mouseDown[button] = down
}

// IOAddMouseWheelDelta accumulates wheel movement for the next frame.
func (l *Library) IOAddMouseWheelDelta(h Handle, horizontal, vertical float32) {
	io := l.io(h)
	io.mouseWheelH += horizontal
	io.mouseWheel += vertical
}

// IOSetMouseDrawCursor asks the engine to draw the cursor itself.
func (l *Library) IOSetMouseDrawCursor(h Handle, draw bool) {
	l.io(h).mouseDrawCursor = draw
}

// IOMouseDrawCursor reports whether the engine draws the cursor.
func (l *Library) IOMouseDrawCursor(h Handle) bool {
	return l.io(h).mouseDrawCursor
}

// IOKeyPress marks a native key as pressed.
func (l *Library) IOKeyPress(h Handle, key int32) {
	if key >= 0 && key < keysDownCount {
		l.io(h).keysDown[key] = true
	}
}

// IOKeyRelease marks a native key as released.
func (l *Library) IOKeyRelease(h Handle, key int32) {
	if key >= 0 && key < keysDownCount {
		l.io(h).keysDown[key] = false
	}
}

// IOKeyMap maps an engine key onto a native key code.
func (l *Library) IOKeyMap(h Handle, key, native int32) {
	if key >= 0 && key < KeyCount {
		l.io(h).keyMap[key] = native
	}
}

// IOSetModifiers sets the modifier key states.
func (l *Library) IOSetModifiers(h Handle, ctrl, shift, alt, super bool) {
	io := l.io(h)
	io.keyCtrl, io.keyShift, io.keyAlt, io.keySuper = ctrl, shift, alt, super
}

// IOAddInputCharacter queues one character for the next frame.
func (l *Library) IOAddInputCharacter(h Handle, r rune) {
	if r == 0 || !utf8.ValidRune(r) {
		return
	}
	l.io(h).pendingChars.Add(r)
}

// IOAddInputCharactersUTF8 queues every character of s.
func (l *Library) IOAddInputCharactersUTF8(h Handle, s string) {
	io := l.io(h)
	for _, r := range s {
		if r != 0 && r != utf8.RuneError {
			io.pendingChars.Add(r)
		}
	}
}

// IOSetIniFilename sets the settings file name. An empty name disables it.
func (l *Library) IOSetIniFilename(h Handle, name string) {
	l.io(h).iniFilename = name
}

// IOSetConfigFlags sets the configuration flags.
func (l *Library) IOSetConfigFlags(h Handle, flags int32) {
	l.io(h).configFlags = flags
}

// IOConfigFlags returns the configuration flags.
func (l *Library) IOConfigFlags(h Handle) int32 {
	return l.io(h).configFlags
}

// IOFonts returns the font atlas used by the context owning this IO.
func (l *Library) IOFonts(h Handle) Handle {
	return l.io(h).ctx.atlas.handle
}

// IOWantCaptureMouse reports whether the engine wants mouse input.
func (l *Library) IOWantCaptureMouse(h Handle) bool {
	return l.io(h).wantCaptureMouse
}

// IOWantCaptureKeyboard reports whether the engine wants keyboard input.
func (l *Library) IOWantCaptureKeyboard(h Handle) bool {
	return l.io(h).wantCaptureKeyboard
}

// IOWantTextInput reports whether a text field is being edited.
func (l *Library) IOWantTextInput(h Handle) bool {
	return l.io(h).wantTextInput
}

// IOFramerate returns the frame rate averaged over the last 120 frames.
func (l *Library) IOFramerate(h Handle) float32 {
	return l.io(h).framerate
}

// IOMetricsRenderVertices returns the vertex count of the last rendered frame.
func (l *Library) IOMetricsRenderVertices(h Handle) int32 {
	return l.io(h).metricsRenderVertices
}

// IOMetricsRenderIndices returns the index count of the last rendered frame.
func (l *Library) IOMetricsRenderIndices(h Handle) int32 {
	return l.io(h).metricsRenderIndices
}

// IOMetricsActiveWindows returns the number of windows rendered in the last frame.
func (l *Library) IOMetricsActiveWindows(h Handle) int32 {
	return l.io(h).metricsActiveWindows
}
