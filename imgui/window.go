package imgui

import (
	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/boundary"
	"github.com/wippyai/imgui-bridge/transfer"
)

// Begin calls BeginV(id, nil, 0).
func Begin(id string) bool {
	return BeginV(id, nil, 0)
}

// BeginV pushes a new window to the stack and starts appending to it.
//
// When open is not nil, a close button is shown and *open is set to false
// when it is clicked. Passing a pointer to false skips the window.
//
// The return value tells whether the window is visible; End must be called
// either way.
func BeginV(id string, open *bool, flags int32) bool {
	s := scope()
	defer s.Exit()
	return isTrue(boundary.Begin(s.String(id), transfer.Wrap(s, transfer.Bool, open), flags))
}

// End closes the scope for the previously opened window.
func End() {
	boundary.End()
}

// BeginChild calls BeginChildV(id, Vec2{}, false, 0).
func BeginChild(id string) bool {
	return BeginChildV(id, Vec2{}, false, 0)
}

// BeginChildV starts a self-contained scrolling region inside the current
// window. A zero size component uses the remaining space; a negative one
// leaves that much space free. EndChild must always be called.
func BeginChildV(id string, size Vec2, border bool, flags int32) bool {
	s := scope()
	defer s.Exit()
	return isTrue(boundary.BeginChild(s.String(id), vec2Ptr(s, size), imguibridge.BoolOf(border), flags))
}

func EndChild() {
	boundary.EndChild()
}

// SetNextWindowPos calls SetNextWindowPosV(pos, 0, Vec2{}).
func SetNextWindowPos(pos Vec2) {
	SetNextWindowPosV(pos, 0, Vec2{})
}

// SetNextWindowPosV sets the position of the next window, with pivot the
// relative point of the window placed at pos.
func SetNextWindowPosV(pos Vec2, cond int32, pivot Vec2) {
	s := scope()
	defer s.Exit()
	boundary.SetNextWindowPos(vec2Ptr(s, pos), cond, vec2Ptr(s, pivot))
}

// SetNextWindowSize calls SetNextWindowSizeV(size, 0).
func SetNextWindowSize(size Vec2) {
	SetNextWindowSizeV(size, 0)
}

// SetNextWindowSizeV sets the size of the next window. A zero component is
// fitted to the content.
func SetNextWindowSizeV(size Vec2, cond int32) {
	s := scope()
	defer s.Exit()
	boundary.SetNextWindowSize(vec2Ptr(s, size), cond)
}

// WindowDrawList returns the draw list of the current window.
func WindowDrawList() DrawList {
	return DrawList(boundary.GetWindowDrawList())
}

func WindowPos() Vec2 {
	return readVec2(boundary.GetWindowPos)
}

func WindowSize() Vec2 {
	return readVec2(boundary.GetWindowSize)
}

// ContentRegionAvail returns the space left in the current window.
func ContentRegionAvail() Vec2 {
	return readVec2(boundary.GetContentRegionAvail)
}

// CursorPos returns the layout cursor in window coordinates.
func CursorPos() Vec2 {
	return readVec2(boundary.GetCursorPos)
}

func SetCursorPos(pos Vec2) {
	s := scope()
	defer s.Exit()
	boundary.SetCursorPos(vec2Ptr(s, pos))
}

func CursorPosY() float32 {
	return boundary.GetCursorPosY()
}

func SetCursorPosY(y float32) {
	boundary.SetCursorPosY(y)
}

// CursorScreenPos returns the layout cursor in display coordinates.
func CursorScreenPos() Vec2 {
	return readVec2(boundary.GetCursorScreenPos)
}

func SetCursorScreenPos(pos Vec2) {
	s := scope()
	defer s.Exit()
	boundary.SetCursorScreenPos(vec2Ptr(s, pos))
}

// ScrollY returns the vertical scroll offset, between 0 and ScrollMaxY.
func ScrollY() float32 {
	return boundary.GetScrollY()
}

func ScrollMaxY() float32 {
	return boundary.GetScrollMaxY()
}

func SetScrollY(y float32) {
	boundary.SetScrollY(y)
}

// TextLineHeight returns the font size of the current font.
func TextLineHeight() float32 {
	return boundary.GetTextLineHeight()
}

// TextLineHeightWithSpacing returns the distance between two lines of text.
func TextLineHeightWithSpacing() float32 {
	return boundary.GetTextLineHeightWithSpacing()
}

// FrameHeight returns the height of a framed widget.
func FrameHeight() float32 {
	return boundary.GetFrameHeight()
}

// SameLine calls SameLineV(0, -1).
func SameLine() {
	SameLineV(0, -1)
}

// SameLineV places the next widget next to the previous one. A negative
// spacing uses the style spacing.
func SameLineV(offsetFromStartX, spacing float32) {
	boundary.SameLine(offsetFromStartX, spacing)
}

// PushID pushes id into the identifier stack of the current window.
func PushID(id string) {
	s := scope()
	defer s.Exit()
	boundary.PushID(s.String(id))
}

func PopID() {
	boundary.PopID()
}

// IsItemHovered reports whether the last item is under the mouse.
func IsItemHovered() bool {
	return isTrue(boundary.IsItemHovered())
}

func IsItemActive() bool {
	return isTrue(boundary.IsItemActive())
}

// IsItemClipped reports whether the last item was outside the clip
// rectangle and not drawn.
func IsItemClipped() bool {
	return isTrue(boundary.IsItemClipped())
}
