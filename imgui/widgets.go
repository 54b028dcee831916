package imgui

import (
	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/boundary"
	"github.com/wippyai/imgui-bridge/transfer"
)

// inputTextSlack is the room left for typing beyond the current text.
const inputTextSlack = 256

// CalcTextSize calls CalcTextSizeV(text, false).
func CalcTextSize(text string) Vec2 {
	return CalcTextSizeV(text, false)
}

// CalcTextSizeV returns the size of text rendered with the current font.
// When hideAfterDoubleHash is set, everything from "##" on is ignored.
func CalcTextSizeV(text string, hideAfterDoubleHash bool) Vec2 {
	s := scope()
	defer s.Exit()
	return readVec2(func(out imguibridge.Ptr) {
		boundary.CalcTextSize(out, s.String(text), imguibridge.BoolOf(hideAfterDoubleHash))
	})
}

// Text adds formatted text.
func Text(text string) {
	s := scope()
	defer s.Exit()
	boundary.Text(s.String(text))
}

// Dummy adds an empty item of the given size.
func Dummy(size Vec2) {
	s := scope()
	defer s.Exit()
	boundary.Dummy(vec2Ptr(s, size))
}

func Separator() {
	boundary.Separator()
}

// Button calls ButtonV(label, Vec2{}).
func Button(label string) bool {
	return ButtonV(label, Vec2{})
}

// ButtonV returns true when the button was clicked. A zero size component
// is fitted to the label.
func ButtonV(label string, size Vec2) bool {
	s := scope()
	defer s.Exit()
	return isTrue(boundary.Button(s.String(label), vec2Ptr(s, size)))
}

// Checkbox toggles *selected when clicked and returns true on change.
func Checkbox(label string, selected *bool) bool {
	s := scope()
	defer s.Exit()
	return isTrue(boundary.Checkbox(s.String(label), transfer.Wrap(s, transfer.Bool, selected)))
}

// SliderFloat calls SliderFloatV(label, value, min, max, "%.3f").
func SliderFloat(label string, value *float32, min, max float32) bool {
	return SliderFloatV(label, value, min, max, "%.3f")
}

// SliderFloatV edits *value within [min, max].
func SliderFloatV(label string, value *float32, min, max float32, format string) bool {
	s := scope()
	defer s.Exit()
	return isTrue(boundary.SliderFloat(s.String(label), transfer.Wrap(s, transfer.Float32, value),
		min, max, s.String(format)))
}

// InputInt calls InputIntV(label, value, 1).
func InputInt(label string, value *int32) bool {
	return InputIntV(label, value, 1)
}

// InputIntV edits *value with step buttons. A zero step hides them.
func InputIntV(label string, value *int32, step int) bool {
	s := scope()
	defer s.Exit()
	return isTrue(boundary.InputInt(s.String(label), transfer.Wrap(s, transfer.Int32, value), int32(step)))
}

// DragFloat2 calls DragFloat2V(label, value, 1, 0, 0, "%.3f").
func DragFloat2(label string, value *Vec2) bool {
	return DragFloat2V(label, value, 1, 0, 0, "%.3f")
}

// DragFloat2V edits *value by dragging. Equal min and max mean unbounded.
func DragFloat2V(label string, value *Vec2, speed, min, max float32, format string) bool {
	s := scope()
	defer s.Exit()
	return isTrue(boundary.DragFloat2(s.String(label), transfer.Wrap(s, transfer.Vec2, value),
		speed, min, max, s.String(format)))
}

// ColorEdit4 calls ColorEdit4V(label, col, 0).
func ColorEdit4(label string, col *Vec4) bool {
	return ColorEdit4V(label, col, 0)
}

// ColorEdit4V edits the RGBA color *col.
func ColorEdit4V(label string, col *Vec4, flags int32) bool {
	s := scope()
	defer s.Exit()
	return isTrue(boundary.ColorEdit4(s.String(label), transfer.Wrap(s, transfer.Vec4, col), flags))
}

// Selectable calls SelectableV(label, false, 0, Vec2{}).
func Selectable(label string) bool {
	return SelectableV(label, false, 0, Vec2{})
}

// SelectableV returns true when the row was clicked. selected only controls
// the highlight; tracking the selection is up to the caller.
func SelectableV(label string, selected bool, flags int32, size Vec2) bool {
	s := scope()
	defer s.Exit()
	return isTrue(boundary.Selectable(s.String(label), transfer.Wrap(s, transfer.Bool, &selected),
		flags, vec2Ptr(s, size)))
}

// InputText edits *text and returns true when it changed this frame.
func InputText(label string, text *string) bool {
	buf := transfer.NewStringBuffer(nil, *text)
	defer buf.Free()
	if need := uint32(len(*text)) + inputTextSlack; buf.Size() < need {
		buf.Resize(need)
	}
	s := scope()
	defer s.Exit()
	changed := isTrue(boundary.InputText(s.String(label), buf.Ptr(), buf.Size()))
	if changed {
		*text = buf.String()
	}
	return changed
}
