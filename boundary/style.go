package boundary

import "github.com/wippyai/imgui-bridge/native"

func StyleVarFloat(style Handle, idx int32) float32 {
	return lib().StyleVarFloat(style, idx)
}

func StyleSetVarFloat(style Handle, idx int32, v float32) {
	lib().StyleSetVarFloat(style, idx, v)
}

func StyleVarVec2(style Handle, idx int32, out Ptr) {
	mem().StoreVec2(out, lib().StyleVarVec2(style, idx))
}

func StyleSetVarVec2(style Handle, idx int32, v Ptr) {
	lib().StyleSetVarVec2(style, idx, mem().LoadVec2(v))
}

func StyleColor(style Handle, idx int32, out Ptr) {
	mem().StoreVec4(out, lib().StyleColor(style, idx))
}

func StyleSetColor(style Handle, idx int32, color Ptr) {
	lib().StyleSetColor(style, idx, mem().LoadVec4(color))
}

func StyleScaleAllSizes(style Handle, scale float32) {
	lib().StyleScaleAllSizes(style, scale)
}

func PushStyleVarFloat(idx int32, v float32) {
	lib().PushStyleVarFloat(idx, v)
}

func PushStyleVarVec2(idx int32, v Ptr) {
	lib().PushStyleVarVec2(idx, mem().LoadVec2(v))
}

// PopStyleVar pops count style variables. Popping more than were pushed is
// an engine assertion.
func PopStyleVar(count int32) {
	lib().PopStyleVar(count)
}

func PushStyleColor(idx int32, color Ptr) {
	lib().PushStyleColor(idx, mem().LoadVec4(color))
}

func PopStyleColor(count int32) {
	lib().PopStyleColor(count)
}

func PushFont(font Handle) {
	lib().PushFont(font)
}

func PopFont() {
	lib().PopFont()
}

// ColorConvertFloat4ToU32 packs a native vec4 color into ABGR bytes.
func ColorConvertFloat4ToU32(color Ptr) uint32 {
	return native.ColorConvertFloat4ToU32(mem().LoadVec4(color))
}

func ColorConvertU32ToFloat4(color uint32, out Ptr) {
	mem().StoreVec4(out, native.ColorConvertU32ToFloat4(color))
}
