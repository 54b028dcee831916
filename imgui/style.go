package imgui

import (
	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/boundary"
	"github.com/wippyai/imgui-bridge/native"
)

// StyleVarID identifies a style variable.
type StyleVarID int32

const (
	StyleVarAlpha            = StyleVarID(native.StyleVarAlpha)
	StyleVarWindowPadding    = StyleVarID(native.StyleVarWindowPadding)
	StyleVarWindowRounding   = StyleVarID(native.StyleVarWindowRounding)
	StyleVarWindowBorderSize = StyleVarID(native.StyleVarWindowBorderSize)
	StyleVarWindowMinSize    = StyleVarID(native.StyleVarWindowMinSize)
	StyleVarFramePadding     = StyleVarID(native.StyleVarFramePadding)
	StyleVarFrameRounding    = StyleVarID(native.StyleVarFrameRounding)
	StyleVarFrameBorderSize  = StyleVarID(native.StyleVarFrameBorderSize)
	StyleVarItemSpacing      = StyleVarID(native.StyleVarItemSpacing)
	StyleVarItemInnerSpacing = StyleVarID(native.StyleVarItemInnerSpacing)
	StyleVarIndentSpacing    = StyleVarID(native.StyleVarIndentSpacing)
	StyleVarGrabMinSize      = StyleVarID(native.StyleVarGrabMinSize)
)

// StyleColorID identifies a style color.
type StyleColorID int32

const (
	StyleColorText              = StyleColorID(native.ColText)
	StyleColorTextDisabled      = StyleColorID(native.ColTextDisabled)
	StyleColorWindowBg          = StyleColorID(native.ColWindowBg)
	StyleColorChildBg           = StyleColorID(native.ColChildBg)
	StyleColorBorder            = StyleColorID(native.ColBorder)
	StyleColorFrameBg           = StyleColorID(native.ColFrameBg)
	StyleColorFrameBgHovered    = StyleColorID(native.ColFrameBgHovered)
	StyleColorFrameBgActive     = StyleColorID(native.ColFrameBgActive)
	StyleColorTitleBg           = StyleColorID(native.ColTitleBg)
	StyleColorTitleBgActive     = StyleColorID(native.ColTitleBgActive)
	StyleColorCheckMark         = StyleColorID(native.ColCheckMark)
	StyleColorSliderGrab        = StyleColorID(native.ColSliderGrab)
	StyleColorSliderGrabActive  = StyleColorID(native.ColSliderGrabActive)
	StyleColorButton            = StyleColorID(native.ColButton)
	StyleColorButtonHovered     = StyleColorID(native.ColButtonHovered)
	StyleColorButtonActive      = StyleColorID(native.ColButtonActive)
	StyleColorHeader            = StyleColorID(native.ColHeader)
	StyleColorHeaderHovered     = StyleColorID(native.ColHeaderHovered)
	StyleColorHeaderActive      = StyleColorID(native.ColHeaderActive)
	StyleColorSeparator         = StyleColorID(native.ColSeparator)
	StyleColorPlotHistogram     = StyleColorID(native.ColPlotHistogram)
	StyleColorTextSelectedBg    = StyleColorID(native.ColTextSelectedBg)
	StyleColorDragDropTarget    = StyleColorID(native.ColDragDropTarget)
	StyleColorModalWindowDarken = StyleColorID(native.ColModalWindowDarkening)
)

// Style describes the overall graphical representation of a context.
type Style imguibridge.Handle

func (style Style) handle() imguibridge.Handle {
	return imguibridge.Handle(style)
}

// CurrentStyle returns the style of the current context.
func CurrentStyle() Style {
	return Style(boundary.GetStyle())
}

// ItemSpacing is the horizontal and vertical spacing between widgets.
func (style Style) ItemSpacing() Vec2 {
	return style.VarVec2(StyleVarItemSpacing)
}

// ItemInnerSpacing is the spacing between the elements of a composed widget.
func (style Style) ItemInnerSpacing() Vec2 {
	return style.VarVec2(StyleVarItemInnerSpacing)
}

// WindowPadding is the padding within a window.
func (style Style) WindowPadding() Vec2 {
	return style.VarVec2(StyleVarWindowPadding)
}

// FramePadding is the padding within a framed rectangle.
func (style Style) FramePadding() Vec2 {
	return style.VarVec2(StyleVarFramePadding)
}

func (style Style) VarFloat(id StyleVarID) float32 {
	return boundary.StyleVarFloat(style.handle(), int32(id))
}

func (style Style) SetVarFloat(id StyleVarID, value float32) {
	boundary.StyleSetVarFloat(style.handle(), int32(id), value)
}

func (style Style) VarVec2(id StyleVarID) Vec2 {
	return readVec2(func(out imguibridge.Ptr) { boundary.StyleVarVec2(style.handle(), int32(id), out) })
}

func (style Style) SetVarVec2(id StyleVarID, value Vec2) {
	s := scope()
	defer s.Exit()
	boundary.StyleSetVarVec2(style.handle(), int32(id), vec2Ptr(s, value))
}

// SetColor sets a color value of the UI style.
func (style Style) SetColor(id StyleColorID, value Vec4) {
	s := scope()
	defer s.Exit()
	boundary.StyleSetColor(style.handle(), int32(id), vec4Ptr(s, value))
}

// GetColor returns the color of the given style.
func (style Style) GetColor(id StyleColorID) Vec4 {
	return readVec4(func(out imguibridge.Ptr) { boundary.StyleColor(style.handle(), int32(id), out) })
}

// ScaleAllSizes scales all sizes in the style.
func (style Style) ScaleAllSizes(scale float32) {
	boundary.StyleScaleAllSizes(style.handle(), scale)
}

// PushStyleVarFloat temporarily overrides a float style variable. The value
// is restored by PopStyleVar.
func PushStyleVarFloat(id StyleVarID, value float32) {
	boundary.PushStyleVarFloat(int32(id), value)
}

// PushStyleVarVec2 temporarily overrides a vector style variable.
func PushStyleVarVec2(id StyleVarID, value Vec2) {
	s := scope()
	defer s.Exit()
	boundary.PushStyleVarVec2(int32(id), vec2Ptr(s, value))
}

// PopStyleVar calls PopStyleVarV(1).
func PopStyleVar() {
	PopStyleVarV(1)
}

// PopStyleVarV reverts the given number of style variable overrides.
func PopStyleVarV(count int) {
	boundary.PopStyleVar(int32(count))
}

// PushStyleColor temporarily overrides a style color.
func PushStyleColor(id StyleColorID, color Vec4) {
	s := scope()
	defer s.Exit()
	boundary.PushStyleColor(int32(id), vec4Ptr(s, color))
}

// PopStyleColor calls PopStyleColorV(1).
func PopStyleColor() {
	PopStyleColorV(1)
}

// PopStyleColorV reverts the given number of color overrides.
func PopStyleColorV(count int) {
	boundary.PopStyleColor(int32(count))
}

// PushFont makes font current. Pass the zero Font for the default.
func PushFont(font Font) {
	boundary.PushFont(font.handle())
}

func PopFont() {
	boundary.PopFont()
}

// PackedColorFromVec4 packs a color into its 32-bit ABGR form.
func PackedColorFromVec4(color Vec4) uint32 {
	s := scope()
	defer s.Exit()
	return boundary.ColorConvertFloat4ToU32(vec4Ptr(s, color))
}

// Vec4FromPackedColor unpacks a 32-bit ABGR color.
func Vec4FromPackedColor(color uint32) Vec4 {
	return readVec4(func(out imguibridge.Ptr) { boundary.ColorConvertU32ToFloat4(color, out) })
}
