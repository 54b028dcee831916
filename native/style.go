package native

import (
	"fmt"
	"math"
)

// Style variables, numbered as the engine's public enumeration.
const (
	StyleVarAlpha            int32 = 0
	StyleVarWindowPadding    int32 = 1
	StyleVarWindowRounding   int32 = 2
	StyleVarWindowBorderSize int32 = 3
	StyleVarWindowMinSize    int32 = 4
	StyleVarFramePadding     int32 = 10
	StyleVarFrameRounding    int32 = 11
	StyleVarFrameBorderSize  int32 = 12
	StyleVarItemSpacing      int32 = 13
	StyleVarItemInnerSpacing int32 = 14
	StyleVarIndentSpacing    int32 = 15
	StyleVarGrabMinSize      int32 = 18
)

// Style colors, numbered as the engine's public enumeration.
const (
	ColText int32 = iota
	ColTextDisabled
	ColWindowBg
	ColChildBg
	ColPopupBg
	ColBorder
	ColBorderShadow
	ColFrameBg
	ColFrameBgHovered
	ColFrameBgActive
	ColTitleBg
	ColTitleBgActive
	ColTitleBgCollapsed
	ColMenuBarBg
	ColScrollbarBg
	ColScrollbarGrab
	ColScrollbarGrabHovered
	ColScrollbarGrabActive
	ColCheckMark
	ColSliderGrab
	ColSliderGrabActive
	ColButton
	ColButtonHovered
	ColButtonActive
	ColHeader
	ColHeaderHovered
	ColHeaderActive
	ColSeparator
	ColSeparatorHovered
	ColSeparatorActive
	ColResizeGrip
	ColResizeGripHovered
	ColResizeGripActive
	ColTab
	ColTabHovered
	ColTabActive
	ColTabUnfocused
	ColTabUnfocusedActive
	ColPlotLines
	ColPlotLinesHovered
	ColPlotHistogram
	ColPlotHistogramHovered
	ColTextSelectedBg
	ColDragDropTarget
	ColNavHighlight
	ColNavWindowingHighlight
	ColNavWindowingDarkening
	ColModalWindowDarkening
	ColCount
)

type styleState struct {
	lib    *Library
	handle Handle

	alpha            float32
	windowPadding    Vec2
	windowRounding   float32
	windowBorderSize float32
	windowMinSize    Vec2
	framePadding     Vec2
	frameRounding    float32
	frameBorderSize  float32
	itemSpacing      Vec2
	itemInnerSpacing Vec2
	indentSpacing    float32
	grabMinSize      float32
	colors           [ColCount]Vec4
}

type styleVarBackup struct {
	idx   int32
	float float32
	vec2  Vec2
}

type colorBackup struct {
	idx   int32
	color Vec4
}

func rgba(r, g, b, a float32) Vec4 {
	return Vec4{X: r, Y: g, Z: b, W: a}
}

func newStyle(l *Library) *styleState {
	s := &styleState{
		lib:              l,
		alpha:            1,
		windowPadding:    Vec2{X: 8, Y: 8},
		windowBorderSize: 1,
		windowMinSize:    Vec2{X: 32, Y: 32},
		framePadding:     Vec2{X: 4, Y: 3},
		itemSpacing:      Vec2{X: 8, Y: 4},
		itemInnerSpacing: Vec2{X: 4, Y: 4},
		indentSpacing:    21,
		grabMinSize:      10,
	}
	s.styleColorsDark()
	s.handle = l.newObject(s)
	return s
}

func (s *styleState) release() {
	s.lib.dropObject(s.handle)
}

func (s *styleState) styleColorsDark() {
	for i := range s.colors {
		s.colors[i] = rgba(0.50, 0.50, 0.50, 1.00)
	}
	c := &s.colors
	c[ColText] = rgba(1.00, 1.00, 1.00, 1.00)
	c[ColTextDisabled] = rgba(0.50, 0.50, 0.50, 1.00)
	c[ColWindowBg] = rgba(0.06, 0.06, 0.06, 0.94)
	c[ColChildBg] = rgba(0.00, 0.00, 0.00, 0.00)
	c[ColPopupBg] = rgba(0.08, 0.08, 0.08, 0.94)
	c[ColBorder] = rgba(0.43, 0.43, 0.50, 0.50)
	c[ColBorderShadow] = rgba(0.00, 0.00, 0.00, 0.00)
	c[ColFrameBg] = rgba(0.16, 0.29, 0.48, 0.54)
	c[ColFrameBgHovered] = rgba(0.26, 0.59, 0.98, 0.40)
	c[ColFrameBgActive] = rgba(0.26, 0.59, 0.98, 0.67)
	c[ColTitleBg] = rgba(0.04, 0.04, 0.04, 1.00)
	c[ColTitleBgActive] = rgba(0.16, 0.29, 0.48, 1.00)
	c[ColTitleBgCollapsed] = rgba(0.00, 0.00, 0.00, 0.51)
	c[ColCheckMark] = rgba(0.26, 0.59, 0.98, 1.00)
	c[ColSliderGrab] = rgba(0.24, 0.52, 0.88, 1.00)
	c[ColSliderGrabActive] = rgba(0.26, 0.59, 0.98, 1.00)
	c[ColButton] = rgba(0.26, 0.59, 0.98, 0.40)
	c[ColButtonHovered] = rgba(0.26, 0.59, 0.98, 1.00)
	c[ColButtonActive] = rgba(0.06, 0.53, 0.98, 1.00)
	c[ColHeader] = rgba(0.26, 0.59, 0.98, 0.31)
	c[ColHeaderHovered] = rgba(0.26, 0.59, 0.98, 0.80)
	c[ColHeaderActive] = rgba(0.26, 0.59, 0.98, 1.00)
	c[ColTextSelectedBg] = rgba(0.26, 0.59, 0.98, 0.35)
	c[ColDragDropTarget] = rgba(1.00, 1.00, 0.00, 0.90)
	c[ColPlotLines] = rgba(0.61, 0.61, 0.61, 1.00)
	c[ColPlotHistogram] = rgba(0.90, 0.70, 0.00, 1.00)
}

// floatVar returns the address of a float style variable, or nil.
func (s *styleState) floatVar(idx int32) *float32 {
	switch idx {
	case StyleVarAlpha:
		return &s.alpha
	case StyleVarWindowRounding:
		return &s.windowRounding
	case StyleVarWindowBorderSize:
		return &s.windowBorderSize
	case StyleVarFrameRounding:
		return &s.frameRounding
	case StyleVarFrameBorderSize:
		return &s.frameBorderSize
	case StyleVarIndentSpacing:
		return &s.indentSpacing
	case StyleVarGrabMinSize:
		return &s.grabMinSize
	}
	return nil
}

// vec2Var returns the address of a two-component style variable, or nil.
func (s *styleState) vec2Var(idx int32) *Vec2 {
	switch idx {
	case StyleVarWindowPadding:
		return &s.windowPadding
	case StyleVarWindowMinSize:
		return &s.windowMinSize
	case StyleVarFramePadding:
		return &s.framePadding
	case StyleVarItemSpacing:
		return &s.itemSpacing
	case StyleVarItemInnerSpacing:
		return &s.itemInnerSpacing
	}
	return nil
}

func (l *Library) style(h Handle) *styleState {
	return deref[styleState](l, h)
}

// StyleVarFloat reads a float style variable.
func (l *Library) StyleVarFloat(h Handle, idx int32) float32 {
	p := l.style(h).floatVar(idx)
	l.assert(p != nil, "StyleVarFloat", fmt.Sprintf("style variable %d is not a float", idx))
	return *p
}

// StyleSetVarFloat writes a float style variable.
func (l *Library) StyleSetVarFloat(h Handle, idx int32, v float32) {
	p := l.style(h).floatVar(idx)
	l.assert(p != nil, "StyleSetVarFloat", fmt.Sprintf("style variable %d is not a float", idx))
	*p = v
}

// StyleVarVec2 reads a two-component style variable.
func (l *Library) StyleVarVec2(h Handle, idx int32) Vec2 {
	p := l.style(h).vec2Var(idx)
	l.assert(p != nil, "StyleVarVec2", fmt.Sprintf("style variable %d is not a Vec2", idx))
	return *p
}

// StyleSetVarVec2 writes a two-component style variable.
func (l *Library) StyleSetVarVec2(h Handle, idx int32, v Vec2) {
	p := l.style(h).vec2Var(idx)
	l.assert(p != nil, "StyleSetVarVec2", fmt.Sprintf("style variable %d is not a Vec2", idx))
	*p = v
}

// StyleColor returns a style color.
func (l *Library) StyleColor(h Handle, idx int32) Vec4 {
	l.assert(idx >= 0 && idx < ColCount, "StyleColor", "color index out of range")
	return l.style(h).colors[idx]
}

// StyleSetColor sets a style color.
func (l *Library) StyleSetColor(h Handle, idx int32, color Vec4) {
	l.assert(idx >= 0 && idx < ColCount, "StyleSetColor", "color index out of range")
	l.style(h).colors[idx] = color
}

// StyleScaleAllSizes multiplies every size in the style by scale.
func (l *Library) StyleScaleAllSizes(h Handle, scale float32) {
	s := l.style(h)
	floor := func(v float32) float32 { return float32(math.Floor(float64(v))) }
	scale2 := func(v Vec2) Vec2 { return Vec2{X: floor(v.X * scale), Y: floor(v.Y * scale)} }
	s.windowPadding = scale2(s.windowPadding)
	s.windowRounding = floor(s.windowRounding * scale)
	s.windowMinSize = scale2(s.windowMinSize)
	s.framePadding = scale2(s.framePadding)
	s.frameRounding = floor(s.frameRounding * scale)
	s.itemSpacing = scale2(s.itemSpacing)
	s.itemInnerSpacing = scale2(s.itemInnerSpacing)
	s.indentSpacing = floor(s.indentSpacing * scale)
	s.grabMinSize = floor(s.grabMinSize * scale)
}

// PushStyleVarFloat temporarily overrides a float style variable.
func (l *Library) PushStyleVarFloat(idx int32, v float32) {
	c := l.ctx()
	p := c.style.floatVar(idx)
	l.assert(p != nil, "PushStyleVar", "called the float variant but the variable is not a float")
	c.styleVarStack = append(c.styleVarStack, styleVarBackup{idx: idx, float: *p})
	*p = v
}

// PushStyleVarVec2 temporarily overrides a two-component style variable.
func (l *Library) PushStyleVarVec2(idx int32, v Vec2) {
	c := l.ctx()
	p := c.style.vec2Var(idx)
	l.assert(p != nil, "PushStyleVar", "called the Vec2 variant but the variable is not a Vec2")
	c.styleVarStack = append(c.styleVarStack, styleVarBackup{idx: idx, vec2: *p})
	*p = v
}

// PopStyleVar restores count style variables.
func (l *Library) PopStyleVar(count int32) {
	c := l.ctx()
	l.assert(count >= 0 && int(count) <= len(c.styleVarStack), "PopStyleVar",
		"calling PopStyleVar() too many times")
	for ; count > 0; count-- {
		b := c.styleVarStack[len(c.styleVarStack)-1]
		c.styleVarStack = c.styleVarStack[:len(c.styleVarStack)-1]
		if p := c.style.floatVar(b.idx); p != nil {
			*p = b.float
		} else if p := c.style.vec2Var(b.idx); p != nil {
			*p = b.vec2
		}
	}
}

// PushStyleColor temporarily overrides a style color.
func (l *Library) PushStyleColor(idx int32, color Vec4) {
	c := l.ctx()
	l.assert(idx >= 0 && idx < ColCount, "PushStyleColor", "color index out of range")
	c.colorStack = append(c.colorStack, colorBackup{idx: idx, color: c.style.colors[idx]})
	c.style.colors[idx] = color
}

// PopStyleColor restores count style colors.
func (l *Library) PopStyleColor(count int32) {
	c := l.ctx()
	l.assert(count >= 0 && int(count) <= len(c.colorStack), "PopStyleColor",
		"calling PopStyleColor() too many times")
	for ; count > 0; count-- {
		b := c.colorStack[len(c.colorStack)-1]
		c.colorStack = c.colorStack[:len(c.colorStack)-1]
		c.style.colors[b.idx] = b.color
	}
}

func saturate(v float32) float32 {
	return min(max(v, 0), 1)
}

// ColorConvertFloat4ToU32 packs an RGBA color as the engine's 32-bit ABGR value.
func ColorConvertFloat4ToU32(v Vec4) uint32 {
	r := uint32(saturate(v.X)*255 + 0.5)
	g := uint32(saturate(v.Y)*255 + 0.5)
	b := uint32(saturate(v.Z)*255 + 0.5)
	a := uint32(saturate(v.W)*255 + 0.5)
	return a<<24 | b<<16 | g<<8 | r
}

// ColorConvertU32ToFloat4 unpacks a 32-bit ABGR color.
func ColorConvertU32ToFloat4(c uint32) Vec4 {
	const s = 1.0 / 255.0
	return Vec4{
		X: float32(c&0xFF) * s,
		Y: float32(c>>8&0xFF) * s,
		Z: float32(c>>16&0xFF) * s,
		W: float32(c>>24&0xFF) * s,
	}
}

// colorU32 returns a style color with the global alpha applied.
func (c *uiContext) colorU32(idx int32) uint32 {
	col := c.style.colors[idx]
	col.W *= c.style.alpha
	return ColorConvertFloat4ToU32(col)
}
