package native

import "math"

// fontConfig carries per-font build options. It is an explicitly allocated
// object: the caller releases it with DeleteFontConfig.
type fontConfig struct {
	lib    *Library
	handle Handle

	sizePixels         float32
	oversampleH        int32
	oversampleV        int32
	pixelSnapH         bool
	glyphExtraSpacing  Vec2
	glyphOffset        Vec2
	glyphMinAdvanceX   float32
	glyphMaxAdvanceX   float32
	mergeMode          bool
	rasterizerMultiply float32
	name               string
}

func defaultFontConfig() fontConfig {
	return fontConfig{
		oversampleH:        3,
		oversampleV:        1,
		glyphMaxAdvanceX:   math.MaxFloat32,
		rasterizerMultiply: 1,
	}
}

func (l *Library) fontConfig(h Handle) *fontConfig {
	return deref[fontConfig](l, h)
}

// configOrDefault copies the options behind h, or the defaults when h is 0.
func (l *Library) configOrDefault(h Handle) fontConfig {
	if h == 0 {
		return defaultFontConfig()
	}
	cfg := *l.fontConfig(h)
	cfg.lib, cfg.handle = nil, 0
	return cfg
}

// NewFontConfig allocates a font config with default options.
func (l *Library) NewFontConfig() Handle {
	cfg := defaultFontConfig()
	cfg.lib = l
	p := &cfg
	p.handle = l.newObject(p)
	return p.handle
}

// DeleteFontConfig releases a font config.
func (l *Library) DeleteFontConfig(h Handle) {
	l.fontConfig(h)
	l.dropObject(h)
}

// FontConfigSetSize sets the font size in pixels.
func (l *Library) FontConfigSetSize(h Handle, sizePixels float32) {
	l.fontConfig(h).sizePixels = sizePixels
}

// FontConfigSize returns the font size in pixels.
func (l *Library) FontConfigSize(h Handle) float32 {
	return l.fontConfig(h).sizePixels
}

// FontConfigSetOversampleH sets horizontal oversampling.
func (l *Library) FontConfigSetOversampleH(h Handle, value int32) {
	l.fontConfig(h).oversampleH = value
}

// FontConfigSetOversampleV sets vertical oversampling.
func (l *Library) FontConfigSetOversampleV(h Handle, value int32) {
	l.fontConfig(h).oversampleV = value
}

// FontConfigSetPixelSnapH aligns glyph advances to whole pixels.
func (l *Library) FontConfigSetPixelSnapH(h Handle, value bool) {
	l.fontConfig(h).pixelSnapH = value
}

// FontConfigSetGlyphMinAdvanceX sets the minimum glyph advance.
func (l *Library) FontConfigSetGlyphMinAdvanceX(h Handle, value float32) {
	l.fontConfig(h).glyphMinAdvanceX = value
}

// FontConfigSetGlyphMaxAdvanceX sets the maximum glyph advance.
func (l *Library) FontConfigSetGlyphMaxAdvanceX(h Handle, value float32) {
	l.fontConfig(h).glyphMaxAdvanceX = value
}

// FontConfigSetGlyphOffset offsets every glyph of the font.
func (l *Library) FontConfigSetGlyphOffset(h Handle, value Vec2) {
	l.fontConfig(h).glyphOffset = value
}

// FontConfigSetGlyphExtraSpacing adds spacing between glyphs.
func (l *Library) FontConfigSetGlyphExtraSpacing(h Handle, value Vec2) {
	l.fontConfig(h).glyphExtraSpacing = value
}

// FontConfigSetRasterizerMultiply brightens or darkens glyph coverage.
func (l *Library) FontConfigSetRasterizerMultiply(h Handle, value float32) {
	l.fontConfig(h).rasterizerMultiply = value
}

// FontConfigSetMergeMode merges the glyphs into the previously added font.
func (l *Library) FontConfigSetMergeMode(h Handle, value bool) {
	l.fontConfig(h).mergeMode = value
}

// FontConfigMergeMode reports whether merge mode is set.
func (l *Library) FontConfigMergeMode(h Handle) bool {
	return l.fontConfig(h).mergeMode
}

// FontConfigSetName sets the debug name of the font.
func (l *Library) FontConfigSetName(h Handle, name string) {
	l.fontConfig(h).name = name
}
