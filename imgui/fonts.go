package imgui

import (
	"slices"

	"go.uber.org/zap"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/boundary"
	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/transfer"
)

// Font describes one loaded font in an atlas.
type Font imguibridge.Handle

// DefaultFont selects the first font of the atlas when pushed.
const DefaultFont Font = 0

func (font Font) handle() imguibridge.Handle {
	return imguibridge.Handle(font)
}

// FontSize returns the height of the font in pixels.
func (font Font) FontSize() float32 {
	return boundary.FontSize(font.handle())
}

// HasGlyph reports whether the font rasterized r.
func (font Font) HasGlyph(r rune) bool {
	return isTrue(boundary.FontHasGlyph(font.handle(), r))
}

// FontAtlas contains the fonts and their rasterized texture.
//
// An atlas created with NewFontAtlas is owned by the caller. The atlas of a
// context created without one is owned by that context.
type FontAtlas imguibridge.Handle

func (atlas FontAtlas) handle() imguibridge.Handle {
	return imguibridge.Handle(atlas)
}

// NewFontAtlas creates an atlas that can be shared between contexts.
func NewFontAtlas() FontAtlas {
	return FontAtlas(boundary.NewFontAtlas())
}

// Delete releases a caller-owned atlas.
func (atlas FontAtlas) Delete() {
	boundary.DeleteFontAtlas(atlas.handle())
}

// GlyphRangesDefault describes Basic Latin and Latin-1.
func (atlas FontAtlas) GlyphRangesDefault() GlyphRanges {
	return atlas.glyphRanges(native.GlyphRangesDefault)
}

// GlyphRangesKorean describes Default plus the Korean characters.
func (atlas FontAtlas) GlyphRangesKorean() GlyphRanges {
	return atlas.glyphRanges(native.GlyphRangesKorean)
}

// GlyphRangesJapanese describes Default plus Hiragana, Katakana and the
// unified ideographs.
func (atlas FontAtlas) GlyphRangesJapanese() GlyphRanges {
	return atlas.glyphRanges(native.GlyphRangesJapanese)
}

func (atlas FontAtlas) GlyphRangesChineseFull() GlyphRanges {
	return atlas.glyphRanges(native.GlyphRangesChineseFull)
}

func (atlas FontAtlas) GlyphRangesChineseSimplifiedCommon() GlyphRanges {
	return atlas.glyphRanges(native.GlyphRangesChineseSimplifiedCommon)
}

// GlyphRangesCyrillic describes Default plus about 400 Cyrillic characters.
func (atlas FontAtlas) GlyphRangesCyrillic() GlyphRanges {
	return atlas.glyphRanges(native.GlyphRangesCyrillic)
}

// GlyphRangesThai describes Default plus Thai characters.
func (atlas FontAtlas) GlyphRangesThai() GlyphRanges {
	return atlas.glyphRanges(native.GlyphRangesThai)
}

func (atlas FontAtlas) glyphRanges(which int32) GlyphRanges {
	return GlyphRanges(boundary.FontAtlasGlyphRanges(atlas.handle(), which))
}

// AddFontDefault adds the built-in font with default configuration.
func (atlas FontAtlas) AddFontDefault() Font {
	return atlas.AddFontDefaultV(DefaultFontConfig)
}

// AddFontDefaultV adds the built-in font with the given configuration.
func (atlas FontAtlas) AddFontDefaultV(cfg FontConfig) Font {
	return Font(boundary.FontAtlasAddFontDefault(atlas.handle(), cfg.handle()))
}

// AddFontFromMemoryTTF calls AddFontFromMemoryTTFV with the default
// configuration and ranges.
func (atlas FontAtlas) AddFontFromMemoryTTF(fontData []byte, sizePixels float32) (Font, error) {
	return atlas.AddFontFromMemoryTTFV(fontData, sizePixels, DefaultFontConfig, EmptyGlyphRanges)
}

// AddFontFromMemoryTTFV parses TrueType or OpenType data and adds the font.
// The atlas keeps its own copy of fontData. It returns ErrFontLoad when the
// data is not a usable font.
func (atlas FontAtlas) AddFontFromMemoryTTFV(fontData []byte, sizePixels float32, cfg FontConfig, glyphRange GlyphRanges) (Font, error) {
	s := scope()
	defer s.Exit()
	data := s.Bytes(fontData)
	font := Font(boundary.FontAtlasAddFontFromMemoryTTF(atlas.handle(), data, uint32(len(fontData)),
		sizePixels, cfg.handle(), glyphRange.handle()))
	if font == 0 {
		Logger().Debug("font rejected", zap.Int("bytes", len(fontData)))
		return 0, ErrFontLoad
	}
	return font, nil
}

// SetTexDesiredWidth sets the texture width to build with; zero picks one.
func (atlas FontAtlas) SetTexDesiredWidth(value int) {
	boundary.FontAtlasSetTexDesiredWidth(atlas.handle(), int32(value))
}

// Alpha8Image is the atlas texture with one byte per pixel.
type Alpha8Image struct {
	Width, Height int
	Pixels        []byte
}

// RGBA32Image is the atlas texture with four bytes per pixel.
type RGBA32Image struct {
	Width, Height int
	Pixels        []byte
}

// TextureDataAlpha8 builds the atlas if needed and returns its texture.
// Pixels alias native memory and stay valid until the atlas is changed.
func (atlas FontAtlas) TextureDataAlpha8() *Alpha8Image {
	var w, h int32
	d := atlas.texData(&w, &h, boundary.FontAtlasTexDataAlpha8)
	return &Alpha8Image{Width: int(w), Height: int(h), Pixels: Bytes(d)}
}

// TextureDataRGBA32 is TextureDataAlpha8 with white pixels carrying the
// coverage in their alpha channel.
func (atlas FontAtlas) TextureDataRGBA32() *RGBA32Image {
	var w, h int32
	d := atlas.texData(&w, &h, boundary.FontAtlasTexDataRGBA32)
	return &RGBA32Image{Width: int(w), Height: int(h), Pixels: Bytes(d)}
}

func (atlas FontAtlas) texData(w, h *int32, get func(imguibridge.Handle, imguibridge.Ptr, imguibridge.Ptr) BufferDescriptor) BufferDescriptor {
	s := scope()
	defer s.Exit()
	width := transfer.Wrap(s, transfer.Int32, w)
	height := transfer.Wrap(s, transfer.Int32, h)
	return get(atlas.handle(), width, height)
}

// SetTextureID sets the user value passed back in draw commands sampling
// this atlas.
func (atlas FontAtlas) SetTextureID(id TextureID) {
	boundary.FontAtlasSetTexID(atlas.handle(), uint32(id))
}

func (atlas FontAtlas) TextureID() TextureID {
	return TextureID(boundary.FontAtlasTexID(atlas.handle()))
}

// Build rasterizes all fonts into the texture.
func (atlas FontAtlas) Build() bool {
	return isTrue(boundary.FontAtlasBuild(atlas.handle()))
}

func (atlas FontAtlas) IsBuilt() bool {
	return isTrue(boundary.FontAtlasIsBuilt(atlas.handle()))
}

// Clear removes all fonts and the texture.
func (atlas FontAtlas) Clear() {
	boundary.FontAtlasClear(atlas.handle())
}

// Fonts returns the fonts of the atlas, in the order they were added.
func (atlas FontAtlas) Fonts() []Font {
	n := boundary.FontAtlasFontCount(atlas.handle())
	fonts := make([]Font, n)
	for i := range fonts {
		fonts[i] = Font(boundary.FontAtlasFont(atlas.handle(), int32(i)))
	}
	return fonts
}

// FontConfig describes how a font is added to an atlas. Instances are owned
// by the caller and must be released with Delete.
type FontConfig imguibridge.Handle

// DefaultFontConfig lets the atlas use its defaults.
const DefaultFontConfig FontConfig = 0

// NewFontConfig creates a font configuration with default values.
func NewFontConfig() FontConfig {
	return FontConfig(boundary.NewFontConfig())
}

// WithFontConfig runs fn with a fresh configuration and deletes it
// afterwards, also when fn panics.
func WithFontConfig(fn func(cfg FontConfig)) {
	cfg := NewFontConfig()
	defer cfg.Delete()
	fn(cfg)
}

func (cfg FontConfig) handle() imguibridge.Handle {
	return imguibridge.Handle(cfg)
}

// Delete releases the configuration. Deleting DefaultFontConfig does nothing.
func (cfg *FontConfig) Delete() {
	if *cfg == DefaultFontConfig {
		return
	}
	boundary.DeleteFontConfig(cfg.handle())
	*cfg = DefaultFontConfig
}

func (cfg FontConfig) SetSize(sizePixels float32) {
	boundary.FontConfigSetSize(cfg.handle(), sizePixels)
}

func (cfg FontConfig) Size() float32 {
	return boundary.FontConfigSize(cfg.handle())
}

func (cfg FontConfig) SetOversampleH(value int) {
	boundary.FontConfigSetOversampleH(cfg.handle(), int32(value))
}

func (cfg FontConfig) SetOversampleV(value int) {
	boundary.FontConfigSetOversampleV(cfg.handle(), int32(value))
}

// SetPixelSnapH aligns every glyph to the pixel boundary.
func (cfg FontConfig) SetPixelSnapH(value bool) {
	boundary.FontConfigSetPixelSnapH(cfg.handle(), imguibridge.BoolOf(value))
}

func (cfg FontConfig) SetGlyphMinAdvanceX(value float32) {
	boundary.FontConfigSetGlyphMinAdvanceX(cfg.handle(), value)
}

func (cfg FontConfig) SetGlyphMaxAdvanceX(value float32) {
	boundary.FontConfigSetGlyphMaxAdvanceX(cfg.handle(), value)
}

// SetGlyphOffset offsets every glyph of the font.
func (cfg FontConfig) SetGlyphOffset(value Vec2) {
	s := scope()
	defer s.Exit()
	boundary.FontConfigSetGlyphOffset(cfg.handle(), vec2Ptr(s, value))
}

func (cfg FontConfig) SetGlyphExtraSpacing(value Vec2) {
	s := scope()
	defer s.Exit()
	boundary.FontConfigSetGlyphExtraSpacing(cfg.handle(), vec2Ptr(s, value))
}

// SetRasterizerMultiply brightens (above 1) or darkens the glyph coverage.
func (cfg FontConfig) SetRasterizerMultiply(value float32) {
	boundary.FontConfigSetRasterizerMultiply(cfg.handle(), value)
}

// SetMergeMode merges the font into the previous one instead of adding a
// new font.
func (cfg FontConfig) SetMergeMode(value bool) {
	boundary.FontConfigSetMergeMode(cfg.handle(), imguibridge.BoolOf(value))
}

func (cfg FontConfig) MergeMode() bool {
	return isTrue(boundary.FontConfigMergeMode(cfg.handle()))
}

// SetName sets the debug name of the font.
func (cfg FontConfig) SetName(name string) {
	s := scope()
	defer s.Exit()
	boundary.FontConfigSetName(cfg.handle(), s.String(name))
}

// GlyphRanges points to a zero-terminated list of inclusive (first, last)
// pairs in native memory. Built-in ranges are owned by their atlas.
type GlyphRanges imguibridge.Ptr

// EmptyGlyphRanges does not contain any ranges.
const EmptyGlyphRanges GlyphRanges = 0

func (glyphs GlyphRanges) handle() imguibridge.Ptr {
	return imguibridge.Ptr(glyphs)
}

// extract reads the pairs of a range list.
func (glyphs GlyphRanges) extract() (result []glyphRange) {
	if glyphs == 0 {
		return nil
	}
	m := native.Lib().Memory()
	for at := uint32(glyphs); ; at += 4 {
		from, err := m.ReadU16(at)
		if err != nil || from == 0 {
			return result
		}
		to, err := m.ReadU16(at + 2)
		if err != nil {
			return result
		}
		result = append(result, glyphRange{from: from, to: to})
	}
}

type glyphRange struct {
	from, to uint16
}

// AllocatedGlyphRanges are glyph ranges allocated by the application. They
// must be released with Free once no font uses them anymore.
type AllocatedGlyphRanges struct {
	GlyphRanges
	size uint32
}

// Free releases the ranges and resets them to EmptyGlyphRanges.
func (ranges *AllocatedGlyphRanges) Free() {
	if ranges.GlyphRanges == EmptyGlyphRanges {
		return
	}
	boundary.Free(ranges.GlyphRanges.handle(), ranges.size, 2)
	ranges.GlyphRanges = EmptyGlyphRanges
	ranges.size = 0
}

// GlyphRangesBuilder combines ranges on the host side. The zero value is
// ready to use.
type GlyphRangesBuilder struct {
	ranges []glyphRange
}

// Add extends the builder with the inclusive range [from, to]. A range with
// from greater than to is ignored.
func (builder *GlyphRangesBuilder) Add(from, to rune) {
	if from > to {
		return
	}
	builder.ranges = append(builder.ranges, glyphRange{from: uint16(from), to: uint16(to)})
}

// AddExisting copies the pairs of existing range lists into the builder.
func (builder *GlyphRangesBuilder) AddExisting(ranges ...GlyphRanges) {
	for _, r := range ranges {
		builder.ranges = append(builder.ranges, r.extract()...)
	}
}

// Build merges the overlapping ranges and writes the result to native
// memory. The result is sorted by the first code point.
func (builder *GlyphRangesBuilder) Build() AllocatedGlyphRanges {
	merged := builder.mergedRanges()
	size := uint32(2 * (2*len(merged) + 1))
	ptr := boundary.Alloc(size, 2)
	m := native.Lib().Memory()
	raw := m.View(ptr, size)
	at := 0
	for _, r := range merged {
		raw[at], raw[at+1] = byte(r.from), byte(r.from>>8)
		raw[at+2], raw[at+3] = byte(r.to), byte(r.to>>8)
		at += 4
	}
	raw[at], raw[at+1] = 0, 0
	return AllocatedGlyphRanges{GlyphRanges: GlyphRanges(ptr), size: size}
}

func (builder *GlyphRangesBuilder) mergedRanges() []glyphRange {
	sorted := slices.Clone(builder.ranges)
	slices.SortStableFunc(sorted, func(a, b glyphRange) int {
		return int(a.from) - int(b.from)
	})
	result := make([]glyphRange, 0, len(sorted))
	for _, candidate := range sorted {
		if n := len(result); n > 0 && result[n-1].to >= candidate.from {
			result[n-1].to = max(result[n-1].to, candidate.to)
			continue
		}
		result = append(result, candidate)
	}
	return result
}

// GlyphRangesVector is an owned, growable range list in native memory. It
// receives the output of a FontGlyphRangesBuilder.
type GlyphRangesVector imguibridge.Handle

// NewGlyphRangesVector creates an empty vector. Release it with Delete.
func NewGlyphRangesVector() GlyphRangesVector {
	return GlyphRangesVector(boundary.NewGlyphRanges())
}

func (vec GlyphRangesVector) handle() imguibridge.Handle {
	return imguibridge.Handle(vec)
}

func (vec *GlyphRangesVector) Delete() {
	if *vec == 0 {
		return
	}
	boundary.DeleteGlyphRanges(vec.handle())
	*vec = 0
}

// Ranges returns the list for use with AddFontFromMemoryTTFV. It is valid
// until the vector changes.
func (vec GlyphRangesVector) Ranges() GlyphRanges {
	return GlyphRanges(boundary.GlyphRangesData(vec.handle()).Ptr)
}

// Data returns the code points including the terminating zero, aliasing
// native memory.
func (vec GlyphRangesVector) Data() []uint16 {
	return View[uint16](boundary.GlyphRangesData(vec.handle()))
}

// Assign replaces the contents with a copy of ranges.
func (vec GlyphRangesVector) Assign(ranges GlyphRanges) {
	boundary.GlyphRangesAssign(vec.handle(), ranges.handle())
}

// FontGlyphRangesBuilder collects code points in native memory, one bit per
// code point.
type FontGlyphRangesBuilder imguibridge.Handle

// NewFontGlyphRangesBuilder creates a builder. Release it with Delete.
func NewFontGlyphRangesBuilder() FontGlyphRangesBuilder {
	return FontGlyphRangesBuilder(boundary.NewFontGlyphRangesBuilder())
}

func (builder FontGlyphRangesBuilder) handle() imguibridge.Handle {
	return imguibridge.Handle(builder)
}

func (builder *FontGlyphRangesBuilder) Delete() {
	if *builder == 0 {
		return
	}
	boundary.DeleteFontGlyphRangesBuilder(builder.handle())
	*builder = 0
}

func (builder FontGlyphRangesBuilder) Clear() {
	boundary.FontGlyphRangesBuilderClear(builder.handle())
}

func (builder FontGlyphRangesBuilder) AddChar(r rune) {
	boundary.FontGlyphRangesBuilderAddChar(builder.handle(), r)
}

// AddText adds every code point of text.
func (builder FontGlyphRangesBuilder) AddText(text string) {
	s := scope()
	defer s.Exit()
	boundary.FontGlyphRangesBuilderAddText(builder.handle(), s.String(text))
}

func (builder FontGlyphRangesBuilder) AddRanges(ranges GlyphRanges) {
	boundary.FontGlyphRangesBuilderAddRanges(builder.handle(), ranges.handle())
}

// BuildRanges writes the collected code points as ranges into out.
func (builder FontGlyphRangesBuilder) BuildRanges(out GlyphRangesVector) {
	boundary.FontGlyphRangesBuilderBuildRanges(builder.handle(), out.handle())
}
