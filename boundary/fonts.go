package boundary

// NewFontAtlas creates a caller-owned font atlas.
func NewFontAtlas() Handle {
	return lib().NewFontAtlas()
}

func DeleteFontAtlas(atlas Handle) {
	lib().DeleteFontAtlas(atlas)
}

// FontAtlasAddFontDefault adds the built-in font. cfg may be null.
func FontAtlasAddFontDefault(atlas, cfg Handle) Handle {
	return lib().FontAtlasAddFontDefault(atlas, cfg)
}

// FontAtlasAddFontFromMemoryTTF parses size bytes of TrueType data at data.
// cfg and ranges may be null. It returns null when the data is not a font.
func FontAtlasAddFontFromMemoryTTF(atlas Handle, data Ptr, size uint32, sizePixels float32, cfg Handle, ranges Ptr) Handle {
	return lib().FontAtlasAddFontFromMemoryTTF(atlas, mem().View(data, size), sizePixels, cfg, ranges)
}

func FontAtlasBuild(atlas Handle) Bool {
	return boolOf(lib().FontAtlasBuild(atlas))
}

func FontAtlasIsBuilt(atlas Handle) Bool {
	return boolOf(lib().FontAtlasIsBuilt(atlas))
}

func FontAtlasClear(atlas Handle) {
	lib().FontAtlasClear(atlas)
}

func FontAtlasFontCount(atlas Handle) int32 {
	return lib().FontAtlasFontCount(atlas)
}

func FontAtlasFont(atlas Handle, index int32) Handle {
	return lib().FontAtlasFont(atlas, index)
}

func FontAtlasSetTexDesiredWidth(atlas Handle, width int32) {
	lib().FontAtlasSetTexDesiredWidth(atlas, width)
}

func FontAtlasSetTexID(atlas Handle, id uint32) {
	lib().FontAtlasSetTexID(atlas, id)
}

func FontAtlasTexID(atlas Handle) uint32 {
	return lib().FontAtlasTexID(atlas)
}

// FontAtlasTexDataAlpha8 builds the atlas if needed and describes its one
// byte per pixel texture. width and height receive the dimensions when
// non-null.
func FontAtlasTexDataAlpha8(atlas Handle, width, height Ptr) BufferDescriptor {
	d, w, h := lib().FontAtlasTexDataAlpha8(atlas)
	storeSize(width, height, w, h)
	return d
}

// FontAtlasTexDataRGBA32 is FontAtlasTexDataAlpha8 for the four bytes per
// pixel texture.
func FontAtlasTexDataRGBA32(atlas Handle, width, height Ptr) BufferDescriptor {
	d, w, h := lib().FontAtlasTexDataRGBA32(atlas)
	storeSize(width, height, w, h)
	return d
}

func storeSize(width, height Ptr, w, h int32) {
	m := mem()
	m.StoreS32(width, w)
	m.StoreS32(height, h)
}

// FontAtlasGlyphRanges returns a built-in zero-terminated range table owned
// by the atlas.
func FontAtlasGlyphRanges(atlas Handle, which int32) Ptr {
	return lib().FontAtlasGlyphRanges(atlas, which)
}

func FontSize(font Handle) float32 {
	return lib().FontSize(font)
}

func FontHasGlyph(font Handle, r rune) Bool {
	return boolOf(lib().FontHasGlyph(font, r))
}

// NewFontConfig creates a caller-owned font configuration.
func NewFontConfig() Handle {
	return lib().NewFontConfig()
}

func DeleteFontConfig(cfg Handle) {
	lib().DeleteFontConfig(cfg)
}

func FontConfigSetSize(cfg Handle, sizePixels float32) {
	lib().FontConfigSetSize(cfg, sizePixels)
}

func FontConfigSize(cfg Handle) float32 {
	return lib().FontConfigSize(cfg)
}

func FontConfigSetOversampleH(cfg Handle, value int32) {
	lib().FontConfigSetOversampleH(cfg, value)
}

func FontConfigSetOversampleV(cfg Handle, value int32) {
	lib().FontConfigSetOversampleV(cfg, value)
}

func FontConfigSetPixelSnapH(cfg Handle, value Bool) {
	lib().FontConfigSetPixelSnapH(cfg, truth(value))
}

func FontConfigSetGlyphMinAdvanceX(cfg Handle, value float32) {
	lib().FontConfigSetGlyphMinAdvanceX(cfg, value)
}

func FontConfigSetGlyphMaxAdvanceX(cfg Handle, value float32) {
	lib().FontConfigSetGlyphMaxAdvanceX(cfg, value)
}

func FontConfigSetGlyphOffset(cfg Handle, value Ptr) {
	lib().FontConfigSetGlyphOffset(cfg, mem().LoadVec2(value))
}

func FontConfigSetGlyphExtraSpacing(cfg Handle, value Ptr) {
	lib().FontConfigSetGlyphExtraSpacing(cfg, mem().LoadVec2(value))
}

func FontConfigSetRasterizerMultiply(cfg Handle, value float32) {
	lib().FontConfigSetRasterizerMultiply(cfg, value)
}

func FontConfigSetMergeMode(cfg Handle, value Bool) {
	lib().FontConfigSetMergeMode(cfg, truth(value))
}

func FontConfigMergeMode(cfg Handle) Bool {
	return boolOf(lib().FontConfigMergeMode(cfg))
}

func FontConfigSetName(cfg Handle, name Ptr) {
	lib().FontConfigSetName(cfg, str(name))
}

// NewGlyphRanges creates a caller-owned, initially empty range vector.
func NewGlyphRanges() Handle {
	return lib().NewGlyphRanges()
}

func DeleteGlyphRanges(ranges Handle) {
	lib().DeleteGlyphRanges(ranges)
}

// GlyphRangesData describes the zero-terminated range pairs of a vector.
// Count includes the terminator.
func GlyphRangesData(ranges Handle) BufferDescriptor {
	return lib().GlyphRangesData(ranges)
}

// GlyphRangesAssign copies the zero-terminated table at src into ranges.
func GlyphRangesAssign(ranges Handle, src Ptr) {
	lib().GlyphRangesAssign(ranges, src)
}

// NewFontGlyphRangesBuilder creates a caller-owned ranges builder.
func NewFontGlyphRangesBuilder() Handle {
	return lib().NewFontGlyphRangesBuilder()
}

func DeleteFontGlyphRangesBuilder(builder Handle) {
	lib().DeleteFontGlyphRangesBuilder(builder)
}

func FontGlyphRangesBuilderClear(builder Handle) {
	lib().FontGlyphRangesBuilderClear(builder)
}

func FontGlyphRangesBuilderAddChar(builder Handle, r rune) {
	lib().FontGlyphRangesBuilderAddChar(builder, r)
}

func FontGlyphRangesBuilderAddText(builder Handle, text Ptr) {
	lib().FontGlyphRangesBuilderAddText(builder, str(text))
}

func FontGlyphRangesBuilderAddRanges(builder Handle, ranges Ptr) {
	lib().FontGlyphRangesBuilderAddRanges(builder, ranges)
}

// FontGlyphRangesBuilderBuildRanges writes the accumulated ranges into out,
// a glyph-ranges handle.
func FontGlyphRangesBuilderBuildRanges(builder, out Handle) {
	lib().FontGlyphRangesBuilderBuildRanges(builder, out)
}
