package native

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestFontAtlas_BuildDefault(t *testing.T) {
	l := newTestLibrary(t)
	atlas := l.NewFontAtlas()
	defer l.DeleteFontAtlas(atlas)

	if l.FontAtlasIsBuilt(atlas) {
		t.Fatal("new atlas should not be built")
	}
	desc, w, h := l.FontAtlasTexDataAlpha8(atlas)
	if !l.FontAtlasIsBuilt(atlas) {
		t.Fatal("TexDataAlpha8 should build the atlas")
	}
	if l.FontAtlasFontCount(atlas) != 1 {
		t.Errorf("font count = %d, want the default font only", l.FontAtlasFontCount(atlas))
	}
	if w != 512 || h <= 0 || h&(h-1) != 0 {
		t.Errorf("texture %dx%d, want width 512 and a power-of-two height", w, h)
	}
	if desc.Count != uint32(w*h) || desc.ByteSize != uint32(w*h) {
		t.Errorf("alpha8 descriptor = %+v for %dx%d", desc, w, h)
	}
	px, _ := l.Memory().Read(uint32(desc.Ptr), 2)
	if px[0] != 0xFF || px[1] != 0xFF {
		t.Errorf("white block pixels = %v", px)
	}

	rgba, w2, h2 := l.FontAtlasTexDataRGBA32(atlas)
	if w2 != w || h2 != h || rgba.Count != uint32(w*h) || rgba.ByteSize != 4*uint32(w*h) {
		t.Errorf("rgba32 descriptor = %+v for %dx%d", rgba, w2, h2)
	}
	first, _ := l.Memory().Read(uint32(rgba.Ptr), 4)
	if first[0] != 0xFF || first[3] != 0xFF {
		t.Errorf("first rgba pixel = %v", first)
	}

	f := l.FontAtlasFont(atlas, 0)
	if l.FontSize(f) != defaultFontSize {
		t.Errorf("default font size = %v", l.FontSize(f))
	}
	if !l.FontHasGlyph(f, 'A') {
		t.Error("default font lacks 'A'")
	}
	if l.FontHasGlyph(f, 'Ж') {
		t.Error("default ranges should not include Cyrillic")
	}
}

func TestFontAtlas_AddFromMemory(t *testing.T) {
	l := newTestLibrary(t)
	atlas := l.NewFontAtlas()
	defer l.DeleteFontAtlas(atlas)

	if h := l.FontAtlasAddFontFromMemoryTTF(atlas, []byte("not a font"), 16, 0, 0); h != 0 {
		t.Errorf("garbage font data returned handle %#x", h)
	}

	cyrillic := l.FontAtlasGlyphRanges(atlas, GlyphRangesCyrillic)
	f := l.FontAtlasAddFontFromMemoryTTF(atlas, goregular.TTF, 20, 0, cyrillic)
	if f == 0 {
		t.Fatal("valid font data rejected")
	}
	if l.FontSize(f) != 20 {
		t.Errorf("font size = %v, want 20", l.FontSize(f))
	}
	if !l.FontHasGlyph(f, 'Ж') {
		t.Error("font built with Cyrillic ranges lacks 'Ж'")
	}
}

func TestFontAtlas_MergeMode(t *testing.T) {
	l := newTestLibrary(t)
	atlas := l.NewFontAtlas()
	defer l.DeleteFontAtlas(atlas)

	base := l.FontAtlasAddFontDefault(atlas, 0)
	cfg := l.NewFontConfig()
	defer l.DeleteFontConfig(cfg)
	l.FontConfigSetMergeMode(cfg, true)
	merged := l.FontAtlasAddFontFromMemoryTTF(atlas, goregular.TTF, 13, cfg,
		l.FontAtlasGlyphRanges(atlas, GlyphRangesCyrillic))

	if merged != base {
		t.Errorf("merge mode returned %#x, want the previous font %#x", merged, base)
	}
	if l.FontAtlasFontCount(atlas) != 1 {
		t.Errorf("font count = %d, want 1", l.FontAtlasFontCount(atlas))
	}
	if !l.FontHasGlyph(base, 'Ж') || !l.FontHasGlyph(base, 'A') {
		t.Error("merged font should cover both range sets")
	}
}

func TestFontAtlas_MergeFirstFont(t *testing.T) {
	l := newTestLibrary(t)
	atlas := l.NewFontAtlas()
	cfg := l.NewFontConfig()
	l.FontConfigSetMergeMode(cfg, true)
	expectFailure(t, func() { l.FontAtlasAddFontDefault(atlas, cfg) })
}

func TestFontAtlas_ClearInvalidates(t *testing.T) {
	l := newTestLibrary(t)
	atlas := l.NewFontAtlas()
	defer l.DeleteFontAtlas(atlas)

	l.FontAtlasBuild(atlas)
	l.FontAtlasClear(atlas)
	if l.FontAtlasIsBuilt(atlas) || l.FontAtlasFontCount(atlas) != 0 {
		t.Error("Clear should drop fonts and the texture")
	}
	l.FontAtlasSetTexID(atlas, 7)
	if l.FontAtlasTexID(atlas) != 7 {
		t.Error("texture id not stored")
	}
}
