package imgui_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/wippyai/imgui-bridge/imgui"
	"github.com/wippyai/imgui-bridge/native"
)

// rangesOf reads a zero-terminated range list including the terminator.
func rangesOf(t *testing.T, r imgui.GlyphRanges) []uint16 {
	t.Helper()
	m := native.Lib().Memory()
	var out []uint16
	for at := uint32(r); ; at += 2 {
		v, err := m.ReadU16(at)
		if err != nil {
			t.Fatalf("ReadU16(%#x): %v", at, err)
		}
		out = append(out, v)
		if v == 0 && len(out)%2 == 1 {
			return out
		}
	}
}

func TestGlyphRangesBuilder_Add(t *testing.T) {
	type span struct{ from, to rune }
	tests := []struct {
		name  string
		input []span
		want  []uint16
	}{
		{"no input yields the terminator only", nil, []uint16{0}},
		{"single rune", []span{{'A', 'A'}}, []uint16{65, 65, 0}},
		{"larger range", []span{{'A', 'C'}}, []uint16{65, 67, 0}},
		{"two ranges", []span{{'A', 'C'}, {'E', 'F'}}, []uint16{65, 67, 69, 70, 0}},
		{"wrong order is ignored", []span{{'B', 'A'}}, []uint16{0}},
		{"overlapping ranges merge", []span{{'A', 'C'}, {'B', 'E'}}, []uint16{65, 69, 0}},
		{"contained range merges", []span{{'A', 'Z'}, {'C', 'D'}}, []uint16{65, 90, 0}},
		{"result is sorted", []span{{'E', 'F'}, {'A', 'B'}}, []uint16{65, 66, 69, 70, 0}},
		{"bridging range merges both", []span{{'A', 'B'}, {'E', 'F'}, {'B', 'E'}}, []uint16{65, 70, 0}},
		{"adjacent ranges stay apart", []span{{'A', 'B'}, {'C', 'D'}}, []uint16{65, 66, 67, 68, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var builder imgui.GlyphRangesBuilder
			for _, s := range tt.input {
				builder.Add(s.from, s.to)
			}
			result := builder.Build()
			defer result.Free()
			if result.GlyphRanges == imgui.EmptyGlyphRanges {
				t.Fatal("Build() did not allocate")
			}
			if diff := cmp.Diff(tt.want, rangesOf(t, result.GlyphRanges)); diff != "" {
				t.Errorf("ranges mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGlyphRangesBuilder_AddExisting(t *testing.T) {
	build := func(from, to rune) imgui.AllocatedGlyphRanges {
		var builder imgui.GlyphRangesBuilder
		builder.Add(from, to)
		return builder.Build()
	}
	aa := build('A', 'A')
	defer aa.Free()
	ef := build('E', 'F')
	defer ef.Free()

	var builder imgui.GlyphRangesBuilder
	builder.AddExisting(ef.GlyphRanges, aa.GlyphRanges, imgui.EmptyGlyphRanges)
	result := builder.Build()
	defer result.Free()

	if diff := cmp.Diff([]uint16{65, 65, 69, 70, 0}, rangesOf(t, result.GlyphRanges)); diff != "" {
		t.Errorf("ranges mismatch (-want +got):\n%s", diff)
	}
}

func TestAllocatedGlyphRanges_FreeResets(t *testing.T) {
	var builder imgui.GlyphRangesBuilder
	ranges := builder.Build()
	ranges.Free()
	if ranges.GlyphRanges != imgui.EmptyGlyphRanges {
		t.Error("Free did not reset the ranges")
	}
	ranges.Free()
}

func TestFontGlyphRangesBuilder(t *testing.T) {
	builder := imgui.NewFontGlyphRangesBuilder()
	defer builder.Delete()
	out := imgui.NewGlyphRangesVector()
	defer out.Delete()

	builder.AddText("abc")
	builder.AddChar('z')
	builder.BuildRanges(out)
	if diff := cmp.Diff([]uint16{'a', 'c', 'z', 'z', 0}, out.Data()); diff != "" {
		t.Errorf("ranges mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(out.Data(), rangesOf(t, out.Ranges())); diff != "" {
		t.Errorf("Ranges() disagrees with Data() (-data +ranges):\n%s", diff)
	}
}

func TestFontAtlas_AddFontFromMemoryTTF(t *testing.T) {
	atlas := imgui.NewFontAtlas()
	defer atlas.Delete()

	if _, err := atlas.AddFontFromMemoryTTF([]byte("not a font"), 16); err != imgui.ErrFontLoad {
		t.Errorf("garbage data error = %v, want ErrFontLoad", err)
	}
	if _, err := atlas.AddFontFromMemoryTTF(nil, 16); err != imgui.ErrFontLoad {
		t.Errorf("empty data error = %v, want ErrFontLoad", err)
	}

	font, err := atlas.AddFontFromMemoryTTFV(goregular.TTF, 20, imgui.DefaultFontConfig, atlas.GlyphRangesCyrillic())
	if err != nil {
		t.Fatalf("AddFontFromMemoryTTFV() error = %v", err)
	}
	if font.FontSize() != 20 {
		t.Errorf("FontSize() = %v, want 20", font.FontSize())
	}
	if !font.HasGlyph('Ж') {
		t.Error("font built with Cyrillic ranges lacks 'Ж'")
	}
	if diff := cmp.Diff([]imgui.Font{font}, atlas.Fonts()); diff != "" {
		t.Errorf("Fonts() mismatch (-want +got):\n%s", diff)
	}
}

func TestFontAtlas_TextureData(t *testing.T) {
	atlas := imgui.NewFontAtlas()
	defer atlas.Delete()
	atlas.AddFontDefault()

	alpha := atlas.TextureDataAlpha8()
	if alpha.Width <= 0 || alpha.Height <= 0 {
		t.Fatalf("alpha8 size = %dx%d", alpha.Width, alpha.Height)
	}
	if len(alpha.Pixels) != alpha.Width*alpha.Height {
		t.Errorf("alpha8 pixels = %d bytes, want %d", len(alpha.Pixels), alpha.Width*alpha.Height)
	}
	if !atlas.IsBuilt() {
		t.Error("texture query did not build the atlas")
	}

	rgba := atlas.TextureDataRGBA32()
	if rgba.Width != alpha.Width || rgba.Height != alpha.Height {
		t.Errorf("rgba32 size = %dx%d, want %dx%d", rgba.Width, rgba.Height, alpha.Width, alpha.Height)
	}
	if len(rgba.Pixels) != 4*rgba.Width*rgba.Height {
		t.Errorf("rgba32 pixels = %d bytes, want %d", len(rgba.Pixels), 4*rgba.Width*rgba.Height)
	}

	atlas.SetTextureID(42)
	if atlas.TextureID() != 42 {
		t.Errorf("TextureID() = %d, want 42", atlas.TextureID())
	}
}

func TestFontConfig(t *testing.T) {
	imgui.WithFontConfig(func(cfg imgui.FontConfig) {
		cfg.SetSize(18)
		cfg.SetMergeMode(true)
		if cfg.Size() != 18 {
			t.Errorf("Size() = %v, want 18", cfg.Size())
		}
		if !cfg.MergeMode() {
			t.Error("MergeMode() = false")
		}
	})

	cfg := imgui.NewFontConfig()
	cfg.Delete()
	if cfg != imgui.DefaultFontConfig {
		t.Error("Delete did not reset the config")
	}
	cfg.Delete()
}
