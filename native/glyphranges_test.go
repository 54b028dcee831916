package native

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func readPairs(l *Library, h Handle) []uint16 {
	return l.readRanges(l.GlyphRangesData(h).Ptr)
}

func TestGlyphRangesBuilder_MergesRuns(t *testing.T) {
	tests := []struct {
		name  string
		build func(l *Library, b Handle)
		want  []uint16
	}{
		{
			name:  "empty",
			build: func(l *Library, b Handle) {},
			want:  nil,
		},
		{
			name: "text with adjacent characters",
			build: func(l *Library, b Handle) {
				l.FontGlyphRangesBuilderAddText(b, "cabxz")
			},
			want: []uint16{'a', 'c', 'x', 'x', 'z', 'z'},
		},
		{
			name: "chars and ranges",
			build: func(l *Library, b Handle) {
				src := l.NewGlyphRanges()
				l.writeRanges(&l.glyphRanges(src).data, []uint16{0x41, 0x43})
				l.FontGlyphRangesBuilderAddRanges(b, l.GlyphRangesData(src).Ptr)
				l.FontGlyphRangesBuilderAddChar(b, 'D')
				l.FontGlyphRangesBuilderAddChar(b, 0x1F600)
				l.DeleteGlyphRanges(src)
			},
			want: []uint16{0x41, 0x44},
		},
		{
			name: "clear",
			build: func(l *Library, b Handle) {
				l.FontGlyphRangesBuilderAddText(b, "abc")
				l.FontGlyphRangesBuilderClear(b)
			},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLibrary(t)
			b := l.NewFontGlyphRangesBuilder()
			defer l.DeleteFontGlyphRangesBuilder(b)
			out := l.NewGlyphRanges()
			defer l.DeleteGlyphRanges(out)

			tt.build(l, b)
			l.FontGlyphRangesBuilderBuildRanges(b, out)
			if diff := cmp.Diff(tt.want, readPairs(l, out)); diff != "" {
				t.Errorf("ranges mismatch (-want +got):\n%s", diff)
			}
			d := l.GlyphRangesData(out)
			if d.Count != uint32(len(tt.want)+1) || d.ByteSize != 2*d.Count {
				t.Errorf("descriptor = %+v, want %d entries incl. terminator", d, len(tt.want)+1)
			}
		})
	}
}

func TestGlyphRanges_Assign(t *testing.T) {
	l := newTestLibrary(t)
	atlas := l.NewFontAtlas()
	defer l.DeleteFontAtlas(atlas)

	g := l.NewGlyphRanges()
	defer l.DeleteGlyphRanges(g)
	l.GlyphRangesAssign(g, l.FontAtlasGlyphRanges(atlas, GlyphRangesThai))
	if diff := cmp.Diff(builtinRanges[GlyphRangesThai], readPairs(l, g)); diff != "" {
		t.Errorf("assigned ranges mismatch (-want +got):\n%s", diff)
	}
}
