package native

import (
	"slices"

	"github.com/creachadair/mds/mapset"

	imguibridge "github.com/wippyai/imgui-bridge"
)

// Built-in glyph range tables.
const (
	GlyphRangesDefault int32 = iota
	GlyphRangesKorean
	GlyphRangesJapanese
	GlyphRangesChineseFull
	GlyphRangesChineseSimplifiedCommon
	GlyphRangesCyrillic
	GlyphRangesThai
	glyphRangesCount
)

// Ideograph subsets are covered by the full unified block.
var builtinRanges = [glyphRangesCount][]uint16{
	GlyphRangesDefault: {0x0020, 0x00FF},
	GlyphRangesKorean:  {0x0020, 0x00FF, 0x3131, 0x3163, 0xAC00, 0xD7A3},
	GlyphRangesJapanese: {
		0x0020, 0x00FF, 0x3000, 0x30FF, 0x31F0, 0x31FF, 0xFF00, 0xFFEF, 0x4E00, 0x9FAF,
	},
	GlyphRangesChineseFull: {
		0x0020, 0x00FF, 0x2000, 0x206F, 0x3000, 0x30FF, 0x31F0, 0x31FF, 0xFF00, 0xFFEF, 0x4E00, 0x9FAF,
	},
	GlyphRangesChineseSimplifiedCommon: {
		0x0020, 0x00FF, 0x2000, 0x206F, 0x3000, 0x30FF, 0x31F0, 0x31FF, 0xFF00, 0xFFEF, 0x4E00, 0x9FAF,
	},
	GlyphRangesCyrillic: {0x0020, 0x00FF, 0x0400, 0x052F, 0x2DE0, 0x2DFF, 0xA640, 0xA69F},
	GlyphRangesThai:     {0x0020, 0x00FF, 0x2010, 0x205E, 0x0E00, 0x0E7F},
}

// readRanges reads zero-terminated (first, last) pairs from native memory.
func (l *Library) readRanges(p Ptr) []uint16 {
	if p == 0 {
		return nil
	}
	var out []uint16
	for at := uint32(p); ; at += 4 {
		lo := l.mem.u16(at)
		if lo == 0 {
			break
		}
		hi := l.mem.u16(at + 2)
		out = append(out, lo, hi)
	}
	return out
}

// writeRanges stores pairs plus the terminator into v.
func (l *Library) writeRanges(v *vector, pairs []uint16) {
	v.resize(uint32(len(pairs) + 1))
	for i, r := range pairs {
		l.mem.setU16(v.at(uint32(i)), r)
	}
	l.mem.setU16(v.at(uint32(len(pairs))), 0)
}

// glyphRanges is an owned, zero-terminated array of (first, last) pairs.
type glyphRanges struct {
	handle Handle
	data   vector
}

func (l *Library) glyphRanges(h Handle) *glyphRanges {
	return deref[glyphRanges](l, h)
}

// NewGlyphRanges allocates an empty glyph range array.
func (l *Library) NewGlyphRanges() Handle {
	g := &glyphRanges{data: newVector(l, ElementWchar)}
	l.writeRanges(&g.data, nil)
	g.handle = l.newObject(g)
	return g.handle
}

// DeleteGlyphRanges releases a glyph range array.
func (l *Library) DeleteGlyphRanges(h Handle) {
	l.glyphRanges(h).data.release()
	l.dropObject(h)
}

// GlyphRangesData describes the array, terminator included. Its Ptr is the
// raw range pointer accepted by the font loading calls.
func (l *Library) GlyphRangesData(h Handle) imguibridge.BufferDescriptor {
	return l.glyphRanges(h).data.descriptor()
}

// GlyphRangesAssign replaces the contents with the zero-terminated pairs at src.
func (l *Library) GlyphRangesAssign(h Handle, src Ptr) {
	l.writeRanges(&l.glyphRanges(h).data, l.readRanges(src))
}

// glyphRangesBuilder collects characters and emits merged ranges.
type glyphRangesBuilder struct {
	handle Handle
	used   mapset.Set[uint16]
}

func (l *Library) glyphRangesBuilder(h Handle) *glyphRangesBuilder {
	return deref[glyphRangesBuilder](l, h)
}

// NewFontGlyphRangesBuilder allocates an empty builder.
func (l *Library) NewFontGlyphRangesBuilder() Handle {
	b := &glyphRangesBuilder{used: mapset.New[uint16]()}
	b.handle = l.newObject(b)
	return b.handle
}

// DeleteFontGlyphRangesBuilder releases a builder.
func (l *Library) DeleteFontGlyphRangesBuilder(h Handle) {
	l.glyphRangesBuilder(h)
	l.dropObject(h)
}

// FontGlyphRangesBuilderClear removes every character.
func (l *Library) FontGlyphRangesBuilderClear(h Handle) {
	l.glyphRangesBuilder(h).used = mapset.New[uint16]()
}

// FontGlyphRangesBuilderAddChar adds one character. Characters outside the
// basic multilingual plane are ignored.
func (l *Library) FontGlyphRangesBuilderAddChar(h Handle, r rune) {
	if r > 0 && r <= 0xFFFF {
		l.glyphRangesBuilder(h).used.Add(uint16(r))
	}
}

// FontGlyphRangesBuilderAddText adds every character of text.
func (l *Library) FontGlyphRangesBuilderAddText(h Handle, text string) {
	b := l.glyphRangesBuilder(h)
	for _, r := range text {
		if r > 0 && r <= 0xFFFF {
			b.used.Add(uint16(r))
		}
	}
}

// FontGlyphRangesBuilderAddRanges adds every character of zero-terminated pairs.
func (l *Library) FontGlyphRangesBuilderAddRanges(h Handle, ranges Ptr) {
	b := l.glyphRangesBuilder(h)
	pairs := l.readRanges(ranges)
	for i := 0; i+1 < len(pairs); i += 2 {
		for r := uint32(pairs[i]); r <= uint32(pairs[i+1]); r++ {
			b.used.Add(uint16(r))
		}
	}
}

// FontGlyphRangesBuilderBuildRanges writes merged ranges into out.
func (l *Library) FontGlyphRangesBuilderBuildRanges(h Handle, out Handle) {
	b := l.glyphRangesBuilder(h)
	chars := make([]uint16, 0, b.used.Len())
	for r := range b.used {
		chars = append(chars, r)
	}
	slices.Sort(chars)

	var pairs []uint16
	for _, r := range chars {
		if n := len(pairs); n > 0 && uint32(pairs[n-1])+1 == uint32(r) {
			pairs[n-1] = r
			continue
		}
		pairs = append(pairs, r, r)
	}
	l.writeRanges(&l.glyphRanges(out).data, pairs)
}
