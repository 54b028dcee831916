package native

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"math"
	"slices"
	"sync"

	"go.uber.org/zap"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/errors"
)

const (
	defaultFontSize = 13
	atlasPadding    = 1
	fallbackChar    = '?'
)

type glyph struct {
	visible  bool
	x0, y0   float32
	x1, y1   float32
	u0, v0   float32
	u1, v1   float32
	advanceX float32
}

type font struct {
	handle  Handle
	atlas   *fontAtlas
	name    string
	size    float32
	ascent  float32
	descent float32
	glyphs  map[rune]*glyph
}

func (f *font) findGlyph(r rune) *glyph {
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	return f.glyphs[fallbackChar]
}

type fontSource struct {
	parsed *opentype.Font
	ranges []uint16
	cfg    fontConfig
	size   float32
	dst    *font
}

// fontAtlas rasterizes its fonts into one alpha texture held in linear memory.
type fontAtlas struct {
	lib    *Library
	handle Handle
	users  int

	sources []*fontSource
	fonts   []*font

	texDesiredWidth int32
	texWidth        int32
	texHeight       int32
	texID           uint32
	alpha8          vector
	rgba32          vector
	rgbaValid       bool
	built           bool
	whiteUV         Vec2

	builtin [glyphRangesCount]*vector
}

func (l *Library) newFontAtlas() *fontAtlas {
	a := &fontAtlas{
		lib:    l,
		alpha8: newVector(l, ElementAlpha8),
		rgba32: newVector(l, ElementRGBA32),
	}
	a.handle = l.newObject(a)
	return a
}

func (l *Library) destroyFontAtlas(a *fontAtlas) {
	for _, f := range a.fonts {
		l.dropObject(f.handle)
	}
	for _, v := range a.builtin {
		if v != nil {
			v.release()
		}
	}
	a.alpha8.release()
	a.rgba32.release()
	l.dropObject(a.handle)
}

func (l *Library) fontAtlas(h Handle) *fontAtlas {
	return deref[fontAtlas](l, h)
}

func (a *fontAtlas) invalidate() {
	a.built = false
	a.rgbaValid = false
	a.alpha8.clear()
	a.rgba32.clear()
	a.texWidth, a.texHeight = 0, 0
}

func (a *fontAtlas) addFont(parsed *opentype.Font, name string, size float32, ranges []uint16, cfg fontConfig) *font {
	if cfg.sizePixels > 0 {
		size = cfg.sizePixels
	}
	a.lib.assert(size > 0, "AddFont", "font size must be positive")
	if len(ranges) == 0 {
		ranges = builtinRanges[GlyphRangesDefault]
	}
	if cfg.name != "" {
		name = cfg.name
	}

	var dst *font
	if cfg.mergeMode {
		a.lib.assert(len(a.fonts) > 0, "AddFont",
			"cannot use merge mode for the first font")
		dst = a.fonts[len(a.fonts)-1]
	} else {
		dst = &font{atlas: a, name: name, size: size, glyphs: make(map[rune]*glyph)}
		dst.handle = a.lib.newObject(dst)
		a.fonts = append(a.fonts, dst)
	}

	a.sources = append(a.sources, &fontSource{
		parsed: parsed,
		ranges: slices.Clone(ranges),
		cfg:    cfg,
		size:   size,
		dst:    dst,
	})
	a.invalidate()
	return dst
}

var defaultFont = sync.OnceValue(func() *opentype.Font {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
})

func (a *fontAtlas) addFontDefault(cfg fontConfig) *font {
	return a.addFont(defaultFont(), fmt.Sprintf("Go Regular, %dpx", defaultFontSize), defaultFontSize, nil, cfg)
}

type rasterGlyph struct {
	dst  *font
	r    rune
	g    *glyph
	mask *image.Alpha
	x, y int
}

// build rasterizes every source and packs the glyphs into rows.
func (a *fontAtlas) build() {
	if len(a.fonts) == 0 {
		a.addFontDefault(defaultFontConfig())
	}
	for _, f := range a.fonts {
		clear(f.glyphs)
	}

	var pending []*rasterGlyph
	for _, src := range a.sources {
		pending = append(pending, a.rasterizeSource(src)...)
	}

	width := int(a.texDesiredWidth)
	if width <= 0 {
		switch n := len(pending); {
		case n > 4000:
			width = 4096
		case n > 2000:
			width = 2048
		case n > 1000:
			width = 1024
		default:
			width = 512
		}
	}

	// The first cell holds the 2x2 white block used for untextured shapes.
	x, y, rowH := 2+atlasPadding, 0, 2
	for _, rg := range pending {
		w, h := rg.mask.Rect.Dx(), rg.mask.Rect.Dy()
		a.lib.assert(w+atlasPadding <= width, "FontAtlasBuild",
			fmt.Sprintf("glyph %q wider than texture width %d", rg.r, width))
		if x+w > width {
			x = 0
			y += rowH + atlasPadding
			rowH = 0
		}
		rg.x, rg.y = x, y
		x += w + atlasPadding
		rowH = max(rowH, h)
	}
	height := 1
	for height < y+rowH {
		height <<= 1
	}

	img := image.NewAlpha(image.Rect(0, 0, width, height))
	for _, off := range [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		img.Pix[off[1]*img.Stride+off[0]] = 0xFF
	}
	fw, fh := float32(width), float32(height)
	for _, rg := range pending {
		w, h := rg.mask.Rect.Dx(), rg.mask.Rect.Dy()
		if w > 0 && h > 0 {
			draw.Draw(img, image.Rect(rg.x, rg.y, rg.x+w, rg.y+h), rg.mask, rg.mask.Rect.Min, draw.Src)
		}
		rg.g.u0 = float32(rg.x) / fw
		rg.g.v0 = float32(rg.y) / fh
		rg.g.u1 = float32(rg.x+w) / fw
		rg.g.v1 = float32(rg.y+h) / fh
		if _, ok := rg.dst.glyphs[rg.r]; !ok {
			rg.dst.glyphs[rg.r] = rg.g
		}
	}

	a.alpha8.resize(uint32(width * height))
	copy(a.alpha8.bytes(), img.Pix)
	a.texWidth, a.texHeight = int32(width), int32(height)
	a.whiteUV = Vec2{X: 1 / fw, Y: 1 / fh}
	a.rgbaValid = false
	a.built = true

	a.lib.log.Debug("font atlas built",
		zap.Int("fonts", len(a.fonts)),
		zap.Int("glyphs", len(pending)),
		zap.Int("width", width),
		zap.Int("height", height))
}

func (a *fontAtlas) rasterizeSource(src *fontSource) []*rasterGlyph {
	hinting := xfont.HintingNone
	if src.cfg.pixelSnapH {
		hinting = xfont.HintingFull
	}
	face, err := opentype.NewFace(src.parsed, &opentype.FaceOptions{
		Size:    float64(src.size),
		DPI:     72,
		Hinting: hinting,
	})
	if err != nil {
		a.lib.fail(errors.Wrap(errors.PhaseFont, errors.KindInvalidData, err, "create font face"))
	}
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	if src.dst.ascent == 0 {
		src.dst.ascent = float32(ascent)
		src.dst.descent = float32(-metrics.Descent.Ceil())
	}
	dot := fixed.Point26_6{X: 0, Y: fixed.I(ascent)}

	var buf sfnt.Buffer
	seen := make(map[rune]bool)
	var out []*rasterGlyph
	for i := 0; i+1 < len(src.ranges); i += 2 {
		for c := uint32(src.ranges[i]); c <= uint32(src.ranges[i+1]); c++ {
			r := rune(c)
			if seen[r] {
				continue
			}
			seen[r] = true
			if _, ok := src.dst.glyphs[r]; ok {
				continue
			}
			idx, err := src.parsed.GlyphIndex(&buf, r)
			if err != nil || idx == 0 {
				continue
			}
			dr, mask, maskp, advance, ok := face.Glyph(dot, r)
			if !ok {
				continue
			}

			// The face reuses its mask buffer, so copy it out.
			copied := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
			if dr.Dx() > 0 && dr.Dy() > 0 {
				draw.Draw(copied, copied.Rect, mask, maskp, draw.Src)
				if m := src.cfg.rasterizerMultiply; m != 1 {
					for p := range copied.Pix {
						copied.Pix[p] = uint8(min(float32(copied.Pix[p])*m, 255))
					}
				}
			}

			adv := float32(advance) / 64
			adv = min(max(adv, src.cfg.glyphMinAdvanceX), src.cfg.glyphMaxAdvanceX)
			if src.cfg.pixelSnapH {
				adv = float32(math.Round(float64(adv)))
			}
			off := src.cfg.glyphOffset
			g := &glyph{
				visible:  dr.Dx() > 0 && dr.Dy() > 0,
				x0:       float32(dr.Min.X) + off.X,
				y0:       float32(dr.Min.Y) + off.Y,
				x1:       float32(dr.Max.X) + off.X,
				y1:       float32(dr.Max.Y) + off.Y,
				advanceX: adv + src.cfg.glyphExtraSpacing.X,
			}
			out = append(out, &rasterGlyph{dst: src.dst, r: r, g: g, mask: copied})
		}
	}
	return out
}

func (a *fontAtlas) ensureBuilt() {
	if !a.built {
		a.build()
	}
}

// NewFontAtlas allocates a font atlas that can be shared between contexts.
func (l *Library) NewFontAtlas() Handle {
	return l.newFontAtlas().handle
}

// DeleteFontAtlas releases a font atlas created with NewFontAtlas.
func (l *Library) DeleteFontAtlas(h Handle) {
	a := l.fontAtlas(h)
	l.assert(a.users == 0, "DeleteFontAtlas", "font atlas is still used by a context")
	l.destroyFontAtlas(a)
}

// FontAtlasAddFontDefault adds the default font. cfg may be 0.
func (l *Library) FontAtlasAddFontDefault(h Handle, cfg Handle) Handle {
	return l.fontAtlas(h).addFontDefault(l.configOrDefault(cfg)).handle
}

// FontAtlasAddFontFromMemoryTTF parses TrueType data and adds a font. The
// data is copied. cfg and ranges may be 0. A parse failure returns 0.
func (l *Library) FontAtlasAddFontFromMemoryTTF(h Handle, data []byte, sizePixels float32, cfg Handle, ranges Ptr) Handle {
	a := l.fontAtlas(h)
	parsed, err := opentype.Parse(bytes.Clone(data))
	if err != nil {
		l.log.Warn("font data rejected", zap.Int("bytes", len(data)), zap.Error(err))
		return 0
	}
	name := fmt.Sprintf("font %d, %gpx", len(a.fonts), sizePixels)
	return a.addFont(parsed, name, sizePixels, l.readRanges(ranges), l.configOrDefault(cfg)).handle
}

// FontAtlasBuild rasterizes every font now.
func (l *Library) FontAtlasBuild(h Handle) bool {
	a := l.fontAtlas(h)
	a.build()
	return a.built
}

// FontAtlasIsBuilt reports whether the texture is up to date.
func (l *Library) FontAtlasIsBuilt(h Handle) bool {
	return l.fontAtlas(h).built
}

// FontAtlasClear removes every font and the texture.
func (l *Library) FontAtlasClear(h Handle) {
	a := l.fontAtlas(h)
	for _, f := range a.fonts {
		l.dropObject(f.handle)
	}
	a.fonts = nil
	a.sources = nil
	a.invalidate()
}

// FontAtlasFontCount returns the number of fonts.
func (l *Library) FontAtlasFontCount(h Handle) int32 {
	return int32(len(l.fontAtlas(h).fonts))
}

// FontAtlasFont returns the font at index.
func (l *Library) FontAtlasFont(h Handle, index int32) Handle {
	a := l.fontAtlas(h)
	l.assert(index >= 0 && int(index) < len(a.fonts), "FontAtlasFont", "font index out of range")
	return a.fonts[index].handle
}

// FontAtlasSetTexDesiredWidth sets the texture width; 0 picks one from the glyph count.
func (l *Library) FontAtlasSetTexDesiredWidth(h Handle, width int32) {
	l.fontAtlas(h).texDesiredWidth = width
}

// FontAtlasSetTexID sets the texture identifier the renderer uses.
func (l *Library) FontAtlasSetTexID(h Handle, id uint32) {
	l.fontAtlas(h).texID = id
}

// FontAtlasTexID returns the texture identifier.
func (l *Library) FontAtlasTexID(h Handle) uint32 {
	return l.fontAtlas(h).texID
}

// FontAtlasTexDataAlpha8 builds the atlas if needed and describes its
// one-byte-per-pixel texture.
func (l *Library) FontAtlasTexDataAlpha8(h Handle) (imguibridge.BufferDescriptor, int32, int32) {
	a := l.fontAtlas(h)
	a.ensureBuilt()
	return a.alpha8.descriptor(), a.texWidth, a.texHeight
}

// FontAtlasTexDataRGBA32 builds the atlas if needed and describes its
// four-bytes-per-pixel texture, white with the glyph coverage as alpha.
func (l *Library) FontAtlasTexDataRGBA32(h Handle) (imguibridge.BufferDescriptor, int32, int32) {
	a := l.fontAtlas(h)
	a.ensureBuilt()
	if !a.rgbaValid {
		a.rgba32.resize(a.alpha8.size)
		px := a.rgba32.bytes()
		for i, v := range a.alpha8.bytes() {
			px[i*4+0] = 0xFF
			px[i*4+1] = 0xFF
			px[i*4+2] = 0xFF
			px[i*4+3] = v
		}
		a.rgbaValid = true
	}
	return a.rgba32.descriptor(), a.texWidth, a.texHeight
}

// FontAtlasGlyphRanges returns a pointer to a built-in zero-terminated range
// table. It lives as long as the atlas.
func (l *Library) FontAtlasGlyphRanges(h Handle, which int32) Ptr {
	a := l.fontAtlas(h)
	l.assert(which >= 0 && which < glyphRangesCount, "FontAtlasGlyphRanges", "unknown glyph range table")
	if a.builtin[which] == nil {
		v := newVector(l, ElementWchar)
		l.writeRanges(&v, builtinRanges[which])
		a.builtin[which] = &v
	}
	return Ptr(a.builtin[which].data)
}

// FontSize returns the pixel size a font was built at.
func (l *Library) FontSize(h Handle) float32 {
	return deref[font](l, h).size
}

// FontName returns the debug name of a font.
func (l *Library) FontName(h Handle) string {
	return deref[font](l, h).name
}

// FontHasGlyph reports whether the built font has its own glyph for r.
func (l *Library) FontHasGlyph(h Handle, r rune) bool {
	f := deref[font](l, h)
	f.atlas.ensureBuilt()
	_, ok := f.glyphs[r]
	return ok
}
