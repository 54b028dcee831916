package native

import (
	"encoding/binary"
	"math"

	imguibridge "github.com/wippyai/imgui-bridge"
)

// maxVtxPerCmd is the vertex count a single command can address with 16-bit indices.
const maxVtxPerCmd = 1 << 16

var fullscreenClip = Vec4{X: -8192, Y: -8192, Z: 8192, W: 8192}

// drawList holds one window's geometry in native buffers. Commands split
// whenever the clip rectangle or texture changes.
type drawList struct {
	lib    *Library
	handle Handle
	ctx    *uiContext

	vtx vector
	idx vector
	cmd vector

	vtxBase       uint32
	vtxCurrentIdx uint32
	clipStack     []Vec4
	textureStack  []uint32
}

func newDrawList(l *Library, c *uiContext) *drawList {
	d := &drawList{
		lib: l,
		ctx: c,
		vtx: newVector(l, ElementDrawVert),
		idx: newVector(l, ElementDrawIdx),
		cmd: newVector(l, ElementDrawCmd),
	}
	d.handle = l.newObject(d)
	return d
}

func (d *drawList) release() {
	d.vtx.release()
	d.idx.release()
	d.cmd.release()
	d.lib.dropObject(d.handle)
}

// reset clears the list for a new frame.
func (d *drawList) reset() {
	d.vtx.clear()
	d.idx.clear()
	d.cmd.clear()
	d.vtxBase = 0
	d.vtxCurrentIdx = 0
	d.clipStack = append(d.clipStack[:0], fullscreenClip)
	d.textureStack = append(d.textureStack[:0], d.ctx.atlas.texID)
	d.addDrawCmd()
}

func (d *drawList) currentClip() Vec4 {
	return d.clipStack[len(d.clipStack)-1]
}

func (d *drawList) currentTexture() uint32 {
	return d.textureStack[len(d.textureStack)-1]
}

func (d *drawList) lastCmd() uint32 {
	return d.cmd.at(d.cmd.size - 1)
}

func (d *drawList) addDrawCmd() {
	at := d.cmd.grow(1)
	m := d.lib.mem
	m.setU32(at+cmdCount, 0)
	m.setVec4(at+cmdClip, d.currentClip())
	m.setU32(at+cmdTexture, d.currentTexture())
	m.setU32(at+cmdVtxOff, d.vtxBase)
	m.setU32(at+cmdIdxOff, d.idx.size)
}

// updateCommand starts a new command for the current clip and texture,
// or retargets the last one when it is still empty.
func (d *drawList) updateCommand() {
	if d.cmd.size == 0 {
		d.addDrawCmd()
		return
	}
	m := d.lib.mem
	last := d.lastCmd()
	if m.u32(last+cmdCount) != 0 {
		if m.vec4(last+cmdClip) == d.currentClip() && m.u32(last+cmdTexture) == d.currentTexture() {
			return
		}
		d.addDrawCmd()
		return
	}
	m.setVec4(last+cmdClip, d.currentClip())
	m.setU32(last+cmdTexture, d.currentTexture())
}

func intersect(a, b Vec4) Vec4 {
	r := Vec4{X: max(a.X, b.X), Y: max(a.Y, b.Y), Z: min(a.Z, b.Z), W: min(a.W, b.W)}
	r.Z = max(r.Z, r.X)
	r.W = max(r.W, r.Y)
	return r
}

func (d *drawList) pushClipRect(min, max Vec2, intersectWithCurrent bool) {
	r := Vec4{X: min.X, Y: min.Y, Z: max.X, W: max.Y}
	if intersectWithCurrent {
		r = intersect(r, d.currentClip())
	}
	d.clipStack = append(d.clipStack, r)
	d.updateCommand()
}

func (d *drawList) popClipRect() {
	d.lib.assert(len(d.clipStack) > 1, "PopClipRect", "mismatched PushClipRect()/PopClipRect()")
	d.clipStack = d.clipStack[:len(d.clipStack)-1]
	d.updateCommand()
}

func (d *drawList) pushTexture(id uint32) {
	d.textureStack = append(d.textureStack, id)
	d.updateCommand()
}

func (d *drawList) popTexture() {
	d.lib.assert(len(d.textureStack) > 1, "PopTextureID", "mismatched PushTextureID()/PopTextureID()")
	d.textureStack = d.textureStack[:len(d.textureStack)-1]
	d.updateCommand()
}

// primReserve appends room for idxCount indices and vtxCount vertices to the
// current command and returns their addresses and the first vertex index.
func (d *drawList) primReserve(idxCount, vtxCount uint32) (vtxAt, idxAt, base uint32) {
	if d.vtxCurrentIdx+vtxCount > maxVtxPerCmd {
		d.vtxBase = d.vtx.size
		d.vtxCurrentIdx = 0
		d.addDrawCmd()
	}
	m := d.lib.mem
	last := d.lastCmd()
	m.setU32(last+cmdCount, m.u32(last+cmdCount)+idxCount)

	vtxAt = d.vtx.grow(vtxCount)
	idxAt = d.idx.grow(idxCount)
	base = d.vtxCurrentIdx
	d.vtxCurrentIdx += vtxCount
	return vtxAt, idxAt, base
}

func (d *drawList) writeVert(at uint32, pos, uv Vec2, col uint32) {
	b := d.lib.mem.view(at, vertSize)
	binary.LittleEndian.PutUint32(b[vertPos:], math.Float32bits(pos.X))
	binary.LittleEndian.PutUint32(b[vertPos+4:], math.Float32bits(pos.Y))
	binary.LittleEndian.PutUint32(b[vertUV:], math.Float32bits(uv.X))
	binary.LittleEndian.PutUint32(b[vertUV+4:], math.Float32bits(uv.Y))
	binary.LittleEndian.PutUint32(b[vertCol:], col)
}

func (d *drawList) writeQuadIdx(at, base uint32) {
	b := d.lib.mem.view(at, 6*idxSize)
	for i, off := range [6]uint32{0, 1, 2, 0, 2, 3} {
		binary.LittleEndian.PutUint16(b[uint32(i)*idxSize:], uint16(base+off))
	}
}

// primQuadUV emits an arbitrary quad with per-corner positions and a UV rectangle.
func (d *drawList) primQuadUV(a, b, c, e, uvA, uvC Vec2, col uint32) {
	vtxAt, idxAt, base := d.primReserve(6, 4)
	d.writeVert(vtxAt, a, uvA, col)
	d.writeVert(vtxAt+vertSize, b, Vec2{X: uvC.X, Y: uvA.Y}, col)
	d.writeVert(vtxAt+2*vertSize, c, uvC, col)
	d.writeVert(vtxAt+3*vertSize, e, Vec2{X: uvA.X, Y: uvC.Y}, col)
	d.writeQuadIdx(idxAt, base)
}

func (d *drawList) primRectUV(a, c, uvA, uvC Vec2, col uint32) {
	d.primQuadUV(a, Vec2{X: c.X, Y: a.Y}, c, Vec2{X: a.X, Y: c.Y}, uvA, uvC, col)
}

func (d *drawList) addRectFilled(min, max Vec2, col uint32) {
	if col>>24 == 0 {
		return
	}
	uv := d.ctx.atlas.whiteUV
	d.primRectUV(min, max, uv, uv, col)
}

func (d *drawList) addLine(p1, p2 Vec2, col uint32, thickness float32) {
	if col>>24 == 0 {
		return
	}
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length == 0 {
		return
	}
	if thickness <= 0 {
		thickness = 1
	}
	nx := -dy / length * thickness * 0.5
	ny := dx / length * thickness * 0.5
	uv := d.ctx.atlas.whiteUV
	d.primQuadUV(
		Vec2{X: p1.X + nx, Y: p1.Y + ny},
		Vec2{X: p2.X + nx, Y: p2.Y + ny},
		Vec2{X: p2.X - nx, Y: p2.Y - ny},
		Vec2{X: p1.X - nx, Y: p1.Y - ny},
		uv, uv, col)
}

func (d *drawList) addRect(min, max Vec2, col uint32, thickness float32) {
	if col>>24 == 0 {
		return
	}
	a := Vec2{X: min.X + 0.5, Y: min.Y + 0.5}
	c := Vec2{X: max.X - 0.5, Y: max.Y - 0.5}
	d.addLine(a, Vec2{X: c.X, Y: a.Y}, col, thickness)
	d.addLine(Vec2{X: c.X, Y: a.Y}, c, col, thickness)
	d.addLine(c, Vec2{X: a.X, Y: c.Y}, col, thickness)
	d.addLine(Vec2{X: a.X, Y: c.Y}, a, col, thickness)
}

// addText renders text with f at size. Lines entirely below the clip
// rectangle stop rendering.
func (d *drawList) addText(f *font, size float32, pos Vec2, col uint32, text string) {
	if col>>24 == 0 || text == "" || f == nil {
		return
	}
	scale := size / f.size
	clip := d.currentClip()
	x, y := pos.X, pos.Y
	for _, r := range text {
		if r == '\n' {
			x = pos.X
			y += size
			if y > clip.W {
				break
			}
			continue
		}
		if r == '\r' {
			continue
		}
		g := f.findGlyph(r)
		if g == nil {
			continue
		}
		if g.visible && y+size >= clip.Y {
			a := Vec2{X: x + g.x0*scale, Y: y + g.y0*scale}
			c := Vec2{X: x + g.x1*scale, Y: y + g.y1*scale}
			if c.X >= clip.X && a.X <= clip.Z {
				d.primRectUV(a, c, Vec2{X: g.u0, Y: g.v0}, Vec2{X: g.u1, Y: g.v1}, col)
			}
		}
		x += g.advanceX * scale
	}
}

// popUnusedCommand drops a trailing empty command before rendering.
func (d *drawList) popUnusedCommand() {
	if d.cmd.size == 0 {
		return
	}
	if d.lib.mem.u32(d.lastCmd()+cmdCount) == 0 {
		d.cmd.size--
	}
}

func (l *Library) drawList(h Handle) *drawList {
	return deref[drawList](l, h)
}

// DrawListVertexBuffer describes the vertex buffer of a draw list.
func (l *Library) DrawListVertexBuffer(h Handle) imguibridge.BufferDescriptor {
	return l.drawList(h).vtx.descriptor()
}

// DrawListIndexBuffer describes the index buffer of a draw list.
func (l *Library) DrawListIndexBuffer(h Handle) imguibridge.BufferDescriptor {
	return l.drawList(h).idx.descriptor()
}

// DrawListCommandBuffer describes the command buffer of a draw list. Each
// element's address is a draw command handle.
func (l *Library) DrawListCommandBuffer(h Handle) imguibridge.BufferDescriptor {
	return l.drawList(h).cmd.descriptor()
}

// DrawListAddLine adds a line segment.
func (l *Library) DrawListAddLine(h Handle, p1, p2 Vec2, col uint32, thickness float32) {
	l.drawList(h).addLine(p1, p2, col, thickness)
}

// DrawListAddRect adds a rectangle outline.
func (l *Library) DrawListAddRect(h Handle, min, max Vec2, col uint32, rounding, thickness float32) {
	l.drawList(h).addRect(min, max, col, thickness)
}

// DrawListAddRectFilled adds a filled rectangle.
func (l *Library) DrawListAddRectFilled(h Handle, min, max Vec2, col uint32, rounding float32) {
	l.drawList(h).addRectFilled(min, max, col)
}

// DrawListAddText adds text using the current font.
func (l *Library) DrawListAddText(h Handle, pos Vec2, col uint32, text string) {
	d := l.drawList(h)
	d.addText(d.ctx.font, d.ctx.fontSize, pos, col, text)
}

// DrawListPushClipRect pushes a clip rectangle.
func (l *Library) DrawListPushClipRect(h Handle, min, max Vec2, intersectWithCurrent bool) {
	l.drawList(h).pushClipRect(min, max, intersectWithCurrent)
}

// DrawListPopClipRect pops the last clip rectangle.
func (l *Library) DrawListPopClipRect(h Handle) {
	l.drawList(h).popClipRect()
}

// DrawListPushTextureID pushes a texture.
func (l *Library) DrawListPushTextureID(h Handle, id uint32) {
	l.drawList(h).pushTexture(id)
}

// DrawListPopTextureID pops the last texture.
func (l *Library) DrawListPopTextureID(h Handle) {
	l.drawList(h).popTexture()
}

// DrawCommandElementCount returns the number of indices in a command.
func (l *Library) DrawCommandElementCount(cmd Handle) uint32 {
	return l.mem.u32(uint32(cmd) + cmdCount)
}

// DrawCommandClipRect returns the clip rectangle (x1, y1, x2, y2) of a command.
func (l *Library) DrawCommandClipRect(cmd Handle) Vec4 {
	return l.mem.vec4(uint32(cmd) + cmdClip)
}

// DrawCommandTextureID returns the texture of a command.
func (l *Library) DrawCommandTextureID(cmd Handle) uint32 {
	return l.mem.u32(uint32(cmd) + cmdTexture)
}

// DrawCommandVertexOffset returns the first vertex used by a command.
func (l *Library) DrawCommandVertexOffset(cmd Handle) uint32 {
	return l.mem.u32(uint32(cmd) + cmdVtxOff)
}

// DrawCommandIndexOffset returns the first index used by a command.
func (l *Library) DrawCommandIndexOffset(cmd Handle) uint32 {
	return l.mem.u32(uint32(cmd) + cmdIdxOff)
}
