package native

import (
	imguibridge "github.com/wippyai/imgui-bridge"
)

// drawData is the frame output: the draw lists to render, in order.
type drawData struct {
	lib    *Library
	handle Handle

	valid            bool
	lists            vector
	totalVtxCount    int32
	totalIdxCount    int32
	displayPos       Vec2
	displaySize      Vec2
	framebufferScale Vec2
}

func newDrawData(l *Library) *drawData {
	dd := &drawData{
		lib:              l,
		lists:            newVector(l, ElementHandle),
		framebufferScale: Vec2{X: 1, Y: 1},
	}
	dd.handle = l.newObject(dd)
	return dd
}

func (dd *drawData) release() {
	dd.lists.release()
	dd.lib.dropObject(dd.handle)
}

func (dd *drawData) clear() {
	dd.valid = false
	dd.lists.clear()
	dd.totalVtxCount = 0
	dd.totalIdxCount = 0
}

func (dd *drawData) add(d *drawList) {
	at := dd.lists.grow(1)
	dd.lib.mem.setU32(at, uint32(d.handle))
	dd.totalVtxCount += int32(d.vtx.size)
	dd.totalIdxCount += int32(d.idx.size)
}

func (l *Library) drawData(h Handle) *drawData {
	return deref[drawData](l, h)
}

// GetDrawData returns the draw data of the last Render, or 0 when it is not
// valid.
func (l *Library) GetDrawData() Handle {
	dd := l.ctx().drawData
	if !dd.valid {
		return 0
	}
	return dd.handle
}

// DrawDataValid reports whether the draw data holds a rendered frame.
func (l *Library) DrawDataValid(h Handle) bool {
	return l.drawData(h).valid
}

// DrawDataCommandLists describes the array of draw list handles.
func (l *Library) DrawDataCommandLists(h Handle) imguibridge.BufferDescriptor {
	return l.drawData(h).lists.descriptor()
}

// DrawDataTotalVtxCount returns the vertex count across all lists.
func (l *Library) DrawDataTotalVtxCount(h Handle) int32 {
	return l.drawData(h).totalVtxCount
}

// DrawDataTotalIdxCount returns the index count across all lists.
func (l *Library) DrawDataTotalIdxCount(h Handle) int32 {
	return l.drawData(h).totalIdxCount
}

// DrawDataDisplayPos returns the top-left of the rendered viewport.
func (l *Library) DrawDataDisplayPos(h Handle) Vec2 {
	return l.drawData(h).displayPos
}

// DrawDataDisplaySize returns the size of the rendered viewport.
func (l *Library) DrawDataDisplaySize(h Handle) Vec2 {
	return l.drawData(h).displaySize
}

// DrawDataFramebufferScale returns the framebuffer scale.
func (l *Library) DrawDataFramebufferScale(h Handle) Vec2 {
	return l.drawData(h).framebufferScale
}

// DrawDataScaleClipRects scales the clip rectangle of every command, for
// framebuffers whose resolution differs from the display.
func (l *Library) DrawDataScaleClipRects(h Handle, scale Vec2) {
	dd := l.drawData(h)
	m := l.mem
	for i := uint32(0); i < dd.lists.size; i++ {
		d := l.drawList(Handle(m.u32(dd.lists.at(i))))
		for j := uint32(0); j < d.cmd.size; j++ {
			at := d.cmd.at(j) + cmdClip
			r := m.vec4(at)
			m.setVec4(at, Vec4{X: r.X * scale.X, Y: r.Y * scale.Y, Z: r.Z * scale.X, W: r.W * scale.Y})
		}
	}
}
