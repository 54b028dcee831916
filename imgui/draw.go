package imgui

import (
	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/boundary"
)

// VertexBufferLayout returns the layout of DrawVert elements: the stride and
// the "pos", "uv" and "col" offsets.
func VertexBufferLayout() Layout {
	return boundary.VertexBufferLayout()
}

// IndexBufferLayout returns the layout of DrawIdx elements.
func IndexBufferLayout() Layout {
	return boundary.IndexBufferLayout()
}

// CommandBufferLayout returns the layout of draw command records.
func CommandBufferLayout() Layout {
	return boundary.CommandBufferLayout()
}

// DrawData contains all draw lists to render in one frame.
type DrawData imguibridge.Handle

func (data DrawData) handle() imguibridge.Handle {
	return imguibridge.Handle(data)
}

// Valid reports whether the data is usable. It is only valid after Render
// and until the next NewFrame.
func (data DrawData) Valid() bool {
	return data != 0 && isTrue(boundary.DrawDataValid(data.handle()))
}

// CommandLists returns the draw lists to render, in order.
func (data DrawData) CommandLists() []DrawList {
	if data == 0 {
		return nil
	}
	raw := View[uint32](boundary.DrawDataCommandLists(data.handle()))
	lists := make([]DrawList, len(raw))
	for i, h := range raw {
		lists[i] = DrawList(h)
	}
	return lists
}

// TotalVertexCount is the sum of the vertex counts of all lists.
func (data DrawData) TotalVertexCount() int {
	return int(boundary.DrawDataTotalVtxCount(data.handle()))
}

// TotalIndexCount is the sum of the index counts of all lists.
func (data DrawData) TotalIndexCount() int {
	return int(boundary.DrawDataTotalIdxCount(data.handle()))
}

// DisplayPos is the upper-left corner of the viewport to render.
func (data DrawData) DisplayPos() Vec2 {
	return readVec2(func(out imguibridge.Ptr) { boundary.DrawDataDisplayPos(data.handle(), out) })
}

func (data DrawData) DisplaySize() Vec2 {
	return readVec2(func(out imguibridge.Ptr) { boundary.DrawDataDisplaySize(data.handle(), out) })
}

func (data DrawData) FramebufferScale() Vec2 {
	return readVec2(func(out imguibridge.Ptr) { boundary.DrawDataFramebufferScale(data.handle(), out) })
}

// ScaleClipRects rescales every clip rectangle, for framebuffers whose
// resolution differs from the display size.
func (data DrawData) ScaleClipRects(scale Vec2) {
	s := scope()
	defer s.Exit()
	boundary.DrawDataScaleClipRects(data.handle(), vec2Ptr(s, scale))
}

// DrawList is the geometry of one window. Its buffers are owned by the
// engine and are rebuilt every frame.
type DrawList imguibridge.Handle

func (list DrawList) handle() imguibridge.Handle {
	return imguibridge.Handle(list)
}

// VertexBuffer describes the DrawVert elements of the list.
func (list DrawList) VertexBuffer() BufferDescriptor {
	return boundary.DrawListVertexBuffer(list.handle())
}

// IndexBuffer describes the DrawIdx elements of the list.
func (list DrawList) IndexBuffer() BufferDescriptor {
	return boundary.DrawListIndexBuffer(list.handle())
}

// CommandBuffer describes the draw command records of the list.
func (list DrawList) CommandBuffer() BufferDescriptor {
	return boundary.DrawListCommandBuffer(list.handle())
}

// Commands returns one DrawCommand per record in the command buffer.
func (list DrawList) Commands() []DrawCommand {
	d := list.CommandBuffer()
	if d.Empty() {
		return nil
	}
	stride := d.ByteSize / d.Count
	cmds := make([]DrawCommand, d.Count)
	for i := range cmds {
		cmds[i] = DrawCommand(uint32(d.Ptr) + uint32(i)*stride)
	}
	return cmds
}

// AddLine adds a line segment.
func (list DrawList) AddLine(p1, p2 Vec2, col uint32, thickness float32) {
	s := scope()
	defer s.Exit()
	boundary.DrawListAddLine(list.handle(), vec2Ptr(s, p1), vec2Ptr(s, p2), col, thickness)
}

// AddRect adds an outlined rectangle.
func (list DrawList) AddRect(min, max Vec2, col uint32, rounding, thickness float32) {
	s := scope()
	defer s.Exit()
	boundary.DrawListAddRect(list.handle(), vec2Ptr(s, min), vec2Ptr(s, max), col, rounding, thickness)
}

// AddRectFilled adds a filled rectangle.
func (list DrawList) AddRectFilled(min, max Vec2, col uint32, rounding float32) {
	s := scope()
	defer s.Exit()
	boundary.DrawListAddRectFilled(list.handle(), vec2Ptr(s, min), vec2Ptr(s, max), col, rounding)
}

// AddText adds text drawn with the current font.
func (list DrawList) AddText(pos Vec2, col uint32, text string) {
	s := scope()
	defer s.Exit()
	boundary.DrawListAddText(list.handle(), vec2Ptr(s, pos), col, s.String(text))
}

func (list DrawList) PushClipRect(min, max Vec2, intersectWithCurrent bool) {
	s := scope()
	defer s.Exit()
	boundary.DrawListPushClipRect(list.handle(), vec2Ptr(s, min), vec2Ptr(s, max), imguibridge.BoolOf(intersectWithCurrent))
}

func (list DrawList) PopClipRect() {
	boundary.DrawListPopClipRect(list.handle())
}

func (list DrawList) PushTextureID(id TextureID) {
	boundary.DrawListPushTextureID(list.handle(), uint32(id))
}

func (list DrawList) PopTextureID() {
	boundary.DrawListPopTextureID(list.handle())
}

// DrawCommand is one draw call: ElementCount indices starting at
// IndexOffset, clipped to ClipRect, sampling TextureID.
type DrawCommand imguibridge.Handle

func (cmd DrawCommand) handle() imguibridge.Handle {
	return imguibridge.Handle(cmd)
}

func (cmd DrawCommand) ElementCount() int {
	return int(boundary.DrawCommandElementCount(cmd.handle()))
}

// ClipRect is (min x, min y, max x, max y) in display coordinates.
func (cmd DrawCommand) ClipRect() Vec4 {
	return readVec4(func(out imguibridge.Ptr) { boundary.DrawCommandClipRect(cmd.handle(), out) })
}

func (cmd DrawCommand) TextureID() TextureID {
	return TextureID(boundary.DrawCommandTextureID(cmd.handle()))
}

func (cmd DrawCommand) VertexOffset() int {
	return int(boundary.DrawCommandVertexOffset(cmd.handle()))
}

func (cmd DrawCommand) IndexOffset() int {
	return int(boundary.DrawCommandIndexOffset(cmd.handle()))
}
