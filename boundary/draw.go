package boundary

// DrawListVertexBuffer describes the vertex buffer of a draw list.
func DrawListVertexBuffer(list Handle) BufferDescriptor {
	return lib().DrawListVertexBuffer(list)
}

// DrawListIndexBuffer describes the index buffer of a draw list.
func DrawListIndexBuffer(list Handle) BufferDescriptor {
	return lib().DrawListIndexBuffer(list)
}

// DrawListCommandBuffer describes the command buffer of a draw list. The
// address of each element is its draw-command handle.
func DrawListCommandBuffer(list Handle) BufferDescriptor {
	return lib().DrawListCommandBuffer(list)
}

func DrawListAddLine(list Handle, p1, p2 Ptr, col uint32, thickness float32) {
	m := mem()
	lib().DrawListAddLine(list, m.LoadVec2(p1), m.LoadVec2(p2), col, thickness)
}

func DrawListAddRect(list Handle, min, max Ptr, col uint32, rounding, thickness float32) {
	m := mem()
	lib().DrawListAddRect(list, m.LoadVec2(min), m.LoadVec2(max), col, rounding, thickness)
}

func DrawListAddRectFilled(list Handle, min, max Ptr, col uint32, rounding float32) {
	m := mem()
	lib().DrawListAddRectFilled(list, m.LoadVec2(min), m.LoadVec2(max), col, rounding)
}

func DrawListAddText(list Handle, pos Ptr, col uint32, text Ptr) {
	lib().DrawListAddText(list, mem().LoadVec2(pos), col, str(text))
}

func DrawListPushClipRect(list Handle, min, max Ptr, intersectWithCurrent Bool) {
	m := mem()
	lib().DrawListPushClipRect(list, m.LoadVec2(min), m.LoadVec2(max), truth(intersectWithCurrent))
}

func DrawListPopClipRect(list Handle) {
	lib().DrawListPopClipRect(list)
}

func DrawListPushTextureID(list Handle, id uint32) {
	lib().DrawListPushTextureID(list, id)
}

func DrawListPopTextureID(list Handle) {
	lib().DrawListPopTextureID(list)
}

func DrawCommandElementCount(cmd Handle) uint32 {
	return lib().DrawCommandElementCount(cmd)
}

func DrawCommandClipRect(cmd Handle, out Ptr) {
	mem().StoreVec4(out, lib().DrawCommandClipRect(cmd))
}

func DrawCommandTextureID(cmd Handle) uint32 {
	return lib().DrawCommandTextureID(cmd)
}

func DrawCommandVertexOffset(cmd Handle) uint32 {
	return lib().DrawCommandVertexOffset(cmd)
}

func DrawCommandIndexOffset(cmd Handle) uint32 {
	return lib().DrawCommandIndexOffset(cmd)
}

func DrawDataValid(data Handle) Bool {
	return boolOf(lib().DrawDataValid(data))
}

// DrawDataCommandLists describes the array of draw-list handles of a frame.
func DrawDataCommandLists(data Handle) BufferDescriptor {
	return lib().DrawDataCommandLists(data)
}

func DrawDataTotalVtxCount(data Handle) int32 {
	return lib().DrawDataTotalVtxCount(data)
}

func DrawDataTotalIdxCount(data Handle) int32 {
	return lib().DrawDataTotalIdxCount(data)
}

func DrawDataDisplayPos(data Handle, out Ptr) {
	mem().StoreVec2(out, lib().DrawDataDisplayPos(data))
}

func DrawDataDisplaySize(data Handle, out Ptr) {
	mem().StoreVec2(out, lib().DrawDataDisplaySize(data))
}

func DrawDataFramebufferScale(data Handle, out Ptr) {
	mem().StoreVec2(out, lib().DrawDataFramebufferScale(data))
}

func DrawDataScaleClipRects(data Handle, scale Ptr) {
	lib().DrawDataScaleClipRects(data, mem().LoadVec2(scale))
}
