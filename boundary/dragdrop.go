package boundary

func BeginDragDropSource(flags int32) Bool {
	return boolOf(lib().BeginDragDropSource(flags))
}

// SetDragDropPayload copies size bytes at data into the payload under the
// type named by typ.
func SetDragDropPayload(typ Ptr, data Ptr, size uint32, cond int32) Bool {
	return boolOf(lib().SetDragDropPayload(str(typ), data, size, cond))
}

func EndDragDropSource() {
	lib().EndDragDropSource()
}

func BeginDragDropTarget() Bool {
	return boolOf(lib().BeginDragDropTarget())
}

// AcceptDragDropPayload returns the payload handle when one of type typ is
// delivered, or null.
func AcceptDragDropPayload(typ Ptr, flags int32) Handle {
	return lib().AcceptDragDropPayload(str(typ), flags)
}

func EndDragDropTarget() {
	lib().EndDragDropTarget()
}

func GetDragDropPayload() Handle {
	return lib().GetDragDropPayload()
}

// PayloadData describes the payload bytes.
func PayloadData(payload Handle) BufferDescriptor {
	return lib().PayloadData(payload)
}

func PayloadIsDataType(payload Handle, typ Ptr) Bool {
	return boolOf(lib().PayloadIsDataType(payload, str(typ)))
}

func PayloadIsPreview(payload Handle) Bool {
	return boolOf(lib().PayloadIsPreview(payload))
}

func PayloadIsDelivery(payload Handle) Bool {
	return boolOf(lib().PayloadIsDelivery(payload))
}
