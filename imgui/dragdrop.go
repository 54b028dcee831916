package imgui

import (
	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/boundary"
)

// BeginDragDropSource calls BeginDragDropSourceV(0).
func BeginDragDropSource() bool {
	return BeginDragDropSourceV(0)
}

// BeginDragDropSourceV makes the last item a drag source. It returns true
// while the item is dragged; then SetDragDropPayload and EndDragDropSource
// must be called.
func BeginDragDropSourceV(flags int32) bool {
	return isTrue(boundary.BeginDragDropSource(flags))
}

// SetDragDropPayload calls SetDragDropPayloadV(dataType, data, CondAlways).
func SetDragDropPayload(dataType string, data []byte) bool {
	return SetDragDropPayloadV(dataType, data, CondAlways)
}

// SetDragDropPayloadV sets the payload. The engine keeps a copy of data.
// dataType is a user string of at most 32 characters; names starting with
// '_' are reserved.
func SetDragDropPayloadV(dataType string, data []byte, cond int32) bool {
	s := scope()
	defer s.Exit()
	return isTrue(boundary.SetDragDropPayload(s.String(dataType), s.Bytes(data), uint32(len(data)), cond))
}

func EndDragDropSource() {
	boundary.EndDragDropSource()
}

// BeginDragDropTarget makes the last item a drop target. When it returns
// true, AcceptDragDropPayload and EndDragDropTarget must be called.
func BeginDragDropTarget() bool {
	return isTrue(boundary.BeginDragDropTarget())
}

// AcceptDragDropPayload calls AcceptDragDropPayloadV(dataType, 0).
func AcceptDragDropPayload(dataType string) Payload {
	return AcceptDragDropPayloadV(dataType, 0)
}

// AcceptDragDropPayloadV returns the payload when one of dataType is dropped
// on the target, or the zero Payload.
func AcceptDragDropPayloadV(dataType string, flags int32) Payload {
	s := scope()
	defer s.Exit()
	return Payload(boundary.AcceptDragDropPayload(s.String(dataType), flags))
}

func EndDragDropTarget() {
	boundary.EndDragDropTarget()
}

// DragDropPayload returns the payload of the drag in progress, or the zero
// Payload.
func DragDropPayload() Payload {
	return Payload(boundary.GetDragDropPayload())
}

// Payload is the data of a drag and drop operation. It is owned by the
// context and valid until the operation ends.
type Payload imguibridge.Handle

func (payload Payload) handle() imguibridge.Handle {
	return imguibridge.Handle(payload)
}

// Valid reports whether the payload refers to an operation.
func (payload Payload) Valid() bool {
	return payload != 0
}

// Data returns the payload bytes aliasing native memory.
func (payload Payload) Data() []byte {
	if payload == 0 {
		return nil
	}
	return Bytes(boundary.PayloadData(payload.handle()))
}

func (payload Payload) IsDataType(dataType string) bool {
	if payload == 0 {
		return false
	}
	s := scope()
	defer s.Exit()
	return isTrue(boundary.PayloadIsDataType(payload.handle(), s.String(dataType)))
}

// IsPreview reports whether the payload is hovering an accepting target.
func (payload Payload) IsPreview() bool {
	return payload != 0 && isTrue(boundary.PayloadIsPreview(payload.handle()))
}

// IsDelivery reports whether the payload was dropped this frame.
func (payload Payload) IsDelivery() bool {
	return payload != 0 && isTrue(boundary.PayloadIsDelivery(payload.handle()))
}
