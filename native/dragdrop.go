package native

import (
	"fmt"

	imguibridge "github.com/wippyai/imgui-bridge"
)

// Drag and drop flags.
const (
	DragDropFlagsSourceNoPreviewTooltip  int32 = 1 << 0
	DragDropFlagsSourceAllowNullID       int32 = 1 << 3
	DragDropFlagsAcceptBeforeDelivery    int32 = 1 << 10
	DragDropFlagsAcceptNoDrawDefaultRect int32 = 1 << 11
)

// dragThreshold is the mouse travel that turns a held item into a drag source.
const dragThreshold = 6

type dragDropState struct {
	active       bool
	withinSource bool
	withinTarget bool
	sourceID     uint32
	sourceFrame  int32
	targetID     uint32
	acceptFrame  int32
}

// payload holds the bytes a drag source offers. The data lives in linear
// memory and is owned by the context.
type payload struct {
	lib            *Library
	handle         Handle
	data           vector
	dataType       string
	sourceID       uint32
	dataFrameCount int32
	preview        bool
	delivery       bool
}

func newPayload(l *Library) *payload {
	p := &payload{lib: l, data: newVector(l, ElementAlpha8), dataFrameCount: -1}
	p.handle = l.newObject(p)
	return p
}

func (p *payload) reset() {
	p.data.clear()
	p.dataType = ""
	p.sourceID = 0
	p.dataFrameCount = -1
	p.preview = false
	p.delivery = false
}

func (p *payload) release() {
	p.data.release()
	p.lib.dropObject(p.handle)
}

func (c *uiContext) clearDragDrop() {
	c.dragDrop = dragDropState{acceptFrame: -1}
	c.payload.reset()
}

// BeginDragDropSource turns the last item into a drag source once it is held
// and dragged. Between a true return and EndDragDropSource the caller must set
// a payload.
func (l *Library) BeginDragDropSource(flags int32) bool {
	c := l.ctx()
	io := c.io
	id := c.lastItem.id
	if id == 0 {
		if flags&DragDropFlagsSourceAllowNullID == 0 {
			return false
		}
		w := c.currentWindow("BeginDragDropSource")
		r := c.lastItem.rect
		id = w.getID(fmt.Sprintf("#SourceExtern%d,%d", int32(r.X), int32(r.Y)))
		if c.lastItem.hovered && io.mouseClicked[0] {
			c.activeID = id
		}
	}
	if c.activeID != id || !io.mouseDown[0] {
		return false
	}
	if !c.dragDrop.active && io.mouseDragDistance(0) < dragThreshold {
		return false
	}
	if !c.dragDrop.active || c.dragDrop.sourceID != id {
		c.clearDragDrop()
		c.dragDrop.active = true
		c.dragDrop.sourceID = id
		c.payload.sourceID = id
	}
	c.dragDrop.sourceFrame = c.frameCount
	c.dragDrop.withinSource = true
	return true
}

// SetDragDropPayload copies size bytes at data into the payload under typ.
// It reports whether a target accepted the payload during the previous frame.
func (l *Library) SetDragDropPayload(typ string, data Ptr, size uint32, cond int32) bool {
	c := l.ctx()
	l.assert(c.dragDrop.withinSource, "SetDragDropPayload", "not called between BeginDragDropSource() and EndDragDropSource()")
	l.assert(typ != "" && len(typ) < 32, "SetDragDropPayload", "payload type must be 1 to 31 bytes")
	l.assert(data != 0 || size == 0, "SetDragDropPayload", "payload data must not be null")
	p := c.payload
	if cond == 0 || cond == CondAlways || p.dataFrameCount == -1 {
		p.dataType = typ
		p.data.resize(size)
		if size > 0 {
			copy(p.data.bytes(), l.mem.view(uint32(data), size))
		}
	}
	p.dataFrameCount = c.frameCount
	return c.dragDrop.acceptFrame == c.frameCount || c.dragDrop.acceptFrame == c.frameCount-1
}

// EndDragDropSource closes the source opened by BeginDragDropSource.
func (l *Library) EndDragDropSource() {
	c := l.ctx()
	l.assert(c.dragDrop.withinSource, "EndDragDropSource", "not after a BeginDragDropSource()?")
	c.dragDrop.withinSource = false
}

// BeginDragDropTarget reports whether the last item is hovered while a drag
// is active.
func (l *Library) BeginDragDropTarget() bool {
	c := l.ctx()
	if !c.dragDrop.active || c.payload.dataFrameCount == -1 {
		return false
	}
	if !c.lastItem.hovered || c.lastItem.clipped {
		return false
	}
	id := c.lastItem.id
	if id != 0 && id == c.dragDrop.sourceID {
		return false
	}
	c.dragDrop.targetID = id
	c.dragDrop.withinTarget = true
	return true
}

// AcceptDragDropPayload returns the payload when its type matches typ (any
// type when typ is empty). Unless AcceptBeforeDelivery is set it is only
// returned on the frame the mouse is released.
func (l *Library) AcceptDragDropPayload(typ string, flags int32) Handle {
	c := l.ctx()
	l.assert(c.dragDrop.withinTarget, "AcceptDragDropPayload", "not called between BeginDragDropTarget() and EndDragDropTarget()")
	p := c.payload
	if typ != "" && p.dataType != typ {
		return 0
	}
	w := c.currentWindow("AcceptDragDropPayload")
	c.dragDrop.acceptFrame = c.frameCount
	p.preview = true
	p.delivery = c.io.mouseReleased[0]
	if flags&DragDropFlagsAcceptNoDrawDefaultRect == 0 {
		r := c.lastItem.rect
		w.drawList.addRect(Vec2{X: r.X - 3, Y: r.Y - 3}, Vec2{X: r.Z + 3, Y: r.W + 3}, c.colorU32(ColDragDropTarget), 2)
	}
	if !p.delivery && flags&DragDropFlagsAcceptBeforeDelivery == 0 {
		return 0
	}
	return p.handle
}

// EndDragDropTarget closes the target opened by BeginDragDropTarget.
func (l *Library) EndDragDropTarget() {
	c := l.ctx()
	l.assert(c.dragDrop.withinTarget, "EndDragDropTarget", "not after a BeginDragDropTarget()?")
	c.dragDrop.withinTarget = false
}

// GetDragDropPayload returns the active payload, or 0 when nothing is dragged.
func (l *Library) GetDragDropPayload() Handle {
	c := l.ctx()
	if !c.dragDrop.active || c.payload.dataFrameCount == -1 {
		return 0
	}
	return c.payload.handle
}

// PayloadData describes the payload bytes. It is valid until the payload is
// next set.
func (l *Library) PayloadData(h Handle) imguibridge.BufferDescriptor {
	return deref[payload](l, h).data.descriptor()
}

// PayloadIsDataType reports whether the payload was set under typ.
func (l *Library) PayloadIsDataType(h Handle, typ string) bool {
	p := deref[payload](l, h)
	return p.dataFrameCount != -1 && p.dataType == typ
}

// PayloadIsPreview reports whether a target is hovering with the payload.
func (l *Library) PayloadIsPreview(h Handle) bool {
	return deref[payload](l, h).preview
}

// PayloadIsDelivery reports whether the payload is being dropped this frame.
func (l *Library) PayloadIsDelivery(h Handle) bool {
	return deref[payload](l, h).delivery
}
