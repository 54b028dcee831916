package native

import (
	"testing"
)

func TestDragDrop_Delivery(t *testing.T) {
	l := newTestLibrary(t)
	newTestContext(t, l)
	data := l.Alloc(4, 4)
	l.mem.setU32(data, 0xCAFE)

	var delivered Handle
	ui := func() {
		l.Button("src", Vec2{X: 50, Y: 20})
		if l.BeginDragDropSource(0) {
			l.SetDragDropPayload("NUM", Ptr(data), 4, 0)
			l.EndDragDropSource()
		}
		l.Button("dst", Vec2{X: 50, Y: 20})
		if l.BeginDragDropTarget() {
			if p := l.AcceptDragDropPayload("NUM", 0); p != 0 {
				delivered = p
			}
			l.EndDragDropTarget()
		}
	}

	inputFrame(l, Vec2{X: 20, Y: 15}, true, ui)
	if l.GetDragDropPayload() != 0 {
		t.Fatal("drag should not start before the mouse moves")
	}

	inputFrame(l, Vec2{X: 20, Y: 40}, true, ui)
	if l.GetDragDropPayload() == 0 {
		t.Fatal("drag should be active after moving past the threshold")
	}
	if delivered != 0 {
		t.Fatal("payload delivered before release")
	}

	inputFrame(l, Vec2{X: 20, Y: 40}, false, ui)
	if delivered == 0 {
		t.Fatal("payload not delivered on release")
	}
	if !l.PayloadIsDelivery(delivered) || !l.PayloadIsDataType(delivered, "NUM") {
		t.Error("delivered payload flags are wrong")
	}
	d := l.PayloadData(delivered)
	if d.Count != 4 || d.ByteSize != 4 {
		t.Fatalf("payload descriptor = %+v", d)
	}
	if got := l.mem.u32(uint32(d.Ptr)); got != 0xCAFE {
		t.Errorf("payload data = %#x, want 0xCAFE", got)
	}

	inputFrame(l, Vec2{X: 20, Y: 40}, false, func() {})
	if l.GetDragDropPayload() != 0 {
		t.Error("drag state should clear the frame after delivery")
	}
}

func TestDragDrop_TypeMismatch(t *testing.T) {
	l := newTestLibrary(t)
	newTestContext(t, l)
	data := l.Alloc(1, 1)

	var accepted Handle
	ui := func() {
		l.Button("src", Vec2{X: 50, Y: 20})
		if l.BeginDragDropSource(0) {
			l.SetDragDropPayload("A", Ptr(data), 1, 0)
			l.EndDragDropSource()
		}
		l.Button("dst", Vec2{X: 50, Y: 20})
		if l.BeginDragDropTarget() {
			accepted = l.AcceptDragDropPayload("B", DragDropFlagsAcceptBeforeDelivery)
			l.EndDragDropTarget()
		}
	}
	inputFrame(l, Vec2{X: 20, Y: 15}, true, ui)
	inputFrame(l, Vec2{X: 20, Y: 40}, true, ui)
	inputFrame(l, Vec2{X: 20, Y: 40}, false, ui)
	if accepted != 0 {
		t.Error("payload of another type was accepted")
	}
}

func TestDragDrop_SetPayloadOutsideSource(t *testing.T) {
	l := newTestLibrary(t)
	newTestContext(t, l)
	l.NewFrame()
	expectFailure(t, func() { l.SetDragDropPayload("A", 0, 0, 0) })
}
