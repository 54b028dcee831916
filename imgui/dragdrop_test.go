package imgui_test

import (
	"encoding/binary"
	"testing"

	"github.com/wippyai/imgui-bridge/imgui"
)

func TestDragDrop_PayloadBytes(t *testing.T) {
	newTestContext(t)
	data := binary.LittleEndian.AppendUint32(nil, 0xCAFE)

	var delivered imgui.Payload
	ui := func() {
		imgui.ButtonV("src", imgui.Vec2{X: 50, Y: 20})
		if imgui.BeginDragDropSource() {
			imgui.SetDragDropPayload("NUM", data)
			imgui.EndDragDropSource()
		}
		imgui.ButtonV("dst", imgui.Vec2{X: 50, Y: 20})
		if imgui.BeginDragDropTarget() {
			if p := imgui.AcceptDragDropPayload("NUM"); p.Valid() {
				delivered = p
			}
			imgui.EndDragDropTarget()
		}
	}

	inputFrame(imgui.Vec2{X: 20, Y: 15}, true, ui)
	inputFrame(imgui.Vec2{X: 20, Y: 40}, true, ui)
	if !imgui.DragDropPayload().Valid() {
		t.Fatal("drag should be active after moving past the threshold")
	}
	data[0] = 0

	inputFrame(imgui.Vec2{X: 20, Y: 40}, false, ui)
	if !delivered.Valid() {
		t.Fatal("payload not delivered on release")
	}
	if !delivered.IsDelivery() || !delivered.IsDataType("NUM") || delivered.IsDataType("OTHER") {
		t.Error("delivered payload flags are wrong")
	}
	got := delivered.Data()
	if len(got) != 4 || binary.LittleEndian.Uint32(got) != 0xCAFE {
		t.Errorf("payload = %x, want the bytes set while dragging", got)
	}
}

func TestPayload_Zero(t *testing.T) {
	var p imgui.Payload
	if p.Valid() || p.Data() != nil || p.IsDataType("NUM") || p.IsDelivery() || p.IsPreview() {
		t.Error("zero payload reported data")
	}
}
