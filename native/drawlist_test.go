package native

import (
	"testing"
)

func newTestDrawList(t *testing.T) (*Library, *drawList) {
	t.Helper()
	l := newTestLibrary(t)
	h := newTestContext(t, l)
	d := newDrawList(l, deref[uiContext](l, h))
	d.reset()
	return l, d
}

func TestDrawList_RectBuffers(t *testing.T) {
	l, d := newTestDrawList(t)
	l.DrawListAddRectFilled(d.handle, Vec2{X: 1, Y: 2}, Vec2{X: 11, Y: 12}, 0xFF0000FF, 0)

	vtx := l.DrawListVertexBuffer(d.handle)
	if vtx.Count != 4 || vtx.ByteSize != 80 {
		t.Errorf("vertex buffer = %d elements / %d bytes, want 4 / 80", vtx.Count, vtx.ByteSize)
	}
	idx := l.DrawListIndexBuffer(d.handle)
	if idx.Count != 6 || idx.ByteSize != 12 {
		t.Errorf("index buffer = %d elements / %d bytes, want 6 / 12", idx.Count, idx.ByteSize)
	}

	// Second vertex is the top-right corner.
	at := uint32(vtx.Ptr) + vertSize
	if got := l.mem.vec2(at + vertPos); got != (Vec2{X: 11, Y: 2}) {
		t.Errorf("vertex 1 pos = %v", got)
	}
	if got := l.mem.u32(at + vertCol); got != 0xFF0000FF {
		t.Errorf("vertex 1 col = %#x", got)
	}
	indices := l.mem.view(uint32(idx.Ptr), idx.ByteSize)
	want := []byte{0, 0, 1, 0, 2, 0, 0, 0, 2, 0, 3, 0}
	for i := range want {
		if indices[i] != want[i] {
			t.Fatalf("index bytes = %v, want %v", indices, want)
		}
	}
}

func TestDrawList_TransparentSkipped(t *testing.T) {
	l, d := newTestDrawList(t)
	l.DrawListAddRectFilled(d.handle, Vec2{}, Vec2{X: 5, Y: 5}, 0x00FFFFFF, 0)
	if vtx := l.DrawListVertexBuffer(d.handle); vtx.Count != 0 || vtx.ByteSize != 0 {
		t.Errorf("transparent rect produced %d vertices", vtx.Count)
	}
}

func TestDrawList_CommandsSplitOnClip(t *testing.T) {
	l, d := newTestDrawList(t)
	col := uint32(0xFFFFFFFF)
	l.DrawListAddRectFilled(d.handle, Vec2{}, Vec2{X: 5, Y: 5}, col, 0)
	l.DrawListPushClipRect(d.handle, Vec2{X: 1, Y: 1}, Vec2{X: 3, Y: 3}, false)
	l.DrawListAddRectFilled(d.handle, Vec2{}, Vec2{X: 5, Y: 5}, col, 0)
	l.DrawListAddRectFilled(d.handle, Vec2{}, Vec2{X: 5, Y: 5}, col, 0)
	l.DrawListPopClipRect(d.handle)

	d.popUnusedCommand()
	cmds := l.DrawListCommandBuffer(d.handle)
	if cmds.Count != 2 || cmds.ByteSize != 2*cmdSize {
		t.Fatalf("commands = %d / %d bytes, want 2 / %d", cmds.Count, cmds.ByteSize, 2*cmdSize)
	}
	first := Handle(cmds.Ptr)
	second := Handle(uint32(cmds.Ptr) + cmdSize)
	if got := l.DrawCommandElementCount(first); got != 6 {
		t.Errorf("first command elements = %d, want 6", got)
	}
	if got := l.DrawCommandElementCount(second); got != 12 {
		t.Errorf("second command elements = %d, want 12", got)
	}
	if got := l.DrawCommandIndexOffset(second); got != 6 {
		t.Errorf("second command index offset = %d, want 6", got)
	}
	if got := l.DrawCommandClipRect(second); got != (Vec4{X: 1, Y: 1, Z: 3, W: 3}) {
		t.Errorf("second command clip = %v", got)
	}
	if got := l.DrawCommandClipRect(first); got != fullscreenClip {
		t.Errorf("first command clip = %v", got)
	}
}

func TestDrawList_PopClipUnderflow(t *testing.T) {
	l, d := newTestDrawList(t)
	expectFailure(t, func() { l.DrawListPopClipRect(d.handle) })
}

func TestDrawList_ElementLayouts(t *testing.T) {
	tests := []struct {
		elem   Element
		size   uint32
		fields map[string]uint32
	}{
		{ElementDrawVert, 20, map[string]uint32{"pos": 0, "uv": 8, "col": 16}},
		{ElementDrawIdx, 2, nil},
		{ElementDrawCmd, 32, map[string]uint32{
			"elem-count": 0, "clip-rect": 4, "texture-id": 20, "vtx-offset": 24, "idx-offset": 28,
		}},
		{ElementVec4, 16, map[string]uint32{"x": 0, "y": 4, "z": 8, "w": 12}},
		{ElementBool, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.elem.String(), func(t *testing.T) {
			info := ElementLayout(tt.elem)
			if info.Size != tt.size {
				t.Errorf("size = %d, want %d", info.Size, tt.size)
			}
			for field, want := range tt.fields {
				if got, ok := info.Offset(field); !ok || got != want {
					t.Errorf("%s offset = %d (%v), want %d", field, got, ok, want)
				}
			}
		})
	}
}
