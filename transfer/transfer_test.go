package transfer

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/native"
)

func newTestLibrary(t *testing.T, cfg *native.Config) *native.Library {
	t.Helper()
	l, err := native.Load(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	t.Cleanup(func() { _ = l.Close(context.Background()) })
	return l
}

// roundTrip imports v into a scope and exports it straight back.
func roundTrip[T any](t *testing.T, l *native.Library, c Codec[T], v T) T {
	t.Helper()
	s := Enter(l)
	defer s.Exit()
	ptr := Wrap(s, c, &v)
	if ptr == 0 {
		t.Fatal("Wrap() returned null for a non-nil value")
	}
	var out T
	if err := c.Export(&out, l.Memory(), ptr); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	return out
}

func TestCodec_RoundTrip(t *testing.T) {
	l := newTestLibrary(t, nil)

	for _, v := range []bool{false, true} {
		if got := roundTrip(t, l, Bool, v); got != v {
			t.Errorf("Bool round trip of %v = %v", v, got)
		}
	}
	for _, v := range []int32{0, 1, -1, math.MaxInt32, math.MinInt32} {
		if got := roundTrip(t, l, Int32, v); got != v {
			t.Errorf("Int32 round trip of %d = %d", v, got)
		}
	}

	floats := []uint32{
		0x00000000,
		0x80000000, // -0
		0x3f800000,
		0x7f800000, // +Inf
		0xff800000, // -Inf
		0x7fc00001, // quiet NaN with payload
		0x7fa00000, // signaling NaN
		0x00000001, // smallest subnormal
	}
	for _, bits := range floats {
		got := roundTrip(t, l, Float32, math.Float32frombits(bits))
		if math.Float32bits(got) != bits {
			t.Errorf("Float32 round trip of %#08x = %#08x", bits, math.Float32bits(got))
		}
	}

	v2 := imguibridge.Vec2{X: -3.5, Y: float32(math.Inf(1))}
	if got := roundTrip(t, l, Vec2, v2); got != v2 {
		t.Errorf("Vec2 round trip = %+v, want %+v", got, v2)
	}
	v4 := imguibridge.Vec4{X: 1, Y: 0.5, Z: 0.25, W: float32(math.Inf(-1))}
	if got := roundTrip(t, l, Vec4, v4); got != v4 {
		t.Errorf("Vec4 round trip = %+v, want %+v", got, v4)
	}

	cs := native.ClipperState{StartPosY: 12.5, ItemsHeight: 17, ItemsCount: 100, StepNo: 1, DisplayStart: 3, DisplayEnd: 9}
	if diff := cmp.Diff(cs, roundTrip(t, l, ClipperState, cs)); diff != "" {
		t.Errorf("ClipperState round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCodec_NaNPayloadInVec4(t *testing.T) {
	l := newTestLibrary(t, nil)
	nan := math.Float32frombits(0x7fc0beef)
	got := roundTrip(t, l, Vec4, imguibridge.Vec4{X: nan, W: nan})
	if math.Float32bits(got.X) != 0x7fc0beef || math.Float32bits(got.W) != 0x7fc0beef {
		t.Errorf("NaN payload lost: %#08x %#08x", math.Float32bits(got.X), math.Float32bits(got.W))
	}
}

func TestCodec_BoolNonzeroExportsTrue(t *testing.T) {
	l := newTestLibrary(t, nil)
	s := Enter(l)
	defer s.Exit()
	ptr := s.Alloc(1, 1)
	for _, b := range []uint8{0, 1, 2, 0xff} {
		if err := l.Memory().WriteU8(uint32(ptr), b); err != nil {
			t.Fatal(err)
		}
		var got bool
		if err := Bool.Export(&got, l.Memory(), ptr); err != nil {
			t.Fatal(err)
		}
		if got != (b != 0) {
			t.Errorf("byte %d exported as %v", b, got)
		}
	}
}

func TestCodec_Layout(t *testing.T) {
	tests := []struct {
		name        string
		size, align uint32
		got         func() (uint32, uint32)
	}{
		{"bool", 1, 1, func() (uint32, uint32) { i := Bool.Layout(); return i.Size, i.Align }},
		{"s32", 4, 4, func() (uint32, uint32) { i := Int32.Layout(); return i.Size, i.Align }},
		{"f32", 4, 4, func() (uint32, uint32) { i := Float32.Layout(); return i.Size, i.Align }},
		{"vec2", 8, 4, func() (uint32, uint32) { i := Vec2.Layout(); return i.Size, i.Align }},
		{"vec4", 16, 4, func() (uint32, uint32) { i := Vec4.Layout(); return i.Size, i.Align }},
		{"clipper-state", 24, 4, func() (uint32, uint32) { i := ClipperState.Layout(); return i.Size, i.Align }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, align := tt.got()
			if size != tt.size || align != tt.align {
				t.Errorf("layout = (%d, %d), want (%d, %d)", size, align, tt.size, tt.align)
			}
		})
	}
}

func TestWrap_NullPassthrough(t *testing.T) {
	l := newTestLibrary(t, nil)
	before := l.Scratch().Used()
	s := Enter(l)
	if ptr := Wrap[int32](s, Int32, nil); ptr != 0 {
		t.Errorf("Wrap(nil) = %#x, want null", uint32(ptr))
	}
	if ptr := Wrap[imguibridge.Vec4](s, Vec4, nil); ptr != 0 {
		t.Errorf("Wrap(nil) = %#x, want null", uint32(ptr))
	}
	if got := l.Scratch().Used(); got != before {
		t.Errorf("scratch used = %d, want %d", got, before)
	}
	s.Exit()
}

func TestWrap_WriteBackExactlyOnce(t *testing.T) {
	l := newTestLibrary(t, nil)
	mem := l.Memory()

	host := int32(1)
	s := Enter(l)
	ptr := Wrap(s, Int32, &host)
	if got, _ := mem.ReadU32(uint32(ptr)); got != 1 {
		t.Fatalf("imported value = %d, want 1", got)
	}
	_ = mem.WriteU32(uint32(ptr), 7)
	if host != 1 {
		t.Fatal("host value changed before Exit")
	}
	s.Exit()
	if host != 7 {
		t.Fatalf("host = %d after Exit, want 7", host)
	}

	_ = mem.WriteU32(uint32(ptr), 9)
	s.Exit()
	if host != 7 {
		t.Errorf("second Exit wrote back again: host = %d", host)
	}
}

func TestWrap_WriteBackOnPanic(t *testing.T) {
	l := newTestLibrary(t, nil)
	host := float32(0.5)

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Fatalf("recovered %v, want boom", r)
			}
		}()
		s := Enter(l)
		defer s.Exit()
		ptr := Wrap(s, Float32, &host)
		_ = l.Memory().WriteU32(uint32(ptr), math.Float32bits(2.5))
		panic("boom")
	}()

	if host != 2.5 {
		t.Errorf("host = %v after panic, want 2.5", host)
	}
}

func TestScope_PanickingFinisherKeepsWriteBacks(t *testing.T) {
	l := newTestLibrary(t, nil)
	host := float32(1)
	var later bool
	before := l.Scratch().Mark()

	func() {
		defer func() {
			if r := recover(); r != "newest" {
				t.Fatalf("recovered %v, want the first failure", r)
			}
		}()
		s := Enter(l)
		defer s.Exit()
		ptr := Wrap(s, Float32, &host)
		_ = l.Memory().WriteU32(uint32(ptr), math.Float32bits(2))
		s.Defer(func() { panic("oldest") })
		s.Defer(func() { panic("newest") })
		s.Defer(func() { later = true })
	}()

	if host != 2 {
		t.Errorf("host = %v after failing write-back, want 2", host)
	}
	if !later {
		t.Error("newest finisher did not run")
	}
	if mark := l.Scratch().Mark(); mark != before {
		t.Errorf("scratch mark = %d after exit, want %d", mark, before)
	}
}

func TestScope_FinishersRunNewestFirst(t *testing.T) {
	l := newTestLibrary(t, nil)
	var order []int
	s := Enter(l)
	for i := range 3 {
		s.Defer(func() { order = append(order, i) })
	}
	s.Exit()
	if diff := cmp.Diff([]int{2, 1, 0}, order); diff != "" {
		t.Errorf("finisher order mismatch (-want +got):\n%s", diff)
	}
}

func TestScope_ReleasesScratch(t *testing.T) {
	l := newTestLibrary(t, nil)
	before := l.Scratch().Used()

	outer := Enter(l)
	a, b := int32(1), int32(2)
	Wrap(outer, Int32, &a)
	inner := Enter(l)
	Wrap(inner, Int32, &b)
	inner.String("nested")
	inner.Exit()
	mid := l.Scratch().Used()
	outer.Exit()

	if mid == before {
		t.Error("outer scope allocation not visible after inner exit")
	}
	if got := l.Scratch().Used(); got != before {
		t.Errorf("scratch used = %d after Exit, want %d", got, before)
	}
}

func TestScope_HeapFallback(t *testing.T) {
	l := newTestLibrary(t, &native.Config{ScratchSize: 64})
	live := l.Heap().Stats().LiveBytes

	s := Enter(l)
	small := s.Alloc(32, 4)
	big := s.Alloc(256, 4)
	if l.Heap().Stats().LiveBytes <= live {
		t.Error("large allocation did not come from the heap")
	}
	if small == 0 || big == 0 || small == big {
		t.Errorf("allocations = %#x, %#x", uint32(small), uint32(big))
	}
	s.Exit()

	if got := l.Heap().Stats().LiveBytes; got != live {
		t.Errorf("heap live bytes = %d after Exit, want %d", got, live)
	}
}

func TestScope_StringAndBytes(t *testing.T) {
	l := newTestLibrary(t, nil)
	s := Enter(l)
	defer s.Exit()

	for _, v := range []string{"", "hello", "юникод"} {
		if got := l.Memory().CString(s.String(v)); got != v {
			t.Errorf("String(%q) reads back %q", v, got)
		}
	}
	if s.Bytes(nil) != 0 {
		t.Error("Bytes(nil) should be null")
	}
	ptr := s.Bytes([]byte{1, 2, 3})
	got, err := l.Memory().Read(uint32(ptr), 3)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{1, 2, 3}, got); diff != "" {
		t.Errorf("Bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestScope_AllocAfterExitFails(t *testing.T) {
	l := newTestLibrary(t, nil)
	s := Enter(l)
	s.Exit()
	defer func() {
		if recover() == nil {
			t.Error("Alloc after Exit did not panic")
		}
	}()
	s.Alloc(4, 4)
}

func TestWith(t *testing.T) {
	v := imguibridge.Vec2{X: 1, Y: 2}
	With(Vec2, &v, func(ptr imguibridge.Ptr) {
		mem := native.Lib().Memory()
		_ = mem.WriteU32(uint32(ptr)+4, math.Float32bits(5))
	})
	if v != (imguibridge.Vec2{X: 1, Y: 5}) {
		t.Errorf("With write-back = %+v", v)
	}
}

func TestStringBuffer(t *testing.T) {
	l := newTestLibrary(t, nil)
	b := NewStringBuffer(l, "hello")
	defer b.Free()

	if b.Size() != 6 || b.String() != "hello" {
		t.Fatalf("new buffer = (%d, %q)", b.Size(), b.String())
	}

	b.Resize(3)
	if b.String() != "he" {
		t.Errorf("after shrink = %q, want %q", b.String(), "he")
	}

	b.Resize(32)
	if b.Size() != 32 || b.String() != "he" {
		t.Errorf("after grow = (%d, %q)", b.Size(), b.String())
	}

	b.Set("a considerably longer text than before")
	if got := b.String(); got != "a considerably longer text than before" {
		t.Errorf("after Set = %q", got)
	}
	if b.Size() < uint32(len(b.String()))+1 {
		t.Errorf("size %d too small for content", b.Size())
	}

	live := l.Heap().Stats().LiveBytes
	b.Free()
	if l.Heap().Stats().LiveBytes >= live {
		t.Error("Free did not release the buffer")
	}
	if b.String() != "" {
		t.Error("freed buffer should read empty")
	}
}

func TestStringBuffer_OutsideMemoryFails(t *testing.T) {
	l := newTestLibrary(t, nil)
	b := &StringBuffer{lib: l, ptr: imguibridge.Ptr(l.Memory().Size() - 2), size: 64}

	defer func() {
		e, ok := recover().(*errors.Error)
		if !ok {
			t.Fatal("expected an *errors.Error panic")
		}
		if e.Kind != errors.KindOutOfBounds {
			t.Errorf("kind = %s, want %s", e.Kind, errors.KindOutOfBounds)
		}
	}()
	b.Set("hello")
}

func TestAllocationList(t *testing.T) {
	l := newTestLibrary(t, nil)
	live := l.Heap().Stats().LiveBytes

	al := NewAllocationList()
	for range 3 {
		ptr, err := l.Heap().Alloc(40, 8)
		if err != nil {
			t.Fatal(err)
		}
		al.Add(ptr, 40, 8)
	}
	al.Add(0, 8, 8)
	if al.Count() != 4 {
		t.Errorf("Count() = %d, want 4", al.Count())
	}
	al.FreeAndRelease(l.Heap())
	if got := l.Heap().Stats().LiveBytes; got != live {
		t.Errorf("live bytes = %d, want %d", got, live)
	}
}

func TestOffsets_MissingField(t *testing.T) {
	defer func() {
		e, ok := recover().(*errors.Error)
		if !ok {
			t.Fatal("expected an *errors.Error panic")
		}
		if e.Phase != errors.PhaseLayout || e.Kind != errors.KindInvalidData {
			t.Errorf("error = %v, want a layout invalid_data error", e)
		}
	}()
	offsets(native.ElementVec2, "x", "q")
}
