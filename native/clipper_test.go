package native

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type clipperRange struct {
	Start, End int32
}

// traverse drives a clipper through its steps, submitting one text line per
// displayed item, and returns the ranges it was asked to display.
func traverse(l *Library, begin func(), step func() bool, state func() ClipperState) []clipperRange {
	var out []clipperRange
	begin()
	for step() {
		s := state()
		out = append(out, clipperRange{s.DisplayStart, s.DisplayEnd})
		for i := s.DisplayStart; i < s.DisplayEnd; i++ {
			l.Text(fmt.Sprintf("item %d", i))
		}
	}
	return out
}

func protocolTraversal(l *Library, count int32, h float32) ([]clipperRange, ClipperState) {
	size := ElementLayout(ElementClipperState).Size
	p := l.Alloc(size, 4)
	defer l.Free(p, size, 4)
	ranges := traverse(l,
		func() { l.ListClipperBegin(Ptr(p), count, h) },
		func() bool { return l.ListClipperStep(Ptr(p)) },
		func() ClipperState { return l.loadClipper(Ptr(p)) })
	l.ListClipperEnd(Ptr(p))
	return ranges, l.loadClipper(Ptr(p))
}

func liveTraversal(l *Library, count int32, h float32) ([]clipperRange, ClipperState) {
	lc := l.NewLiveClipper()
	ranges := traverse(l,
		func() { lc.Begin(count, h) },
		lc.Step,
		lc.State)
	lc.End()
	lc.Close()
	return ranges, lc.State()
}

func TestClipper_MatchesLiveTraversal(t *testing.T) {
	tests := []struct {
		name   string
		count  int32
		height float32
	}{
		{"explicit height", 100, 10},
		{"measured height", 100, -1},
		{"single item measured", 1, -1},
		{"empty", 0, 20},
		{"fewer than visible", 3, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLibrary(t)
			newTestContext(t, l)

			beginTestWindow(l, Vec2{X: 200, Y: 100})
			want, wantState := liveTraversal(l, tt.count, tt.height)
			wantCursor := l.GetCursorPosY()
			endTestWindow(l)

			beginTestWindow(l, Vec2{X: 200, Y: 100})
			got, gotState := protocolTraversal(l, tt.count, tt.height)
			gotCursor := l.GetCursorPosY()
			endTestWindow(l)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("display ranges mismatch (-live +protocol):\n%s", diff)
			}
			if diff := cmp.Diff(wantState, gotState); diff != "" {
				t.Errorf("final state mismatch (-live +protocol):\n%s", diff)
			}
			if gotCursor != wantCursor {
				t.Errorf("cursor after end = %v, want %v", gotCursor, wantCursor)
			}
		})
	}
}

func TestClipper_ExplicitHeightRange(t *testing.T) {
	l := newTestLibrary(t)
	newTestContext(t, l)
	beginTestWindow(l, Vec2{X: 200, Y: 100})
	defer endTestWindow(l)

	start := l.GetCursorPosY()
	got, state := protocolTraversal(l, 100, 10)

	// The cursor starts 8px down a 100px tall clip rectangle.
	want := []clipperRange{{0, 10}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("display ranges mismatch (-want +got):\n%s", diff)
	}
	if state.ItemsCount != -1 || state.StepNo != clipperStepEnd {
		t.Errorf("end state = %+v", state)
	}
	if end := l.GetCursorPosY(); end != start+1000 {
		t.Errorf("cursor after end = %v, want %v", end, start+1000)
	}
}

func TestClipper_Terminates(t *testing.T) {
	for _, h := range []float32{10, -1} {
		for _, count := range []int32{0, 1, 2, 3, 7, 50, 1000} {
			t.Run(fmt.Sprintf("count=%d/height=%v", count, h), func(t *testing.T) {
				l := newTestLibrary(t)
				newTestContext(t, l)
				beginTestWindow(l, Vec2{X: 200, Y: 100})
				defer endTestWindow(l)

				size := ElementLayout(ElementClipperState).Size
				p := Ptr(l.Alloc(size, 4))
				l.ListClipperBegin(p, count, h)
				calls := int32(0)
				for {
					calls++
					if calls > count+1 {
						t.Fatalf("step still running after %d calls", calls-1)
					}
					if !l.ListClipperStep(p) {
						break
					}
					s := l.loadClipper(p)
					for i := s.DisplayStart; i < s.DisplayEnd; i++ {
						l.Text("row")
					}
				}
				l.ListClipperEnd(p)
			})
		}
	}
}

func TestClipper_EmptyList(t *testing.T) {
	l := newTestLibrary(t)
	newTestContext(t, l)
	beginTestWindow(l, Vec2{X: 200, Y: 100})
	defer endTestWindow(l)

	size := ElementLayout(ElementClipperState).Size
	p := Ptr(l.Alloc(size, 4))
	l.ListClipperBegin(p, 0, 20)
	if l.ListClipperStep(p) {
		t.Fatal("first step of an empty list should stop")
	}
	l.ListClipperEnd(p)
	s := l.loadClipper(p)
	if s.DisplayStart != 0 || s.DisplayEnd != 0 {
		t.Errorf("display range = %d..%d, want 0..0", s.DisplayStart, s.DisplayEnd)
	}
}

func TestClipper_StateLayout(t *testing.T) {
	info := ElementLayout(ElementClipperState)
	if info.Size != 24 || info.Align != 4 {
		t.Fatalf("clipper state size/align = %d/%d, want 24/4", info.Size, info.Align)
	}
	want := map[string]uint32{
		"start-pos-y":   0,
		"items-height":  4,
		"items-count":   8,
		"step-no":       12,
		"display-start": 16,
		"display-end":   20,
	}
	for field, off := range want {
		if got, _ := info.Offset(field); got != off {
			t.Errorf("%s offset = %d, want %d", field, got, off)
		}
	}
}

func TestLiveClipper_CloseBeforeEnd(t *testing.T) {
	l := newTestLibrary(t)
	newTestContext(t, l)
	beginTestWindow(l, Vec2{X: 200, Y: 100})

	lc := l.NewLiveClipper()
	lc.Begin(100, 10)
	lc.Step()
	e := expectFailure(t, lc.Close)
	if e.Path[0] != "LiveClipper.Close" {
		t.Errorf("path = %v", e.Path)
	}
}
