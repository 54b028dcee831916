package imgui_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/imgui-bridge/imgui"
	"github.com/wippyai/imgui-bridge/native"
)

type clipperRange struct {
	Start, End int
}

var listWindow = imgui.Vec2{X: 400, Y: 300}

func hostTraversal(count int, height float32) ([]clipperRange, native.ClipperState) {
	var ranges []clipperRange
	var clipper imgui.ListClipper
	frame(listWindow, func() {
		clipper.BeginV(count, height)
		for clipper.Step() {
			ranges = append(ranges, clipperRange{clipper.DisplayStart, clipper.DisplayEnd})
			for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
				imgui.Text(fmt.Sprintf("item %d", i))
			}
		}
		clipper.End()
	})
	return ranges, native.ClipperState{
		StartPosY:    clipper.StartPosY,
		ItemsHeight:  clipper.ItemsHeight,
		ItemsCount:   int32(clipper.ItemsCount),
		StepNo:       int32(clipper.StepNo),
		DisplayStart: int32(clipper.DisplayStart),
		DisplayEnd:   int32(clipper.DisplayEnd),
	}
}

func liveTraversal(count int, height float32) ([]clipperRange, native.ClipperState) {
	var ranges []clipperRange
	lc := native.Lib().NewLiveClipper()
	frame(listWindow, func() {
		lc.Begin(int32(count), height)
		for lc.Step() {
			s := lc.State()
			ranges = append(ranges, clipperRange{int(s.DisplayStart), int(s.DisplayEnd)})
			for i := s.DisplayStart; i < s.DisplayEnd; i++ {
				imgui.Text(fmt.Sprintf("item %d", i))
			}
		}
		lc.End()
		lc.Close()
	})
	return ranges, lc.State()
}

func TestListClipper_MatchesRetainedClipper(t *testing.T) {
	newTestContext(t)
	tests := []struct {
		name   string
		count  int
		height float32
	}{
		{"explicit height", 100, 10},
		{"measured height", 100, -1},
		{"single item measured", 1, -1},
		{"fewer items than fit", 5, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wantRanges, wantState := liveTraversal(tt.count, tt.height)
			gotRanges, gotState := hostTraversal(tt.count, tt.height)
			if diff := cmp.Diff(wantRanges, gotRanges); diff != "" {
				t.Errorf("ranges mismatch (-retained +host):\n%s", diff)
			}
			if diff := cmp.Diff(wantState, gotState); diff != "" {
				t.Errorf("final state mismatch (-retained +host):\n%s", diff)
			}
		})
	}
}

func TestListClipper_Terminates(t *testing.T) {
	newTestContext(t)
	tests := []struct {
		name     string
		count    int
		height   float32
		maxSteps int
	}{
		{"explicit", 1000, 10, 2},
		{"measured", 1000, -1, 3},
		{"empty explicit", 0, 20, 1},
		{"empty measured", 0, -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var clipper imgui.ListClipper
			steps := 0
			frame(listWindow, func() {
				clipper.BeginV(tt.count, tt.height)
				for steps < 10 {
					steps++
					if !clipper.Step() {
						break
					}
					for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
						imgui.Text("x")
					}
				}
			})
			if steps > tt.maxSteps {
				t.Errorf("Step called %d times, want at most %d", steps, tt.maxSteps)
			}
			if clipper.ItemsCount != -1 {
				t.Errorf("ItemsCount = %d after the last step, want -1", clipper.ItemsCount)
			}
		})
	}
}

func TestListClipper_EmptyExplicit(t *testing.T) {
	newTestContext(t)
	var clipper imgui.ListClipper
	var more bool
	frame(listWindow, func() {
		clipper.BeginV(0, 20)
		more = clipper.Step()
	})
	if more {
		t.Error("Step() = true for an empty list")
	}
	if clipper.DisplayStart != 0 || clipper.DisplayEnd != 0 {
		t.Errorf("display range = [%d, %d), want [0, 0)", clipper.DisplayStart, clipper.DisplayEnd)
	}
}

func TestListClipper_OversizedCountIsClamped(t *testing.T) {
	newTestContext(t)
	count := int(math.MaxInt32)
	count *= 2
	var clipper imgui.ListClipper
	var begun int
	var first clipperRange
	frame(listWindow, func() {
		clipper.BeginV(count, 10)
		begun = clipper.ItemsCount
		if clipper.Step() {
			first = clipperRange{clipper.DisplayStart, clipper.DisplayEnd}
		}
		clipper.End()
	})
	if begun != math.MaxInt32 {
		t.Errorf("ItemsCount after BeginV = %d, want %d", begun, math.MaxInt32)
	}
	if first.Start != 0 || first.End <= 0 || first.End >= 100 {
		t.Errorf("first range = %+v, want the visible items only", first)
	}
	if clipper.ItemsCount != -1 {
		t.Errorf("ItemsCount after End = %d, want -1", clipper.ItemsCount)
	}
}

func TestListClipper_VisibleRangeOnly(t *testing.T) {
	newTestContext(t)
	ranges, _ := hostTraversal(10000, 10)
	if len(ranges) != 1 {
		t.Fatalf("ranges = %v, want a single explicit range", ranges)
	}
	r := ranges[0]
	if r.Start != 0 || r.End <= 0 || r.End >= 100 {
		t.Errorf("range = %+v, want the first few dozen items only", r)
	}
}

func TestListClipper_NestedClippersAreIndependent(t *testing.T) {
	newTestContext(t)
	var outer, inner imgui.ListClipper
	var innerRanges int
	frame(listWindow, func() {
		outer.BeginV(50, 10)
		if !outer.Step() {
			t.Fatal("outer Step() = false")
		}
		before := outer

		imgui.BeginChildV("nested", imgui.Vec2{X: 100, Y: 50}, false, 0)
		inner.BeginV(20, 10)
		for inner.Step() {
			innerRanges++
			for i := inner.DisplayStart; i < inner.DisplayEnd; i++ {
				imgui.Text("inner")
			}
		}
		imgui.EndChild()

		if diff := cmp.Diff(before, outer); diff != "" {
			t.Errorf("inner traversal changed the outer clipper (-before +after):\n%s", diff)
		}
		for outer.Step() {
		}
	})
	if innerRanges == 0 {
		t.Error("inner clipper displayed nothing")
	}
	if outer.ItemsCount != -1 || inner.ItemsCount != -1 {
		t.Errorf("ItemsCount outer=%d inner=%d, want both -1", outer.ItemsCount, inner.ItemsCount)
	}
}
