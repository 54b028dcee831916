package imgui

import (
	"math"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/boundary"
	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/transfer"
)

// ListClipper helps to manually clip large lists of items.
//
// The state lives on the host between calls. Each call hands a native copy
// of it to the engine and reads the updated copy back, so a clipper can be
// stored anywhere and nested clippers do not interfere.
//
// Usage:
//
//	var clipper imgui.ListClipper
//	clipper.Begin(len(items))
//	for clipper.Step() {
//	    for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
//	        imgui.Text(items[i])
//	    }
//	}
type ListClipper struct {
	StartPosY    float32
	ItemsHeight  float32
	ItemsCount   int
	StepNo       int
	DisplayStart int
	DisplayEnd   int
}

func (clipper *ListClipper) toNative() native.ClipperState {
	return native.ClipperState{
		StartPosY:    clipper.StartPosY,
		ItemsHeight:  clipper.ItemsHeight,
		ItemsCount:   clampCount(clipper.ItemsCount),
		StepNo:       int32(clipper.StepNo),
		DisplayStart: int32(clipper.DisplayStart),
		DisplayEnd:   int32(clipper.DisplayEnd),
	}
}

func (clipper *ListClipper) assign(state native.ClipperState) {
	clipper.StartPosY = state.StartPosY
	clipper.ItemsHeight = state.ItemsHeight
	clipper.ItemsCount = int(state.ItemsCount)
	clipper.StepNo = int(state.StepNo)
	clipper.DisplayStart = int(state.DisplayStart)
	clipper.DisplayEnd = int(state.DisplayEnd)
}

// call runs fn on a native copy of the state and copies the result back.
func (clipper *ListClipper) call(fn func(state imguibridge.Ptr)) {
	state := clipper.toNative()
	s := scope()
	defer s.Exit()
	s.Defer(func() { clipper.assign(state) })
	fn(transfer.Wrap(s, transfer.ClipperState, &state))
}

// Begin calls BeginV(itemsCount, -1).
func (clipper *ListClipper) Begin(itemsCount int) {
	clipper.BeginV(itemsCount, -1)
}

// BeginV starts a traversal. With itemsHeight <= 0 the first step submits
// one item to measure the height.
//
// For a list of unknown length pass math.MaxInt32 and call End once the last
// item is submitted; End then leaves the cursor where it is. Larger counts
// are clamped to math.MaxInt32.
func (clipper *ListClipper) BeginV(itemsCount int, itemsHeight float32) {
	clipper.call(func(state imguibridge.Ptr) {
		boundary.ListClipperBegin(state, clampCount(itemsCount), itemsHeight)
	})
}

func clampCount(n int) int32 {
	return int32(min(n, math.MaxInt32))
}

// Step advances the traversal. While it returns true, the items from
// DisplayStart to DisplayEnd must be submitted. After it returns false the
// traversal has ended and End is not needed.
func (clipper *ListClipper) Step() (more bool) {
	clipper.call(func(state imguibridge.Ptr) {
		more = isTrue(boundary.ListClipperStep(state))
	})
	return more
}

// End stops a traversal early, moving the cursor past the last item.
func (clipper *ListClipper) End() {
	clipper.call(boundary.ListClipperEnd)
}
