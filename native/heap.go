package native

import (
	"math"

	"go.uber.org/zap"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/layout"
)

const (
	pageSize  = 65536
	heapAlign = 16
)

// Heap is a size-class allocator over linear memory. Freed blocks are kept in
// per-class free lists; new blocks come from a bump pointer that grows memory
// as needed. Address 0 is never handed out.
type Heap struct {
	mem  *Memory
	log  *zap.Logger
	top  uint32
	free map[uint32][]uint32
	live uint32
}

var _ imguibridge.Allocator = (*Heap)(nil)

// HeapStats summarizes heap usage.
type HeapStats struct {
	Top       uint32
	LiveBytes uint32
	FreeBytes uint32
	Pages     uint32
}

func newHeap(mem *Memory, log *zap.Logger) *Heap {
	return &Heap{
		mem:  mem,
		log:  log,
		top:  heapAlign,
		free: make(map[uint32][]uint32),
	}
}

func class(size uint32) uint32 {
	if size == 0 {
		size = 1
	}
	return layout.AlignTo(size, heapAlign)
}

// Alloc returns a zeroed block of at least size bytes.
func (h *Heap) Alloc(size, align uint32) (uint32, error) {
	if align > heapAlign {
		return 0, errors.Unsupported(errors.PhaseRuntime, "heap alignment above 16 bytes")
	}
	if size > math.MaxUint32-2*heapAlign {
		return 0, errors.AllocationFailed(errors.PhaseRuntime, size, align)
	}

	c := class(size)
	if list := h.free[c]; len(list) > 0 {
		ptr := list[len(list)-1]
		h.free[c] = list[:len(list)-1]
		clear(h.mem.view(ptr, c))
		h.live += c
		return ptr, nil
	}

	if uint64(h.top)+uint64(c) > math.MaxUint32 {
		return 0, errors.AllocationFailed(errors.PhaseRuntime, size, align)
	}
	end := h.top + c
	if cur := h.mem.Size(); end > cur {
		pages := (end - cur + pageSize - 1) / pageSize
		prev, ok := h.mem.Mem.Grow(pages)
		if !ok {
			return 0, errors.AllocationFailed(errors.PhaseRuntime, size, align)
		}
		h.log.Debug("linear memory grown",
			zap.Uint32("previous_pages", prev),
			zap.Uint32("added_pages", pages))
	}

	ptr := h.top
	h.top = end
	h.live += c
	return ptr, nil
}

// Free returns a block to its size class. Freeing 0 is a no-op.
func (h *Heap) Free(ptr, size, align uint32) {
	if ptr == 0 {
		return
	}
	c := class(size)
	h.free[c] = append(h.free[c], ptr)
	h.live -= c
}

// Stats reports current heap usage.
func (h *Heap) Stats() HeapStats {
	var freeBytes uint32
	for c, list := range h.free {
		freeBytes += c * uint32(len(list))
	}
	return HeapStats{
		Top:       h.top,
		LiveBytes: h.live,
		FreeBytes: freeBytes,
		Pages:     h.mem.Size() / pageSize,
	}
}
