package transfer

import (
	"sync"

	imguibridge "github.com/wippyai/imgui-bridge"
)

// Allocation is one heap block owned by a scope.
type Allocation struct {
	Ptr   uint32
	Size  uint32
	Align uint32
}

// AllocationList tracks heap allocations made for a scope so they can be
// released together.
type AllocationList struct {
	allocations []Allocation
}

var allocationListPool = sync.Pool{
	New: func() any {
		return &AllocationList{allocations: make([]Allocation, 0, 8)}
	},
}

// NewAllocationList returns an empty list from the pool.
func NewAllocationList() *AllocationList {
	return allocationListPool.Get().(*AllocationList)
}

const maxPooledAllocationCapacity = 128

// Release returns the list to the pool. Call after Free; the list is invalid
// after Release.
func (al *AllocationList) Release() {
	if cap(al.allocations) > maxPooledAllocationCapacity {
		return
	}
	al.Reset()
	allocationListPool.Put(al)
}

// FreeAndRelease frees every allocation and returns the list to the pool.
func (al *AllocationList) FreeAndRelease(allocator imguibridge.Allocator) {
	al.Free(allocator)
	al.Release()
}

// Add records a block obtained from the scope's allocator.
func (al *AllocationList) Add(ptr, size, align uint32) {
	al.allocations = append(al.allocations, Allocation{
		Ptr:   ptr,
		Size:  size,
		Align: align,
	})
}

// Free releases every tracked allocation, newest first.
func (al *AllocationList) Free(allocator imguibridge.Allocator) {
	if allocator == nil {
		return
	}
	for i := len(al.allocations) - 1; i >= 0; i-- {
		if a := al.allocations[i]; a.Ptr != 0 {
			allocator.Free(a.Ptr, a.Size, a.Align)
		}
	}
}

// Reset forgets every allocation without freeing it.
func (al *AllocationList) Reset() {
	al.allocations = al.allocations[:0]
}

// Count returns the number of tracked allocations.
func (al *AllocationList) Count() int {
	return len(al.allocations)
}
