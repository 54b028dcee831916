package native

// Scratch is a LIFO stack of transient native storage. Callers record a mark,
// push values, and release back to the mark when done. Nothing is enforced
// beyond resetting to the recorded mark.
type Scratch struct {
	mem   *Memory
	base  uint32
	limit uint32
	top   uint32
	peak  uint32
}

func newScratch(mem *Memory, base, size uint32) *Scratch {
	return &Scratch{mem: mem, base: base, limit: base + size, top: base, peak: base}
}

// Mark returns the current top of the stack.
func (s *Scratch) Mark() uint32 {
	return s.top
}

// Push reserves size zeroed bytes. It reports false when the stack is
// exhausted; the caller then falls back to the heap.
func (s *Scratch) Push(size, align uint32) (uint32, bool) {
	if align == 0 {
		align = 1
	}
	ptr := (s.top + align - 1) &^ (align - 1)
	if ptr < s.top || ptr > s.limit || size > s.limit-ptr {
		return 0, false
	}
	s.top = ptr + size
	if s.top > s.peak {
		s.peak = s.top
	}
	clear(s.mem.view(ptr, size))
	return ptr, true
}

// Release resets the stack to mark.
func (s *Scratch) Release(mark uint32) {
	if mark < s.base || mark > s.top {
		return
	}
	s.top = mark
}

// Used returns the number of bytes currently pushed.
func (s *Scratch) Used() uint32 {
	return s.top - s.base
}

// Peak returns the high-water mark in bytes.
func (s *Scratch) Peak() uint32 {
	return s.peak - s.base
}

// Capacity returns the total size of the stack.
func (s *Scratch) Capacity() uint32 {
	return s.limit - s.base
}
