package native

import imguibridge "github.com/wippyai/imgui-bridge"

// vector is a growable array of fixed-size elements in linear memory.
// Growth moves the data, so any previously exported address is invalid
// after an append that exceeds capacity.
type vector struct {
	lib  *Library
	elem uint32
	data uint32
	size uint32
	cap  uint32
}

func newVector(l *Library, e Element) vector {
	return vector{lib: l, elem: ElementLayout(e).Size}
}

func (v *vector) reserve(n uint32) {
	if n <= v.cap {
		return
	}
	newCap := max(n, v.cap*2, 8)
	ptr := v.lib.alloc(newCap*v.elem, heapAlign)
	if v.size > 0 {
		used := v.size * v.elem
		copy(v.lib.mem.view(ptr, used), v.lib.mem.view(v.data, used))
	}
	v.lib.free(v.data, v.cap*v.elem, heapAlign)
	v.data = ptr
	v.cap = newCap
}

// grow appends n uninitialized elements and returns the address of the first.
func (v *vector) grow(n uint32) uint32 {
	v.reserve(v.size + n)
	at := v.data + v.size*v.elem
	v.size += n
	return at
}

// resize sets the length to n, zeroing any new elements.
func (v *vector) resize(n uint32) {
	v.reserve(n)
	if n > v.size {
		clear(v.lib.mem.view(v.data+v.size*v.elem, (n-v.size)*v.elem))
	}
	v.size = n
}

func (v *vector) clear() {
	v.size = 0
}

func (v *vector) release() {
	v.lib.free(v.data, v.cap*v.elem, heapAlign)
	v.data, v.size, v.cap = 0, 0, 0
}

func (v *vector) at(i uint32) uint32 {
	return v.data + i*v.elem
}

func (v *vector) bytes() []byte {
	if v.size == 0 {
		return nil
	}
	return v.lib.mem.view(v.data, v.size*v.elem)
}

func (v *vector) descriptor() imguibridge.BufferDescriptor {
	return imguibridge.BufferDescriptor{
		Ptr:      imguibridge.Ptr(v.data),
		Count:    v.size,
		ByteSize: v.size * v.elem,
	}
}
