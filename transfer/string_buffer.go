package transfer

import (
	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/native"
)

// StringBuffer is a resizable NUL-terminated text buffer in linear memory,
// for widgets that edit text in place. It is owned by the caller and must be
// released with Free.
type StringBuffer struct {
	lib  *native.Library
	ptr  imguibridge.Ptr
	size uint32
}

// NewStringBuffer allocates a buffer holding initial plus its terminator on
// lib, or on the process-wide library when lib is nil.
func NewStringBuffer(lib *native.Library, initial string) *StringBuffer {
	if lib == nil {
		lib = native.Lib()
	}
	b := &StringBuffer{lib: lib}
	b.allocate(uint32(len(initial)) + 1)
	b.Set(initial)
	return b
}

func (b *StringBuffer) allocate(size uint32) {
	b.ptr = imguibridge.Ptr(b.lib.Alloc(size, 1))
	b.size = size
}

// Ptr returns the buffer address. It changes on Resize.
func (b *StringBuffer) Ptr() imguibridge.Ptr {
	return b.ptr
}

// Size returns the capacity in bytes, terminator included.
func (b *StringBuffer) Size() uint32 {
	return b.size
}

// Resize changes the capacity to size bytes, keeping as much of the current
// content as fits. The last byte always stays a terminator. A buffer outside
// linear memory is an engine failure.
func (b *StringBuffer) Resize(size uint32) {
	if size == 0 {
		size = 1
	}
	if size == b.size {
		return
	}
	mem := b.lib.Memory()
	oldPtr, oldSize := b.ptr, b.size
	b.allocate(size)
	n := min(oldSize, size)
	dst := mem.View(b.ptr, size)
	copy(dst, mem.View(oldPtr, n))
	dst[size-1] = 0
	b.lib.Free(uint32(oldPtr), oldSize, 1)
}

// Set replaces the content with s, growing the buffer when it does not fit.
func (b *StringBuffer) Set(s string) {
	if uint32(len(s))+1 > b.size {
		b.Resize(uint32(len(s)) + 1)
	}
	dst := b.lib.Memory().View(b.ptr, uint32(len(s))+1)
	dst[copy(dst, s)] = 0
}

// String returns the content up to the first NUL.
func (b *StringBuffer) String() string {
	if b.ptr == 0 {
		return ""
	}
	return b.lib.Memory().CString(b.ptr)
}

// Free releases the buffer. The buffer must not be used afterwards.
func (b *StringBuffer) Free() {
	if b.ptr == 0 {
		return
	}
	b.lib.Free(uint32(b.ptr), b.size, 1)
	b.ptr, b.size = 0, 0
}
