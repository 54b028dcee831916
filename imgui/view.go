package imgui

import (
	"unsafe"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/native"
)

// BufferDescriptor locates a buffer in native memory.
type BufferDescriptor = imguibridge.BufferDescriptor

// Layout is the element layout of a native buffer kind.
type Layout = imguibridge.Layout

// Bytes returns the described buffer as a byte slice aliasing native memory.
// Nothing is copied. The slice is valid until the owning structure changes,
// for draw buffers that is the next NewFrame.
func Bytes(d BufferDescriptor) []byte {
	if d.Empty() {
		return nil
	}
	return native.Lib().Memory().View(d.Ptr, d.ByteSize)
}

// View reinterprets the described buffer as a slice of T aliasing native
// memory. T must match the element layout of the buffer, for example
// DrawVert for vertex buffers and DrawIdx for index buffers. The lifetime
// rules of Bytes apply.
func View[T any](d BufferDescriptor) []T {
	b := Bytes(d)
	if len(b) == 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), len(b)/size)
}
