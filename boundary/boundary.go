package boundary

import (
	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/native"
)

type (
	Handle           = imguibridge.Handle
	Ptr              = imguibridge.Ptr
	Bool             = imguibridge.Bool
	BufferDescriptor = imguibridge.BufferDescriptor
	Layout           = imguibridge.Layout
)

func lib() *native.Library {
	return native.Lib()
}

func mem() *native.Memory {
	return native.Lib().Memory()
}

func str(p Ptr) string {
	return mem().CString(p)
}

func truth(b Bool) bool {
	return b != imguibridge.False
}

var boolOf = imguibridge.BoolOf

// Alloc reserves zeroed native memory. The caller releases it with Free using
// the same size and alignment.
func Alloc(size, align uint32) Ptr {
	return Ptr(lib().Alloc(size, align))
}

// Free releases memory obtained from Alloc.
func Free(ptr Ptr, size, align uint32) {
	lib().Free(uint32(ptr), size, align)
}
