package native

import (
	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/errors"
)

// objectHeaderSize is the size of the identity block reserved for every
// native object. Its address is the object's handle.
const objectHeaderSize = 16

// newObject places v in the object space and returns its handle.
func (l *Library) newObject(v any) imguibridge.Handle {
	h := imguibridge.Handle(l.alloc(objectHeaderSize, heapAlign))
	l.objects[h] = v
	return h
}

// dropObject removes an object and releases its identity block.
func (l *Library) dropObject(h imguibridge.Handle) (any, bool) {
	v, ok := l.objects[h]
	if !ok {
		return nil, false
	}
	delete(l.objects, h)
	l.free(uint32(h), objectHeaderSize, heapAlign)
	return v, true
}

// deref resolves a handle to its object. A handle that does not reference a
// live object of the expected kind is a contract violation and is fatal.
func deref[T any](l *Library, h imguibridge.Handle) *T {
	v, ok := l.objects[h].(*T)
	if !ok {
		l.fail(errors.New(errors.PhaseRuntime, errors.KindInvalidInput).
			Detail("handle %#x does not reference a live %T", uint32(h), (*T)(nil)).
			Value(uint32(h)).
			Build())
	}
	return v
}
