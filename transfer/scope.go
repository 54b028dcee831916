package transfer

import (
	"fmt"

	"go.uber.org/zap"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/native"
)

// Scope is one LIFO frame of the engine's scratch stack together with the
// write-backs registered in it. Scopes must exit in reverse order of entry.
type Scope struct {
	lib       *native.Library
	mark      uint32
	finishers []func()
	heap      *AllocationList
	exited    bool
}

// Enter opens a scope on lib, or on the process-wide library when lib is nil.
func Enter(lib *native.Library) *Scope {
	if lib == nil {
		lib = native.Lib()
	}
	return &Scope{lib: lib, mark: lib.Scratch().Mark()}
}

// Exit runs the registered write-backs newest first, then releases every
// temporary. Only the first call has any effect. A panicking write-back does
// not stop the others; the first panic is raised again once all have run.
func (s *Scope) Exit() {
	if s.exited {
		return
	}
	s.exited = true
	defer s.release()
	var failure any
	for i := len(s.finishers) - 1; i >= 0; i-- {
		if r := runFinisher(s.finishers[i]); r != nil && failure == nil {
			failure = r
		}
	}
	if failure != nil {
		Logger().Error("scope write-back failed", zap.Any("panic", failure))
		panic(failure)
	}
}

func runFinisher(fn func()) (failure any) {
	defer func() { failure = recover() }()
	fn()
	return nil
}

func (s *Scope) release() {
	s.finishers = nil
	if s.heap != nil {
		s.heap.FreeAndRelease(s.lib.Heap())
		s.heap = nil
	}
	s.lib.Scratch().Release(s.mark)
}

// Alloc reserves size zeroed bytes that live until Exit.
func (s *Scope) Alloc(size, align uint32) imguibridge.Ptr {
	if s.exited {
		panic(errors.Assertion("transfer.Scope", "allocation after Exit"))
	}
	if ptr, ok := s.lib.Scratch().Push(size, align); ok {
		return imguibridge.Ptr(ptr)
	}
	ptr, err := s.lib.Heap().Alloc(size, align)
	if err != nil {
		Logger().Error("scope allocation failed", zap.Uint32("size", size), zap.Error(err))
		panic(err)
	}
	if s.heap == nil {
		s.heap = NewAllocationList()
	}
	s.heap.Add(ptr, size, align)
	Logger().Debug("scratch exhausted, using heap", zap.Uint32("size", size), zap.Uint32("ptr", ptr))
	return imguibridge.Ptr(ptr)
}

// Defer registers fn to run on Exit before temporaries are released.
func (s *Scope) Defer(fn func()) {
	s.finishers = append(s.finishers, fn)
}

// Memory returns the linear memory the scope allocates in.
func (s *Scope) Memory() *native.Memory {
	return s.lib.Memory()
}

// String returns a NUL-terminated native copy of v.
func (s *Scope) String(v string) imguibridge.Ptr {
	ptr := s.Alloc(uint32(len(v))+1, 1)
	if err := s.lib.Memory().Write(uint32(ptr), append([]byte(v), 0)); err != nil {
		panic(errors.Wrap(errors.PhaseImport, errors.KindOutOfBounds, err, "write string"))
	}
	return ptr
}

// Bytes returns a native copy of b, or a null pointer when b is empty.
func (s *Scope) Bytes(b []byte) imguibridge.Ptr {
	if len(b) == 0 {
		return 0
	}
	ptr := s.Alloc(uint32(len(b)), 1)
	if err := s.lib.Memory().Write(uint32(ptr), b); err != nil {
		panic(errors.Wrap(errors.PhaseImport, errors.KindOutOfBounds, err, "write bytes"))
	}
	return ptr
}

// Wrap places a native temporary for host in s and returns its address. The
// native value is exported back into host exactly once, on Exit. A nil host
// yields a null pointer.
func Wrap[T any](s *Scope, c Codec[T], host *T) imguibridge.Ptr {
	if host == nil {
		return 0
	}
	info := c.Layout()
	ptr := s.Alloc(info.Size, info.Align)
	mem := s.lib.Memory()
	if err := c.Import(mem, ptr, host); err != nil {
		panic(errors.New(errors.PhaseImport, errors.KindOutOfBounds).
			NativeType(c.Name).
			GoType(fmt.Sprintf("%T", *host)).
			Cause(err).
			Detail("import at %#x", uint32(ptr)).
			Build())
	}
	s.Defer(func() {
		if err := c.Export(host, mem, ptr); err != nil {
			panic(errors.New(errors.PhaseExport, errors.KindOutOfBounds).
				NativeType(c.Name).
				GoType(fmt.Sprintf("%T", *host)).
				Cause(err).
				Detail("export at %#x", uint32(ptr)).
				Build())
		}
	})
	return ptr
}

// With wraps a single host value for the duration of fn on the process-wide
// library.
func With[T any](c Codec[T], host *T, fn func(ptr imguibridge.Ptr)) {
	s := Enter(nil)
	defer s.Exit()
	fn(Wrap(s, c, host))
}
