package native

import (
	"context"
	"fmt"
	"sync"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/errors"
)

// memoryModule is a minimal module with one page of memory exported as "memory".
var memoryModule = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	0x05, 0x03, 0x01, 0x00, 0x01, // memory section: 1 page, no max
	0x07, 0x0a, 0x01, // export section: 10 bytes, 1 export
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, // name: "memory"
	0x02, 0x00, // kind: memory, index 0
}

// Config holds configuration for loading the engine library
type Config struct {
	// ScratchSize is the size in bytes of the scratch stack used for
	// transient boundary values. 0 means 64KB.
	ScratchSize uint32

	// MemoryLimitPages caps linear memory growth in pages (64KB each).
	// 0 means the wazero default (65536 pages = 4GB).
	MemoryLimitPages uint32

	// InitialPages pre-grows linear memory after load. 0 leaves one page.
	InitialPages uint32
}

const defaultScratchSize = 64 * 1024

// Library is one loaded engine: a linear memory, the heap that manages it,
// the native object space and the process-wide current context slot.
type Library struct {
	runtime wazero.Runtime
	mem     *Memory
	heap    *Heap
	scratch *Scratch
	objects map[imguibridge.Handle]any
	log     *zap.Logger

	current  imguibridge.Handle
	contexts int
	closed   bool
}

var (
	defaultLib     *Library
	defaultLibErr  error
	defaultLibOnce sync.Once
)

// Lib returns the process-wide engine library, loading it on first use.
// A load failure is fatal, as a missing native library would be. That
// includes a failed Init: every later Lib call raises its error again.
func Lib() *Library {
	defaultLibOnce.Do(func() {
		defaultLib, defaultLibErr = Load(context.Background(), nil)
	})
	if defaultLib == nil {
		Logger().Error("engine library load failed", zap.Error(defaultLibErr))
		panic(defaultLibErr)
	}
	return defaultLib
}

// Init loads the process-wide library with cfg instead of the defaults. It
// must run before anything calls Lib.
func Init(ctx context.Context, cfg *Config) error {
	installed := false
	defaultLibOnce.Do(func() {
		installed = true
		defaultLib, defaultLibErr = Load(ctx, cfg)
	})
	if !installed {
		return errors.InvalidInput(errors.PhaseLoad, "engine library already loaded")
	}
	return defaultLibErr
}

// Load instantiates an engine library with its own linear memory.
func Load(ctx context.Context, cfg *Config) (*Library, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	rt := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	compiled, err := rt.CompileModule(ctx, memoryModule)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Load(errors.KindInvalidData, "compile memory module", err)
	}
	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Load(errors.KindInvalidData, "instantiate memory module", err)
	}

	exported := mod.ExportedMemory("memory")
	if exported == nil {
		_ = rt.Close(ctx)
		return nil, errors.Load(errors.KindUnsupported, "memory module exports no memory", nil)
	}

	log := Logger()
	mem := &Memory{Mem: exported}
	l := &Library{
		runtime: rt,
		mem:     mem,
		heap:    newHeap(mem, log),
		objects: make(map[imguibridge.Handle]any),
		log:     log,
	}

	if cfg.InitialPages > 1 {
		if _, ok := exported.Grow(cfg.InitialPages - 1); !ok {
			_ = rt.Close(ctx)
			return nil, errors.Load(errors.KindAllocation, fmt.Sprintf("cannot grow memory to %d pages", cfg.InitialPages), nil)
		}
	}

	size := cfg.ScratchSize
	if size == 0 {
		size = defaultScratchSize
	}
	base, err := l.heap.Alloc(size, heapAlign)
	if err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Load(errors.KindAllocation, "reserve scratch stack", err)
	}
	l.scratch = newScratch(mem, base, size)

	log.Debug("engine library loaded",
		zap.Uint32("memory_bytes", mem.Size()),
		zap.Uint32("scratch_base", base),
		zap.Uint32("scratch_size", size))
	return l, nil
}

// Close releases the runtime and its linear memory. Every handle and
// descriptor obtained from the library becomes invalid.
func (l *Library) Close(ctx context.Context) error {
	if l.closed {
		return nil
	}
	l.closed = true
	l.objects = nil
	l.current = 0
	return l.runtime.Close(ctx)
}

// Memory returns the library's linear memory.
func (l *Library) Memory() *Memory { return l.mem }

// Heap returns the allocator over linear memory.
func (l *Library) Heap() *Heap { return l.heap }

// Scratch returns the scratch stack used for transient values.
func (l *Library) Scratch() *Scratch { return l.scratch }

// Objects returns the number of live native objects.
func (l *Library) Objects() int { return len(l.objects) }

// fail logs and raises an engine failure. It never returns.
func (l *Library) fail(err *errors.Error) {
	l.log.Error("engine failure",
		zap.String("phase", string(err.Phase)),
		zap.String("kind", string(err.Kind)),
		zap.Strings("path", err.Path),
		zap.String("detail", err.Detail))
	panic(err)
}

// assert raises an assertion failure when cond is false.
func (l *Library) assert(cond bool, where, detail string) {
	if !cond {
		l.fail(errors.Assertion(where, detail))
	}
}

// assertFrame raises a frame sequencing failure when cond is false.
func (l *Library) assertFrame(cond bool, where, detail string) {
	if !cond {
		l.fail(errors.FrameAssertion(where, detail))
	}
}

// alloc allocates zeroed heap memory; exhaustion is fatal.
func (l *Library) alloc(size, align uint32) uint32 {
	ptr, err := l.heap.Alloc(size, align)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			l.fail(e)
		}
		l.fail(errors.Wrap(errors.PhaseRuntime, errors.KindAllocation, err, "heap allocation"))
	}
	return ptr
}

func (l *Library) free(ptr, size, align uint32) {
	l.heap.Free(ptr, size, align)
}

// Alloc allocates native memory on behalf of the host.
func (l *Library) Alloc(size, align uint32) uint32 {
	return l.alloc(size, align)
}

// Free releases memory obtained from Alloc.
func (l *Library) Free(ptr, size, align uint32) {
	l.free(ptr, size, align)
}
