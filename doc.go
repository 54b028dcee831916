// Package imguibridge drives a native immediate-mode UI engine from Go across an
// opaque-handle boundary.
//
// The engine keeps its objects and per-frame geometry in its own linear memory
// and never exposes its object layout. The host sees addresses (handles and
// pointers), scalar values, and descriptors of native buffers.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	imguibridge/    Root package with core Handle, Ptr, Memory and Allocator types
//	├── imgui/      Typed host wrapper: handle kinds, owned resources, clipper, buffer views
//	├── transfer/   Scoped value adapter between host and native representations
//	├── boundary/   Flat entry points taking only handles, scalars and pointers
//	├── native/     The engine: linear-memory heap, contexts, windows, draw lists, fonts
//	├── layout/     Size, alignment and field offsets of native element kinds
//	├── errors/     Structured error types
//	└── cmd/        imgui-run, a headless and interactive frame driver
//
// # Quick Start
//
//	ctx := imgui.CreateContext(nil)
//	defer ctx.Destroy()
//
//	io := imgui.CurrentIO()
//	io.SetDisplaySize(imgui.Vec2{X: 800, Y: 600})
//
//	imgui.NewFrame()
//	imgui.Begin("list")
//	var clipper imgui.ListClipper
//	clipper.Begin(1000)
//	for clipper.Step() {
//	    for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
//	        imgui.Text(fmt.Sprintf("line %d", i))
//	    }
//	}
//	imgui.End()
//	imgui.Render()
//
//	for _, list := range imgui.RenderedDrawData().CommandLists() {
//	    verts := imgui.View[imgui.DrawVert](list.VertexBuffer()) // valid until the next frame
//	    _ = verts
//	}
//
// # Thread Safety
//
// The engine is single-threaded. Every handle-accepting call operates on the
// context most recently made current; callers must not drive the same context
// from more than one goroutine.
//
// # Memory Model
//
// Linear memory can only grow. Buffer descriptors and byte views alias it
// directly and are only valid until the owning structure is next mutated.
package imguibridge
