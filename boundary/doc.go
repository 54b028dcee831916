// Package boundary is the flat entry-point surface of the engine.
//
// Every function takes only handles, scalars and pointers into linear memory,
// and returns a scalar, a [imguibridge.Bool], a [imguibridge.Handle], a
// [imguibridge.BufferDescriptor] or a [imguibridge.Layout]. Strings are
// NUL-terminated native strings. Vector arguments and results travel through
// pointers to native vec2/vec4 records; a null input pointer reads as zero and
// a null output pointer is not written.
//
// The boundary performs no validation. Passing a handle of the wrong kind, a
// dangling handle or an out-of-range pointer is a contract violation; the
// engine aborts by panicking with a structured error. Failures that are part
// of the contract surface as sentinels: a false Bool or a null Handle.
//
// # Buffers
//
// Descriptors alias engine-owned memory and are valid until the owning
// structure is next mutated: for draw data that is the next NewFrame. The
// element layout of each buffer kind is queried separately and is a property
// of the kind:
//
//	desc := boundary.DrawListVertexBuffer(list)
//	vtx := boundary.VertexBufferLayout()
//	// desc.ByteSize == desc.Count * vtx.Stride
//
// # Clipper
//
// ListClipperBegin, ListClipperStep and ListClipperEnd carry the complete
// clipper state in a caller-owned clipper-state record. The engine keeps
// nothing between calls, so any number of traversals may be interleaved.
package boundary
