package imguibridge

import "structs"

// Handle is an opaque address of a native object in the engine's address space.
// Handle 0 is null. A handle carries no kind: using it as the wrong kind is
// undefined and must be prevented by the host wrapper's named types.
type Handle uint32

// Ptr is the address of a native-layout value or buffer in linear memory.
type Ptr uint32

// Bool is the 4-byte boolean returned across the boundary. The engine's own
// boolean is a single byte.
type Bool int32

// True and False are the canonical boundary booleans.
const (
	False Bool = 0
	True  Bool = 1
)

// BoolOf converts a Go bool into its boundary form.
func BoolOf(v bool) Bool {
	if v {
		return True
	}
	return False
}

// Memory represents the engine's linear memory
type Memory interface {
	Read(offset uint32, length uint32) ([]byte, error)
	Write(offset uint32, data []byte) error
	ReadU8(offset uint32) (uint8, error)
	ReadU16(offset uint32) (uint16, error)
	ReadU32(offset uint32) (uint32, error)
	ReadU64(offset uint32) (uint64, error)
	WriteU8(offset uint32, value uint8) error
	WriteU16(offset uint32, value uint16) error
	WriteU32(offset uint32, value uint32) error
	WriteU64(offset uint32, value uint64) error
}

// MemorySizer provides the current size of linear memory in bytes.
type MemorySizer interface {
	Size() uint32
}

// Allocator allocates memory in linear memory
type Allocator interface {
	Alloc(size, align uint32) (uint32, error)
	Free(ptr, size, align uint32)
}

// Vec2 is a 2D vector of two float32 values.
type Vec2 struct {
	_ structs.HostLayout
	X float32
	Y float32
}

// Vec4 is a 4D vector, also used for RGBA colors and rectangles (x1, y1, x2, y2).
type Vec4 struct {
	_ structs.HostLayout
	X float32
	Y float32
	Z float32
	W float32
}

// Plus returns vec + other.
func (vec Vec2) Plus(other Vec2) Vec2 {
	return Vec2{X: vec.X + other.X, Y: vec.Y + other.Y}
}

// Minus returns vec - other.
func (vec Vec2) Minus(other Vec2) Vec2 {
	return Vec2{X: vec.X - other.X, Y: vec.Y - other.Y}
}

// Times returns vec scaled by value.
func (vec Vec2) Times(value float32) Vec2 {
	return Vec2{X: vec.X * value, Y: vec.Y * value}
}

// Plus returns vec + other.
func (vec Vec4) Plus(other Vec4) Vec4 {
	return Vec4{X: vec.X + other.X, Y: vec.Y + other.Y, Z: vec.Z + other.Z, W: vec.W + other.W}
}

// Times returns vec scaled by value.
func (vec Vec4) Times(value float32) Vec4 {
	return Vec4{X: vec.X * value, Y: vec.Y * value, Z: vec.Z * value, W: vec.W * value}
}

// BufferDescriptor describes a native buffer without copying it.
// It is borrowed: valid until the owning structure is next mutated, which for
// draw data is the next frame.
type BufferDescriptor struct {
	Ptr      Ptr
	Count    uint32
	ByteSize uint32
}

// Empty reports whether the buffer holds no elements.
func (d BufferDescriptor) Empty() bool {
	return d.Count == 0 || d.Ptr == 0
}

// Layout is the per-kind element layout of a native buffer. It is a property
// of the element type, never of a buffer instance.
type Layout struct {
	Stride  uint32
	Align   uint32
	Offsets map[string]uint32
}

// Offset returns the byte offset of field, and false if the kind has no such field.
func (l Layout) Offset(field string) (uint32, bool) {
	off, ok := l.Offsets[field]
	return off, ok
}
