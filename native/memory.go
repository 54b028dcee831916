package native

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/tetratelabs/wazero/api"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/errors"
)

// Memory adapts wazero api.Memory to imguibridge.Memory.
//
// The exported methods report out-of-range accesses as errors. The engine's
// own accessors (lower case) treat them as fatal: an invalid address reaching
// the engine is a contract violation.
type Memory struct {
	Mem api.Memory
}

var _ imguibridge.Memory = (*Memory)(nil)
var _ imguibridge.MemorySizer = (*Memory)(nil)

// Size returns the current size of linear memory in bytes.
func (m *Memory) Size() uint32 {
	return m.Mem.Size()
}

// Read returns a view of memory. The view aliases linear memory and is
// invalidated when memory grows.
func (m *Memory) Read(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.Mem.Read(offset, length)
	if !ok {
		return nil, fmt.Errorf("memory read out of bounds: offset=%d, length=%d", offset, length)
	}
	return data, nil
}

// Write writes bytes to memory.
func (m *Memory) Write(offset uint32, data []byte) error {
	if !m.Mem.Write(offset, data) {
		return fmt.Errorf("memory write out of bounds: offset=%d, length=%d", offset, len(data))
	}
	return nil
}

// ReadU8 reads an unsigned 8-bit value.
func (m *Memory) ReadU8(offset uint32) (uint8, error) {
	v, ok := m.Mem.ReadByte(offset)
	if !ok {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	return v, nil
}

// ReadU16 reads an unsigned 16-bit little-endian value.
func (m *Memory) ReadU16(offset uint32) (uint16, error) {
	v, ok := m.Mem.ReadUint16Le(offset)
	if !ok {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	return v, nil
}

// ReadU32 reads an unsigned 32-bit little-endian value.
func (m *Memory) ReadU32(offset uint32) (uint32, error) {
	v, ok := m.Mem.ReadUint32Le(offset)
	if !ok {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	return v, nil
}

// ReadU64 reads an unsigned 64-bit little-endian value.
func (m *Memory) ReadU64(offset uint32) (uint64, error) {
	v, ok := m.Mem.ReadUint64Le(offset)
	if !ok {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	return v, nil
}

// WriteU8 writes an unsigned 8-bit value.
func (m *Memory) WriteU8(offset uint32, value uint8) error {
	if !m.Mem.WriteByte(offset, value) {
		return fmt.Errorf("memory write out of bounds: offset=%d", offset)
	}
	return nil
}

// WriteU16 writes an unsigned 16-bit little-endian value.
func (m *Memory) WriteU16(offset uint32, value uint16) error {
	if !m.Mem.WriteUint16Le(offset, value) {
		return fmt.Errorf("memory write out of bounds: offset=%d", offset)
	}
	return nil
}

// WriteU32 writes an unsigned 32-bit little-endian value.
func (m *Memory) WriteU32(offset uint32, value uint32) error {
	if !m.Mem.WriteUint32Le(offset, value) {
		return fmt.Errorf("memory write out of bounds: offset=%d", offset)
	}
	return nil
}

// WriteU64 writes an unsigned 64-bit little-endian value.
func (m *Memory) WriteU64(offset uint32, value uint64) error {
	if !m.Mem.WriteUint64Le(offset, value) {
		return fmt.Errorf("memory write out of bounds: offset=%d", offset)
	}
	return nil
}

func (m *Memory) fault(offset, length uint32) {
	panic(errors.New(errors.PhaseRuntime, errors.KindOutOfBounds).
		Detail("native access at %#x (+%d) outside %d bytes of linear memory", offset, length, m.Mem.Size()).
		Value(offset).
		Build())
}

// view returns length bytes at offset, aliasing linear memory.
func (m *Memory) view(offset, length uint32) []byte {
	data, ok := m.Mem.Read(offset, length)
	if !ok {
		m.fault(offset, length)
	}
	return data
}

func (m *Memory) u8(offset uint32) uint8 {
	v, ok := m.Mem.ReadByte(offset)
	if !ok {
		m.fault(offset, 1)
	}
	return v
}

func (m *Memory) setU8(offset uint32, v uint8) {
	if !m.Mem.WriteByte(offset, v) {
		m.fault(offset, 1)
	}
}

func (m *Memory) u16(offset uint32) uint16 {
	return binary.LittleEndian.Uint16(m.view(offset, 2))
}

func (m *Memory) setU16(offset uint32, v uint16) {
	binary.LittleEndian.PutUint16(m.view(offset, 2), v)
}

func (m *Memory) u32(offset uint32) uint32 {
	return binary.LittleEndian.Uint32(m.view(offset, 4))
}

func (m *Memory) setU32(offset uint32, v uint32) {
	binary.LittleEndian.PutUint32(m.view(offset, 4), v)
}

func (m *Memory) s32(offset uint32) int32 {
	return int32(m.u32(offset))
}

func (m *Memory) setS32(offset uint32, v int32) {
	m.setU32(offset, uint32(v))
}

// f32 reads by bit pattern so NaN payloads survive.
func (m *Memory) f32(offset uint32) float32 {
	return math.Float32frombits(m.u32(offset))
}

func (m *Memory) setF32(offset uint32, v float32) {
	m.setU32(offset, math.Float32bits(v))
}

func (m *Memory) vec2(offset uint32) imguibridge.Vec2 {
	return imguibridge.Vec2{X: m.f32(offset), Y: m.f32(offset + 4)}
}

func (m *Memory) setVec2(offset uint32, v imguibridge.Vec2) {
	m.setF32(offset, v.X)
	m.setF32(offset+4, v.Y)
}

func (m *Memory) vec4(offset uint32) imguibridge.Vec4 {
	return imguibridge.Vec4{X: m.f32(offset), Y: m.f32(offset + 4), Z: m.f32(offset + 8), W: m.f32(offset + 12)}
}

func (m *Memory) setVec4(offset uint32, v imguibridge.Vec4) {
	m.setF32(offset, v.X)
	m.setF32(offset+4, v.Y)
	m.setF32(offset+8, v.Z)
	m.setF32(offset+12, v.W)
}

// cstring reads a NUL-terminated string. A null pointer reads as "".
func (m *Memory) cstring(offset uint32) string {
	if offset == 0 {
		return ""
	}
	rest := m.view(offset, m.Mem.Size()-offset)
	n := bytes.IndexByte(rest, 0)
	if n < 0 {
		m.fault(offset, uint32(len(rest)))
	}
	return string(rest[:n])
}

// CString reads the NUL-terminated string at ptr. A null pointer reads as "".
func (m *Memory) CString(ptr imguibridge.Ptr) string {
	return m.cstring(uint32(ptr))
}

// View returns length bytes at ptr aliasing linear memory. An out-of-range
// view is fatal.
func (m *Memory) View(ptr imguibridge.Ptr, length uint32) []byte {
	return m.view(uint32(ptr), length)
}

// LoadVec2 reads a native vec2. A null pointer reads as zero.
func (m *Memory) LoadVec2(ptr imguibridge.Ptr) imguibridge.Vec2 {
	if ptr == 0 {
		return imguibridge.Vec2{}
	}
	return m.vec2(uint32(ptr))
}

// StoreVec2 writes a native vec2. Writing to a null pointer does nothing.
func (m *Memory) StoreVec2(ptr imguibridge.Ptr, v imguibridge.Vec2) {
	if ptr != 0 {
		m.setVec2(uint32(ptr), v)
	}
}

// LoadVec4 reads a native vec4. A null pointer reads as zero.
func (m *Memory) LoadVec4(ptr imguibridge.Ptr) imguibridge.Vec4 {
	if ptr == 0 {
		return imguibridge.Vec4{}
	}
	return m.vec4(uint32(ptr))
}

// StoreVec4 writes a native vec4. Writing to a null pointer does nothing.
func (m *Memory) StoreVec4(ptr imguibridge.Ptr, v imguibridge.Vec4) {
	if ptr != 0 {
		m.setVec4(uint32(ptr), v)
	}
}

// StoreS32 writes a native s32. Writing to a null pointer does nothing.
func (m *Memory) StoreS32(ptr imguibridge.Ptr, v int32) {
	if ptr != 0 {
		m.setS32(uint32(ptr), v)
	}
}
