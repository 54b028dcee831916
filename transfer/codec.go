package transfer

import (
	"math"
	"sync"

	"go.bytecodealliance.org/wit"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/layout"
	"github.com/wippyai/imgui-bridge/native"
)

// Codec converts one value kind between its Go form and its native form.
//
// Import writes the host value in to linear memory at out. Export reads the
// native value at in back into out. Field widths are translated where the
// two forms differ; floats are copied by bit pattern.
type Codec[T any] struct {
	Name   string
	Native wit.Type
	Import func(m imguibridge.Memory, out imguibridge.Ptr, in *T) error
	Export func(out *T, m imguibridge.Memory, in imguibridge.Ptr) error
}

var (
	calcMu sync.Mutex
	calc   = layout.NewCalculator()
)

// Layout returns the native size, alignment and field offsets of the kind.
func (c Codec[T]) Layout() layout.Info {
	calcMu.Lock()
	defer calcMu.Unlock()
	return calc.Calculate(c.Native)
}

// offsets resolves record field offsets once per codec definition.
func offsets(e native.Element, fields ...string) []uint32 {
	info := layout.NewCalculator().Calculate(e.Type())
	out := make([]uint32, len(fields))
	for i, f := range fields {
		off, ok := info.Offset(f)
		if !ok {
			panic(errors.New(errors.PhaseLayout, errors.KindInvalidData).
				Path(e.String(), f).
				NativeType(e.String()).
				Detail("record has no such field").
				Build())
		}
		out[i] = off
	}
	return out
}

func writeF32(m imguibridge.Memory, at uint32, v float32) error {
	return m.WriteU32(at, math.Float32bits(v))
}

func readF32(m imguibridge.Memory, at uint32) (float32, error) {
	bits, err := m.ReadU32(at)
	return math.Float32frombits(bits), err
}

// Bool maps a Go bool to the engine's 1-byte boolean. Any nonzero byte
// exports as true.
var Bool = Codec[bool]{
	Name:   "bool",
	Native: native.ElementBool.Type(),
	Import: func(m imguibridge.Memory, out imguibridge.Ptr, in *bool) error {
		var b uint8
		if *in {
			b = 1
		}
		return m.WriteU8(uint32(out), b)
	},
	Export: func(out *bool, m imguibridge.Memory, in imguibridge.Ptr) error {
		b, err := m.ReadU8(uint32(in))
		if err != nil {
			return err
		}
		*out = b != 0
		return nil
	},
}

// Int32 maps int32 to a native s32.
var Int32 = Codec[int32]{
	Name:   "s32",
	Native: native.ElementInt32.Type(),
	Import: func(m imguibridge.Memory, out imguibridge.Ptr, in *int32) error {
		return m.WriteU32(uint32(out), uint32(*in))
	},
	Export: func(out *int32, m imguibridge.Memory, in imguibridge.Ptr) error {
		v, err := m.ReadU32(uint32(in))
		if err != nil {
			return err
		}
		*out = int32(v)
		return nil
	},
}

// Float32 maps float32 to a native f32, preserving NaN payloads and infinities.
var Float32 = Codec[float32]{
	Name:   "f32",
	Native: native.ElementFloat32.Type(),
	Import: func(m imguibridge.Memory, out imguibridge.Ptr, in *float32) error {
		return writeF32(m, uint32(out), *in)
	},
	Export: func(out *float32, m imguibridge.Memory, in imguibridge.Ptr) error {
		v, err := readF32(m, uint32(in))
		if err != nil {
			return err
		}
		*out = v
		return nil
	},
}

var vecOffsets = offsets(native.ElementVec4, "x", "y", "z", "w")

// Vec2 maps imguibridge.Vec2 to a native record of two f32.
var Vec2 = Codec[imguibridge.Vec2]{
	Name:   "vec2",
	Native: native.ElementVec2.Type(),
	Import: func(m imguibridge.Memory, out imguibridge.Ptr, in *imguibridge.Vec2) error {
		return writeFloats(m, uint32(out), in.X, in.Y)
	},
	Export: func(out *imguibridge.Vec2, m imguibridge.Memory, in imguibridge.Ptr) error {
		return readFloats(m, uint32(in), &out.X, &out.Y)
	},
}

// Vec4 maps imguibridge.Vec4 to a native record of four f32.
var Vec4 = Codec[imguibridge.Vec4]{
	Name:   "vec4",
	Native: native.ElementVec4.Type(),
	Import: func(m imguibridge.Memory, out imguibridge.Ptr, in *imguibridge.Vec4) error {
		return writeFloats(m, uint32(out), in.X, in.Y, in.Z, in.W)
	},
	Export: func(out *imguibridge.Vec4, m imguibridge.Memory, in imguibridge.Ptr) error {
		return readFloats(m, uint32(in), &out.X, &out.Y, &out.Z, &out.W)
	},
}

func writeFloats(m imguibridge.Memory, base uint32, vs ...float32) error {
	for i, v := range vs {
		if err := writeF32(m, base+vecOffsets[i], v); err != nil {
			return err
		}
	}
	return nil
}

func readFloats(m imguibridge.Memory, base uint32, vs ...*float32) error {
	for i, v := range vs {
		f, err := readF32(m, base+vecOffsets[i])
		if err != nil {
			return err
		}
		*v = f
	}
	return nil
}

var clipperOffsets = offsets(native.ElementClipperState,
	"start-pos-y", "items-height", "items-count", "step-no", "display-start", "display-end")

// ClipperState maps the six clipper fields to their native record.
var ClipperState = Codec[native.ClipperState]{
	Name:   "clipper-state",
	Native: native.ElementClipperState.Type(),
	Import: func(m imguibridge.Memory, out imguibridge.Ptr, in *native.ClipperState) error {
		base := uint32(out)
		if err := writeF32(m, base+clipperOffsets[0], in.StartPosY); err != nil {
			return err
		}
		if err := writeF32(m, base+clipperOffsets[1], in.ItemsHeight); err != nil {
			return err
		}
		for i, v := range []int32{in.ItemsCount, in.StepNo, in.DisplayStart, in.DisplayEnd} {
			if err := m.WriteU32(base+clipperOffsets[2+i], uint32(v)); err != nil {
				return err
			}
		}
		return nil
	},
	Export: func(out *native.ClipperState, m imguibridge.Memory, in imguibridge.Ptr) error {
		base := uint32(in)
		var err error
		if out.StartPosY, err = readF32(m, base+clipperOffsets[0]); err != nil {
			return err
		}
		if out.ItemsHeight, err = readF32(m, base+clipperOffsets[1]); err != nil {
			return err
		}
		for i, dst := range []*int32{&out.ItemsCount, &out.StepNo, &out.DisplayStart, &out.DisplayEnd} {
			v, err := m.ReadU32(base + clipperOffsets[2+i])
			if err != nil {
				return err
			}
			*dst = int32(v)
		}
		return nil
	},
}
