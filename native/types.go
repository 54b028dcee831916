package native

import (
	"sync"

	"go.bytecodealliance.org/wit"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/layout"
)

type (
	Handle = imguibridge.Handle
	Ptr    = imguibridge.Ptr
	Vec2   = imguibridge.Vec2
	Vec4   = imguibridge.Vec4
)

// Element identifies a native element kind whose layout is fixed by the engine.
type Element uint8

const (
	ElementBool Element = iota
	ElementInt32
	ElementFloat32
	ElementVec2
	ElementVec4
	ElementDrawVert
	ElementDrawIdx
	ElementDrawCmd
	ElementHandle
	ElementWchar
	ElementAlpha8
	ElementRGBA32
	ElementClipperState
	elementCount
)

var elementNames = [elementCount]string{
	"bool", "s32", "f32", "vec2", "vec4", "draw-vert", "draw-idx", "draw-cmd",
	"handle", "wchar", "alpha8", "rgba32", "clipper-state",
}

func (e Element) String() string {
	if e >= elementCount {
		return "unknown"
	}
	return elementNames[e]
}

func record(fields ...wit.Field) *wit.TypeDef {
	return &wit.TypeDef{Kind: &wit.Record{Fields: fields}}
}

var (
	vec2Type = record(
		wit.Field{Name: "x", Type: wit.F32{}},
		wit.Field{Name: "y", Type: wit.F32{}},
	)
	vec4Type = record(
		wit.Field{Name: "x", Type: wit.F32{}},
		wit.Field{Name: "y", Type: wit.F32{}},
		wit.Field{Name: "z", Type: wit.F32{}},
		wit.Field{Name: "w", Type: wit.F32{}},
	)
	drawVertType = record(
		wit.Field{Name: "pos", Type: vec2Type},
		wit.Field{Name: "uv", Type: vec2Type},
		wit.Field{Name: "col", Type: wit.U32{}},
	)
	drawCmdType = record(
		wit.Field{Name: "elem-count", Type: wit.U32{}},
		wit.Field{Name: "clip-rect", Type: vec4Type},
		wit.Field{Name: "texture-id", Type: wit.U32{}},
		wit.Field{Name: "vtx-offset", Type: wit.U32{}},
		wit.Field{Name: "idx-offset", Type: wit.U32{}},
	)
	clipperStateType = record(
		wit.Field{Name: "start-pos-y", Type: wit.F32{}},
		wit.Field{Name: "items-height", Type: wit.F32{}},
		wit.Field{Name: "items-count", Type: wit.S32{}},
		wit.Field{Name: "step-no", Type: wit.S32{}},
		wit.Field{Name: "display-start", Type: wit.S32{}},
		wit.Field{Name: "display-end", Type: wit.S32{}},
	)
)

// Type returns the WIT description of the element kind.
func (e Element) Type() wit.Type {
	switch e {
	case ElementBool:
		return wit.Bool{}
	case ElementInt32:
		return wit.S32{}
	case ElementFloat32:
		return wit.F32{}
	case ElementVec2:
		return vec2Type
	case ElementVec4:
		return vec4Type
	case ElementDrawVert:
		return drawVertType
	case ElementDrawIdx, ElementWchar:
		return wit.U16{}
	case ElementDrawCmd:
		return drawCmdType
	case ElementHandle, ElementRGBA32:
		return wit.U32{}
	case ElementAlpha8:
		return wit.U8{}
	case ElementClipperState:
		return clipperStateType
	}
	return nil
}

var layouts = sync.OnceValue(func() [elementCount]layout.Info {
	calc := layout.NewCalculator()
	var out [elementCount]layout.Info
	for e := Element(0); e < elementCount; e++ {
		out[e] = calc.Calculate(e.Type())
	}
	return out
})

// ElementLayout returns the size, alignment and field offsets of an element kind.
func ElementLayout(e Element) layout.Info {
	if e >= elementCount {
		return layout.Info{Align: 1}
	}
	return layouts()[e]
}

func mustOffset(e Element, field string) uint32 {
	off, ok := ElementLayout(e).Offset(field)
	if !ok {
		panic(errors.New(errors.PhaseLayout, errors.KindInvalidData).
			Path(e.String(), field).
			NativeType(e.String()).
			Detail("record has no such field").
			Build())
	}
	return off
}

// Field offsets used by the engine when writing native records.
var (
	vertSize   = ElementLayout(ElementDrawVert).Size
	vertPos    = mustOffset(ElementDrawVert, "pos")
	vertUV     = mustOffset(ElementDrawVert, "uv")
	vertCol    = mustOffset(ElementDrawVert, "col")
	idxSize    = ElementLayout(ElementDrawIdx).Size
	cmdSize    = ElementLayout(ElementDrawCmd).Size
	cmdCount   = mustOffset(ElementDrawCmd, "elem-count")
	cmdClip    = mustOffset(ElementDrawCmd, "clip-rect")
	cmdTexture = mustOffset(ElementDrawCmd, "texture-id")
	cmdVtxOff  = mustOffset(ElementDrawCmd, "vtx-offset")
	cmdIdxOff  = mustOffset(ElementDrawCmd, "idx-offset")

	clipStartPosY    = mustOffset(ElementClipperState, "start-pos-y")
	clipItemsHeight  = mustOffset(ElementClipperState, "items-height")
	clipItemsCount   = mustOffset(ElementClipperState, "items-count")
	clipStepNo       = mustOffset(ElementClipperState, "step-no")
	clipDisplayStart = mustOffset(ElementClipperState, "display-start")
	clipDisplayEnd   = mustOffset(ElementClipperState, "display-end")
)
