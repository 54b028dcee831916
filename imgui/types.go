package imgui

import (
	"structs"

	imguibridge "github.com/wippyai/imgui-bridge"
	"github.com/wippyai/imgui-bridge/errors"
	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/transfer"
)

type (
	Vec2 = imguibridge.Vec2
	Vec4 = imguibridge.Vec4
)

// TextureID is a user value identifying an uploaded texture. It is passed
// back in draw commands.
type TextureID uint32

// DrawVert is the host view of one vertex in a vertex buffer.
type DrawVert struct {
	_   structs.HostLayout
	Pos Vec2
	UV  Vec2
	Col uint32
}

// DrawIdx is the host view of one index in an index buffer.
type DrawIdx = uint16

var (
	// ErrNoContext is returned when no context is current.
	ErrNoContext error = errors.NoContext()

	// ErrContextDestroyed is returned when using an already destroyed context.
	ErrContextDestroyed error = errors.ContextDestroyed()

	// ErrFontLoad is returned when font data cannot be parsed.
	ErrFontLoad error = errors.New(errors.PhaseFont, errors.KindInvalidData).
			Detail("font data could not be loaded").
			Build()
)

// Conditions for the SetNextWindow* calls.
const (
	CondAlways       = native.CondAlways
	CondOnce         = native.CondOnce
	CondFirstUseEver = native.CondFirstUseEver
	CondAppearing    = native.CondAppearing
)

// Window flags.
const (
	WindowFlagsNone         int32 = 0
	WindowFlagsNoTitleBar         = native.WindowFlagsNoTitleBar
	WindowFlagsNoResize           = native.WindowFlagsNoResize
	WindowFlagsNoMove             = native.WindowFlagsNoMove
	WindowFlagsNoScrollbar        = native.WindowFlagsNoScrollbar
	WindowFlagsNoBackground       = native.WindowFlagsNoBackground
)

// Drag and drop flags.
const (
	DragDropFlagsNone                     int32 = 0
	DragDropFlagsSourceNoPreviewTooltip         = native.DragDropFlagsSourceNoPreviewTooltip
	DragDropFlagsSourceAllowNullID              = native.DragDropFlagsSourceAllowNullID
	DragDropFlagsAcceptBeforeDelivery           = native.DragDropFlagsAcceptBeforeDelivery
	DragDropFlagsAcceptNoDrawDefaultRect        = native.DragDropFlagsAcceptNoDrawDefaultRect
)

// Keys mapped through IO.KeyMap.
const (
	KeyTab        = native.KeyTab
	KeyLeftArrow  = native.KeyLeftArrow
	KeyRightArrow = native.KeyRightArrow
	KeyUpArrow    = native.KeyUpArrow
	KeyDownArrow  = native.KeyDownArrow
	KeyHome       = native.KeyHome
	KeyEnd        = native.KeyEnd
	KeyDelete     = native.KeyDelete
	KeyBackspace  = native.KeyBackspace
	KeyEnter      = native.KeyEnter
	KeyEscape     = native.KeyEscape
)

func scope() *transfer.Scope {
	return transfer.Enter(nil)
}

func vec2Ptr(s *transfer.Scope, v Vec2) imguibridge.Ptr {
	return transfer.Wrap(s, transfer.Vec2, &v)
}

func vec4Ptr(s *transfer.Scope, v Vec4) imguibridge.Ptr {
	return transfer.Wrap(s, transfer.Vec4, &v)
}

// readVec2 runs fn with a native out-parameter and returns what it wrote.
func readVec2(fn func(out imguibridge.Ptr)) (v Vec2) {
	transfer.With(transfer.Vec2, &v, fn)
	return v
}

func readVec4(fn func(out imguibridge.Ptr)) (v Vec4) {
	transfer.With(transfer.Vec4, &v, fn)
	return v
}

func isTrue(b imguibridge.Bool) bool {
	return b != imguibridge.False
}
