package boundary

import (
	"maps"

	"github.com/wippyai/imgui-bridge/native"
)

func elementLayout(e native.Element) Layout {
	info := native.ElementLayout(e)
	return Layout{Stride: info.Size, Align: info.Align, Offsets: maps.Clone(info.FieldOffs)}
}

// VertexBufferLayout returns the stride and the pos, uv and col offsets of a
// draw vertex.
func VertexBufferLayout() Layout {
	return elementLayout(native.ElementDrawVert)
}

// IndexBufferLayout returns the stride of a draw index.
func IndexBufferLayout() Layout {
	return elementLayout(native.ElementDrawIdx)
}

// CommandBufferLayout returns the stride and field offsets of a draw command.
func CommandBufferLayout() Layout {
	return elementLayout(native.ElementDrawCmd)
}

// ClipperStateLayout returns the layout of the clipper-state record.
func ClipperStateLayout() Layout {
	return elementLayout(native.ElementClipperState)
}

// ElementLayout returns the layout of any native element kind.
func ElementLayout(e native.Element) Layout {
	return elementLayout(e)
}
