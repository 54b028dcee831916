package main

import (
	"fmt"
	"os"

	"github.com/wippyai/imgui-bridge/imgui"
)

// scene is a single full-display window holding a clipped list of items.
type scene struct {
	ctx        *imgui.Context
	items      int
	itemHeight float32
	display    imgui.Vec2
	scrollY    float32
}

// frameStats summarizes one rendered frame.
type frameStats struct {
	Frame        int
	Ranges       [][2]int
	ScrollY      float32
	ScrollMaxY   float32
	LineSpacing  float32
	Lists        int
	Commands     int
	Vertices     int
	Indices      int
	VertexBytes  uint32
	IndexBytes   uint32
	ClippedItems int
}

// Visible returns the last range the clipper asked for. With a measured item
// height the first range only covers the measuring item.
func (st frameStats) Visible() (start, end int) {
	if len(st.Ranges) == 0 {
		return 0, 0
	}
	r := st.Ranges[len(st.Ranges)-1]
	return r[0], r[1]
}

func newScene(items int, itemHeight float32, display imgui.Vec2, fontFile string) (*scene, error) {
	ctx := imgui.CreateContext(nil)
	if err := ctx.SetCurrent(); err != nil {
		return nil, err
	}
	fonts := imgui.CurrentIO().Fonts()
	if fontFile != "" {
		data, err := os.ReadFile(fontFile)
		if err != nil {
			ctx.Destroy()
			return nil, fmt.Errorf("read font: %w", err)
		}
		if _, err := fonts.AddFontFromMemoryTTF(data, 16); err != nil {
			ctx.Destroy()
			return nil, fmt.Errorf("load font %s: %w", fontFile, err)
		}
	}
	fonts.Build()
	return &scene{ctx: ctx, items: items, itemHeight: itemHeight, display: display}, nil
}

func (s *scene) close() {
	s.ctx.Destroy()
}

// frame renders one frame. A scroll change takes effect on the frame after
// the one that requested it; settle renders both.
func (s *scene) frame() frameStats {
	var st frameStats
	io := imgui.CurrentIO()
	io.SetDisplaySize(s.display)
	io.SetDeltaTime(1.0 / 60)

	imgui.NewFrame()
	imgui.SetNextWindowPosV(imgui.Vec2{}, imgui.CondAlways, imgui.Vec2{})
	imgui.SetNextWindowSizeV(s.display, imgui.CondAlways)
	imgui.BeginV("items", nil, imgui.WindowFlagsNoTitleBar|imgui.WindowFlagsNoResize|imgui.WindowFlagsNoMove)

	var clipper imgui.ListClipper
	clipper.BeginV(s.items, s.itemHeight)
	for clipper.Step() {
		st.Ranges = append(st.Ranges, [2]int{clipper.DisplayStart, clipper.DisplayEnd})
		for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
			imgui.Text(itemLabel(i))
		}
	}
	st.ScrollY = imgui.ScrollY()
	st.ScrollMaxY = imgui.ScrollMaxY()
	st.LineSpacing = imgui.TextLineHeightWithSpacing()
	imgui.SetScrollY(s.scrollY)
	imgui.End()
	imgui.Render()

	st.Frame = imgui.FrameCount()
	data := imgui.RenderedDrawData()
	for _, list := range data.CommandLists() {
		st.Lists++
		st.Commands += len(list.Commands())
		st.VertexBytes += list.VertexBuffer().ByteSize
		st.IndexBytes += list.IndexBuffer().ByteSize
	}
	st.Vertices = data.TotalVertexCount()
	st.Indices = data.TotalIndexCount()
	start, end := st.Visible()
	st.ClippedItems = s.items - (end - start)
	return st
}

func (s *scene) settle() frameStats {
	s.frame()
	return s.frame()
}

func itemLabel(i int) string {
	return fmt.Sprintf("item %d", i)
}
