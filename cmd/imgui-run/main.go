package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/kr/pretty"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/imgui-bridge/imgui"
	"github.com/wippyai/imgui-bridge/native"
	"github.com/wippyai/imgui-bridge/transfer"
)

func main() {
	var (
		frames      = flag.Int("frames", 1, "Number of frames to render")
		items       = flag.Int("items", 1000, "Number of list items")
		itemHeight  = flag.Float64("item-height", -1, "Item height in pixels; <= 0 measures the first item")
		width       = flag.Float64("width", 0, "Display width (default: terminal width x 8)")
		height      = flag.Float64("height", 0, "Display height (default: terminal height x 17)")
		scroll      = flag.Float64("scroll", 0, "Vertical scroll offset in pixels")
		fontFile    = flag.String("font", "", "TrueType font to use instead of the default")
		scratch     = flag.Uint("scratch", 0, "Scratch arena size in bytes (0 = default)")
		dump        = flag.Bool("dump", false, "Dump per-frame statistics")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *items < 0 || *frames < 1 {
		fmt.Fprintln(os.Stderr, "Usage: imgui-run [-items n] [-frames n] [-item-height px] [-scroll px] [-dump]")
		fmt.Fprintln(os.Stderr, "       imgui-run -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			native.SetLogger(logger)
			transfer.SetLogger(logger)
			imgui.SetLogger(logger)
			defer func() { _ = logger.Sync() }()
		}
	}

	if err := native.Init(context.Background(), &native.Config{ScratchSize: uint32(*scratch)}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	display := displaySize(float32(*width), float32(*height))

	if *interactive {
		if err := runInteractive(*items, float32(*itemHeight), display, *fontFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*items, *frames, float32(*itemHeight), float32(*scroll), display, *fontFile, *dump); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// displaySize fills unset dimensions from the terminal, one text cell being
// roughly 8x17 pixels with the default font.
func displaySize(width, height float32) imgui.Vec2 {
	cols, rows := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols, rows = w, h
	}
	if width <= 0 {
		width = float32(cols * 8)
	}
	if height <= 0 {
		height = float32(rows * 17)
	}
	return imgui.Vec2{X: width, Y: height}
}

func run(items, frames int, itemHeight, scroll float32, display imgui.Vec2, fontFile string, dump bool) error {
	s, err := newScene(items, itemHeight, display, fontFile)
	if err != nil {
		return err
	}
	defer s.close()
	s.scrollY = scroll

	fmt.Printf("Display: %.0fx%.0f\n", display.X, display.Y)
	fmt.Printf("Items: %d\n", items)

	for range frames {
		st := s.frame()
		if dump {
			pretty.Println(st)
			continue
		}
		start, end := st.Visible()
		fmt.Printf("frame %d: items [%d, %d) scroll %.0f/%.0f, %d lists, %d commands, %d vertices (%d bytes), %d indices (%d bytes)\n",
			st.Frame, start, end, st.ScrollY, st.ScrollMaxY, st.Lists, st.Commands,
			st.Vertices, st.VertexBytes, st.Indices, st.IndexBytes)
	}

	heap := native.Lib().Heap().Stats()
	fmt.Printf("\nHeap: %d live bytes, %d free bytes, %d pages\n", heap.LiveBytes, heap.FreeBytes, heap.Pages)
	return nil
}
