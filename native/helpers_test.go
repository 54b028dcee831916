package native

import (
	"context"
	"testing"

	"github.com/wippyai/imgui-bridge/errors"
)

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	l, err := Load(context.Background(), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	t.Cleanup(func() { _ = l.Close(context.Background()) })
	return l
}

// newTestContext creates a current context with an 800x600 display and a
// built default font.
func newTestContext(t *testing.T, l *Library) Handle {
	t.Helper()
	h := l.CreateContext(0)
	io := l.GetIO()
	l.IOSetDisplaySize(io, Vec2{X: 800, Y: 600})
	l.FontAtlasBuild(l.IOFonts(io))
	return h
}

// beginTestWindow starts a frame with a title-less window at the origin.
func beginTestWindow(l *Library, size Vec2) {
	l.NewFrame()
	l.SetNextWindowPos(Vec2{}, CondAlways, Vec2{})
	l.SetNextWindowSize(size, CondAlways)
	l.Begin("test", 0, WindowFlagsNoTitleBar)
}

func endTestWindow(l *Library) {
	l.End()
	l.Render()
}

// expectFailure runs fn and returns the engine failure it raised.
func expectFailure(t *testing.T, fn func()) (e *errors.Error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected an engine failure")
		}
		var ok bool
		if e, ok = r.(*errors.Error); !ok {
			t.Fatalf("expected *errors.Error, got %T: %v", r, r)
		}
	}()
	fn()
	return nil
}
