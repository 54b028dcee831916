package imgui_test

import (
	"testing"

	"github.com/wippyai/imgui-bridge/imgui"
)

func TestContext_NoCurrent(t *testing.T) {
	ctx := imgui.CreateContext(nil)
	if err := ctx.SetCurrent(); err != nil {
		t.Fatalf("SetCurrent() error = %v", err)
	}
	ctx.Destroy()

	if _, err := imgui.CurrentContext(); err != imgui.ErrNoContext {
		t.Errorf("CurrentContext() error = %v, want ErrNoContext", err)
	}
}

func TestContext_Destroyed(t *testing.T) {
	ctx := imgui.CreateContext(nil)
	ctx.Destroy()
	ctx.Destroy()

	if !ctx.Destroyed() {
		t.Error("Destroyed() = false after Destroy")
	}
	if err := ctx.SetCurrent(); err != imgui.ErrContextDestroyed {
		t.Errorf("SetCurrent() error = %v, want ErrContextDestroyed", err)
	}
	if err := ctx.Use(func() { t.Error("fn ran on a destroyed context") }); err != imgui.ErrContextDestroyed {
		t.Errorf("Use() error = %v, want ErrContextDestroyed", err)
	}
}

func TestContext_UseRestoresPrevious(t *testing.T) {
	outer := newTestContext(t)
	inner := imgui.CreateContext(nil)
	defer inner.Destroy()

	var during imgui.Context
	if err := inner.Use(func() {
		cur, err := imgui.CurrentContext()
		if err != nil {
			t.Fatalf("CurrentContext() error = %v", err)
		}
		during = *cur
	}); err != nil {
		t.Fatalf("Use() error = %v", err)
	}
	if during != *inner {
		t.Error("Use did not make the context current")
	}

	cur, err := imgui.CurrentContext()
	if err != nil {
		t.Fatalf("CurrentContext() error = %v", err)
	}
	if *cur != *outer {
		t.Error("Use did not restore the previous context")
	}
}

func TestContext_UseRestoresOnPanic(t *testing.T) {
	outer := newTestContext(t)
	inner := imgui.CreateContext(nil)
	defer inner.Destroy()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic was swallowed")
			}
		}()
		_ = inner.Use(func() { panic("boom") })
	}()

	cur, err := imgui.CurrentContext()
	if err != nil {
		t.Fatalf("CurrentContext() error = %v", err)
	}
	if *cur != *outer {
		t.Error("previous context not restored after panic")
	}
}

func TestContext_FrameCount(t *testing.T) {
	newTestContext(t)
	start := imgui.FrameCount()
	for range 3 {
		frame(imgui.Vec2{X: 100, Y: 100}, func() {})
	}
	if got := imgui.FrameCount() - start; got != 3 {
		t.Errorf("frames counted = %d, want 3", got)
	}
}
