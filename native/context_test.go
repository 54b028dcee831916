package native

import (
	"testing"

	"github.com/wippyai/imgui-bridge/errors"
)

func TestContext_Lifecycle(t *testing.T) {
	l := newTestLibrary(t)
	baseline := l.Objects()

	a := l.CreateContext(0)
	if got := l.CurrentContext(); got != a {
		t.Fatalf("first context should become current: got %#x, want %#x", got, a)
	}
	b := l.CreateContext(0)
	if got := l.CurrentContext(); got != a {
		t.Errorf("second context must not replace the current one: got %#x", got)
	}

	l.SetCurrentContext(b)
	if l.CurrentContext() != b {
		t.Error("SetCurrentContext did not switch")
	}
	l.DestroyContext(0)
	if l.CurrentContext() != 0 {
		t.Error("destroying the current context should clear the slot")
	}
	l.DestroyContext(a)
	if got := l.Objects(); got != baseline {
		t.Errorf("objects after destroying every context = %d, want %d", got, baseline)
	}
}

func TestContext_SharedAtlas(t *testing.T) {
	l := newTestLibrary(t)
	atlas := l.NewFontAtlas()
	a := l.CreateContext(atlas)
	b := l.CreateContext(atlas)

	l.SetCurrentContext(a)
	if got := l.IOFonts(l.GetIO()); got != atlas {
		t.Errorf("context a atlas = %#x, want %#x", got, atlas)
	}
	l.SetCurrentContext(b)
	if got := l.IOFonts(l.GetIO()); got != atlas {
		t.Errorf("context b atlas = %#x, want %#x", got, atlas)
	}

	e := expectFailure(t, func() { l.DeleteFontAtlas(atlas) })
	if e.Kind != errors.KindAssertion {
		t.Errorf("kind = %s, want %s", e.Kind, errors.KindAssertion)
	}

	l.DestroyContext(a)
	l.DestroyContext(b)
	l.DeleteFontAtlas(atlas)
}

func TestContext_NoCurrent(t *testing.T) {
	l := newTestLibrary(t)
	e := expectFailure(t, func() { l.NewFrame() })
	if e.Kind != errors.KindAssertion {
		t.Errorf("kind = %s, want %s", e.Kind, errors.KindAssertion)
	}
}
