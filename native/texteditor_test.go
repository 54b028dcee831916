package native

import (
	"testing"
)

func TestTextEditor_TextAndSelection(t *testing.T) {
	l := newTestLibrary(t)
	e := l.NewTextEditor()
	defer l.DeleteTextEditor(e)

	l.TextEditorSetText(e, "hello\nworld")
	d := l.TextEditorTextBuffer(e)
	if d.Count != 11 || d.ByteSize != 11 {
		t.Fatalf("text descriptor = %+v", d)
	}
	if got := l.mem.cstring(uint32(d.Ptr)); got != "hello\nworld" {
		t.Errorf("text = %q", got)
	}

	if l.TextEditorHasSelection(e) {
		t.Error("new text should have no selection")
	}
	l.TextEditorSetSelection(e, 1, 2, 0, 1)
	if !l.TextEditorHasSelection(e) {
		t.Fatal("selection not set")
	}
	if got := l.mem.cstring(uint32(l.TextEditorSelectedText(e))); got != "ello\nwo" {
		t.Errorf("selected = %q, want %q", got, "ello\nwo")
	}
	if got := l.mem.cstring(uint32(l.TextEditorCurrentLineText(e))); got != "world" {
		t.Errorf("current line = %q", got)
	}
	if col, line := l.TextEditorCursorPos(e); col != 2 || line != 1 {
		t.Errorf("cursor = (%d, %d), want (2, 1)", col, line)
	}
	if col, line := l.TextEditorSelectionStart(e); col != 1 || line != 0 {
		t.Errorf("selection start = (%d, %d), want (1, 0)", col, line)
	}
}

func TestTextEditor_TypingWhenFocused(t *testing.T) {
	l := newTestLibrary(t)
	newTestContext(t, l)
	e := l.NewTextEditor()
	defer l.DeleteTextEditor(e)
	l.TextEditorSetText(e, "hello\nworld")

	render := func() { l.TextEditorRender(e, "editor", Vec2{}, false) }
	mouse := Vec2{X: 50, Y: 50}
	inputFrame(l, mouse, false, render)
	inputFrame(l, mouse, true, render)
	l.TextEditorSetSelection(e, 0, 5, 0, 5)

	io := l.GetIO()
	l.IOAddInputCharacter(io, '!')
	inputFrame(l, mouse, false, render)
	if !l.TextEditorIsTextChanged(e) {
		t.Error("typing should mark the text changed")
	}
	if got := l.mem.cstring(uint32(l.TextEditorTextBuffer(e).Ptr)); got != "hello!\nworld" {
		t.Errorf("text = %q", got)
	}
	if !l.IOWantCaptureKeyboard(io) {
		t.Error("a focused editor should capture the keyboard")
	}

	inputFrame(l, mouse, false, render)
	if l.TextEditorIsTextChanged(e) {
		t.Error("changed flag should reset on the next render")
	}
}

func TestTextEditor_UnfocusedIgnoresInput(t *testing.T) {
	l := newTestLibrary(t)
	newTestContext(t, l)
	e := l.NewTextEditor()
	defer l.DeleteTextEditor(e)
	l.TextEditorSetText(e, "abc")

	l.IOAddInputCharacter(l.GetIO(), 'x')
	inputFrame(l, Vec2{X: 500, Y: 500}, false, func() { l.TextEditorRender(e, "editor", Vec2{}, true) })
	if got := l.mem.cstring(uint32(l.TextEditorTextBuffer(e).Ptr)); got != "abc" {
		t.Errorf("text = %q, want unchanged", got)
	}
}

func TestErrorMarkers(t *testing.T) {
	l := newTestLibrary(t)
	m := l.NewErrorMarkers()
	defer l.DeleteErrorMarkers(m)

	l.ErrorMarkersInsert(m, 3, "first")
	l.ErrorMarkersInsert(m, 3, "ignored")
	l.ErrorMarkersInsert(m, 1, "other")
	if got := l.ErrorMarkersSize(m); got != 2 {
		t.Errorf("size = %d, want 2", got)
	}

	e := l.NewTextEditor()
	defer l.DeleteTextEditor(e)
	l.TextEditorSetErrorMarkers(e, m)
	if msg := l.textEditor(e).markers[3]; msg != "first" {
		t.Errorf("marker for line 3 = %q, want the first insert", msg)
	}

	l.ErrorMarkersClear(m)
	if got := l.ErrorMarkersSize(m); got != 0 {
		t.Errorf("size after clear = %d", got)
	}
}

func TestTextEditor_Editing(t *testing.T) {
	tests := []struct {
		name string
		text string
		edit func(e *textEditor)
		want string
	}{
		{"backspace joins lines", "ab\ncd", func(e *textEditor) {
			e.moveCursor(coord{line: 1}, false)
			e.backspace()
		}, "abcd"},
		{"delete forward at end of line", "ab\ncd", func(e *textEditor) {
			e.moveCursor(coord{line: 0, column: 2}, false)
			e.deleteForward()
		}, "abcd"},
		{"enter splits line", "abcd", func(e *textEditor) {
			e.moveCursor(coord{line: 0, column: 2}, false)
			e.insertRune('\n')
		}, "ab\ncd"},
		{"typing replaces selection", "hello world", func(e *textEditor) {
			e.moveCursor(coord{line: 0, column: 0}, false)
			e.moveCursor(coord{line: 0, column: 5}, true)
			e.insertRune('X')
		}, "X world"},
		{"backspace at start is a no-op", "ab", func(e *textEditor) {
			e.backspace()
		}, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLibrary(t)
			h := l.NewTextEditor()
			defer l.DeleteTextEditor(h)
			e := l.textEditor(h)
			e.setText(tt.text)
			tt.edit(e)
			if got := e.String(); got != tt.want {
				t.Errorf("text = %q, want %q", got, tt.want)
			}
		})
	}
}
