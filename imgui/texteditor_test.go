package imgui_test

import (
	"testing"

	"github.com/wippyai/imgui-bridge/imgui"
)

func TestTextEditor_Selection(t *testing.T) {
	newTestContext(t)
	imgui.WithTextEditor(func(editor imgui.TextEditor) {
		editor.SetText("hello\nworld")
		if got := editor.Text(); got != "hello\nworld" {
			t.Fatalf("Text() = %q", got)
		}
		if len(editor.TextBuffer()) != len("hello\nworld") {
			t.Errorf("TextBuffer() holds %d bytes", len(editor.TextBuffer()))
		}

		editor.SetSelection(0, 1, 1, 2)
		if !editor.HasSelection() {
			t.Fatal("HasSelection() = false")
		}
		if got := editor.SelectedText(); got != "ello\nwo" {
			t.Errorf("SelectedText() = %q, want %q", got, "ello\nwo")
		}
		if got := editor.CurrentLineText(); got != "world" {
			t.Errorf("CurrentLineText() = %q, want %q", got, "world")
		}
		if col, line := editor.CursorPos(); col != 2 || line != 1 {
			t.Errorf("CursorPos() = (%d, %d), want (2, 1)", col, line)
		}
		if col, line := editor.SelectionStart(); col != 1 || line != 0 {
			t.Errorf("SelectionStart() = (%d, %d), want (1, 0)", col, line)
		}
	})
}

func TestTextEditor_TypingWhenFocused(t *testing.T) {
	newTestContext(t)
	editor := imgui.NewTextEditor()
	defer editor.Delete()
	editor.SetText("hello\nworld")

	render := func() { editor.Render("editor", imgui.Vec2{}, false) }
	mouse := imgui.Vec2{X: 50, Y: 50}
	inputFrame(mouse, false, render)
	inputFrame(mouse, true, render)
	editor.SetSelection(0, 5, 0, 5)

	imgui.CurrentIO().AddInputCharacters("!")
	inputFrame(mouse, false, render)
	if !editor.IsTextChanged() {
		t.Error("typing should mark the text changed")
	}
	if got := editor.Text(); got != "hello!\nworld" {
		t.Errorf("Text() = %q", got)
	}
	if !imgui.CurrentIO().WantCaptureKeyboard() {
		t.Error("a focused editor should capture the keyboard")
	}
}

func TestErrorMarkers(t *testing.T) {
	newTestContext(t)
	imgui.WithErrorMarkers(func(markers imgui.ErrorMarkers) {
		markers.Insert(1, "first")
		markers.Insert(1, "ignored")
		markers.Insert(3, "third")
		if markers.Size() != 2 {
			t.Errorf("Size() = %d, want 2", markers.Size())
		}
		imgui.WithTextEditor(func(editor imgui.TextEditor) {
			editor.SetErrorMarkers(markers)
		})
		markers.Clear()
		if markers.Size() != 0 {
			t.Errorf("Size() after Clear = %d", markers.Size())
		}
	})

	markers := imgui.NewErrorMarkers()
	markers.Delete()
	markers.Delete()
	if markers != 0 {
		t.Error("Delete did not reset the handle")
	}
}
