package boundary

// NewTextEditor creates a caller-owned text editor.
func NewTextEditor() Handle {
	return lib().NewTextEditor()
}

func DeleteTextEditor(editor Handle) {
	lib().DeleteTextEditor(editor)
}

func TextEditorRender(editor Handle, title Ptr, size Ptr, border Bool) {
	lib().TextEditorRender(editor, str(title), mem().LoadVec2(size), truth(border))
}

func TextEditorSetText(editor Handle, text Ptr) {
	lib().TextEditorSetText(editor, str(text))
}

// TextEditorTextBuffer describes the editor text. Count excludes the NUL
// that follows it.
func TextEditorTextBuffer(editor Handle) BufferDescriptor {
	return lib().TextEditorTextBuffer(editor)
}

func TextEditorSelectedText(editor Handle) Ptr {
	return lib().TextEditorSelectedText(editor)
}

func TextEditorCurrentLineText(editor Handle) Ptr {
	return lib().TextEditorCurrentLineText(editor)
}

func TextEditorHasSelection(editor Handle) Bool {
	return boolOf(lib().TextEditorHasSelection(editor))
}

func TextEditorIsTextChanged(editor Handle) Bool {
	return boolOf(lib().TextEditorIsTextChanged(editor))
}

func TextEditorSetTabSize(editor Handle, size int32) {
	lib().TextEditorSetTabSize(editor, size)
}

func TextEditorSetShowWhitespaces(editor Handle, show Bool) {
	lib().TextEditorSetShowWhitespaces(editor, truth(show))
}

func TextEditorSetLanguage(editor Handle, lang int32) {
	lib().TextEditorSetLanguage(editor, lang)
}

// TextEditorCursorPos writes the cursor column and line as s32 values.
func TextEditorCursorPos(editor Handle, column, line Ptr) {
	c, l := lib().TextEditorCursorPos(editor)
	m := mem()
	m.StoreS32(column, c)
	m.StoreS32(line, l)
}

func TextEditorSelectionStart(editor Handle, column, line Ptr) {
	c, l := lib().TextEditorSelectionStart(editor)
	m := mem()
	m.StoreS32(column, c)
	m.StoreS32(line, l)
}

func TextEditorSetSelection(editor Handle, startLine, startColumn, endLine, endColumn int32) {
	lib().TextEditorSetSelection(editor, startLine, startColumn, endLine, endColumn)
}

func TextEditorSetErrorMarkers(editor, markers Handle) {
	lib().TextEditorSetErrorMarkers(editor, markers)
}

// NewErrorMarkers creates a caller-owned line-to-message map.
func NewErrorMarkers() Handle {
	return lib().NewErrorMarkers()
}

func DeleteErrorMarkers(markers Handle) {
	lib().DeleteErrorMarkers(markers)
}

func ErrorMarkersInsert(markers Handle, line int32, message Ptr) {
	lib().ErrorMarkersInsert(markers, line, str(message))
}

func ErrorMarkersClear(markers Handle) {
	lib().ErrorMarkersClear(markers)
}

func ErrorMarkersSize(markers Handle) uint32 {
	return lib().ErrorMarkersSize(markers)
}
