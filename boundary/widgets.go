package boundary

// CalcTextSize writes the size of text rendered with the current font.
func CalcTextSize(out Ptr, text Ptr, hideAfterDoubleHash Bool) {
	mem().StoreVec2(out, lib().CalcTextSize(str(text), truth(hideAfterDoubleHash)))
}

func Text(text Ptr) {
	lib().Text(str(text))
}

func Dummy(size Ptr) {
	lib().Dummy(mem().LoadVec2(size))
}

func Separator() {
	lib().Separator()
}

func Button(label Ptr, size Ptr) Bool {
	return boolOf(lib().Button(str(label), mem().LoadVec2(size)))
}

// Checkbox toggles the native bool at v when clicked.
func Checkbox(label Ptr, v Ptr) Bool {
	return boolOf(lib().Checkbox(str(label), v))
}

// SliderFloat edits the native f32 at v. A null format uses "%.3f".
func SliderFloat(label Ptr, v Ptr, vMin, vMax float32, format Ptr) Bool {
	return boolOf(lib().SliderFloat(str(label), v, vMin, vMax, str(format)))
}

// InputInt edits the native s32 at v with step buttons.
func InputInt(label Ptr, v Ptr, step int32) Bool {
	return boolOf(lib().InputInt(str(label), v, step))
}

// DragFloat2 edits the native vec2 at v.
func DragFloat2(label Ptr, v Ptr, speed, vMin, vMax float32, format Ptr) Bool {
	return boolOf(lib().DragFloat2(str(label), v, speed, vMin, vMax, str(format)))
}

// ColorEdit4 edits the native vec4 color at col.
func ColorEdit4(label Ptr, col Ptr, flags int32) Bool {
	return boolOf(lib().ColorEdit4(str(label), col, flags))
}

// Selectable draws a selectable row. selected may be null.
func Selectable(label Ptr, selected Ptr, flags int32, size Ptr) Bool {
	return boolOf(lib().Selectable(str(label), selected, flags, mem().LoadVec2(size)))
}

// InputText edits the NUL-terminated text in the bufSize bytes at buf.
func InputText(label Ptr, buf Ptr, bufSize uint32) Bool {
	return boolOf(lib().InputText(str(label), buf, bufSize))
}
