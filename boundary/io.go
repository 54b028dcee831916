package boundary

func IOSetDisplaySize(io Handle, size Ptr) {
	lib().IOSetDisplaySize(io, mem().LoadVec2(size))
}

func IODisplaySize(io Handle, out Ptr) {
	mem().StoreVec2(out, lib().IODisplaySize(io))
}

func IOSetDeltaTime(io Handle, seconds float32) {
	lib().IOSetDeltaTime(io, seconds)
}

func IOSetFontGlobalScale(io Handle, scale float32) {
	lib().IOSetFontGlobalScale(io, scale)
}

func IOSetMousePosition(io Handle, pos Ptr) {
	lib().IOSetMousePosition(io, mem().LoadVec2(pos))
}

func IOMouseDelta(io Handle, out Ptr) {
	mem().StoreVec2(out, lib().IOMouseDelta(io))
}

func IOSetMouseButtonDown(io Handle, button int32, down Bool) {
	lib().IOSetMouseButtonDown(io, button, truth(down))
}

func IOAddMouseWheelDelta(io Handle, horizontal, vertical float32) {
	lib().IOAddMouseWheelDelta(io, horizontal, vertical)
}

func IOSetMouseDrawCursor(io Handle, draw Bool) {
	lib().IOSetMouseDrawCursor(io, truth(draw))
}

func IOMouseDrawCursor(io Handle) Bool {
	return boolOf(lib().IOMouseDrawCursor(io))
}

func IOKeyPress(io Handle, key int32) {
	lib().IOKeyPress(io, key)
}

func IOKeyRelease(io Handle, key int32) {
	lib().IOKeyRelease(io, key)
}

func IOKeyMap(io Handle, key, nativeKey int32) {
	lib().IOKeyMap(io, key, nativeKey)
}

func IOSetModifiers(io Handle, ctrl, shift, alt, super Bool) {
	lib().IOSetModifiers(io, truth(ctrl), truth(shift), truth(alt), truth(super))
}

// IOAddInputCharactersUTF8 queues the characters of a native UTF-8 string.
func IOAddInputCharactersUTF8(io Handle, text Ptr) {
	lib().IOAddInputCharactersUTF8(io, str(text))
}

func IOAddInputCharacter(io Handle, r rune) {
	lib().IOAddInputCharacter(io, r)
}

func IOSetIniFilename(io Handle, name Ptr) {
	lib().IOSetIniFilename(io, str(name))
}

func IOSetConfigFlags(io Handle, flags int32) {
	lib().IOSetConfigFlags(io, flags)
}

func IOConfigFlags(io Handle) int32 {
	return lib().IOConfigFlags(io)
}

// IOFonts returns the font atlas of the context owning io.
func IOFonts(io Handle) Handle {
	return lib().IOFonts(io)
}

func IOWantCaptureMouse(io Handle) Bool {
	return boolOf(lib().IOWantCaptureMouse(io))
}

func IOWantCaptureKeyboard(io Handle) Bool {
	return boolOf(lib().IOWantCaptureKeyboard(io))
}

func IOWantTextInput(io Handle) Bool {
	return boolOf(lib().IOWantTextInput(io))
}

func IOFramerate(io Handle) float32 {
	return lib().IOFramerate(io)
}

func IOMetricsRenderVertices(io Handle) int32 {
	return lib().IOMetricsRenderVertices(io)
}

func IOMetricsRenderIndices(io Handle) int32 {
	return lib().IOMetricsRenderIndices(io)
}

func IOMetricsActiveWindows(io Handle) int32 {
	return lib().IOMetricsActiveWindows(io)
}
