package boundary

// ListClipperBegin starts a traversal of itemCount items of height
// itemHeight, or of measured height when itemHeight <= 0, and writes the
// resulting clipper state to state.
func ListClipperBegin(state Ptr, itemCount int32, itemHeight float32) {
	lib().ListClipperBegin(state, itemCount, itemHeight)
}

// ListClipperStep advances the clipper state at state by one step. On true
// the caller submits items DisplayStart to DisplayEnd and steps again.
func ListClipperStep(state Ptr) Bool {
	return boolOf(lib().ListClipperStep(state))
}

// ListClipperEnd seeks the cursor past the last item and marks state ended.
// Ending an ended state does nothing.
func ListClipperEnd(state Ptr) {
	lib().ListClipperEnd(state)
}
