package boundary

// CreateContext creates a context using atlas for its fonts, or a fresh
// default atlas when atlas is null. The new context becomes current if none
// is.
func CreateContext(atlas Handle) Handle {
	return lib().CreateContext(atlas)
}

// DestroyContext destroys a context and every handle it owns.
func DestroyContext(context Handle) {
	lib().DestroyContext(context)
}

// CurrentContext returns the current context, or null.
func CurrentContext() Handle {
	return lib().CurrentContext()
}

// SetCurrentContext makes context current. Null clears the slot.
func SetCurrentContext(context Handle) {
	lib().SetCurrentContext(context)
}

// GetIO returns the io of the current context.
func GetIO() Handle {
	return lib().GetIO()
}

// GetStyle returns the style of the current context.
func GetStyle() Handle {
	return lib().GetStyle()
}

// FrameCount returns the number of frames started in the current context.
func FrameCount() int32 {
	return lib().FrameCount()
}

// NewFrame starts a frame. Previously exported frame buffers become invalid.
func NewFrame() {
	lib().NewFrame()
}

// EndFrame ends the frame without rendering.
func EndFrame() {
	lib().EndFrame()
}

// Render ends the frame and fills the draw data.
func Render() {
	lib().Render()
}

// RenderedDrawData returns the draw data of the last Render.
func RenderedDrawData() Handle {
	return lib().GetDrawData()
}
