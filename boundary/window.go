package boundary

// Begin pushes a window. When open is non-null it points to a native bool
// that the close button clears. The result reports whether the window is
// visible; End must be called either way.
func Begin(name Ptr, open Ptr, flags int32) Bool {
	return boolOf(lib().Begin(str(name), open, flags))
}

func End() {
	lib().End()
}

func BeginChild(id Ptr, size Ptr, border Bool, flags int32) Bool {
	return boolOf(lib().BeginChild(str(id), mem().LoadVec2(size), truth(border), flags))
}

func EndChild() {
	lib().EndChild()
}

func SetNextWindowPos(pos Ptr, cond int32, pivot Ptr) {
	lib().SetNextWindowPos(mem().LoadVec2(pos), cond, mem().LoadVec2(pivot))
}

func SetNextWindowSize(size Ptr, cond int32) {
	lib().SetNextWindowSize(mem().LoadVec2(size), cond)
}

// GetWindowDrawList returns the draw list of the current window.
func GetWindowDrawList() Handle {
	return lib().GetWindowDrawList()
}

func GetWindowPos(out Ptr) {
	mem().StoreVec2(out, lib().GetWindowPos())
}

func GetWindowSize(out Ptr) {
	mem().StoreVec2(out, lib().GetWindowSize())
}

func GetContentRegionAvail(out Ptr) {
	mem().StoreVec2(out, lib().GetContentRegionAvail())
}

func GetCursorPos(out Ptr) {
	mem().StoreVec2(out, lib().GetCursorPos())
}

func SetCursorPos(pos Ptr) {
	lib().SetCursorPos(mem().LoadVec2(pos))
}

func GetCursorPosY() float32 {
	return lib().GetCursorPosY()
}

func SetCursorPosY(y float32) {
	lib().SetCursorPosY(y)
}

func GetCursorScreenPos(out Ptr) {
	mem().StoreVec2(out, lib().GetCursorScreenPos())
}

func SetCursorScreenPos(pos Ptr) {
	lib().SetCursorScreenPos(mem().LoadVec2(pos))
}

func GetScrollY() float32 {
	return lib().GetScrollY()
}

func GetScrollMaxY() float32 {
	return lib().GetScrollMaxY()
}

func SetScrollY(y float32) {
	lib().SetScrollY(y)
}

func GetTextLineHeight() float32 {
	return lib().GetTextLineHeight()
}

func GetTextLineHeightWithSpacing() float32 {
	return lib().GetTextLineHeightWithSpacing()
}

func GetFrameHeight() float32 {
	return lib().GetFrameHeight()
}

func SameLine(offsetFromStartX, spacing float32) {
	lib().SameLine(offsetFromStartX, spacing)
}

func PushID(id Ptr) {
	lib().PushID(str(id))
}

func PopID() {
	lib().PopID()
}

func IsItemHovered() Bool {
	return boolOf(lib().IsItemHovered())
}

func IsItemActive() Bool {
	return boolOf(lib().IsItemActive())
}

func IsItemClipped() Bool {
	return boolOf(lib().IsItemClipped())
}
