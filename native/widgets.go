package native

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// calcTextSize measures text with the current font. Empty text is one line high.
func (c *uiContext) calcTextSize(text string) Vec2 {
	f := c.font
	scale := c.fontSize / f.size
	var width, lineWidth float32
	lines := 1
	for _, r := range text {
		if r == '\n' {
			width = max(width, lineWidth)
			lineWidth = 0
			lines++
			continue
		}
		if g := f.findGlyph(r); g != nil {
			lineWidth += g.advanceX * scale
		}
	}
	width = max(width, lineWidth)
	return Vec2{X: width, Y: float32(lines) * c.fontSize}
}

func (c *uiContext) frameHeight() float32 {
	return c.fontSize + c.style.framePadding.Y*2
}

func (c *uiContext) itemWidth(w *window) float32 {
	return max(1, trunc(w.size.X*0.65))
}

// CalcTextSize measures text with the current font, ignoring any "##" suffix
// when hideAfterDoubleHash is set.
func (l *Library) CalcTextSize(text string, hideAfterDoubleHash bool) Vec2 {
	if hideAfterDoubleHash {
		text = displayText(text)
	}
	return l.ctx().calcTextSize(text)
}

// Text submits a line (or lines) of text.
func (l *Library) Text(text string) {
	c := l.ctx()
	w := c.currentWindow("Text")
	if w.skipItems {
		return
	}
	pos := w.cursorPos
	size := c.calcTextSize(text)
	bb := Vec4{X: pos.X, Y: pos.Y, Z: pos.X + size.X, W: pos.Y + size.Y}
	c.itemSize(w, size)
	if !c.itemAdd(w, bb, 0) {
		return
	}
	w.drawList.addText(c.font, c.fontSize, pos, c.colorU32(ColText), text)
}

// Dummy submits an empty item of the given size.
func (l *Library) Dummy(size Vec2) {
	c := l.ctx()
	w := c.currentWindow("Dummy")
	if w.skipItems {
		return
	}
	pos := w.cursorPos
	bb := Vec4{X: pos.X, Y: pos.Y, Z: pos.X + size.X, W: pos.Y + size.Y}
	c.itemSize(w, size)
	c.itemAdd(w, bb, 0)
}

// Separator draws a horizontal line across the window.
func (l *Library) Separator() {
	c := l.ctx()
	w := c.currentWindow("Separator")
	if w.skipItems {
		return
	}
	y := w.cursorPos.Y
	x1 := w.pos.X
	x2 := w.pos.X + w.size.X
	bb := Vec4{X: x1, Y: y, Z: x2, W: y + 1}
	c.itemSize(w, Vec2{Y: 1})
	if c.itemAdd(w, bb, 0) {
		w.drawList.addLine(Vec2{X: x1, Y: y}, Vec2{X: x2, Y: y}, c.colorU32(ColSeparator), 1)
	}
}

func (c *uiContext) renderFrame(w *window, bb Vec4, col int32) {
	w.drawList.addRectFilled(Vec2{X: bb.X, Y: bb.Y}, Vec2{X: bb.Z, Y: bb.W}, c.colorU32(col))
}

func (c *uiContext) renderTextClipped(w *window, bb Vec4, text string, alignX float32) {
	size := c.calcTextSize(text)
	pos := Vec2{
		X: bb.X + max(0, (bb.Z-bb.X-size.X)*alignX),
		Y: bb.Y + max(0, (bb.W-bb.Y-size.Y)*0.5),
	}
	w.drawList.pushClipRect(Vec2{X: bb.X, Y: bb.Y}, Vec2{X: bb.Z, Y: bb.W}, true)
	w.drawList.addText(c.font, c.fontSize, pos, c.colorU32(ColText), text)
	w.drawList.popClipRect()
}

func pickColor(held, hovered bool, base, hover, active int32) int32 {
	switch {
	case held:
		return active
	case hovered:
		return hover
	}
	return base
}

func (c *uiContext) button(w *window, label string, size Vec2) bool {
	id := w.getID(label)
	text := displayText(label)
	textSize := c.calcTextSize(text)
	pad := c.style.framePadding
	if size.X <= 0 {
		size.X = textSize.X + pad.X*2
	}
	if size.Y <= 0 {
		size.Y = textSize.Y + pad.Y*2
	}
	pos := w.cursorPos
	bb := Vec4{X: pos.X, Y: pos.Y, Z: pos.X + size.X, W: pos.Y + size.Y}
	c.itemSize(w, size)
	if !c.itemAdd(w, bb, id) {
		return false
	}
	held, pressed := c.buttonBehavior(id, c.lastItem.hovered)
	c.renderFrame(w, bb, pickColor(held, c.lastItem.hovered, ColButton, ColButtonHovered, ColButtonActive))
	c.renderTextClipped(w, bb, text, 0.5)
	return pressed
}

// Button submits a button and reports whether it was pressed. A zero size
// component fits the label.
func (l *Library) Button(label string, size Vec2) bool {
	c := l.ctx()
	w := c.currentWindow("Button")
	if w.skipItems {
		return false
	}
	return c.button(w, label, size)
}

// Checkbox toggles the native bool at v when clicked.
func (l *Library) Checkbox(label string, v Ptr) bool {
	c := l.ctx()
	w := c.currentWindow("Checkbox")
	if w.skipItems {
		return false
	}
	l.assert(v != 0, "Checkbox", "value pointer must not be null")
	id := w.getID(label)
	text := displayText(label)
	textSize := c.calcTextSize(text)
	square := c.frameHeight()
	pos := w.cursorPos
	total := Vec2{X: square, Y: square}
	if textSize.X > 0 {
		total.X += c.style.itemInnerSpacing.X + textSize.X
	}
	bb := Vec4{X: pos.X, Y: pos.Y, Z: pos.X + total.X, W: pos.Y + total.Y}
	c.itemSize(w, total)
	if !c.itemAdd(w, bb, id) {
		return false
	}
	held, pressed := c.buttonBehavior(id, c.lastItem.hovered)
	checked := l.mem.u8(uint32(v)) != 0
	if pressed {
		checked = !checked
		l.mem.setU8(uint32(v), boolByte(checked))
	}

	box := Vec4{X: pos.X, Y: pos.Y, Z: pos.X + square, W: pos.Y + square}
	c.renderFrame(w, box, pickColor(held, c.lastItem.hovered, ColFrameBg, ColFrameBgHovered, ColFrameBgActive))
	if checked {
		pad := max(1, trunc(square/6))
		w.drawList.addRectFilled(Vec2{X: box.X + pad, Y: box.Y + pad}, Vec2{X: box.Z - pad, Y: box.W - pad}, c.colorU32(ColCheckMark))
	}
	if textSize.X > 0 {
		textPos := Vec2{X: box.Z + c.style.itemInnerSpacing.X, Y: pos.Y + c.style.framePadding.Y}
		w.drawList.addText(c.font, c.fontSize, textPos, c.colorU32(ColText), text)
	}
	return pressed
}

func boolByte(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

func formatValue(format string, v any) string {
	if format == "" {
		switch v.(type) {
		case int32:
			format = "%d"
		default:
			format = "%.3f"
		}
	}
	return fmt.Sprintf(format, v)
}

// SliderFloat edits the native float at v by dragging inside [min, max].
func (l *Library) SliderFloat(label string, v Ptr, vMin, vMax float32, format string) bool {
	c := l.ctx()
	w := c.currentWindow("SliderFloat")
	if w.skipItems {
		return false
	}
	l.assert(v != 0, "SliderFloat", "value pointer must not be null")
	id := w.getID(label)
	text := displayText(label)
	width := c.itemWidth(w)
	pos := w.cursorPos
	frame := Vec4{X: pos.X, Y: pos.Y, Z: pos.X + width, W: pos.Y + c.frameHeight()}
	total := c.withLabel(frame, text)
	c.itemSize(w, Vec2{X: total.Z - total.X, Y: total.W - total.Y})
	if !c.itemAdd(w, frame, id) {
		return false
	}
	held, _ := c.buttonBehavior(id, c.lastItem.hovered)

	value := l.mem.f32(uint32(v))
	changed := false
	grab := c.style.grabMinSize
	span := frame.Z - frame.X - grab
	if held && span > 0 && vMax != vMin {
		t := saturate((c.io.mousePos.X - frame.X - grab*0.5) / span)
		next := vMin + t*(vMax-vMin)
		if next != value {
			value = next
			l.mem.setF32(uint32(v), value)
			changed = true
		}
	}

	c.renderFrame(w, frame, pickColor(held, c.lastItem.hovered, ColFrameBg, ColFrameBgHovered, ColFrameBgActive))
	if vMax != vMin && span > 0 {
		t := saturate((value - vMin) / (vMax - vMin))
		gx := frame.X + t*span
		col := ColSliderGrab
		if held {
			col = ColSliderGrabActive
		}
		w.drawList.addRectFilled(Vec2{X: gx, Y: frame.Y + 2}, Vec2{X: gx + grab, Y: frame.W - 2}, c.colorU32(col))
	}
	c.renderTextClipped(w, frame, formatValue(format, value), 0.5)
	c.renderLabel(w, frame, text)
	return changed
}

// withLabel extends a frame rectangle by the label drawn to its right.
func (c *uiContext) withLabel(frame Vec4, text string) Vec4 {
	if text == "" {
		return frame
	}
	size := c.calcTextSize(text)
	frame.Z += c.style.itemInnerSpacing.X + size.X
	return frame
}

func (c *uiContext) renderLabel(w *window, frame Vec4, text string) {
	if text == "" {
		return
	}
	pos := Vec2{X: frame.Z + c.style.itemInnerSpacing.X, Y: frame.Y + c.style.framePadding.Y}
	w.drawList.addText(c.font, c.fontSize, pos, c.colorU32(ColText), text)
}

// InputInt edits the native int32 at v with step buttons.
func (l *Library) InputInt(label string, v Ptr, step int32) bool {
	c := l.ctx()
	w := c.currentWindow("InputInt")
	if w.skipItems {
		return false
	}
	l.assert(v != 0, "InputInt", "value pointer must not be null")
	text := displayText(label)
	h := c.frameHeight()
	spacing := c.style.itemInnerSpacing.X
	width := max(1, c.itemWidth(w)-2*(h+spacing))
	pos := w.cursorPos

	value := l.mem.s32(uint32(v))
	frame := Vec4{X: pos.X, Y: pos.Y, Z: pos.X + width, W: pos.Y + h}
	buttons := Vec4{X: frame.X, Y: frame.Y, Z: frame.Z + 2*(h+spacing), W: frame.W}
	total := c.withLabel(buttons, text)

	w.pushIDFor(label)
	defer w.popIDFor()

	changed := false
	c.itemSize(w, Vec2{X: total.Z - total.X, Y: h})
	if c.itemAdd(w, frame, w.getID("##value")) {
		c.renderFrame(w, frame, ColFrameBg)
		inner := Vec4{X: frame.X + c.style.framePadding.X, Y: frame.Y, Z: frame.Z, W: frame.W}
		c.renderTextClipped(w, inner, formatValue("%d", value), 0)
	}
	for i, sign := range [2]int32{-1, 1} {
		glyph := [2]string{"-", "+"}[i]
		bx := frame.Z + spacing + float32(i)*(h+spacing)
		bb := Vec4{X: bx, Y: pos.Y, Z: bx + h, W: pos.Y + h}
		id := w.getID(glyph)
		if !c.itemAdd(w, bb, id) {
			continue
		}
		held, pressed := c.buttonBehavior(id, c.lastItem.hovered)
		c.renderFrame(w, bb, pickColor(held, c.lastItem.hovered, ColButton, ColButtonHovered, ColButtonActive))
		c.renderTextClipped(w, bb, glyph, 0.5)
		if pressed && step != 0 {
			value += sign * step
			changed = true
		}
	}
	if changed {
		l.mem.setS32(uint32(v), value)
	}
	c.lastItem.rect = total
	c.renderLabel(w, buttons, text)
	return changed
}

func (w *window) pushIDFor(label string) {
	w.idStack = append(w.idStack, w.getID(label))
}

func (w *window) popIDFor() {
	w.idStack = w.idStack[:len(w.idStack)-1]
}

// dragScalarN edits n consecutive native floats at v by horizontal mouse drag.
// trailing reserves space between the fields and the label; its rectangle is
// returned.
func (c *uiContext) dragScalarN(w *window, label string, v Ptr, n int, speed, vMin, vMax float32, format string, trailing float32) (bool, Vec4) {
	l := c.lib
	text := displayText(label)
	spacing := c.style.itemInnerSpacing.X
	full := c.itemWidth(w)
	if trailing > 0 {
		full = max(1, full-trailing-spacing)
	}
	each := max(1, trunc((full-spacing*float32(n-1))/float32(n)))
	h := c.frameHeight()
	pos := w.cursorPos
	total := Vec4{X: pos.X, Y: pos.Y, Z: pos.X + each*float32(n) + spacing*float32(n-1), W: pos.Y + h}
	reserved := Vec4{X: total.Z, Y: total.Y, Z: total.Z, W: total.W}
	if trailing > 0 {
		reserved.X += spacing
		reserved.Z = reserved.X + trailing
		total.Z = reserved.Z
	}
	withText := c.withLabel(total, text)
	c.itemSize(w, Vec2{X: withText.Z - withText.X, Y: h})

	w.pushIDFor(label)
	defer w.popIDFor()

	changed := false
	for i := 0; i < n; i++ {
		x := pos.X + float32(i)*(each+spacing)
		bb := Vec4{X: x, Y: pos.Y, Z: x + each, W: pos.Y + h}
		id := w.getID(fmt.Sprintf("#%d", i))
		if !c.itemAdd(w, bb, id) {
			continue
		}
		held, _ := c.buttonBehavior(id, c.lastItem.hovered)
		at := uint32(v) + uint32(i)*4
		value := l.mem.f32(at)
		if held && c.io.mouseDelta.X != 0 {
			next := value + c.io.mouseDelta.X*speed
			if vMin < vMax {
				next = min(max(next, vMin), vMax)
			}
			if next != value {
				value = next
				l.mem.setF32(at, value)
				changed = true
			}
		}
		c.renderFrame(w, bb, pickColor(held, c.lastItem.hovered, ColFrameBg, ColFrameBgHovered, ColFrameBgActive))
		c.renderTextClipped(w, bb, formatValue(format, value), 0.5)
	}
	c.renderLabel(w, total, text)
	c.lastItem.rect = withText
	return changed, reserved
}

// DragFloat2 edits the native two-component vector at v.
func (l *Library) DragFloat2(label string, v Ptr, speed, vMin, vMax float32, format string) bool {
	c := l.ctx()
	w := c.currentWindow("DragFloat2")
	if w.skipItems {
		return false
	}
	l.assert(v != 0, "DragFloat2", "value pointer must not be null")
	changed, _ := c.dragScalarN(w, label, v, 2, speed, vMin, vMax, format, 0)
	return changed
}

// ColorEdit4 edits the native RGBA color at col, components in [0, 1].
func (l *Library) ColorEdit4(label string, col Ptr, flags int32) bool {
	c := l.ctx()
	w := c.currentWindow("ColorEdit4")
	if w.skipItems {
		return false
	}
	l.assert(col != 0, "ColorEdit4", "color pointer must not be null")
	changed, swatch := c.dragScalarN(w, label, col, 4, 1.0/255.0, 0, 1, "%.2f", c.frameHeight())
	if !c.lastItem.clipped {
		color := ColorConvertFloat4ToU32(l.mem.vec4(uint32(col)))
		w.drawList.addRectFilled(Vec2{X: swatch.X, Y: swatch.Y}, Vec2{X: swatch.Z, Y: swatch.W}, color|0xFF000000)
	}
	return changed
}

// Selectable submits a full-width selectable line. selected may be 0; when it
// points at a native bool, a press toggles it.
func (l *Library) Selectable(label string, selected Ptr, flags int32, size Vec2) bool {
	c := l.ctx()
	w := c.currentWindow("Selectable")
	if w.skipItems {
		return false
	}
	id := w.getID(label)
	text := displayText(label)
	textSize := c.calcTextSize(text)
	pos := w.cursorPos
	if size.X <= 0 {
		size.X = max(textSize.X, c.contentRegionAvail(w).X)
	}
	if size.Y <= 0 {
		size.Y = textSize.Y
	}
	bb := Vec4{X: pos.X, Y: pos.Y, Z: pos.X + size.X, W: pos.Y + size.Y}
	c.itemSize(w, size)
	if !c.itemAdd(w, bb, id) {
		return false
	}
	held, pressed := c.buttonBehavior(id, c.lastItem.hovered)
	isSelected := selected != 0 && l.mem.u8(uint32(selected)) != 0
	if pressed && selected != 0 {
		isSelected = !isSelected
		l.mem.setU8(uint32(selected), boolByte(isSelected))
	}
	if isSelected || c.lastItem.hovered || held {
		c.renderFrame(w, bb, pickColor(held, c.lastItem.hovered, ColHeader, ColHeaderHovered, ColHeaderActive))
	}
	w.drawList.addText(c.font, c.fontSize, pos, c.colorU32(ColText), text)
	return pressed
}

// InputText edits the NUL-terminated native buffer at buf of bufSize bytes
// while the field is active. Typed characters are appended and backspace
// removes the last one. It reports whether the text changed.
func (l *Library) InputText(label string, buf Ptr, bufSize uint32) bool {
	c := l.ctx()
	w := c.currentWindow("InputText")
	if w.skipItems {
		return false
	}
	l.assert(buf != 0 && bufSize > 0, "InputText", "buffer must not be empty")
	id := w.getID(label)
	text := displayText(label)
	pos := w.cursorPos
	frame := Vec4{X: pos.X, Y: pos.Y, Z: pos.X + c.itemWidth(w), W: pos.Y + c.frameHeight()}
	total := c.withLabel(frame, text)
	c.itemSize(w, Vec2{X: total.Z - total.X, Y: frame.W - frame.Y})
	if !c.itemAdd(w, frame, id) {
		return false
	}
	c.buttonBehavior(id, c.lastItem.hovered)
	if c.lastItem.hovered && c.io.mouseClicked[0] {
		c.textInputID = id
	} else if c.io.mouseClicked[0] {
		if c.textInputID == id {
			c.textInputID = 0
		}
	}

	value := l.mem.cstring(uint32(buf))
	changed := false
	if c.textInputID == id {
		c.textInputFrame = c.frameCount
		edited := value
		for _, r := range c.io.inputChars {
			if r >= 0x20 && r != 0x7F {
				edited += string(r)
			}
		}
		if c.io.keyPressed(KeyBackspace) && edited != "" {
			_, size := utf8.DecodeLastRuneInString(edited)
			edited = edited[:len(edited)-size]
		}
		for uint32(len(edited)) > bufSize-1 {
			_, size := utf8.DecodeLastRuneInString(edited)
			edited = edited[:len(edited)-size]
		}
		if edited != value {
			b := l.mem.view(uint32(buf), uint32(len(edited))+1)
			copy(b, edited)
			b[len(edited)] = 0
			value = edited
			changed = true
		}
	}

	col := ColFrameBg
	if c.textInputID == id {
		col = ColFrameBgActive
	} else if c.lastItem.hovered {
		col = ColFrameBgHovered
	}
	c.renderFrame(w, frame, col)
	inner := Vec4{X: frame.X + c.style.framePadding.X, Y: frame.Y, Z: frame.Z - c.style.framePadding.X, W: frame.W}
	c.renderTextClipped(w, inner, strings.ReplaceAll(value, "\n", " "), 0)
	c.renderLabel(w, frame, text)
	return changed
}
