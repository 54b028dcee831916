package native

import (
	"math"

	"go.uber.org/zap"
)

// NewFrame starts a frame in the current context. The font atlas must be
// built and IO must carry a valid display size and a positive delta time.
func (l *Library) NewFrame() {
	c := l.ctx()
	io := c.io
	l.assertFrame(c.frameCount == 0 || c.frameCountEnded == c.frameCount, "NewFrame",
		"forgot to call Render() or EndFrame() at the end of the previous frame")
	l.assert(io.displaySize.X >= 0 && io.displaySize.Y >= 0, "NewFrame", "invalid DisplaySize value")
	l.assert(io.deltaTime > 0, "NewFrame", "need a positive DeltaTime")
	l.assert(c.atlas.built && len(c.atlas.fonts) > 0, "NewFrame",
		"font atlas not built: call Build or one of the TexData functions first")

	c.frameCount++
	c.withinFrame = true
	c.drawData.clear()
	c.fontStack = c.fontStack[:0]
	c.setFont(c.atlas.fonts[0])
	io.beginFrame()
	c.updateFramerate()

	if c.dragDrop.active && !io.mouseDown[0] && !io.mouseReleased[0] {
		c.clearDragDrop()
	}
	if hw := c.hoveredWindow; hw != nil && io.mouseWheel != 0 {
		hw.scroll.Y -= io.mouseWheel * c.fontSize * 5
	}

	for _, w := range c.windows {
		w.active = false
		w.drawList.reset()
	}
	c.windowStack = c.windowStack[:0]
	c.current = nil
	c.lastItem = lastItem{}

	c.nextWindow = nextWindowData{hasSize: true, sizeCond: CondFirstUseEver, size: Vec2{X: 400, Y: 400}}
	c.begin(fallbackWindowName, 0, 0)
	c.current.fallback = true
}

func (c *uiContext) setFont(f *font) {
	c.font = f
	c.fontSize = f.size * c.io.fontGlobalScale
}

func (c *uiContext) updateFramerate() {
	dt := c.io.deltaTime
	c.framerateAcc += dt - c.framerateSamples[c.framerateIdx]
	c.framerateSamples[c.framerateIdx] = dt
	c.framerateIdx = (c.framerateIdx + 1) % len(c.framerateSamples)
	if c.framerateAcc > 0 {
		c.io.framerate = 1 / (c.framerateAcc / float32(len(c.framerateSamples)))
	} else {
		c.io.framerate = math.MaxFloat32
	}
}

// EndFrame closes the frame without rendering. Render calls it when needed;
// calling it twice is harmless.
func (l *Library) EndFrame() {
	c := l.ctx()
	if c.frameCountEnded == c.frameCount {
		return
	}
	l.assertFrame(c.withinFrame, "EndFrame", "forgot to call NewFrame()")
	l.assertFrame(len(c.windowStack) == 1, "EndFrame",
		"mismatched Begin()/BeginChild() vs End()/EndChild() calls: did you forget to call End()?")
	l.assertFrame(len(c.styleVarStack) == 0, "EndFrame", "mismatched PushStyleVar()/PopStyleVar() calls")
	l.assertFrame(len(c.colorStack) == 0, "EndFrame", "mismatched PushStyleColor()/PopStyleColor() calls")
	l.assertFrame(len(c.fontStack) == 0, "EndFrame", "mismatched PushFont()/PopFont() calls")

	if c.dragDrop.active && c.dragDrop.sourceFrame < c.frameCount && !c.io.mouseReleased[0] {
		c.clearDragDrop()
	}
	c.end()

	io := c.io
	c.hoveredWindow = nil
	for _, w := range c.windows {
		if w.active && w.parent == nil && !(w.fallback && !w.written) && contains(w.rect(), io.mousePos) {
			c.hoveredWindow = w
		}
	}
	io.wantCaptureMouse = c.hoveredWindow != nil || c.activeID != 0
	io.wantCaptureKeyboard = c.focusedEditor != nil && c.focusedEditor.focusFrame == c.frameCount
	io.wantTextInput = io.wantCaptureKeyboard || (c.textInputID != 0 && c.textInputFrame == c.frameCount)
	io.wantCaptureKeyboard = io.wantCaptureKeyboard || io.wantTextInput
	if !io.mouseDown[0] {
		c.activeID = 0
	}
	io.endFrame()

	c.frameCountEnded = c.frameCount
	c.withinFrame = false
}

// Render ends the frame if needed and fills the draw data.
func (l *Library) Render() {
	c := l.ctx()
	if c.frameCountEnded != c.frameCount {
		l.EndFrame()
	}

	dd := c.drawData
	dd.clear()
	var windows int32
	for _, w := range c.windows {
		if !w.active || (w.fallback && !w.written) {
			continue
		}
		windows++
		w.drawList.popUnusedCommand()
		if w.drawList.cmd.size == 0 {
			continue
		}
		dd.add(w.drawList)
	}
	dd.displayPos = Vec2{}
	dd.displaySize = c.io.displaySize
	dd.valid = true

	c.io.metricsRenderVertices = dd.totalVtxCount
	c.io.metricsRenderIndices = dd.totalIdxCount
	c.io.metricsActiveWindows = windows

	l.log.Debug("frame rendered",
		zap.Int32("frame", c.frameCount),
		zap.Int32("windows", windows),
		zap.Int32("vertices", dd.totalVtxCount),
		zap.Int32("indices", dd.totalIdxCount))
}

// PushFont makes f the font for subsequent items.
func (l *Library) PushFont(f Handle) {
	c := l.ctx()
	c.fontStack = append(c.fontStack, c.font)
	c.setFont(deref[font](l, f))
}

// PopFont restores the previous font.
func (l *Library) PopFont() {
	c := l.ctx()
	l.assert(len(c.fontStack) > 0, "PopFont", "calling PopFont() too many times")
	c.setFont(c.fontStack[len(c.fontStack)-1])
	c.fontStack = c.fontStack[:len(c.fontStack)-1]
}
