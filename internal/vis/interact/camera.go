// Package interact handles pan and zoom of the workcell view.
package interact

import (
	"gioui.org/io/pointer"
	"gioui.org/layout"
)

// Camera maps world metres (x right, y up) to screen pixels (y down).
type Camera struct {
	OffsetX float32 // screen position of the world origin
	OffsetY float32
	Scale   float32 // pixels per metre

	dragging bool
	lastX    float32
	lastY    float32
}

// NewCamera starts at a scale suited to a few-metre workcell.
func NewCamera() *Camera {
	return &Camera{OffsetX: 200, OffsetY: 500, Scale: 250}
}

// WorldToScreen converts world coordinates (metres) to screen pixels.
// The world Y axis points up, the screen Y axis down.
func (c *Camera) WorldToScreen(wx, wy float64) (float32, float32) {
	return float32(wx)*c.Scale + c.OffsetX, c.OffsetY - float32(wy)*c.Scale
}

// ScreenToWorld inverts WorldToScreen.
func (c *Camera) ScreenToWorld(sx, sy float32) (float64, float64) {
	return float64((sx - c.OffsetX) / c.Scale), float64((c.OffsetY - sy) / c.Scale)
}

// HandleEvent pans on primary drag and zooms on scroll, keeping the
// world point under the pointer fixed.
func (c *Camera) HandleEvent(gtx layout.Context, ev pointer.Event) {
	switch ev.Kind {
	case pointer.Press:
		if ev.Buttons.Contain(pointer.ButtonPrimary) || ev.Buttons.Contain(pointer.ButtonSecondary) {
			c.dragging = true
		}
		c.lastX, c.lastY = ev.Position.X, ev.Position.Y

	case pointer.Drag:
		if c.dragging {
			c.OffsetX += ev.Position.X - c.lastX
			c.OffsetY += ev.Position.Y - c.lastY
		}
		c.lastX, c.lastY = ev.Position.X, ev.Position.Y

	case pointer.Release, pointer.Cancel:
		c.dragging = false

	case pointer.Scroll:
		if ev.Scroll.Y == 0 {
			return
		}
		wx, wy := c.ScreenToWorld(ev.Position.X, ev.Position.Y)
		if ev.Scroll.Y > 0 {
			c.Scale /= 1.1
		} else {
			c.Scale *= 1.1
		}
		c.clampScale()
		sx, sy := c.WorldToScreen(wx, wy)
		c.OffsetX += ev.Position.X - sx
		c.OffsetY += ev.Position.Y - sy
	}
}

func (c *Camera) clampScale() {
	if c.Scale < 20 {
		c.Scale = 20
	}
	if c.Scale > 2000 {
		c.Scale = 2000
	}
}

// FitBounds frames the given world rectangle with a pixel margin.
func (c *Camera) FitBounds(minX, minY, maxX, maxY float64, screenW, screenH, margin float32) {
	worldW := maxX - minX
	worldH := maxY - minY
	if worldW <= 0 {
		worldW = 1
	}
	if worldH <= 0 {
		worldH = 1
	}

	scaleX := (screenW - 2*margin) / float32(worldW)
	scaleY := (screenH - 2*margin) / float32(worldH)
	c.Scale = scaleX
	if scaleY < scaleX {
		c.Scale = scaleY
	}
	c.clampScale()

	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	c.OffsetX = screenW/2 - float32(cx)*c.Scale
	c.OffsetY = screenH/2 + float32(cy)*c.Scale
}
