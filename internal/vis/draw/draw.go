// Package draw renders workcell primitives with Gio vector ops.
package draw

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// palette cycles robot colours by index.
var palette = []color.NRGBA{
	{R: 100, G: 200, B: 255, A: 255}, // cyan
	{R: 255, G: 150, B: 100, A: 255}, // orange
	{R: 180, G: 120, B: 255, A: 255}, // violet
	{R: 130, G: 220, B: 130, A: 255}, // green
	{R: 240, G: 210, B: 100, A: 255}, // amber
	{R: 255, G: 120, B: 170, A: 255}, // pink
}

// ColorAlarm tints robots breaching the separation envelope.
var ColorAlarm = color.NRGBA{R: 255, G: 70, B: 70, A: 255}

// RobotColor returns the display colour for a robot index.
func RobotColor(idx int) color.NRGBA {
	return palette[idx%len(palette)]
}

// FillCircle paints a filled disc.
func FillCircle(gtx layout.Context, cx, cy, radius float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	appendCircle(&path, cx, cy, radius)
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

// StrokeCircle paints a circle outline.
func StrokeCircle(gtx layout.Context, cx, cy, radius, width float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	appendCircle(&path, cx, cy, radius)
	paint.FillShape(gtx.Ops, col, clip.Stroke{Path: path.End(), Width: width}.Op())
}

func appendCircle(path *clip.Path, cx, cy, radius float32) {
	const segments = 24
	path.MoveTo(f32.Pt(cx+radius, cy))
	for i := 1; i <= segments; i++ {
		angle := float64(i) * 2 * math.Pi / segments
		path.LineTo(f32.Pt(cx+radius*float32(math.Cos(angle)), cy+radius*float32(math.Sin(angle))))
	}
	path.Close()
}

// Line paints a straight segment of the given pixel width.
func Line(gtx layout.Context, x1, y1, x2, y2, width float32, col color.NRGBA) {
	dx, dy := x2-x1, y2-y1
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length < 0.1 {
		return
	}
	dx, dy = dx/length, dy/length
	px, py := -dy*width/2, dx*width/2

	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(x1+px, y1+py))
	path.LineTo(f32.Pt(x2+px, y2+py))
	path.LineTo(f32.Pt(x2-px, y2-py))
	path.LineTo(f32.Pt(x1-px, y1-py))
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

// Diamond paints a filled diamond marker.
func Diamond(gtx layout.Context, cx, cy, size float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(cx, cy-size))
	path.LineTo(f32.Pt(cx+size, cy))
	path.LineTo(f32.Pt(cx, cy+size))
	path.LineTo(f32.Pt(cx-size, cy))
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

// Square paints a filled square marker.
func Square(gtx layout.Context, cx, cy, half float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(cx-half, cy-half))
	path.LineTo(f32.Pt(cx+half, cy-half))
	path.LineTo(f32.Pt(cx+half, cy+half))
	path.LineTo(f32.Pt(cx-half, cy+half))
	path.Close()
	paint.FillShape(gtx.Ops, col, clip.Outline{Path: path.End()}.Op())
}

// Cross paints an upright cross, used for robot bases.
func Cross(gtx layout.Context, cx, cy, arm, width float32, col color.NRGBA) {
	Line(gtx, cx-arm, cy, cx+arm, cy, width, col)
	Line(gtx, cx, cy-arm, cx, cy+arm, width, col)
}
