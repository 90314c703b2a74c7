package draw

import (
	"image/color"

	"gioui.org/layout"

	"github.com/golang/geo/r3"

	"github.com/elektrokombinacija/armfleet/internal/core"
	"github.com/elektrokombinacija/armfleet/internal/vis/interact"
)

// DrawBase marks a robot's base with a cross and its radial reach with
// a faint ring.
func DrawBase(gtx layout.Context, base r3.Vector, idx int, reach float64, camera *interact.Camera) {
	x, y := camera.WorldToScreen(base.X, base.Y)
	col := RobotColor(idx)
	col.A = 160
	Cross(gtx, x, y, 8, 2, col)

	ringCol := col
	ringCol.A = 30
	StrokeCircle(gtx, x, y, float32(reach)*camera.Scale, 1, ringCol)
}

// DrawTCP draws a robot's tool centre point: a disc with its tool
// clearance ring. Alarmed robots flip to the alarm colour.
func DrawTCP(gtx layout.Context, pos r3.Vector, idx int, clearance float64, camera *interact.Camera, alarmed bool) {
	x, y := camera.WorldToScreen(pos.X, pos.Y)
	col := RobotColor(idx)
	if alarmed {
		col = ColorAlarm
	}

	FillCircle(gtx, x, y, 6, col)

	ringCol := col
	ringCol.A = 90
	StrokeCircle(gtx, x, y, float32(clearance)*camera.Scale, 1.5, ringCol)
}

// DrawOperation marks an operation: a square at the pick, a diamond at
// the place, and a thin link between them, tinted by the owning robot.
func DrawOperation(gtx layout.Context, op core.Operation, ownerIdx int, camera *interact.Camera) {
	col := RobotColor(ownerIdx)
	col.A = 140

	px, py := camera.WorldToScreen(op.Pick.X, op.Pick.Y)
	qx, qy := camera.WorldToScreen(op.Place.X, op.Place.Y)

	linkCol := col
	linkCol.A = 50
	Line(gtx, px, py, qx, qy, 1, linkCol)
	Square(gtx, px, py, 5, col)
	Diamond(gtx, qx, qy, 6, col)
}

// DrawTrail draws a robot's visited path fading toward its tail.
func DrawTrail(gtx layout.Context, history []r3.Vector, idx int, camera *interact.Camera) {
	if len(history) < 2 {
		return
	}
	base := RobotColor(idx)
	n := len(history)
	for i := 0; i < n-1; i++ {
		col := base
		col.A = uint8(40 + 160*i/n)
		x1, y1 := camera.WorldToScreen(history[i].X, history[i].Y)
		x2, y2 := camera.WorldToScreen(history[i+1].X, history[i+1].Y)
		Line(gtx, x1, y1, x2, y2, 2, col)
	}
}

// DrawFuture dims the waypoints a robot has not reached yet.
func DrawFuture(gtx layout.Context, sched core.Schedule, nowMS int64, idx int, camera *interact.Camera) {
	col := RobotColor(idx)
	col.A = 60

	var prev *core.Waypoint
	for i := range sched {
		wp := &sched[i]
		if wp.T < nowMS {
			continue
		}
		if prev != nil {
			x1, y1 := camera.WorldToScreen(prev.Pos.X, prev.Pos.Y)
			x2, y2 := camera.WorldToScreen(wp.Pos.X, wp.Pos.Y)
			Line(gtx, x1, y1, x2, y2, 1, col)
		}
		prev = wp
	}
}

// DrawGrid draws metre grid lines across the viewport.
func DrawGrid(gtx layout.Context, camera *interact.Camera, col color.NRGBA) {
	w := float32(gtx.Constraints.Max.X)
	h := float32(gtx.Constraints.Max.Y)

	minX, maxY := camera.ScreenToWorld(0, 0)
	maxX, minY := camera.ScreenToWorld(w, h)

	for gx := float64(int(minX) - 1); gx <= maxX+1; gx++ {
		x, _ := camera.WorldToScreen(gx, 0)
		Line(gtx, x, 0, x, h, 1, col)
	}
	for gy := float64(int(minY) - 1); gy <= maxY+1; gy++ {
		_, y := camera.WorldToScreen(0, gy)
		Line(gtx, 0, y, w, y, 1, col)
	}
}
