// Package widgets provides the Gio widgets of the schedule visualiser.
package widgets

import (
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/armfleet/internal/core"
	"github.com/elektrokombinacija/armfleet/internal/kinematics"
	"github.com/elektrokombinacija/armfleet/internal/vis/draw"
	"github.com/elektrokombinacija/armfleet/internal/vis/interact"
	"github.com/elektrokombinacija/armfleet/internal/vis/state"
)

// Workspace is the top-down workcell view: bases, operations, trails,
// future paths, and the animated TCPs.
type Workspace struct {
	state  *state.State
	camera *interact.Camera
	fitted bool
}

// NewWorkspace creates the workcell view.
func NewWorkspace(st *state.State, camera *interact.Camera) *Workspace {
	return &Workspace{state: st, camera: camera}
}

// Layout renders the workspace.
func (w *Workspace) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	paint.Fill(gtx.Ops, color.NRGBA{R: 25, G: 28, B: 32, A: 255})

	if !w.fitted {
		w.fitToInstance(float32(bounds.X), float32(bounds.Y))
		w.fitted = true
	}

	w.handlePointerEvents(gtx)

	draw.DrawGrid(gtx, w.camera, color.NRGBA{R: 40, G: 45, B: 50, A: 255})

	inst := w.state.Instance
	for i, robot := range inst.Robots {
		draw.DrawBase(gtx, robot.Base, i, kinematics.MaxReach, w.camera)
	}

	if sol := w.state.Solution; sol != nil {
		for r, ops := range sol.Assignment {
			for _, opIdx := range ops {
				draw.DrawOperation(gtx, inst.Operations[opIdx], r, w.camera)
			}
		}

		now := w.state.NowMS()
		for i, robot := range inst.Robots {
			draw.DrawFuture(gtx, sol.Schedules[robot.ID], now, i, w.camera)
		}
		for i, robot := range inst.Robots {
			draw.DrawTrail(gtx, w.state.PathHistory(robot.ID), i, w.camera)
		}

		alarmed := make(map[core.RobotID]bool)
		for _, pair := range w.state.SeparationAlarms() {
			alarmed[pair[0]] = true
			alarmed[pair[1]] = true
		}
		positions := w.state.CurrentPositions()
		for i, robot := range inst.Robots {
			draw.DrawTCP(gtx, positions[robot.ID], i, inst.ToolClearance, w.camera, alarmed[robot.ID])
		}
	}

	return layout.Dimensions{Size: bounds}
}

// fitToInstance frames every base, pick, and place point.
func (w *Workspace) fitToInstance(screenW, screenH float32) {
	inst := w.state.Instance
	if inst == nil || len(inst.Robots) == 0 {
		return
	}

	minX, minY := inst.Robots[0].Base.X, inst.Robots[0].Base.Y
	maxX, maxY := minX, minY
	grow := func(x, y float64) {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	for _, r := range inst.Robots {
		grow(r.Base.X, r.Base.Y)
	}
	for _, op := range inst.Operations {
		grow(op.Pick.X, op.Pick.Y)
		grow(op.Place.X, op.Place.Y)
	}
	w.camera.FitBounds(minX, minY, maxX, maxY, screenW, screenH, 80)
}

func (w *Workspace) handlePointerEvents(gtx layout.Context) {
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, w)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: w,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Scroll,
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			w.camera.HandleEvent(gtx, pe)
		}
	}
}
