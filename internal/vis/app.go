// Package vis implements a Gio-based playback visualiser for planned
// fleet schedules.
package vis

import (
	"fmt"
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/armfleet/internal/core"
	"github.com/elektrokombinacija/armfleet/internal/vis/interact"
	"github.com/elektrokombinacija/armfleet/internal/vis/state"
	"github.com/elektrokombinacija/armfleet/internal/vis/widgets"
)

// App animates a solved instance.
type App struct {
	state     *state.State
	theme     *material.Theme
	workspace *widgets.Workspace
	timeline  *widgets.Timeline
	camera    *interact.Camera
}

// NewApp builds the application over a finished plan.
func NewApp(inst *core.Instance, sol *core.Solution) *App {
	st := state.NewState(inst, sol)
	camera := interact.NewCamera()
	return &App{
		state:     st,
		theme:     material.NewTheme(),
		workspace: widgets.NewWorkspace(st, camera),
		timeline:  widgets.NewTimeline(st),
		camera:    camera,
	}
}

// Run drives the window event loop until the window closes.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag, Optional: key.ModShift})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKey(ke)
				}
			}
			event.Op(gtx.Ops, tag)

			a.layout(gtx)
			e.Frame(gtx.Ops)

			if a.state.Playback.Playing {
				a.state.Playback.Advance()
				w.Invalidate()
			}
		}
	}
}

func (a *App) handleKey(e key.Event) {
	pb := a.state.Playback
	switch e.Name {
	case key.NameSpace:
		pb.TogglePlay()
	case key.NameLeftArrow:
		pb.Step(false)
	case key.NameRightArrow:
		pb.Step(true)
	case key.NameHome:
		pb.Reset()
	case key.NameUpArrow:
		pb.SetSpeed(pb.Speed * 2)
	case key.NameDownArrow:
		pb.SetSpeed(pb.Speed / 2)
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.layoutHeader),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.workspace.Layout(gtx, a.theme)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.timeline.Layout(gtx, a.theme)
		}),
	)
}

func (a *App) layoutHeader(gtx layout.Context) layout.Dimensions {
	inst := a.state.Instance
	text := fmt.Sprintf("%d robots, %d operations", len(inst.Robots), len(inst.Operations))
	if sol := a.state.Solution; sol != nil {
		text += fmt.Sprintf("  |  makespan %d ms", sol.Makespan)
	}
	if alarms := a.state.SeparationAlarms(); len(alarms) > 0 {
		text += fmt.Sprintf("  |  SEPARATION ALARM x%d", len(alarms))
	}

	label := material.Label(a.theme, 14, text)
	label.Color = color.NRGBA{R: 210, G: 210, B: 215, A: 255}
	return layout.Inset{
		Top: unit.Dp(6), Bottom: unit.Dp(6), Left: unit.Dp(12), Right: unit.Dp(12),
	}.Layout(gtx, label.Layout)
}
