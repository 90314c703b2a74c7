package widgets

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/armfleet/internal/vis/state"
)

// Timeline is a scrubber over the plan horizon.
type Timeline struct {
	state    *state.State
	dragging bool
}

// NewTimeline creates the scrubber.
func NewTimeline(st *state.State) *Timeline {
	return &Timeline{state: st}
}

const (
	timelineHeight = 60
	timelineMargin = 20
)

// Layout renders the track, progress fill, playhead, and time labels.
func (t *Timeline) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	rect := image.Rect(0, 0, gtx.Constraints.Max.X, timelineHeight)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 35, G: 38, B: 42, A: 255}, clip.Rect(rect).Op())

	trackWidth := gtx.Constraints.Max.X - 2*timelineMargin
	t.handlePointerEvents(gtx, trackWidth)

	trackY := timelineHeight / 2
	trackRect := image.Rect(timelineMargin, trackY-3, timelineMargin+trackWidth, trackY+3)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 60, G: 65, B: 70, A: 255}, clip.Rect(trackRect).Op())

	fill := int(float64(trackWidth) * t.state.Playback.Progress())
	if fill > 0 {
		fillRect := image.Rect(timelineMargin, trackY-3, timelineMargin+fill, trackY+3)
		paint.FillShape(gtx.Ops, color.NRGBA{R: 100, G: 180, B: 255, A: 255}, clip.Rect(fillRect).Op())
	}

	headX := timelineMargin + fill
	headRect := image.Rect(headX-6, trackY-6, headX+6, trackY+6)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, clip.Rect(headRect).Op())

	t.drawLabels(gtx, th)

	return layout.Dimensions{Size: image.Point{X: gtx.Constraints.Max.X, Y: timelineHeight}}
}

func (t *Timeline) drawLabels(gtx layout.Context, th *material.Theme) {
	pb := t.state.Playback

	current := material.Label(th, 12, fmt.Sprintf("%.2fs", pb.CurrentMS/1000))
	current.Color = color.NRGBA{R: 200, G: 200, B: 200, A: 255}

	speed := material.Label(th, 12, fmt.Sprintf("%.1fx", pb.Speed))
	speed.Color = color.NRGBA{R: 150, G: 180, B: 200, A: 255}

	total := material.Label(th, 12, fmt.Sprintf("%d ms", int64(pb.MakespanMS)))
	total.Color = color.NRGBA{R: 150, G: 150, B: 150, A: 255}

	layout.Inset{Top: unit.Dp(4), Left: unit.Dp(20), Right: unit.Dp(20)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceBetween}.Layout(gtx,
			layout.Rigid(current.Layout),
			layout.Rigid(speed.Layout),
			layout.Rigid(total.Layout),
		)
	})
}

func (t *Timeline) handlePointerEvents(gtx layout.Context, trackWidth int) {
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, timelineHeight)).Push(gtx.Ops)
	event.Op(gtx.Ops, t)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: t,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch pe.Kind {
		case pointer.Press:
			t.dragging = true
			t.seek(pe.Position.X, trackWidth)
		case pointer.Drag:
			if t.dragging {
				t.seek(pe.Position.X, trackWidth)
			}
		case pointer.Release:
			t.dragging = false
		}
	}
}

func (t *Timeline) seek(screenX float32, trackWidth int) {
	progress := (float64(screenX) - timelineMargin) / float64(trackWidth)
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	t.state.Playback.Pause()
	t.state.Playback.SetTime(progress * t.state.Playback.MakespanMS)
}
