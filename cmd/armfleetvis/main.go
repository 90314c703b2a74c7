// Command armfleetvis plans an instance and animates the resulting
// schedules in a Gio window.
package main

import (
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"

	"github.com/elektrokombinacija/armfleet/internal/algo"
	"github.com/elektrokombinacija/armfleet/internal/core"
	"github.com/elektrokombinacija/armfleet/internal/vis"
)

func main() {
	inPath := flag.String("in", "", "instance file (default: built-in demo cell)")
	flag.Parse()

	logger := golog.NewDevelopmentLogger("armfleetvis")

	inst, err := loadInstance(*inPath)
	if err != nil {
		logger.Fatal(err)
	}
	sol, err := algo.Plan(inst, logger)
	if err != nil {
		logger.Fatal(err)
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("armfleet visualiser"),
			app.Size(unit.Dp(1400), unit.Dp(900)),
		)

		application := vis.NewApp(inst, sol)
		if err := application.Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loadInstance(path string) (*core.Instance, error) {
	if path == "" {
		return demoInstance(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return core.ParseInstance(f)
}

// demoInstance is a two-robot cell with work on both sides.
func demoInstance() *core.Instance {
	inst := &core.Instance{
		Robots: []core.Robot{
			{ID: 0, Base: r3.Vector{}},
			{ID: 1, Base: r3.Vector{X: 1.6}},
		},
		ToolClearance: 0.1,
		SafeDistance:  0.2,
		Operations: []core.Operation{
			{Pick: r3.Vector{X: 0.35, Y: 0.35, Z: 0.3}, Place: r3.Vector{X: 0.65, Y: 0.15, Z: 0.3}, ProcessTime: 400},
			{Pick: r3.Vector{X: 1.25, Y: 0.35, Z: 0.3}, Place: r3.Vector{X: 0.95, Y: 0.15, Z: 0.3}, ProcessTime: 400},
			{Pick: r3.Vector{X: 0.45, Y: -0.3, Z: 0.25}, Place: r3.Vector{X: 1.15, Y: -0.3, Z: 0.25}, ProcessTime: 250},
		},
	}
	wide := core.JointLimits{MinAngle: -170, MaxAngle: 170, MaxVelocity: 90, MaxAcceleration: 45}
	tight := core.JointLimits{MinAngle: -120, MaxAngle: 120, MaxVelocity: 90, MaxAcceleration: 45}
	inst.Joints = [core.JointCount]core.JointLimits{wide, tight, tight, tight, wide, wide}
	return inst
}
