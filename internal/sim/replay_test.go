package sim

import (
	"testing"

	"github.com/golang/geo/r3"

	"github.com/elektrokombinacija/armfleet/internal/core"
)

func auditInstance() *core.Instance {
	inst := &core.Instance{
		Robots: []core.Robot{
			{ID: 0, Base: r3.Vector{}},
			{ID: 1, Base: r3.Vector{X: 2}},
		},
		ToolClearance: 0.1,
		SafeDistance:  0.2,
		Operations: []core.Operation{
			{Pick: r3.Vector{X: 0.5}, Place: r3.Vector{X: 1, Y: 0.5}, ProcessTime: 300},
		},
	}
	for i := range inst.Joints {
		inst.Joints[i] = core.JointLimits{MinAngle: -170, MaxAngle: 170, MaxVelocity: 90, MaxAcceleration: 45}
	}
	return inst
}

func TestReplay_DwellAndMakespan(t *testing.T) {
	inst := auditInstance()
	sol := &core.Solution{
		Assignment: core.Assignment{{0}, nil},
		Schedules: []core.Schedule{
			{
				{T: 0, Pos: r3.Vector{}},
				{T: 400, Pos: r3.Vector{X: 0.5}},
				{T: 700, Pos: r3.Vector{X: 0.5}}, // grasp dwell 300
				{T: 1100, Pos: r3.Vector{X: 1, Y: 0.5}},
				{T: 1400, Pos: r3.Vector{X: 1, Y: 0.5}}, // release dwell 300
			},
			{{T: 0, Pos: r3.Vector{X: 2}}},
		},
	}

	m := Replay(inst, sol, DefaultConfig())
	if m.MakespanMS != 1400 {
		t.Errorf("makespan = %d, want 1400", m.MakespanMS)
	}
	if got := m.PickDwellMS[0]; got != 300 {
		t.Errorf("pick dwell = %d, want 300", got)
	}
	if got := m.PlaceDwellMS[0]; got != 300 {
		t.Errorf("place dwell = %d, want 300", got)
	}
	if m.SeparationViolations != 0 {
		t.Errorf("unexpected separation violations: %d", m.SeparationViolations)
	}
}

func TestReplay_FlagsSeparationBreach(t *testing.T) {
	inst := auditInstance()
	// Robot 2 drives straight through robot 1's workspace.
	sol := &core.Solution{
		Assignment: core.Assignment{{0}, nil},
		Schedules: []core.Schedule{
			{{T: 0, Pos: r3.Vector{X: 0.5}}, {T: 1000, Pos: r3.Vector{X: 0.5}}},
			{{T: 0, Pos: r3.Vector{X: 2}}, {T: 1000, Pos: r3.Vector{X: 0.5}}},
		},
	}

	m := Replay(inst, sol, DefaultConfig())
	if m.SeparationViolations == 0 {
		t.Fatal("expected separation violations")
	}
	if m.MinSeparation.Distance > 1e-9 {
		t.Errorf("closest approach = %v, want ~0", m.MinSeparation.Distance)
	}
	if m.MinSeparation.R1 != 0 || m.MinSeparation.R2 != 1 {
		t.Errorf("closest pair = (%d, %d)", m.MinSeparation.R1, m.MinSeparation.R2)
	}
}
