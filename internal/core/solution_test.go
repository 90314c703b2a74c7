package core

import (
	"math"
	"strings"
	"testing"

	"github.com/golang/geo/r3"
)

func TestSchedulePositionAt(t *testing.T) {
	s := Schedule{
		{T: 0, Pos: r3.Vector{X: 0, Y: 0, Z: 0}},
		{T: 1000, Pos: r3.Vector{X: 1, Y: 0, Z: 0}},
		{T: 1000, Pos: r3.Vector{X: 1, Y: 0, Z: 0}}, // contact instant
		{T: 2000, Pos: r3.Vector{X: 1, Y: 2, Z: 0}},
	}

	tests := []struct {
		t    int64
		want r3.Vector
	}{
		{-500, r3.Vector{X: 0, Y: 0, Z: 0}}, // clamped before start
		{0, r3.Vector{X: 0, Y: 0, Z: 0}},
		{500, r3.Vector{X: 0.5, Y: 0, Z: 0}},
		{1000, r3.Vector{X: 1, Y: 0, Z: 0}},
		{1500, r3.Vector{X: 1, Y: 1, Z: 0}},
		{2000, r3.Vector{X: 1, Y: 2, Z: 0}},
		{9999, r3.Vector{X: 1, Y: 2, Z: 0}}, // clamped after end
	}

	for _, tt := range tests {
		got := s.PositionAt(tt.t)
		if got.Sub(tt.want).Norm() > 1e-12 {
			t.Errorf("PositionAt(%d) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestScheduleShift(t *testing.T) {
	s := Schedule{{T: 0}, {T: 100}, {T: 100}, {T: 250}}
	s.Shift(200)
	want := []int64{200, 300, 300, 450}
	for i, wp := range s {
		if wp.T != want[i] {
			t.Errorf("waypoint %d at %d, want %d", i, wp.T, want[i])
		}
	}
}

func TestSolutionMakespanAndRender(t *testing.T) {
	sol := &Solution{
		Assignment: Assignment{{0}, nil},
		Schedules: []Schedule{
			{{T: 0, Pos: r3.Vector{}}, {T: 1234, Pos: r3.Vector{X: 1.25, Y: 0.5, Z: 0.75}}},
			{{T: 0, Pos: r3.Vector{X: 1.5}}},
		},
	}
	if got := sol.ComputeMakespan(); got != 1234 {
		t.Fatalf("makespan = %d, want 1234", got)
	}

	out := sol.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := []string{
		"1234",
		"R1 2",
		"0 0.0 0.0 0.0",
		"1234 1.2 0.5 0.8",
		"R2 1",
		"0 1.5 0.0 0.0",
	}
	if len(lines) != len(want) {
		t.Fatalf("rendered %d lines, want %d:\n%s", len(lines), len(want), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestJointLimitsConversions(t *testing.T) {
	j := JointLimits{MinAngle: -180, MaxAngle: 180, MaxVelocity: 90, MaxAcceleration: 45}
	lo, hi := j.BoundsRad()
	if math.Abs(lo+math.Pi) > 1e-12 || math.Abs(hi-math.Pi) > 1e-12 {
		t.Errorf("BoundsRad = (%v, %v)", lo, hi)
	}
	if math.Abs(j.MaxVelocityRad()-math.Pi/2) > 1e-12 {
		t.Errorf("MaxVelocityRad = %v", j.MaxVelocityRad())
	}
	if !j.ContainsRad(math.Pi) || j.ContainsRad(math.Pi+0.01) {
		t.Error("ContainsRad boundary handling wrong")
	}
}
