package algo

import (
	"errors"
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"

	"github.com/elektrokombinacija/armfleet/internal/core"
)

// testPlanner builds a planner shell around pre-made schedules; the
// resolver never touches the IK solver.
func testPlanner(t *testing.T, inst *core.Instance) *Planner {
	t.Helper()
	return &Planner{
		inst:   inst,
		cfg:    DefaultConfig(),
		logger: golog.NewTestLogger(t),
	}
}

func separationInstance(k int) *core.Instance {
	inst := &core.Instance{
		Robots:        make([]core.Robot, k),
		ToolClearance: 0.1,
		SafeDistance:  0.2,
		Operations:    []core.Operation{{}},
	}
	for i := range inst.Robots {
		inst.Robots[i] = core.Robot{ID: core.RobotID(i), Base: r3.Vector{X: float64(i) * 2}}
	}
	for i := range inst.Joints {
		inst.Joints[i] = core.JointLimits{MinAngle: -170, MaxAngle: 170, MaxVelocity: 90, MaxAcceleration: 45}
	}
	return inst
}

func TestFirstViolation_None(t *testing.T) {
	// Two robots a metre apart for the full horizon.
	schedules := []core.Schedule{
		{{T: 0, Pos: r3.Vector{X: 0}}, {T: 1000, Pos: r3.Vector{X: 0, Y: 1}}},
		{{T: 0, Pos: r3.Vector{X: 2}}, {T: 1000, Pos: r3.Vector{X: 2, Y: 1}}},
	}
	if v := firstViolation(schedules, 0.4, 5); v != nil {
		t.Fatalf("unexpected violation: %+v", v)
	}
}

func TestFirstViolation_Detects(t *testing.T) {
	// The robots cross at x=0.5 around t=500.
	schedules := []core.Schedule{
		{{T: 0, Pos: r3.Vector{X: 0}}, {T: 1000, Pos: r3.Vector{X: 1}}},
		{{T: 0, Pos: r3.Vector{X: 1}}, {T: 1000, Pos: r3.Vector{X: 0}}},
	}
	v := firstViolation(schedules, 0.4, 5)
	if v == nil {
		t.Fatal("expected a violation")
	}
	if v.r1 != 0 || v.r2 != 1 {
		t.Errorf("violation pair = (%d, %d), want (0, 1)", v.r1, v.r2)
	}
	if v.dist >= 0.4 {
		t.Errorf("violation distance %.3f not below threshold", v.dist)
	}
}

func TestFirstViolation_DisjointWindows(t *testing.T) {
	// Same corridor but strictly sequential active windows.
	schedules := []core.Schedule{
		{{T: 0, Pos: r3.Vector{X: 0}}, {T: 1000, Pos: r3.Vector{X: 1}}},
		{{T: 2000, Pos: r3.Vector{X: 1}}, {T: 3000, Pos: r3.Vector{X: 0}}},
	}
	if v := firstViolation(schedules, 0.4, 5); v != nil {
		t.Fatalf("disjoint windows should not be sampled, got %+v", v)
	}
}

func TestResolve_NoOpWhenSeparated(t *testing.T) {
	p := testPlanner(t, separationInstance(2))
	schedules := []core.Schedule{
		{{T: 0, Pos: r3.Vector{X: 0}}, {T: 1000, Pos: r3.Vector{X: 0, Y: 0.5}}},
		{{T: 0, Pos: r3.Vector{X: 2}}, {T: 1000, Pos: r3.Vector{X: 2, Y: 0.5}}},
	}
	before := [][]int64{
		{schedules[0][0].T, schedules[0][1].T},
		{schedules[1][0].T, schedules[1][1].T},
	}

	delays, err := p.resolve(schedules)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if delays != 0 {
		t.Fatalf("resolver applied %d delays to a collision-free schedule", delays)
	}
	for r, s := range schedules {
		for i, wp := range s {
			if wp.T != before[r][i] {
				t.Errorf("robot %d waypoint %d moved from %d to %d", r, i, before[r][i], wp.T)
			}
		}
	}
}

func TestResolve_DelaysUntilSeparated(t *testing.T) {
	p := testPlanner(t, separationInstance(2))
	// Head-on crossing: unresolvable while the windows overlap, so the
	// second robot must be pushed clear of the first.
	schedules := []core.Schedule{
		{{T: 0, Pos: r3.Vector{X: 0}}, {T: 1000, Pos: r3.Vector{X: 1}}},
		{{T: 0, Pos: r3.Vector{X: 1}}, {T: 1000, Pos: r3.Vector{X: 0}}},
	}

	delays, err := p.resolve(schedules)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if delays == 0 {
		t.Fatal("expected at least one delay")
	}
	if v := firstViolation(schedules, p.inst.MinSeparation(), p.cfg.CollisionStepMS); v != nil {
		t.Fatalf("still in violation after resolve: %+v", v)
	}

	// Only the higher-indexed robot moves, by whole delay quanta.
	if schedules[0][0].T != 0 {
		t.Errorf("robot 1 shifted to %d", schedules[0][0].T)
	}
	shift := schedules[1][0].T
	if shift != int64(delays)*p.cfg.ResolveDelayMS {
		t.Errorf("robot 2 shifted %d ms, want %d delays x %d ms", shift, delays, p.cfg.ResolveDelayMS)
	}
}

func TestResolve_CapExhausted(t *testing.T) {
	inst := separationInstance(2)
	p := testPlanner(t, inst)
	p.cfg.ResolveAttempts = 3
	// Both robots hold the same point forever; delays cannot help
	// because the overlap window always starts at the parked pose.
	schedules := []core.Schedule{
		{{T: 0, Pos: r3.Vector{X: 0.5}}, {T: 1000, Pos: r3.Vector{X: 0.5}}},
		{{T: 0, Pos: r3.Vector{X: 0.5}}, {T: 1000, Pos: r3.Vector{X: 0.5}}},
	}

	_, err := p.resolve(schedules)
	if !errors.Is(err, core.ErrCollisionUnresolved) {
		t.Fatalf("got %v, want ErrCollisionUnresolved", err)
	}
}
