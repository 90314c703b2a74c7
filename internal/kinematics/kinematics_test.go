package kinematics

import (
	"math"
	"testing"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"

	"github.com/elektrokombinacija/armfleet/internal/core"
)

func testLimits() [core.JointCount]core.JointLimits {
	var limits [core.JointCount]core.JointLimits
	for i := range limits {
		limits[i] = core.JointLimits{MinAngle: -170, MaxAngle: 170, MaxVelocity: 90, MaxAcceleration: 45}
	}
	return limits
}

func TestForwardIsPure(t *testing.T) {
	theta := core.JointVector{0.1, -0.5, 0.3, 0.2, 1.1, -0.4}
	a := Forward(theta)
	b := Forward(theta)
	if a != b {
		t.Fatalf("Forward not deterministic: %v vs %v", a, b)
	}
}

func TestForwardWithinReach(t *testing.T) {
	// The TCP can never be farther from the base than the sum of the
	// link extents, which is well inside the radial reach gate.
	thetas := []core.JointVector{
		{},
		HomeTheta,
		{0.5, -1.0, 0.5, 0.3, 0.7, -0.2},
		{-1.2, -0.3, 1.1, -0.8, 0.4, 1.5},
	}
	for _, theta := range thetas {
		p := Forward(theta)
		if n := p.Norm(); n > MaxReach {
			t.Errorf("Forward(%v) norm %.3f exceeds reach gate %.2f", theta, n, MaxReach)
		}
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z) {
			t.Errorf("Forward(%v) produced NaN: %v", theta, p)
		}
	}
}

func TestForwardWorldOffset(t *testing.T) {
	base := r3.Vector{X: 1.5, Y: -2, Z: 0.25}
	local := Forward(HomeTheta)
	world := ForwardWorld(HomeTheta, base)
	if world.Sub(local.Add(base)).Norm() > 1e-12 {
		t.Fatalf("ForwardWorld = %v, want local %v + base %v", world, local, base)
	}
}

func TestSigmaMinNonNegative(t *testing.T) {
	for _, theta := range []core.JointVector{{}, HomeTheta} {
		if s := sigmaMin(theta); s < 0 {
			t.Errorf("sigmaMin(%v) = %v, want >= 0", theta, s)
		}
	}
}

func TestReachableRadialGate(t *testing.T) {
	s, err := NewSolver(testLimits(), golog.NewTestLogger(t))
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	defer s.Close()

	base := r3.Vector{}
	far := r3.Vector{X: 3, Y: 0, Z: 0}
	if s.Reachable(far, base) {
		t.Error("point 3 m away should fail the radial gate")
	}
}

// Round trip: a pose drawn inside the joint limits is reachable and IK
// seeded at that pose recovers its TCP within position tolerance.
func TestIKRoundTrip(t *testing.T) {
	s, err := NewSolver(testLimits(), golog.NewTestLogger(t))
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	defer s.Close()

	base := r3.Vector{X: 0.5, Y: 0.5, Z: 0}
	thetas := []core.JointVector{
		HomeTheta,
		{0.3, -1.2, 0.8, 0.1, 0.9, 0.0},
		{-0.7, -0.9, 1.3, -0.5, 1.2, 0.4},
	}
	for _, theta := range thetas {
		target := ForwardWorld(theta, base)
		got, err := s.Solve(target, theta, base)
		if err != nil {
			t.Errorf("Solve(%v) failed: %v", target, err)
			continue
		}
		residual := ForwardWorld(got, base).Sub(target).Norm()
		if residual > PositionTolerance {
			t.Errorf("round trip residual %.5f exceeds tolerance", residual)
		}
	}
}

func TestSolveSeedsStayNear(t *testing.T) {
	s, err := NewSolver(testLimits(), golog.NewTestLogger(t))
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	defer s.Close()

	base := r3.Vector{}
	seed := HomeTheta
	target := ForwardWorld(seed, base).Add(r3.Vector{X: 0.02})
	got, err := s.Solve(target, seed, base)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	// A 2 cm step should not flip the arm into another branch.
	var drift float64
	for i := range got {
		drift += math.Abs(got[i] - seed[i])
	}
	if drift > 1.0 {
		t.Errorf("total joint drift %.3f rad for a 2 cm move", drift)
	}
}
