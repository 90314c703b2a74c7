package motion

import (
	"math"
	"testing"

	"github.com/elektrokombinacija/armfleet/internal/core"
)

func TestJointTimeZeroDelta(t *testing.T) {
	if got := JointTime(0, 1, 1); got != 0 {
		t.Fatalf("JointTime(0) = %v, want 0", got)
	}
}

func TestJointTimeTriangular(t *testing.T) {
	// Small displacement: the peak velocity is never reached, so
	// t = 2*sqrt(|d|/a).
	v, a := 2.0, 4.0
	d := 0.5 // 2*s_acc = a*(v/a)^2 = 1.0 > 0.5
	want := 2 * math.Sqrt(d/a)
	if got := JointTime(d, v, a); math.Abs(got-want) > 1e-12 {
		t.Fatalf("JointTime = %v, want %v", got, want)
	}
	// Sign does not matter.
	if got := JointTime(-d, v, a); math.Abs(got-want) > 1e-12 {
		t.Fatalf("JointTime(-d) = %v, want %v", got, want)
	}
}

func TestJointTimeTrapezoidal(t *testing.T) {
	v, a := 2.0, 4.0
	d := 3.0 // plateau exists
	tAcc := v / a
	sAcc := 0.5 * a * tAcc * tAcc
	want := 2*tAcc + (d-2*sAcc)/v
	if got := JointTime(d, v, a); math.Abs(got-want) > 1e-12 {
		t.Fatalf("JointTime = %v, want %v", got, want)
	}
}

// The profile switches from triangular to trapezoidal exactly at
// |delta| = 2*s_acc; the time law must be continuous there.
func TestJointTimeContinuousAtBoundary(t *testing.T) {
	v, a := 1.5, 3.0
	tAcc := v / a
	boundary := a * tAcc * tAcc // 2*s_acc

	eps := 1e-9
	below := JointTime(boundary-eps, v, a)
	at := JointTime(boundary, v, a)
	above := JointTime(boundary+eps, v, a)

	if math.Abs(at-2*tAcc) > 1e-9 {
		t.Errorf("time at boundary = %v, want %v", at, 2*tAcc)
	}
	if math.Abs(below-at) > 1e-4 || math.Abs(above-at) > 1e-4 {
		t.Errorf("discontinuity at boundary: below=%v at=%v above=%v", below, at, above)
	}
}

func TestMoveTimeSlowestJointDominates(t *testing.T) {
	var limits [core.JointCount]core.JointLimits
	for i := range limits {
		limits[i] = core.JointLimits{MinAngle: -180, MaxAngle: 180, MaxVelocity: 90, MaxAcceleration: 45}
	}
	from := core.JointVector{}
	to := core.JointVector{0.1, 1.2, 0.05, 0, 0, 0}

	wantSec := JointTime(1.2, limits[1].MaxVelocityRad(), limits[1].MaxAccelerationRad())
	want := int64(math.Ceil(wantSec * 1000))
	if got := MoveTime(from, to, limits); got != want {
		t.Fatalf("MoveTime = %d, want %d", got, want)
	}
}

func TestMoveTimeNoMove(t *testing.T) {
	var limits [core.JointCount]core.JointLimits
	for i := range limits {
		limits[i] = core.JointLimits{MinAngle: -180, MaxAngle: 180, MaxVelocity: 90, MaxAcceleration: 45}
	}
	theta := core.JointVector{0.4, -0.2, 0.9, 0, 0.1, -1}
	if got := MoveTime(theta, theta, limits); got != 0 {
		t.Fatalf("MoveTime(same) = %d, want 0", got)
	}
}
