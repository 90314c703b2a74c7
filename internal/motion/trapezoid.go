// Package motion computes joint-space move durations under symmetric
// trapezoidal velocity profiles.
package motion

import (
	"math"

	"github.com/elektrokombinacija/armfleet/internal/core"
)

// JointTime returns the completion time in seconds for one joint to
// travel delta radians with peak velocity v (rad/s) and acceleration a
// (rad/s²). The profile degenerates to triangular when the plateau
// vanishes.
func JointTime(delta, v, a float64) float64 {
	d := math.Abs(delta)
	if d == 0 {
		return 0
	}
	tAcc := v / a
	sAcc := 0.5 * a * tAcc * tAcc
	if 2*sAcc >= d {
		// Triangular: peak velocity never reached.
		return 2 * math.Sqrt(d/a)
	}
	return 2*tAcc + (d-2*sAcc)/v
}

// MoveTime returns the duration in milliseconds of a joint-space move
// from one configuration to another: the slowest joint dominates.
// Durations are rounded up to whole milliseconds.
func MoveTime(from, to core.JointVector, limits [core.JointCount]core.JointLimits) int64 {
	var worst float64
	for i := 0; i < core.JointCount; i++ {
		t := JointTime(to[i]-from[i], limits[i].MaxVelocityRad(), limits[i].MaxAccelerationRad())
		if t > worst {
			worst = t
		}
	}
	return int64(math.Ceil(worst * 1000))
}
