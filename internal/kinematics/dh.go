// Package kinematics implements forward and inverse kinematics for the
// fleet's shared six-axis manipulator model.
package kinematics

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/elektrokombinacija/armfleet/internal/core"
)

// DHParam is one Denavit-Hartenberg row: link length a and offset d in
// metres, twist alpha and joint offset theta in radians.
type DHParam struct {
	A     float64
	Alpha float64
	D     float64
	Theta float64
}

// dhTable is the UR5-class arm geometry. Every robot in the fleet uses
// this table; it is a constant of the model, not an input.
var dhTable = [core.JointCount]DHParam{
	{A: 0.0, Alpha: math.Pi / 2, D: 0.089159},
	{A: -0.425, Alpha: 0, D: 0},
	{A: -0.39225, Alpha: 0, D: 0},
	{A: 0.0, Alpha: math.Pi / 2, D: 0.10915},
	{A: 0.0, Alpha: -math.Pi / 2, D: 0.09465},
	{A: 0.0, Alpha: 0, D: 0.0823},
}

// HomeTheta is the neutral elbow-up configuration used to seed
// reachability probes.
var HomeTheta = core.JointVector{0, -math.Pi / 2, 0, 0, math.Pi / 2, 0}

// MaxReach is the radial reach gate in metres. Targets farther than
// this from the base are rejected without running the solver.
const MaxReach = 1.7

// matrix4 is a row-major homogeneous transform.
type matrix4 [4][4]float64

func identity4() matrix4 {
	return matrix4{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

func (m matrix4) mul(o matrix4) matrix4 {
	var out matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[i][k] * o[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// dhTransform builds the standard DH link matrix for one joint angle.
func dhTransform(p DHParam, theta float64) matrix4 {
	th := theta + p.Theta
	ct, st := math.Cos(th), math.Sin(th)
	ca, sa := math.Cos(p.Alpha), math.Sin(p.Alpha)
	return matrix4{
		{ct, -st * ca, st * sa, p.A * ct},
		{st, ct * ca, -ct * sa, p.A * st},
		{0, sa, ca, p.D},
		{0, 0, 0, 1},
	}
}

// Forward computes the TCP position in the robot's local frame for the
// given joint angles (radians). Pure.
func Forward(theta core.JointVector) r3.Vector {
	t := identity4()
	for i := 0; i < core.JointCount; i++ {
		t = t.mul(dhTransform(dhTable[i], theta[i]))
	}
	return r3.Vector{X: t[0][3], Y: t[1][3], Z: t[2][3]}
}

// ForwardWorld computes the world-frame TCP position for a robot whose
// base sits at base.
func ForwardWorld(theta core.JointVector, base r3.Vector) r3.Vector {
	return Forward(theta).Add(base)
}
