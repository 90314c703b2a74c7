// Package core defines domain models for the arm fleet scheduler.
package core

import (
	"math"

	"github.com/golang/geo/r3"
)

// JointCount is the number of actuated joints on every arm in the fleet.
// All robots share one manipulator model.
const JointCount = 6

// RobotID is a unique robot identifier (0-based).
type RobotID int

// JointLimits bounds a single joint. Angles are in degrees, rates in
// deg/s and deg/s², matching the input file convention.
type JointLimits struct {
	MinAngle        float64
	MaxAngle        float64
	MaxVelocity     float64
	MaxAcceleration float64
}

// BoundsRad returns the joint's angle range in radians.
func (j JointLimits) BoundsRad() (lo, hi float64) {
	return j.MinAngle * math.Pi / 180, j.MaxAngle * math.Pi / 180
}

// MaxVelocityRad returns the peak velocity in rad/s.
func (j JointLimits) MaxVelocityRad() float64 {
	return j.MaxVelocity * math.Pi / 180
}

// MaxAccelerationRad returns the peak acceleration in rad/s².
func (j JointLimits) MaxAccelerationRad() float64 {
	return j.MaxAcceleration * math.Pi / 180
}

// ContainsRad reports whether angle (radians) lies within the limit range.
func (j JointLimits) ContainsRad(angle float64) bool {
	lo, hi := j.BoundsRad()
	const slack = 1e-9
	return angle >= lo-slack && angle <= hi+slack
}

// JointVector is a full set of joint angles in radians.
type JointVector [JointCount]float64

// Operation is a single pick-and-place job. ProcessTime is the dwell
// spent at the pick point and again at the place point, in milliseconds.
type Operation struct {
	Pick        r3.Vector
	Place       r3.Vector
	ProcessTime int64
}

// Robot is one manipulator of the fleet, fixed at its world-frame base.
type Robot struct {
	ID   RobotID
	Base r3.Vector
}

// Waypoint is a time-stamped TCP position. T is in integer milliseconds
// from schedule start. TCP position between consecutive waypoints is
// linear interpolation in world space.
type Waypoint struct {
	T   int64
	Pos r3.Vector
}
