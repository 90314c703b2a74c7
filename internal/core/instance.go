package core

import "github.com/pkg/errors"

// Instance is a complete planning problem: the fleet, the shared joint
// model, the safety envelope, and the operations to service.
type Instance struct {
	Robots        []Robot
	Joints        [JointCount]JointLimits
	ToolClearance float64
	SafeDistance  float64
	Operations    []Operation
}

// MinSeparation is the pairwise TCP distance every plan must keep at
// every instant: safe_distance plus one tool clearance per robot.
func (inst *Instance) MinSeparation() float64 {
	return inst.SafeDistance + 2*inst.ToolClearance
}

// RobotByID finds a robot by ID.
func (inst *Instance) RobotByID(id RobotID) *Robot {
	for i := range inst.Robots {
		if inst.Robots[i].ID == id {
			return &inst.Robots[i]
		}
	}
	return nil
}

// Validate checks the value rules the text format cannot express.
func (inst *Instance) Validate() error {
	if len(inst.Robots) < 1 {
		return errors.Wrap(ErrInputBounds, "at least one robot required")
	}
	if len(inst.Operations) < 1 {
		return errors.Wrap(ErrInputBounds, "at least one operation required")
	}
	for i, j := range inst.Joints {
		if j.MinAngle > j.MaxAngle {
			return errors.Wrapf(ErrInputBounds, "joint %d: min angle %.3f exceeds max %.3f", i+1, j.MinAngle, j.MaxAngle)
		}
		if j.MaxVelocity <= 0 {
			return errors.Wrapf(ErrInputBounds, "joint %d: non-positive max velocity %.3f", i+1, j.MaxVelocity)
		}
		if j.MaxAcceleration <= 0 {
			return errors.Wrapf(ErrInputBounds, "joint %d: non-positive max acceleration %.3f", i+1, j.MaxAcceleration)
		}
	}
	if inst.ToolClearance < 0 {
		return errors.Wrapf(ErrInputBounds, "negative tool clearance %.3f", inst.ToolClearance)
	}
	if inst.SafeDistance <= 0 {
		return errors.Wrapf(ErrInputBounds, "non-positive safe distance %.3f", inst.SafeDistance)
	}
	for i, op := range inst.Operations {
		if op.ProcessTime < 0 {
			return errors.Wrapf(ErrInputBounds, "operation %d: negative process time %d", i+1, op.ProcessTime)
		}
	}
	return nil
}
