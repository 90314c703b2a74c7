package algo

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/elektrokombinacija/armfleet/internal/core"
	"github.com/elektrokombinacija/armfleet/internal/motion"
)

// synthesize builds robot r's schedule over its ordered operations:
// approach the pick, dwell, transfer to the place, dwell. Cartesian
// moves are split into sub-segments so joint-space interpolation stays
// close to the straight line and collision sampling has dense anchors.
func (p *Planner) synthesize(r core.RobotID, ops []int) (core.Schedule, error) {
	robot := p.inst.Robots[r]

	cursor := trajCursor{
		planner: p,
		robot:   robot,
		pos:     robot.Base,
		sched:   core.Schedule{{T: 0, Pos: robot.Base}},
	}

	for _, opIdx := range ops {
		op := p.inst.Operations[opIdx]

		if err := cursor.travel(op.Pick); err != nil {
			return nil, errors.Wrapf(err, "operation %d approach", opIdx+1)
		}
		cursor.dwell(op.ProcessTime)

		if err := cursor.travel(op.Place); err != nil {
			return nil, errors.Wrapf(err, "operation %d transfer", opIdx+1)
		}
		cursor.dwell(op.ProcessTime)
	}

	return cursor.sched, nil
}

// trajCursor carries the synthesis state along one robot's timeline:
// current TCP position, joint branch, elapsed time, and the schedule
// built so far.
type trajCursor struct {
	planner *Planner
	robot   core.Robot
	pos     r3.Vector
	joints  core.JointVector
	t       int64
	sched   core.Schedule
}

// travel moves the TCP in a straight line to target, emitting a
// waypoint per sub-segment endpoint. The joint state seeds each IK
// call so the arm stays in a single branch.
func (c *trajCursor) travel(target r3.Vector) error {
	delta := target.Sub(c.pos)
	dist := delta.Norm()
	if dist == 0 {
		return nil
	}

	segments := int(math.Ceil(dist / c.planner.cfg.SegmentLength))
	for s := 1; s <= segments; s++ {
		point := c.pos.Add(delta.Mul(float64(s) / float64(segments)))
		theta, err := c.planner.solver.Solve(point, c.joints, c.robot.Base)
		if err != nil {
			return errors.Wrapf(core.ErrIKFailure, "robot %d at (%.3f, %.3f, %.3f): %v",
				c.robot.ID+1, point.X, point.Y, point.Z, err)
		}
		c.t += motion.MoveTime(c.joints, theta, c.planner.inst.Joints)
		c.sched = append(c.sched, core.Waypoint{T: c.t, Pos: point})
		c.joints = theta
	}
	c.pos = target
	return nil
}

// dwell holds the TCP in place for d milliseconds and marks the end of
// the hold with a waypoint. Zero-length dwells still emit the contact
// instant.
func (c *trajCursor) dwell(d int64) {
	c.t += d
	c.sched = append(c.sched, core.Waypoint{T: c.t, Pos: c.pos})
}
