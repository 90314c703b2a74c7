package algo

import (
	"github.com/golang/geo/r3"

	"github.com/elektrokombinacija/armfleet/internal/core"
	"github.com/elektrokombinacija/armfleet/internal/kinematics"
	"github.com/elektrokombinacija/armfleet/internal/motion"
)

// robotState is a robot's position in the cost projection: where its
// TCP is, which joint branch it is in, and how much work it already
// carries.
type robotState struct {
	pos    r3.Vector
	joints core.JointVector
	loadMS int64
}

type reachKey struct {
	op    int
	robot core.RobotID
}

// CostModel prices moves and operations for one planning run. Results
// of reachability probes are cached; move times depend on the carried
// joint state and are not.
type CostModel struct {
	inst   *core.Instance
	solver *kinematics.Solver
	reach  map[reachKey]bool
}

// NewCostModel builds a cost model over the instance.
func NewCostModel(inst *core.Instance, solver *kinematics.Solver) *CostModel {
	return &CostModel{
		inst:   inst,
		solver: solver,
		reach:  make(map[reachKey]bool),
	}
}

// Instance returns the instance being priced.
func (m *CostModel) Instance() *core.Instance { return m.inst }

// Eligible reports whether robot r can service operation op: both the
// pick and the place point must pass the reachability probe. A failed
// probe disqualifies the robot, it is not an error.
func (m *CostModel) Eligible(op int, r core.RobotID) bool {
	key := reachKey{op: op, robot: r}
	if ok, seen := m.reach[key]; seen {
		return ok
	}
	base := m.inst.Robots[r].Base
	o := m.inst.Operations[op]
	ok := m.solver.Reachable(o.Pick, base) && m.solver.Reachable(o.Place, base)
	m.reach[key] = ok
	return ok
}

// initialState returns a robot's state before its first move: TCP at
// the base, joints at the zero vector, no load.
func (m *CostModel) initialState(r core.RobotID) robotState {
	return robotState{pos: m.inst.Robots[r].Base}
}

// moveTime prices a single Cartesian move for robot r: solve IK at the
// destination seeded with the carried joints, then take the slowest
// joint's trapezoidal time. Returns false when the move is infeasible.
func (m *CostModel) moveTime(r core.RobotID, from robotState, to r3.Vector) (int64, core.JointVector, bool) {
	theta, err := m.solver.Solve(to, from.joints, m.inst.Robots[r].Base)
	if err != nil {
		return 0, core.JointVector{}, false
	}
	return motion.MoveTime(from.joints, theta, m.inst.Joints), theta, true
}

// MarginalCost projects servicing operation op from the given state:
// move to the pick, dwell, transfer to the place, dwell. Returns the
// added milliseconds and the state after the operation.
func (m *CostModel) MarginalCost(r core.RobotID, state robotState, op int) (int64, robotState, bool) {
	o := m.inst.Operations[op]

	tPick, thetaPick, ok := m.moveTime(r, state, o.Pick)
	if !ok {
		return 0, robotState{}, false
	}
	mid := robotState{pos: o.Pick, joints: thetaPick}
	tPlace, thetaPlace, ok := m.moveTime(r, mid, o.Place)
	if !ok {
		return 0, robotState{}, false
	}

	added := tPick + tPlace + 2*o.ProcessTime
	next := robotState{
		pos:    o.Place,
		joints: thetaPlace,
		loadMS: state.loadMS + added,
	}
	return added, next, true
}

// IsolationCost estimates the time robot r takes to service operation
// op on its own, starting from its base. Returns false when the robot
// cannot reach the operation.
func (m *CostModel) IsolationCost(op int, r core.RobotID) (int64, bool) {
	if !m.Eligible(op, r) {
		return 0, false
	}
	added, _, ok := m.MarginalCost(r, m.initialState(r), op)
	return added, ok
}
