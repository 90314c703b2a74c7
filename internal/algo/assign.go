package algo

import (
	"github.com/pkg/errors"

	"github.com/elektrokombinacija/armfleet/internal/core"
)

// Assigner decides which robot executes each operation. The order
// within a robot's list is its execution order.
type Assigner interface {
	// Assign maps every operation to exactly one robot, or fails with
	// core.ErrUnreachable when an operation has no eligible robot.
	Assign(m *CostModel) (core.Assignment, error)

	// Name returns the strategy name.
	Name() string
}

// Greedy is the list-scheduling heuristic: operations in input order,
// each assigned to the eligible robot with the smallest projected
// completion time, ties broken by lower robot index.
type Greedy struct{}

// NewGreedy creates the greedy list scheduler.
func NewGreedy() *Greedy { return &Greedy{} }

func (g *Greedy) Name() string { return "greedy" }

// Assign implements list scheduling with carried robot state: the
// marginal cost of an operation depends on where the robot's previous
// operation left it.
func (g *Greedy) Assign(m *CostModel) (core.Assignment, error) {
	inst := m.Instance()
	k := len(inst.Robots)

	assignment := make(core.Assignment, k)
	states := make([]robotState, k)
	for r := range states {
		states[r] = m.initialState(core.RobotID(r))
	}

	for op := range inst.Operations {
		best := -1
		var bestCompletion int64
		var bestState robotState

		for r := 0; r < k; r++ {
			rid := core.RobotID(r)
			if !m.Eligible(op, rid) {
				continue
			}
			added, next, ok := m.MarginalCost(rid, states[r], op)
			if !ok {
				continue
			}
			completion := states[r].loadMS + added
			if best == -1 || completion < bestCompletion {
				best = r
				bestCompletion = completion
				bestState = next
			}
		}

		if best == -1 {
			return nil, errors.Wrapf(core.ErrUnreachable, "operation %d has no eligible robot", op+1)
		}
		assignment[best] = append(assignment[best], op)
		states[best] = bestState
	}

	return assignment, nil
}
