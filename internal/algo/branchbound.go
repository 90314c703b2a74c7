package algo

import (
	"math"

	"github.com/pkg/errors"

	"github.com/elektrokombinacija/armfleet/internal/core"
)

// BranchBound solves the makespan assignment exactly over the
// isolation cost matrix: minimise the largest per-robot sum of
// cost[i][r] subject to eligibility. Depth-first search with
// load-based pruning; exponential in the worst case, so instances
// above MaxExactOps fall back to the greedy heuristic.
type BranchBound struct {
	// MaxExactOps caps the exact search. Zero means the default.
	MaxExactOps int
}

const defaultMaxExactOps = 16

// NewBranchBound creates the exact assigner.
func NewBranchBound() *BranchBound { return &BranchBound{} }

func (b *BranchBound) Name() string { return "branch-bound" }

// Assign builds the cost matrix and searches for the assignment with
// the minimum makespan bound.
func (b *BranchBound) Assign(m *CostModel) (core.Assignment, error) {
	inst := m.Instance()
	n := len(inst.Operations)
	k := len(inst.Robots)

	limit := b.MaxExactOps
	if limit == 0 {
		limit = defaultMaxExactOps
	}
	if n > limit {
		return NewGreedy().Assign(m)
	}

	// cost[i][r] < 0 marks an infeasible pairing.
	cost := make([][]int64, n)
	for i := 0; i < n; i++ {
		cost[i] = make([]int64, k)
		feasible := false
		for r := 0; r < k; r++ {
			c, ok := m.IsolationCost(i, core.RobotID(r))
			if !ok {
				cost[i][r] = -1
				continue
			}
			cost[i][r] = c
			feasible = true
		}
		if !feasible {
			return nil, errors.Wrapf(core.ErrUnreachable, "operation %d has no eligible robot", i+1)
		}
	}

	owner, best := exactSearch(cost, k)
	if best == math.MaxInt64 {
		return nil, errors.Wrap(core.ErrUnreachable, "no feasible assignment")
	}

	assignment := make(core.Assignment, k)
	for i, r := range owner {
		assignment[r] = append(assignment[r], i)
	}
	return assignment, nil
}

// exactSearch explores every eligible owner per operation depth-first,
// pruning branches whose running makespan already matches or exceeds
// the incumbent. Lower robot indices are tried first, so ties resolve
// toward them. Returns the owner per operation and the best makespan,
// or math.MaxInt64 when no complete assignment exists.
func exactSearch(cost [][]int64, k int) ([]int, int64) {
	n := len(cost)
	best := int64(math.MaxInt64)
	bestOwner := make([]int, n)
	owner := make([]int, n)
	loads := make([]int64, k)

	var search func(op int, makespan int64)
	search = func(op int, makespan int64) {
		if makespan >= best {
			return
		}
		if op == n {
			best = makespan
			copy(bestOwner, owner)
			return
		}
		for r := 0; r < k; r++ {
			c := cost[op][r]
			if c < 0 {
				continue
			}
			loads[r] += c
			owner[op] = r
			next := makespan
			if loads[r] > next {
				next = loads[r]
			}
			search(op+1, next)
			loads[r] -= c
		}
	}
	search(0, 0)
	return bestOwner, best
}
