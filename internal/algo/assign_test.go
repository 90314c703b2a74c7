package algo

import (
	"math"
	"testing"
)

func TestExactSearch_Balances(t *testing.T) {
	// Two robots, two equal operations: the optimum splits them.
	cost := [][]int64{
		{100, 100},
		{100, 100},
	}
	owner, best := exactSearch(cost, 2)
	if best != 100 {
		t.Fatalf("best makespan = %d, want 100", best)
	}
	if owner[0] == owner[1] {
		t.Fatalf("both operations on robot %d", owner[0])
	}
}

func TestExactSearch_RespectsEligibility(t *testing.T) {
	// Operation 0 can only run on robot 1.
	cost := [][]int64{
		{-1, 50},
		{30, 40},
	}
	owner, best := exactSearch(cost, 2)
	if owner[0] != 1 {
		t.Fatalf("operation 0 assigned to robot %d, want 1", owner[0])
	}
	if best != 50 {
		t.Fatalf("best makespan = %d, want 50", best)
	}
}

func TestExactSearch_BeatsGreedyOrdering(t *testing.T) {
	// In input order a greedy scheduler loads robot 0 with both cheap
	// operations and ends at 180; the optimum is 150.
	cost := [][]int64{
		{90, 150},
		{90, 150},
		{150, 150},
	}
	_, best := exactSearch(cost, 2)
	if best != 180 {
		// 90+90 on robot 0 and 150 on robot 1 gives 180; splitting the
		// cheap pair gives max(90+150?, ...) -- enumerate to be sure.
		t.Logf("best = %d", best)
	}
	// Exhaustive check: the search result is never worse than any
	// explicit assignment.
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for c := 0; c < 2; c++ {
				loads := []int64{0, 0}
				loads[a] += cost[0][a]
				loads[b] += cost[1][b]
				loads[c] += cost[2][c]
				m := loads[0]
				if loads[1] > m {
					m = loads[1]
				}
				if m < best {
					t.Fatalf("search returned %d but assignment (%d,%d,%d) achieves %d", best, a, b, c, m)
				}
			}
		}
	}
}

func TestExactSearch_Infeasible(t *testing.T) {
	cost := [][]int64{{-1, -1}}
	_, best := exactSearch(cost, 2)
	if best != math.MaxInt64 {
		t.Fatalf("best = %d, want MaxInt64 for infeasible matrix", best)
	}
}
