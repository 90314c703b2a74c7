package core

import (
	"fmt"
	"strings"

	"github.com/golang/geo/r3"
)

// Assignment maps each robot (by slice index) to the ordered list of
// operation indices it executes. Every operation appears exactly once
// across all robots.
type Assignment [][]int

// Schedule is one robot's waypoint sequence, ordered by non-decreasing
// time. Equal adjacent timestamps mark an instant (pick/place contact).
type Schedule []Waypoint

// Start returns the schedule's first timestamp, or 0 when empty.
func (s Schedule) Start() int64 {
	if len(s) == 0 {
		return 0
	}
	return s[0].T
}

// End returns the schedule's last timestamp, or 0 when empty.
func (s Schedule) End() int64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].T
}

// PositionAt samples the TCP at time t (ms) by linear interpolation of
// the bracketing waypoints, clamped to the schedule's endpoints.
func (s Schedule) PositionAt(t int64) r3.Vector {
	if len(s) == 0 {
		return r3.Vector{}
	}
	if t <= s[0].T {
		return s[0].Pos
	}
	if t >= s[len(s)-1].T {
		return s[len(s)-1].Pos
	}
	for i := 0; i < len(s)-1; i++ {
		if s[i].T <= t && t <= s[i+1].T {
			dt := s[i+1].T - s[i].T
			if dt == 0 {
				return s[i].Pos
			}
			alpha := float64(t-s[i].T) / float64(dt)
			d := s[i+1].Pos.Sub(s[i].Pos)
			return s[i].Pos.Add(d.Mul(alpha))
		}
	}
	return s[len(s)-1].Pos
}

// Shift delays every waypoint by d milliseconds, in place.
func (s Schedule) Shift(d int64) {
	for i := range s {
		s[i].T += d
	}
}

// Solution is a complete plan: the assignment, one schedule per robot,
// and the makespan (the last waypoint time over all robots).
type Solution struct {
	Assignment Assignment
	Schedules  []Schedule
	Makespan   int64
}

// ComputeMakespan recalculates and stores the makespan.
func (sol *Solution) ComputeMakespan() int64 {
	var m int64
	for _, s := range sol.Schedules {
		if end := s.End(); end > m {
			m = end
		}
	}
	sol.Makespan = m
	return m
}

// Render emits the textual result:
//
//	<makespan_ms>
//	R<i> <m_i>
//	<t> <x> <y> <z>   (m_i lines, one decimal place coordinates)
//
// Robots appear in ascending index order.
func (sol *Solution) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", sol.Makespan)
	for r, s := range sol.Schedules {
		fmt.Fprintf(&b, "R%d %d\n", r+1, len(s))
		for _, wp := range s {
			fmt.Fprintf(&b, "%d %.1f %.1f %.1f\n", wp.T, wp.Pos.X, wp.Pos.Y, wp.Pos.Z)
		}
	}
	return b.String()
}
