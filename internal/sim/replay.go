// Package sim replays finished plans at a fixed timestep and collects
// the metrics the planner's guarantees are judged by: pairwise
// separation, dwell conservation, and makespan agreement.
package sim

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/elektrokombinacija/armfleet/internal/core"
)

// Config controls replay granularity.
type Config struct {
	// StepMS is the sampling step in milliseconds.
	StepMS int64
}

// DefaultConfig samples at the planner's collision step.
func DefaultConfig() Config {
	return Config{StepMS: 5}
}

// PairSample records the closest approach observed between two robots.
type PairSample struct {
	R1, R2   core.RobotID
	TimeMS   int64
	Distance float64
}

// Metrics is the outcome of one replay.
type Metrics struct {
	MakespanMS int64
	// MinSeparation is the closest pairwise approach over the whole
	// horizon, with the pair and instant it occurred at.
	MinSeparation PairSample
	// SeparationViolations counts samples below the instance's minimum
	// separation.
	SeparationViolations int
	// PickDwellMS and PlaceDwellMS record, per operation index, the
	// rest time observed at the pick and place points.
	PickDwellMS  map[int]int64
	PlaceDwellMS map[int]int64
}

// Replay steps the solution from t=0 to makespan and audits it against
// the instance. It never mutates the solution.
func Replay(inst *core.Instance, sol *core.Solution, cfg Config) Metrics {
	if cfg.StepMS <= 0 {
		cfg.StepMS = DefaultConfig().StepMS
	}

	var makespan int64
	for _, s := range sol.Schedules {
		if end := s.End(); end > makespan {
			makespan = end
		}
	}

	m := Metrics{
		MakespanMS:    makespan,
		MinSeparation: PairSample{Distance: math.Inf(1)},
		PickDwellMS:   make(map[int]int64),
		PlaceDwellMS:  make(map[int]int64),
	}

	minSep := inst.MinSeparation()
	for t := int64(0); t <= m.MakespanMS; t += cfg.StepMS {
		for i := 0; i < len(sol.Schedules); i++ {
			for j := i + 1; j < len(sol.Schedules); j++ {
				d := sol.Schedules[i].PositionAt(t).Sub(sol.Schedules[j].PositionAt(t)).Norm()
				if d < m.MinSeparation.Distance {
					m.MinSeparation = PairSample{R1: core.RobotID(i), R2: core.RobotID(j), TimeMS: t, Distance: d}
				}
				if d < minSep {
					m.SeparationViolations++
				}
			}
		}
	}

	for r, ops := range sol.Assignment {
		if r >= len(sol.Schedules) {
			break
		}
		s := sol.Schedules[r]
		for _, opIdx := range ops {
			op := inst.Operations[opIdx]
			m.PickDwellMS[opIdx] = restTime(s, op.Pick)
			m.PlaceDwellMS[opIdx] = restTime(s, op.Place)
		}
	}
	return m
}

// positionTolerance decides whether a waypoint sits on a contact point.
const positionTolerance = 1e-6

// restTime sums the intervals during which consecutive waypoints both
// sit on the point.
func restTime(s core.Schedule, p r3.Vector) int64 {
	var total int64
	for i := 0; i < len(s)-1; i++ {
		if s[i].Pos.Sub(p).Norm() < positionTolerance && s[i+1].Pos.Sub(p).Norm() < positionTolerance {
			total += s[i+1].T - s[i].T
		}
	}
	return total
}
