// Package state manages the visualiser's view of a finished plan.
package state

import (
	"github.com/golang/geo/r3"

	"github.com/elektrokombinacija/armfleet/internal/core"
)

// State holds the instance, its solution, and playback position.
type State struct {
	Instance *core.Instance
	Solution *core.Solution
	Playback *PlaybackState
}

// NewState creates playback state over a solved instance.
func NewState(inst *core.Instance, sol *core.Solution) *State {
	makespan := int64(0)
	if sol != nil {
		makespan = sol.Makespan
	}
	return &State{
		Instance: inst,
		Solution: sol,
		Playback: NewPlaybackState(makespan),
	}
}

// NowMS returns the current plan time as integer milliseconds.
func (s *State) NowMS() int64 {
	return int64(s.Playback.CurrentMS)
}

// CurrentPositions returns every robot's TCP at the current plan time.
func (s *State) CurrentPositions() map[core.RobotID]r3.Vector {
	positions := make(map[core.RobotID]r3.Vector)
	if s.Solution == nil {
		return positions
	}
	now := s.NowMS()
	for _, robot := range s.Instance.Robots {
		sched := s.Solution.Schedules[robot.ID]
		if len(sched) == 0 {
			positions[robot.ID] = robot.Base
			continue
		}
		positions[robot.ID] = sched.PositionAt(now)
	}
	return positions
}

// PathHistory returns the waypoints a robot has visited up to the
// current time, ending at its interpolated position. Used for trails.
func (s *State) PathHistory(id core.RobotID) []r3.Vector {
	if s.Solution == nil {
		return nil
	}
	sched := s.Solution.Schedules[id]
	now := s.NowMS()

	var history []r3.Vector
	for _, wp := range sched {
		if wp.T > now {
			break
		}
		history = append(history, wp.Pos)
	}
	if len(history) > 0 {
		history = append(history, sched.PositionAt(now))
	}
	return history
}

// SeparationAlarms returns the robot pairs currently closer than the
// instance's minimum separation.
func (s *State) SeparationAlarms() [][2]core.RobotID {
	if s.Solution == nil {
		return nil
	}
	minSep := s.Instance.MinSeparation()
	pos := s.CurrentPositions()

	var alarms [][2]core.RobotID
	robots := s.Instance.Robots
	for i := 0; i < len(robots); i++ {
		for j := i + 1; j < len(robots); j++ {
			p1, p2 := pos[robots[i].ID], pos[robots[j].ID]
			if p1.Sub(p2).Norm() < minSep {
				alarms = append(alarms, [2]core.RobotID{robots[i].ID, robots[j].ID})
			}
		}
	}
	return alarms
}
