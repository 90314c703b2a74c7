package algo

import (
	"github.com/pkg/errors"

	"github.com/elektrokombinacija/armfleet/internal/core"
)

// violation is one sampled pairwise separation breach.
type violation struct {
	r1, r2 core.RobotID // r1 < r2
	t      int64
	dist   float64
}

// firstViolation scans every robot pair whose active windows overlap,
// sampling separation every step ms (window ends included), and
// returns the first breach of minSep, or nil.
func firstViolation(schedules []core.Schedule, minSep float64, step int64) *violation {
	for i := 0; i < len(schedules); i++ {
		for j := i + 1; j < len(schedules); j++ {
			s1, s2 := schedules[i], schedules[j]

			lo := s1.Start()
			if s2.Start() > lo {
				lo = s2.Start()
			}
			hi := s1.End()
			if s2.End() < hi {
				hi = s2.End()
			}
			if lo > hi {
				continue
			}

			for t := lo; ; t += step {
				if t > hi {
					t = hi
				}
				d := s1.PositionAt(t).Sub(s2.PositionAt(t)).Norm()
				if d < minSep {
					return &violation{r1: core.RobotID(i), r2: core.RobotID(j), t: t, dist: d}
				}
				if t >= hi {
					break
				}
			}
		}
	}
	return nil
}

// resolve delays schedules until every sampled pair keeps the minimum
// separation. Each attempt shifts the higher-indexed robot of the
// first violating pair by the configured delay; a uniform shift of all
// robots would leave every pairwise window unchanged. Returns the
// number of delays applied.
func (p *Planner) resolve(schedules []core.Schedule) (int, error) {
	minSep := p.inst.MinSeparation()
	delays := 0
	for {
		v := firstViolation(schedules, minSep, p.cfg.CollisionStepMS)
		if v == nil {
			return delays, nil
		}
		if delays >= p.cfg.ResolveAttempts {
			return delays, errors.Wrapf(core.ErrCollisionUnresolved,
				"robots %d and %d still %.3f m apart at t=%d ms after %d delays",
				v.r1+1, v.r2+1, v.dist, v.t, delays)
		}
		p.logger.Debugf("separation %.3f m < %.3f m between robots %d and %d at t=%d ms; delaying robot %d",
			v.dist, minSep, v.r1+1, v.r2+1, v.t, v.r2+1)
		schedules[v.r2].Shift(p.cfg.ResolveDelayMS)
		delays++
	}
}
