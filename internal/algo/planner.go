// Package algo implements the fleet planning pipeline: operation
// assignment, per-robot trajectory synthesis, and collision resolution.
package algo

import (
	"github.com/edaniels/golog"

	"github.com/elektrokombinacija/armfleet/internal/core"
	"github.com/elektrokombinacija/armfleet/internal/kinematics"
)

// Config carries the planner tunables. The defaults are the values the
// engine was validated with; they are not read from the input file.
type Config struct {
	// SegmentLength bounds straight-line deviation by splitting every
	// Cartesian move into sub-segments of at most this length (m).
	SegmentLength float64
	// CollisionStepMS is the sampling step for pairwise separation.
	CollisionStepMS int64
	// ResolveDelayMS is the fixed delay added per resolution attempt.
	ResolveDelayMS int64
	// ResolveAttempts caps the number of delays before giving up.
	ResolveAttempts int
}

// DefaultConfig returns the standard planner configuration.
func DefaultConfig() Config {
	return Config{
		SegmentLength:   0.05,
		CollisionStepMS: 5,
		ResolveDelayMS:  200,
		ResolveAttempts: 200,
	}
}

// Planner runs one planning request. It holds no state beyond the run:
// construct one per instance, Close it when done.
type Planner struct {
	inst     *core.Instance
	cfg      Config
	assigner Assigner
	solver   *kinematics.Solver
	logger   golog.Logger
}

// NewPlanner builds a planner for the instance. A nil assigner selects
// the greedy list scheduler.
func NewPlanner(inst *core.Instance, cfg Config, assigner Assigner, logger golog.Logger) (*Planner, error) {
	solver, err := kinematics.NewSolver(inst.Joints, logger)
	if err != nil {
		return nil, err
	}
	if assigner == nil {
		assigner = NewGreedy()
	}
	return &Planner{
		inst:     inst,
		cfg:      cfg,
		assigner: assigner,
		solver:   solver,
		logger:   logger,
	}, nil
}

// Close releases the planner's IK solver.
func (p *Planner) Close() {
	p.solver.Close()
}

// Plan executes assignment, synthesis, and collision resolution and
// returns the finished solution. Any failure aborts the run; no
// partial schedule is returned.
func (p *Planner) Plan() (*core.Solution, error) {
	if err := p.inst.Validate(); err != nil {
		return nil, err
	}

	model := NewCostModel(p.inst, p.solver)
	assignment, err := p.assigner.Assign(model)
	if err != nil {
		return nil, err
	}
	p.logger.Debugf("assignment (%s): %v", p.assigner.Name(), assignment)

	schedules := make([]core.Schedule, len(p.inst.Robots))
	for r, ops := range assignment {
		if len(ops) == 0 {
			// Idle robots park at their base for the whole horizon.
			schedules[r] = core.Schedule{{T: 0, Pos: p.inst.Robots[r].Base}}
			continue
		}
		s, err := p.synthesize(core.RobotID(r), ops)
		if err != nil {
			return nil, err
		}
		schedules[r] = s
	}

	delays, err := p.resolve(schedules)
	if err != nil {
		return nil, err
	}
	if delays > 0 {
		p.logger.Debugf("collision resolution applied %d delays of %d ms", delays, p.cfg.ResolveDelayMS)
	}

	sol := &core.Solution{Assignment: assignment, Schedules: schedules}
	sol.ComputeMakespan()
	return sol, nil
}

// Plan is the one-shot entry point: default configuration, greedy
// assignment, a fresh solver per call.
func Plan(inst *core.Instance, logger golog.Logger) (*core.Solution, error) {
	p, err := NewPlanner(inst, DefaultConfig(), nil, logger)
	if err != nil {
		return nil, err
	}
	defer p.Close()
	return p.Plan()
}
