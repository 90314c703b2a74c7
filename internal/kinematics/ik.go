package kinematics

import (
	"math"

	"github.com/edaniels/golog"
	"github.com/go-nlopt/nlopt"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/elektrokombinacija/armfleet/internal/core"
)

// Solver tuning. Position tolerance is the residual below which a
// solution counts as converged.
const (
	PositionTolerance = 1e-3
	maxEvaluations    = 200
	smoothWeight      = 0.05
	singularWeight    = 1e-6
	gradientStep      = 1e-8
	// Singular values below this are treated as a degenerate Jacobian
	// and the singularity term is dropped rather than blowing up.
	sigmaFloor = 1e-9
)

// ErrNoSolution reports that the optimiser did not converge to the
// target position within tolerance and joint limits.
var ErrNoSolution = errors.New("no joint solution within tolerance")

// Solver is a bounded quasi-Newton inverse kinematics solver over the
// shared arm model. It is stateful across calls only in that the nlopt
// handle is reused; a Solver is not safe for concurrent use, matching
// the one-planner-per-request model.
type Solver struct {
	limits [core.JointCount]core.JointLimits
	lower  []float64
	upper  []float64
	opt    *nlopt.NLopt
	logger golog.Logger

	// current solve, read by the objective closure
	target r3.Vector // local frame
	seed   core.JointVector
}

// NewSolver builds an IK solver bounded by the given joint limits.
func NewSolver(limits [core.JointCount]core.JointLimits, logger golog.Logger) (*Solver, error) {
	s := &Solver{limits: limits, logger: logger}
	s.lower = make([]float64, core.JointCount)
	s.upper = make([]float64, core.JointCount)
	for i, j := range limits {
		s.lower[i], s.upper[i] = j.BoundsRad()
	}

	opt, err := nlopt.NewNLopt(nlopt.LD_SLSQP, core.JointCount)
	if err != nil {
		return nil, errors.Wrap(err, "nlopt creation")
	}
	s.opt = opt

	floatEpsilon := math.Nextafter(1, 2) - 1
	err = multierr.Combine(
		opt.SetLowerBounds(s.lower),
		opt.SetUpperBounds(s.upper),
		opt.SetFtolAbs(floatEpsilon),
		opt.SetXtolAbs1(floatEpsilon),
		opt.SetMaxEval(maxEvaluations),
		opt.SetMinObjective(s.objective),
	)
	if err != nil {
		return nil, errors.Wrap(err, "nlopt configuration")
	}
	return s, nil
}

// Close releases the nlopt handle.
func (s *Solver) Close() {
	if s.opt != nil {
		s.opt.Destroy()
		s.opt = nil
	}
}

// cost is the scalar objective: position residual plus a smoothness
// pull toward the seed plus a singularity penalty.
func (s *Solver) cost(theta core.JointVector) float64 {
	residual := Forward(theta).Sub(s.target).Norm()

	var drift float64
	for i := range theta {
		d := theta[i] - s.seed[i]
		drift += d * d
	}
	c := residual + smoothWeight*math.Sqrt(drift)

	if sigma := sigmaMin(theta); sigma > sigmaFloor {
		c += singularWeight / sigma
	}
	return c
}

// objective adapts cost to nlopt's signature. The gradient, when
// requested, is filled by forward differences.
func (s *Solver) objective(x, gradient []float64) float64 {
	var theta core.JointVector
	copy(theta[:], x)
	c := s.cost(theta)

	if len(gradient) > 0 {
		for i := range gradient {
			perturbed := theta
			perturbed[i] += gradientStep
			gradient[i] = (s.cost(perturbed) - c) / gradientStep
		}
	}
	return c
}

// Solve finds joint angles (radians) whose TCP reaches the world-frame
// target from the given base, staying inside joint limits. The seed
// both starts the optimiser and anchors the smoothness term.
func (s *Solver) Solve(target r3.Vector, seed core.JointVector, base r3.Vector) (core.JointVector, error) {
	s.target = target.Sub(base)
	s.seed = seed

	angles, _, err := s.opt.Optimize(seed[:])
	if err != nil && len(angles) != core.JointCount {
		return core.JointVector{}, errors.Wrap(ErrNoSolution, err.Error())
	}

	var out core.JointVector
	copy(out[:], angles)

	// Accept on the position residual alone; the smoothness and
	// singularity terms are steering costs, not convergence criteria.
	if Forward(out).Sub(s.target).Norm() > PositionTolerance {
		return core.JointVector{}, ErrNoSolution
	}
	for i, j := range s.limits {
		if !j.ContainsRad(out[i]) {
			return core.JointVector{}, errors.Wrapf(ErrNoSolution, "joint %d outside limits", i+1)
		}
	}
	return out, nil
}

// Reachable reports whether the world-frame point p can be reached from
// base: a radial gate first, then an IK probe from the neutral seed.
// A failed probe is a disqualification, not an error.
func (s *Solver) Reachable(p, base r3.Vector) bool {
	if p.Sub(base).Norm() > MaxReach {
		return false
	}
	_, err := s.Solve(p, HomeTheta, base)
	return err == nil
}
