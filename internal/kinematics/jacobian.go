package kinematics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/elektrokombinacija/armfleet/internal/core"
)

// jacobianStep is the joint perturbation used for forward differences.
const jacobianStep = 1e-8

// positionJacobian builds the 3×6 position Jacobian at theta by forward
// differences of the local-frame forward kinematics.
func positionJacobian(theta core.JointVector) *mat.Dense {
	j := mat.NewDense(3, core.JointCount, nil)
	p0 := Forward(theta)
	for c := 0; c < core.JointCount; c++ {
		perturbed := theta
		perturbed[c] += jacobianStep
		p1 := Forward(perturbed)
		j.Set(0, c, (p1.X-p0.X)/jacobianStep)
		j.Set(1, c, (p1.Y-p0.Y)/jacobianStep)
		j.Set(2, c, (p1.Z-p0.Z)/jacobianStep)
	}
	return j
}

// sigmaMin returns the smallest singular value of the position Jacobian
// at theta, or 0 when the factorisation fails (degenerate Jacobian).
func sigmaMin(theta core.JointVector) float64 {
	var svd mat.SVD
	if ok := svd.Factorize(positionJacobian(theta), mat.SVDNone); !ok {
		return 0
	}
	values := svd.Values(nil)
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
