package core

import "github.com/pkg/errors"

// Planning failure kinds. Callers discriminate with errors.Is; every kind
// is fatal for the run and no partial plan is emitted.
var (
	// ErrInputShape flags a wrong line count, malformed numbers, or an
	// inconsistent K/N header.
	ErrInputShape = errors.New("input shape")

	// ErrInputBounds flags a violation of the input value rules
	// (min>max, non-positive rates, negative times or clearances).
	ErrInputBounds = errors.New("input bounds")

	// ErrUnreachable flags an operation no eligible robot can service.
	ErrUnreachable = errors.New("operation unreachable")

	// ErrIKFailure flags an inverse kinematics divergence at a waypoint
	// during trajectory synthesis.
	ErrIKFailure = errors.New("inverse kinematics failure")

	// ErrCollisionUnresolved flags a schedule the resolver could not
	// separate within its attempt cap.
	ErrCollisionUnresolved = errors.New("collision unresolved")
)
