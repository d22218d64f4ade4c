package pet

import "errors"

var (
	// ErrInvalidArgument is returned for unknown formula, sex or position names.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoConvergence is returned when a solver exhausts its iteration budget.
	ErrNoConvergence = errors.New("solver did not converge")

	// ErrNoBracket is returned when the PET search cannot find a sign change.
	ErrNoBracket = errors.New("no root found in the search interval")

	// ErrNonFinite is returned when the heat balance evaluates to NaN or Inf,
	// which happens for physically invalid inputs (e.g. non-positive weight).
	ErrNonFinite = errors.New("heat balance is not finite")

	// ErrSingularJacobian is returned when the Newton step cannot be solved.
	ErrSingularJacobian = errors.New("singular jacobian")
)
