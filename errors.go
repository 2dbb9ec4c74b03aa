package quadvec

import "errors"

// Domain errors for integration entry points.
var (
	// ErrTolerance indicates a zero, negative, or NaN absolute tolerance.
	ErrTolerance = errors.New("quadvec: tolerance must be positive")

	// ErrNilRule indicates a Config without a quadrature rule.
	ErrNilRule = errors.New("quadvec: nil quadrature rule")

	// ErrNilNorm indicates a Config without a vector norm.
	ErrNilNorm = errors.New("quadvec: nil norm")

	// ErrNoRanges indicates an n-D call with an empty range list.
	ErrNoRanges = errors.New("quadvec: empty range list")

	// ErrNotConverged indicates the subinterval budget was exhausted before
	// the global error reached the tolerance. The accompanying estimate and
	// error value are the honest running totals at the point of surrender.
	ErrNotConverged = errors.New("quadvec: did not converge (subinterval budget exhausted)")
)
