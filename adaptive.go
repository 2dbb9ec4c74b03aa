package quadvec

import (
	"container/heap"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// DefaultMaxIntervals is the pending-subinterval budget used by
// DefaultConfig. A smooth integrand converges in a handful of subdivisions;
// an integrand that needs this many is not going to converge at all.
const DefaultMaxIntervals = 1 << 17

// Config controls integration.
type Config struct {
	// Rule is the fixed-node quadrature rule applied to each subinterval.
	Rule Rule

	// Norm reduces vector-valued errors to the scalar compared against the
	// tolerance.
	Norm Norm

	// MaxIntervals caps the number of pending subintervals. When the cap
	// would be exceeded, QuadVec stops and returns ErrNotConverged together
	// with the current estimate and error. 0 or negative disables the cap,
	// restoring the unbounded baseline loop.
	MaxIntervals int
}

// DefaultConfig returns sensible defaults: Gauss-Kronrod 21, Euclidean norm,
// bounded subdivision.
func DefaultConfig() Config {
	return Config{
		Rule:         GaussKronrod21,
		Norm:         Norm2,
		MaxIntervals: DefaultMaxIntervals,
	}
}

// validate fails fast on configurations that would otherwise surface as
// confusing behavior deep inside the subdivision loop.
func (c Config) validate(tol float64) error {
	if !(tol > 0) { // also rejects NaN
		return fmt.Errorf("%w: got %g", ErrTolerance, tol)
	}
	if c.Rule == nil {
		return ErrNilRule
	}
	if c.Norm == nil {
		return ErrNilNorm
	}
	return nil
}

// interval is one pending subinterval with its locally computed estimate and
// error. Owned exclusively by the heap while pending; replaced by its two
// children when popped.
type interval struct {
	a, b float64
	est  []float64
	err  float64
}

// intervalHeap is a max-heap keyed by per-interval error, so the worst
// offender is always extracted first. Order among equal errors is arbitrary
// and not significant.
type intervalHeap []interval

func (h intervalHeap) Len() int            { return len(h) }
func (h intervalHeap) Less(i, j int) bool  { return h[i].err > h[j].err }
func (h intervalHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *intervalHeap) Push(x interface{}) { *h = append(*h, x.(interval)) }

func (h *intervalHeap) Pop() interface{} {
	old := *h
	n := len(old)
	iv := old[n-1]
	*h = old[:n-1]
	return iv
}

// total is the running global (estimate, error) pair. Between subdivisions
// it equals the exact sum over all pending intervals; replace keeps that
// identity by swapping a parent's contribution for its children's.
type total struct {
	est []float64
	err float64
}

func (t *total) replace(parent, left, right interval) {
	floats.Sub(t.est, parent.est)
	floats.Add(t.est, left.est)
	floats.Add(t.est, right.est)
	t.err += -parent.err + left.err + right.err
}

// QuadVec adaptively integrates f over [a, b] until the global error
// estimate, measured through cfg.Norm, drops to tol or below.
//
// It seeds a single interval with one rule evaluation, then repeatedly
// bisects whichever pending subinterval currently has the largest error,
// keeping the global estimate and error in exact correspondence with the
// pending set. The returned error estimate is <= tol on normal termination.
//
// Non-finite integrand values propagate into the result; they are never
// caught or clamped. If the subinterval budget runs out first, the current
// totals are returned with ErrNotConverged.
func QuadVec(f Integrand, a, b, tol float64, cfg Config) ([]float64, float64, error) {
	if err := cfg.validate(tol); err != nil {
		return nil, 0, err
	}

	est, errEst := cfg.Rule(f, a, b, cfg.Norm)
	running := total{est: append([]float64(nil), est...), err: errEst}

	pending := intervalHeap{{a: a, b: b, est: est, err: errEst}}

	// A NaN global error exits immediately (the comparison is false) and is
	// returned as-is rather than masked.
	for running.err > tol {
		if cfg.MaxIntervals > 0 && len(pending) >= cfg.MaxIntervals {
			return running.est, running.err, fmt.Errorf(
				"%w: %d pending subintervals, error %g > tol %g",
				ErrNotConverged, len(pending), running.err, tol)
		}

		worst := heap.Pop(&pending).(interval)
		m := (worst.a + worst.b) / 2

		leftEst, leftErr := cfg.Rule(f, worst.a, m, cfg.Norm)
		rightEst, rightErr := cfg.Rule(f, m, worst.b, cfg.Norm)

		left := interval{a: worst.a, b: m, est: leftEst, err: leftErr}
		right := interval{a: m, b: worst.b, est: rightEst, err: rightErr}

		running.replace(worst, left, right)

		heap.Push(&pending, left)
		heap.Push(&pending, right)
	}

	return running.est, running.err, nil
}
