// Package quadvec computes definite integrals of vector-valued functions
// to a caller-specified absolute error tolerance.
//
// # Overview
//
// quadvec answers "what is this integral, and how wrong could the answer be?"
// rather than returning a fixed-resolution approximation. Every entry point
// returns an (estimate, error) pair: the estimate is a vector, the error is a
// scalar measured through a caller-supplied Norm. Accuracy comes from
// adaptive subdivision: effort concentrates on whichever subinterval
// currently contributes the most error.
//
// # Architecture
//
// The package layers three components:
//
//   - quadrature.go - fixed-node rules (Gauss-Kronrod 15/21, Trapezoid) that
//     map (integrand, interval, norm) to an (estimate, error) pair
//   - adaptive.go   - QuadVec, the adaptive 1-D integrator driving a
//     worst-error-first heap of subintervals to a global tolerance
//   - ndquad.go     - NDQuadVec, the recursive driver reducing an n-ary
//     integrand to nested 1-D integrals
//
// Supporting files: tables.go (node/weight constants), norms.go (common
// vector norms), cost.go (evaluation-count profiling), assertions.go (test
// helpers for integration properties).
//
// # Quick Start
//
// Integrate the first ten monomials over [0, 2] in one call:
//
//	f := func(x float64) []float64 {
//	    out := make([]float64, 10)
//	    for n := range out {
//	        out[n] = math.Pow(x, float64(n))
//	    }
//	    return out
//	}
//
//	est, errEst, err := quadvec.QuadVec(f, 0, 2, 1e-6, quadvec.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("∫f = %v (± %g)\n", est, errEst)
//
// # Multiple Dimensions
//
// NDQuadVec iterates the 1-D machinery across dimensions. Ranges are listed
// outermost first and may depend on the outer variables already fixed;
// the integrand consumes its arguments innermost variable first:
//
//	f := func(args ...float64) []float64 {
//	    x, y, z := args[0], args[1], args[2] // x is innermost
//	    return []float64{x * y * z}
//	}
//
//	est, errEst, err := quadvec.NDQuadVec(f, []quadvec.RangeFunc{
//	    func(...float64) (float64, float64) { return 0, 1 }, // z
//	    func(...float64) (float64, float64) { return 0, 1 }, // y(z)
//	    func(...float64) (float64, float64) { return 0, 1 }, // x(y,z)
//	}, 1e-8, quadvec.DefaultConfig())
//
// Only the innermost variable is adaptively refined; each outer layer is a
// single application of the base rule. This is iterated 1-D quadrature, not
// true cubature, and the reported error covers only the outermost rule
// application.
//
// # Error Model
//
// Each Gauss-Kronrod rule embeds a lower-order Gauss rule on a shared subset
// of nodes. The discrepancy between the two estimates, rescaled through the
// QUADPACK dqk21 heuristic,
//
//	err = dev · min(1, (200·raw/dev)^1.5)
//
// with a 50·ε rounding floor, yields the per-interval error. These constants
// are inherited, load-bearing numerics; see quadrature.go.
//
// # Convergence Guard
//
// The baseline loop subdivides until the global error meets the tolerance,
// which for pathological integrands never happens. Config.MaxIntervals caps
// the pending-subinterval count; when the cap would be exceeded, QuadVec
// stops and returns ErrNotConverged together with the honest running
// estimate and error. Set MaxIntervals to 0 to restore the unbounded loop.
//
// # Testing
//
// assertions.go exports t.Helper-based checks for integration properties:
//
//	func TestMyIntegrand(t *testing.T) {
//	    est, errEst, err := quadvec.QuadVec(f, 0, 1, 1e-8, quadvec.DefaultConfig())
//	    quadvec.AssertConverged(t, errEst, err, 1e-8)
//	    quadvec.AssertMatchesExact(t, est, exact, 1e-8, quadvec.Norm2)
//	}
//
// # Philosophy
//
// Traditional numeric code answers: "what is the value?"
// quadvec answers: "what is the value, and what is it worth?"
//
// An estimate without an error bound is a guess. Every layer of this package
// preserves that pairing: rules report calibrated per-interval errors, the
// adaptive loop maintains their exact global sum, and failure paths return
// non-finite or flagged results instead of silently understated ones.
package quadvec
