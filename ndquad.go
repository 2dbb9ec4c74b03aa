package quadvec

// NDIntegrand is a vector-valued function of several variables. Arguments
// are consumed innermost variable first: integrating f(x, y, z) with x
// innermost means args[0] is x, args[1] is y, args[2] is z.
type NDIntegrand func(args ...float64) []float64

// RangeFunc computes the (lower, upper) bounds of one integration variable.
// It receives the already-fixed outer variables, innermost first, mirroring
// NDIntegrand; the outermost range function is called with no arguments.
type RangeFunc func(outer ...float64) (lo, hi float64)

// NDQuadVec integrates an n-dimensional vector-valued function by iterated
// 1-D quadrature. ranges lists one RangeFunc per dimension, outermost first;
// bounds of inner variables may depend on the outer values already fixed.
//
// Only the innermost variable is adaptively refined: each outer layer is a
// single non-adaptive application of cfg.Rule, so the reported error covers
// the outermost layer only and the true error can exceed tol. This is
// iterated 1-D quadrature, not cubature.
//
// A convergence failure anywhere in the recursion (the innermost QuadVec's
// subinterval budget) is surfaced from this call; the estimate returned
// alongside it is still the best available value.
func NDQuadVec(f NDIntegrand, ranges []RangeFunc, tol float64, cfg Config) ([]float64, float64, error) {
	if len(ranges) == 0 {
		return nil, 0, ErrNoRanges
	}
	if err := cfg.validate(tol); err != nil {
		return nil, 0, err
	}

	var innerErr error
	est, errEst := ndQuadVec(f, ranges, tol, cfg, &innerErr)
	return est, errEst, innerErr
}

func ndQuadVec(f NDIntegrand, ranges []RangeFunc, tol float64, cfg Config, firstErr *error) ([]float64, float64) {
	a, b := ranges[0]()

	if len(ranges) == 1 {
		est, errEst, err := QuadVec(func(x float64) []float64 { return f(x) }, a, b, tol, cfg)
		if err != nil && *firstErr == nil {
			*firstErr = err
		}
		return est, errEst
	}

	tail := ranges[1:]

	// For a fixed outer value z, g(z) integrates out every remaining inner
	// variable: f gets z bound as its trailing argument, and each inner
	// range function gets z bound the same way. The inner error estimate is
	// discarded; only the outermost rule application reports error.
	g := func(z float64) []float64 {
		bound := make([]RangeFunc, len(tail))
		for i, rng := range tail {
			bound[i] = bindRangeLast(rng, z)
		}
		est, _ := ndQuadVec(bindLast(f, z), bound, tol, cfg, firstErr)
		return est
	}

	est, errEst := cfg.Rule(g, a, b, cfg.Norm)
	return est, errEst
}

// bindLast fixes the last argument of f as z. The returned function owns its
// copy of z and builds a fresh argument slice per call; nothing is shared
// with the caller's slice.
func bindLast(f NDIntegrand, z float64) NDIntegrand {
	return func(args ...float64) []float64 {
		bound := make([]float64, len(args)+1)
		copy(bound, args)
		bound[len(args)] = z
		return f(bound...)
	}
}

// bindRangeLast fixes the last argument of rng as z.
func bindRangeLast(rng RangeFunc, z float64) RangeFunc {
	return func(outer ...float64) (float64, float64) {
		bound := make([]float64, len(outer)+1)
		copy(bound, outer)
		bound[len(outer)] = z
		return rng(bound...)
	}
}
