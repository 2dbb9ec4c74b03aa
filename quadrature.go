package quadvec

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Integrand is a vector-valued function of one variable. The result must
// have the same length on every call, and re-evaluating at the same point
// must give the same value (rules may evaluate each node exactly once and
// reuse the result).
type Integrand func(x float64) []float64

// Norm reduces a vector to a non-negative scalar magnitude. It must satisfy
// norm(0) == 0; Euclidean and max norms are the usual choices (see norms.go).
type Norm func(v []float64) float64

// Rule approximates the integral of f over [a, b] with a fixed node scheme,
// returning the estimate and a calibrated scalar error under norm.
// A degenerate interval (a == b) yields a zero vector and zero error.
type Rule func(f Integrand, a, b float64, norm Norm) ([]float64, float64)

// epsilon is the float64 machine epsilon, 2^-52.
const epsilon = 0x1p-52

// minNormal is the smallest positive normalized float64,
// 2.2250738585072014e-308. The rounding floor compares against this value,
// not against math.SmallestNonzeroFloat64 (a denormal); the distinction is
// inherited from QUADPACK and preserved exactly.
var minNormal = math.Float64frombits(0x0010000000000000)

// GaussKronrod15 is the embedded 7-15 Gauss-Kronrod pair. It integrates
// polynomials up to degree 22 exactly and is the cheaper choice for smooth
// integrands.
func GaussKronrod15(f Integrand, a, b float64, norm Norm) ([]float64, float64) {
	return gaussKronrod(f, a, b, gk15, norm)
}

// GaussKronrod21 is the embedded 10-21 Gauss-Kronrod pair, the default rule.
// It integrates polynomials up to degree 31 exactly.
func GaussKronrod21(f Integrand, a, b float64, norm Norm) ([]float64, float64) {
	return gaussKronrod(f, a, b, gk21, norm)
}

// gaussKronrod evaluates an embedded Gauss-Kronrod pair on [a, b].
//
// The error model follows QUADPACK dqk21: the raw high/low-order discrepancy
// is rescaled against the integrand's average deviation, then floored by a
// rounding-error term. The 200 factor and 1.5 exponent are inherited,
// load-bearing heuristics.
func gaussKronrod(f Integrand, a, b float64, tab table, norm Norm) ([]float64, float64) {
	if a == b {
		return make([]float64, len(f(a))), 0
	}

	half := (b - a) / 2

	// One evaluation per scaled node, cached for this call only. The
	// embedded Gauss rule reuses every other Kronrod node.
	fx := make([][]float64, len(tab.nodes))
	for i, x := range tab.nodes {
		fx[i] = f((x+1)*half + a)
	}

	dim := len(fx[0])

	gk := make([]float64, dim)
	for i := range fx {
		floats.AddScaled(gk, tab.kronrod[i]*half, fx[i])
	}

	g := make([]float64, dim)
	for i := range tab.gauss {
		floats.AddScaled(g, tab.gauss[i]*half, fx[2*i+1])
	}

	avg := make([]float64, dim)
	floats.AddScaled(avg, 1/(b-a), gk)

	// Σ w_i·|f(x_i) − avg| over the high-order weight set (dqk21's resasc).
	dev := make([]float64, dim)
	diff := make([]float64, dim)
	for i := range fx {
		for j := range diff {
			diff[j] = math.Abs(fx[i][j] - avg[j])
		}
		floats.AddScaled(dev, tab.kronrod[i]*half, diff)
	}
	avgDeviation := norm(dev)

	floats.SubTo(diff, gk, g)
	rawErr := norm(diff)

	errEstimate := rawErr
	if avgDeviation != 0 && rawErr != 0 {
		errEstimate = avgDeviation * math.Min(1, math.Pow(200*rawErr/avgDeviation, 1.5))
	}

	roundErr := 50 * epsilon * avgDeviation
	if roundErr > minNormal {
		errEstimate = math.Max(errEstimate, roundErr)
	}

	return gk, errEstimate
}

// Trapezoid is the 3-point Simpson/trapezoid pair: the returned estimate is
// the Simpson value, and the error comes from its discrepancy with the
// trapezoid value. Exact (error at machine-noise level) for integrands of
// degree <= 1; useful as a cheap rule for rough integrands.
func Trapezoid(f Integrand, a, b float64, norm Norm) ([]float64, float64) {
	if a == b {
		return make([]float64, len(f(a))), 0
	}

	h := b - a
	f1 := f(a)
	f2 := f(a + h/2)
	f3 := f(b)

	dim := len(f1)
	simpson := make([]float64, dim)
	diff := make([]float64, dim)
	for j := range simpson {
		simpson[j] = h / 6 * (f1[j] + 4*f2[j] + f3[j])
		diff[j] = simpson[j] - h/2*(f1[j]+f3[j])
	}

	errEstimate := norm(diff) / 3

	roundErr := 0.25 * math.Abs(h) * (norm(f1) + 2*norm(f2) + norm(f3)) * 2 * epsilon
	if roundErr > minNormal {
		errEstimate = math.Max(errEstimate, roundErr)
	}

	return simpson, errEstimate
}
