package quadvec

import (
	"math"
	"testing"
)

// monomials returns x^0..x^(dim-1) as one vector-valued integrand.
func monomials(dim int) Integrand {
	return func(x float64) []float64 {
		out := make([]float64, dim)
		v := 1.0
		for n := range out {
			out[n] = v
			v *= x
		}
		return out
	}
}

// TestGaussKronrod21ExactOnPolynomials verifies GK21 reproduces ∫₀¹ xⁿ dx =
// 1/(n+1) to machine precision for n ≤ 9, far inside its exactness order.
func TestGaussKronrod21ExactOnPolynomials(t *testing.T) {
	exact := make([]float64, 10)
	for n := range exact {
		exact[n] = 1 / float64(n+1)
	}

	AssertRuleExact(t, GaussKronrod21, monomials(10), 0, 1, exact, DefaultAssertionConfig())
}

// TestGaussKronrod15ExactOnPolynomials verifies the cheaper pair on the same
// integrands; degree 9 is inside both the Gauss-7 and Kronrod-15 orders.
func TestGaussKronrod15ExactOnPolynomials(t *testing.T) {
	exact := make([]float64, 10)
	for n := range exact {
		exact[n] = 1 / float64(n+1)
	}

	AssertRuleExact(t, GaussKronrod15, monomials(10), 0, 1, exact, DefaultAssertionConfig())
}

// TestGaussKronrodReportedErrorBoundsTruth checks the error estimate on a
// transcendental integrand actually bounds the true error: ∫₀^π sin x dx = 2.
func TestGaussKronrodReportedErrorBoundsTruth(t *testing.T) {
	f := func(x float64) []float64 { return []float64{math.Sin(x)} }

	for name, rule := range map[string]Rule{"GK15": GaussKronrod15, "GK21": GaussKronrod21} {
		est, errEst := rule(f, 0, math.Pi, Norm2)

		trueErr := math.Abs(est[0] - 2)
		if trueErr > errEst {
			t.Errorf("%s: true error %g exceeds reported error %g", name, trueErr, errEst)
		}

		t.Logf("✓ %s: ∫₀^π sin = %.15f (true err %g, reported %g)", name, est[0], trueErr, errEst)
	}
}

// TestRuleIdempotent verifies two identical rule calls are bit-identical:
// the per-call evaluation cache must not leak state between calls.
func TestRuleIdempotent(t *testing.T) {
	f := func(x float64) []float64 { return []float64{math.Exp(x), math.Cos(3 * x)} }

	est1, err1 := GaussKronrod21(f, -1.5, 2.5, Norm2)
	est2, err2 := GaussKronrod21(f, -1.5, 2.5, Norm2)

	if err1 != err2 {
		t.Errorf("Error estimates differ between identical calls: %v vs %v", err1, err2)
	}
	for i := range est1 {
		if est1[i] != est2[i] {
			t.Errorf("Component %d differs between identical calls: %v vs %v", i, est1[i], est2[i])
		}
	}

	t.Logf("✓ Bit-identical results across repeated calls")
}

// TestDegenerateInterval verifies a == b yields a zero vector and zero error
// for every rule, regardless of the integrand.
func TestDegenerateInterval(t *testing.T) {
	f := func(x float64) []float64 { return []float64{math.Exp(x), 1 / (1 + x*x), 42} }

	for name, rule := range map[string]Rule{
		"GK15":      GaussKronrod15,
		"GK21":      GaussKronrod21,
		"Trapezoid": Trapezoid,
	} {
		est, errEst := rule(f, 3.7, 3.7, Norm2)

		if len(est) != 3 {
			t.Fatalf("%s: estimate has %d components, want 3", name, len(est))
		}
		for i, v := range est {
			if v != 0 {
				t.Errorf("%s: component %d = %v, want 0", name, i, v)
			}
		}
		if errEst != 0 {
			t.Errorf("%s: error = %v, want 0", name, errEst)
		}
	}

	t.Logf("✓ Degenerate intervals return zero estimate and zero error")
}

// TestTrapezoidExactOnLinear verifies the Simpson/trapezoid pair reports
// machine-noise error for degree <= 1, where both embedded rules agree.
// The rounding floor keeps the reported error a hair above exact zero.
func TestTrapezoidExactOnLinear(t *testing.T) {
	f := func(x float64) []float64 { return []float64{2*x + 1} }

	for _, iv := range [][2]float64{{0, 1}, {-3, 5}, {1e3, 1e3 + 2}} {
		a, b := iv[0], iv[1]
		exact := (b*b + b) - (a*a + a) // ∫ (2x+1) = x² + x

		est, errEst := Trapezoid(f, a, b, Norm2)

		if math.Abs(est[0]-exact) > 1e-9*math.Abs(exact) {
			t.Errorf("[%g,%g]: estimate %v, want %v", a, b, est[0], exact)
		}
		if errEst > 1e-10 {
			t.Errorf("[%g,%g]: linear integrand reported error %g, want machine noise", a, b, errEst)
		}
	}

	t.Logf("✓ Linear integrands are exact under the trapezoid pair")
}

// TestTrapezoidEstimateIsSimpson verifies the returned estimate is the
// higher-order (Simpson) value: exact on quadratics, where the trapezoid
// member of the pair is not.
func TestTrapezoidEstimateIsSimpson(t *testing.T) {
	f := func(x float64) []float64 { return []float64{x * x} }

	est, errEst := Trapezoid(f, 0, 3, Norm2)

	if math.Abs(est[0]-9) > 1e-12 {
		t.Errorf("∫₀³ x² = %v, want 9 (Simpson is exact on quadratics)", est[0])
	}
	if errEst == 0 {
		t.Error("Quadratic integrand should report nonzero error (pair disagrees)")
	}

	t.Logf("✓ Estimate %.15f with reported error %g", est[0], errEst)
}

// TestNaNPropagates verifies a non-finite integrand value surfaces as a
// non-finite result instead of being clamped or dropped.
func TestNaNPropagates(t *testing.T) {
	f := func(x float64) []float64 { return []float64{math.Log(x)} } // NaN for x < 0

	est, errEst := GaussKronrod21(f, -1, 1, Norm2)

	if !math.IsNaN(est[0]) {
		t.Errorf("Estimate %v should be NaN when the integrand is undefined on nodes", est[0])
	}
	if !math.IsNaN(errEst) {
		t.Errorf("Error %v should be NaN when the estimate is NaN", errEst)
	}

	t.Logf("✓ Non-finite values propagate: est=%v err=%v", est[0], errEst)
}
