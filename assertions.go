package quadvec

import (
	"errors"
	"math"
	"testing"
)

// AssertionConfig contains thresholds for integration-property assertions.
type AssertionConfig struct {
	// MachinePrecision is the bound used when a rule should be exact
	// (polynomial degree within the rule's exactness order).
	MachinePrecision float64
}

// DefaultAssertionConfig returns conservative thresholds.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		MachinePrecision: 1e-13, // exactness up to accumulated rounding
	}
}

// AssertConverged verifies a QuadVec call terminated normally with a
// reported error inside the requested tolerance.
//
// Contract property:
//
//	err == nil ⇒ errEst <= tol (loop invariant of the adaptive integrator)
func AssertConverged(t *testing.T, errEst float64, err error, tol float64) {
	t.Helper()

	if err != nil {
		t.Fatalf("Integration failed: %v", err)
	}

	if !(errEst <= tol) {
		t.Errorf("Reported error %g exceeds tolerance %g\n"+
			"The adaptive loop returned without meeting its own invariant.",
			errEst, tol)
		return
	}

	t.Logf("✓ Converged: reported error %g <= tol %g", errEst, tol)
}

// AssertMatchesExact verifies an estimate agrees with a known exact value
// within bound, measured through norm.
func AssertMatchesExact(t *testing.T, est, exact []float64, bound float64, norm Norm) {
	t.Helper()

	if len(est) != len(exact) {
		t.Fatalf("Dimension mismatch: estimate has %d components, exact has %d",
			len(est), len(exact))
	}

	diff := make([]float64, len(est))
	for i := range diff {
		diff[i] = est[i] - exact[i]
	}

	dist := norm(diff)
	if dist > bound {
		t.Errorf("Estimate off by %g (max: %g)\n  got:  %v\n  want: %v",
			dist, bound, est, exact)
		return
	}

	t.Logf("✓ Matches exact value: ‖est − exact‖ = %g (bound: %g)", dist, bound)
}

// AssertRuleExact verifies a fixed-node rule reproduces a known integral to
// machine precision, the expected behavior when the integrand is a
// polynomial within the rule's exactness order.
func AssertRuleExact(t *testing.T, rule Rule, f Integrand, a, b float64, exact []float64, cfg AssertionConfig) {
	t.Helper()

	est, errEst := rule(f, a, b, Norm2)
	AssertMatchesExact(t, est, exact, cfg.MachinePrecision, Norm2)

	t.Logf("  rule-reported error: %g", errEst)
}

// AssertNotConverged verifies a call failed with the convergence guard and
// that the reported error was not understated to pretend success.
func AssertNotConverged(t *testing.T, errEst float64, err error, tol float64) {
	t.Helper()

	if !errors.Is(err, ErrNotConverged) {
		t.Fatalf("Expected ErrNotConverged, got: %v", err)
	}

	if errEst <= tol && !math.IsNaN(errEst) {
		t.Errorf("Guard fired but reported error %g <= tol %g (understated)", errEst, tol)
		return
	}

	t.Logf("✓ Guard fired honestly: reported error %g > tol %g", errEst, tol)
}

// PrintConvergence outputs a cost-profile sweep to the test log.
func PrintConvergence(t *testing.T, rows []CostProfile) {
	t.Helper()

	t.Logf("\n=== Convergence Profile ===")
	t.Logf("  Tol         Evals   Reported Err")
	t.Logf("  ----------  ------  ------------")
	for _, row := range rows {
		t.Logf("  %-10.2g  %-6d  %12.4g", row.Tol, row.Evals, row.Err)
	}

	if len(rows) >= 2 {
		first, last := rows[0], rows[len(rows)-1]
		t.Logf("\n%gx tighter tolerance cost %.1fx the evaluations",
			first.Tol/last.Tol, float64(last.Evals)/float64(first.Evals))
	}
}
