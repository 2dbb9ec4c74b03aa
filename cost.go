package quadvec

import "fmt"

// EvalCounter counts integrand evaluations through a wrapping Integrand.
// It is plain state for the package's single-threaded execution model; wrap
// a fresh counter per integration call.
type EvalCounter struct {
	n int
}

// Wrap returns an Integrand that forwards to f and counts each call.
func (c *EvalCounter) Wrap(f Integrand) Integrand {
	return func(x float64) []float64 {
		c.n++
		return f(x)
	}
}

// Evals returns the number of evaluations recorded so far.
func (c *EvalCounter) Evals() int {
	return c.n
}

// CostProfile is one row of a convergence sweep: the tolerance requested,
// the integrand evaluations spent reaching it, and what was achieved.
type CostProfile struct {
	Tol      float64   // Requested absolute tolerance
	Evals    int       // Integrand evaluations consumed
	Err      float64   // Reported error estimate (<= Tol on success)
	Estimate []float64 // The integral estimate at this tolerance
}

// ProfileConfig controls a convergence sweep.
type ProfileConfig struct {
	Tols []float64 // Tolerances to sweep, typically loosest first
	Quad Config    // Integration config used at every tolerance
}

// DefaultProfileConfig sweeps four decades of tolerance with the default
// integration config.
func DefaultProfileConfig() ProfileConfig {
	return ProfileConfig{
		Tols: []float64{1e-2, 1e-4, 1e-6, 1e-8},
		Quad: DefaultConfig(),
	}
}

// ProfileConvergence integrates f over [a, b] once per tolerance and reports
// the evaluation cost of each. Useful for answering "what does another two
// digits of accuracy cost on this integrand?" before committing to a
// tolerance in production.
func ProfileConvergence(f Integrand, a, b float64, cfg ProfileConfig) ([]CostProfile, error) {
	rows := make([]CostProfile, 0, len(cfg.Tols))

	for _, tol := range cfg.Tols {
		var counter EvalCounter

		est, errEst, err := QuadVec(counter.Wrap(f), a, b, tol, cfg.Quad)
		if err != nil {
			return rows, fmt.Errorf("failed at tol=%g: %w", tol, err)
		}

		rows = append(rows, CostProfile{
			Tol:      tol,
			Evals:    counter.Evals(),
			Err:      errEst,
			Estimate: est,
		})
	}

	return rows, nil
}
