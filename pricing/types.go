// SPDX-License-Identifier: MIT

package pricing

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrNilValuation is returned when a nil *valuation.Matrix is supplied.
	ErrNilValuation = errors.New("pricing: nil valuation matrix")

	// ErrBadRent is returned for a negative, NaN or infinite rent.
	ErrBadRent = errors.New("pricing: rent must be finite and non-negative")

	// ErrDimensionMismatch is returned when an allocation or price vector does
	// not fit the valuation matrix (index out of range, repeated agent or good,
	// wrong vector length).
	ErrDimensionMismatch = errors.New("pricing: dimension mismatch")

	// ErrSolver wraps any LP failure other than a clean infeasibility proof.
	ErrSolver = errors.New("pricing: solver failure")

	// ErrBudget is returned by Verify when prices do not sum to the rent.
	ErrBudget = errors.New("pricing: prices do not sum to rent")

	// ErrNegativePrice is returned by Verify for a price below −tolerance.
	ErrNegativePrice = errors.New("pricing: negative price")
)

// EnvyError reports an agent that prefers another good at current prices.
// Surplus is how much more net utility Other gives than Own.
type EnvyError struct {
	Agent, Own, Other int
	Surplus           float64
}

func (e *EnvyError) Error() string {
	return fmt.Sprintf("pricing: agent %d envies good %d over own good %d by %g",
		e.Agent, e.Other, e.Own, e.Surplus)
}

// Status classifies a completed solve.
type Status int

const (
	// StatusFeasible means Prices holds a verified envy-free vector.
	StatusFeasible Status = iota
	// StatusInfeasible means no nonnegative envy-free vector sums to the rent.
	StatusInfeasible
)

func (s Status) String() string {
	switch s {
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the result of Solve. Prices is nil unless Status is StatusFeasible.
type Outcome struct {
	Status Status
	Prices []float64
}

// Feasible reports whether a price vector was found.
func (o Outcome) Feasible() bool { return o.Status == StatusFeasible }

// Mode selects which constraints Solve enforces.
type Mode int

const (
	// ModeEnvyFree enforces budget, nonnegativity and every envy row.
	ModeEnvyFree Mode = iota
	// ModePoorTenants assumes every tenant prefers a free room to a paid one
	// and keeps only the budget and nonnegativity. Solve then returns the
	// even split rent/m, the centre of the remaining price simplex. The
	// prices are not checked for envy.
	ModePoorTenants
)

func (m Mode) String() string {
	switch m {
	case ModeEnvyFree:
		return "envy-free"
	case ModePoorTenants:
		return "poor-tenants"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Options configures Solve.
//   - Logger:     diagnostic sink; nil keeps the package silent.
//   - Mode:       constraint set, ModeEnvyFree unless set.
//   - Tolerance:  absolute slack allowed by Verify, scaled by 1+max(rent, max valuation).
//   - SimplexTol: reduced-cost tolerance handed to lp.Simplex.
type Options struct {
	Logger     *slog.Logger
	Mode       Mode
	Tolerance  float64
	SimplexTol float64
}

const (
	defaultTolerance  = 1e-9
	defaultSimplexTol = 1e-10
)

// DefaultOptions returns silent options with production tolerances.
func DefaultOptions() Options {
	return Options{Tolerance: defaultTolerance, SimplexTol: defaultSimplexTol}
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}

func (o Options) tolerance() float64 {
	if o.Tolerance <= 0 {
		return defaultTolerance
	}

	return o.Tolerance
}

func (o Options) simplexTol() float64 {
	if o.SimplexTol <= 0 {
		return defaultSimplexTol
	}

	return o.SimplexTol
}
