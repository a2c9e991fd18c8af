// SPDX-License-Identifier: MIT

package rentdiv

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/rentdiv/allocation"
	"github.com/katalvlaran/rentdiv/matching"
	"github.com/katalvlaran/rentdiv/pricing"
	"github.com/katalvlaran/rentdiv/valuation"
)

// ErrIncompleteAllocation is returned under PolicyStrict when some agent
// receives no good (more agents than goods).
var ErrIncompleteAllocation = errors.New("rentdiv: allocation leaves agents without a good")

// IncompletePolicy decides what happens when agents outnumber goods.
type IncompletePolicy int

const (
	// PolicyBestEffort returns the partial allocation and logs a warning.
	PolicyBestEffort IncompletePolicy = iota
	// PolicyStrict returns the partial allocation together with
	// ErrIncompleteAllocation, and refuses to price it.
	PolicyStrict
)

func (p IncompletePolicy) String() string {
	switch p {
	case PolicyBestEffort:
		return "best-effort"
	case PolicyStrict:
		return "strict"
	default:
		return fmt.Sprintf("IncompletePolicy(%d)", int(p))
	}
}

// Options configures the whole pipeline.
//   - Policy:         handling of agents left without a good.
//   - Logger:         shared by every stage; nil keeps the library silent.
//   - MaxCardinality: forwarded to the matcher; prefer larger matchings.
//   - Mode:           pricing constraint set; pricing.ModePoorTenants drops the envy rows.
//   - Tolerance:      verification tolerance for prices (0 → package default).
type Options struct {
	Policy         IncompletePolicy
	Logger         *slog.Logger
	MaxCardinality bool
	Mode           pricing.Mode
	Tolerance      float64
}

// DefaultOptions returns best-effort, silent options.
func DefaultOptions() Options {
	return Options{Policy: PolicyBestEffort, Tolerance: pricing.DefaultOptions().Tolerance}
}

func (o Options) allocationOptions() allocation.Options {
	return allocation.Options{
		Logger:   o.Logger,
		Matching: matching.Options{MaxCardinality: o.MaxCardinality},
	}
}

func (o Options) pricingOptions() pricing.Options {
	po := pricing.DefaultOptions()
	po.Logger = o.Logger
	po.Mode = o.Mode
	if o.Tolerance > 0 {
		po.Tolerance = o.Tolerance
	}

	return po
}

// Result bundles both steps of Divide.
type Result struct {
	Allocation allocation.Allocation
	Outcome    pricing.Outcome
	// Welfare is Σ v[i][good(i)] over the allocation.
	Welfare float64
}

// NewValuations validates rows into an immutable valuation matrix.
func NewValuations(rows [][]float64) (*valuation.Matrix, error) {
	return valuation.New(rows)
}

// ComputeAllocation returns a welfare-maximizing allocation sorted by agent.
// Under PolicyStrict an incomplete allocation is returned together with
// ErrIncompleteAllocation.
func ComputeAllocation(v *valuation.Matrix, opts Options) (allocation.Allocation, error) {
	a, err := allocation.Compute(v, opts.allocationOptions())
	if err != nil {
		return allocation.Allocation{}, err
	}
	if err = checkPolicy(a, opts); err != nil {
		return a, err
	}

	return a, nil
}

// ComputePrices finds envy-free prices for a at the given rent, or reports
// infeasibility through Outcome.Status.
func ComputePrices(v *valuation.Matrix, a allocation.Allocation, rent float64, opts Options) (pricing.Outcome, error) {
	if err := checkPolicy(a, opts); err != nil {
		return pricing.Outcome{}, err
	}

	return pricing.Solve(v, a, rent, opts.pricingOptions())
}

// Divide runs ComputeAllocation followed by ComputePrices.
// On an allocation error the partial Result carries the allocation.
func Divide(v *valuation.Matrix, rent float64, opts Options) (Result, error) {
	a, err := ComputeAllocation(v, opts)
	if err != nil {
		return Result{Allocation: a}, err
	}
	res := Result{Allocation: a, Welfare: a.Welfare(v)}

	res.Outcome, err = ComputePrices(v, a, rent, opts)
	if err != nil {
		return res, fmt.Errorf("rentdiv: pricing: %w", err)
	}

	return res, nil
}

func checkPolicy(a allocation.Allocation, opts Options) error {
	if opts.Policy == PolicyStrict && !a.IsComplete() {
		return fmt.Errorf("%w: agents %v", ErrIncompleteAllocation, a.Unassigned)
	}

	return nil
}
