// SPDX-License-Identifier: MIT

package pricing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/rentdiv/allocation"
	"github.com/katalvlaran/rentdiv/valuation"
)

// Verify checks prices against the budget, nonnegativity and envy-freeness
// constraints for allocation a. tol is absolute and is scaled by
// 1+max(rent, largest valuation).
//
// The first violation found is returned: a wrapped ErrBudget or
// ErrNegativePrice, or an *EnvyError.
func Verify(v *valuation.Matrix, a allocation.Allocation, rent float64, prices []float64, tol float64) error {
	if v == nil {
		return ErrNilValuation
	}
	if len(prices) != v.Goods() {
		return fmt.Errorf("%w: %d prices for %d goods", ErrDimensionMismatch, len(prices), v.Goods())
	}
	if err := checkAllocation(v, a); err != nil {
		return err
	}
	if err := checkBudget(v, rent, prices, tol); err != nil {
		return err
	}
	eps := tol * (1 + math.Max(math.Abs(rent), v.Max()))

	for _, pr := range a.Pairs {
		own := v.At(pr.Agent, pr.Good) - prices[pr.Good]
		for j := range prices {
			if j == pr.Good {
				continue
			}
			if surplus := v.At(pr.Agent, j) - prices[j] - own; surplus > eps {
				return &EnvyError{Agent: pr.Agent, Own: pr.Good, Other: j, Surplus: surplus}
			}
		}
	}

	return nil
}

// checkBudget verifies Σ prices = rent and prices ≥ 0 within the scaled tolerance.
func checkBudget(v *valuation.Matrix, rent float64, prices []float64, tol float64) error {
	eps := tol * (1 + math.Max(math.Abs(rent), v.Max()))
	if sum := floats.Sum(prices); math.Abs(sum-rent) > eps {
		return fmt.Errorf("%w: sum %g, rent %g", ErrBudget, sum, rent)
	}
	for j, p := range prices {
		if p < -eps {
			return fmt.Errorf("%w: good %d priced %g", ErrNegativePrice, j, p)
		}
	}

	return nil
}

// Utilities returns v[i][g] − prices[g] for each pair of a, in pair order.
func Utilities(v *valuation.Matrix, a allocation.Allocation, prices []float64) []float64 {
	out := make([]float64, len(a.Pairs))
	for k, p := range a.Pairs {
		out[k] = v.At(p.Agent, p.Good) - prices[p.Good]
	}

	return out
}
