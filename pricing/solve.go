// SPDX-License-Identifier: MIT

package pricing

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/rentdiv/allocation"
	"github.com/katalvlaran/rentdiv/valuation"
)

// Solve searches for an envy-free price vector for allocation a at total rent.
//
// Stage 1 (Program): BuildProgram validates inputs and lays out the LP.
// Stage 2 (Simplex): the program is solved with b divided by
// s = 1+max(rent, max valuation), and the result multiplied back by s.
// Stage 3 (Check): a simplex answer is accepted only if Verify passes. A
// simplex failure of any kind, including a claim of infeasibility, is
// settled by the exact difference-constraint certificate instead, so
// StatusInfeasible is only reported when the certificate proves it.
//
// Remaining failures wrap ErrSolver. Prices within tolerance below zero are
// snapped to 0; no other rounding is applied.
//
// Under ModePoorTenants only budget and nonnegativity apply and the even
// split is returned without running the LP.
func Solve(v *valuation.Matrix, a allocation.Allocation, rent float64, opts Options) (Outcome, error) {
	log := opts.logger()

	prog, err := BuildProgram(v, a, rent)
	if err != nil {
		return Outcome{}, err
	}
	if opts.Mode == ModePoorTenants {
		return evenSplit(v, rent, opts)
	}
	log.Debug("envy-free program built",
		"goods", prog.Goods, "envy_rows", len(prog.Rows), "rent", rent)

	scale := 1 + math.Max(rent, v.Max())
	tol := opts.tolerance()

	prices, err := simplexPrices(prog, scale, opts.simplexTol(), tol)
	if err == nil {
		if verr := Verify(v, a, rent, prices, tol); verr != nil {
			err = fmt.Errorf("candidate failed verification: %w", verr)
		}
	}
	if err == nil {
		log.Info("envy-free prices found", "prices", prices)

		return Outcome{Status: StatusFeasible, Prices: prices}, nil
	}
	log.Debug("simplex did not settle the program, using certificate", "err", err)

	cert := certify(v, prog, rent, tol*scale)
	if !cert.Feasible {
		log.Info("no envy-free prices for allocation",
			"rent", rent, "pairs", len(a.Pairs), "min_rent", cert.MinRent)

		return Outcome{Status: StatusInfeasible}, nil
	}

	prices = cert.witness(rent)
	if verr := Verify(v, a, rent, prices, tol); verr != nil {
		log.Error("certificate witness rejected", "prices", prices, "err", verr)

		return Outcome{}, fmt.Errorf("%w: %w; witness failed verification: %w", ErrSolver, err, verr)
	}
	log.Info("envy-free prices found from certificate", "prices", prices)

	return Outcome{Status: StatusFeasible, Prices: prices}, nil
}

// simplexPrices runs lp.Simplex on prog with b scaled down by scale and
// returns the price block scaled back up.
func simplexPrices(prog *Program, scale, simplexTol, tol float64) ([]float64, error) {
	b := make([]float64, len(prog.B))
	floats.ScaleTo(b, 1/scale, prog.B)

	_, x, err := lp.Simplex(prog.C, prog.A, b, simplexTol, nil)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return nil, fmt.Errorf("simplex reports infeasible: %w", err)
		}

		return nil, err
	}

	prices := make([]float64, prog.Goods)
	floats.ScaleTo(prices, scale, x[:prog.Goods])
	for j, p := range prices {
		if p < 0 && p >= -tol*scale {
			prices[j] = 0
		}
	}

	return prices, nil
}

// evenSplit charges every good rent/m.
func evenSplit(v *valuation.Matrix, rent float64, opts Options) (Outcome, error) {
	m := v.Goods()
	prices := make([]float64, m)
	for j := range prices {
		prices[j] = rent / float64(m)
	}
	if err := checkBudget(v, rent, prices, opts.tolerance()); err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", ErrSolver, err)
	}
	opts.logger().Info("poor-tenants prices", "prices", prices)

	return Outcome{Status: StatusFeasible, Prices: prices}, nil
}
