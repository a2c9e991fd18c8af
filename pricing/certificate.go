// SPDX-License-Identifier: MIT

package pricing

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/rentdiv/valuation"
)

// certificate is the exact answer to the feasibility question, obtained
// without the simplex.
//
// Every envy row is a difference constraint p_other ≥ p_own − d. Starting
// from p = 0, Bellman–Ford relaxation yields the componentwise least
// nonnegative vector satisfying all rows, or finds a positive cycle (no
// vector satisfies them). Envy rows are invariant under adding a constant to
// every price, so the program is feasible exactly when Least exists and
// Σ Least ≤ rent.
type certificate struct {
	Least    []float64 // nil when the envy rows contain a cycle
	MinRent  float64   // Σ Least
	Feasible bool
}

// certify decides feasibility of prog at rent. eps absorbs rounding noise in
// relaxation and in the final rent comparison.
//
// Complexity: O(m·k) for m goods and k envy rows.
func certify(v *valuation.Matrix, prog *Program, rent, eps float64) certificate {
	m := prog.Goods
	p := make([]float64, m)

	for round := 0; ; round++ {
		changed := false
		for _, r := range prog.Rows {
			lb := p[r.Own] - (v.At(r.Agent, r.Own) - v.At(r.Agent, r.Other))
			if lb > p[r.Other]+eps {
				p[r.Other] = lb
				changed = true
			}
		}
		if !changed {
			break
		}
		// A longest path has at most m−1 edges; still improving after m
		// rounds means a cycle keeps raising prices.
		if round >= m {
			return certificate{}
		}
	}

	least := floats.Sum(p)

	return certificate{Least: p, MinRent: least, Feasible: least <= rent+eps}
}

// witness spreads the rent left over after Least evenly across all goods.
// Only meaningful when c.Feasible.
func (c certificate) witness(rent float64) []float64 {
	out := make([]float64, len(c.Least))
	extra := (rent - c.MinRent) / float64(len(out))
	for j, p := range c.Least {
		out[j] = p + extra
		if out[j] < 0 {
			out[j] = 0
		}
	}

	return out
}
