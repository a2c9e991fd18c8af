// SPDX-License-Identifier: MIT

package pricing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rentdiv/allocation"
	"github.com/katalvlaran/rentdiv/valuation"
)

// EnvyRow names the envy constraint held by one row of a Program:
// Agent, holding Own, must not prefer Other.
type EnvyRow struct {
	Agent, Own, Other int
}

// Program is the standard-form LP  minimize Cᵀx  s.t.  A·x = B, x ≥ 0.
// Columns 0..Goods-1 are prices; column Goods+k is the slack of Rows[k].
// Row 0 of A is the budget; row k+1 is Rows[k].
type Program struct {
	C     []float64
	A     *mat.Dense
	B     []float64
	Goods int
	Rows  []EnvyRow
}

// BuildProgram validates its inputs and lays out the envy-free LP for
// allocation a at total rent.
func BuildProgram(v *valuation.Matrix, a allocation.Allocation, rent float64) (*Program, error) {
	if v == nil {
		return nil, ErrNilValuation
	}
	if math.IsNaN(rent) || math.IsInf(rent, 0) || rent < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrBadRent, rent)
	}
	if err := checkAllocation(v, a); err != nil {
		return nil, err
	}

	m := v.Goods()
	rows := make([]EnvyRow, 0, len(a.Pairs)*(m-1))
	for _, p := range a.Pairs {
		for j := 0; j < m; j++ {
			if j != p.Good {
				rows = append(rows, EnvyRow{Agent: p.Agent, Own: p.Good, Other: j})
			}
		}
	}

	k := len(rows)
	A := mat.NewDense(k+1, m+k, nil)
	b := make([]float64, k+1)

	for j := 0; j < m; j++ {
		A.Set(0, j, 1)
	}
	b[0] = rent

	// p_own − p_other + s = v[i][own] − v[i][other]
	for r, row := range rows {
		A.Set(r+1, row.Own, 1)
		A.Set(r+1, row.Other, -1)
		A.Set(r+1, m+r, 1)
		b[r+1] = v.At(row.Agent, row.Own) - v.At(row.Agent, row.Other)
	}

	return &Program{
		C:     make([]float64, m+k),
		A:     A,
		B:     b,
		Goods: m,
		Rows:  rows,
	}, nil
}

func checkAllocation(v *valuation.Matrix, a allocation.Allocation) error {
	n, m := v.Agents(), v.Goods()
	agentSeen := make([]bool, n)
	goodSeen := make([]bool, m)
	for _, p := range a.Pairs {
		if p.Agent < 0 || p.Agent >= n {
			return fmt.Errorf("%w: agent %d outside [0,%d)", ErrDimensionMismatch, p.Agent, n)
		}
		if p.Good < 0 || p.Good >= m {
			return fmt.Errorf("%w: good %d outside [0,%d)", ErrDimensionMismatch, p.Good, m)
		}
		if agentSeen[p.Agent] {
			return fmt.Errorf("%w: agent %d allocated twice", ErrDimensionMismatch, p.Agent)
		}
		if goodSeen[p.Good] {
			return fmt.Errorf("%w: good %d allocated twice", ErrDimensionMismatch, p.Good)
		}
		agentSeen[p.Agent], goodSeen[p.Good] = true, true
	}

	return nil
}
