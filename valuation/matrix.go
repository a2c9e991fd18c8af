// SPDX-License-Identifier: MIT

package valuation

import (
	"fmt"
	"math"
)

// Matrix is an immutable n×m table of agent valuations for goods.
// r is the agent count, c the good count, data holds r*c values row-major.
type Matrix struct {
	r, c int
	data []float64
}

// New validates rows and copies them into a fresh Matrix.
// Stage 1 (Shape): at least one agent, at least one good, all rows equal length.
// Stage 2 (Values): every cell finite and ≥ 0.
// Stage 3 (Finalize): copy into flat storage; rows is not retained.
// Complexity: O(n·m) time and memory.
func New(rows [][]float64) (*Matrix, error) {
	if err := validateShape(rows); err != nil {
		return nil, err
	}
	if err := validateValues(rows); err != nil {
		return nil, err
	}

	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Matrix{r: r, c: c, data: data}, nil
}

// MustNew is like New but panics on invalid input. Intended for fixtures and
// package-level example data only.
func MustNew(rows [][]float64) *Matrix {
	m, err := New(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Agents returns n, the number of agents (rows).
func (m *Matrix) Agents() int { return m.r }

// Goods returns m, the number of goods (columns).
func (m *Matrix) Goods() int { return m.c }

// At returns agent i's valuation of good j.
// Indices are not range-checked beyond the slice bounds: callers iterate
// 0..Agents()-1 and 0..Goods()-1.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.c+j]
}

// Row returns a copy of agent i's valuations.
func (m *Matrix) Row(i int) []float64 {
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// Rows returns a deep copy of the matrix as a slice of rows.
func (m *Matrix) Rows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = m.Row(i)
	}

	return out
}

// Max returns the largest valuation in the matrix.
func (m *Matrix) Max() float64 {
	best := m.data[0]
	for _, v := range m.data[1:] {
		if v > best {
			best = v
		}
	}

	return best
}

// String renders the matrix one agent per line.
func (m *Matrix) String() string {
	return fmt.Sprint(m.Rows())
}

// validateShape checks non-emptiness and rectangularity.
func validateShape(rows [][]float64) error {
	if len(rows) == 0 {
		return fmt.Errorf("valuation: no agents: %w", ErrEmpty)
	}
	c := len(rows[0])
	if c == 0 {
		return fmt.Errorf("valuation: agent 0 has no goods: %w", ErrEmpty)
	}
	for i, row := range rows {
		if len(row) != c {
			return fmt.Errorf("valuation: agent %d has %d goods, agent 0 has %d: %w",
				i, len(row), c, ErrRagged)
		}
	}

	return nil
}

// validateValues rejects NaN/Inf before sign so NaN is never reported as negative.
func validateValues(rows [][]float64) error {
	for i, row := range rows {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("valuation: agent %d good %d = %v: %w", i, j, v, ErrNaNInf)
			}
		}
	}
	for i, row := range rows {
		for j, v := range row {
			if v < 0 {
				return fmt.Errorf("valuation: agent %d good %d = %g: %w", i, j, v, ErrNegative)
			}
		}
	}

	return nil
}
