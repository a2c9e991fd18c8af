// SPDX-License-Identifier: MIT
package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rentdiv/allocation"
	"github.com/katalvlaran/rentdiv/valuation"
)

func program(t *testing.T, rows [][]float64, rent float64, pairs ...allocation.Pair) (*valuation.Matrix, *Program) {
	t.Helper()
	v := valuation.MustNew(rows)
	prog, err := BuildProgram(v, allocation.Allocation{Pairs: pairs}, rent)
	require.NoError(t, err)

	return v, prog
}

func TestCertify_LeastPrices(t *testing.T) {
	v, prog := program(t, [][]float64{{150, 0}, {140, 10}}, 100,
		allocation.Pair{Agent: 0, Good: 0}, allocation.Pair{Agent: 1, Good: 1})

	c := certify(v, prog, 100, 1e-9)
	assert.False(t, c.Feasible)
	assert.Equal(t, []float64{130, 0}, c.Least)
	assert.Equal(t, 130.0, c.MinRent)

	c = certify(v, prog, 150, 1e-9)
	require.True(t, c.Feasible)
	assert.Equal(t, []float64{140, 10}, c.witness(150))
}

func TestCertify_Cycle(t *testing.T) {
	v, prog := program(t, [][]float64{{10, 0}, {0, 10}}, 5,
		allocation.Pair{Agent: 0, Good: 1}, allocation.Pair{Agent: 1, Good: 0})

	c := certify(v, prog, 1e9, 1e-9)
	assert.False(t, c.Feasible)
	assert.Nil(t, c.Least)
}

func TestCertify_NoEnvyRows(t *testing.T) {
	v, prog := program(t, [][]float64{{3, 4, 5}}, 9)

	c := certify(v, prog, 9, 1e-9)
	require.True(t, c.Feasible)
	assert.Equal(t, []float64{3, 3, 3}, c.witness(9))
}
