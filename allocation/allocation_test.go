// SPDX-License-Identifier: MIT
package allocation_test

import (
	"bytes"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rentdiv/allocation"
	"github.com/katalvlaran/rentdiv/valuation"
)

func pairs(p ...int) []allocation.Pair {
	out := make([]allocation.Pair, 0, len(p)/2)
	for i := 0; i+1 < len(p); i += 2 {
		out = append(out, allocation.Pair{Agent: p[i], Good: p[i+1]})
	}

	return out
}

// bestWelfare enumerates every partial injective assignment agent → good.
func bestWelfare(rows [][]float64) float64 {
	n, m := len(rows), len(rows[0])
	used := make([]bool, m)
	best := 0.0
	var rec func(agent int, total float64)
	rec = func(agent int, total float64) {
		if agent == n {
			if total > best {
				best = total
			}

			return
		}
		rec(agent+1, total)
		for j := 0; j < m; j++ {
			if !used[j] {
				used[j] = true
				rec(agent+1, total+rows[agent][j])
				used[j] = false
			}
		}
	}
	rec(0, 0)

	return best
}

// requireWellFormed asserts the sort / no-repeat invariants of an Allocation.
func requireWellFormed(t *testing.T, a allocation.Allocation, n, m int) {
	t.Helper()
	seenAgent := make(map[int]bool)
	seenGood := make(map[int]bool)
	for i, p := range a.Pairs {
		if i > 0 {
			require.Less(t, a.Pairs[i-1].Agent, p.Agent, "pairs must be sorted by agent")
		}
		require.False(t, seenAgent[p.Agent], "agent %d repeated", p.Agent)
		require.False(t, seenGood[p.Good], "good %d double-booked", p.Good)
		require.GreaterOrEqual(t, p.Good, 0)
		require.Less(t, p.Good, m)
		seenAgent[p.Agent], seenGood[p.Good] = true, true
	}
	for _, u := range a.Unassigned {
		require.False(t, seenAgent[u], "unassigned agent %d also allocated", u)
		seenAgent[u] = true
	}
	require.Len(t, seenAgent, n, "every agent is either allocated or unassigned")
	if m >= n {
		require.True(t, a.IsComplete())
		require.Len(t, a.Pairs, n)
	} else {
		require.Len(t, a.Pairs, m)
		require.Len(t, a.Unassigned, n-m)
	}
}

// TestCompute_Scenarios pins the welfare-maximizing allocations of the
// reference scenarios.
func TestCompute_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
		want []allocation.Pair
	}{
		{"three rooms spread", [][]float64{{20, 30, 40}, {40, 30, 20}, {30, 30, 30}}, pairs(0, 2, 1, 0, 2, 1)},
		{"three rooms tied welfare", [][]float64{{25, 40, 35}, {40, 60, 35}, {20, 40, 25}}, pairs(0, 2, 1, 1, 2, 0)},
		{"two rooms", [][]float64{{150, 0}, {140, 10}}, pairs(0, 0, 1, 1)},
		{"zero-valued fourth room", [][]float64{{36, 34, 30, 0}, {31, 36, 33, 0}, {34, 30, 36, 0}, {32, 33, 35, 0}}, pairs(0, 0, 1, 1, 2, 2, 3, 3)},
		{"single agent many goods", [][]float64{{1, 5, 3}}, pairs(0, 1)},
		{"single good", [][]float64{{7}}, pairs(0, 0)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			v := valuation.MustNew(tc.rows)
			a, err := allocation.Compute(v, allocation.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, tc.want, a.Pairs)
			assert.Empty(t, a.Unassigned)
			assert.InDelta(t, bestWelfare(tc.rows), a.Welfare(v), 1e-9)
		})
	}
}

// TestCompute_MoreAgentsThanGoods leaves the lowest-value agent out and logs it.
func TestCompute_MoreAgentsThanGoods(t *testing.T) {
	var buf bytes.Buffer
	opts := allocation.DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	v := valuation.MustNew([][]float64{{5, 1}, {4, 3}, {9, 9}})
	a, err := allocation.Compute(v, opts)
	require.NoError(t, err)

	assert.Equal(t, pairs(0, 0, 2, 1), a.Pairs)
	assert.Equal(t, []int{1}, a.Unassigned)
	assert.False(t, a.IsComplete())
	assert.Contains(t, buf.String(), "agent could not be assigned a good")
	assert.Contains(t, buf.String(), "agent=1")
}

// TestCompute_SilentByDefault verifies nothing is written without a logger.
func TestCompute_SilentByDefault(t *testing.T) {
	v := valuation.MustNew([][]float64{{1}, {2}})
	a, err := allocation.Compute(v, allocation.Options{})
	require.NoError(t, err)
	assert.Len(t, a.Unassigned, 1)
}

// TestCompute_NilValuation returns the sentinel instead of panicking.
func TestCompute_NilValuation(t *testing.T) {
	_, err := allocation.Compute(nil, allocation.DefaultOptions())
	require.ErrorIs(t, err, allocation.ErrNilValuation)
	_, err = allocation.WelfareMatching(nil, allocation.DefaultOptions())
	require.ErrorIs(t, err, allocation.ErrNilValuation)
}

// TestCompute_RandomProperties checks permutation, no double booking,
// optimal welfare and idempotence on random matrices.
func TestCompute_RandomProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 150; iter++ {
		n, m := 1+rng.Intn(6), 1+rng.Intn(6)
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, m)
			for j := range rows[i] {
				// Small integer range forces plenty of ties and zeros.
				rows[i][j] = float64(rng.Intn(6))
			}
		}
		v := valuation.MustNew(rows)

		a, err := allocation.Compute(v, allocation.DefaultOptions())
		require.NoError(t, err)
		requireWellFormed(t, a, n, m)
		require.InDelta(t, bestWelfare(rows), a.Welfare(v), 1e-9, "rows=%v", rows)

		again, err := allocation.Compute(v, allocation.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, a, again, "allocation must be reproducible")
	}
}

// TestCompute_UniformValuations yields a permutation when every good is
// worth the same to everyone.
func TestCompute_UniformValuations(t *testing.T) {
	for n := 1; n <= 5; n++ {
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
			for j := range rows[i] {
				rows[i][j] = 10
			}
		}
		a, err := allocation.Compute(valuation.MustNew(rows), allocation.DefaultOptions())
		require.NoError(t, err)
		requireWellFormed(t, a, n, n)
	}
}

// TestWelfareMatching_TaggedPairs checks every pair joins one agent and one good.
func TestWelfareMatching_TaggedPairs(t *testing.T) {
	v := valuation.MustNew([][]float64{{20, 30, 40}, {40, 30, 20}, {30, 30, 30}})
	got, err := allocation.WelfareMatching(v, allocation.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, lp := range got {
		assert.NotEqual(t, lp.A.Side, lp.B.Side)
	}
}
