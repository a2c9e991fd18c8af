// SPDX-License-Identifier: MIT
package allocation_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rentdiv/allocation"
	"github.com/katalvlaran/rentdiv/valuation"
)

var (
	a0, a1, a2, a3 = allocation.Agent(0), allocation.Agent(1), allocation.Agent(2), allocation.Agent(3)
	g0, g1, g2, g3 = allocation.Good(0), allocation.Good(1), allocation.Good(2), allocation.Good(3)
)

func square(n int) *valuation.Matrix {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}

	return valuation.MustNew(rows)
}

// TestComplete_OrientationIndependent accepts pairs in either direction.
func TestComplete_OrientationIndependent(t *testing.T) {
	in := []allocation.LabelPair{{A: g2, B: a0}, {A: a1, B: g0}, {A: g1, B: a2}}
	got := allocation.Complete(in, square(3), allocation.DefaultOptions())
	assert.Equal(t, pairs(0, 2, 1, 0, 2, 1), got.Pairs)
	assert.True(t, got.IsComplete())
}

// TestComplete_FillsMissingAgent mirrors a matcher that skipped a zero-weight edge.
func TestComplete_FillsMissingAgent(t *testing.T) {
	in := []allocation.LabelPair{{A: a2, B: g2}, {A: g0, B: a0}, {A: a1, B: g1}}
	got := allocation.Complete(in, square(4), allocation.DefaultOptions())
	assert.Equal(t, pairs(0, 0, 1, 1, 2, 2, 3, 3), got.Pairs)
}

// TestComplete_AscendingSweep gives single agents the lowest free goods in order.
func TestComplete_AscendingSweep(t *testing.T) {
	in := []allocation.LabelPair{{A: a1, B: g0}, {A: g2, B: a3}}
	got := allocation.Complete(in, square(4), allocation.DefaultOptions())
	assert.Equal(t, pairs(0, 1, 1, 0, 2, 3, 3, 2), got.Pairs)
}

// TestComplete_EmptyMatching assigns the identity permutation.
func TestComplete_EmptyMatching(t *testing.T) {
	got := allocation.Complete(nil, square(3), allocation.DefaultOptions())
	assert.Equal(t, pairs(0, 0, 1, 1, 2, 2), got.Pairs)
}

// TestComplete_DropsMalformedPairs ignores same-side, out-of-range and
// conflicting pairs and still completes.
func TestComplete_DropsMalformedPairs(t *testing.T) {
	in := []allocation.LabelPair{
		{A: a0, B: a1},                  // two agents
		{A: g0, B: g1},                  // two goods
		{A: allocation.Agent(9), B: g0}, // no such agent
		{A: a0, B: g2},
		{A: a0, B: g1}, // agent 0 again
		{A: a1, B: g2}, // good 2 again
	}
	got := allocation.Complete(in, square(3), allocation.DefaultOptions())
	assert.Equal(t, pairs(0, 2, 1, 0, 2, 1), got.Pairs)
}

// TestComplete_RunsOutOfGoods reports the agents left without a good.
func TestComplete_RunsOutOfGoods(t *testing.T) {
	v := valuation.MustNew([][]float64{{1, 1}, {1, 1}, {1, 1}, {1, 1}})
	in := []allocation.LabelPair{{A: a2, B: g1}}
	got := allocation.Complete(in, v, allocation.DefaultOptions())
	assert.Equal(t, pairs(0, 0, 2, 1), got.Pairs)
	assert.Equal(t, []int{1, 3}, got.Unassigned)

	g, ok := got.GoodOf(2)
	assert.True(t, ok)
	assert.Equal(t, 1, g)
	_, ok = got.GoodOf(3)
	assert.False(t, ok)
}

// TestComplete_NilValuation returns an empty allocation and logs the cause.
func TestComplete_NilValuation(t *testing.T) {
	var buf bytes.Buffer
	opts := allocation.DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, nil))

	var got allocation.Allocation
	assert.NotPanics(t, func() {
		got = allocation.Complete([]allocation.LabelPair{{A: a0, B: g0}}, nil, opts)
	})
	assert.Empty(t, got.Pairs)
	assert.Empty(t, got.Unassigned)
	assert.Contains(t, buf.String(), "nil valuation matrix")
}

// TestLabels_String renders tagged identities.
func TestLabels_String(t *testing.T) {
	assert.Equal(t, "agent 3", a3.String())
	assert.Equal(t, "good 3", g3.String())
	assert.Equal(t, "Side(7)", allocation.Side(7).String())
	a := allocation.Allocation{Pairs: pairs(0, 1), Unassigned: []int{1}}
	assert.Equal(t, "[agent 0 → good 1] unassigned=[1]", a.String())
}
