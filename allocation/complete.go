// SPDX-License-Identifier: MIT

package allocation

import (
	"github.com/katalvlaran/rentdiv/valuation"
)

// Complete turns a (possibly partial, un-oriented) matching into a total,
// agent-sorted Allocation.
//
// Stage 1 (Normalize): orient each pair by its Side tags; pairs that do not
// join one agent with one good, point outside v, or reuse an agent or good
// already seen are dropped with a warning.
// Stage 2 (Gaps): collect agents 0..n-1 that received no good.
// Stage 3 (Fill): for each such agent in ascending order, assign the
// lowest-indexed good not yet claimed (claims made here count too). With
// no good left the agent is recorded in Unassigned.
// Stage 4 (Sort): emit pairs by ascending agent index.
//
// A nil v yields an empty Allocation and an error log.
//
// Complexity: O(len(pairs) + n + m).
func Complete(pairs []LabelPair, v *valuation.Matrix, opts Options) Allocation {
	log := opts.logger()
	if v == nil {
		log.Error("cannot complete allocation", "err", ErrNilValuation, "pairs", len(pairs))

		return Allocation{}
	}
	n, m := v.Agents(), v.Goods()

	goodOf := make([]int, n)
	for i := range goodOf {
		goodOf[i] = -1
	}
	claimed := make([]bool, m)

	for _, lp := range pairs {
		agent, good, ok := lp.orient()
		switch {
		case !ok:
			log.Warn("dropping pair without one agent and one good", "a", lp.A, "b", lp.B)
			continue
		case agent < 0 || agent >= n || good < 0 || good >= m:
			log.Warn("dropping out-of-range pair", "agent", agent, "good", good)
			continue
		case goodOf[agent] != -1 || claimed[good]:
			log.Warn("dropping conflicting pair", "agent", agent, "good", good)
			continue
		}
		goodOf[agent] = good
		claimed[good] = true
	}

	var unassigned []int
	next := 0 // every good below next is claimed
	for agent := 0; agent < n; agent++ {
		if goodOf[agent] != -1 {
			continue
		}
		for next < m && claimed[next] {
			next++
		}
		if next == m {
			log.Warn("agent could not be assigned a good", "agent", agent)
			unassigned = append(unassigned, agent)
			continue
		}
		goodOf[agent] = next
		claimed[next] = true
		log.Debug("agent assigned to leftover good", "agent", agent, "good", next)
	}

	out := Allocation{Pairs: make([]Pair, 0, n), Unassigned: unassigned}
	for agent, good := range goodOf {
		if good >= 0 {
			out.Pairs = append(out.Pairs, Pair{Agent: agent, Good: good})
		}
	}

	return out
}

// Compute runs WelfareMatching followed by Complete.
func Compute(v *valuation.Matrix, opts Options) (Allocation, error) {
	pairs, err := WelfareMatching(v, opts)
	if err != nil {
		return Allocation{}, err
	}
	a := Complete(pairs, v, opts)
	opts.logger().Info("allocation computed",
		"pairs", len(a.Pairs), "unassigned", len(a.Unassigned), "welfare", a.Welfare(v))

	return a, nil
}
