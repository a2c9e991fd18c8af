// SPDX-License-Identifier: MIT

package allocation

import (
	"github.com/katalvlaran/rentdiv/matching"
	"github.com/katalvlaran/rentdiv/valuation"
)

// WelfareMatching returns a maximum-weight matching of the agent–good
// relation as un-oriented, tagged pairs.
//
// The result is not guaranteed to cover every agent: an agent may be left
// single when m < n, or when pairing it adds no weight. Use Complete (or
// Compute) to obtain a total assignment.
//
// Complexity: O((n+m)³).
func WelfareMatching(v *valuation.Matrix, opts Options) ([]LabelPair, error) {
	if v == nil {
		return nil, ErrNilValuation
	}
	log := opts.logger()

	r, err := newRelation(v)
	if err != nil {
		return nil, err
	}
	m := matching.MaxWeight(r.graph, opts.Matching)

	vertexPairs := m.Pairs()
	pairs := make([]LabelPair, len(vertexPairs))
	for i, vp := range vertexPairs {
		pairs[i] = LabelPair{A: r.label(vp[0]), B: r.label(vp[1])}
	}
	log.Debug("welfare matching computed",
		"agents", v.Agents(), "goods", v.Goods(),
		"pairs", len(pairs), "weight", m.Weight)

	return pairs, nil
}
