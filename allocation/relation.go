// SPDX-License-Identifier: MIT
//
// relation.go — the complete weighted bipartite relation K_{n,m} between
// agents and goods.
//
// Contract:
//   - n ≥ 1 agents and m ≥ 1 goods (guaranteed by valuation.New).
//   - Agent i is vertex i; good j is vertex n+j.
//   - Emits every cross pair agent i — good j with weight v[i][j].
//
// Determinism:
//   - Edge emission order: i asc over agents, inner j asc over goods.
//
// Complexity:
//   - Time O(n·m), Space O(n·m) for the edge list.

package allocation

import (
	"fmt"

	"github.com/katalvlaran/rentdiv/matching"
	"github.com/katalvlaran/rentdiv/valuation"
)

const methodRelation = "relation"

// relation pairs the matching graph with the vertex ↔ label mapping.
type relation struct {
	agents, goods int
	graph         *matching.Graph
}

// newRelation builds K_{n,m} weighted by v.
func newRelation(v *valuation.Matrix) (*relation, error) {
	n, m := v.Agents(), v.Goods()
	g, err := matching.NewGraph(n + m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRelation, err)
	}
	r := &relation{agents: n, goods: m, graph: g}

	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if err = g.AddEdge(r.vertex(Agent(i)), r.vertex(Good(j)), v.At(i, j)); err != nil {
				return nil, fmt.Errorf("%s: agent %d good %d: %w", methodRelation, i, j, err)
			}
		}
	}

	return r, nil
}

// vertex maps a label to its graph vertex.
func (r *relation) vertex(l Label) int {
	if l.Side == SideGood {
		return r.agents + l.Index
	}

	return l.Index
}

// label maps a graph vertex back to its tagged identity.
func (r *relation) label(vertex int) Label {
	if vertex >= r.agents {
		return Good(vertex - r.agents)
	}

	return Agent(vertex)
}
