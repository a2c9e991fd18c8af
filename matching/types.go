// SPDX-License-Identifier: MIT

package matching

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegativeOrder is returned by NewGraph for a negative vertex count.
	ErrNegativeOrder = errors.New("matching: negative vertex count")

	// ErrVertexOutOfRange is returned when an edge endpoint is outside 0..n-1.
	ErrVertexOutOfRange = errors.New("matching: vertex out of range")

	// ErrSelfLoop is returned when both endpoints of an edge coincide.
	ErrSelfLoop = errors.New("matching: self-loop not allowed")

	// ErrBadWeight is returned for NaN or ±Inf edge weights.
	ErrBadWeight = errors.New("matching: weight is NaN or Inf")
)

// Edge is an undirected weighted edge between U and V.
type Edge struct {
	U, V   int
	Weight float64
}

// Graph is an undirected multigraph over vertices 0..n-1 stored as an edge
// list. Parallel edges are permitted; the algorithm picks at most one.
type Graph struct {
	n     int
	edges []Edge
}

// NewGraph returns an empty graph with n isolated vertices.
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", n, ErrNegativeOrder)
	}

	return &Graph{n: n}, nil
}

// AddEdge appends the undirected edge {u, v} with weight w.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrBadWeight)
	}
	g.edges = append(g.edges, Edge{U: u, V: v, Weight: w})

	return nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// Size returns the number of edges.
func (g *Graph) Size() int { return len(g.edges) }

// Edges returns a copy of the edge list in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Options configures MaxWeight.
//   - MaxCardinality: if true, only maximum-cardinality matchings are
//     considered, and the heaviest of those is returned.
type Options struct {
	MaxCardinality bool
}

// DefaultOptions returns plain maximum-weight semantics.
func DefaultOptions() Options {
	return Options{MaxCardinality: false}
}

// Matching is the result of MaxWeight.
//
// Mate[v] is v's partner, or -1 when v is unmatched; Mate[u] == v ⇔ Mate[v] == u.
// Weight is the sum of the weights of the matched edges.
type Matching struct {
	Mate   []int
	Weight float64
}

// Pairs returns the matched edges as (u, v) with u < v, ordered by u.
func (m Matching) Pairs() [][2]int {
	var out [][2]int
	for u, v := range m.Mate {
		if v > u {
			out = append(out, [2]int{u, v})
		}
	}

	return out
}

// Size returns the number of matched edges.
func (m Matching) Size() int {
	return len(m.Pairs())
}
