// SPDX-License-Identifier: MIT

// Package matching computes maximum-weight matchings on general undirected
// graphs using Edmonds' blossom algorithm with dual variables (the
// primal-dual O(V³) formulation of Galil, "Efficient algorithms for finding
// maximum matching in graphs", 1986).
//
// 🚀 What is a maximum-weight matching?
//
//	A matching is a set of edges with no shared endpoint. A maximum-weight
//	matching maximizes the sum of the chosen edge weights. The algorithm
//	handles odd cycles ("blossoms") by shrinking them into super-vertices,
//	so it is correct on arbitrary graphs, not only bipartite ones.
//
// ✨ Key features:
//   - general graphs: no bipartite assumption, no perfect-matching assumption
//   - float64 weights (negative allowed; NaN/±Inf rejected at AddEdge)
//   - optional maximum-cardinality mode (largest matching first, then weight)
//   - deterministic: identical edge insertion order ⇒ identical matching
//
// ⚙️ Usage:
//
//	g, _ := matching.NewGraph(4)
//	_ = g.AddEdge(0, 1, 6)
//	_ = g.AddEdge(1, 2, 10)
//	_ = g.AddEdge(2, 3, 6)
//	m := matching.MaxWeight(g, matching.DefaultOptions())
//	fmt.Println(m.Mate, m.Weight) // [1 0 3 2] 12
//
// Vertices are dense integers 0..n-1; callers that need richer identities
// (for example agent vs good) keep their own index mapping.
//
// Performance:
//
//   - Time:   O(V³)
//   - Memory: O(V + E)
//
// The state is allocated per call; concurrent calls on distinct or shared
// read-only graphs are safe.
package matching
