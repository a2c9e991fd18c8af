// SPDX-License-Identifier: MIT

// Package allocation assigns every agent exactly one good so that the total
// declared value (social welfare) is maximal, and then completes the result
// deterministically when the matching leaves agents single.
//
// Pipeline:
//
//	valuation.Matrix
//	   │  relation: complete bipartite K_{n,m}, agents 0..n-1, goods n..n+m-1,
//	   │            edge weight = valuation, emitted agent-major
//	   ▼
//	matching.MaxWeight (general blossom algorithm, no bipartite shortcut)
//	   │  []LabelPair, each endpoint tagged SideAgent / SideGood
//	   ▼
//	Complete: orient by tag → find single agents → give each, ascending,
//	          the lowest-indexed unclaimed good → sort by agent
//	   ▼
//	Allocation{Pairs, Unassigned}
//
// Side identity travels with every vertex as a Label{Side, Index}, so
// orientation never depends on the order in which a pair is reported.
//
// Completion does not preserve optimality for the agents it fills in; it
// only guarantees totality (when m ≥ n) and reproducibility. When m < n the
// agents left over are listed in Allocation.Unassigned and a warning is sent
// to Options.Logger.
//
// All functions are pure: nothing is retained between calls.
package allocation
