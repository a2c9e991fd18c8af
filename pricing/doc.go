// SPDX-License-Identifier: MIT

// Package pricing finds an envy-free price vector for a fixed allocation of
// goods to agents, or proves that none exists.
//
// Given valuations v (n×m), an allocation {(i, o)} and a total rent R, the
// price vector p ∈ ℝᵐ must satisfy:
//
//	budget:         Σ_j p_j = R
//	nonnegativity:  p_j ≥ 0                                  for every good j
//	envy-freeness:  v[i][o] − p_o ≥ v[i][j] − p_j            for every (i, o), j ≠ o
//
// There is no objective: any feasible point is an answer. The envy rows are
// difference constraints p_o − p_j ≤ v[i][o] − v[i][j]; BuildProgram turns
// them into the standard form used by gonum's simplex,
//
//	minimize 0ᵀx   s.t.   A·x = b,  x ≥ 0,   x = [p_0 … p_{m−1} | s_0 … s_{k−1}]
//
// with one slack s per envy row and the budget as row 0.
//
// The simplex works on b scaled by 1/(1+max(rent, max valuation)). Its
// answers are trusted only after Verify. When it fails, or claims
// infeasibility, an exact certificate decides instead: Bellman–Ford over the
// difference constraints gives the least nonnegative envy-free vector, and
// the program is feasible exactly when that vector exists and its sum is at
// most the rent.
//
// Outcomes are three-way:
//
//	Outcome{Status: StatusFeasible, Prices: p}  – p verified against every constraint
//	Outcome{Status: StatusInfeasible}           – the polytope is provably empty
//	error wrapping ErrSolver                     – no verified answer could be produced
//
// ModePoorTenants keeps only the budget and nonnegativity and returns the
// even split.
//
// Infeasibility is a normal result, not an error. Feasibility depends on both
// the allocation and the rent; Solve never swaps in a different allocation.
//
// Prices are returned unrounded. Rounding is a presentation concern.
package pricing
