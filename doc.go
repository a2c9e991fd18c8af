// SPDX-License-Identifier: MIT

// Package rentdiv divides a shared rent among housemates who each take one
// room, so that nobody would rather swap with anyone else at posted prices.
//
// 🚀 What does it do?
//
//	Given an n×m valuation matrix (agent i values room j at v[i][j]) and a
//	total rent R, rentdiv runs two independent steps:
//		• Allocation: a welfare-maximizing assignment of agents to rooms,
//		  computed with Edmonds' blossom max-weight matching and completed
//		  deterministically when the matching leaves agents out
//		• Pricing: a nonnegative price per room summing to R under which no
//		  agent envies another's (room, price) pair, or an explicit
//		  "infeasible" answer when none exists
//
// The work is organized in subpackages:
//
//	valuation/  — validated, immutable valuation matrix
//	matching/   — general maximum-weight matching (primal-dual blossom, O(V³))
//	allocation/ — welfare matcher and allocation completer
//	pricing/    — envy-free linear program on gonum's simplex, plus Verify
//	cmd/rentdiv — command-line driver with YAML/JSON input and scenarios
//
// Quick start:
//
//	v, _ := rentdiv.NewValuations([][]float64{{20, 30, 40}, {40, 30, 20}, {30, 30, 30}})
//	res, err := rentdiv.Divide(v, 90, rentdiv.DefaultOptions())
//	// res.Allocation.Pairs: agent 0 → room 2, agent 1 → room 0, agent 2 → room 1
//	// res.Outcome.Prices:   a verified envy-free vector summing to 90
//
// Every call is synchronous and self-contained; concurrent calls on the same
// *valuation.Matrix are safe.
package rentdiv
