// SPDX-License-Identifier: MIT

package allocation

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/rentdiv/matching"
	"github.com/katalvlaran/rentdiv/valuation"
)

// ErrNilValuation is returned when a nil *valuation.Matrix is supplied.
var ErrNilValuation = errors.New("allocation: nil valuation matrix")

// Side tells which part of the bipartite relation a vertex belongs to.
type Side int

const (
	// SideAgent marks an agent (row of the valuation matrix).
	SideAgent Side = iota
	// SideGood marks a good (column of the valuation matrix).
	SideGood
)

func (s Side) String() string {
	switch s {
	case SideAgent:
		return "agent"
	case SideGood:
		return "good"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Label is a tagged vertex identity: which side, and the index on that side.
type Label struct {
	Side  Side
	Index int
}

// Agent returns the label of agent i.
func Agent(i int) Label { return Label{Side: SideAgent, Index: i} }

// Good returns the label of good j.
func Good(j int) Label { return Label{Side: SideGood, Index: j} }

func (l Label) String() string {
	return fmt.Sprintf("%s %d", l.Side, l.Index)
}

// LabelPair is an un-oriented matched pair as reported by the welfare
// matcher: either field may hold the agent.
type LabelPair struct {
	A, B Label
}

// orient returns (agent, good) indices, or ok=false when the pair does not
// join one agent with one good.
func (p LabelPair) orient() (agent, good int, ok bool) {
	switch {
	case p.A.Side == SideAgent && p.B.Side == SideGood:
		return p.A.Index, p.B.Index, true
	case p.A.Side == SideGood && p.B.Side == SideAgent:
		return p.B.Index, p.A.Index, true
	default:
		return 0, 0, false
	}
}

// Pair assigns one good to one agent.
type Pair struct {
	Agent int
	Good  int
}

func (p Pair) String() string {
	return fmt.Sprintf("agent %d → good %d", p.Agent, p.Good)
}

// Allocation is the final, agent-sorted assignment.
//
// Invariants: Pairs is sorted by Agent; no Agent and no Good repeats;
// Unassigned is ascending and disjoint from the agents in Pairs.
type Allocation struct {
	Pairs      []Pair
	Unassigned []int
}

// IsComplete reports whether every agent received a good.
func (a Allocation) IsComplete() bool {
	return len(a.Unassigned) == 0
}

// GoodOf returns the good assigned to agent, if any.
func (a Allocation) GoodOf(agent int) (int, bool) {
	for _, p := range a.Pairs {
		if p.Agent == agent {
			return p.Good, true
		}
	}

	return 0, false
}

// Welfare returns the sum of each allocated agent's value for its good.
func (a Allocation) Welfare(v *valuation.Matrix) float64 {
	vals := make([]float64, len(a.Pairs))
	for i, p := range a.Pairs {
		vals[i] = v.At(p.Agent, p.Good)
	}

	return floats.Sum(vals)
}

func (a Allocation) String() string {
	parts := make([]string, len(a.Pairs))
	for i, p := range a.Pairs {
		parts[i] = p.String()
	}
	s := "[" + strings.Join(parts, ", ") + "]"
	if len(a.Unassigned) > 0 {
		s += fmt.Sprintf(" unassigned=%v", a.Unassigned)
	}

	return s
}

// Options configures WelfareMatching, Complete and Compute.
//   - Logger:   diagnostic sink; nil keeps the package silent.
//   - Matching: options forwarded to matching.MaxWeight.
type Options struct {
	Logger   *slog.Logger
	Matching matching.Options
}

// DefaultOptions returns silent, plain maximum-weight options.
func DefaultOptions() Options {
	return Options{Matching: matching.DefaultOptions()}
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}
