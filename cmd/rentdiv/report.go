// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rentdiv"
	"github.com/katalvlaran/rentdiv/pricing"
	"github.com/katalvlaran/rentdiv/valuation"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type config struct {
	format    string
	precision int
	opts      rentdiv.Options
}

// Assignment is one agent's room and, when priced, what the room costs and
// what the agent is left with.
type Assignment struct {
	Agent   int      `json:"agent" yaml:"agent"`
	Room    int      `json:"room" yaml:"room"`
	Rent    *float64 `json:"rent,omitempty" yaml:"rent,omitempty"`
	Utility *float64 `json:"utility,omitempty" yaml:"utility,omitempty"`
}

// Report is the machine-readable result of one division.
type Report struct {
	Rent        float64      `json:"rent" yaml:"rent"`
	Mode        string       `json:"mode" yaml:"mode"`
	Welfare     float64      `json:"welfare" yaml:"welfare"`
	Status      string       `json:"status" yaml:"status"`
	Assignments []Assignment `json:"assignments" yaml:"assignments"`
	Unassigned  []int        `json:"unassigned,omitempty" yaml:"unassigned,omitempty"`
	Prices      []float64    `json:"prices,omitempty" yaml:"prices,omitempty"`
}

// solve validates rows, divides the rent and writes the result to w.
func solve(w io.Writer, rows [][]float64, rent float64, cfg config) error {
	v, err := valuation.New(rows)
	if err != nil {
		return err
	}
	res, err := rentdiv.Divide(v, rent, cfg.opts)
	if err != nil {
		return err
	}

	return writeReport(w, buildReport(v, res, rent, cfg.opts.Mode, cfg.precision), cfg)
}

func buildReport(v *valuation.Matrix, res rentdiv.Result, rent float64, mode pricing.Mode, precision int) Report {
	r := Report{
		Rent:        rent,
		Mode:        mode.String(),
		Welfare:     res.Welfare,
		Status:      res.Outcome.Status.String(),
		Assignments: make([]Assignment, len(res.Allocation.Pairs)),
		Unassigned:  res.Allocation.Unassigned,
	}
	var utils []float64
	if res.Outcome.Feasible() {
		r.Prices = make([]float64, len(res.Outcome.Prices))
		for j, p := range res.Outcome.Prices {
			r.Prices[j] = round(p, precision)
		}
		utils = pricing.Utilities(v, res.Allocation, res.Outcome.Prices)
	}
	for k, p := range res.Allocation.Pairs {
		a := Assignment{Agent: p.Agent, Room: p.Good}
		if utils != nil {
			price, util := r.Prices[p.Good], round(utils[k], precision)
			a.Rent, a.Utility = &price, &util
		}
		r.Assignments[k] = a
	}

	return r
}

func writeReport(w io.Writer, r Report, cfg config) error {
	switch cfg.format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(r)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}

		return enc.Close()
	default:
		return writeText(w, r, cfg.precision)
	}
}

// writeText prints the allocation followed by one "Room j rent: x" line per room.
func writeText(w io.Writer, r Report, precision int) error {
	num := func(x float64) string { return strconv.FormatFloat(x, 'f', precision, 64) }

	if _, err := fmt.Fprintln(w, "Allocation:"); err != nil {
		return err
	}
	for _, a := range r.Assignments {
		fmt.Fprintf(w, "  agent %d → room %d\n", a.Agent, a.Room)
	}
	for _, i := range r.Unassigned {
		fmt.Fprintf(w, "  agent %d → (no room left)\n", i)
	}
	fmt.Fprintf(w, "Welfare: %s\n", num(r.Welfare))
	if r.Mode == pricing.ModePoorTenants.String() {
		fmt.Fprintln(w, "Mode: poor tenants (budget and nonnegativity only, envy not checked)")
	}

	if r.Prices == nil {
		_, err := fmt.Fprintf(w, "No envy-free prices >= 0 exist for this allocation at rent %s\n", num(r.Rent))

		return err
	}
	total := 0.0
	for j, p := range r.Prices {
		fmt.Fprintf(w, "Room %d rent: %s\n", j, num(p))
		total += p
	}
	if shown := num(total); shown != num(r.Rent) {
		_, err := fmt.Fprintf(w, "Total: %s (rent %s; room prices are rounded)\n", shown, num(r.Rent))

		return err
	}
	_, err := fmt.Fprintf(w, "Total: %s\n", num(r.Rent))

	return err
}

// round rounds half to even to the given number of decimals and clears
// negative zero.
func round(x float64, precision int) float64 {
	scale := math.Pow10(precision)
	r := math.RoundToEven(x*scale) / scale
	if r == 0 {
		return 0
	}

	return r
}
