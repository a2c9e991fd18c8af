// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/rentdiv/pricing"
)

type scenario struct {
	Name        string
	Description string
	Valuations  [][]float64
	Rent        float64
	Mode        pricing.Mode
}

var scenarios = []scenario{
	{
		Name:        "spread",
		Description: "three rooms, each agent prefers a different one",
		Valuations:  [][]float64{{20, 30, 40}, {40, 30, 20}, {30, 30, 30}},
		Rent:        90,
	},
	{
		Name:        "tied",
		Description: "three rooms, two allocations share the best welfare",
		Valuations:  [][]float64{{25, 40, 35}, {40, 60, 35}, {20, 40, 25}},
		Rent:        50,
	},
	{
		Name:        "lopsided",
		Description: "two rooms, one agent indifferent, poor tenants",
		Valuations:  [][]float64{{100, 0}, {50, 50}},
		Rent:        95,
		Mode:        pricing.ModePoorTenants,
	},
	{
		Name:        "two-rooms",
		Description: "rent too low for the worthless room to stay priced above zero",
		Valuations:  [][]float64{{150, 0}, {140, 10}},
		Rent:        100,
	},
	{
		Name:        "zero-room",
		Description: "four rooms, one worth nothing to anyone",
		Valuations: [][]float64{
			{36, 34, 30, 0},
			{31, 36, 33, 0},
			{34, 30, 36, 0},
			{32, 33, 35, 0},
		},
		Rent: 100,
	},
	{
		Name:        "two-rooms-poor",
		Description: "two-rooms under the poor-tenants assumption",
		Valuations:  [][]float64{{150, 0}, {140, 10}},
		Rent:        100,
		Mode:        pricing.ModePoorTenants,
	},
	{
		Name:        "zero-room-poor",
		Description: "zero-room under the poor-tenants assumption",
		Valuations: [][]float64{
			{36, 34, 30, 0},
			{31, 36, 33, 0},
			{34, 30, 36, 0},
			{32, 33, 35, 0},
		},
		Rent: 100,
		Mode: pricing.ModePoorTenants,
	},
}

// runScenarios solves every scenario, or just the one called name.
func runScenarios(w io.Writer, name string, cfg config) error {
	ran := 0
	for _, sc := range scenarios {
		if name != "" && sc.Name != name {
			continue
		}
		if cfg.format == formatText {
			if ran > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "== %s: %s\n", sc.Name, sc.Description)
		}
		run := cfg
		run.opts.Mode = sc.Mode
		if err := solve(w, sc.Valuations, sc.Rent, run); err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		ran++
	}
	if ran == 0 {
		return fmt.Errorf("%w: %q", errNoScenario, name)
	}

	return nil
}
