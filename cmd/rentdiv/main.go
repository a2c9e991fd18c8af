// SPDX-License-Identifier: MIT

// Command rentdiv divides a shared rent among housemates.
//
//	rentdiv solve -i flat.yaml --rent 1200
//	rentdiv --format json examples
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/rentdiv"
	"github.com/katalvlaran/rentdiv/pricing"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "rentdiv",
		Usage: "Envy-free rent division: welfare-maximizing rooms, fair prices",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log solver diagnostics to stderr",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   formatText,
				Usage:   "output format: text, json or yaml",
			},
			&cli.IntFlag{
				Name:  "precision",
				Value: 0,
				Usage: "decimal places for printed prices",
			},
		},
		Commands: []*cli.Command{
			solveCommand(),
			examplesCommand(),
		},
	}
}

// solveCommand and examplesCommand build fresh flag values on every call:
// urfave/cli flags remember what a previous Run set.
func solveCommand() *cli.Command {
	return &cli.Command{
		Name:    "solve",
		Usage:   "Allocate rooms and price them from a valuation file",
		Aliases: []string{"s"},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Required: true,
				Usage:    "specify the input file (YAML or JSON, '-' for stdin)",
			},
			&cli.Float64Flag{
				Name:    "rent",
				EnvVars: []string{"RENTDIV_RENT"},
				Usage:   "total rent; overrides the value in the input file",
			},
			&cli.BoolFlag{
				Name:    "strict",
				EnvVars: []string{"RENTDIV_STRICT"},
				Usage:   "fail when some agent cannot receive a room",
			},
			&cli.BoolFlag{
				Name:  "max-cardinality",
				Usage: "prefer matchings that place more agents",
			},
			&cli.BoolFlag{
				Name:  "poor-tenants",
				Usage: "assume every tenant prefers a free room: enforce only budget and nonnegativity",
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := configFrom(ctx)
			if err != nil {
				return err
			}
			in, err := loadInput(ctx.String("input"), ctx.App.Reader)
			if err != nil {
				return fmt.Errorf("load input failed: %w", err)
			}
			if ctx.IsSet("rent") {
				rent := ctx.Float64("rent")
				in.Rent = &rent
			}
			if in.Rent == nil {
				return errMissingRent
			}
			cfg.opts.MaxCardinality = ctx.Bool("max-cardinality")
			if ctx.Bool("strict") {
				cfg.opts.Policy = rentdiv.PolicyStrict
			}
			if ctx.Bool("poor-tenants") {
				cfg.opts.Mode = pricing.ModePoorTenants
			}

			return solve(ctx.App.Writer, in.Valuations, *in.Rent, cfg)
		},
	}
}

func examplesCommand() *cli.Command {
	return &cli.Command{
		Name:    "examples",
		Usage:   "Run the built-in scenarios",
		Aliases: []string{"e"},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "run only the named scenario",
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := configFrom(ctx)
			if err != nil {
				return err
			}

			return runScenarios(ctx.App.Writer, ctx.String("name"), cfg)
		},
	}
}

// configFrom reads the global flags shared by every command.
func configFrom(ctx *cli.Context) (config, error) {
	format := ctx.String("format")
	switch format {
	case formatText, formatJSON, formatYAML:
	default:
		return config{}, fmt.Errorf("%w: %q", errBadFormat, format)
	}
	precision := ctx.Int("precision")
	if precision < 0 || precision > 12 {
		return config{}, fmt.Errorf("%w: %d", errBadPrecision, precision)
	}

	level := slog.LevelWarn
	if ctx.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(ctx.App.ErrWriter, &slog.HandlerOptions{Level: level}))

	cfg := config{format: format, precision: precision}
	cfg.opts = rentdiv.DefaultOptions()
	cfg.opts.Logger = logger

	return cfg, nil
}
