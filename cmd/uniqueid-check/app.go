package main

import (
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/krew-solutions/unique-id-go/internal/selfcheck"
)

// Build information, set via ldflags.
var Version = "dev"

func App() *cli.App {
	defaults := selfcheck.DefaultConfig()
	return &cli.App{
		Name:    "uniqueid-check",
		Usage:   "verify identity token guarantees in this process",
		Version: Version,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "goroutines minting tokens concurrently",
				EnvVars: []string{"UNIQUEID_WORKERS"},
				Value:   defaults.Workers,
			},
			&cli.IntFlag{
				Name:    "tokens",
				Aliases: []string{"n"},
				Usage:   "tokens minted and kept alive per worker",
				EnvVars: []string{"UNIQUEID_TOKENS"},
				Value:   defaults.TokensPerWorker,
			},
			&cli.IntFlag{
				Name:    "growth",
				Usage:   "elements appended to force a reallocation in relocation checks",
				EnvVars: []string{"UNIQUEID_GROWTH"},
				Value:   defaults.GrowthPushes,
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "trace, debug, info, warn or error",
				EnvVars: []string{"UNIQUEID_LOG_LEVEL"},
				Value:   "info",
			},
			&cli.BoolFlag{
				Name:    "log-json",
				Usage:   "emit logs as JSON",
				EnvVars: []string{"UNIQUEID_LOG_JSON"},
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	logger, err := newLogger(c)
	if err != nil {
		return err
	}

	cfg := selfcheck.Config{
		Workers:         c.Int("workers"),
		TokensPerWorker: c.Int("tokens"),
		GrowthPushes:    c.Int("growth"),
	}
	checker, err := selfcheck.New(cfg, logger)
	if err != nil {
		return err
	}

	report, err := checker.Run(c.Context)
	if err != nil {
		return err
	}
	logger.Info("report",
		"run_id", report.RunID.String(),
		"tokens", report.Tokens,
		"checks", report.Checks,
		"duration", report.Duration,
	)
	return nil
}

func newLogger(c *cli.Context) (hclog.Logger, error) {
	level := hclog.LevelFromString(c.String("log-level"))
	if level == hclog.NoLevel {
		return nil, errors.Errorf("unknown log level %q", c.String("log-level"))
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       c.App.Name,
		Level:      level,
		Output:     c.App.ErrWriter,
		JSONFormat: c.Bool("log-json"),
	}), nil
}
