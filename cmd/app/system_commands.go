package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/cenesthesia/sentinelauth/cmd/app/commands"
	"github.com/cenesthesia/sentinelauth/internal/app"
	"github.com/cenesthesia/sentinelauth/internal/config"
)

func getSystemCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "metrics-server",
			Usage: "Start the Prometheus metrics server",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunMetricsServer(ctx, version)
			},
		},
		{
			Name:  "benchmark",
			Usage: "Measure key derivation throughput through the derivation pool",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "iterations",
					Aliases: []string{"i"},
					Value:   100,
					Usage:   "Number of key derivations to run",
				},
				&cli.IntFlag{
					Name:    "concurrency",
					Aliases: []string{"c"},
					Value:   0,
					Usage:   "Number of concurrent workers (defaults to DERIVATION_POOL_SIZE)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				concurrency := int(cmd.Int("concurrency"))
				if concurrency == 0 {
					concurrency = cfg.DerivationPoolSize
				}

				return commands.RunBenchmark(
					ctx,
					container.DerivationPool(),
					container.Logger(),
					commands.DefaultIO().Writer,
					int(cmd.Int("iterations")),
					concurrency,
				)
			},
		},
	}
}
