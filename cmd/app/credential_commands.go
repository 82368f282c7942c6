package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/cenesthesia/sentinelauth/cmd/app/commands"
	"github.com/cenesthesia/sentinelauth/internal/app"
	"github.com/cenesthesia/sentinelauth/internal/config"
)

func getCredentialCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-password",
			Usage: "Generate a credential with a random policy-satisfying password",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"l"},
					Value:   0,
					Usage:   "Password length (defaults to DEFAULT_PASSWORD_LENGTH)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.UseCase(ctx)
				if err != nil {
					return err
				}

				length := int(cmd.Int("length"))
				if length == 0 {
					length = cfg.DefaultPasswordLength
				}

				return commands.RunGeneratePassword(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					length,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "generate-salt",
			Usage: "Generate a random salt and print it base64-encoded",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunGenerateSalt(container.Logger(), commands.DefaultIO().Writer)
			},
		},
		{
			Name:  "hash-password",
			Usage: "Hash a password read from stdin for storage",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "user",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "User identifier the credential belongs to",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.UseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunHashPassword(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("user"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "verify-password",
			Usage: "Verify a password read from stdin against a stored salt and hash",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "user",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "User identifier the credential belongs to",
				},
				&cli.StringFlag{
					Name:     "salt",
					Aliases:  []string{"s"},
					Required: true,
					Usage:    "Stored salt, base64-encoded",
				},
				&cli.StringFlag{
					Name:     "hash",
					Aliases:  []string{"H"},
					Required: true,
					Usage:    "Stored hash, base64-encoded",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				useCase, err := container.UseCase(ctx)
				if err != nil {
					return err
				}

				return commands.RunVerifyPassword(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("user"),
					cmd.String("salt"),
					cmd.String("hash"),
				)
			},
		},
		{
			Name:  "check-strength",
			Usage: "Check whether a password read from stdin meets the strength policy",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunCheckStrength(commands.DefaultIO())
			},
		},
	}
}
