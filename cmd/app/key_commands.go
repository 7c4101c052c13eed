package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/apikeys/cmd/app/commands"
	"github.com/allisson/apikeys/internal/app"
	"github.com/allisson/apikeys/internal/config"
)

// newContainer loads and validates configuration and builds the container.
func newContainer() (*app.Container, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return app.NewContainer(cfg), nil
}

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create",
			Usage: "Create a new API key",
			Flags: append(secretFlags(),
				&cli.StringFlag{
					Name:    "level",
					Aliases: []string{"l"},
					Usage:   "Level of the API key: platinum, gold, silver or bronze (defaults to APIKEYS_DEFAULT_LEVEL)",
				},
				&cli.StringFlag{
					Name:    "scope",
					Aliases: []string{"s"},
					Usage:   "Scope of the API key (defaults to APIKEYS_DEFAULT_SCOPE)",
				},
				&cli.IntFlag{
					Name:    "count",
					Aliases: []string{"c"},
					Value:   1,
					Usage:   "Number of keys to create",
				},
			),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				logger := container.Logger()
				defer commands.CloseContainer(container, logger)

				cfg := container.Config()
				level := cfg.DefaultLevel
				if cmd.IsSet("level") {
					level = cmd.String("level")
				}
				scope := cfg.DefaultScope
				if cmd.IsSet("scope") {
					scope = cmd.String("scope")
				}

				alg, err := commands.ParseAlgorithm(cmd.String("algorithm"))
				if err != nil {
					return err
				}
				keyUseCase, err := container.KeyUseCase(alg)
				if err != nil {
					return err
				}
				secret, err := container.LoadSecret(ctx, cmd.String("key"), cmd.String("key-file"))
				if err != nil {
					return err
				}

				return commands.RunCreateKey(
					ctx,
					keyUseCase,
					logger,
					commands.DefaultIO().Writer,
					secret,
					scope,
					level,
					int(cmd.Int("count")),
				)
			},
		},
		{
			Name:      "validate",
			Usage:     "Validate an API key",
			ArgsUsage: "[scope] api_key",
			Flags: append(secretFlags(),
				&cli.BoolFlag{
					Name:    "quiet",
					Aliases: []string{"q"},
					Usage:   "Do not print the result",
				},
			),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				logger := container.Logger()
				defer commands.CloseContainer(container, logger)

				scope, apiKey, err := commands.ParseValidateArgs(cmd.Args().Slice(), container.Config().DefaultScope)
				if err != nil {
					return err
				}

				alg, err := commands.ParseAlgorithm(cmd.String("algorithm"))
				if err != nil {
					return err
				}
				keyUseCase, err := container.KeyUseCase(alg)
				if err != nil {
					return err
				}
				secret, err := container.LoadSecret(ctx, cmd.String("key"), cmd.String("key-file"))
				if err != nil {
					return err
				}

				return commands.RunValidateKey(
					ctx,
					keyUseCase,
					logger,
					commands.DefaultIO().Writer,
					secret,
					scope,
					apiKey,
					cmd.Bool("quiet"),
				)
			},
		},
	}
}
