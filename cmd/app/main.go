// Package main provides the entry point for the apikeys CLI.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/apikeys/cmd/app/commands"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "print the version and exit",
	}

	cmd := &cli.Command{
		Name:     "apikeys",
		Usage:    "Issue and validate stateless API keys",
		Version:  version,
		Commands: getCommands(),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, commands.ErrInvalidAPIKey) {
			slog.New(slog.NewJSONHandler(os.Stderr, nil)).Error("application error", slog.Any("error", err))
		}
		os.Exit(1)
	}
}
