package main

import (
	"github.com/urfave/cli/v3"
)

func getCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:     "keys",
			Usage:    "Create and validate API keys",
			Commands: getKeyCommands(),
		},
		{
			Name:     "fernet",
			Usage:    "Manage secrets and run raw Fernet operations",
			Commands: getFernetCommands(),
		},
	}
}

// secretFlags are shared by every command that needs the shared secret.
func secretFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "key",
			Aliases: []string{"K"},
			Usage:   "Use a specific secret (defaults to APIKEYS_SECRET)",
		},
		&cli.StringFlag{
			Name:    "key-file",
			Aliases: []string{"k"},
			Usage:   "Read the secret from a file",
		},
		&cli.StringFlag{
			Name:    "algorithm",
			Aliases: []string{"alg"},
			Usage:   "Token format: fernet, aes-gcm or chacha20-poly1305 (defaults to APIKEYS_ALGORITHM)",
		},
	}
}
