package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/apikeys/cmd/app/commands"
	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"
)

// twoArgs returns the KEY and DATA positional arguments of encrypt and decrypt.
func twoArgs(cmd *cli.Command) (string, string, error) {
	if cmd.Args().Len() != 2 {
		return "", "", fmt.Errorf("expected arguments: KEY DATA")
	}
	return cmd.Args().Get(0), cmd.Args().Get(1), nil
}

func getFernetCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate",
			Usage: "Generate a new secret",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Output file for the generated secret",
				},
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Usage: "Wrap the secret with this KMS key (e.g., base64key://, gcpkms://..., hashivault://...)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container, err := newContainer()
				if err != nil {
					return err
				}
				logger := container.Logger()
				defer commands.CloseContainer(container, logger)

				return commands.RunGenerateSecret(
					ctx,
					container.KMSService(),
					logger,
					commands.DefaultIO().Writer,
					cmd.String("output"),
					cmd.String("kms-key-uri"),
				)
			},
		},
		{
			Name:      "encrypt",
			Usage:     "Encrypt data with a secret",
			ArgsUsage: "KEY DATA",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				key, data, err := twoArgs(cmd)
				if err != nil {
					return err
				}
				container, err := newContainer()
				if err != nil {
					return err
				}
				codec, err := container.Codec(cryptoDomain.Fernet)
				if err != nil {
					return err
				}
				return commands.RunEncrypt(codec, commands.DefaultIO().Writer, key, data)
			},
		},
		{
			Name:      "decrypt",
			Usage:     "Decrypt a token with a secret",
			ArgsUsage: "KEY DATA",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				key, data, err := twoArgs(cmd)
				if err != nil {
					return err
				}
				container, err := newContainer()
				if err != nil {
					return err
				}
				codec, err := container.Codec(cryptoDomain.Fernet)
				if err != nil {
					return err
				}
				return commands.RunDecrypt(codec, commands.DefaultIO().Writer, key, data)
			},
		},
	}
}
