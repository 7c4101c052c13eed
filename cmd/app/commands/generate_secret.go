package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"
	cryptoService "github.com/allisson/apikeys/internal/crypto/service"
)

// RunGenerateSecret creates a random 32-byte secret usable by every codec.
//
// The secret is printed as URL-safe base64, or written to output with mode 0600 and no
// trailing newline. When kmsKeyURI is set the secret is wrapped with that KMS key first and
// the base64 ciphertext is emitted instead; configure the same URI in KMS_KEY_URI to use it.
func RunGenerateSecret(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	logger *slog.Logger,
	writer io.Writer,
	output, kmsKeyURI string,
) error {
	secret, err := cryptoDomain.GenerateSecret()
	if err != nil {
		return err
	}
	defer secret.Zero()

	value := secret.Encode()
	if kmsKeyURI != "" {
		value, err = cryptoService.WrapSecret(ctx, kmsService, kmsKeyURI, secret)
		if err != nil {
			return err
		}
		logger.Info("secret wrapped with KMS", slog.String("kms_key_uri", kmsKeyURI))
	}

	if output == "" {
		if _, err := fmt.Fprintln(writer, value); err != nil {
			return fmt.Errorf("failed to write secret: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(output, []byte(value), 0o600); err != nil {
		return fmt.Errorf("failed to write secret file: %w", err)
	}
	logger.Info("secret written", slog.String("path", output))
	return nil
}
