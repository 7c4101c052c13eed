package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	apikeyUseCase "github.com/allisson/apikeys/internal/apikey/usecase"
)

// ParseValidateArgs splits the positional arguments of "keys validate". A single argument
// is the API key checked against defaultScope; two are the scope followed by the key.
func ParseValidateArgs(args []string, defaultScope string) (scope, apiKey string, err error) {
	switch len(args) {
	case 1:
		return defaultScope, args[0], nil
	case 2:
		return args[0], args[1], nil
	default:
		return "", "", errors.New("expected arguments: [scope] api_key")
	}
}

// RunValidateKey checks apiKey against scope, prints the verdict unless quiet and returns
// ErrInvalidAPIKey when the key is rejected.
func RunValidateKey(
	ctx context.Context,
	keyUseCase apikeyUseCase.KeyUseCase,
	logger *slog.Logger,
	writer io.Writer,
	secret, scope, apiKey string,
	quiet bool,
) error {
	valid, err := keyUseCase.Validate(ctx, secret, apiKey, scope)
	if err != nil {
		return fmt.Errorf("failed to validate API key: %w", err)
	}

	logger.Debug("API key validated", slog.String("scope", scope), slog.Bool("valid", valid))

	if !quiet {
		message := "API key is valid."
		if !valid {
			message = "API key is invalid."
		}
		if _, err := fmt.Fprintln(writer, message); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}

	if !valid {
		return ErrInvalidAPIKey
	}
	return nil
}
