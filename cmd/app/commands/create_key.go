package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	apikeyDomain "github.com/allisson/apikeys/internal/apikey/domain"
	apikeyUseCase "github.com/allisson/apikeys/internal/apikey/usecase"
)

// RunCreateKey issues count API keys bound to scope and level and prints one per line.
func RunCreateKey(
	ctx context.Context,
	keyUseCase apikeyUseCase.KeyUseCase,
	logger *slog.Logger,
	writer io.Writer,
	secret, scope, levelStr string,
	count int,
) error {
	level, err := apikeyDomain.ParseLevel(levelStr)
	if err != nil {
		return err
	}

	var tokens []string
	if count == 1 {
		token, err := keyUseCase.Create(ctx, secret, scope, level)
		if err != nil {
			return fmt.Errorf("failed to create API key: %w", err)
		}
		tokens = []string{token}
	} else {
		tokens, err = keyUseCase.CreateBatch(ctx, secret, scope, level, count)
		if err != nil {
			return fmt.Errorf("failed to create API keys: %w", err)
		}
	}

	for _, token := range tokens {
		if _, err := fmt.Fprintln(writer, token); err != nil {
			return fmt.Errorf("failed to write API key: %w", err)
		}
	}

	logger.Debug("API keys created",
		slog.String("scope", scope),
		slog.String("level", level.String()),
		slog.Int("count", len(tokens)),
	)
	return nil
}
