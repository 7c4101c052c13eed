package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	apikeyDomain "github.com/allisson/apikeys/internal/apikey/domain"
	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"
	cryptoService "github.com/allisson/apikeys/internal/crypto/service"
)

// Rejection reasons logged by Validate.
const (
	reasonDecrypt = "decrypt"
	reasonPayload = "payload"
	reasonScope   = "scope"
)

// keyUseCase implements the KeyUseCase interface on top of a secret codec.
type keyUseCase struct {
	codec  cryptoService.Codec
	logger *slog.Logger
}

// NewKeyUseCase creates a KeyUseCase that seals payloads with codec.
func NewKeyUseCase(codec cryptoService.Codec, logger *slog.Logger) KeyUseCase {
	return &keyUseCase{
		codec:  codec,
		logger: logger,
	}
}

// Create validates the request, builds a payload with a fresh nonce and encrypts it.
func (k *keyUseCase) Create(
	ctx context.Context,
	secret, scope string,
	level apikeyDomain.Level,
) (string, error) {
	input := &apikeyDomain.CreateKeyInput{Scope: scope, Level: level}
	if err := input.Validate(); err != nil {
		return "", err
	}
	return k.create(secret, scope, level)
}

func (k *keyUseCase) create(secret, scope string, level apikeyDomain.Level) (string, error) {
	payload, err := apikeyDomain.NewPayload(scope, level)
	if err != nil {
		return "", err
	}

	data, err := payload.Marshal()
	if err != nil {
		return "", fmt.Errorf("failed to serialize payload: %w", err)
	}

	return k.codec.Encrypt(secret, data)
}

// CreateBatch issues count keys concurrently, bounded by GOMAXPROCS. The first error
// cancels the remaining work and is returned.
func (k *keyUseCase) CreateBatch(
	ctx context.Context,
	secret, scope string,
	level apikeyDomain.Level,
	count int,
) ([]string, error) {
	if count < 1 || count > apikeyDomain.MaxBatchSize {
		return nil, fmt.Errorf("%w: %d", apikeyDomain.ErrInvalidBatchSize, count)
	}
	input := &apikeyDomain.CreateKeyInput{Scope: scope, Level: level, Count: count}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Fail fast on a malformed secret instead of once per goroutine.
	parsed, err := cryptoDomain.ParseSecret(secret)
	if err != nil {
		return nil, err
	}
	parsed.Zero()

	tokens := make([]string, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range count {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			token, err := k.create(secret, scope, level)
			if err != nil {
				return err
			}
			tokens[i] = token
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// Validate decrypts token, parses the payload and compares its scope byte for byte.
func (k *keyUseCase) Validate(ctx context.Context, secret, token, scope string) (valid bool, err error) {
	parsed, err := cryptoDomain.ParseSecret(secret)
	if err != nil {
		return false, err
	}
	parsed.Zero()

	defer func() {
		if r := recover(); r != nil {
			k.reject(ctx, reasonDecrypt)
			valid, err = false, nil
		}
	}()

	plaintext, err := k.codec.Decrypt(secret, token)
	if err != nil {
		k.reject(ctx, reasonDecrypt)
		return false, nil
	}
	defer cryptoDomain.Zero(plaintext)

	payload, err := apikeyDomain.ParsePayload(plaintext)
	if err != nil {
		k.reject(ctx, reasonPayload)
		return false, nil
	}

	if err := payload.MatchScope(scope); err != nil {
		k.reject(ctx, reasonScope)
		return false, nil
	}

	return true, nil
}

// reject logs why a key was refused. The token, secret and payload are never logged.
func (k *keyUseCase) reject(ctx context.Context, reason string) {
	k.logger.DebugContext(ctx, "api key rejected",
		slog.String("reason", reason),
		slog.String("algorithm", k.codec.Algorithm().String()),
	)
}
