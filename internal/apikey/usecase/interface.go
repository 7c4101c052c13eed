// Package usecase implements API key issuance and validation. Keys are self-contained
// encrypted payloads, so nothing is stored and every operation works from the shared
// secret alone.
package usecase

import (
	"context"

	apikeyDomain "github.com/allisson/apikeys/internal/apikey/domain"
)

// KeyUseCase defines the interface for API key business logic.
type KeyUseCase interface {
	// Create issues a new API key bound to scope and level.
	Create(ctx context.Context, secret, scope string, level apikeyDomain.Level) (string, error)

	// CreateBatch issues count independent keys with the same scope and level.
	// The returned slice is ordered by issuance index.
	CreateBatch(
		ctx context.Context,
		secret, scope string,
		level apikeyDomain.Level,
		count int,
	) ([]string, error)

	// Validate reports whether token was issued under secret for exactly scope.
	//
	// The only error returned is ErrInvalidSecret for a malformed secret. Every token
	// problem resolves to false with a nil error.
	Validate(ctx context.Context, secret, token, scope string) (bool, error)
}
