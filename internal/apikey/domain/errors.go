package domain

import (
	"github.com/allisson/apikeys/internal/errors"
)

// API key domain errors.
var (
	// ErrInvalidLevel indicates a level outside platinum, gold, silver and bronze.
	ErrInvalidLevel = errors.Wrap(errors.ErrInvalidInput, "invalid level")

	// ErrInvalidBatchSize indicates a batch count outside 1 and MaxBatchSize.
	ErrInvalidBatchSize = errors.Wrap(errors.ErrInvalidInput, "invalid batch size")

	// ErrMalformedPayload indicates decrypted content is not a well-formed payload.
	ErrMalformedPayload = errors.Wrap(errors.ErrUnauthorized, "malformed payload")

	// ErrScopeMismatch indicates the key was issued for a different scope.
	ErrScopeMismatch = errors.Wrap(errors.ErrUnauthorized, "scope mismatch")
)
