package domain

import (
	"github.com/allisson/apikeys/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors so callers can
// tell a caller mistake (invalid input) from an untrusted credential (unauthorized).
var (
	// ErrUnsupportedAlgorithm indicates the requested codec algorithm is not supported.
	//
	// Supported algorithms: Fernet, AESGCM (AES-256-GCM), ChaCha20 (ChaCha20-Poly1305).
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrUnsupportedKMSScheme indicates a KMS key URI with a scheme no driver is registered for.
	ErrUnsupportedKMSScheme = errors.Wrap(errors.ErrInvalidInput, "unsupported KMS key URI scheme")

	// ErrInvalidSecret indicates the supplied secret is structurally unusable.
	//
	// A secret must be the base64 encoding (URL-safe or standard, padding optional) of
	// exactly 32 bytes. This error is fatal to the operation and is never retried.
	ErrInvalidSecret = errors.Wrap(errors.ErrInvalidInput, "invalid secret")

	// ErrInvalidToken indicates a token failed to decode or authenticate.
	//
	// This covers malformed encoding, unknown version bytes, truncation, tag mismatch and
	// tokens sealed under a different secret. The specific cause is not disclosed.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrSecretNotProvided indicates no secret source was configured.
	ErrSecretNotProvided = errors.Wrap(errors.ErrNotFound, "secret not provided")

	// ErrConflictingSecretSources indicates more than one explicit secret source was given.
	ErrConflictingSecretSources = errors.Wrap(
		errors.ErrInvalidInput,
		"cannot use both a secret value and a secret file",
	)
)
