package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"
)

// SecretSource describes where the shared secret comes from.
//
// Value and File are explicit sources and are mutually exclusive. Env is the fallback
// used when neither is set. When KMSKeyURI is set, the resolved value is the base64
// KMS ciphertext of the raw secret bytes, as printed by `fernet generate --kms-key-uri`.
type SecretSource struct {
	Value     string
	File      string
	Env       string
	KMSKeyURI string
}

// SecretLoader resolves a SecretSource into a validated secret string.
type SecretLoader struct {
	kmsService KMSService
}

// NewSecretLoader creates a SecretLoader. kmsService may be nil when KMS wrapping is not used.
func NewSecretLoader(kmsService KMSService) *SecretLoader {
	return &SecretLoader{kmsService: kmsService}
}

// Load resolves the secret and checks it is well formed.
//
// Returns ErrConflictingSecretSources if both Value and File are set, ErrSecretNotProvided
// if no source yields a value and ErrInvalidSecret if the result is malformed.
func (l *SecretLoader) Load(ctx context.Context, src SecretSource) (string, error) {
	if src.Value != "" && src.File != "" {
		return "", cryptoDomain.ErrConflictingSecretSources
	}

	var raw string
	switch {
	case src.File != "":
		content, err := os.ReadFile(src.File)
		if err != nil {
			return "", fmt.Errorf("failed to read secret file: %w", err)
		}
		raw = string(content)
	case src.Value != "":
		raw = src.Value
	default:
		raw = src.Env
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", cryptoDomain.ErrSecretNotProvided
	}

	if src.KMSKeyURI != "" {
		unwrapped, err := l.unwrap(ctx, src.KMSKeyURI, raw)
		if err != nil {
			return "", err
		}
		raw = unwrapped
	}

	secret, err := cryptoDomain.ParseSecret(raw)
	if err != nil {
		return "", err
	}
	defer secret.Zero()

	return secret.Encode(), nil
}

// unwrap decrypts a KMS wrapped secret and returns its encoded form.
func (l *SecretLoader) unwrap(ctx context.Context, keyURI, wrapped string) (string, error) {
	if l.kmsService == nil {
		return "", fmt.Errorf("KMS key URI set but no KMS service configured")
	}

	ciphertext, err := base64.StdEncoding.DecodeString(wrapped)
	if err != nil {
		return "", fmt.Errorf("%w: wrapped secret is not valid base64", cryptoDomain.ErrInvalidSecret)
	}

	keeper, err := l.kmsService.OpenKeeper(ctx, keyURI)
	if err != nil {
		return "", err
	}
	defer func() { _ = keeper.Close() }()

	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt secret with KMS: %w", err)
	}
	defer cryptoDomain.Zero(plaintext)

	if len(plaintext) != cryptoDomain.SecretSize {
		return "", fmt.Errorf(
			"%w: unwrapped secret must be %d bytes, got %d",
			cryptoDomain.ErrInvalidSecret,
			cryptoDomain.SecretSize,
			len(plaintext),
		)
	}

	return base64.URLEncoding.EncodeToString(plaintext), nil
}

// WrapSecret encrypts the raw bytes of secret with the KMS key at keyURI and returns the
// base64 ciphertext accepted by Load.
func WrapSecret(
	ctx context.Context,
	kmsService KMSService,
	keyURI string,
	secret *cryptoDomain.Secret,
) (string, error) {
	keeper, err := kmsService.OpenKeeper(ctx, keyURI)
	if err != nil {
		return "", err
	}
	defer func() { _ = keeper.Close() }()

	ciphertext, err := keeper.Encrypt(ctx, secret.Bytes())
	if err != nil {
		return "", fmt.Errorf("failed to encrypt secret with KMS: %w", err)
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}
