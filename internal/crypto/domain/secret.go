package domain

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

// Secret holds decoded key material shared by the issuer and the validators of API keys.
//
// The core never persists a Secret. Callers obtain one with ParseSecret or GenerateSecret,
// use it for a single operation and release it with Zero.
type Secret struct {
	key []byte
}

// secretEncodings lists the accepted base64 alphabets, most specific first.
var secretEncodings = []*base64.Encoding{
	base64.URLEncoding,
	base64.RawURLEncoding,
	base64.StdEncoding,
	base64.RawStdEncoding,
}

// ParseSecret decodes the textual form of a secret.
//
// Surrounding whitespace is ignored so values read from files can be passed as-is.
// Returns ErrInvalidSecret if the value is not base64 or does not decode to SecretSize bytes.
func ParseSecret(encoded string) (*Secret, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidSecret)
	}

	for _, enc := range secretEncodings {
		key, err := enc.DecodeString(encoded)
		if err != nil {
			continue
		}
		if len(key) != SecretSize {
			Zero(key)
			return nil, fmt.Errorf(
				"%w: must decode to %d bytes, got %d",
				ErrInvalidSecret,
				SecretSize,
				len(key),
			)
		}
		return &Secret{key: key}, nil
	}

	return nil, fmt.Errorf("%w: not valid base64", ErrInvalidSecret)
}

// GenerateSecret returns a new random secret read from crypto/rand.
func GenerateSecret() (*Secret, error) {
	key := make([]byte, SecretSize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}
	return &Secret{key: key}, nil
}

// Bytes returns the raw key material. The slice aliases the Secret; callers must not
// retain it past Zero.
func (s *Secret) Bytes() []byte {
	return s.key
}

// Encode returns the URL-safe, padded base64 form of the secret.
func (s *Secret) Encode() string {
	return base64.URLEncoding.EncodeToString(s.key)
}

// Zero overwrites the key material. The Secret is unusable afterwards.
func (s *Secret) Zero() {
	if s == nil {
		return
	}
	Zero(s.key)
}

// String redacts the key material so a Secret never ends up in logs.
func (s *Secret) String() string {
	return "[REDACTED]"
}
