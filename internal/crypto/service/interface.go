// Package service provides the Secret Codec: authenticated encryption of API key payloads
// under a caller supplied secret. Implements Fernet (default, interoperable), AES-256-GCM
// and ChaCha20-Poly1305 codecs, plus KMS and secret loading helpers.
package service

import (
	"context"

	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)

	// NonceSize returns the size of the nonce generated by Encrypt.
	NonceSize() int
}

// Codec seals and opens opaque text tokens under a secret.
//
// Implementations are stateless and safe for concurrent use. They never log and never
// keep key material between calls.
type Codec interface {
	// Algorithm reports the construction used by the codec.
	Algorithm() cryptoDomain.Algorithm

	// Encrypt seals plaintext under secret using fresh randomness.
	// Returns ErrInvalidSecret if the secret is malformed.
	Encrypt(secret string, plaintext []byte) (string, error)

	// Decrypt authenticates and opens token. No plaintext is returned unless the tag verifies.
	// Returns ErrInvalidSecret for a malformed secret and ErrInvalidToken for anything else.
	Decrypt(secret string, token string) ([]byte, error)
}

// CodecManager defines the interface for creating codec instances.
type CodecManager interface {
	// CreateCodec returns the codec for the specified algorithm.
	CreateCodec(alg cryptoDomain.Algorithm) (Codec, error)
}

// KMSService opens KMS keepers used to wrap and unwrap secrets.
type KMSService interface {
	// OpenKeeper opens a keeper for the KMS key identified by keyURI.
	// Returns an error if the KMS provider URI is invalid or connection fails.
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)
}
