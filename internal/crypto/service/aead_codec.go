package service

import (
	"encoding/base64"
	"fmt"

	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"
)

// Version bytes prefixed to AEAD tokens. The byte is also bound as additional
// authenticated data so a token cannot be replayed under the other algorithm.
const (
	aesGCMTokenVersion   byte = 0x01
	chaCha20TokenVersion byte = 0x02

	// aeadTagSize is the tag length of both AES-GCM and ChaCha20-Poly1305.
	aeadTagSize = 16
)

// tokenEncoding rejects non-canonical trailing bits so that every character of a token
// contributes to the authenticated bytes.
var tokenEncoding = base64.RawURLEncoding.Strict()

// AEADCodec implements Codec on top of a nonce-based AEAD cipher.
//
// Token layout, base64 RawURL encoded:
//
//	version (1 byte) || nonce (12 bytes) || ciphertext || tag (16 bytes)
type AEADCodec struct {
	alg     cryptoDomain.Algorithm
	version byte
	newAEAD func(key []byte) (AEAD, error)
}

// NewAESGCMCodec creates a codec sealing tokens with AES-256-GCM.
func NewAESGCMCodec() *AEADCodec {
	return &AEADCodec{
		alg:     cryptoDomain.AESGCM,
		version: aesGCMTokenVersion,
		newAEAD: func(key []byte) (AEAD, error) { return NewAESGCM(key) },
	}
}

// NewChaCha20Poly1305Codec creates a codec sealing tokens with ChaCha20-Poly1305.
func NewChaCha20Poly1305Codec() *AEADCodec {
	return &AEADCodec{
		alg:     cryptoDomain.ChaCha20,
		version: chaCha20TokenVersion,
		newAEAD: func(key []byte) (AEAD, error) { return NewChaCha20Poly1305(key) },
	}
}

// Algorithm returns the codec algorithm.
func (c *AEADCodec) Algorithm() cryptoDomain.Algorithm {
	return c.alg
}

// Encrypt seals plaintext under secret and returns the encoded token.
func (c *AEADCodec) Encrypt(secret string, plaintext []byte) (string, error) {
	aead, err := c.open(secret)
	if err != nil {
		return "", err
	}

	aad := []byte{c.version}
	ciphertext, nonce, err := aead.Encrypt(plaintext, aad)
	if err != nil {
		return "", err
	}

	raw := make([]byte, 0, 1+len(nonce)+len(ciphertext))
	raw = append(raw, c.version)
	raw = append(raw, nonce...)
	raw = append(raw, ciphertext...)

	return tokenEncoding.EncodeToString(raw), nil
}

// Decrypt authenticates and opens token. Every rejection, malformed input included,
// goes through exactly one tag check.
func (c *AEADCodec) Decrypt(secret string, token string) ([]byte, error) {
	aead, err := c.open(secret)
	if err != nil {
		return nil, err
	}

	nonceSize := aead.NonceSize()
	raw, err := tokenEncoding.DecodeString(token)
	if err != nil || len(raw) < 1+nonceSize+aeadTagSize {
		// Malformed input is opened as an all-zero token that never authenticates.
		raw = make([]byte, 1+nonceSize+aeadTagSize)
	}

	// The version byte is the AAD, so a foreign or unknown version fails the tag check.
	plaintext, err := aead.Decrypt(raw[1+nonceSize:], raw[1:1+nonceSize], raw[:1])
	if err != nil {
		return nil, cryptoDomain.ErrInvalidToken
	}
	return plaintext, nil
}

// open parses the secret and builds the cipher. The decoded key is zeroed once the
// cipher has expanded it.
func (c *AEADCodec) open(secret string) (AEAD, error) {
	s, err := cryptoDomain.ParseSecret(secret)
	if err != nil {
		return nil, err
	}
	defer s.Zero()

	aead, err := c.newAEAD(s.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to create %s cipher: %w", c.alg, err)
	}
	return aead, nil
}
