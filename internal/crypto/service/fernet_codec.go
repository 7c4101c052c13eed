package service

import (
	"crypto/aes"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"

	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"
)

// Fernet token layout: version (1) || timestamp (8) || IV (16) || ciphertext (n*16) || HMAC (32).
const (
	fernetVersion    byte = 0x80
	fernetHeaderSize      = 1 + 8 + aes.BlockSize
	fernetTagSize         = sha256.Size
	fernetMinSize         = fernetHeaderSize + aes.BlockSize + fernetTagSize

	// fernetNoExpiry skips both the age and the clock skew checks of the fernet library.
	fernetNoExpiry time.Duration = 0
)

// fernetEncoding is the padded URL-safe alphabet required by the Fernet token format, in strict mode.
var fernetEncoding = base64.URLEncoding.Strict()

// fernetDecoy is a well-formed token that never authenticates. Malformed input is verified
// against it so every rejection costs one HMAC check.
var fernetDecoy = func() []byte {
	raw := make([]byte, fernetMinSize)
	raw[0] = fernetVersion
	return []byte(fernetEncoding.EncodeToString(raw))
}()

// FernetCodec implements Codec with the Fernet token format.
//
// Tokens are interoperable with any Fernet implementation holding the same 32-byte key.
// The embedded timestamp is written on encryption but never enforced on decryption,
// so keys do not expire and tokens from hosts with a skewed clock still open.
type FernetCodec struct{}

// NewFernetCodec creates a new FernetCodec.
func NewFernetCodec() *FernetCodec {
	return &FernetCodec{}
}

// Algorithm returns cryptoDomain.Fernet.
func (c *FernetCodec) Algorithm() cryptoDomain.Algorithm {
	return cryptoDomain.Fernet
}

// Encrypt seals plaintext into a Fernet token.
func (c *FernetCodec) Encrypt(secret string, plaintext []byte) (string, error) {
	key, err := fernetKey(secret)
	if err != nil {
		return "", err
	}
	defer clear(key[:])

	token, err := fernet.EncryptAndSign(plaintext, key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt fernet token: %w", err)
	}
	return string(token), nil
}

// Decrypt verifies the HMAC of a Fernet token and returns its plaintext.
//
// The layout is checked before the token reaches the fernet library so that truncated
// input is never sliced out of range. Such input is verified against fernetDecoy instead.
func (c *FernetCodec) Decrypt(secret string, token string) ([]byte, error) {
	key, err := fernetKey(secret)
	if err != nil {
		return nil, err
	}
	defer clear(key[:])

	candidate := []byte(token)
	raw, err := fernetEncoding.DecodeString(token)
	if err != nil || !validFernetLayout(raw) {
		candidate = fernetDecoy
	}

	plaintext := fernet.VerifyAndDecrypt(candidate, fernetNoExpiry, []*fernet.Key{key})
	if plaintext == nil {
		return nil, cryptoDomain.ErrInvalidToken
	}
	return plaintext, nil
}

// fernetKey converts a secret into a fernet key: signing key first, encryption key second.
func fernetKey(secret string) (*fernet.Key, error) {
	s, err := cryptoDomain.ParseSecret(secret)
	if err != nil {
		return nil, err
	}
	defer s.Zero()

	var key fernet.Key
	copy(key[:], s.Bytes())
	return &key, nil
}

func validFernetLayout(raw []byte) bool {
	if len(raw) < fernetMinSize || raw[0] != fernetVersion {
		return false
	}
	return (len(raw)-fernetHeaderSize-fernetTagSize)%aes.BlockSize == 0
}
