package service

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"testing"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"
)

func TestFernetCodec_Algorithm(t *testing.T) {
	assert.Equal(t, cryptoDomain.Fernet, NewFernetCodec().Algorithm())
}

func TestFernetCodec_DecryptReferenceToken(t *testing.T) {
	// Published Fernet test vector, issued in 1985. It still opens
	// because token timestamps are not enforced.
	secret := "cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4="
	token := "gAAAAAAdwJ6wAAECAwQFBgcICQoLDA0ODy021cpGVWKZ_eEwCGM4BLLF_5CV9dOPmrhuVUPgJobwOz7JcbmrR64jVmpU4IwqDA=="

	plaintext, err := NewFernetCodec().Decrypt(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(plaintext))
}

func TestFernetCodec_TokenLayout(t *testing.T) {
	codec := NewFernetCodec()
	token, err := codec.Encrypt(newTestSecret(t), []byte("payload"))
	require.NoError(t, err)

	raw, err := base64.URLEncoding.DecodeString(token)
	require.NoError(t, err)

	assert.Equal(t, fernetVersion, raw[0])
	assert.True(t, validFernetLayout(raw))
	assert.Len(t, raw, fernetHeaderSize+16+fernetTagSize)
}

func TestValidFernetLayout(t *testing.T) {
	valid := make([]byte, fernetMinSize)
	valid[0] = fernetVersion

	tests := []struct {
		name     string
		raw      []byte
		expected bool
	}{
		{name: "minimum size", raw: valid, expected: true},
		{name: "empty", raw: nil, expected: false},
		{name: "header only", raw: valid[:fernetHeaderSize], expected: false},
		{name: "partial block", raw: append(append([]byte{}, valid...), 1, 2, 3), expected: false},
		{name: "wrong version", raw: append([]byte{0x81}, valid[1:]...), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validFernetLayout(tt.raw))
		})
	}
}

// sealFernetAt builds a Fernet token by hand with an arbitrary timestamp, the way another
// Fernet implementation on a host with a different clock would.
func sealFernetAt(t *testing.T, secret string, issuedAt time.Time, msg []byte) string {
	t.Helper()
	s, err := cryptoDomain.ParseSecret(secret)
	require.NoError(t, err)
	key := s.Bytes()

	iv := make([]byte, aes.BlockSize)
	_, err = rand.Read(iv)
	require.NoError(t, err)

	pad := aes.BlockSize - len(msg)%aes.BlockSize
	padded := append(append([]byte{}, msg...), bytes.Repeat([]byte{byte(pad)}, pad)...)

	block, err := aes.NewCipher(key[16:])
	require.NoError(t, err)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	raw := []byte{fernetVersion}
	raw = binary.BigEndian.AppendUint64(raw, uint64(issuedAt.Unix()))
	raw = append(raw, iv...)
	raw = append(raw, ciphertext...)

	mac := hmac.New(sha256.New, key[:16])
	mac.Write(raw)
	raw = mac.Sum(raw)

	return base64.URLEncoding.EncodeToString(raw)
}

func TestFernetCodec_TimestampNotEnforced(t *testing.T) {
	secret := newTestSecret(t)
	codec := NewFernetCodec()
	msg := []byte(`{"nonce":"0011223344556677","scope":"ai4eosc","level":"gold"}`)

	tests := []struct {
		name     string
		issuedAt time.Time
	}{
		{name: "now", issuedAt: time.Now()},
		{name: "clock ahead by five minutes", issuedAt: time.Now().Add(5 * time.Minute)},
		{name: "clock ahead by a day", issuedAt: time.Now().Add(24 * time.Hour)},
		{name: "ten years old", issuedAt: time.Now().AddDate(-10, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := sealFernetAt(t, secret, tt.issuedAt, msg)

			plaintext, err := codec.Decrypt(secret, token)
			require.NoError(t, err)
			assert.Equal(t, msg, plaintext)

			_, err = codec.Decrypt(newTestSecret(t), token)
			assert.ErrorIs(t, err, cryptoDomain.ErrInvalidToken)
		})
	}
}

func TestFernetDecoy_NeverAuthenticates(t *testing.T) {
	raw, err := fernetEncoding.DecodeString(string(fernetDecoy))
	require.NoError(t, err)
	assert.True(t, validFernetLayout(raw))

	key, err := fernetKey(newTestSecret(t))
	require.NoError(t, err)
	assert.Nil(t, fernet.VerifyAndDecrypt(fernetDecoy, fernetNoExpiry, []*fernet.Key{key}))

	for _, token := range []string{"", "gAAA", "not base64 at all", string(fernetDecoy[:20])} {
		_, err := NewFernetCodec().Decrypt(newTestSecret(t), token)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidToken)
	}
}
