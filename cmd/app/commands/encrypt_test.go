package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"
	cryptoService "github.com/allisson/apikeys/internal/crypto/service"
)

func TestRunEncryptDecrypt(t *testing.T) {
	codec := cryptoService.NewFernetCodec()
	secret, err := cryptoDomain.GenerateSecret()
	require.NoError(t, err)

	var encrypted bytes.Buffer
	require.NoError(t, RunEncrypt(codec, &encrypted, secret.Encode(), "hello world"))
	token := strings.TrimSuffix(encrypted.String(), "\n")

	var decrypted bytes.Buffer
	require.NoError(t, RunDecrypt(codec, &decrypted, secret.Encode(), token))
	assert.Equal(t, "hello world\n", decrypted.String())
}

func TestRunDecrypt_ReferenceToken(t *testing.T) {
	var out bytes.Buffer
	err := RunDecrypt(
		cryptoService.NewFernetCodec(),
		&out,
		"cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4=",
		"gAAAAAAdwJ6wAAECAwQFBgcICQoLDA0ODy021cpGVWKZ_eEwCGM4BLLF_5CV9dOPmrhuVUPgJobwOz7JcbmrR64jVmpU4IwqDA==",
	)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out.String())
}

func TestRunEncryptDecrypt_Errors(t *testing.T) {
	codec := cryptoService.NewFernetCodec()

	var out bytes.Buffer
	err := RunEncrypt(codec, &out, "not-a-secret", "hello")
	assert.ErrorIs(t, err, cryptoDomain.ErrInvalidSecret)

	secret, err := cryptoDomain.GenerateSecret()
	require.NoError(t, err)
	err = RunDecrypt(codec, &out, secret.Encode(), "garbage")
	assert.ErrorIs(t, err, cryptoDomain.ErrInvalidToken)
	assert.Empty(t, out.String())
}
