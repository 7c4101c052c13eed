package commands

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"
	cryptoService "github.com/allisson/apikeys/internal/crypto/service"
)

// MockKMSService is a manual testify mock of KMSService.
type MockKMSService struct {
	mock.Mock
}

func (m *MockKMSService) OpenKeeper(ctx context.Context, uri string) (cryptoDomain.KMSKeeper, error) {
	args := m.Called(ctx, uri)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(cryptoDomain.KMSKeeper), args.Error(1)
}

type MockKMSKeeper struct {
	mock.Mock
}

func (m *MockKMSKeeper) Encrypt(ctx context.Context, plaintext []byte) ([]byte, error) {
	args := m.Called(ctx, plaintext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKMSKeeper) Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKMSKeeper) Close() error {
	return m.Called().Error(0)
}

func TestRunGenerateSecret(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()

	t.Run("prints a usable secret", func(t *testing.T) {
		var out bytes.Buffer
		err := RunGenerateSecret(ctx, nil, logger, &out, "", "")
		require.NoError(t, err)

		value := strings.TrimSuffix(out.String(), "\n")
		secret, err := cryptoDomain.ParseSecret(value)
		require.NoError(t, err)
		assert.Len(t, secret.Bytes(), cryptoDomain.SecretSize)

		token, err := cryptoService.NewFernetCodec().Encrypt(value, []byte("hello"))
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("writes the secret to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "secret.key")

		var out bytes.Buffer
		err := RunGenerateSecret(ctx, nil, logger, &out, path, "")
		require.NoError(t, err)
		assert.Empty(t, out.String())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		_, err = cryptoDomain.ParseSecret(string(data))
		assert.NoError(t, err)
		assert.False(t, strings.HasSuffix(string(data), "\n"))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("wraps the secret with KMS", func(t *testing.T) {
		mockService := &MockKMSService{}
		mockKeeper := &MockKMSKeeper{}
		mockService.On("OpenKeeper", ctx, "base64key://test").Return(mockKeeper, nil)
		mockKeeper.On("Encrypt", ctx, mock.MatchedBy(func(b []byte) bool {
			return len(b) == cryptoDomain.SecretSize
		})).Return([]byte("wrapped"), nil)
		mockKeeper.On("Close").Return(nil)

		var out bytes.Buffer
		err := RunGenerateSecret(ctx, mockService, logger, &out, "", "base64key://test")
		require.NoError(t, err)
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("wrapped"))+"\n", out.String())

		mockService.AssertExpectations(t)
		mockKeeper.AssertExpectations(t)
	})

	t.Run("KMS failure", func(t *testing.T) {
		mockService := &MockKMSService{}
		mockService.On("OpenKeeper", ctx, "awskms:///alias/missing").Return(nil, errors.New("no credentials"))

		var out bytes.Buffer
		err := RunGenerateSecret(ctx, mockService, logger, &out, "", "awskms:///alias/missing")
		require.Error(t, err)
		assert.Empty(t, out.String())
	})
}
