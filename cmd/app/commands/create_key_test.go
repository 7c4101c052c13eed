package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apikeyDomain "github.com/allisson/apikeys/internal/apikey/domain"
	apikeyMocks "github.com/allisson/apikeys/internal/apikey/usecase/mocks"
	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunCreateKey(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()

	t.Run("single key", func(t *testing.T) {
		mockUseCase := apikeyMocks.NewMockKeyUseCase(t)
		mockUseCase.On("Create", ctx, "secret", "ai4eosc", apikeyDomain.LevelBronze).
			Return("token-1", nil).
			Once()

		var out bytes.Buffer
		err := RunCreateKey(ctx, mockUseCase, logger, &out, "secret", "ai4eosc", "bronze", 1)
		require.NoError(t, err)
		assert.Equal(t, "token-1\n", out.String())
	})

	t.Run("batch", func(t *testing.T) {
		mockUseCase := apikeyMocks.NewMockKeyUseCase(t)
		mockUseCase.On("CreateBatch", ctx, "secret", "tenant", apikeyDomain.LevelGold, 3).
			Return([]string{"a", "b", "c"}, nil).
			Once()

		var out bytes.Buffer
		err := RunCreateKey(ctx, mockUseCase, logger, &out, "secret", "tenant", "gold", 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, strings.Fields(out.String()))
	})

	t.Run("invalid level", func(t *testing.T) {
		mockUseCase := apikeyMocks.NewMockKeyUseCase(t)

		var out bytes.Buffer
		err := RunCreateKey(ctx, mockUseCase, logger, &out, "secret", "ai4eosc", "BRONZE", 1)
		assert.ErrorIs(t, err, apikeyDomain.ErrInvalidLevel)
		assert.Empty(t, out.String())
	})

	t.Run("use case error", func(t *testing.T) {
		mockUseCase := apikeyMocks.NewMockKeyUseCase(t)
		mockUseCase.On("Create", ctx, "bad", "ai4eosc", apikeyDomain.LevelBronze).
			Return("", cryptoDomain.ErrInvalidSecret).
			Once()

		var out bytes.Buffer
		err := RunCreateKey(ctx, mockUseCase, logger, &out, "bad", "ai4eosc", "bronze", 1)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidSecret)
		assert.Contains(t, err.Error(), "failed to create API key")
	})
}

func TestParseAlgorithm(t *testing.T) {
	alg, err := ParseAlgorithm("")
	require.NoError(t, err)
	assert.Equal(t, cryptoDomain.Algorithm(""), alg)

	alg, err = ParseAlgorithm("chacha20-poly1305")
	require.NoError(t, err)
	assert.Equal(t, cryptoDomain.ChaCha20, alg)

	_, err = ParseAlgorithm("rot13")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid algorithm")
}
