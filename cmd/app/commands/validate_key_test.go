package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apikeyMocks "github.com/allisson/apikeys/internal/apikey/usecase/mocks"
	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"
)

func TestParseValidateArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		scope     string
		apiKey    string
		expectErr bool
	}{
		{name: "key only", args: []string{"token"}, scope: "ai4eosc", apiKey: "token"},
		{name: "scope and key", args: []string{"tenant", "token"}, scope: "tenant", apiKey: "token"},
		{name: "no arguments", args: nil, expectErr: true},
		{name: "too many arguments", args: []string{"a", "b", "c"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, apiKey, err := ParseValidateArgs(tt.args, "ai4eosc")
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.scope, scope)
			assert.Equal(t, tt.apiKey, apiKey)
		})
	}
}

func TestRunValidateKey(t *testing.T) {
	ctx := context.Background()
	logger := newTestLogger()

	t.Run("valid key", func(t *testing.T) {
		mockUseCase := apikeyMocks.NewMockKeyUseCase(t)
		mockUseCase.On("Validate", ctx, "secret", "token", "ai4eosc").Return(true, nil).Once()

		var out bytes.Buffer
		err := RunValidateKey(ctx, mockUseCase, logger, &out, "secret", "ai4eosc", "token", false)
		require.NoError(t, err)
		assert.Equal(t, "API key is valid.\n", out.String())
	})

	t.Run("invalid key", func(t *testing.T) {
		mockUseCase := apikeyMocks.NewMockKeyUseCase(t)
		mockUseCase.On("Validate", ctx, "secret", "token", "ai4eosc").Return(false, nil).Once()

		var out bytes.Buffer
		err := RunValidateKey(ctx, mockUseCase, logger, &out, "secret", "ai4eosc", "token", false)
		assert.ErrorIs(t, err, ErrInvalidAPIKey)
		assert.Equal(t, "API key is invalid.\n", out.String())
	})

	t.Run("quiet", func(t *testing.T) {
		mockUseCase := apikeyMocks.NewMockKeyUseCase(t)
		mockUseCase.On("Validate", ctx, "secret", "token", "ai4eosc").Return(false, nil).Once()

		var out bytes.Buffer
		err := RunValidateKey(ctx, mockUseCase, logger, &out, "secret", "ai4eosc", "token", true)
		assert.ErrorIs(t, err, ErrInvalidAPIKey)
		assert.Empty(t, out.String())
	})

	t.Run("malformed secret", func(t *testing.T) {
		mockUseCase := apikeyMocks.NewMockKeyUseCase(t)
		mockUseCase.On("Validate", ctx, "bad", "token", "ai4eosc").
			Return(false, cryptoDomain.ErrInvalidSecret).
			Once()

		var out bytes.Buffer
		err := RunValidateKey(ctx, mockUseCase, logger, &out, "bad", "ai4eosc", "token", false)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidSecret)
		assert.NotErrorIs(t, err, ErrInvalidAPIKey)
		assert.Empty(t, out.String())
	})
}
