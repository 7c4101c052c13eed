// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/allisson/apikeys/internal/app"
	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"
)

// ErrInvalidAPIKey is returned by RunValidateKey when the key is rejected. The caller
// exits with status 1 without logging it.
var ErrInvalidAPIKey = errors.New("API key is invalid")

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// CloseContainer flushes the container's resources and logs any errors.
func CloseContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// ParseAlgorithm converts an --algorithm flag value. An empty value selects the
// configured default and is returned unchanged.
func ParseAlgorithm(algorithmStr string) (cryptoDomain.Algorithm, error) {
	if algorithmStr == "" {
		return "", nil
	}
	alg, err := cryptoDomain.ParseAlgorithm(algorithmStr)
	if err != nil {
		return "", fmt.Errorf(
			"invalid algorithm: %s (valid options: %s, %s, %s)",
			algorithmStr,
			cryptoDomain.Fernet,
			cryptoDomain.AESGCM,
			cryptoDomain.ChaCha20,
		)
	}
	return alg, nil
}
