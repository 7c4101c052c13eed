// Package config provides application configuration through environment variables.
package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	apikeyDomain "github.com/allisson/apikeys/internal/apikey/domain"
	cryptoDomain "github.com/allisson/apikeys/internal/crypto/domain"
	customValidation "github.com/allisson/apikeys/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// Algorithm selects the token codec used when a command does not override it.
	Algorithm string
	// DefaultScope is the scope used by "keys create" and single-argument "keys validate".
	DefaultScope string
	// DefaultLevel is the level used by "keys create" when --level is omitted.
	DefaultLevel string
	// Secret is the shared key used when neither --key nor --key-file is given.
	Secret string

	// KMSKeyURI, when set, means secrets are stored wrapped by this KMS key.
	KMSKeyURI string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsTextfile is where metrics are written after each run, if set.
	MetricsTextfile string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// API keys
		Algorithm:    env.GetString("APIKEYS_ALGORITHM", cryptoDomain.Fernet.String()),
		DefaultScope: env.GetString("APIKEYS_DEFAULT_SCOPE", "ai4eosc"),
		DefaultLevel: env.GetString("APIKEYS_DEFAULT_LEVEL", apikeyDomain.DefaultLevel.String()),
		Secret:       env.GetString("APIKEYS_SECRET", ""),

		// KMS
		KMSKeyURI: env.GetString("KMS_KEY_URI", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "apikeys"),
		MetricsTextfile:  env.GetString("METRICS_TEXTFILE", ""),
	}
}

// Validate checks enumerated settings so a typo fails at startup rather than on first use.
func (c *Config) Validate() error {
	levels := make([]string, 0, len(apikeyDomain.Levels()))
	for _, l := range apikeyDomain.Levels() {
		levels = append(levels, l.String())
	}

	err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.Required, customValidation.OneOf("debug", "info", "warn", "error")),
		validation.Field(&c.Algorithm, validation.Required, customValidation.OneOf(
			cryptoDomain.Fernet.String(),
			cryptoDomain.AESGCM.String(),
			cryptoDomain.ChaCha20.String(),
		)),
		validation.Field(&c.DefaultLevel, validation.Required, customValidation.OneOf(levels...)),
		validation.Field(&c.DefaultScope, customValidation.ValidUTF8),
		validation.Field(&c.MetricsNamespace, validation.When(c.MetricsEnabled, validation.Required)),
	)
	return customValidation.WrapValidationError(err)
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadDotEnv searches for a .env file from the working directory up to the root and
// loads the first one found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
