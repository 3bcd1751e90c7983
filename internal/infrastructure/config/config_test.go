package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"RMS_APP_NAME":                os.Getenv("RMS_APP_NAME"),
		"RMS_APP_ENV":                 os.Getenv("RMS_APP_ENV"),
		"RMS_APP_PORT":                os.Getenv("RMS_APP_PORT"),
		"RMS_LOG_LEVEL":               os.Getenv("RMS_LOG_LEVEL"),
		"RMS_LOG_FORMAT":              os.Getenv("RMS_LOG_FORMAT"),
		"RMS_SEED_ENABLED":            os.Getenv("RMS_SEED_ENABLED"),
		"RMS_HTTP_CORS_ALLOW_ORIGINS": os.Getenv("RMS_HTTP_CORS_ALLOW_ORIGINS"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "rms-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, "stdout", cfg.Log.Output)
		assert.True(t, cfg.Seed.Enabled, "seed defaults on")
		assert.Empty(t, cfg.HTTP.CORSAllowOrigins, "no CORS origins until configured")
		assert.NotEmpty(t, cfg.HTTP.CORSAllowMethods)
	})

	t.Run("loads values from environment variables with RMS prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("RMS_APP_NAME", "test-app")
		os.Setenv("RMS_APP_ENV", "testing")
		os.Setenv("RMS_APP_PORT", "9000")
		os.Setenv("RMS_LOG_LEVEL", "debug")
		os.Setenv("RMS_LOG_FORMAT", "json")
		os.Setenv("RMS_SEED_ENABLED", "false")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)
		assert.False(t, cfg.Seed.Enabled)
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		clearEnv()
		os.Setenv("RMS_LOG_FORMAT", "xml")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.format")
	})

	t.Run("rejects wildcard CORS origin in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("RMS_APP_ENV", "production")
		os.Setenv("RMS_HTTP_CORS_ALLOW_ORIGINS", "*")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors_allow_origins")
	})
}
