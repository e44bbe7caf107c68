package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProdConfig() *Config {
	return &Config{
		Port:         "8460",
		JWTSecret:    strings.Repeat("s", 32),
		Env:          "production",
		GeminiAPIKey: "real-key",
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("development accepts defaults", func(t *testing.T) {
		cfg := &Config{
			Port:      "8460",
			JWTSecret: "your-secret-key-change-in-production",
			Env:       "development",
		}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("port is required", func(t *testing.T) {
		cfg := validProdConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("jwt secret is required", func(t *testing.T) {
		cfg := validProdConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects the default secret", func(t *testing.T) {
		cfg := validProdConfig()
		cfg.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects short secrets", func(t *testing.T) {
		cfg := validProdConfig()
		cfg.JWTSecret = "short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production requires a Gemini key", func(t *testing.T) {
		cfg := validProdConfig()
		cfg.GeminiAPIKey = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("valid production config passes", func(t *testing.T) {
		assert.NoError(t, validProdConfig().Validate())
	})
}
