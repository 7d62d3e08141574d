package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Run("Should return defaults when nothing else is set", func(t *testing.T) {
		svc := NewService()

		cfg, err := svc.Load(t.Context(), nil)

		require.NoError(t, err)
		assert.Equal(t, "config.yaml", cfg.ConfigFile)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "auto", cfg.ColorMode)
		assert.False(t, cfg.LogJSON)
		assert.Empty(t, cfg.EnvFile)
	})

	t.Run("Should apply FORGECONF environment overrides", func(t *testing.T) {
		t.Setenv("FORGECONF_LOG_LEVEL", "debug")
		t.Setenv("FORGECONF_CONFIG_FILE", "deploy/config.yaml")
		svc := NewService()

		cfg, err := svc.Load(t.Context(), nil)

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "deploy/config.yaml", cfg.ConfigFile)
	})

	t.Run("Should let CLI flags win over environment", func(t *testing.T) {
		t.Setenv("FORGECONF_LOG_LEVEL", "debug")
		svc := NewService()

		cfg, err := svc.Load(t.Context(), map[string]any{
			"log_level": "error",
			"env_file":  ".env.production",
		})

		require.NoError(t, err)
		assert.Equal(t, "error", cfg.LogLevel)
		assert.Equal(t, ".env.production", cfg.EnvFile)
	})

	t.Run("Should coerce boolean flags weakly", func(t *testing.T) {
		t.Setenv("FORGECONF_LOG_JSON", "true")
		svc := NewService()

		cfg, err := svc.Load(t.Context(), nil)

		require.NoError(t, err)
		assert.True(t, cfg.LogJSON)
	})

	t.Run("Should reject invalid log level", func(t *testing.T) {
		svc := NewService()

		_, err := svc.Load(t.Context(), map[string]any{"log_level": "verbose"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("Should reject invalid color mode", func(t *testing.T) {
		svc := NewService()

		_, err := svc.Load(t.Context(), map[string]any{"color_mode": "rainbow"})

		require.Error(t, err)
	})
}

func TestLoader_Validate(t *testing.T) {
	t.Run("Should reject nil settings", func(t *testing.T) {
		svc := NewService()

		err := svc.Validate(nil)

		require.Error(t, err)
	})

	t.Run("Should require a config file path", func(t *testing.T) {
		svc := NewService()

		err := svc.Validate(&Config{LogLevel: "info", ColorMode: "auto"})

		require.Error(t, err)
	})
}
