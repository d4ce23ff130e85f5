package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "briar", cfg.AppName)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 70.0, cfg.AlertThreshold)
		assert.Equal(t, 50.0, cfg.ReviewThreshold)
		assert.Equal(t, 0.85, cfg.JaroWinklerThreshold)
		assert.Equal(t, 2, cfg.NGramSize)
		assert.Equal(t, 4, cfg.ScreeningWorkers)
	})

	t.Run("should read overrides from the environment", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("ALERT_THRESHOLD", "80")
		t.Setenv("SCREENING_WORKERS", "16")
		t.Setenv("PRETTY_LOGS", "true")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 80.0, cfg.AlertThreshold)
		assert.Equal(t, 16, cfg.ScreeningWorkers)
		assert.True(t, cfg.PrettyLogs)
	})

	t.Run("should fall back on unparseable values", func(t *testing.T) {
		t.Setenv("SCREENING_WORKERS", "many")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.ScreeningWorkers)
	})
}
