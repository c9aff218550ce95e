package config

import (
	"log/slog"
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/bma")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/bma", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "America/Havana", cfg.Location.String())
	assert.Equal(t, 5, cfg.LowStockDefault)
	assert.Equal(t, "http://localhost:5173", cfg.FrontendBaseURL)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("RUN_MIGRATIONS", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("LOW_STOCK_DEFAULT", "8")
	t.Setenv("RATE_LIMIT", "10-S")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.False(t, cfg.RunMigrations)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, 8, cfg.LowStockDefault)
	assert.Equal(t, "10-S", cfg.RateLimit)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "lots")
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("LOG_FORMAT", "xml")
	t.Setenv("LOW_STOCK_DEFAULT", "-3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 5, cfg.LowStockDefault)
}

func TestLoadConfig_InvalidTimezone(t *testing.T) {
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")

	_, err := LoadConfig()
	assert.Error(t, err)
}
