package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Host)
	assert.Equal(t, float64(2), cfg.RateRPS)
	assert.Equal(t, 4, cfg.RateMax)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("RATE_LIMIT_RPS", "10.5")
	t.Setenv("RATE_LIMIT_BURST", "20")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "9000", cfg.App.Port)
	assert.Equal(t, 10.5, cfg.RateRPS)
	assert.Equal(t, 20, cfg.RateMax)
}

func TestLoadIgnoresUnparseableNumbers(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.RateMax)
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_MAX_CONN_LIFETIME", "10m")

	cfg, err := LoadDatabaseConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 5433, cfg.Port)
	assert.Equal(t, 10*time.Minute, cfg.MaxConnLifetime)
	assert.Equal(t, int32(25), cfg.MaxConns)
}

func TestLoadDatabaseConfigRejectsBadDuration(t *testing.T) {
	t.Setenv("DB_RETRY_DELAY", "soon")

	_, err := LoadDatabaseConfig()
	assert.Error(t, err)
}
