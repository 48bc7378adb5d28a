package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("SESSION_TIMEOUT", "")

	cfg := Load()
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "3000", cfg.AppPort)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, time.Hour, cfg.SessionTimeout)
	require.NotEmpty(t, cfg.DatabaseDSN)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "qa")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DATABASE_DSN", "postgres://qa")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("SESSION_TIMEOUT", "120")

	cfg := Load()
	require.Equal(t, "qa", cfg.Env)
	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, "postgres://qa", cfg.DatabaseDSN)
	require.Equal(t, "redis:6379", cfg.RedisAddr)
	require.Equal(t, 2*time.Minute, cfg.SessionTimeout)
}

func TestLoadIgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("SESSION_TIMEOUT", "not-a-number")

	cfg := Load()
	require.Equal(t, time.Hour, cfg.SessionTimeout)

	t.Setenv("SESSION_TIMEOUT", "-5")
	cfg = Load()
	require.Equal(t, time.Hour, cfg.SessionTimeout)
}

func TestProdPresetCarriesNoCredentials(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("DATABASE_DSN", "")

	cfg := Load()
	require.Equal(t, "prod", cfg.Env)
	require.Empty(t, cfg.DatabaseDSN)
}
