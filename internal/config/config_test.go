package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "PORT", "DB_PATH", "LOG_LEVEL", "JWT_SECRET",
		"INSTALLATION_TOKEN_TTL", "SESSION_TTL", "SESSION_SWEEP_INTERVAL", "METRICS_NAMESPACE", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.HTTPAddr())
	assert.Equal(t, "./data/splitit.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.Equal(t, 8760*time.Hour, cfg.InstallationTokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5*time.Minute, cfg.SessionSweepInterval)
	assert.Equal(t, "splitit", cfg.MetricsNamespace)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", ":9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("INSTALLATION_TOKEN_TTL", "24h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, ":9090", cfg.HTTPAddr())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.InstallationTokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadRequiresSecretOutsideDevelopment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	assert.EqualError(t, err, "JWT_SECRET is required")
}

func TestParseDurationFallsBack(t *testing.T) {
	assert.Equal(t, time.Hour, parseDuration("soon", "1h"))
}
