// Package config loads server settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv               string
	Port                 string
	DBPath               string
	LogLevel             string
	JWTSecret            string
	InstallationTokenTTL time.Duration
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	MetricsNamespace     string
	CORSAllowedOrigins   []string
}

// devJWTSecret signs tokens when no secret is configured in development.
const devJWTSecret = "splitit-development-secret"

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:               valueOrDefault(k.String("APP_ENV"), "development"),
		Port:                 valueOrDefault(k.String("PORT"), "8080"),
		DBPath:               valueOrDefault(k.String("DB_PATH"), "./data/splitit.db"),
		LogLevel:             valueOrDefault(k.String("LOG_LEVEL"), "info"),
		JWTSecret:            k.String("JWT_SECRET"),
		InstallationTokenTTL: parseDuration(k.String("INSTALLATION_TOKEN_TTL"), "8760h"),
		SessionTTL:           parseDuration(k.String("SESSION_TTL"), "24h"),
		SessionSweepInterval: parseDuration(k.String("SESSION_SWEEP_INTERVAL"), "5m"),
		MetricsNamespace:     valueOrDefault(k.String("METRICS_NAMESPACE"), "splitit"),
		CORSAllowedOrigins:   splitAndTrim(valueOrDefault(k.String("CORS_ALLOWED_ORIGINS"), "*")),
	}

	if cfg.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, errors.New("JWT_SECRET is required")
		}
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

// IsDevelopment reports whether the server runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}
