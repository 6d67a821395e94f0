// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	ServerPort            string
	FrontendURL           string
	EnableHSTS            bool
	StoreBackend          string
	SQLitePath            string
	RedisURL              string
	RateLimit             string
	RequestTimeoutSeconds int
	TipsFile              string
	ServerDebugMode       bool
	OTELEnabled           bool
	OTELEndpoint          string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:            getEnv("SERVER_PORT", "8080"),
		FrontendURL:           getEnv("FRONTEND_URL", "http://localhost:3000"),
		EnableHSTS:            getEnvBool("ENABLE_HSTS", false),
		StoreBackend:          getEnv("STORE_BACKEND", "sqlite"),
		SQLitePath:            getEnv("SQLITE_PATH", "asistente.db"),
		RedisURL:              getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RateLimit:             getEnv("RATE_LIMIT", "5-S"),
		RequestTimeoutSeconds: getEnvInt("REQUEST_TIMEOUT_SECONDS", 30),
		TipsFile:              getEnv("TIPS_FILE", ""),
		ServerDebugMode:       getEnvBool("SERVER_DEBUG_MODE", false),
		OTELEnabled:           getEnvBool("OTEL_ENABLED", false),
		OTELEndpoint:          getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	switch cfg.StoreBackend {
	case "memory", "sqlite", "redis":
	default:
		return nil, fmt.Errorf("STORE_BACKEND must be one of memory, sqlite, redis; got %q", cfg.StoreBackend)
	}

	if cfg.StoreBackend == "sqlite" && cfg.SQLitePath == "" {
		return nil, fmt.Errorf("SQLITE_PATH is required for the sqlite backend")
	}
	if cfg.StoreBackend == "redis" && cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required for the redis backend")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
