package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Backend BackendConfig
	Redis   RedisConfig
}

// BackendConfig holds inventory backend configuration
type BackendConfig struct {
	BaseURL string

	// Token is the Basic auth credential seeded at startup. Optional;
	// without it requests go out unauthenticated until a login stores
	// one.
	Token string

	Timeout time.Duration
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// DraftTTL bounds how long an abandoned draft session lingers in
	// Redis.
	DraftTTL time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Backend: BackendConfig{
			BaseURL: getEnvOrDefault("BACKEND_URL", "http://localhost:8080"),
			Token:   os.Getenv("BACKEND_TOKEN"),
			Timeout: getEnvAsDurationOrDefault("BACKEND_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			DraftTTL: getEnvAsDurationOrDefault("DRAFT_TTL", 4*time.Hour),
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
