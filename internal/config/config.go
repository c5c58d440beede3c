package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port int
	Env  string

	// Logging
	LogLevel string

	// CORS
	AllowedOrigins []string

	// Model parameters. Empty means the pinned defaults.
	ModelParamsPath string

	// Rate limiting. RedisURL is optional; when set, limits are shared
	// across replicas, otherwise each process keeps its own buckets.
	RateLimitPerSecond int
	RateLimitBurst     int
	RedisURL           string

	// Timeouts
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Load loads configuration from the environment, reading a .env file first
// when one is present. Every setting has a workable default; nothing is
// required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnvInt("PORT", 8080),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ModelParamsPath: getEnv("MODEL_PARAMS_PATH", ""),

		RateLimitPerSecond: getEnvInt("RATE_LIMIT_PER_SECOND", 10),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),
		RedisURL:           getEnv("REDIS_URL", ""),

		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 15*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
