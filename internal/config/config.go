package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a sensible default so the service starts with no env set.
type Config struct {
	// Server
	HTTPPort        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Runtime profile (e.g. "production", "staging"). Non-production
	// profiles get a human-readable development logger.
	Profile string

	// Identity reported by the two routes.
	ServiceName     string
	ServiceVersion  string
	GreetingMessage string

	// Rate limiting: maximum requests per second across all routes.
	// Zero disables the limiter.
	RateLimit int
}

func Load() (*Config, error) {
	port := getEnv("HTTP_PORT", "8080")
	if _, err := strconv.Atoi(port); err != nil {
		return nil, fmt.Errorf("HTTP_PORT must be numeric, got %q", port)
	}

	return &Config{
		HTTPPort:        port,
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		Profile: getEnv("APP_PROFILE", "production"),

		ServiceName:     getEnv("SERVICE_NAME", "demo-microservice"),
		ServiceVersion:  getEnv("SERVICE_VERSION", "1.0.0"),
		GreetingMessage: getEnv("GREETING_MESSAGE", "Hello from Microservice! New message here hihi!"),

		RateLimit: getInt("RATE_LIMIT", 100),
	}, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
