package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Logging
	LogLevel string

	// Month-view memoization
	ViewCacheSize int
	ViewCacheTTL  time.Duration

	// Rate limiting
	RequestsPerMinute int
}

func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "8082"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		ViewCacheSize:     getEnvInt("VIEW_CACHE_SIZE", 64),
		ViewCacheTTL:      getEnvDuration("VIEW_CACHE_TTL", 10*time.Minute),
		RequestsPerMinute: getEnvInt("REQUESTS_PER_MINUTE", 120),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	if c.ViewCacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid view cache size %d: must be at least 1", c.ViewCacheSize))
	} else if c.ViewCacheSize > 10000 {
		errors = append(errors, fmt.Sprintf("invalid view cache size %d: must be at most 10000", c.ViewCacheSize))
	}

	if c.ViewCacheTTL < time.Second {
		errors = append(errors, fmt.Sprintf("invalid view cache TTL %v: must be at least 1 second", c.ViewCacheTTL))
	} else if c.ViewCacheTTL > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid view cache TTL %v: must be at most 24 hours", c.ViewCacheTTL))
	}

	if c.RequestsPerMinute < 1 {
		errors = append(errors, fmt.Sprintf("invalid rate limit %d: must be at least 1 request per minute", c.RequestsPerMinute))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
