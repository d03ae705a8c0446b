// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all server configuration.
type Config struct {
	Port           string
	DBPath         string // empty means the default data-dir path
	AllowedOrigins []string
	LogLevel       string // debug, info, warn, error
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("AIVY_PORT", "8080"),
		DBPath:         getEnv("AIVY_DB", ""),
		AllowedOrigins: splitList(getEnv("AIVY_ALLOWED_ORIGINS", "*")),
		LogLevel:       getEnv("AIVY_LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are sane.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("AIVY_PORT cannot be empty")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown AIVY_LOG_LEVEL: %q", c.LogLevel)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
