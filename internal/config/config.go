// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	FrontendURL string
	// DBPath is the SQLite database location. Empty selects the volatile
	// in-memory store.
	DBPath string
	Oracle OracleConfig
}

// OracleConfig configures the external reasoning service.
type OracleConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", ""),
		DBPath:      getEnv("DB_PATH", ""),
		Oracle: OracleConfig{
			APIKey:  getEnv("XAI_API_KEY", getEnv("GROK_API_KEY", "")),
			BaseURL: getEnv("ORACLE_BASE_URL", "https://api.x.ai/v1"),
			Model:   getEnv("ORACLE_MODEL", "grok-2-1212"),
			Timeout: time.Duration(getEnvInt("ORACLE_TIMEOUT_SECONDS", 30)) * time.Second,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.Oracle.Model == "" {
		return fmt.Errorf("ORACLE_MODEL cannot be empty")
	}
	if c.Oracle.Timeout <= 0 {
		return fmt.Errorf("ORACLE_TIMEOUT_SECONDS must be > 0")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
