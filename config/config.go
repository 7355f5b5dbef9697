package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Embedded database
	DBPath string

	// Optional user-supplied catalog file (JSON array of food entries)
	CatalogPath string

	// Gin mode: debug, release or test
	GinMode string
}

// LoadConfig creates a new Config instance from environment variables,
// falling back to local-app defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerHost:  getEnv("KCALSNAP_HOST", "127.0.0.1"),
		ServerPort:  getEnv("KCALSNAP_PORT", "8080"),
		DBPath:      getEnv("KCALSNAP_DB_PATH", "kcalsnap.db"),
		CatalogPath: os.Getenv("KCALSNAP_CATALOG_PATH"),
		GinMode:     getEnv("KCALSNAP_GIN_MODE", "release"),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// ValidateConfig checks the configuration for obviously broken values.
func ValidateConfig(cfg *Config) error {
	port, err := strconv.Atoi(cfg.ServerPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid server port %q", cfg.ServerPort)
	}

	if cfg.DBPath == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("database directory %q is not accessible: %w", dir, err)
		}
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid gin mode %q", cfg.GinMode)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
