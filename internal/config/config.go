package config

import (
	"os"

	"statlib/internal/errors"
)

// Config holds the settings shared by the statdoc and describe commands.
type Config struct {
	Server ServerConfig
	Docs   DocsConfig
}

// ServerConfig holds the docs viewer settings.
type ServerConfig struct {
	Addr string
}

// DocsConfig holds documentation generation settings.
type DocsConfig struct {
	SourceDir string
	Title     string
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Addr: getEnvOrDefault("STATDOC_ADDR", ":8080"),
		},
		Docs: DocsConfig{
			SourceDir: getEnvOrDefault("STATDOC_SOURCE", "."),
			Title:     getEnvOrDefault("STATDOC_TITLE", "statlib reference"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Addr == "" {
		return errors.ConfigInvalid("server address is required")
	}
	if info, err := os.Stat(config.Docs.SourceDir); err != nil || !info.IsDir() {
		return errors.ConfigInvalid("source directory is not readable: " + config.Docs.SourceDir)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
