// Package config loads CLI configuration from ~/.mcp/config.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// ConfigDir is the name of the config directory in home.
	ConfigDir = ".mcp"

	// ConfigFileName is the name of the config file.
	ConfigFileName = "config.toml"

	// DefaultServerURL is used when no server is configured.
	DefaultServerURL = "http://localhost:8080"
)

// Config represents the user-level configuration from ~/.mcp/config.toml.
type Config struct {
	ServerURL  string
	Timeout    time.Duration
	MaxRetries int
	// HasMaxRetries distinguishes an explicit max_retries = 0 from an
	// absent key, which keeps the client default.
	HasMaxRetries bool
	RetryDelay    time.Duration
	LogLevel      string
}

// configFile represents the raw TOML structure.
type configFile struct {
	Server serverSection `toml:"server"`
	Log    logSection    `toml:"log"`
}

type serverSection struct {
	URL            string `toml:"url"`
	TimeoutSeconds *int   `toml:"timeout_seconds"`
	MaxRetries     *int   `toml:"max_retries"`
	RetryDelayMS   *int   `toml:"retry_delay_ms"`
}

type logSection struct {
	Level string `toml:"level"`
}

// Load loads configuration from ~/.mcp/config.toml.
// Returns defaults (not an error) if the file doesn't exist.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return LoadFromDir(homeDir)
}

// LoadFromDir loads config using the specified directory as home.
// This is useful for testing.
func LoadFromDir(homeDir string) (*Config, error) {
	cfg := &Config{
		ServerURL: DefaultServerURL,
		LogLevel:  "info",
	}

	configPath := filepath.Join(homeDir, ConfigDir, ConfigFileName)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var raw configFile
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}

	if raw.Server.URL != "" {
		cfg.ServerURL = raw.Server.URL
	}
	if raw.Server.TimeoutSeconds != nil {
		cfg.Timeout = time.Duration(*raw.Server.TimeoutSeconds) * time.Second
	}
	if raw.Server.MaxRetries != nil {
		if *raw.Server.MaxRetries < 0 {
			return nil, fmt.Errorf("max_retries must not be negative, got %d", *raw.Server.MaxRetries)
		}
		cfg.MaxRetries = *raw.Server.MaxRetries
		cfg.HasMaxRetries = true
	}
	if raw.Server.RetryDelayMS != nil {
		cfg.RetryDelay = time.Duration(*raw.Server.RetryDelayMS) * time.Millisecond
	}
	if raw.Log.Level != "" {
		cfg.LogLevel = raw.Log.Level
	}

	return cfg, nil
}
