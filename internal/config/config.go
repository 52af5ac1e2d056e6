// Package config provides user configuration management,
// including reading and writing the gitgud configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the user configuration
type Config struct {
	Reverse *bool   `json:"reverse,omitempty"` // Render graphs oldest commit first
	Plain   *bool   `json:"plain,omitempty"`   // Disable colored output
	LogFile *string `json:"logFile,omitempty"` // Override the default log file path
}

// ConfigPath returns the path to the configuration file.
// If GITGUD_CONFIG is set, uses that path.
// Otherwise, uses ~/.gitgud/config.json
func ConfigPath() string {
	if customPath := os.Getenv("GITGUD_CONFIG"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gitgud.json"
	}

	return filepath.Join(homeDir, ".gitgud", "config.json")
}

// Load reads the configuration file
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		// Config doesn't exist - return default
		return &Config{}, nil
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// Save writes the configuration file, creating its directory if needed
func (c *Config) Save() error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// IsReverse returns whether graphs render oldest commit first
func (c *Config) IsReverse() bool {
	return c.Reverse != nil && *c.Reverse
}

// IsPlain returns whether colored output is disabled
func (c *Config) IsPlain() bool {
	return c.Plain != nil && *c.Plain
}

// GetLogFile returns the configured log file override, or empty
func (c *Config) GetLogFile() string {
	if c.LogFile != nil {
		return *c.LogFile
	}
	return ""
}
