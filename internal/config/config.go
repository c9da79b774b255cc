// Package config holds promptforge configuration: YAML file with
// defaults, overridden by environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all promptforge configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Remote enrichment service
	Remote RemoteConfig `yaml:"remote"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// RemoteConfig configures the remote enrichment client. Generation
// parameters are fixed here, not per call.
type RemoteConfig struct {
	Enabled         bool    `yaml:"enabled"`
	APIKey          string  `yaml:"api_key"`
	Model           string  `yaml:"model"`
	BaseURL         string  `yaml:"base_url"`
	Timeout         string  `yaml:"timeout"`
	Temperature     float64 `yaml:"temperature"`
	TopK            int     `yaml:"top_k"`
	TopP            float64 `yaml:"top_p"`
	MaxOutputTokens int     `yaml:"max_output_tokens"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty = stderr
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "promptforge",
		Version: "1.0.0",

		Remote: RemoteConfig{
			Enabled:         true,
			Model:           "gemini-2.0-flash",
			BaseURL:         "https://generativelanguage.googleapis.com/v1beta",
			Timeout:         "60s",
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 1024,
		},

		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// Load loads configuration from a YAML file. A missing file is not an
// error; defaults plus environment overrides are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides. GEMINI_API_KEY
// wins over GOOGLE_API_KEY; PROMPTFORGE_* variables override individual
// fields.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Remote.APIKey = key
	} else if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		c.Remote.APIKey = key
	}

	if model := os.Getenv("PROMPTFORGE_MODEL"); model != "" {
		c.Remote.Model = model
	}
	if baseURL := os.Getenv("PROMPTFORGE_BASE_URL"); baseURL != "" {
		c.Remote.BaseURL = baseURL
	}
	if remote := os.Getenv("PROMPTFORGE_REMOTE"); remote != "" {
		c.Remote.Enabled = isTruthy(remote)
	}
	if level := os.Getenv("PROMPTFORGE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
