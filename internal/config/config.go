// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the doccheck configuration, loadable from a JSON file. All
// fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; empty disables persistence

	// Analysis
	SchemaDir string `json:"schema_dir,omitempty"` // Directory with field JSON Schemas

	// Summaries
	APIKey string `json:"api_key,omitempty"` // Gemini API key; empty selects the template fallback

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed analysis output
}

// LoadConfig loads configuration from a JSON file. Relative paths are
// resolved against the working directory.
func LoadConfig(path string) (*Config, error) {
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.SchemaDir != "" {
		if info, err := os.Stat(c.SchemaDir); err != nil || !info.IsDir() {
			return fmt.Errorf("config error: schema directory not found: %s", c.SchemaDir)
		}
	}
	return nil
}

// ApplyEnv overlays environment variables onto empty config fields.
// Env vars win over nothing but lose to values already set.
func (c *Config) ApplyEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.SchemaDir == "" {
		c.SchemaDir = os.Getenv("DOCCHECK_SCHEMA_DIR")
	}
}
