// Package config loads the optional YAML configuration. A missing file is
// not an error: everything has a default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/taskdeck/taskdeck/internal/query"
)

// Config represents the application configuration
type Config struct {
	// DataDir holds the sqlite kv store and logs. Default ~/.taskdeck
	DataDir string `yaml:"data_dir"`

	// PageSize is the table's starting page size. Must be one of the
	// selectable sizes; anything else falls back to the default.
	PageSize int `yaml:"page_size"`

	// EditBuiltins lets the field editor touch the title/required/options
	// of the three built-in columns. Their keys and types stay fixed, and
	// they can never be removed.
	EditBuiltins bool `yaml:"edit_builtins"`

	// Accent is the lipgloss color used for headers and highlights.
	Accent string `yaml:"accent"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		PageSize: query.DefaultPageSize,
		Accent:   "12",
	}
}

// Load reads config.yaml from the user's config directory, falling back to
// defaults when the file (or the directory lookup) is missing.
func Load() (*Config, error) {
	cfg := Default()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	valid := false
	for _, size := range query.PageSizes {
		if c.PageSize == size {
			valid = true
			break
		}
	}
	if !valid {
		c.PageSize = query.DefaultPageSize
	}
	if c.Accent == "" {
		c.Accent = "12"
	}
}

// ResolveDataDir returns the configured data directory, defaulting to
// ~/.taskdeck.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".taskdeck"), nil
}

// DBPath returns the path of the sqlite kv store.
func (c *Config) DBPath() (string, error) {
	dir, err := c.ResolveDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "taskdeck.db"), nil
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "taskdeck", "config.yaml"), nil
}
