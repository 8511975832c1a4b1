// Package config handles loading and saving user configuration for memenhance.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/memenhance/internal/layout"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file in the config directory.
const FileName = "config.yaml"

// Config holds all user configuration.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Catalog CatalogConfig `yaml:"catalog"`
}

// RenderConfig holds settings for SVG output.
type RenderConfig struct {
	TextWidth  float64 `yaml:"text_width"`  // Pixel width of a character cell
	TextHeight float64 `yaml:"text_height"` // Pixel height of a character cell
	FontFamily string  `yaml:"font_family"`
	FontSize   float64 `yaml:"font_size"`
	Padding    int     `yaml:"padding"`   // Empty rows below the text
	Parallel   bool    `yaml:"parallel"`  // Analyse lines concurrently
	ShowRest   bool    `yaml:"show_rest"` // Draw the residual text beneath the memes
}

// CatalogConfig holds settings for the face catalog.
type CatalogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"` // Defaults to faces.db in the config directory
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			TextWidth:  8,
			TextHeight: 16,
			FontFamily: "arial",
			FontSize:   14,
			Padding:    1,
		},
	}
}

// Settings returns the cell size for the layout engine.
func (c *Config) Settings() layout.Settings {
	return layout.Settings{TextWidth: c.Render.TextWidth, TextHeight: c.Render.TextHeight}
}

// Load loads configuration from a YAML file. Values missing from the file
// keep their defaults; a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Settings().Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// CatalogPath returns the catalog database path, resolved against dir when
// none is configured.
func (c *Config) CatalogPath(dir string) string {
	if c.Catalog.Path != "" {
		return c.Catalog.Path
	}
	return filepath.Join(dir, "faces.db")
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "memenhance"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
