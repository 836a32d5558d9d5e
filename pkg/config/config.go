// Package config provides configuration loading and management for the
// gridless imaging tool. It handles loading configuration from YAML
// files and provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Imaging parameters
	Imaging struct {
		// Nside is the HEALPix resolution parameter; must be a
		// positive power of two
		Nside int `yaml:"nside"`

		// UseRealOnly selects the real-part pixel reduction instead
		// of the magnitude reduction
		UseRealOnly bool `yaml:"useRealOnly"`

		// FastMath enables the polynomial trigonometry approximation
		// (~0.1% worst-case error) in the harmonics hot loop
		FastMath bool `yaml:"fastMath"`

		// NumWorkers bounds the baseline worker pool; zero means one
		// worker per CPU
		NumWorkers int `yaml:"numWorkers"`
	} `yaml:"imaging"`

	// Output parameters
	Output struct {
		// Width is the SVG canvas edge in pixels
		Width int `yaml:"width"`

		// ShowSources overlays known celestial source markers
		ShowSources bool `yaml:"showSources"`

		// ShowGrid overlays elevation/azimuth grid lines
		ShowGrid bool `yaml:"showGrid"`

		// ShowStats prints the brightness statistics block
		ShowStats bool `yaml:"showStats"`

		// ShowColorbar draws the brightness color scale
		ShowColorbar bool `yaml:"showColorbar"`

		// Verbose controls the level of logging output
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Imaging.Nside = 64
	cfg.Imaging.UseRealOnly = false
	cfg.Imaging.FastMath = true
	cfg.Imaging.NumWorkers = runtime.NumCPU()

	cfg.Output.Width = 4000
	cfg.Output.ShowSources = false
	cfg.Output.ShowGrid = true
	cfg.Output.ShowStats = false
	cfg.Output.ShowColorbar = true
	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file
// If the file doesn't exist, it returns the default configuration
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Check if config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	// Marshal config to YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}
