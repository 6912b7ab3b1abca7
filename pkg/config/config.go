// Package config provides configuration loading and management for
// headcirctool. It handles loading configuration from YAML files and
// provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration loaded from YAML
type Config struct {
	// Rotation parameters
	Rotation struct {
		// MinDegrees is the lower bound of the rotation angle domain
		MinDegrees int `yaml:"minDegrees"`

		// MaxDegrees is the upper bound of the rotation angle domain
		MaxDegrees int `yaml:"maxDegrees"`
	} `yaml:"rotation"`

	// Contour extraction parameters
	Contour struct {
		// InvalidSliceContours is the contour count at or above which
		// a slice is considered too noisy to measure
		InvalidSliceContours int `yaml:"invalidSliceContours"`

		// Color is the overlay colour for rendered contours, either a
		// 6-hexit rrggbb string or a named colour (e.g. red)
		Color string `yaml:"color"`
	} `yaml:"contour"`

	// Smoothing parameters for the optional pre-render pass
	Smoothing struct {
		// Enabled applies the smoothing pass before rendering
		Enabled bool `yaml:"enabled"`

		// Iterations is the number of diffusion iterations
		Iterations int `yaml:"iterations"`

		// TimeStep is the diffusion time step
		TimeStep float64 `yaml:"timeStep"`

		// Conductance controls how strongly edges block diffusion
		Conductance float64 `yaml:"conductance"`
	} `yaml:"smoothing"`

	// Output parameters
	Output struct {
		// ImageDir is the directory rendered slices are exported to
		ImageDir string `yaml:"imageDir"`

		// UseIndexNames names exported files by collection index
		// instead of the source image name
		UseIndexNames bool `yaml:"useIndexNames"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Set default rotation domain
	cfg.Rotation.MinDegrees = -90
	cfg.Rotation.MaxDegrees = 90

	// Set default contour parameters
	cfg.Contour.InvalidSliceContours = 10
	cfg.Contour.Color = "b55162"

	// Set default smoothing parameters
	cfg.Smoothing.Enabled = false
	cfg.Smoothing.Iterations = 5
	cfg.Smoothing.TimeStep = 0.125
	cfg.Smoothing.Conductance = 3.0

	// Set default output parameters
	cfg.Output.ImageDir = "img"
	cfg.Output.UseIndexNames = false

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

// CreateDefaultConfigFile creates a default configuration file at the specified path
func CreateDefaultConfigFile(configPath string) error {
	cfg := DefaultConfig()
	return SaveConfig(cfg, configPath)
}
