package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the solvers cannot work with.
func (c *Config) Validate() error {
	if !(c.Physics.JumpTime > 0) {
		return fmt.Errorf("physics.jump_time must be positive, got %v", c.Physics.JumpTime)
	}
	if c.Interp.Speed < 0 {
		return fmt.Errorf("interp.speed must not be negative, got %v", c.Interp.Speed)
	}
	if c.Interp.Tolerance < 0 {
		return fmt.Errorf("interp.tolerance must not be negative, got %v", c.Interp.Tolerance)
	}
	if c.Interp.MaxFrames < 1 {
		return fmt.Errorf("interp.max_frames must be at least 1, got %d", c.Interp.MaxFrames)
	}
	if c.Script.Workers < 1 {
		return fmt.Errorf("script.workers must be at least 1, got %d", c.Script.Workers)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		DefaultPath(),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "GameplayUtils")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "GameplayUtils")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "gameplay-utils")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "gameplay-utils")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
