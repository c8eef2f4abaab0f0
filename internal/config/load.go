package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

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
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate reports settings the showcase cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Scene.File == "" && c.Scene.Builtin == "" {
		errs = append(errs, errors.New("scene: neither file nor builtin is set"))
	}
	if c.Scene.Breakpoint < 0 {
		errs = append(errs, fmt.Errorf("scene: breakpoint %d is negative", c.Scene.Breakpoint))
	}
	if t := c.Scene.VisibilityThreshold; !(t >= 0 && t <= 1) {
		errs = append(errs, fmt.Errorf("scene: visibility_threshold %v is outside [0, 1]", t))
	}
	if !c.Loading.Skip {
		if len(c.Loading.Words) == 0 {
			errs = append(errs, errors.New("loading: no words"))
		}
		if c.Loading.TypeInterval <= 0 || c.Loading.EraseInterval <= 0 {
			errs = append(errs, errors.New("loading: type and erase intervals must be positive"))
		}
	}
	return errors.Join(errs...)
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./showcase.yaml",
		filepath.Join(ConfigDir(), "showcase.yaml"),
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
		return filepath.Join(home, "Library", "Application Support", "Symbionic")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Symbionic")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "symbionic")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "symbionic")
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
