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
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the window or timer cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Timing.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("fps_limit %d must not be negative", c.Timing.FPSLimit))
	}
	if c.Timing.MaxDelta < 0 {
		errs = append(errs, fmt.Errorf("max_delta %s must not be negative", c.Timing.MaxDelta))
	}
	if c.Assets.DefaultFontSize <= 0 {
		errs = append(errs, fmt.Errorf("default_font_size %g must be positive", c.Assets.DefaultFontSize))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
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
		return filepath.Join(home, "Library", "Application Support", "GameStack")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "GameStack")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "gamestack")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "gamestack")
	}
}

// loadFromFile merges a YAML file into cfg. Relative asset paths are resolved
// against the directory holding the file.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	cfg.Assets.resolve(filepath.Dir(path))
	return nil
}

func (a *AssetsConfig) resolve(base string) {
	for name, p := range a.Images {
		if p != "" && !filepath.IsAbs(p) {
			a.Images[name] = filepath.Join(base, p)
		}
	}
	for name, f := range a.Fonts {
		if f.Path != "" && !filepath.IsAbs(f.Path) {
			f.Path = filepath.Join(base, f.Path)
			a.Fonts[name] = f
		}
	}
}
