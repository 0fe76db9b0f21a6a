// Package config handles loading and saving of framework settings.
package config

import "time"

// Config holds all settings the host needs to start the loop.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Timing  TimingConfig  `yaml:"timing"`
	Assets  AssetsConfig  `yaml:"assets"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// TimingConfig holds frame timing settings.
type TimingConfig struct {
	FPSLimit  int           `yaml:"fps_limit"` // 0 = unlimited
	MaxDelta  time.Duration `yaml:"max_delta"` // 0 = no clamp
	FPSWindow int           `yaml:"fps_window"`
}

// AssetsConfig lists the files loaded into the asset table at startup.
type AssetsConfig struct {
	Images          map[string]string     `yaml:"images"` // name -> path
	Fonts           map[string]FontConfig `yaml:"fonts"`
	DefaultFontSize float64               `yaml:"default_font_size"`
}

// FontConfig describes one font asset.
type FontConfig struct {
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"` // 0 = DefaultFontSize
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "gamestack",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Timing: TimingConfig{
			FPSLimit:  0,
			MaxDelta:  250 * time.Millisecond,
			FPSWindow: 60,
		},
		Assets: AssetsConfig{
			Images:          map[string]string{},
			Fonts:           map[string]FontConfig{},
			DefaultFontSize: 24,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
