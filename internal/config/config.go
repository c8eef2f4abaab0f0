// Package config handles showcase configuration loading and management.
package config

import "time"

// Config holds all showcase settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Loading  LoadingConfig  `yaml:"loading"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
	ShowFPS    bool `yaml:"show_fps"`
	// ScreenshotDir receives the PNGs saved with F12.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// SceneConfig selects the scene and its responsive behaviour.
type SceneConfig struct {
	// File is a scene description on disk; it wins over Builtin.
	File    string `yaml:"file"`
	Builtin string `yaml:"builtin"`
	// Breakpoint is the viewport width below which desktop-only
	// ornaments are skipped.
	Breakpoint int `yaml:"breakpoint"`
	// VisibilityThreshold is the visible fraction of the canvas section
	// that mounts the scene.
	VisibilityThreshold float64 `yaml:"visibility_threshold"`
	TriggerOnce         bool    `yaml:"trigger_once"`
	// PageHeight is the scrollable page length in viewport heights.
	PageHeight float64 `yaml:"page_height"`
}

// LoadingConfig drives the loading screen timeline.
type LoadingConfig struct {
	Skip          bool          `yaml:"skip"`
	Words         []string      `yaml:"words"`
	TypeInterval  time.Duration `yaml:"type_interval"`
	Hold          time.Duration `yaml:"hold"`
	EraseInterval time.Duration `yaml:"erase_interval"`
	RevealAfter   time.Duration `yaml:"reveal_after"`
	CursorBlink   time.Duration `yaml:"cursor_blink"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,

			ScreenshotDir: "screenshots",
		},
		Scene: SceneConfig{
			Builtin:             "partner",
			Breakpoint:          768,
			VisibilityThreshold: 0.1,
			TriggerOnce:         true,
			PageHeight:          3,
		},
		Loading: LoadingConfig{
			Words:         []string{"Adapting...", "Empowering...", "Advancing..."},
			TypeInterval:  80 * time.Millisecond,
			Hold:          2 * time.Second,
			EraseInterval: 50 * time.Millisecond,
			RevealAfter:   6 * time.Second,
			CursorBlink:   500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
