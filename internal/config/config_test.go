package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Scene.Builtin != "partner" {
		t.Errorf("expected builtin scene 'partner', got %s", cfg.Scene.Builtin)
	}
	if cfg.Scene.Breakpoint != 768 {
		t.Errorf("expected breakpoint 768, got %d", cfg.Scene.Breakpoint)
	}
	if cfg.Scene.VisibilityThreshold != 0.1 {
		t.Errorf("expected visibility threshold 0.1, got %v", cfg.Scene.VisibilityThreshold)
	}
	if !cfg.Scene.TriggerOnce {
		t.Error("expected trigger_once to be true by default")
	}

	if len(cfg.Loading.Words) != 3 || cfg.Loading.Words[0] != "Adapting..." {
		t.Errorf("unexpected loading words %v", cfg.Loading.Words)
	}
	if cfg.Loading.TypeInterval != 80*time.Millisecond {
		t.Errorf("expected type interval 80ms, got %v", cfg.Loading.TypeInterval)
	}
	if cfg.Loading.RevealAfter != 6*time.Second {
		t.Errorf("expected reveal after 6s, got %v", cfg.Loading.RevealAfter)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "showcase.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fps_limit: 144

scene:
  file: "scenes/custom.yaml"
  breakpoint: 1024
  visibility_threshold: 0.25
  trigger_once: false

loading:
  words: ["Booting..."]
  type_interval: 40ms
  hold: 1s
  reveal_after: 3s

logging:
  level: "debug"
  log_file: "showcase.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", cfg.Graphics.FPSLimit)
	}

	if cfg.Scene.File != "scenes/custom.yaml" {
		t.Errorf("expected scene file, got %q", cfg.Scene.File)
	}
	if cfg.Scene.Builtin != "partner" {
		t.Errorf("expected builtin to keep its default, got %q", cfg.Scene.Builtin)
	}
	if cfg.Scene.Breakpoint != 1024 {
		t.Errorf("expected breakpoint 1024, got %d", cfg.Scene.Breakpoint)
	}
	if cfg.Scene.TriggerOnce {
		t.Error("expected trigger_once to be false")
	}

	if len(cfg.Loading.Words) != 1 || cfg.Loading.Words[0] != "Booting..." {
		t.Errorf("expected one loading word, got %v", cfg.Loading.Words)
	}
	if cfg.Loading.TypeInterval != 40*time.Millisecond {
		t.Errorf("expected type interval 40ms, got %v", cfg.Loading.TypeInterval)
	}
	if cfg.Loading.EraseInterval != 50*time.Millisecond {
		t.Errorf("expected erase interval to keep its default, got %v", cfg.Loading.EraseInterval)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "showcase.log" {
		t.Errorf("expected log file 'showcase.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/showcase.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, true},
		{"no scene", func(c *Config) { c.Scene.Builtin = ""; c.Scene.File = "" }, true},
		{"negative breakpoint", func(c *Config) { c.Scene.Breakpoint = -1 }, true},
		{"threshold above one", func(c *Config) { c.Scene.VisibilityThreshold = 1.5 }, true},
		{"no words", func(c *Config) { c.Loading.Words = nil }, true},
		{"no words but skipped", func(c *Config) { c.Loading.Words = nil; c.Loading.Skip = true }, false},
		{"zero type interval", func(c *Config) { c.Loading.TypeInterval = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "showcase.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Error("expected to find showcase.yaml in current directory")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "showcase.yaml")

	cfg := Default()
	cfg.Scene.Builtin = "hero"
	cfg.Loading.Hold = 1500 * time.Millisecond
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if loaded.Scene.Builtin != "hero" {
		t.Errorf("expected builtin 'hero', got %s", loaded.Scene.Builtin)
	}
	if loaded.Loading.Hold != 1500*time.Millisecond {
		t.Errorf("expected hold 1.5s, got %v", loaded.Loading.Hold)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Graphics.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "scene file flag",
			setup: func() { *flagScene = "hero.yaml" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.File != "hero.yaml" {
					t.Errorf("expected scene file hero.yaml, got %s", cfg.Scene.File)
				}
			},
			teardown: func() { *flagScene = "" },
		},
		{
			name: "builtin flag wins over file",
			setup: func() {
				*flagScene = "hero.yaml"
				*flagBuiltin = "final-cta"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Builtin != "final-cta" || cfg.Scene.File != "" {
					t.Errorf("expected builtin final-cta and no file, got %q / %q", cfg.Scene.Builtin, cfg.Scene.File)
				}
			},
			teardown: func() {
				*flagScene = ""
				*flagBuiltin = ""
			},
		},
		{
			name:  "skip loading flag",
			setup: func() { *flagSkipLoading = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Loading.Skip {
					t.Error("expected loading to be skipped")
				}
			},
			teardown: func() { *flagSkipLoading = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "showcase.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "showcase.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  visibility_threshold: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject visibility_threshold 2")
	}
}
