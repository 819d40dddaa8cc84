package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/terrain-scenes/internal/engine/terrain"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test window defaults
	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Window.ScreenshotDir != "screenshots" {
		t.Errorf("expected screenshot dir 'screenshots', got %q", cfg.Window.ScreenshotDir)
	}

	// Test terrain defaults
	tr := cfg.Terrain
	if tr.SideLength != 100 {
		t.Errorf("expected side length 100, got %d", tr.SideLength)
	}
	if tr.SeaLevel != 0 {
		t.Errorf("expected sea level 0, got %f", tr.SeaLevel)
	}
	if tr.NumSmallCraters != 5 || tr.NumLargeCraters != 2 {
		t.Errorf("expected 5 small and 2 large craters, got %d and %d", tr.NumSmallCraters, tr.NumLargeCraters)
	}
	if tr.SmallCraterRadius != [2]float32{2, 5} || tr.SmallCraterDepth != 10 {
		t.Errorf("unexpected small craters %v depth %f", tr.SmallCraterRadius, tr.SmallCraterDepth)
	}
	if tr.LargeCraterRadius != [2]float32{10, 20} || tr.LargeCraterDepth != 10 {
		t.Errorf("unexpected large craters %v depth %f", tr.LargeCraterRadius, tr.LargeCraterDepth)
	}
	if tr.Normals != terrain.NormalsUp {
		t.Errorf("expected up normals, got %s", tr.Normals)
	}

	// Test camera defaults
	if cfg.Camera.FlySpeed != 10 {
		t.Errorf("expected fly speed 10, got %f", cfg.Camera.FlySpeed)
	}
	if cfg.Camera.Home != [3]float32{-2.5, 4.5, 9.0} {
		t.Errorf("unexpected home %v", cfg.Camera.Home)
	}

	// Test greet defaults
	if cfg.Greet.Period != 2*time.Second {
		t.Errorf("expected greet period 2s, got %v", cfg.Greet.Period)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestTerrainOptions(t *testing.T) {
	cfg := Default()
	cfg.Terrain.Seed = 77

	opts := cfg.TerrainOptions()
	want := terrain.DefaultOptions()
	want.NoiseSeed = 77

	if opts != want {
		t.Errorf("TerrainOptions() = %+v, want %+v", opts, want)
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

terrain:
  seed: 12345
  side_length: 64
  base: uniform
  uniform_range: [0.0, 2.5]
  num_small_craters: 9
  small_crater_radius: [1.5, 3.0]
  large_crater_depth: 25
  normals: surface

camera:
  fly_speed: 20
  home: [0, 5, 10]

greet:
  period: 500ms
  ticks: 30

logging:
  level: "debug"
  log_file: "scenes.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 1080 {
		t.Errorf("expected height 1080, got %d", cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}

	tr := cfg.Terrain
	if tr.Seed != 12345 || tr.SideLength != 64 || tr.Base != terrain.BaseUniform {
		t.Errorf("unexpected terrain seed/size/base: %d %d %s", tr.Seed, tr.SideLength, tr.Base)
	}
	if tr.UniformRange != [2]float32{0, 2.5} {
		t.Errorf("expected uniform range [0 2.5], got %v", tr.UniformRange)
	}
	if tr.NumSmallCraters != 9 || tr.SmallCraterRadius != [2]float32{1.5, 3} {
		t.Errorf("unexpected small craters: %d %v", tr.NumSmallCraters, tr.SmallCraterRadius)
	}
	if tr.LargeCraterDepth != 25 {
		t.Errorf("expected large depth 25, got %f", tr.LargeCraterDepth)
	}
	// Untouched keys keep their defaults
	if tr.NumLargeCraters != 2 || tr.LargeCraterRadius != [2]float32{10, 20} {
		t.Errorf("large crater defaults lost: %d %v", tr.NumLargeCraters, tr.LargeCraterRadius)
	}
	if tr.Normals != terrain.NormalsSurface {
		t.Errorf("expected surface normals, got %s", tr.Normals)
	}

	if cfg.Camera.FlySpeed != 20 || cfg.Camera.Home != [3]float32{0, 5, 10} {
		t.Errorf("unexpected camera %+v", cfg.Camera)
	}
	if cfg.Greet.Period != 500*time.Millisecond || cfg.Greet.Ticks != 30 {
		t.Errorf("unexpected greet %+v", cfg.Greet)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "scenes.log" {
		t.Errorf("expected log file 'scenes.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	// Create temporary config file with invalid YAML
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Try to load - should error
	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"side length too small", func(c *Config) { c.Terrain.SideLength = 1 }, terrain.ErrGridTooSmall},
		{"inverted radius", func(c *Config) { c.Terrain.LargeCraterRadius = [2]float32{20, 10} }, terrain.ErrInvalidRadiusRange},
		{"zero depth", func(c *Config) { c.Terrain.SmallCraterDepth = 0 }, terrain.ErrZeroDepth},
		{"unknown base", func(c *Config) { c.Terrain.Base = "islands" }, terrain.ErrUnknownBase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	cfg := Default()
	cfg.Window.Width = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero window width")
	}

	cfg = Default()
	cfg.Greet.Period = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero greet period")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// Create config.yaml in current directory
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Should find it now
	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
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
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "terrain flags",
			setup: func() {
				*flagSeed = 99
				*flagSize = 32
				*flagBase = "simplex"
				*flagWireframe = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Terrain.Seed != 99 {
					t.Errorf("expected seed 99, got %d", cfg.Terrain.Seed)
				}
				if cfg.Terrain.SideLength != 32 {
					t.Errorf("expected side length 32, got %d", cfg.Terrain.SideLength)
				}
				if cfg.Terrain.Base != terrain.BaseSimplex {
					t.Errorf("expected simplex base, got %s", cfg.Terrain.Base)
				}
				if !cfg.Terrain.Wireframe {
					t.Error("expected wireframe to be enabled")
				}
			},
			teardown: func() {
				*flagSeed = 0
				*flagSize = 0
				*flagBase = ""
				*flagWireframe = false
			},
		},
		{
			name: "windowed flag",
			setup: func() {
				*flagWindowed = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() {
				*flagWindowed = false
			},
		},
		{
			name: "fullscreen flag",
			setup: func() {
				*flagFullscreen = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() {
				*flagFullscreen = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Window.Width)
				}
				if cfg.Window.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			applyFlags(cfg)

			// Verify
			tt.verify(t, cfg)
		})
	}
}

func TestHeightmapPath(t *testing.T) {
	if HeightmapPath() != "" {
		t.Errorf("expected no heightmap path by default, got %q", HeightmapPath())
	}

	*flagHeightmap = "out.png"
	defer func() { *flagHeightmap = "" }()

	if HeightmapPath() != "out.png" {
		t.Errorf("expected out.png, got %q", HeightmapPath())
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
terrain:
  side_length: 50
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	*flagSize = 80
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
		*flagSize = 0
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}

	if cfg.Terrain.SideLength != 80 {
		t.Errorf("expected side length 80 from flag, got %d", cfg.Terrain.SideLength)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("terrain:\n  side_length: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, terrain.ErrGridTooSmall) {
		t.Errorf("expected ErrGridTooSmall, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Terrain.Seed = 4242
	cfg.Terrain.SmallCraterRadius = [2]float32{1, 4}

	*flagSave = path
	defer func() { *flagSave = "" }()

	got, saved, err := cfg.SaveRequested()
	if err != nil || !saved || got != path {
		t.Fatalf("SaveRequested() = %q, %v, %v", got, saved, err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.Terrain.Seed != 4242 || loaded.Terrain.SmallCraterRadius != [2]float32{1, 4} {
		t.Errorf("saved terrain not restored: %+v", loaded.Terrain)
	}
	if loaded.Greet.Period != 2*time.Second {
		t.Errorf("expected greet period 2s after reload, got %v", loaded.Greet.Period)
	}
}

func TestSaveRequestedNoFlag(t *testing.T) {
	if _, saved, err := Default().SaveRequested(); saved || err != nil {
		t.Errorf("expected no save without flag, got saved=%v err=%v", saved, err)
	}
}
