// Package config handles scene configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/terrain-scenes/internal/engine/terrain"
)

// Config holds all scene settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Terrain TerrainConfig `yaml:"terrain"`
	Camera  CameraConfig  `yaml:"camera"`
	Greet   GreetConfig   `yaml:"greet"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	MSAA       int  `yaml:"msaa"` // Multisample count, 0 disables

	ScreenshotDir string `yaml:"screenshot_dir"` // F12 captures land here
}

// TerrainConfig holds procedural terrain settings.
type TerrainConfig struct {
	Seed       uint64  `yaml:"seed"` // 0 picks a seed from the clock
	SideLength int     `yaml:"side_length"`
	Base       string  `yaml:"base"` // flat, uniform or simplex
	SeaLevel   float32 `yaml:"sea_level"`

	UniformRange   [2]float32 `yaml:"uniform_range"`
	NoiseFrequency float32    `yaml:"noise_frequency"`
	NoiseAmplitude float32    `yaml:"noise_amplitude"`

	NumSmallCraters   int        `yaml:"num_small_craters"`
	NumLargeCraters   int        `yaml:"num_large_craters"`
	SmallCraterRadius [2]float32 `yaml:"small_crater_radius"`
	SmallCraterDepth  float32    `yaml:"small_crater_depth"`
	LargeCraterRadius [2]float32 `yaml:"large_crater_radius"`
	LargeCraterDepth  float32    `yaml:"large_crater_depth"`

	Normals   string `yaml:"normals"` // up or surface
	Wireframe bool   `yaml:"wireframe"`
}

// CameraConfig holds camera settings.
type CameraConfig struct {
	FlySpeed    float32    `yaml:"fly_speed"`    // Units per second
	Position    [3]float32 `yaml:"position"`     // Terrain scene start position
	LookAt      [3]float32 `yaml:"look_at"`      // Terrain scene initial target
	Home        [3]float32 `yaml:"home"`         // 3D scene rest position
	CursorSwing float32    `yaml:"cursor_swing"` // 3D scene offset at the window edge
	FOV         float32    `yaml:"fov"`          // Vertical field of view in degrees
}

// GreetConfig holds settings for the greeting scene.
type GreetConfig struct {
	Period time.Duration `yaml:"period"`
	Ticks  int           `yaml:"ticks"` // Stop after this many frames, 0 runs forever
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	opts := terrain.DefaultOptions()
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			MSAA:       4,

			ScreenshotDir: "screenshots",
		},
		Terrain: TerrainConfig{
			Seed:              0,
			SideLength:        opts.SideLength,
			Base:              opts.Base,
			SeaLevel:          opts.SeaLevel,
			UniformRange:      [2]float32{opts.UniformMin, opts.UniformMax},
			NoiseFrequency:    opts.NoiseFrequency,
			NoiseAmplitude:    opts.NoiseAmplitude,
			NumSmallCraters:   opts.Small.Count,
			NumLargeCraters:   opts.Large.Count,
			SmallCraterRadius: [2]float32{opts.Small.RadiusMin, opts.Small.RadiusMax},
			SmallCraterDepth:  opts.Small.Depth,
			LargeCraterRadius: [2]float32{opts.Large.RadiusMin, opts.Large.RadiusMax},
			LargeCraterDepth:  opts.Large.Depth,
			Normals:           opts.Normals,
			Wireframe:         false,
		},
		Camera: CameraConfig{
			FlySpeed:    10,
			Position:    [3]float32{-1.8, 1.8, -1.8},
			LookAt:      [3]float32{0, 0, 0},
			Home:        [3]float32{-2.5, 4.5, 9.0},
			CursorSwing: 10,
			FOV:         45,
		},
		Greet: GreetConfig{
			Period: 2 * time.Second,
			Ticks:  0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// TerrainOptions converts the terrain section into generator options.
func (c *Config) TerrainOptions() terrain.Options {
	t := c.Terrain
	return terrain.Options{
		SideLength:     t.SideLength,
		Base:           t.Base,
		SeaLevel:       t.SeaLevel,
		UniformMin:     t.UniformRange[0],
		UniformMax:     t.UniformRange[1],
		NoiseSeed:      int64(t.Seed),
		NoiseFrequency: t.NoiseFrequency,
		NoiseAmplitude: t.NoiseAmplitude,
		Small: terrain.CraterClass{
			Name:      "small",
			Count:     t.NumSmallCraters,
			RadiusMin: t.SmallCraterRadius[0],
			RadiusMax: t.SmallCraterRadius[1],
			Depth:     t.SmallCraterDepth,
		},
		Large: terrain.CraterClass{
			Name:      "large",
			Count:     t.NumLargeCraters,
			RadiusMin: t.LargeCraterRadius[0],
			RadiusMax: t.LargeCraterRadius[1],
			Depth:     t.LargeCraterDepth,
		},
		Normals: t.Normals,
	}
}

// Validate reports configuration mistakes before any scene starts.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera: fov %g outside (0, 180)", c.Camera.FOV)
	}
	if c.Greet.Period <= 0 {
		return fmt.Errorf("greet: period must be positive, got %v", c.Greet.Period)
	}
	if err := c.TerrainOptions().Validate(); err != nil {
		return fmt.Errorf("terrain: %w", err)
	}
	return nil
}
