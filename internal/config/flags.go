package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagSeed       = flag.Uint64("seed", 0, "Terrain random seed (0 = time based)")
	flagSize       = flag.Int("size", 0, "Terrain side length in lattice points")
	flagBase       = flag.String("base", "", "Terrain base elevation: flat, uniform or simplex")
	flagWireframe  = flag.Bool("wireframe", false, "Start with wireframe rendering")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagSave       = flag.String("save-config", "", "Write the effective config to this path and exit")
	flagHeightmap  = flag.String("export-heightmap", "", "Write the carved heightmap as a grayscale PNG")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SavePath returns the path given via --save-config, or "".
func SavePath() string {
	return *flagSave
}

// HeightmapPath returns the path given via --export-heightmap, or "".
func HeightmapPath() string {
	return *flagHeightmap
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagSize > 0 {
		cfg.Terrain.SideLength = *flagSize
	}
	if *flagBase != "" {
		cfg.Terrain.Base = *flagBase
	}
	if *flagWireframe {
		cfg.Terrain.Wireframe = true
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}
