// Package main is the entry point for the crater terrain scene.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-scenes/internal/config"
	"github.com/Faultbox/terrain-scenes/internal/engine/debug"
	"github.com/Faultbox/terrain-scenes/internal/engine/terrain"
	"github.com/Faultbox/terrain-scenes/internal/game"
	"github.com/Faultbox/terrain-scenes/internal/game/states"
	"github.com/Faultbox/terrain-scenes/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path, saved, err := cfg.SaveRequested(); err != nil {
		fmt.Fprintf(os.Stderr, "Save config error: %v\n", err)
		os.Exit(1)
	} else if saved {
		fmt.Printf("Config written to %s\n", path)
		return
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Crater Terrain ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	seed := cfg.Terrain.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		cfg.Terrain.Seed = seed
	}

	// Generation finishes before the first frame
	start := time.Now()
	result, err := terrain.Generate(cfg.TerrainOptions(), terrain.NewRand(seed))
	if err != nil {
		logger.Error("failed to generate terrain", zap.Error(err))
		os.Exit(1)
	}

	lo, hi := result.Heights.MinMax()
	logger.Info("terrain generated",
		zap.Uint64("seed", seed),
		zap.Int("side_length", result.Heights.Size),
		zap.String("base", cfg.Terrain.Base),
		zap.Int("craters", len(result.Craters)),
		zap.Int("lowered", result.Lowered),
		zap.Float32("min_height", lo),
		zap.Float32("max_height", hi),
		zap.Int("triangles", result.Mesh.TriangleCount()),
		zap.Duration("took", time.Since(start)),
	)
	for i, c := range result.Craters {
		logger.Debug("crater",
			zap.Int("index", i),
			zap.Float32("x", c.CenterX),
			zap.Float32("z", c.CenterZ),
			zap.Float32("radius", c.Radius),
			zap.Float32("depth", c.Depth),
		)
	}

	if path := config.HeightmapPath(); path != "" {
		if err := debug.SaveHeightmap(path, result.Heights); err != nil {
			logger.Error("failed to export heightmap", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("heightmap exported", zap.String("path", path))
		return
	}

	g, err := game.New(cfg, "Crater Terrain")
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(states.NewTerrainState(result, cfg.Camera, cfg.Terrain.Wireframe)); err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("terrain scene closed normally")
}
