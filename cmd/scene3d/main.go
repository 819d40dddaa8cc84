// Package main is the entry point for the shapes scene: a cube on a circular
// base with a line list and a line strip.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-scenes/internal/config"
	"github.com/Faultbox/terrain-scenes/internal/game"
	"github.com/Faultbox/terrain-scenes/internal/game/states"
	"github.com/Faultbox/terrain-scenes/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Shapes Scene ===")

	g, err := game.New(cfg, "Shapes")
	if err != nil {
		logger.Error("failed to create game", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	width, height := g.WindowSize()
	if err := g.Run(states.NewShapesState(cfg.Camera, width, height)); err != nil {
		logger.Error("game error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("shapes scene closed normally")
}
