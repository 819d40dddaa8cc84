// Package main runs the headless greeting world until interrupted.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/terrain-scenes/internal/config"
	"github.com/Faultbox/terrain-scenes/internal/greet"
	"github.com/Faultbox/terrain-scenes/internal/logger"
)

// frameInterval paces the world at roughly 60 updates per second.
const frameInterval = time.Second / 60

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	world := greet.NewWorld(os.Stdout, cfg.Greet.Period)
	greet.AddPeople(world)

	logger.Info("greet world started",
		zap.Duration("period", cfg.Greet.Period),
		zap.Int("ticks", cfg.Greet.Ticks),
	)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for frame := 0; cfg.Greet.Ticks == 0 || frame < cfg.Greet.Ticks; frame++ {
		select {
		case <-ctx.Done():
			logger.Info("greet world interrupted", zap.Int("frames", frame))
			return
		case now := <-ticker.C:
			world.Tick(now.Sub(last))
			last = now
		}
	}

	logger.Info("greet world finished", zap.Int("greetings", world.Timer().TimesFinished()))
}
