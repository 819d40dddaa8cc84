// Package game implements the main loop shared by the windowed scenes.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/terrain-scenes/internal/config"
	"github.com/Faultbox/terrain-scenes/internal/engine/debug"
	"github.com/Faultbox/terrain-scenes/internal/engine/input"
	"github.com/Faultbox/terrain-scenes/internal/engine/renderer"
	"github.com/Faultbox/terrain-scenes/internal/engine/window"
	"github.com/Faultbox/terrain-scenes/internal/game/states"
	"github.com/Faultbox/terrain-scenes/internal/logger"
)

// Game owns the window, renderer and input for one scene.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	states   *states.Manager
	shots    *debug.ScreenshotCapture
}

// New creates the window and renderer.
func New(cfg *config.Config, title string) (*Game, error) {
	logger.Info("initializing game",
		zap.String("title", title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	g := &Game{
		config:  cfg,
		running: false,
	}

	// Create window (this also creates OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		MSAA:       cfg.Window.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	width, height := g.window.GetSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:  width,
		Height: height,
		FOV:    cfg.Camera.FOV,
		MSAA:   cfg.Window.MSAA > 0,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()
	g.states = states.NewManager(g.renderer)
	g.shots = debug.NewScreenshotCapture(cfg.Window.ScreenshotDir, "screenshot")

	logger.Info("game initialized successfully")
	return g, nil
}

// WindowSize returns the current drawable size.
func (g *Game) WindowSize() (int, int) {
	return g.window.GetSize()
}

// Run enters the first state and loops until quit or Escape.
func (g *Game) Run(first states.State) error {
	g.states.Change(first)
	g.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		// Calculate delta time
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if g.input.Update() {
			// Quit event received
			g.running = false
			break
		}

		// Handle events
		for _, event := range g.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				g.renderer.Resize(event.Width, event.Height)
			case input.EventKeyDown:
				if event.Key == sdl.SCANCODE_ESCAPE {
					g.running = false
				}
			}
		}

		// 2. Update scene
		if err := g.states.Update(dt, g.input); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render
		g.renderer.Begin()
		if err := g.states.Render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		g.renderer.End()

		// F12 captures the finished frame before it is presented
		if g.input.JustPressed(sdl.SCANCODE_F12) {
			g.screenshot()
		}

		// 4. Present (swap buffers)
		g.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) screenshot() {
	pixels, width, height := g.renderer.ReadPixels()
	path, err := g.shots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.states != nil {
		if err := g.states.Close(); err != nil {
			logger.Warn("state exit failed", zap.Error(err))
		}
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
