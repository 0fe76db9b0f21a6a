// Package main runs the state stack demo in an SDL window.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/gamestack/internal/assets"
	"github.com/Faultbox/gamestack/internal/config"
	"github.com/Faultbox/gamestack/internal/demo"
	"github.com/Faultbox/gamestack/internal/event"
	"github.com/Faultbox/gamestack/internal/graphics/glrender"
	"github.com/Faultbox/gamestack/internal/logger"
	"github.com/Faultbox/gamestack/internal/platform"
	"github.com/Faultbox/gamestack/internal/timer"
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

	logger.Info("=== gamestack demo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Error("failed to save config", zap.Error(err))
			logger.Sync()
			os.Exit(1)
		}
		logger.Info("config saved", zap.String("dir", config.ConfigDir()))
		return
	}

	if err := run(cfg); err != nil {
		logger.Error("game error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("game closed normally")
}

func run(cfg *config.Config) error {
	win, err := platform.NewWindow(platform.WindowConfig{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Close()

	width, height := win.Size()
	renderer, err := glrender.New(width, height, win)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Close()

	pump := platform.NewEventPump()
	pump.OnResize = func(_, _ int) {
		renderer.Resize(win.Size())
	}
	defer pump.Close()
	logger.Info("input ready", zap.Int("controllers", pump.Controllers()))

	table, err := assets.Load(cfg.Assets)
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}
	defer table.Close()

	clock := timer.New(timer.Config{
		FPSLimit:  cfg.Timing.FPSLimit,
		MaxDelta:  cfg.Timing.MaxDelta,
		FPSWindow: cfg.Timing.FPSWindow,
	})

	ctx := &event.Context{
		Graphics: renderer,
		Events:   newTitleSource(pump, win, clock, cfg.Window.Title),
		Timer:    clock,
	}

	err = event.Run(ctx, table, demo.NewMenu(width, height))
	logger.Info("session stats",
		zap.Uint64("frames", clock.Ticks()),
		zap.Duration("elapsed", clock.Elapsed()),
		zap.Float64("fps", clock.FPS()),
	)
	return err
}
