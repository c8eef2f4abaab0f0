// Package main is the entry point for the ornament showcase.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/symbionic/ornaments/internal/config"
	"github.com/symbionic/ornaments/internal/logger"
	"github.com/symbionic/ornaments/internal/scene"
	"github.com/symbionic/ornaments/internal/showcase"
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

	logger.Info("=== Symbionic Showcase ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	desc, err := scene.Open(cfg.Scene.File, cfg.Scene.Builtin)
	if err != nil {
		logger.Error("failed to open scene", zap.Error(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := showcase.New(ctx, cfg, desc)
	if err != nil {
		logger.Error("failed to create showcase", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		logger.Error("showcase error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("showcase closed normally")
}
