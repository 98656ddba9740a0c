package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/instructure/canvas-android-sub046/config"
	_ "github.com/instructure/canvas-android-sub046/docs" // Swagger docs
	"github.com/instructure/canvas-android-sub046/internal/bootstrap"
	"github.com/instructure/canvas-android-sub046/internal/httpserver"
	"github.com/instructure/canvas-android-sub046/pkg/log"
)

// @title       Canvas Offline Data API
// @description Screen sessions and offline sync over the Canvas LMS REST API, with a local SQLite cache.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Canvas offline data API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Canvas: %s", cfg.Canvas.BaseURL)

	// 3. Infrastructure
	infra, err := bootstrap.New(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize infrastructure: ", err)
		return
	}
	defer infra.Close()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		ShutdownTimeout:     cfg.HTTPServer.ShutdownTimeout,
		AllowedOrigins:      cfg.HTTPServer.AllowedOrigins,
		DB:                  infra.DB,
		Canvas:              infra.Canvas,
		Selector:            infra.Selector,
		Flags:               infra.Flags,
		Scope:               infra.Scope,
		CalendarFilterLimit: cfg.Calendar.FilterLimit,
		SyncConcurrency:     cfg.Sync.Concurrency,
		SessionTTL:          cfg.Sessions.TTL,
		MaxSessions:         cfg.Sessions.MaxSessions,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
