package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/instructure/canvas-android-sub046/config"
	"github.com/instructure/canvas-android-sub046/internal/bootstrap"
	courseRepo "github.com/instructure/canvas-android-sub046/internal/course/repository"
	courseCanvas "github.com/instructure/canvas-android-sub046/internal/course/repository/canvas"
	courseSQLite "github.com/instructure/canvas-android-sub046/internal/course/repository/sqlite"
	syncSQLite "github.com/instructure/canvas-android-sub046/internal/coursesync/repository/sqlite"
	syncUC "github.com/instructure/canvas-android-sub046/internal/coursesync/usecase"
	"github.com/instructure/canvas-android-sub046/internal/coursesync/worker"
	moduleRepo "github.com/instructure/canvas-android-sub046/internal/module/repository"
	moduleCanvas "github.com/instructure/canvas-android-sub046/internal/module/repository/canvas"
	moduleSQLite "github.com/instructure/canvas-android-sub046/internal/module/repository/sqlite"
	"github.com/instructure/canvas-android-sub046/pkg/log"
)

// main is the entry point for the background course sync worker. It keeps
// the local copy of every course marked for offline use fresh.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting course sync worker (every %s)...", cfg.Sync.Interval)

	// Infrastructure
	infra, err := bootstrap.New(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize infrastructure: ", err)
		return
	}
	defer infra.Close()

	// UseCase
	courses := courseRepo.New(infra.Selector, courseCanvas.New(infra.Canvas), courseSQLite.New(infra.DB))
	modules := moduleRepo.New(infra.Selector, moduleCanvas.New(infra.Canvas), moduleSQLite.New(infra.DB))
	uc := syncUC.New(logger, infra.Flags, syncSQLite.New(infra.DB), courses, modules, cfg.Sync.Concurrency)

	// Run & graceful shutdown
	w := worker.New(logger, uc, infra.Scope, worker.Config{
		Interval:   cfg.Sync.Interval,
		RunOnStart: cfg.Sync.RunOnStart,
	})
	if err := w.Run(ctx); err != nil {
		logger.Error(ctx, "Worker stopped with error: ", err)
		return
	}

	logger.Info(ctx, "Worker stopped gracefully")
}
