package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	httpadapter "github.com/capsloque-org/ResumeBuilder/internal/adapter/http"
	repo "github.com/capsloque-org/ResumeBuilder/internal/adapter/repository"
	"github.com/capsloque-org/ResumeBuilder/internal/config"
	"github.com/capsloque-org/ResumeBuilder/internal/domain"
	"github.com/capsloque-org/ResumeBuilder/internal/infrastructure/migration"
	"github.com/capsloque-org/ResumeBuilder/internal/logging"
	"github.com/capsloque-org/ResumeBuilder/internal/usecase"
	infra "github.com/capsloque-org/ResumeBuilder/pkg/infrastructure"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(cfg.Logging)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// infra setup
	var store usecase.ResumeRepo
	pool, err := infra.NewResumePool(ctx, cfg.Storage.DatabaseURL)
	if err != nil {
		log.Warn("resume DB not available, documents are kept in memory", "error", err)
		store = repo.NewMemoryRepo()
	} else {
		defer pool.Close()
		if err := migration.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations failed", "error", err)
			os.Exit(1)
		}
		store = repo.NewResumeRepo(pool)
	}

	renderer := infra.NewChromedpRenderer(cfg.Export.ChromePath, cfg.Export.Timeout)
	docs := usecase.NewDocuments(store, domain.DefaultIDs, log)
	cache := func(user uuid.UUID) usecase.LocalCache {
		return infra.NewFileCache(infra.UserCacheDir(cfg.Storage.DataDir, user.String()))
	}
	sessions := usecase.NewRegistry(usecase.SessionFactory(docs, cache, usecase.SessionDeps{
		Clock: usecase.SystemClock{},
		IDs:   domain.DefaultIDs,
		Sync: usecase.SyncConfig{
			Debounce:  cfg.Sync.Debounce,
			NoticeTTL: cfg.Sync.NoticeTTL,
			Timeout:   cfg.Sync.Timeout,
		},
		Log: log,
	}))

	h := httpadapter.NewHandler(docs, sessions, renderer, cfg.Export.Timeout, log)
	app := httpadapter.NewApp(h, httpadapter.Options{UserHeader: cfg.HTTP.UserHeader, Log: log})

	errc := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
		log.Info("server listening", "addr", addr)
		errc <- app.Listen(addr)
	}()

	select {
	case err := <-errc:
		if err != nil {
			log.Error("server failed", "error", err)
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	if err := app.ShutdownWithTimeout(cfg.HTTP.ShutdownTimeout); err != nil {
		log.Warn("shutdown", "error", err)
	}
	flushCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	sessions.Close(flushCtx)
}
