package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"krishisahay/internal/config"
	"krishisahay/internal/db"
	"krishisahay/internal/engine"
	"krishisahay/internal/history"
	"krishisahay/internal/jobs"
	"krishisahay/internal/metrics"
	"krishisahay/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	if !cfg.IsDev() {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	}

	kb, err := config.LoadKnowledge(cfg.KnowledgeFile)
	if err != nil {
		log.Fatalf("Failed to load knowledge base: %v", err)
	}
	if cfg.KnowledgeFile != "" {
		log.Printf("Loaded knowledge overrides from %s", cfg.KnowledgeFile)
	}

	eng, err := engine.New(kb, engine.Options{FirstMatchBuckets: cfg.FallbackFirstMatch})
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	metrics.Init(database)

	recorder := history.NewRecorder(database, cfg.HistoryQueueSize, cfg.HistoryWriteTimeout)
	pruner := jobs.NewHistoryPruner(database, cfg.HistoryPruneInterval, cfg.HistoryRetention)

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, server.Services{
		Store:    database,
		Engine:   eng,
		Recorder: recorder,
	}); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// The recorder outlives the server so in-flight answers still get recorded.
	recCtx, stopRecorder := context.WithCancel(context.WithoutCancel(ctx))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start()
	})
	g.Go(func() error {
		<-gctx.Done()
		defer stopRecorder()
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return recorder.Run(recCtx)
	})
	g.Go(func() error {
		pruner.Start(gctx)
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Server error: %v", err)
	}
	log.Println("Server exited")
}
