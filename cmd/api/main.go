package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oggyb/pagetracker/internal/config"
	"github.com/oggyb/pagetracker/internal/db/gormdb"
	"github.com/oggyb/pagetracker/internal/domain/page"
	"github.com/oggyb/pagetracker/internal/fetch"
	"github.com/oggyb/pagetracker/internal/handler"
	pageRepo "github.com/oggyb/pagetracker/internal/repository/gorm/page"
	routes "github.com/oggyb/pagetracker/internal/router"
	"github.com/oggyb/pagetracker/internal/scheduler"
	"github.com/oggyb/pagetracker/internal/server"
	"github.com/oggyb/pagetracker/internal/service"
	"github.com/oggyb/pagetracker/internal/storage"
	"github.com/oggyb/pagetracker/internal/tracker"
)

// @title       pagetracker API
// @version     1.0
// @description Fetches pages through a short-lived Redis cache and counts every access.
// @BasePath    /
func main() {
	rootCtx := context.Background()

	// Load configuration from environment/.env.
	cfg := config.New()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[Main] %v", err)
	}

	// Init store. Closed last, after everything that uses it has stopped.
	store, err := storage.OpenCache(rootCtx, cfg)
	if err != nil {
		log.Fatalf("[Main] failed to open cache: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("[Main] Store close error: %v", err)
		}
	}()
	log.Printf("[Main] Cache driver %q ready (ttl=%s).", cfg.Cache.Driver, cfg.Cache.TTL)

	// Init ledger (optional).
	var ledger page.Repository
	if cfg.DB.Enabled {
		gdb, err := gormdb.New(cfg.PostgresDSN())
		if err != nil {
			log.Fatalf("[Main] failed to connect db: %v", err)
		}
		defer gdb.Close()

		repo := pageRepo.NewRepository(gdb)
		if err := repo.Migrate(rootCtx); err != nil {
			log.Fatalf("[Main] AutoMigrate failed: %v", err)
		}
		ledger = repo
		log.Printf("[Main] Page ledger enabled (db=%q).", cfg.DB.Name)
	}

	// Fetcher, tracker and service.
	fetcher := fetch.NewHTTPFetcher(cfg.Fetch.Timeout, cfg.Fetch.UserAgent)
	pageTracker := tracker.New(store, fetcher, tracker.WithTTL(cfg.Cache.TTL))
	pageSvc := service.NewPageService(
		pageTracker,
		fetcher,
		ledger,
		cfg.Snapshot.BatchSize,
		cfg.Snapshot.MaxWorkers,
		cfg.Snapshot.PageTimeout,
	)

	// Snapshot scheduler.
	cron := scheduler.NewSchedulerService(
		pageSvc,
		cfg.Scheduler.Interval,
		cfg.Scheduler.BatchTimeout,
	)

	deps := routes.AppDeps{
		Home: handler.NewHomeHandler(store),
		Page: handler.NewPageHandler(pageSvc, cron),
	}

	addr := fmt.Sprintf("%s:%s", cfg.API.Host, cfg.API.Port)
	srv := server.New(addr, deps)

	// Create a context that is cancelled on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("[Main] HTTP server listening on %s", addr)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	if ledger != nil && cfg.Scheduler.AutoStart {
		if err := cron.Start(); err != nil {
			log.Fatalf("[Main] Scheduler error: %v", err)
		}
		log.Println("[Main] Scheduler started.")
	}

	// Block until we receive a shutdown signal.
	<-ctx.Done()
	log.Println("[Main] Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Println("[Main] Stopping scheduler...")
	if err := cron.Stop(); err != nil {
		log.Printf("[Main] Scheduler did not stop cleanly: %v", err)
	}

	log.Println("[Main] Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Main] HTTP server shutdown error: %v", err)
	}

	log.Println("[Main] Graceful shutdown complete.")
}
