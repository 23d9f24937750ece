package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/api"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/backup"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/config"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/database"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/service"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create the persisted slot store and the session state over it
	slotStore := store.NewSQLiteStore(db)
	stateService := service.NewStateService(slotStore, "server")
	dashboardService := service.NewDashboardService(stateService)
	systemService := service.NewSystemService(db)

	clearGuard, err := newClearGuard(cfg)
	if err != nil {
		log.Fatalf("Failed to set up clear token guard: %v", err)
	}

	// Create router
	router, err := api.NewRouter(systemService, stateService, dashboardService, clearGuard, cfg)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Periodic store snapshots
	backupJob := backup.NewJob(slotStore, cfg.Backup.Dir, cfg.Backup.Schedule, cfg.Backup.Keep)
	if err := backupJob.Start(); err != nil {
		log.Fatalf("Failed to start backup job: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Pump peer writes into the session state
	g.Go(func() error {
		if err := stateService.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		log.Println("Shutting down server...")
		backupJob.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}

	log.Println("Server exited")
}

// newClearGuard builds the confirmation token guard from config. Without a
// configured key a fresh one is generated, so tokens only span one process
// lifetime.
func newClearGuard(cfg *config.Config) (*service.ClearGuard, error) {
	if cfg.Clear.FernetKey != "" {
		return service.NewClearGuard(cfg.Clear.FernetKey, cfg.Clear.TokenTTL)
	}
	return service.NewClearGuardWithKey(cfg.Clear.TokenTTL)
}
