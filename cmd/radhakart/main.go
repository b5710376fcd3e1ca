// Package main is the entry point for the radhakart storefront API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"radhakart/internal/catalog"
	"radhakart/internal/cloudinary"
	"radhakart/internal/config"
	"radhakart/internal/database"
	"radhakart/internal/handlers"
	"radhakart/internal/router"
	"radhakart/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables (and .env if present).
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"root_folder", cfg.RootFolder,
	)

	// Media store client; the catalog, feed, and upload signer all go
	// through it.
	cld := cloudinary.New(cloudinary.Config{
		CloudName: cfg.CloudName,
		APIKey:    cfg.APIKey,
		APISecret: cfg.APISecret,
	})

	catalogSvc := catalog.New(cld, cfg.RootFolder)

	// Pick the persistence backing: PostgreSQL when configured, otherwise
	// in-memory stores. The in-memory order ledger is volatile, orders are
	// lost on restart.
	var (
		users  store.UserStore
		orders store.OrderStore
	)
	if cfg.HasDatabase() {
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		// Seed development data (no-op if data already exists).
		if cfg.IsDev() {
			if err := database.Seed(db); err != nil {
				slog.Error("failed to seed database", "error", err)
				os.Exit(1)
			}
		}

		users = store.NewPGUserStore(db)
		orders = store.NewPGOrderStore(db)
	} else {
		slog.Warn("postgres not configured, accounts and orders are in-memory only")
		users = store.NewMemoryUserStore()
		orders = store.NewMemoryOrderStore()
	}

	// Create handler groups with their dependencies.
	catalogHandlers := handlers.NewCatalog(catalogSvc)
	uploadHandlers := handlers.NewUpload(cld)
	authHandlers := handlers.NewAuth(users)
	orderHandlers := handlers.NewOrders(orders, cfg.DemoUserID)

	// Set up the Chi router with all middleware and routes.
	r := router.New(catalogHandlers, uploadHandlers, authHandlers, orderHandlers)

	// Create the HTTP server with sensible timeouts. WriteTimeout must
	// accommodate the catalog aggregation, whose latency is one folder
	// listing plus a search per subfolder.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
