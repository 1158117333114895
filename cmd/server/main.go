package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rafflehouse/admin-backend/internal/api"
	"github.com/rafflehouse/admin-backend/internal/auth"
	"github.com/rafflehouse/admin-backend/internal/config"
	"github.com/rafflehouse/admin-backend/internal/dashboard"
	"github.com/rafflehouse/admin-backend/internal/revenue"
	"github.com/rafflehouse/admin-backend/internal/storage"
)

func main() {
	slog.Info("Starting raffle admin backend...")

	// .env is optional; deployed environments inject real env vars.
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Critical error loading configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store, err := storage.New(ctx, cfg.ProjectID, cfg.CascadeRetries)
	if err != nil {
		slog.Error("Critical error initializing Firestore client", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	blobs, err := storage.NewBlobStore(ctx, cfg.StorageBucket)
	if err != nil {
		slog.Error("Critical error initializing blob store", "error", err)
		os.Exit(1)
	}

	opts := api.Options{
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	}
	if !cfg.AuthDisabled {
		verifier, err := auth.New(ctx)
		if err != nil {
			slog.Error("Critical error initializing Firebase Auth", "error", err)
			os.Exit(1)
		}
		opts.Authenticate = verifier.RequireUser
	}

	h := api.NewHandler(store, blobs, dashboard.NewService(store), revenue.NewService(store))

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      api.NewRouter(h, opts),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGTERM/SIGINT
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
		sig := <-sigCh
		slog.Info("Received signal, shutting down gracefully...", "signal", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("HTTP server shutdown error", "error", err)
		}
	}()

	slog.Info("Listening on port", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Failed to listen and serve", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped.")
}
