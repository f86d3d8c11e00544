/*
Package main is the entry point for the authsite application.

It is responsible for loading configuration, initializing the global logging system,
choosing the user store, setting up the HTTP server and gracefully handling
operating system interrupt signals (SIGINT, SIGTERM) to ensure a smooth server shutdown.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"authsite/internal/app/auth"
	"authsite/internal/app/db"
	"authsite/internal/app/user"
	"authsite/internal/configs"
	"authsite/internal/handler"
	"authsite/internal/pkg/auth/session"
	"authsite/internal/pkg/logx"
	"authsite/internal/pkg/metrics"
	"authsite/internal/web"
)

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logx.InitGlobalLogger(cfg.IsDevelopment())
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Str("session_backend", cfg.SessionBackend).
		Str("store_driver", cfg.StoreDriver).
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	users, closeStore, err := openUserStore(ctx, cfg)
	if err != nil {
		logx.Fatal(err, "Failed to open user store", "driver", cfg.StoreDriver)
	}
	defer closeStore()

	authService := auth.NewService(users, auth.NewBcryptHasher(cfg.BcryptCost))

	sessions, err := session.New(cfg.SessionBackend, session.Options{
		Secret: cfg.SessionSecret,
		MaxAge: cfg.SessionMaxAge,
		Secure: !cfg.IsDevelopment(),
	})
	if err != nil {
		logx.Fatal(err, "Failed to create session manager")
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		logx.Fatal(err, "Failed to parse templates")
	}

	deps := &handler.AppDeps{
		Config:   cfg,
		Auth:     authService,
		Sessions: sessions,
		Renderer: renderer,
	}
	if cfg.MetricsEnabled {
		deps.Metrics = metrics.New()
	}

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler.Router(ctx, deps),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info("authsite starting", "addr", "http://localhost"+serverAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Error(err, "Server forced to shutdown")
		return
	}

	logx.Info("Server gracefully stopped.")
}

// openUserStore returns the repository selected by STORE_DRIVER and a func releasing its resources.
func openUserStore(ctx context.Context, cfg *configs.AppConfig) (user.Repository, func(), error) {
	switch cfg.StoreDriver {
	case configs.StoreDriverPostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		return db.NewUserStore(pool), pool.Close, nil
	default:
		return user.NewMemoryStore(), func() {}, nil
	}
}
