// Guess Who - turn-based deduction game against an AI opponent
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/mirrorlake/guesswho/internal/api"
	"github.com/mirrorlake/guesswho/internal/catalog"
	"github.com/mirrorlake/guesswho/internal/config"
	"github.com/mirrorlake/guesswho/internal/game"
	"github.com/mirrorlake/guesswho/internal/identity"
	"github.com/mirrorlake/guesswho/internal/middleware"
	"github.com/mirrorlake/guesswho/internal/oracle"
	"github.com/mirrorlake/guesswho/internal/store"
	"github.com/mirrorlake/guesswho/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Initialize dependencies.
	var repo store.Repository
	if cfg.DBPath != "" {
		sqlRepo, err := store.NewSQLite(cfg.DBPath)
		if err != nil {
			slog.Error("Failed to initialize database", "error", err)
			os.Exit(1)
		}
		repo = sqlRepo
		slog.Info("Using SQLite store", "path", cfg.DBPath)
	} else {
		repo = store.NewMemory()
		slog.Info("Using in-memory store (DB_PATH not set, games are volatile)")
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Store health check failed", "error", err)
		os.Exit(1)
	}

	if cfg.Oracle.APIKey == "" {
		slog.Warn("Oracle API key not set; the AI opponent will play on fallbacks only")
	}
	oracleClient := oracle.NewOpenAIClient(cfg.Oracle.APIKey, cfg.Oracle.BaseURL, cfg.Oracle.Model)
	oracleSvc := oracle.NewService(oracleClient, cfg.Oracle.Timeout)

	roster := catalog.Default()
	gameSvc := game.NewService(repo, roster, oracleSvc)
	slog.Info("Game service initialized", "roster_size", roster.Len(), "oracle_model", cfg.Oracle.Model)

	// Initialize handlers.
	gameHandler := api.NewGameHandler(gameSvc)
	eventsHandler := api.NewEventsHandler(gameSvc, cfg.IsDevelopment())

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(identity.Middleware(cfg.IsDevelopment()))

	gameHandler.RegisterRoutes(r)

	// WebSocket endpoint for live game events.
	r.Get("/ws/games/{gameID}/events", eventsHandler.ServeHTTP)

	// Serve embedded frontend (SPA catch-all).
	r.Handle("/*", web.SPAHandler())

	// Create server. WriteTimeout stays at 0 so long-lived event streams are
	// not cut off.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 0,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
