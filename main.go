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

	"github.com/msomdec/flashdeck/internal/domain"
	"github.com/msomdec/flashdeck/internal/handler"
	"github.com/msomdec/flashdeck/internal/persist/sqlite"
	"github.com/msomdec/flashdeck/internal/service"
	"github.com/msomdec/flashdeck/internal/store"
)

func main() {
	logOpts := &slog.HandlerOptions{Level: slog.LevelInfo}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	// Optional .env for local development.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env")
	}

	port := envOrDefault("PORT", "8080")
	dbPath := envOrDefault("DATABASE_PATH", "flashdeck.db")
	debounce := 2 * time.Second
	if v := os.Getenv("AUTOSAVE_DEBOUNCE"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			slog.Error("invalid AUTOSAVE_DEBOUNCE", "error", err)
			os.Exit(1)
		}
		debounce = parsed
	}

	db, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	persister := sqlite.NewPersister(db)
	recordStore := store.New(domain.SystemClock())

	tables, err := persister.LoadAll(context.Background())
	if err != nil {
		slog.Error("failed to load snapshot", "error", err)
		os.Exit(1)
	}
	recordStore.Restore(tables)
	slog.Info("snapshot loaded",
		"categories", len(tables.Categories),
		"decks", len(tables.Decks),
		"cards", len(tables.Cards),
	)

	categoryService := service.NewCategoryService(recordStore)
	deckService := service.NewDeckService(recordStore)
	cardService := service.NewCardService(recordStore)
	sessionService := service.NewSessionService(recordStore)
	statsService := service.NewStatsService(recordStore)

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	autosaver := sqlite.NewAutosaver(recordStore, persister, debounce)
	saverDone := make(chan struct{})
	go func() {
		autosaver.Run(ctx)
		close(saverDone)
	}()

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, recordStore, categoryService, deckService, cardService, sessionService, statsService)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler.SecurityHeaders(handler.RequestLogger(mux)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Make sure the last in-memory state reaches disk.
	<-saverDone
	if err := persister.SaveAll(context.Background(), recordStore.Snapshot()); err != nil {
		slog.Error("final snapshot save failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
