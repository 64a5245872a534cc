// Package main is the entry point for the trip planner API server.
// It only wires dependencies together and starts the server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pkordes/trip-planner/internal/config"
	"github.com/pkordes/trip-planner/internal/handler"
	"github.com/pkordes/trip-planner/internal/middleware"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/service"
	"github.com/pkordes/trip-planner/migrations"
)

const shutdownGrace = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: config.Level(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server failed", "error", err)
		stop()
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// run connects to Postgres, migrates it and serves the API until ctx is
// cancelled, then drains in-flight requests.
func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("create database pool: %w", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	// goose runs on database/sql; borrow a handle backed by the same pool.
	sqlDB := stdlib.OpenDBFromPool(pool)
	applied, err := migrations.Up(ctx, sqlDB)
	_ = sqlDB.Close()
	if err != nil {
		return err
	}
	logger.Info("database ready", "migrations_applied", applied)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router(cfg, logger, newServer(pool, logger)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newServer(pool *pgxpool.Pool, logger *slog.Logger) *handler.Server {
	trips := repo.NewTripRepo(pool)
	return handler.NewServer(
		service.NewTripService(trips),
		service.NewLinkService(repo.NewLinkRepo(pool), trips),
		service.NewParticipantService(repo.NewParticipantRepo(pool), trips),
		service.NewActivityService(repo.NewActivityRepo(pool), trips),
		logger,
	)
}

// router stacks the middleware in front of the API routes. Recoverer sits
// inside the request logger so a panic is logged as a 500; CORS answers
// preflights before the body limit applies.
func router(cfg config.Config, logger *slog.Logger, api *handler.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Mount("/", api.Routes())
	return r
}
