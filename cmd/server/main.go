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

	"github.com/redis/go-redis/v9"

	h "github.com/yuhakway/tracker/internal/api/http"
	"github.com/yuhakway/tracker/internal/auth"
	"github.com/yuhakway/tracker/internal/backend"
	cfgpkg "github.com/yuhakway/tracker/internal/config"
	repo "github.com/yuhakway/tracker/internal/repository"
	svc "github.com/yuhakway/tracker/internal/service"
)

func main() {

	cfg, err := cfgpkg.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfgpkg.SetupLogger(cfg)
	slog.Info("configuration loaded successfully", "source", cfg.Source, "locale", cfg.Locale)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := backend.NewClient(cfg.BackendURL, cfg.BackendAnonKey, cfg.BackendTimeout, logger)

	store, closeStore, err := openStore(ctx, cfg, client)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Error("fixture file does not exist", "error", err)
		} else {
			slog.Error("failed to initialize record source", "error", err)
		}
		os.Exit(1)
	}
	defer closeStore()

	limiter, closeLimiter := newLimiter(ctx, cfg)
	defer closeLimiter()

	router := h.NewRouter(h.Options{
		Tracker:     svc.NewTrackerService(store, logger),
		Accounts:    svc.NewAccountService(client, logger),
		Verifier:    auth.NewVerifier(cfg.BackendJWTSecret),
		Limiter:     limiter,
		LoginLimit:  cfg.LoginRateLimit,
		LoginWindow: cfg.LoginRateWindow,
		Locale:      cfg.Locale,
		Logger:      logger,
	})
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPTimeout,
		WriteTimeout: cfg.HTTPTimeout + cfg.BackendTimeout,
		IdleTimeout:  cfg.HTTPTimeout,
	}

	go func() {
		slog.Info("server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	} else {
		slog.Info("server stopped gracefully")
	}
}

// openStore builds the configured record source and its cleanup function.
func openStore(ctx context.Context, cfg *cfgpkg.Config, client *backend.Client) (repo.Store, func(), error) {
	switch cfg.Source {
	case cfgpkg.SourcePostgres:
		store, err := repo.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case cfgpkg.SourceFixture:
		if _, err := os.Stat(cfg.FixtureFile); err != nil {
			return nil, nil, err
		}
		store, err := repo.NewFixtureStore(cfg.FixtureFile)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	default:
		return backend.NewRESTStore(client), func() {}, nil
	}
}

// newLimiter returns a Redis limiter when REDIS_ADDR is set and reachable,
// and the in-process limiter otherwise.
func newLimiter(ctx context.Context, cfg *cfgpkg.Config) (h.Limiter, func()) {
	if cfg.RedisAddr == "" {
		return h.NewMemoryLimiter(), func() {}
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unavailable, using in-process rate limiter", "addr", cfg.RedisAddr, "error", err)
		_ = client.Close()
		return h.NewMemoryLimiter(), func() {}
	}
	slog.Info("using redis rate limiter", "addr", cfg.RedisAddr)
	return h.NewRedisLimiter(client), func() { _ = client.Close() }
}
