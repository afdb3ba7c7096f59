// Copyright (c) 2026 Code2Lead. All rights reserved.

// Command api is the entry point for the Code2Lead HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables (and .env when present).
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Build security primitives (hasher, token service, session cookie).
//  7. Wire repositories, services and HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/api"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/learning/course"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/config"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/constants"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/metrics"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/migration"
	pgstore "github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/postgres"
	redisstore "github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/redis"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/sec"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/session"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/users/account"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.IsDevelopment() {
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})).With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. A deadline makes misconfiguration fail fast.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Security ───────────────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer, constants.AuthAudience)
	must(log, err, "initialize token service")

	hasher := sec.NewPasswordHasher(cfg.BcryptCost, cfg.HashConcurrency)

	cookie := session.NewCookie(session.Options{
		Name:     cfg.CookieName,
		Domain:   cfg.CookieDomain,
		Secure:   cfg.CookieSecureFlag(),
		SameSite: cfg.CookieSameSiteMode(),
		MaxAge:   cfg.CookieMaxAge(),
	})

	// ── 7. Metrics ────────────────────────────────────────────────────────
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	prom := metrics.NewProm(registry)

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckCache: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		},
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewUserRepository(pool)
	attemptTracker := auth.NewRedisAttemptTracker(rdb, cfg.LoginMaxAttempts, cfg.LoginLockDuration)
	authService := auth.NewService(userRepository, attemptTracker, hasher, tokenService, cfg.JWTExpire, prom)

	accountService := account.NewService(account.NewProfileRepository(pool))
	courseService := course.NewService(course.NewPostgresRepository(pool))

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Metrics:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		Auth:      auth.NewHandler(authService, cookie),
		Account:   account.NewHandler(accountService),
		Course:    course.NewHandler(courseService),
	}

	server := api.NewServer(cfg, log, prom, api.Security{Verifier: tokenService, CookieName: cookie.Name()}, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("server_shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
