// Copyright (c) 2026 Code2Lead. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/learning/course"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/apperr"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/config"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/constants"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/metrics"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/middleware"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/platform/respond"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/users/account"
	"github.com/Abdulmajid-Alhaj/Code2Lead/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Metrics exposes the Prometheus registry on /metrics.
	Metrics http.Handler

	// Auth handles login, logout and admin account management.
	Auth *auth.Handler

	// Account handles the caller's profile and public profiles.
	Account *account.Handler

	// Course serves the learning catalogue.
	Course *course.Handler
}

// Security carries what the routers need to recognise a session.
type Security struct {
	Verifier   middleware.TokenVerifier
	CookieName string
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(cfg *config.Config, log *slog.Logger, prom *metrics.Prom, security Security, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	if prom != nil {
		r.Use(middleware.Metrics(prom))
	}
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Debug(!cfg.IsProduction()))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	authenticate := middleware.Authenticate(security.Verifier, security.CookieName)
	optionalAuthenticate := middleware.OptionalAuthenticate(security.Verifier, security.CookieName)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	// # Application API
	r.Route("/api/auth", func(api chi.Router) {
		h.Auth.RegisterRoutes(api, authenticate)
		h.Account.RegisterRoutes(api, authenticate)
	})
	r.Mount("/api/courses", h.Course.Routes(authenticate, optionalAuthenticate))

	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.NotFound(apperr.CodeRouteNotFound, "Route "+request.URL.Path+" not found"))
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler returns the root router. Tests drive it through httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	shutdownContext, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownContext)
}
