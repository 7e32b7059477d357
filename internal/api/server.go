// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

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

	"github.com/tsakorea/tsak-api/internal/core/announcement"
	"github.com/tsakorea/tsak-api/internal/core/event"
	"github.com/tsakorea/tsak-api/internal/core/experience"
	"github.com/tsakorea/tsak-api/internal/core/member"
	"github.com/tsakorea/tsak-api/internal/core/scholarship"
	"github.com/tsakorea/tsak-api/internal/core/sponsor"
	"github.com/tsakorea/tsak-api/internal/platform/config"
	"github.com/tsakorea/tsak-api/internal/platform/constants"
	"github.com/tsakorea/tsak-api/internal/platform/middleware"
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
//
// # Usage
//
// New resources add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Announcement handles the announcement feed, filters and view counting.
	Announcement *announcement.Handler

	// Event handles the activity calendar.
	Event *event.Handler

	// Member handles the committee roster.
	Member *member.Handler

	// Scholarship handles the scholarship catalog.
	Scholarship *scholarship.Handler

	// Sponsor handles the grouped supporter directory.
	Sponsor *sponsor.Handler

	// Experience handles alumni testimonials.
	Experience *experience.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg, cfg.ExtraOrigins))
	r.Use(middleware.BaseURL(cfg.PublicBaseURL))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// One route group per resource; all read-only.
	r.Route("/api", func(api chi.Router) {
		api.Route("/announcements", h.Announcement.RegisterRoutes)
		api.Route("/events", h.Event.RegisterRoutes)
		api.Route("/members", h.Member.RegisterRoutes)
		api.Route("/scholarships", h.Scholarship.RegisterRoutes)
		api.Route("/sponsors", h.Sponsor.RegisterRoutes)
		api.Route("/experiences", h.Experience.RegisterRoutes)
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

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
