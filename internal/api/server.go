// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

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

	"github.com/taibuivan/yomira/internal/core/bestiary"
	"github.com/taibuivan/yomira/internal/core/encounter"
	"github.com/taibuivan/yomira/internal/core/hazard"
	"github.com/taibuivan/yomira/internal/core/item"
	"github.com/taibuivan/yomira/internal/core/npc"
	"github.com/taibuivan/yomira/internal/core/shareable"
	"github.com/taibuivan/yomira/internal/platform/config"
	"github.com/taibuivan/yomira/internal/platform/constants"
	"github.com/taibuivan/yomira/internal/platform/middleware"
	"github.com/taibuivan/yomira/internal/platform/respond"
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

// Handlers groups all domain-specific HTTP handler sets: the liveness
// handler plus one [GameSystemHandlers] per game system. Every domain,
// encounter and shareable included, is mounted once per game system.
//
// # Usage
//
// A new per-system domain adds a field to [GameSystemHandlers] and a mount
// line in mountGameSystem.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	Pathfinder GameSystemHandlers
	Starfinder GameSystemHandlers
}

// GameSystemHandlers groups the catalog handlers that are scoped to a
// single game system ("pf" or "sf"). Shareable blobs encode catalog ids,
// which are only meaningful within one game system's tables, so the codec
// is mounted per system rather than once globally.
type GameSystemHandlers struct {
	Bestiary  *bestiary.Handler
	Hazard    *hazard.Handler
	Item      *item.Handler
	Encounter *encounter.Handler
	NPC       *npc.Handler
	Shareable *shareable.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. The catalog is read-mostly and carries no
// authentication or per-client rate limiting.
func NewServer(cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	rte := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	rte.Use(middleware.RequestID())
	rte.Use(middleware.StructuredLogger(log))
	rte.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	rte.Use(middleware.PanicRecovery(log))
	rte.Use(middleware.CORS(cfg))
	rte.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	rte.Get("/health", h.Liveness)

	mountGameSystem(rte, "/pf", h.Pathfinder)
	mountGameSystem(rte, "/sf", h.Starfinder)

	return &Server{
		router: rte,
		log:    log,
		httpServer: &http.Server{
			Addr:              cfg.ServiceIP + ":" + cfg.ServicePort,
			Handler:           rte,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

func mountGameSystem(router chi.Router, prefix string, handlers GameSystemHandlers) {
	router.Route(prefix, func(system chi.Router) {
		system.Route("/bestiary", handlers.Bestiary.RegisterRoutes)
		system.Route("/hazard", handlers.Hazard.RegisterRoutes)
		system.Route("/items", handlers.Item.RegisterRoutes)
		system.Route("/encounter", handlers.Encounter.RegisterRoutes)
		system.Route("/npc", handlers.NPC.RegisterRoutes)
		system.Route("/shareable", handlers.Shareable.RegisterRoutes)
	})
}

// Liveness always reports the process alive; it has no dependency checks.
func Liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{"status": "ok"})
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
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
