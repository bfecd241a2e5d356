// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Api is the entry point for the Yomira tabletop content catalog API server.

The server exposes a read-mostly HTTP catalog of creatures, hazards, and
items for two game systems (Pathfinder and Starfinder), plus generators
for encounters, shops, and NPC names, and a compact shareable codec for
all three.

Usage:

	go run cmd/api/main.go

The environment variables are documented on [config.Config].

Startup Sequence:

 1. Logger: Initialize structured JSON logging (slog).
 2. Config: Load and validate environment variables.
 3. Storage: Open the embedded SQLite database.
 4. Migration: Run idempotent schema updates for the auxiliary tables.
 5. Projection: Load per-game-system scale tables and (on a clean
    startup) rebuild the creature role-affinity projection.
 6. Wiring: Inject dependencies into domain services/handlers.
 7. Server: Bind HTTP listener and handle graceful shutdown.

No business logic lives here. This file is strictly for orchestration and wiring.
*/
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/yomira/internal/api"
	"github.com/taibuivan/yomira/internal/core/bestiary"
	"github.com/taibuivan/yomira/internal/core/encounter"
	"github.com/taibuivan/yomira/internal/core/hazard"
	"github.com/taibuivan/yomira/internal/core/item"
	"github.com/taibuivan/yomira/internal/core/npc"
	"github.com/taibuivan/yomira/internal/core/shareable"
	"github.com/taibuivan/yomira/internal/platform/config"
	"github.com/taibuivan/yomira/internal/platform/constants"
	"github.com/taibuivan/yomira/internal/platform/migration"
	"github.com/taibuivan/yomira/internal/platform/sqlite"
	"github.com/taibuivan/yomira/pkg/scales"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application_startup_failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	// # 1. Logger
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", "yomira"))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// # 2. Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "yomira"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServicePort),
	)

	// Root context for startup. A 30s deadline prevents the app from hanging.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// # 3. SQLite
	db, err := sqlite.NewPool(startupCtx, cfg.DatabaseURL, log)
	if err != nil {
		return fmt.Errorf("open sqlite database: %w", err)
	}
	defer func() {
		log.Info("closing sqlite pool")
		if cerr := db.Close(); cerr != nil {
			log.Error("sqlite close error", slog.Any("error", cerr))
		}
	}()

	// # 4. Migrations
	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// # 5. Per-game-system wiring
	// The name-chain and nickname caches load one corpus file covering both
	// game systems, so a single pair of caches is shared across both.
	chains := npc.NewChainCache(cfg.NamesPath)
	nicknames := npc.NewNicknameCache(cfg.NicknamesPath)

	pf, err := wireGameSystem(startupCtx, db, cfg, log, constants.GameSystemPathfinder, chains, nicknames)
	if err != nil {
		return fmt.Errorf("wire pathfinder catalog: %w", err)
	}
	sf, err := wireGameSystem(startupCtx, db, cfg, log, constants.GameSystemStarfinder, chains, nicknames)
	if err != nil {
		return fmt.Errorf("wire starfinder catalog: %w", err)
	}

	handlers := api.Handlers{
		Liveness:   api.Liveness,
		Pathfinder: pf,
		Starfinder: sf,
	}

	server := api.NewServer(cfg, log, handlers)

	// # 6. Lifecycle Handling
	shutdownErr := make(chan error, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			shutdownErr <- fmt.Errorf("http_server_crash: %w", err)
		}
	}()

	log.Info("yomira_api_running", slog.String("port", cfg.ServicePort))

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-shutdownErr:
		return err
	}

	log.Info("shutting_down_api_server", slog.Duration("timeout", constants.ShutdownTimeout))
	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		return fmt.Errorf("server_shutdown_failed: %w", err)
	}

	log.Info("graceful_shutdown_complete")
	return nil
}

// wireGameSystem loads the scale tables and builds every catalog
// repository/service/handler scoped to one game system prefix ("pf" or
// "sf"), rebuilding the creature role-affinity projection on a clean
// startup.
func wireGameSystem(
	ctx context.Context, db *sql.DB, cfg *config.Config, log *slog.Logger, gsPrefix string,
	chains *npc.ChainCache, nicknames *npc.NicknameCache,
) (api.GameSystemHandlers, error) {
	tables, err := scales.Load(db, gsPrefix)
	if err != nil {
		return api.GameSystemHandlers{}, fmt.Errorf("load %s scale tables: %w", gsPrefix, err)
	}

	creatureRepo := bestiary.NewSQLiteRepository(db, gsPrefix, tables)
	hazardRepo := hazard.NewSQLiteRepository(db, gsPrefix)
	itemRepo := item.NewSQLiteRepository(db, gsPrefix)

	if cfg.IsCleanStartup() {
		log.Info("rebuilding role-affinity projection", slog.String("game_system", gsPrefix))
		if err := creatureRepo.RebuildRoleScores(ctx); err != nil {
			return api.GameSystemHandlers{}, fmt.Errorf("rebuild %s role scores: %w", gsPrefix, err)
		}
	}

	creatureSvc := bestiary.NewService(creatureRepo, log)
	hazardSvc := hazard.NewService(hazardRepo, log)
	itemSvc := item.NewService(itemRepo, log)
	encounterSvc := encounter.NewService(creatureRepo, hazardRepo, log)

	npcSvc := npc.NewService(chains, nicknames, log)

	shareableSvc := shareable.NewService(creatureRepo, hazardRepo, itemRepo)

	return api.GameSystemHandlers{
		Bestiary:  bestiary.NewHandler(creatureSvc),
		Hazard:    hazard.NewHandler(hazardSvc),
		Item:      item.NewHandler(itemSvc),
		Encounter: encounter.NewHandler(encounterSvc),
		NPC:       npc.NewHandler(npcSvc, gsPrefix),
		Shareable: shareable.NewHandler(shareableSvc),
	}, nil
}
