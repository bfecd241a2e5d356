// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package sqlite provides the embedded SQL database driver and connection pool
for the catalog store.

Architecture:

  - Pool: a [database/sql.DB] bounded to a small number of connections, since
    the catalog file is opened read-write only during the startup rebuild and
    is read-only for the remainder of the process lifetime.
  - Safety: a context deadline guards the initial connectivity check so a
    missing or locked database file fails startup fast instead of hanging.

This package is the bridge between the domain stores and the physical file.
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// # Pool Configuration (Tuning)

const (
	// maxOpenConns bounds the pool per the catalog's single-writer,
	// many-reader resource model.
	maxOpenConns = 5

	// maxIdleConns keeps a warm set of connections to avoid reconnect latency.
	maxIdleConns = 5

	// connMaxLifetime periodically recycles connections.
	connMaxLifetime = 60 * time.Minute

	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second
)

// NewPool opens the catalog database file and validates connectivity.
//
// dsn is a path-URL string, e.g. "file:/data/catalog.db?_busy_timeout=5000".
func NewPool(ctx context.Context, dsn string, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: invalid DSN: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	if err := Ping(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("sqlite pool connected",
		slog.Int("max_open_conns", maxOpenConns),
	)

	return db, nil
}

// Ping verifies that the catalog database is reachable.
func Ping(ctx context.Context, db *sql.DB) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("sqlite: ping failed: %w", err)
	}
	return nil
}
