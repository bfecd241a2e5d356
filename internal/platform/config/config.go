// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the bestiary API server.
type Config struct {

	// DatabaseURL locates the embedded SQL database file.
	DatabaseURL string `env:"DATABASE_URL,required"`

	// BackendURL is the externally-reachable base URL used to build pagination "next" links.
	BackendURL string `env:"BACKEND_URL"`

	// ServiceIP / ServicePort are the HTTP listener bind address.
	ServiceIP   string `env:"SERVICE_IP"   envDefault:"0.0.0.0"`
	ServicePort string `env:"SERVICE_PORT" envDefault:"25566"`

	// StartupState selects whether the creature-core projection is rebuilt
	// from scratch ("Clean") or assumed already present ("Persistent").
	StartupState string `env:"SERVICE_STARTUP_STATE" envDefault:"Clean"`

	// MigrationPath is the filesystem path to the SQL migrations directory
	// bootstrapping the auxiliary catalog schema.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// NamesPath / NicknamesPath locate the NPC name-corpus JSON documents.
	NamesPath     string `env:"NAMES_PATH"     envDefault:"./data/names.json"`
	NicknamesPath string `env:"NICKNAMES_PATH" envDefault:"./data/nicknames.json"`

	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`

	// ExtraOrigins is a comma-separated origin list read from EXTRA_ORIGINS.
	// The CORS middleware does not consult it.
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsCleanStartup reports whether the creature-core projection must be rebuilt.
func (c *Config) IsCleanStartup() bool {
	return c.StartupState != "Persistent"
}
