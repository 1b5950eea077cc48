// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Infrastructure:
//     - Server: HTTP server configuration (port, host, timeouts)
//     - Database: BadgerDB document store (path, in-memory mode, fixture seeding)
//
//  2. Discovery:
//     - Discovery: source descriptors, page caps, radius and limit bounds, gazetteer overlay
//     - Breaker: per-source circuit breaker thresholds
//
//  3. API & Security:
//     - Security: CORS origins, rate limiting
//
//  4. Observability:
//     - Logging: Log levels and output formats
//
// Example - Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	store, err := docstore.OpenBadger(cfg.Database.Path, cfg.Database.InMemory)
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from multiple goroutines.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Discovery DiscoveryConfig `koanf:"discovery"`
	Breaker   BreakerConfig   `koanf:"breaker"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production" (default: "development")
}

// DatabaseConfig holds BadgerDB document store settings
type DatabaseConfig struct {
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"` // Run without touching disk (tests, demos)
	SeedFile string `koanf:"seed_file"` // Optional JSON fixture loaded at startup
}

// Source kinds accepted in SourceConfig.Kind.
const (
	SourceKindFlat   = "flat"
	SourceKindNested = "nested"
)

// SourceConfig describes one logical station source.
//
// A flat source scans a top-level collection. A nested source scans every
// sub-collection named Collection under the documents of Parent (a collection group).
// PageSize and Timeout fall back to the discovery-wide defaults when zero.
type SourceConfig struct {
	Name        string        `koanf:"name"`
	Kind        string        `koanf:"kind"`
	Collection  string        `koanf:"collection"`
	Parent      string        `koanf:"parent"`
	FilterField string        `koanf:"filter_field"`
	FilterValue string        `koanf:"filter_value"`
	PageSize    int           `koanf:"page_size"`
	Timeout     time.Duration `koanf:"timeout"`
}

// DiscoveryConfig holds station discovery engine settings.
//
// Environment Variables:
//   - DISCOVERY_PAGE_SIZE: per-source document cap (default: 500)
//   - DISCOVERY_SOURCE_TIMEOUT: per-source fetch timeout (default: 10s)
//   - DISCOVERY_MAX_CONCURRENCY: concurrent source fetches (default: 4)
//   - DISCOVERY_DEFAULT_RADIUS_KM: radius used when none is supplied (default: 25)
//   - DISCOVERY_MAX_RADIUS_KM: upper bound on accepted radius (default: 500)
//   - DISCOVERY_DEFAULT_LIMIT / DISCOVERY_MAX_LIMIT: result caps (default: 50 / 200)
//   - DISCOVERY_SUGGESTION_LIMIT: alternative places returned (default: 5, clamped 5-10)
//   - DISCOVERY_STRICT_AGGREGATION: fail the call when every source fails (default: false)
//   - GAZETTEER_PATH: optional YAML overlay for the built-in gazetteer
type DiscoveryConfig struct {
	PageSize          int            `koanf:"page_size"`
	SourceTimeout     time.Duration  `koanf:"source_timeout"`
	MaxConcurrency    int            `koanf:"max_concurrency"`
	DefaultRadiusKm   float64        `koanf:"default_radius_km"`
	MaxRadiusKm       float64        `koanf:"max_radius_km"`
	DefaultLimit      int            `koanf:"default_limit"`
	MaxLimit          int            `koanf:"max_limit"`
	SuggestionLimit   int            `koanf:"suggestion_limit"`
	StrictAggregation bool           `koanf:"strict_aggregation"`
	ParentCollection  string         `koanf:"parent_collection"`
	Sources           []SourceConfig `koanf:"sources"`
	GazetteerPath     string         `koanf:"gazetteer_path"`
}

// BreakerConfig holds the per-source circuit breaker thresholds.
// The breaker trips once MinRequests have been observed in Interval and the
// failure ratio reaches FailureRatio; it half-opens after Timeout.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from all supported sources in priority order:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// SourceFor returns s with PageSize and Timeout resolved against the discovery defaults.
func (d *DiscoveryConfig) SourceFor(s SourceConfig) SourceConfig {
	if s.PageSize <= 0 {
		s.PageSize = d.PageSize
	}
	if s.Timeout <= 0 {
		s.Timeout = d.SourceTimeout
	}
	if s.Kind == SourceKindNested && s.Parent == "" {
		s.Parent = d.ParentCollection
	}
	return s
}
