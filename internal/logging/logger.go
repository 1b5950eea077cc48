// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

// Package logging provides the zerolog-based structured logger shared by every
// package in the discovery service.
//
// The logger is process-global and configured once from main:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("source", "owners/*/stations").Msg("Source fetched")
//
// Handlers and services should prefer the context-aware form so request and
// correlation IDs flow into every line:
//
//	logging.Ctx(ctx).Warn().Err(err).Msg("Source skipped")
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// ServiceName is stamped on every line as the "service" field.
const ServiceName = "evbunk"

// Config holds logging configuration.
type Config struct {
	Level     string    // trace, debug, info, warn, error, disabled
	Format    string    // json or console
	Caller    bool      // add file:line
	Timestamp bool      // add a "time" field
	Output    io.Writer // default os.Stderr
}

// DefaultConfig returns JSON at info level on stderr, with timestamps.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "json",
		Timestamp: true,
		Output:    os.Stderr,
	}
}

var current atomic.Pointer[zerolog.Logger]

//nolint:gochecknoinits // logging must work before main calls Init
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.MessageFieldName = "message"
	Init(DefaultConfig())
}

// Init (re)configures the global logger. Main calls it once after loading
// configuration; tests call it to capture output.
func Init(cfg Config) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	lc := zerolog.New(out).With().Str("service", ServiceName)
	if cfg.Timestamp {
		lc = lc.Timestamp()
	}
	if cfg.Caller {
		lc = lc.Caller()
	}
	l := lc.Logger()
	current.Store(&l)
}

// parseLevel maps a configured level name onto zerolog, treating unknown
// and empty names as info.
func parseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		level = "warn"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger { return *current.Load() }

// SetLogger replaces the global logger. Intended for tests.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func SetLogger(l zerolog.Logger) { current.Store(&l) }

// With starts a child logger context from the global logger.
func With() zerolog.Context { return current.Load().With() }

// Debug starts a debug level message.
func Debug() *zerolog.Event { return current.Load().Debug() }

// Info starts an info level message.
func Info() *zerolog.Event { return current.Load().Info() }

// Warn starts a warn level message.
func Warn() *zerolog.Event { return current.Load().Warn() }

// Error starts an error level message.
func Error() *zerolog.Event { return current.Load().Error() }

// Fatal starts a fatal level message; os.Exit(1) follows the write.
func Fatal() *zerolog.Event { return current.Load().Fatal() }

// NewTestLogger creates a logger that writes JSON lines to w.
//
//	var buf bytes.Buffer
//	logging.SetLogger(logging.NewTestLogger(&buf))
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
