// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateDatabase,
		c.validateDiscovery,
		c.validateSources,
		c.validateBreaker,
		c.validateSecurity,
		c.validateLogging,
	}

	for _, validator := range validators {
		if err := validator(); err != nil {
			return err
		}
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateDatabase validates the document store configuration
func (c *Config) validateDatabase() error {
	if !c.Database.InMemory && strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("BADGER_PATH is required unless BADGER_IN_MEMORY=true")
	}
	return nil
}

// Discovery limit constants
const (
	discoveryMaxPageSize      = 10000
	discoveryMinSourceTimeout = 100 * time.Millisecond
	discoveryMaxSourceTimeout = time.Minute
	discoveryMaxConcurrency   = 32
	discoveryMinSuggestions   = 5
	discoveryMaxSuggestions   = 10
)

// validateDiscovery validates discovery engine bounds
func (c *Config) validateDiscovery() error {
	d := &c.Discovery
	if d.PageSize < 1 || d.PageSize > discoveryMaxPageSize {
		return fmt.Errorf("DISCOVERY_PAGE_SIZE must be between 1 and %d", discoveryMaxPageSize)
	}
	if d.SourceTimeout < discoveryMinSourceTimeout || d.SourceTimeout > discoveryMaxSourceTimeout {
		return fmt.Errorf("DISCOVERY_SOURCE_TIMEOUT must be between 100ms and 1m")
	}
	if d.MaxConcurrency < 1 || d.MaxConcurrency > discoveryMaxConcurrency {
		return fmt.Errorf("DISCOVERY_MAX_CONCURRENCY must be between 1 and %d", discoveryMaxConcurrency)
	}
	if d.DefaultRadiusKm <= 0 || d.MaxRadiusKm <= 0 {
		return fmt.Errorf("DISCOVERY_DEFAULT_RADIUS_KM and DISCOVERY_MAX_RADIUS_KM must be positive")
	}
	if d.DefaultRadiusKm > d.MaxRadiusKm {
		return fmt.Errorf("DISCOVERY_DEFAULT_RADIUS_KM (%g) exceeds DISCOVERY_MAX_RADIUS_KM (%g)", d.DefaultRadiusKm, d.MaxRadiusKm)
	}
	if d.DefaultLimit < 1 || d.MaxLimit < d.DefaultLimit {
		return fmt.Errorf("DISCOVERY_DEFAULT_LIMIT must be at least 1 and not exceed DISCOVERY_MAX_LIMIT")
	}
	if d.SuggestionLimit < discoveryMinSuggestions || d.SuggestionLimit > discoveryMaxSuggestions {
		return fmt.Errorf("DISCOVERY_SUGGESTION_LIMIT must be between %d and %d", discoveryMinSuggestions, discoveryMaxSuggestions)
	}
	return nil
}

// validateSources validates every configured source descriptor
func (c *Config) validateSources() error {
	if len(c.Discovery.Sources) == 0 {
		return fmt.Errorf("at least one discovery source must be configured")
	}

	seen := make(map[string]bool, len(c.Discovery.Sources))
	for i, s := range c.Discovery.Sources {
		if s.Name == "" {
			return fmt.Errorf("discovery.sources[%d]: name is required", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("discovery.sources[%d]: duplicate source name %q", i, s.Name)
		}
		seen[s.Name] = true

		if s.Collection == "" || strings.Contains(s.Collection, "/") {
			return fmt.Errorf("discovery.sources[%d] (%s): collection must be a single non-empty segment", i, s.Name)
		}
		switch s.Kind {
		case SourceKindFlat:
		case SourceKindNested:
			if s.Parent == "" && c.Discovery.ParentCollection == "" {
				return fmt.Errorf("discovery.sources[%d] (%s): nested sources need a parent collection", i, s.Name)
			}
		default:
			return fmt.Errorf("discovery.sources[%d] (%s): kind must be one of: flat, nested", i, s.Name)
		}
		if (s.FilterField == "") != (s.FilterValue == "") {
			return fmt.Errorf("discovery.sources[%d] (%s): filter_field and filter_value must be set together", i, s.Name)
		}
		if s.PageSize < 0 || s.PageSize > discoveryMaxPageSize {
			return fmt.Errorf("discovery.sources[%d] (%s): page_size must be between 0 and %d", i, s.Name, discoveryMaxPageSize)
		}
		if s.Timeout < 0 {
			return fmt.Errorf("discovery.sources[%d] (%s): timeout must not be negative", i, s.Name)
		}
	}
	return nil
}

// validateBreaker validates circuit breaker thresholds
func (c *Config) validateBreaker() error {
	b := c.Breaker
	if b.MaxRequests == 0 {
		return fmt.Errorf("BREAKER_MAX_REQUESTS must be at least 1")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("BREAKER_TIMEOUT must be positive")
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	return nil
}

// Rate limit bounds
const (
	minRateLimitReqs   = 1
	maxRateLimitReqs   = 100000
	minRateLimitWindow = time.Second
	maxRateLimitWindow = time.Hour
)

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < minRateLimitReqs || c.Security.RateLimitReqs > maxRateLimitReqs {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitReqs, maxRateLimitReqs)
		}
		if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be between 1s and 1h")
		}
	}

	// Wildcard CORS is not allowed in production
	if c.IsProduction() {
		for _, origin := range c.Security.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain '*' when ENVIRONMENT=production")
			}
		}
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
