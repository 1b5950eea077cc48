// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

/*
Package config provides centralized configuration management for the station
discovery service.

# Configuration Sources

Configuration is layered with Koanf v2, later layers overriding earlier ones:
  - Built-in defaults (defaultConfig)
  - An optional YAML file (CONFIG_PATH, ./config.yaml, /etc/evbunk/config.yaml)
  - Environment variables with an explicit name mapping

# Environment Variables

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - ENVIRONMENT: development, staging or production

Document Store:
  - BADGER_PATH: BadgerDB directory (default: /data/evbunk)
  - BADGER_IN_MEMORY: Run the store in memory (default: false)
  - SEED_FILE: JSON fixture of documents keyed by path

Discovery:
  - DISCOVERY_PAGE_SIZE, DISCOVERY_SOURCE_TIMEOUT, DISCOVERY_MAX_CONCURRENCY
  - DISCOVERY_DEFAULT_RADIUS_KM, DISCOVERY_MAX_RADIUS_KM
  - DISCOVERY_DEFAULT_LIMIT, DISCOVERY_MAX_LIMIT, DISCOVERY_SUGGESTION_LIMIT
  - DISCOVERY_STRICT_AGGREGATION, DISCOVERY_PARENT_COLLECTION, GAZETTEER_PATH

Source descriptors are structured values and can only be set in the YAML file:

	discovery:
	  sources:
	    - name: stations
	      kind: flat
	      collection: stations
	    - name: owner-stations
	      kind: nested
	      collection: stations
	      parent: owners
	      filter_field: status
	      filter_value: active

Circuit Breaker:
  - BREAKER_MAX_REQUESTS, BREAKER_INTERVAL, BREAKER_TIMEOUT
  - BREAKER_MIN_REQUESTS, BREAKER_FAILURE_RATIO

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Thread Safety

Config values are immutable after Load and safe for concurrent reads.
*/
package config
