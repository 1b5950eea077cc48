// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

/*
Package main is the entry point for the EV Recharge Bunk discovery server.

The server answers "where can I charge near X" queries over a BadgerDB
document store holding top-level and per-owner station collections.

Component initialization order:

 1. Configuration: koanf v2 with defaults, optional config.yaml, then
    environment variables
 2. Logging: zerolog, JSON by default
 3. Document store: BadgerDB, optionally seeded from a JSON fixture
 4. Gazetteer: built-in places plus an optional YAML overlay
 5. Aggregator and discovery engine
 6. HTTP router (chi) and the suture supervisor tree

# Configuration

Commonly used environment variables:

	HTTP_PORT=8080
	BADGER_PATH=/data/evbunk
	BADGER_IN_MEMORY=true
	SEED_FILE=/seed/stations.json
	GAZETTEER_PATH=/etc/evbunk/places.yaml
	DISCOVERY_STRICT_AGGREGATION=false
	LOG_LEVEL=info

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server stops
accepting connections and drains in-flight requests within the shutdown
timeout; the document store is closed last.
*/
package main
