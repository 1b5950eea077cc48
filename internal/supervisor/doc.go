// EV Recharge Bunk - Charging Station Discovery
// Copyright 2026 The EV Recharge Bunk Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thecode94/Electric-Vehicle-Recharge-Bunk

/*
Package supervisor runs the server's long-lived services under a
thejerf/suture v4 tree.

	evbunk (root)
	├── data-layer
	│   └── StoreMaintenanceService (store ping + value log GC)
	└── api-layer
	    └── HTTPServerService

Supervisor events are logged through sutureslog into the zerolog bridge from
internal/logging. A failed service is restarted with suture's backoff; when
failures exceed FailureThreshold within the decay window the layer backs off
for FailureBackoff before trying again.

Usage:

	tree, _ := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(services.NewStoreMaintenanceService(store, services.StoreMaintenanceConfig{}))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	err := tree.Serve(ctx)
*/
package supervisor
