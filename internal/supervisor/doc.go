// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

/*
Package supervisor runs the long-lived parts of the service under suture v4.

The tree has two layers so a misbehaving catalog task cannot take the API down:

	RootSupervisor ("gamerec")
	├── CatalogSupervisor ("catalog-layer")
	│   └── TokenRefresherService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog using the slog bridge from the logging package.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{})
	tree.AddCatalogService(services.NewTokenRefresherService(tokens))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	err = tree.Serve(ctx)
*/
package supervisor
