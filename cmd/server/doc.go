// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

/*
Package main is the entry point for the GameRec server.

GameRec recommends games from IGDB based on a handful of games a player has
rated. Each rated game is looked up in IGDB, its genres, themes, player
perspectives, game modes and age ratings are folded into a weighted taste
profile, and unrated games sharing those features are ranked by how well
they match.

# Process Layout

	RootSupervisor ("gamerec")
	├── CatalogSupervisor ("catalog-layer")
	│   └── IGDB token refresher
	└── APISupervisor ("api-layer")
	    └── HTTP server

# Configuration

Settings come from built-in defaults, then config.yaml, then .env, then the
environment. IGDB credentials are required:

	export TWITCH_CLIENT_ID=your-twitch-client-id
	export TWITCH_CLIENT_SECRET=your-twitch-client-secret
	./gamerec

# Endpoints

	POST /api/v1/recommendations   {"1942": 9, "1020": 7.5}
	GET  /api/v1/games/search?name=witcher
	GET  /api/v1/health
	GET  /metrics
	GET  /swagger/index.html

SIGINT and SIGTERM stop the server gracefully.

@title GameRec API
@version 1.0
@description Content-based game recommendations over the IGDB catalog.
@license.name AGPL-3.0-or-later
@license.url https://www.gnu.org/licenses/agpl-3.0.html
@BasePath /api/v1
*/
package main
