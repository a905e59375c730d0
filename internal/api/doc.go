// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

/*
Package api exposes the recommendation engine over HTTP using the Chi router.

# Endpoints

	POST /api/v1/recommendations   rate a few games, get ranked similar games
	GET  /api/v1/games/search      find game ids by name prefix (?name=)
	GET  /api/v1/health            service and IGDB connectivity status
	GET  /metrics                  Prometheus metrics
	GET  /swagger/*                Swagger UI

# Recommendation Request

The body is a JSON object mapping IGDB game ids to ratings:

	{"1942": 5, "1020": 3.5, "11156": 1}

Keys must be positive integers and ratings finite numbers. Higher ratings
weigh a game's features more; zero and negative ratings are accepted and
pull scores down.

# Response Format

All endpoints except /metrics and /swagger respond with models.APIResponse:

	{
	  "status": "success",
	  "data": [{"id": 1877, "name": "Cyberpunk 2077", "genres": [5, 12], "score": 0.41}],
	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "query_time_ms": 287, "count": 1}
	}

# Middleware

Global: request id, real IP, panic recovery, Prometheus instrumentation,
access logging and CORS (go-chi/cors). The /api/v1 group adds per-IP rate
limiting (go-chi/httprate), security headers and gzip compression.
*/
package api
