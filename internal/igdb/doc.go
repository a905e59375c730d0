// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

/*
Package igdb is the game catalog client backed by the IGDB v4 API.

Client implements recommend.Catalog. Its read operations never return
errors: failures are logged and surface as empty results, so a recommendation
request degrades to "no recommendations" instead of failing.

# Authentication

IGDB uses Twitch app access tokens. TwitchTokenProvider performs the OAuth
client-credentials grant and caches the token until TokenRefreshMargin before
expiry. A 401 from IGDB forces one refresh and one retry.

# Resilience

Requests are paced by a token bucket (golang.org/x/time/rate) and guarded by
a circuit breaker (sony/gobreaker). HTTP 429 responses are retried with
exponential backoff, honoring Retry-After. Resolved games are kept in a TTL
LRU cache keyed by id.

# Queries

Request bodies use the apicalypse syntax. Query builds them; ResolveQuery,
CandidateQuery and SearchQuery produce the three queries the service needs.
*/
package igdb
