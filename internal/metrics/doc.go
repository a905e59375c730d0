// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

/*
Package metrics provides Prometheus metrics for GameRec.

All collectors are registered on the default registry through promauto and
exposed at /metrics by the API router:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status
  - api_request_duration_seconds: Request latency (histogram)
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Requests rejected by the inbound limiter

IGDB Metrics:
  - igdb_requests_total: Outbound IGDB calls (counter)
    Labels: endpoint, status ("error" when no response arrived)
  - igdb_request_duration_seconds: Outbound latency (histogram)
  - igdb_token_refreshes_total: Twitch token refreshes by result
  - igdb_rate_limit_waits_total: 429 backoffs
  - igdb_cache_hits_total / igdb_cache_misses_total: resolved-game cache

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Labels name, result
  - circuit_breaker_consecutive_failures
  - circuit_breaker_state_transitions_total

Recommendation Metrics:
  - recommend_duration_seconds
  - recommend_candidates, recommend_results (histograms)
  - recommend_degenerate_profiles_total

# Usage

	metrics.RecordAPIRequest("POST", "/api/v1/recommendations", "200", elapsed)
	metrics.RecordRecommendation(elapsed, len(candidates), len(results))
*/
package metrics
