// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the inbound rate limiter",
		},
		[]string{"endpoint"},
	)

	// IGDB Metrics
	IGDBRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "igdb_requests_total",
			Help: "Total number of IGDB API requests",
		},
		[]string{"endpoint", "status"},
	)

	IGDBRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "igdb_request_duration_seconds",
			Help:    "Duration of IGDB API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	IGDBTokenRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "igdb_token_refreshes_total",
			Help: "Total number of Twitch OAuth token refreshes",
		},
		[]string{"result"}, // "success", "error"
	)

	IGDBRateLimitWaits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "igdb_rate_limit_waits_total",
			Help: "Total number of 429 responses from IGDB that triggered a backoff",
		},
	)

	IGDBCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "igdb_cache_hits_total",
			Help: "Total number of resolved games served from cache",
		},
	)

	IGDBCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "igdb_cache_misses_total",
			Help: "Total number of resolved games fetched from IGDB",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Recommendation Metrics
	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "End-to-end duration of a recommendation request, including catalog calls",
			Buckets: prometheus.DefBuckets,
		},
	)

	RecommendCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_candidates",
			Help:    "Number of candidate games scored per request",
			Buckets: []float64{0, 10, 50, 100, 250, 500},
		},
	)

	RecommendResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_results",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 10, 50, 100, 250, 500},
		},
	)

	RecommendDegenerateProfiles = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_degenerate_profiles_total",
			Help: "Total number of requests whose rating profile summed to zero",
		},
	)

	// Application Info
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the inbound limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordIGDBRequest records one IGDB API call. status is the HTTP status code,
// or 0 when no response was received.
func RecordIGDBRequest(endpoint string, status int, duration time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	IGDBRequestsTotal.WithLabelValues(endpoint, label).Inc()
	IGDBRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordTokenRefresh records the outcome of a Twitch token refresh.
func RecordTokenRefresh(err error) {
	if err != nil {
		IGDBTokenRefreshes.WithLabelValues("error").Inc()
		return
	}
	IGDBTokenRefreshes.WithLabelValues("success").Inc()
}

// RecordIGDBRateLimitWait records a 429 backoff.
func RecordIGDBRateLimitWait() {
	IGDBRateLimitWaits.Inc()
}

// RecordCacheLookup records cache hits and misses for one resolve call.
func RecordCacheLookup(hits, misses int) {
	IGDBCacheHits.Add(float64(hits))
	IGDBCacheMisses.Add(float64(misses))
}

// RecordRecommendation records one completed recommendation request.
func RecordRecommendation(duration time.Duration, candidates, results int) {
	RecommendDuration.Observe(duration.Seconds())
	RecommendCandidates.Observe(float64(candidates))
	RecommendResults.Observe(float64(results))
}

// RecordDegenerateProfile records a request whose profile normalized to zero.
func RecordDegenerateProfile() {
	RecommendDegenerateProfiles.Inc()
}

// SetAppInfo publishes the build version.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}
