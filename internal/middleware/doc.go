// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

/*
Package middleware provides HTTP middleware used by the API router.

  - RequestID: assigns or propagates X-Request-ID and attaches it to the
    request context so logging.Ctx includes it
  - PrometheusMetrics: request totals, latency histograms and in-flight
    gauge, labelled by chi route pattern

Both have the standard func(http.Handler) http.Handler shape and are mounted
with chi's Use.
*/
package middleware
