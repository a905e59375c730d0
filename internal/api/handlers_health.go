// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/gamerec/internal/models"
)

// Health handles health check requests
//
// @Summary Get service health
// @Description Reports uptime, whether an IGDB token is cached and the IGDB circuit breaker state. Status is "degraded" while the breaker is open.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	health := models.HealthStatus{
		Status:  "healthy",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}

	// A token that has not been fetched yet is not a failure; the first
	// catalog call fetches it.
	if h.status != nil {
		health.IGDBTokenValid = h.status.TokenValid()
		health.CircuitBreaker = h.status.BreakerState()
		if health.CircuitBreaker == "open" {
			health.Status = "degraded"
		}
	}

	respondSuccess(w, r, health, -1, start)
}
