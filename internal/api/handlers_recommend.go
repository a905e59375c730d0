// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gamerec/internal/logging"
	"github.com/tomtom215/gamerec/internal/models"
	"github.com/tomtom215/gamerec/internal/recommend"
)

// maxRecommendBodyBytes bounds the request body.
const maxRecommendBodyBytes = 1 << 20

// Recommendations ranks similar games for a set of rated games.
//
// @Summary Get game recommendations
// @Description Builds a feature profile from the rated games and ranks IGDB games sharing their genres, themes, perspectives and modes. Rated games are never recommended.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param ratings body map[string]number true "IGDB game id to rating, e.g. {\"1942\": 5, \"1020\": 3}"
// @Success 200 {object} models.APIResponse{data=[]recommend.ScoredGame} "Ranked recommendations, best first"
// @Failure 400 {object} models.APIResponse "Malformed body, bad ids or ratings, or too many entries"
// @Failure 429 {object} models.APIResponse "Rate limit exceeded"
// @Router /recommendations [post]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ratings, ok := h.decodeRatings(w, r)
	if !ok {
		return
	}

	results, err := h.engine.Recommend(r.Context(), ratings)
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			respondError(w, r, http.StatusGatewayTimeout, "TIMEOUT", "Recommendation timed out", err)
		case errors.Is(err, context.Canceled):
			// Client went away; nobody is listening.
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Recommendation canceled")
		default:
			respondError(w, r, http.StatusInternalServerError, "RECOMMENDATION_FAILED", "Failed to compute recommendations", err)
		}
		return
	}

	logging.Ctx(r.Context()).Info().
		Int("rated", len(ratings)).
		Int("results", len(results)).
		Dur("duration", time.Since(start)).
		Msg("Recommendations computed")

	if results == nil {
		results = []recommend.ScoredGame{}
	}
	respondSuccess(w, r, results, len(results), start)
}

// decodeRatings parses and validates the {"<id>": rating} body, writing a
// 400 response and returning false when it is unusable.
func (h *Handler) decodeRatings(w http.ResponseWriter, r *http.Request) (map[int64]float64, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRecommendBodyBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, r, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "Request body too large", nil)
			return nil, false
		}
		badRequest(w, r, "failed to read request body")
		return nil, false
	}

	var raw map[string]float64
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		badRequest(w, r, "body must be a JSON object mapping game ids to numeric ratings")
		return nil, false
	}

	if limit := h.config.Recommend.MaxRatings; limit > 0 && len(raw) > limit {
		badRequest(w, r, "at most %d rated games are allowed, got %d", limit, len(raw))
		return nil, false
	}

	ratings := make(map[int64]float64, len(raw))
	for key, rating := range raw {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			badRequest(w, r, "game id %q is not an integer", key)
			return nil, false
		}
		if _, dup := ratings[id]; dup {
			badRequest(w, r, "game id %d appears more than once", id)
			return nil, false
		}
		ratings[id] = rating
	}

	if apiErr := validateRequest(&models.RecommendationRequest{Ratings: ratings}); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return nil, false
	}
	return ratings, true
}
