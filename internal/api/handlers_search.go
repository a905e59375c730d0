// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/gamerec/internal/models"
)

// SearchGames finds games whose name starts with the query.
//
// @Summary Search games by name
// @Description Case-insensitive name prefix search over main games, most highly rated first. Returns an empty list when IGDB is unavailable.
// @Tags Games
// @Produce json
// @Param name query string true "Name prefix" maxlength(100)
// @Success 200 {object} models.APIResponse{data=[]igdb.SearchResult} "Matching games"
// @Failure 400 {object} models.APIResponse "Missing or overlong name"
// @Router /games/search [get]
func (h *Handler) SearchGames(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := models.SearchRequest{Name: strings.TrimSpace(r.URL.Query().Get("name"))}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	results := h.searcher.SearchGames(r.Context(), req.Name)
	respondSuccess(w, r, results, len(results), start)
}
