// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package api

import (
	"context"
	"time"

	"github.com/tomtom215/gamerec/internal/config"
	"github.com/tomtom215/gamerec/internal/igdb"
	"github.com/tomtom215/gamerec/internal/recommend"
)

// Recommender ranks catalog games against a set of ratings.
type Recommender interface {
	Recommend(ctx context.Context, ratings map[int64]float64) ([]recommend.ScoredGame, error)
}

// GameSearcher looks up games by name.
type GameSearcher interface {
	SearchGames(ctx context.Context, name string) []igdb.SearchResult
}

// CatalogStatus reports catalog connectivity for the health endpoint.
type CatalogStatus interface {
	TokenValid() bool
	BreakerState() string
}

// Handler serves the API endpoints.
type Handler struct {
	engine    Recommender
	searcher  GameSearcher
	status    CatalogStatus
	config    *config.Config
	version   string
	startTime time.Time
}

// NewHandler creates the API handler. *igdb.Client satisfies both searcher
// and status.
func NewHandler(engine Recommender, searcher GameSearcher, status CatalogStatus, cfg *config.Config, version string) *Handler {
	return &Handler{
		engine:    engine,
		searcher:  searcher,
		status:    status,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
}
