// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/gamerec/internal/metrics"
)

// Catalog is the game catalog the engine reads from. Implementations return
// an empty slice on failure rather than partial data.
type Catalog interface {
	// ResolveGames returns at most one game per id. Unknown ids are omitted.
	ResolveGames(ctx context.Context, ids []int64) []Game

	// FetchCandidates returns games sharing the filter's features, excluding
	// the filter's input ids, in popularity order.
	FetchCandidates(ctx context.Context, filter CandidateFilter) []Game
}

// Engine produces content-based recommendations from a set of rated games.
// It holds no per-request state and is safe for concurrent use.
type Engine struct {
	config  *Config
	catalog Catalog
	logger  zerolog.Logger
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, catalog Catalog, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	return &Engine{
		config:  cfg,
		catalog: catalog,
		logger:  logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return *e.config
}

// Recommend ranks catalog games against the profile built from ratings,
// keyed by game id. An empty map, or ids that all fail to resolve, produce an
// empty result. The only error returned is context cancellation.
func (e *Engine) Recommend(ctx context.Context, ratings map[int64]float64) ([]ScoredGame, error) {
	start := time.Now()
	results := []ScoredGame{}

	if len(ratings) == 0 {
		e.logger.Debug().Msg("no ratings supplied")
		metrics.RecordRecommendation(time.Since(start), 0, 0)
		return results, nil
	}

	ids := make([]int64, 0, len(ratings))
	for id := range ratings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	resolved := e.catalog.ResolveGames(ctx, ids)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("resolve games: %w", err)
	}

	rated := make([]RatedGame, 0, len(resolved))
	joined := make(map[int64]struct{}, len(resolved))
	for i := range resolved {
		id := resolved[i].ID
		rating, ok := ratings[id]
		if !ok {
			continue
		}
		if _, dup := joined[id]; dup {
			continue
		}
		joined[id] = struct{}{}
		rated = append(rated, RatedGame{Game: resolved[i], Rating: rating})
	}

	e.logger.Debug().
		Int("requested", len(ids)).
		Int("resolved", len(rated)).
		Msg("resolved rated games")

	if len(rated) == 0 {
		metrics.RecordRecommendation(time.Since(start), 0, 0)
		return results, nil
	}

	games := make([]Game, len(rated))
	for i := range rated {
		games[i] = rated[i].Game
	}
	filter := DeriveFilter(games)

	candidates := e.catalog.FetchCandidates(ctx, filter)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	profile := BuildProfile(rated)
	if profile.IsZero() {
		metrics.RecordDegenerateProfile()
		e.logger.Debug().Msg("degenerate profile, all candidates score zero")
	}

	results = Score(candidates, profile)
	if e.config.MaxResults > 0 && len(results) > e.config.MaxResults {
		results = results[:e.config.MaxResults]
	}

	elapsed := time.Since(start)
	metrics.RecordRecommendation(elapsed, len(candidates), len(results))
	e.logger.Debug().
		Int("candidates", len(candidates)).
		Int("results", len(results)).
		Dur("duration", elapsed).
		Msg("recommendation complete")

	return results, nil
}
