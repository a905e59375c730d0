// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package igdb

import (
	"context"
	"strings"

	"github.com/tomtom215/gamerec/internal/logging"
	"github.com/tomtom215/gamerec/internal/metrics"
	"github.com/tomtom215/gamerec/internal/recommend"
)

const gamesEndpoint = "games"

// gameDTO is a game as returned by the IGDB games endpoint.
type gameDTO struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Genres             []int  `json:"genres"`
	Themes             []int  `json:"themes"`
	PlayerPerspectives []int  `json:"player_perspectives"`
	GameModes          []int  `json:"game_modes"`
	AgeRatings         []int  `json:"age_ratings"`
	FirstReleaseDate   int64  `json:"first_release_date"`
}

// SearchResult is a game name match.
type SearchResult struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	FirstReleaseDate int64  `json:"first_release_date,omitempty"` // Unix seconds
}

func toGame(d *gameDTO) recommend.Game {
	return recommend.Game{
		ID:                 d.ID,
		Name:               d.Name,
		Genres:             convertCodes[recommend.Genre](d.Genres),
		Themes:             convertCodes[recommend.Theme](d.Themes),
		PlayerPerspectives: convertCodes[recommend.PlayerPerspective](d.PlayerPerspectives),
		GameModes:          convertCodes[recommend.GameMode](d.GameModes),
		AgeRatings:         convertCodes[recommend.AgeRating](d.AgeRatings),
	}
}

func convertCodes[T ~int](codes []int) []T {
	if len(codes) == 0 {
		return nil
	}
	out := make([]T, len(codes))
	for i, c := range codes {
		out[i] = T(c)
	}
	return out
}

// ResolveGames returns the games with the given ids, in first-seen id order.
// Duplicate ids are collapsed and ids IGDB does not know are omitted. Cached
// games are served without a request; misses are fetched in chunks of
// ResolveLimit. A chunk that fails contributes nothing.
func (c *Client) ResolveGames(ctx context.Context, ids []int64) []recommend.Game {
	unique := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	found := make(map[int64]recommend.Game, len(unique))
	var misses []int64
	for _, id := range unique {
		if g, ok := c.games.Get(id); ok {
			found[id] = g
			continue
		}
		misses = append(misses, id)
	}
	metrics.RecordCacheLookup(len(found), len(misses))

	chunk := max(c.cfg.ResolveLimit, 1)
	for start := 0; start < len(misses); start += chunk {
		end := min(start+chunk, len(misses))
		batch := misses[start:end]

		var dtos []gameDTO
		if err := c.query(ctx, gamesEndpoint, ResolveQuery(batch, len(batch)), &dtos); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Int("ids", len(batch)).Msg("Failed to resolve games")
			continue
		}
		for i := range dtos {
			g := toGame(&dtos[i])
			if _, wanted := seen[g.ID]; !wanted {
				continue
			}
			found[g.ID] = g
			c.games.Add(g.ID, g)
		}
	}

	games := make([]recommend.Game, 0, len(found))
	for _, id := range unique {
		if g, ok := found[id]; ok {
			games = append(games, g)
		}
	}
	return games
}

// FetchCandidates returns up to CandidateLimit main games matching the
// filter, in IGDB rating order. It returns an empty slice on failure or when
// the filter has no genre, theme, perspective or mode to match on.
func (c *Client) FetchCandidates(ctx context.Context, filter recommend.CandidateFilter) []recommend.Game {
	if !filter.HasCandidateFeatures() {
		logging.Ctx(ctx).Debug().Msg("No candidate features, skipping candidate fetch")
		return []recommend.Game{}
	}

	var dtos []gameDTO
	if err := c.query(ctx, gamesEndpoint, CandidateQuery(filter, c.cfg.CandidateLimit), &dtos); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("Failed to fetch candidates")
		return []recommend.Game{}
	}

	games := make([]recommend.Game, 0, len(dtos))
	for i := range dtos {
		g := toGame(&dtos[i])
		if filter.Excludes(g.ID) {
			continue
		}
		games = append(games, g)
		c.games.Add(g.ID, g)
	}
	return games
}

// SearchGames returns main games whose name starts with name. It returns an
// empty slice on failure or for a blank name.
func (c *Client) SearchGames(ctx context.Context, name string) []SearchResult {
	name = strings.TrimSpace(name)
	if name == "" {
		return []SearchResult{}
	}

	var results []SearchResult
	if err := c.query(ctx, gamesEndpoint, SearchQuery(name, c.cfg.SearchLimit), &results); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("name", name).Msg("Game search failed")
		return []SearchResult{}
	}
	if results == nil {
		results = []SearchResult{}
	}
	return results
}
