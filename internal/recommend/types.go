// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package recommend

// Game is a catalog item with its categorical features.
// Feature slices may contain duplicates or codes outside the vocabulary;
// both are tolerated by the matrix builder.
type Game struct {
	ID                 int64               `json:"id,omitempty"`
	Name               string              `json:"name,omitempty"`
	Genres             []Genre             `json:"genres,omitempty"`
	Themes             []Theme             `json:"themes,omitempty"`
	PlayerPerspectives []PlayerPerspective `json:"player_perspectives,omitempty"`
	GameModes          []GameMode          `json:"game_modes,omitempty"`
	AgeRatings         []AgeRating         `json:"age_ratings,omitempty"`
}

// codes returns the wire codes of g for category c.
func (g *Game) codes(c Category) []int {
	switch c {
	case CategoryGenre:
		return codesOf(g.Genres)
	case CategoryTheme:
		return codesOf(g.Themes)
	case CategoryPlayerPerspective:
		return codesOf(g.PlayerPerspectives)
	case CategoryGameMode:
		return codesOf(g.GameModes)
	case CategoryAgeRating:
		return codesOf(g.AgeRatings)
	default:
		return nil
	}
}

// RatedGame pairs a game with the caller's rating for it. The rating is a
// relative preference weight and may be negative or zero.
type RatedGame struct {
	Game
	Rating float64 `json:"rating"`
}

// ScoredGame is a recommendation: a candidate game and its score against the
// caller's profile.
type ScoredGame struct {
	Game
	Score float64 `json:"score,omitempty"`
}
