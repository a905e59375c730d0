// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package recommend

import "sort"

// FeatureSet is the per-category union of feature codes seen across a set of
// games.
type FeatureSet struct {
	genres       map[Genre]struct{}
	themes       map[Theme]struct{}
	perspectives map[PlayerPerspective]struct{}
	modes        map[GameMode]struct{}
	ageRatings   map[AgeRating]struct{}
}

// CandidateFilter describes which catalog games count as candidates: games
// sharing the observed feature values, minus the input games themselves.
type CandidateFilter struct {
	FeatureSet
	exclude map[int64]struct{}
}

// DeriveFilter builds the candidate filter for games. The result does not
// depend on input order and duplicates collapse.
func DeriveFilter(games []Game) CandidateFilter {
	f := CandidateFilter{
		FeatureSet: FeatureSet{
			genres:       make(map[Genre]struct{}),
			themes:       make(map[Theme]struct{}),
			perspectives: make(map[PlayerPerspective]struct{}),
			modes:        make(map[GameMode]struct{}),
			ageRatings:   make(map[AgeRating]struct{}),
		},
		exclude: make(map[int64]struct{}, len(games)),
	}

	for i := range games {
		g := &games[i]
		f.exclude[g.ID] = struct{}{}
		addAll(f.genres, g.Genres)
		addAll(f.themes, g.Themes)
		addAll(f.perspectives, g.PlayerPerspectives)
		addAll(f.modes, g.GameModes)
		addAll(f.ageRatings, g.AgeRatings)
	}

	return f
}

func addAll[T comparable](set map[T]struct{}, values []T) {
	for _, v := range values {
		set[v] = struct{}{}
	}
}

func sortedKeys[T ~int | ~int64](set map[T]struct{}) []T {
	out := make([]T, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Genres returns the genre codes in ascending order.
func (s FeatureSet) Genres() []Genre { return sortedKeys(s.genres) }

// Themes returns the theme codes in ascending order.
func (s FeatureSet) Themes() []Theme { return sortedKeys(s.themes) }

// PlayerPerspectives returns the perspective codes in ascending order.
func (s FeatureSet) PlayerPerspectives() []PlayerPerspective { return sortedKeys(s.perspectives) }

// GameModes returns the game mode codes in ascending order.
func (s FeatureSet) GameModes() []GameMode { return sortedKeys(s.modes) }

// AgeRatings returns the age rating codes in ascending order.
func (s FeatureSet) AgeRatings() []AgeRating { return sortedKeys(s.ageRatings) }

// IsEmpty reports whether no feature codes were observed.
func (s FeatureSet) IsEmpty() bool {
	return len(s.genres) == 0 && len(s.themes) == 0 && len(s.perspectives) == 0 &&
		len(s.modes) == 0 && len(s.ageRatings) == 0
}

// HasCandidateFeatures reports whether any genre, theme, perspective or game
// mode was observed. Age ratings score candidates but never select them.
func (s FeatureSet) HasCandidateFeatures() bool {
	return len(s.genres) > 0 || len(s.themes) > 0 || len(s.perspectives) > 0 || len(s.modes) > 0
}

// ExcludeIDs returns the ids of the input games in ascending order.
func (f CandidateFilter) ExcludeIDs() []int64 { return sortedKeys(f.exclude) }

// Excludes reports whether id belongs to the input games.
func (f CandidateFilter) Excludes(id int64) bool {
	_, ok := f.exclude[id]
	return ok
}
