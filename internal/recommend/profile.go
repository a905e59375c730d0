// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package recommend

import "math"

// Profile is a per-feature preference weighting with one entry per
// vocabulary column.
type Profile []float64

// BuildProfile combines rated games into a normalized profile. Each game's
// rating is added to every feature it has, and the result is divided by its
// own sum so that the components sum to 1.
//
// When the un-normalized sum is zero (no games, all ratings zero, or ratings
// that cancel exactly) BuildProfile returns the zero profile. A non-finite sum
// is treated the same way.
func BuildProfile(rated []RatedGame) Profile {
	games := make([]Game, len(rated))
	ratings := make([]float64, len(rated))
	for i := range rated {
		games[i] = rated[i].Game
		ratings[i] = rated[i].Rating
	}

	weighted := BuildMatrix(games).TransposeMulVec(ratings)

	var sum float64
	for _, w := range weighted {
		sum += w
	}
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return make(Profile, FeatureCount())
	}

	for i := range weighted {
		weighted[i] /= sum
	}
	return weighted
}

// IsZero reports whether every component is zero.
func (p Profile) IsZero() bool {
	for _, w := range p {
		if w != 0 {
			return false
		}
	}
	return true
}

// Scale returns k·p.
func (p Profile) Scale(k float64) Profile {
	out := make(Profile, len(p))
	for i, w := range p {
		out[i] = w * k
	}
	return out
}

// Weight returns the weight of a code within a category, or 0 when the code
// is outside the vocabulary.
func (p Profile) Weight(c Category, code int) float64 {
	col, ok := ColumnOf(c, code)
	if !ok || col >= len(p) {
		return 0
	}
	return p[col]
}
