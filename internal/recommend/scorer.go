// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package recommend

import "sort"

// Score ranks candidates against profile. A candidate's score is the sum of
// the profile weights of the features it has. Results are sorted by score,
// highest first; tied candidates keep their input order, which is the
// catalog's popularity order.
func Score(candidates []Game, profile Profile) []ScoredGame {
	out := make([]ScoredGame, len(candidates))
	if len(candidates) == 0 {
		return out
	}

	weights := profile
	if len(weights) != FeatureCount() {
		// Tolerate short or long profiles by treating missing weights as zero.
		weights = make(Profile, FeatureCount())
		copy(weights, profile)
	}

	scores := BuildMatrix(candidates).MulVec(weights)
	for i := range candidates {
		out[i] = ScoredGame{Game: candidates[i], Score: scores[i]}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}
