// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

// Custom rules:
//
//	finite   float is neither NaN nor ±Inf
//
// Map rules dive into keys and values, e.g. models.RecommendationRequest uses
// "min=1,dive,keys,gt=0,endkeys,finite": at least one entry, positive ids,
// finite ratings.

package validation
