// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

// Package recommend implements content-based game recommendation.
//
// # Model
//
// Every game is a binary row over a fixed feature vocabulary made of five
// IGDB categories (genres, themes, player perspectives, game modes and age
// ratings), 96 columns in total. A caller rates a handful of games. The
// engine combines those ratings into a profile vector:
//
//	weighted = transpose(M_rated) · ratings
//	profile  = weighted / sum(weighted)
//
// Candidates are then scored with a single matrix-vector product:
//
//	scores = M_candidates · profile
//
// and sorted highest first. Ties keep the catalog's order.
//
// # Degenerate Profiles
//
// When the weighted vector sums to zero the profile is the zero vector and
// every candidate scores zero. No NaN or Inf value ever leaves the package.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), catalog, logger)
//	if err != nil {
//	    return err
//	}
//	recs, err := engine.Recommend(ctx, map[int64]float64{1942: 5, 1020: 3.5})
//
// # Thread Safety
//
// The package has no shared mutable state. Matrices and profiles are built
// per call and never mutated afterwards, and Engine is safe for concurrent
// use as long as its Catalog is.
package recommend
