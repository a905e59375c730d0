// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

// Package cache provides a generic TTL-bounded LRU cache.
//
// The IGDB client uses it to keep resolved games between requests, since the
// same handful of popular titles is rated over and over:
//
//	games := cache.New[int64, recommend.Game](4096, time.Hour)
//	games.Add(g.ID, g)
//	if g, ok := games.Get(id); ok { ... }
package cache
