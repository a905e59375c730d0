// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

// Package models defines the HTTP request and response shapes shared by the
// API handlers. Domain types (games, scores) live in the recommend package.
package models
