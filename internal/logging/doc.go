// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

// Package logging provides centralized zerolog-based logging for GameRec.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Version: version})
//
//	logging.Info().Str("addr", ":8080").Msg("Server starting")
//	logging.Error().Err(err).Msg("IGDB query failed")
//
//	// With request context
//	logging.Ctx(ctx).Info().Int("results", n).Msg("Recommendations served")
//
// # Configuration
//
// Environment variables (read by the config package):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false
//
// Every entry carries "service":"gamerec" and, once main has called Init,
// the build version.
//
// Always terminate event chains with .Msg() or .Send(); an unterminated
// event is never written.
//
// # slog Bridge
//
// SlogHandler adapts zerolog to log/slog for libraries that only accept a
// *slog.Logger. The supervisor tree uses it for sutureslog event hooks.
package logging
