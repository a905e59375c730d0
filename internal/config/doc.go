// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

/*
Package config loads and validates GameRec configuration.

# Configuration Sources

Values are layered with koanf, later sources overriding earlier ones:
  - Built-in defaults (defaultConfig)
  - An optional YAML file: CONFIG_PATH, ./config.yaml or /etc/gamerec/config.yaml
  - A .env file (DOTENV_PATH, default ./.env); it never overrides variables
    that are already set
  - Environment variables

Only mapped environment variables are read (see envMappings). Comma-separated
values such as CORS_ORIGINS are split into slices.

# Required Settings

TWITCH_CLIENT_ID and TWITCH_CLIENT_SECRET must be set. IGDB uses Twitch
client-credentials OAuth; without them no catalog request can succeed, so
Load fails with ErrMissingCredentials.

# Example

	TWITCH_CLIENT_ID=abc123
	TWITCH_CLIENT_SECRET=shh
	HTTP_PORT=8080
	RECOMMEND_MAX_RESULTS=50
	CORS_ORIGINS=https://games.example.com
*/
package config
