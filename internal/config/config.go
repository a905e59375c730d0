// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Loading order (lowest to highest precedence):
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml)
//  3. .env file, copied into the process environment for unset variables
//  4. Environment variables
//
// Config is immutable after Load() and safe for concurrent reads.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	IGDB      IGDBConfig      `koanf:"igdb"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_HOST, HTTP_PORT
//   - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
//   - HTTP_SHUTDOWN_TIMEOUT
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IGDBConfig holds the catalog client settings. Credentials are the Twitch
// application's client id and secret; IGDB authenticates through Twitch.
//
// Environment Variables:
//   - TWITCH_CLIENT_ID, TWITCH_CLIENT_SECRET (required)
//   - IGDB_API_URL, IGDB_TOKEN_URL
//   - IGDB_REQUEST_TIMEOUT
//   - IGDB_REQUESTS_PER_SECOND, IGDB_BURST
//   - IGDB_CANDIDATE_LIMIT, IGDB_SEARCH_LIMIT
//   - IGDB_MAX_RETRIES, IGDB_RETRY_BASE_DELAY
//   - IGDB_TOKEN_REFRESH_MARGIN
//   - IGDB_CACHE_TTL, IGDB_CACHE_SIZE
type IGDBConfig struct {
	ClientID     string `koanf:"client_id"`
	ClientSecret string `koanf:"client_secret"`

	APIURL   string `koanf:"api_url"`
	TokenURL string `koanf:"token_url"`

	RequestTimeout time.Duration `koanf:"request_timeout"`

	// IGDB allows 4 requests per second per client.
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`

	CandidateLimit int `koanf:"candidate_limit"`
	ResolveLimit   int `koanf:"resolve_limit"`
	SearchLimit    int `koanf:"search_limit"`

	MaxRetries     int           `koanf:"max_retries"`
	RetryBaseDelay time.Duration `koanf:"retry_base_delay"`

	// TokenRefreshMargin renews the token this long before it expires.
	TokenRefreshMargin time.Duration `koanf:"token_refresh_margin"`

	CacheTTL  time.Duration `koanf:"cache_ttl"`
	CacheSize int           `koanf:"cache_size"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig tunes the IGDB circuit breaker.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// RecommendConfig holds recommendation engine settings.
//
// Environment Variables:
//   - RECOMMEND_MAX_RESULTS: truncate ranked lists (0 = unlimited)
//   - RECOMMEND_MAX_RATINGS: maximum rated games per request
type RecommendConfig struct {
	MaxResults int `koanf:"max_results"`
	MaxRatings int `koanf:"max_ratings"`
}

// SecurityConfig holds CORS and inbound rate limiting settings.
//
// Environment Variables:
//   - CORS_ORIGINS: comma-separated allowed origins
//   - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, RATE_LIMIT_DISABLED
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional config file, a .env
// file and the environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
