// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ErrMissingCredentials is returned when the Twitch client id or secret is unset.
var ErrMissingCredentials = errors.New("TWITCH_CLIENT_ID and TWITCH_CLIENT_SECRET are required")

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateIGDB(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateIGDB() error {
	if err := c.validateCredentials(); err != nil {
		return err
	}
	if err := validateHTTPURL("IGDB_API_URL", c.IGDB.APIURL); err != nil {
		return err
	}
	if err := validateHTTPURL("IGDB_TOKEN_URL", c.IGDB.TokenURL); err != nil {
		return err
	}
	if err := c.validateIGDBLimits(); err != nil {
		return err
	}
	return c.validateBreaker()
}

func (c *Config) validateCredentials() error {
	if strings.TrimSpace(c.IGDB.ClientID) == "" || strings.TrimSpace(c.IGDB.ClientSecret) == "" {
		return ErrMissingCredentials
	}
	return nil
}

func validateHTTPURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", name, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must include a host", name)
	}
	return nil
}

// IGDB hard limits
const (
	maxQueryLimit         = 500
	maxRequestsPerSecond  = 4
	maxRetries            = 10
	maxTokenRefreshMargin = time.Hour
)

func (c *Config) validateIGDBLimits() error {
	if c.IGDB.RequestsPerSecond <= 0 || c.IGDB.RequestsPerSecond > maxRequestsPerSecond {
		return fmt.Errorf("IGDB_REQUESTS_PER_SECOND must be in (0, %d]", maxRequestsPerSecond)
	}
	if c.IGDB.Burst < 1 {
		return fmt.Errorf("IGDB_BURST must be at least 1")
	}
	if c.IGDB.RequestTimeout <= 0 {
		return fmt.Errorf("IGDB_REQUEST_TIMEOUT must be positive")
	}

	limits := []struct {
		name  string
		value int
	}{
		{"IGDB_CANDIDATE_LIMIT", c.IGDB.CandidateLimit},
		{"igdb.resolve_limit", c.IGDB.ResolveLimit},
		{"IGDB_SEARCH_LIMIT", c.IGDB.SearchLimit},
	}
	for _, l := range limits {
		if l.value < 1 || l.value > maxQueryLimit {
			return fmt.Errorf("%s must be between 1 and %d", l.name, maxQueryLimit)
		}
	}

	if c.IGDB.MaxRetries < 0 || c.IGDB.MaxRetries > maxRetries {
		return fmt.Errorf("IGDB_MAX_RETRIES must be between 0 and %d", maxRetries)
	}
	if c.IGDB.RetryBaseDelay < 0 {
		return fmt.Errorf("IGDB_RETRY_BASE_DELAY must not be negative")
	}
	if c.IGDB.TokenRefreshMargin < 0 || c.IGDB.TokenRefreshMargin > maxTokenRefreshMargin {
		return fmt.Errorf("IGDB_TOKEN_REFRESH_MARGIN must be between 0 and %s", maxTokenRefreshMargin)
	}
	if c.IGDB.CacheTTL < 0 {
		return fmt.Errorf("IGDB_CACHE_TTL must not be negative")
	}
	if c.IGDB.CacheSize < 0 {
		return fmt.Errorf("IGDB_CACHE_SIZE must not be negative")
	}
	return nil
}

func (c *Config) validateBreaker() error {
	b := c.IGDB.Breaker
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("igdb.breaker.failure_ratio must be in (0, 1]")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("IGDB_BREAKER_TIMEOUT must be positive")
	}
	if b.MinRequests == 0 {
		return fmt.Errorf("igdb.breaker.min_requests must be at least 1")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Recommendation request bounds
const (
	maxRatingsPerRequest = 500
)

func (c *Config) validateRecommend() error {
	if c.Recommend.MaxResults < 0 {
		return fmt.Errorf("RECOMMEND_MAX_RESULTS must not be negative")
	}
	if c.Recommend.MaxRatings < 1 || c.Recommend.MaxRatings > maxRatingsPerRequest {
		return fmt.Errorf("RECOMMEND_MAX_RATINGS must be between 1 and %d", maxRatingsPerRequest)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	return c.validateRateLimits()
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error; got %q", c.Logging.Level)
	}
	if !validLogFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("LOG_FORMAT must be json or console; got %q", c.Logging.Format)
	}
	return nil
}
