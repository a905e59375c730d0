// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package igdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/gamerec/internal/cache"
	"github.com/tomtom215/gamerec/internal/config"
	"github.com/tomtom215/gamerec/internal/logging"
	"github.com/tomtom215/gamerec/internal/metrics"
	"github.com/tomtom215/gamerec/internal/recommend"
)

// Client talks to the IGDB v4 API. It is safe for concurrent use.
//
// Every request passes through a token bucket limiter (IGDB allows 4 req/s)
// and a circuit breaker. Resolved games are cached by id.
type Client struct {
	cfg        config.IGDBConfig
	httpClient *http.Client
	tokens     TokenProvider
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[[]byte]
	games      *cache.LRU[int64, recommend.Game]
	logger     zerolog.Logger
	now        func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTokenProvider replaces the default Twitch token provider.
func WithTokenProvider(tp TokenProvider) Option {
	return func(c *Client) {
		c.tokens = tp
	}
}

// WithClock overrides the time source used for the cache.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// WithLogger sets the client logger.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates an IGDB client.
func NewClient(cfg *config.IGDBConfig, opts ...Option) *Client {
	c := &Client{
		cfg:        *cfg,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		logger:     logging.WithComponent("igdb"),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tokens == nil {
		c.tokens = NewTwitchTokenProvider(cfg, WithTokenHTTPClient(c.httpClient), WithTokenClock(c.now))
	}

	c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), max(cfg.Burst, 1))
	c.breaker = newBreaker(cfg.Breaker)
	c.games = cache.New[int64, recommend.Game](cfg.CacheSize, cfg.CacheTTL, cache.WithClock(c.now))
	return c
}

// Tokens returns the client's token provider.
func (c *Client) Tokens() TokenProvider {
	return c.tokens
}

// TokenValid reports whether a usable token is cached.
func (c *Client) TokenValid() bool {
	return c.tokens.IsValid()
}

// BreakerState returns the circuit breaker state: closed, half-open or open.
func (c *Client) BreakerState() string {
	return stateToString(c.breaker.State())
}

// query POSTs an apicalypse body to endpoint and decodes the JSON response
// into out.
func (c *Client) query(ctx context.Context, endpoint, body string, out any) error {
	data, err := c.execute(func() ([]byte, error) {
		return c.doRequest(ctx, endpoint, body)
	})
	if err != nil {
		return fmt.Errorf("igdb %s: %w", endpoint, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("igdb %s: failed to decode response: %w", endpoint, err)
	}
	return nil
}

// doRequest performs the request with rate limiting, a single token refresh
// on 401, and exponential backoff on 429.
func (c *Client) doRequest(ctx context.Context, endpoint, body string) ([]byte, error) {
	reqURL := strings.TrimRight(c.cfg.APIURL, "/") + "/" + endpoint
	reauthed := false

	for attempt := 0; ; {
		if err := c.wait(ctx); err != nil {
			return nil, err
		}

		resp, err := c.send(ctx, endpoint, reqURL, body)
		if err != nil {
			return nil, err
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			defer func() { _ = resp.Body.Close() }()
			data, err := io.ReadAll(resp.Body)
			if err != nil {
				return nil, fmt.Errorf("failed to read response: %w", err)
			}
			return data, nil

		case resp.StatusCode == http.StatusUnauthorized && !reauthed:
			_ = resp.Body.Close()
			reauthed = true
			c.logger.Info().Str("endpoint", endpoint).Msg("IGDB rejected token, refreshing")
			if err := c.tokens.Refresh(ctx); err != nil {
				return nil, fmt.Errorf("token refresh after 401: %w", err)
			}
			continue

		case resp.StatusCode == http.StatusTooManyRequests && attempt < c.cfg.MaxRetries:
			_ = resp.Body.Close()
			delay := c.backoff(attempt, resp.Header.Get("Retry-After"))
			attempt++
			c.logger.Debug().Dur("delay", delay).Int("attempt", attempt).Msg("IGDB rate limited, backing off")
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			continue

		default:
			apiErr := &APIError{StatusCode: resp.StatusCode, Body: readBodyForError(resp.Body)}
			_ = resp.Body.Close()
			return nil, apiErr
		}
	}
}

// wait blocks on the rate limiter, recording a metric when it has to wait.
func (c *Client) wait(ctx context.Context) error {
	if c.limiter.Allow() {
		return nil
	}
	metrics.RecordIGDBRateLimitWait()
	return c.limiter.Wait(ctx)
}

func (c *Client) send(ctx context.Context, endpoint, reqURL, body string) (*http.Response, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Client-ID", c.cfg.ClientID)
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordIGDBRequest(endpoint, 0, time.Since(start))
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	metrics.RecordIGDBRequest(endpoint, resp.StatusCode, time.Since(start))
	return resp, nil
}

// backoff returns base*2^attempt, or the Retry-After seconds when present.
func (c *Client) backoff(attempt int, retryAfter string) time.Duration {
	delay := c.cfg.RetryBaseDelay * time.Duration(1<<uint(attempt))
	if retryAfter != "" {
		if secs, err := strconv.Atoi(strings.TrimSpace(retryAfter)); err == nil && secs >= 0 {
			delay = time.Duration(secs) * time.Second
		}
	}
	return delay
}
