// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package igdb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gamerec/internal/config"
	"github.com/tomtom215/gamerec/internal/logging"
	"github.com/tomtom215/gamerec/internal/metrics"
)

// TokenProvider supplies bearer tokens for IGDB requests.
type TokenProvider interface {
	// Token returns a valid token, fetching a new one if needed.
	Token(ctx context.Context) (string, error)

	// IsValid reports whether a cached token is usable without a refresh.
	IsValid() bool

	// Refresh fetches a new token unconditionally.
	Refresh(ctx context.Context) error
}

// tokenResponse is the Twitch client-credentials grant response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// TwitchTokenProvider obtains app access tokens through the Twitch OAuth
// client-credentials flow and caches them until shortly before expiry.
type TwitchTokenProvider struct {
	clientID     string
	clientSecret string
	tokenURL     string
	margin       time.Duration
	httpClient   *http.Client
	now          func() time.Time

	// refreshMu serializes refreshes; mu guards token and expiresAt.
	refreshMu sync.Mutex
	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

// TokenOption configures a TwitchTokenProvider.
type TokenOption func(*TwitchTokenProvider)

// WithTokenHTTPClient sets the HTTP client used for token requests.
func WithTokenHTTPClient(c *http.Client) TokenOption {
	return func(p *TwitchTokenProvider) {
		p.httpClient = c
	}
}

// WithTokenClock overrides the time source.
func WithTokenClock(now func() time.Time) TokenOption {
	return func(p *TwitchTokenProvider) {
		p.now = now
	}
}

// NewTwitchTokenProvider creates a token provider from IGDB configuration.
func NewTwitchTokenProvider(cfg *config.IGDBConfig, opts ...TokenOption) *TwitchTokenProvider {
	p := &TwitchTokenProvider{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		tokenURL:     cfg.TokenURL,
		margin:       cfg.TokenRefreshMargin,
		httpClient:   &http.Client{Timeout: cfg.RequestTimeout},
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Token returns the cached token or refreshes it.
func (p *TwitchTokenProvider) Token(ctx context.Context) (string, error) {
	if tok, ok := p.cached(); ok {
		return tok, nil
	}

	p.refreshMu.Lock()
	defer p.refreshMu.Unlock()

	// Another caller may have refreshed while we waited.
	if tok, ok := p.cached(); ok {
		return tok, nil
	}
	if err := p.refreshLocked(ctx); err != nil {
		return "", err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.token, nil
}

// IsValid reports whether the cached token outlives the refresh margin.
func (p *TwitchTokenProvider) IsValid() bool {
	_, ok := p.cached()
	return ok
}

// ExpiresAt returns when the cached token expires, or the zero time.
func (p *TwitchTokenProvider) ExpiresAt() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.expiresAt
}

// RefreshMargin returns how long before expiry a token is considered stale.
func (p *TwitchTokenProvider) RefreshMargin() time.Duration {
	return p.margin
}

// Invalidate drops the cached token so the next Token call refreshes.
func (p *TwitchTokenProvider) Invalidate() {
	p.mu.Lock()
	p.token = ""
	p.expiresAt = time.Time{}
	p.mu.Unlock()
}

// Refresh requests a new token from Twitch.
func (p *TwitchTokenProvider) Refresh(ctx context.Context) error {
	p.refreshMu.Lock()
	defer p.refreshMu.Unlock()
	return p.refreshLocked(ctx)
}

func (p *TwitchTokenProvider) cached() (string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.token == "" {
		return "", false
	}
	return p.token, p.now().Before(p.expiresAt.Add(-p.margin))
}

func (p *TwitchTokenProvider) refreshLocked(ctx context.Context) error {
	resp, err := p.requestToken(ctx)
	metrics.RecordTokenRefresh(err)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Msg("IGDB token refresh failed")
		return err
	}

	expiresAt := p.now().Add(time.Duration(resp.ExpiresIn) * time.Second)

	p.mu.Lock()
	p.token = resp.AccessToken
	p.expiresAt = expiresAt
	p.mu.Unlock()

	logging.Ctx(ctx).Debug().Time("expires_at", expiresAt).Msg("IGDB token refreshed")
	return nil
}

func (p *TwitchTokenProvider) requestToken(ctx context.Context) (*tokenResponse, error) {
	params := url.Values{}
	params.Set("client_id", p.clientID)
	params.Set("client_secret", p.clientSecret)
	params.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: readBodyForError(resp.Body)}
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return nil, errors.New("token response has no access_token")
	}
	return &tr, nil
}

// StaticTokenProvider always returns the same token.
type StaticTokenProvider string

func (s StaticTokenProvider) Token(context.Context) (string, error) {
	if s == "" {
		return "", errors.New("static token is empty")
	}
	return string(s), nil
}

func (s StaticTokenProvider) IsValid() bool { return s != "" }

func (s StaticTokenProvider) Refresh(context.Context) error { return nil }
