// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package services

import (
	"context"
	"time"

	"github.com/tomtom215/gamerec/internal/logging"
)

// TokenSource is the refreshable credential the refresher keeps warm.
// *igdb.TwitchTokenProvider satisfies it.
type TokenSource interface {
	Refresh(ctx context.Context) error
	ExpiresAt() time.Time
	RefreshMargin() time.Duration
}

const (
	defaultRetryMin = 5 * time.Second
	defaultRetryMax = 5 * time.Minute
)

// TokenRefresherService renews the IGDB app token shortly before it goes
// stale, so request paths rarely block on a refresh. Failed refreshes are
// retried with doubling delay between retryMin and retryMax.
type TokenRefresherService struct {
	tokens   TokenSource
	retryMin time.Duration
	retryMax time.Duration
	now      func() time.Time
}

// RefresherOption configures a TokenRefresherService.
type RefresherOption func(*TokenRefresherService)

// WithRetryDelays sets the bounds of the failure backoff.
func WithRetryDelays(minDelay, maxDelay time.Duration) RefresherOption {
	return func(s *TokenRefresherService) {
		if minDelay > 0 {
			s.retryMin = minDelay
		}
		if maxDelay >= s.retryMin {
			s.retryMax = maxDelay
		}
	}
}

// WithRefresherClock overrides time.Now.
func WithRefresherClock(now func() time.Time) RefresherOption {
	return func(s *TokenRefresherService) { s.now = now }
}

// NewTokenRefresherService creates a refresher for tokens.
func NewTokenRefresherService(tokens TokenSource, opts ...RefresherOption) *TokenRefresherService {
	s := &TokenRefresherService{
		tokens:   tokens,
		retryMin: defaultRetryMin,
		retryMax: defaultRetryMax,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Serve implements suture.Service.
func (s *TokenRefresherService) Serve(ctx context.Context) error {
	logger := logging.WithComponent("token-refresher")
	failures := 0
	refreshed := false

	for {
		var wait time.Duration
		switch {
		case failures > 0:
			wait = s.retryDelay(failures)
		case refreshed:
			wait = s.afterRefresh()
		default:
			wait = s.untilStale()
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		if err := s.tokens.Refresh(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failures++
			logger.Warn().Err(err).Int("failures", failures).
				Dur("retry_in", s.retryDelay(failures)).
				Msg("IGDB token refresh failed")
			continue
		}
		failures = 0
		refreshed = true
		if s.untilStale() == 0 {
			logger.Warn().Time("expires_at", s.tokens.ExpiresAt()).
				Dur("margin", s.tokens.RefreshMargin()).
				Msg("IGDB token lifetime is shorter than the refresh margin")
			continue
		}
		logger.Debug().Time("expires_at", s.tokens.ExpiresAt()).Msg("IGDB token renewed")
	}
}

// untilStale is the time left before the token enters its refresh margin.
// A missing or already stale token is refreshed immediately.
func (s *TokenRefresherService) untilStale() time.Duration {
	exp := s.tokens.ExpiresAt()
	if exp.IsZero() {
		return 0
	}
	d := exp.Add(-s.tokens.RefreshMargin()).Sub(s.now())
	if d < 0 {
		return 0
	}
	return d
}

// afterRefresh is the wait following a successful refresh. A token whose
// lifetime is shorter than the margin is stale the moment it arrives; it is
// renewed at half its remaining life, never sooner than retryMin.
func (s *TokenRefresherService) afterRefresh() time.Duration {
	if d := s.untilStale(); d > 0 {
		return d
	}
	d := s.tokens.ExpiresAt().Sub(s.now()) / 2
	if d < s.retryMin {
		return s.retryMin
	}
	return d
}

func (s *TokenRefresherService) retryDelay(failures int) time.Duration {
	d := s.retryMin
	for i := 1; i < failures; i++ {
		d *= 2
		if d >= s.retryMax {
			return s.retryMax
		}
	}
	return d
}

func (s *TokenRefresherService) String() string {
	return "igdb-token-refresher"
}
