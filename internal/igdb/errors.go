// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package igdb

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrCircuitOpen is returned when the breaker rejects a request.
	ErrCircuitOpen = errors.New("igdb: circuit breaker open")

	// ErrUnauthorized matches APIErrors with status 401.
	ErrUnauthorized = errors.New("igdb: unauthorized")

	// ErrRateLimited matches APIErrors with status 429.
	ErrRateLimited = errors.New("igdb: rate limited")
)

// maxErrorBodySize caps how much of an error response is kept (64KB).
const maxErrorBodySize = 64 * 1024

// APIError is a non-2xx response from IGDB or the Twitch token endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("igdb: HTTP %d: %s", e.StatusCode, e.Body)
}

// Unwrap lets errors.Is match ErrUnauthorized and ErrRateLimited.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return nil
	}
}

// clientError reports whether the request itself was at fault. These do not
// count against the breaker.
func (e *APIError) clientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500 &&
		e.StatusCode != http.StatusTooManyRequests
}

// readBodyForError reads at most maxErrorBodySize bytes for error messages.
func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return "(failed to read response body)"
	}
	if len(body) == maxErrorBodySize {
		return string(body) + "\n... (truncated)"
	}
	return string(body)
}
