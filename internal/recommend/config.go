// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package recommend

import "fmt"

// Config contains configuration for the recommendation engine.
type Config struct {
	// MaxResults truncates the ranked list. Zero returns every candidate.
	MaxResults int `json:"max_results"`

	// MaxRatings bounds how many rated games one request may submit.
	MaxRatings int `json:"max_ratings"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		MaxResults: 0,
		MaxRatings: 100,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.MaxResults < 0 {
		return fmt.Errorf("max_results must be non-negative, got %d", c.MaxResults)
	}
	if c.MaxRatings <= 0 {
		return fmt.Errorf("max_ratings must be positive, got %d", c.MaxRatings)
	}
	// Resolve queries are capped at 500 ids by the catalog.
	if c.MaxRatings > 500 {
		return fmt.Errorf("max_ratings must be at most 500, got %d", c.MaxRatings)
	}
	return nil
}
