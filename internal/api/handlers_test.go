// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gamerec/internal/config"
	"github.com/tomtom215/gamerec/internal/igdb"
	"github.com/tomtom215/gamerec/internal/recommend"
)

type fakeEngine struct {
	mu      sync.Mutex
	got     map[int64]float64
	results []recommend.ScoredGame
	err     error
}

func (f *fakeEngine) Recommend(_ context.Context, ratings map[int64]float64) ([]recommend.ScoredGame, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = ratings
	return f.results, f.err
}

type fakeSearcher struct {
	query   string
	results []igdb.SearchResult
}

func (f *fakeSearcher) SearchGames(_ context.Context, name string) []igdb.SearchResult {
	f.query = name
	return f.results
}

type fakeStatus struct {
	tokenValid bool
	breaker    string
}

func (f fakeStatus) TokenValid() bool     { return f.tokenValid }
func (f fakeStatus) BreakerState() string { return f.breaker }

func testAPIConfig() *config.Config {
	return &config.Config{
		Recommend: config.RecommendConfig{MaxRatings: 3},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitDisabled: true,
		},
	}
}

// decodedResponse mirrors models.APIResponse with concrete data.
type decodedResponse[T any] struct {
	Status   string `json:"status"`
	Data     T      `json:"data"`
	Metadata struct {
		Timestamp time.Time `json:"timestamp"`
		Count     *int      `json:"count"`
	} `json:"metadata"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) decodedResponse[T] {
	t.Helper()
	var resp decodedResponse[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return resp
}

func newTestHandler(engine Recommender, searcher GameSearcher, status CatalogStatus) *Handler {
	return NewHandler(engine, searcher, status, testAPIConfig(), "test")
}

func postRecommendations(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Recommendations(rec, req)
	return rec
}

func TestRecommendations_Success(t *testing.T) {
	engine := &fakeEngine{results: []recommend.ScoredGame{
		{Game: recommend.Game{ID: 99, Name: "Doom"}, Score: 1.5},
		{Game: recommend.Game{ID: 100, Name: "Quake"}},
	}}
	h := newTestHandler(engine, nil, nil)

	rec := postRecommendations(h, `{"42": 5, "7": -1.5}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}

	if engine.got[42] != 5 || engine.got[7] != -1.5 || len(engine.got) != 2 {
		t.Errorf("engine received %v, want map[7:-1.5 42:5]", engine.got)
	}

	resp := decode[[]recommend.ScoredGame](t, rec)
	if resp.Status != "success" {
		t.Errorf("status = %q, want success", resp.Status)
	}
	if len(resp.Data) != 2 || resp.Data[0].ID != 99 || resp.Data[1].ID != 100 {
		t.Errorf("data = %+v, want ids [99 100] in engine order", resp.Data)
	}
	if resp.Metadata.Count == nil || *resp.Metadata.Count != 2 {
		t.Errorf("metadata.count = %v, want 2", resp.Metadata.Count)
	}
}

func TestRecommendations_EmptyResultIsEmptyArray(t *testing.T) {
	h := newTestHandler(&fakeEngine{results: []recommend.ScoredGame{}}, nil, nil)

	rec := postRecommendations(h, `{"1": 3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"count":0`) {
		t.Errorf("body %s should report count 0", rec.Body.String())
	}
}

func TestRecommendations_EmptyRatingsYieldEmptyList(t *testing.T) {
	// A nil engine result must still serialize as [].
	engine := &fakeEngine{}
	rec := postRecommendations(newTestHandler(engine, nil, nil), `{}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	if engine.got == nil || len(engine.got) != 0 {
		t.Errorf("engine received %v, want empty non-nil map", engine.got)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Errorf("body %s should carry an empty data array", rec.Body.String())
	}
	resp := decode[[]recommend.ScoredGame](t, rec)
	if resp.Status != "success" {
		t.Errorf("status = %q, want success", resp.Status)
	}
	if resp.Metadata.Count == nil || *resp.Metadata.Count != 0 {
		t.Errorf("metadata.count = %v, want 0", resp.Metadata.Count)
	}
}

func TestRecommendations_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `rate these`},
		{"array", `[1, 2]`},
		{"null", `null`},
		{"string rating", `{"1": "five"}`},
		{"non-integer id", `{"zelda": 5}`},
		{"fractional id", `{"1.5": 5}`},
		{"zero id", `{"0": 5}`},
		{"negative id", `{"-3": 5}`},
		{"duplicate id after parsing", `{"1": 5, "01": 4}`},
		{"too many entries", `{"1": 1, "2": 2, "3": 3, "4": 4}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &fakeEngine{}
			rec := postRecommendations(newTestHandler(engine, nil, nil), tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400; body %s", rec.Code, rec.Body.String())
			}
			resp := decode[any](t, rec)
			if resp.Error == nil || resp.Error.Code != "VALIDATION_ERROR" {
				t.Errorf("error = %+v, want VALIDATION_ERROR", resp.Error)
			}
			if engine.got != nil {
				t.Error("engine should not be called for a bad request")
			}
		})
	}
}

func TestRecommendations_Timeout(t *testing.T) {
	h := newTestHandler(&fakeEngine{err: context.DeadlineExceeded}, nil, nil)

	rec := postRecommendations(h, `{"1": 3}`)
	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want 504", rec.Code)
	}
}

func TestSearchGames(t *testing.T) {
	searcher := &fakeSearcher{results: []igdb.SearchResult{{ID: 71, Name: "Portal", FirstReleaseDate: 1191888000}}}
	h := newTestHandler(nil, searcher, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games/search?name=+portal+", http.NoBody)
	rec := httptest.NewRecorder()
	h.SearchGames(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if searcher.query != "portal" {
		t.Errorf("searcher got %q, want trimmed portal", searcher.query)
	}
	resp := decode[[]igdb.SearchResult](t, rec)
	if len(resp.Data) != 1 || resp.Data[0].ID != 71 {
		t.Errorf("data = %+v", resp.Data)
	}
}

func TestSearchGames_Validation(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"missing", ""},
		{"blank", "?name=%20%20"},
		{"too long", "?name=" + strings.Repeat("a", 101)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher := &fakeSearcher{}
			h := newTestHandler(nil, searcher, nil)

			rec := httptest.NewRecorder()
			h.SearchGames(rec, httptest.NewRequest(http.MethodGet, "/api/v1/games/search"+tt.query, http.NoBody))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if searcher.query != "" {
				t.Error("searcher should not be called")
			}
		})
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		status     CatalogStatus
		wantStatus string
		wantToken  bool
	}{
		{"token not fetched yet is healthy", fakeStatus{breaker: "closed"}, "healthy", false},
		{"half-open is healthy", fakeStatus{tokenValid: true, breaker: "half-open"}, "healthy", true},
		{"open breaker is degraded", fakeStatus{tokenValid: true, breaker: "open"}, "degraded", true},
	}

	type health struct {
		Status         string  `json:"status"`
		Version        string  `json:"version"`
		Uptime         float64 `json:"uptime"`
		IGDBTokenValid bool    `json:"igdb_token_valid"`
		CircuitBreaker string  `json:"circuit_breaker"`
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(nil, nil, tt.status)
			rec := httptest.NewRecorder()
			h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", http.NoBody))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			resp := decode[health](t, rec)
			if resp.Data.Status != tt.wantStatus {
				t.Errorf("health status = %q, want %q", resp.Data.Status, tt.wantStatus)
			}
			if resp.Data.IGDBTokenValid != tt.wantToken {
				t.Errorf("igdb_token_valid = %v, want %v", resp.Data.IGDBTokenValid, tt.wantToken)
			}
			if resp.Data.Version != "test" {
				t.Errorf("version = %q, want test", resp.Data.Version)
			}
			if resp.Metadata.Count != nil {
				t.Error("health response should not carry a count")
			}
		})
	}
}
