// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package igdb

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/gamerec/internal/config"
	"github.com/tomtom215/gamerec/internal/recommend"
)

func testConfig(apiURL, tokenURL string) *config.IGDBConfig {
	return &config.IGDBConfig{
		ClientID:           "cid",
		ClientSecret:       "secret",
		APIURL:             apiURL,
		TokenURL:           tokenURL,
		RequestTimeout:     5 * time.Second,
		RequestsPerSecond:  1000,
		Burst:              1000,
		CandidateLimit:     500,
		ResolveLimit:       500,
		SearchLimit:        100,
		MaxRetries:         2,
		RetryBaseDelay:     time.Millisecond,
		TokenRefreshMargin: time.Minute,
		CacheTTL:           time.Hour,
		CacheSize:          100,
		Breaker: config.BreakerConfig{
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      time.Minute,
			MinRequests:  2,
			FailureRatio: 0.5,
		},
	}
}

// newTestClient starts handler as the IGDB API and returns a client using a
// static token.
func newTestClient(t *testing.T, handler http.HandlerFunc, mutate func(*config.IGDBConfig), opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL, "http://unused")
	if mutate != nil {
		mutate(cfg)
	}
	opts = append([]Option{WithTokenProvider(StaticTokenProvider("tok"))}, opts...)
	return NewClient(cfg, opts...)
}

func readBody(t *testing.T, r *http.Request) string {
	t.Helper()
	b, err := io.ReadAll(r.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

const halfLifeJSON = `{"id":233,"name":"Half-Life 2","genres":[5],"themes":[1,18],"player_perspectives":[1],"game_modes":[1],"age_ratings":[34],"first_release_date":1100563200}`

func TestClient_RequestHeaders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/games" {
			t.Errorf("path = %s, want /games", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("Client-ID"); got != "cid" {
			t.Errorf("Client-ID = %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "text/plain" {
			t.Errorf("Content-Type = %q", got)
		}
		if body, want := readBody(t, r), ResolveQuery([]int64{233}, 1); body != want {
			t.Errorf("body = %q, want %q", body, want)
		}
		_, _ = w.Write([]byte("[" + halfLifeJSON + "]"))
	}, nil)

	games := c.ResolveGames(context.Background(), []int64{233})
	if len(games) != 1 {
		t.Fatalf("ResolveGames() returned %d games, want 1", len(games))
	}

	g := games[0]
	if g.ID != 233 || g.Name != "Half-Life 2" {
		t.Errorf("game = %d %q, want 233 Half-Life 2", g.ID, g.Name)
	}
	if len(g.Genres) != 1 || g.Genres[0] != recommend.GenreShooter {
		t.Errorf("Genres = %v, want [Shooter]", g.Genres)
	}
	if len(g.Themes) != 2 || g.Themes[1] != recommend.ThemeScienceFiction {
		t.Errorf("Themes = %v, want [Action Science fiction]", g.Themes)
	}
	if len(g.AgeRatings) != 1 || g.AgeRatings[0] != recommend.AgeRating(34) {
		t.Errorf("AgeRatings = %v, want [34]", g.AgeRatings)
	}
}

func TestClient_ResolveGamesDedupesAndCaches(t *testing.T) {
	var calls atomic.Int32
	clock := newFakeClock()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		body := readBody(t, r)
		if !strings.Contains(body, "where id = (2, 1, 3);") {
			t.Errorf("body = %q, want deduplicated ids in first-seen order", body)
		}
		// IGDB returns in its own order and omits unknown id 3.
		_, _ = w.Write([]byte(`[{"id":1,"name":"One","genres":[5]},{"id":2,"name":"Two","genres":[8]}]`))
	}, nil, WithClock(clock.Now))

	ctx := context.Background()
	games := c.ResolveGames(ctx, []int64{2, 1, 2, 3})
	if len(games) != 2 || games[0].ID != 2 || games[1].ID != 1 {
		t.Fatalf("ResolveGames() = %+v, want ids [2 1]", games)
	}

	// Cached: unknown id 3 is still a miss, so restrict to known ids.
	games = c.ResolveGames(ctx, []int64{1, 2})
	if len(games) != 2 {
		t.Fatalf("cached ResolveGames() returned %d games, want 2", len(games))
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("requests = %d, want 1 (second call served from cache)", got)
	}
}

func TestClient_ResolveGamesCacheExpires(t *testing.T) {
	var calls atomic.Int32
	clock := newFakeClock()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte("[" + halfLifeJSON + "]"))
	}, nil, WithClock(clock.Now))

	ctx := context.Background()
	c.ResolveGames(ctx, []int64{233})
	clock.Advance(2 * time.Hour)
	c.ResolveGames(ctx, []int64{233})

	if got := calls.Load(); got != 2 {
		t.Errorf("requests = %d, want 2 after TTL expiry", got)
	}
}

func TestClient_ResolveGamesChunks(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		body := readBody(t, r)
		switch {
		case strings.Contains(body, "where id = (1, 2); limit 2;"):
			_, _ = w.Write([]byte(`[{"id":1},{"id":2}]`))
		case strings.Contains(body, "where id = (3, 4); limit 2;"):
			_, _ = w.Write([]byte(`[{"id":3},{"id":4}]`))
		case strings.Contains(body, "where id = (5); limit 1;"):
			_, _ = w.Write([]byte(`[{"id":5}]`))
		default:
			t.Errorf("unexpected body %q", body)
			_, _ = w.Write([]byte(`[]`))
		}
	}, func(cfg *config.IGDBConfig) { cfg.ResolveLimit = 2 })

	games := c.ResolveGames(context.Background(), []int64{1, 2, 3, 4, 5})
	if len(games) != 5 {
		t.Errorf("ResolveGames() returned %d games, want 5", len(games))
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("requests = %d, want 3", got)
	}
}

func TestClient_ResolveGamesFailureIsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}, nil)

	games := c.ResolveGames(context.Background(), []int64{1})
	if games == nil || len(games) != 0 {
		t.Errorf("ResolveGames() = %#v, want empty non-nil slice", games)
	}
}

func TestClient_FetchCandidates(t *testing.T) {
	filter := recommend.DeriveFilter([]recommend.Game{
		{ID: 42, Genres: []recommend.Genre{recommend.GenreShooter}},
	})

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if body, want := readBody(t, r), CandidateQuery(filter, 500); body != want {
			t.Errorf("body = %q, want %q", body, want)
		}
		_, _ = w.Write([]byte(`[{"id":100,"genres":[5]},{"id":42,"genres":[5]},{"id":99,"genres":[5,8]}]`))
	}, nil)

	games := c.FetchCandidates(context.Background(), filter)
	if len(games) != 2 {
		t.Fatalf("FetchCandidates() returned %d games, want 2", len(games))
	}
	if games[0].ID != 100 || games[1].ID != 99 {
		t.Errorf("order = [%d %d], want [100 99] (excluded id dropped, upstream order kept)", games[0].ID, games[1].ID)
	}
}

func TestClient_FetchCandidatesEmptyFilter(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}, nil)

	games := c.FetchCandidates(context.Background(), recommend.DeriveFilter(nil))
	if games == nil || len(games) != 0 {
		t.Errorf("FetchCandidates() = %#v, want empty non-nil slice", games)
	}
	if calls.Load() != 0 {
		t.Error("empty filter should not reach IGDB")
	}
}

func TestClient_FetchCandidatesAgeRatingsOnly(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`[{"id":1,"name":"Top Rated","genres":[5]}]`))
	}, nil)

	filter := recommend.DeriveFilter([]recommend.Game{
		{ID: 7, AgeRatings: []recommend.AgeRating{recommend.AgeRatingPEGI18}},
	})
	games := c.FetchCandidates(context.Background(), filter)
	if games == nil || len(games) != 0 {
		t.Errorf("FetchCandidates() = %#v, want empty non-nil slice", games)
	}
	if calls.Load() != 0 {
		t.Error("a filter with only age ratings should not reach IGDB")
	}
}

func TestClient_SearchGames(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if body, want := readBody(t, r), SearchQuery("portal", 100); body != want {
			t.Errorf("body = %q, want %q", body, want)
		}
		_, _ = w.Write([]byte(`[{"id":71,"name":"Portal","first_release_date":1191888000},{"id":72,"name":"Portal 2"}]`))
	}, nil)

	ctx := context.Background()
	results := c.SearchGames(ctx, "  portal ")
	if len(results) != 2 {
		t.Fatalf("SearchGames() returned %d results, want 2", len(results))
	}
	if results[0].ID != 71 || results[0].FirstReleaseDate != 1191888000 {
		t.Errorf("results[0] = %+v", results[0])
	}

	if got := c.SearchGames(ctx, "   "); got == nil || len(got) != 0 {
		t.Errorf("blank SearchGames() = %#v, want empty non-nil slice", got)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("requests = %d, want 1", got)
	}
}

func TestClient_RetriesRateLimited(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte("[" + halfLifeJSON + "]"))
	}, nil)

	games := c.ResolveGames(context.Background(), []int64{233})
	if len(games) != 1 {
		t.Errorf("ResolveGames() returned %d games, want 1 after retry", len(games))
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("requests = %d, want 2", got)
	}
}

func TestClient_RateLimitRetriesExhausted(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}, nil)

	var out []gameDTO
	err := c.query(context.Background(), gamesEndpoint, "fields name;", &out)
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("query() error = %v, want ErrRateLimited", err)
	}
	// MaxRetries = 2: one attempt plus two retries.
	if got := calls.Load(); got != 3 {
		t.Errorf("requests = %d, want 3", got)
	}
}

// rotatingProvider hands out "stale" until refreshed.
type rotatingProvider struct {
	mu        sync.Mutex
	token     string
	refreshes int
}

func (p *rotatingProvider) Token(context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.token, nil
}

func (p *rotatingProvider) IsValid() bool { return true }

func (p *rotatingProvider) Refresh(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.refreshes++
	p.token = "fresh"
	return nil
}

func TestClient_RefreshesTokenOnUnauthorized(t *testing.T) {
	provider := &rotatingProvider{token: "stale"}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte("[" + halfLifeJSON + "]"))
	}, nil, WithTokenProvider(provider))

	games := c.ResolveGames(context.Background(), []int64{233})
	if len(games) != 1 {
		t.Errorf("ResolveGames() returned %d games, want 1", len(games))
	}
	if provider.refreshes != 1 {
		t.Errorf("refreshes = %d, want 1", provider.refreshes)
	}
}

func TestClient_UnauthorizedRetriedOnce(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}, nil)

	var out []gameDTO
	err := c.query(context.Background(), gamesEndpoint, "fields name;", &out)
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("query() error = %v, want ErrUnauthorized", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("requests = %d, want 2", got)
	}
}

func TestClient_CircuitBreakerOpens(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}, nil)

	ctx := context.Background()
	var out []gameDTO
	for i := 0; i < 2; i++ {
		if err := c.query(ctx, gamesEndpoint, "fields name;", &out); err == nil {
			t.Fatal("query() error = nil, want failure")
		}
	}

	if got := c.BreakerState(); got != "open" {
		t.Fatalf("BreakerState() = %q, want open", got)
	}

	err := c.query(ctx, gamesEndpoint, "fields name;", &out)
	if !errors.Is(err, ErrCircuitOpen) {
		t.Errorf("query() error = %v, want ErrCircuitOpen", err)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("requests = %d, want 2 (open breaker short-circuits)", got)
	}
}

func TestClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "syntax error", http.StatusBadRequest)
	}, nil)

	var out []gameDTO
	for i := 0; i < 5; i++ {
		_ = c.query(context.Background(), gamesEndpoint, "fields;", &out)
	}
	if got := c.BreakerState(); got != "closed" {
		t.Errorf("BreakerState() = %q, want closed", got)
	}
}

func TestClient_ContextCanceled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if games := c.ResolveGames(ctx, []int64{1}); len(games) != 0 {
		t.Errorf("ResolveGames() with canceled context = %v, want empty", games)
	}
	if got := c.BreakerState(); got != "closed" {
		t.Errorf("BreakerState() = %q, want closed", got)
	}
}

func TestClient_TokenValid(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {}, nil)
	if !c.TokenValid() {
		t.Error("TokenValid() = false with a static token")
	}
	if c.Tokens() == nil {
		t.Error("Tokens() = nil")
	}
}

func TestBackoff(t *testing.T) {
	c := &Client{cfg: config.IGDBConfig{RetryBaseDelay: time.Second}}

	tests := []struct {
		attempt    int
		retryAfter string
		want       time.Duration
	}{
		{0, "", time.Second},
		{1, "", 2 * time.Second},
		{3, "", 8 * time.Second},
		{2, "5", 5 * time.Second},
		{2, "soon", 4 * time.Second},
	}

	for _, tt := range tests {
		if got := c.backoff(tt.attempt, tt.retryAfter); got != tt.want {
			t.Errorf("backoff(%d, %q) = %v, want %v", tt.attempt, tt.retryAfter, got, tt.want)
		}
	}
}
