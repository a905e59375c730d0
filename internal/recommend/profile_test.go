// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package recommend

import (
	"math"
	"testing"
)

const epsilon = 1e-12

func sumOf(p Profile) float64 {
	var s float64
	for _, w := range p {
		s += w
	}
	return s
}

func TestBuildProfile_SingleGameOneFeaturePerCategory(t *testing.T) {
	for _, rating := range []float64{1, 4.5, 1000} {
		p := BuildProfile([]RatedGame{{Game: oneOfEach(1), Rating: rating}})
		if len(p) != FeatureCount() {
			t.Fatalf("len(profile) = %d, want %d", len(p), FeatureCount())
		}

		populated := map[int]bool{
			mustColumn(t, CategoryGenre, int(GenreShooter)):                       true,
			mustColumn(t, CategoryTheme, int(ThemeHorror)):                        true,
			mustColumn(t, CategoryPlayerPerspective, int(PerspectiveFirstPerson)): true,
			mustColumn(t, CategoryGameMode, int(GameModeSinglePlayer)):            true,
			mustColumn(t, CategoryAgeRating, int(AgeRatingPEGI18)):                true,
		}
		for c, w := range p {
			want := 0.0
			if populated[c] {
				want = 0.2
			}
			if math.Abs(w-want) > epsilon {
				t.Errorf("rating %v: profile[%d] = %v, want %v", rating, c, w, want)
			}
		}
	}
}

func TestBuildProfile_SumsToOne(t *testing.T) {
	rated := []RatedGame{
		{Game: Game{ID: 1, Genres: []Genre{GenrePlatform, GenrePuzzle}, Themes: []Theme{ThemeKids}}, Rating: 5},
		{Game: Game{ID: 2, Genres: []Genre{GenrePlatform}, GameModes: []GameMode{GameModeMultiplayer}}, Rating: 2},
		{Game: Game{ID: 3, AgeRatings: []AgeRating{AgeRatingESRBE}}, Rating: -1},
	}

	p := BuildProfile(rated)
	if s := sumOf(p); math.Abs(s-1) > 1e-9 {
		t.Errorf("sum(profile) = %v, want 1", s)
	}

	// weighted: platform 7, puzzle 5, kids 5, multiplayer 2, esrb-e -1 => total 18
	if got := p.Weight(CategoryGenre, int(GenrePlatform)); math.Abs(got-7.0/18) > epsilon {
		t.Errorf("platform weight = %v, want %v", got, 7.0/18)
	}
	if got := p.Weight(CategoryAgeRating, int(AgeRatingESRBE)); math.Abs(got-(-1.0/18)) > epsilon {
		t.Errorf("esrb-e weight = %v, want %v", got, -1.0/18)
	}
	if got := p.Weight(CategoryGenre, 999); got != 0 {
		t.Errorf("unknown weight = %v, want 0", got)
	}
}

func TestBuildProfile_DegenerateIsZero(t *testing.T) {
	tests := []struct {
		name  string
		rated []RatedGame
	}{
		{"no games", nil},
		{"zero rating", []RatedGame{{Game: oneOfEach(1), Rating: 0}}},
		{"featureless game", []RatedGame{{Game: Game{ID: 1}, Rating: 5}}},
		{"cancelling ratings", []RatedGame{
			{Game: oneOfEach(1), Rating: 3},
			{Game: oneOfEach(2), Rating: -3},
		}},
		{"non-finite rating", []RatedGame{{Game: oneOfEach(1), Rating: math.Inf(1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildProfile(tt.rated)
			if len(p) != FeatureCount() {
				t.Fatalf("len(profile) = %d, want %d", len(p), FeatureCount())
			}
			if !p.IsZero() {
				t.Errorf("profile = %v, want zero vector", p)
			}
			for c, w := range p {
				if math.IsNaN(w) || math.IsInf(w, 0) {
					t.Errorf("profile[%d] = %v, want finite", c, w)
				}
			}
		})
	}
}

func TestBuildProfile_DuplicateCodesCountOnce(t *testing.T) {
	g := Game{ID: 1, Genres: []Genre{GenrePlatform, GenrePlatform}, Themes: []Theme{ThemeFantasy}}
	p := BuildProfile([]RatedGame{{Game: g, Rating: 1}})

	if got := p.Weight(CategoryGenre, int(GenrePlatform)); math.Abs(got-0.5) > epsilon {
		t.Errorf("platform weight = %v, want 0.5", got)
	}
}

func TestProfile_Scale(t *testing.T) {
	p := BuildProfile([]RatedGame{{Game: oneOfEach(1), Rating: 1}})
	scaled := p.Scale(3)
	for i := range p {
		if math.Abs(scaled[i]-3*p[i]) > epsilon {
			t.Errorf("Scale(3)[%d] = %v, want %v", i, scaled[i], 3*p[i])
		}
	}
	if &scaled[0] == &p[0] {
		t.Error("Scale() returned shared storage")
	}
}
