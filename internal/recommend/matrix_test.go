// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package recommend

import "testing"

// oneOfEach has exactly one feature in every category.
func oneOfEach(id int64) Game {
	return Game{
		ID:                 id,
		Genres:             []Genre{GenreShooter},
		Themes:             []Theme{ThemeHorror},
		PlayerPerspectives: []PlayerPerspective{PerspectiveFirstPerson},
		GameModes:          []GameMode{GameModeSinglePlayer},
		AgeRatings:         []AgeRating{AgeRatingPEGI18},
	}
}

func mustColumn(t *testing.T, c Category, code int) int {
	t.Helper()
	col, ok := ColumnOf(c, code)
	if !ok {
		t.Fatalf("ColumnOf(%v, %d) not found", c, code)
	}
	return col
}

func TestBuildMatrix_Shape(t *testing.T) {
	tests := []struct {
		name  string
		games []Game
	}{
		{"empty", nil},
		{"single featureless", []Game{{ID: 1}}},
		{"three games", []Game{oneOfEach(1), {ID: 2, Genres: []Genre{GenreRacing}}, oneOfEach(3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := BuildMatrix(tt.games)
			if m.Rows() != len(tt.games) {
				t.Errorf("Rows() = %d, want %d", m.Rows(), len(tt.games))
			}
			if m.Cols() != FeatureCount() {
				t.Errorf("Cols() = %d, want %d", m.Cols(), FeatureCount())
			}
			for r := 0; r < m.Rows(); r++ {
				for c := 0; c < m.Cols(); c++ {
					if v := m.At(r, c); v != 0 && v != 1 {
						t.Errorf("At(%d, %d) = %v, want 0 or 1", r, c, v)
					}
				}
			}
		})
	}
}

func TestBuildMatrix_OneFeaturePerCategory(t *testing.T) {
	m := BuildMatrix([]Game{oneOfEach(7)})

	want := map[int]bool{
		mustColumn(t, CategoryGenre, int(GenreShooter)):                       true,
		mustColumn(t, CategoryTheme, int(ThemeHorror)):                        true,
		mustColumn(t, CategoryPlayerPerspective, int(PerspectiveFirstPerson)): true,
		mustColumn(t, CategoryGameMode, int(GameModeSinglePlayer)):            true,
		mustColumn(t, CategoryAgeRating, int(AgeRatingPEGI18)):                true,
	}
	if len(want) != 5 {
		t.Fatalf("expected 5 distinct columns, got %d", len(want))
	}

	for c := 0; c < m.Cols(); c++ {
		got := m.At(0, c)
		if want[c] && got != 1 {
			t.Errorf("At(0, %d) = %v, want 1", c, got)
		}
		if !want[c] && got != 0 {
			t.Errorf("At(0, %d) = %v, want 0", c, got)
		}
	}
	if m.NonZero() != 5 {
		t.Errorf("NonZero() = %d, want 5", m.NonZero())
	}
}

func TestBuildMatrix_DuplicatesAndUnknownCodes(t *testing.T) {
	g := Game{
		ID:         1,
		Genres:     []Genre{GenrePlatform, GenrePlatform, Genre(999), Genre(1)},
		Themes:     []Theme{Theme(-4), ThemeFantasy},
		GameModes:  []GameMode{GameMode(0)},
		AgeRatings: []AgeRating{AgeRating(500)},
	}
	m := BuildMatrix([]Game{g})

	cols := m.RowColumns(0)
	want := []int{
		mustColumn(t, CategoryGenre, int(GenrePlatform)),
		mustColumn(t, CategoryTheme, int(ThemeFantasy)),
	}
	if len(cols) != len(want) {
		t.Fatalf("RowColumns(0) = %v, want %v", cols, want)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Errorf("RowColumns(0)[%d] = %d, want %d", i, cols[i], want[i])
		}
	}
}

func TestBuildMatrix_FeaturelessRowIsZero(t *testing.T) {
	m := BuildMatrix([]Game{{ID: 5, Name: "Nothing"}})
	for c, v := range m.Row(0) {
		if v != 0 {
			t.Errorf("Row(0)[%d] = %v, want 0", c, v)
		}
	}
}

func TestBuildMatrix_DoesNotMutateInput(t *testing.T) {
	genres := []Genre{GenreRacing, GenrePlatform, GenreRacing}
	g := Game{ID: 1, Genres: genres}
	BuildMatrix([]Game{g})

	want := []Genre{GenreRacing, GenrePlatform, GenreRacing}
	for i := range want {
		if genres[i] != want[i] {
			t.Errorf("genres[%d] = %v, want %v", i, genres[i], want[i])
		}
	}
}

func TestFeatureMatrix_MulVec(t *testing.T) {
	games := []Game{
		{ID: 1, Genres: []Genre{GenrePlatform}, Themes: []Theme{ThemeFantasy}},
		{ID: 2, Genres: []Genre{GenreRacing}},
		{ID: 3},
	}
	m := BuildMatrix(games)

	v := make([]float64, FeatureCount())
	v[mustColumn(t, CategoryGenre, int(GenrePlatform))] = 0.5
	v[mustColumn(t, CategoryTheme, int(ThemeFantasy))] = 0.25
	v[mustColumn(t, CategoryGenre, int(GenreShooter))] = 10

	got := m.MulVec(v)
	want := []float64{0.75, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MulVec()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFeatureMatrix_TransposeMulVec(t *testing.T) {
	games := []Game{
		{ID: 1, Genres: []Genre{GenrePlatform}, Themes: []Theme{ThemeFantasy}},
		{ID: 2, Genres: []Genre{GenrePlatform}},
	}
	m := BuildMatrix(games)

	got := m.TransposeMulVec([]float64{2, 3})
	if len(got) != FeatureCount() {
		t.Fatalf("len = %d, want %d", len(got), FeatureCount())
	}

	platform := mustColumn(t, CategoryGenre, int(GenrePlatform))
	fantasy := mustColumn(t, CategoryTheme, int(ThemeFantasy))
	for c, v := range got {
		var want float64
		switch c {
		case platform:
			want = 5
		case fantasy:
			want = 2
		}
		if v != want {
			t.Errorf("TransposeMulVec()[%d] = %v, want %v", c, v, want)
		}
	}
}
