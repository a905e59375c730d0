// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package recommend

import "strconv"

// Category identifies one of the five feature vocabularies.
type Category int

// Categories in column order. The order defines matrix column offsets.
const (
	CategoryGenre Category = iota
	CategoryTheme
	CategoryPlayerPerspective
	CategoryGameMode
	CategoryAgeRating
)

// String returns the wire field name of the category.
func (c Category) String() string {
	switch c {
	case CategoryGenre:
		return "genres"
	case CategoryTheme:
		return "themes"
	case CategoryPlayerPerspective:
		return "player_perspectives"
	case CategoryGameMode:
		return "game_modes"
	case CategoryAgeRating:
		return "age_ratings"
	default:
		return "unknown"
	}
}

// Genre is an IGDB genre code.
type Genre int

// Genre codes as assigned by IGDB.
const (
	GenrePointAndClick     Genre = 2
	GenreFighting          Genre = 4
	GenreShooter           Genre = 5
	GenreMusic             Genre = 7
	GenrePlatform          Genre = 8
	GenrePuzzle            Genre = 9
	GenreRacing            Genre = 10
	GenreRealTimeStrategy  Genre = 11
	GenreRolePlaying       Genre = 12
	GenreSimulator         Genre = 13
	GenreSport             Genre = 14
	GenreStrategy          Genre = 15
	GenreTurnBasedStrategy Genre = 16
	GenreTactical          Genre = 24
	GenreHackAndSlash      Genre = 25
	GenreTrivia            Genre = 26
	GenrePinball           Genre = 30
	GenreAdventure         Genre = 31
	GenreIndie             Genre = 32
	GenreArcade            Genre = 33
	GenreVisualNovel       Genre = 34
	GenreCardAndBoardGame  Genre = 35
	GenreMOBA              Genre = 36
)

// Theme is an IGDB theme code.
type Theme int

// Theme codes as assigned by IGDB.
const (
	ThemeAction         Theme = 1
	ThemeFantasy        Theme = 17
	ThemeScienceFiction Theme = 18
	ThemeHorror         Theme = 19
	ThemeThriller       Theme = 20
	ThemeSurvival       Theme = 21
	ThemeHistorical     Theme = 22
	ThemeStealth        Theme = 23
	ThemeComedy         Theme = 27
	ThemeBusiness       Theme = 28
	ThemeDrama          Theme = 31
	ThemeNonFiction     Theme = 32
	ThemeSandbox        Theme = 33
	ThemeEducational    Theme = 34
	ThemeKids           Theme = 35
	ThemeOpenWorld      Theme = 38
	ThemeWarfare        Theme = 39
	ThemeParty          Theme = 40
	ThemeFourX          Theme = 41
	ThemeErotic         Theme = 42
	ThemeMystery        Theme = 43
	ThemeRomance        Theme = 44
)

// PlayerPerspective is an IGDB player perspective code.
type PlayerPerspective int

// Player perspective codes as assigned by IGDB.
const (
	PerspectiveFirstPerson PlayerPerspective = iota + 1
	PerspectiveThirdPerson
	PerspectiveIsometric
	PerspectiveSideView
	PerspectiveText
	PerspectiveAuditory
	PerspectiveVirtualReality
)

// GameMode is an IGDB game mode code.
type GameMode int

// Game mode codes as assigned by IGDB.
const (
	GameModeSinglePlayer GameMode = iota + 1
	GameModeMultiplayer
	GameModeCooperative
	GameModeSplitScreen
	GameModeMMO
	GameModeBattleRoyale
)

// AgeRating is an IGDB age rating category code. The codes span the PEGI,
// ESRB, CERO, USK, GRAC, ClassInd and ACB rating boards.
type AgeRating int

// Age rating codes as assigned by IGDB.
const (
	AgeRatingPEGI3 AgeRating = iota + 1
	AgeRatingPEGI7
	AgeRatingPEGI12
	AgeRatingPEGI16
	AgeRatingPEGI18
	AgeRatingESRBRP
	AgeRatingESRBEC
	AgeRatingESRBE
	AgeRatingESRBE10
	AgeRatingESRBT
	AgeRatingESRBM
	AgeRatingESRBAO
	AgeRatingCEROA
	AgeRatingCEROB
	AgeRatingCEROC
	AgeRatingCEROD
	AgeRatingCEROZ
	AgeRatingUSK0
	AgeRatingUSK6
	AgeRatingUSK12
	AgeRatingUSK16
	AgeRatingUSK18
	AgeRatingGRACAll
	AgeRatingGRACFifteen
	AgeRatingGRACEighteen
	AgeRatingGRACTesting
	AgeRatingClassIndL
	AgeRatingClassIndTen
	AgeRatingClassIndTwelve
	AgeRatingClassIndFourteen
	AgeRatingClassIndSixteen
	AgeRatingClassIndEighteen
	AgeRatingACBG
	AgeRatingACBPG
	AgeRatingACBM
	AgeRatingACBMA15
	AgeRatingACBR18
	AgeRatingACBRC
)

var genreNames = map[Genre]string{
	GenrePointAndClick:     "Point-and-click",
	GenreFighting:          "Fighting",
	GenreShooter:           "Shooter",
	GenreMusic:             "Music",
	GenrePlatform:          "Platform",
	GenrePuzzle:            "Puzzle",
	GenreRacing:            "Racing",
	GenreRealTimeStrategy:  "Real Time Strategy (RTS)",
	GenreRolePlaying:       "Role-playing (RPG)",
	GenreSimulator:         "Simulator",
	GenreSport:             "Sport",
	GenreStrategy:          "Strategy",
	GenreTurnBasedStrategy: "Turn-based strategy (TBS)",
	GenreTactical:          "Tactical",
	GenreHackAndSlash:      "Hack and slash/Beat 'em up",
	GenreTrivia:            "Quiz/Trivia",
	GenrePinball:           "Pinball",
	GenreAdventure:         "Adventure",
	GenreIndie:             "Indie",
	GenreArcade:            "Arcade",
	GenreVisualNovel:       "Visual Novel",
	GenreCardAndBoardGame:  "Card & Board Game",
	GenreMOBA:              "MOBA",
}

var themeNames = map[Theme]string{
	ThemeAction:         "Action",
	ThemeFantasy:        "Fantasy",
	ThemeScienceFiction: "Science fiction",
	ThemeHorror:         "Horror",
	ThemeThriller:       "Thriller",
	ThemeSurvival:       "Survival",
	ThemeHistorical:     "Historical",
	ThemeStealth:        "Stealth",
	ThemeComedy:         "Comedy",
	ThemeBusiness:       "Business",
	ThemeDrama:          "Drama",
	ThemeNonFiction:     "Non-fiction",
	ThemeSandbox:        "Sandbox",
	ThemeEducational:    "Educational",
	ThemeKids:           "Kids",
	ThemeOpenWorld:      "Open world",
	ThemeWarfare:        "Warfare",
	ThemeParty:          "Party",
	ThemeFourX:          "4X (explore, expand, exploit, and exterminate)",
	ThemeErotic:         "Erotic",
	ThemeMystery:        "Mystery",
	ThemeRomance:        "Romance",
}

var perspectiveNames = [...]string{
	"", "First person", "Third person", "Bird view / Isometric", "Side view",
	"Text", "Auditory", "Virtual Reality",
}

var gameModeNames = [...]string{
	"", "Single player", "Multiplayer", "Co-operative", "Split screen",
	"Massively Multiplayer Online (MMO)", "Battle Royale",
}

var ageRatingNames = [...]string{
	"",
	"PEGI 3", "PEGI 7", "PEGI 12", "PEGI 16", "PEGI 18",
	"ESRB RP", "ESRB EC", "ESRB E", "ESRB E10+", "ESRB T", "ESRB M", "ESRB AO",
	"CERO A", "CERO B", "CERO C", "CERO D", "CERO Z",
	"USK 0", "USK 6", "USK 12", "USK 16", "USK 18",
	"GRAC All", "GRAC 15", "GRAC 18", "GRAC Testing",
	"ClassInd L", "ClassInd 10", "ClassInd 12", "ClassInd 14", "ClassInd 16", "ClassInd 18",
	"ACB G", "ACB PG", "ACB M", "ACB MA15+", "ACB R18+", "ACB RC",
}

// Genres lists every genre in column order.
var Genres = []Genre{
	GenrePointAndClick, GenreFighting, GenreShooter, GenreMusic, GenrePlatform,
	GenrePuzzle, GenreRacing, GenreRealTimeStrategy, GenreRolePlaying, GenreSimulator,
	GenreSport, GenreStrategy, GenreTurnBasedStrategy, GenreTactical, GenreHackAndSlash,
	GenreTrivia, GenrePinball, GenreAdventure, GenreIndie, GenreArcade,
	GenreVisualNovel, GenreCardAndBoardGame, GenreMOBA,
}

// Themes lists every theme in column order.
var Themes = []Theme{
	ThemeAction, ThemeFantasy, ThemeScienceFiction, ThemeHorror, ThemeThriller,
	ThemeSurvival, ThemeHistorical, ThemeStealth, ThemeComedy, ThemeBusiness,
	ThemeDrama, ThemeNonFiction, ThemeSandbox, ThemeEducational, ThemeKids,
	ThemeOpenWorld, ThemeWarfare, ThemeParty, ThemeFourX, ThemeErotic,
	ThemeMystery, ThemeRomance,
}

// PlayerPerspectives lists every player perspective in column order.
var PlayerPerspectives = []PlayerPerspective{
	PerspectiveFirstPerson, PerspectiveThirdPerson, PerspectiveIsometric,
	PerspectiveSideView, PerspectiveText, PerspectiveAuditory, PerspectiveVirtualReality,
}

// GameModes lists every game mode in column order.
var GameModes = []GameMode{
	GameModeSinglePlayer, GameModeMultiplayer, GameModeCooperative,
	GameModeSplitScreen, GameModeMMO, GameModeBattleRoyale,
}

// AgeRatings lists every age rating in column order.
var AgeRatings = func() []AgeRating {
	out := make([]AgeRating, 0, len(ageRatingNames)-1)
	for r := AgeRatingPEGI3; r <= AgeRatingACBRC; r++ {
		out = append(out, r)
	}
	return out
}()

func (g Genre) String() string {
	if name, ok := genreNames[g]; ok {
		return name
	}
	return "Genre(" + strconv.Itoa(int(g)) + ")"
}

// Valid reports whether g is a known genre.
func (g Genre) Valid() bool {
	_, ok := genreNames[g]
	return ok
}

func (t Theme) String() string {
	if name, ok := themeNames[t]; ok {
		return name
	}
	return "Theme(" + strconv.Itoa(int(t)) + ")"
}

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	_, ok := themeNames[t]
	return ok
}

func (p PlayerPerspective) String() string {
	if p.Valid() {
		return perspectiveNames[p]
	}
	return "PlayerPerspective(" + strconv.Itoa(int(p)) + ")"
}

// Valid reports whether p is a known player perspective.
func (p PlayerPerspective) Valid() bool {
	return p >= PerspectiveFirstPerson && p <= PerspectiveVirtualReality
}

func (m GameMode) String() string {
	if m.Valid() {
		return gameModeNames[m]
	}
	return "GameMode(" + strconv.Itoa(int(m)) + ")"
}

// Valid reports whether m is a known game mode.
func (m GameMode) Valid() bool {
	return m >= GameModeSinglePlayer && m <= GameModeBattleRoyale
}

func (a AgeRating) String() string {
	if a.Valid() {
		return ageRatingNames[a]
	}
	return "AgeRating(" + strconv.Itoa(int(a)) + ")"
}

// Valid reports whether a is a known age rating.
func (a AgeRating) Valid() bool {
	return a >= AgeRatingPEGI3 && a <= AgeRatingACBRC
}

// Column describes one matrix column: the category it belongs to and the
// wire code it represents within that category.
type Column struct {
	Category Category
	Code     int
}

// columnKey indexes the reverse lookup table.
type columnKey struct {
	category Category
	code     int
}

var (
	columns     []Column
	columnIndex map[columnKey]int

	// categoryOffsets[c] is the first column of category c.
	categoryOffsets [CategoryAgeRating + 2]int
)

//nolint:gochecknoinits // vocabulary tables are constant data derived once
func init() {
	appendCategory := func(c Category, codes []int) {
		categoryOffsets[c] = len(columns)
		for _, code := range codes {
			columns = append(columns, Column{Category: c, Code: code})
		}
	}

	appendCategory(CategoryGenre, codesOf(Genres))
	appendCategory(CategoryTheme, codesOf(Themes))
	appendCategory(CategoryPlayerPerspective, codesOf(PlayerPerspectives))
	appendCategory(CategoryGameMode, codesOf(GameModes))
	appendCategory(CategoryAgeRating, codesOf(AgeRatings))
	categoryOffsets[CategoryAgeRating+1] = len(columns)

	columnIndex = make(map[columnKey]int, len(columns))
	for i, col := range columns {
		columnIndex[columnKey{col.Category, col.Code}] = i
	}
}

func codesOf[T ~int](values []T) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out
}

// FeatureCount returns the total number of matrix columns.
func FeatureCount() int {
	return len(columns)
}

// Columns returns a copy of the combined column ordering.
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

// ColumnAt returns the column at index i.
func ColumnAt(i int) Column {
	return columns[i]
}

// ColumnOf returns the column index for a code within a category.
// ok is false for codes outside the vocabulary.
func ColumnOf(c Category, code int) (int, bool) {
	i, ok := columnIndex[columnKey{c, code}]
	return i, ok
}

// CategoryRange returns the half-open column range [start, end) of category c.
func CategoryRange(c Category) (start, end int) {
	if c < CategoryGenre || c > CategoryAgeRating {
		return 0, 0
	}
	return categoryOffsets[c], categoryOffsets[c+1]
}
