// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package igdb

import (
	"strconv"
	"strings"

	"github.com/tomtom215/gamerec/internal/recommend"
)

// SortDirection is an apicalypse sort order.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// categoryMainGame is IGDB's game category for main games (no DLC, bundles...).
const categoryMainGame = 0

// gameFields are the fields needed to build feature vectors.
var gameFields = []string{
	"name",
	"genres",
	"themes",
	"player_perspectives",
	"game_modes",
	"age_ratings",
	"first_release_date",
}

// Query builds an apicalypse request body.
type Query struct {
	fields    []string
	search    string
	where     []string
	sortField string
	sortDir   SortDirection
	limit     int
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{}
}

// Fields appends fields to select.
func (q *Query) Fields(fields ...string) *Query {
	q.fields = append(q.fields, fields...)
	return q
}

// Where appends a filter clause. Clauses are joined with "&"; empty clauses
// are ignored.
func (q *Query) Where(clause string) *Query {
	if clause != "" {
		q.where = append(q.where, clause)
	}
	return q
}

// Sort sets the sort field and direction.
func (q *Query) Sort(field string, dir SortDirection) *Query {
	q.sortField = field
	q.sortDir = dir
	return q
}

// Limit sets the maximum number of results. Zero or less omits the clause.
func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// Search sets a full-text search term.
func (q *Query) Search(term string) *Query {
	q.search = term
	return q
}

// String renders the query body.
func (q *Query) String() string {
	var parts []string
	if len(q.fields) > 0 {
		parts = append(parts, "fields "+strings.Join(q.fields, ", ")+";")
	}
	if q.search != "" {
		parts = append(parts, "search "+quote(q.search)+";")
	}
	if len(q.where) > 0 {
		parts = append(parts, "where "+strings.Join(q.where, " & ")+";")
	}
	if q.sortField != "" {
		dir := q.sortDir
		if dir == "" {
			dir = Asc
		}
		parts = append(parts, "sort "+q.sortField+" "+string(dir)+";")
	}
	if q.limit > 0 {
		parts = append(parts, "limit "+strconv.Itoa(q.limit)+";")
	}
	return strings.Join(parts, " ")
}

// quote wraps s in double quotes, escaping backslashes and quotes.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

// inList renders "field = (a, b)", or "" when values is empty.
func inList[T ~int | ~int64](field, op string, values []T) string {
	if len(values) == 0 {
		return ""
	}
	items := make([]string, len(values))
	for i, v := range values {
		items[i] = strconv.FormatInt(int64(v), 10)
	}
	return field + " " + op + " (" + strings.Join(items, ", ") + ")"
}

// ResolveQuery selects the feature fields of the given games.
func ResolveQuery(ids []int64, limit int) string {
	return NewQuery().
		Fields(gameFields...).
		Where(inList("id", "=", ids)).
		Limit(limit).
		String()
}

// CandidateQuery selects main games sharing any genre, theme, perspective
// and game mode of the filter, excluding its ids, most highly rated first.
// Categories with no values are left unconstrained; callers must not pass a
// filter without any candidate features.
func CandidateQuery(filter recommend.CandidateFilter, limit int) string {
	return NewQuery().
		Fields(gameFields...).
		Where(inList("genres", "=", filter.Genres())).
		Where(inList("themes", "=", filter.Themes())).
		Where(inList("player_perspectives", "=", filter.PlayerPerspectives())).
		Where(inList("game_modes", "=", filter.GameModes())).
		Where(inList("id", "!=", filter.ExcludeIDs())).
		Where("version_parent = null").
		Sort("rating", Desc).
		Limit(limit).
		String()
}

// SearchQuery matches main games whose name starts with name,
// case-insensitively.
func SearchQuery(name string, limit int) string {
	return NewQuery().
		Fields("id", "name", "first_release_date").
		Where("version_parent = null").
		Where("category = " + strconv.Itoa(categoryMainGame)).
		Where("first_release_date != null").
		Where("name ~ " + quote(name) + "*").
		Sort("rating", Desc).
		Limit(limit).
		String()
}
