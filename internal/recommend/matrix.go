// GameRec - Content-Based Game Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamerec

package recommend

import "sort"

// FeatureMatrix is a sparse binary (game x feature) matrix in compressed
// sparse row form. Stored cells are 1.0; every other cell is 0.0.
//
// A FeatureMatrix is read-only after BuildMatrix returns.
type FeatureMatrix struct {
	rows int
	cols int

	// rowPtr[r]..rowPtr[r+1] indexes colIdx for row r.
	rowPtr []int
	// colIdx holds the set columns of each row, ascending within the row.
	colIdx []int
}

// BuildMatrix builds the feature matrix for games, one row per game in input
// order. Duplicate codes collapse and codes outside the vocabulary are
// ignored.
func BuildMatrix(games []Game) *FeatureMatrix {
	m := &FeatureMatrix{
		rows:   len(games),
		cols:   FeatureCount(),
		rowPtr: make([]int, len(games)+1),
	}

	seen := make(map[int]struct{})
	for r := range games {
		start := len(m.colIdx)
		clear(seen)

		for c := CategoryGenre; c <= CategoryAgeRating; c++ {
			for _, code := range games[r].codes(c) {
				col, ok := ColumnOf(c, code)
				if !ok {
					continue
				}
				if _, dup := seen[col]; dup {
					continue
				}
				seen[col] = struct{}{}
				m.colIdx = append(m.colIdx, col)
			}
		}

		sort.Ints(m.colIdx[start:])
		m.rowPtr[r+1] = len(m.colIdx)
	}

	return m
}

// Rows returns the number of rows.
func (m *FeatureMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *FeatureMatrix) Cols() int { return m.cols }

// NonZero returns the number of stored cells.
func (m *FeatureMatrix) NonZero() int { return len(m.colIdx) }

// At returns the value of cell (r, c).
func (m *FeatureMatrix) At(r, c int) float64 {
	row := m.rowColumns(r)
	i := sort.SearchInts(row, c)
	if i < len(row) && row[i] == c {
		return 1
	}
	return 0
}

// Row returns a dense copy of row r.
func (m *FeatureMatrix) Row(r int) []float64 {
	out := make([]float64, m.cols)
	for _, c := range m.rowColumns(r) {
		out[c] = 1
	}
	return out
}

// RowColumns returns the set columns of row r in ascending order.
func (m *FeatureMatrix) RowColumns(r int) []int {
	row := m.rowColumns(r)
	out := make([]int, len(row))
	copy(out, row)
	return out
}

func (m *FeatureMatrix) rowColumns(r int) []int {
	return m.colIdx[m.rowPtr[r]:m.rowPtr[r+1]]
}

// MulVec returns M·v. v must have Cols() entries.
func (m *FeatureMatrix) MulVec(v []float64) []float64 {
	out := make([]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		var sum float64
		for _, c := range m.rowColumns(r) {
			sum += v[c]
		}
		out[r] = sum
	}
	return out
}

// TransposeMulVec returns transpose(M)·v. v must have Rows() entries.
func (m *FeatureMatrix) TransposeMulVec(v []float64) []float64 {
	out := make([]float64, m.cols)
	for r := 0; r < m.rows; r++ {
		for _, c := range m.rowColumns(r) {
			out[c] += v[r]
		}
	}
	return out
}
