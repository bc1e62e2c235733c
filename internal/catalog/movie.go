// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

// Movie is a catalog entry together with its rating aggregate.
type Movie struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Genres        []string `json:"genres"`
	RatingCount   int      `json:"rating_count"`
	RatingSum     float64  `json:"rating_sum"`
	AverageRating float64  `json:"average_rating"`
}

// AddRating folds one rating into the aggregate.
func (m *Movie) AddRating(value float64) {
	m.RatingCount++
	m.RatingSum += value
	m.AverageRating = m.RatingSum / float64(m.RatingCount)
}

// HasGenre reports whether the movie is tagged with genre.
func (m *Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// clone returns a copy that does not share the genre slice.
func (m *Movie) clone() Movie {
	c := *m
	c.Genres = append([]string(nil), m.Genres...)
	return c
}
