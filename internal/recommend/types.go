// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/ratings"
)

// Strategy names used for logging and metrics labels.
const (
	StrategyGenre      = "genre"
	StrategySimilarity = "similarity"
)

// Recommender produces an ordered list of movies for a user.
type Recommender interface {
	// Name returns the strategy name.
	Name() string

	// Recommend returns up to n movies the user has not rated.
	// An unknown user yields an empty result, not an error.
	Recommend(ctx context.Context, userID, n int) ([]catalog.Movie, error)
}

// MovieSource is the read side of the catalog.
type MovieSource interface {
	Get(id int) (catalog.Movie, bool)
}

// RatingSource is the read side of the rating store.
type RatingSource interface {
	RatingsOf(userID int) map[int]float64
	History(userID int) []ratings.Rating
	RatedMovieIDs(userID int) ratings.MovieSet
	Snapshot() []ratings.UserSet
}

// GenreSource is the read side of the genre index.
type GenreSource interface {
	MovieIDs(genre string) []int
}

// SimilarityScore is a neighbor and its similarity or decayed weight.
type SimilarityScore struct {
	UserID int     `json:"user_id"`
	Score  float64 `json:"score"`
}

// GenreAffinity is a genre and the user's mean rating of qualifying movies in it.
type GenreAffinity struct {
	Genre   string  `json:"genre"`
	Average float64 `json:"average"`
}
