// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"

	"github.com/rs/zerolog"
)

// Engine bundles both strategies over the same stores for the API and console.
// It is safe for concurrent use.
type Engine struct {
	Genre      *GenreRecommender
	Similarity *UserSimilarityRecommender
	config     Config
}

// NewEngine creates both recommenders. A nil config uses DefaultConfig.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(movies MovieSource, rs RatingSource, genres GenreSource, cfg *Config, logger zerolog.Logger) *Engine {
	resolved := cfg.withDefaults()
	return &Engine{
		Genre:      NewGenreRecommender(movies, rs, genres, &resolved, logger),
		Similarity: NewUserSimilarityRecommender(movies, rs, &resolved, logger),
		config:     resolved,
	}
}

// Config returns the resolved configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Recommenders returns every strategy in display order.
func (e *Engine) Recommenders() []Recommender {
	return []Recommender{e.Genre, e.Similarity}
}

// Compare runs both strategies for the user and compares their output.
func (e *Engine) Compare(ctx context.Context, userID, n int) (Comparison, error) {
	genreRecs, err := e.Genre.Recommend(ctx, userID, n)
	if err != nil {
		return Comparison{}, err
	}
	similarityRecs, err := e.Similarity.Recommend(ctx, userID, n)
	if err != nil {
		return Comparison{}, err
	}
	return Compare(genreRecs, similarityRecs), nil
}
