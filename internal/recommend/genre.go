// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// GenreRecommender recommends unseen movies from the genres a user rates highly.
// It never mutates the stores it reads and is safe for concurrent use.
type GenreRecommender struct {
	movies  MovieSource
	ratings RatingSource
	genres  GenreSource
	config  Config
	logger  zerolog.Logger
}

// NewGenreRecommender creates a genre recommender over shared stores.
// A nil config uses DefaultConfig.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewGenreRecommender(movies MovieSource, rs RatingSource, genres GenreSource, cfg *Config, logger zerolog.Logger) *GenreRecommender {
	return &GenreRecommender{
		movies:  movies,
		ratings: rs,
		genres:  genres,
		config:  cfg.withDefaults(),
		logger:  logger.With().Str("component", "recommend").Str("strategy", StrategyGenre).Logger(),
	}
}

// Name returns the strategy name.
func (g *GenreRecommender) Name() string {
	return StrategyGenre
}

// PreferredGenres returns the user's genres ordered by mean rating,
// highest first. Only movies rated at or above minRating contribute; each
// contributes its rating to every one of its genres. Equal averages keep
// the order in which the genres were first encountered.
func (g *GenreRecommender) PreferredGenres(userID int, minRating float64) []GenreAffinity {
	type acc struct {
		sum   float64
		count int
	}

	totals := make(map[string]*acc)
	var order []string

	for _, r := range g.ratings.History(userID) {
		if r.Value < minRating {
			continue
		}
		m, ok := g.movies.Get(r.MovieID)
		if !ok {
			continue
		}
		seen := make(map[string]struct{}, len(m.Genres))
		for _, genre := range m.Genres {
			if _, dup := seen[genre]; dup {
				continue
			}
			seen[genre] = struct{}{}

			a, ok := totals[genre]
			if !ok {
				a = &acc{}
				totals[genre] = a
				order = append(order, genre)
			}
			a.sum += r.Value
			a.count++
		}
	}

	out := make([]GenreAffinity, 0, len(order))
	for _, genre := range order {
		a := totals[genre]
		out = append(out, GenreAffinity{Genre: genre, Average: a.sum / float64(a.count)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Average > out[j].Average
	})
	return out
}

// Recommend returns up to n unseen movies from the user's preferred genres,
// best average rating first. Candidates are gathered genre by genre in
// preference order, so equal averages favor the stronger genre and then
// catalog order.
func (g *GenreRecommender) Recommend(ctx context.Context, userID, n int) ([]catalog.Movie, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		metrics.RecordRecommendation(StrategyGenre, metrics.OutcomeCancelled, 0, time.Since(start))
		return nil, err
	}

	preferred := g.PreferredGenres(userID, g.config.GenreMinRating)
	if len(preferred) == 0 {
		metrics.RecordRecommendation(StrategyGenre, metrics.OutcomeEmpty, 0, time.Since(start))
		return []catalog.Movie{}, nil
	}

	rated := ratedMovieIDs(g.ratings, userID)
	seen := make(map[int]struct{})
	var candidates []int

	for _, pref := range preferred {
		for _, id := range g.genres.MovieIDs(pref.Genre) {
			if rated.Has(id) {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			candidates = append(candidates, id)
		}
	}

	recs := topMoviesByRating(g.movies, candidates, n)

	outcome := metrics.OutcomeServed
	if len(recs) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordRecommendation(StrategyGenre, outcome, len(recs), time.Since(start))

	logger := requestLogger(ctx, g.logger)
	logger.Debug().
		Int("user_id", userID).
		Int("preferred_genres", len(preferred)).
		Int("candidates", len(candidates)).
		Int("results", len(recs)).
		Msg("Genre recommendations computed")

	return recs, nil
}
