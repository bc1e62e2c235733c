// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/ratings"
)

// ratedMovieIDs returns the movies the user has already rated.
func ratedMovieIDs(src RatingSource, userID int) ratings.MovieSet {
	return src.RatedMovieIDs(userID)
}

// topMoviesByRating resolves candidate ids against the catalog and returns
// the n best by current average rating. Unknown ids are skipped and equal
// averages keep candidate order.
func topMoviesByRating(movies MovieSource, candidates []int, n int) []catalog.Movie {
	if n <= 0 {
		return []catalog.Movie{}
	}

	out := make([]catalog.Movie, 0, len(candidates))
	for _, id := range candidates {
		if m, ok := movies.Get(id); ok {
			out = append(out, m)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AverageRating > out[j].AverageRating
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// truncateScores sorts scores descending, keeping input order on ties,
// and cuts the result to n entries.
func truncateScores(scores []SimilarityScore, n int) []SimilarityScore {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if n < 0 {
		n = 0
	}
	if len(scores) > n {
		scores = scores[:n]
	}
	return scores
}

// requestLogger adds the request and correlation IDs carried by ctx to base.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func requestLogger(ctx context.Context, base zerolog.Logger) zerolog.Logger {
	logCtx := base.With()
	if id := logging.RequestIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("request_id", id)
	}
	if id := logging.CorrelationIDFromContext(ctx); id != "" {
		logCtx = logCtx.Str("correlation_id", id)
	}
	return logCtx.Logger()
}
