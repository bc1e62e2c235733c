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
	"github.com/tomtom215/cinematch/internal/ratings"
)

// ctxCheckInterval is how many users are scanned between context checks.
const ctxCheckInterval = 256

// RecommendOptions controls a single similarity recommendation.
// Zero fields fall back to the recommender configuration.
type RecommendOptions struct {
	N              int
	RecursiveDepth int
	DecayRate      float64
}

// SearchStats describes the work done by one multi-hop neighbor search.
type SearchStats struct {
	Depth      int  `json:"depth"`
	Expansions int  `json:"expansions"`
	Truncated  bool `json:"truncated"`
}

// UserSimilarityRecommender recommends movies liked by similar users.
// It never mutates the stores it reads and is safe for concurrent use.
type UserSimilarityRecommender struct {
	movies  MovieSource
	ratings RatingSource
	config  Config
	logger  zerolog.Logger
}

// NewUserSimilarityRecommender creates a similarity recommender over shared stores.
// A nil config uses DefaultConfig.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewUserSimilarityRecommender(movies MovieSource, rs RatingSource, cfg *Config, logger zerolog.Logger) *UserSimilarityRecommender {
	return &UserSimilarityRecommender{
		movies:  movies,
		ratings: rs,
		config:  cfg.withDefaults(),
		logger:  logger.With().Str("component", "recommend").Str("strategy", StrategySimilarity).Logger(),
	}
}

// Name returns the strategy name.
func (r *UserSimilarityRecommender) Name() string {
	return StrategySimilarity
}

// indexOf returns the position of userID in a snapshot, or -1.
func indexOf(users []ratings.UserSet, userID int) int {
	for i := range users {
		if users[i].UserID == userID {
			return i
		}
	}
	return -1
}

// FindSimilarUsers returns up to n other users with positive Jaccard
// similarity to userID, most similar first. Equal scores keep store order.
func (r *UserSimilarityRecommender) FindSimilarUsers(ctx context.Context, userID, n int) ([]SimilarityScore, error) {
	users := r.ratings.Snapshot()
	self := indexOf(users, userID)
	if self < 0 {
		return []SimilarityScore{}, nil
	}
	target := users[self].Movies

	scores := make([]SimilarityScore, 0)
	for i := range users {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if i == self {
			continue
		}
		if sim := Jaccard(target, users[i].Movies); sim > 0 {
			scores = append(scores, SimilarityScore{UserID: users[i].UserID, Score: sim})
		}
	}

	return truncateScores(scores, n), nil
}

// pathNode links a traversal frame to its ancestors.
type pathNode struct {
	user   int
	parent *pathNode
}

func (p *pathNode) contains(user int) bool {
	for n := p; n != nil; n = n.parent {
		if n.user == user {
			return true
		}
	}
	return false
}

// frame is one pending expansion of the multi-hop traversal.
type frame struct {
	user      int
	remaining int
	decay     float64
	path      *pathNode
}

// FindSimilarUsersRecursive discovers neighbors up to depth hops away.
// A user reached at hop k through a user u gets weight
// Jaccard(u, user) * decayRate^(k-1); the highest weight over all paths is
// kept. Depth 1 or less is the single-hop search. Results are ordered by
// weight, highest first, and cut to maxNeighbors.
func (r *UserSimilarityRecommender) FindSimilarUsersRecursive(ctx context.Context, userID, depth, maxNeighbors int, decayRate float64) ([]SimilarityScore, error) {
	scores, _, err := r.findSimilarUsersRecursive(ctx, userID, depth, maxNeighbors, decayRate)
	return scores, err
}

// FindSimilarUsersRecursiveStats is FindSimilarUsersRecursive and also
// reports how much of the traversal was performed.
func (r *UserSimilarityRecommender) FindSimilarUsersRecursiveStats(ctx context.Context, userID, depth, maxNeighbors int, decayRate float64) ([]SimilarityScore, SearchStats, error) {
	return r.findSimilarUsersRecursive(ctx, userID, depth, maxNeighbors, decayRate)
}

func (r *UserSimilarityRecommender) findSimilarUsersRecursive(ctx context.Context, userID, depth, maxNeighbors int, decayRate float64) ([]SimilarityScore, SearchStats, error) {
	if depth <= 1 {
		scores, err := r.FindSimilarUsers(ctx, userID, maxNeighbors)
		return scores, SearchStats{Depth: 1}, err
	}
	if depth > r.config.MaxDepth {
		r.logger.Debug().Int("requested_depth", depth).Int("max_depth", r.config.MaxDepth).Msg("Neighbor search depth clamped")
		depth = r.config.MaxDepth
	}
	stats := SearchStats{Depth: depth}

	users := r.ratings.Snapshot()
	self := indexOf(users, userID)
	if self < 0 {
		return []SimilarityScore{}, stats, nil
	}

	sims := newPairCache(users)
	weights := make(map[int]float64)

	stack := []frame{{user: self, remaining: depth, decay: 1.0, path: &pathNode{user: self}}}
	var children []frame

	for len(stack) > 0 {
		if stats.Expansions >= r.config.MaxExpansions {
			stats.Truncated = true
			break
		}

		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stats.Expansions++

		children = children[:0]
		for other := range users {
			if other%ctxCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					metrics.RecordNeighborSearch(stats.Expansions, false)
					return nil, stats, err
				}
			}
			if f.path.contains(other) {
				continue
			}
			sim := sims.similarity(f.user, other)
			if sim <= 0 {
				continue
			}
			if w := sim * f.decay; w > weights[other] {
				weights[other] = w
			}
			if f.remaining > 1 {
				children = append(children, frame{
					user:      other,
					remaining: f.remaining - 1,
					decay:     f.decay * decayRate,
					path:      &pathNode{user: other, parent: f.path},
				})
			}
		}

		// Push in reverse so siblings are expanded in store order.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}

	metrics.RecordNeighborSearch(stats.Expansions, stats.Truncated)
	if stats.Truncated {
		logger := requestLogger(ctx, r.logger)
		logger.Warn().
			Int("user_id", userID).
			Int("depth", depth).
			Int("expansions", stats.Expansions).
			Int("pending_frames", len(stack)).
			Msg("Neighbor search stopped at expansion budget")
	}

	scores := make([]SimilarityScore, 0, len(weights))
	for i := range users {
		if w, ok := weights[i]; ok {
			scores = append(scores, SimilarityScore{UserID: users[i].UserID, Score: w})
		}
	}

	return truncateScores(scores, maxNeighbors), stats, nil
}

// MoviesLikedBy counts, for each movie, how many of the given users rated
// it at or above minRating.
func (r *UserSimilarityRecommender) MoviesLikedBy(userIDs []int, minRating float64) map[int]int {
	likes := make(map[int]int)
	for _, id := range userIDs {
		for movieID, value := range r.ratings.RatingsOf(id) {
			if value >= minRating {
				likes[movieID]++
			}
		}
	}
	return likes
}

// Recommend returns up to n movies using the configured search depth and decay.
func (r *UserSimilarityRecommender) Recommend(ctx context.Context, userID, n int) ([]catalog.Movie, error) {
	return r.RecommendWithOptions(ctx, userID, RecommendOptions{N: n})
}

// RecommendWithOptions returns up to opts.N movies liked by the user's
// neighbors and not yet rated by the user. Movies are ranked by how many
// neighbors liked them, then by average rating, then by id.
func (r *UserSimilarityRecommender) RecommendWithOptions(ctx context.Context, userID int, opts RecommendOptions) ([]catalog.Movie, error) {
	start := time.Now()

	if opts.RecursiveDepth <= 0 {
		opts.RecursiveDepth = r.config.RecursiveDepth
	}
	if opts.DecayRate <= 0 {
		opts.DecayRate = r.config.DecayRate
	}

	var (
		neighbors []SimilarityScore
		err       error
	)
	if opts.RecursiveDepth > 1 {
		neighbors, err = r.FindSimilarUsersRecursive(ctx, userID, opts.RecursiveDepth, r.config.Neighbors, opts.DecayRate)
	} else {
		neighbors, err = r.FindSimilarUsers(ctx, userID, r.config.Neighbors)
	}
	if err != nil {
		metrics.RecordRecommendation(StrategySimilarity, metrics.OutcomeCancelled, 0, time.Since(start))
		return nil, err
	}

	recs := r.rankLikedMovies(userID, neighbors, opts.N)

	outcome := metrics.OutcomeServed
	if len(recs) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordRecommendation(StrategySimilarity, outcome, len(recs), time.Since(start))

	logger := requestLogger(ctx, r.logger)
	logger.Debug().
		Int("user_id", userID).
		Int("depth", opts.RecursiveDepth).
		Int("neighbors", len(neighbors)).
		Int("results", len(recs)).
		Msg("Similarity recommendations computed")

	return recs, nil
}

type likedCandidate struct {
	movie catalog.Movie
	likes int
}

func (r *UserSimilarityRecommender) rankLikedMovies(userID int, neighbors []SimilarityScore, n int) []catalog.Movie {
	if len(neighbors) == 0 || n <= 0 {
		return []catalog.Movie{}
	}

	ids := make([]int, len(neighbors))
	for i, s := range neighbors {
		ids[i] = s.UserID
	}

	likes := r.MoviesLikedBy(ids, r.config.LikeMinRating)
	if len(likes) == 0 {
		return []catalog.Movie{}
	}

	rated := ratedMovieIDs(r.ratings, userID)
	candidates := make([]likedCandidate, 0, len(likes))
	for movieID, count := range likes {
		if rated.Has(movieID) {
			continue
		}
		if m, ok := r.movies.Get(movieID); ok {
			candidates = append(candidates, likedCandidate{movie: m, likes: count})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.likes != b.likes {
			return a.likes > b.likes
		}
		if a.movie.AverageRating != b.movie.AverageRating {
			return a.movie.AverageRating > b.movie.AverageRating
		}
		return a.movie.ID < b.movie.ID
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}

	out := make([]catalog.Movie, len(candidates))
	for i, c := range candidates {
		out[i] = c.movie
	}
	return out
}
