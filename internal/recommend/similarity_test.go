// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/logging"
)

func plainMovies(ids ...int) []testMovie {
	out := make([]testMovie, len(ids))
	for i, id := range ids {
		out[i] = testMovie{id: id, title: "m", genres: []string{"Drama"}}
	}
	return out
}

func TestSimilarityRecommenderExample(t *testing.T) {
	t.Parallel()

	f := exampleFixture(t)
	s := f.engine.Similarity
	ctx := context.Background()

	similar, err := s.FindSimilarUsers(ctx, 1, 20)
	if err != nil {
		t.Fatalf("FindSimilarUsers() error = %v", err)
	}
	if len(similar) != 1 || similar[0].UserID != 2 || similar[0].Score != 0.5 {
		t.Fatalf("FindSimilarUsers(1) = %+v, want [{2 0.5}]", similar)
	}

	recs, err := s.Recommend(ctx, 1, 10)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if got := movieIDs(recs); !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("Recommend(1) = %v, want [2]", got)
	}
}

func TestFindSimilarUsersProperties(t *testing.T) {
	t.Parallel()

	f := richFixture(t)
	s := f.engine.Similarity
	ctx := context.Background()

	for _, user := range f.ratings.UserIDs() {
		got, err := s.FindSimilarUsers(ctx, user, 20)
		if err != nil {
			t.Fatalf("FindSimilarUsers(%d) error = %v", user, err)
		}
		for i, sc := range got {
			if sc.UserID == user {
				t.Errorf("user %d: result contains the query user", user)
			}
			if sc.Score <= 0 {
				t.Errorf("user %d: non-positive similarity %v for %d", user, sc.Score, sc.UserID)
			}
			if i > 0 && sc.Score > got[i-1].Score {
				t.Errorf("user %d: results not sorted descending: %+v", user, got)
			}
		}
	}
}

func TestFindSimilarUsersTruncates(t *testing.T) {
	t.Parallel()

	f := richFixture(t)
	got, err := f.engine.Similarity.FindSimilarUsers(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("FindSimilarUsers() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("FindSimilarUsers(n=1) returned %d users", len(got))
	}
}

func TestFindSimilarUsersRecursiveDepthOneIsSingleHop(t *testing.T) {
	t.Parallel()

	f := richFixture(t)
	s := f.engine.Similarity
	ctx := context.Background()

	for _, depth := range []int{1, 0, -3} {
		for _, user := range f.ratings.UserIDs() {
			single, _ := s.FindSimilarUsers(ctx, user, 20)
			recursive, err := s.FindSimilarUsersRecursive(ctx, user, depth, 20, 0.6)
			if err != nil {
				t.Fatalf("FindSimilarUsersRecursive() error = %v", err)
			}
			if !reflect.DeepEqual(single, recursive) {
				t.Errorf("depth %d user %d: recursive %+v != single %+v", depth, user, recursive, single)
			}
		}
	}
}

func TestFindSimilarUsersRecursiveChain(t *testing.T) {
	t.Parallel()

	f := newFixture(t, plainMovies(1, 2, 3, 4),
		[]testRating{
			{1, 1, 4}, {1, 2, 4},
			{2, 2, 4}, {2, 3, 4},
			{3, 3, 4}, {3, 4, 4},
		}, nil)

	got, err := f.engine.Similarity.FindSimilarUsersRecursive(context.Background(), 1, 2, 20, 0.6)
	if err != nil {
		t.Fatalf("FindSimilarUsersRecursive() error = %v", err)
	}

	want := []SimilarityScore{{UserID: 2, Score: 1.0 / 3.0}, {UserID: 3, Score: 1.0 / 3.0 * 0.6}}
	if len(got) != len(want) {
		t.Fatalf("FindSimilarUsersRecursive() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i].UserID != want[i].UserID || !approxEqual(got[i].Score, want[i].Score) {
			t.Errorf("result[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// A user reachable directly and through a neighbor keeps the larger weight.
func TestFindSimilarUsersRecursiveKeepsMaxOverPaths(t *testing.T) {
	t.Parallel()

	f := newFixture(t, plainMovies(1, 2, 3, 4, 5, 6, 7, 8),
		[]testRating{
			{10, 1, 4}, {10, 2, 4}, {10, 3, 4}, {10, 4, 4},
			{20, 1, 4}, {20, 2, 4}, {20, 3, 4}, {20, 4, 4}, {20, 5, 4},
			{30, 4, 4}, {30, 5, 4}, {30, 6, 4}, {30, 7, 4}, {30, 8, 4},
		}, nil)

	got, err := f.engine.Similarity.FindSimilarUsersRecursive(context.Background(), 10, 2, 20, 0.6)
	if err != nil {
		t.Fatalf("FindSimilarUsersRecursive() error = %v", err)
	}

	// direct 10->30 is 1/8; 10->20->30 is 2/8 * 0.6.
	want := []SimilarityScore{{UserID: 20, Score: 0.8}, {UserID: 30, Score: 0.15}}
	if len(got) != len(want) {
		t.Fatalf("FindSimilarUsersRecursive() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i].UserID != want[i].UserID || !approxEqual(got[i].Score, want[i].Score) {
			t.Errorf("result[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFindSimilarUsersRecursiveDecayMonotonic(t *testing.T) {
	t.Parallel()

	f := richFixture(t)
	s := f.engine.Similarity
	ctx := context.Background()

	weightsAt := func(user int, decay float64) map[int]float64 {
		scores, err := s.FindSimilarUsersRecursive(ctx, user, 3, 100, decay)
		if err != nil {
			t.Fatalf("FindSimilarUsersRecursive() error = %v", err)
		}
		out := make(map[int]float64, len(scores))
		for _, sc := range scores {
			out[sc.UserID] = sc.Score
		}
		return out
	}

	decays := []float64{0.2, 0.5, 0.8, 1.0}
	for _, user := range f.ratings.UserIDs() {
		prev := weightsAt(user, decays[0])
		for _, d := range decays[1:] {
			cur := weightsAt(user, d)
			for id, w := range prev {
				if cur[id] < w {
					t.Errorf("user %d neighbor %d: weight fell from %v to %v when decay rose to %v", user, id, w, cur[id], d)
				}
			}
			prev = cur
		}
	}
}

func TestFindSimilarUsersRecursiveNeverExceedsOne(t *testing.T) {
	t.Parallel()

	f := richFixture(t)
	for _, user := range f.ratings.UserIDs() {
		scores, _ := f.engine.Similarity.FindSimilarUsersRecursive(context.Background(), user, 3, 100, 1.0)
		for _, sc := range scores {
			if sc.UserID == user {
				t.Errorf("user %d appears in own neighbor list", user)
			}
			if sc.Score <= 0 || sc.Score > 1 {
				t.Errorf("user %d: weight %v out of (0, 1]", user, sc.Score)
			}
		}
	}
}

func TestFindSimilarUsersRecursiveBudget(t *testing.T) {
	t.Parallel()

	f := richFixture(t)
	var logs bytes.Buffer
	limited := NewUserSimilarityRecommender(f.catalog, f.ratings, &Config{MaxExpansions: 1}, zerolog.New(&logs))
	ctx := logging.ContextWithRequestID(context.Background(), "req-budget")

	scores, stats, err := limited.FindSimilarUsersRecursiveStats(ctx, 1, 2, 20, 0.6)
	if err != nil {
		t.Fatalf("FindSimilarUsersRecursiveStats() error = %v", err)
	}
	if !stats.Truncated || stats.Expansions != 1 {
		t.Errorf("stats = %+v, want one expansion and truncated", stats)
	}

	single, _ := limited.FindSimilarUsers(ctx, 1, 20)
	if !reflect.DeepEqual(scores, single) {
		t.Errorf("budget of one frame should yield single-hop weights: got %+v, want %+v", scores, single)
	}

	out := logs.String()
	if !strings.Contains(out, "Neighbor search stopped at expansion budget") ||
		!strings.Contains(out, `"request_id":"req-budget"`) {
		t.Errorf("expected a budget warning carrying the request id, got: %s", out)
	}
}

func TestFindSimilarUsersRecursiveClampsDepth(t *testing.T) {
	t.Parallel()

	f := richFixture(t)
	_, stats, err := f.engine.Similarity.FindSimilarUsersRecursiveStats(context.Background(), 1, 50, 20, 0.6)
	if err != nil {
		t.Fatalf("FindSimilarUsersRecursiveStats() error = %v", err)
	}
	if stats.Depth != DefaultConfig().MaxDepth {
		t.Errorf("stats.Depth = %d, want %d", stats.Depth, DefaultConfig().MaxDepth)
	}
}

func TestSimilaritySearchCancelled(t *testing.T) {
	t.Parallel()

	f := richFixture(t)
	s := f.engine.Similarity
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.FindSimilarUsers(ctx, 1, 20); !errors.Is(err, context.Canceled) {
		t.Errorf("FindSimilarUsers() error = %v, want context.Canceled", err)
	}
	if _, err := s.FindSimilarUsersRecursive(ctx, 1, 2, 20, 0.6); !errors.Is(err, context.Canceled) {
		t.Errorf("FindSimilarUsersRecursive() error = %v, want context.Canceled", err)
	}
	if _, err := s.Recommend(ctx, 1, 10); !errors.Is(err, context.Canceled) {
		t.Errorf("Recommend() error = %v, want context.Canceled", err)
	}
}

func TestMoviesLikedBy(t *testing.T) {
	t.Parallel()

	f := richFixture(t)
	got := f.engine.Similarity.MoviesLikedBy([]int{1, 2}, 3.5)
	want := map[int]int{1: 2, 5: 2, 7: 1, 10: 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MoviesLikedBy() = %v, want %v", got, want)
	}
}

func TestSimilarityRecommendRanking(t *testing.T) {
	t.Parallel()

	f := newFixture(t, plainMovies(1, 2, 3, 4),
		[]testRating{
			{1, 1, 4.0},
			{2, 1, 4.0}, {2, 2, 5.0}, {2, 3, 4.0},
			{3, 1, 4.0}, {3, 3, 4.0},
			{4, 1, 4.0}, {4, 4, 5.0},
		}, nil)

	recs, err := f.engine.Similarity.Recommend(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	// 3 is liked twice; 2 and 4 tie on likes and average and fall back to id.
	if got := movieIDs(recs); !reflect.DeepEqual(got, []int{3, 2, 4}) {
		t.Errorf("Recommend() = %v, want [3 2 4]", got)
	}
}

func TestSimilarityRecommendExcludesRated(t *testing.T) {
	t.Parallel()

	f := richFixture(t)
	ctx := context.Background()

	for _, depth := range []int{1, 2, 3} {
		for _, user := range f.ratings.UserIDs() {
			recs, err := f.engine.Similarity.RecommendWithOptions(ctx, user, RecommendOptions{N: 10, RecursiveDepth: depth})
			if err != nil {
				t.Fatalf("RecommendWithOptions() error = %v", err)
			}
			rated := f.ratings.RatedMovieIDs(user)
			for _, m := range recs {
				if rated.Has(m.ID) {
					t.Errorf("depth %d user %d: recommended rated movie %d", depth, user, m.ID)
				}
			}
		}
	}
}

func TestRecommendersIdempotent(t *testing.T) {
	t.Parallel()

	f := richFixture(t)
	ctx := context.Background()

	for _, rec := range f.engine.Recommenders() {
		for _, user := range f.ratings.UserIDs() {
			first, _ := rec.Recommend(ctx, user, 10)
			second, _ := rec.Recommend(ctx, user, 10)
			if !reflect.DeepEqual(first, second) {
				t.Errorf("%s user %d: %v then %v", rec.Name(), user, movieIDs(first), movieIDs(second))
			}
		}
	}

	a, _ := f.engine.Similarity.FindSimilarUsersRecursive(ctx, 1, 3, 20, 0.6)
	b, _ := f.engine.Similarity.FindSimilarUsersRecursive(ctx, 1, 3, 20, 0.6)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("FindSimilarUsersRecursive not idempotent: %+v vs %+v", a, b)
	}
}

func TestUserWithoutRatingsGetsEmptyResults(t *testing.T) {
	t.Parallel()

	f := richFixture(t)
	ctx := context.Background()
	const nobody = 999

	if got := f.engine.Genre.PreferredGenres(nobody, 3.5); len(got) != 0 {
		t.Errorf("PreferredGenres() = %v, want empty", got)
	}
	for _, rec := range f.engine.Recommenders() {
		got, err := rec.Recommend(ctx, nobody, 10)
		if err != nil || len(got) != 0 {
			t.Errorf("%s.Recommend() = %v, %v; want empty, nil", rec.Name(), got, err)
		}
	}
	if got, err := f.engine.Similarity.FindSimilarUsers(ctx, nobody, 20); err != nil || len(got) != 0 {
		t.Errorf("FindSimilarUsers() = %v, %v; want empty, nil", got, err)
	}
	if got, err := f.engine.Similarity.FindSimilarUsersRecursive(ctx, nobody, 2, 20, 0.6); err != nil || len(got) != 0 {
		t.Errorf("FindSimilarUsersRecursive() = %v, %v; want empty, nil", got, err)
	}
}

func TestLiveRatingVisibleToNextCall(t *testing.T) {
	t.Parallel()

	f := exampleFixture(t)
	ctx := context.Background()

	f.ratings.RecordRating(1, 2, 4.5)
	f.catalog.RecordRating(2, 4.5)

	for _, rec := range f.engine.Recommenders() {
		got, err := rec.Recommend(ctx, 1, 10)
		if err != nil {
			t.Fatalf("%s.Recommend() error = %v", rec.Name(), err)
		}
		if len(got) != 0 {
			t.Errorf("%s.Recommend() = %v after rating every comedy, want empty", rec.Name(), movieIDs(got))
		}
	}

	similar, _ := f.engine.Similarity.FindSimilarUsers(ctx, 1, 20)
	if len(similar) != 1 || similar[0].Score != 1.0 {
		t.Errorf("FindSimilarUsers(1) = %+v, want [{2 1}]", similar)
	}
}
