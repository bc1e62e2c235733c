// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"io"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/ratings"
)

type testMovie struct {
	id     int
	title  string
	genres []string
}

type testRating struct {
	user, movie int
	value       float64
}

type fixture struct {
	catalog *catalog.Catalog
	ratings *ratings.Store
	genres  *catalog.GenreIndex
	engine  *Engine
}

func newFixture(t *testing.T, movies []testMovie, rs []testRating, cfg *Config) *fixture {
	t.Helper()

	c := catalog.New()
	for _, m := range movies {
		c.Add(m.id, m.title, m.genres)
	}
	store := ratings.NewStore()
	for _, r := range rs {
		store.RecordRating(r.user, r.movie, r.value)
		c.RecordRating(r.movie, r.value)
	}
	idx := catalog.BuildGenreIndex(c)

	return &fixture{
		catalog: c,
		ratings: store,
		genres:  idx,
		engine:  NewEngine(c, store, idx, cfg, zerolog.New(io.Discard)),
	}
}

// exampleFixture is the three-movie, three-user scenario used throughout.
func exampleFixture(t *testing.T) *fixture {
	return newFixture(t,
		[]testMovie{
			{1, "A", []string{"Comedy"}},
			{2, "B", []string{"Comedy"}},
			{3, "C", []string{"Drama"}},
		},
		[]testRating{
			{1, 1, 5.0},
			{2, 1, 5.0}, {2, 2, 4.0},
			{3, 3, 5.0},
		},
		nil,
	)
}

// richFixture has enough overlap between users for multi-hop paths.
func richFixture(t *testing.T) *fixture {
	movies := []testMovie{
		{1, "Toy Story", []string{"Animation", "Comedy"}},
		{2, "Jumanji", []string{"Adventure", "Fantasy"}},
		{3, "Heat", []string{"Action", "Crime"}},
		{4, "Casino", []string{"Crime", "Drama"}},
		{5, "Babe", []string{"Comedy", "Drama"}},
		{6, "Se7en", []string{"Crime", "Thriller"}},
		{7, "Clueless", []string{"Comedy", "Romance"}},
		{8, "Braveheart", []string{"Action", "Drama"}},
		{9, "Apollo 13", []string{"Adventure", "Drama"}},
		{10, "Fargo", []string{"Comedy", "Crime"}},
	}
	rs := []testRating{
		{1, 1, 5.0}, {1, 5, 4.0}, {1, 7, 4.5}, {1, 3, 2.0},
		{2, 1, 4.0}, {2, 5, 3.5}, {2, 10, 5.0},
		{3, 10, 4.0}, {3, 4, 4.5}, {3, 6, 5.0},
		{4, 6, 4.0}, {4, 3, 4.0}, {4, 8, 3.0},
		{5, 2, 4.0}, {5, 9, 4.5},
		{6, 1, 3.0}, {6, 7, 5.0}, {6, 9, 4.0},
	}
	return newFixture(t, movies, rs, nil)
}

func movieIDs(movies []catalog.Movie) []int {
	ids := make([]int, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}
	return ids
}

func scoreIDs(scores []SimilarityScore) []int {
	ids := make([]int, len(scores))
	for i, s := range scores {
		ids[i] = s.UserID
	}
	return ids
}

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
