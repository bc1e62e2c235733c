// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/ratings"
)

var (
	// ErrNoMovies is returned when the movies file yields no usable rows.
	ErrNoMovies = errors.New("dataset: no usable movies")

	// ErrNoRatings is returned when the ratings file yields no usable rows.
	ErrNoRatings = errors.New("dataset: no usable ratings")
)

// Paths locates the source files.
type Paths struct {
	Movies  string
	Ratings string
}

// LoadStats describes what a load ingested and skipped.
type LoadStats struct {
	Movies          int           `json:"movies"`
	Users           int           `json:"users"`
	Ratings         int           `json:"ratings"`
	Genres          int           `json:"genres"`
	SkippedMovies   int           `json:"skipped_movies"`
	SkippedRatings  int           `json:"skipped_ratings"`
	DuplicateMovies int           `json:"duplicate_movies"`
	DanglingRatings int           `json:"dangling_ratings"`
	Duration        time.Duration `json:"duration"`
}

// RatingChange reports the effect of a live rating.
type RatingChange struct {
	UserID     int     `json:"user_id"`
	MovieID    int     `json:"movie_id"`
	Value      float64 `json:"rating"`
	Previous   float64 `json:"previous,omitempty"`
	Updated    bool    `json:"updated"`
	NewUser    bool    `json:"new_user"`
	KnownMovie bool    `json:"known_movie"`
}

// Dataset is the process-wide set of stores shared by both recommenders.
type Dataset struct {
	Catalog *catalog.Catalog
	Ratings *ratings.Store
	Genres  *catalog.GenreIndex
	Stats   LoadStats

	// writeMu keeps a live rating's store and catalog updates together.
	writeMu sync.Mutex
}

// New wraps already populated stores and derives the genre index.
func New(c *catalog.Catalog, s *ratings.Store) *Dataset {
	idx := catalog.BuildGenreIndex(c)
	return &Dataset{
		Catalog: c,
		Ratings: s,
		Genres:  idx,
		Stats: LoadStats{
			Movies: c.Len(),
			Users:  s.Len(),
			Genres: idx.Len(),
		},
	}
}

// Load reads both files and builds the dataset.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Load(ctx context.Context, paths Paths, logger zerolog.Logger) (*Dataset, error) {
	moviesFile, err := os.Open(paths.Movies)
	if err != nil {
		return nil, fmt.Errorf("open movies file: %w", err)
	}
	defer moviesFile.Close()

	ratingsFile, err := os.Open(paths.Ratings)
	if err != nil {
		return nil, fmt.Errorf("open ratings file: %w", err)
	}
	defer ratingsFile.Close()

	return LoadFrom(ctx, moviesFile, ratingsFile, logger)
}

// LoadFrom builds the dataset from CSV streams. Both streams are parsed
// concurrently; ratings are then ingested in file order.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func LoadFrom(ctx context.Context, movies, ratingsCSV io.Reader, logger zerolog.Logger) (*Dataset, error) {
	start := time.Now()
	logger = logger.With().Str("component", "dataset").Logger()

	var (
		movieRows  []movieRow
		ratingRows []ratingRow
		stats      LoadStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, skipped, err := parseMovies(movies)
		if err != nil {
			return fmt.Errorf("parse movies: %w", err)
		}
		movieRows, stats.SkippedMovies = rows, skipped
		return gctx.Err()
	})
	g.Go(func() error {
		rows, skipped, err := parseRatings(ratingsCSV)
		if err != nil {
			return fmt.Errorf("parse ratings: %w", err)
		}
		ratingRows, stats.SkippedRatings = rows, skipped
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(movieRows) == 0 {
		return nil, ErrNoMovies
	}
	if len(ratingRows) == 0 {
		return nil, ErrNoRatings
	}

	c := catalog.New()
	for _, row := range movieRows {
		if !c.Add(row.id, row.title, row.genres) {
			stats.DuplicateMovies++
		}
	}

	store := ratings.NewStore()
	for _, row := range ratingRows {
		if !c.RecordRating(row.movieID, row.value) {
			stats.DanglingRatings++
		}
		store.RecordRating(row.userID, row.movieID, row.value)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds := New(c, store)
	stats.Movies = ds.Stats.Movies
	stats.Users = ds.Stats.Users
	stats.Genres = ds.Stats.Genres
	stats.Ratings = len(ratingRows)
	stats.Duration = time.Since(start)
	ds.Stats = stats

	metrics.RecordDatasetLoad(stats.Movies, stats.Users, stats.Genres, stats.SkippedMovies, stats.SkippedRatings, stats.Duration)

	logger.Info().
		Int("movies", stats.Movies).
		Int("users", stats.Users).
		Int("ratings", stats.Ratings).
		Int("genres", stats.Genres).
		Int("skipped_movies", stats.SkippedMovies).
		Int("skipped_ratings", stats.SkippedRatings).
		Int("duplicate_movies", stats.DuplicateMovies).
		Int("dangling_ratings", stats.DanglingRatings).
		Dur("duration", stats.Duration).
		Msg("Dataset loaded")

	return ds, nil
}

// RecordRating applies a live rating to the rating store and the movie
// aggregate. The value must already be validated. Every call, including
// an update of an existing rating, is folded into the movie aggregate.
func (d *Dataset) RecordRating(userID, movieID int, value float64) RatingChange {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	change := RatingChange{
		UserID:  userID,
		MovieID: movieID,
		Value:   value,
		NewUser: !d.Ratings.HasUser(userID),
	}

	change.Previous, change.Updated = d.Ratings.RecordRating(userID, movieID, value)
	change.KnownMovie = d.Catalog.RecordRating(movieID, value)

	metrics.RecordRating(change.Updated)
	if change.NewUser {
		metrics.SetUserCount(d.Ratings.Len())
	}

	return change
}
