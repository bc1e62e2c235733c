// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import "fmt"

// Config contains parameters shared by both recommenders.
type Config struct {
	// GenreMinRating is the rating at or above which a movie counts
	// toward a user's genre affinity.
	// Default: 3.5.
	GenreMinRating float64 `json:"genre_min_rating"`

	// LikeMinRating is the rating at or above which a neighbor "likes" a movie.
	// Default: 3.5.
	LikeMinRating float64 `json:"like_min_rating"`

	// DefaultN is the number of movies returned when the caller does not ask.
	// Default: 10.
	DefaultN int `json:"default_n"`

	// MaxN caps the number of movies per request at the API boundary.
	// Default: 100.
	MaxN int `json:"max_n"`

	// Neighbors is the neighbor count used when recommending.
	// Default: 20.
	Neighbors int `json:"neighbors"`

	// MaxNeighbors caps neighbor lists requested at the API boundary.
	// Default: 200.
	MaxNeighbors int `json:"max_neighbors"`

	// RecursiveDepth is the neighbor search depth used by Recommend.
	// 1 means single-hop.
	// Default: 1.
	RecursiveDepth int `json:"recursive_depth"`

	// SearchDepth is the default depth of an explicit multi-hop neighbor search.
	// Default: 2.
	SearchDepth int `json:"search_depth"`

	// DecayRate multiplies the weight at each additional hop.
	// Default: 0.6.
	DecayRate float64 `json:"decay_rate"`

	// MaxDepth clamps the depth of any multi-hop search.
	// Default: 4.
	MaxDepth int `json:"max_depth"`

	// MaxExpansions caps the traversal frames expanded per multi-hop search.
	// A search over U users expands about U frames at depth 2 and about U²
	// at depth 3, so the default covers depth 3 only up to roughly 220
	// users. Past that, depth 3 searches (console option 4, depth=3 on the
	// API) stop at the budget and return weights that depend on store
	// order. Raise it for larger stores.
	// Default: 50000.
	MaxExpansions int `json:"max_expansions"`
}

// DefaultConfig returns the default recommender configuration.
func DefaultConfig() *Config {
	return &Config{
		GenreMinRating: 3.5,
		LikeMinRating:  3.5,
		DefaultN:       10,
		MaxN:           100,
		Neighbors:      20,
		MaxNeighbors:   200,
		RecursiveDepth: 1,
		SearchDepth:    2,
		DecayRate:      0.6,
		MaxDepth:       4,
		MaxExpansions:  50000,
	}
}

// withDefaults returns a copy with zero fields replaced by defaults.
func (c *Config) withDefaults() Config {
	def := DefaultConfig()
	if c == nil {
		return *def
	}
	out := *c
	if out.GenreMinRating <= 0 {
		out.GenreMinRating = def.GenreMinRating
	}
	if out.LikeMinRating <= 0 {
		out.LikeMinRating = def.LikeMinRating
	}
	if out.DefaultN <= 0 {
		out.DefaultN = def.DefaultN
	}
	if out.MaxN <= 0 {
		out.MaxN = def.MaxN
	}
	if out.Neighbors <= 0 {
		out.Neighbors = def.Neighbors
	}
	if out.MaxNeighbors <= 0 {
		out.MaxNeighbors = def.MaxNeighbors
	}
	if out.RecursiveDepth <= 0 {
		out.RecursiveDepth = def.RecursiveDepth
	}
	if out.SearchDepth <= 0 {
		out.SearchDepth = def.SearchDepth
	}
	if out.DecayRate <= 0 {
		out.DecayRate = def.DecayRate
	}
	if out.MaxDepth <= 0 {
		out.MaxDepth = def.MaxDepth
	}
	if out.MaxExpansions <= 0 {
		out.MaxExpansions = def.MaxExpansions
	}
	return out
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.GenreMinRating < 0.5 || c.GenreMinRating > 5 {
		return fmt.Errorf("genre_min_rating must be in [0.5, 5], got %v", c.GenreMinRating)
	}
	if c.LikeMinRating < 0.5 || c.LikeMinRating > 5 {
		return fmt.Errorf("like_min_rating must be in [0.5, 5], got %v", c.LikeMinRating)
	}
	if c.DefaultN < 1 {
		return fmt.Errorf("default_n must be positive, got %d", c.DefaultN)
	}
	if c.MaxN < c.DefaultN {
		return fmt.Errorf("max_n must be >= default_n (%d), got %d", c.DefaultN, c.MaxN)
	}
	if c.Neighbors < 1 {
		return fmt.Errorf("neighbors must be positive, got %d", c.Neighbors)
	}
	if c.MaxNeighbors < c.Neighbors {
		return fmt.Errorf("max_neighbors must be >= neighbors (%d), got %d", c.Neighbors, c.MaxNeighbors)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	if c.RecursiveDepth < 1 || c.RecursiveDepth > c.MaxDepth {
		return fmt.Errorf("recursive_depth must be in [1, %d], got %d", c.MaxDepth, c.RecursiveDepth)
	}
	if c.SearchDepth < 1 || c.SearchDepth > c.MaxDepth {
		return fmt.Errorf("search_depth must be in [1, %d], got %d", c.MaxDepth, c.SearchDepth)
	}
	if c.DecayRate <= 0 || c.DecayRate > 1 {
		return fmt.Errorf("decay_rate must be in (0, 1], got %v", c.DecayRate)
	}
	if c.MaxExpansions < 1 {
		return fmt.Errorf("max_expansions must be positive, got %d", c.MaxExpansions)
	}
	return nil
}
