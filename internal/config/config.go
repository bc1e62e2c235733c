// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"time"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// Config holds all application configuration.
type Config struct {
	Dataset   DatasetConfig   `koanf:"dataset"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Console   ConsoleConfig   `koanf:"console"`
}

// DatasetConfig locates the two CSV files loaded at startup.
type DatasetConfig struct {
	// MoviesPath is the movies CSV (movieId,title,genres).
	// Default: data/movies.csv
	MoviesPath string `koanf:"movies_path"`

	// RatingsPath is the ratings CSV (userId,movieId,rating,timestamp).
	// Default: data/ratings.csv
	RatingsPath string `koanf:"ratings_path"`
}

// RecommendConfig mirrors recommend.Config with koanf tags.
type RecommendConfig struct {
	GenreMinRating float64 `koanf:"genre_min_rating"`
	LikeMinRating  float64 `koanf:"like_min_rating"`
	DefaultN       int     `koanf:"default_n"`
	MaxN           int     `koanf:"max_n"`
	Neighbors      int     `koanf:"neighbors"`
	MaxNeighbors   int     `koanf:"max_neighbors"`
	RecursiveDepth int     `koanf:"recursive_depth"`
	SearchDepth    int     `koanf:"search_depth"`
	DecayRate      float64 `koanf:"decay_rate"`
	MaxDepth       int     `koanf:"max_depth"`
	MaxExpansions  int     `koanf:"max_expansions"`
}

// Engine converts the section into the recommender's own config type.
func (r RecommendConfig) Engine() *recommend.Config {
	return &recommend.Config{
		GenreMinRating: r.GenreMinRating,
		LikeMinRating:  r.LikeMinRating,
		DefaultN:       r.DefaultN,
		MaxN:           r.MaxN,
		Neighbors:      r.Neighbors,
		MaxNeighbors:   r.MaxNeighbors,
		RecursiveDepth: r.RecursiveDepth,
		SearchDepth:    r.SearchDepth,
		DecayRate:      r.DecayRate,
		MaxDepth:       r.MaxDepth,
		MaxExpansions:  r.MaxExpansions,
	}
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    int           `koanf:"port"`
	Host    string        `koanf:"host"`
	Timeout time.Duration `koanf:"timeout"`

	// RequestTimeout bounds a single request handler, including long
	// multi-hop neighbor searches.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// ShutdownTimeout is how long in-flight requests may drain on shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file:line in logs.
	Caller bool `koanf:"caller"`
}

// ConsoleConfig controls the interactive terminal session.
type ConsoleConfig struct {
	Enabled bool `koanf:"enabled"`

	// TestUserID is the user analysed by the demo. Zero selects user 1,
	// or the smallest loaded user id when user 1 has no ratings.
	TestUserID int `koanf:"test_user_id"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}
