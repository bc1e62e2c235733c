// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package config provides centralized configuration management for CineMatch.

Configuration is layered with Koanf v2:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file (CONFIG_PATH, then config.yaml, config.yml,
    /etc/cinematch/config.yaml)
 3. Environment variables

Later layers override earlier ones.

# Environment Variables

Dataset:
  - MOVIES_PATH: movies CSV (default: data/movies.csv)
  - RATINGS_PATH: ratings CSV (default: data/ratings.csv)

Recommenders (RECOMMEND_ prefix):
  - RECOMMEND_GENRE_MIN_RATING, RECOMMEND_LIKE_MIN_RATING (default: 3.5)
  - RECOMMEND_DEFAULT_N (default: 10), RECOMMEND_MAX_N (default: 100)
  - RECOMMEND_NEIGHBORS (default: 20), RECOMMEND_MAX_NEIGHBORS (default: 200)
  - RECOMMEND_RECURSIVE_DEPTH (default: 1), RECOMMEND_SEARCH_DEPTH (default: 2)
  - RECOMMEND_DECAY_RATE (default: 0.6), RECOMMEND_MAX_DEPTH (default: 4)
  - RECOMMEND_MAX_EXPANSIONS (default: 50000)

HTTP Server:
  - HTTP_HOST (default: 0.0.0.0), HTTP_PORT (default: 8080)
  - HTTP_TIMEOUT (default: 30s), REQUEST_TIMEOUT (default: 15s)
  - SHUTDOWN_TIMEOUT (default: 10s)

Security:
  - CORS_ORIGINS: comma-separated list (default: *)
  - RATE_LIMIT_REQUESTS (default: 100), RATE_LIMIT_WINDOW (default: 1m)
  - DISABLE_RATE_LIMIT (default: false)

Logging:
  - LOG_LEVEL (default: info), LOG_FORMAT (default: json), LOG_CALLER

Console:
  - CONSOLE_ENABLED (default: false)
  - TEST_USER_ID (default: 0, meaning user 1 or the smallest user id)

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
