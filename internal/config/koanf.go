// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinematch/config.yaml",
	"/etc/cinematch/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	rec := recommend.DefaultConfig()
	return &Config{
		Dataset: DatasetConfig{
			MoviesPath:  "data/movies.csv",
			RatingsPath: "data/ratings.csv",
		},
		Recommend: RecommendConfig{
			GenreMinRating: rec.GenreMinRating,
			LikeMinRating:  rec.LikeMinRating,
			DefaultN:       rec.DefaultN,
			MaxN:           rec.MaxN,
			Neighbors:      rec.Neighbors,
			MaxNeighbors:   rec.MaxNeighbors,
			RecursiveDepth: rec.RecursiveDepth,
			SearchDepth:    rec.SearchDepth,
			DecayRate:      rec.DecayRate,
			MaxDepth:       rec.MaxDepth,
			MaxExpansions:  rec.MaxExpansions,
		},
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			RequestTimeout:  15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Console: ConsoleConfig{
			Enabled:    false,
			TestUserID: 0,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
//
// Precedence is ENV > File > Defaults.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// MOVIES_PATH -> dataset.movies_path
	// RECOMMEND_DECAY_RATE -> recommend.decay_rate
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated environment values into
// string slices. Values that are already slices (from YAML) are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps flat environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Dataset
	"movies_path":  "dataset.movies_path",
	"ratings_path": "dataset.ratings_path",

	// Recommenders
	"recommend_genre_min_rating": "recommend.genre_min_rating",
	"recommend_like_min_rating":  "recommend.like_min_rating",
	"recommend_default_n":        "recommend.default_n",
	"recommend_max_n":            "recommend.max_n",
	"recommend_neighbors":        "recommend.neighbors",
	"recommend_max_neighbors":    "recommend.max_neighbors",
	"recommend_recursive_depth":  "recommend.recursive_depth",
	"recommend_search_depth":     "recommend.search_depth",
	"recommend_decay_rate":       "recommend.decay_rate",
	"recommend_max_depth":        "recommend.max_depth",
	"recommend_max_expansions":   "recommend.max_expansions",

	// Server
	"http_host":        "server.host",
	"http_port":        "server.port",
	"http_timeout":     "server.timeout",
	"request_timeout":  "server.request_timeout",
	"shutdown_timeout": "server.shutdown_timeout",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Console
	"console_enabled": "console.enabled",
	"test_user_id":    "console.test_user_id",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables return "" and are ignored, so unrelated process
// environment never leaks into the config tree.
//
// Examples:
//   - MOVIES_PATH -> dataset.movies_path
//   - HTTP_PORT -> server.port
//   - DISABLE_RATE_LIMIT -> security.rate_limit_disabled
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}

func joinHostPort(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}
