// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for RecordRecommendation.
const (
	OutcomeServed    = "served"
	OutcomeEmpty     = "empty"
	OutcomeCancelled = "cancelled"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests by strategy and outcome",
		},
		[]string{"strategy", "outcome"},
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent computing recommendations",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"strategy"},
	)

	RecommendationResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of movies returned per recommendation request",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		},
		[]string{"strategy"},
	)

	NeighborSearchExpansions = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "neighbor_search_expansions",
			Help:    "Traversal frames expanded per multi-hop neighbor search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	NeighborSearchTruncated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "neighbor_search_truncated_total",
			Help: "Multi-hop neighbor searches stopped by the expansion budget",
		},
	)

	// Data Metrics
	RatingsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratings_recorded_total",
			Help: "Live ratings recorded, by kind (new, update)",
		},
		[]string{"kind"},
	)

	DatasetMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_movies",
			Help: "Number of movies in the catalog",
		},
	)

	DatasetUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_users",
			Help: "Number of users with at least one rating",
		},
	)

	DatasetGenres = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_genres",
			Help: "Number of distinct genres in the genre index",
		},
	)

	DatasetRowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_rows_skipped_total",
			Help: "Malformed source rows skipped during ingestion",
		},
		[]string{"file"},
	)

	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Time spent loading the dataset",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one recommendation request.
func RecordRecommendation(strategy, outcome string, results int, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(strategy, outcome).Inc()
	RecommendationDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	if outcome != OutcomeCancelled {
		RecommendationResults.WithLabelValues(strategy).Observe(float64(results))
	}
}

// RecordNeighborSearch records the size of a multi-hop traversal.
func RecordNeighborSearch(expansions int, truncated bool) {
	NeighborSearchExpansions.Observe(float64(expansions))
	if truncated {
		NeighborSearchTruncated.Inc()
	}
}

// RecordRating records a live rating submission.
func RecordRating(updated bool) {
	kind := "new"
	if updated {
		kind = "update"
	}
	RatingsRecorded.WithLabelValues(kind).Inc()
}

// RecordDatasetLoad publishes dataset sizes after a load.
func RecordDatasetLoad(movies, users, genres int, skippedMovies, skippedRatings int, duration time.Duration) {
	DatasetMovies.Set(float64(movies))
	DatasetUsers.Set(float64(users))
	DatasetGenres.Set(float64(genres))
	DatasetRowsSkipped.WithLabelValues("movies").Add(float64(skippedMovies))
	DatasetRowsSkipped.WithLabelValues("ratings").Add(float64(skippedRatings))
	DatasetLoadDuration.Observe(duration.Seconds())
}

// SetUserCount updates the user gauge after a live rating registers a new user.
func SetUserCount(users int) {
	DatasetUsers.Set(float64(users))
}
