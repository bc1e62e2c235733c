// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package metrics provides Prometheus metrics collection and export for observability.

Metrics are registered on the default registry through promauto and exposed
at /metrics by the HTTP API:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests

Recommendation:
  - recommendations_total{strategy, outcome}
  - recommendation_duration_seconds{strategy}
  - recommendation_results{strategy}
  - neighbor_search_expansions
  - neighbor_search_truncated_total

Data:
  - ratings_recorded_total{kind}
  - dataset_movies, dataset_users, dataset_genres
  - dataset_rows_skipped_total{file}
  - dataset_load_duration_seconds
*/
package metrics
