// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package middleware provides HTTP middleware components for the API server.

Key Components:

  - RequestID: UUID-based request tracking, seeding the logging context
  - AccessLog: one structured log line per request, warn above a latency threshold
  - PrometheusMetrics: request count, latency and in-flight instrumentation

Middleware Stack:

The router applies them in this order:

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(0))
	r.Use(middleware.PrometheusMetrics)

All middleware use the standard func(http.Handler) http.Handler shape so they
compose with chi and its ecosystem.
*/
package middleware
