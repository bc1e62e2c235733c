// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package api provides the HTTP REST API layer for CineMatch.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers over a loaded dataset and recommendation engine
  - Response formatting: standardized JSON envelope with metadata
  - Validation: query and body checks through internal/validation
  - Rate limiting and CORS via go-chi/httprate and go-chi/cors

Endpoints:

	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /api/v1/movies/{movieID}
	GET  /api/v1/users/{userID}/stats
	POST /api/v1/users/{userID}/ratings
	GET  /api/v1/users/{userID}/genres?min_rating=&limit=
	GET  /api/v1/users/{userID}/similar?n=&depth=&decay=
	GET  /api/v1/users/{userID}/recommendations/genre?n=
	GET  /api/v1/users/{userID}/recommendations/similarity?n=&depth=&decay=
	GET  /api/v1/users/{userID}/recommendations/compare?n=
	GET  /metrics

Every JSON response uses the envelope:

	{
	    "success": true,
	    "data": {...},
	    "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}
	}

Errors set success to false and carry {"code", "message", "details"}.
Invalid parameters answer 400 VALIDATION_FAILED. Unknown users are not an
error: they receive empty lists.

Usage Example:

	engine := recommend.NewEngine(ds.Catalog, ds.Ratings, ds.Genres, cfg.Recommend.Engine(), logger)
	router := api.NewRouter(api.NewHandler(ds, engine), &api.ChiMiddlewareConfig{...})
	srv := &http.Server{Addr: ":8080", Handler: router.SetupChi()}
*/
package api
