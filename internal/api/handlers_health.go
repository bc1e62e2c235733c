// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"
)

// HealthLive handles liveness probe requests.
// Always 200 while the process can serve HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests.
// Returns 503 until a dataset with at least one movie is attached.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	movies, users := 0, 0
	if h.data != nil {
		movies = h.data.Catalog.Len()
		users = h.data.Ratings.Len()
	}

	if movies == 0 {
		NewResponseWriter(w, r).ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Dataset not loaded", map[string]interface{}{"movies": movies, "users": users})
		return
	}

	NewResponseWriter(w, r).Success(map[string]interface{}{
		"ready":  true,
		"movies": movies,
		"users":  users,
		"genres": h.data.Genres.Len(),
		"uptime": time.Since(h.startTime).Seconds(),
	})
}
