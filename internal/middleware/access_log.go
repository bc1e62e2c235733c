// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/logging"
)

// DefaultSlowThreshold is the latency above which requests log at warn.
const DefaultSlowThreshold = time.Second

// AccessLog logs one line per request through the request-scoped logger.
// Requests slower than slow are logged at warn level; pass 0 to use
// DefaultSlowThreshold. Must run after RequestID so the IDs are attached.
func AccessLog(slow time.Duration) func(http.Handler) http.Handler {
	if slow <= 0 {
		slow = DefaultSlowThreshold
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapper, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())
			event := logger.Debug()
			switch {
			case wrapper.statusCode >= http.StatusInternalServerError:
				event = logger.Error()
			case duration > slow:
				event = logger.Warn().Dur("threshold", slow)
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", routePattern(r)).
				Int("status", wrapper.statusCode).
				Dur("duration", duration).
				Msg("Request completed")
		})
	}
}
