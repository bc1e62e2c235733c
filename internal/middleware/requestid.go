// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package middleware

import (
	"context"
	"net/http"

	"github.com/tomtom215/cinematch/internal/logging"
)

// RequestIDHeader is read from upstream proxies and echoed on responses.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds client-supplied IDs before they reach the logs.
const maxRequestIDLength = 128

// RequestID assigns each request an ID, reusing a sane upstream X-Request-ID,
// and seeds the logging context with request_id, a fresh correlation_id and
// the "http" component logger.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		ctx = logging.ContextWithNewCorrelationID(ctx)
		if _, ok := logging.LoggerFromContext(ctx); !ok {
			ctx = logging.ContextWithLogger(ctx, logging.WithComponent("http"))
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) string {
	return logging.RequestIDFromContext(ctx)
}
