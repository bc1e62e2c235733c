// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/dataset"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// Handler serves the recommendation API over a loaded dataset.
type Handler struct {
	data      *dataset.Dataset
	engine    *recommend.Engine
	config    recommend.Config
	startTime time.Time
}

// NewHandler creates a handler. The engine must read from data's stores.
func NewHandler(data *dataset.Dataset, engine *recommend.Engine) *Handler {
	return &Handler{
		data:      data,
		engine:    engine,
		config:    engine.Config(),
		startTime: time.Now(),
	}
}

// respondRecommendError maps recommender errors to responses. The only
// errors recommenders return come from the request context.
func respondRecommendError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.Ctx(r.Context())
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn().Err(err).Msg("Recommendation request timed out")
		NewResponseWriter(w, r).Timeout("Recommendation took too long, try a smaller depth")
	case errors.Is(err, context.Canceled):
		logger.Debug().Msg("Client went away before recommendations were ready")
		NewResponseWriter(w, r).ServiceUnavailable("Request cancelled")
	default:
		logger.Error().Err(err).Msg("Recommendation failed")
		NewResponseWriter(w, r).InternalError("Failed to compute recommendations")
	}
}

// emptyIfNil keeps list payloads encoding as [] rather than null.
func emptyIfNil(movies []catalog.Movie) []catalog.Movie {
	if movies == nil {
		return []catalog.Movie{}
	}
	return movies
}
