// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/dataset"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/validation"
)

// recentRatingsShown is how many of a user's latest ratings the stats
// endpoint lists.
const recentRatingsShown = 5

// RatedMovie is one entry of a user's rating history.
type RatedMovie struct {
	MovieID int     `json:"movie_id"`
	Title   string  `json:"title"`
	Rating  float64 `json:"rating"`
}

// UserStatsResponse is the payload of GET /users/{userID}/stats.
type UserStatsResponse struct {
	UserID        int          `json:"user_id"`
	TotalRated    int          `json:"total_rated"`
	AverageRating float64      `json:"average_rating"`
	Recent        []RatedMovie `json:"recent"`
}

// RateMovieResponse is the payload of POST /users/{userID}/ratings.
type RateMovieResponse struct {
	dataset.RatingChange
	Movie catalog.Movie `json:"movie"`
}

// GetMovie handles GET /api/v1/movies/{movieID}.
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	movieID, verr := pathInt(r, "movieID")
	if verr != nil {
		rw.ValidationError(verr)
		return
	}

	movie, ok := h.data.Catalog.Get(movieID)
	if !ok {
		rw.NotFound("Movie not found")
		return
	}
	rw.Success(movie)
}

// UserStats handles GET /api/v1/users/{userID}/stats.
// Unknown users get zero totals and an empty history.
func (h *Handler) UserStats(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, verr := pathInt(r, "userID")
	if verr != nil {
		rw.ValidationError(verr)
		return
	}

	stats, _ := h.data.Ratings.Stats(userID)
	recent := h.data.Ratings.Recent(userID, recentRatingsShown)

	resp := UserStatsResponse{
		UserID:        userID,
		TotalRated:    stats.TotalRated,
		AverageRating: stats.AverageRating,
		Recent:        make([]RatedMovie, 0, len(recent)),
	}
	for _, rating := range recent {
		entry := RatedMovie{MovieID: rating.MovieID, Rating: rating.Value}
		if movie, ok := h.data.Catalog.Get(rating.MovieID); ok {
			entry.Title = movie.Title
		}
		resp.Recent = append(resp.Recent, entry)
	}

	rw.Success(resp)
}

// RateMovie handles POST /api/v1/users/{userID}/ratings.
// Responds 201 for a first rating of the movie and 200 for an update.
func (h *Handler) RateMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, verr := pathInt(r, "userID")
	if verr != nil {
		rw.ValidationError(verr)
		return
	}

	var req RateMovieRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		rw.BadRequest("Request body must be JSON: {\"movie_id\": <int>, \"rating\": <0.5-5.0>}")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	if !h.data.Catalog.Has(req.MovieID) {
		rw.NotFound("Movie not found")
		return
	}

	change := h.data.RecordRating(userID, req.MovieID, req.Rating)
	movie, _ := h.data.Catalog.Get(req.MovieID)

	logging.Ctx(r.Context()).Info().
		Int("user_id", userID).
		Int("movie_id", req.MovieID).
		Float64("rating", req.Rating).
		Bool("updated", change.Updated).
		Bool("new_user", change.NewUser).
		Msg("Rating recorded")

	resp := RateMovieResponse{RatingChange: change, Movie: movie}
	if change.Updated {
		rw.Success(resp)
		return
	}
	rw.Created(resp)
}
