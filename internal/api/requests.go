// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// HTTP request validation structs with go-playground/validator tags.
//
// Upper bounds come from configuration, so each struct carries its limit in
// a json:"-" field and compares against it with ltefield.
//
//	req := RecommendRequest{N: n, MaxN: cfg.MaxN}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    NewResponseWriter(w, r).ValidationError(verr)
//	    return
//	}
package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinematch/internal/validation"
)

// RecommendRequest is the validated query for genre and compare endpoints.
type RecommendRequest struct {
	N    int `json:"n" validate:"min=1,ltefield=MaxN"`
	MaxN int `json:"-"`
}

// SimilarityRequest is the validated query for the neighbor and
// similarity recommendation endpoints.
type SimilarityRequest struct {
	N        int     `json:"n" validate:"min=1,ltefield=MaxN"`
	MaxN     int     `json:"-"`
	Depth    int     `json:"depth" validate:"min=1,ltefield=MaxDepth"`
	MaxDepth int     `json:"-"`
	Decay    float64 `json:"decay" validate:"gt=0,lte=1"`
}

// GenresRequest is the validated query for the preferred-genres endpoint.
// Limit 0 returns every genre.
type GenresRequest struct {
	MinRating float64 `json:"min_rating" validate:"rating"`
	Limit     int     `json:"limit" validate:"min=0"`
}

// RateMovieRequest is the body of POST /users/{userID}/ratings.
type RateMovieRequest struct {
	MovieID int     `json:"movie_id" validate:"required,min=1"`
	Rating  float64 `json:"rating" validate:"required,rating"`
}

// pathInt parses a chi URL parameter as an integer.
func pathInt(r *http.Request, name string) (int, *validation.RequestValidationError) {
	raw := chi.URLParam(r, name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validation.NewFieldError(name, "integer", raw, name+" must be an integer")
	}
	return v, nil
}

// queryInt reads an optional integer query parameter.
func queryInt(r *http.Request, name string, def int) (int, *validation.RequestValidationError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validation.NewFieldError(name, "integer", raw, name+" must be an integer")
	}
	return v, nil
}

// queryFloat reads an optional finite float query parameter.
func queryFloat(r *http.Request, name string, def float64) (float64, *validation.RequestValidationError) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, validation.NewFieldError(name, "number", raw, name+" must be a number")
	}
	return v, nil
}
