// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package validation provides boundary validation using go-playground/validator v10.
//
// The recommendation core assumes its inputs are valid. Every rating value
// and query parameter coming from the HTTP API or the interactive console
// passes through this package first.
//
// Custom tags:
//   - rating: a float in [0.5, 5.0] that is a multiple of 0.5
//
// Example:
//
//	type RateMovieRequest struct {
//	    MovieID int     `json:"movie_id" validate:"required,gt=0"`
//	    Rating  float64 `json:"rating" validate:"rating"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    ...
//	}
package validation
