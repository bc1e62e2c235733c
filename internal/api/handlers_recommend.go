// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/validation"
)

// GenresResponse is the payload of GET /users/{userID}/genres.
type GenresResponse struct {
	UserID    int                       `json:"user_id"`
	MinRating float64                   `json:"min_rating"`
	Genres    []recommend.GenreAffinity `json:"genres"`
}

// RecommendationsResponse is the payload of both recommendation endpoints.
type RecommendationsResponse struct {
	UserID   int             `json:"user_id"`
	Strategy string          `json:"strategy"`
	Depth    int             `json:"depth,omitempty"`
	Decay    float64         `json:"decay,omitempty"`
	Movies   []catalog.Movie `json:"movies"`
}

// SimilarUsersResponse is the payload of GET /users/{userID}/similar.
type SimilarUsersResponse struct {
	UserID    int                         `json:"user_id"`
	Decay     float64                     `json:"decay"`
	Neighbors []recommend.SimilarityScore `json:"neighbors"`
	Search    recommend.SearchStats       `json:"search"`
}

// CompareResponse is the payload of GET /users/{userID}/recommendations/compare.
type CompareResponse struct {
	UserID int `json:"user_id"`
	recommend.Comparison
}

// PreferredGenres handles GET /api/v1/users/{userID}/genres.
func (h *Handler) PreferredGenres(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, verr := pathInt(r, "userID")
	if verr != nil {
		rw.ValidationError(verr)
		return
	}

	req := GenresRequest{}
	if req.MinRating, verr = queryFloat(r, "min_rating", h.config.GenreMinRating); verr != nil {
		rw.ValidationError(verr)
		return
	}
	if req.Limit, verr = queryInt(r, "limit", 0); verr != nil {
		rw.ValidationError(verr)
		return
	}
	if verr = validation.ValidateStruct(&req); verr != nil {
		rw.ValidationError(verr)
		return
	}

	genres := h.engine.Genre.PreferredGenres(userID, req.MinRating)
	if req.Limit > 0 && len(genres) > req.Limit {
		genres = genres[:req.Limit]
	}
	if genres == nil {
		genres = []recommend.GenreAffinity{}
	}

	rw.SuccessList(GenresResponse{UserID: userID, MinRating: req.MinRating, Genres: genres}, len(genres))
}

// parseRecommendRequest reads userID and n for the genre and compare endpoints.
func (h *Handler) parseRecommendRequest(r *http.Request) (int, RecommendRequest, *validation.RequestValidationError) {
	userID, verr := pathInt(r, "userID")
	if verr != nil {
		return 0, RecommendRequest{}, verr
	}

	req := RecommendRequest{MaxN: h.config.MaxN}
	if req.N, verr = queryInt(r, "n", h.config.DefaultN); verr != nil {
		return 0, req, verr
	}
	return userID, req, validation.ValidateStruct(&req)
}

// parseSimilarityRequest reads userID, n, depth and decay. defaultN, maxN and
// defaultDepth differ between the neighbor listing and the recommendation
// endpoint.
func (h *Handler) parseSimilarityRequest(r *http.Request, defaultN, maxN, defaultDepth int) (int, SimilarityRequest, *validation.RequestValidationError) {
	userID, verr := pathInt(r, "userID")
	if verr != nil {
		return 0, SimilarityRequest{}, verr
	}

	req := SimilarityRequest{MaxN: maxN, MaxDepth: h.config.MaxDepth}
	if req.N, verr = queryInt(r, "n", defaultN); verr != nil {
		return 0, req, verr
	}
	if req.Depth, verr = queryInt(r, "depth", defaultDepth); verr != nil {
		return 0, req, verr
	}
	if req.Decay, verr = queryFloat(r, "decay", h.config.DecayRate); verr != nil {
		return 0, req, verr
	}
	return userID, req, validation.ValidateStruct(&req)
}

// GenreRecommendations handles GET /api/v1/users/{userID}/recommendations/genre.
func (h *Handler) GenreRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, req, verr := h.parseRecommendRequest(r)
	if verr != nil {
		rw.ValidationError(verr)
		return
	}

	movies, err := h.engine.Genre.Recommend(r.Context(), userID, req.N)
	if err != nil {
		respondRecommendError(w, r, err)
		return
	}

	movies = emptyIfNil(movies)
	rw.SuccessList(RecommendationsResponse{
		UserID:   userID,
		Strategy: recommend.StrategyGenre,
		Movies:   movies,
	}, len(movies))
}

// SimilarUsers handles GET /api/v1/users/{userID}/similar.
// depth 1 is the single-hop Jaccard search; larger depths run the
// decayed multi-hop search and report its traversal stats.
func (h *Handler) SimilarUsers(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, req, verr := h.parseSimilarityRequest(r, h.config.Neighbors, h.config.MaxNeighbors, 1)
	if verr != nil {
		rw.ValidationError(verr)
		return
	}

	neighbors, stats, err := h.engine.Similarity.FindSimilarUsersRecursiveStats(r.Context(), userID, req.Depth, req.N, req.Decay)
	if err != nil {
		respondRecommendError(w, r, err)
		return
	}
	if neighbors == nil {
		neighbors = []recommend.SimilarityScore{}
	}

	rw.SuccessList(SimilarUsersResponse{
		UserID:    userID,
		Decay:     req.Decay,
		Neighbors: neighbors,
		Search:    stats,
	}, len(neighbors))
}

// SimilarityRecommendations handles GET /api/v1/users/{userID}/recommendations/similarity.
func (h *Handler) SimilarityRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, req, verr := h.parseSimilarityRequest(r, h.config.DefaultN, h.config.MaxN, h.config.RecursiveDepth)
	if verr != nil {
		rw.ValidationError(verr)
		return
	}

	movies, err := h.engine.Similarity.RecommendWithOptions(r.Context(), userID, recommend.RecommendOptions{
		N:              req.N,
		RecursiveDepth: req.Depth,
		DecayRate:      req.Decay,
	})
	if err != nil {
		respondRecommendError(w, r, err)
		return
	}

	movies = emptyIfNil(movies)
	rw.SuccessList(RecommendationsResponse{
		UserID:   userID,
		Strategy: recommend.StrategySimilarity,
		Depth:    req.Depth,
		Decay:    req.Decay,
		Movies:   movies,
	}, len(movies))
}

// CompareRecommendations handles GET /api/v1/users/{userID}/recommendations/compare.
func (h *Handler) CompareRecommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, req, verr := h.parseRecommendRequest(r)
	if verr != nil {
		rw.ValidationError(verr)
		return
	}

	cmp, err := h.engine.Compare(r.Context(), userID, req.N)
	if err != nil {
		respondRecommendError(w, r, err)
		return
	}

	cmp.Genre = emptyIfNil(cmp.Genre)
	cmp.Similarity = emptyIfNil(cmp.Similarity)
	cmp.Overlap = emptyIfNil(cmp.Overlap)
	cmp.OnlyGenre = emptyIfNil(cmp.OnlyGenre)
	cmp.OnlySimilarity = emptyIfNil(cmp.OnlySimilarity)

	rw.Success(CompareResponse{UserID: userID, Comparison: cmp})
}
