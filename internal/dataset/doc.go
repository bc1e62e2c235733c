// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package dataset loads MovieLens-style CSV files into the in-memory stores
// and owns the live rating entry point.
//
// Input files:
//
//	movies.csv   movieId,title,genres        (genres separated by '|')
//	ratings.csv  userId,movieId,rating[,...] (extra columns ignored)
//
// Columns are located by header name. Rows that cannot be parsed are
// skipped and counted; loading fails only when no movie or no rating
// survives. Ratings for movies missing from movies.csv are kept in the
// rating store but do not touch any movie aggregate.
package dataset
