// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package catalog holds movie metadata, the running rating aggregate of each
// movie, and the genre index derived from it.
//
// The Catalog is built once by the dataset loader and then only mutated
// through RecordRating, which folds a rating into a movie's count, sum and
// average. Lookups return value copies so callers never share memory with
// the store.
//
// GenreIndex maps a genre label to the ids of the movies carrying it. It is
// built once from a populated Catalog and is read-only afterwards.
package catalog
