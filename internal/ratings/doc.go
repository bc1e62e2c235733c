// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package ratings stores every user's movie ratings.
//
// For each user the Store keeps a movie id to rating mapping in insertion
// order and a derived set of rated movie ids. Both are replaced together
// under the store's write lock, so a reader never sees one without the
// other. Rated sets are copy-on-write: a set handed out by Snapshot or
// RatedMovieIDs is never modified afterwards, which lets similarity scans
// run without holding the lock.
//
// Rating values are not validated here; callers validate at the API or
// console boundary.
package ratings
