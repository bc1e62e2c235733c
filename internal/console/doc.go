// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package console provides the interactive terminal front end.
//
// Run prints a demonstration for one test user (user statistics, preferred
// genres, both recommenders and their comparison) and then loops over a
// numbered menu:
//
//	1. Show genre-based demo
//	2. Show user-similarity demo
//	3. Compare recommenders
//	4. Interactive user-similarity (choose depth)
//	5. Rate a movie
//	6. Exit
//
// Input comes from any io.Reader and output goes to any io.Writer, so the
// same code serves os.Stdin and tests. Blank or invalid user ids select the
// smallest user id in the dataset.
package console
