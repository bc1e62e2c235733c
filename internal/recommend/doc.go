// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package recommend implements the two recommendation strategies of CineMatch.

# Strategies

GenreRecommender scores the genres of the movies a user rated highly and
recommends unseen movies from those genres, best average rating first.

UserSimilarityRecommender compares users by the Jaccard similarity of the
sets of movies they rated. Neighbors are found either directly (single
hop) or through a depth-bounded "friends of friends" traversal in which
each additional hop multiplies the similarity by a decay factor. Movies
liked by the neighbors and not yet seen by the user are ranked by how many
neighbors liked them, then by average rating.

Both types implement Recommender and share the helpers in helpers.go.

# Multi-hop traversal

The traversal is an explicit depth-first stack of frames. A frame carries
the user being expanded, the remaining depth, the accumulated decay and
the chain of ancestors on its path. Only ancestors are excluded when
expanding a frame, so the same user may be reached through several paths;
the highest weight wins. The number of frames expanded per call is capped
by Config.MaxExpansions and the context is checked while expanding.

Cost grows combinatorially with depth. Depth 2 is the intended default;
depths above Config.MaxDepth are clamped.

# Consistency

No results are cached. Every call reads the current state of the catalog
and rating store, so a live rating is reflected by the next call.
*/
package recommend
