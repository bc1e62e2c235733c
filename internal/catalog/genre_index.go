// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import "sort"

// GenreIndex maps genre labels to movie ids. It is immutable once built.
type GenreIndex struct {
	byGenre map[string][]int
	members map[string]map[int]struct{}
	genres  []string
}

// BuildGenreIndex derives the index from the current catalog contents.
// Movie ids under each genre keep catalog load order.
func BuildGenreIndex(c *Catalog) *GenreIndex {
	idx := &GenreIndex{
		byGenre: make(map[string][]int),
		members: make(map[string]map[int]struct{}),
	}

	for _, m := range c.Movies() {
		for _, g := range m.Genres {
			set, ok := idx.members[g]
			if !ok {
				set = make(map[int]struct{})
				idx.members[g] = set
			}
			if _, dup := set[m.ID]; dup {
				continue
			}
			set[m.ID] = struct{}{}
			idx.byGenre[g] = append(idx.byGenre[g], m.ID)
		}
	}

	idx.genres = make([]string, 0, len(idx.byGenre))
	for g := range idx.byGenre {
		idx.genres = append(idx.genres, g)
	}
	sort.Strings(idx.genres)

	return idx
}

// MovieIDs returns the ids of movies tagged with genre, nil if unknown.
func (idx *GenreIndex) MovieIDs(genre string) []int {
	return append([]int(nil), idx.byGenre[genre]...)
}

// Has reports whether movieID is indexed under genre.
func (idx *GenreIndex) Has(genre string, movieID int) bool {
	_, ok := idx.members[genre][movieID]
	return ok
}

// Genres returns every genre label, sorted.
func (idx *GenreIndex) Genres() []string {
	return append([]string(nil), idx.genres...)
}

// Len returns the number of genres.
func (idx *GenreIndex) Len() int {
	return len(idx.genres)
}
