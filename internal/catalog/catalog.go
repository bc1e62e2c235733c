// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import "sync"

// Catalog is the process-wide movie store. It is safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	movies map[int]*Movie
	order  []int
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{movies: make(map[int]*Movie)}
}

// Add inserts a movie. A duplicate id keeps the first entry and returns false.
// The aggregate of the given movie is reset; ratings arrive through RecordRating.
func (c *Catalog) Add(id int, title string, genres []string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.movies[id]; exists {
		return false
	}
	c.movies[id] = &Movie{
		ID:     id,
		Title:  title,
		Genres: append([]string(nil), genres...),
	}
	c.order = append(c.order, id)
	return true
}

// Get returns a snapshot of the movie with the given id.
func (c *Catalog) Get(id int) (Movie, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m, ok := c.movies[id]
	if !ok {
		return Movie{}, false
	}
	return m.clone(), true
}

// Has reports whether id is in the catalog.
func (c *Catalog) Has(id int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.movies[id]
	return ok
}

// AverageRating returns the current average rating of a movie, 0 if unknown.
func (c *Catalog) AverageRating(id int) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if m, ok := c.movies[id]; ok {
		return m.AverageRating
	}
	return 0
}

// AllIDs returns every movie id in load order.
func (c *Catalog) AllIDs() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]int(nil), c.order...)
}

// Movies returns snapshots of every movie in load order.
func (c *Catalog) Movies() []Movie {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Movie, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.movies[id].clone())
	}
	return out
}

// RecordRating folds a rating into the movie's aggregate.
// An unknown id is a no-op and returns false.
func (c *Catalog) RecordRating(id int, value float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, ok := c.movies[id]
	if !ok {
		return false
	}
	m.AddRating(value)
	return true
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
