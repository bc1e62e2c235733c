// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package ratings

import (
	"sync"
	"sync/atomic"
)

// Rating is a single movie rating in a user's history.
type Rating struct {
	MovieID int     `json:"movie_id"`
	Value   float64 `json:"rating"`
}

// MovieSet is a read-only set of movie ids.
type MovieSet map[int]struct{}

// Has reports whether id is in the set.
func (s MovieSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// UserSet pairs a user with their rated movie ids.
type UserSet struct {
	UserID int
	Movies MovieSet
}

// Stats summarises a user's rating history.
type Stats struct {
	UserID        int     `json:"user_id"`
	TotalRated    int     `json:"total_rated"`
	AverageRating float64 `json:"average_rating"`
}

type userRatings struct {
	values map[int]float64
	order  []int
	rated  MovieSet

	// shared is set once rated has been handed to a reader; the next
	// write then replaces the set instead of mutating it.
	shared atomic.Bool
}

// share marks the rated set as visible to readers and returns it.
func (u *userRatings) share() MovieSet {
	u.shared.Store(true)
	return u.rated
}

// Store maps users to their ratings. It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	users map[int]*userRatings
	order []int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{users: make(map[int]*userRatings)}
}

// RecordRating stores value as userID's rating of movieID, creating the user
// if needed. Re-rating a movie overwrites the previous value and keeps its
// position in the history. It returns the previous value and whether one existed.
func (s *Store) RecordRating(userID, movieID int, value float64) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		u = &userRatings{
			values: make(map[int]float64),
			rated:  MovieSet{},
		}
		s.users[userID] = u
		s.order = append(s.order, userID)
	}

	prev, existed := u.values[movieID]
	u.values[movieID] = value
	if existed {
		return prev, true
	}

	u.order = append(u.order, movieID)

	if u.shared.Load() {
		rated := make(MovieSet, len(u.rated)+1)
		for id := range u.rated {
			rated[id] = struct{}{}
		}
		u.rated = rated
		u.shared.Store(false)
	}
	u.rated[movieID] = struct{}{}

	return 0, false
}

// RatingsOf returns a copy of the user's ratings, empty if the user is unknown.
func (s *Store) RatingsOf(userID int) map[int]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return map[int]float64{}
	}
	out := make(map[int]float64, len(u.values))
	for id, v := range u.values {
		out[id] = v
	}
	return out
}

// History returns the user's ratings in insertion order.
func (s *Store) History(userID int) []Rating {
	return s.Recent(userID, -1)
}

// Recent returns up to n of the user's ratings in insertion order.
// A negative n returns all of them.
func (s *Store) Recent(userID, n int) []Rating {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil
	}
	if n < 0 || n > len(u.order) {
		n = len(u.order)
	}
	out := make([]Rating, 0, n)
	for _, id := range u.order[:n] {
		out = append(out, Rating{MovieID: id, Value: u.values[id]})
	}
	return out
}

// RatedMovieIDs returns the user's rated movie ids, empty if the user is unknown.
// The returned set must not be modified.
func (s *Store) RatedMovieIDs(userID int) MovieSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.users[userID]; ok {
		return u.share()
	}
	return MovieSet{}
}

// Snapshot returns every user's rated set in user insertion order.
func (s *Store) Snapshot() []UserSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]UserSet, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, UserSet{UserID: id, Movies: s.users[id].share()})
	}
	return out
}

// Stats returns the user's rating count and mean rating given.
func (s *Store) Stats(userID int) (Stats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return Stats{UserID: userID}, false
	}
	st := Stats{UserID: userID, TotalRated: len(u.values)}
	if st.TotalRated > 0 {
		var sum float64
		for _, v := range u.values {
			sum += v
		}
		st.AverageRating = sum / float64(st.TotalRated)
	}
	return st, true
}

// HasUser reports whether the user has any entry.
func (s *Store) HasUser(userID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[userID]
	return ok
}

// UserIDs returns every user id in first-seen order.
func (s *Store) UserIDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int(nil), s.order...)
}

// MinUserID returns the smallest user id, false if the store is empty.
func (s *Store) MinUserID() (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return 0, false
	}
	smallest := s.order[0]
	for _, id := range s.order[1:] {
		if id < smallest {
			smallest = id
		}
	}
	return smallest, true
}

// Len returns the number of users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
