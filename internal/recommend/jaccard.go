// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import "github.com/tomtom215/cinematch/internal/ratings"

// Jaccard returns |a ∩ b| / |a ∪ b|, or 0 when both sets are empty.
func Jaccard(a, b ratings.MovieSet) float64 {
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return 0
	}

	intersection := 0
	for id := range a {
		if _, ok := b[id]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// pairCache memoises Jaccard values between snapshot indices for one call.
type pairCache struct {
	users  []ratings.UserSet
	values map[uint64]float64
}

func newPairCache(users []ratings.UserSet) *pairCache {
	return &pairCache{users: users, values: make(map[uint64]float64)}
}

func (c *pairCache) similarity(i, j int) float64 {
	if i > j {
		i, j = j, i
	}
	key := uint64(i)<<32 | uint64(j)
	if v, ok := c.values[key]; ok {
		return v
	}
	v := Jaccard(c.users[i].Movies, c.users[j].Movies)
	c.values[key] = v
	return v
}
