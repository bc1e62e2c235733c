// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"sort"

	"github.com/tomtom215/cinematch/internal/catalog"
)

// Comparison splits two recommendation lists into shared and exclusive movies.
// Genre and Similarity hold the inputs unchanged; the three splits are ordered
// by movie id.
type Comparison struct {
	Genre          []catalog.Movie `json:"genre"`
	Similarity     []catalog.Movie `json:"similarity"`
	Overlap        []catalog.Movie `json:"overlap"`
	OnlyGenre      []catalog.Movie `json:"only_genre"`
	OnlySimilarity []catalog.Movie `json:"only_similarity"`
}

// Compare reports which movies both strategies recommended and which only one did.
func Compare(genreRecs, similarityRecs []catalog.Movie) Comparison {
	inGenre := make(map[int]struct{}, len(genreRecs))
	for _, m := range genreRecs {
		inGenre[m.ID] = struct{}{}
	}
	inSimilarity := make(map[int]struct{}, len(similarityRecs))
	for _, m := range similarityRecs {
		inSimilarity[m.ID] = struct{}{}
	}

	cmp := Comparison{
		Genre:          genreRecs,
		Similarity:     similarityRecs,
		Overlap:        []catalog.Movie{},
		OnlyGenre:      []catalog.Movie{},
		OnlySimilarity: []catalog.Movie{},
	}
	for _, m := range genreRecs {
		if _, ok := inSimilarity[m.ID]; ok {
			cmp.Overlap = append(cmp.Overlap, m)
		} else {
			cmp.OnlyGenre = append(cmp.OnlyGenre, m)
		}
	}
	for _, m := range similarityRecs {
		if _, ok := inGenre[m.ID]; !ok {
			cmp.OnlySimilarity = append(cmp.OnlySimilarity, m)
		}
	}

	sortByID(cmp.Overlap)
	sortByID(cmp.OnlyGenre)
	sortByID(cmp.OnlySimilarity)
	return cmp
}

func sortByID(movies []catalog.Movie) {
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
}
