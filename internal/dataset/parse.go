// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const genreSeparator = "|"

type movieRow struct {
	id     int
	title  string
	genres []string
}

type ratingRow struct {
	userID  int
	movieID int
	value   float64
}

// ErrMissingColumn is returned when a CSV header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	return cr
}

// columnIndex maps required column names to their positions in header.
func columnIndex(header []string, required ...string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		pos[name] = i
	}

	out := make([]int, len(required))
	for i, name := range required {
		p, ok := pos[name]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
		out[i] = p
	}
	return out, nil
}

// readRows calls fn for each data row. Rows with CSV syntax errors are
// counted as skipped; fn reports whether a row was usable.
func readRows(r io.Reader, required []string, fn func(rec []string, cols []int) bool) (int, error) {
	cr := newReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("empty file: %w", io.ErrUnexpectedEOF)
		}
		return 0, fmt.Errorf("read header: %w", err)
	}
	cols, err := columnIndex(header, required...)
	if err != nil {
		return 0, err
	}

	maxCol := 0
	for _, c := range cols {
		if c > maxCol {
			maxCol = c
		}
	}

	skipped := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return skipped, nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				skipped++
				continue
			}
			return skipped, fmt.Errorf("read row: %w", err)
		}
		if len(rec) <= maxCol || !fn(rec, cols) {
			skipped++
		}
	}
}

func parseMovies(r io.Reader) ([]movieRow, int, error) {
	var rows []movieRow
	skipped, err := readRows(r, []string{"movieId", "title", "genres"}, func(rec []string, cols []int) bool {
		id, err := strconv.Atoi(strings.TrimSpace(rec[cols[0]]))
		if err != nil {
			return false
		}
		rows = append(rows, movieRow{
			id:     id,
			title:  rec[cols[1]],
			genres: splitGenres(rec[cols[2]]),
		})
		return true
	})
	return rows, skipped, err
}

func parseRatings(r io.Reader) ([]ratingRow, int, error) {
	var rows []ratingRow
	skipped, err := readRows(r, []string{"userId", "movieId", "rating"}, func(rec []string, cols []int) bool {
		userID, err := strconv.Atoi(strings.TrimSpace(rec[cols[0]]))
		if err != nil {
			return false
		}
		movieID, err := strconv.Atoi(strings.TrimSpace(rec[cols[1]]))
		if err != nil {
			return false
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(rec[cols[2]]), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return false
		}
		rows = append(rows, ratingRow{userID: userID, movieID: movieID, value: value})
		return true
	})
	return rows, skipped, err
}

// splitGenres splits a raw genres column on '|'. An empty column has no genres.
func splitGenres(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, genreSeparator)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
