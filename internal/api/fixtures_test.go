// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/dataset"
	"github.com/tomtom215/cinematch/internal/recommend"
)

const testMoviesCSV = `movieId,title,genres
1,Toy Story (1995),Adventure|Animation|Children|Comedy|Fantasy
2,Jumanji (1995),Adventure|Children|Fantasy
3,Grumpier Old Men (1995),Comedy|Romance
4,Heat (1995),Action|Crime|Thriller
5,Sabrina (1995),Comedy|Romance
`

// User 1 rated {1,3}; Jaccard(1,2) = 1/4, Jaccard(1,3) = 1/3.
const testRatingsCSV = `userId,movieId,rating,timestamp
1,1,5.0,1
1,3,4.0,2
2,1,4.0,3
2,2,4.5,4
2,5,4.0,5
3,3,3.0,6
3,4,5.0,7
`

// envelope decodes the response wrapper, leaving data raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

type testServer struct {
	handler http.Handler
	data    *dataset.Dataset
}

func newTestServer(t *testing.T, mw *ChiMiddlewareConfig) *testServer {
	t.Helper()

	logger := zerolog.New(io.Discard)
	ds, err := dataset.LoadFrom(context.Background(),
		strings.NewReader(testMoviesCSV), strings.NewReader(testRatingsCSV), logger)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.RateLimitDisabled = true
	}

	engine := recommend.NewEngine(ds.Catalog, ds.Ratings, ds.Genres, nil, logger)
	router := NewRouter(NewHandler(ds, engine), mw)
	return &testServer{handler: router.SetupChi(), data: ds}
}

func (s *testServer) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s %s: %v (body %q)", method, target, err, rec.Body.String())
		}
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, v); err != nil {
		t.Fatalf("decode data: %v (raw %s)", err, env.Data)
	}
}

func movieIDsOf(movies []struct {
	ID int `json:"id"`
}) []int {
	ids := make([]int, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}
	return ids
}
