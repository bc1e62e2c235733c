// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package validation

import (
	"math"
	"strings"
	"testing"
)

type rateRequest struct {
	MovieID int     `json:"movie_id" validate:"required,gt=0"`
	Rating  float64 `json:"rating" validate:"rating"`
}

type queryRequest struct {
	N     int     `json:"n" validate:"min=1,max=100"`
	Depth int     `json:"depth" validate:"min=1,max=4"`
	Decay float64 `json:"decay" validate:"gt=0,lte=1"`
}

func TestGetValidatorSingleton(t *testing.T) {
	t.Parallel()

	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestIsValidRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value float64
		want  bool
	}{
		{0.5, true},
		{1.0, true},
		{3.5, true},
		{5.0, true},
		{0.0, false},
		{0.25, false},
		{3.7, false},
		{5.5, false},
		{-1, false},
		{math.NaN(), false},
	}

	for _, tt := range tests {
		if got := IsValidRating(tt.value); got != tt.want {
			t.Errorf("IsValidRating(%v) = %v, want %v", tt.value, got, tt.want)
		}
		if err := ValidateRating(tt.value); (err == nil) != tt.want {
			t.Errorf("ValidateRating(%v) = %v, want valid=%v", tt.value, err, tt.want)
		}
	}
}

func TestValidateStructRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     rateRequest
		wantField string
	}{
		{"valid", rateRequest{MovieID: 1, Rating: 4.5}, ""},
		{"missing movie", rateRequest{Rating: 4.5}, "movie_id"},
		{"bad increment", rateRequest{MovieID: 3, Rating: 4.2}, "rating"},
		{"out of range", rateRequest{MovieID: 3, Rating: 6}, "rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			verr := ValidateStruct(&tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			if got := verr.Errors()[0].Field(); got != tt.wantField {
				t.Errorf("field = %q, want %q", got, tt.wantField)
			}
			apiErr := verr.ToAPIError()
			if apiErr.Code != ErrCodeValidation {
				t.Errorf("code = %q, want %q", apiErr.Code, ErrCodeValidation)
			}
			if !strings.Contains(apiErr.Message, tt.wantField) {
				t.Errorf("message %q should mention %q", apiErr.Message, tt.wantField)
			}
		})
	}
}

func TestValidateStructMultipleErrors(t *testing.T) {
	t.Parallel()

	verr := ValidateStruct(&queryRequest{N: 0, Depth: 9, Decay: 0})
	if verr == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	if len(verr.Errors()) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(verr.Errors()), verr)
	}

	apiErr := verr.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 3 {
		t.Errorf("Details[fields] = %v, want three entries", apiErr.Details["fields"])
	}
	for _, want := range []string{"n must be at least 1", "depth must be at most 4", "decay must be greater than 0"} {
		if !strings.Contains(apiErr.Message, want) {
			t.Errorf("message %q missing %q", apiErr.Message, want)
		}
	}
}

func TestNewFieldError(t *testing.T) {
	t.Parallel()

	verr := NewFieldError("n", "integer", "abc", "n must be an integer")
	apiErr := verr.ToAPIError()
	if apiErr.Code != ErrCodeValidation {
		t.Errorf("code = %q, want %q", apiErr.Code, ErrCodeValidation)
	}
	if apiErr.Message != "n must be an integer" {
		t.Errorf("message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "n" || apiErr.Details["value"] != "abc" {
		t.Errorf("details = %v", apiErr.Details)
	}
}

func TestValidateStructLteField(t *testing.T) {
	t.Parallel()

	type bounded struct {
		N   int `json:"n" validate:"min=1,ltefield=Max"`
		Max int `json:"-"`
	}

	if verr := ValidateStruct(&bounded{N: 5, Max: 5}); verr != nil {
		t.Errorf("ValidateStruct() = %v, want nil at the bound", verr)
	}
	verr := ValidateStruct(&bounded{N: 6, Max: 5})
	if verr == nil {
		t.Fatal("ValidateStruct() = nil, want error above the bound")
	}
	if got := verr.Errors()[0].Error(); got != "n exceeds the configured maximum" {
		t.Errorf("message = %q", got)
	}
}
