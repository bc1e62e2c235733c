// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}
	if cfg.Caller {
		t.Error("expected default caller to be false")
	}
	if !cfg.Timestamp {
		t.Error("expected default timestamp to be true")
	}
}

func TestInit(t *testing.T) {
	var buf bytes.Buffer

	Init(Config{Level: "debug", Format: "json", Timestamp: true, Output: &buf})
	defer Init(DefaultConfig())

	Info().Int("movies", 3).Msg("dataset loaded")

	output := buf.String()
	if !strings.Contains(output, "dataset loaded") {
		t.Errorf("expected output to contain message, got: %s", output)
	}
	if !strings.Contains(output, `"level":"info"`) {
		t.Errorf("expected output to contain level, got: %s", output)
	}
	if !strings.Contains(output, `"movies":3`) {
		t.Errorf("expected output to contain field, got: %s", output)
	}
}

func TestInitConsoleFormat(t *testing.T) {
	var buf bytes.Buffer

	Init(Config{Level: "info", Format: "console", Output: &buf})
	defer Init(DefaultConfig())

	Info().Msg("console line")

	output := buf.String()
	if strings.Contains(output, `"message"`) {
		t.Errorf("console output should not be JSON, got: %s", output)
	}
	if !strings.Contains(output, "console line") {
		t.Errorf("expected output to contain message, got: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"disabled", zerolog.Disabled},
		{"DEBUG", zerolog.DebugLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewTestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewTestLogger(&buf)
	logger.Info().Str("strategy", "genre").Msg("served")

	if !strings.Contains(buf.String(), `"strategy":"genre"`) {
		t.Errorf("expected strategy field, got: %s", buf.String())
	}
}
