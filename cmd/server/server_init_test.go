// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/cinematch/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            9090,
			Timeout:         20 * time.Second,
			RequestTimeout:  5 * time.Second,
			ShutdownTimeout: 3 * time.Second,
		},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"https://app.example.com"},
			RateLimitReqs:     42,
			RateLimitWindow:   30 * time.Second,
			RateLimitDisabled: true,
		},
	}
}

func TestNewMiddlewareConfig(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	mw := newMiddlewareConfig(cfg)

	if len(mw.CORSAllowedOrigins) != 1 || mw.CORSAllowedOrigins[0] != "https://app.example.com" {
		t.Errorf("CORSAllowedOrigins = %v", mw.CORSAllowedOrigins)
	}
	if mw.RateLimitRequests != 42 {
		t.Errorf("RateLimitRequests = %d, want 42", mw.RateLimitRequests)
	}
	if mw.RateLimitWindow != 30*time.Second {
		t.Errorf("RateLimitWindow = %v, want 30s", mw.RateLimitWindow)
	}
	if !mw.RateLimitDisabled {
		t.Error("RateLimitDisabled = false, want true")
	}
	if mw.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", mw.RequestTimeout)
	}

	// The middleware config must not alias the loaded configuration.
	mw.CORSAllowedOrigins[0] = "changed"
	if cfg.Security.CORSOrigins[0] != "https://app.example.com" {
		t.Error("CORS origins alias the configuration slice")
	}
}

func TestNewHTTPServer(t *testing.T) {
	t.Parallel()

	server := newHTTPServer(testConfig(), http.NotFoundHandler())

	if server.Addr != "127.0.0.1:9090" {
		t.Errorf("Addr = %q, want %q", server.Addr, "127.0.0.1:9090")
	}
	if server.ReadTimeout != 20*time.Second || server.WriteTimeout != 20*time.Second {
		t.Errorf("timeouts = %v/%v, want 20s", server.ReadTimeout, server.WriteTimeout)
	}
	if server.IdleTimeout != idleTimeout {
		t.Errorf("IdleTimeout = %v, want %v", server.IdleTimeout, idleTimeout)
	}
}

func TestIsCleanStop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want bool
	}{
		{context.Canceled, true},
		{fmt.Errorf("tree: %w", context.Canceled), true},
		{suture.ErrTerminateSupervisorTree, true},
		{errors.New("listen tcp: address already in use"), false},
	}

	for _, tt := range tests {
		if got := isCleanStop(tt.err); got != tt.want {
			t.Errorf("isCleanStop(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
