// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/api"
	"github.com/tomtom215/cinematch/internal/config"
)

// idleTimeout bounds keep-alive connections.
const idleTimeout = 60 * time.Second

// newMiddlewareConfig maps the security and server settings onto the chi
// middleware configuration.
func newMiddlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = append([]string(nil), cfg.Security.CORSOrigins...)
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled
	mw.RequestTimeout = cfg.Server.RequestTimeout
	return mw
}

func newHTTPServer(cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       idleTimeout,
	}
}
