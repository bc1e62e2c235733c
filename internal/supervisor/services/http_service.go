// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/logging"
)

// DefaultShutdownTimeout bounds connection draining when none is configured.
const DefaultShutdownTimeout = 10 * time.Second

// HTTPServer matches the *http.Server lifecycle methods.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs an HTTP server as a supervised service.
//
// Serve starts ListenAndServe in a goroutine and waits for either context
// cancellation or a server error. On cancellation it calls Shutdown with a
// fresh context bounded by the shutdown timeout.
//
//	server := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
//	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout))
type HTTPServerService struct {
	server          HTTPServer
	addr            string
	shutdownTimeout time.Duration
	name            string
	logger          zerolog.Logger
}

// NewHTTPServerService creates a new HTTP server service. addr is only used
// for log output. A non-positive shutdownTimeout uses DefaultShutdownTimeout.
func NewHTTPServerService(server HTTPServer, addr string, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	return &HTTPServerService{
		server:          server,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		name:            "http-server",
		logger:          logging.WithComponent("http-server"),
	}
}

// Serve implements suture.Service.
//
// http.ErrServerClosed is not treated as a failure. On graceful shutdown the
// context error is returned so suture does not restart the service.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	h.logger.Info().Str("addr", h.addr).Msg("HTTP server listening")

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		h.logger.Info().Dur("timeout", h.shutdownTimeout).Msg("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		<-errCh
		h.logger.Info().Msg("HTTP server stopped")
		return ctx.Err()
	}
}

// String implements fmt.Stringer. Suture uses it in log messages.
func (h *HTTPServerService) String() string {
	return h.name
}
