// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/cinematch/internal/logging"
)

// ConsoleRunner is an interactive session that returns nil when the user
// asks to leave.
type ConsoleRunner interface {
	Run(ctx context.Context) error
}

// ConsoleService supervises an interactive console session.
//
// A session that ends normally stops the whole supervisor tree, taking the
// HTTP server down with it. A session that fails is restarted by suture.
type ConsoleService struct {
	runner ConsoleRunner
	name   string
	logger zerolog.Logger
}

// NewConsoleService wraps runner as a suture.Service.
func NewConsoleService(runner ConsoleRunner) *ConsoleService {
	return &ConsoleService{
		runner: runner,
		name:   "console",
		logger: logging.WithComponent("console"),
	}
}

// Serve implements suture.Service.
func (c *ConsoleService) Serve(ctx context.Context) error {
	err := c.runner.Run(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("console session failed: %w", err)
	}

	c.logger.Info().Msg("Console session ended, shutting down")
	return suture.ErrTerminateSupervisorTree
}

// String implements fmt.Stringer.
func (c *ConsoleService) String() string {
	return c.name
}
