// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package logging provides centralized zerolog-based structured logging for CineMatch.
//
// Every component logs through a single global zerolog logger configured at
// startup from the logging section of the application config. JSON output is
// the default; console output is intended for local runs of the interactive
// menu.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Int("movies", n).Msg("Dataset loaded")
//	logging.Ctx(ctx).Warn().Int("user_id", id).Msg("Neighbor search truncated")
//
// # Context Propagation
//
// HTTP middleware stores a request ID in the request context. Ctx(ctx)
// returns a logger carrying request_id and correlation_id fields when they
// are present.
//
// # Suture Integration
//
// The supervisor tree expects an *slog.Logger. NewSlogLogger returns one
// backed by the global zerolog logger so supervisor events share the same
// output and format.
package logging
