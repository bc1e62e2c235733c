// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package services provides suture.Service wrappers for CineMatch components.

HTTPServerService translates http.Server's blocking ListenAndServe into
suture's context-aware Serve, draining connections on shutdown.

ConsoleService runs an interactive session. A session that ends normally
returns suture.ErrTerminateSupervisorTree so the process exits with it.

Return behavior of Serve:
  - context error: shutdown requested, not restarted
  - other error: crashed, restarted by the supervisor
*/
package services
