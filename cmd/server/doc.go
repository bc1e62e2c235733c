// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package main is the entry point for the CineMatch server.

CineMatch loads MovieLens-style movies.csv and ratings.csv files into
memory and serves two recommendation strategies over them: a genre
recommender built on the user's preferred genres, and a user-similarity
recommender built on Jaccard overlap of rated movies, optionally searched
several hops deep with decaying weights.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("cinematch")
	├── APISupervisor ("api-layer")
	│   └── HTTP Server
	└── ConsoleSupervisor ("console-layer")
	    └── Interactive console (CONSOLE_ENABLED=true)

Initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment
 2. Logging: zerolog with JSON or console output
 3. Dataset: movies and ratings parsed concurrently, then the genre index
 4. Engine: genre and user-similarity recommenders over the shared stores
 5. Supervisor Tree: HTTP server and optional console

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests for up to SHUTDOWN_TIMEOUT. Choosing "Exit" in the
console stops the whole tree the same way.

# Example Usage

	export MOVIES_PATH=dataset/movies.csv
	export RATINGS_PATH=dataset/ratings.csv
	export CONSOLE_ENABLED=true
	./cinematch

	curl localhost:8080/api/v1/users/1/recommendations/similarity?depth=2
*/
package main
