// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Map API server.

Quickly Map is an electoral map editor: regions carry a fixed number of
votes split between candidates, and every edit recomputes each region's
winners, its fill and the overall totals.

# Starting the Server

Configuration comes from flags, the environment, or a .env file:

	DATABASE_URL=quickly-map.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
  - ADMIN_KEY_SALT (--admin-salt): Secret for admin key HMAC
  - MAP_SLUG_SALT (--slug-salt): Secret for snapshot share slugs

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres

# Architecture

  - engine: Reconciliation, winners, fills, totals and edit sessions
  - luma: Hex color blending and luminance
  - handlers: HTTP request handlers (maps, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain, request and response types
  - auth: Admin keys and share slugs
  - db: Connection and schema creation
  - cliparse: Configuration parsing
*/
package main
