// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and manages the schema.

# Drivers

Open picks the driver from the configured database type:

	sqlite   → modernc.org/sqlite (pure Go, default)
	postgres → github.com/lib/pq

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

# Schema Creation

CreateSchema creates all tables with IF NOT EXISTS:

	err := db.CreateSchema(conn)

# Tables

result_snapshot: Published results of a map

  - id: Primary key
  - map_id: The map the snapshot was taken from
  - title: Map title at publish time
  - share_slug: Unique public URL slug
  - computed_at: Publish timestamp
  - payload: JSON-encoded totals, margin totals and leaderboard

Maps themselves live in memory for the lifetime of the server; only
published results are stored.
*/
package db
