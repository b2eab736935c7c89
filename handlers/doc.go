// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Map API.

# Handler Types

  - MapHandler: Map creation, region edits and the candidate registry
  - ResultsHandler: Totals, leaderboard and published result snapshots

Open maps live in a MapStore shared by both handlers. Each map owns an
engine.Session, which serializes edits to that map:

	store := handlers.NewMapStore()
	mapHandler := handlers.NewMapHandler(store, cfg)
	resultsHandler := handlers.NewResultsHandler(db, store, cfg)

# Editing

	POST /maps                        → CreateMap (returns admin_key)
	POST /maps/{id}/edit              → EditRegion (fill, split, edit, disable, lock)
	POST /maps/{id}/candidates        → AddCandidate
	PUT /maps/{id}/candidates/{cid}   → UpdateCandidate
	DELETE /maps/{id}/candidates/{cid} → RemoveCandidate

Edit operations require the X-Admin-Key header. A rejected edit leaves the
map exactly as it was and is reported with a 4xx status.

# Results

	GET /maps/{id}/totals     → GetTotals
	POST /maps/{id}/snapshots → PublishSnapshot (admin)
	GET /snapshots/{slug}     → GetSnapshot

Snapshots are the only state written to the database. They freeze the
totals at publish time under a share slug.
*/
package handlers
