// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Map API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Maps (edits require X-Admin-Key):

	POST   /maps                      - Create map
	GET    /maps/{id}                 - Regions, winners and fills
	POST   /maps/{id}/edit            - Apply one region edit
	POST   /maps/{id}/candidates      - Add candidate
	PUT    /maps/{id}/candidates/{cid} - Update candidate
	DELETE /maps/{id}/candidates/{cid} - Remove candidate

Results:

	GET  /maps/{id}/totals    - Totals, margin totals, leaderboard
	POST /maps/{id}/snapshots - Publish snapshot (admin)
	GET  /snapshots/{slug}    - Published snapshot
*/
package router
