// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-map/cliparse"
	"github.com/danielhkuo/quickly-map/handlers"
	"github.com/danielhkuo/quickly-map/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Open maps are shared by the map and results handlers
	store := handlers.NewMapStore()
	mapHandler := handlers.NewMapHandler(store, cfg)
	resultsHandler := handlers.NewResultsHandler(db, store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Map sessions
	mux.HandleFunc("POST /maps", middleware.WithLogging(mapHandler.CreateMap))
	mux.HandleFunc("GET /maps/{id}", middleware.WithLogging(mapHandler.GetMap))
	mux.HandleFunc("POST /maps/{id}/edit", middleware.WithLogging(mapHandler.EditRegion))

	// Candidate registry (admin)
	mux.HandleFunc("POST /maps/{id}/candidates", middleware.WithLogging(mapHandler.AddCandidate))
	mux.HandleFunc("PUT /maps/{id}/candidates/{cid}", middleware.WithLogging(mapHandler.UpdateCandidate))
	mux.HandleFunc("DELETE /maps/{id}/candidates/{cid}", middleware.WithLogging(mapHandler.RemoveCandidate))

	// Results
	mux.HandleFunc("GET /maps/{id}/totals", middleware.WithLogging(resultsHandler.GetTotals))
	mux.HandleFunc("POST /maps/{id}/snapshots", middleware.WithLogging(resultsHandler.PublishSnapshot))
	mux.HandleFunc("GET /snapshots/{slug}", middleware.WithLogging(resultsHandler.GetSnapshot))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-map API v1"))
	})

	return mux
}
