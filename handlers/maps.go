// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-map/auth"
	"github.com/danielhkuo/quickly-map/cliparse"
	"github.com/danielhkuo/quickly-map/engine"
	"github.com/danielhkuo/quickly-map/luma"
	"github.com/danielhkuo/quickly-map/middleware"
	"github.com/danielhkuo/quickly-map/models"
)

var mapPalette = engine.Palette{Blend: luma.Blend, Luma: luma.Luma}

type MapHandler struct {
	store *MapStore
	cfg   cliparse.Config
}

func NewMapHandler(store *MapStore, cfg cliparse.Config) *MapHandler {
	return &MapHandler{store: store, cfg: cfg}
}

// CreateMap handles POST /maps
func (h *MapHandler) CreateMap(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMapRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if len(req.Regions) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "at least one region is required")
		return
	}
	for _, region := range req.Regions {
		if region.Value < 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "region value must be non-negative")
			return
		}
	}

	candidates := req.Candidates
	if len(candidates) == 0 {
		candidates = engine.DefaultCandidates()
	}
	reg, err := engine.NewRegistry(candidates)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := engine.NewSession(reg, req.Regions, mapPalette)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.store.Add(req.Title, session)
	if err != nil {
		slog.Error("failed to generate map ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create map")
		return
	}

	mapID := entry.ID
	session.Subscribe(func(v engine.View) {
		slog.Debug("map view updated", "map_id", mapID, "regions", len(v.Regions), "candidates", len(v.Candidates))
	})

	slog.Info("map created", "map_id", entry.ID, "regions", len(req.Regions), "candidates", len(candidates))

	middleware.JSONResponse(w, http.StatusCreated, models.CreateMapResponse{
		MapID:    entry.ID,
		AdminKey: auth.GenerateAdminKey(entry.ID, h.cfg.AdminKeySalt),
	})
}

// GetMap handles GET /maps/{id}
// Returns regions plus the winners and fill of every region
func (h *MapHandler) GetMap(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.lookup(w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, mapResponse(entry, entry.Session.View()))
}

// EditRegion handles POST /maps/{id}/edit
// The mode in the body picks fill, split, edit, disable or lock
func (h *MapHandler) EditRegion(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if !authorizeEdit(w, r, entry.ID, h.cfg.AdminKeySalt) {
		return
	}

	var req models.EditRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.RegionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "region_id is required")
		return
	}

	view, err := entry.Session.Dispatch(req)
	if err != nil {
		writeEngineError(w, err, entry.ID)
		return
	}

	slog.Info("region edited", "map_id", entry.ID, "region_id", req.RegionID, "mode", req.Mode)

	middleware.JSONResponse(w, http.StatusOK, mapResponse(entry, view))
}

// AddCandidate handles POST /maps/{id}/candidates
func (h *MapHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if !authorizeEdit(w, r, entry.ID, h.cfg.AdminKeySalt) {
		return
	}

	var req models.CandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	c, _, err := entry.Session.AddCandidate(req.Name, req.DefaultCount, req.Margins)
	if err != nil {
		writeEngineError(w, err, entry.ID)
		return
	}

	slog.Info("candidate added", "map_id", entry.ID, "candidate_id", c.ID)

	middleware.JSONResponse(w, http.StatusCreated, c)
}

// UpdateCandidate handles PUT /maps/{id}/candidates/{cid}
func (h *MapHandler) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if !authorizeEdit(w, r, entry.ID, h.cfg.AdminKeySalt) {
		return
	}

	var req models.CandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	c, _, err := entry.Session.UpdateCandidate(r.PathValue("cid"), req.Name, req.DefaultCount, req.Margins)
	if err != nil {
		writeEngineError(w, err, entry.ID)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, c)
}

// RemoveCandidate handles DELETE /maps/{id}/candidates/{cid}
// The candidate's votes go to Tossup before it is removed
func (h *MapHandler) RemoveCandidate(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.lookup(w, r)
	if !ok {
		return
	}
	if !authorizeEdit(w, r, entry.ID, h.cfg.AdminKeySalt) {
		return
	}

	candidateID := r.PathValue("cid")
	view, err := entry.Session.RemoveCandidate(candidateID)
	if err != nil {
		writeEngineError(w, err, entry.ID)
		return
	}

	slog.Info("candidate removed", "map_id", entry.ID, "candidate_id", candidateID)

	middleware.JSONResponse(w, http.StatusOK, mapResponse(entry, view))
}

// lookup resolves the {id} path value to an open map
func (h *MapHandler) lookup(w http.ResponseWriter, r *http.Request) (*MapEntry, bool) {
	return lookupMap(h.store, w, r)
}

func lookupMap(store *MapStore, w http.ResponseWriter, r *http.Request) (*MapEntry, bool) {
	mapID := r.PathValue("id")
	if mapID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "map_id is required")
		return nil, false
	}
	entry, ok := store.Get(mapID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Map not found")
		return nil, false
	}
	return entry, true
}

func mapResponse(entry *MapEntry, view engine.View) models.MapResponse {
	return models.MapResponse{
		MapID:      entry.ID,
		Title:      entry.Title,
		Tossup:     view.Tossup,
		Candidates: view.Candidates,
		Regions:    view.Regions,
		Results:    view.Results,
		Totals:     view.Totals,
	}
}
