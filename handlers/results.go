// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-map/auth"
	"github.com/danielhkuo/quickly-map/cliparse"
	"github.com/danielhkuo/quickly-map/engine"
	"github.com/danielhkuo/quickly-map/middleware"
	"github.com/danielhkuo/quickly-map/models"
)

const shareBaseURL = "https://quickly-map.com"

type ResultsHandler struct {
	db    *sql.DB
	store *MapStore
	cfg   cliparse.Config
}

func NewResultsHandler(db *sql.DB, store *MapStore, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, store: store, cfg: cfg}
}

// GetTotals handles GET /maps/{id}/totals
func (h *ResultsHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	entry, ok := lookupMap(h.store, w, r)
	if !ok {
		return
	}
	middleware.JSONResponse(w, http.StatusOK, BuildTotals(entry.Session))
}

// BuildTotals packages both aggregate views plus a leaderboard that leaves
// out Tossup and ranks by total, keeping registration order on ties
func BuildTotals(session *engine.Session) models.TotalsResponse {
	view := session.View()

	leaderboard := make([]models.LeaderboardEntry, 0, len(view.Candidates))
	for _, c := range view.Candidates {
		if session.IsTossup(c.ID) {
			continue
		}
		total := view.Totals[c.ID]
		leaderboard = append(leaderboard, models.LeaderboardEntry{
			CandidateID: c.ID,
			Name:        c.Name,
			Total:       total,
			Display:     humanize.Comma(int64(total)),
		})
	}
	sort.SliceStable(leaderboard, func(i, j int) bool {
		return leaderboard[i].Total > leaderboard[j].Total
	})

	return models.TotalsResponse{
		Totals:       view.Totals,
		MarginTotals: view.MarginTotals,
		Leaderboard:  leaderboard,
	}
}

// PublishSnapshot handles POST /maps/{id}/snapshots
// Stores the current totals under a shareable slug
func (h *ResultsHandler) PublishSnapshot(w http.ResponseWriter, r *http.Request) {
	entry, ok := lookupMap(h.store, w, r)
	if !ok {
		return
	}
	if !authorizeEdit(w, r, entry.ID, h.cfg.AdminKeySalt) {
		return
	}

	snapshotID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate snapshot ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to publish results")
		return
	}
	shareSlug := auth.GenerateShareSlug(snapshotID, h.cfg.MapSlugSalt)

	payload, err := json.Marshal(BuildTotals(entry.Session))
	if err != nil {
		slog.Error("failed to encode snapshot payload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to publish results")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO result_snapshot (id, map_id, title, share_slug, computed_at, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, snapshotID, entry.ID, entry.Title, shareSlug, time.Now().UTC(), string(payload))

	if err != nil {
		slog.Error("failed to insert snapshot", "error", err, "map_id", entry.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save results")
		return
	}

	slog.Info("snapshot published", "map_id", entry.ID, "snapshot_id", snapshotID, "share_slug", shareSlug)

	middleware.JSONResponse(w, http.StatusCreated, models.PublishSnapshotResponse{
		SnapshotID: snapshotID,
		ShareSlug:  shareSlug,
		ShareURL:   shareBaseURL + "/snapshots/" + shareSlug,
	})
}

// GetSnapshot handles GET /snapshots/{slug}
func (h *ResultsHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	shareSlug := r.PathValue("slug")
	if shareSlug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	var snapshot models.ResultSnapshot
	var payload string
	err := h.db.QueryRow(`
		SELECT id, map_id, title, share_slug, computed_at, payload
		FROM result_snapshot
		WHERE share_slug = $1
	`, shareSlug).Scan(
		&snapshot.ID, &snapshot.MapID, &snapshot.Title,
		&snapshot.ShareSlug, &snapshot.ComputedAt, &payload,
	)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Snapshot not found")
		return
	}
	if err != nil {
		slog.Error("failed to query snapshot", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := json.Unmarshal([]byte(payload), &snapshot.Totals); err != nil {
		slog.Error("failed to parse snapshot payload", "error", err, "snapshot_id", snapshot.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to parse results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, snapshot)
}
