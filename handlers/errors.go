// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-map/auth"
	"github.com/danielhkuo/quickly-map/engine"
	"github.com/danielhkuo/quickly-map/middleware"
)

// writeEngineError maps engine errors to HTTP status codes
func writeEngineError(w http.ResponseWriter, err error, mapID string) {
	switch {
	case errors.Is(err, engine.ErrRegionNotFound), errors.Is(err, engine.ErrCandidateNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, engine.ErrRegionLocked), errors.Is(err, engine.ErrRegionDisabled):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, engine.ErrInvalidMode),
		errors.Is(err, engine.ErrInvalidCandidate),
		errors.Is(err, engine.ErrInvalidCount),
		errors.Is(err, engine.ErrTossupImmutable):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, engine.ErrInvariantViolation):
		slog.Error("edit rejected", "map_id", mapID, "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error("unexpected engine error", "map_id", mapID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to apply edit")
	}
}

// authorizeEdit validates the admin key header; it writes the error response
// and returns false when the request may not edit the map
func authorizeEdit(w http.ResponseWriter, r *http.Request, mapID, salt string) bool {
	err := auth.AuthorizeEdit(mapID, r.Header.Get(auth.AdminKeyHeader), salt)
	switch {
	case errors.Is(err, auth.ErrMissingAdminKey):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Admin-Key header required")
		return false
	case err != nil:
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return false
	}
	return true
}
