// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Candidate: id, name, default count, ordered margin tiers
  - Margin: one tier's color
  - Region: capacity (value), per-candidate votes, disabled/locked flags
  - RegionCandidate: candidate id, count, margin index
  - Winner: derived winner of a region
  - Fill: paint descriptor for a region (color or striped pattern)
  - MarginTotals: sparse margin index → vote total

# Request Types

  - CreateMapRequest: title, regions, candidates
  - CandidateRequest: name, default_count, margins
  - EditRequest: mode, region_id and mode-specific fields

# Response Types

  - CreateMapResponse: map_id, admin_key
  - MapResponse: map state plus per-region results
  - TotalsResponse: totals, margin_totals, leaderboard
  - PublishSnapshotResponse: snapshot_id, share_slug, share_url
  - ResultSnapshot: persisted totals
  - ErrorResponse: error, message

# Constants

Edit modes:

	ModeFill    = "fill"
	ModeSplit   = "split"
	ModeEdit    = "edit"
	ModeDisable = "disable"
	ModeLock    = "lock"

The Tossup candidate always has id TossupID (the empty string).
*/
package models
