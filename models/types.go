// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Edit mode constants
const (
	ModeFill    = "fill"
	ModeSplit   = "split"
	ModeEdit    = "edit"
	ModeDisable = "disable"
	ModeLock    = "lock"
)

// Tossup candidate constants
const (
	TossupID    = ""
	TossupName  = "Tossup"
	TossupColor = "#cccccc"
)

// Domain types

type Margin struct {
	Color string `json:"color"`
}

type Candidate struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	DefaultCount int      `json:"default_count"`
	Margins      []Margin `json:"margins"`
}

// RegionCandidate is one candidate's share of a region's capacity
type RegionCandidate struct {
	CandidateID string `json:"candidate_id"`
	Count       int    `json:"count"`
	Margin      int    `json:"margin"`
}

type Region struct {
	ID          string            `json:"id"`
	Value       int               `json:"value"`
	Candidates  []RegionCandidate `json:"candidates"`
	Disabled    bool              `json:"disabled"`
	Locked      bool              `json:"locked"`
	PermaLocked bool              `json:"perma_locked"`
}

// Winner is derived per region and never stored
type Winner struct {
	Candidate Candidate `json:"candidate"`
	Count     int       `json:"count"`
	Margin    int       `json:"margin"`
}

// Fill describes how a region should be painted.
// Exactly one of Color or PatternKey is set.
type Fill struct {
	Color       string   `json:"color,omitempty"`
	PatternKey  string   `json:"pattern_key,omitempty"`
	Stripes     []string `json:"stripes,omitempty"`
	Width       int      `json:"width,omitempty"`
	TextColor   string   `json:"text_color"`
	Opacity     float64  `json:"opacity"`
	TextOpacity float64  `json:"text_opacity"`
}

// MarginTotals is sparse: a tier with no contributing region is absent
type MarginTotals map[int]int

type RegionResult struct {
	RegionID string   `json:"region_id"`
	Winners  []Winner `json:"winners"`
	Fill     Fill     `json:"fill"`
}

// Request types

type CreateMapRequest struct {
	Title      string      `json:"title"`
	Regions    []Region    `json:"regions"`
	Candidates []Candidate `json:"candidates,omitempty"`
}

type CandidateRequest struct {
	Name         string   `json:"name"`
	DefaultCount int      `json:"default_count"`
	Margins      []Margin `json:"margins"`
}

type EditRequest struct {
	Mode        string         `json:"mode"`
	RegionID    string         `json:"region_id"`
	CandidateID string         `json:"candidate_id,omitempty"`
	CycleMargin bool           `json:"cycle_margin,omitempty"`
	Value       *int           `json:"value,omitempty"`
	Counts      map[string]int `json:"counts,omitempty"`
}

// Response types

type CreateMapResponse struct {
	MapID    string `json:"map_id"`
	AdminKey string `json:"admin_key"`
}

type MapResponse struct {
	MapID      string         `json:"map_id"`
	Title      string         `json:"title"`
	Tossup     Candidate      `json:"tossup"`
	Candidates []Candidate    `json:"candidates"`
	Regions    []Region       `json:"regions"`
	Results    []RegionResult `json:"results"`
	Totals     map[string]int `json:"totals"`
}

type LeaderboardEntry struct {
	CandidateID string `json:"candidate_id"`
	Name        string `json:"name"`
	Total       int    `json:"total"`
	Display     string `json:"display"`
}

type TotalsResponse struct {
	Totals       map[string]int          `json:"totals"`
	MarginTotals map[string]MarginTotals `json:"margin_totals"`
	Leaderboard  []LeaderboardEntry      `json:"leaderboard"`
}

type PublishSnapshotResponse struct {
	SnapshotID string `json:"snapshot_id"`
	ShareSlug  string `json:"share_slug"`
	ShareURL   string `json:"share_url"`
}

type ResultSnapshot struct {
	ID         string         `json:"id"`
	MapID      string         `json:"map_id"`
	Title      string         `json:"title"`
	ShareSlug  string         `json:"share_slug"`
	ComputedAt time.Time      `json:"computed_at"`
	Totals     TotalsResponse `json:"totals"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
