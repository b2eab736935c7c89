// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package engine keeps an election map's regions consistent and derives
winners and totals from them.

# Pipeline

Every committed edit runs the same steps, in order:

	Reconcile      → counts sum exactly to each region's value
	ResolveWinners → plurality winner set per region
	ComputeFill    → color or tie pattern per region
	CandidateTotals / CandidateMarginTotals

Session wraps the pipeline around a Registry and a region list so an edit
either commits completely or not at all:

	s, err := engine.NewSession(reg, regions, engine.Palette{Blend: luma.Blend, Luma: luma.Luma})
	view, err := s.Fill("CA", candidateID, true)

# Tossup

The Tossup candidate has the empty id and a single grey margin. It always
sits at index 0 of a region's entries and absorbs unassigned capacity.

# Errors

ErrInvariantViolation marks states that should never happen, such as a
region that must shed more votes than it holds or an entry for an unknown
candidate. Out-of-range margins are clamped silently.
*/
package engine
