// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "errors"

var (
	// ErrInvariantViolation means the region or registry state is inconsistent.
	// The edit that produced it is aborted and prior state is kept.
	ErrInvariantViolation = errors.New("invariant violation")

	ErrRegionNotFound    = errors.New("region not found")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrRegionLocked      = errors.New("region is locked")
	ErrRegionDisabled    = errors.New("region is disabled")
	ErrInvalidMode       = errors.New("invalid edit mode")
	ErrInvalidCandidate  = errors.New("invalid candidate")
	ErrInvalidCount      = errors.New("vote counts must be non-negative")
	ErrTossupImmutable   = errors.New("tossup candidate cannot be changed")
)
