// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"

	"github.com/danielhkuo/quickly-map/models"
)

// ResolveWinners returns the plurality winners of a region.
//
// A disabled region always yields a single Tossup winner with count 0.
// Otherwise every entry tied at the maximum count wins, which includes the
// all-zero case. Each winner's margin is clamped to its candidate's tiers.
func ResolveWinners(reg *Registry, region models.Region) ([]models.Winner, error) {
	if region.Disabled {
		return []models.Winner{{
			Candidate: reg.Tossup(),
			Count:     0,
			Margin:    0,
		}}, nil
	}
	if len(region.Candidates) == 0 {
		return nil, fmt.Errorf("%w: region %s has no candidates", ErrInvariantViolation, region.ID)
	}

	maxValue := region.Candidates[0].Count
	for _, rc := range region.Candidates[1:] {
		maxValue = max(maxValue, rc.Count)
	}

	var winners []models.Winner
	for _, rc := range region.Candidates {
		if rc.Count != maxValue {
			continue
		}
		c, ok := reg.Lookup(rc.CandidateID)
		if !ok {
			return nil, fmt.Errorf("%w: region %s references unknown candidate %q", ErrInvariantViolation, region.ID, rc.CandidateID)
		}
		winners = append(winners, models.Winner{
			Candidate: c,
			Count:     rc.Count,
			Margin:    ClampMargin(rc.Margin, c),
		})
	}
	return winners, nil
}

// ClampMargin bounds a stored margin index to the candidate's current tiers
func ClampMargin(margin int, c models.Candidate) int {
	return min(max(margin, 0), len(c.Margins)-1)
}
