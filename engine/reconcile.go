// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"
	"slices"

	"github.com/danielhkuo/quickly-map/models"
)

// Reconcile returns a copy of region whose counts sum exactly to its value.
//
// Missing capacity goes to the Tossup entry at index 0. Excess is removed one
// vote at a time, cycling through the entries in list order and skipping
// entries already at zero, so the reduction is spread rather than drained
// from a single candidate. The input region is never modified.
func Reconcile(region models.Region) (models.Region, error) {
	out := cloneRegion(region)

	if out.Value < 0 {
		return region, fmt.Errorf("%w: region %s has negative value %d", ErrInvariantViolation, region.ID, region.Value)
	}
	if len(out.Candidates) == 0 || out.Candidates[0].CandidateID != models.TossupID {
		return region, fmt.Errorf("%w: region %s has no tossup entry at index 0", ErrInvariantViolation, region.ID)
	}

	total := 0
	for _, rc := range out.Candidates {
		if rc.Count < 0 {
			return region, fmt.Errorf("%w: region %s has negative count for %q", ErrInvariantViolation, region.ID, rc.CandidateID)
		}
		total += rc.Count
	}

	switch {
	case total < out.Value:
		out.Candidates[0].Count += out.Value - total
	case total > out.Value:
		for total > out.Value {
			removed := 0
			for i := range out.Candidates {
				if out.Candidates[i].Count > 0 {
					out.Candidates[i].Count--
					total--
					removed++
				}
				if total <= out.Value {
					break
				}
			}
			if removed == 0 {
				return region, fmt.Errorf("%w: region %s needs %d fewer votes than it has", ErrInvariantViolation, region.ID, total-out.Value)
			}
		}
	}

	return out, nil
}

func cloneRegion(region models.Region) models.Region {
	region.Candidates = slices.Clone(region.Candidates)
	return region
}

func regionTotal(region models.Region) int {
	total := 0
	for _, rc := range region.Candidates {
		total += rc.Count
	}
	return total
}
