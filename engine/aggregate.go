// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "github.com/danielhkuo/quickly-map/models"

// CandidateTotals sums every region's votes per candidate id.
// Registered candidates are seeded with their default count so candidates
// without any region still appear. Ids that were not seeded, such as
// Tossup, start from their first region count.
func CandidateTotals(candidates []models.Candidate, regions []models.Region) map[string]int {
	totals := make(map[string]int, len(candidates)+1)
	for _, c := range candidates {
		totals[c.ID] = c.DefaultCount
	}
	for _, region := range regions {
		for _, rc := range region.Candidates {
			totals[rc.CandidateID] += rc.Count
		}
	}
	return totals
}

// CandidateMarginTotals sums votes per candidate per margin tier.
// Seeding puts the default count at tier 0. A tier that no region
// contributes to stays absent rather than zero.
func CandidateMarginTotals(candidates []models.Candidate, regions []models.Region) map[string]models.MarginTotals {
	totals := make(map[string]models.MarginTotals, len(candidates)+1)
	for _, c := range candidates {
		totals[c.ID] = models.MarginTotals{0: c.DefaultCount}
	}
	for _, region := range regions {
		for _, rc := range region.Candidates {
			tiers, ok := totals[rc.CandidateID]
			if !ok {
				tiers = models.MarginTotals{}
				totals[rc.CandidateID] = tiers
			}
			// a missing tier starts at this count
			tiers[rc.Margin] += rc.Count
		}
	}
	return totals
}
