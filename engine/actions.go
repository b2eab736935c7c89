// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"
	"slices"

	"github.com/danielhkuo/quickly-map/models"
)

// Dispatch routes an edit request to the action selected by its mode
func (s *Session) Dispatch(req models.EditRequest) (View, error) {
	mode, err := ParseMode(req.Mode)
	if err != nil {
		return View{}, err
	}
	switch mode {
	case ModeFill:
		return s.Fill(req.RegionID, req.CandidateID, req.CycleMargin)
	case ModeSplit:
		return s.Split(req.RegionID, req.Counts)
	case ModeEdit:
		return s.Edit(req.RegionID, req.Value, req.Counts)
	case ModeDisable:
		return s.Disable(req.RegionID)
	case ModeLock:
		return s.Lock(req.RegionID)
	default:
		return View{}, fmt.Errorf("%w: %q", ErrInvalidMode, req.Mode)
	}
}

// Fill gives the whole region to one candidate. When the candidate already
// holds the full capacity and cycleMargin is set, its margin advances to the
// next tier instead, wrapping around. Filling with Tossup clears the region.
func (s *Session) Fill(regionID, candidateID string, cycleMargin bool) (View, error) {
	return s.apply(func(reg *Registry, regions []models.Region) error {
		region, err := editableRegion(regions, regionID, true)
		if err != nil {
			return err
		}
		c, ok := reg.Lookup(candidateID)
		if !ok {
			return fmt.Errorf("%w: %s", ErrCandidateNotFound, candidateID)
		}

		i := entryIndex(region, c.ID)
		if i > 0 && region.Value > 0 && region.Candidates[i].Count == region.Value {
			if cycleMargin {
				next := ClampMargin(region.Candidates[i].Margin, c) + 1
				region.Candidates[i].Margin = next % len(c.Margins)
			}
			return nil
		}

		for j := range region.Candidates {
			region.Candidates[j].Count = 0
			region.Candidates[j].Margin = 0
		}
		region.Candidates[i].Count = region.Value
		return nil
	})
}

// Split sets explicit per-candidate counts. Candidates left out get zero and
// reconciliation then assigns any remainder to Tossup or trims any excess.
func (s *Session) Split(regionID string, counts map[string]int) (View, error) {
	return s.apply(func(reg *Registry, regions []models.Region) error {
		region, err := editableRegion(regions, regionID, true)
		if err != nil {
			return err
		}
		return setCounts(reg, region, counts)
	})
}

// Edit changes a region's capacity and, when counts is non-nil, its votes
func (s *Session) Edit(regionID string, value *int, counts map[string]int) (View, error) {
	return s.apply(func(reg *Registry, regions []models.Region) error {
		region, err := editableRegion(regions, regionID, false)
		if err != nil {
			return err
		}
		if value != nil {
			if *value < 0 {
				return fmt.Errorf("%w: value %d", ErrInvalidCount, *value)
			}
			region.Value = *value
		}
		if counts != nil {
			return setCounts(reg, region, counts)
		}
		return nil
	})
}

// Disable toggles whether the region takes part in the map
func (s *Session) Disable(regionID string) (View, error) {
	return s.apply(func(reg *Registry, regions []models.Region) error {
		region, err := findRegion(regions, regionID)
		if err != nil {
			return err
		}
		if region.PermaLocked || region.Locked {
			return fmt.Errorf("%w: %s", ErrRegionLocked, regionID)
		}
		region.Disabled = !region.Disabled
		return nil
	})
}

// Lock toggles the region's lock. Perma-locked regions never unlock.
func (s *Session) Lock(regionID string) (View, error) {
	return s.apply(func(reg *Registry, regions []models.Region) error {
		region, err := findRegion(regions, regionID)
		if err != nil {
			return err
		}
		if region.PermaLocked {
			return fmt.Errorf("%w: %s", ErrRegionLocked, regionID)
		}
		region.Locked = !region.Locked
		return nil
	})
}

// AddCandidate registers a candidate and gives every region an empty entry
// for it
func (s *Session) AddCandidate(name string, defaultCount int, margins []models.Margin) (models.Candidate, View, error) {
	var added models.Candidate
	view, err := s.apply(func(reg *Registry, regions []models.Region) error {
		c, err := reg.Add(name, defaultCount, margins)
		if err != nil {
			return err
		}
		added = c
		for i := range regions {
			regions[i].Candidates = append(regions[i].Candidates, models.RegionCandidate{CandidateID: c.ID})
		}
		return nil
	})
	return added, view, err
}

func (s *Session) UpdateCandidate(id, name string, defaultCount int, margins []models.Margin) (models.Candidate, View, error) {
	var updated models.Candidate
	view, err := s.apply(func(reg *Registry, regions []models.Region) error {
		c, err := reg.Update(id, name, defaultCount, margins)
		updated = c
		return err
	})
	return updated, view, err
}

// RemoveCandidate moves the candidate's votes to Tossup in every region and
// then drops it from the registry
func (s *Session) RemoveCandidate(id string) (View, error) {
	return s.apply(func(reg *Registry, regions []models.Region) error {
		if reg.IsTossup(id) {
			return ErrTossupImmutable
		}
		for i := range regions {
			region := &regions[i]
			j := slices.IndexFunc(region.Candidates, func(rc models.RegionCandidate) bool {
				return rc.CandidateID == id
			})
			if j <= 0 {
				continue
			}
			region.Candidates[0].Count += region.Candidates[j].Count
			region.Candidates = slices.Delete(region.Candidates, j, j+1)
		}
		return reg.remove(id)
	})
}

func findRegion(regions []models.Region, regionID string) (*models.Region, error) {
	for i := range regions {
		if regions[i].ID == regionID {
			return &regions[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrRegionNotFound, regionID)
}

// editableRegion finds a region that accepts vote edits
func editableRegion(regions []models.Region, regionID string, rejectDisabled bool) (*models.Region, error) {
	region, err := findRegion(regions, regionID)
	if err != nil {
		return nil, err
	}
	if region.PermaLocked || region.Locked {
		return nil, fmt.Errorf("%w: %s", ErrRegionLocked, regionID)
	}
	if rejectDisabled && region.Disabled {
		return nil, fmt.Errorf("%w: %s", ErrRegionDisabled, regionID)
	}
	return region, nil
}

// entryIndex returns the index of the candidate's entry, appending one when
// the region does not list it yet
func entryIndex(region *models.Region, candidateID string) int {
	i := slices.IndexFunc(region.Candidates, func(rc models.RegionCandidate) bool {
		return rc.CandidateID == candidateID
	})
	if i < 0 {
		region.Candidates = append(region.Candidates, models.RegionCandidate{CandidateID: candidateID})
		i = len(region.Candidates) - 1
	}
	return i
}

func setCounts(reg *Registry, region *models.Region, counts map[string]int) error {
	for id, n := range counts {
		if n < 0 {
			return fmt.Errorf("%w: %q has %d", ErrInvalidCount, id, n)
		}
		if _, ok := reg.Lookup(id); !ok {
			return fmt.Errorf("%w: %s", ErrCandidateNotFound, id)
		}
	}
	for i := range region.Candidates {
		region.Candidates[i].Count = 0
	}
	// registry order keeps the resulting entry order deterministic
	for _, c := range append([]models.Candidate{reg.Tossup()}, reg.candidates...) {
		if n, ok := counts[c.ID]; ok {
			region.Candidates[entryIndex(region, c.ID)].Count = n
		}
	}
	return nil
}
