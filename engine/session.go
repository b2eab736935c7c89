// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/danielhkuo/quickly-map/models"
)

// View is the derived state consumers read after every committed edit.
// It is rebuilt from scratch on each edit and must be treated as read-only.
type View struct {
	Tossup       models.Candidate
	Candidates   []models.Candidate
	Regions      []models.Region
	Results      []models.RegionResult
	Totals       map[string]int
	MarginTotals map[string]models.MarginTotals
}

// Session owns one map's registry and regions. Every edit runs under a
// single lock: the edit is applied to a copy, all regions are reconciled,
// winners are resolved and totals aggregated, and only then is the copy
// committed. A failed edit leaves the previous state untouched.
type Session struct {
	mu          sync.Mutex
	palette     Palette
	registry    *Registry
	regions     []models.Region
	view        View
	subscribers []func(View)
}

// NewSession normalizes the regions against the registry and computes the
// initial view. Every region gets a Tossup entry at index 0 and an entry for
// each registered candidate.
func NewSession(reg *Registry, regions []models.Region, p Palette) (*Session, error) {
	reg = reg.clone()
	seen := make(map[string]bool, len(regions))
	normalized := make([]models.Region, 0, len(regions))
	for _, region := range regions {
		if region.ID == "" {
			return nil, fmt.Errorf("%w: region id is required", ErrInvariantViolation)
		}
		if seen[region.ID] {
			return nil, fmt.Errorf("%w: duplicate region id %q", ErrInvariantViolation, region.ID)
		}
		seen[region.ID] = true
		r, err := normalizeRegion(reg, region)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, r)
	}

	view, err := buildView(reg, normalized, p)
	if err != nil {
		return nil, err
	}
	return &Session{
		palette:  p,
		registry: reg,
		regions:  view.Regions,
		view:     detachView(view),
	}, nil
}

func normalizeRegion(reg *Registry, region models.Region) (models.Region, error) {
	given := make(map[string]models.RegionCandidate, len(region.Candidates))
	for _, rc := range region.Candidates {
		if _, ok := reg.Lookup(rc.CandidateID); !ok {
			return region, fmt.Errorf("%w: region %s references unknown candidate %q", ErrInvariantViolation, region.ID, rc.CandidateID)
		}
		if _, dup := given[rc.CandidateID]; dup {
			return region, fmt.Errorf("%w: region %s lists candidate %q twice", ErrInvariantViolation, region.ID, rc.CandidateID)
		}
		given[rc.CandidateID] = rc
	}

	// entries follow registration order whatever order the input used
	out := region
	out.Candidates = make([]models.RegionCandidate, 0, len(reg.candidates)+1)
	for _, id := range append([]string{models.TossupID}, reg.ids()...) {
		rc, ok := given[id]
		if !ok {
			rc = models.RegionCandidate{CandidateID: id}
		}
		out.Candidates = append(out.Candidates, rc)
	}
	return out, nil
}

// buildView reconciles every region, then resolves winners, then aggregates
func buildView(reg *Registry, regions []models.Region, p Palette) (View, error) {
	reconciled := make([]models.Region, len(regions))
	for i, region := range regions {
		r, err := Reconcile(region)
		if err != nil {
			return View{}, err
		}
		reconciled[i] = r
	}

	results := make([]models.RegionResult, len(reconciled))
	for i, region := range reconciled {
		winners, err := ResolveWinners(reg, region)
		if err != nil {
			return View{}, err
		}
		results[i] = models.RegionResult{
			RegionID: region.ID,
			Winners:  winners,
			Fill:     ComputeFill(region, winners, p),
		}
	}

	candidates := reg.Candidates()
	return View{
		Tossup:       reg.Tossup(),
		Candidates:   candidates,
		Regions:      reconciled,
		Results:      results,
		Totals:       CandidateTotals(candidates, reconciled),
		MarginTotals: CandidateMarginTotals(candidates, reconciled),
	}, nil
}

// detachView deep-copies everything a consumer could mutate so the view
// never aliases session state
func detachView(v View) View {
	v.Tossup = cloneCandidate(v.Tossup)
	v.Candidates = cloneCandidates(v.Candidates)
	v.Regions = cloneRegions(v.Regions)

	results := make([]models.RegionResult, len(v.Results))
	for i, res := range v.Results {
		winners := make([]models.Winner, len(res.Winners))
		for j, w := range res.Winners {
			w.Candidate = cloneCandidate(w.Candidate)
			winners[j] = w
		}
		res.Winners = winners
		res.Fill.Stripes = slices.Clone(res.Fill.Stripes)
		results[i] = res
	}
	v.Results = results

	v.Totals = maps.Clone(v.Totals)
	marginTotals := make(map[string]models.MarginTotals, len(v.MarginTotals))
	for id, tiers := range v.MarginTotals {
		marginTotals[id] = maps.Clone(tiers)
	}
	v.MarginTotals = marginTotals
	return v
}

func cloneCandidate(c models.Candidate) models.Candidate {
	c.Margins = slices.Clone(c.Margins)
	return c
}

func cloneCandidates(candidates []models.Candidate) []models.Candidate {
	out := make([]models.Candidate, len(candidates))
	for i, c := range candidates {
		out[i] = cloneCandidate(c)
	}
	return out
}

func cloneRegions(regions []models.Region) []models.Region {
	out := make([]models.Region, len(regions))
	for i, r := range regions {
		out[i] = cloneRegion(r)
	}
	return out
}

// View returns the most recently committed derived state
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return detachView(s.view)
}

// IsTossup reports whether id is the Tossup candidate of this session
func (s *Session) IsTossup(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.registry.IsTossup(id)
}

// Subscribe registers fn to receive every committed view, in registration
// order, synchronously after the edit commits. The returned func removes it.
func (s *Session) Subscribe(fn func(View)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
	idx := len(s.subscribers) - 1
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if idx < len(s.subscribers) {
			s.subscribers[idx] = nil
		}
	}
}

// apply runs one edit as a single logical step
func (s *Session) apply(edit func(reg *Registry, regions []models.Region) error) (View, error) {
	s.mu.Lock()
	reg := s.registry.clone()
	regions := cloneRegions(s.regions)
	if err := edit(reg, regions); err != nil {
		s.mu.Unlock()
		return View{}, err
	}
	view, err := buildView(reg, regions, s.palette)
	if err != nil {
		s.mu.Unlock()
		return View{}, err
	}
	s.registry = reg
	s.regions = view.Regions
	s.view = detachView(view)
	out := detachView(s.view)
	subs := slices.Clone(s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		if fn != nil {
			fn(detachView(out))
		}
	}
	return out, nil
}
