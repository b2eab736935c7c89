// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-map/models"
)

// Registry holds the selectable candidates in registration order plus the
// Tossup singleton.
type Registry struct {
	tossup     models.Candidate
	candidates []models.Candidate
}

// TossupCandidate returns the synthetic candidate for unassigned capacity
func TossupCandidate() models.Candidate {
	return models.Candidate{
		ID:           models.TossupID,
		Name:         models.TossupName,
		DefaultCount: 0,
		Margins:      []models.Margin{{Color: models.TossupColor}},
	}
}

// DefaultCandidates returns the two-party starting lineup with fresh ids
func DefaultCandidates() []models.Candidate {
	return []models.Candidate{
		{
			ID:   uuid.NewString(),
			Name: "Democrat",
			Margins: []models.Margin{
				{Color: "#1C408C"},
				{Color: "#577CCC"},
				{Color: "#8AAFFF"},
				{Color: "#949BB3"},
			},
		},
		{
			ID:   uuid.NewString(),
			Name: "Republican",
			Margins: []models.Margin{
				{Color: "#BF1D29"},
				{Color: "#FF5865"},
				{Color: "#FF8B98"},
				{Color: "#CF8980"},
			},
		},
	}
}

// NewRegistry validates the given candidates and builds a registry.
// Candidates without an id are assigned a new UUID.
func NewRegistry(candidates []models.Candidate) (*Registry, error) {
	r := &Registry{tossup: TossupCandidate()}
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c.ID == models.TossupID {
			c.ID = uuid.NewString()
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCandidate, c.ID)
		}
		if err := validateCandidate(c.Name, c.DefaultCount, c.Margins); err != nil {
			return nil, err
		}
		seen[c.ID] = true
		c.Margins = slices.Clone(c.Margins)
		r.candidates = append(r.candidates, c)
	}
	return r, nil
}

func validateCandidate(name string, defaultCount int, margins []models.Margin) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCandidate)
	}
	if defaultCount < 0 {
		return fmt.Errorf("%w: default count must be non-negative", ErrInvalidCandidate)
	}
	if len(margins) == 0 {
		return fmt.Errorf("%w: at least one margin is required", ErrInvalidCandidate)
	}
	return nil
}

func (r *Registry) Tossup() models.Candidate {
	return r.tossup
}

// Candidates returns a copy of the registered candidates, Tossup excluded
func (r *Registry) Candidates() []models.Candidate {
	out := make([]models.Candidate, len(r.candidates))
	for i, c := range r.candidates {
		c.Margins = slices.Clone(c.Margins)
		out[i] = c
	}
	return out
}

// Lookup finds a candidate by id, including Tossup
func (r *Registry) Lookup(id string) (models.Candidate, bool) {
	if r.IsTossup(id) {
		return r.tossup, true
	}
	for _, c := range r.candidates {
		if c.ID == id {
			return c, true
		}
	}
	return models.Candidate{}, false
}

// IsTossup reports whether id belongs to the synthetic Tossup candidate
func (r *Registry) IsTossup(id string) bool {
	return id == r.tossup.ID
}

// Add registers a new candidate with a freshly generated id
func (r *Registry) Add(name string, defaultCount int, margins []models.Margin) (models.Candidate, error) {
	if err := validateCandidate(name, defaultCount, margins); err != nil {
		return models.Candidate{}, err
	}
	c := models.Candidate{
		ID:           uuid.NewString(),
		Name:         name,
		DefaultCount: defaultCount,
		Margins:      slices.Clone(margins),
	}
	r.candidates = append(r.candidates, c)
	return c, nil
}

// Update replaces a candidate's editable fields; the id never changes
func (r *Registry) Update(id, name string, defaultCount int, margins []models.Margin) (models.Candidate, error) {
	if r.IsTossup(id) {
		return models.Candidate{}, ErrTossupImmutable
	}
	if err := validateCandidate(name, defaultCount, margins); err != nil {
		return models.Candidate{}, err
	}
	i := r.index(id)
	if i < 0 {
		return models.Candidate{}, fmt.Errorf("%w: %s", ErrCandidateNotFound, id)
	}
	r.candidates[i].Name = name
	r.candidates[i].DefaultCount = defaultCount
	r.candidates[i].Margins = slices.Clone(margins)
	return r.candidates[i], nil
}

// remove drops a candidate. Callers migrate region votes first.
func (r *Registry) remove(id string) error {
	if r.IsTossup(id) {
		return ErrTossupImmutable
	}
	i := r.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrCandidateNotFound, id)
	}
	r.candidates = slices.Delete(r.candidates, i, i+1)
	return nil
}

// ids returns the registered candidate ids in registration order
func (r *Registry) ids() []string {
	out := make([]string, len(r.candidates))
	for i, c := range r.candidates {
		out[i] = c.ID
	}
	return out
}

func (r *Registry) index(id string) int {
	return slices.IndexFunc(r.candidates, func(c models.Candidate) bool {
		return c.ID == id
	})
}

func (r *Registry) clone() *Registry {
	return &Registry{tossup: r.tossup, candidates: r.Candidates()}
}
