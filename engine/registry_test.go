// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-map/models"
)

func TestDefaultCandidates(t *testing.T) {
	reg, err := NewRegistry(DefaultCandidates())
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	cands := reg.Candidates()
	if len(cands) != 2 {
		t.Fatalf("expected 2 default candidates, got %d", len(cands))
	}
	for _, c := range cands {
		if _, err := uuid.Parse(c.ID); err != nil {
			t.Errorf("candidate %s id %q is not a UUID", c.Name, c.ID)
		}
		if len(c.Margins) != 4 {
			t.Errorf("candidate %s has %d margins, want 4", c.Name, len(c.Margins))
		}
	}
	if cands[0].ID == cands[1].ID {
		t.Error("default candidates share an id")
	}
}

func TestIsTossup(t *testing.T) {
	reg := testRegistry(t)

	if !reg.IsTossup(models.TossupID) {
		t.Error("expected tossup id to be tossup")
	}
	if reg.IsTossup("a") {
		t.Error("expected a not to be tossup")
	}

	tossup := reg.Tossup()
	if tossup.Name != "Tossup" || len(tossup.Margins) != 1 || tossup.Margins[0].Color != "#cccccc" {
		t.Errorf("unexpected tossup %+v", tossup)
	}
	if c, ok := reg.Lookup(models.TossupID); !ok || c.Name != "Tossup" {
		t.Error("Lookup should find the tossup candidate")
	}
}

func TestNewRegistry_Validation(t *testing.T) {
	margins := []models.Margin{{Color: "#000000"}}

	tests := []struct {
		name       string
		candidates []models.Candidate
	}{
		{"missing name", []models.Candidate{{ID: "a", Margins: margins}}},
		{"no margins", []models.Candidate{{ID: "a", Name: "A"}}},
		{"negative default", []models.Candidate{{ID: "a", Name: "A", DefaultCount: -1, Margins: margins}}},
		{"duplicate id", []models.Candidate{
			{ID: "a", Name: "A", Margins: margins},
			{ID: "a", Name: "B", Margins: margins},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRegistry(tt.candidates); !errors.Is(err, ErrInvalidCandidate) {
				t.Errorf("expected ErrInvalidCandidate, got %v", err)
			}
		})
	}
}

func TestNewRegistry_AssignsIDs(t *testing.T) {
	reg, err := NewRegistry([]models.Candidate{{Name: "Indie", Margins: []models.Margin{{Color: "#00ff00"}}}})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	c := reg.Candidates()[0]
	if reg.IsTossup(c.ID) {
		t.Error("candidate without id must not become tossup")
	}
}

func TestRegistry_AddUpdate(t *testing.T) {
	reg := testRegistry(t)

	added, err := reg.Add("Delta", 2, []models.Margin{{Color: "#123456"}})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if got, ok := reg.Lookup(added.ID); !ok || got.Name != "Delta" {
		t.Errorf("Lookup after Add = %+v, %v", got, ok)
	}

	updated, err := reg.Update(added.ID, "Delta Party", 3, []models.Margin{{Color: "#654321"}, {Color: "#000000"}})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.ID != added.ID || updated.Name != "Delta Party" || len(updated.Margins) != 2 {
		t.Errorf("unexpected updated candidate %+v", updated)
	}

	if _, err := reg.Update(models.TossupID, "X", 0, []models.Margin{{Color: "#000000"}}); !errors.Is(err, ErrTossupImmutable) {
		t.Errorf("expected ErrTossupImmutable, got %v", err)
	}
	if _, err := reg.Update("missing", "X", 0, []models.Margin{{Color: "#000000"}}); !errors.Is(err, ErrCandidateNotFound) {
		t.Errorf("expected ErrCandidateNotFound, got %v", err)
	}
}

func TestRegistry_CandidatesIsCopy(t *testing.T) {
	reg := testRegistry(t)
	cands := reg.Candidates()
	cands[0].Name = "changed"
	cands[0].Margins[0].Color = "#ffffff"

	a, _ := reg.Lookup("a")
	if a.Name != "Alpha" || a.Margins[0].Color != "#111111" {
		t.Errorf("registry mutated through Candidates(): %+v", a)
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"fill", "split", "edit", "disable", "lock"} {
		if m, err := ParseMode(s); err != nil || string(m) != s {
			t.Errorf("ParseMode(%q) = %q, %v", s, m, err)
		}
	}
	if _, err := ParseMode("erase"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("expected ErrInvalidMode, got %v", err)
	}
}
