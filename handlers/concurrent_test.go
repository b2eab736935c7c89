// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/quickly-map/models"
	"github.com/danielhkuo/quickly-map/testutil"
)

// TestConcurrentEdits verifies that simultaneous edits to one map are applied
// one at a time and leave every region consistent
func TestConcurrentEdits(t *testing.T) {
	handler := NewMapHandler(NewMapStore(), testutil.GetTestConfig())
	mapID, adminKey := createMap(t, handler)

	numEditors := 20
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numEditors; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := models.EditRequest{Mode: models.ModeFill, RegionID: "CA", CandidateID: "dem"}
			switch idx % 4 {
			case 1:
				req = models.EditRequest{Mode: models.ModeFill, RegionID: "TX", CandidateID: "rep"}
			case 2:
				req = models.EditRequest{
					Mode:     models.ModeSplit,
					RegionID: "CA",
					Counts:   map[string]int{"dem": idx, "rep": 60 - idx},
				}
			case 3:
				req = models.EditRequest{Mode: models.ModeFill, RegionID: "TX", CandidateID: "dem", CycleMargin: true}
			}

			w := editMap(handler, mapID, adminKey, req)
			if w.Code == http.StatusOK {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numEditors {
		t.Errorf("Expected %d successful edits, got %d", numEditors, successCount.Load())
	}

	entry, ok := handler.store.Get(mapID)
	if !ok {
		t.Fatal("Map disappeared")
	}
	view := entry.Session.View()

	for _, region := range view.Regions {
		total := 0
		for _, rc := range region.Candidates {
			total += rc.Count
		}
		if total != region.Value {
			t.Errorf("Region %s sums to %d, expected %d", region.ID, total, region.Value)
		}
		if region.Candidates[0].CandidateID != models.TossupID {
			t.Errorf("Region %s lost its tossup entry at index 0", region.ID)
		}
	}

	// rep's default count of 5 is the only vote outside the regions
	sum := 0
	for _, n := range view.Totals {
		sum += n
	}
	if sum != 54+40+3+5 {
		t.Errorf("Expected totals to sum to %d, got %d", 54+40+3+5, sum)
	}
}

// TestConcurrentMapCreation verifies the store hands out distinct ids
func TestConcurrentMapCreation(t *testing.T) {
	handler := NewMapHandler(NewMapStore(), testutil.GetTestConfig())

	numMaps := 10
	ids := make([]string, numMaps)
	var wg sync.WaitGroup

	for i := 0; i < numMaps; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			ids[idx], _ = createMap(t, handler)
		}(i)
	}

	wg.Wait()

	seen := make(map[string]bool, numMaps)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("Duplicate map id %s", id)
		}
		seen[id] = true
		if _, ok := handler.store.Get(id); !ok {
			t.Errorf("Map %s not found in store", id)
		}
	}
}
