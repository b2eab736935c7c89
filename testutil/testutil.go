// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-map/cliparse"
	"github.com/danielhkuo/quickly-map/db"
	"github.com/danielhkuo/quickly-map/models"
)

// TestDBURL is an in-memory SQLite database, fresh per connection
const TestDBURL = "file::memory:"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.DatabaseSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: cliparse.DatabaseSQLite,
		AdminKeySalt: "test-admin-salt",
		MapSlugSalt:  "test-slug-salt",
	}
}

// TestCandidates returns two candidates with fixed ids
func TestCandidates() []models.Candidate {
	return []models.Candidate{
		{
			ID:      "dem",
			Name:    "Democrat",
			Margins: []models.Margin{{Color: "#1C408C"}, {Color: "#577CCC"}, {Color: "#8AAFFF"}},
		},
		{
			ID:           "rep",
			Name:         "Republican",
			DefaultCount: 5,
			Margins:      []models.Margin{{Color: "#BF1D29"}, {Color: "#FF5865"}},
		},
	}
}

// TestRegions returns a small map: two open regions and one perma-locked
func TestRegions() []models.Region {
	return []models.Region{
		{ID: "CA", Value: 54},
		{ID: "TX", Value: 40},
		{ID: "DC", Value: 3, PermaLocked: true},
	}
}

// CreateTestMap creates a map through the handler and returns its id and admin key
func CreateTestMap(t *testing.T, h http.Handler) (mapID, adminKey string) {
	t.Helper()

	req := MakeRequest("POST", "/maps", models.CreateMapRequest{
		Title:      "Test Map",
		Regions:    TestRegions(),
		Candidates: TestCandidates(),
	}, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Failed to create test map: %d %s", w.Code, w.Body.String())
	}

	var resp models.CreateMapResponse
	AssertJSON(t, w, &resp)
	return resp.MapID, resp.AdminKey
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
