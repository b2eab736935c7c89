// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"sync"
	"time"

	"github.com/danielhkuo/quickly-map/auth"
	"github.com/danielhkuo/quickly-map/engine"
)

// MapEntry is one open map: its title and the session that owns its state
type MapEntry struct {
	ID        string
	Title     string
	Session   *engine.Session
	CreatedAt time.Time
}

// MapStore keeps open maps in memory for the lifetime of the server
type MapStore struct {
	mu   sync.RWMutex
	maps map[string]*MapEntry
}

func NewMapStore() *MapStore {
	return &MapStore{maps: make(map[string]*MapEntry)}
}

// Add stores a session under a newly generated map id
func (s *MapStore) Add(title string, session *engine.Session) (*MapEntry, error) {
	id, err := auth.GenerateID(16)
	if err != nil {
		return nil, err
	}
	entry := &MapEntry{
		ID:        id,
		Title:     title,
		Session:   session,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.maps[id] = entry
	s.mu.Unlock()
	return entry, nil
}

func (s *MapStore) Get(id string) (*MapEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.maps[id]
	return entry, ok
}
