package room

import (
	"log/slog"
	"sync"
)

// Store owns all live rooms, keyed by code. It is the only component that
// creates or removes Room entries.
type Store struct {
	rooms map[string]*Room // code -> room
	mu    sync.RWMutex
}

// NewStore creates an empty room store.
func NewStore() *Store {
	return &Store{
		rooms: make(map[string]*Room),
	}
}

// Create makes a new room with a code unique among live rooms.
func (s *Store) Create(hostID string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]bool, len(s.rooms))
	for code := range s.rooms {
		existing[code] = true
	}

	code := GenerateCode(existing)
	r := NewRoom(code, hostID)
	s.rooms[code] = r

	slog.Info("room created", "code", code, "host", hostID)
	return r
}

// Get returns a room by its code, or nil.
func (s *Store) Get(code string) *Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rooms[code]
}

// Remove deletes a room by its code.
func (s *Store) Remove(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
	slog.Info("room removed", "code", code)
}

// Count returns the number of live rooms.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// All returns a snapshot of the live rooms.
func (s *Store) All() []*Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, r)
	}
	return out
}

// FindByConn returns the room a connection participates in, either as the
// host or as a controller, or nil.
func (s *Store) FindByConn(connID string) *Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rooms {
		if r.HostID == connID || r.HasPlayer(connID) {
			return r
		}
	}
	return nil
}
