package room

import (
	"sync"

	"github.com/nahtanPNG/spy-game-backend/internal/models"
)

// Store keeps active rooms in memory, keyed by room code. It is process-local
// and non-persistent; a room exists here iff it has at least one player.
type Store struct {
	mu    sync.RWMutex
	rooms map[string]*models.Room
}

// NewStore initializes and returns an empty Store.
func NewStore() *Store {
	return &Store{
		rooms: make(map[string]*models.Room),
	}
}

// Get retrieves a room by code.
func (s *Store) Get(code string) (*models.Room, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rooms[code]
	return r, ok
}

// Set stores a room under its code.
func (s *Store) Set(code string, r *models.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[code] = r
}

// Delete removes a room by code.
func (s *Store) Delete(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
}

// List returns a copy of the room map. Returning a copy lets callers iterate
// for sweeps or stats without holding the store lock.
func (s *Store) List() map[string]*models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rooms := make(map[string]*models.Room, len(s.rooms))
	for code, r := range s.rooms {
		rooms[code] = r
	}
	return rooms
}

// Len returns the number of stored rooms.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}
