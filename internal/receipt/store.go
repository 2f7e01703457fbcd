package receipt

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by a Store when no points exist for an ID.
var ErrNotFound = errors.New("receipt not found")

// Store defines the interface for scored-receipt storage
type Store interface {
	// Put records the points for a receipt ID
	Put(id string, points int) error

	// Get retrieves the points for a receipt ID, or ErrNotFound
	Get(id string) (int, error)
}

// MemoryStore implements the Store interface with an in-process map. It is
// safe for concurrent use; entries live until the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	points map[string]int
}

// NewMemoryStore creates an empty MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{points: make(map[string]int)}
}

// Put records the points for a receipt ID
func (s *MemoryStore) Put(id string, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points[id] = points
	return nil
}

// Get retrieves the points for a receipt ID
func (s *MemoryStore) Get(id string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	points, ok := s.points[id]
	if !ok {
		return 0, ErrNotFound
	}
	return points, nil
}
