package memory

import (
	"context"
	"sync"

	"github.com/aretw0/typist/pkg/domain"
)

// Store implements ports.MatchInfoStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[int]domain.TextInjectMode
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[int]domain.TextInjectMode),
	}
}

// NewFromMap creates a store seeded with a copy of modes.
func NewFromMap(modes map[int]domain.TextInjectMode) *Store {
	s := NewStore()
	for id, mode := range modes {
		s.data[id] = mode
	}
	return s
}

// ForceMode implements ports.MatchInfoProvider.
func (s *Store) ForceMode(matchID int) (domain.TextInjectMode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mode, ok := s.data[matchID]
	if !ok || !mode.IsOverride() {
		return domain.TextInjectModeDefault, false
	}
	return mode, true
}

// Put records the forced mode of a match.
func (s *Store) Put(ctx context.Context, matchID int, mode domain.TextInjectMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[matchID] = mode
	return nil
}

// Get retrieves the forced mode of a match.
func (s *Store) Get(ctx context.Context, matchID int) (domain.TextInjectMode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mode, ok := s.data[matchID]
	if !ok {
		return domain.TextInjectModeDefault, domain.ErrMatchNotFound
	}
	return mode, nil
}

// Delete removes the entry of a match.
func (s *Store) Delete(ctx context.Context, matchID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, matchID)
	return nil
}

// List returns a copy of every entry, so callers can't mutate the store through it.
func (s *Store) List(ctx context.Context) (map[int]domain.TextInjectMode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int]domain.TextInjectMode, len(s.data))
	for id, mode := range s.data {
		out[id] = mode
	}
	return out, nil
}
