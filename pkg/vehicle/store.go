package vehicle

import (
	"context"
	"sync"
)

// Store is the hand-off channel between the vehicle step and the reservation
// step: one slot per session, one writer, one reader, last write wins.
type Store interface {
	Put(ctx context.Context, sessionId string, record Record) error
	// Get returns nil when the session has not submitted a vehicle yet.
	Get(ctx context.Context, sessionId string) (*Record, error)
}

type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string]Record{}}
}

func (s *MemoryStore) Put(ctx context.Context, sessionId string, record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[sessionId] = record
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, sessionId string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[sessionId]
	if !ok {
		return nil, nil
	}
	return &record, nil
}
