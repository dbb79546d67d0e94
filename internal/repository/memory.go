package repository

import (
	"context"
	"sync"
)

// MemoryStore is an internally-synchronized map store. It is the default
// backend and the reference semantics for the Store interface.
type MemoryStore[T any] struct {
	mu      sync.RWMutex
	records map[string]T
}

// NewMemoryStore creates an empty store.
func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{records: make(map[string]T)}
}

func (s *MemoryStore[T]) Get(_ context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return record, nil
}

func (s *MemoryStore[T]) Put(_ context.Context, id string, record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id] = record
	return nil
}

// ListAll returns a snapshot of all records at call time, in map iteration
// order.
func (s *MemoryStore[T]) ListAll(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]T, 0, len(s.records))
	for _, record := range s.records {
		result = append(result, record)
	}
	return result, nil
}
