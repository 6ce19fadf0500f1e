// internal/app/store/events/memory.go
package eventstore

import (
	"context"
	"sync"

	"github.com/dalemusser/eventhub/internal/domain/models"
)

// MemoryStore keeps the list in process memory. Writers are serialized by
// the mutex, so a delete is never observed half-applied.
type MemoryStore struct {
	mu     sync.RWMutex
	events []models.EventRef
	closed bool
}

// NewMemory returns a store seeded with a copy of seed.
func NewMemory(seed []models.EventRef) *MemoryStore {
	return &MemoryStore{events: append([]models.EventRef(nil), seed...)}
}

// List returns a copy of the current entries in insertion order.
func (s *MemoryStore) List(ctx context.Context) ([]models.EventRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	return append([]models.EventRef(nil), s.events...), nil
}

// Delete filters out every entry whose ID equals id.
func (s *MemoryStore) Delete(ctx context.Context, id string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrClosed
	}

	kept := make([]models.EventRef, 0, len(s.events))
	for _, e := range s.events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	removed := len(s.events) - len(kept)
	s.events = kept
	return removed, nil
}

// Ping reports whether the store is usable.
func (s *MemoryStore) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}

// Close marks the store closed. It is safe to call more than once.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
