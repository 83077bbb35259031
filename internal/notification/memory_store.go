package notification

import (
	"context"
	"sync"

	"github.com/ram-fashion/storefront/internal/domain"
)

// MemoryStore implements Store with in-process storage. A single mutex
// serializes insert-and-truncate, so two concurrent appends can never both
// observe a full log and evict different entries.
type MemoryStore struct {
	mu    sync.RWMutex
	cap   int
	items []domain.Notification
}

func NewMemoryStore(cap int) *MemoryStore {
	return &MemoryStore{cap: cap}
}

func (s *MemoryStore) Insert(_ context.Context, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]domain.Notification{n}, s.items...)
	if len(s.items) > s.cap {
		s.items = s.items[:s.cap]
	}
	return nil
}

func (s *MemoryStore) List(_ context.Context) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Notification, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.items {
		if n.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotificationNotFound
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return nil
}
