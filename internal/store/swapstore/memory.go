package swapstore

import (
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/synzk/hub-backend/internal/model"
)

// memoryStore is the non-persistent fallback used when DATABASE_URL is not
// set. Records are copied in and out, so callers never share memory with the
// map; a write replaces the whole record under the lock.
type memoryStore struct {
	mu    sync.RWMutex
	swaps map[string]model.Swap
}

func NewMemory() IStore {
	return &memoryStore{
		swaps: map[string]model.Swap{},
	}
}

func (s *memoryStore) Upsert(swap *model.Swap) error {
	if !swap.Status.Valid() {
		return errors.Errorf("invalid swap status %q", swap.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.swaps[swap.ID] = *swap
	return nil
}

func (s *memoryStore) GetByID(id string) (*model.Swap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	swap, ok := s.swaps[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &swap, nil
}

func (s *memoryStore) List(limit int) ([]model.Swap, error) {
	s.mu.RLock()
	swaps := make([]model.Swap, 0, len(s.swaps))
	for _, swap := range s.swaps {
		swaps = append(swaps, swap)
	}
	s.mu.RUnlock()

	sort.Slice(swaps, func(i, j int) bool {
		if !swaps[i].CreatedAt.Equal(swaps[j].CreatedAt) {
			return swaps[i].CreatedAt.After(swaps[j].CreatedAt)
		}
		return swaps[i].ID < swaps[j].ID
	})

	if n := clampLimit(limit); len(swaps) > n {
		swaps = swaps[:n]
	}
	return swaps, nil
}

func (s *memoryStore) SetStatus(id string, status model.SwapStatus) error {
	if !status.Valid() {
		return errors.Errorf("invalid swap status %q", status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	swap, ok := s.swaps[id]
	if !ok {
		return nil
	}

	swap.Status = status
	swap.UpdatedAt = time.Now().UTC()
	s.swaps[id] = swap
	return nil
}
