package repositories

import (
	"context"
	"sync"
	"time"

	"campus-event-catalog/internal/models"
	"campus-event-catalog/internal/seed"
)

var testToday = time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

func seedEvents() []models.Event { return seed.Events(testToday) }

func seedUsers() []models.User { return seed.Users("vnrvjiet.in") }

// racingSlotStore lets a competing writer slip in before the next Put on a
// key, the way another process sharing the store would.
type racingSlotStore struct {
	SlotStore

	mu     sync.Mutex
	before map[string][]func()
}

func newRacingSlotStore() *racingSlotStore {
	return &racingSlotStore{SlotStore: NewMemorySlotStore(), before: map[string][]func(){}}
}

func (s *racingSlotStore) interfere(key string, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.before[key] = append(s.before[key], fn)
}

func (s *racingSlotStore) Put(ctx context.Context, key string, data []byte, expectedVersion int64) (int64, error) {
	s.mu.Lock()
	var fn func()
	if queue := s.before[key]; len(queue) > 0 {
		fn, s.before[key] = queue[0], queue[1:]
	}
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
	return s.SlotStore.Put(ctx, key, data, expectedVersion)
}
