package repositories

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrSlotNotFound = errors.New("slot not found")
	ErrStaleWrite   = errors.New("slot was modified by another writer")
)

// AnyVersion makes Put overwrite the slot regardless of its current version.
const AnyVersion int64 = -1

type Slot struct {
	Key     string
	Data    []byte
	Version int64
}

// SlotStore persists named blobs. Put with expectedVersion 0 only succeeds
// when the slot does not exist yet; a positive expectedVersion must match the
// stored version. Both cases return ErrStaleWrite otherwise.
type SlotStore interface {
	Get(ctx context.Context, key string) (*Slot, error)
	Put(ctx context.Context, key string, data []byte, expectedVersion int64) (int64, error)
	Delete(ctx context.Context, key string) error
}

type memorySlotStore struct {
	mu    sync.Mutex
	slots map[string]Slot
}

func NewMemorySlotStore() SlotStore {
	return &memorySlotStore{slots: make(map[string]Slot)}
}

func (s *memorySlotStore) Get(_ context.Context, key string) (*Slot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[key]
	if !ok {
		return nil, ErrSlotNotFound
	}
	slot.Data = append([]byte(nil), slot.Data...)
	return &slot, nil
}

func (s *memorySlotStore) Put(_ context.Context, key string, data []byte, expectedVersion int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.slots[key]
	if expectedVersion != AnyVersion && current.Version != expectedVersion {
		return 0, ErrStaleWrite
	}

	next := Slot{
		Key:     key,
		Data:    append([]byte(nil), data...),
		Version: current.Version + 1,
	}
	s.slots[key] = next
	return next.Version, nil
}

func (s *memorySlotStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, key)
	return nil
}
