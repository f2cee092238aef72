package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"campus-event-catalog/internal/models"
	"campus-event-catalog/pkg/logger"

	"github.com/sirupsen/logrus"
)

const eventsSlot = "events"

var ErrDuplicateEventID = errors.New("event id already exists")

// EventRepository is the single source of truth for the catalog. It never
// removes or edits stored events.
type EventRepository interface {
	Load(ctx context.Context) ([]models.Event, int64, error)
	ReplaceAll(ctx context.Context, events []models.Event, expectedVersion int64) (int64, error)
	Append(ctx context.Context, event models.Event) error
}

type eventRepo struct {
	slots SlotStore
	seed  func() []models.Event
	log   *logrus.Entry

	// serializes Append within this process; other processes are caught by
	// the slot version check.
	mu sync.Mutex
}

func NewEventRepository(slots SlotStore, seed func() []models.Event) EventRepository {
	return &eventRepo{
		slots: slots,
		seed:  seed,
		log:   logger.For("event_repo"),
	}
}

// Load returns the stored catalog and its slot version. A missing slot is
// initialized with the seed set; a corrupt one is overwritten with it.
func (r *eventRepo) Load(ctx context.Context) ([]models.Event, int64, error) {
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		slot, err := r.slots.Get(ctx, eventsSlot)
		if errors.Is(err, ErrSlotNotFound) {
			events, version, err := r.initialize(ctx, 0)
			if errors.Is(err, ErrStaleWrite) {
				continue
			}
			return events, version, err
		}
		if err != nil {
			return nil, 0, err
		}

		events, err := decodeEvents(slot.Data)
		if err != nil {
			r.log.WithError(err).Warn("catalog slot is corrupt, reseeding")
			events, version, err := r.initialize(ctx, slot.Version)
			if errors.Is(err, ErrStaleWrite) {
				continue
			}
			return events, version, err
		}
		return events, slot.Version, nil
	}
	return nil, 0, fmt.Errorf("failed to load catalog: %w", ErrStaleWrite)
}

func (r *eventRepo) initialize(ctx context.Context, expectedVersion int64) ([]models.Event, int64, error) {
	events := r.seed()
	version, err := r.ReplaceAll(ctx, events, expectedVersion)
	if err != nil {
		return nil, 0, err
	}
	r.log.WithField("events", len(events)).Info("catalog initialized from seed")
	return events, version, nil
}

func (r *eventRepo) ReplaceAll(ctx context.Context, events []models.Event, expectedVersion int64) (int64, error) {
	if events == nil {
		events = []models.Event{}
	}
	data, err := json.Marshal(events)
	if err != nil {
		return 0, fmt.Errorf("failed to encode catalog: %w", err)
	}
	return r.slots.Put(ctx, eventsSlot, data, expectedVersion)
}

// Append stores event at the front of the catalog. A concurrent writer
// causes a reload and another attempt, so no creation is lost.
func (r *eventRepo) Append(ctx context.Context, event models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		events, version, err := r.Load(ctx)
		if err != nil {
			return err
		}
		for _, e := range events {
			if e.ID == event.ID {
				return ErrDuplicateEventID
			}
		}

		next := make([]models.Event, 0, len(events)+1)
		next = append(next, event)
		next = append(next, events...)

		_, err = r.ReplaceAll(ctx, next, version)
		if errors.Is(err, ErrStaleWrite) {
			r.log.WithField("attempt", attempt+1).Debug("catalog changed during append, retrying")
			continue
		}
		return err
	}
	return fmt.Errorf("failed to append event: %w", ErrStaleWrite)
}

func decodeEvents(data []byte) ([]models.Event, error) {
	var events []models.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, err
	}
	if events == nil {
		return nil, errors.New("catalog slot holds null")
	}
	return events, nil
}
