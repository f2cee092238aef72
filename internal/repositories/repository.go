package repositories

import (
	"campus-event-catalog/internal/models"
)

const maxWriteAttempts = 3

// Seeds supplies the defaults written into empty or corrupt slots.
type Seeds struct {
	Events func() []models.Event
	Users  func() []models.User
}

type Repository struct {
	Slots       SlotStore
	EventRepo   EventRepository
	UserRepo    UserRepository
	SessionRepo SessionRepository
}

func NewRepository(slots SlotStore, seeds Seeds) *Repository {
	return &Repository{
		Slots:       slots,
		EventRepo:   NewEventRepository(slots, seeds.Events),
		UserRepo:    NewUserRepository(slots, seeds.Users),
		SessionRepo: NewSessionRepository(slots),
	}
}
