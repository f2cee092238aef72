package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"campus-event-catalog/internal/models"
	"campus-event-catalog/pkg/logger"

	"github.com/sirupsen/logrus"
)

const usersSlot = "users"

var ErrUserNotFound = errors.New("user not found")

// UserRepository is the directory of known users, keyed by email.
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
}

type userRepo struct {
	slots SlotStore
	seed  func() []models.User
	log   *logrus.Entry
}

func NewUserRepository(slots SlotStore, seed func() []models.User) UserRepository {
	return &userRepo{
		slots: slots,
		seed:  seed,
		log:   logger.For("user_repo"),
	}
}

func (r *userRepo) load(ctx context.Context) ([]models.User, int64, error) {
	slot, err := r.slots.Get(ctx, usersSlot)
	if errors.Is(err, ErrSlotNotFound) {
		return r.seed(), 0, nil
	}
	if err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := json.Unmarshal(slot.Data, &users); err != nil || users == nil {
		r.log.WithError(err).Warn("user directory slot is corrupt, using seed users")
		return r.seed(), slot.Version, nil
	}
	return users, slot.Version, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	users, _, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// SaveUser inserts the user or replaces the entry with the same email.
func (r *userRepo) SaveUser(ctx context.Context, user *models.User) error {
	if user == nil || user.Email == "" {
		return errors.New("user email cannot be empty")
	}

	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		users, version, err := r.load(ctx)
		if err != nil {
			return err
		}

		replaced := false
		for i := range users {
			if strings.EqualFold(users[i].Email, user.Email) {
				users[i] = *user
				replaced = true
				break
			}
		}
		if !replaced {
			users = append(users, *user)
		}

		data, err := json.Marshal(users)
		if err != nil {
			return fmt.Errorf("failed to encode users: %w", err)
		}
		if _, err := r.slots.Put(ctx, usersSlot, data, version); err != nil {
			if errors.Is(err, ErrStaleWrite) {
				continue
			}
			return err
		}
		return nil
	}
	return fmt.Errorf("failed to save user: %w", ErrStaleWrite)
}
