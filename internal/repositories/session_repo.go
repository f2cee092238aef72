package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"campus-event-catalog/internal/models"
	"campus-event-catalog/pkg/logger"

	"github.com/sirupsen/logrus"
)

const sessionSlotPrefix = "session:"

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists at most one user per session id. A present slot
// means the session is authenticated.
type SessionRepository interface {
	GetSession(ctx context.Context, sessionID string) (*models.User, error)
	SaveSession(ctx context.Context, sessionID string, user *models.User) error
	DeleteSession(ctx context.Context, sessionID string) error
}

type sessionRepo struct {
	slots SlotStore
	log   *logrus.Entry
}

func NewSessionRepository(slots SlotStore) SessionRepository {
	return &sessionRepo{slots: slots, log: logger.For("session_repo")}
}

// GetSession returns ErrSessionNotFound for a missing slot. A corrupt slot is
// discarded and reported the same way.
func (r *sessionRepo) GetSession(ctx context.Context, sessionID string) (*models.User, error) {
	key := sessionSlotPrefix + sessionID
	slot, err := r.slots.Get(ctx, key)
	if errors.Is(err, ErrSlotNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(slot.Data, &user); err != nil || user.Email == "" {
		r.log.WithError(err).WithField("session_id", sessionID).Warn("session slot is corrupt, discarding")
		if err := r.slots.Delete(ctx, key); err != nil {
			return nil, err
		}
		return nil, ErrSessionNotFound
	}
	return &user, nil
}

func (r *sessionRepo) SaveSession(ctx context.Context, sessionID string, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	_, err = r.slots.Put(ctx, sessionSlotPrefix+sessionID, data, AnyVersion)
	return err
}

func (r *sessionRepo) DeleteSession(ctx context.Context, sessionID string) error {
	return r.slots.Delete(ctx, sessionSlotPrefix+sessionID)
}
