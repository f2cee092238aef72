package services

import (
	"testing"
	"time"

	"campus-event-catalog/internal/config"
	"campus-event-catalog/internal/models"
	"campus-event-catalog/internal/repositories"
	"campus-event-catalog/internal/seed"
)

const testDomain = "vnrvjiet.in"

// fixedNow is mid-afternoon so calendar-day logic is exercised away from
// midnight.
var fixedNow = time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

type testEnv struct {
	slots  repositories.SlotStore
	repo   *repositories.Repository
	auth   *AuthService
	events *EventService
	now    time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	now := fixedNow
	clock := func() time.Time { return now }
	slots := repositories.NewMemorySlotStore()
	repo := repositories.NewRepository(slots, repositories.Seeds{
		Events: func() []models.Event { return seed.Events(clock()) },
		Users:  func() []models.User { return seed.Users(testDomain) },
	})
	cfg := &config.Config{
		JWTSecret:         "test-secret-key-for-unit-testing",
		JWTTTL:            time.Hour,
		InstitutionDomain: testDomain,
	}

	return &testEnv{
		slots:  slots,
		repo:   repo,
		auth:   NewAuthService(repo, cfg, clock),
		events: NewEventService(repo, clock),
		now:    now,
	}
}

func (e *testEnv) day(offset int) string {
	return e.now.AddDate(0, 0, offset).Format(models.DateLayout)
}

func validInput(env *testEnv) CreateEventInput {
	return CreateEventInput{
		Title:           "Cloud Native Workshop",
		Theme:           "skills",
		Description:     "Hands-on introduction to containers and orchestration.",
		Venue:           "Seminar Hall",
		Date:            env.day(1),
		StartTime:       "10:00",
		EndTime:         "12:00",
		Speaker:         "Dr. Asha Verma",
		AllowedSections: []string{"CSE-A", "CSBS"},
		Coordinators:    []string{"Prof. Vivek Reddy"},
	}
}

func eventIDs(events []models.Event) []string {
	ids := make([]string, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}
