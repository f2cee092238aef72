package services

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"campus-event-catalog/internal/models"
)

func staff() *models.User {
	return &models.User{ID: "3", Name: "Admin User", Email: "admin@" + testDomain, Role: models.RoleAdmin}
}

func student() *models.User {
	return &models.User{ID: "1", Name: "John Doe", Email: "john@" + testDomain, Role: models.RoleStudent, Section: "CSE-A"}
}

func TestListAllSeedsOnFirstRead(t *testing.T) {
	env := newTestEnv(t)

	events, err := env.events.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !reflect.DeepEqual(eventIDs(events), []string{"1", "2", "3", "4", "5", "6"}) {
		t.Errorf("unexpected seed order %v", eventIDs(events))
	}
	if _, err := env.slots.Get(context.Background(), "events"); err != nil {
		t.Errorf("catalog slot should be written on first read: %v", err)
	}
}

func TestListByDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	got, err := env.events.ListByDate(ctx, env.day(3))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !reflect.DeepEqual(eventIDs(got), []string{"3"}) {
		t.Fatalf("expected [3], got %v", eventIDs(got))
	}
	if got[0].Status != models.StatusUpcoming || got[0].DaysLeft != 3 {
		t.Errorf("expected upcoming/3, got %s/%d", got[0].Status, got[0].DaysLeft)
	}

	past, err := env.events.ListByDate(ctx, env.day(-2))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(past) != 1 || past[0].Status != models.StatusCompleted || past[0].DaysLeft != -2 {
		t.Errorf("expected completed/-2 for event 6, got %+v", past)
	}

	var ve *ValidationError
	if _, err := env.events.ListByDate(ctx, "10/03/2026"); !errors.As(err, &ve) {
		t.Errorf("expected ValidationError for a bad date, got %v", err)
	}
}

func TestListByTheme(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	got, err := env.events.ListByTheme(ctx, "inspirational")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !reflect.DeepEqual(eventIDs(got), []string{"1", "6"}) {
		t.Errorf("expected [1 6], got %v", eventIDs(got))
	}

	if _, err := env.events.ListByTheme(ctx, "sports"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown theme, got %v", err)
	}
}

func TestQueryCombinesFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	got, err := env.events.Query(ctx, EventQuery{Theme: "inspirational", Text: "growth"})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if !reflect.DeepEqual(eventIDs(got), []string{"6"}) {
		t.Errorf("expected [6], got %v", eventIDs(got))
	}

	got, err = env.events.Query(ctx, EventQuery{Date: env.day(7), Text: "bootcamp"})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if !reflect.DeepEqual(eventIDs(got), []string{"2"}) {
		t.Errorf("expected [2], got %v", eventIDs(got))
	}

	all, err := env.events.Query(ctx, EventQuery{})
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(all) != 6 {
		t.Errorf("empty query should return the catalog, got %d", len(all))
	}
}

func TestThemeSummaries(t *testing.T) {
	env := newTestEnv(t)

	summaries, err := env.events.ThemeSummaries(context.Background())
	if err != nil {
		t.Fatalf("summaries failed: %v", err)
	}
	total := 0
	for _, s := range summaries {
		total += s.Count
	}
	if len(summaries) != 5 || total != 6 {
		t.Errorf("expected 5 themes covering 6 events, got %d themes / %d events", len(summaries), total)
	}
}

func TestGetEvent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	e, err := env.events.GetEvent(ctx, "4")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if e.Title != "Startup Success Stories" || e.DaysLeft != 10 {
		t.Errorf("unexpected event %+v", e)
	}

	if _, err := env.events.GetEvent(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStoredStatusIsRecomputed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	events, version, err := env.repo.EventRepo.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	for i := range events {
		events[i].Status = models.StatusCompleted
		events[i].DaysLeft = -99
	}
	if _, err := env.repo.EventRepo.ReplaceAll(ctx, events, version); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	e, err := env.events.GetEvent(ctx, "1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if e.Status != models.StatusUpcoming || e.DaysLeft != 15 {
		t.Errorf("expected upcoming/15 recomputed from date, got %s/%d", e.Status, e.DaysLeft)
	}
}

func TestCreateEventForbiddenLeavesStoreUntouched(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.events.CreateEvent(ctx, nil, validInput(env)); !errors.Is(err, ErrForbidden) {
		t.Errorf("anonymous create: expected ErrForbidden, got %v", err)
	}
	if _, err := env.slots.Get(ctx, "events"); err == nil {
		t.Error("forbidden create must not touch the store")
	}

	_, before, err := env.repo.EventRepo.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if _, err := env.events.CreateEvent(ctx, student(), validInput(env)); !errors.Is(err, ErrForbidden) {
		t.Errorf("student create: expected ErrForbidden, got %v", err)
	}

	events, after, err := env.repo.EventRepo.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if after != before || len(events) != 6 {
		t.Errorf("store changed: version %d -> %d, %d events", before, after, len(events))
	}
}

func TestCreateEventPrepends(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	input := validInput(env)
	input.Title = "  Cloud Native Workshop  "
	created, err := env.events.CreateEvent(ctx, staff(), input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if !strings.HasPrefix(created.ID, "event-") {
		t.Errorf("expected generated id, got %q", created.ID)
	}
	if created.Title != "Cloud Native Workshop" {
		t.Errorf("title should be trimmed, got %q", created.Title)
	}
	if created.Venue.Capacity != 200 || created.Venue.Location != "B Block" {
		t.Errorf("venue should be copied from the canonical list, got %+v", created.Venue)
	}
	if created.MaxSeats != 200 {
		t.Errorf("maxSeats 0 should default to venue capacity, got %d", created.MaxSeats)
	}
	if created.ImageURL != defaultEventImage || !created.RegistrationOpen {
		t.Errorf("defaults not applied: %+v", created)
	}
	if created.Status != models.StatusUpcoming || created.DaysLeft != 1 {
		t.Errorf("expected upcoming/1, got %s/%d", created.Status, created.DaysLeft)
	}

	events, err := env.events.ListAll(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(events) != 7 || events[0].ID != created.ID {
		t.Errorf("new event should be first of 7, got %v", eventIDs(events))
	}
	if !reflect.DeepEqual(eventIDs(events[1:]), []string{"1", "2", "3", "4", "5", "6"}) {
		t.Errorf("existing events must keep their order, got %v", eventIDs(events[1:]))
	}
}

func TestCreateEventFarInTheFuture(t *testing.T) {
	env := newTestEnv(t)

	input := validInput(env)
	input.Date = "9999-12-31"
	created, err := env.events.CreateEvent(context.Background(), staff(), input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.DaysLeft != 2912374 {
		t.Errorf("expected daysLeft=2912374, got %d", created.DaysLeft)
	}
}

func TestCreateEventByFaculty(t *testing.T) {
	env := newTestEnv(t)
	faculty := &models.User{ID: "2", Email: "jane@" + testDomain, Role: models.RoleFaculty}

	input := validInput(env)
	input.MaxSeats = 80
	closed := false
	input.RegistrationOpen = &closed

	created, err := env.events.CreateEvent(context.Background(), faculty, input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.MaxSeats != 80 || created.RegistrationOpen {
		t.Errorf("explicit values should be kept: %+v", created)
	}
}

func TestCreateEventValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateEventInput)
		field  string
	}{
		{"short title", func(in *CreateEventInput) { in.Title = "AI" }, "title"},
		{"blank title", func(in *CreateEventInput) { in.Title = "   " }, "title"},
		{"unknown theme", func(in *CreateEventInput) { in.Theme = "sports" }, "theme"},
		{"short description", func(in *CreateEventInput) { in.Description = "Too short" }, "description"},
		{"unknown venue", func(in *CreateEventInput) { in.Venue = "Open Air Theatre" }, "venue"},
		{"bad date", func(in *CreateEventInput) { in.Date = "11-03-2026" }, "date"},
		{"bad start", func(in *CreateEventInput) { in.StartTime = "25:00" }, "startTime"},
		{"short speaker", func(in *CreateEventInput) { in.Speaker = "Al" }, "speaker"},
		{"no sections", func(in *CreateEventInput) { in.AllowedSections = nil }, "allowedSections"},
		{"unknown section", func(in *CreateEventInput) { in.AllowedSections = []string{"ECE-A"} }, "allowedSections"},
		{"blank coordinators", func(in *CreateEventInput) { in.Coordinators = []string{" "} }, "coordinators"},
		{"negative seats", func(in *CreateEventInput) { in.MaxSeats = -1 }, "maxSeats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			input := validInput(env)
			tt.mutate(&input)

			_, err := env.events.CreateEvent(context.Background(), staff(), input)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.field {
				t.Errorf("expected field %q, got %q (%s)", tt.field, ve.Field, ve.Message)
			}

			events, _ := env.events.ListAll(context.Background())
			if len(events) != 6 {
				t.Errorf("rejected create must not change the catalog, got %d events", len(events))
			}
		})
	}
}

func TestConcurrentCreatesAreAllKept(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	const n = 8
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			_, err := env.events.CreateEvent(ctx, staff(), validInput(env))
			errs <- err
		}()
	}
	for i := 0; i < n; i++ {
		if err := <-errs; err != nil {
			t.Errorf("create failed: %v", err)
		}
	}

	events, err := env.events.ListAll(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(events) != 6+n {
		t.Errorf("expected %d events, got %d", 6+n, len(events))
	}
}

func TestCreatedEventPersistsInSlotShape(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.events.CreateEvent(ctx, staff(), validInput(env)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	slot, err := env.slots.Get(ctx, "events")
	if err != nil {
		t.Fatalf("get slot failed: %v", err)
	}
	var raw []map[string]interface{}
	if err := json.Unmarshal(slot.Data, &raw); err != nil {
		t.Fatalf("slot is not a JSON array: %v", err)
	}
	for _, key := range []string{"id", "allowedSections", "maxSeats", "registrationOpen", "imageUrl", "startTime", "daysLeft"} {
		if _, ok := raw[0][key]; !ok {
			t.Errorf("persisted event is missing %q", key)
		}
	}
}
