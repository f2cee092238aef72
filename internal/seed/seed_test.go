package seed

import (
	"reflect"
	"testing"
	"time"

	"campus-event-catalog/internal/models"
)

func TestEventsRelativeToToday(t *testing.T) {
	today := time.Date(2026, time.December, 28, 9, 0, 0, 0, time.UTC)
	events := Events(today)

	if len(events) != 6 {
		t.Fatalf("expected 6 seed events, got %d", len(events))
	}

	want := []struct {
		id     string
		date   string
		status models.Status
		days   int
	}{
		{"1", "2027-01-12", models.StatusUpcoming, 15},
		{"2", "2027-01-04", models.StatusUpcoming, 7},
		{"3", "2026-12-31", models.StatusUpcoming, 3},
		{"4", "2027-01-07", models.StatusUpcoming, 10},
		{"5", "2027-01-02", models.StatusUpcoming, 5},
		{"6", "2026-12-26", models.StatusCompleted, -2},
	}
	for i, w := range want {
		e := events[i]
		if e.ID != w.id || e.Date != w.date || e.Status != w.status || e.DaysLeft != w.days {
			t.Errorf("event %d: expected %s %s %s/%d, got %s %s %s/%d",
				i, w.id, w.date, w.status, w.days, e.ID, e.Date, e.Status, e.DaysLeft)
		}
	}

	if !reflect.DeepEqual(events, Events(today)) {
		t.Error("the same day must yield the same catalog")
	}
}

func TestSeedEventsAreValid(t *testing.T) {
	for _, e := range Events(time.Now()) {
		if !e.Theme.Valid() {
			t.Errorf("event %s has unknown theme %q", e.ID, e.Theme)
		}
		venue, ok := VenueByName(e.Venue.Name)
		if !ok || venue != e.Venue {
			t.Errorf("event %s venue %+v is not canonical", e.ID, e.Venue)
		}
		if len(e.AllowedSections) == 0 || len(e.Coordinators) == 0 {
			t.Errorf("event %s needs sections and coordinators", e.ID)
		}
		for _, s := range e.AllowedSections {
			if !IsSection(s) {
				t.Errorf("event %s has unknown section %q", e.ID, s)
			}
		}
		if e.MaxSeats > e.Venue.Capacity {
			t.Errorf("event %s seats %d exceed capacity %d", e.ID, e.MaxSeats, e.Venue.Capacity)
		}
	}
}

func TestVenueCopiesAreIndependent(t *testing.T) {
	events := Events(time.Now())
	events[0].Venue.Capacity = 1

	if v, _ := VenueByName("KS Auditorium"); v.Capacity != 500 {
		t.Errorf("canonical venue was mutated: %+v", v)
	}
	if Events(time.Now())[3].Venue.Capacity != 500 {
		t.Error("events must not share venue state")
	}
}

func TestReferenceData(t *testing.T) {
	themes := Themes()
	if len(themes) != len(models.ThemeIDs) {
		t.Fatalf("expected %d themes, got %d", len(models.ThemeIDs), len(themes))
	}
	for i, th := range themes {
		if th.ID != models.ThemeIDs[i] {
			t.Errorf("theme %d: expected %s, got %s", i, models.ThemeIDs[i], th.ID)
		}
	}
	if _, ok := ThemeByID("sports"); ok {
		t.Error("unknown theme must not resolve")
	}

	for _, row := range ThemeStatistics() {
		if sum := row.Theme1 + row.Theme2 + row.Theme3 + row.Theme4 + row.Theme5; sum != row.Total {
			t.Errorf("%s: themes sum to %d, total says %d", row.Year, sum, row.Total)
		}
	}

	users := Users("example.edu")
	if users[0].Email != "john@example.edu" || users[0].IsStaff() || !users[1].IsStaff() || !users[2].IsStaff() {
		t.Errorf("unexpected users %+v", users)
	}
}
