package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"campus-event-catalog/internal/models"

	ics "github.com/arran4/golang-ical"
)

func TestExportICS(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	out, err := env.events.ExportICS(ctx, "campus.test")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("export is not valid iCalendar: %v", err)
	}
	events := cal.Events()
	if len(events) != 6 {
		t.Fatalf("expected 6 VEVENTs, got %d", len(events))
	}

	first := events[0]
	if uid := first.GetProperty(ics.ComponentPropertyUniqueId); uid == nil || uid.Value != "1@campus.test" {
		t.Errorf("unexpected UID %+v", uid)
	}
	if s := first.GetProperty(ics.ComponentPropertySummary); s == nil || s.Value != "Leadership in Technology" {
		t.Errorf("unexpected SUMMARY %+v", s)
	}

	wantStart := time.Date(2026, time.March, 25, 10, 30, 0, 0, time.UTC).Format("20060102T150405Z")
	if start := first.GetProperty(ics.ComponentPropertyDtStart); start == nil || start.Value != wantStart {
		t.Errorf("expected DTSTART %s, got %+v", wantStart, start)
	}
	if c := first.GetProperty(ics.ComponentPropertyCategories); c == nil || c.Value != "inspirational" {
		t.Errorf("unexpected CATEGORIES %+v", c)
	}
}

func TestExportICSSkipsUnschedulableEvents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	events, version, err := env.repo.EventRepo.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	events = append([]models.Event{{ID: "broken", Title: "Broken", Date: "someday", StartTime: "10:00"}}, events...)
	if _, err := env.repo.EventRepo.ReplaceAll(ctx, events, version); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	out, err := env.events.ExportICS(ctx, "campus.test")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if strings.Count(out, "BEGIN:VEVENT") != 6 {
		t.Errorf("expected the broken event to be skipped, got %d events", strings.Count(out, "BEGIN:VEVENT"))
	}
	if strings.Contains(out, "broken@campus.test") {
		t.Error("broken event should not be exported")
	}
}

func TestEventWindow(t *testing.T) {
	e := models.Event{Date: "2026-03-11", StartTime: "14:00", EndTime: "13:00"}

	start, end, ok := eventWindow(e, time.UTC)
	if !ok {
		t.Fatal("expected a window")
	}
	if !start.Equal(end) {
		t.Errorf("end before start should collapse to start, got %s..%s", start, end)
	}
}
