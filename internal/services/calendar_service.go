package services

import (
	"context"
	"time"

	"campus-event-catalog/internal/models"

	ics "github.com/arran4/golang-ical"
)

// ExportICS renders the catalog as an iCalendar feed. Events whose date or
// times cannot be parsed are left out.
func (s *EventService) ExportICS(ctx context.Context, uidDomain string) (string, error) {
	events, err := s.listAll(ctx)
	if err != nil {
		return "", err
	}

	now := s.clock()
	loc := now.Location()

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Campus Event Catalog//EN")

	for _, e := range events {
		start, end, ok := eventWindow(e, loc)
		if !ok {
			s.log.WithField("event_id", e.ID).Warn("skipping event with unparseable schedule")
			continue
		}

		vevent := cal.AddEvent(e.ID + "@" + uidDomain)
		vevent.SetDtStampTime(now)
		vevent.SetStartAt(start)
		vevent.SetEndAt(end)
		vevent.SetSummary(e.Title)
		vevent.SetDescription(e.Description)
		vevent.SetLocation(e.Venue.Name + ", " + e.Venue.Location)
		vevent.SetProperty(ics.ComponentPropertyCategories, string(e.Theme))
	}

	return cal.Serialize(), nil
}

// eventWindow resolves an event's start and end in loc. An end not after the
// start collapses to the start.
func eventWindow(e models.Event, loc *time.Location) (time.Time, time.Time, bool) {
	day, ok := NormalizeDate(e.Date)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	const layout = models.DateLayout + " " + models.TimeLayout

	start, err := time.ParseInLocation(layout, day+" "+e.StartTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.ParseInLocation(layout, day+" "+e.EndTime, loc)
	if err != nil || !end.After(start) {
		end = start
	}
	return start, end, true
}
