package services

import (
	"strings"
	"time"

	"campus-event-catalog/internal/models"
)

const secondsPerDay = 24 * 60 * 60

// Clock returns the current moment. Its location decides which calendar day
// "today" is.
type Clock func() time.Time

func SystemClock(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// NormalizeDate reduces a YYYY-MM-DD or RFC 3339 value to YYYY-MM-DD.
func NormalizeDate(value string) (string, bool) {
	value = strings.TrimSpace(value)
	if len(value) < len(models.DateLayout) {
		return "", false
	}
	day := value[:len(models.DateLayout)]
	if _, err := time.Parse(models.DateLayout, day); err != nil {
		return "", false
	}
	if len(value) > len(day) {
		if _, err := time.Parse(time.RFC3339, value); err != nil {
			return "", false
		}
	}
	return day, true
}

// DaysLeft counts calendar days from now's date to date, midnight to
// midnight. Negative once the date has passed.
func DaysLeft(date string, now time.Time) (int, bool) {
	day, ok := NormalizeDate(date)
	if !ok {
		return 0, false
	}
	d, _ := time.Parse(models.DateLayout, day)

	y, m, dd := now.Date()
	today := time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
	return int((d.Unix() - today.Unix()) / secondsPerDay), true
}

func StatusFor(daysLeft int) models.Status {
	switch {
	case daysLeft > 0:
		return models.StatusUpcoming
	case daysLeft == 0:
		return models.StatusOngoing
	default:
		return models.StatusCompleted
	}
}

// Derive returns e with Status and DaysLeft recomputed against now. An event
// whose date cannot be parsed keeps its stored values.
func Derive(e models.Event, now time.Time) models.Event {
	days, ok := DaysLeft(e.Date, now)
	if !ok {
		return e
	}
	e.DaysLeft = days
	e.Status = StatusFor(days)
	return e
}

func DeriveAll(events []models.Event, now time.Time) []models.Event {
	out := make([]models.Event, len(events))
	for i, e := range events {
		out[i] = Derive(e, now)
	}
	return out
}
