package services

import (
	"sort"
	"strings"

	"campus-event-catalog/internal/models"
)

// FilterByDate keeps events on exactly that calendar day.
func FilterByDate(events []models.Event, date string) []models.Event {
	day, ok := NormalizeDate(date)
	if !ok {
		return []models.Event{}
	}
	out := []models.Event{}
	for _, e := range events {
		if d, ok := NormalizeDate(e.Date); ok && d == day {
			out = append(out, e)
		}
	}
	return out
}

func FilterByTheme(events []models.Event, theme models.ThemeID) []models.Event {
	out := []models.Event{}
	for _, e := range events {
		if e.Theme == theme {
			out = append(out, e)
		}
	}
	return out
}

func CountByTheme(events []models.Event, themes []models.Theme) []models.ThemeCount {
	counts := make([]models.ThemeCount, 0, len(themes))
	for _, t := range themes {
		counts = append(counts, models.ThemeCount{
			Theme: t,
			Count: len(FilterByTheme(events, t.ID)),
		})
	}
	return counts
}

// Search matches query case-insensitively against title and description.
// A blank query matches everything.
func Search(events []models.Event, query string) []models.Event {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if q == "" ||
			strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Description), q) {
			out = append(out, e)
		}
	}
	return out
}

// UpcomingSoonest returns upcoming events nearest first, at most n of them.
// n <= 0 returns all.
func UpcomingSoonest(events []models.Event, n int) []models.Event {
	out := []models.Event{}
	for _, e := range events {
		if e.Status == models.StatusUpcoming {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysLeft < out[j].DaysLeft
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
