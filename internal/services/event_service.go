package services

import (
	"context"
	"errors"
	"strings"

	"campus-event-catalog/internal/models"
	"campus-event-catalog/internal/repositories"
	"campus-event-catalog/internal/seed"
	"campus-event-catalog/internal/utils"
	"campus-event-catalog/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultEventImage = "https://picsum.photos/800/400"

var validate = utils.NewValidator()

type EventService struct {
	repo  *repositories.Repository
	clock Clock
	log   *logrus.Entry
}

func NewEventService(repo *repositories.Repository, clock Clock) *EventService {
	return &EventService{
		repo:  repo,
		clock: clock,
		log:   logger.For("event_service"),
	}
}

type CreateEventInput struct {
	Title              string   `json:"title" validate:"required,min=3"`
	Theme              string   `json:"theme" validate:"required,theme"`
	Description        string   `json:"description" validate:"required,min=10"`
	Venue              string   `json:"venue" validate:"required"`
	Date               string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime          string   `json:"startTime" validate:"required,datetime=15:04"`
	EndTime            string   `json:"endTime" validate:"required,datetime=15:04"`
	Speaker            string   `json:"speaker" validate:"required,min=3"`
	AllowedSections    []string `json:"allowedSections" validate:"required,min=1,dive,required"`
	MaxSeats           int      `json:"maxSeats" validate:"gte=0"`
	RegistrationOpen   *bool    `json:"registrationOpen"`
	ImageURL           string   `json:"imageUrl"`
	GadgetRequirements string   `json:"gadgetRequirements"`
	Coordinators       []string `json:"coordinators" validate:"required,min=1,dive,required"`
}

// EventQuery combines the catalog filters; empty fields do not filter.
type EventQuery struct {
	Text  string
	Date  string
	Theme string
}

// listAll reads the catalog and recomputes derived fields. Events with an
// unparseable date keep their stored status.
func (s *EventService) listAll(ctx context.Context) ([]models.Event, error) {
	events, _, err := s.repo.EventRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		if _, ok := NormalizeDate(e.Date); !ok {
			s.log.WithFields(logrus.Fields{"event_id": e.ID, "date": e.Date}).Warn("event has an invalid date")
		}
	}
	return DeriveAll(events, s.clock()), nil
}

func (s *EventService) ListAll(ctx context.Context) ([]models.Event, error) {
	return s.listAll(ctx)
}

func (s *EventService) ListByDate(ctx context.Context, date string) ([]models.Event, error) {
	if _, ok := NormalizeDate(date); !ok {
		return nil, invalid("date", "date must be YYYY-MM-DD")
	}
	events, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByDate(events, date), nil
}

func (s *EventService) ListByTheme(ctx context.Context, themeID string) ([]models.Event, error) {
	id := models.ThemeID(themeID)
	if !id.Valid() {
		return nil, ErrNotFound
	}
	events, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByTheme(events, id), nil
}

func (s *EventService) Search(ctx context.Context, query string) ([]models.Event, error) {
	events, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return Search(events, query), nil
}

// Query applies theme, date and text filters in that order.
func (s *EventService) Query(ctx context.Context, q EventQuery) ([]models.Event, error) {
	var (
		events []models.Event
		err    error
	)
	if q.Theme != "" {
		events, err = s.ListByTheme(ctx, q.Theme)
	} else {
		events, err = s.listAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if q.Date != "" {
		if _, ok := NormalizeDate(q.Date); !ok {
			return nil, invalid("date", "date must be YYYY-MM-DD")
		}
		events = FilterByDate(events, q.Date)
	}
	return Search(events, q.Text), nil
}

func (s *EventService) Upcoming(ctx context.Context, limit int) ([]models.Event, error) {
	events, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return UpcomingSoonest(events, limit), nil
}

func (s *EventService) ThemeSummaries(ctx context.Context) ([]models.ThemeCount, error) {
	events, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return CountByTheme(events, seed.Themes()), nil
}

func (s *EventService) GetTheme(themeID string) (*models.Theme, error) {
	theme, ok := seed.ThemeByID(models.ThemeID(themeID))
	if !ok {
		return nil, ErrNotFound
	}
	return &theme, nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	events, err := s.listAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}
	return nil, ErrNotFound
}

// CreateEvent appends a new event on behalf of requester. Non-staff
// requesters are rejected before the store is touched.
func (s *EventService) CreateEvent(ctx context.Context, requester *models.User, input CreateEventInput) (*models.Event, error) {
	if !requester.IsStaff() {
		return nil, ErrForbidden
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Speaker = strings.TrimSpace(input.Speaker)
	input.Coordinators = trimAll(input.Coordinators)
	input.AllowedSections = trimAll(input.AllowedSections)

	if err := validate.Struct(input); err != nil {
		field, message := utils.ValidationMessage(err)
		return nil, invalid(field, message)
	}

	venue, ok := seed.VenueByName(input.Venue)
	if !ok {
		return nil, invalid("venue", "selected venue not found")
	}
	for _, section := range input.AllowedSections {
		if !seed.IsSection(section) {
			return nil, invalid("allowedSections", "unknown section "+section)
		}
	}

	maxSeats := input.MaxSeats
	if maxSeats == 0 {
		maxSeats = venue.Capacity
	}
	registrationOpen := true
	if input.RegistrationOpen != nil {
		registrationOpen = *input.RegistrationOpen
	}
	imageURL := strings.TrimSpace(input.ImageURL)
	if imageURL == "" {
		imageURL = defaultEventImage
	}

	event := models.Event{
		ID:                 "event-" + uuid.NewString(),
		Title:              input.Title,
		Theme:              models.ThemeID(input.Theme),
		Description:        input.Description,
		Venue:              venue,
		Date:               input.Date,
		StartTime:          input.StartTime,
		EndTime:            input.EndTime,
		Speaker:            input.Speaker,
		AllowedSections:    input.AllowedSections,
		MaxSeats:           maxSeats,
		RegistrationOpen:   registrationOpen,
		ImageURL:           imageURL,
		GadgetRequirements: strings.TrimSpace(input.GadgetRequirements),
		Coordinators:       input.Coordinators,
		Status:             models.StatusUpcoming,
	}
	if days, ok := DaysLeft(event.Date, s.clock()); ok {
		event.DaysLeft = days
	}

	if err := s.repo.EventRepo.Append(ctx, event); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEventID) {
			return nil, invalid("id", "event id already exists")
		}
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"event_id": event.ID,
		"theme":    event.Theme,
		"user_id":  requester.ID,
	}).Info("event created")

	created := Derive(event, s.clock())
	return &created, nil
}

func (s *EventService) Themes() []models.Theme { return seed.Themes() }
func (s *EventService) Venues() []models.Venue { return seed.Venues() }
func (s *EventService) Sections() []string { return seed.Sections() }
func (s *EventService) Statistics() []models.ThemeStatistic { return seed.ThemeStatistics() }

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
