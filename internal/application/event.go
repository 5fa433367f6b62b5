package application

import (
	"context"
	"strconv"
	"strings"

	"agenda/internal/clock"
	"agenda/internal/domain"
	"agenda/internal/domain/entities"
	"agenda/internal/ports/input"
	"agenda/internal/ports/output"
	"agenda/pkg/agenda"
	"agenda/pkg/tz"
)

// staleAfterDays is how far in the past an event's date must be before the
// bulk cleanup removes it.
const staleAfterDays = 30

type EventService struct {
	eventRepo output.EventRepository
	clock     clock.Clock
}

func NewEventService(eventRepo output.EventRepository, clk clock.Clock) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		clock:     clk,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, in input.CreateEventInput) (*entities.Event, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrNameRequired
	}
	if strings.TrimSpace(in.Venue) == "" {
		return nil, domain.ErrVenueRequired
	}
	if strings.TrimSpace(in.Date) == "" {
		return nil, domain.ErrDateRequired
	}
	if strings.TrimSpace(in.StartTime) == "" {
		return nil, domain.ErrStartTimeRequired
	}

	date, err := agenda.ParseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	start, err := agenda.ParseClockTime(in.StartTime)
	if err != nil {
		return nil, domain.ErrInvalidTime
	}
	var end *agenda.ClockTime
	if in.EndTime != nil && *in.EndTime != "" {
		t, err := agenda.ParseClockTime(*in.EndTime)
		if err != nil {
			return nil, domain.ErrInvalidTime
		}
		end = &t
	}

	event := &entities.Event{
		Name:      in.Name,
		Client:    in.Client,
		Venue:     in.Venue,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Price:     in.Price,
		Notes:     in.Notes,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context, in input.ListEventsInput) ([]entities.Event, error) {
	filter, err := buildFilter(in)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, filter)
}

func (s *EventService) GetEvent(ctx context.Context, id int64) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

func (s *EventService) UpdateEvent(ctx context.Context, id int64, in input.UpdateEventInput) (*entities.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyUpdate(event, in); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}

// CleanupExpired removes every event dated more than staleAfterDays days in
// the past and returns how many were removed.
func (s *EventService) CleanupExpired(ctx context.Context) (int64, error) {
	today := agenda.DateOnly(s.clock.Now().In(tz.SaoPaulo))
	cutoff := today.AddDate(0, 0, -staleAfterDays)
	return s.eventRepo.DeleteBefore(ctx, cutoff)
}

// applyUpdate overwrites only the attributes present in the input. Date and
// time strings follow the same parsing rules as creation.
func applyUpdate(event *entities.Event, in input.UpdateEventInput) error {
	if in.Name.Set {
		event.Name = in.Name.Value
	}
	if in.Client.Set {
		event.Client = in.Client.Value
	}
	if in.Venue.Set {
		event.Venue = in.Venue.Value
	}
	if in.Date.Set {
		date, err := agenda.ParseDate(in.Date.Value)
		if err != nil {
			return domain.ErrInvalidDate
		}
		event.Date = date
	}
	if in.StartTime.Set {
		start, err := agenda.ParseClockTime(in.StartTime.Value)
		if err != nil {
			return domain.ErrInvalidTime
		}
		event.StartTime = start
	}
	if in.EndTime.Set {
		if in.EndTime.Value == nil || *in.EndTime.Value == "" {
			event.EndTime = nil
		} else {
			end, err := agenda.ParseClockTime(*in.EndTime.Value)
			if err != nil {
				return domain.ErrInvalidTime
			}
			event.EndTime = &end
		}
	}
	if in.Price.Set {
		event.Price = in.Price.Value
	}
	if in.Notes.Set {
		event.Notes = in.Notes.Value
	}
	return nil
}

// buildFilter translates raw query parameters into a repository filter.
// Month without year is ignored, matching the listing's historical behavior.
func buildFilter(in input.ListEventsInput) (output.EventFilter, error) {
	var filter output.EventFilter

	if in.StartDate != "" {
		from, err := agenda.ParseDate(in.StartDate)
		if err != nil {
			return filter, domain.ErrInvalidDate
		}
		filter.FromDate = &from
	}
	if in.EndDate != "" {
		to, err := agenda.ParseDate(in.EndDate)
		if err != nil {
			return filter, domain.ErrInvalidDate
		}
		filter.ToDate = &to
	}
	filter.Venue = in.Venue

	var month int
	if in.Month != "" {
		m, err := strconv.Atoi(in.Month)
		if err != nil || m < 1 || m > 12 {
			return filter, domain.ErrInvalidMonth
		}
		month = m
	}
	if in.Year != "" {
		y, err := strconv.Atoi(in.Year)
		if err != nil {
			return filter, domain.ErrInvalidYear
		}
		filter.Year = y
		filter.Month = month
	}
	return filter, nil
}
