package application

import (
	"context"
	"sort"
	"strings"
	"time"

	"agenda/internal/domain"
	"agenda/internal/domain/entities"
	"agenda/internal/ports/output"
)

var _ output.EventRepository = (*fakeEventRepo)(nil)

// fakeEventRepo is an in-memory EventRepository with deterministic
// timestamps: every mutation advances its clock by one minute.
type fakeEventRepo struct {
	events map[int64]entities.Event
	nextID int64
	now    time.Time
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events: make(map[int64]entities.Event),
		nextID: 1,
		now:    time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (r *fakeEventRepo) tick() time.Time {
	r.now = r.now.Add(time.Minute)
	return r.now
}

func (r *fakeEventRepo) Create(_ context.Context, event *entities.Event) error {
	event.ID = r.nextID
	r.nextID++
	now := r.tick()
	event.CreatedAt = now
	event.UpdatedAt = now
	r.events[event.ID] = *event
	return nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id int64) (*entities.Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return &event, nil
}

func (r *fakeEventRepo) List(_ context.Context, filter output.EventFilter) ([]entities.Event, error) {
	var out []entities.Event
	for _, event := range r.events {
		if matchesFilter(event, filter) {
			out = append(out, event)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].StartTime.Minutes() < out[j].StartTime.Minutes()
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func matchesFilter(event entities.Event, filter output.EventFilter) bool {
	if filter.FromDate != nil && event.Date.Before(*filter.FromDate) {
		return false
	}
	if filter.ToDate != nil && event.Date.After(*filter.ToDate) {
		return false
	}
	if filter.Venue != "" && !strings.Contains(strings.ToLower(event.Venue), strings.ToLower(filter.Venue)) {
		return false
	}
	if filter.Year != 0 {
		if event.Date.Year() != filter.Year {
			return false
		}
		if filter.Month != 0 && int(event.Date.Month()) != filter.Month {
			return false
		}
	}
	return true
}

func (r *fakeEventRepo) Update(_ context.Context, event *entities.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return domain.ErrEventNotFound
	}
	event.UpdatedAt = r.tick()
	r.events[event.ID] = *event
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) DeleteBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	for id, event := range r.events {
		if event.Date.Before(cutoff) {
			delete(r.events, id)
			removed++
		}
	}
	return removed, nil
}

func (r *fakeEventRepo) MonthlyTotals(_ context.Context, year int) ([]output.MonthTotal, error) {
	byMonth := make(map[int]*output.MonthTotal)
	for _, event := range r.events {
		if event.Date.Year() != year {
			continue
		}
		m := int(event.Date.Month())
		if byMonth[m] == nil {
			byMonth[m] = &output.MonthTotal{Month: m}
		}
		byMonth[m].Total++
		byMonth[m].Revenue += event.PriceOrZero()
	}
	var totals []output.MonthTotal
	for m := 1; m <= 12; m++ {
		if byMonth[m] != nil {
			totals = append(totals, *byMonth[m])
		}
	}
	return totals, nil
}

