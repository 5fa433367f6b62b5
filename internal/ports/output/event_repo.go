package output

import (
	"context"
	"time"

	"agenda/internal/domain/entities"
)

// EventFilter narrows a listing. Zero values mean "no constraint"; Month is
// only applied together with Year.
type EventFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Venue    string // case-insensitive substring
	Month    int
	Year     int
	Limit    int
}

// MonthTotal is one month's event count and revenue within a year.
type MonthTotal struct {
	Month   int
	Total   int
	Revenue float64
}

type EventRepository interface {
	// Create persists the event and fills ID, CreatedAt and UpdatedAt.
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id int64) (*entities.Event, error)
	// List returns events matching filter, ordered by date then start time.
	List(ctx context.Context, filter EventFilter) ([]entities.Event, error)
	// Update rewrites all mutable columns and refreshes UpdatedAt.
	Update(ctx context.Context, event *entities.Event) error
	Delete(ctx context.Context, id int64) error
	// DeleteBefore removes events dated strictly before cutoff and returns
	// how many were removed.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
	// MonthlyTotals groups the year's events by month; months without
	// events are absent from the result.
	MonthlyTotals(ctx context.Context, year int) ([]MonthTotal, error)
}
