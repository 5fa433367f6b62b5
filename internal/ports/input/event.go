package input

import (
	"context"

	"agenda/internal/domain/entities"
	"agenda/pkg/agenda"
)

// CreateEventInput carries the raw fields of a creation request. Date and
// time values arrive as wire strings and are parsed by the use case.
type CreateEventInput struct {
	Name      string
	Client    *string
	Venue     string
	Date      string
	StartTime string
	EndTime   *string
	Price     *float64
	Notes     *string
}

// UpdateEventInput is a partial update: only fields whose Optional is set
// are touched. Nullable attributes use a pointer value so a present null
// clears them.
type UpdateEventInput struct {
	Name      agenda.Optional[string]
	Client    agenda.Optional[*string]
	Venue     agenda.Optional[string]
	Date      agenda.Optional[string]
	StartTime agenda.Optional[string]
	EndTime   agenda.Optional[*string]
	Price     agenda.Optional[*float64]
	Notes     agenda.Optional[*string]
}

// ListEventsInput carries the raw query filters. Empty strings mean the
// filter is absent.
type ListEventsInput struct {
	StartDate string
	EndDate   string
	Venue     string
	Month     string
	Year      string
}

type EventUseCase interface {
	CreateEvent(ctx context.Context, in CreateEventInput) (*entities.Event, error)
	ListEvents(ctx context.Context, in ListEventsInput) ([]entities.Event, error)
	GetEvent(ctx context.Context, id int64) (*entities.Event, error)
	UpdateEvent(ctx context.Context, id int64, in UpdateEventInput) (*entities.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
	CleanupExpired(ctx context.Context) (int64, error)
}
