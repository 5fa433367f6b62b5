package entities

import (
	"time"

	"agenda/pkg/agenda"
)

// Event is a scheduled booking. Optional attributes are pointers so that an
// unset value survives the round trip to the store as NULL.
type Event struct {
	ID        int64
	Name      string
	Client    *string
	Venue     string
	Date      time.Time // calendar date, midnight UTC
	StartTime agenda.ClockTime
	EndTime   *agenda.ClockTime
	Price     *float64
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PriceOrZero returns the price, treating unset as 0.
func (e *Event) PriceOrZero() float64 {
	if e.Price == nil {
		return 0
	}
	return *e.Price
}
