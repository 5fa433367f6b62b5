package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"agenda/pkg/agenda"
)

// clockToPg converts a time of day to a TIME column value.
func clockToPg(c agenda.ClockTime) pgtype.Time {
	us := int64(c.Minutes()) * int64(time.Minute/time.Microsecond)
	return pgtype.Time{Microseconds: us, Valid: true}
}

// optClockToPg converts an optional time of day, NULL when unset.
func optClockToPg(c *agenda.ClockTime) pgtype.Time {
	if c == nil {
		return pgtype.Time{}
	}
	return clockToPg(*c)
}

func pgToClock(t pgtype.Time) agenda.ClockTime {
	minutes := int(t.Microseconds / int64(time.Minute/time.Microsecond))
	return agenda.ClockTime{Hour: minutes / 60, Minute: minutes % 60}
}

func pgToOptClock(t pgtype.Time) *agenda.ClockTime {
	if !t.Valid {
		return nil
	}
	c := pgToClock(t)
	return &c
}
