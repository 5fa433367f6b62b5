package domain

import "errors"

// Domain errors.
var (
	ErrEventNotFound     = errors.New("event not found")
	ErrNameRequired      = errors.New("event name is required")
	ErrVenueRequired     = errors.New("venue is required")
	ErrDateRequired      = errors.New("date is required")
	ErrStartTimeRequired = errors.New("start time is required")
	ErrInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTime       = errors.New("invalid time, expected HH:MM")
	ErrInvalidMonth      = errors.New("month must be a number between 1 and 12")
	ErrInvalidYear       = errors.New("year must be a number")
)

// IsValidation reports whether err is a client-input failure, as opposed to
// a missing record or a store failure.
func IsValidation(err error) bool {
	for _, v := range []error{
		ErrNameRequired,
		ErrVenueRequired,
		ErrDateRequired,
		ErrStartTimeRequired,
		ErrInvalidDate,
		ErrInvalidTime,
		ErrInvalidMonth,
		ErrInvalidYear,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
