package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"agenda/internal/application"
	"agenda/internal/domain"
	"agenda/internal/ports/input"
	"agenda/internal/ports/output"
)

// Compile-time check that the application services satisfy the input ports.
var (
	_ input.EventUseCase  = (*application.EventService)(nil)
	_ input.ReportUseCase = (*application.ReportService)(nil)
)

// Handler exposes the event API over gin. All responses carry a success
// flag; failures add a localized error message.
type Handler struct {
	events  input.EventUseCase
	reports input.ReportUseCase
	tr      output.T
	locale  string
}

func NewHandler(events input.EventUseCase, reports input.ReportUseCase, tr output.T, locale string) *Handler {
	return &Handler{
		events:  events,
		reports: reports,
		tr:      tr,
		locale:  locale,
	}
}

var validationKeys = map[error]string{
	domain.ErrNameRequired:      "name_required",
	domain.ErrVenueRequired:     "venue_required",
	domain.ErrDateRequired:      "date_required",
	domain.ErrStartTimeRequired: "start_time_required",
	domain.ErrInvalidDate:       "invalid_date",
	domain.ErrInvalidTime:       "invalid_time",
	domain.ErrInvalidMonth:      "invalid_month",
	domain.ErrInvalidYear:       "invalid_year",
}

// fail maps a use-case error to a status code and localized message.
func (h *Handler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	key := "internal_error"
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		status = http.StatusNotFound
		key = "event_not_found"
	case domain.IsValidation(err):
		status = http.StatusBadRequest
		for sentinel, k := range validationKeys {
			if errors.Is(err, sentinel) {
				key = k
				break
			}
		}
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   h.tr.T(h.locale, key, nil),
	})
}

func (h *Handler) message(key string, data map[string]any) string {
	return h.tr.T(h.locale, key, data)
}
