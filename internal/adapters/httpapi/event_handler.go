package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agenda/internal/ports/input"
	"agenda/pkg/agenda"
)

type createEventRequest struct {
	Name      string   `json:"nome_evento"`
	Client    *string  `json:"cliente"`
	Venue     string   `json:"local"`
	Date      string   `json:"data"`
	StartTime string   `json:"horario_inicio"`
	EndTime   *string  `json:"horario_fim"`
	Price     *float64 `json:"valor"`
	Notes     *string  `json:"observacoes"`
}

type updateEventRequest struct {
	Name      agenda.Optional[string]   `json:"nome_evento"`
	Client    agenda.Optional[*string]  `json:"cliente"`
	Venue     agenda.Optional[string]   `json:"local"`
	Date      agenda.Optional[string]   `json:"data"`
	StartTime agenda.Optional[string]   `json:"horario_inicio"`
	EndTime   agenda.Optional[*string]  `json:"horario_fim"`
	Price     agenda.Optional[*float64] `json:"valor"`
	Notes     agenda.Optional[*string]  `json:"observacoes"`
}

func (h *Handler) ListEvents(c *gin.Context) {
	events, err := h.events.ListEvents(c.Request.Context(), input.ListEventsInput{
		StartDate: c.Query("data_inicio"),
		EndDate:   c.Query("data_fim"),
		Venue:     c.Query("local"),
		Month:     c.Query("mes"),
		Year:      c.Query("ano"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"eventos": toEventDTOs(events),
		"total":   len(events),
	})
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   h.message("invalid_body", nil),
		})
		return
	}

	event, err := h.events.CreateEvent(c.Request.Context(), input.CreateEventInput{
		Name:      req.Name,
		Client:    req.Client,
		Venue:     req.Venue,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Price:     req.Price,
		Notes:     req.Notes,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"evento":  toEventDTO(event),
		"message": h.message("event_created", nil),
	})
}

func (h *Handler) GetEvent(c *gin.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}
	event, err := h.events.GetEvent(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"evento":  toEventDTO(event),
	})
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}
	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   h.message("invalid_body", nil),
		})
		return
	}

	event, err := h.events.UpdateEvent(c.Request.Context(), id, input.UpdateEventInput{
		Name:      req.Name,
		Client:    req.Client,
		Venue:     req.Venue,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Price:     req.Price,
		Notes:     req.Notes,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"evento":  toEventDTO(event),
		"message": h.message("event_updated", nil),
	})
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}
	if err := h.events.DeleteEvent(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": h.message("event_deleted", nil),
	})
}

func (h *Handler) CleanupEvents(c *gin.Context) {
	count, err := h.events.CleanupExpired(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": h.message("cleanup_done", map[string]any{"Count": count}),
		"count":   count,
	})
}

// eventID parses the :id path segment. A non-numeric id behaves like a
// missing record.
func (h *Handler) eventID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   h.message("event_not_found", nil),
		})
		return 0, false
	}
	return id, true
}
