package httpapi

import (
	"encoding/json"
	"time"

	"agenda/internal/domain/entities"
	"agenda/pkg/agenda"
)

// eventDTO is the wire shape of an event; unset optional fields serialize
// as null.
type eventDTO struct {
	ID        int64    `json:"id"`
	Name      string   `json:"nome_evento"`
	Client    *string  `json:"cliente"`
	Venue     string   `json:"local"`
	Date      string   `json:"data"`
	StartTime string   `json:"horario_inicio"`
	EndTime   *string  `json:"horario_fim"`
	Price     *float64 `json:"valor"`
	Notes     *string  `json:"observacoes"`
	CreatedAt string   `json:"criado_em"`
	UpdatedAt string   `json:"atualizado_em"`
}

func toEventDTO(e *entities.Event) eventDTO {
	dto := eventDTO{
		ID:        e.ID,
		Name:      e.Name,
		Client:    e.Client,
		Venue:     e.Venue,
		Date:      agenda.FormatDate(e.Date),
		StartTime: e.StartTime.String(),
		Price:     e.Price,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
	if e.EndTime != nil {
		s := e.EndTime.String()
		dto.EndTime = &s
	}
	return dto
}

func toEventDTOs(events []entities.Event) []eventDTO {
	out := make([]eventDTO, len(events))
	for i := range events {
		out[i] = toEventDTO(&events[i])
	}
	return out
}

// venuePair serializes a venue ranking entry as a ["venue", count] pair,
// the shape the frontend charts expect.
type venuePair entities.VenueCount

func (p venuePair) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Venue, p.Count})
}

func toVenuePairs(venues []entities.VenueCount) []venuePair {
	out := make([]venuePair, len(venues))
	for i, v := range venues {
		out[i] = venuePair(v)
	}
	return out
}
