package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_LocalizedMessages(t *testing.T) {
	tr := NewTranslator("pt")

	assert.Equal(t, "Evento criado com sucesso", tr.T("pt", "event_created", nil))
	assert.Equal(t, "Event created successfully", tr.T("en", "event_created", nil))
	assert.Equal(t, "Segunda", tr.T("pt", "weekday_monday", nil))
	assert.Equal(t, "Fev", tr.T("pt", "month_abbr_2", nil))
	assert.Equal(t, "Feb", tr.T("en", "month_abbr_2", nil))
}

func TestTranslator_Templating(t *testing.T) {
	tr := NewTranslator("pt")

	got := tr.T("pt", "cleanup_done", map[string]any{"Count": 2})
	assert.Equal(t, "2 eventos vencidos foram excluídos", got)
}

func TestTranslator_Fallbacks(t *testing.T) {
	tr := NewTranslator("pt")

	// Unknown locale falls back to the default language.
	assert.Equal(t, "Evento não encontrado", tr.T("ja", "event_not_found", nil))
	// Unknown key falls back to the key itself.
	assert.Equal(t, "no_such_key", tr.T("pt", "no_such_key", nil))
	assert.Empty(t, tr.T("pt", "", nil))
}
