package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslatorRendersLocale(t *testing.T) {
	tr := NewTranslator("es")

	assert.Equal(t, "Evento no encontrado", tr.T("es", "error.event_not_found", nil))
	assert.Equal(t, "Event not found", tr.T("en", "error.event_not_found", nil))
}

func TestTranslatorFallsBackToDefaultLocale(t *testing.T) {
	tr := NewTranslator("es")

	assert.Equal(t, "Evento no encontrado", tr.T("pt", "error.event_not_found", nil))
}

func TestTranslatorUnknownKeyReturnsKey(t *testing.T) {
	tr := NewTranslator("es")

	assert.Equal(t, "error.nope", tr.T("es", "error.nope", nil))
}

func TestTranslatorEmptyKey(t *testing.T) {
	tr := NewTranslator("es")

	assert.Equal(t, "", tr.T("es", "", nil))
}
