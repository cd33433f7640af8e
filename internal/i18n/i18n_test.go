package i18n

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLanguage(t *testing.T) {
	t.Cleanup(func() { SetLanguage(English) })

	SetLanguage(Italian)
	assert.Equal(t, Italian, GetLanguage())
	assert.Equal(t, "Cestino", T().ViewTrash)

	SetLanguage("fr")
	assert.Equal(t, Italian, GetLanguage(), "unknown languages are ignored")

	SetLanguage(English)
	assert.Equal(t, "Trash", T().ViewTrash)
}

func TestTranslationsComplete(t *testing.T) {
	for lang, msgs := range translations {
		v := reflect.ValueOf(msgs)
		for i := 0; i < v.NumField(); i++ {
			assert.NotEmpty(t, v.Field(i).String(), "%s: %s is empty", lang, v.Type().Field(i).Name)
		}
	}
}

func TestFor(t *testing.T) {
	assert.Equal(t, "Seleziona lingua:", For(Italian).SetupLanguage)
	assert.Equal(t, "Select language:", For(English).SetupLanguage)
	assert.Equal(t, For(English), For("fr"))
}
