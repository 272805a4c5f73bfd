package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_LoadsEmbeddedLocales(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	assert.Contains(t, catalog.messages, "en")
	assert.Contains(t, catalog.messages, "es")
}

func TestCatalog_Match(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{"empty header", "", "en"},
		{"plain english", "en", "en"},
		{"plain spanish", "es", "es"},
		{"regional spanish", "es-MX,es;q=0.9", "es"},
		{"quality ordering", "fr;q=0.9,es;q=0.8", "es"},
		{"unsupported language", "de", "en"},
		{"garbage header", ";;;", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.Match(tt.accept))
		})
	}
}

func TestCatalog_Message(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	assert.Equal(t, "Building not found", catalog.Message("en", "BUILDING_NOT_FOUND", "fallback"))
	assert.Equal(t, "Edificio no encontrado", catalog.Message("es", "BUILDING_NOT_FOUND", "fallback"))

	// Unknown language falls back to the default catalog.
	assert.Equal(t, "Building not found", catalog.Message("de", "BUILDING_NOT_FOUND", "fallback"))

	// Unknown code falls back to the provided text.
	assert.Equal(t, "fallback", catalog.Message("en", "NO_SUCH_CODE", "fallback"))
}

func TestCatalog_LocalesCoverSameCodes(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)

	for code := range catalog.messages["en"] {
		_, ok := catalog.messages["es"][code]
		assert.True(t, ok, "missing spanish translation for %s", code)
	}
}
