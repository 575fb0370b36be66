package verse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobiajayi/daily-verse-api/pkg/config"
)

func newTestProvider(baseURL, locale string) *Provider {
	return NewProvider(&config.Config{
		VerseAPIBaseURL: baseURL,
		Locale:          locale,
	})
}

func TestRandomParsesVerse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/web/random", r.URL.Path)
		w.Write([]byte(`{
			"translation": {"identifier": "web"},
			"random_verse": {
				"book": "John",
				"chapter": 3,
				"verse": 16,
				"text": "  For God so loved the world...\n"
			}
		}`))
	}))
	defer ts.Close()

	p := newTestProvider(ts.URL, "en")
	v, err := p.Random(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "For God so loved the world...", v.Text)
	assert.Equal(t, "John 3:16", v.Reference)
	assert.Equal(t, "web", v.Translation)
	assert.False(t, v.FetchedAt.IsZero())
}

func TestRandomLocaleSelectsTranslation(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"random_verse": {"book": "João", "chapter": 1, "verse": 1, "text": "No princípio"}}`))
	}))
	defer ts.Close()

	p := newTestProvider(ts.URL, "pt")
	v, err := p.Random(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/data/almeida/random", gotPath)
	assert.Equal(t, "João 1:1", v.Reference)
}

func TestRandomFallbackOnFailure(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"random_verse": `))
		}},
		{"missing verse record", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"something_else": true}`))
		}},
		{"empty text", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"random_verse": {"book": "John", "chapter": 1, "verse": 1, "text": "   "}}`))
		}},
		{"missing book", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"random_verse": {"text": "orphaned text"}}`))
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(tc.handler)
			defer ts.Close()

			p := newTestProvider(ts.URL, "en")
			v, err := p.Random(context.Background())

			assert.Error(t, err)
			assert.NotEmpty(t, v.Text, "fallback verse must have text")
			assert.Empty(t, v.Reference, "fallback verse must have empty reference")
		})
	}
}

func TestRandomFallbackOnConnectionError(t *testing.T) {
	// Point at a closed server.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	p := newTestProvider(url, "pt")
	v, err := p.Random(context.Background())

	assert.Error(t, err)
	assert.Equal(t, FallbackMessage("pt"), v.Text)
	assert.Empty(t, v.Reference)
}

func TestLocaleTables(t *testing.T) {
	assert.Equal(t, "web", TranslationFor("en"))
	assert.Equal(t, "almeida", TranslationFor("pt"))
	assert.Equal(t, "web", TranslationFor("xx"), "unknown locale falls back to default translation")

	assert.NotEmpty(t, FallbackMessage("xx"))
	assert.Equal(t, FallbackMessage("en"), FallbackMessage("xx"))
	assert.NotEmpty(t, ReminderTitle("xx"))
}
