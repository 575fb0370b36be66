package verse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobiajayi/daily-verse-api/pkg/response"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.APIResponse {
	t.Helper()
	var resp response.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestGetVerseHandler(t *testing.T) {
	fetcher := &stubFetcher{verses: []Verse{{Text: "For God so loved", Reference: "John 3:16"}}}
	svc, _, _ := newTestService(fetcher)
	require.NoError(t, svc.Launch(context.Background()))

	h := NewHandler(svc)
	rec := httptest.NewRecorder()
	h.GetVerseHandler(rec, httptest.NewRequest(http.MethodGet, "/verse", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "open", data["stage"])
	v := data["verse"].(map[string]interface{})
	assert.Equal(t, "John 3:16", v["reference"])
}

func TestRevealCompleteHandler(t *testing.T) {
	fetcher := &stubFetcher{verses: []Verse{{Text: "v", Reference: "r"}}}
	svc, _, _ := newTestService(fetcher)
	require.NoError(t, svc.Launch(context.Background()))

	h := NewHandler(svc)

	rec := httptest.NewRecorder()
	h.RevealCompleteHandler(rec, httptest.NewRequest(http.MethodPost, "/reveal-complete", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	// No reveal in progress anymore.
	rec = httptest.NewRecorder()
	h.RevealCompleteHandler(rec, httptest.NewRequest(http.MethodPost, "/reveal-complete", nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRefreshHandlerWhileLoading(t *testing.T) {
	fetcher := &stubFetcher{verses: []Verse{{Text: "v", Reference: "r"}}}
	svc, _, _ := newTestService(fetcher)

	h := NewHandler(svc)
	rec := httptest.NewRecorder()
	h.RefreshHandler(rec, httptest.NewRequest(http.MethodPost, "/refresh", nil))

	assert.Equal(t, http.StatusConflict, rec.Code, "refresh is rejected before the first fetch completes")
}

func TestGetHistoryHandlerEmpty(t *testing.T) {
	fetcher := &stubFetcher{verses: []Verse{{Text: "v", Reference: ""}}}
	svc, _, _ := newTestService(fetcher)

	h := NewHandler(svc)
	rec := httptest.NewRecorder()
	h.GetHistoryHandler(rec, httptest.NewRequest(http.MethodGet, "/history", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	data, ok := resp.Data.([]interface{})
	require.True(t, ok, "history responds with an empty list, not null")
	assert.Empty(t, data)
}
