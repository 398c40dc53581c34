package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/typist"
	"github.com/aretw0/typist/pkg/adapters/memory"
	"github.com/aretw0/typist/pkg/domain"
	"github.com/aretw0/typist/pkg/middleware"
	"github.com/aretw0/typist/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (http.Handler, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	engine := typist.New(
		typist.WithProvider(memory.NewFromMap(map[int]domain.TextInjectMode{
			3: domain.TextInjectModeClipboard,
		})),
		typist.WithMetrics(observability.NewMetrics(reg)),
	)
	return NewHandler(engine, WithGatherer(reg)), reg
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/v1/translate", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestTranslate_SingleEvent(t *testing.T) {
	h, _ := newTestHandler(t)

	w := post(t, h, `{"source_id":1,"type":"rendered","payload":{"match_id":3,"body":"Dear Sir,"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`[{"source_id":1,"type":"text_inject","payload":{"text":"Dear Sir,","force_mode":"clipboard"}}]`,
		w.Body.String())
}

func TestTranslate_Batch(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `[
		{"source_id":1,"type":"trigger_compensation","payload":{"trigger":" :hi","left_separator":" "}},
		{"source_id":1,"type":"cursor_hint_compensation","payload":{"cursor_hint_back_count":2}},
		{"source_id":1,"type":"match_selected","payload":{"chosen_id":4}}
	]`
	w := post(t, h, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out []domain.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 3)

	assert.Equal(t, domain.NewKeySequenceInject(1, domain.KeyBackspace, 3), out[0])
	assert.Equal(t, domain.NewKeySequenceInject(1, domain.KeyArrowLeft, 2), out[1])
	assert.Equal(t, domain.EventType("match_selected"), out[2].Type)
}

func TestTranslate_KeepsMarkup(t *testing.T) {
	h, _ := newTestHandler(t)

	w := post(t, h, `{"type":"rendered","payload":{"match_id":1,"body":"<b>a & b</b>"}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"text":"<b>a & b</b>"`)
}

func TestTranslate_HugeCursorHintIsClamped(t *testing.T) {
	h, _ := newTestHandler(t)

	w := post(t, h, `{"type":"cursor_hint_compensation","payload":{"cursor_hint_back_count":1125899906842624}}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out []domain.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, domain.NewKeySequenceInject(0, domain.KeyArrowLeft, middleware.DefaultMaxKeyCount), out[0])
}

func TestTranslate_BadRequests(t *testing.T) {
	h, _ := newTestHandler(t)

	for name, body := range map[string]string{
		"empty":        "",
		"not json":     "hello",
		"missing type": `{"payload":{}}`,
		"bad batch":    `[{"type":"rendered","payload":{"match_id":"x"}}]`,
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, post(t, h, body).Code)
		})
	}
}

func TestTranslate_BodyLimit(t *testing.T) {
	engine := typist.New()
	h := NewHandler(engine, WithMaxBodyBytes(16))

	w := post(t, h, `{"type":"rendered","payload":{"match_id":1,"body":"far too long for the limit"}}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHealthAndInfo(t *testing.T) {
	h, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/info", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), typist.Version)
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)
	post(t, h, `{"type":"cursor_hint_compensation","payload":{"cursor_hint_back_count":1}}`)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `typist_events_translated_total{kind="cursor_hint_compensation"} 1`)
}

func TestMetricsEndpoint_DisabledWithoutGatherer(t *testing.T) {
	h := NewHandler(typist.New())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/v1/translate", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
