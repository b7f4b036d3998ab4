package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textlens/config"
	"textlens/internal/adapter/lexicon"
	"textlens/internal/adapter/remote"
	"textlens/internal/domain"
	"textlens/internal/logger"
	"textlens/internal/port"
	"textlens/internal/usecase"
)

func newTestServer(t *testing.T, r port.RemoteAnalyzer) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.DefaultConfig()
	uc := usecase.NewAnalyzeUseCase(cfg, lexicon.Builtin(), r, logger.Discard())
	return New(uc, cfg.Server, logger.Discard())
}

func postAnalyze(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestAnalyzeHandler_Success(t *testing.T) {
	s := newTestServer(t, nil)

	w := postAnalyze(t, s, `{"text":"Bugun ajoyib kun, men juda xursandman!"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var resp struct {
		Result string                `json:"result"`
		Report domain.AnalysisReport `json:"report"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.Result, "Matn tahlili natijalari (qisman tahlil):"))
	assert.Equal(t, domain.OriginLocal, resp.Report.Origin)
	assert.Equal(t, domain.Positive, resp.Report.Sentiment.Label)
	assert.Equal(t, 6, resp.Report.Stats.Words)
}

func TestAnalyzeHandler_Validation(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name    string
		body    string
		code    string
		message string
	}{
		{"empty text", `{"text":"  "}`, "empty-input", "Matn kiritilmadi."},
		{"missing field", `{}`, "empty-input", "Matn kiritilmadi."},
		{"malformed body", `{"text":`, "empty-input", "Matn kiritilmadi."},
		{"question", `{"text":"Qachon keladi?"}`, "not-a-statement", "Faqat matn tahlili uchun kiriting, savollarga javob berilmaydi."},
		{"too long", `{"text":"` + strings.Repeat("a", 6000) + `"}`, "too-long", "Matn 5000 belgidan oshmasligi kerak."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postAnalyze(t, s, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.message, resp.Error)
		})
	}
}

func TestAnalyzeHandler_RemoteFallback(t *testing.T) {
	s := newTestServer(t, &remote.Failing{})

	w := postAnalyze(t, s, `{"text":"Yomon kun bo'ldi."}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"origin":"local"`)
	assert.Contains(t, w.Body.String(), `"partial":true`)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, &remote.Static{})

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","remote":true}`, w.Body.String())
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t, nil)

	postAnalyze(t, s, `{"text":"Yaxshi kun."}`)
	postAnalyze(t, s, `{"text":"Nega?"}`)

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `textlens_analyses_total{origin="local"} 1`)
	assert.Contains(t, string(body), `textlens_rejections_total{reason="not-a-statement"} 1`)
	assert.Contains(t, string(body), "textlens_analysis_duration_seconds_bucket")
}

func TestMetricsDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.DefaultConfig()
	cfg.Server.Metrics = false
	s := New(usecase.NewAnalyzeUseCase(cfg, lexicon.Builtin(), nil, logger.Discard()), cfg.Server, logger.Discard())

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMiddleware(t *testing.T) {
	s := newTestServer(t, nil)

	t.Run("Should keep the caller request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("Should answer CORS preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/analyze", bytes.NewReader(nil))
		w := httptest.NewRecorder()
		s.Handler().ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
