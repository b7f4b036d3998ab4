package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textlens/config"
	"textlens/internal/domain"
)

func testRemoteConfig(t *testing.T, endpoint string) config.RemoteConfig {
	t.Helper()
	t.Setenv("TEXTLENS_TEST_KEY", "secret")
	cfg := config.DefaultConfig().Remote
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.APIKeyEnv = "TEXTLENS_TEST_KEY"
	cfg.Timeout = 2 * time.Second
	return cfg
}

func TestHTTPAnalyzer_Analyze(t *testing.T) {
	t.Run("Should post the prompt and decode the reply", func(t *testing.T) {
		var got analyzeRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"sentiment":"ijobiy","confidence":0.87,"explanation":"Quvonchli ohang.","topic":"Yaxshi kun haqida"}`))
		}))
		defer srv.Close()

		a, err := NewHTTPAnalyzer(testRemoteConfig(t, srv.URL))
		require.NoError(t, err)

		res, err := a.Analyze(context.Background(), "Bugun ajoyib kun")
		require.NoError(t, err)
		assert.Equal(t, "ijobiy", res.Sentiment)
		assert.InDelta(t, 0.87, res.Confidence, 1e-9)
		assert.Equal(t, "Yaxshi kun haqida", res.Topic)
		assert.Equal(t, "uz", got.OutputLanguage)
		assert.Contains(t, got.Prompt, "Bugun ajoyib kun")
	})

	t.Run("Should return RemoteError on non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":"overloaded"}`))
		}))
		defer srv.Close()

		a, err := NewHTTPAnalyzer(testRemoteConfig(t, srv.URL))
		require.NoError(t, err)

		_, err = a.Analyze(context.Background(), "matn")
		var remoteErr *domain.RemoteError
		require.True(t, errors.As(err, &remoteErr))
		assert.Equal(t, "response", remoteErr.Op)
		assert.Contains(t, err.Error(), "503")
		assert.Contains(t, err.Error(), "overloaded")
	})

	t.Run("Should reject replies without a sentiment", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"confidence":0.5,"topic":"x"}`))
		}))
		defer srv.Close()

		a, err := NewHTTPAnalyzer(testRemoteConfig(t, srv.URL))
		require.NoError(t, err)

		_, err = a.Analyze(context.Background(), "matn")
		var remoteErr *domain.RemoteError
		require.True(t, errors.As(err, &remoteErr))
		assert.Equal(t, "decode", remoteErr.Op)
	})

	t.Run("Should reject confidence outside [0,1]", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"sentiment":"ijobiy","confidence":87,"topic":"x"}`))
		}))
		defer srv.Close()

		a, err := NewHTTPAnalyzer(testRemoteConfig(t, srv.URL))
		require.NoError(t, err)

		_, err = a.Analyze(context.Background(), "matn")
		assert.Error(t, err)
	})
}

func TestNewHTTPAnalyzer_MissingKey(t *testing.T) {
	cfg := config.DefaultConfig().Remote
	cfg.Endpoint = "http://localhost:1"
	cfg.APIKeyEnv = "TEXTLENS_TEST_UNSET_KEY"

	_, err := NewHTTPAnalyzer(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "TEXTLENS_TEST_UNSET_KEY")
}

func TestNewHTTPAnalyzer_MissingEndpoint(t *testing.T) {
	_, err := NewHTTPAnalyzer(config.DefaultConfig().Remote)
	assert.Error(t, err)
}
