package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fawzia2025/cb-care-live/pkg/logger"
)

func newTestRouter(t *testing.T) (*bytes.Buffer, *bytes.Buffer, http.Handler) {
	t.Helper()
	var logBuf, accessBuf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logBuf, nil))

	r := NewRouter(RouterParams{Log: log, HTTPLogger: logger.NewHTTPLoggerWriter(&accessBuf)})
	r.Get("/hello", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hi"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	return &logBuf, &accessBuf, r
}

func TestRouter_LogsRequests(t *testing.T) {
	logBuf, accessBuf, r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/hello", nil)
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logBuf.String(), "uri=/hello")
	assert.Contains(t, logBuf.String(), "scope=http")
	assert.Contains(t, accessBuf.String(), "GET /hello 200")
	assert.Contains(t, accessBuf.String(), `"test-agent"`)
}

func TestRouter_SkipsHealth(t *testing.T) {
	logBuf, accessBuf, r := newTestRouter(t)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Empty(t, logBuf.String())
	assert.Empty(t, accessBuf.String())
}

func TestRouter_RecoversPanics(t *testing.T) {
	_, accessBuf, r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, accessBuf.String(), "GET /boom 500")
}

func TestRouter_ServesStaticAssets(t *testing.T) {
	_, _, r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/css/site.css", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Header().Get("Content-Type"), "text/css"))
	assert.Contains(t, rec.Body.String(), ".hero")
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	assert.Equal(t, "203.0.113.7", clientIP(req))

	req.RemoteAddr = "203.0.113.8"
	assert.Equal(t, "203.0.113.8", clientIP(req))
}
