package httpapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/jekabolt/grbpwr-newsletter/internal/apisrv/frontend"
	"github.com/jekabolt/grbpwr-newsletter/internal/metrics"
	mw "github.com/jekabolt/grbpwr-newsletter/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(c *Config) http.Handler {
	m := metrics.New()
	return NewRouter(c, frontend.New(nil, nil, m, false), m, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

func TestRouter_Routes(t *testing.T) {
	r := newTestRouter(&Config{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health_check", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, rec.Body.Len())
	assert.NotEmpty(t, rec.Header().Get(mw.RequestIDHeader))

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/subscriptions", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "newsletter_http_request_duration_seconds")
}

func TestRouter_CORS(t *testing.T) {
	r := newTestRouter(&Config{AllowedOrigins: []string{"https://example.com"}})

	for origin, allowed := range map[string]bool{
		"https://example.com":   true,
		"http://localhost:3000": true,
		"https://evil.com":      false,
	} {
		req := httptest.NewRequest(http.MethodGet, "/health_check", nil)
		req.Header.Set("Origin", origin)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if allowed {
			assert.Equal(t, origin, rec.Header().Get("Access-Control-Allow-Origin"), origin)
		} else {
			assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"), origin)
		}
	}
}

func TestServer_EphemeralPort(t *testing.T) {
	s := New(&Config{Address: "127.0.0.1", Port: "0"})
	require.NoError(t, s.Listen())
	require.NotZero(t, s.Port())
	require.NoError(t, s.Start(context.Background(), newTestRouter(&Config{})))

	resp, err := http.Get(s.Addr() + "/health_check")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 0, resp.ContentLength)
	assert.Empty(t, body)

	require.NoError(t, s.Stop(context.Background()))
	<-s.Done()
}

func TestIsOriginAllowed(t *testing.T) {
	assert.True(t, isOriginAllowed("https://localhost:8080", nil))
	assert.True(t, isOriginAllowed("https://any.com", []string{"*"}))
	assert.False(t, isOriginAllowed("https://any.com", []string{"https://other.com"}))
}
