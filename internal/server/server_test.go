package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/portfolio-studio/internal/server/middleware"
	"github.com/jonathan/portfolio-studio/internal/server/ratelimit"
)

func testServer() *Server {
	config := &ratelimit.Config{
		Enabled: true,
		Classes: map[string]ratelimit.ClassConfig{
			ratelimit.ClassAI:      {MaxRequests: 2, Window: time.Minute, PerUser: true},
			ratelimit.ClassDefault: {MaxRequests: 100, Window: time.Minute},
		},
	}
	return &Server{
		logger:      zap.NewNop(),
		rateLimiter: ratelimit.NewLimiter(ratelimit.NewMemoryStore(), config),
	}
}

func TestHandleHealth(t *testing.T) {
	s := testServer()
	rec := httptest.NewRecorder()

	s.handleHealth(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHandleListTemplates(t *testing.T) {
	s := testServer()
	rec := httptest.NewRecorder()

	s.handleListTemplates(rec, httptest.NewRequest(http.MethodGet, "/catalog/templates", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var templates []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &templates))
	assert.NotEmpty(t, templates)
}

func TestWithClassLimitDeniesOverLimit(t *testing.T) {
	s := testServer()
	userID := uuid.New()

	handler := s.withClassLimit(ratelimit.ClassAI, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	makeRequest := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/ai/analyze", nil)
		ctx := context.WithValue(req.Context(), middleware.UserIDKey(), userID)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))
		return rec
	}

	assert.Equal(t, http.StatusOK, makeRequest().Code)
	assert.Equal(t, http.StatusOK, makeRequest().Code)

	rec := makeRequest()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "rate_limit_exceeded", body["error"])
	assert.Positive(t, body["retry_after"])
}

func TestWithClassLimitKeysPerUser(t *testing.T) {
	s := testServer()

	handler := s.withClassLimit(ratelimit.ClassAI, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	makeRequest := func(userID uuid.UUID) int {
		req := httptest.NewRequest(http.MethodPost, "/ai/analyze", nil)
		ctx := context.WithValue(req.Context(), middleware.UserIDKey(), userID)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))
		return rec.Code
	}

	first := uuid.New()
	assert.Equal(t, http.StatusOK, makeRequest(first))
	assert.Equal(t, http.StatusOK, makeRequest(first))
	assert.Equal(t, http.StatusTooManyRequests, makeRequest(first))

	// A different user has an untouched allowance.
	assert.Equal(t, http.StatusOK, makeRequest(uuid.New()))
}

func TestRateLimitHeadersOnSuccess(t *testing.T) {
	s := testServer()

	handler := s.withClassLimit(ratelimit.ClassDefault, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/portfolio", nil)
	req.RemoteAddr = "203.0.113.9:1234"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "100", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "99", rec.Header().Get("X-RateLimit-Remaining"))
}
