package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"outcomes-service/internal/app/config"
	"outcomes-service/internal/pkg/constvars"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{})
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := newTestMiddlewares()

	var seen string
	handler := middlewares.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	t.Run("generated when absent", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/api/v1/joints", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("client header is kept", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/joints", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-123")

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-123", seen)
		assert.Equal(t, "client-123", rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestLoggingKeepsStatus(t *testing.T) {
	middlewares := newTestMiddlewares()
	handler := middlewares.Logging(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	middlewares := newTestMiddlewares()

	tests := []struct {
		name  string
		value interface{}
	}{
		{"string", "boom"},
		{"error", errors.New("boom")},
		{"other", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middlewares.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.value)
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest("POST", "/api/v1/assessments/x/answers", nil))

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body["message"])
		})
	}
}

func TestRateLimiterBlocksAfterBudget(t *testing.T) {
	current := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(zap.NewNop(), 2, time.Second, 30*time.Second)
	limiter.now = func() time.Time { return current }
	handler := limiter.Limit(successHandler())

	call := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/v1/assessments/x/answers", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:1000").Code)
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1001").Code)

	blocked := call("10.0.0.1:1002")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "31", blocked.Header().Get(constvars.HeaderRetryAfter))

	assert.Equal(t, http.StatusOK, call("10.0.0.2:1000").Code, "other clients are unaffected")

	current = current.Add(10 * time.Second)
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1003").Code, "still blocked")

	current = current.Add(21 * time.Second)
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1004").Code, "block expired")
}

func TestRateLimiterRejectsBadRemoteAddress(t *testing.T) {
	limiter := NewRateLimiter(zap.NewNop(), 1, time.Second, time.Second)
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "not-an-address"

	rr := httptest.NewRecorder()
	limiter.Limit(successHandler()).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
