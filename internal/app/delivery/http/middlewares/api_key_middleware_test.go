package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"outcomes-service/internal/app/config"
	"outcomes-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testAPIKey = "test-outcomes-api-key-12345"

func newAPIKeyMiddlewares(t *testing.T, withHash bool) *Middlewares {
	t.Helper()
	internalConfig := &config.InternalConfig{}
	if withHash {
		hash, err := bcrypt.GenerateFromPassword([]byte(testAPIKey), bcrypt.MinCost)
		require.NoError(t, err)
		internalConfig.App.APIKeyHash = string(hash)
	}
	return &Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: internalConfig,
	}
}

func successHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})
}

func TestAPIKeyAuth_Optional(t *testing.T) {
	middlewares := newAPIKeyMiddlewares(t, true)

	var captured context.Context
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Context()
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	t.Run("No API Key - Should Pass Unmarked", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/joints", nil)

		rr := httptest.NewRecorder()
		middlewares.APIKeyAuth(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		_, ok := captured.Value(ContextAPIKeyAuth).(bool)
		assert.False(t, ok, "ContextAPIKeyAuth should not be set without a key")
	})

	t.Run("Valid API Key - Should Mark Context", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/assessments", nil)
		req.Header.Set(constvars.HeaderXAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		middlewares.APIKeyAuth(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		apiKeyAuth, ok := captured.Value(ContextAPIKeyAuth).(bool)
		assert.True(t, ok)
		assert.True(t, apiKeyAuth)
	})

	t.Run("Invalid API Key - Should Fail", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/assessments", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "invalid-api-key")

		rr := httptest.NewRecorder()
		middlewares.APIKeyAuth(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Case Sensitivity", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/assessments", nil)
		req.Header.Set(constvars.HeaderXAPIKey, "TEST-OUTCOMES-API-KEY-12345")

		rr := httptest.NewRecorder()
		middlewares.APIKeyAuth(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestRequireAPIKey(t *testing.T) {
	middlewares := newAPIKeyMiddlewares(t, true)
	handler := middlewares.APIKeyAuth(middlewares.RequireAPIKey(successHandler()))

	t.Run("Valid API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/assessments", nil)
		req.Header.Set(constvars.HeaderXAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "success", rr.Body.String())
	})

	t.Run("Missing API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/assessments", nil)

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientAPIKeyRequired)
	})

	t.Run("Whitespace in API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/assessments", nil)
		req.Header.Set(constvars.HeaderXAPIKey, " "+testAPIKey+" ")

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Every Method", func(t *testing.T) {
		for _, method := range []string{"GET", "POST", "PUT", "DELETE"} {
			req := httptest.NewRequest(method, "/api/v1/assessments/run", nil)
			req.Header.Set(constvars.HeaderXAPIKey, testAPIKey)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code, "method %s", method)
		}
	})
}

func TestRequireAPIKey_OpenWithoutHash(t *testing.T) {
	middlewares := newAPIKeyMiddlewares(t, false)
	handler := middlewares.APIKeyAuth(middlewares.RequireAPIKey(successHandler()))

	req := httptest.NewRequest("POST", "/api/v1/assessments", nil)
	req.Header.Set(constvars.HeaderXAPIKey, "anything")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
