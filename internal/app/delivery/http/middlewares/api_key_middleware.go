package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"outcomes-service/internal/pkg/constvars"
	"outcomes-service/internal/pkg/exceptions"
	"outcomes-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	ContextAPIKeyAuth constvars.ContextKey = "api_key_auth"
)

// APIKeyAuth checks an optional x-api-key header against the configured
// bcrypt hash. Requests without the header pass through unmarked.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)
		hash := m.InternalConfig.App.APIKeyHash

		if apiKey == "" || hash == "" {
			next.ServeHTTP(w, r)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(apiKey)); err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(err))
			return
		}

		ctx := context.WithValue(r.Context(), ContextAPIKeyAuth, true)

		m.Log.Info("API Key authentication successful",
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAPIKey rejects requests that APIKeyAuth did not authenticate. It is
// a no-op while no hash is configured.
func (m *Middlewares) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.InternalConfig.App.APIKeyHash == "" {
			next.ServeHTTP(w, r)
			return
		}

		if apiKeyAuth, ok := r.Context().Value(ContextAPIKeyAuth).(bool); ok && apiKeyAuth {
			next.ServeHTTP(w, r)
			return
		}

		utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyRequired(fmt.Errorf("%s header missing or unchecked", constvars.HeaderXAPIKey)))
	})
}
