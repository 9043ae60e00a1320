package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// ConditionalRateLimit applies different rate limits based on authentication method
func (m *Middlewares) ConditionalRateLimit(normalLimiter, apiKeyLimiter func(next http.Handler) http.Handler) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		normal := normalLimiter(next)
		apiKey := apiKeyLimiter(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKeyAuth, ok := r.Context().Value(ContextAPIKeyAuth).(bool); ok && apiKeyAuth {
				apiKey.ServeHTTP(w, r)
			} else {
				normal.ServeHTTP(w, r)
			}
		})
	}
}

// CreateRateLimiters creates the rate limiters for normal and API key requests
func (m *Middlewares) CreateRateLimiters() (normalLimiter, apiKeyLimiter func(next http.Handler) http.Handler) {
	normalLimiter = httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
	apiKeyLimiter = httprate.LimitByIP(m.InternalConfig.App.APIKeyRateLimit, time.Second)
	return normalLimiter, apiKeyLimiter
}

// CreateAnswerRateLimiter throttles answer submissions per client and blocks
// clients that keep going past the budget.
func (m *Middlewares) CreateAnswerRateLimiter() *RateLimiter {
	return NewRateLimiter(
		m.Log,
		m.InternalConfig.App.AnswerRateLimit,
		time.Second,
		time.Duration(m.InternalConfig.App.AnswerBlockTimeInSeconds)*time.Second,
	)
}
