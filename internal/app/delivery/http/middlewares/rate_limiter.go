package middlewares

import (
	"fmt"
	"net"
	"net/http"
	"outcomes-service/internal/pkg/constvars"
	"outcomes-service/internal/pkg/exceptions"
	"outcomes-service/internal/pkg/utils"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter throttles a single route per client IP. A client that exceeds
// its budget is blocked for blockTime.
type RateLimiter struct {
	log       *zap.Logger
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	now       func() time.Time
}

func NewRateLimiter(log *zap.Logger, rps int, per, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		log:       log,
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  rps,
		per:       per,
		blockTime: blockTime,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			utils.BuildErrorResponse(r.log, w, exceptions.ErrRemoteAddress(err, req.RemoteAddr))
			return
		}

		r.mu.Lock()

		if blockedUntil, found := r.blocked[ip]; found {
			if r.now().Before(blockedUntil) {
				r.mu.Unlock()
				r.reject(w, ip, blockedUntil)
				return
			}

			delete(r.blocked, ip)
			delete(r.limiters, ip)
		}

		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.per/time.Duration(max(r.requests, 1))), max(r.requests, 1))
			r.limiters[ip] = limiter
		}

		if !limiter.AllowN(r.now(), 1) {
			blockedUntil := r.now().Add(r.blockTime)
			r.blocked[ip] = blockedUntil
			r.mu.Unlock()
			r.reject(w, ip, blockedUntil)
			return
		}

		r.mu.Unlock()
		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) reject(w http.ResponseWriter, ip string, blockedUntil time.Time) {
	retryAfter := int(blockedUntil.Sub(r.now()).Seconds()) + 1
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(retryAfter))
	utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(fmt.Errorf("rate limit exceeded"), ip, blockedUntil.Format(time.RFC3339)))
}
