// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// limiterCacheSize bounds how many client IPs are tracked at once.
const limiterCacheSize = 10000

// ipRateLimiter keeps a token bucket per client IP. The least recently seen
// IPs are evicted once the cache is full.
type ipRateLimiter struct {
	limiters *lru.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

// newIPRateLimiter allows perMinute attempts per IP with the given burst.
// A non-positive perMinute disables throttling.
func newIPRateLimiter(perMinute, burst int) *ipRateLimiter {
	// lru.New only fails on a non-positive size
	limiters, _ := lru.New[string, *rate.Limiter](limiterCacheSize)

	limit := rate.Inf
	if perMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	if burst < 1 {
		burst = 1
	}

	return &ipRateLimiter{
		limiters: limiters,
		limit:    limit,
		burst:    burst,
	}
}

func (l *ipRateLimiter) allow(ip string) bool {
	limiter := rate.NewLimiter(l.limit, l.burst)
	if previous, found, _ := l.limiters.PeekOrAdd(ip, limiter); found {
		limiter = previous
	}
	return limiter.Allow()
}

// withRateLimit answers 429 once a client IP runs out of attempts.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.allow(clientIP(r)) {
			logger.FromRequest(r).Warn().Str("remote_addr", r.RemoteAddr).Msg("login attempts throttled")
			observeAction(actionFromRequest(r), metrics.OutcomeThrottled)

			reply := models.NewSubmissionReply(models.Credentials{}, nil, messageTooManyAttempts)
			_, _ = utils.WriteJSON(w, reply, statusFromError(errTooManyAttempts))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of RemoteAddr, which middleware.RealIP has
// already replaced with the proxied client address when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
