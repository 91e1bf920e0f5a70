package http

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// loginLimiter keeps one token bucket per client address.
type loginLimiter struct {
	rps   rate.Limit
	burst int

	limiters sync.Map // map[string]*rate.Limiter
}

// newLoginLimiter returns nil for a non-positive rate, which disables
// limiting.
func newLoginLimiter(rps float64, burst int) *loginLimiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &loginLimiter{rps: rate.Limit(rps), burst: burst}
}

func (l *loginLimiter) allow(key string) bool {
	v, _ := l.limiters.LoadOrStore(key, rate.NewLimiter(l.rps, l.burst))
	return v.(*rate.Limiter).Allow()
}

// withLoginRateLimit answers 429 once a client exhausted its bucket.
func (h *Handler) withLoginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.loginLimiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		if !h.loginLimiter.allow(clientIP(r)) {
			h.metrics.rateLimitRejected.Inc()
			w.Header().Set("Retry-After", "1")
			writeError(w, r, ErrTooManyRequests)
			return
		}

		h.metrics.rateLimitAllowed.Inc()
		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port from RemoteAddr. Proxy headers only count when
// the router runs chi's RealIP, which happens with trust-proxy enabled.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
