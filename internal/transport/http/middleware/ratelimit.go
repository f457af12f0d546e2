package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/apostle2t/jobboard/pkg/httputil"
)

const (
	visitorTTL    = 5 * time.Minute
	sweepInterval = time.Minute
)

// IPRateLimiter keeps a token bucket per client IP. Stale buckets are
// swept inline on the request path, at most once per interval, so the
// limiter owns no goroutine and needs nothing stopped on shutdown.
type IPRateLimiter struct {
	visitors sync.Map
	rps      rate.Limit
	burst    int

	sweepMu   sync.Mutex
	nextSweep time.Time
	ttl       time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

func NewIPRateLimiter(perMinute int) *IPRateLimiter {
	return &IPRateLimiter{
		rps:       rate.Limit(float64(perMinute) / 60.0),
		burst:     5,
		nextSweep: time.Now().Add(sweepInterval),
		ttl:       visitorTTL,
	}
}

func (l *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	now := time.Now()
	l.maybeSweep(now)

	if v, ok := l.visitors.Load(ip); ok {
		vi := v.(*visitor)
		vi.lastSeen.Store(now.UnixNano())
		return vi.limiter
	}

	vi := &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
	vi.lastSeen.Store(now.UnixNano())
	if prev, loaded := l.visitors.LoadOrStore(ip, vi); loaded {
		return prev.(*visitor).limiter
	}
	return vi.limiter
}

func (l *IPRateLimiter) maybeSweep(now time.Time) {
	l.sweepMu.Lock()
	if now.Before(l.nextSweep) {
		l.sweepMu.Unlock()
		return
	}
	l.nextSweep = now.Add(sweepInterval)
	l.sweepMu.Unlock()

	cutoff := now.Add(-l.ttl).UnixNano()
	l.visitors.Range(func(k, v any) bool {
		if v.(*visitor).lastSeen.Load() < cutoff {
			l.visitors.Delete(k)
		}
		return true
	})
}

func (l *IPRateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !l.getLimiter(ip).Allow() {
			slog.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
			httputil.Error(r.Context(), w, http.StatusTooManyRequests, "rate limit exceeded", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
