package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHandler_LimitsBurstPerIP(t *testing.T) {
	l := NewIPRateLimiter(60)
	h := l.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	status := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 5; i++ {
		if got := status("10.0.0.1:1234"); got != http.StatusOK {
			t.Fatalf("request %d within burst must pass, got %d", i, got)
		}
	}
	if got := status("10.0.0.1:1234"); got != http.StatusTooManyRequests {
		t.Fatalf("request over burst must answer 429, got %d", got)
	}

	// buckets are per IP, a different client is unaffected
	if got := status("10.0.0.2:1234"); got != http.StatusOK {
		t.Fatalf("second client must have its own bucket, got %d", got)
	}
}

func TestMaybeSweep_DropsStaleVisitors(t *testing.T) {
	l := NewIPRateLimiter(60)

	l.getLimiter("10.0.0.1")
	l.getLimiter("10.0.0.2")

	// age the first visitor beyond the TTL and force the next sweep
	v, ok := l.visitors.Load("10.0.0.1")
	if !ok {
		t.Fatal("visitor missing")
	}
	v.(*visitor).lastSeen.Store(time.Now().Add(-2 * visitorTTL).UnixNano())
	l.sweepMu.Lock()
	l.nextSweep = time.Now().Add(-time.Second)
	l.sweepMu.Unlock()

	l.getLimiter("10.0.0.3")

	if _, ok := l.visitors.Load("10.0.0.1"); ok {
		t.Fatal("stale visitor survived the sweep")
	}
	if _, ok := l.visitors.Load("10.0.0.2"); !ok {
		t.Fatal("fresh visitor must survive the sweep")
	}
}
