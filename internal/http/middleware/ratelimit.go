package middleware

import (
	"net/http"
	"sync"
	"time"
)

// The public contact form is the only unauthenticated write surface, so
// it carries a per-caller throttle. Each remote address holds a token
// allowance that refills continuously and never exceeds the burst size.
type IntakeThrottle struct {
	mu           sync.Mutex
	callers      map[string]*allowance
	refillPerSec float64
	burst        float64
	stop         chan struct{}
}

type allowance struct {
	remaining float64
	touched   time.Time
}

const (
	evictEvery      = 5 * time.Minute
	callerIdleLimit = 10 * time.Minute
)

// NewIntakeThrottle creates a throttle refilling refillPerSec tokens per
// second up to burst per caller. Callers idle past callerIdleLimit are
// evicted in the background until Stop is called.
func NewIntakeThrottle(refillPerSec float64, burst int) *IntakeThrottle {
	th := &IntakeThrottle{
		callers:      make(map[string]*allowance),
		refillPerSec: refillPerSec,
		burst:        float64(burst),
		stop:         make(chan struct{}),
	}
	go th.evictLoop()
	return th
}

// Allow reports whether addr may submit now, consuming one token if so.
func (th *IntakeThrottle) Allow(addr string) bool {
	th.mu.Lock()
	defer th.mu.Unlock()

	now := time.Now()
	a, ok := th.callers[addr]
	if !ok {
		a = &allowance{remaining: th.burst, touched: now}
		th.callers[addr] = a
	}

	a.remaining += now.Sub(a.touched).Seconds() * th.refillPerSec
	if a.remaining > th.burst {
		a.remaining = th.burst
	}
	a.touched = now

	if a.remaining < 1 {
		return false
	}
	a.remaining--
	return true
}

// Stop ends the background eviction loop.
func (th *IntakeThrottle) Stop() {
	close(th.stop)
}

func (th *IntakeThrottle) evictLoop() {
	ticker := time.NewTicker(evictEvery)
	defer ticker.Stop()
	for {
		select {
		case <-th.stop:
			return
		case <-ticker.C:
			th.evictIdle(time.Now())
		}
	}
}

func (th *IntakeThrottle) evictIdle(now time.Time) {
	th.mu.Lock()
	defer th.mu.Unlock()
	cutoff := now.Add(-callerIdleLimit)
	for addr, a := range th.callers {
		if a.touched.Before(cutoff) {
			delete(th.callers, addr)
		}
	}
}

// RateLimit rejects submissions beyond the per-address allowance with
// 429 Too Many Requests.
func RateLimit(refillPerSec float64, burst int) func(http.Handler) http.Handler {
	th := NewIntakeThrottle(refillPerSec, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			addr := r.RemoteAddr
			// Prefer X-Real-Ip set by chi's RealIP middleware.
			if xri := r.Header.Get("X-Real-Ip"); xri != "" {
				addr = xri
			}
			if !th.Allow(addr) {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
