package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/adcopy-backend/internal/metrics"
	"github.com/heartmarshall/adcopy-backend/pkg/ctxutil"
)

// bucketIdleTTL is how long an untouched bucket survives a sweep.
const bucketIdleTTL = 10 * time.Minute

// RateLimiter is a per-caller token bucket. Callers are keyed by user ID when
// authenticated, by client IP otherwise.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

type bucket struct {
	tokens   float64
	capacity float64
	perSec   float64
	seen     time.Time
}

// NewRateLimiter starts a limiter that sweeps idle buckets every
// sweepInterval. Call Stop on shutdown.
func NewRateLimiter(sweepInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.sweepLoop(sweepInterval)
	return rl
}

// Stop ends the sweep goroutine. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows perMinute requests per caller with a burst of perMinute.
// A non-positive perMinute disables limiting.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if perMinute <= 0 {
			return next
		}
		retryAfter := strconv.Itoa(60/perMinute + 1)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.take(callerKey(r), perMinute) {
				metrics.RecordRateLimited()
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func callerKey(r *http.Request) string {
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + userID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func (rl *RateLimiter) take(key string, perMinute int) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		capacity := float64(perMinute)
		b = &bucket{tokens: capacity, capacity: capacity, perSec: capacity / 60, seen: now}
		rl.buckets[key] = b
	}

	b.tokens = min(b.capacity, b.tokens+now.Sub(b.seen).Seconds()*b.perSec)
	b.seen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.buckets {
		if now.Sub(b.seen) > bucketIdleTTL {
			delete(rl.buckets, key)
		}
	}
}

func (rl *RateLimiter) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}
