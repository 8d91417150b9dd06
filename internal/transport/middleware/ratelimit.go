package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/easi-app/easi-server/pkg/ctxutil"
)

// RateLimiter implements per-client token bucket rate limiting: each client
// holds up to requests tokens, refilled evenly over window. Clients are
// keyed by EUA ID when authenticated and by remote IP otherwise.
type RateLimiter struct {
	buckets  sync.Map // map[string]*bucket
	capacity float64
	rate     float64 // tokens per second
	window   time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

type bucket struct {
	mu         sync.Mutex
	tokens     float64
	lastRefill time.Time
}

// Limits used when NewRateLimiter gets non-positive values.
const (
	fallbackRequests = 60
	fallbackWindow   = time.Minute
)

// NewRateLimiter allows requests per window for each client and starts
// background cleanup of idle buckets. Non-positive arguments fall back to
// 60 requests per minute. Call Stop() on shutdown.
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	if requests <= 0 {
		requests = fallbackRequests
	}
	if window <= 0 {
		window = fallbackWindow
	}
	rl := &RateLimiter{
		capacity: float64(requests),
		rate:     float64(requests) / window.Seconds(),
		window:   window,
		stop:     make(chan struct{}),
	}
	go rl.cleanup(window)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// Limit rejects requests over the client's budget with 429 and Retry-After.
func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientKey(r), time.Now()) {
			retryAfter := int(1/rl.rate) + 1
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	if p, ok := ctxutil.PrincipalFromCtx(r.Context()); ok {
		return "eua:" + p.EUAID
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func (rl *RateLimiter) allow(key string, now time.Time) bool {
	val, _ := rl.buckets.LoadOrStore(key, &bucket{tokens: rl.capacity, lastRefill: now})
	b := val.(*bucket)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = min(rl.capacity, b.tokens+now.Sub(b.lastRefill).Seconds()*rl.rate)
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.buckets.Range(func(key, value any) bool {
				b := value.(*bucket)
				b.mu.Lock()
				idle := now.Sub(b.lastRefill)
				b.mu.Unlock()
				if idle > 2*rl.window {
					rl.buckets.Delete(key)
				}
				return true
			})
		}
	}
}
