// Package ratelimit provides per-client rate limiting using a token bucket.
package ratelimit

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds rate limiter settings.
type Config struct {
	Capacity   int     // Burst capacity per client
	RefillRate float64 // Tokens per second
}

// LoadConfig reads rate limiter settings from the environment, falling back
// to defaults suitable for a local extraction API.
func LoadConfig() Config {
	cfg := Config{Capacity: 20, RefillRate: 5}

	if v := os.Getenv("RATE_LIMIT_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Capacity = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_REFILL_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RefillRate = f
		}
	}

	return cfg
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// Limiter tracks a token bucket per client address.
type Limiter struct {
	cfg Config

	mu      sync.Mutex
	buckets map[string]*bucket
}

// NewLimiter creates a rate limiter with the given configuration.
func NewLimiter(cfg Config) *Limiter {
	return &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*bucket),
	}
}

// Allow reports whether the client may proceed, consuming one token if so.
func (l *Limiter) Allow(clientAddr string) bool {
	host, _, err := net.SplitHostPort(clientAddr)
	if err != nil {
		host = clientAddr
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[host]
	if !ok {
		b = &bucket{tokens: float64(l.cfg.Capacity), lastRefill: time.Now()}
		l.buckets[host] = b
	}

	now := time.Now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * l.cfg.RefillRate
	if b.tokens > float64(l.cfg.Capacity) {
		b.tokens = float64(l.cfg.Capacity)
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Middleware wraps a handler with rate limiting keyed on the remote address.
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(r.RemoteAddr) {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
