package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_CAPACITY", "")
		t.Setenv("RATE_LIMIT_REFILL_RATE", "")

		cfg := LoadConfig()
		assert.Equal(t, 20, cfg.Capacity)
		assert.Equal(t, 5.0, cfg.RefillRate)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_CAPACITY", "3")
		t.Setenv("RATE_LIMIT_REFILL_RATE", "0.5")

		cfg := LoadConfig()
		assert.Equal(t, 3, cfg.Capacity)
		assert.Equal(t, 0.5, cfg.RefillRate)
	})

	t.Run("Invalid values fall back to defaults", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_CAPACITY", "zero")
		t.Setenv("RATE_LIMIT_REFILL_RATE", "-1")

		cfg := LoadConfig()
		assert.Equal(t, 20, cfg.Capacity)
		assert.Equal(t, 5.0, cfg.RefillRate)
	})
}

func TestAllow(t *testing.T) {
	// Negligible refill so the test only observes the burst capacity.
	l := NewLimiter(Config{Capacity: 2, RefillRate: 0.0001})

	assert.True(t, l.Allow("192.0.2.1:1000"))
	assert.True(t, l.Allow("192.0.2.1:1001"))
	assert.False(t, l.Allow("192.0.2.1:1002"))

	// Buckets are keyed on host, not host:port, so a different client is
	// unaffected.
	assert.True(t, l.Allow("192.0.2.2:1000"))
}

func TestAllowBareHost(t *testing.T) {
	l := NewLimiter(Config{Capacity: 1, RefillRate: 0.0001})

	assert.True(t, l.Allow("192.0.2.9"))
	assert.False(t, l.Allow("192.0.2.9"))
}

func TestMiddleware(t *testing.T) {
	l := NewLimiter(Config{Capacity: 1, RefillRate: 0.0001})
	handler := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
