package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter(t *testing.T) {
	rl := NewIPRateLimiter(3, time.Minute)
	defer rl.Stop()
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/api/auth/send-code", nil)
		r.RemoteAddr = addr
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, r)
		return rr
	}

	for range 3 {
		assert.Equal(t, http.StatusOK, do("192.168.1.10:4000").Code)
	}
	rr := do("192.168.1.10:4001")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, do("192.168.1.11:4000").Code)
	assert.Equal(t, 2, rl.Len())
}

func TestIPRateLimiterCleanup(t *testing.T) {
	rl := NewIPRateLimiter(5, time.Minute)
	defer rl.Stop()
	rl.get("10.0.0.1")
	rl.get("10.0.0.2")

	rl.cleanup(time.Now().Add(time.Minute))
	assert.Equal(t, 2, rl.Len())

	rl.cleanup(time.Now().Add(3 * time.Minute))
	assert.Equal(t, 0, rl.Len())
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "203.0.113.5:8080"
	assert.Equal(t, "203.0.113.5", clientIP(r))
	r.RemoteAddr = "203.0.113.5"
	assert.Equal(t, "203.0.113.5", clientIP(r))
}

func TestStopIsIdempotent(t *testing.T) {
	rl := NewIPRateLimiter(1, time.Minute)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
