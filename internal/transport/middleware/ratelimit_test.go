package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func hit(h http.Handler, path, remote string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = remote
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()
	handler := rl.Limit(5)(okHandler())

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(handler, "/api/v1/sentences", "1.2.3.4:1234").Code, "request %d", i)
	}

	rec := hit(handler, "/api/v1/sentences", "1.2.3.4:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "13", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
}

func TestRateLimiter_KeysByHost(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()
	handler := rl.Limit(2)(okHandler())

	hit(handler, "/x", "1.1.1.1:1000")
	hit(handler, "/x", "1.1.1.1:2000")

	// Another port on the same host shares the bucket.
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "/x", "1.1.1.1:3000").Code)
	assert.Equal(t, http.StatusOK, hit(handler, "/x", "2.2.2.2:1000").Code)
}

func TestRateLimiter_ExemptPaths(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()
	handler := rl.Limit(1, "/live", "/metrics")(okHandler())

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(handler, "/live", "5.5.5.5:1").Code)
	}
	assert.Equal(t, http.StatusOK, hit(handler, "/x", "5.5.5.5:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "/x", "5.5.5.5:1").Code)
}

func TestRateLimiter_TokenRefill(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	// 60 per minute is one token per second.
	handler := rl.Limit(60)(okHandler())
	for i := 0; i < 60; i++ {
		hit(handler, "/x", "3.3.3.3:1234")
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(handler, "/x", "3.3.3.3:1234").Code)

	time.Sleep(1100 * time.Millisecond)
	assert.Equal(t, http.StatusOK, hit(handler, "/x", "3.3.3.3:1234").Code)
}

func TestRateLimiter_StopLeavesNoGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	rl := NewRateLimiter(10 * time.Millisecond)
	rl.Stop()
	time.Sleep(20 * time.Millisecond)
}
