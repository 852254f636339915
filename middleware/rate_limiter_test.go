package middleware

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestTokenBucket(t *testing.T) {
	tb := newTokenBucket(0.0, 3) // no refill within the test run

	for i := 0; i < 3; i++ {
		if !tb.allow() {
			t.Fatalf("request %d was rejected below capacity", i+1)
		}
	}
	if tb.allow() {
		t.Error("request above capacity was allowed")
	}
}

func TestRateLimiterPerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// 2 requests per long window: no measurable refill during the test.
	rl := NewRateLimiter(3600, 2)
	router := gin.New()
	router.Use(rl.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(ip string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		req.RemoteAddr = ip + ":12345"
		router.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if code := do("10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d: status %d, want 200", i+1, code)
		}
	}
	if code := do("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Errorf("over-limit request: status %d, want 429", code)
	}

	// A different client has its own bucket.
	if code := do("10.0.0.2"); code != http.StatusOK {
		t.Errorf("fresh client: status %d, want 200", code)
	}
}

func TestRateLimiterSweepsIdleBuckets(t *testing.T) {
	rl := NewRateLimiter(3600, 5)
	rl.bucketFor("10.0.0.1").allow()
	rl.bucketFor("10.0.0.2").allow()

	// Nothing is idle relative to a cutoff in the past.
	rl.sweepStale(time.Now().Add(-time.Minute))
	rl.bucketMu.Lock()
	kept := len(rl.buckets)
	rl.bucketMu.Unlock()
	if kept != 2 {
		t.Fatalf("%d buckets after no-op sweep, want 2", kept)
	}

	// Both clients are idle relative to a cutoff past their last request.
	rl.sweepStale(time.Now().Add(time.Minute))
	rl.bucketMu.Lock()
	kept = len(rl.buckets)
	rl.bucketMu.Unlock()
	if kept != 0 {
		t.Errorf("%d buckets after sweep, want 0", kept)
	}
}

func TestNewRateLimiterClampsWindow(t *testing.T) {
	for _, windowSec := range []int{0, -10} {
		rl := NewRateLimiter(windowSec, 3)
		if math.IsInf(rl.rate, 1) || math.IsNaN(rl.rate) {
			t.Fatalf("window %d: refill rate is %f", windowSec, rl.rate)
		}
		tb := rl.bucketFor("10.0.0.1")
		for i := 0; i < 3; i++ {
			if !tb.allow() {
				t.Fatalf("window %d: request %d rejected below capacity", windowSec, i+1)
			}
		}
		if tb.allow() {
			t.Errorf("window %d: request above capacity was allowed", windowSec)
		}
	}
}
