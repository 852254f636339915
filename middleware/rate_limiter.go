package middleware

import (
	"net/http"
	"sync"
	"time"

	"terrasense-service/models"

	"github.com/gin-gonic/gin"
)

// tokenBucket refills at a fixed rate up to its capacity. One bucket exists
// per client IP.
type tokenBucket struct {
	rate       float64
	capacity   float64
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(rate float64, capacity int) *tokenBucket {
	return &tokenBucket{
		rate:       rate,
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	tb.tokens += elapsed * tb.rate
	if tb.tokens > tb.capacity {
		tb.tokens = tb.capacity
	}

	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

func (tb *tokenBucket) idleSince(cutoff time.Time) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return tb.lastRefill.Before(cutoff)
}

// RateLimiter allows max requests per window per client IP, refilling
// continuously over the window rather than resetting it. Buckets idle for a
// full window are swept so the per-IP map stays bounded.
type RateLimiter struct {
	rate     float64
	max      int
	window   time.Duration
	buckets  map[string]*tokenBucket
	bucketMu sync.Mutex
}

func NewRateLimiter(windowSec, max int) *RateLimiter {
	if windowSec <= 0 {
		windowSec = 1
	}
	rl := &RateLimiter{
		rate:    float64(max) / float64(windowSec),
		max:     max,
		window:  time.Duration(windowSec) * time.Second,
		buckets: make(map[string]*tokenBucket),
	}
	go rl.sweep()
	return rl
}

// sweep runs for the process lifetime, dropping buckets that saw no traffic
// for a full window. An evicted client simply gets a fresh full bucket on
// its next request.
func (rl *RateLimiter) sweep() {
	ticker := time.NewTicker(rl.window)
	for range ticker.C {
		rl.sweepStale(time.Now().Add(-rl.window))
	}
}

func (rl *RateLimiter) sweepStale(cutoff time.Time) {
	rl.bucketMu.Lock()
	defer rl.bucketMu.Unlock()

	for clientIP, tb := range rl.buckets {
		if tb.idleSince(cutoff) {
			delete(rl.buckets, clientIP)
		}
	}
}

func (rl *RateLimiter) bucketFor(clientIP string) *tokenBucket {
	rl.bucketMu.Lock()
	defer rl.bucketMu.Unlock()

	tb, ok := rl.buckets[clientIP]
	if !ok {
		tb = newTokenBucket(rl.rate, rl.max)
		rl.buckets[clientIP] = tb
	}
	return tb
}

// Middleware rejects over-limit clients with a 429 envelope.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.bucketFor(c.ClientIP()).allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.Response{
				Success: false,
				Error:   "Too many requests, please try again later",
			})
			return
		}
		c.Next()
	}
}
