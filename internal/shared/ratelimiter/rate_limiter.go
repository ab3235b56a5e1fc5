// Package ratelimiter bounds how often an operation may run per interval.
package ratelimiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter counts operations within a fixed window. Safe for concurrent use.
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // allowed operations per window
	interval  time.Duration // window length
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a new RateLimiter allowing limit operations per interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// Allow reports whether another operation fits in the current window.
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	if rl.count >= rl.limit {
		return false
	}
	rl.count++
	return true
}

// Middleware returns a Gin middleware that rejects requests over the limit
// with 429. Used on the token endpoint to slow down credential guessing.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
