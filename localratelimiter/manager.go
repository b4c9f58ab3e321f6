package localratelimiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	limiters map[string]*limiterEntry
	mutex    sync.Mutex
	rps      rate.Limit
	burst    int
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a new RateLimiter instance
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
	go rl.cleanupOldLimiters()
	return rl
}

// RateLimiterMiddleware returns a gin.HandlerFunc that enforces rate limiting
func (rl *RateLimiter) RateLimiterMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		entry := rl.getLimiter(c.ClientIP())
		if !entry.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// Helper function to get a rate limiter from the map, creating a new one if necessary
func (rl *RateLimiter) getLimiter(clientIP string) *limiterEntry {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	if entry, exists := rl.limiters[clientIP]; exists {
		entry.lastSeen = time.Now()
		return entry
	}

	entry := &limiterEntry{
		limiter:  rate.NewLimiter(rl.rps, rl.burst),
		lastSeen: time.Now(),
	}
	rl.limiters[clientIP] = entry

	return entry
}

// Cleanup function to remove old limiters
func (rl *RateLimiter) cleanupOldLimiters() {
	for {
		time.Sleep(time.Minute)
		rl.mutex.Lock()
		for key, entry := range rl.limiters {
			if time.Since(entry.lastSeen) > time.Minute {
				delete(rl.limiters, key)
			}
		}
		rl.mutex.Unlock()
	}
}
