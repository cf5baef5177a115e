package middleware

import (
	"sync"
	"time"

	"vagaspg_backend/internal/logger"
	"vagaspg_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per key (client IP).
type RateLimiter struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	limit    int
	interval time.Duration // time to regain one token
	now      func() time.Time
}

type bucket struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// maxBuckets bounds memory; idle full buckets are pruned beyond it.
const maxBuckets = 10000

func NewRateLimiter(requestsPerMinute int) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 10
	}
	return &RateLimiter{
		buckets:  make(map[string]*bucket),
		limit:    requestsPerMinute,
		interval: time.Minute / time.Duration(requestsPerMinute),
		now:      time.Now,
	}
}

// Allow takes a token for key, reporting false when none is left.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.buckets[key]
	if !ok {
		if len(rl.buckets) >= maxBuckets {
			rl.prune(now)
		}
		b = &bucket{lim: rate.NewLimiter(rate.Every(rl.interval), rl.limit)}
		rl.buckets[key] = b
	}
	b.lastSeen = now
	return b.lim.AllowN(now, 1)
}

// prune drops buckets that have been idle long enough to refill completely.
func (rl *RateLimiter) prune(now time.Time) {
	full := time.Duration(rl.limit) * rl.interval
	for key, b := range rl.buckets {
		if now.Sub(b.lastSeen) >= full {
			delete(rl.buckets, key)
		}
	}
}

// RateLimitMiddleware answers 429 once the client IP runs out of tokens.
func RateLimitMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			logger.CtxWarn(c.Request.Context(), "Rate limit exceeded", "client_ip", c.ClientIP(), "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ErrRateLimited)
			return
		}
		c.Next()
	}
}
