package controller

import (
	"fmt"
	"net/http"
	"plotmarket/pkg/logger"
	"strconv"
	"time"

	"github.com/go-chi/render"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiter counts requests per client IP in fixed windows stored in Redis.
type RateLimiter struct {
	rdb    redis.Cmdable
	prefix string
	limit  int
	window time.Duration
}

// NewRateLimiter allows limit requests per window for each client IP. Keys
// are namespaced by prefix so several limiters can share one Redis.
func NewRateLimiter(rdb redis.Cmdable, prefix string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// Handler rejects requests over the limit with 429 and a Retry-After header.
// Redis failures let the request through.
func (l *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		key := fmt.Sprintf("%s:ip:%s", l.prefix, GetClientIP(r))

		var incr *redis.IntCmd
		var ttl *redis.DurationCmd
		if _, err := l.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, key)
			pipe.ExpireNX(ctx, key, l.window)
			ttl = pipe.TTL(ctx, key)

			return nil
		}); err != nil {
			logger.Warn(ctx, "rate limiter unavailable", zap.Error(err))
			next.ServeHTTP(w, r)

			return
		}

		count := incr.Val()
		reset := ttl.Val()
		if reset < 0 {
			reset = l.window
		}

		remaining := int64(l.limit) - count
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		w.Header().Set("X-RateLimit-Reset", strconv.Itoa(int(reset.Seconds())))

		if count > int64(l.limit) {
			w.Header().Set("Retry-After", strconv.Itoa(int(reset.Seconds())))
			render.Status(r, http.StatusTooManyRequests)
			render.JSON(w, r, map[string]string{
				"code":    "RATE_LIMITED",
				"message": "too many requests, try again in " + reset.String(),
			})

			return
		}

		next.ServeHTTP(w, r)
	})
}
