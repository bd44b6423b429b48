package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	rateLimitPrefix = "ratelimit"
	windowTTL       = 60 * time.Second
)

// RateLimitStore holds the per-minute request counters backing the rate
// limiter. Counters live only in Redis: INCR is atomic across concurrent
// callers, and the window expires on its own.
type RateLimitStore struct {
	client *redis.Client
}

// NewRateLimitStore creates a RateLimitStore wrapping the given Redis client.
func NewRateLimitStore(client *redis.Client) *RateLimitStore {
	return &RateLimitStore{client: client}
}

// Incr increments the counter for key and returns the post-increment value.
// The first increment of a window sets its 60-second expiry.
func (s *RateLimitStore) Incr(ctx context.Context, key string) (int64, error) {
	full := fmt.Sprintf("%s:%s", rateLimitPrefix, key)

	n, err := s.client.Incr(ctx, full).Result()
	if err != nil {
		return 0, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := s.client.Expire(ctx, full, windowTTL).Err(); err != nil {
			return 0, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n, nil
}
