package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/venuelink/venue-services/internal/api/metrics"
)

// WindowCounter increments the request counter for a window key and
// returns the post-increment count. The increment must be atomic across
// concurrent callers; the backing store owns window expiry.
type WindowCounter interface {
	Incr(ctx context.Context, key string) (int64, error)
}

// RateLimitConfig controls the per-client request budget.
type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

// RateLimit throttles requests per client address using a per-minute
// counter window. The limiter fails open: when the counter store is
// unreachable the request is admitted and the error is logged, never
// surfaced.
func RateLimit(counter WindowCounter, cfg RateLimitConfig, log zerolog.Logger) echo.MiddlewareFunc {
	limit := int64(cfg.PerMinute + cfg.Burst)
	if limit <= 0 {
		limit = 60
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			client := c.RealIP()
			if client == "" {
				client = "unknown"
			}
			key := fmt.Sprintf("%s:%d", client, time.Now().Unix()/60)

			count, err := counter.Incr(c.Request().Context(), key)
			if err != nil {
				log.Warn().Err(err).Str("client", client).Msg("rate limit store unavailable, admitting request")
				metrics.RateLimitDecisionsTotal.WithLabelValues("fail_open").Inc()
				return next(c)
			}

			remaining := limit - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > limit {
				metrics.RateLimitDecisionsTotal.WithLabelValues("denied").Inc()
				return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
			}

			metrics.RateLimitDecisionsTotal.WithLabelValues("allowed").Inc()
			return next(c)
		}
	}
}
