package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/stkpush/internal/pkg/logger"
	"github.com/piresc/stkpush/internal/pkg/metrics"
	"github.com/piresc/stkpush/internal/utils"
)

// keyWithoutExpiry is what TTL reports for a key that exists but never expires
const keyWithoutExpiry = time.Duration(-1)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	// RedisClient may be nil, in which case every request is let through
	RedisClient *redis.Client
	Key         string        // Key prefix for Redis
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
}

// RateLimiterMiddleware creates a fixed-window rate limiter backed by Redis.
// Redis errors fail open so payments keep flowing when the limiter store is down.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.RedisClient == nil || config.Limit <= 0 {
				return next(c)
			}

			ctx := c.Request().Context()
			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), c.RealIP())

			count, err := config.RedisClient.Incr(ctx, key).Result()
			if err != nil {
				logger.WarnCtx(ctx, "Rate limiter unavailable, allowing request", logger.Err(err))
				return next(c)
			}
			if count == 1 {
				if err := config.RedisClient.Expire(ctx, key, config.Period).Err(); err != nil {
					logger.WarnCtx(ctx, "Failed to set rate limit window", logger.Err(err))
				}
			}

			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))

			if count > int64(config.Limit) {
				ttl, err := config.RedisClient.TTL(ctx, key).Result()
				if err == nil && ttl == keyWithoutExpiry {
					// the window's EXPIRE was lost; without it the client stays throttled forever
					if err := config.RedisClient.Expire(ctx, key, config.Period).Err(); err != nil {
						logger.WarnCtx(ctx, "Failed to restore rate limit window", logger.Err(err))
					}
				}
				if err != nil || ttl < 0 {
					ttl = config.Period
				}

				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))

				metrics.RecordRateLimited(c.Path())
				logger.WarnCtx(ctx, "Rate limit exceeded",
					logger.String("path", c.Path()),
					logger.String("client_ip", c.RealIP()))
				return utils.TooManyRequestsResponse(c, "Rate limit exceeded")
			}

			c.Response().Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(config.Limit)-count, 10))

			return next(c)
		}
	}
}

// IPRateLimiter creates a simple IP-based rate limiter
func IPRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         "rate:ip",
		Limit:       limit,
		Period:      period,
	})
}
