package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	redisStore "stellar-payment-service/internal/adapter/storage/redis"
	"stellar-payment-service/pkg/apperror"
	"stellar-payment-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// Rate limit groups.
const (
	GroupAccounts = "accounts"
	GroupFund     = "fund"
	GroupPayments = "payments"
	GroupQueries  = "queries"
)

// DefaultRateLimitRules returns the per-client limits of each endpoint group.
// Funding is the tightest: the faucet throttles upstream as well.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		GroupAccounts: {Limit: 30, Window: time.Minute},
		GroupFund:     {Limit: 5, Window: time.Hour},
		GroupPayments: {Limit: 30, Window: time.Minute},
		GroupQueries:  {Limit: 120, Window: time.Minute},
	}
}

// Limiter counts requests in fixed windows.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*redisStore.RateLimitResult, error)
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group,
// keyed on the client IP. If the store fails the request is let through.
func RateLimiter(store Limiter, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", group, c.ClientIP())

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			c.Header("Retry-After", strconv.FormatInt(result.RetryAfter(time.Now()), 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}
