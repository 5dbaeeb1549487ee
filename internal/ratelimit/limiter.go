package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Defaults for the fixed-window IP limiter on the auth surface.
const (
	defaultMaxAttempts = 10
	defaultWindow      = time.Minute
)

// Limiter is a Redis-backed fixed-window rate limiter.
type Limiter struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
}

func NewLimiter(client *redis.Client) *Limiter {
	return &Limiter{
		client:      client,
		maxAttempts: defaultMaxAttempts,
		window:      defaultWindow,
	}
}

func ipKey(ip, purpose string) string {
	return fmt.Sprintf("ratelimit:ip:%s:%s", purpose, ip)
}

// CheckIPRateLimitWithPurpose counts a hit for this IP and purpose and reports
// whether the window budget is exhausted. The first hit in a window sets the
// expiry; the counter and its TTL are applied in one pipeline.
func (l *Limiter) CheckIPRateLimitWithPurpose(ctx context.Context, ip, purpose string) (bool, error) {
	key := ipKey(ip, purpose)

	pipe := l.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}

	return incr.Val() > l.maxAttempts, nil
}
