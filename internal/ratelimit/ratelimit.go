package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrTooManyAttempts = errors.New("ratelimit: too many attempts")

// Limiter keeps fixed-window counters in Redis. A nil Limiter disables
// rate limiting, which is the development default.
type Limiter struct {
	redis *redis.Client
}

func NewLimiter(client *redis.Client) *Limiter {
	return &Limiter{redis: client}
}

// CheckLogin allows 5 login attempts per username per 15 minutes.
func (l *Limiter) CheckLogin(ctx context.Context, username string) error {
	return l.check(ctx, fmt.Sprintf("login_attempts:%s", username), 5, 15*time.Minute)
}

// CheckAsk allows 10 public question submissions per IP per hour.
func (l *Limiter) CheckAsk(ctx context.Context, ip string) error {
	return l.check(ctx, fmt.Sprintf("ask_attempts:%s", ip), 10, time.Hour)
}

func (l *Limiter) check(ctx context.Context, key string, max int64, window time.Duration) error {
	if l == nil || l.redis == nil {
		return nil
	}

	count, err := l.redis.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("ratelimit: failed to increment %s: %w", key, err)
	}

	if count == 1 {
		l.redis.Expire(ctx, key, window)
	}

	if count > max {
		return ErrTooManyAttempts
	}

	return nil
}
