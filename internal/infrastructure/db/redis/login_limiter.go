package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxFailures = 10
	failureWindow      = 15 * time.Minute
)

// LoginLimiter counts consecutive failed logins per username in Redis.
// Key format: login_failures:<username>, expiring after failureWindow so a
// quiet account unlocks itself. The limiter fails open on Redis errors.
type LoginLimiter struct {
	client      *redis.Client
	maxFailures int
}

// NewLoginLimiter wraps the given Redis client. maxFailures <= 0 falls back
// to the default.
func NewLoginLimiter(client *redis.Client, maxFailures int) *LoginLimiter {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	return &LoginLimiter{client: client, maxFailures: maxFailures}
}

// TooManyFailures reports whether the username has exhausted its attempts.
func (l *LoginLimiter) TooManyFailures(ctx context.Context, username string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(username)).Int()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("limiter get: %w", err)
	}
	return n >= l.maxFailures, nil
}

// RecordFailure bumps the failure counter and refreshes its expiry.
func (l *LoginLimiter) RecordFailure(ctx context.Context, username string) error {
	key := l.key(username)
	pipe := l.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, failureWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("limiter record: %w", err)
	}
	return nil
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, username string) error {
	return l.client.Del(ctx, l.key(username)).Err()
}

func (l *LoginLimiter) key(username string) string {
	return "login_failures:" + username
}
