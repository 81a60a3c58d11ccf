package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit"

// RedisLimiter counts requests with INCR on per-window keys that expire with
// the window.
type RedisLimiter struct {
	client  redis.Cmdable
	windows []Window
	now     func() time.Time
}

// Option customizes a RedisLimiter.
type Option func(*RedisLimiter)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *RedisLimiter) { l.now = now }
}

// NewRedisLimiter returns a limiter enforcing every window at once.
func NewRedisLimiter(client redis.Cmdable, windows []Window, opts ...Option) *RedisLimiter {
	l := &RedisLimiter{client: client, windows: windows, now: time.Now}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Allow implements Limiter.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	now := l.now()
	counters := make([]*redis.IntCmd, len(l.windows))
	resets := make([]time.Time, len(l.windows))

	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, w := range l.windows {
			start := now.Truncate(w.Period)
			resets[i] = start.Add(w.Period)
			k := fmt.Sprintf("%s:%s:%s:%s", keyPrefix, w.Name, key, strconv.FormatInt(start.Unix(), 10))
			counters[i] = pipe.Incr(ctx, k)
			pipe.ExpireAt(ctx, k, resets[i])
		}

		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("could not count request: %w", err)
	}

	res := Result{Allowed: true, Remaining: -1}
	for i, w := range l.windows {
		count := int(counters[i].Val())
		remaining := max(w.Limit-count, 0)
		exceeded := count > w.Limit

		switch {
		case exceeded && res.Allowed:
			// the first exceeded window decides the response
			res = Result{Limit: w.Limit, Remaining: 0, ResetAt: resets[i], RetryAfter: resets[i].Sub(now)}
		case !res.Allowed:
		case res.Remaining < 0 || remaining < res.Remaining:
			res = Result{Allowed: true, Limit: w.Limit, Remaining: remaining, ResetAt: resets[i]}
		}
	}
	if res.Remaining < 0 {
		res.Remaining = 0
	}

	return res, nil
}
