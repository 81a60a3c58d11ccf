package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"autobuilder/pkg/ci"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/logger"

	"go.uber.org/zap"
)

// RateLimiter paces calls to CI platforms across all concurrent jobs, using
// the rate-limit headers each platform returns. Every platform has its own
// budget.
//
// # Budget accounting
//
// A budget tracks the last known status (last) and the number of calls in
// flight. The effective remaining budget is last.Remaining, or last.Limit once
// last.ResetAt has passed. A call may start when remaining - inFlight > 0.
// Otherwise Reserve waits until ResetAt or until another call finishes.
//
// Release merges the status reported by a finished call: a new ResetAt is
// always adopted, within the same window only a lower Remaining is.
//
// Before a platform has reported anything its budget allows exactly one call,
// so the first response can seed the real limits. A platform whose first
// response carries no limits is not paced until it reports some.
type RateLimiter struct {
	// mu guards budgets and every budget field.
	mu      sync.Mutex
	budgets map[domain.Platform]*budget
	now     func() time.Time
}

type budget struct {
	inFlight  int
	last      *ci.RateLimitStatus
	unlimited bool
	// changed is closed and replaced on every Release, waking all waiters.
	changed chan struct{}
}

// NewRateLimiter creates a RateLimiter with empty budgets.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		budgets: make(map[domain.Platform]*budget),
		now:     time.Now,
	}
}

func (r *RateLimiter) budget(platform domain.Platform) *budget {
	b, ok := r.budgets[platform]
	if !ok {
		b = &budget{changed: make(chan struct{})}
		r.budgets[platform] = b
	}

	return b
}

// Release ends a reserved call and records the status it returned.
func (r *RateLimiter) Release(ctx context.Context, platform domain.Platform, status ci.RateLimitStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := r.budget(platform)
	if b.inFlight > 0 {
		b.inFlight--
	}
	close(b.changed)
	b.changed = make(chan struct{})

	if !status.Known() {
		if b.last == nil && !b.unlimited {
			b.unlimited = true
			logger.Debug(ctx, "platform reports no rate limits", zap.String("platform", string(platform)))
		}

		return
	}

	b.unlimited = false
	adopt := b.last == nil ||
		!b.last.ResetAt.Equal(status.ResetAt) ||
		status.Remaining < b.last.Remaining
	if !adopt {
		return
	}
	b.last = &status
	logger.Debug(ctx, "received rate limit status",
		zap.String("platform", string(platform)),
		zap.Int("limit", status.Limit),
		zap.Int("remaining", status.Remaining),
		zap.Time("resetAt", status.ResetAt),
		zap.Int("inFlight", b.inFlight))
}

// Reserve takes one call from the platform budget, blocking until one is
// available or ctx is done.
func (r *RateLimiter) Reserve(ctx context.Context, platform domain.Platform) error {
	for {
		r.mu.Lock()
		b := r.budget(platform)

		var (
			remaining int
			resetAt   time.Time
		)
		switch {
		case b.unlimited && b.last == nil:
			remaining = b.inFlight + 1
		case b.last == nil:
			// one trial call until the platform reports
			remaining = 1
		default:
			remaining = b.last.Remaining
			resetAt = b.last.ResetAt
			if r.now().After(resetAt) {
				remaining = b.last.Limit
			}
		}

		if remaining-b.inFlight > 0 {
			b.inFlight++
			r.mu.Unlock()

			return nil
		}

		changed := b.changed
		inFlight := b.inFlight
		r.mu.Unlock()

		logger.Debug(ctx, "waiting for rate limit slot",
			zap.String("platform", string(platform)),
			zap.Int("remaining", remaining),
			zap.Time("resetAt", resetAt),
			zap.Int("inFlight", inFlight))

		if err := wait(ctx, changed, resetAt); err != nil {
			return err
		}
	}
}

// wait blocks until changed is closed, resetAt passes or ctx is done.
func wait(ctx context.Context, changed <-chan struct{}, resetAt time.Time) error {
	var reset <-chan time.Time
	if !resetAt.IsZero() {
		timer := time.NewTimer(time.Until(resetAt))
		defer timer.Stop()
		reset = timer.C
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("timeout waiting for rate limit: %w", ctx.Err())
	case <-changed:
	case <-reset:
	}

	return nil
}
