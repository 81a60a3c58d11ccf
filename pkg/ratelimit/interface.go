// Package ratelimit implements fixed-window request limits shared between API
// replicas through Redis.
package ratelimit

import (
	"context"
	"time"
)

// Window is a fixed counting window.
type Window struct {
	// Name distinguishes windows in keys and headers, e.g. "hour".
	Name   string
	Limit  int
	Period time.Duration
}

// Result describes the most restrictive window after counting a request.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
	// RetryAfter is set when the request was rejected.
	RetryAfter time.Duration
}

//go:generate mockgen -package mockratelimit -source=interface.go -destination=mock/mockratelimit.go *
type Limiter interface {
	// Allow counts one request for key in every window.
	Allow(ctx context.Context, key string) (Result, error)
}
