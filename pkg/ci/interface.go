// Package ci defines the abstraction over CI platforms that run builds for
// linked repositories, plus the data exchanged with them.
package ci

import (
	"context"
	"time"

	"autobuilder/pkg/domain"
)

// RateLimitStatus describes the API rate-limit status returned by a platform.
type RateLimitStatus struct {
	Limit     int       // Limit is the total number of allowed requests in the current window.
	Remaining int       // Remaining indicates how many requests are left in the current window.
	ResetAt   time.Time // ResetAt is when the rate-limit window resets.
}

// Known reports whether the platform sent rate-limit information at all.
func (s RateLimitStatus) Known() bool { return !s.ResetAt.IsZero() }

// TriggerRequest asks a platform to start a run.
type TriggerRequest struct {
	// Repository is the owner/name of the repository.
	Repository string
	Branch     string
	CommitSHA  string
	// Config is the integration config, e.g. app_id or workflow.
	Config map[string]any
	// Token overrides the client's default credentials when set.
	Token string
}

// Run identifies a run on the platform.
type Run struct {
	ID  string
	URL string
}

// RunRef points to an existing run.
type RunRef struct {
	ID         string
	Repository string
	Config     map[string]any
	Token      string
}

// RunStatus is the platform state of a run mapped onto build statuses.
type RunStatus struct {
	Status domain.BuildStatus
	// Raw is the platform status before mapping, kept for logs.
	Raw        string
	Conclusion string
	URL        string
	StartedAt  time.Time
	FinishedAt time.Time
}

// Client is implemented by every supported CI platform.
//
//go:generate mockgen -package mockci -source=interface.go -destination=mock/mockci.go *
type Client interface {
	// Platform returns the platform this client talks to.
	Platform() domain.Platform
	// Trigger starts a run and returns its reference plus the current rate-limit status.
	Trigger(ctx context.Context, req TriggerRequest) (Run, RateLimitStatus, error)
	// Status fetches the current state of a run.
	Status(ctx context.Context, ref RunRef) (RunStatus, RateLimitStatus, error)
	// Logs downloads the plain text logs of a run.
	Logs(ctx context.Context, ref RunRef) (string, error)
	// Ping verifies that the credentials are accepted.
	Ping(ctx context.Context, token string) error
}
