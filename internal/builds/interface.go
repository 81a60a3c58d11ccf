// Package builds tracks CI builds of linked repositories: it dispatches them to
// their platform, follows them to completion and keeps their logs.
package builds

import (
	"context"
	"time"

	"autobuilder/pkg/ci"
	"autobuilder/pkg/domain"
)

// Page and window bounds.
const (
	DefaultLimit = 50
	MaxLimit     = 100

	DefaultStatsDays = 7
	MaxStatsDays     = 30
)

type Query struct {
	RepositoryID domain.RepositoryID
	Status       domain.BuildStatus
	Limit        uint
	Offset       uint
}

type Page struct {
	Items   []domain.Build
	Total   int64
	HasMore bool
}

type Details struct {
	Build       domain.Build
	FixAttempts []domain.FixAttempt
}

// LogsUpdate is reported by CI callbacks. Nil fields are left untouched.
type LogsUpdate struct {
	Status    *domain.BuildStatus
	Logs      *string
	ErrorLogs *string
	LogsURL   *string
}

type EnqueueRequest struct {
	RepositoryID      domain.RepositoryID
	Branch            string
	CommitSHA         string
	Trigger           domain.TriggerType
	PullRequestNumber int
}

type Statistics struct {
	Days         int
	RepositoryID domain.RepositoryID
	Start        time.Time
	End          time.Time

	Total      int64
	Successful int64
	Failed     int64
	Running    int64
	Pending    int64

	SuccessRate float64
	FailureRate float64

	AverageDurationSeconds   float64
	AverageDurationFormatted string

	Triggers map[domain.TriggerType]int64
}

// Limiter paces calls to CI platforms. Release is called after every
// reserved call with the rate-limit status the platform reported.
type Limiter interface {
	Reserve(ctx context.Context, platform domain.Platform) error
	Release(ctx context.Context, platform domain.Platform, status ci.RateLimitStatus)
}

// MonitorResult tells the caller whether to poll again.
type MonitorResult struct {
	Done   bool
	Status domain.BuildStatus
}

//go:generate mockgen -package mockbuilds -source=interface.go -destination=mock/mockbuilds.go *
type Service interface {
	List(ctx context.Context, query Query) (Page, error)
	Get(ctx context.Context, id domain.BuildID) (*Details, error)
	UpdateLogs(ctx context.Context, id domain.BuildID, update LogsUpdate) (*domain.Build, error)
	// Retry creates a pending build re-running id and schedules its dispatch.
	Retry(ctx context.Context, id domain.BuildID) (*domain.Build, error)
	Statistics(ctx context.Context, repoID domain.RepositoryID, days int) (*Statistics, error)
	// Enqueue creates a pending build on the repository's active integration.
	Enqueue(ctx context.Context, req EnqueueRequest) (*domain.Build, error)

	// Trigger dispatches a pending build. Transient failures are returned while
	// final is false so the caller can retry; otherwise the build is failed.
	Trigger(ctx context.Context, id domain.BuildID, final bool) (ci.RateLimitStatus, error)
	// Monitor polls the platform once and finishes the build when the run is done.
	Monitor(ctx context.Context, id domain.BuildID) (MonitorResult, ci.RateLimitStatus, error)
	CollectLogs(ctx context.Context, id domain.BuildID) error
	// RetryFailed retries failed builds without a retry yet and returns how many
	// retries were created.
	RetryFailed(ctx context.Context, repoID domain.RepositoryID) (int, error)
	// Cleanup deletes successful builds older than olderThan.
	Cleanup(ctx context.Context, olderThan time.Duration) (int64, error)
}
