package storage

import (
	"context"
	"time"

	"autobuilder/pkg/domain"
)

// BuildFilter narrows build listings and counts. Zero values do not filter.
type BuildFilter struct {
	RepositoryID  domain.RepositoryID
	IntegrationID domain.IntegrationID
	Statuses      []domain.BuildStatus
	Limit         uint
	Offset        uint
}

// BuildUpdates lists the fields to change. Nil fields are left untouched.
type BuildUpdates struct {
	Status          *domain.BuildStatus
	PlatformBuildID *string
	StartedAt       *time.Time
	FinishedAt      *time.Time
	DurationSeconds *int64
	LogsURL         *string
	LogsContent     *string
	ErrorLogs       *string
}

// BuildStats aggregates builds created since a point in time.
type BuildStats struct {
	Total      int64
	Successful int64
	Failed     int64
	Running    int64
	Pending    int64
	// AvgDurationSeconds averages builds that have a duration. Zero when none do.
	AvgDurationSeconds float64
	ByTrigger          map[domain.TriggerType]int64
}

// BuildStorage persists builds.
type BuildStorage interface {
	StoreBuild(ctx context.Context, build domain.Build) (*domain.Build, error)
	BuildByID(ctx context.Context, id domain.BuildID) (*domain.Build, error)
	// ListBuilds returns a page ordered by creation time, newest first, plus the
	// total number of matching builds.
	ListBuilds(ctx context.Context, filter BuildFilter) ([]domain.Build, int64, error)
	CountBuilds(ctx context.Context, filter BuildFilter) (int64, error)
	UpdateBuild(ctx context.Context, id domain.BuildID, updates BuildUpdates) (*domain.Build, error)
	// BuildStats aggregates builds created since the given time, optionally for
	// one repository.
	BuildStats(ctx context.Context, repoID domain.RepositoryID, since time.Time) (BuildStats, error)
	// RetryableFailedBuilds returns failed builds, oldest first, that no other
	// build retries yet and that sit fewer than maxDepth retries away from the
	// original run.
	RetryableFailedBuilds(ctx context.Context, repoID domain.RepositoryID, maxDepth int, limit uint) ([]domain.Build, error)
	// DeleteSuccessfulBuildsBefore removes successful builds created before cutoff.
	DeleteSuccessfulBuildsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
