// Package jobs declares the River job arguments shared by the services that
// enqueue work and the workers that execute it.
package jobs

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// Queue names.
const (
	QueueBuilds      = "builds"
	QueueAutoFix     = "autofix"
	QueueMaintenance = "maintenance"
)

// queuedStates are the states in which a job counts as a duplicate of a new
// one with the same arguments.
var queuedStates = []rivertype.JobState{ //nolint: gochecknoglobals
	rivertype.JobStateAvailable,
	rivertype.JobStatePending,
	rivertype.JobStateRunning,
	rivertype.JobStateRetryable,
	rivertype.JobStateScheduled,
}

// SyncRepository refreshes repository metadata from GitHub and registers the
// webhook.
type SyncRepository struct {
	RepositoryID string `json:"repositoryId" river:"unique"`
}

func (SyncRepository) Kind() string { return "SyncRepositoryJob" }

func (SyncRepository) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 5,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: queuedStates,
		},
	}
}

// TriggerBuild dispatches a pending build to its CI platform.
type TriggerBuild struct {
	BuildID string `json:"buildId" river:"unique"`

	// MaxAttempts is how often the queue retries the dispatch.
	MaxAttempts int `json:"-"`
}

func (TriggerBuild) Kind() string { return "TriggerBuildJob" }

func (args TriggerBuild) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueBuilds,
		MaxAttempts: args.MaxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: queuedStates,
		},
	}
}

// MonitorBuild polls the platform until a running build finishes.
type MonitorBuild struct {
	BuildID string `json:"buildId" river:"unique"`
}

func (MonitorBuild) Kind() string { return "MonitorBuildJob" }

func (MonitorBuild) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueBuilds,
		MaxAttempts: 10,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: queuedStates,
		},
	}
}

// CollectLogs downloads the logs of a finished build.
type CollectLogs struct {
	BuildID string `json:"buildId" river:"unique"`
}

func (CollectLogs) Kind() string { return "CollectLogsJob" }

func (CollectLogs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueBuilds,
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: queuedStates,
		},
	}
}

// AnalyzeBuild runs the rule engine over the logs of a failed build.
type AnalyzeBuild struct {
	BuildID string `json:"buildId" river:"unique"`
}

func (AnalyzeBuild) Kind() string { return "AnalyzeBuildJob" }

func (AnalyzeBuild) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueAutoFix,
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: queuedStates,
		},
	}
}

// ApplyFix applies a single attempt, or the first applicable attempt of a
// build when AttemptID is empty.
type ApplyFix struct {
	BuildID   string `json:"buildId"   river:"unique"`
	AttemptID string `json:"attemptId" river:"unique"`
}

func (ApplyFix) Kind() string { return "ApplyFixJob" }

func (ApplyFix) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       QueueAutoFix,
		MaxAttempts: 3,
		UniqueOpts: river.UniqueOpts{
			ByArgs:  true,
			ByState: queuedStates,
		},
	}
}

// RetryFailedBuilds retries failed builds that were not retried yet.
type RetryFailedBuilds struct {
	// RepositoryID limits the sweep to one repository when set.
	RepositoryID string `json:"repositoryId,omitempty"`
}

func (RetryFailedBuilds) Kind() string { return "RetryFailedBuildsJob" }

func (RetryFailedBuilds) InsertOpts() river.InsertOpts {
	return river.InsertOpts{Queue: QueueMaintenance, MaxAttempts: 1}
}

// CleanupBuilds deletes successful builds older than the retention window.
type CleanupBuilds struct {
	OlderThan time.Duration `json:"olderThan"`
}

func (CleanupBuilds) Kind() string { return "CleanupBuildsJob" }

func (CleanupBuilds) InsertOpts() river.InsertOpts {
	return river.InsertOpts{Queue: QueueMaintenance, MaxAttempts: 1}
}

// HealthReport logs the health of the service dependencies.
type HealthReport struct{}

func (HealthReport) Kind() string { return "HealthReportJob" }

func (HealthReport) InsertOpts() river.InsertOpts {
	return river.InsertOpts{Queue: QueueMaintenance, MaxAttempts: 1}
}
