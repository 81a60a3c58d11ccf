package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"autobuilder/internal/autofix"
	"autobuilder/internal/builds"
	"autobuilder/internal/catalog"
	"autobuilder/internal/health"
	"autobuilder/internal/jobs"
	"autobuilder/pkg/ci"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/logger"
	"autobuilder/pkg/serrors"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// unknownResetSnooze is used when a platform rate limits without reset info.
const unknownResetSnooze = time.Minute

// jobError maps service errors to River actions. Permanent errors cancel the
// job and rate limits snooze it until the platform window resets.
func jobError(ctx context.Context, err error, rl ci.RateLimitStatus) error {
	switch {
	case errors.Is(err, serrors.ErrNotFound),
		errors.Is(err, serrors.ErrConflict),
		errors.Is(err, serrors.ErrBadRequest):
		logger.Warn(ctx, "job cancelled", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	case errors.Is(err, serrors.ErrRateLimited):
		dur := unknownResetSnooze
		if rl.Known() {
			dur = max(time.Until(rl.ResetAt), 0)
		}
		logger.Warn(ctx, "job snoozed by platform rate limit", zap.Duration("for", dur))

		return river.JobSnooze(dur) //nolint: wrapcheck
	default:
		logger.Error(ctx, "job failed", zap.Error(err))

		return err
	}
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, river.JobCancel(fmt.Errorf("invalid id %q: %w", raw, err)) //nolint: wrapcheck
	}

	return id, nil
}

// SyncRepositoryWorker refreshes a repository from GitHub.
type SyncRepositoryWorker struct {
	river.WorkerDefaults[jobs.SyncRepository]

	catalog catalog.Catalog
}

func (w *SyncRepositoryWorker) Work(ctx context.Context, job *river.Job[jobs.SyncRepository]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("repositoryID", job.Args.RepositoryID))
	id, err := parseID(job.Args.RepositoryID)
	if err != nil {
		return err
	}

	if err := w.catalog.SyncRepository(ctx, domain.RepositoryID(id)); err != nil {
		return jobError(ctx, err, ci.RateLimitStatus{})
	}
	logger.Info(ctx, "repository synced")

	return nil
}

// TriggerBuildWorker dispatches pending builds.
type TriggerBuildWorker struct {
	river.WorkerDefaults[jobs.TriggerBuild]

	builds builds.Service
}

func (w *TriggerBuildWorker) Work(ctx context.Context, job *river.Job[jobs.TriggerBuild]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.Int("attempt", job.Attempt))
	id, err := parseID(job.Args.BuildID)
	if err != nil {
		return err
	}

	final := job.Attempt >= job.MaxAttempts
	if rl, err := w.builds.Trigger(ctx, domain.BuildID(id), final); err != nil {
		return jobError(ctx, err, rl)
	}

	return nil
}

// MonitorBuildWorker polls running builds, snoozing between polls.
type MonitorBuildWorker struct {
	river.WorkerDefaults[jobs.MonitorBuild]

	builds   builds.Service
	interval time.Duration
}

func (w *MonitorBuildWorker) Work(ctx context.Context, job *river.Job[jobs.MonitorBuild]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("buildID", job.Args.BuildID))
	id, err := parseID(job.Args.BuildID)
	if err != nil {
		return err
	}

	res, rl, err := w.builds.Monitor(ctx, domain.BuildID(id))
	if err != nil {
		return jobError(ctx, err, rl)
	}
	if !res.Done {
		return river.JobSnooze(w.interval) //nolint: wrapcheck
	}

	return nil
}

// CollectLogsWorker downloads the logs of finished builds.
type CollectLogsWorker struct {
	river.WorkerDefaults[jobs.CollectLogs]

	builds builds.Service
}

func (w *CollectLogsWorker) Work(ctx context.Context, job *river.Job[jobs.CollectLogs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("buildID", job.Args.BuildID))
	id, err := parseID(job.Args.BuildID)
	if err != nil {
		return err
	}

	if err := w.builds.CollectLogs(ctx, domain.BuildID(id)); err != nil {
		return jobError(ctx, err, ci.RateLimitStatus{})
	}

	return nil
}

// AnalyzeBuildWorker records fix attempts for failed builds.
type AnalyzeBuildWorker struct {
	river.WorkerDefaults[jobs.AnalyzeBuild]

	autofix autofix.Service
}

func (w *AnalyzeBuildWorker) Work(ctx context.Context, job *river.Job[jobs.AnalyzeBuild]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("buildID", job.Args.BuildID))
	id, err := parseID(job.Args.BuildID)
	if err != nil {
		return err
	}

	if _, err := w.autofix.Analyze(ctx, domain.BuildID(id)); err != nil {
		return jobError(ctx, err, ci.RateLimitStatus{})
	}

	return nil
}

// ApplyFixWorker publishes fix attempts.
type ApplyFixWorker struct {
	river.WorkerDefaults[jobs.ApplyFix]

	autofix autofix.Service
}

func (w *ApplyFixWorker) Work(ctx context.Context, job *river.Job[jobs.ApplyFix]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("buildID", job.Args.BuildID))

	if job.Args.AttemptID != "" {
		id, err := parseID(job.Args.AttemptID)
		if err != nil {
			return err
		}
		if _, err := w.autofix.Apply(ctx, domain.FixAttemptID(id)); err != nil {
			return jobError(ctx, err, ci.RateLimitStatus{})
		}

		return nil
	}

	id, err := parseID(job.Args.BuildID)
	if err != nil {
		return err
	}
	attempt, err := w.autofix.ApplyFirst(ctx, domain.BuildID(id))
	if err != nil {
		return jobError(ctx, err, ci.RateLimitStatus{})
	}
	if attempt == nil {
		logger.Info(ctx, "no fix attempt can be applied without approval")
	}

	return nil
}

// RetryFailedBuildsWorker retries failed builds.
type RetryFailedBuildsWorker struct {
	river.WorkerDefaults[jobs.RetryFailedBuilds]

	builds builds.Service
}

func (w *RetryFailedBuildsWorker) Work(ctx context.Context, job *river.Job[jobs.RetryFailedBuilds]) error {
	var repoID domain.RepositoryID
	if job.Args.RepositoryID != "" {
		id, err := parseID(job.Args.RepositoryID)
		if err != nil {
			return err
		}
		repoID = domain.RepositoryID(id)
	}

	n, err := w.builds.RetryFailed(ctx, repoID)
	if err != nil {
		return jobError(ctx, err, ci.RateLimitStatus{})
	}
	logger.Info(ctx, "failed builds retried", zap.Int("count", n))

	return nil
}

// CleanupBuildsWorker deletes old successful builds.
type CleanupBuildsWorker struct {
	river.WorkerDefaults[jobs.CleanupBuilds]

	builds   builds.Service
	fallback time.Duration
}

func (w *CleanupBuildsWorker) Work(ctx context.Context, job *river.Job[jobs.CleanupBuilds]) error {
	olderThan := job.Args.OlderThan
	if olderThan <= 0 {
		olderThan = w.fallback
	}

	n, err := w.builds.Cleanup(ctx, olderThan)
	if err != nil {
		return jobError(ctx, err, ci.RateLimitStatus{})
	}
	logger.Info(ctx, "old builds deleted", zap.Int64("count", n), zap.Duration("olderThan", olderThan))

	return nil
}

// HealthReportWorker logs a health snapshot.
type HealthReportWorker struct {
	river.WorkerDefaults[jobs.HealthReport]

	checker health.Checker
}

func (w *HealthReportWorker) Work(ctx context.Context, _ *river.Job[jobs.HealthReport]) error {
	report := w.checker.Check(ctx)
	fields := []zap.Field{zap.String("status", string(report.Status))}
	for name, c := range report.Components {
		fields = append(fields, zap.String(name, string(c.Status)))
	}

	if report.Status == health.StatusHealthy {
		logger.Info(ctx, "health report", fields...)
	} else {
		logger.Warn(ctx, "health report", fields...)
	}

	return nil
}
