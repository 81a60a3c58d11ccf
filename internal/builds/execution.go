package builds

import (
	"context"
	"fmt"
	"time"

	"autobuilder/internal/jobs"
	"autobuilder/pkg/ci"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/logger"
	"autobuilder/pkg/metrics"
	"autobuilder/pkg/serrors"
	"autobuilder/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// target is everything needed to talk to the platform running a build.
type target struct {
	repo        *domain.Repository
	integration *domain.Integration
	client      ci.Client
	token       string
}

func (t *target) ref(b *domain.Build) ci.RunRef {
	return ci.RunRef{
		ID:         b.PlatformBuildID,
		Repository: t.repo.FullName,
		Config:     t.integration.Config,
		Token:      t.token,
	}
}

// resolve loads the repository, integration and client of b. Configuration
// problems are reported as ErrBadRequest; the repository is returned with them
// whenever it could be loaded.
func (s *service) resolve(ctx context.Context, b *domain.Build) (*target, error) {
	t := &target{}

	repo, err := s.storage.RepositoryByID(ctx, b.RepositoryID)
	if err != nil {
		return nil, fmt.Errorf("could not get repository: %w", err)
	}
	if repo == nil {
		return nil, serrors.With(serrors.ErrNotFound, "repository of build not found")
	}
	t.repo = repo

	if b.IntegrationID.IsZero() {
		return t, serrors.With(serrors.ErrBadRequest, "build has no integration")
	}
	integration, err := s.storage.IntegrationByID(ctx, b.IntegrationID)
	if err != nil {
		return nil, fmt.Errorf("could not get integration: %w", err)
	}
	if integration == nil {
		return t, serrors.With(serrors.ErrBadRequest, "integration of build was removed")
	}
	t.integration = integration

	client, ok := s.registry.Get(integration.Platform)
	if !ok {
		return t, serrors.With(serrors.ErrBadRequest, "platform %s is not supported", integration.Platform)
	}
	t.client = client

	token, err := s.box.Open(integration.TokenEncrypted)
	if err != nil {
		return t, serrors.Wrap(serrors.ErrBadRequest, err, "integration token is unreadable")
	}
	t.token = token

	return t, nil
}

// transient reports whether a platform error is worth retrying.
func transient(err error) bool {
	switch serrors.KindOf(err) {
	case serrors.ErrUnavailable, serrors.ErrTimeout, serrors.ErrInternal:
		return true
	default:
		return false
	}
}

func platformOf(t *target) string {
	if t == nil || t.integration == nil {
		return "unknown"
	}

	return string(t.integration.Platform)
}

// observe records metrics and notifications for a finished build.
func (s *service) observe(ctx context.Context, t *target, b *domain.Build) {
	platform := platformOf(t)
	metrics.BuildsFinished.WithLabelValues(platform, string(b.Status)).Inc()
	if b.DurationSeconds > 0 {
		metrics.BuildDuration.WithLabelValues(platform).Observe(float64(b.DurationSeconds))
	}

	if b.Status != domain.BuildStatusFailed || t == nil || t.repo == nil {
		return
	}
	if err := s.notifier.BuildFailed(ctx, *t.repo, *b); err != nil {
		logger.Warn(ctx, "could not send build failure notification", zap.Error(err))
	}
}

// fail finishes a build that could not be dispatched.
func (s *service) fail(ctx context.Context, t *target, b *domain.Build, reason error) error {
	logger.Warn(ctx, "build failed before running", zap.Error(reason))

	b.Finish(domain.BuildStatusFailed, s.now().UTC())
	errorLogs := reason.Error()
	b.ErrorLogs = errorLogs
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		_, err := s.finish(ctx, tx, b, storage.BuildUpdates{ErrorLogs: &errorLogs})

		return err
	}); err != nil {
		return fmt.Errorf("could not fail build: %w", err)
	}
	s.observe(ctx, t, b)

	return nil
}

func (s *service) Trigger(ctx context.Context, id domain.BuildID, final bool) (ci.RateLimitStatus, error) {
	ctx = logger.WithFields(ctx, zap.String("buildID", id.String()))

	b, err := s.build(ctx, s.storage, id)
	if err != nil {
		return ci.RateLimitStatus{}, err
	}
	switch {
	case b.Status.IsTerminal():
		return ci.RateLimitStatus{}, serrors.With(serrors.ErrConflict, "build already finished with %s", b.Status)
	case b.Status == domain.BuildStatusRunning:
		logger.Debug(ctx, "build already dispatched")

		return ci.RateLimitStatus{}, nil
	}

	t, err := s.resolve(ctx, b)
	if err != nil {
		if t != nil {
			return ci.RateLimitStatus{}, s.fail(ctx, t, b, err)
		}

		return ci.RateLimitStatus{}, err
	}

	if err := s.limiter.Reserve(ctx, t.integration.Platform); err != nil {
		return ci.RateLimitStatus{}, fmt.Errorf("could not reserve platform budget: %w", err)
	}
	run, rl, err := t.client.Trigger(ctx, ci.TriggerRequest{
		Repository: t.repo.FullName,
		Branch:     b.Branch,
		CommitSHA:  b.CommitSHA,
		Config:     t.integration.Config,
		Token:      t.token,
	})
	s.limiter.Release(ctx, t.integration.Platform, rl)
	if err != nil {
		if serrors.KindOf(err) == serrors.ErrRateLimited || (transient(err) && !final) {
			return rl, fmt.Errorf("could not trigger build: %w", err)
		}

		return rl, s.fail(ctx, t, b, fmt.Errorf("could not trigger build on %s: %w", t.integration.Platform, err))
	}

	now := s.now().UTC()
	b.Start(now)
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updates := storage.BuildUpdates{
			Status:          &b.Status,
			StartedAt:       &b.StartedAt,
			PlatformBuildID: &run.ID,
		}
		if run.URL != "" {
			updates.LogsURL = &run.URL
		}
		if _, err := tx.UpdateBuild(ctx, b.ID, updates); err != nil {
			return fmt.Errorf("could not update build: %w", err)
		}

		if _, err := tx.UpdateIntegration(ctx, t.integration.ID, storage.IntegrationUpdates{LastUsedAt: &now}); err != nil {
			return fmt.Errorf("could not stamp integration: %w", err)
		}

		if _, err := tx.AddJob(ctx, jobs.MonitorBuild{BuildID: b.ID.String()}, &river.InsertOpts{
			ScheduledAt: now.Add(s.options.MonitorInterval),
		}); err != nil {
			return fmt.Errorf("could not enqueue build monitor: %w", err)
		}

		return nil
	}); err != nil {
		return rl, fmt.Errorf("could not record dispatched build: %w", err)
	}

	logger.Info(ctx, "build dispatched", zap.String("platformBuildID", run.ID))

	return rl, nil
}

func (s *service) timedOut(b *domain.Build) bool {
	return s.options.Timeout > 0 && !b.StartedAt.IsZero() && s.now().Sub(b.StartedAt) > s.options.Timeout
}

func (s *service) Monitor(ctx context.Context, id domain.BuildID) (MonitorResult, ci.RateLimitStatus, error) {
	ctx = logger.WithFields(ctx, zap.String("buildID", id.String()))

	b, err := s.build(ctx, s.storage, id)
	if err != nil {
		return MonitorResult{}, ci.RateLimitStatus{}, err
	}
	if b.Status.IsTerminal() || b.PlatformBuildID == "" {
		return MonitorResult{Done: true, Status: b.Status}, ci.RateLimitStatus{}, nil
	}

	t, err := s.resolve(ctx, b)
	if err != nil {
		if t != nil {
			return MonitorResult{Done: true, Status: domain.BuildStatusFailed}, ci.RateLimitStatus{}, s.fail(ctx, t, b, err)
		}

		return MonitorResult{}, ci.RateLimitStatus{}, err
	}

	if err := s.limiter.Reserve(ctx, t.integration.Platform); err != nil {
		return MonitorResult{}, ci.RateLimitStatus{}, fmt.Errorf("could not reserve platform budget: %w", err)
	}
	run, rl, err := t.client.Status(ctx, t.ref(b))
	s.limiter.Release(ctx, t.integration.Platform, rl)
	if err != nil {
		return MonitorResult{}, rl, fmt.Errorf("could not fetch build status: %w", err)
	}

	if !run.Status.IsTerminal() {
		if run.Status == domain.BuildStatusRunning && b.Status != domain.BuildStatusRunning {
			b.Start(s.now().UTC())
			if _, err := s.storage.UpdateBuild(ctx, b.ID, storage.BuildUpdates{
				Status: &b.Status, StartedAt: &b.StartedAt,
			}); err != nil {
				return MonitorResult{}, rl, fmt.Errorf("could not update build: %w", err)
			}
		}

		if !s.timedOut(b) {
			return MonitorResult{Status: b.Status}, rl, nil
		}
		logger.Warn(ctx, "build exceeded its timeout", zap.Duration("timeout", s.options.Timeout))
		run.Status = domain.BuildStatusTimeout
		run.FinishedAt = s.now().UTC()
	}

	if b.StartedAt.IsZero() {
		b.StartedAt = run.StartedAt
	}
	finishedAt := run.FinishedAt
	if finishedAt.IsZero() {
		finishedAt = s.now().UTC()
	}
	b.Finish(run.Status, finishedAt)

	updates := storage.BuildUpdates{StartedAt: &b.StartedAt}
	if run.URL != "" {
		updates.LogsURL = &run.URL
	}
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		_, err := s.finish(ctx, tx, b, updates, jobs.CollectLogs{BuildID: b.ID.String()})

		return err
	}); err != nil {
		return MonitorResult{}, rl, fmt.Errorf("could not finish build: %w", err)
	}
	s.observe(ctx, t, b)

	logger.Info(ctx, "build finished",
		zap.String("status", string(b.Status)),
		zap.String("conclusion", run.Conclusion),
		zap.Int64("durationSeconds", b.DurationSeconds))

	return MonitorResult{Done: true, Status: b.Status}, rl, nil
}

func (s *service) CollectLogs(ctx context.Context, id domain.BuildID) error {
	b, err := s.build(ctx, s.storage, id)
	if err != nil {
		return err
	}
	if b.PlatformBuildID == "" {
		return nil
	}

	t, err := s.resolve(ctx, b)
	if err != nil {
		return err
	}

	logs, err := t.client.Logs(ctx, t.ref(b))
	if err != nil {
		return fmt.Errorf("could not download logs: %w", err)
	}
	logs = s.truncateLogs(logs)

	return s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.UpdateBuild(ctx, b.ID, storage.BuildUpdates{LogsContent: &logs}); err != nil {
			return fmt.Errorf("could not store logs: %w", err)
		}
		if b.Status != domain.BuildStatusFailed {
			return nil
		}
		if _, err := tx.AddJob(ctx, jobs.AnalyzeBuild{BuildID: b.ID.String()}, nil); err != nil {
			return fmt.Errorf("could not enqueue failure analysis: %w", err)
		}

		return nil
	})
}

func (s *service) RetryFailed(ctx context.Context, repoID domain.RepositoryID) (int, error) {
	failed, err := s.storage.RetryableFailedBuilds(ctx, repoID, s.options.MaxRetryDepth, retrySweepLimit)
	if err != nil {
		return 0, fmt.Errorf("could not list failed builds: %w", err)
	}

	retried := 0
	for _, b := range failed {
		if _, err := s.Retry(ctx, b.ID); err != nil {
			return retried, err
		}
		retried++
	}

	return retried, nil
}

func (s *service) Cleanup(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "retention must be positive")
	}

	deleted, err := s.storage.DeleteSuccessfulBuildsBefore(ctx, s.now().UTC().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("could not delete old builds: %w", err)
	}

	return deleted, nil
}
