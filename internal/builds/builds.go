package builds

import (
	"context"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"autobuilder/internal/config"
	"autobuilder/internal/jobs"
	"autobuilder/pkg/ci"
	"autobuilder/pkg/ci/githubactions"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/notify"
	"autobuilder/pkg/secret"
	"autobuilder/pkg/serrors"
	"autobuilder/pkg/storage"
)

const (
	resourceBuild = "build"
	// retrySweepLimit caps the builds retried by one RetryFailed run.
	retrySweepLimit = 50
)

// Options configure dispatching, polling and log retention.
type Options struct {
	// TriggerMaxAttempts is how often the queue retries a dispatch.
	TriggerMaxAttempts int
	// MonitorInterval is the delay between two status polls.
	MonitorInterval time.Duration
	// LogLimit caps the bytes of logs kept per build. Zero keeps everything.
	LogLimit int
	// MaxRetryDepth bounds the retry chain of automatic retries.
	MaxRetryDepth int
	// Timeout fails running builds that exceed it. Zero disables it.
	Timeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		TriggerMaxAttempts: cfg.Builds.TriggerMaxAttempts,
		MonitorInterval:    cfg.Builds.MonitorInterval,
		LogLimit:           cfg.Builds.LogLimit,
		MaxRetryDepth:      cfg.AutoFix.MaxAttempts,
		Timeout:            cfg.Builds.Timeout,
	}
}

type service struct {
	options  Options
	storage  storage.Storage
	registry *ci.Registry
	box      *secret.Box
	notifier notify.Notifier
	limiter  Limiter
	now      func() time.Time
}

type nopLimiter struct{}

func (nopLimiter) Reserve(context.Context, domain.Platform) error { return nil }

func (nopLimiter) Release(context.Context, domain.Platform, ci.RateLimitStatus) {}

// Option customizes the service.
type Option func(*service)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithLimiter paces platform calls with l.
func WithLimiter(l Limiter) Option {
	return func(s *service) { s.limiter = l }
}

// New creates a build Service.
func New(storage storage.Storage,
	registry *ci.Registry,
	box *secret.Box,
	notifier notify.Notifier,
	options Options,
	opts ...Option) Service {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	s := &service{
		options:  options,
		storage:  storage,
		registry: registry,
		box:      box,
		notifier: notifier,
		limiter:  nopLimiter{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) build(ctx context.Context, tx storage.AllStorage, id domain.BuildID) (*domain.Build, error) {
	b, err := tx.BuildByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get build: %w", err)
	}
	if b == nil {
		return nil, serrors.With(serrors.ErrNotFound, "build not found")
	}

	return b, nil
}

func (s *service) List(ctx context.Context, query Query) (Page, error) {
	limit := query.Limit
	switch {
	case limit == 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		return Page{}, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit)
	}
	if query.Status != "" && !query.Status.Valid() {
		return Page{}, serrors.With(serrors.ErrBadRequest, "invalid status %q", query.Status)
	}

	filter := storage.BuildFilter{RepositoryID: query.RepositoryID, Limit: limit, Offset: query.Offset}
	if query.Status != "" {
		filter.Statuses = []domain.BuildStatus{query.Status}
	}
	items, total, err := s.storage.ListBuilds(ctx, filter)
	if err != nil {
		return Page{}, fmt.Errorf("could not list builds: %w", err)
	}

	return Page{
		Items:   items,
		Total:   total,
		HasMore: int64(query.Offset)+int64(len(items)) < total,
	}, nil
}

func (s *service) Get(ctx context.Context, id domain.BuildID) (*Details, error) {
	b, err := s.build(ctx, s.storage, id)
	if err != nil {
		return nil, err
	}

	attempts, err := s.storage.FixAttemptsByBuild(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not list fix attempts: %w", err)
	}

	return &Details{Build: *b, FixAttempts: attempts}, nil
}

// truncateLogs keeps the tail of logs, where failures are reported. The cut
// never splits a multi-byte character.
func (s *service) truncateLogs(logs string) string {
	if s.options.LogLimit <= 0 || len(logs) <= s.options.LogLimit {
		return logs
	}

	i := len(logs) - s.options.LogLimit
	for i < len(logs) && !utf8.RuneStart(logs[i]) {
		i++
	}

	return logs[i:]
}

// finish persists a terminal status. It stamps the repository, schedules log
// collection or analysis, and writes the audit entry.
func (s *service) finish(ctx context.Context,
	tx storage.AllStorage,
	b *domain.Build,
	updates storage.BuildUpdates,
	next ...jobs.CollectLogs) (*domain.Build, error) {
	updates.Status = &b.Status
	updates.FinishedAt = &b.FinishedAt
	if b.DurationSeconds > 0 {
		updates.DurationSeconds = &b.DurationSeconds
	}

	updated, err := tx.UpdateBuild(ctx, b.ID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update build: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "build not found")
	}

	if _, err := tx.UpdateRepository(ctx, b.RepositoryID, storage.RepositoryUpdates{LastBuildAt: &b.FinishedAt}); err != nil {
		return nil, fmt.Errorf("could not stamp repository: %w", err)
	}

	switch {
	case len(next) > 0:
		if _, err := tx.AddJob(ctx, next[0], nil); err != nil {
			return nil, fmt.Errorf("could not enqueue log collection: %w", err)
		}
	case b.Status == domain.BuildStatusFailed:
		if _, err := tx.AddJob(ctx, jobs.AnalyzeBuild{BuildID: b.ID.String()}, nil); err != nil {
			return nil, fmt.Errorf("could not enqueue failure analysis: %w", err)
		}
	}

	entry := domain.SystemAudit(domain.AuditBuildCompleted, resourceBuild, b.ID.String(),
		fmt.Sprintf("build on %s finished with %s", b.Branch, b.Status))
	entry.Success = b.Status == domain.BuildStatusSuccess
	entry.Details = map[string]any{"status": string(b.Status), "duration_seconds": b.DurationSeconds}
	if _, err := tx.StoreAuditLog(ctx, entry); err != nil {
		return nil, fmt.Errorf("could not store audit log: %w", err)
	}

	return updated, nil
}

func (s *service) UpdateLogs(ctx context.Context, id domain.BuildID, update LogsUpdate) (*domain.Build, error) {
	if update.Status != nil && !update.Status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid status %q", *update.Status)
	}

	updates := storage.BuildUpdates{
		ErrorLogs: update.ErrorLogs,
		LogsURL:   update.LogsURL,
	}
	if update.Logs != nil {
		logs := s.truncateLogs(*update.Logs)
		updates.LogsContent = &logs
	}

	var updated *domain.Build
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		b, err := s.build(ctx, tx, id)
		if err != nil {
			return err
		}

		if update.Status != nil && update.Status.IsTerminal() {
			b.Finish(*update.Status, s.now().UTC())
			updated, err = s.finish(ctx, tx, b, updates)

			return err
		}

		updates.Status = update.Status
		if update.Status != nil && *update.Status == domain.BuildStatusRunning && b.StartedAt.IsZero() {
			startedAt := s.now().UTC()
			updates.StartedAt = &startedAt
		}
		updated, err = tx.UpdateBuild(ctx, id, updates)
		if err != nil {
			return fmt.Errorf("could not update build: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not update build logs: %w", err)
	}

	return updated, nil
}

// storePending inserts a pending build and schedules its dispatch.
func (s *service) storePending(ctx context.Context, tx storage.AllStorage, b domain.Build) (*domain.Build, error) {
	b.Status = domain.BuildStatusPending
	created, err := tx.StoreBuild(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("could not store build: %w", err)
	}

	if _, err := tx.AddJob(ctx, jobs.TriggerBuild{
		BuildID:     created.ID.String(),
		MaxAttempts: s.options.TriggerMaxAttempts,
	}, nil); err != nil {
		return nil, fmt.Errorf("could not enqueue build trigger: %w", err)
	}

	entry := domain.SystemAudit(domain.AuditBuildTriggered, resourceBuild, created.ID.String(),
		fmt.Sprintf("%s build queued on %s", created.Trigger, created.Branch))
	entry.Details = map[string]any{
		"repository_id": created.RepositoryID.String(),
		"commit_sha":    created.CommitSHA,
		"trigger":       string(created.Trigger),
	}
	if _, err := tx.StoreAuditLog(ctx, entry); err != nil {
		return nil, fmt.Errorf("could not store audit log: %w", err)
	}

	return created, nil
}

func (s *service) Retry(ctx context.Context, id domain.BuildID) (*domain.Build, error) {
	var created *domain.Build
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		original, err := s.build(ctx, tx, id)
		if err != nil {
			return err
		}

		created, err = s.storePending(ctx, tx, domain.Build{
			RepositoryID:      original.RepositoryID,
			IntegrationID:     original.IntegrationID,
			RetryOf:           original.ID,
			Branch:            original.Branch,
			CommitSHA:         original.CommitSHA,
			PullRequestNumber: original.PullRequestNumber,
			Trigger:           domain.TriggerRetry,
		})

		return err
	}); err != nil {
		return nil, fmt.Errorf("could not retry build: %w", err)
	}

	return created, nil
}

func (s *service) Enqueue(ctx context.Context, req EnqueueRequest) (*domain.Build, error) {
	if req.Branch == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "branch is required")
	}
	if req.Trigger == "" {
		req.Trigger = domain.TriggerManual
	}

	var created *domain.Build
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		integration, err := tx.ActiveIntegration(ctx, req.RepositoryID)
		if err != nil {
			return fmt.Errorf("could not get active integration: %w", err)
		}
		if integration == nil {
			integration, err = tx.StoreIntegration(ctx, domain.Integration{
				RepositoryID: req.RepositoryID,
				Platform:     domain.PlatformGitHubActions,
				Config:       map[string]any{"workflow": githubactions.DefaultWorkflow},
				IsActive:     true,
			})
			if err != nil {
				return fmt.Errorf("could not create default integration: %w", err)
			}
		}

		created, err = s.storePending(ctx, tx, domain.Build{
			RepositoryID:      req.RepositoryID,
			IntegrationID:     integration.ID,
			Branch:            req.Branch,
			CommitSHA:         req.CommitSHA,
			PullRequestNumber: req.PullRequestNumber,
			Trigger:           req.Trigger,
		})

		return err
	}); err != nil {
		return nil, fmt.Errorf("could not enqueue build: %w", err)
	}

	return created, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// FormatDuration renders seconds as "HHh MMm SSs", "MMm SSs" or "SSs".
func FormatDuration(seconds float64) string {
	total := int64(seconds)
	if total <= 0 {
		return "0s"
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%02dh %02dm %02ds", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%02dm %02ds", minutes, secs)
	default:
		return fmt.Sprintf("%02ds", secs)
	}
}

func (s *service) Statistics(ctx context.Context, repoID domain.RepositoryID, days int) (*Statistics, error) {
	if days == 0 {
		days = DefaultStatsDays
	}
	if days < 1 || days > MaxStatsDays {
		return nil, serrors.With(serrors.ErrBadRequest, "days must be between 1 and %d", MaxStatsDays)
	}

	end := s.now().UTC()
	start := end.Add(-time.Duration(days) * 24 * time.Hour)
	agg, err := s.storage.BuildStats(ctx, repoID, start)
	if err != nil {
		return nil, fmt.Errorf("could not aggregate builds: %w", err)
	}

	stats := &Statistics{
		Days:                     days,
		RepositoryID:             repoID,
		Start:                    start,
		End:                      end,
		Total:                    agg.Total,
		Successful:               agg.Successful,
		Failed:                   agg.Failed,
		Running:                  agg.Running,
		Pending:                  agg.Pending,
		AverageDurationSeconds:   round2(agg.AvgDurationSeconds),
		AverageDurationFormatted: FormatDuration(agg.AvgDurationSeconds),
		Triggers:                 agg.ByTrigger,
	}
	if agg.Total > 0 {
		success := float64(agg.Successful) / float64(agg.Total) * 100
		stats.SuccessRate = round2(success)
		stats.FailureRate = round2(100 - success)
	}

	return stats, nil
}
