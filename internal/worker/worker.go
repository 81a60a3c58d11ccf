package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"autobuilder/internal/autofix"
	"autobuilder/internal/builds"
	"autobuilder/internal/catalog"
	"autobuilder/internal/config"
	"autobuilder/internal/health"
	"autobuilder/internal/jobs"
	"autobuilder/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// Periodic job intervals.
const (
	CleanupInterval      = 24 * time.Hour
	HealthReportInterval = time.Hour
	RetryFailedInterval  = 6 * time.Hour
)

type Deps struct {
	Catalog catalog.Catalog
	Builds  builds.Service
	AutoFix autofix.Service
	Health  health.Checker
}

type Options struct {
	// MaxWorkers is the concurrency of the builds queue. The other queues get
	// a share of it.
	MaxWorkers      int
	MonitorInterval time.Duration
	CleanupAfter    time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:      cfg.Worker.MaxWorkers,
		MonitorInterval: cfg.Builds.MonitorInterval,
		CleanupAfter:    cfg.Builds.CleanupAfter,
	}
}

// NewWorkers registers a worker for every job kind.
func NewWorkers(deps Deps, opts Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, &SyncRepositoryWorker{catalog: deps.Catalog})
	river.AddWorker(workers, &TriggerBuildWorker{builds: deps.Builds})
	river.AddWorker(workers, &MonitorBuildWorker{builds: deps.Builds, interval: opts.MonitorInterval})
	river.AddWorker(workers, &CollectLogsWorker{builds: deps.Builds})
	river.AddWorker(workers, &AnalyzeBuildWorker{autofix: deps.AutoFix})
	river.AddWorker(workers, &ApplyFixWorker{autofix: deps.AutoFix})
	river.AddWorker(workers, &RetryFailedBuildsWorker{builds: deps.Builds})
	river.AddWorker(workers, &CleanupBuildsWorker{builds: deps.Builds, fallback: opts.CleanupAfter})
	river.AddWorker(workers, &HealthReportWorker{checker: deps.Health})

	return workers
}

// PeriodicJobs schedules maintenance.
func PeriodicJobs(opts Options) []*river.PeriodicJob {
	return []*river.PeriodicJob{
		river.NewPeriodicJob(river.PeriodicInterval(CleanupInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.CleanupBuilds{OlderThan: opts.CleanupAfter}, nil
			}, nil),
		river.NewPeriodicJob(river.PeriodicInterval(HealthReportInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.HealthReport{}, nil
			}, &river.PeriodicJobOpts{RunOnStart: true}),
		river.NewPeriodicJob(river.PeriodicInterval(RetryFailedInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return jobs.RetryFailedBuilds{}, nil
			}, nil),
	}
}

// Queues returns the queue configuration for opts.
func Queues(opts Options) map[string]river.QueueConfig {
	workers := max(opts.MaxWorkers, 1)

	return map[string]river.QueueConfig{
		river.QueueDefault:    {MaxWorkers: max(workers/4, 1)},
		jobs.QueueBuilds:      {MaxWorkers: workers},
		jobs.QueueAutoFix:     {MaxWorkers: max(workers/2, 1)},
		jobs.QueueMaintenance: {MaxWorkers: 1},
	}
}

func Start(ctx context.Context, dbPool *pgxpool.Pool, deps Deps, opts Options) (*river.Client[pgx.Tx], error) {
	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues:       Queues(opts),
		Workers:      NewWorkers(deps, opts),
		PeriodicJobs: PeriodicJobs(opts),
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
