package builds_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"autobuilder/internal/builds"
	"autobuilder/internal/jobs"
	"autobuilder/pkg/ci"
	mockci "autobuilder/pkg/ci/mock"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/logger"
	mocknotify "autobuilder/pkg/notify/mock"
	"autobuilder/pkg/secret"
	"autobuilder/pkg/serrors"
	"autobuilder/pkg/storage"
	mockstorage "autobuilder/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) //nolint: gochecknoglobals

type fixture struct {
	storage  *mockstorage.MockStorage
	ci       *mockci.MockClient
	notifier *mocknotify.MockNotifier
	box      *secret.Box
	service  builds.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := fixture{
		storage:  mockstorage.NewMockStorage(ctrl),
		ci:       mockci.NewMockClient(ctrl),
		notifier: mocknotify.NewMockNotifier(ctrl),
		box:      secret.NewBox("test"),
	}
	f.ci.EXPECT().Platform().Return(domain.PlatformGitHubActions).AnyTimes()
	f.service = builds.New(f.storage, ci.NewRegistry(f.ci), f.box, f.notifier, builds.Options{
		TriggerMaxAttempts: 4,
		MonitorInterval:    time.Minute,
		LogLimit:           10,
		MaxRetryDepth:      2,
	}, builds.WithClock(func() time.Time { return now }))

	return f
}

func (f fixture) inTx() {
	f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(f.storage)
		})
}

// expectAudit accepts one audit entry with the given action.
func (f fixture) expectAudit(t *testing.T, action domain.AuditAction) {
	t.Helper()
	f.storage.EXPECT().StoreAuditLog(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, log domain.AuditLog) (*domain.AuditLog, error) {
			require.Equal(t, action, log.Action)

			return &log, nil
		})
}

// expectJob accepts one job and hands it to check.
func (f fixture) expectJob(check func(args river.JobArgs, opts *river.InsertOpts)) {
	f.storage.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
			check(args, opts)

			return true, nil
		})
}

func newBuild(status domain.BuildStatus) *domain.Build {
	return &domain.Build{
		ID:            domain.BuildID(uuid.New()),
		RepositoryID:  domain.RepositoryID(uuid.New()),
		IntegrationID: domain.IntegrationID(uuid.New()),
		Branch:        "main",
		CommitSHA:     "abc123",
		Trigger:       domain.TriggerPush,
		Status:        status,
	}
}

// expectTarget wires the repository and integration lookups of b.
func (f fixture) expectTarget(t *testing.T, b *domain.Build) (*domain.Repository, *domain.Integration) {
	t.Helper()
	token, err := f.box.Seal("gh-token")
	require.NoError(t, err)

	repo := &domain.Repository{ID: b.RepositoryID, Owner: "acme", Name: "app", FullName: "acme/app"}
	integration := &domain.Integration{
		ID:             b.IntegrationID,
		RepositoryID:   b.RepositoryID,
		Platform:       domain.PlatformGitHubActions,
		Config:         map[string]any{"workflow": "build.yml"},
		TokenEncrypted: token,
		IsActive:       true,
	}
	f.storage.EXPECT().RepositoryByID(gomock.Any(), b.RepositoryID).Return(repo, nil)
	f.storage.EXPECT().IntegrationByID(gomock.Any(), b.IntegrationID).Return(integration, nil)

	return repo, integration
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("limit above max", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.List(ctx, builds.Query{Limit: 101})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("invalid status", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.List(ctx, builds.Query{Status: "exploded"})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("default limit", func(t *testing.T) {
		f := newFixture(t)
		f.storage.EXPECT().ListBuilds(gomock.Any(), storage.BuildFilter{
			Statuses: []domain.BuildStatus{domain.BuildStatusFailed},
			Limit:    builds.DefaultLimit,
			Offset:   1,
		}).Return([]domain.Build{*newBuild(domain.BuildStatusFailed)}, int64(3), nil)

		page, err := f.service.List(ctx, builds.Query{Status: domain.BuildStatusFailed, Offset: 1})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		require.Equal(t, int64(3), page.Total)
		require.True(t, page.HasMore)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.storage.EXPECT().BuildByID(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := f.service.Get(ctx, domain.BuildID(uuid.New()))
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("with fix attempts", func(t *testing.T) {
		f := newFixture(t)
		b := newBuild(domain.BuildStatusFailed)
		f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)
		f.storage.EXPECT().FixAttemptsByBuild(gomock.Any(), b.ID).
			Return([]domain.FixAttempt{{BuildID: b.ID, AttemptNumber: 1}}, nil)

		details, err := f.service.Get(ctx, b.ID)
		require.NoError(t, err)
		require.Equal(t, b.ID, details.Build.ID)
		require.Len(t, details.FixAttempts, 1)
	})
}

func TestUpdateLogs(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid status", func(t *testing.T) {
		f := newFixture(t)
		status := domain.BuildStatus("nope")
		_, err := f.service.UpdateLogs(ctx, domain.BuildID(uuid.New()), builds.LogsUpdate{Status: &status})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("running keeps the tail of logs", func(t *testing.T) {
		f := newFixture(t)
		b := newBuild(domain.BuildStatusPending)
		f.inTx()
		f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)
		f.storage.EXPECT().UpdateBuild(gomock.Any(), b.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.BuildID, u storage.BuildUpdates) (*domain.Build, error) {
				require.Equal(t, domain.BuildStatusRunning, *u.Status)
				require.Equal(t, now, *u.StartedAt)
				require.Equal(t, "0123456789", *u.LogsContent)

				return b, nil
			})

		status := domain.BuildStatusRunning
		logs := "xxxxx0123456789"
		_, err := f.service.UpdateLogs(ctx, b.ID, builds.LogsUpdate{Status: &status, Logs: &logs})
		require.NoError(t, err)
	})

	t.Run("tail does not split multi-byte characters", func(t *testing.T) {
		f := newFixture(t)
		b := newBuild(domain.BuildStatusRunning)
		f.inTx()
		f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)
		f.storage.EXPECT().UpdateBuild(gomock.Any(), b.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.BuildID, u storage.BuildUpdates) (*domain.Build, error) {
				require.True(t, utf8.ValidString(*u.LogsContent))
				require.Equal(t, strings.Repeat("ب", 4)+"x", *u.LogsContent)

				return b, nil
			})

		logs := strings.Repeat("ب", 8) + "x"
		_, err := f.service.UpdateLogs(ctx, b.ID, builds.LogsUpdate{Logs: &logs})
		require.NoError(t, err)
	})

	t.Run("failed finishes and schedules analysis", func(t *testing.T) {
		f := newFixture(t)
		b := newBuild(domain.BuildStatusRunning)
		b.StartedAt = now.Add(-90 * time.Second)
		f.inTx()
		f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)
		f.storage.EXPECT().UpdateBuild(gomock.Any(), b.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.BuildID, u storage.BuildUpdates) (*domain.Build, error) {
				require.Equal(t, domain.BuildStatusFailed, *u.Status)
				require.Equal(t, now, *u.FinishedAt)
				require.Equal(t, int64(90), *u.DurationSeconds)
				require.Equal(t, "boom", *u.ErrorLogs)

				return b, nil
			})
		f.storage.EXPECT().UpdateRepository(gomock.Any(), b.RepositoryID, gomock.Any()).
			Return(&domain.Repository{}, nil)
		f.expectJob(func(args river.JobArgs, _ *river.InsertOpts) {
			require.Equal(t, jobs.AnalyzeBuild{BuildID: b.ID.String()}, args)
		})
		f.expectAudit(t, domain.AuditBuildCompleted)

		status := domain.BuildStatusFailed
		errorLogs := "boom"
		_, err := f.service.UpdateLogs(ctx, b.ID, builds.LogsUpdate{Status: &status, ErrorLogs: &errorLogs})
		require.NoError(t, err)
	})
}

func TestRetry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	original := newBuild(domain.BuildStatusFailed)
	f.inTx()
	f.storage.EXPECT().BuildByID(gomock.Any(), original.ID).Return(original, nil)
	retryID := domain.BuildID(uuid.New())
	f.storage.EXPECT().StoreBuild(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b domain.Build) (*domain.Build, error) {
			require.Equal(t, original.ID, b.RetryOf)
			require.Equal(t, domain.TriggerRetry, b.Trigger)
			require.Equal(t, domain.BuildStatusPending, b.Status)
			require.Equal(t, original.IntegrationID, b.IntegrationID)
			b.ID = retryID

			return &b, nil
		})
	f.expectJob(func(args river.JobArgs, _ *river.InsertOpts) {
		require.Equal(t, jobs.TriggerBuild{BuildID: retryID.String(), MaxAttempts: 4}, args)
	})
	f.expectAudit(t, domain.AuditBuildTriggered)

	b, err := f.service.Retry(ctx, original.ID)
	require.NoError(t, err)
	require.Equal(t, retryID, b.ID)
}

func TestEnqueue(t *testing.T) {
	ctx := context.Background()

	t.Run("branch required", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.service.Enqueue(ctx, builds.EnqueueRequest{})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("creates default integration", func(t *testing.T) {
		f := newFixture(t)
		repoID := domain.RepositoryID(uuid.New())
		integrationID := domain.IntegrationID(uuid.New())
		f.inTx()
		f.storage.EXPECT().ActiveIntegration(gomock.Any(), repoID).Return(nil, nil)
		f.storage.EXPECT().StoreIntegration(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, i domain.Integration) (*domain.Integration, error) {
				require.Equal(t, domain.PlatformGitHubActions, i.Platform)
				require.Equal(t, "build.yml", i.ConfigString("workflow"))
				i.ID = integrationID

				return &i, nil
			})
		f.storage.EXPECT().StoreBuild(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b domain.Build) (*domain.Build, error) {
				require.Equal(t, integrationID, b.IntegrationID)
				require.Equal(t, domain.TriggerManual, b.Trigger)
				b.ID = domain.BuildID(uuid.New())

				return &b, nil
			})
		f.expectJob(func(args river.JobArgs, _ *river.InsertOpts) {
			require.IsType(t, jobs.TriggerBuild{}, args)
		})
		f.expectAudit(t, domain.AuditBuildTriggered)

		b, err := f.service.Enqueue(ctx, builds.EnqueueRequest{RepositoryID: repoID, Branch: "dev", CommitSHA: "c0ffee"})
		require.NoError(t, err)
		require.Equal(t, "dev", b.Branch)
	})
}

func TestStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("window bounds", func(t *testing.T) {
		f := newFixture(t)
		for _, days := range []int{-1, 31} {
			_, err := f.service.Statistics(ctx, domain.RepositoryID{}, days)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
		}
	})

	t.Run("rates", func(t *testing.T) {
		f := newFixture(t)
		f.storage.EXPECT().BuildStats(gomock.Any(), domain.RepositoryID{}, now.Add(-7*24*time.Hour)).
			Return(storage.BuildStats{
				Total:              3,
				Successful:         2,
				Failed:             1,
				AvgDurationSeconds: 125.456,
				ByTrigger:          map[domain.TriggerType]int64{domain.TriggerPush: 3},
			}, nil)

		stats, err := f.service.Statistics(ctx, domain.RepositoryID{}, 0)
		require.NoError(t, err)
		require.Equal(t, 7, stats.Days)
		require.InDelta(t, 66.67, stats.SuccessRate, 0.001)
		require.InDelta(t, 33.33, stats.FailureRate, 0.001)
		require.InDelta(t, 125.46, stats.AverageDurationSeconds, 0.001)
		require.Equal(t, "02m 05s", stats.AverageDurationFormatted)
	})

	t.Run("no builds", func(t *testing.T) {
		f := newFixture(t)
		f.storage.EXPECT().BuildStats(gomock.Any(), gomock.Any(), gomock.Any()).Return(storage.BuildStats{}, nil)

		stats, err := f.service.Statistics(ctx, domain.RepositoryID{}, 30)
		require.NoError(t, err)
		require.Zero(t, stats.SuccessRate)
		require.Zero(t, stats.FailureRate)
		require.Equal(t, "0s", stats.AverageDurationFormatted)
	})
}

func TestFormatDuration(t *testing.T) {
	require.Equal(t, "0s", builds.FormatDuration(0))
	require.Equal(t, "09s", builds.FormatDuration(9.8))
	require.Equal(t, "01m 00s", builds.FormatDuration(60))
	require.Equal(t, "01h 01m 01s", builds.FormatDuration(3661))
}

func TestTrigger(t *testing.T) {
	ctx := context.Background()

	t.Run("finished build", func(t *testing.T) {
		f := newFixture(t)
		b := newBuild(domain.BuildStatusSuccess)
		f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)

		_, err := f.service.Trigger(ctx, b.ID, false)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("already running", func(t *testing.T) {
		f := newFixture(t)
		b := newBuild(domain.BuildStatusRunning)
		f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)

		_, err := f.service.Trigger(ctx, b.ID, false)
		require.NoError(t, err)
	})

	t.Run("dispatched", func(t *testing.T) {
		f := newFixture(t)
		b := newBuild(domain.BuildStatusPending)
		f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)
		_, integration := f.expectTarget(t, b)
		rl := ci.RateLimitStatus{Limit: 10, Remaining: 9, ResetAt: now.Add(time.Hour)}
		f.ci.EXPECT().Trigger(gomock.Any(), ci.TriggerRequest{
			Repository: "acme/app",
			Branch:     "main",
			CommitSHA:  "abc123",
			Config:     integration.Config,
			Token:      "gh-token",
		}).Return(ci.Run{ID: "42", URL: "https://ci/42"}, rl, nil)
		f.inTx()
		f.storage.EXPECT().UpdateBuild(gomock.Any(), b.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.BuildID, u storage.BuildUpdates) (*domain.Build, error) {
				require.Equal(t, domain.BuildStatusRunning, *u.Status)
				require.Equal(t, "42", *u.PlatformBuildID)
				require.Equal(t, "https://ci/42", *u.LogsURL)

				return b, nil
			})
		f.storage.EXPECT().UpdateIntegration(gomock.Any(), integration.ID, gomock.Any()).Return(integration, nil)
		f.expectJob(func(args river.JobArgs, opts *river.InsertOpts) {
			require.Equal(t, jobs.MonitorBuild{BuildID: b.ID.String()}, args)
			require.Equal(t, now.Add(time.Minute), opts.ScheduledAt)
		})

		got, err := f.service.Trigger(ctx, b.ID, false)
		require.NoError(t, err)
		require.Equal(t, rl, got)
	})

	t.Run("rate limited is returned", func(t *testing.T) {
		f := newFixture(t)
		b := newBuild(domain.BuildStatusPending)
		f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)
		f.expectTarget(t, b)
		f.ci.EXPECT().Trigger(gomock.Any(), gomock.Any()).
			Return(ci.Run{}, ci.RateLimitStatus{ResetAt: now}, serrors.KindOnly(serrors.ErrRateLimited))

		_, err := f.service.Trigger(ctx, b.ID, true)
		require.ErrorIs(t, err, serrors.ErrRateLimited)
	})

	t.Run("transient error is retried", func(t *testing.T) {
		f := newFixture(t)
		b := newBuild(domain.BuildStatusPending)
		f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)
		f.expectTarget(t, b)
		f.ci.EXPECT().Trigger(gomock.Any(), gomock.Any()).
			Return(ci.Run{}, ci.RateLimitStatus{}, errors.New("connection reset"))

		_, err := f.service.Trigger(ctx, b.ID, false)
		require.ErrorContains(t, err, "connection reset")
	})

	t.Run("last attempt fails the build", func(t *testing.T) {
		f := newFixture(t)
		b := newBuild(domain.BuildStatusPending)
		f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)
		repo, _ := f.expectTarget(t, b)
		f.ci.EXPECT().Trigger(gomock.Any(), gomock.Any()).
			Return(ci.Run{}, ci.RateLimitStatus{}, errors.New("connection reset"))
		f.inTx()
		f.storage.EXPECT().UpdateBuild(gomock.Any(), b.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.BuildID, u storage.BuildUpdates) (*domain.Build, error) {
				require.Equal(t, domain.BuildStatusFailed, *u.Status)
				require.Contains(t, *u.ErrorLogs, "connection reset")

				return b, nil
			})
		f.storage.EXPECT().UpdateRepository(gomock.Any(), b.RepositoryID, gomock.Any()).Return(repo, nil)
		f.expectJob(func(args river.JobArgs, _ *river.InsertOpts) {
			require.IsType(t, jobs.AnalyzeBuild{}, args)
		})
		f.expectAudit(t, domain.AuditBuildCompleted)
		f.notifier.EXPECT().BuildFailed(gomock.Any(), *repo, gomock.Any()).Return(nil)

		_, err := f.service.Trigger(ctx, b.ID, true)
		require.NoError(t, err)
	})

	t.Run("missing integration fails the build", func(t *testing.T) {
		f := newFixture(t)
		b := newBuild(domain.BuildStatusPending)
		b.IntegrationID = domain.IntegrationID{}
		repo := &domain.Repository{ID: b.RepositoryID, FullName: "acme/app"}
		f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)
		f.storage.EXPECT().RepositoryByID(gomock.Any(), b.RepositoryID).Return(repo, nil)
		f.inTx()
		f.storage.EXPECT().UpdateBuild(gomock.Any(), b.ID, gomock.Any()).Return(b, nil)
		f.storage.EXPECT().UpdateRepository(gomock.Any(), b.RepositoryID, gomock.Any()).Return(repo, nil)
		f.expectJob(func(river.JobArgs, *river.InsertOpts) {})
		f.expectAudit(t, domain.AuditBuildCompleted)
		f.notifier.EXPECT().BuildFailed(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("slack down"))

		_, err := f.service.Trigger(ctx, b.ID, false)
		require.NoError(t, err)
	})
}

func TestMonitor(t *testing.T) {
	ctx := context.Background()

	t.Run("finished build is done", func(t *testing.T) {
		f := newFixture(t)
		b := newBuild(domain.BuildStatusCancelled)
		f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)

		res, _, err := f.service.Monitor(ctx, b.ID)
		require.NoError(t, err)
		require.True(t, res.Done)
	})

	t.Run("still running", func(t *testing.T) {
		f := newFixture(t)
		b := newBuild(domain.BuildStatusRunning)
		b.PlatformBuildID = "42"
		f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)
		f.expectTarget(t, b)
		f.ci.EXPECT().Status(gomock.Any(), gomock.Any()).
			Return(ci.RunStatus{Status: domain.BuildStatusRunning}, ci.RateLimitStatus{}, nil)

		res, _, err := f.service.Monitor(ctx, b.ID)
		require.NoError(t, err)
		require.False(t, res.Done)
	})

	t.Run("finished run", func(t *testing.T) {
		f := newFixture(t)
		b := newBuild(domain.BuildStatusRunning)
		b.PlatformBuildID = "42"
		b.StartedAt = now.Add(-time.Hour)
		f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)
		repo, _ := f.expectTarget(t, b)
		f.ci.EXPECT().Status(gomock.Any(), ci.RunRef{
			ID: "42", Repository: "acme/app", Config: map[string]any{"workflow": "build.yml"}, Token: "gh-token",
		}).Return(ci.RunStatus{
			Status:     domain.BuildStatusSuccess,
			FinishedAt: now.Add(-30 * time.Minute),
		}, ci.RateLimitStatus{}, nil)
		f.inTx()
		f.storage.EXPECT().UpdateBuild(gomock.Any(), b.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.BuildID, u storage.BuildUpdates) (*domain.Build, error) {
				require.Equal(t, domain.BuildStatusSuccess, *u.Status)
				require.Equal(t, int64(1800), *u.DurationSeconds)

				return b, nil
			})
		f.storage.EXPECT().UpdateRepository(gomock.Any(), b.RepositoryID, gomock.Any()).Return(repo, nil)
		f.expectJob(func(args river.JobArgs, _ *river.InsertOpts) {
			require.Equal(t, jobs.CollectLogs{BuildID: b.ID.String()}, args)
		})
		f.expectAudit(t, domain.AuditBuildCompleted)

		res, _, err := f.service.Monitor(ctx, b.ID)
		require.NoError(t, err)
		require.True(t, res.Done)
		require.Equal(t, domain.BuildStatusSuccess, res.Status)
	})
}

func TestCollectLogs(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	b := newBuild(domain.BuildStatusFailed)
	b.PlatformBuildID = "42"
	f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)
	f.expectTarget(t, b)
	f.ci.EXPECT().Logs(gomock.Any(), gomock.Any()).Return(strings.Repeat("a", 20)+"error: xyz", nil)
	f.inTx()
	f.storage.EXPECT().UpdateBuild(gomock.Any(), b.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.BuildID, u storage.BuildUpdates) (*domain.Build, error) {
			require.Equal(t, "error: xyz", *u.LogsContent)

			return b, nil
		})
	f.expectJob(func(args river.JobArgs, _ *river.InsertOpts) {
		require.Equal(t, jobs.AnalyzeBuild{BuildID: b.ID.String()}, args)
	})

	require.NoError(t, f.service.CollectLogs(ctx, b.ID))
}

func TestRetryFailed(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	shallow := newBuild(domain.BuildStatusFailed)
	f.storage.EXPECT().RetryableFailedBuilds(gomock.Any(), domain.RepositoryID{}, 2, uint(50)).
		Return([]domain.Build{*shallow}, nil)
	f.inTx()
	f.storage.EXPECT().BuildByID(gomock.Any(), shallow.ID).Return(shallow, nil)
	f.storage.EXPECT().StoreBuild(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b domain.Build) (*domain.Build, error) {
			require.Equal(t, shallow.ID, b.RetryOf)
			b.ID = domain.BuildID(uuid.New())

			return &b, nil
		})
	f.expectJob(func(river.JobArgs, *river.InsertOpts) {})
	f.expectAudit(t, domain.AuditBuildTriggered)

	n, err := f.service.RetryFailed(ctx, domain.RepositoryID{})
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestCleanup(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.service.Cleanup(ctx, 0)
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	f.storage.EXPECT().DeleteSuccessfulBuildsBefore(gomock.Any(), now.Add(-48*time.Hour)).Return(int64(5), nil)
	n, err := f.service.Cleanup(ctx, 48*time.Hour)
	require.NoError(t, err)
	require.Equal(t, int64(5), n)
}

func TestMonitor_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockStorage(ctrl)
	client := mockci.NewMockClient(ctrl)
	client.EXPECT().Platform().Return(domain.PlatformGitHubActions).AnyTimes()
	limiter := &countingLimiter{}
	service := builds.New(store, ci.NewRegistry(client), secret.NewBox("test"), nil, builds.Options{
		Timeout: time.Hour,
	}, builds.WithClock(func() time.Time { return now }), builds.WithLimiter(limiter))
	f := fixture{storage: store, ci: client, box: secret.NewBox("test"), service: service}

	b := newBuild(domain.BuildStatusRunning)
	b.PlatformBuildID = "42"
	b.StartedAt = now.Add(-2 * time.Hour)
	store.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)
	repo, _ := f.expectTarget(t, b)
	rl := ci.RateLimitStatus{Limit: 5, Remaining: 4, ResetAt: now.Add(time.Minute)}
	client.EXPECT().Status(gomock.Any(), gomock.Any()).
		Return(ci.RunStatus{Status: domain.BuildStatusRunning}, rl, nil)
	f.inTx()
	store.EXPECT().UpdateBuild(gomock.Any(), b.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.BuildID, u storage.BuildUpdates) (*domain.Build, error) {
			require.Equal(t, domain.BuildStatusTimeout, *u.Status)

			return b, nil
		})
	store.EXPECT().UpdateRepository(gomock.Any(), b.RepositoryID, gomock.Any()).Return(repo, nil)
	f.expectJob(func(river.JobArgs, *river.InsertOpts) {})
	f.expectAudit(t, domain.AuditBuildCompleted)

	res, _, err := service.Monitor(context.Background(), b.ID)
	require.NoError(t, err)
	require.True(t, res.Done)
	require.Equal(t, domain.BuildStatusTimeout, res.Status)
	require.Equal(t, 1, limiter.reserved)
	require.Equal(t, []ci.RateLimitStatus{rl}, limiter.released)
}

type countingLimiter struct {
	reserved int
	released []ci.RateLimitStatus
}

func (l *countingLimiter) Reserve(context.Context, domain.Platform) error {
	l.reserved++

	return nil
}

func (l *countingLimiter) Release(_ context.Context, _ domain.Platform, status ci.RateLimitStatus) {
	l.released = append(l.released, status)
}
