package autofix_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"autobuilder/internal/autofix"
	"autobuilder/internal/jobs"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/githubapi"
	mockgithubapi "autobuilder/pkg/githubapi/mock"
	"autobuilder/pkg/logger"
	mocknotify "autobuilder/pkg/notify/mock"
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
	github   *mockgithubapi.MockClient
	notifier *mocknotify.MockNotifier
	service  autofix.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := fixture{
		storage:  mockstorage.NewMockStorage(ctrl),
		github:   mockgithubapi.NewMockClient(ctrl),
		notifier: mocknotify.NewMockNotifier(ctrl),
	}
	f.service = autofix.New(f.storage, f.github, f.notifier, autofix.Options{
		MaxAttempts:        2,
		SafeFileTypes:      []string{".md", ".json"},
		TriggerMaxAttempts: 5,
	}, func() time.Time { return now })

	return f
}

func (f fixture) inTx() {
	f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(f.storage)
		})
}

func failedBuild() *domain.Build {
	return &domain.Build{
		ID:            domain.BuildID(uuid.New()),
		RepositoryID:  domain.RepositoryID(uuid.New()),
		IntegrationID: domain.IntegrationID(uuid.New()),
		Branch:        "main",
		Status:        domain.BuildStatusFailed,
	}
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("successful build", func(t *testing.T) {
		f := newFixture(t)
		b := failedBuild()
		b.Status = domain.BuildStatusSuccess
		f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)

		attempts, err := f.service.Analyze(ctx, b.ID)
		require.NoError(t, err)
		require.Empty(t, attempts)
	})

	t.Run("skips known rules and caps attempts", func(t *testing.T) {
		f := newFixture(t)
		b := failedBuild()
		b.ErrorLogs = "Gradle sync failed\nJAVA_HOME not set\nSyntaxError: x\nkeystore not found"
		repo := &domain.Repository{ID: b.RepositoryID, FullName: "acme/app", AutoFixEnabled: true}
		f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)
		f.storage.EXPECT().FixAttemptsByBuild(gomock.Any(), b.ID).Return([]domain.FixAttempt{
			{AttemptNumber: 1, ErrorPattern: "gradle_sync_failed", Status: domain.FixStatusApplied},
		}, nil)
		f.storage.EXPECT().RepositoryByID(gomock.Any(), b.RepositoryID).Return(repo, nil)
		f.inTx()
		f.storage.EXPECT().StoreFixAttempts(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, attempts ...domain.FixAttempt) ([]domain.FixAttempt, error) {
				require.Len(t, attempts, 1)
				require.Equal(t, "java_home_not_set", attempts[0].ErrorPattern)
				require.Equal(t, 2, attempts[0].AttemptNumber)
				require.False(t, attempts[0].RequiresApproval)
				require.Equal(t, "Set the JAVA_HOME environment variable", attempts[0].FixSuggestion)

				return attempts, nil
			})
		f.storage.EXPECT().StoreAuditLog(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, log domain.AuditLog) (*domain.AuditLog, error) {
				require.Equal(t, domain.AuditFixAttempted, log.Action)

				return &log, nil
			})
		f.storage.EXPECT().AddJob(gomock.Any(), jobs.ApplyFix{BuildID: b.ID.String()}, gomock.Nil()).Return(true, nil)

		attempts, err := f.service.Analyze(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, attempts, 1)
	})

	t.Run("low confidence needs approval", func(t *testing.T) {
		f := newFixture(t)
		b := failedBuild()
		b.LogsContent = "SyntaxError: x"
		f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)
		f.storage.EXPECT().FixAttemptsByBuild(gomock.Any(), b.ID).Return(nil, nil)
		f.storage.EXPECT().RepositoryByID(gomock.Any(), b.RepositoryID).
			Return(&domain.Repository{ID: b.RepositoryID}, nil)
		f.inTx()
		f.storage.EXPECT().StoreFixAttempts(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, attempts ...domain.FixAttempt) ([]domain.FixAttempt, error) {
				require.True(t, attempts[0].RequiresApproval)

				return attempts, nil
			})
		f.storage.EXPECT().StoreAuditLog(gomock.Any(), gomock.Any()).Return(&domain.AuditLog{}, nil)

		attempts, err := f.service.Analyze(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, attempts, 1)
	})
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, fixType domain.FixType, repo domain.Repository) (fixture, *domain.Build, *domain.FixAttempt) {
		t.Helper()
		f := newFixture(t)
		b := failedBuild()
		repo.ID = b.RepositoryID
		repo.FullName = "acme/app"
		attempt := &domain.FixAttempt{
			ID:            domain.FixAttemptID(uuid.New()),
			BuildID:       b.ID,
			AttemptNumber: 1,
			Type:          fixType,
			Status:        domain.FixStatusPending,
			ErrorPattern:  "gradle_sync_failed",
			FixSuggestion: "Run gradle clean build",
		}
		f.storage.EXPECT().FixAttemptByID(gomock.Any(), attempt.ID).Return(attempt, nil)
		f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)
		f.storage.EXPECT().RepositoryByID(gomock.Any(), b.RepositoryID).Return(&repo, nil)

		return f, b, attempt
	}

	t.Run("unsupported type", func(t *testing.T) {
		f, _, attempt := setup(t, domain.FixTypeSyntaxFix, domain.Repository{})
		f.inTx()
		f.storage.EXPECT().UpdateFixAttempt(gomock.Any(), attempt.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.FixAttemptID, u storage.FixAttemptUpdates) (*domain.FixAttempt, error) {
				require.Equal(t, domain.FixStatusFailed, *u.Status)
				require.Contains(t, *u.Notes, "unsupported fix type: syntax_fix")

				return attempt, nil
			})
		f.storage.EXPECT().StoreAuditLog(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, log domain.AuditLog) (*domain.AuditLog, error) {
				require.False(t, log.Success)

				return &log, nil
			})

		_, err := f.service.Apply(ctx, attempt.ID)
		require.NoError(t, err)
	})

	t.Run("opens and merges a pull request", func(t *testing.T) {
		f, b, attempt := setup(t, domain.FixTypeConfigFix, domain.Repository{AutoMergeEnabled: true, AutoFixSafeOnly: true})
		branch := "auto-fix-config/" + b.ID.String() + "/1"
		f.github.EXPECT().OpenFixPullRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, pr githubapi.FixPullRequest) (githubapi.PullRequest, error) {
				require.Equal(t, "acme/app", pr.Repository)
				require.Equal(t, "main", pr.Base)
				require.Equal(t, branch, pr.Branch)
				require.Contains(t, pr.Files, ".autofix/"+b.ID.String()+"-1.md")

				return githubapi.PullRequest{Number: 7, URL: "https://github.com/acme/app/pull/7"}, nil
			})
		f.github.EXPECT().MergePullRequest(gomock.Any(), "acme/app", 7, gomock.Any()).Return(nil)
		f.inTx()
		f.storage.EXPECT().UpdateFixAttempt(gomock.Any(), attempt.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.FixAttemptID, u storage.FixAttemptUpdates) (*domain.FixAttempt, error) {
				require.Equal(t, domain.FixStatusApplied, *u.Status)
				require.Equal(t, branch, *u.BranchName)
				require.Equal(t, 7, *u.PullRequestNumber)
				require.Equal(t, now, *u.AppliedAt)

				return attempt, nil
			})
		rebuildID := domain.BuildID(uuid.New())
		f.storage.EXPECT().StoreBuild(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rebuild domain.Build) (*domain.Build, error) {
				require.Equal(t, domain.TriggerAutoFix, rebuild.Trigger)
				require.Equal(t, "main", rebuild.Branch)
				require.Equal(t, b.ID, rebuild.RetryOf)
				rebuild.ID = rebuildID

				return &rebuild, nil
			})
		f.storage.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				require.Equal(t, jobs.TriggerBuild{BuildID: rebuildID.String(), MaxAttempts: 5}, args)

				return true, nil
			})
		var actions []domain.AuditAction
		f.storage.EXPECT().StoreAuditLog(gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
			func(_ context.Context, log domain.AuditLog) (*domain.AuditLog, error) {
				actions = append(actions, log.Action)

				return &log, nil
			})
		f.notifier.EXPECT().FixApplied(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.service.Apply(ctx, attempt.ID)
		require.NoError(t, err)
		require.Equal(t, []domain.AuditAction{
			domain.AuditFixApplied, domain.AuditPullRequestCreated, domain.AuditPullRequestMerged,
		}, actions)
	})

	t.Run("github failure marks the attempt failed", func(t *testing.T) {
		f, _, attempt := setup(t, domain.FixTypeMissingFile, domain.Repository{})
		f.github.EXPECT().OpenFixPullRequest(gomock.Any(), gomock.Any()).
			Return(githubapi.PullRequest{}, errors.New("branch protected"))
		f.inTx()
		f.storage.EXPECT().UpdateFixAttempt(gomock.Any(), attempt.ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.FixAttemptID, u storage.FixAttemptUpdates) (*domain.FixAttempt, error) {
				require.Contains(t, *u.Notes, "branch protected")

				return attempt, nil
			})
		f.storage.EXPECT().StoreAuditLog(gomock.Any(), gomock.Any()).Return(&domain.AuditLog{}, nil)

		_, err := f.service.Apply(ctx, attempt.ID)
		require.NoError(t, err)
	})
}

func TestApply_WithoutGitHubClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := autofix.New(st, nil, nil, autofix.Options{MaxAttempts: 2}, func() time.Time { return now })

	b := failedBuild()
	attempt := &domain.FixAttempt{
		ID:            domain.FixAttemptID(uuid.New()),
		BuildID:       b.ID,
		AttemptNumber: 1,
		Type:          domain.FixTypeDependencyUpdate,
		Status:        domain.FixStatusPending,
	}
	st.EXPECT().FixAttemptByID(gomock.Any(), attempt.ID).Return(attempt, nil)
	st.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)
	st.EXPECT().RepositoryByID(gomock.Any(), b.RepositoryID).
		Return(&domain.Repository{ID: b.RepositoryID, FullName: "acme/app"}, nil)
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(st)
		})
	st.EXPECT().UpdateFixAttempt(gomock.Any(), attempt.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.FixAttemptID, u storage.FixAttemptUpdates) (*domain.FixAttempt, error) {
			require.Equal(t, domain.FixStatusFailed, *u.Status)
			require.Contains(t, *u.Notes, "github client is not configured")

			return attempt, nil
		})
	st.EXPECT().StoreAuditLog(gomock.Any(), gomock.Any()).Return(&domain.AuditLog{}, nil)

	_, err := svc.Apply(context.Background(), attempt.ID)
	require.NoError(t, err)
}

func TestApplyConflict(t *testing.T) {
	f := newFixture(t)
	attempt := &domain.FixAttempt{ID: domain.FixAttemptID(uuid.New()), Status: domain.FixStatusApplied}
	f.storage.EXPECT().FixAttemptByID(gomock.Any(), attempt.ID).Return(attempt, nil)

	_, err := f.service.Apply(context.Background(), attempt.ID)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestApplyFirst(t *testing.T) {
	f := newFixture(t)
	buildID := domain.BuildID(uuid.New())
	f.storage.EXPECT().FixAttemptsByBuild(gomock.Any(), buildID).Return([]domain.FixAttempt{
		{AttemptNumber: 1, Status: domain.FixStatusPending, RequiresApproval: true},
		{AttemptNumber: 2, Status: domain.FixStatusFailed},
	}, nil)

	attempt, err := f.service.ApplyFirst(context.Background(), buildID)
	require.NoError(t, err)
	require.Nil(t, attempt)
}

func TestApprove_OtherBuild(t *testing.T) {
	f := newFixture(t)
	attempt := &domain.FixAttempt{ID: domain.FixAttemptID(uuid.New()), BuildID: domain.BuildID(uuid.New())}
	f.storage.EXPECT().FixAttemptByID(gomock.Any(), attempt.ID).Return(attempt, nil)

	_, err := f.service.Approve(context.Background(), domain.BuildID(uuid.New()), attempt.ID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestSuggestions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	b := failedBuild()
	b.ErrorLogs = "Gradle sync failed"
	b.LogsContent = "Gradle sync failed again\nJAVA_HOME not set"
	f.storage.EXPECT().BuildByID(gomock.Any(), b.ID).Return(b, nil)

	got, err := f.service.Suggestions(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Run gradle clean build", "Set the JAVA_HOME environment variable"}, got)

	empty := failedBuild()
	f.storage.EXPECT().BuildByID(gomock.Any(), empty.ID).Return(empty, nil)
	got, err = f.service.Suggestions(ctx, empty.ID)
	require.NoError(t, err)
	require.Empty(t, got)
	require.NotNil(t, got)
}
