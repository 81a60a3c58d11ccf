package catalog_test

import (
	"context"
	"errors"
	"testing"

	"autobuilder/internal/catalog"
	"autobuilder/internal/jobs"
	"autobuilder/pkg/ci"
	mockci "autobuilder/pkg/ci/mock"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/githubapi"
	mockgithubapi "autobuilder/pkg/githubapi/mock"
	"autobuilder/pkg/logger"
	"autobuilder/pkg/secret"
	"autobuilder/pkg/serrors"
	"autobuilder/pkg/storage"
	mockstorage "autobuilder/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type fixture struct {
	storage *mockstorage.MockStorage
	github  *mockgithubapi.MockClient
	ci      *mockci.MockClient
	box     *secret.Box
	catalog catalog.Catalog
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := fixture{
		storage: mockstorage.NewMockStorage(ctrl),
		github:  mockgithubapi.NewMockClient(ctrl),
		ci:      mockci.NewMockClient(ctrl),
		box:     secret.NewBox("test"),
	}
	f.ci.EXPECT().Platform().Return(domain.PlatformCodemagic).AnyTimes()
	f.catalog = catalog.New(f.storage, f.box, ci.NewRegistry(f.ci), f.github, catalog.Options{
		MaxAttempts:   3,
		SafeFileTypes: []string{".json"},
		PrimaryBranch: "main",
		WebhookURL:    "https://hooks.example.com/api/webhooks/github",
	})

	return f
}

// inTx runs WithTx callbacks against the same mock.
func (f fixture) inTx() {
	f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(f.storage)
		})
}

func newRepoID() domain.RepositoryID { return domain.RepositoryID(uuid.New()) }

func TestCreateRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.catalog.CreateRepository(ctx, catalog.NewRepository{Owner: "acme"})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
		require.ErrorContains(t, err, "name, github_repo_id")
	})

	t.Run("duplicate", func(t *testing.T) {
		f := newFixture(t)
		f.inTx()
		f.storage.EXPECT().StoreRepository(gomock.Any(), gomock.Any()).
			Return(nil, storage.ErrDuplicate)

		_, err := f.catalog.CreateRepository(ctx, catalog.NewRepository{Owner: "acme", Name: "app", GitHubRepoID: 7})
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("defaults and audit", func(t *testing.T) {
		f := newFixture(t)
		f.inTx()
		id := newRepoID()
		f.storage.EXPECT().StoreRepository(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, repo domain.Repository) (*domain.Repository, error) {
				require.Equal(t, "acme/app", repo.FullName)
				require.Equal(t, "main", repo.PrimaryBranch)
				require.False(t, repo.AutoFixEnabled)
				require.True(t, repo.AutoFixSafeOnly)
				repo.ID = id

				return &repo, nil
			})
		f.storage.EXPECT().StoreAuditLog(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, log domain.AuditLog) (*domain.AuditLog, error) {
				require.Equal(t, domain.AuditRepositoryLinked, log.Action)
				require.Equal(t, id.String(), log.ResourceID)

				return &log, nil
			})

		repo, err := f.catalog.CreateRepository(ctx, catalog.NewRepository{Owner: "acme", Name: "app", GitHubRepoID: 7})
		require.NoError(t, err)
		require.Equal(t, id, repo.ID)
	})
}

func TestListRepositories(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.catalog.ListRepositories(ctx, catalog.RepositoryQuery{Limit: 101})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	f.storage.EXPECT().ListRepositories(gomock.Any(), storage.RepositoryFilter{Limit: 50, Offset: 1}).
		Return([]domain.Repository{{FullName: "acme/a"}}, int64(3), nil)
	page, err := f.catalog.ListRepositories(ctx, catalog.RepositoryQuery{Offset: 1})
	require.NoError(t, err)
	require.True(t, page.HasMore)
	require.EqualValues(t, 3, page.Total)
}

func TestUpdateRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	empty := " "
	_, err := f.catalog.UpdateRepository(ctx, newRepoID(), catalog.RepositoryChanges{PrimaryBranch: &empty})
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	f.inTx()
	f.storage.EXPECT().UpdateRepository(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	_, err = f.catalog.UpdateRepository(ctx, newRepoID(), catalog.RepositoryChanges{})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestDeleteRepository_ActiveBuilds(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := newRepoID()

	f.storage.EXPECT().RepositoryByID(gomock.Any(), id).Return(&domain.Repository{ID: id}, nil)
	f.inTx()
	f.storage.EXPECT().CountBuilds(gomock.Any(), storage.BuildFilter{
		RepositoryID: id,
		Statuses:     domain.ActiveBuildStatuses,
	}).Return(int64(2), nil)

	err := f.catalog.DeleteRepository(ctx, id)
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestLinkRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := newRepoID()

	f.storage.EXPECT().RepositoryByID(gomock.Any(), id).Return(&domain.Repository{ID: id}, nil)
	f.storage.EXPECT().AddJob(gomock.Any(), jobs.SyncRepository{RepositoryID: id.String()}, nil).Return(true, nil)

	require.NoError(t, f.catalog.LinkRepository(ctx, id))
}

func TestSyncRepository(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	id := newRepoID()

	f.storage.EXPECT().RepositoryByID(gomock.Any(), id).Return(&domain.Repository{
		ID: id, FullName: "acme/app", PrimaryBranch: "main",
	}, nil)
	f.github.EXPECT().Repository(gomock.Any(), "acme/app").Return(githubapi.RepositoryInfo{
		Description: "app", Language: "Kotlin", DefaultBranch: "develop", Private: true,
	}, nil)
	var secretSent string
	f.github.EXPECT().CreateWebhook(gomock.Any(), "acme/app", "https://hooks.example.com/api/webhooks/github", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, secret string) (int64, error) {
			secretSent = secret

			return 42, nil
		})
	f.inTx()
	f.storage.EXPECT().UpdateRepository(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.RepositoryID, u storage.RepositoryUpdates) (*domain.Repository, error) {
			require.Equal(t, "Kotlin", *u.DefaultLanguage)
			require.Equal(t, "develop", *u.PrimaryBranch)
			require.True(t, *u.IsPrivate)
			require.Len(t, *u.WebhookSecret, 64)
			require.Equal(t, secretSent, *u.WebhookSecret)

			return &domain.Repository{ID: id}, nil
		})
	f.storage.EXPECT().StoreAuditLog(gomock.Any(), gomock.Any()).Return(&domain.AuditLog{}, nil)

	require.NoError(t, f.catalog.SyncRepository(ctx, id))
}

func TestRepositorySettings(t *testing.T) {
	f := newFixture(t)
	id := newRepoID()
	f.storage.EXPECT().RepositoryByID(gomock.Any(), id).Return(&domain.Repository{
		ID: id, AutoFixEnabled: true, AutoMergeEnabled: true, PrimaryBranch: "main",
	}, nil)

	s, err := f.catalog.RepositorySettings(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, 3, s.AutoFix.MaxAttempts)
	require.True(t, s.Security.RequireApproval)
	require.False(t, s.Security.ReviewRequired)
	require.False(t, s.Notifications.WebhookSecretConfigured)
}

func TestCreateIntegration(t *testing.T) {
	ctx := context.Background()

	t.Run("validation", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.catalog.CreateIntegration(ctx, catalog.NewIntegration{Platform: domain.PlatformCodemagic})
		require.ErrorIs(t, err, serrors.ErrBadRequest)

		_, err = f.catalog.CreateIntegration(ctx, catalog.NewIntegration{RepositoryID: newRepoID(), Platform: "jenkins"})
		require.ErrorIs(t, err, serrors.ErrBadRequest)

		id := newRepoID()
		f.storage.EXPECT().RepositoryByID(gomock.Any(), id).Return(nil, nil)
		_, err = f.catalog.CreateIntegration(ctx, catalog.NewIntegration{RepositoryID: id, Platform: domain.PlatformBitrise})
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("token is sealed", func(t *testing.T) {
		f := newFixture(t)
		id := newRepoID()
		f.storage.EXPECT().RepositoryByID(gomock.Any(), id).Return(&domain.Repository{ID: id, FullName: "acme/app"}, nil)
		f.inTx()
		f.storage.EXPECT().StoreIntegration(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, i domain.Integration) (*domain.Integration, error) {
				require.NotContains(t, i.Config, "token")
				require.Equal(t, "app-1", i.Config["app_id"])
				require.True(t, i.IsActive)
				plain, err := f.box.Open(i.TokenEncrypted)
				require.NoError(t, err)
				require.Equal(t, "cm-token", plain)

				return &i, nil
			})
		f.storage.EXPECT().StoreAuditLog(gomock.Any(), gomock.Any()).Return(&domain.AuditLog{}, nil)

		_, err := f.catalog.CreateIntegration(ctx, catalog.NewIntegration{
			RepositoryID: id,
			Platform:     domain.PlatformCodemagic,
			Config:       map[string]any{"app_id": "app-1", "token": "cm-token"},
		})
		require.NoError(t, err)
	})

	t.Run("duplicate", func(t *testing.T) {
		f := newFixture(t)
		id := newRepoID()
		f.storage.EXPECT().RepositoryByID(gomock.Any(), id).Return(&domain.Repository{ID: id}, nil)
		f.inTx()
		f.storage.EXPECT().StoreIntegration(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicate)

		_, err := f.catalog.CreateIntegration(ctx, catalog.NewIntegration{RepositoryID: id, Platform: domain.PlatformCodemagic})
		require.ErrorIs(t, err, serrors.ErrConflict)
	})
}

func TestGetIntegration_MasksConfig(t *testing.T) {
	f := newFixture(t)
	id := domain.IntegrationID(uuid.New())
	f.storage.EXPECT().IntegrationByID(gomock.Any(), id).Return(&domain.Integration{
		ID: id, Config: map[string]any{"token": "leak"},
	}, nil)

	details, err := f.catalog.GetIntegration(context.Background(), id, false)
	require.NoError(t, err)
	require.Equal(t, domain.HiddenValue, details.Integration.Config["token"])
}

func TestTestIntegration(t *testing.T) {
	ctx := context.Background()

	t.Run("inactive", func(t *testing.T) {
		f := newFixture(t)
		id := domain.IntegrationID(uuid.New())
		f.storage.EXPECT().IntegrationByID(gomock.Any(), id).Return(&domain.Integration{ID: id}, nil)

		_, err := f.catalog.TestIntegration(ctx, id)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("ping failure is reported", func(t *testing.T) {
		f := newFixture(t)
		id := domain.IntegrationID(uuid.New())
		sealed, err := f.box.Seal("cm-token")
		require.NoError(t, err)
		f.storage.EXPECT().IntegrationByID(gomock.Any(), id).Return(&domain.Integration{
			ID: id, Platform: domain.PlatformCodemagic, IsActive: true, TokenEncrypted: sealed,
		}, nil)
		f.ci.EXPECT().Ping(gomock.Any(), "cm-token").Return(errors.New("unauthorized"))
		f.storage.EXPECT().UpdateIntegration(gomock.Any(), id, gomock.Any()).Return(&domain.Integration{}, nil)

		res, err := f.catalog.TestIntegration(ctx, id)
		require.NoError(t, err)
		require.False(t, res.Success)
		require.Contains(t, res.Message, "unauthorized")
	})

	t.Run("platform without client", func(t *testing.T) {
		f := newFixture(t)
		id := domain.IntegrationID(uuid.New())
		f.storage.EXPECT().IntegrationByID(gomock.Any(), id).Return(&domain.Integration{
			ID: id, Platform: domain.PlatformBitrise, IsActive: true,
		}, nil)
		f.storage.EXPECT().UpdateIntegration(gomock.Any(), id, gomock.Any()).Return(&domain.Integration{}, nil)

		res, err := f.catalog.TestIntegration(ctx, id)
		require.NoError(t, err)
		require.True(t, res.Success)
	})
}

func TestSupportedPlatforms(t *testing.T) {
	f := newFixture(t)
	platforms := f.catalog.SupportedPlatforms()
	require.Len(t, platforms, len(domain.SupportedPlatforms))
	for _, p := range platforms {
		require.Equal(t, p.ID == domain.PlatformCodemagic, p.Automated, p.ID)
	}
	require.Equal(t, "https://codemagic.io/docs/", platforms[1].SetupGuide)
}

func TestConfigureGitHubActions_UpdatesExisting(t *testing.T) {
	f := newFixture(t)
	repoID := newRepoID()
	existingID := domain.IntegrationID(uuid.New())

	f.storage.EXPECT().IntegrationByPlatform(gomock.Any(), repoID, domain.PlatformGitHubActions).
		Return(&domain.Integration{ID: existingID, RepositoryID: repoID, Config: map[string]any{"ref": "main"}}, nil)
	f.storage.EXPECT().IntegrationByID(gomock.Any(), existingID).
		Return(&domain.Integration{ID: existingID, RepositoryID: repoID}, nil)
	f.inTx()
	f.storage.EXPECT().UpdateIntegration(gomock.Any(), existingID, gomock.Any()).DoAndReturn(
		func(_ context.Context, id domain.IntegrationID, u storage.IntegrationUpdates) (*domain.Integration, error) {
			require.Equal(t, "build.yml", u.Config["workflow"])
			require.Equal(t, "main", u.Config["ref"])
			require.True(t, *u.IsActive)

			return &domain.Integration{ID: id, Platform: domain.PlatformGitHubActions}, nil
		})
	f.storage.EXPECT().StoreAuditLog(gomock.Any(), gomock.Any()).Return(&domain.AuditLog{}, nil)

	_, err := f.catalog.ConfigureGitHubActions(context.Background(), catalog.GitHubActionsSetup{RepositoryID: repoID})
	require.NoError(t, err)
}
