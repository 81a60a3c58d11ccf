package v1handler_test

import (
	"net/http"
	"testing"
	"time"

	"autobuilder/internal/api/handler/v1handler"
	"autobuilder/internal/catalog"
	"autobuilder/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleIntegration() domain.Integration {
	return domain.Integration{
		ID:             domain.IntegrationID(uuid.New()),
		RepositoryID:   domain.RepositoryID(uuid.New()),
		Platform:       domain.PlatformCodemagic,
		Config:         map[string]any{"app_id": "app", "token": "plain"},
		TokenEncrypted: "sealed",
		IsActive:       true,
	}
}

func TestCreateIntegration(t *testing.T) {
	f := newFixture(t)
	integration := sampleIntegration()

	f.catalog.EXPECT().CreateIntegration(gomock.Any(), catalog.NewIntegration{
		RepositoryID: integration.RepositoryID,
		Platform:     domain.PlatformCodemagic,
		Config:       map[string]any{"app_id": "app", "token": "plain"},
	}).Return(&integration, nil)

	rec := f.do(t, http.MethodPost, "/integrations", map[string]any{
		"repository_id": integration.RepositoryID.String(),
		"platform":      "codemagic",
		"config":        map[string]any{"app_id": "app", "token": "plain"},
	}, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	got := decodeBody[v1handler.Integration](t, rec)
	require.Equal(t, "Codemagic", got.PlatformName)
	require.Equal(t, domain.HiddenValue, got.Config["token"])
	require.NotContains(t, rec.Body.String(), "plain")

	rec = f.do(t, http.MethodPost, "/integrations", map[string]any{"platform": "codemagic"}, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "repository_id is required")
}

func TestGetIntegration(t *testing.T) {
	f := newFixture(t)
	integration := sampleIntegration()

	f.catalog.EXPECT().GetIntegration(gomock.Any(), integration.ID, false).
		Return(&catalog.IntegrationDetails{Integration: integration}, nil)
	rec := f.do(t, http.MethodGet, "/integrations/"+integration.ID.String()+"?include_config=false", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, decodeBody[v1handler.IntegrationDetails](t, rec).Config)

	f.catalog.EXPECT().GetIntegration(gomock.Any(), integration.ID, true).
		Return(&catalog.IntegrationDetails{Integration: integration, RecentBuilds: []domain.Build{sampleBuild()}}, nil)
	rec = f.do(t, http.MethodGet, "/integrations/"+integration.ID.String()+"?include_recent_builds=true", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	d := decodeBody[v1handler.IntegrationDetails](t, rec)
	require.Equal(t, "app", d.Config["app_id"])
	require.Len(t, d.RecentBuilds, 1)
}

func TestListUpdateDeleteIntegrations(t *testing.T) {
	f := newFixture(t)
	integration := sampleIntegration()
	active := false

	f.catalog.EXPECT().ListIntegrations(gomock.Any(), catalog.IntegrationQuery{
		Platform: domain.PlatformCodemagic,
		IsActive: &active,
	}).Return([]domain.Integration{integration}, nil)
	rec := f.do(t, http.MethodGet, "/integrations?platform=codemagic&is_active=false", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody[v1handler.List[v1handler.Integration]](t, rec).Items, 1)

	f.catalog.EXPECT().UpdateIntegration(gomock.Any(), integration.ID, catalog.IntegrationChanges{IsActive: &active}).
		Return(&integration, nil)
	rec = f.do(t, http.MethodPut, "/integrations/"+integration.ID.String(), map[string]any{"is_active": false}, true)
	require.Equal(t, http.StatusOK, rec.Code)

	f.catalog.EXPECT().DeleteIntegration(gomock.Any(), integration.ID).Return(nil)
	rec = f.do(t, http.MethodDelete, "/integrations/"+integration.ID.String(), nil, true)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTestIntegration(t *testing.T) {
	f := newFixture(t)
	integration := sampleIntegration()
	at := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)

	f.catalog.EXPECT().TestIntegration(gomock.Any(), integration.ID).
		Return(&catalog.IntegrationTest{Success: true, Message: "connection ok", TestedAt: at}, nil)
	rec := f.do(t, http.MethodPost, "/integrations/"+integration.ID.String()+"/test", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[v1handler.IntegrationTest](t, rec)
	require.True(t, got.Success)
	require.True(t, at.Equal(got.TestedAt))
}

func TestSupportedPlatforms(t *testing.T) {
	f := newFixture(t)
	f.catalog.EXPECT().SupportedPlatforms().Return([]catalog.PlatformInfo{
		{ID: domain.PlatformGitHubActions, Name: "GitHub Actions", SetupGuide: "add a workflow", Automated: true},
		{ID: domain.PlatformTravisCI, Name: "Travis CI"},
	})

	rec := f.do(t, http.MethodGet, "/integrations/platforms", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decodeBody[v1handler.Platforms](t, rec)
	require.Len(t, got.Platforms, 2)
	require.True(t, got.Platforms[0].Automated)
	require.Equal(t, "travis_ci", got.Platforms[1].ID)
}

func TestPlatformSetup(t *testing.T) {
	f := newFixture(t)
	integration := sampleIntegration()

	f.catalog.EXPECT().ConfigureCodemagic(gomock.Any(), catalog.CodemagicSetup{
		RepositoryID: integration.RepositoryID,
		AppID:        "app",
		WorkflowID:   "release",
		Token:        "t",
	}).Return(&integration, nil)
	rec := f.do(t, http.MethodPost, "/integrations/codemagic/setup", map[string]any{
		"repository_id": integration.RepositoryID.String(),
		"app_id":        "app",
		"workflow_id":   "release",
		"token":         "t",
	}, true)
	require.Equal(t, http.StatusOK, rec.Code)

	gha := sampleIntegration()
	gha.Platform = domain.PlatformGitHubActions
	f.catalog.EXPECT().ConfigureGitHubActions(gomock.Any(), catalog.GitHubActionsSetup{
		RepositoryID: gha.RepositoryID,
	}).Return(&gha, nil)
	rec = f.do(t, http.MethodPost, "/integrations/github-actions/setup", map[string]any{
		"repository_id": gha.RepositoryID.String(),
	}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "github_actions", decodeBody[v1handler.Integration](t, rec).Platform)

	rec = f.do(t, http.MethodPost, "/integrations/github-actions/setup", map[string]any{"repository_id": "x"}, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
