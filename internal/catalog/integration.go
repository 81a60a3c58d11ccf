package catalog

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"autobuilder/pkg/ci/githubactions"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/logger"
	"autobuilder/pkg/serrors"
	"autobuilder/pkg/storage"

	"go.uber.org/zap"
)

var setupGuides = map[domain.Platform]string{ //nolint: gochecknoglobals
	domain.PlatformGitHubActions: "https://docs.github.com/en/actions",
	domain.PlatformCodemagic:     "https://codemagic.io/docs/",
	domain.PlatformCircleCI:      "https://circleci.com/docs/",
	domain.PlatformBitrise:       "https://devcenter.bitrise.io/",
}

func (c *catalog) integration(ctx context.Context, id domain.IntegrationID) (*domain.Integration, error) {
	integration, err := c.storage.IntegrationByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get integration: %w", err)
	}
	if integration == nil {
		return nil, serrors.With(serrors.ErrNotFound, "integration not found")
	}

	return integration, nil
}

func (c *catalog) ListIntegrations(ctx context.Context, query IntegrationQuery) ([]domain.Integration, error) {
	if query.Platform != "" && !query.Platform.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unsupported platform %q", query.Platform)
	}

	integrations, err := c.storage.ListIntegrations(ctx, storage.IntegrationFilter{
		RepositoryID: query.RepositoryID,
		Platform:     query.Platform,
		IsActive:     query.IsActive,
	})
	if err != nil {
		return nil, fmt.Errorf("could not list integrations: %w", err)
	}

	return integrations, nil
}

func (c *catalog) CreateIntegration(ctx context.Context, in NewIntegration) (*domain.Integration, error) {
	if in.RepositoryID.IsZero() || in.Platform == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "repository_id and platform are required")
	}
	if !in.Platform.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unsupported platform %q", in.Platform)
	}

	repo, err := c.repository(ctx, in.RepositoryID)
	if err != nil {
		return nil, err
	}

	cfg, sealed, err := c.sealConfig(in.Config)
	if err != nil {
		return nil, err
	}

	var created *domain.Integration
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		created, err = tx.StoreIntegration(ctx, domain.Integration{
			RepositoryID:   in.RepositoryID,
			Platform:       in.Platform,
			Config:         cfg,
			TokenEncrypted: sealed,
			IsActive:       boolOr(in.IsActive, true),
			WebhookURL:     in.WebhookURL,
			Settings:       in.Settings,
		})
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.Wrap(serrors.ErrConflict, err,
					"%s integration already exists for %s", in.Platform.DisplayName(), repo.FullName)
			}

			return fmt.Errorf("could not store integration: %w", err)
		}

		return c.auditIntegration(ctx, tx, domain.AuditIntegrationAdded, created, repo.FullName)
	}); err != nil {
		return nil, fmt.Errorf("could not create integration: %w", err)
	}

	return created, nil
}

func (c *catalog) auditIntegration(ctx context.Context,
	tx storage.AllStorage,
	action domain.AuditAction,
	integration *domain.Integration,
	repoName string) error {
	entry := domain.SystemAudit(action, resourceIntegration, integration.ID.String(),
		integration.Platform.DisplayName()+" integration of "+repoName)
	entry.ResourceName = string(integration.Platform)
	entry.Details = map[string]any{"repository": repoName, "platform": string(integration.Platform)}
	if _, err := tx.StoreAuditLog(ctx, entry); err != nil {
		return fmt.Errorf("could not store audit log: %w", err)
	}

	return nil
}

func (c *catalog) GetIntegration(ctx context.Context,
	id domain.IntegrationID,
	includeRecentBuilds bool) (*IntegrationDetails, error) {
	integration, err := c.integration(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &IntegrationDetails{Integration: *integration}
	details.Integration.Config = integration.MaskedConfig()
	if includeRecentBuilds {
		details.RecentBuilds, _, err = c.storage.ListBuilds(ctx, storage.BuildFilter{
			IntegrationID: id,
			Limit:         RecentBuildsLimit,
		})
		if err != nil {
			return nil, fmt.Errorf("could not list recent builds: %w", err)
		}
	}

	return details, nil
}

func (c *catalog) UpdateIntegration(ctx context.Context,
	id domain.IntegrationID,
	changes IntegrationChanges) (*domain.Integration, error) {
	existing, err := c.integration(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := storage.IntegrationUpdates{
		WebhookURL: changes.WebhookURL,
		Settings:   changes.Settings,
		IsActive:   changes.IsActive,
	}
	if changes.Config != nil {
		cfg, sealed, err := c.sealConfig(changes.Config)
		if err != nil {
			return nil, err
		}
		updates.Config = cfg
		if sealed != "" {
			updates.TokenEncrypted = &sealed
		}
	}

	var updated *domain.Integration
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err = tx.UpdateIntegration(ctx, id, updates)
		if err != nil {
			return fmt.Errorf("could not update integration: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "integration not found")
		}

		return c.auditIntegration(ctx, tx, domain.AuditIntegrationUpdated, updated, existing.RepositoryID.String())
	}); err != nil {
		return nil, fmt.Errorf("could not update integration: %w", err)
	}

	return updated, nil
}

func (c *catalog) DeleteIntegration(ctx context.Context, id domain.IntegrationID) error {
	integration, err := c.integration(ctx, id)
	if err != nil {
		return err
	}

	return c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		active, err := tx.CountBuilds(ctx, storage.BuildFilter{
			IntegrationID: id,
			Statuses:      domain.ActiveBuildStatuses,
		})
		if err != nil {
			return fmt.Errorf("could not count active builds: %w", err)
		}
		if active > 0 {
			return serrors.With(serrors.ErrConflict, "integration has %d active builds", active)
		}

		if _, err := tx.DeleteIntegration(ctx, id); err != nil {
			return fmt.Errorf("could not delete integration: %w", err)
		}

		return c.auditIntegration(ctx, tx, domain.AuditIntegrationDeleted, integration,
			integration.RepositoryID.String())
	})
}

func (c *catalog) TestIntegration(ctx context.Context, id domain.IntegrationID) (*IntegrationTest, error) {
	integration, err := c.integration(ctx, id)
	if err != nil {
		return nil, err
	}
	if !integration.IsActive {
		return nil, serrors.With(serrors.ErrBadRequest, "integration is not active")
	}

	result := &IntegrationTest{
		Success:  true,
		Message:  integration.Platform.DisplayName() + " integration is configured",
		TestedAt: c.now().UTC(),
	}

	if client, ok := c.registry.Get(integration.Platform); ok {
		token, err := c.box.Open(integration.TokenEncrypted)
		if err != nil {
			return nil, fmt.Errorf("could not open integration token: %w", err)
		}
		if err := client.Ping(ctx, token); err != nil {
			logger.Warn(ctx, "integration ping failed",
				zap.String("integrationID", id.String()), zap.Error(err))
			result.Success = false
			result.Message = "connection failed: " + err.Error()
		} else {
			result.Message = integration.Platform.DisplayName() + " connection succeeded"
		}
	}

	if _, err := c.storage.UpdateIntegration(ctx, id, storage.IntegrationUpdates{
		LastUsedAt: &result.TestedAt,
	}); err != nil {
		return nil, fmt.Errorf("could not stamp integration: %w", err)
	}

	return result, nil
}

func (c *catalog) SupportedPlatforms() []PlatformInfo {
	out := make([]PlatformInfo, 0, len(domain.SupportedPlatforms))
	for _, p := range domain.SupportedPlatforms {
		_, automated := c.registry.Get(p)
		out = append(out, PlatformInfo{
			ID:         p,
			Name:       p.DisplayName(),
			SetupGuide: setupGuides[p],
			Automated:  automated,
		})
	}

	return out
}

// upsert creates the platform integration of a repository, or merges cfg into
// the existing one and reactivates it.
func (c *catalog) upsert(ctx context.Context,
	repoID domain.RepositoryID,
	platform domain.Platform,
	cfg map[string]any) (*domain.Integration, error) {
	existing, err := c.storage.IntegrationByPlatform(ctx, repoID, platform)
	if err != nil {
		return nil, fmt.Errorf("could not get integration: %w", err)
	}
	if existing == nil {
		return c.CreateIntegration(ctx, NewIntegration{
			RepositoryID: repoID,
			Platform:     platform,
			Config:       cfg,
		})
	}

	merged := maps.Clone(existing.Config)
	if merged == nil {
		merged = map[string]any{}
	}
	maps.Copy(merged, cfg)
	active := true

	return c.UpdateIntegration(ctx, existing.ID, IntegrationChanges{Config: merged, IsActive: &active})
}

func (c *catalog) ConfigureCodemagic(ctx context.Context, setup CodemagicSetup) (*domain.Integration, error) {
	if setup.RepositoryID.IsZero() || setup.AppID == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "repository_id and app_id are required")
	}

	cfg := map[string]any{"app_id": setup.AppID}
	if setup.WorkflowID != "" {
		cfg["workflow_id"] = setup.WorkflowID
	}
	if setup.Token != "" {
		cfg[tokenKey] = setup.Token
	}

	return c.upsert(ctx, setup.RepositoryID, domain.PlatformCodemagic, cfg)
}

func (c *catalog) ConfigureGitHubActions(ctx context.Context, setup GitHubActionsSetup) (*domain.Integration, error) {
	if setup.RepositoryID.IsZero() {
		return nil, serrors.With(serrors.ErrBadRequest, "repository_id is required")
	}

	workflow := setup.Workflow
	if workflow == "" {
		workflow = githubactions.DefaultWorkflow
	}
	cfg := map[string]any{"workflow": workflow}
	if setup.Ref != "" {
		cfg["ref"] = setup.Ref
	}

	return c.upsert(ctx, setup.RepositoryID, domain.PlatformGitHubActions, cfg)
}
