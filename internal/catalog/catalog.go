package catalog

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"maps"
	"strings"
	"time"

	"autobuilder/internal/config"
	"autobuilder/internal/jobs"
	"autobuilder/pkg/ci"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/githubapi"
	"autobuilder/pkg/logger"
	"autobuilder/pkg/secret"
	"autobuilder/pkg/serrors"
	"autobuilder/pkg/storage"

	"go.uber.org/zap"
)

const (
	resourceRepository  = "repository"
	resourceIntegration = "integration"
	tokenKey            = "token"
)

// Options configure repository defaults and GitHub registration.
type Options struct {
	// MaxAttempts is reported in repository settings.
	MaxAttempts int
	// SafeFileTypes is reported in repository settings.
	SafeFileTypes []string
	// PrimaryBranch is assigned to repositories created without one.
	PrimaryBranch string
	// WebhookURL is registered on GitHub during sync. Empty skips registration.
	WebhookURL string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:   cfg.AutoFix.MaxAttempts,
		SafeFileTypes: cfg.AutoFix.SafeFileTypes,
		PrimaryBranch: cfg.AutoFix.PrimaryBranch,
		WebhookURL:    cfg.GitHub.WebhookURL,
	}
}

type catalog struct {
	options  Options
	storage  storage.Storage
	box      *secret.Box
	registry *ci.Registry
	github   githubapi.Client
	now      func() time.Time
}

// New creates a Catalog. github may be nil, in which case syncing only
// generates webhook secrets.
func New(storage storage.Storage,
	box *secret.Box,
	registry *ci.Registry,
	github githubapi.Client,
	options Options) Catalog {
	if options.PrimaryBranch == "" {
		options.PrimaryBranch = domain.DefaultPrimaryBranch
	}

	return &catalog{
		options:  options,
		storage:  storage,
		box:      box,
		registry: registry,
		github:   github,
		now:      time.Now,
	}
}

func pageBounds(limit uint) (uint, error) {
	switch {
	case limit == 0:
		return DefaultLimit, nil
	case limit > MaxLimit:
		return 0, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxLimit)
	default:
		return limit, nil
	}
}

func (c *catalog) repository(ctx context.Context, id domain.RepositoryID) (*domain.Repository, error) {
	repo, err := c.storage.RepositoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get repository: %w", err)
	}
	if repo == nil {
		return nil, serrors.With(serrors.ErrNotFound, "repository not found")
	}

	return repo, nil
}

func (c *catalog) ListRepositories(ctx context.Context, query RepositoryQuery) (RepositoryPage, error) {
	limit, err := pageBounds(query.Limit)
	if err != nil {
		return RepositoryPage{}, err
	}

	items, total, err := c.storage.ListRepositories(ctx, storage.RepositoryFilter{
		AutoFixEnabled: query.AutoFixEnabled,
		Limit:          limit,
		Offset:         query.Offset,
	})
	if err != nil {
		return RepositoryPage{}, fmt.Errorf("could not list repositories: %w", err)
	}

	return RepositoryPage{
		Items:   items,
		Total:   total,
		HasMore: int64(query.Offset)+int64(len(items)) < total,
	}, nil
}

func (c *catalog) CreateRepository(ctx context.Context, in NewRepository) (*domain.Repository, error) {
	var missing []string
	if in.Owner == "" {
		missing = append(missing, "owner")
	}
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.GitHubRepoID == 0 {
		missing = append(missing, "github_repo_id")
	}
	if len(missing) > 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "missing required fields: %s", strings.Join(missing, ", "))
	}

	repo := domain.Repository{
		Owner:            in.Owner,
		Name:             in.Name,
		FullName:         domain.MakeFullName(in.Owner, in.Name),
		GitHubRepoID:     in.GitHubRepoID,
		Description:      in.Description,
		DefaultLanguage:  in.DefaultLanguage,
		IsPrivate:        in.IsPrivate,
		AutoFixEnabled:   boolOr(in.AutoFixEnabled, false),
		AutoFixSafeOnly:  boolOr(in.AutoFixSafeOnly, true),
		AutoMergeEnabled: boolOr(in.AutoMergeEnabled, false),
		PrimaryBranch:    in.PrimaryBranch,
	}
	if repo.PrimaryBranch == "" {
		repo.PrimaryBranch = c.options.PrimaryBranch
	}

	var created *domain.Repository
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		created, err = tx.StoreRepository(ctx, repo)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return serrors.Wrap(serrors.ErrConflict, err, "repository %s already exists", repo.FullName)
			}

			return fmt.Errorf("could not store repository: %w", err)
		}

		entry := domain.SystemAudit(domain.AuditRepositoryLinked, resourceRepository, created.ID.String(),
			"repository "+created.FullName+" linked")
		entry.ResourceName = created.FullName
		if _, err := tx.StoreAuditLog(ctx, entry); err != nil {
			return fmt.Errorf("could not store audit log: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create repository: %w", err)
	}

	return created, nil
}

func (c *catalog) GetRepository(ctx context.Context,
	id domain.RepositoryID,
	includeIntegrations, includeRecentBuilds bool) (*RepositoryDetails, error) {
	repo, err := c.repository(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &RepositoryDetails{Repository: *repo}
	if includeIntegrations {
		details.Integrations, err = c.storage.ListIntegrations(ctx, storage.IntegrationFilter{RepositoryID: id})
		if err != nil {
			return nil, fmt.Errorf("could not list integrations: %w", err)
		}
	}
	if includeRecentBuilds {
		details.RecentBuilds, _, err = c.storage.ListBuilds(ctx, storage.BuildFilter{
			RepositoryID: id,
			Limit:        RecentBuildsLimit,
		})
		if err != nil {
			return nil, fmt.Errorf("could not list recent builds: %w", err)
		}
	}

	return details, nil
}

func (c *catalog) UpdateRepository(ctx context.Context,
	id domain.RepositoryID,
	changes RepositoryChanges) (*domain.Repository, error) {
	if changes.PrimaryBranch != nil && strings.TrimSpace(*changes.PrimaryBranch) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "primary_branch must not be empty")
	}

	var updated *domain.Repository
	if err := c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		updated, err = tx.UpdateRepository(ctx, id, storage.RepositoryUpdates{
			Description:      changes.Description,
			AutoFixEnabled:   changes.AutoFixEnabled,
			AutoFixSafeOnly:  changes.AutoFixSafeOnly,
			AutoMergeEnabled: changes.AutoMergeEnabled,
			PrimaryBranch:    changes.PrimaryBranch,
		})
		if err != nil {
			return fmt.Errorf("could not update repository: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrNotFound, "repository not found")
		}

		entry := domain.SystemAudit(domain.AuditRepositoryUpdated, resourceRepository, id.String(),
			"repository "+updated.FullName+" updated")
		entry.ResourceName = updated.FullName
		if _, err := tx.StoreAuditLog(ctx, entry); err != nil {
			return fmt.Errorf("could not store audit log: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not update repository: %w", err)
	}

	return updated, nil
}

func (c *catalog) DeleteRepository(ctx context.Context, id domain.RepositoryID) error {
	repo, err := c.repository(ctx, id)
	if err != nil {
		return err
	}

	return c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		active, err := tx.CountBuilds(ctx, storage.BuildFilter{
			RepositoryID: id,
			Statuses:     domain.ActiveBuildStatuses,
		})
		if err != nil {
			return fmt.Errorf("could not count active builds: %w", err)
		}
		if active > 0 {
			return serrors.With(serrors.ErrConflict, "repository has %d active builds", active)
		}

		if _, err := tx.DeleteRepository(ctx, id); err != nil {
			return fmt.Errorf("could not delete repository: %w", err)
		}

		entry := domain.SystemAudit(domain.AuditRepositoryDeleted, resourceRepository, id.String(),
			"repository "+repo.FullName+" deleted")
		entry.ResourceName = repo.FullName
		if _, err := tx.StoreAuditLog(ctx, entry); err != nil {
			return fmt.Errorf("could not store audit log: %w", err)
		}

		return nil
	})
}

func (c *catalog) LinkRepository(ctx context.Context, id domain.RepositoryID) error {
	if _, err := c.repository(ctx, id); err != nil {
		return err
	}

	if _, err := c.storage.AddJob(ctx, jobs.SyncRepository{RepositoryID: id.String()}, nil); err != nil {
		return fmt.Errorf("could not enqueue repository sync: %w", err)
	}

	return nil
}

func newWebhookSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("could not generate webhook secret: %w", err)
	}

	return hex.EncodeToString(b), nil
}

func (c *catalog) SyncRepository(ctx context.Context, id domain.RepositoryID) error {
	repo, err := c.repository(ctx, id)
	if err != nil {
		return err
	}
	ctx = logger.WithFields(ctx, zap.String("repository", repo.FullName))

	var updates storage.RepositoryUpdates
	if c.github != nil {
		info, err := c.github.Repository(ctx, repo.FullName)
		if err != nil {
			return fmt.Errorf("could not fetch repository from github: %w", err)
		}
		updates.Description = &info.Description
		updates.DefaultLanguage = &info.Language
		updates.IsPrivate = &info.Private
		if info.DefaultBranch != "" && repo.PrimaryBranch == c.options.PrimaryBranch {
			updates.PrimaryBranch = &info.DefaultBranch
		}
	}

	webhookSecret := repo.WebhookSecret
	if webhookSecret == "" {
		if webhookSecret, err = newWebhookSecret(); err != nil {
			return err
		}
		updates.WebhookSecret = &webhookSecret
	}

	if c.github != nil && c.options.WebhookURL != "" {
		hookID, err := c.github.CreateWebhook(ctx, repo.FullName, c.options.WebhookURL, webhookSecret)
		switch {
		case errors.Is(err, serrors.ErrConflict), errors.Is(err, serrors.ErrBadRequest):
			// GitHub answers 422 when the hook already exists.
			logger.Warn(ctx, "webhook not registered", zap.Error(err))
		case err != nil:
			return fmt.Errorf("could not register webhook: %w", err)
		default:
			logger.Info(ctx, "webhook registered", zap.Int64("hookID", hookID))
		}
	}

	return c.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.UpdateRepository(ctx, id, updates); err != nil {
			return fmt.Errorf("could not update repository: %w", err)
		}

		entry := domain.SystemAudit(domain.AuditRepositoryUpdated, resourceRepository, id.String(),
			"repository "+repo.FullName+" synced with GitHub")
		entry.ResourceName = repo.FullName
		entry.ActorType = domain.ActorGitHub
		if _, err := tx.StoreAuditLog(ctx, entry); err != nil {
			return fmt.Errorf("could not store audit log: %w", err)
		}

		return nil
	})
}

func (c *catalog) RepositorySettings(ctx context.Context, id domain.RepositoryID) (*RepositorySettings, error) {
	repo, err := c.repository(ctx, id)
	if err != nil {
		return nil, err
	}

	var s RepositorySettings
	s.AutoFix.Enabled = repo.AutoFixEnabled
	s.AutoFix.SafeOnly = repo.AutoFixSafeOnly
	s.AutoFix.MaxAttempts = c.options.MaxAttempts
	s.AutoFix.AllowedFileTypes = c.options.SafeFileTypes
	s.AutoMerge.Enabled = repo.AutoMergeEnabled
	s.AutoMerge.PrimaryBranch = repo.PrimaryBranch
	s.Notifications.WebhookSecretConfigured = repo.WebhookSecret != ""
	s.Notifications.Settings = repo.Settings
	s.Security.RequireApproval = true
	s.Security.ReviewRequired = !repo.AutoMergeEnabled

	return &s, nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}

	return *v
}

// sealConfig moves the plain token out of cfg. sealed is empty when cfg has no
// token.
func (c *catalog) sealConfig(cfg map[string]any) (map[string]any, string, error) {
	out := maps.Clone(cfg)
	if out == nil {
		out = map[string]any{}
	}
	token, _ := out[tokenKey].(string)
	delete(out, tokenKey)
	if token == "" {
		return out, "", nil
	}

	sealed, err := c.box.Seal(token)
	if err != nil {
		return nil, "", fmt.Errorf("could not seal integration token: %w", err)
	}

	return out, sealed, nil
}
