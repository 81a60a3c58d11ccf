// Package catalog manages the repositories tracked by the service and the CI
// integrations attached to them.
package catalog

import (
	"context"
	"time"

	"autobuilder/pkg/domain"
)

// Page bounds for listings.
const (
	DefaultLimit = 50
	MaxLimit     = 100
	// RecentBuildsLimit caps the builds embedded in repository details.
	RecentBuildsLimit = 10
)

type RepositoryQuery struct {
	AutoFixEnabled *bool
	Limit          uint
	Offset         uint
}

type RepositoryPage struct {
	Items   []domain.Repository
	Total   int64
	HasMore bool
}

type NewRepository struct {
	Owner           string
	Name            string
	GitHubRepoID    int64
	Description     string
	DefaultLanguage string
	IsPrivate       bool
	// Nil flags take their defaults: auto-fix off, safe-only on, auto-merge off.
	AutoFixEnabled   *bool
	AutoFixSafeOnly  *bool
	AutoMergeEnabled *bool
	PrimaryBranch    string
}

// RepositoryChanges lists the user editable repository fields.
type RepositoryChanges struct {
	Description      *string
	AutoFixEnabled   *bool
	AutoFixSafeOnly  *bool
	AutoMergeEnabled *bool
	PrimaryBranch    *string
}

type RepositoryDetails struct {
	Repository   domain.Repository
	Integrations []domain.Integration
	RecentBuilds []domain.Build
}

type RepositorySettings struct {
	AutoFix struct {
		Enabled          bool
		SafeOnly         bool
		MaxAttempts      int
		AllowedFileTypes []string
	}
	AutoMerge struct {
		Enabled       bool
		PrimaryBranch string
	}
	Notifications struct {
		WebhookSecretConfigured bool
		Settings                map[string]any
	}
	Security struct {
		RequireApproval bool
		ReviewRequired  bool
	}
}

type IntegrationQuery struct {
	RepositoryID domain.RepositoryID
	Platform     domain.Platform
	IsActive     *bool
}

type NewIntegration struct {
	RepositoryID domain.RepositoryID
	Platform     domain.Platform
	// Config may carry a "token" entry, which is sealed into the token column.
	Config     map[string]any
	WebhookURL string
	Settings   map[string]any
	IsActive   *bool
}

// IntegrationChanges lists the user editable integration fields.
type IntegrationChanges struct {
	Config     map[string]any
	WebhookURL *string
	Settings   map[string]any
	IsActive   *bool
}

type IntegrationDetails struct {
	Integration  domain.Integration
	RecentBuilds []domain.Build
}

type IntegrationTest struct {
	Success  bool
	Message  string
	TestedAt time.Time
}

type PlatformInfo struct {
	ID         domain.Platform
	Name       string
	SetupGuide string
	// Automated is true when builds can be dispatched to the platform.
	Automated bool
}

type CodemagicSetup struct {
	RepositoryID domain.RepositoryID
	AppID        string
	WorkflowID   string
	Token        string
}

type GitHubActionsSetup struct {
	RepositoryID domain.RepositoryID
	Workflow     string
	Ref          string
}

//go:generate mockgen -package mockcatalog -source=interface.go -destination=mock/mockcatalog.go *
type Catalog interface {
	ListRepositories(ctx context.Context, query RepositoryQuery) (RepositoryPage, error)
	CreateRepository(ctx context.Context, repo NewRepository) (*domain.Repository, error)
	GetRepository(ctx context.Context,
		id domain.RepositoryID,
		includeIntegrations, includeRecentBuilds bool) (*RepositoryDetails, error)
	UpdateRepository(ctx context.Context, id domain.RepositoryID, changes RepositoryChanges) (*domain.Repository, error)
	DeleteRepository(ctx context.Context, id domain.RepositoryID) error
	// LinkRepository schedules a sync of the repository with GitHub.
	LinkRepository(ctx context.Context, id domain.RepositoryID) error
	// SyncRepository pulls metadata from GitHub and registers the webhook.
	SyncRepository(ctx context.Context, id domain.RepositoryID) error
	RepositorySettings(ctx context.Context, id domain.RepositoryID) (*RepositorySettings, error)

	ListIntegrations(ctx context.Context, query IntegrationQuery) ([]domain.Integration, error)
	CreateIntegration(ctx context.Context, integration NewIntegration) (*domain.Integration, error)
	GetIntegration(ctx context.Context, id domain.IntegrationID, includeRecentBuilds bool) (*IntegrationDetails, error)
	UpdateIntegration(ctx context.Context,
		id domain.IntegrationID,
		changes IntegrationChanges) (*domain.Integration, error)
	DeleteIntegration(ctx context.Context, id domain.IntegrationID) error
	TestIntegration(ctx context.Context, id domain.IntegrationID) (*IntegrationTest, error)
	SupportedPlatforms() []PlatformInfo
	ConfigureCodemagic(ctx context.Context, setup CodemagicSetup) (*domain.Integration, error)
	ConfigureGitHubActions(ctx context.Context, setup GitHubActionsSetup) (*domain.Integration, error)
}
