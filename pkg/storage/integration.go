package storage

import (
	"context"
	"time"

	"autobuilder/pkg/domain"
)

// IntegrationFilter narrows integration listings. Zero values do not filter.
type IntegrationFilter struct {
	RepositoryID domain.RepositoryID
	Platform     domain.Platform
	IsActive     *bool
}

// IntegrationUpdates lists the fields to change. Nil fields are left untouched.
type IntegrationUpdates struct {
	Config         map[string]any
	TokenEncrypted *string
	WebhookURL     *string
	Settings       map[string]any
	IsActive       *bool
	LastUsedAt     *time.Time
}

// IntegrationStorage persists CI integrations.
type IntegrationStorage interface {
	// StoreIntegration inserts an integration. A second integration for the
	// same repository and platform fails with ErrDuplicate.
	StoreIntegration(ctx context.Context, integration domain.Integration) (*domain.Integration, error)
	IntegrationByID(ctx context.Context, id domain.IntegrationID) (*domain.Integration, error)
	IntegrationByPlatform(ctx context.Context,
		repoID domain.RepositoryID,
		platform domain.Platform) (*domain.Integration, error)
	// ActiveIntegration returns the oldest active integration of the repository.
	ActiveIntegration(ctx context.Context, repoID domain.RepositoryID) (*domain.Integration, error)
	ListIntegrations(ctx context.Context, filter IntegrationFilter) ([]domain.Integration, error)
	UpdateIntegration(ctx context.Context,
		id domain.IntegrationID,
		updates IntegrationUpdates) (*domain.Integration, error)
	DeleteIntegration(ctx context.Context, id domain.IntegrationID) (bool, error)
}
