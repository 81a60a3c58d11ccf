package storage

import (
	"context"
	"time"

	"autobuilder/pkg/domain"
)

// RepositoryFilter narrows repository listings.
type RepositoryFilter struct {
	// AutoFixEnabled, when set, keeps repositories with this flag value only.
	AutoFixEnabled *bool
	Limit          uint
	Offset         uint
}

// RepositoryUpdates lists the fields to change. Nil fields are left untouched.
type RepositoryUpdates struct {
	Description      *string
	DefaultLanguage  *string
	IsPrivate        *bool
	GitHubRepoID     *int64
	AutoFixEnabled   *bool
	AutoFixSafeOnly  *bool
	AutoMergeEnabled *bool
	PrimaryBranch    *string
	WebhookSecret    *string
	LastBuildAt      *time.Time
}

// RepositoryStorage persists repositories. Lookups return nil when nothing matches.
type RepositoryStorage interface {
	// StoreRepository inserts a repository. Duplicates of full_name or
	// github_repo_id fail with ErrDuplicate.
	StoreRepository(ctx context.Context, repo domain.Repository) (*domain.Repository, error)
	RepositoryByID(ctx context.Context, id domain.RepositoryID) (*domain.Repository, error)
	RepositoryByFullName(ctx context.Context, fullName string) (*domain.Repository, error)
	// ListRepositories returns a page ordered by creation time, newest first,
	// plus the total number of matching repositories.
	ListRepositories(ctx context.Context, filter RepositoryFilter) ([]domain.Repository, int64, error)
	UpdateRepository(ctx context.Context, id domain.RepositoryID, updates RepositoryUpdates) (*domain.Repository, error)
	// DeleteRepository removes the repository together with its integrations,
	// builds and fix attempts, and reports whether it existed.
	DeleteRepository(ctx context.Context, id domain.RepositoryID) (bool, error)
}
