package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPrimaryBranch is used when a repository does not declare its own.
const DefaultPrimaryBranch = "main"

// RepositoryID uniquely identifies a tracked repository.
type RepositoryID uuid.UUID

// String returns the canonical UUID form.
func (id RepositoryID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the id is unset.
func (id RepositoryID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// Repository is a GitHub repository registered for automatic builds and fixes.
type Repository struct {
	ID RepositoryID

	Owner    string
	Name     string
	FullName string
	// GitHubRepoID is the numeric id GitHub assigns to the repository.
	GitHubRepoID int64

	Description     string
	DefaultLanguage string
	IsPrivate       bool

	AutoFixEnabled   bool
	AutoFixSafeOnly  bool
	AutoMergeEnabled bool
	PrimaryBranch    string

	// WebhookSecret signs deliveries of the repository webhook created on link.
	WebhookSecret string
	Settings      map[string]any

	CreatedAt   time.Time
	UpdatedAt   time.Time
	LastBuildAt time.Time
}

// MakeFullName joins owner and name the way GitHub does.
func MakeFullName(owner, name string) string {
	return owner + "/" + name
}

// GitHubURL returns the web URL of the repository.
func (r Repository) GitHubURL() string {
	return "https://github.com/" + r.FullName
}
