package domain

import (
	"maps"
	"time"

	"github.com/google/uuid"
)

// IntegrationID uniquely identifies a CI integration.
type IntegrationID uuid.UUID

// String returns the canonical UUID form.
func (id IntegrationID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the id is unset.
func (id IntegrationID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// Platform names a CI/CD provider.
type Platform string

const (
	PlatformGitHubActions Platform = "github_actions"
	PlatformCodemagic     Platform = "codemagic"
	PlatformCircleCI      Platform = "circleci"
	PlatformBitrise       Platform = "bitrise"
	PlatformGitLabCI      Platform = "gitlab_ci"
	PlatformAzureDevOps   Platform = "azure_devops"
	PlatformTravisCI      Platform = "travis_ci"
)

// SupportedPlatforms lists every platform an integration may be created for.
var SupportedPlatforms = []Platform{ //nolint: gochecknoglobals
	PlatformGitHubActions,
	PlatformCodemagic,
	PlatformCircleCI,
	PlatformBitrise,
	PlatformGitLabCI,
	PlatformAzureDevOps,
	PlatformTravisCI,
}

var platformNames = map[Platform]string{ //nolint: gochecknoglobals
	PlatformGitHubActions: "GitHub Actions",
	PlatformCodemagic:     "Codemagic",
	PlatformCircleCI:      "CircleCI",
	PlatformBitrise:       "Bitrise",
	PlatformGitLabCI:      "GitLab CI",
	PlatformAzureDevOps:   "Azure DevOps",
	PlatformTravisCI:      "Travis CI",
}

// Valid reports whether p is one of SupportedPlatforms.
func (p Platform) Valid() bool {
	_, ok := platformNames[p]

	return ok
}

// DisplayName returns the human readable platform name, or the raw value for
// unknown platforms.
func (p Platform) DisplayName() string {
	if name, ok := platformNames[p]; ok {
		return name
	}

	return string(p)
}

// HiddenValue replaces secrets when an integration config is exposed.
const HiddenValue = "***hidden***"

// Integration connects a repository to a CI platform.
type Integration struct {
	ID           IntegrationID
	RepositoryID RepositoryID
	Platform     Platform

	// Config holds platform specific settings such as app or workflow ids.
	Config map[string]any
	// TokenEncrypted is the sealed platform API token. It is never returned by the API.
	TokenEncrypted string
	IsActive       bool
	LastUsedAt     time.Time
	WebhookURL     string
	Settings       map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConfigString returns Config[key] when it holds a non-empty string.
func (i Integration) ConfigString(key string) string {
	v, _ := i.Config[key].(string)

	return v
}

// MaskedConfig returns a copy of Config with the token hidden.
func (i Integration) MaskedConfig() map[string]any {
	out := maps.Clone(i.Config)
	if out == nil {
		out = map[string]any{}
	}
	if _, ok := out["token"]; ok {
		out["token"] = HiddenValue
	}

	return out
}
