// Package githubapi wraps the GitHub REST calls used to sync repositories,
// register webhooks and publish auto-fix pull requests.
package githubapi

import "context"

// RepositoryInfo is the subset of GitHub repository metadata that is synced.
type RepositoryInfo struct {
	ID            int64
	Description   string
	Language      string
	DefaultBranch string
	Private       bool
}

// FixPullRequest describes a branch with file changes to propose.
type FixPullRequest struct {
	// Repository is owner/name.
	Repository string
	Base       string
	Branch     string
	Title      string
	Body       string
	// Files maps repository paths to their new content.
	Files         map[string]string
	CommitMessage string
}

// PullRequest is a created pull request.
type PullRequest struct {
	Number int
	URL    string
}

//go:generate mockgen -package mockgithubapi -source=interface.go -destination=mock/mockgithubapi.go *
type Client interface {
	Repository(ctx context.Context, fullName string) (RepositoryInfo, error)
	CreateWebhook(ctx context.Context, fullName, callbackURL, secret string) (int64, error)
	OpenFixPullRequest(ctx context.Context, pr FixPullRequest) (PullRequest, error)
	MergePullRequest(ctx context.Context, fullName string, number int, message string) error
}
