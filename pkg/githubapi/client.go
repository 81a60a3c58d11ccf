package githubapi

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"autobuilder/pkg/ci"
	"autobuilder/pkg/serrors"

	"github.com/google/go-github/v75/github"
)

// WebhookEvents are the events registered on linked repositories.
var WebhookEvents = []string{"push", "pull_request", "issues"} //nolint: gochecknoglobals

// GitHub implements Client with go-github.
type GitHub struct {
	gh *github.Client
}

// New returns a client authenticated with token. baseURL targets a GitHub
// Enterprise API root and may be empty.
func New(httpClient *http.Client, baseURL, token string) (*GitHub, error) {
	gh := github.NewClient(httpClient)
	if token != "" {
		gh = gh.WithAuthToken(token)
	}
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("could not parse github base url: %w", err)
		}
		gh.BaseURL = u
	}

	return &GitHub{gh: gh}, nil
}

// Ensure GitHub conforms to the Client interface at compile time.
var _ Client = (*GitHub)(nil)

func split(fullName string) (string, string, error) {
	owner, repo, ok := ci.SplitRepository(fullName)
	if !ok {
		return "", "", serrors.With(serrors.ErrBadRequest, "invalid repository name %q", fullName)
	}

	return owner, repo, nil
}

func translate(err error, what string) error {
	var (
		rle   *github.RateLimitError
		abuse *github.AbuseRateLimitError
		er    *github.ErrorResponse
	)
	switch {
	case errors.As(err, &rle), errors.As(err, &abuse):
		return serrors.Wrap(serrors.ErrRateLimited, err, "github rate limited %s", what)
	case errors.As(err, &er) && er.Response != nil:
		switch er.Response.StatusCode {
		case http.StatusUnauthorized:
			return serrors.Wrap(serrors.ErrUnauthorized, err, "github rejected credentials for %s", what)
		case http.StatusNotFound:
			return serrors.Wrap(serrors.ErrNotFound, err, "github could not find %s", what)
		case http.StatusConflict, http.StatusMethodNotAllowed:
			return serrors.Wrap(serrors.ErrConflict, err, "github refused %s", what)
		case http.StatusUnprocessableEntity:
			return serrors.Wrap(serrors.ErrBadRequest, err, "github rejected %s", what)
		}
	}

	return fmt.Errorf("could not %s: %w", what, err)
}

// Repository fetches repository metadata.
func (c *GitHub) Repository(ctx context.Context, fullName string) (RepositoryInfo, error) {
	owner, repo, err := split(fullName)
	if err != nil {
		return RepositoryInfo{}, err
	}

	r, _, err := c.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return RepositoryInfo{}, translate(err, "get repository")
	}

	return RepositoryInfo{
		ID:            r.GetID(),
		Description:   r.GetDescription(),
		Language:      r.GetLanguage(),
		DefaultBranch: r.GetDefaultBranch(),
		Private:       r.GetPrivate(),
	}, nil
}

// CreateWebhook registers a JSON webhook signed with secret.
func (c *GitHub) CreateWebhook(ctx context.Context, fullName, callbackURL, secret string) (int64, error) {
	owner, repo, err := split(fullName)
	if err != nil {
		return 0, err
	}

	hook, _, err := c.gh.Repositories.CreateHook(ctx, owner, repo, &github.Hook{
		Name:   github.Ptr("web"),
		Active: github.Ptr(true),
		Events: WebhookEvents,
		Config: &github.HookConfig{
			URL:         github.Ptr(callbackURL),
			ContentType: github.Ptr("json"),
			Secret:      github.Ptr(secret),
			InsecureSSL: github.Ptr("0"),
		},
	})
	if err != nil {
		return 0, translate(err, "create webhook")
	}

	return hook.GetID(), nil
}

// OpenFixPullRequest branches off Base, commits every file and opens a pull request.
func (c *GitHub) OpenFixPullRequest(ctx context.Context, pr FixPullRequest) (PullRequest, error) {
	owner, repo, err := split(pr.Repository)
	if err != nil {
		return PullRequest{}, err
	}
	if len(pr.Files) == 0 {
		return PullRequest{}, serrors.With(serrors.ErrBadRequest, "a fix pull request needs at least one file")
	}

	base, _, err := c.gh.Git.GetRef(ctx, owner, repo, "heads/"+pr.Base)
	if err != nil {
		return PullRequest{}, translate(err, "resolve base branch")
	}

	// POST /repos/{owner}/{repo}/git/refs
	req, err := c.gh.NewRequest(http.MethodPost, fmt.Sprintf("repos/%s/%s/git/refs", owner, repo), map[string]string{
		"ref": "refs/heads/" + pr.Branch,
		"sha": base.GetObject().GetSHA(),
	})
	if err != nil {
		return PullRequest{}, fmt.Errorf("could not create request: %w", err)
	}
	if _, err = c.gh.Do(ctx, req, nil); err != nil {
		return PullRequest{}, translate(err, "create fix branch")
	}

	message := pr.CommitMessage
	if message == "" {
		message = pr.Title
	}
	for _, path := range slices.Sorted(maps.Keys(pr.Files)) {
		_, _, err = c.gh.Repositories.CreateFile(ctx, owner, repo, path, &github.RepositoryContentFileOptions{
			Message: github.Ptr(message),
			Content: []byte(pr.Files[path]),
			Branch:  github.Ptr(pr.Branch),
		})
		if err != nil {
			return PullRequest{}, translate(err, "commit "+path)
		}
	}

	created, _, err := c.gh.PullRequests.Create(ctx, owner, repo, &github.NewPullRequest{
		Title: github.Ptr(pr.Title),
		Head:  github.Ptr(pr.Branch),
		Base:  github.Ptr(pr.Base),
		Body:  github.Ptr(pr.Body),
	})
	if err != nil {
		return PullRequest{}, translate(err, "open pull request")
	}

	return PullRequest{Number: created.GetNumber(), URL: created.GetHTMLURL()}, nil
}

// MergePullRequest squash-merges the pull request.
func (c *GitHub) MergePullRequest(ctx context.Context, fullName string, number int, message string) error {
	owner, repo, err := split(fullName)
	if err != nil {
		return err
	}

	res, _, err := c.gh.PullRequests.Merge(ctx, owner, repo, number, message,
		&github.PullRequestOptions{MergeMethod: "squash"})
	if err != nil {
		return translate(err, "merge pull request")
	}
	if !res.GetMerged() {
		return serrors.With(serrors.ErrConflict, "pull request %d was not merged: %s", number, res.GetMessage())
	}

	return nil
}
