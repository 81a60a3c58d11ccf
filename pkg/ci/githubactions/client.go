// Package githubactions provides a ci.Client that runs builds as GitHub
// Actions workflow dispatches.
package githubactions

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"autobuilder/pkg/ci"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/serrors"

	"github.com/google/go-github/v75/github"
)

const (
	// DefaultWorkflow is the workflow file dispatched when the integration names none.
	DefaultWorkflow = "build.yml"

	maxLogBytes  = 8 << 20
	maxRedirects = 3
	// dispatchSkew tolerates clock drift between us and GitHub when looking up
	// the run created by a dispatch.
	dispatchSkew = time.Minute
)

// Client dispatches and observes workflow runs. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	token      string

	findAttempts int
	findDelay    time.Duration
	now          func() time.Time
}

// Option customizes a Client.
type Option func(*Client)

// WithRunLookup sets how often and how long apart the run created by a
// dispatch is looked up.
func WithRunLookup(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		c.findAttempts = max(attempts, 1)
		c.findDelay = delay
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New constructs a Client. baseURL points to a GitHub Enterprise API root and
// may be empty for api.github.com.
func New(httpClient *http.Client, baseURL, token string, opts ...Option) (*Client, error) {
	c := &Client{
		httpClient:   httpClient,
		token:        token,
		findAttempts: 5,
		findDelay:    2 * time.Second,
		now:          time.Now,
	}
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("could not parse github base url: %w", err)
		}
		c.baseURL = u
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Ensure Client conforms to the ci.Client interface at compile time.
var _ ci.Client = (*Client)(nil)

// Platform implements ci.Client.
func (c *Client) Platform() domain.Platform { return domain.PlatformGitHubActions }

func (c *Client) api(token string) *github.Client {
	if token == "" {
		token = c.token
	}
	gh := github.NewClient(c.httpClient)
	if token != "" {
		gh = gh.WithAuthToken(token)
	}
	if c.baseURL != nil {
		gh.BaseURL = c.baseURL
	}

	return gh
}

// RateLimit converts the rate information of a GitHub response.
func RateLimit(resp *github.Response) ci.RateLimitStatus {
	if resp == nil || resp.Rate.Reset.IsZero() {
		return ci.RateLimitStatus{}
	}

	return ci.RateLimitStatus{
		Limit:     resp.Rate.Limit,
		Remaining: resp.Rate.Remaining,
		ResetAt:   resp.Rate.Reset.UTC(),
	}
}

// translate maps go-github errors onto semantic kinds.
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
			return serrors.Wrap(serrors.ErrUnauthorized, err, "github rejected the token for %s", what)
		case http.StatusNotFound:
			return serrors.Wrap(serrors.ErrNotFound, err, "github could not find %s", what)
		case http.StatusUnprocessableEntity:
			return serrors.Wrap(serrors.ErrBadRequest, err, "github rejected %s", what)
		}
	}

	return fmt.Errorf("could not %s: %w", what, err)
}

func splitRepo(fullName string) (string, string, error) {
	owner, name, ok := ci.SplitRepository(fullName)
	if !ok {
		return "", "", serrors.With(serrors.ErrBadRequest, "invalid repository name %q", fullName)
	}

	return owner, name, nil
}

func parseRunID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "invalid workflow run id %q", id)
	}

	return n, nil
}

// Trigger dispatches the workflow on the branch and looks up the run it created.
func (c *Client) Trigger(ctx context.Context, req ci.TriggerRequest) (ci.Run, ci.RateLimitStatus, error) {
	owner, repo, err := splitRepo(req.Repository)
	if err != nil {
		return ci.Run{}, ci.RateLimitStatus{}, err
	}
	workflow := ci.ConfigString(req.Config, "workflow", DefaultWorkflow)
	gh := c.api(req.Token)

	dispatchedAt := c.now().Add(-dispatchSkew)
	resp, err := gh.Actions.CreateWorkflowDispatchEventByFileName(ctx, owner, repo, workflow,
		github.CreateWorkflowDispatchEventRequest{Ref: req.Branch})
	rl := RateLimit(resp)
	if err != nil {
		return ci.Run{}, rl, translate(err, "dispatch workflow")
	}

	for attempt := range c.findAttempts {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ci.Run{}, rl, ctx.Err()
			case <-time.After(c.findDelay):
			}
		}

		runs, resp, err := gh.Actions.ListWorkflowRunsByFileName(ctx, owner, repo, workflow,
			&github.ListWorkflowRunsOptions{
				Branch:      req.Branch,
				Event:       "workflow_dispatch",
				ListOptions: github.ListOptions{PerPage: 5},
			})
		if r := RateLimit(resp); r.Known() {
			rl = r
		}
		if err != nil {
			return ci.Run{}, rl, translate(err, "list workflow runs")
		}

		for _, run := range runs.WorkflowRuns {
			if run.GetCreatedAt().Before(dispatchedAt) {
				continue
			}

			return ci.Run{ID: strconv.FormatInt(run.GetID(), 10), URL: run.GetHTMLURL()}, rl, nil
		}
	}

	return ci.Run{}, rl, serrors.With(serrors.ErrUnavailable, "workflow run for %s@%s did not show up", req.Repository, req.Branch)
}

// MapStatus maps a workflow run status and conclusion onto a build status.
func MapStatus(status, conclusion string) domain.BuildStatus {
	if status != "completed" {
		if status == "in_progress" {
			return domain.BuildStatusRunning
		}

		return domain.BuildStatusPending
	}

	switch conclusion {
	case "success", "neutral", "skipped":
		return domain.BuildStatusSuccess
	case "cancelled":
		return domain.BuildStatusCancelled
	case "timed_out":
		return domain.BuildStatusTimeout
	default:
		return domain.BuildStatusFailed
	}
}

// Status fetches the workflow run.
func (c *Client) Status(ctx context.Context, ref ci.RunRef) (ci.RunStatus, ci.RateLimitStatus, error) {
	owner, repo, err := splitRepo(ref.Repository)
	if err != nil {
		return ci.RunStatus{}, ci.RateLimitStatus{}, err
	}
	id, err := parseRunID(ref.ID)
	if err != nil {
		return ci.RunStatus{}, ci.RateLimitStatus{}, err
	}

	run, resp, err := c.api(ref.Token).Actions.GetWorkflowRunByID(ctx, owner, repo, id)
	rl := RateLimit(resp)
	if err != nil {
		return ci.RunStatus{}, rl, translate(err, "get workflow run")
	}

	st := ci.RunStatus{
		Status:     MapStatus(run.GetStatus(), run.GetConclusion()),
		Raw:        run.GetStatus(),
		Conclusion: run.GetConclusion(),
		URL:        run.GetHTMLURL(),
		StartedAt:  run.GetRunStartedAt().Time,
	}
	if st.Status.IsTerminal() {
		st.FinishedAt = run.GetUpdatedAt().Time
	}

	return st, rl, nil
}

// Logs downloads the run log archive and concatenates its files in name order.
func (c *Client) Logs(ctx context.Context, ref ci.RunRef) (string, error) {
	owner, repo, err := splitRepo(ref.Repository)
	if err != nil {
		return "", err
	}
	id, err := parseRunID(ref.ID)
	if err != nil {
		return "", err
	}

	archiveURL, _, err := c.api(ref.Token).Actions.GetWorkflowRunLogs(ctx, owner, repo, id, maxRedirects)
	if err != nil {
		return "", translate(err, "get workflow run logs")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL.String(), nil)
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("could not download logs: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("log download failed with %d", resp.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxLogBytes))
	if err != nil {
		return "", fmt.Errorf("could not read logs: %w", err)
	}

	return unzipLogs(b)
}

func unzipLogs(b []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return "", fmt.Errorf("could not open log archive: %w", err)
	}

	files := make([]*zip.File, 0, len(zr.File))
	for _, f := range zr.File {
		if !f.FileInfo().IsDir() && path.Ext(f.Name) == ".txt" {
			files = append(files, f)
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	var sb strings.Builder
	for _, f := range files {
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("could not open %s: %w", f.Name, err)
		}
		fmt.Fprintf(&sb, "== %s ==\n", f.Name)
		_, err = io.Copy(&sb, io.LimitReader(rc, maxLogBytes-int64(sb.Len())))
		_ = rc.Close()
		if err != nil {
			return "", fmt.Errorf("could not read %s: %w", f.Name, err)
		}
		if !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteByte('\n')
		}
		if sb.Len() >= maxLogBytes {
			break
		}
	}

	return sb.String(), nil
}

// Ping fetches the authenticated user.
func (c *Client) Ping(ctx context.Context, token string) error {
	if _, _, err := c.api(token).Users.Get(ctx, ""); err != nil {
		return translate(err, "verify github token")
	}

	return nil
}
