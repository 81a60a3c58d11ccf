// Package codemagic provides a ci.Client implementation backed by the
// Codemagic REST API.
package codemagic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"autobuilder/pkg/ci"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/serrors"
)

const (
	// DefaultBaseURL is the public Codemagic API.
	DefaultBaseURL = "https://api.codemagic.io"
	// DefaultWorkflow is used when the integration config names none.
	DefaultWorkflow = "default"

	maxLogBytes = 4 << 20
)

// Client talks to the Codemagic REST API. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string // default token when a request carries none
}

// New constructs a Client. An empty baseURL uses DefaultBaseURL.
func New(httpClient *http.Client, baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
	}
}

// Ensure Client conforms to the ci.Client interface at compile time.
var _ ci.Client = (*Client)(nil)

// Platform implements ci.Client.
func (c *Client) Platform() domain.Platform { return domain.PlatformCodemagic }

// ParseRateLimit extracts rate-limit information from the response headers.
// Codemagic does not always send them, in which case a zero status is returned.
func ParseRateLimit(h http.Header) ci.RateLimitStatus {
	atoi := func(s string) int {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}

		return 0
	}

	reset := h.Get("X-RateLimit-Reset")
	if reset == "" {
		return ci.RateLimitStatus{}
	}
	epoch, err := strconv.ParseInt(reset, 10, 64)
	if err != nil {
		return ci.RateLimitStatus{}
	}

	return ci.RateLimitStatus{
		Limit:     atoi(h.Get("X-RateLimit-Limit")),
		Remaining: atoi(h.Get("X-RateLimit-Remaining")),
		ResetAt:   time.Unix(epoch, 0).UTC(),
	}
}

// MapStatus maps a Codemagic build status onto a build status.
func MapStatus(s string) domain.BuildStatus {
	switch s {
	case "finished":
		return domain.BuildStatusSuccess
	case "failed":
		return domain.BuildStatusFailed
	case "canceled":
		return domain.BuildStatusCancelled
	case "timeout":
		return domain.BuildStatusTimeout
	default:
		return domain.BuildStatusRunning
	}
}

func (c *Client) tokenFor(token string) string {
	if token != "" {
		return token
	}

	return c.token
}

// do sends the request and returns the body, the rate-limit status and a
// semantic error for non-2xx responses.
func (c *Client) do(ctx context.Context, method, url, token string, body any) ([]byte, ci.RateLimitStatus, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, ci.RateLimitStatus{}, fmt.Errorf("could not marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, ci.RateLimitStatus{}, fmt.Errorf("could not create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ci.RateLimitStatus{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	rl := ParseRateLimit(resp.Header)
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxLogBytes))
	if err != nil {
		return nil, rl, fmt.Errorf("could not read response body: %w", err)
	}

	msg := strings.TrimSpace(string(b))
	switch {
	case resp.StatusCode == http.StatusTooManyRequests,
		resp.StatusCode == http.StatusForbidden && rl.Known() && rl.Remaining == 0:
		return nil, rl, serrors.With(serrors.ErrRateLimited, "rate limited: %s", msg)
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, rl, serrors.With(serrors.ErrUnauthorized, "codemagic rejected the token")
	case resp.StatusCode == http.StatusNotFound:
		return nil, rl, serrors.With(serrors.ErrNotFound, "codemagic resource not found")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, rl, fmt.Errorf("codemagic request failed with %d: %s", resp.StatusCode, msg)
	}

	return b, rl, nil
}

// Trigger starts a build of the configured app workflow on the branch.
func (c *Client) Trigger(ctx context.Context, req ci.TriggerRequest) (ci.Run, ci.RateLimitStatus, error) {
	appID := ci.ConfigString(req.Config, "app_id", "")
	if appID == "" {
		return ci.Run{}, ci.RateLimitStatus{}, serrors.With(serrors.ErrBadRequest, "codemagic app_id is not configured")
	}

	type startReq struct {
		AppID      string `json:"appId"`
		WorkflowID string `json:"workflowId"`
		Branch     string `json:"branch"`
	}
	b, rl, err := c.do(ctx, http.MethodPost, c.baseURL+"/builds", c.tokenFor(req.Token), startReq{
		AppID:      appID,
		WorkflowID: ci.ConfigString(req.Config, "workflow_id", DefaultWorkflow),
		Branch:     req.Branch,
	})
	if err != nil {
		return ci.Run{}, rl, err
	}

	var res struct {
		BuildID string `json:"buildId"`
	}
	if err := json.Unmarshal(b, &res); err != nil {
		return ci.Run{}, rl, fmt.Errorf("could not decode response: %w", err)
	}
	if res.BuildID == "" {
		return ci.Run{}, rl, errors.New("codemagic returned no build id")
	}

	return ci.Run{
		ID:  res.BuildID,
		URL: fmt.Sprintf("https://codemagic.io/app/%s/build/%s", appID, res.BuildID),
	}, rl, nil
}

type buildResponse struct {
	Build struct {
		ID           string    `json:"_id"`
		AppID        string    `json:"appId"`
		Status       string    `json:"status"`
		StartedAt    time.Time `json:"startedAt"`
		FinishedAt   time.Time `json:"finishedAt"`
		BuildActions []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
			LogURL string `json:"logUrl"`
		} `json:"buildActions"`
	} `json:"build"`
}

func (c *Client) build(ctx context.Context, ref ci.RunRef) (buildResponse, ci.RateLimitStatus, error) {
	b, rl, err := c.do(ctx, http.MethodGet, c.baseURL+"/builds/"+ref.ID, c.tokenFor(ref.Token), nil)
	if err != nil {
		return buildResponse{}, rl, err
	}

	var res buildResponse
	if err := json.Unmarshal(b, &res); err != nil {
		return buildResponse{}, rl, fmt.Errorf("could not decode response: %w", err)
	}

	return res, rl, nil
}

// Status fetches the build and maps its status.
func (c *Client) Status(ctx context.Context, ref ci.RunRef) (ci.RunStatus, ci.RateLimitStatus, error) {
	res, rl, err := c.build(ctx, ref)
	if err != nil {
		return ci.RunStatus{}, rl, err
	}

	return ci.RunStatus{
		Status:     MapStatus(res.Build.Status),
		Raw:        res.Build.Status,
		URL:        fmt.Sprintf("https://codemagic.io/app/%s/build/%s", res.Build.AppID, res.Build.ID),
		StartedAt:  res.Build.StartedAt,
		FinishedAt: res.Build.FinishedAt,
	}, rl, nil
}

// Logs concatenates the logs of every build step.
func (c *Client) Logs(ctx context.Context, ref ci.RunRef) (string, error) {
	res, _, err := c.build(ctx, ref)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, action := range res.Build.BuildActions {
		if action.LogURL == "" {
			continue
		}
		b, _, err := c.do(ctx, http.MethodGet, action.LogURL, c.tokenFor(ref.Token), nil)
		if err != nil {
			return "", fmt.Errorf("could not fetch logs of step %q: %w", action.Name, err)
		}
		fmt.Fprintf(&sb, "== %s (%s) ==\n", action.Name, action.Status)
		sb.Write(b)
		if !bytes.HasSuffix(b, []byte("\n")) {
			sb.WriteByte('\n')
		}
		if sb.Len() >= maxLogBytes {
			break
		}
	}

	return sb.String(), nil
}

// Ping lists the applications visible to the token.
func (c *Client) Ping(ctx context.Context, token string) error {
	_, _, err := c.do(ctx, http.MethodGet, c.baseURL+"/apps", c.tokenFor(token), nil)

	return err
}
