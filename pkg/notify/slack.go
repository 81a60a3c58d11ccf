package notify

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"autobuilder/pkg/domain"

	"github.com/slack-go/slack"
)

const (
	colorDanger = "danger"
	colorGood   = "good"
)

// Slack posts notifications through an incoming webhook.
type Slack struct {
	webhookURL string
	channel    string
	httpClient *http.Client
}

// NewSlack returns a Slack notifier. An empty channel uses the webhook default.
func NewSlack(webhookURL, channel string, httpClient *http.Client) *Slack {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Slack{webhookURL: webhookURL, channel: channel, httpClient: httpClient}
}

// BuildFailed implements Notifier.
func (s *Slack) BuildFailed(ctx context.Context, repo domain.Repository, build domain.Build) error {
	fields := []slack.AttachmentField{
		{Title: "Branch", Value: build.Branch, Short: true},
		{Title: "Trigger", Value: string(build.Trigger), Short: true},
		{Title: "Status", Value: string(build.Status), Short: true},
	}
	if d := build.DurationFormatted(); d != "" {
		fields = append(fields, slack.AttachmentField{Title: "Duration", Value: d, Short: true})
	}
	if build.CommitSHA != "" {
		fields = append(fields, slack.AttachmentField{Title: "Commit", Value: shortSHA(build.CommitSHA), Short: true})
	}

	return s.post(ctx, slack.Attachment{
		Color:     colorDanger,
		Title:     fmt.Sprintf("Build failed: %s", repo.FullName),
		TitleLink: build.LogsURL,
		Text:      build.LogsSummary(500),
		Fields:    fields,
	})
}

// FixApplied implements Notifier.
func (s *Slack) FixApplied(
	ctx context.Context,
	repo domain.Repository,
	build domain.Build,
	attempt domain.FixAttempt,
) error {
	return s.post(ctx, slack.Attachment{
		Color:     colorGood,
		Title:     fmt.Sprintf("Auto-fix applied: %s", repo.FullName),
		TitleLink: attempt.PullRequestURL,
		Text:      attempt.FixSuggestion,
		Fields: []slack.AttachmentField{
			{Title: "Rule", Value: attempt.ErrorPattern, Short: true},
			{Title: "Fix type", Value: string(attempt.Type), Short: true},
			{Title: "Confidence", Value: strconv.Itoa(attempt.ConfidenceScore) + "% (" + attempt.ConfidenceLevel() + ")", Short: true},
			{Title: "Branch", Value: build.Branch, Short: true},
		},
	})
}

func (s *Slack) post(ctx context.Context, attachment slack.Attachment) error {
	msg := &slack.WebhookMessage{
		Channel:     s.channel,
		Text:        attachment.Title,
		Attachments: []slack.Attachment{attachment},
	}
	if err := slack.PostWebhookCustomHTTPContext(ctx, s.webhookURL, s.httpClient, msg); err != nil {
		return fmt.Errorf("could not post slack message: %w", err)
	}

	return nil
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}

	return sha
}
