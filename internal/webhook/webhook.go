package webhook

import (
	"context"
	"fmt"
	"strings"
	"time"

	"autobuilder/internal/builds"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/logger"
	"autobuilder/pkg/serrors"
	"autobuilder/pkg/storage"

	"github.com/google/go-github/v75/github"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	resourceRepository = "repository"
	branchRefPrefix    = "refs/heads/"
	zeroSHA            = "0000000000000000000000000000000000000000"
)

// buildActions are the pull request actions that start a build.
var buildActions = map[string]bool{"opened": true, "synchronize": true, "reopened": true} //nolint: gochecknoglobals

type service struct {
	secret     string
	storage    storage.Storage
	builds     builds.Service
	deliveries metric.Int64Counter
	now        func() time.Time
}

// New creates a webhook Service. secret is the global signing secret and may
// be empty.
func New(secret string, storage storage.Storage, builds builds.Service, meter metric.Meter) (Service, error) {
	deliveries, err := meter.Int64Counter("autobuilder.webhook.deliveries",
		metric.WithDescription("GitHub webhook deliveries by event and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create deliveries counter: %w", err)
	}

	return &service{
		secret:     secret,
		storage:    storage,
		builds:     builds,
		deliveries: deliveries,
		now:        time.Now,
	}, nil
}

// verify checks the signature against the global secret, then the repository
// secret. Deliveries are accepted unsigned only when no secret exists.
func (s *service) verify(d Delivery, repo *domain.Repository) error {
	secrets := make([]string, 0, 2)
	if s.secret != "" {
		secrets = append(secrets, s.secret)
	}
	if repo != nil && repo.WebhookSecret != "" {
		secrets = append(secrets, repo.WebhookSecret)
	}
	if len(secrets) == 0 {
		return nil
	}
	if d.Signature == "" {
		return serrors.With(serrors.ErrUnauthorized, "missing webhook signature")
	}

	for _, secret := range secrets {
		if github.ValidateSignature(d.Signature, d.Body, []byte(secret)) == nil {
			return nil
		}
	}

	return serrors.With(serrors.ErrUnauthorized, "invalid webhook signature")
}

func (s *service) count(ctx context.Context, event, outcome string) {
	s.deliveries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event", event),
		attribute.String("outcome", outcome),
	))
}

func (s *service) audit(ctx context.Context, d Delivery, entry domain.AuditLog) {
	entry.ActorType = domain.ActorGitHub
	entry.ActorName = "github"
	entry.IPAddress = d.IPAddress
	entry.UserAgent = d.UserAgent
	if _, err := s.storage.StoreAuditLog(ctx, entry); err != nil {
		logger.Error(ctx, "could not store webhook audit log", zap.String("action", string(entry.Action)), zap.Error(err))
	}
}

func (s *service) Handle(ctx context.Context, d Delivery) (*Receipt, error) {
	ctx = logger.WithFields(ctx, zap.String("event", d.Event), zap.String("deliveryID", d.DeliveryID))

	env, peekErr := peek(d.Body)

	var repo *domain.Repository
	if peekErr == nil && env.Repository != "" {
		var err error
		repo, err = s.storage.RepositoryByFullName(ctx, env.Repository)
		if err != nil {
			return nil, fmt.Errorf("could not get repository: %w", err)
		}
	}

	if err := s.verify(d, repo); err != nil {
		s.count(ctx, d.Event, "rejected")
		logger.Warn(ctx, "webhook signature rejected", zap.Error(err))

		return nil, err
	}
	if peekErr != nil {
		s.count(ctx, d.Event, "invalid")

		return nil, serrors.Wrap(serrors.ErrBadRequest, peekErr, "invalid JSON payload")
	}

	eventType := d.Event
	if eventType == "" {
		eventType = env.Action
	}
	if eventType == "" {
		eventType = "unknown"
	}

	received := domain.SystemAudit(domain.AuditWebhookReceived, resourceRepository, env.Repository,
		fmt.Sprintf("%s webhook received", eventType))
	received.ResourceName = env.Repository
	received.Details = map[string]any{"event_type": eventType, "delivery_id": d.DeliveryID, "action": env.Action}
	s.audit(ctx, d, received)

	var payload any
	if d.Event != "" {
		var err error
		if payload, err = github.ParseWebHook(d.Event, d.Body); err != nil {
			logger.Debug(ctx, "webhook payload not parsed", zap.Error(err))
		}
	}

	switch event := payload.(type) {
	case *github.PushEvent:
		s.push(ctx, d, repo, event)
	case *github.PullRequestEvent:
		s.pullRequest(ctx, d, repo, event)
	case *github.IssuesEvent:
		s.issues(ctx, d, env.Repository, event)
	case *github.PingEvent:
		logger.Info(ctx, "webhook ping acknowledged", zap.Int64("hookID", event.GetHookID()))
	default:
		entry := domain.SystemAudit(domain.AuditEventReceived, resourceRepository, env.Repository,
			fmt.Sprintf("%s event received", eventType))
		entry.Details = map[string]any{"event_type": eventType, "action": env.Action}
		s.audit(ctx, d, entry)
	}
	s.count(ctx, eventType, "accepted")

	return &Receipt{
		EventType:  eventType,
		Repository: env.Repository,
		Timestamp:  s.now().UTC(),
	}, nil
}

func (s *service) enqueue(ctx context.Context, req builds.EnqueueRequest) {
	b, err := s.builds.Enqueue(ctx, req)
	if err != nil {
		logger.Error(ctx, "could not enqueue build from webhook", zap.String("branch", req.Branch), zap.Error(err))

		return
	}
	logger.Info(ctx, "build enqueued from webhook", zap.String("buildID", b.ID.String()))
}

func (s *service) push(ctx context.Context, d Delivery, repo *domain.Repository, event *github.PushEvent) {
	fullName := event.GetRepo().GetFullName()
	if repo == nil {
		entry := domain.SystemAudit(domain.AuditPushUnregistered, resourceRepository, fullName,
			"push received for a repository that is not registered")
		entry.ResourceName = fullName
		entry.Success = false
		s.audit(ctx, d, entry)

		return
	}

	entry := domain.SystemAudit(domain.AuditPushReceived, resourceRepository, repo.ID.String(),
		fmt.Sprintf("push to %s", event.GetRef()))
	entry.ResourceName = repo.FullName
	entry.Details = map[string]any{
		"ref":     event.GetRef(),
		"after":   event.GetAfter(),
		"commits": len(event.Commits),
		"pusher":  event.GetPusher().GetName(),
	}
	s.audit(ctx, d, entry)

	branch, ok := strings.CutPrefix(event.GetRef(), branchRefPrefix)
	if !ok || !repo.AutoFixEnabled || event.GetDeleted() || event.GetAfter() == zeroSHA {
		return
	}
	s.enqueue(ctx, builds.EnqueueRequest{
		RepositoryID: repo.ID,
		Branch:       branch,
		CommitSHA:    event.GetAfter(),
		Trigger:      domain.TriggerPush,
	})
}

func (s *service) pullRequest(ctx context.Context, d Delivery, repo *domain.Repository, event *github.PullRequestEvent) {
	if repo == nil {
		return
	}

	pr := event.GetPullRequest()
	entry := domain.SystemAudit(domain.AuditPullRequestReceived, resourceRepository, repo.ID.String(),
		fmt.Sprintf("pull request #%d %s", event.GetNumber(), event.GetAction()))
	entry.ResourceName = repo.FullName
	entry.Details = map[string]any{
		"action": event.GetAction(),
		"number": event.GetNumber(),
		"head":   pr.GetHead().GetRef(),
		"base":   pr.GetBase().GetRef(),
	}
	s.audit(ctx, d, entry)

	if !buildActions[event.GetAction()] || !repo.AutoFixEnabled {
		return
	}
	s.enqueue(ctx, builds.EnqueueRequest{
		RepositoryID:      repo.ID,
		Branch:            pr.GetHead().GetRef(),
		CommitSHA:         pr.GetHead().GetSHA(),
		Trigger:           domain.TriggerPullRequest,
		PullRequestNumber: event.GetNumber(),
	})
}

func (s *service) issues(ctx context.Context, d Delivery, fullName string, event *github.IssuesEvent) {
	issue := event.GetIssue()
	labels := make([]string, 0, len(issue.Labels))
	for _, l := range issue.Labels {
		labels = append(labels, l.GetName())
	}

	entry := domain.SystemAudit(domain.AuditIssueReceived, "issue", fmt.Sprint(issue.GetNumber()),
		fmt.Sprintf("issue #%d %s", issue.GetNumber(), event.GetAction()))
	entry.ResourceName = fullName
	entry.Details = map[string]any{"action": event.GetAction(), "title": issue.GetTitle(), "labels": labels}
	s.audit(ctx, d, entry)
}

func (s *service) Events(ctx context.Context, limit uint) ([]domain.AuditLog, error) {
	switch {
	case limit == 0:
		limit = DefaultEventsLimit
	case limit > MaxEventsLimit:
		return nil, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxEventsLimit)
	}

	logs, err := s.storage.ListAuditLogs(ctx, storage.AuditFilter{ActionContains: "webhook", Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("could not list webhook events: %w", err)
	}

	return logs, nil
}
