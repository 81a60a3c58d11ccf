package autofix

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strings"
	"time"

	"autobuilder/internal/config"
	"autobuilder/internal/jobs"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/githubapi"
	"autobuilder/pkg/logger"
	"autobuilder/pkg/metrics"
	"autobuilder/pkg/notify"
	"autobuilder/pkg/serrors"
	"autobuilder/pkg/storage"

	"go.uber.org/zap"
)

const resourceFixAttempt = "fix_attempt"

// branchPrefixes lists the fix types that can be published, by branch prefix.
var branchPrefixes = map[domain.FixType]string{ //nolint: gochecknoglobals
	domain.FixTypeDependencyUpdate: "auto-fix",
	domain.FixTypeConfigFix:        "auto-fix-config",
	domain.FixTypeMissingFile:      "auto-fix-file",
}

type Options struct {
	// MaxAttempts bounds the attempts recorded per build.
	MaxAttempts int
	// SafeFileTypes are the extensions a safe-only repository accepts in fixes.
	SafeFileTypes []string
	// TriggerMaxAttempts is passed to the rebuild scheduled after a fix.
	TriggerMaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:        cfg.AutoFix.MaxAttempts,
		SafeFileTypes:      cfg.AutoFix.SafeFileTypes,
		TriggerMaxAttempts: cfg.Builds.TriggerMaxAttempts,
	}
}

type service struct {
	options  Options
	storage  storage.Storage
	github   githubapi.Client
	notifier notify.Notifier
	now      func() time.Time
}

// New creates an auto-fix Service. now defaults to time.Now when nil.
func New(storage storage.Storage,
	github githubapi.Client,
	notifier notify.Notifier,
	options Options,
	now func() time.Time) Service {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	if now == nil {
		now = time.Now
	}

	return &service{
		options:  options,
		storage:  storage,
		github:   github,
		notifier: notifier,
		now:      now,
	}
}

func (s *service) build(ctx context.Context, id domain.BuildID) (*domain.Build, error) {
	b, err := s.storage.BuildByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get build: %w", err)
	}
	if b == nil {
		return nil, serrors.With(serrors.ErrNotFound, "build not found")
	}

	return b, nil
}

func (s *service) repository(ctx context.Context, id domain.RepositoryID) (*domain.Repository, error) {
	repo, err := s.storage.RepositoryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get repository: %w", err)
	}
	if repo == nil {
		return nil, serrors.With(serrors.ErrNotFound, "repository not found")
	}

	return repo, nil
}

func (s *service) Analyze(ctx context.Context, buildID domain.BuildID) ([]domain.FixAttempt, error) {
	ctx = logger.WithFields(ctx, zap.String("buildID", buildID.String()))

	b, err := s.build(ctx, buildID)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BuildStatusFailed {
		logger.Debug(ctx, "build did not fail, nothing to analyze", zap.String("status", string(b.Status)))

		return nil, nil
	}

	logs := b.LogsContent
	if logs == "" {
		logs = b.ErrorLogs
	}
	matches := AnalyzeLogs(logs)
	if len(matches) == 0 {
		return nil, nil
	}

	existing, err := s.storage.FixAttemptsByBuild(ctx, buildID)
	if err != nil {
		return nil, fmt.Errorf("could not list fix attempts: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, a := range existing {
		if a.Status == domain.FixStatusPending || a.Status == domain.FixStatusApplied {
			seen[a.ErrorPattern] = true
		}
	}

	next := len(existing) + 1
	var attempts []domain.FixAttempt
	for _, m := range matches {
		if next > s.options.MaxAttempts {
			break
		}
		if seen[m.Rule] {
			continue
		}
		seen[m.Rule] = true

		attempts = append(attempts, domain.FixAttempt{
			BuildID:          buildID,
			AttemptNumber:    next,
			Type:             m.FixType,
			Status:           domain.FixStatusPending,
			ErrorPattern:     m.Rule,
			ErrorMessage:     m.ErrorMessage,
			Analysis:         m,
			FixSuggestion:    Suggest(m),
			ConfidenceScore:  m.Confidence,
			RequiresApproval: m.Confidence < domain.ApprovalThreshold,
		})
		next++
	}
	if len(attempts) == 0 {
		return nil, nil
	}

	repo, err := s.repository(ctx, b.RepositoryID)
	if err != nil {
		return nil, err
	}

	var created []domain.FixAttempt
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		created, err = tx.StoreFixAttempts(ctx, attempts...)
		if err != nil {
			return fmt.Errorf("could not store fix attempts: %w", err)
		}

		rules := make([]string, 0, len(created))
		for _, a := range created {
			rules = append(rules, a.ErrorPattern)
		}
		entry := domain.SystemAudit(domain.AuditFixAttempted, "build", buildID.String(),
			fmt.Sprintf("%d fix attempt(s) recorded", len(created)))
		entry.ResourceName = repo.FullName
		entry.Details = map[string]any{"rules": rules}
		if _, err := tx.StoreAuditLog(ctx, entry); err != nil {
			return fmt.Errorf("could not store audit log: %w", err)
		}

		if !repo.AutoFixEnabled {
			return nil
		}
		if _, err := tx.AddJob(ctx, jobs.ApplyFix{BuildID: buildID.String()}, nil); err != nil {
			return fmt.Errorf("could not enqueue fix: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not record fix attempts: %w", err)
	}

	for _, a := range created {
		metrics.FixAttempts.WithLabelValues(string(a.Type), string(a.Status)).Inc()
	}
	logger.Info(ctx, "fix attempts recorded", zap.Int("count", len(created)))

	return created, nil
}

func (s *service) ApplyFirst(ctx context.Context, buildID domain.BuildID) (*domain.FixAttempt, error) {
	attempts, err := s.storage.FixAttemptsByBuild(ctx, buildID)
	if err != nil {
		return nil, fmt.Errorf("could not list fix attempts: %w", err)
	}

	for _, a := range attempts {
		if a.Status == domain.FixStatusPending && !a.RequiresApproval {
			return s.Apply(ctx, a.ID)
		}
	}

	return nil, nil
}

func (s *service) Approve(ctx context.Context,
	buildID domain.BuildID,
	id domain.FixAttemptID) (*domain.FixAttempt, error) {
	attempt, err := s.attempt(ctx, id)
	if err != nil {
		return nil, err
	}
	if attempt.BuildID != buildID {
		return nil, serrors.With(serrors.ErrNotFound, "fix attempt not found")
	}

	return s.Apply(ctx, id)
}

func (s *service) attempt(ctx context.Context, id domain.FixAttemptID) (*domain.FixAttempt, error) {
	attempt, err := s.storage.FixAttemptByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get fix attempt: %w", err)
	}
	if attempt == nil {
		return nil, serrors.With(serrors.ErrNotFound, "fix attempt not found")
	}

	return attempt, nil
}

// allowed reports whether file may be changed in repo.
func (s *service) allowed(repo *domain.Repository, file string) bool {
	if !repo.AutoFixSafeOnly {
		return true
	}

	return slices.Contains(s.options.SafeFileTypes, path.Ext(file))
}

// failAttempt persists a failed application.
func (s *service) failAttempt(ctx context.Context,
	repo *domain.Repository,
	attempt *domain.FixAttempt,
	reason string) (*domain.FixAttempt, error) {
	logger.Warn(ctx, "fix attempt failed", zap.String("reason", reason))

	attempt.MarkFailed(reason)
	var updated *domain.FixAttempt
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		updated, err = tx.UpdateFixAttempt(ctx, attempt.ID, storage.FixAttemptUpdates{
			Status: &attempt.Status,
			Notes:  &attempt.Notes,
		})
		if err != nil {
			return fmt.Errorf("could not update fix attempt: %w", err)
		}

		entry := domain.SystemAudit(domain.AuditFixApplied, resourceFixAttempt, attempt.ID.String(), "fix could not be applied")
		entry.ResourceName = repo.FullName
		entry.Success = false
		entry.ErrorMessage = reason
		if _, err := tx.StoreAuditLog(ctx, entry); err != nil {
			return fmt.Errorf("could not store audit log: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}
	metrics.FixAttempts.WithLabelValues(string(attempt.Type), string(attempt.Status)).Inc()

	return updated, nil
}

func (s *service) Apply(ctx context.Context, id domain.FixAttemptID) (*domain.FixAttempt, error) {
	ctx = logger.WithFields(ctx, zap.String("fixAttemptID", id.String()))

	attempt, err := s.attempt(ctx, id)
	if err != nil {
		return nil, err
	}
	if attempt.Status != domain.FixStatusPending {
		return nil, serrors.With(serrors.ErrConflict, "fix attempt is %s", attempt.Status)
	}

	b, err := s.build(ctx, attempt.BuildID)
	if err != nil {
		return nil, err
	}
	repo, err := s.repository(ctx, b.RepositoryID)
	if err != nil {
		return nil, err
	}

	if s.github == nil {
		return s.failAttempt(ctx, repo, attempt, "github client is not configured")
	}

	prefix, ok := branchPrefixes[attempt.Type]
	if !ok {
		return s.failAttempt(ctx, repo, attempt, fmt.Sprintf("unsupported fix type: %s", attempt.Type))
	}

	file := fmt.Sprintf(".autofix/%s-%d.md", b.ID, attempt.AttemptNumber)
	if !s.allowed(repo, file) {
		return s.failAttempt(ctx, repo, attempt, fmt.Sprintf("file type %s is not allowed for safe-only fixes", path.Ext(file)))
	}

	branch := fmt.Sprintf("%s/%s/%d", prefix, b.ID, attempt.AttemptNumber)
	title := fmt.Sprintf("Auto-fix: %s", attempt.ErrorPattern)
	pr, err := s.github.OpenFixPullRequest(ctx, githubapi.FixPullRequest{
		Repository:    repo.FullName,
		Base:          b.Branch,
		Branch:        branch,
		Title:         title,
		Body:          fmt.Sprintf("%s\n\nProposed automatically after build %s failed.", attempt.FixSuggestion, b.ID),
		Files:         map[string]string{file: fixNote(*b, *attempt)},
		CommitMessage: title,
	})
	if err != nil {
		return s.failAttempt(ctx, repo, attempt, err.Error())
	}

	merged := false
	if repo.AutoMergeEnabled {
		if err := s.github.MergePullRequest(ctx, repo.FullName, pr.Number, title); err != nil {
			logger.Warn(ctx, "could not merge fix pull request", zap.Int("number", pr.Number), zap.Error(err))
		} else {
			merged = true
		}
	}

	attempt.MarkApplied(s.now().UTC())
	attempt.BranchName = branch
	attempt.PullRequestURL = pr.URL
	attempt.PullRequestNumber = pr.Number
	attempt.FilesChanged = []string{file}
	attempt.ChangesSummary = fmt.Sprintf("%s (%s)", attempt.FixSuggestion, strings.ReplaceAll(string(attempt.Type), "_", " "))

	rebuildBranch := branch
	if merged {
		rebuildBranch = b.Branch
	}

	var updated *domain.FixAttempt
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err = tx.UpdateFixAttempt(ctx, attempt.ID, storage.FixAttemptUpdates{
			Status:            &attempt.Status,
			FilesChanged:      attempt.FilesChanged,
			ChangesSummary:    &attempt.ChangesSummary,
			BranchName:        &attempt.BranchName,
			PullRequestURL:    &attempt.PullRequestURL,
			PullRequestNumber: &attempt.PullRequestNumber,
			AppliedAt:         &attempt.AppliedAt,
		})
		if err != nil {
			return fmt.Errorf("could not update fix attempt: %w", err)
		}

		rebuild, err := tx.StoreBuild(ctx, domain.Build{
			RepositoryID:  b.RepositoryID,
			IntegrationID: b.IntegrationID,
			RetryOf:       b.ID,
			Branch:        rebuildBranch,
			Trigger:       domain.TriggerAutoFix,
			Status:        domain.BuildStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store rebuild: %w", err)
		}
		if _, err := tx.AddJob(ctx, jobs.TriggerBuild{
			BuildID:     rebuild.ID.String(),
			MaxAttempts: s.options.TriggerMaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not enqueue rebuild: %w", err)
		}

		return s.auditApplied(ctx, tx, repo, attempt, rebuild, merged)
	}); err != nil {
		return nil, fmt.Errorf("could not record applied fix: %w", err)
	}

	metrics.FixAttempts.WithLabelValues(string(attempt.Type), string(attempt.Status)).Inc()
	if err := s.notifier.FixApplied(ctx, *repo, *b, *attempt); err != nil {
		logger.Warn(ctx, "could not send fix notification", zap.Error(err))
	}
	logger.Info(ctx, "fix applied", zap.String("pullRequest", pr.URL), zap.Bool("merged", merged))

	return updated, nil
}

func (s *service) auditApplied(ctx context.Context,
	tx storage.AllStorage,
	repo *domain.Repository,
	attempt *domain.FixAttempt,
	rebuild *domain.Build,
	merged bool) error {
	entries := []domain.AuditLog{
		domain.SystemAudit(domain.AuditFixApplied, resourceFixAttempt, attempt.ID.String(), attempt.ChangesSummary),
		domain.SystemAudit(domain.AuditPullRequestCreated, "pull_request", fmt.Sprint(attempt.PullRequestNumber),
			"fix pull request opened from "+attempt.BranchName),
	}
	if merged {
		entries = append(entries, domain.SystemAudit(domain.AuditPullRequestMerged, "pull_request",
			fmt.Sprint(attempt.PullRequestNumber), "fix pull request merged"))
	}

	for _, entry := range entries {
		entry.ResourceName = repo.FullName
		entry.Details = map[string]any{
			"build_id":         attempt.BuildID.String(),
			"rebuild_id":       rebuild.ID.String(),
			"pull_request_url": attempt.PullRequestURL,
		}
		if _, err := tx.StoreAuditLog(ctx, entry); err != nil {
			return fmt.Errorf("could not store audit log: %w", err)
		}
	}

	return nil
}

func (s *service) Suggestions(ctx context.Context, buildID domain.BuildID) ([]string, error) {
	b, err := s.build(ctx, buildID)
	if err != nil {
		return nil, err
	}

	out := []string{}
	seen := map[string]bool{}
	for _, logs := range []string{b.ErrorLogs, b.LogsContent} {
		for _, m := range AnalyzeLogs(logs) {
			suggestion := Suggest(m)
			if seen[suggestion] {
				continue
			}
			seen[suggestion] = true
			out = append(out, suggestion)
		}
	}

	return out, nil
}
