package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"autobuilder/pkg/domain"

	"github.com/google/uuid"
)

// JSONB columns are carried as strings: goqu interpolates values into SQL
// literals and Postgres coerces the quoted text into jsonb.

func marshalJSON(v any, empty string) (string, error) {
	if v == nil {
		return empty, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("could not marshal json column: %w", err)
	}
	if string(b) == "null" {
		return empty, nil
	}

	return string(b), nil
}

func unmarshalJSON(raw string, v any) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("could not unmarshal json column: %w", err)
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

type PgRepository struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Owner        string `db:"owner"`
	Name         string `db:"name"`
	FullName     string `db:"full_name"`
	GitHubRepoID int64  `db:"github_repo_id"`

	Description     sql.NullString `db:"description"`
	DefaultLanguage sql.NullString `db:"default_language"`
	IsPrivate       bool           `db:"is_private"`

	AutoFixEnabled   bool   `db:"auto_fix_enabled"`
	AutoFixSafeOnly  bool   `db:"auto_fix_safe_only"`
	AutoMergeEnabled bool   `db:"auto_merge_enabled"`
	PrimaryBranch    string `db:"primary_branch"`

	WebhookSecret sql.NullString `db:"webhook_secret"`
	Settings      string         `db:"settings"`

	CreatedAt   time.Time    `db:"created_at"    goqu:"skipinsert"`
	UpdatedAt   sql.NullTime `db:"updated_at"    goqu:"skipinsert"`
	LastBuildAt sql.NullTime `db:"last_build_at"`
}

func (p *PgRepository) ToDomain() (*domain.Repository, error) {
	var settings map[string]any
	if err := unmarshalJSON(p.Settings, &settings); err != nil {
		return nil, err
	}

	return &domain.Repository{
		ID:               domain.RepositoryID(p.ID),
		Owner:            p.Owner,
		Name:             p.Name,
		FullName:         p.FullName,
		GitHubRepoID:     p.GitHubRepoID,
		Description:      p.Description.String,
		DefaultLanguage:  p.DefaultLanguage.String,
		IsPrivate:        p.IsPrivate,
		AutoFixEnabled:   p.AutoFixEnabled,
		AutoFixSafeOnly:  p.AutoFixSafeOnly,
		AutoMergeEnabled: p.AutoMergeEnabled,
		PrimaryBranch:    p.PrimaryBranch,
		WebhookSecret:    p.WebhookSecret.String,
		Settings:         settings,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt.Time,
		LastBuildAt:      p.LastBuildAt.Time,
	}, nil
}

func (p *PgRepository) FromDomain(repo domain.Repository) error {
	settings, err := marshalJSON(repo.Settings, "{}")
	if err != nil {
		return err
	}
	branch := repo.PrimaryBranch
	if branch == "" {
		branch = domain.DefaultPrimaryBranch
	}

	*p = PgRepository{
		ID:               uuid.UUID(repo.ID),
		Owner:            repo.Owner,
		Name:             repo.Name,
		FullName:         repo.FullName,
		GitHubRepoID:     repo.GitHubRepoID,
		Description:      nullString(repo.Description),
		DefaultLanguage:  nullString(repo.DefaultLanguage),
		IsPrivate:        repo.IsPrivate,
		AutoFixEnabled:   repo.AutoFixEnabled,
		AutoFixSafeOnly:  repo.AutoFixSafeOnly,
		AutoMergeEnabled: repo.AutoMergeEnabled,
		PrimaryBranch:    branch,
		WebhookSecret:    nullString(repo.WebhookSecret),
		Settings:         settings,
		CreatedAt:        repo.CreatedAt,
		UpdatedAt:        nullTime(repo.UpdatedAt),
		LastBuildAt:      nullTime(repo.LastBuildAt),
	}

	return nil
}

func pgRepositoriesToDomain(rows []PgRepository) ([]domain.Repository, error) {
	out := make([]domain.Repository, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}

	return out, nil
}

type PgIntegration struct {
	ID           uuid.UUID `db:"id"            goqu:"skipinsert"`
	RepositoryID uuid.UUID `db:"repository_id"`
	Platform     string    `db:"platform"`

	Config         string         `db:"config"`
	TokenEncrypted sql.NullString `db:"token_encrypted"`
	IsActive       bool           `db:"is_active"`
	LastUsedAt     sql.NullTime   `db:"last_used_at"`
	WebhookURL     sql.NullString `db:"webhook_url"`
	Settings       string         `db:"settings"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgIntegration) ToDomain() (*domain.Integration, error) {
	var config, settings map[string]any
	if err := unmarshalJSON(p.Config, &config); err != nil {
		return nil, err
	}
	if err := unmarshalJSON(p.Settings, &settings); err != nil {
		return nil, err
	}

	return &domain.Integration{
		ID:             domain.IntegrationID(p.ID),
		RepositoryID:   domain.RepositoryID(p.RepositoryID),
		Platform:       domain.Platform(p.Platform),
		Config:         config,
		TokenEncrypted: p.TokenEncrypted.String,
		IsActive:       p.IsActive,
		LastUsedAt:     p.LastUsedAt.Time,
		WebhookURL:     p.WebhookURL.String,
		Settings:       settings,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt.Time,
	}, nil
}

func (p *PgIntegration) FromDomain(integration domain.Integration) error {
	config, err := marshalJSON(integration.Config, "{}")
	if err != nil {
		return err
	}
	settings, err := marshalJSON(integration.Settings, "{}")
	if err != nil {
		return err
	}

	*p = PgIntegration{
		ID:             uuid.UUID(integration.ID),
		RepositoryID:   uuid.UUID(integration.RepositoryID),
		Platform:       string(integration.Platform),
		Config:         config,
		TokenEncrypted: nullString(integration.TokenEncrypted),
		IsActive:       integration.IsActive,
		LastUsedAt:     nullTime(integration.LastUsedAt),
		WebhookURL:     nullString(integration.WebhookURL),
		Settings:       settings,
		CreatedAt:      integration.CreatedAt,
		UpdatedAt:      nullTime(integration.UpdatedAt),
	}

	return nil
}

func pgIntegrationsToDomain(rows []PgIntegration) ([]domain.Integration, error) {
	out := make([]domain.Integration, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}

	return out, nil
}

type PgBuild struct {
	ID            uuid.UUID     `db:"id"             goqu:"skipinsert"`
	RepositoryID  uuid.UUID     `db:"repository_id"`
	IntegrationID uuid.NullUUID `db:"integration_id"`
	RetryOf       uuid.NullUUID `db:"retry_of"`

	Branch            string         `db:"branch"`
	CommitSHA         sql.NullString `db:"commit_sha"`
	PlatformBuildID   sql.NullString `db:"platform_build_id"`
	PullRequestNumber sql.NullInt64  `db:"pull_request_number"`
	Trigger           string         `db:"trigger_type"`
	Status            string         `db:"status"`

	StartedAt       sql.NullTime  `db:"started_at"`
	FinishedAt      sql.NullTime  `db:"finished_at"`
	DurationSeconds sql.NullInt64 `db:"duration_seconds"`

	LogsURL      sql.NullString  `db:"logs_url"`
	LogsContent  sql.NullString  `db:"logs_content"`
	ErrorLogs    sql.NullString  `db:"error_logs"`
	TestResults  string          `db:"test_results"`
	Coverage     sql.NullFloat64 `db:"coverage"`
	ArtifactsURL sql.NullString  `db:"artifacts_url"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgBuild) ToDomain() (*domain.Build, error) {
	var results map[string]any
	if err := unmarshalJSON(p.TestResults, &results); err != nil {
		return nil, err
	}

	return &domain.Build{
		ID:                domain.BuildID(p.ID),
		RepositoryID:      domain.RepositoryID(p.RepositoryID),
		IntegrationID:     domain.IntegrationID(p.IntegrationID.UUID),
		RetryOf:           domain.BuildID(p.RetryOf.UUID),
		Branch:            p.Branch,
		CommitSHA:         p.CommitSHA.String,
		PlatformBuildID:   p.PlatformBuildID.String,
		PullRequestNumber: int(p.PullRequestNumber.Int64),
		Trigger:           domain.TriggerType(p.Trigger),
		Status:            domain.BuildStatus(p.Status),
		StartedAt:         p.StartedAt.Time,
		FinishedAt:        p.FinishedAt.Time,
		DurationSeconds:   p.DurationSeconds.Int64,
		LogsURL:           p.LogsURL.String,
		LogsContent:       p.LogsContent.String,
		ErrorLogs:         p.ErrorLogs.String,
		TestResults:       results,
		Coverage:          p.Coverage.Float64,
		ArtifactsURL:      p.ArtifactsURL.String,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt.Time,
	}, nil
}

func (p *PgBuild) FromDomain(build domain.Build) error {
	results, err := marshalJSON(build.TestResults, "{}")
	if err != nil {
		return err
	}

	*p = PgBuild{
		ID:           uuid.UUID(build.ID),
		RepositoryID: uuid.UUID(build.RepositoryID),
		IntegrationID: uuid.NullUUID{
			UUID:  uuid.UUID(build.IntegrationID),
			Valid: !build.IntegrationID.IsZero(),
		},
		RetryOf: uuid.NullUUID{
			UUID:  uuid.UUID(build.RetryOf),
			Valid: !build.RetryOf.IsZero(),
		},
		Branch:          build.Branch,
		CommitSHA:       nullString(build.CommitSHA),
		PlatformBuildID: nullString(build.PlatformBuildID),
		PullRequestNumber: sql.NullInt64{
			Int64: int64(build.PullRequestNumber),
			Valid: build.PullRequestNumber != 0,
		},
		Trigger:    string(build.Trigger),
		Status:     string(build.Status),
		StartedAt:  nullTime(build.StartedAt),
		FinishedAt: nullTime(build.FinishedAt),
		DurationSeconds: sql.NullInt64{
			Int64: build.DurationSeconds,
			Valid: !build.FinishedAt.IsZero(),
		},
		LogsURL:     nullString(build.LogsURL),
		LogsContent: nullString(build.LogsContent),
		ErrorLogs:   nullString(build.ErrorLogs),
		TestResults: results,
		Coverage: sql.NullFloat64{
			Float64: build.Coverage,
			Valid:   build.Coverage != 0,
		},
		ArtifactsURL: nullString(build.ArtifactsURL),
		CreatedAt:    build.CreatedAt,
		UpdatedAt:    nullTime(build.UpdatedAt),
	}

	return nil
}

func pgBuildsToDomain(rows []PgBuild) ([]domain.Build, error) {
	out := make([]domain.Build, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}

	return out, nil
}

type PgFixAttempt struct {
	ID            uuid.UUID `db:"id"             goqu:"skipinsert"`
	BuildID       uuid.UUID `db:"build_id"`
	AttemptNumber int       `db:"attempt_number"`
	FixType       string    `db:"fix_type"`
	Status        string    `db:"status"`

	ErrorPattern  sql.NullString `db:"error_pattern"`
	ErrorMessage  sql.NullString `db:"error_message"`
	Analysis      string         `db:"analysis"`
	FixSuggestion sql.NullString `db:"fix_suggestion"`

	FilesChanged   string         `db:"files_changed"`
	ChangesSummary sql.NullString `db:"changes_summary"`
	Diff           sql.NullString `db:"diff"`

	BranchName        sql.NullString `db:"branch_name"`
	CommitSHA         sql.NullString `db:"commit_sha"`
	PullRequestURL    sql.NullString `db:"pull_request_url"`
	PullRequestNumber sql.NullInt64  `db:"pull_request_number"`

	ConfidenceScore  int            `db:"confidence_score"`
	RequiresApproval bool           `db:"requires_approval"`
	Notes            sql.NullString `db:"notes"`

	AppliedAt  sql.NullTime `db:"applied_at"`
	RevertedAt sql.NullTime `db:"reverted_at"`
	CreatedAt  time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt  sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgFixAttempt) ToDomain() (*domain.FixAttempt, error) {
	var analysis domain.ErrorMatch
	if err := unmarshalJSON(p.Analysis, &analysis); err != nil {
		return nil, err
	}
	var files []string
	if err := unmarshalJSON(p.FilesChanged, &files); err != nil {
		return nil, err
	}

	return &domain.FixAttempt{
		ID:                domain.FixAttemptID(p.ID),
		BuildID:           domain.BuildID(p.BuildID),
		AttemptNumber:     p.AttemptNumber,
		Type:              domain.FixType(p.FixType),
		Status:            domain.FixStatus(p.Status),
		ErrorPattern:      p.ErrorPattern.String,
		ErrorMessage:      p.ErrorMessage.String,
		Analysis:          analysis,
		FixSuggestion:     p.FixSuggestion.String,
		FilesChanged:      files,
		ChangesSummary:    p.ChangesSummary.String,
		Diff:              p.Diff.String,
		BranchName:        p.BranchName.String,
		CommitSHA:         p.CommitSHA.String,
		PullRequestURL:    p.PullRequestURL.String,
		PullRequestNumber: int(p.PullRequestNumber.Int64),
		ConfidenceScore:   p.ConfidenceScore,
		RequiresApproval:  p.RequiresApproval,
		Notes:             p.Notes.String,
		AppliedAt:         p.AppliedAt.Time,
		RevertedAt:        p.RevertedAt.Time,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt.Time,
	}, nil
}

func (p *PgFixAttempt) FromDomain(attempt domain.FixAttempt) error {
	analysis, err := marshalJSON(attempt.Analysis, "{}")
	if err != nil {
		return err
	}
	files := "[]"
	if len(attempt.FilesChanged) > 0 {
		if files, err = marshalJSON(attempt.FilesChanged, "[]"); err != nil {
			return err
		}
	}

	*p = PgFixAttempt{
		ID:             uuid.UUID(attempt.ID),
		BuildID:        uuid.UUID(attempt.BuildID),
		AttemptNumber:  attempt.AttemptNumber,
		FixType:        string(attempt.Type),
		Status:         string(attempt.Status),
		ErrorPattern:   nullString(attempt.ErrorPattern),
		ErrorMessage:   nullString(attempt.ErrorMessage),
		Analysis:       analysis,
		FixSuggestion:  nullString(attempt.FixSuggestion),
		FilesChanged:   files,
		ChangesSummary: nullString(attempt.ChangesSummary),
		Diff:           nullString(attempt.Diff),
		BranchName:     nullString(attempt.BranchName),
		CommitSHA:      nullString(attempt.CommitSHA),
		PullRequestURL: nullString(attempt.PullRequestURL),
		PullRequestNumber: sql.NullInt64{
			Int64: int64(attempt.PullRequestNumber),
			Valid: attempt.PullRequestNumber != 0,
		},
		ConfidenceScore:  attempt.ConfidenceScore,
		RequiresApproval: attempt.RequiresApproval,
		Notes:            nullString(attempt.Notes),
		AppliedAt:        nullTime(attempt.AppliedAt),
		RevertedAt:       nullTime(attempt.RevertedAt),
		CreatedAt:        attempt.CreatedAt,
		UpdatedAt:        nullTime(attempt.UpdatedAt),
	}

	return nil
}

func domainFixAttemptsToPg(attempts []domain.FixAttempt) ([]PgFixAttempt, error) {
	out := make([]PgFixAttempt, len(attempts))
	for i := range out {
		if err := out[i].FromDomain(attempts[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgFixAttemptsToDomain(rows []PgFixAttempt) ([]domain.FixAttempt, error) {
	out := make([]domain.FixAttempt, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}

	return out, nil
}

type PgAuditLog struct {
	ID int64 `db:"id" goqu:"skipinsert"`

	ActorType string         `db:"actor_type"`
	ActorID   sql.NullString `db:"actor_id"`
	ActorName sql.NullString `db:"actor_name"`

	Action       string         `db:"action"`
	ResourceType sql.NullString `db:"resource_type"`
	ResourceID   sql.NullString `db:"resource_id"`
	ResourceName sql.NullString `db:"resource_name"`

	Details     string         `db:"details"`
	Description sql.NullString `db:"description"`
	IPAddress   sql.NullString `db:"ip_address"`
	UserAgent   sql.NullString `db:"user_agent"`

	Success      bool           `db:"success"`
	ErrorMessage sql.NullString `db:"error_message"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgAuditLog) ToDomain() (*domain.AuditLog, error) {
	var details map[string]any
	if err := unmarshalJSON(p.Details, &details); err != nil {
		return nil, err
	}

	return &domain.AuditLog{
		ID:           p.ID,
		ActorType:    domain.ActorType(p.ActorType),
		ActorID:      p.ActorID.String,
		ActorName:    p.ActorName.String,
		Action:       domain.AuditAction(p.Action),
		ResourceType: p.ResourceType.String,
		ResourceID:   p.ResourceID.String,
		ResourceName: p.ResourceName.String,
		Details:      details,
		Description:  p.Description.String,
		IPAddress:    p.IPAddress.String,
		UserAgent:    p.UserAgent.String,
		Success:      p.Success,
		ErrorMessage: p.ErrorMessage.String,
		CreatedAt:    p.CreatedAt,
	}, nil
}

func (p *PgAuditLog) FromDomain(log domain.AuditLog) error {
	details, err := marshalJSON(log.Details, "{}")
	if err != nil {
		return err
	}
	actorType := log.ActorType
	if actorType == "" {
		actorType = domain.ActorSystem
	}

	*p = PgAuditLog{
		ID:           log.ID,
		ActorType:    string(actorType),
		ActorID:      nullString(log.ActorID),
		ActorName:    nullString(log.ActorName),
		Action:       string(log.Action),
		ResourceType: nullString(log.ResourceType),
		ResourceID:   nullString(log.ResourceID),
		ResourceName: nullString(log.ResourceName),
		Details:      details,
		Description:  nullString(log.Description),
		IPAddress:    nullString(log.IPAddress),
		UserAgent:    nullString(log.UserAgent),
		Success:      log.Success,
		ErrorMessage: nullString(log.ErrorMessage),
		CreatedAt:    log.CreatedAt,
	}

	return nil
}
