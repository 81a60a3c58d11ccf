package v1handler

import (
	"time"

	"autobuilder/internal/builds"
	"autobuilder/internal/catalog"
	"autobuilder/internal/health"
	"autobuilder/pkg/domain"
)

// LogsSummaryLength bounds the log excerpt embedded in build listings.
const LogsSummaryLength = 500

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}

type Repository struct {
	ID               string         `json:"id"`
	Owner            string         `json:"owner"`
	Name             string         `json:"name"`
	FullName         string         `json:"full_name"`
	GitHubRepoID     int64          `json:"github_repo_id"`
	GitHubURL        string         `json:"github_url"`
	Description      string         `json:"description"`
	DefaultLanguage  string         `json:"default_language"`
	IsPrivate        bool           `json:"is_private"`
	AutoFixEnabled   bool           `json:"auto_fix_enabled"`
	AutoFixSafeOnly  bool           `json:"auto_fix_safe_only"`
	AutoMergeEnabled bool           `json:"auto_merge_enabled"`
	PrimaryBranch    string         `json:"primary_branch"`
	Settings         map[string]any `json:"settings"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	LastBuildAt      *time.Time     `json:"last_build_at"`
}

func DomainRepositoryToV1(r *domain.Repository) Repository {
	settings := r.Settings
	if settings == nil {
		settings = map[string]any{}
	}

	return Repository{
		ID:               r.ID.String(),
		Owner:            r.Owner,
		Name:             r.Name,
		FullName:         r.FullName,
		GitHubRepoID:     r.GitHubRepoID,
		GitHubURL:        r.GitHubURL(),
		Description:      r.Description,
		DefaultLanguage:  r.DefaultLanguage,
		IsPrivate:        r.IsPrivate,
		AutoFixEnabled:   r.AutoFixEnabled,
		AutoFixSafeOnly:  r.AutoFixSafeOnly,
		AutoMergeEnabled: r.AutoMergeEnabled,
		PrimaryBranch:    r.PrimaryBranch,
		Settings:         settings,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
		LastBuildAt:      timePtr(r.LastBuildAt),
	}
}

type Integration struct {
	ID           string         `json:"id"`
	RepositoryID string         `json:"repository_id"`
	Platform     string         `json:"platform"`
	PlatformName string         `json:"platform_name"`
	Config       map[string]any `json:"config,omitempty"`
	HasToken     bool           `json:"has_token"`
	IsActive     bool           `json:"is_active"`
	LastUsedAt   *time.Time     `json:"last_used_at"`
	WebhookURL   string         `json:"webhook_url"`
	Settings     map[string]any `json:"settings"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// DomainIntegrationToV1 converts an integration. The config is masked and
// only included when withConfig is set.
func DomainIntegrationToV1(i *domain.Integration, withConfig bool) Integration {
	settings := i.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	out := Integration{
		ID:           i.ID.String(),
		RepositoryID: i.RepositoryID.String(),
		Platform:     string(i.Platform),
		PlatformName: i.Platform.DisplayName(),
		HasToken:     i.TokenEncrypted != "",
		IsActive:     i.IsActive,
		LastUsedAt:   timePtr(i.LastUsedAt),
		WebhookURL:   i.WebhookURL,
		Settings:     settings,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
	if withConfig {
		out.Config = i.MaskedConfig()
	}

	return out
}

type Build struct {
	ID                string         `json:"id"`
	RepositoryID      string         `json:"repository_id"`
	IntegrationID     string         `json:"integration_id"`
	RetryOf           *string        `json:"retry_of"`
	Branch            string         `json:"branch"`
	CommitSHA         string         `json:"commit_sha"`
	PlatformBuildID   string         `json:"platform_build_id"`
	PullRequestNumber int            `json:"pull_request_number,omitempty"`
	TriggerType       string         `json:"trigger_type"`
	Status            string         `json:"status"`
	StartedAt         *time.Time     `json:"started_at"`
	FinishedAt        *time.Time     `json:"finished_at"`
	DurationSeconds   int64          `json:"duration_seconds"`
	DurationFormatted string         `json:"duration_formatted"`
	LogsURL           string         `json:"logs_url"`
	LogsSummary       string         `json:"logs_summary"`
	ErrorLogs         string         `json:"error_logs"`
	TestResults       map[string]any `json:"test_results,omitempty"`
	Coverage          float64        `json:"coverage"`
	ArtifactsURL      string         `json:"artifacts_url"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func DomainBuildToV1(b *domain.Build) Build {
	out := Build{
		ID:                b.ID.String(),
		RepositoryID:      b.RepositoryID.String(),
		IntegrationID:     b.IntegrationID.String(),
		Branch:            b.Branch,
		CommitSHA:         b.CommitSHA,
		PlatformBuildID:   b.PlatformBuildID,
		PullRequestNumber: b.PullRequestNumber,
		TriggerType:       string(b.Trigger),
		Status:            string(b.Status),
		StartedAt:         timePtr(b.StartedAt),
		FinishedAt:        timePtr(b.FinishedAt),
		DurationSeconds:   b.DurationSeconds,
		DurationFormatted: b.DurationFormatted(),
		LogsURL:           b.LogsURL,
		LogsSummary:       b.LogsSummary(LogsSummaryLength),
		ErrorLogs:         b.ErrorLogs,
		TestResults:       b.TestResults,
		Coverage:          b.Coverage,
		ArtifactsURL:      b.ArtifactsURL,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
	if !b.RetryOf.IsZero() {
		id := b.RetryOf.String()
		out.RetryOf = &id
	}

	return out
}

func DomainBuildsToV1(in []domain.Build) []Build {
	out := make([]Build, 0, len(in))
	for i := range in {
		out = append(out, DomainBuildToV1(&in[i]))
	}

	return out
}

type FixAttempt struct {
	ID                string            `json:"id"`
	BuildID           string            `json:"build_id"`
	AttemptNumber     int               `json:"attempt_number"`
	FixType           string            `json:"fix_type"`
	Status            string            `json:"status"`
	ErrorPattern      string            `json:"error_pattern"`
	ErrorMessage      string            `json:"error_message"`
	Analysis          domain.ErrorMatch `json:"analysis"`
	FixSuggestion     string            `json:"fix_suggestion"`
	FilesChanged      []string          `json:"files_changed"`
	ChangesSummary    string            `json:"changes_summary"`
	BranchName        string            `json:"branch_name"`
	CommitSHA         string            `json:"commit_sha"`
	PullRequestURL    string            `json:"pull_request_url"`
	PullRequestNumber int               `json:"pull_request_number,omitempty"`
	ConfidenceScore   int               `json:"confidence_score"`
	ConfidenceLevel   string            `json:"confidence_level"`
	RequiresApproval  bool              `json:"requires_approval"`
	Notes             string            `json:"notes"`
	AppliedAt         *time.Time        `json:"applied_at"`
	RevertedAt        *time.Time        `json:"reverted_at"`
	CreatedAt         time.Time         `json:"created_at"`
}

func DomainFixAttemptToV1(f *domain.FixAttempt) FixAttempt {
	files := f.FilesChanged
	if files == nil {
		files = []string{}
	}

	return FixAttempt{
		ID:                f.ID.String(),
		BuildID:           f.BuildID.String(),
		AttemptNumber:     f.AttemptNumber,
		FixType:           string(f.Type),
		Status:            string(f.Status),
		ErrorPattern:      f.ErrorPattern,
		ErrorMessage:      f.ErrorMessage,
		Analysis:          f.Analysis,
		FixSuggestion:     f.FixSuggestion,
		FilesChanged:      files,
		ChangesSummary:    f.ChangesSummary,
		BranchName:        f.BranchName,
		CommitSHA:         f.CommitSHA,
		PullRequestURL:    f.PullRequestURL,
		PullRequestNumber: f.PullRequestNumber,
		ConfidenceScore:   f.ConfidenceScore,
		ConfidenceLevel:   f.ConfidenceLevel(),
		RequiresApproval:  f.RequiresApproval,
		Notes:             f.Notes,
		AppliedAt:         timePtr(f.AppliedAt),
		RevertedAt:        timePtr(f.RevertedAt),
		CreatedAt:         f.CreatedAt,
	}
}

type BuildDetails struct {
	Build
	LogsContent string       `json:"logs_content"`
	FixAttempts []FixAttempt `json:"fix_attempts"`
}

func BuildDetailsToV1(d *builds.Details) BuildDetails {
	attempts := make([]FixAttempt, 0, len(d.FixAttempts))
	for i := range d.FixAttempts {
		attempts = append(attempts, DomainFixAttemptToV1(&d.FixAttempts[i]))
	}

	return BuildDetails{
		Build:       DomainBuildToV1(&d.Build),
		LogsContent: d.Build.LogsContent,
		FixAttempts: attempts,
	}
}

// List is a paginated listing.
type List[T any] struct {
	Items   []T   `json:"items"`
	Total   int64 `json:"total"`
	Limit   uint  `json:"limit"`
	Offset  uint  `json:"offset"`
	HasMore bool  `json:"has_more"`
}

type Statistics struct {
	PeriodDays   int    `json:"period_days"`
	RepositoryID string `json:"repository_id,omitempty"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Totals       struct {
		TotalBuilds      int64 `json:"total_builds"`
		SuccessfulBuilds int64 `json:"successful_builds"`
		FailedBuilds     int64 `json:"failed_builds"`
		RunningBuilds    int64 `json:"running_builds"`
		PendingBuilds    int64 `json:"pending_builds"`
	} `json:"totals"`
	Rates struct {
		SuccessRate float64 `json:"success_rate"`
		FailureRate float64 `json:"failure_rate"`
	} `json:"rates"`
	Performance struct {
		AverageDurationSeconds   float64 `json:"average_duration_seconds"`
		AverageDurationFormatted string  `json:"average_duration_formatted"`
	} `json:"performance"`
	TriggerBreakdown map[string]int64 `json:"trigger_breakdown"`
}

func StatisticsToV1(s *builds.Statistics) Statistics {
	var out Statistics
	out.PeriodDays = s.Days
	if !s.RepositoryID.IsZero() {
		out.RepositoryID = s.RepositoryID.String()
	}
	out.StartDate = s.Start.Format(time.RFC3339)
	out.EndDate = s.End.Format(time.RFC3339)
	out.Totals.TotalBuilds = s.Total
	out.Totals.SuccessfulBuilds = s.Successful
	out.Totals.FailedBuilds = s.Failed
	out.Totals.RunningBuilds = s.Running
	out.Totals.PendingBuilds = s.Pending
	out.Rates.SuccessRate = s.SuccessRate
	out.Rates.FailureRate = s.FailureRate
	out.Performance.AverageDurationSeconds = s.AverageDurationSeconds
	out.Performance.AverageDurationFormatted = s.AverageDurationFormatted
	out.TriggerBreakdown = make(map[string]int64, len(s.Triggers))
	for k, v := range s.Triggers {
		out.TriggerBreakdown[string(k)] = v
	}

	return out
}

type AuditLog struct {
	ID           int64          `json:"id"`
	ActorType    string         `json:"actor_type"`
	ActorID      string         `json:"actor_id,omitempty"`
	ActorName    string         `json:"actor_name,omitempty"`
	Action       string         `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   string         `json:"resource_id,omitempty"`
	ResourceName string         `json:"resource_name,omitempty"`
	Details      map[string]any `json:"details,omitempty"`
	Description  string         `json:"description"`
	IPAddress    string         `json:"ip_address,omitempty"`
	UserAgent    string         `json:"user_agent,omitempty"`
	Success      bool           `json:"success"`
	ErrorMessage string         `json:"error_message,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

func DomainAuditLogsToV1(in []domain.AuditLog) []AuditLog {
	out := make([]AuditLog, 0, len(in))
	for _, l := range in {
		out = append(out, AuditLog{
			ID:           l.ID,
			ActorType:    string(l.ActorType),
			ActorID:      l.ActorID,
			ActorName:    l.ActorName,
			Action:       string(l.Action),
			ResourceType: l.ResourceType,
			ResourceID:   l.ResourceID,
			ResourceName: l.ResourceName,
			Details:      l.Details,
			Description:  l.Description,
			IPAddress:    l.IPAddress,
			UserAgent:    l.UserAgent,
			Success:      l.Success,
			ErrorMessage: l.ErrorMessage,
			CreatedAt:    l.CreatedAt,
		})
	}

	return out
}

type Component struct {
	Status    string  `json:"status"`
	Message   string  `json:"message,omitempty"`
	LatencyMS float64 `json:"latency_ms"`
}

func ComponentToV1(c health.Component) Component {
	return Component{Status: string(c.Status), Message: c.Message, LatencyMS: c.LatencyMS}
}

type HealthReport struct {
	Status     string               `json:"status"`
	Timestamp  time.Time            `json:"timestamp"`
	Components map[string]Component `json:"components"`
}

func HealthReportToV1(r health.Report) HealthReport {
	out := HealthReport{
		Status:     string(r.Status),
		Timestamp:  r.Timestamp,
		Components: make(map[string]Component, len(r.Components)),
	}
	for name, c := range r.Components {
		out.Components[name] = ComponentToV1(c)
	}

	return out
}

type RepositorySettings struct {
	AutoFix struct {
		Enabled          bool     `json:"enabled"`
		SafeOnly         bool     `json:"safe_only"`
		MaxAttempts      int      `json:"max_attempts"`
		AllowedFileTypes []string `json:"allowed_file_types"`
	} `json:"auto_fix"`
	AutoMerge struct {
		Enabled       bool   `json:"enabled"`
		PrimaryBranch string `json:"primary_branch"`
	} `json:"auto_merge"`
	Notifications struct {
		WebhookSecretConfigured bool           `json:"webhook_secret_configured"`
		Settings                map[string]any `json:"settings"`
	} `json:"notifications"`
	Security struct {
		RequireApproval bool `json:"require_approval"`
		ReviewRequired  bool `json:"review_required"`
	} `json:"security"`
}

func RepositorySettingsToV1(s *catalog.RepositorySettings) RepositorySettings {
	var out RepositorySettings
	out.AutoFix.Enabled = s.AutoFix.Enabled
	out.AutoFix.SafeOnly = s.AutoFix.SafeOnly
	out.AutoFix.MaxAttempts = s.AutoFix.MaxAttempts
	out.AutoFix.AllowedFileTypes = s.AutoFix.AllowedFileTypes
	out.AutoMerge.Enabled = s.AutoMerge.Enabled
	out.AutoMerge.PrimaryBranch = s.AutoMerge.PrimaryBranch
	out.Notifications.WebhookSecretConfigured = s.Notifications.WebhookSecretConfigured
	out.Notifications.Settings = s.Notifications.Settings
	if out.Notifications.Settings == nil {
		out.Notifications.Settings = map[string]any{}
	}
	out.Security.RequireApproval = s.Security.RequireApproval
	out.Security.ReviewRequired = s.Security.ReviewRequired

	return out
}
