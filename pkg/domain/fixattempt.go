package domain

import (
	"time"

	"github.com/google/uuid"
)

// FixAttemptID uniquely identifies a fix attempt.
type FixAttemptID uuid.UUID

// String returns the canonical UUID form.
func (id FixAttemptID) String() string { return uuid.UUID(id).String() }

// FixType classifies the remedy proposed for a build failure.
type FixType string

const (
	FixTypeDependencyUpdate FixType = "dependency_update"
	FixTypeConfigFix        FixType = "config_fix"
	FixTypeCodeFormatting   FixType = "code_formatting"
	FixTypeSyntaxFix        FixType = "syntax_fix"
	FixTypeMissingFile      FixType = "missing_file"
	FixTypeEnvironmentFix   FixType = "environment_fix"
	FixTypePermissionFix    FixType = "permission_fix"
	FixTypeLLMSuggestion    FixType = "llm_suggestion"
)

// FixStatus is the lifecycle state of a fix attempt.
type FixStatus string

const (
	FixStatusPending   FixStatus = "pending"
	FixStatusApplied   FixStatus = "applied"
	FixStatusFailed    FixStatus = "failed"
	FixStatusReverted  FixStatus = "reverted"
	FixStatusCancelled FixStatus = "cancelled"
)

// ApprovalThreshold is the confidence below which a fix needs a human approval.
const ApprovalThreshold = 80

// ErrorMatch is a single occurrence of a known failure pattern in build logs.
type ErrorMatch struct {
	Rule         string  `json:"rule"`
	Description  string  `json:"description"`
	FixType      FixType `json:"fixType"`
	Confidence   int     `json:"confidence"`
	ErrorMessage string  `json:"errorMessage"`
	MatchedText  string  `json:"matchedText"`
	LineNumber   int     `json:"lineNumber"`
}

// FixAttempt records an automatic remedy for a failed build.
type FixAttempt struct {
	ID      FixAttemptID
	BuildID BuildID
	// AttemptNumber is sequential per build, starting at 1.
	AttemptNumber int
	Type          FixType
	Status        FixStatus

	ErrorPattern  string
	ErrorMessage  string
	Analysis      ErrorMatch
	FixSuggestion string

	FilesChanged   []string
	ChangesSummary string
	Diff           string

	BranchName        string
	CommitSHA         string
	PullRequestURL    string
	PullRequestNumber int

	ConfidenceScore  int
	RequiresApproval bool
	Notes            string

	AppliedAt  time.Time
	RevertedAt time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ConfidenceLevel buckets ConfidenceScore into high, medium, low and very_low.
func (f FixAttempt) ConfidenceLevel() string {
	switch {
	case f.ConfidenceScore >= 80:
		return "high"
	case f.ConfidenceScore >= 60:
		return "medium"
	case f.ConfidenceScore >= 40:
		return "low"
	default:
		return "very_low"
	}
}

// MarkApplied records a successful application.
func (f *FixAttempt) MarkApplied(at time.Time) {
	f.Status = FixStatusApplied
	f.AppliedAt = at
}

// MarkFailed records a failed application and appends the reason to the notes.
func (f *FixAttempt) MarkFailed(reason string) {
	f.Status = FixStatusFailed
	if reason == "" {
		return
	}
	line := "failure reason: " + reason
	if f.Notes == "" {
		f.Notes = line

		return
	}
	f.Notes += "\n" + line
}

// MarkReverted records that an applied fix was rolled back.
func (f *FixAttempt) MarkReverted(at time.Time) {
	f.Status = FixStatusReverted
	f.RevertedAt = at
}
