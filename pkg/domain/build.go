package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BuildID uniquely identifies a build.
type BuildID uuid.UUID

// String returns the canonical UUID form.
func (id BuildID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether the id is unset.
func (id BuildID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// BuildStatus is the lifecycle state of a build.
type BuildStatus string

const (
	BuildStatusPending   BuildStatus = "pending"
	BuildStatusRunning   BuildStatus = "running"
	BuildStatusSuccess   BuildStatus = "success"
	BuildStatusFailed    BuildStatus = "failed"
	BuildStatusCancelled BuildStatus = "cancelled"
	BuildStatusTimeout   BuildStatus = "timeout"
)

// Valid reports whether s is a known status.
func (s BuildStatus) Valid() bool {
	switch s {
	case BuildStatusPending, BuildStatusRunning, BuildStatusSuccess,
		BuildStatusFailed, BuildStatusCancelled, BuildStatusTimeout:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether a build in this status will not change anymore.
func (s BuildStatus) IsTerminal() bool {
	switch s {
	case BuildStatusSuccess, BuildStatusFailed, BuildStatusCancelled, BuildStatusTimeout:
		return true
	default:
		return false
	}
}

// IsActive reports whether the build is queued or running.
func (s BuildStatus) IsActive() bool {
	return s == BuildStatusPending || s == BuildStatusRunning
}

// ActiveBuildStatuses are the statuses that block repository and integration removal.
var ActiveBuildStatuses = []BuildStatus{BuildStatusPending, BuildStatusRunning} //nolint: gochecknoglobals

// TriggerType describes what started a build.
type TriggerType string

const (
	TriggerPush        TriggerType = "push"
	TriggerPullRequest TriggerType = "pull_request"
	TriggerManual      TriggerType = "manual"
	TriggerRetry       TriggerType = "retry"
	TriggerAutoFix     TriggerType = "auto_fix"
	TriggerWebhook     TriggerType = "webhook"
)

// Build is a single CI run of a repository branch on an integration.
type Build struct {
	ID            BuildID
	RepositoryID  RepositoryID
	IntegrationID IntegrationID
	// RetryOf points to the build this one re-runs. Zero when it is not a retry.
	RetryOf BuildID

	Branch            string
	CommitSHA         string
	PlatformBuildID   string
	PullRequestNumber int
	Trigger           TriggerType
	Status            BuildStatus

	StartedAt       time.Time
	FinishedAt      time.Time
	DurationSeconds int64

	LogsURL      string
	LogsContent  string
	ErrorLogs    string
	TestResults  map[string]any
	Coverage     float64
	ArtifactsURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Start marks the build as running.
func (b *Build) Start(at time.Time) {
	b.Status = BuildStatusRunning
	b.StartedAt = at
}

// Finish moves the build to a terminal status and computes its duration from
// StartedAt when known.
func (b *Build) Finish(status BuildStatus, at time.Time) {
	b.Status = status
	b.FinishedAt = at
	if !b.StartedAt.IsZero() && at.After(b.StartedAt) {
		b.DurationSeconds = int64(at.Sub(b.StartedAt) / time.Second)
	}
}

// DurationFormatted renders the duration as HH:MM:SS, or MM:SS for builds
// shorter than an hour. Builds without a duration render as an empty string.
func (b Build) DurationFormatted() string {
	if b.DurationSeconds <= 0 {
		return ""
	}
	hours := b.DurationSeconds / 3600
	minutes := (b.DurationSeconds % 3600) / 60
	seconds := b.DurationSeconds % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}

	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// TruncatedMarker terminates a shortened log summary.
const TruncatedMarker = "... [truncated]"

// LogsSummary keeps whole log lines while their cumulative length (newlines
// excluded) stays within maxLength, then appends TruncatedMarker.
func (b Build) LogsSummary(maxLength int) string {
	if b.LogsContent == "" {
		return ""
	}

	lines := strings.Split(b.LogsContent, "\n")
	out := make([]string, 0, len(lines))
	length := 0
	for _, line := range lines {
		if length+len(line) > maxLength {
			out = append(out, TruncatedMarker)

			break
		}
		out = append(out, line)
		length += len(line)
	}

	return strings.Join(out, "\n")
}
