package domain

import "time"

// ActorType tells who performed an audited action.
type ActorType string

const (
	ActorSystem ActorType = "system"
	ActorUser   ActorType = "user"
	ActorGitHub ActorType = "github"
	ActorAPI    ActorType = "api"
)

// AuditAction names an audited action.
type AuditAction string

const (
	AuditWebhookReceived     AuditAction = "webhook_received"
	AuditPushReceived        AuditAction = "push_received"
	AuditPushUnregistered    AuditAction = "push_received_unregistered_repo"
	AuditPullRequestReceived AuditAction = "pull_request_received"
	AuditIssueReceived       AuditAction = "issue_received"
	AuditEventReceived       AuditAction = "event_received"
	AuditRepositoryLinked    AuditAction = "repository_linked"
	AuditRepositoryUpdated   AuditAction = "repository_updated"
	AuditRepositoryDeleted   AuditAction = "repository_deleted"
	AuditIntegrationAdded    AuditAction = "integration_added"
	AuditIntegrationUpdated  AuditAction = "integration_updated"
	AuditIntegrationDeleted  AuditAction = "integration_deleted"
	AuditBuildTriggered      AuditAction = "build_triggered"
	AuditBuildCompleted      AuditAction = "build_completed"
	AuditFixAttempted        AuditAction = "fix_attempted"
	AuditFixApplied          AuditAction = "fix_applied"
	AuditFixReverted         AuditAction = "fix_reverted"
	AuditPullRequestCreated  AuditAction = "pr_created"
	AuditPullRequestMerged   AuditAction = "pr_merged"
	AuditSettingsUpdated     AuditAction = "settings_updated"
	AuditAPIRequest          AuditAction = "api_request"
	AuditErrorOccurred       AuditAction = "error_occurred"
)

// AuditLog is an immutable record of something that happened in the system.
type AuditLog struct {
	ID int64

	ActorType ActorType
	ActorID   string
	ActorName string

	Action       AuditAction
	ResourceType string
	ResourceID   string
	ResourceName string

	Details     map[string]any
	Description string
	IPAddress   string
	UserAgent   string

	Success      bool
	ErrorMessage string

	CreatedAt time.Time
}

// SystemAudit builds a successful audit entry performed by the system.
func SystemAudit(action AuditAction, resourceType, resourceID, description string) AuditLog {
	return AuditLog{
		ActorType:    ActorSystem,
		ActorName:    "autobuilder",
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Description:  description,
		Success:      true,
	}
}
