package storage

import (
	"context"

	"autobuilder/pkg/domain"
)

// AuditFilter narrows audit listings. Zero values do not filter.
type AuditFilter struct {
	// ActionContains matches actions containing the substring.
	ActionContains string
	ResourceType   string
	ResourceID     string
	Limit          uint
}

// AuditStorage persists the append-only audit trail.
type AuditStorage interface {
	StoreAuditLog(ctx context.Context, log domain.AuditLog) (*domain.AuditLog, error)
	// ListAuditLogs returns entries newest first.
	ListAuditLogs(ctx context.Context, filter AuditFilter) ([]domain.AuditLog, error)
}
