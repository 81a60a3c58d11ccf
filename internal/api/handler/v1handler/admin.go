package v1handler

import (
	"net/http"
	"time"

	"autobuilder/pkg/domain"
	"autobuilder/pkg/serrors"
	"autobuilder/pkg/storage"
)

// Admin bounds.
const (
	DefaultAuditLimit  = 50
	MaxAuditLimit      = 100
	DefaultCleanupDays = 30
	day                = 24 * time.Hour
)

type RetryFailedResponse struct {
	Retried int `json:"retried"`
}

type CleanupResponse struct {
	Deleted       int64 `json:"deleted"`
	OlderThanDays uint  `json:"older_than_days"`
}

// AuditLogs lists audit entries, newest first.
func (h *Handler) AuditLogs(r *http.Request) (*Response, error) {
	limit, err := uintQuery(r, "limit")
	if err != nil {
		return nil, err
	}
	switch {
	case limit == 0:
		limit = DefaultAuditLimit
	case limit > MaxAuditLimit:
		return nil, serrors.With(serrors.ErrBadRequest, "limit must be between 1 and %d", MaxAuditLimit)
	}

	q := r.URL.Query()
	logs, err := h.deps.Audit.ListAuditLogs(r.Context(), storage.AuditFilter{
		ActionContains: q.Get("action"),
		ResourceType:   q.Get("resource_type"),
		ResourceID:     q.Get("resource_id"),
		Limit:          limit,
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	items := DomainAuditLogsToV1(logs)

	return ok(List[AuditLog]{Items: items, Total: int64(len(items)), Limit: limit}), nil
}

func (h *Handler) RetryFailedBuilds(r *http.Request) (*Response, error) {
	repoID, err := optionalUUID(r, "repository_id")
	if err != nil {
		return nil, err
	}

	n, err := h.deps.Builds.RetryFailed(r.Context(), domain.RepositoryID(repoID))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return ok(RetryFailedResponse{Retried: n}), nil
}

func (h *Handler) CleanupBuilds(r *http.Request) (*Response, error) {
	days, err := uintQuery(r, "older_than_days")
	if err != nil {
		return nil, err
	}
	if days == 0 {
		days = DefaultCleanupDays
	}

	n, err := h.deps.Builds.Cleanup(r.Context(), time.Duration(days)*day)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return ok(CleanupResponse{Deleted: n, OlderThanDays: days}), nil
}
