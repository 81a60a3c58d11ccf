package postgres

import (
	"context"
	"fmt"

	"autobuilder/pkg/domain"
	"autobuilder/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

const defaultAuditLimit = 100

func (p *PgSQL) StoreAuditLog(ctx context.Context, log domain.AuditLog) (*domain.AuditLog, error) {
	var row PgAuditLog
	if err := row.FromDomain(log); err != nil {
		return nil, err
	}

	var result PgAuditLog
	if _, err := p.Builder.Insert(auditLogsTable).
		Rows(row).
		Returning(&PgAuditLog{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store audit log into pg: %w", err)
	}

	return result.ToDomain()
}

func (p *PgSQL) ListAuditLogs(ctx context.Context, filter storage.AuditFilter) ([]domain.AuditLog, error) {
	var w []goqu.Expression
	if filter.ActionContains != "" {
		w = append(w, goqu.I("action").Like("%"+filter.ActionContains+"%"))
	}
	if filter.ResourceType != "" {
		w = append(w, goqu.I("resource_type").Eq(filter.ResourceType))
	}
	if filter.ResourceID != "" {
		w = append(w, goqu.I("resource_id").Eq(filter.ResourceID))
	}
	limit := filter.Limit
	if limit == 0 {
		limit = defaultAuditLimit
	}

	var rows []PgAuditLog
	if err := p.Builder.From(auditLogsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list audit logs: %w", err)
	}

	out := make([]domain.AuditLog, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}

	return out, nil
}
