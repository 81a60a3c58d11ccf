package postgres

import (
	"context"
	"fmt"

	"autobuilder/pkg/domain"
	"autobuilder/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (p *PgSQL) StoreIntegration(ctx context.Context, integration domain.Integration) (*domain.Integration, error) {
	var row PgIntegration
	if err := row.FromDomain(integration); err != nil {
		return nil, err
	}

	var result PgIntegration
	if _, err := p.Builder.Insert(integrationsTable).
		Rows(row).
		Returning(&PgIntegration{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, wrapWriteErr(err, "store integration into pg")
	}

	return result.ToDomain()
}

func (p *PgSQL) integrationWhere(ctx context.Context, where ...goqu.Expression) (*domain.Integration, error) {
	var row PgIntegration
	found, err := p.Builder.From(integrationsTable).
		Where(where...).
		Order(goqu.I("created_at").Asc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch integration: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) IntegrationByID(ctx context.Context, id domain.IntegrationID) (*domain.Integration, error) {
	return p.integrationWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) IntegrationByPlatform(ctx context.Context,
	repoID domain.RepositoryID,
	platform domain.Platform) (*domain.Integration, error) {
	return p.integrationWhere(ctx,
		goqu.I("repository_id").Eq(uuid.UUID(repoID)),
		goqu.I("platform").Eq(string(platform)),
	)
}

func (p *PgSQL) ActiveIntegration(ctx context.Context, repoID domain.RepositoryID) (*domain.Integration, error) {
	return p.integrationWhere(ctx,
		goqu.I("repository_id").Eq(uuid.UUID(repoID)),
		goqu.I("is_active").IsTrue(),
	)
}

func (p *PgSQL) ListIntegrations(ctx context.Context,
	filter storage.IntegrationFilter) ([]domain.Integration, error) {
	var w []goqu.Expression
	if !filter.RepositoryID.IsZero() {
		w = append(w, goqu.I("repository_id").Eq(uuid.UUID(filter.RepositoryID)))
	}
	if filter.Platform != "" {
		w = append(w, goqu.I("platform").Eq(string(filter.Platform)))
	}
	if filter.IsActive != nil {
		w = append(w, goqu.I("is_active").Eq(*filter.IsActive))
	}

	var rows []PgIntegration
	if err := p.Builder.From(integrationsTable).
		Where(w...).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list integrations: %w", err)
	}

	return pgIntegrationsToDomain(rows)
}

func (p *PgSQL) UpdateIntegration(ctx context.Context,
	id domain.IntegrationID,
	updates storage.IntegrationUpdates) (*domain.Integration, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Config != nil {
		config, err := marshalJSON(updates.Config, "{}")
		if err != nil {
			return nil, err
		}
		rec["config"] = config
	}
	if updates.Settings != nil {
		settings, err := marshalJSON(updates.Settings, "{}")
		if err != nil {
			return nil, err
		}
		rec["settings"] = settings
	}
	if updates.TokenEncrypted != nil {
		rec["token_encrypted"] = nullString(*updates.TokenEncrypted)
	}
	if updates.WebhookURL != nil {
		rec["webhook_url"] = nullString(*updates.WebhookURL)
	}
	if updates.IsActive != nil {
		rec["is_active"] = *updates.IsActive
	}
	if updates.LastUsedAt != nil {
		rec["last_used_at"] = nullTime(*updates.LastUsedAt)
	}

	var row PgIntegration
	found, err := p.Builder.Update(integrationsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgIntegration{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapWriteErr(err, "update integration in pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) DeleteIntegration(ctx context.Context, id domain.IntegrationID) (bool, error) {
	res, err := p.Builder.Delete(integrationsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete integration in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}
