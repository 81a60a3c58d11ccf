package postgres

import (
	"context"
	"fmt"

	"autobuilder/pkg/domain"
	"autobuilder/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (p *PgSQL) StoreRepository(ctx context.Context, repo domain.Repository) (*domain.Repository, error) {
	var row PgRepository
	if err := row.FromDomain(repo); err != nil {
		return nil, err
	}

	var result PgRepository
	if _, err := p.Builder.Insert(repositoriesTable).
		Rows(row).
		Returning(&PgRepository{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, wrapWriteErr(err, "store repository into pg")
	}

	return result.ToDomain()
}

func (p *PgSQL) repositoryWhere(ctx context.Context, where ...goqu.Expression) (*domain.Repository, error) {
	var row PgRepository
	found, err := p.Builder.From(repositoriesTable).
		Where(where...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch repository: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) RepositoryByID(ctx context.Context, id domain.RepositoryID) (*domain.Repository, error) {
	return p.repositoryWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) RepositoryByFullName(ctx context.Context, fullName string) (*domain.Repository, error) {
	return p.repositoryWhere(ctx, goqu.I("full_name").Eq(fullName))
}

func (p *PgSQL) ListRepositories(ctx context.Context,
	filter storage.RepositoryFilter) ([]domain.Repository, int64, error) {
	var w []goqu.Expression
	if filter.AutoFixEnabled != nil {
		w = append(w, goqu.I("auto_fix_enabled").Eq(*filter.AutoFixEnabled))
	}

	total, err := p.Builder.From(repositoriesTable).Where(w...).CountContext(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("could not count repositories: %w", err)
	}

	ds := p.Builder.From(repositoriesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Offset(filter.Offset)
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}

	var rows []PgRepository
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, 0, fmt.Errorf("could not list repositories: %w", err)
	}

	repos, err := pgRepositoriesToDomain(rows)
	if err != nil {
		return nil, 0, err
	}

	return repos, total, nil
}

// UpdateRepository sets the non-nil fields and returns the updated row, or nil
// when the repository does not exist.
func (p *PgSQL) UpdateRepository(ctx context.Context,
	id domain.RepositoryID,
	updates storage.RepositoryUpdates) (*domain.Repository, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Description != nil {
		rec["description"] = nullString(*updates.Description)
	}
	if updates.DefaultLanguage != nil {
		rec["default_language"] = nullString(*updates.DefaultLanguage)
	}
	if updates.IsPrivate != nil {
		rec["is_private"] = *updates.IsPrivate
	}
	if updates.GitHubRepoID != nil {
		rec["github_repo_id"] = *updates.GitHubRepoID
	}
	if updates.AutoFixEnabled != nil {
		rec["auto_fix_enabled"] = *updates.AutoFixEnabled
	}
	if updates.AutoFixSafeOnly != nil {
		rec["auto_fix_safe_only"] = *updates.AutoFixSafeOnly
	}
	if updates.AutoMergeEnabled != nil {
		rec["auto_merge_enabled"] = *updates.AutoMergeEnabled
	}
	if updates.PrimaryBranch != nil {
		rec["primary_branch"] = *updates.PrimaryBranch
	}
	if updates.WebhookSecret != nil {
		rec["webhook_secret"] = nullString(*updates.WebhookSecret)
	}
	if updates.LastBuildAt != nil {
		rec["last_build_at"] = nullTime(*updates.LastBuildAt)
	}

	var row PgRepository
	found, err := p.Builder.Update(repositoriesTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgRepository{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, wrapWriteErr(err, "update repository in pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) DeleteRepository(ctx context.Context, id domain.RepositoryID) (bool, error) {
	res, err := p.Builder.Delete(repositoriesTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete repository in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n > 0, nil
}
