package postgres

import (
	"context"
	"fmt"
	"time"

	"autobuilder/pkg/domain"
	"autobuilder/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

// retryDepthBelow keeps builds whose retry chain is shorter than the bound.
const retryDepthBelow = `(
WITH RECURSIVE chain AS (
    SELECT o.id, o.retry_of, 0 AS depth FROM builds o WHERE o.id = builds.id
    UNION ALL
    SELECT b.id, b.retry_of, c.depth + 1 FROM builds b JOIN chain c ON b.id = c.retry_of
)
SELECT MAX(depth) FROM chain) < ?`

func (p *PgSQL) StoreBuild(ctx context.Context, build domain.Build) (*domain.Build, error) {
	var row PgBuild
	if err := row.FromDomain(build); err != nil {
		return nil, err
	}

	var result PgBuild
	if _, err := p.Builder.Insert(buildsTable).
		Rows(row).
		Returning(&PgBuild{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, wrapWriteErr(err, "store build into pg")
	}

	return result.ToDomain()
}

func (p *PgSQL) BuildByID(ctx context.Context, id domain.BuildID) (*domain.Build, error) {
	var row PgBuild
	found, err := p.Builder.From(buildsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch build by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func buildFilterWhere(filter storage.BuildFilter) []goqu.Expression {
	var w []goqu.Expression
	if !filter.RepositoryID.IsZero() {
		w = append(w, goqu.I("repository_id").Eq(uuid.UUID(filter.RepositoryID)))
	}
	if !filter.IntegrationID.IsZero() {
		w = append(w, goqu.I("integration_id").Eq(uuid.UUID(filter.IntegrationID)))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		w = append(w, goqu.I("status").In(statuses))
	}

	return w
}

func (p *PgSQL) ListBuilds(ctx context.Context, filter storage.BuildFilter) ([]domain.Build, int64, error) {
	w := buildFilterWhere(filter)

	total, err := p.Builder.From(buildsTable).Where(w...).CountContext(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("could not count builds: %w", err)
	}

	ds := p.Builder.From(buildsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Offset(filter.Offset)
	if filter.Limit > 0 {
		ds = ds.Limit(filter.Limit)
	}

	var rows []PgBuild
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, 0, fmt.Errorf("could not list builds: %w", err)
	}

	builds, err := pgBuildsToDomain(rows)
	if err != nil {
		return nil, 0, err
	}

	return builds, total, nil
}

func (p *PgSQL) CountBuilds(ctx context.Context, filter storage.BuildFilter) (int64, error) {
	total, err := p.Builder.From(buildsTable).Where(buildFilterWhere(filter)...).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count builds: %w", err)
	}

	return total, nil
}

func (p *PgSQL) UpdateBuild(ctx context.Context,
	id domain.BuildID,
	updates storage.BuildUpdates) (*domain.Build, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.PlatformBuildID != nil {
		rec["platform_build_id"] = nullString(*updates.PlatformBuildID)
	}
	if updates.StartedAt != nil {
		rec["started_at"] = nullTime(*updates.StartedAt)
	}
	if updates.FinishedAt != nil {
		rec["finished_at"] = nullTime(*updates.FinishedAt)
	}
	if updates.DurationSeconds != nil {
		rec["duration_seconds"] = *updates.DurationSeconds
	}
	if updates.LogsURL != nil {
		rec["logs_url"] = nullString(*updates.LogsURL)
	}
	if updates.LogsContent != nil {
		rec["logs_content"] = nullString(*updates.LogsContent)
	}
	if updates.ErrorLogs != nil {
		rec["error_logs"] = nullString(*updates.ErrorLogs)
	}

	var row PgBuild
	found, err := p.Builder.Update(buildsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgBuild{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update build in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

type pgBuildStats struct {
	Total       int64   `db:"total"`
	Successful  int64   `db:"successful"`
	Failed      int64   `db:"failed"`
	Running     int64   `db:"running"`
	Pending     int64   `db:"pending"`
	AvgDuration float64 `db:"avg_duration"`
}

type pgTriggerCount struct {
	Trigger string `db:"trigger_type"`
	Count   int64  `db:"count"`
}

func countStatus(status domain.BuildStatus, alias string) goqu.Expression {
	return goqu.L("COUNT(*) FILTER (WHERE status = ?)", string(status)).As(alias)
}

func (p *PgSQL) BuildStats(ctx context.Context,
	repoID domain.RepositoryID,
	since time.Time) (storage.BuildStats, error) {
	w := []goqu.Expression{goqu.I("created_at").Gte(since)}
	if !repoID.IsZero() {
		w = append(w, goqu.I("repository_id").Eq(uuid.UUID(repoID)))
	}

	var row pgBuildStats
	if _, err := p.Builder.From(buildsTable).
		Select(
			goqu.COUNT("*").As("total"),
			countStatus(domain.BuildStatusSuccess, "successful"),
			countStatus(domain.BuildStatusFailed, "failed"),
			countStatus(domain.BuildStatusRunning, "running"),
			countStatus(domain.BuildStatusPending, "pending"),
			goqu.L("COALESCE(AVG(duration_seconds), 0)::float8").As("avg_duration"),
		).
		Where(w...).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return storage.BuildStats{}, fmt.Errorf("could not aggregate builds: %w", err)
	}

	var triggers []pgTriggerCount
	if err := p.Builder.From(buildsTable).
		Select(goqu.I("trigger_type"), goqu.COUNT("*").As("count")).
		Where(w...).
		GroupBy(goqu.I("trigger_type")).
		Executor().ScanStructsContext(ctx, &triggers); err != nil {
		return storage.BuildStats{}, fmt.Errorf("could not group builds by trigger: %w", err)
	}

	byTrigger := make(map[domain.TriggerType]int64, len(triggers))
	for _, t := range triggers {
		byTrigger[domain.TriggerType(t.Trigger)] = t.Count
	}

	return storage.BuildStats{
		Total:              row.Total,
		Successful:         row.Successful,
		Failed:             row.Failed,
		Running:            row.Running,
		Pending:            row.Pending,
		AvgDurationSeconds: row.AvgDuration,
		ByTrigger:          byTrigger,
	}, nil
}

func (p *PgSQL) RetryableFailedBuilds(ctx context.Context,
	repoID domain.RepositoryID,
	maxDepth int,
	limit uint) ([]domain.Build, error) {
	w := []goqu.Expression{
		goqu.I("status").Eq(string(domain.BuildStatusFailed)),
		goqu.L("NOT EXISTS (SELECT 1 FROM builds r WHERE r.retry_of = builds.id)"),
		goqu.L(retryDepthBelow, maxDepth),
	}
	if !repoID.IsZero() {
		w = append(w, goqu.I("repository_id").Eq(uuid.UUID(repoID)))
	}

	ds := p.Builder.From(buildsTable).
		Where(w...).
		Order(goqu.I("created_at").Asc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var rows []PgBuild
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list retryable builds: %w", err)
	}

	return pgBuildsToDomain(rows)
}

func (p *PgSQL) DeleteSuccessfulBuildsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := p.Builder.Delete(buildsTable).
		Where(
			goqu.I("status").Eq(string(domain.BuildStatusSuccess)),
			goqu.I("created_at").Lt(cutoff),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete old builds in pg: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n, nil
}
