package postgres

import (
	"context"
	"fmt"

	"autobuilder/pkg/domain"
	"autobuilder/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (p *PgSQL) StoreFixAttempts(ctx context.Context, attempts ...domain.FixAttempt) ([]domain.FixAttempt, error) {
	if len(attempts) == 0 {
		return nil, nil
	}

	rows, err := domainFixAttemptsToPg(attempts)
	if err != nil {
		return nil, err
	}

	var result []PgFixAttempt
	if err := p.Builder.Insert(fixAttemptsTable).
		Rows(rows).
		Returning(&PgFixAttempt{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, wrapWriteErr(err, "store fix attempts into pg")
	}

	return pgFixAttemptsToDomain(result)
}

func (p *PgSQL) FixAttemptByID(ctx context.Context, id domain.FixAttemptID) (*domain.FixAttempt, error) {
	var row PgFixAttempt
	found, err := p.Builder.From(fixAttemptsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch fix attempt by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) FixAttemptsByBuild(ctx context.Context, buildID domain.BuildID) ([]domain.FixAttempt, error) {
	var rows []PgFixAttempt
	if err := p.Builder.From(fixAttemptsTable).
		Where(goqu.I("build_id").Eq(uuid.UUID(buildID))).
		Order(goqu.I("attempt_number").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not list fix attempts: %w", err)
	}

	return pgFixAttemptsToDomain(rows)
}

func (p *PgSQL) UpdateFixAttempt(ctx context.Context,
	id domain.FixAttemptID,
	updates storage.FixAttemptUpdates) (*domain.FixAttempt, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
	}
	if updates.FilesChanged != nil {
		files, err := marshalJSON(updates.FilesChanged, "[]")
		if err != nil {
			return nil, err
		}
		rec["files_changed"] = files
	}
	if updates.ChangesSummary != nil {
		rec["changes_summary"] = nullString(*updates.ChangesSummary)
	}
	if updates.Diff != nil {
		rec["diff"] = nullString(*updates.Diff)
	}
	if updates.BranchName != nil {
		rec["branch_name"] = nullString(*updates.BranchName)
	}
	if updates.CommitSHA != nil {
		rec["commit_sha"] = nullString(*updates.CommitSHA)
	}
	if updates.PullRequestURL != nil {
		rec["pull_request_url"] = nullString(*updates.PullRequestURL)
	}
	if updates.PullRequestNumber != nil {
		rec["pull_request_number"] = *updates.PullRequestNumber
	}
	if updates.RequiresApproval != nil {
		rec["requires_approval"] = *updates.RequiresApproval
	}
	if updates.Notes != nil {
		rec["notes"] = nullString(*updates.Notes)
	}
	if updates.AppliedAt != nil {
		rec["applied_at"] = nullTime(*updates.AppliedAt)
	}
	if updates.RevertedAt != nil {
		rec["reverted_at"] = nullTime(*updates.RevertedAt)
	}

	var row PgFixAttempt
	found, err := p.Builder.Update(fixAttemptsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgFixAttempt{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update fix attempt in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
