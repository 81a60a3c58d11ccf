package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"autobuilder/pkg/logger"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// AddJob inserts args through an insert-only River client bound to the
// current handle: InsertTx inside a transaction, Insert on the pool otherwise.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		result *rivertype.JobInsertResult
		err    error
	)
	switch db := p.DB.(type) {
	case *sql.Tx:
		client, cerr := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if cerr != nil {
			return false, fmt.Errorf("could not create river insert client: %w", cerr)
		}
		result, err = client.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		client, cerr := river.NewClient(riverdatabasesql.New(db), &river.Config{})
		if cerr != nil {
			return false, fmt.Errorf("could not create river insert client: %w", cerr)
		}
		result, err = client.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("could not insert %s job: unsupported executor %T", args.Kind(), p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	if result.UniqueSkippedAsDuplicate {
		logger.Debug(ctx, "job is already queued",
			zap.String("kind", args.Kind()),
			zap.Int64("jobID", result.Job.ID))

		return false, nil
	}

	return true, nil
}
