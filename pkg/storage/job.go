package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues River jobs: build dispatch, monitoring, log collection
// and fix analysis.
type JobStorage interface {
	// AddJob inserts a job, inside the surrounding transaction when there is
	// one, so a build row and the job that dispatches it commit together.
	// It reports false when a unique job with the same arguments is already
	// queued.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
