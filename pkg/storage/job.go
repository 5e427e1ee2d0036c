package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. When called on a transactional handle
// the job only becomes visible once the transaction commits, so a job can be
// scheduled atomically with the rows it acts on.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It reports false when
	// the insert was skipped as a duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
