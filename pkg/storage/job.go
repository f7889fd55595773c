package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. When the handle is transactional the
// job becomes visible to workers only after commit, so side effects never run
// for rolled back writes.
type JobStorage interface {
	// AddJob reports false when a unique job with the same arguments already exists.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
