package scheduler

import (
	"context"
	"time"
)

// SnapshotRefresher stores a fresh snapshot of every watched fund.
// *service.SnapshotService satisfies it.
type SnapshotRefresher interface {
	RefreshAll(ctx context.Context) (int, error)
}

// SnapshotJob archives analytics for the watchlist.
type SnapshotJob struct {
	refresher SnapshotRefresher
	timeout   time.Duration
}

// NewSnapshotJob creates a SnapshotJob. A timeout of zero means no deadline beyond the scheduler's.
func NewSnapshotJob(refresher SnapshotRefresher, timeout time.Duration) *SnapshotJob {
	return &SnapshotJob{refresher: refresher, timeout: timeout}
}

// Name returns the job name
func (j *SnapshotJob) Name() string {
	return "watchlist_snapshot"
}

// Run refreshes snapshots for all watched funds.
func (j *SnapshotJob) Run(ctx context.Context) error {
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	_, err := j.refresher.RefreshAll(ctx)
	return err
}
