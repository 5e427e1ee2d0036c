package worker

import (
	"context"
	"fmt"
	"plotmarket/internal/plots"
	"plotmarket/pkg/logger"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// PlotLockReleaseWorker returns plots whose cart lock expired to the
// available pool. A job that runs before the lock's expiry snoozes until then.
type PlotLockReleaseWorker struct {
	river.WorkerDefaults[plots.LockReleaseArgs]

	plots plots.Plots
	now   func() time.Time
}

func NewPlotLockReleaseWorker(plots plots.Plots) *PlotLockReleaseWorker {
	return &PlotLockReleaseWorker{
		plots: plots,
		now:   time.Now,
	}
}

func (w *PlotLockReleaseWorker) Work(ctx context.Context, job *river.Job[plots.LockReleaseArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("plotID", job.Args.PlotID.String()))

	now := w.now()
	if wait := job.Args.LockedUntil.Sub(now); wait > 0 {
		return river.JobSnooze(wait) //nolint: wrapcheck
	}

	released, err := w.plots.ReleaseExpiredLock(ctx, job.Args.PlotID, now)
	if err != nil {
		logger.Error(ctx, "error releasing plot lock", zap.Error(err))

		return fmt.Errorf("could not release plot lock: %w", err)
	}

	if released {
		logger.Info(ctx, "expired plot lock released")
	} else {
		logger.Debug(ctx, "plot lock already released or renewed")
	}

	return nil
}
