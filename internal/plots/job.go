package plots

import (
	"plotmarket/pkg/domain"
	"time"

	"github.com/riverqueue/river"
)

// LockReleaseArgs schedules the release of a cart lock once it expires.
type LockReleaseArgs struct {
	PlotID domain.PlotID `json:"plot_id"`
	// LockedUntil is the expiry the job was scheduled for. A plot that was
	// unlocked and locked again carries a later expiry and is left alone.
	LockedUntil time.Time `json:"locked_until"`
}

// Kind returns the River job kind used to register and dispatch the release worker.
func (args LockReleaseArgs) Kind() string { return "PlotLockReleaseJob" }

// InsertOpts returns the River options applied to every release job.
func (args LockReleaseArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 10,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
		},
	}
}
