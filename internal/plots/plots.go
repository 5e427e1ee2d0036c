// Package plots manages the plot inventory, its search and cart locks.
package plots

import (
	"context"
	"errors"
	"fmt"
	"plotmarket/internal/config"
	"plotmarket/pkg/domain"
	"plotmarket/pkg/logger"
	"plotmarket/pkg/serrors"
	"plotmarket/pkg/storage"
	"strings"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// Options configure plot reservations.
type Options struct {
	// LockTTL is how long a cart lock holds a plot.
	LockTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		LockTTL: cfg.Plots.LockTTL,
	}
}

type plots struct {
	options Options
	storage storage.Storage
}

func (p plots) Search(ctx context.Context, filter storage.PlotFilter) ([]domain.Plot, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid status %q", filter.Status)
	}

	res, err := p.storage.SearchPlots(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not search plots: %w", err)
	}

	return res, nil
}

// Get returns the plot with its council, district and region loaded.
func (p plots) Get(ctx context.Context, id domain.PlotID) (*domain.Plot, error) {
	plot, err := p.storage.PlotByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get plot: %w", err)
	}
	if plot == nil {
		return nil, serrors.With(serrors.ErrNotFound, "plot not found")
	}

	if plot.CouncilID != nil {
		council, err := p.storage.CouncilByID(ctx, *plot.CouncilID)
		if err != nil {
			return nil, fmt.Errorf("could not get plot council: %w", err)
		}
		plot.Council = council
	}

	return plot, nil
}

func (p plots) Create(ctx context.Context, uploader domain.User, plot domain.Plot) (*domain.Plot, error) {
	plot.Title = strings.TrimSpace(plot.Title)
	if plot.Title == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "title is required")
	}
	if plot.Price.IsNegative() || plot.AreaSqm.IsNegative() {
		return nil, serrors.With(serrors.ErrBadRequest, "price and area must not be negative")
	}
	if plot.Status == "" {
		plot.Status = domain.PlotStatusAvailable
	}
	if !plot.Status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid status %q", plot.Status)
	}
	if plot.UsageType == "" {
		plot.UsageType = domain.DefaultUsageType
	}
	plot.UploadedByID = &uploader.ID
	plot.LockedByID = nil
	plot.LockedUntil = nil

	res, err := p.storage.StorePlot(ctx, plot)
	if err != nil {
		return nil, plotWriteError(err)
	}

	logger.Info(ctx, "plot created", zap.String("plotID", res.ID.String()))

	return res, nil
}

func (p plots) Update(ctx context.Context, id domain.PlotID, updates storage.PlotUpdates) (*domain.Plot, error) {
	if updates.Status != nil && !updates.Status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid status %q", *updates.Status)
	}
	if (updates.Price != nil && updates.Price.IsNegative()) ||
		(updates.AreaSqm != nil && updates.AreaSqm.IsNegative()) {
		return nil, serrors.With(serrors.ErrBadRequest, "price and area must not be negative")
	}
	if updates.Title != nil && strings.TrimSpace(*updates.Title) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "title must not be empty")
	}

	res, err := p.storage.UpdatePlot(ctx, id, updates)
	if err != nil {
		return nil, plotWriteError(err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "plot not found")
	}

	return res, nil
}

func (p plots) Delete(ctx context.Context, id domain.PlotID) error {
	deleted, err := p.storage.DeletePlot(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrReferenced) {
			return serrors.Wrap(serrors.ErrConflict, err, "plot has orders")
		}

		return fmt.Errorf("could not delete plot: %w", err)
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "plot not found")
	}

	return nil
}

// Lock holds an available plot for user until LockTTL passes. The release job
// is enqueued in the same transaction as the lock.
func (p plots) Lock(ctx context.Context, user domain.User, id domain.PlotID) (*domain.Plot, error) {
	until := time.Now().Add(p.options.LockTTL)

	var plot *domain.Plot
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.LockPlot(ctx, id, user.ID, until)
		if err != nil {
			return fmt.Errorf("could not lock plot: %w", err)
		}
		if res == nil {
			return unavailable(ctx, tx, id)
		}
		plot = res

		if _, err := tx.AddJob(ctx, LockReleaseArgs{
			PlotID:      id,
			LockedUntil: until,
		}, &river.InsertOpts{ScheduledAt: until}); err != nil {
			return fmt.Errorf("could not add lock release job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	logger.Info(ctx, "plot locked",
		zap.String("plotID", id.String()),
		zap.String("userID", user.ID.String()),
		zap.Time("until", until))

	return plot, nil
}

// Unlock releases a lock held by user. Administrators may release any lock.
func (p plots) Unlock(ctx context.Context, user domain.User, id domain.PlotID) (*domain.Plot, error) {
	var release storage.PlotLockRelease
	if !user.Role.IsAdmin() {
		release.HeldBy = &user.ID
	}

	var plot *domain.Plot
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.ReleasePlotLock(ctx, id, release)
		if err != nil {
			return fmt.Errorf("could not release plot lock: %w", err)
		}
		if res == nil {
			existing, err := tx.PlotByID(ctx, id)
			if err != nil {
				return fmt.Errorf("could not get plot: %w", err)
			}
			if existing == nil {
				return serrors.With(serrors.ErrNotFound, "plot not found")
			}

			return serrors.With(serrors.ErrConflict, "plot is not locked by you")
		}
		plot = res

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return plot, nil
}

// ReleaseExpiredLock releases the cart lock on id if it expired at or before at.
// Administrative locks carry no expiry and are never released here.
func (p plots) ReleaseExpiredLock(ctx context.Context, id domain.PlotID, at time.Time) (bool, error) {
	res, err := p.storage.ReleasePlotLock(ctx, id, storage.PlotLockRelease{ExpiredAt: &at})
	if err != nil {
		return false, fmt.Errorf("could not release expired plot lock: %w", err)
	}

	return res != nil, nil
}

// unavailable explains why a conditional status change matched no row.
func unavailable(ctx context.Context, tx storage.AllStorage, id domain.PlotID) error {
	existing, err := tx.PlotByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get plot: %w", err)
	}
	if existing == nil {
		return serrors.With(serrors.ErrNotFound, "plot not found")
	}

	return serrors.With(serrors.ErrConflict, "plot is not available (status %s)", existing.Status)
}

func plotWriteError(err error) error {
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		return serrors.Wrap(serrors.ErrConflict, err, "plot number already exists")
	case errors.Is(err, storage.ErrReferenced):
		return serrors.Wrap(serrors.ErrBadRequest, err, "unknown council")
	default:
		return fmt.Errorf("could not write plot: %w", err)
	}
}

func New(storage storage.Storage, options Options) Plots {
	return plots{
		options: options,
		storage: storage,
	}
}
