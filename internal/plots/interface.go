package plots

import (
	"context"
	"plotmarket/pkg/domain"
	"plotmarket/pkg/storage"
	"time"
)

//go:generate mockgen -package mockplots -source=interface.go -destination=mock/mockplots.go *
type Plots interface {
	Search(ctx context.Context, filter storage.PlotFilter) ([]domain.Plot, error)
	Get(ctx context.Context, id domain.PlotID) (*domain.Plot, error)
	Create(ctx context.Context, uploader domain.User, plot domain.Plot) (*domain.Plot, error)
	Update(ctx context.Context, id domain.PlotID, updates storage.PlotUpdates) (*domain.Plot, error)
	Delete(ctx context.Context, id domain.PlotID) error
	Lock(ctx context.Context, user domain.User, id domain.PlotID) (*domain.Plot, error)
	Unlock(ctx context.Context, user domain.User, id domain.PlotID) (*domain.Plot, error)
	ReleaseExpiredLock(ctx context.Context, id domain.PlotID, at time.Time) (bool, error)
}
