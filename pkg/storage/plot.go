package storage

import (
	"context"
	"encoding/json"
	"plotmarket/pkg/domain"
	"time"

	"github.com/shopspring/decimal"
)

// Paging bounds the size of every listing.
type Paging struct {
	// DefaultSize is used when a listing does not specify a limit.
	DefaultSize uint
	// MaxSize caps the limit of any listing.
	MaxSize uint
}

// DefaultPaging applies when no paging is configured.
var DefaultPaging = Paging{DefaultSize: 100, MaxSize: 1000} //nolint: gochecknoglobals

// Limit returns limit, or DefaultSize when it is zero, capped at MaxSize.
// Unset fields fall back to DefaultPaging.
func (p Paging) Limit(limit uint) uint {
	if p.DefaultSize == 0 {
		p.DefaultSize = DefaultPaging.DefaultSize
	}
	if p.MaxSize == 0 {
		p.MaxSize = DefaultPaging.MaxSize
	}
	if p.DefaultSize > p.MaxSize {
		p.DefaultSize = p.MaxSize
	}

	switch {
	case limit == 0:
		return p.DefaultSize
	case limit > p.MaxSize:
		return p.MaxSize
	default:
		return limit
	}
}

// LocationLevel names the granularity of a location constraint.
type LocationLevel int

const (
	LocationAny LocationLevel = iota
	LocationRegion
	LocationDistrict
	LocationCouncil
)

// LocationConstraint is the single location predicate applied to a search.
type LocationConstraint struct {
	Level LocationLevel
	ID    int64
}

// PlotFilter is a conjunction of optional plot predicates. Zero values mean
// "no constraint", except Status which defaults to available.
type PlotFilter struct {
	// Search is matched case-insensitively as a substring of title or description.
	Search string
	// MinPrice and MaxPrice bound the price inclusively.
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	// MinArea and MaxArea bound the area inclusively.
	MinArea *decimal.Decimal
	MaxArea *decimal.Decimal
	// RegionID, DistrictID and CouncilID are mutually exclusive; see Location.
	RegionID   *int64
	DistrictID *int64
	CouncilID  *int64
	// UsageType is matched exactly.
	UsageType string
	// Status is matched exactly; empty means available.
	Status domain.PlotStatus

	Offset uint
	Limit  uint
}

// Location returns the most specific location constraint present in the
// filter. A council wins over a district, which wins over a region; broader
// constraints are ignored once a narrower one is supplied.
func (f PlotFilter) Location() LocationConstraint {
	switch {
	case f.CouncilID != nil:
		return LocationConstraint{Level: LocationCouncil, ID: *f.CouncilID}
	case f.DistrictID != nil:
		return LocationConstraint{Level: LocationDistrict, ID: *f.DistrictID}
	case f.RegionID != nil:
		return LocationConstraint{Level: LocationRegion, ID: *f.RegionID}
	default:
		return LocationConstraint{Level: LocationAny}
	}
}

// EffectiveStatus returns the status the search is restricted to.
func (f PlotFilter) EffectiveStatus() domain.PlotStatus {
	if f.Status == "" {
		return domain.PlotStatusAvailable
	}

	return f.Status
}

// PlotUpdates lists the plot fields an administrator may change. Only non-nil
// fields are written. Setting Status clears any cart lock bookkeeping.
type PlotUpdates struct {
	PlotNumber  *string
	Title       *string
	Description *string
	AreaSqm     *decimal.Decimal
	Price       *decimal.Decimal
	ImageURLs   *[]string
	UsageType   *string
	Status      *domain.PlotStatus
	CouncilID   *int64
	Boundary    *json.RawMessage
}

// IsEmpty reports whether no field is set.
func (u PlotUpdates) IsEmpty() bool {
	return u.PlotNumber == nil && u.Title == nil && u.Description == nil &&
		u.AreaSqm == nil && u.Price == nil && u.ImageURLs == nil &&
		u.UsageType == nil && u.Status == nil && u.CouncilID == nil && u.Boundary == nil
}

// PlotLockRelease selects which locks ReleasePlotLock may clear. With both
// fields nil any lock, including an administrative hold, is released.
type PlotLockRelease struct {
	// HeldBy restricts the release to locks taken by this user.
	HeldBy *domain.UserID
	// ExpiredAt restricts the release to cart locks whose locked_until is not after it.
	ExpiredAt *time.Time
}

// PlotStorage defines CRUD, search and status transitions on plots.
type PlotStorage interface {
	// StorePlot inserts a plot and returns the stored row. It returns
	// ErrDuplicate for a taken plot number and ErrReferenced for an unknown council.
	StorePlot(ctx context.Context, plot domain.Plot) (*domain.Plot, error)
	// PlotByID returns the plot without its council, or nil when not found.
	PlotByID(ctx context.Context, id domain.PlotID) (*domain.Plot, error)
	// PlotsByIDs returns the plots with the given IDs in no particular order.
	PlotsByIDs(ctx context.Context, ids []domain.PlotID) ([]domain.Plot, error)
	// SearchPlots returns the plots matching every predicate of filter, ordered
	// by created_at DESC, id DESC and paginated by filter.Offset/filter.Limit.
	SearchPlots(ctx context.Context, filter PlotFilter) ([]domain.Plot, error)
	// UpdatePlot applies updates and returns the plot, or nil when not found.
	UpdatePlot(ctx context.Context, id domain.PlotID, updates PlotUpdates) (*domain.Plot, error)
	// DeletePlot deletes a plot and reports whether it existed. It returns
	// ErrReferenced when orders still reference the plot.
	DeletePlot(ctx context.Context, id domain.PlotID) (bool, error)
	// SetPlotStatus unconditionally sets the status, clearing lock bookkeeping,
	// and returns the plot or nil when not found.
	SetPlotStatus(ctx context.Context, id domain.PlotID, status domain.PlotStatus) (*domain.Plot, error)
	// ReservePlot moves the plot to pending_payment in a single statement when
	// it is available or held in buyer's own cart lock. It returns nil when no
	// row matched.
	ReservePlot(ctx context.Context, id domain.PlotID, buyer domain.UserID) (*domain.Plot, error)
	// LockPlot moves an available plot to locked on behalf of userID until the
	// given time. It returns nil when the plot is missing or not available.
	LockPlot(ctx context.Context, id domain.PlotID, userID domain.UserID, until time.Time) (*domain.Plot, error)
	// ReleasePlotLock moves a locked plot matching release back to available.
	// It returns nil when nothing matched.
	ReleasePlotLock(ctx context.Context, id domain.PlotID, release PlotLockRelease) (*domain.Plot, error)
}
