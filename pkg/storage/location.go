package storage

import (
	"context"
	"plotmarket/pkg/domain"
)

// LocationStorage reads the region/district/council hierarchy. Every method
// states how deep it loads parents; nothing is loaded lazily.
type LocationStorage interface {
	// Regions returns all regions ordered by name.
	Regions(ctx context.Context) ([]domain.Region, error)
	// Districts returns districts ordered by name with Region loaded. A non-nil
	// regionID restricts the result to that region.
	Districts(ctx context.Context, regionID *int64) ([]domain.District, error)
	// Councils returns councils ordered by name with District and District.Region
	// loaded. A non-nil districtID restricts the result to that district.
	Councils(ctx context.Context, districtID *int64) ([]domain.Council, error)
	// CouncilByID returns the council with District and District.Region loaded,
	// or nil when not found.
	CouncilByID(ctx context.Context, id int64) (*domain.Council, error)
}
