package locations

import (
	"context"
	"plotmarket/pkg/domain"
)

//go:generate mockgen -package mocklocations -source=interface.go -destination=mock/mocklocations.go *
type Locations interface {
	Regions(ctx context.Context) ([]domain.Region, error)
	Districts(ctx context.Context, regionID *int64) ([]domain.District, error)
	Councils(ctx context.Context, districtID *int64) ([]domain.Council, error)
}
