// Package locations reads the region, district and council hierarchy.
package locations

import (
	"context"
	"fmt"
	"plotmarket/pkg/domain"
	"plotmarket/pkg/storage"
)

type locations struct {
	storage storage.Storage
}

func (l locations) Regions(ctx context.Context) ([]domain.Region, error) {
	res, err := l.storage.Regions(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list regions: %w", err)
	}

	return res, nil
}

// Districts returns the districts of regionID, or every district when it is nil.
func (l locations) Districts(ctx context.Context, regionID *int64) ([]domain.District, error) {
	res, err := l.storage.Districts(ctx, regionID)
	if err != nil {
		return nil, fmt.Errorf("could not list districts: %w", err)
	}

	return res, nil
}

// Councils returns the councils of districtID, or every council when it is nil.
func (l locations) Councils(ctx context.Context, districtID *int64) ([]domain.Council, error) {
	res, err := l.storage.Councils(ctx, districtID)
	if err != nil {
		return nil, fmt.Errorf("could not list councils: %w", err)
	}

	return res, nil
}

func New(storage storage.Storage) Locations {
	return locations{storage: storage}
}
