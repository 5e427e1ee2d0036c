package postgres

import (
	"context"
	"fmt"
	"plotmarket/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	regionsTable   = "regions"
	districtsTable = "districts"
	councilsTable  = "councils"
)

func (p *PgSQL) Regions(ctx context.Context) ([]domain.Region, error) {
	var rows []domain.Region
	if err := p.Builder.From(regionsTable).
		Select("id", "name").
		Order(goqu.I("name").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch regions from pg: %w", err)
	}

	return rows, nil
}

func (p *PgSQL) Districts(ctx context.Context, regionID *int64) ([]domain.District, error) {
	ds := p.Builder.From(goqu.T(districtsTable).As("d")).
		Join(goqu.T(regionsTable).As("r"), goqu.On(goqu.I("r.id").Eq(goqu.I("d.region_id")))).
		Select(
			goqu.I("d.id"),
			goqu.I("d.name"),
			goqu.I("d.region_id"),
			goqu.I("r.name").As("region_name"),
		).
		Order(goqu.I("d.name").Asc(), goqu.I("d.id").Asc())
	if regionID != nil {
		ds = ds.Where(goqu.I("d.region_id").Eq(*regionID))
	}

	var rows []pgDistrict
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch districts from pg: %w", err)
	}

	out := make([]domain.District, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) councilsQuery() *goqu.SelectDataset {
	return p.Builder.From(goqu.T(councilsTable).As("c")).
		Join(goqu.T(districtsTable).As("d"), goqu.On(goqu.I("d.id").Eq(goqu.I("c.district_id")))).
		Join(goqu.T(regionsTable).As("r"), goqu.On(goqu.I("r.id").Eq(goqu.I("d.region_id")))).
		Select(
			goqu.I("c.id"),
			goqu.I("c.name"),
			goqu.I("c.district_id"),
			goqu.I("d.name").As("district_name"),
			goqu.I("d.region_id"),
			goqu.I("r.name").As("region_name"),
		)
}

func (p *PgSQL) Councils(ctx context.Context, districtID *int64) ([]domain.Council, error) {
	ds := p.councilsQuery().Order(goqu.I("c.name").Asc(), goqu.I("c.id").Asc())
	if districtID != nil {
		ds = ds.Where(goqu.I("c.district_id").Eq(*districtID))
	}

	var rows []pgCouncil
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch councils from pg: %w", err)
	}

	out := make([]domain.Council, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) CouncilByID(ctx context.Context, id int64) (*domain.Council, error) {
	var row pgCouncil
	found, err := p.councilsQuery().
		Where(goqu.I("c.id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch council from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	council := row.ToDomain()

	return &council, nil
}
