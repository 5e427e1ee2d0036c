package postgres

import (
	"context"
	"fmt"
	"plotmarket/pkg/domain"
	"plotmarket/pkg/storage"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	plotsTable = "plots"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (p *PgSQL) StorePlot(ctx context.Context, plot domain.Plot) (*domain.Plot, error) {
	var row PgPlot
	row.FromDomain(plot)

	var result PgPlot
	if _, err := p.Builder.Insert(plotsTable).
		Rows(row).
		Returning(&PgPlot{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store plot into pg: %w", translateError(err))
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) PlotByID(ctx context.Context, id domain.PlotID) (*domain.Plot, error) {
	var row PgPlot
	found, err := p.Builder.From(plotsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch plot by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) PlotsByIDs(ctx context.Context, ids []domain.PlotID) ([]domain.Plot, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	vals := make([]interface{}, len(ids))
	for i, id := range ids {
		vals[i] = uuid.UUID(id)
	}

	var rows []PgPlot
	if err := p.Builder.From(plotsTable).
		Where(goqu.I("id").In(vals...)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch plots by ids from pg: %w", err)
	}

	return pgPlotsToDomain(rows), nil
}

// SearchPlots composes every predicate of the filter into a single statement.
// Location constraints are expressed as council_id subqueries so that a
// district or region search is exactly the union of its councils.
func (p *PgSQL) SearchPlots(ctx context.Context, filter storage.PlotFilter) ([]domain.Plot, error) {
	var rows []PgPlot
	if err := p.Builder.From(plotsTable).
		Where(plotFilterExpressions(filter)...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Offset(filter.Offset).
		Limit(p.Paging.Limit(filter.Limit)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not search plots in pg: %w", err)
	}

	return pgPlotsToDomain(rows), nil
}

func plotFilterExpressions(filter storage.PlotFilter) []goqu.Expression {
	w := []goqu.Expression{
		goqu.I("status").Eq(string(filter.EffectiveStatus())),
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + likeEscaper.Replace(search) + "%"
		w = append(w, goqu.Or(
			goqu.I("title").ILike(pattern),
			goqu.I("description").ILike(pattern),
		))
	}
	if filter.MinPrice != nil {
		w = append(w, goqu.I("price").Gte(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		w = append(w, goqu.I("price").Lte(*filter.MaxPrice))
	}
	if filter.MinArea != nil {
		w = append(w, goqu.I("area_sqm").Gte(*filter.MinArea))
	}
	if filter.MaxArea != nil {
		w = append(w, goqu.I("area_sqm").Lte(*filter.MaxArea))
	}
	if filter.UsageType != "" {
		w = append(w, goqu.I("usage_type").Eq(filter.UsageType))
	}

	dialect := goqu.Dialect("postgres")
	switch loc := filter.Location(); loc.Level {
	case storage.LocationCouncil:
		w = append(w, goqu.I("council_id").Eq(loc.ID))
	case storage.LocationDistrict:
		w = append(w, goqu.I("council_id").In(
			dialect.From(councilsTable).
				Select("id").
				Where(goqu.I("district_id").Eq(loc.ID)),
		))
	case storage.LocationRegion:
		w = append(w, goqu.I("council_id").In(
			dialect.From(goqu.T(councilsTable).As("c")).
				Join(goqu.T(districtsTable).As("d"), goqu.On(goqu.I("d.id").Eq(goqu.I("c.district_id")))).
				Select(goqu.I("c.id")).
				Where(goqu.I("d.region_id").Eq(loc.ID)),
		))
	case storage.LocationAny:
	}

	return w
}

// UpdatePlot writes the non-nil fields of updates. Changing the status always
// clears cart lock bookkeeping.
func (p *PgSQL) UpdatePlot(ctx context.Context, id domain.PlotID, updates storage.PlotUpdates) (*domain.Plot, error) {
	if updates.IsEmpty() {
		return p.PlotByID(ctx, id)
	}

	rec := goqu.Record{}
	if updates.PlotNumber != nil {
		rec["plot_number"] = nullString(*updates.PlotNumber)
	}
	if updates.Title != nil {
		rec["title"] = *updates.Title
	}
	if updates.Description != nil {
		rec["description"] = nullString(*updates.Description)
	}
	if updates.AreaSqm != nil {
		rec["area_sqm"] = *updates.AreaSqm
	}
	if updates.Price != nil {
		rec["price"] = *updates.Price
	}
	if updates.ImageURLs != nil {
		rec["image_urls"] = pgStringList(*updates.ImageURLs)
	}
	if updates.UsageType != nil {
		rec["usage_type"] = *updates.UsageType
	}
	if updates.Status != nil {
		rec["status"] = string(*updates.Status)
		rec["locked_by_id"] = nil
		rec["locked_until"] = nil
	}
	if updates.CouncilID != nil {
		rec["council_id"] = *updates.CouncilID
	}
	if updates.Boundary != nil {
		rec["boundary"] = nullString(string(*updates.Boundary))
	}

	return p.updatePlotWhere(ctx, rec, goqu.I("id").Eq(uuid.UUID(id)))
}

func (p *PgSQL) DeletePlot(ctx context.Context, id domain.PlotID) (bool, error) {
	res, err := p.Builder.Delete(plotsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete plot in pg: %w", translateError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not read deleted plot count: %w", err)
	}

	return affected > 0, nil
}

func (p *PgSQL) SetPlotStatus(ctx context.Context, id domain.PlotID, status domain.PlotStatus) (*domain.Plot, error) {
	return p.updatePlotWhere(ctx, statusRecord(status), goqu.I("id").Eq(uuid.UUID(id)))
}

// ReservePlot is a single conditional UPDATE; of any number of concurrent
// buyers reserving the same plot, exactly one matches.
func (p *PgSQL) ReservePlot(ctx context.Context, id domain.PlotID, buyer domain.UserID) (*domain.Plot, error) {
	return p.updatePlotWhere(ctx, statusRecord(domain.PlotStatusPendingPayment),
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.Or(
			goqu.I("status").Eq(string(domain.PlotStatusAvailable)),
			goqu.And(
				goqu.I("status").Eq(string(domain.PlotStatusLocked)),
				goqu.I("locked_by_id").Eq(uuid.UUID(buyer)),
			),
		),
	)
}

func (p *PgSQL) LockPlot(ctx context.Context,
	id domain.PlotID,
	userID domain.UserID,
	until time.Time) (*domain.Plot, error) {
	return p.updatePlotWhere(ctx,
		goqu.Record{
			"status":       string(domain.PlotStatusLocked),
			"locked_by_id": uuid.UUID(userID),
			"locked_until": until,
		},
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("status").Eq(string(domain.PlotStatusAvailable)),
	)
}

func (p *PgSQL) ReleasePlotLock(ctx context.Context,
	id domain.PlotID,
	release storage.PlotLockRelease) (*domain.Plot, error) {
	w := []goqu.Expression{
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("status").Eq(string(domain.PlotStatusLocked)),
	}
	if release.HeldBy != nil {
		w = append(w, goqu.I("locked_by_id").Eq(uuid.UUID(*release.HeldBy)))
	}
	if release.ExpiredAt != nil {
		w = append(w, goqu.I("locked_until").Lte(*release.ExpiredAt))
	}

	return p.updatePlotWhere(ctx, statusRecord(domain.PlotStatusAvailable), w...)
}

func statusRecord(status domain.PlotStatus) goqu.Record {
	return goqu.Record{
		"status":       string(status),
		"locked_by_id": nil,
		"locked_until": nil,
	}
}

func (p *PgSQL) updatePlotWhere(ctx context.Context, rec goqu.Record, where ...goqu.Expression) (*domain.Plot, error) {
	var row PgPlot
	found, err := p.Builder.Update(plotsTable).
		Set(rec).
		Where(where...).
		Returning(&PgPlot{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update plot in pg: %w", translateError(err))
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
