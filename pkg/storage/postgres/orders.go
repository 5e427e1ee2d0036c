package postgres

import (
	"context"
	"fmt"
	"plotmarket/pkg/domain"
	"plotmarket/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	ordersTable = "orders"
)

func (p *PgSQL) StoreOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	var row PgOrder
	row.FromDomain(order)

	var result PgOrder
	if _, err := p.Builder.Insert(ordersTable).
		Rows(row).
		Returning(&PgOrder{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store order into pg: %w", translateError(err))
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) OrderByID(ctx context.Context, id domain.OrderID) (*domain.Order, error) {
	return p.orderByID(ctx, id, false)
}

func (p *PgSQL) OrderByIDForUpdate(ctx context.Context, id domain.OrderID) (*domain.Order, error) {
	return p.orderByID(ctx, id, true)
}

func (p *PgSQL) orderByID(ctx context.Context, id domain.OrderID, forUpdate bool) (*domain.Order, error) {
	ds := p.Builder.From(ordersTable).Where(goqu.I("id").Eq(uuid.UUID(id)))
	if forUpdate {
		ds = ds.ForUpdate(exp.Wait)
	}

	var row PgOrder
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch order by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) Orders(ctx context.Context, filter storage.OrderFilter) ([]domain.Order, error) {
	ds := p.Builder.From(ordersTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Offset(filter.Offset).
		Limit(p.Paging.Limit(filter.Limit))
	if filter.UserID != nil {
		ds = ds.Where(goqu.I("user_id").Eq(uuid.UUID(*filter.UserID)))
	}

	var rows []PgOrder
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch orders from pg: %w", err)
	}

	return pgOrdersToDomain(rows), nil
}

func (p *PgSQL) UpdateOrderStatus(ctx context.Context,
	id domain.OrderID,
	status domain.OrderStatus) (*domain.Order, error) {
	var row PgOrder
	found, err := p.Builder.Update(ordersTable).
		Set(goqu.Record{"order_status": string(status)}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgOrder{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update order in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
