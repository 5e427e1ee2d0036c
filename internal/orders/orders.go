// Package orders implements placing orders on plots and moving them through
// their lifecycle.
package orders

import (
	"context"
	"fmt"
	"plotmarket/pkg/domain"
	"plotmarket/pkg/logger"
	"plotmarket/pkg/metrics"
	"plotmarket/pkg/serrors"
	"plotmarket/pkg/storage"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

type orders struct {
	storage storage.Storage
	metrics *metrics.Orders
}

// Create places a pending order on a plot that is available or sits in the
// user's own cart lock. The plot moves to pending_payment in the same
// transaction, so at most one concurrent caller wins a given plot.
func (o orders) Create(ctx context.Context, user domain.User, plotID domain.PlotID) (*domain.Order, error) {
	var order *domain.Order
	if err := o.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		plot, err := tx.ReservePlot(ctx, plotID, user.ID)
		if err != nil {
			return fmt.Errorf("could not reserve plot: %w", err)
		}
		if plot == nil {
			existing, err := tx.PlotByID(ctx, plotID)
			if err != nil {
				return fmt.Errorf("could not get plot: %w", err)
			}
			if existing == nil {
				return serrors.With(serrors.ErrNotFound, "plot not found")
			}

			return serrors.With(serrors.ErrConflict, "plot is not available for purchase")
		}

		order, err = tx.StoreOrder(ctx, domain.Order{
			UserID: user.ID,
			PlotID: plotID,
			Status: domain.OrderStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store order: %w", err)
		}

		return nil
	}); err != nil {
		if serrors.KindOf(err) == serrors.ErrConflict {
			o.metrics.Rejected.Add(ctx, 1)
		}

		return nil, err //nolint: wrapcheck
	}

	o.metrics.Created.Add(ctx, 1)
	logger.Info(ctx, "order created",
		zap.String("orderID", order.ID.String()),
		zap.String("plotID", plotID.String()),
		zap.String("userID", user.ID.String()))

	return order, nil
}

// Update moves an order to status and applies the matching plot transition
// in the same transaction.
func (o orders) Update(ctx context.Context, id domain.OrderID, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid order status %q", status)
	}

	var order *domain.Order
	if err := o.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		existing, err := tx.OrderByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get order: %w", err)
		}
		if existing == nil {
			return serrors.With(serrors.ErrNotFound, "order not found")
		}

		if plotStatus, ok := status.PlotTransition(); ok {
			if _, err := tx.SetPlotStatus(ctx, existing.PlotID, plotStatus); err != nil {
				return fmt.Errorf("could not update plot status: %w", err)
			}
		}

		order, err = tx.UpdateOrderStatus(ctx, id, status)
		if err != nil {
			return fmt.Errorf("could not update order status: %w", err)
		}
		if order == nil {
			return serrors.With(serrors.ErrNotFound, "order not found")
		}

		return nil
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	o.metrics.StatusChanges.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(status))))
	logger.Info(ctx, "order status updated",
		zap.String("orderID", id.String()),
		zap.String("status", string(status)))

	return order, nil
}

// List returns the caller's orders, or every order for administrators.
func (o orders) List(ctx context.Context, caller domain.User, offset, limit uint) ([]domain.OrderDetails, error) {
	filter := storage.OrderFilter{Offset: offset, Limit: limit}
	if !caller.Role.IsAdmin() {
		filter.UserID = &caller.ID
	}

	res, err := o.storage.Orders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("could not list orders: %w", err)
	}

	return o.withDetails(ctx, res)
}

// Get returns an order visible to caller. Non-admins only see their own.
func (o orders) Get(ctx context.Context, caller domain.User, id domain.OrderID) (*domain.OrderDetails, error) {
	order, err := o.storage.OrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get order: %w", err)
	}
	if order == nil {
		return nil, serrors.With(serrors.ErrNotFound, "order not found")
	}
	if order.UserID != caller.ID && !caller.Role.IsAdmin() {
		return nil, serrors.With(serrors.ErrForbidden, "not enough permissions")
	}

	res, err := o.withDetails(ctx, []domain.Order{*order})
	if err != nil {
		return nil, err
	}

	return &res[0], nil
}

// withDetails attaches users and plots to orders with one query per table.
func (o orders) withDetails(ctx context.Context, list []domain.Order) ([]domain.OrderDetails, error) {
	if len(list) == 0 {
		return []domain.OrderDetails{}, nil
	}

	userIDs := make([]domain.UserID, 0, len(list))
	plotIDs := make([]domain.PlotID, 0, len(list))
	seenUsers := make(map[domain.UserID]struct{}, len(list))
	seenPlots := make(map[domain.PlotID]struct{}, len(list))
	for _, order := range list {
		if _, ok := seenUsers[order.UserID]; !ok {
			seenUsers[order.UserID] = struct{}{}
			userIDs = append(userIDs, order.UserID)
		}
		if _, ok := seenPlots[order.PlotID]; !ok {
			seenPlots[order.PlotID] = struct{}{}
			plotIDs = append(plotIDs, order.PlotID)
		}
	}

	users, err := o.storage.UsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("could not get order users: %w", err)
	}
	plots, err := o.storage.PlotsByIDs(ctx, plotIDs)
	if err != nil {
		return nil, fmt.Errorf("could not get order plots: %w", err)
	}

	usersByID := make(map[domain.UserID]*domain.User, len(users))
	for i := range users {
		usersByID[users[i].ID] = &users[i]
	}
	plotsByID := make(map[domain.PlotID]*domain.Plot, len(plots))
	for i := range plots {
		plotsByID[plots[i].ID] = &plots[i]
	}

	res := make([]domain.OrderDetails, 0, len(list))
	for _, order := range list {
		res = append(res, domain.OrderDetails{
			Order: order,
			User:  usersByID[order.UserID],
			Plot:  plotsByID[order.PlotID],
		})
	}

	return res, nil
}

func New(storage storage.Storage, metrics *metrics.Orders) Orders {
	return orders{
		storage: storage,
		metrics: metrics,
	}
}
