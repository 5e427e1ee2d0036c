package storage

import (
	"context"
	"plotmarket/pkg/domain"
)

// OrderFilter restricts an order listing. A nil UserID lists every order.
type OrderFilter struct {
	UserID *domain.UserID
	Offset uint
	Limit  uint
}

// OrderStorage defines persistence operations on orders.
type OrderStorage interface {
	// StoreOrder inserts an order and returns the stored row.
	StoreOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
	// OrderByID returns the order or nil when not found.
	OrderByID(ctx context.Context, id domain.OrderID) (*domain.Order, error)
	// OrderByIDForUpdate is OrderByID taking a row lock held until the
	// surrounding transaction ends. Only meaningful inside WithTx.
	OrderByIDForUpdate(ctx context.Context, id domain.OrderID) (*domain.Order, error)
	// Orders returns a page of orders ordered by created_at DESC, id DESC.
	Orders(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	// UpdateOrderStatus sets the status of an order and returns it, or nil when not found.
	UpdateOrderStatus(ctx context.Context, id domain.OrderID, status domain.OrderStatus) (*domain.Order, error)
}
