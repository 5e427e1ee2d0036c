package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderID uniquely identifies an order.
type OrderID uuid.UUID

func (id OrderID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical UUID form.
func (id OrderID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText decodes a canonical UUID.
func (id *OrderID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending       OrderStatus = "pending"
	OrderStatusProcessing    OrderStatus = "processing"
	OrderStatusPaymentFailed OrderStatus = "payment_failed"
	OrderStatusCompleted     OrderStatus = "completed"
	OrderStatusCancelled     OrderStatus = "cancelled"
)

// Valid reports whether s is one of the declared order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusPaymentFailed,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}

	return false
}

// PlotTransition returns the plot status implied by moving an order into s.
// ok is false when the order status has no effect on the plot.
func (s OrderStatus) PlotTransition() (PlotStatus, bool) {
	switch s {
	case OrderStatusCompleted:
		return PlotStatusSold, true
	case OrderStatusCancelled:
		return PlotStatusAvailable, true
	case OrderStatusPending, OrderStatusProcessing, OrderStatusPaymentFailed:
		return "", false
	}

	return "", false
}

// Order binds one user to one plot.
type Order struct {
	ID        OrderID     `json:"id"`
	UserID    UserID      `json:"user_id"`
	PlotID    PlotID      `json:"plot_id"`
	Status    OrderStatus `json:"order_status"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderDetails is an order together with its user and plot.
type OrderDetails struct {
	Order

	User *User `json:"user,omitempty"`
	Plot *Plot `json:"plot,omitempty"`
}
