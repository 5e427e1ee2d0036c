package orders

import (
	"context"
	"plotmarket/pkg/domain"
)

//go:generate mockgen -package mockorders -source=interface.go -destination=mock/mockorders.go *
type Orders interface {
	Create(ctx context.Context, user domain.User, plotID domain.PlotID) (*domain.Order, error)
	Update(ctx context.Context, id domain.OrderID, status domain.OrderStatus) (*domain.Order, error)
	List(ctx context.Context, caller domain.User, offset, limit uint) ([]domain.OrderDetails, error)
	Get(ctx context.Context, caller domain.User, id domain.OrderID) (*domain.OrderDetails, error)
}
