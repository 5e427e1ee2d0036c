package users

import (
	"context"
	"plotmarket/pkg/domain"
	"plotmarket/pkg/storage"
)

//go:generate mockgen -package mockusers -source=interface.go -destination=mock/mockusers.go *
type Users interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*Token, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	UpdateMe(ctx context.Context, user domain.User, updates storage.UserProfileUpdates) (*domain.User, error)
	List(ctx context.Context, offset, limit uint) ([]domain.User, error)
	Get(ctx context.Context, id domain.UserID) (*domain.User, error)
	EnsureMasterAdmin(ctx context.Context, input RegisterInput) (*domain.User, bool, error)
}
