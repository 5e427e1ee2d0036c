package storage

import (
	"context"
	"plotmarket/pkg/domain"
)

// UserProfileUpdates lists the self-service profile fields. Only non-nil
// fields are written.
type UserProfileUpdates struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

// UserStorage defines persistence operations on user accounts.
type UserStorage interface {
	// StoreUser inserts a user and returns the stored row. It returns
	// ErrDuplicate when the email or phone number is already taken.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns the user or nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByEmail returns the user with the given email (case-insensitive) or nil.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UsersByIDs returns the users with the given IDs in no particular order.
	UsersByIDs(ctx context.Context, ids []domain.UserID) ([]domain.User, error)
	// Users returns a page of users ordered by created_at DESC, id DESC.
	Users(ctx context.Context, offset, limit uint) ([]domain.User, error)
	// UpdateUserProfile applies updates and returns the updated user, or nil
	// when not found. Returns ErrDuplicate when the phone number is taken.
	UpdateUserProfile(ctx context.Context, id domain.UserID, updates UserProfileUpdates) (*domain.User, error)
	// UserExistsWithRole reports whether at least one user holds role.
	UserExistsWithRole(ctx context.Context, role domain.Role) (bool, error)
}
