// Package users implements registration, login and the user directory.
package users

import (
	"context"
	"errors"
	"fmt"
	"plotmarket/internal/auth"
	"plotmarket/pkg/domain"
	"plotmarket/pkg/logger"
	"plotmarket/pkg/serrors"
	"plotmarket/pkg/storage"
	"strings"
	"time"

	"go.uber.org/zap"
)

// RegisterInput carries the fields a new account is created from.
type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
}

// Token is the bearer credential returned by Login.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"-"`
}

type users struct {
	storage storage.Storage
	tokens  *auth.TokenManager
}

func (u users) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	return u.create(ctx, input, domain.RoleUser)
}

func (u users) create(ctx context.Context, input RegisterInput, role domain.Role) (*domain.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "email and password are required")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := u.storage.StoreUser(ctx, domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "email or phone number already registered")
		}

		return nil, fmt.Errorf("could not store user: %w", err)
	}

	logger.Info(ctx, "user registered", zap.String("userID", user.ID.String()), zap.String("role", string(role)))

	return user, nil
}

func (u users) Login(ctx context.Context, email, password string) (*Token, error) {
	user, err := u.storage.UserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("could not get user by email: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "incorrect email or password")
	}

	ok, err := auth.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, serrors.With(serrors.ErrUnauthorized, "incorrect email or password")
	}

	token, expiresAt, err := u.tokens.Issue(user.Email)
	if err != nil {
		return nil, err
	}

	return &Token{AccessToken: token, TokenType: "bearer", ExpiresAt: expiresAt}, nil
}

// Authenticate resolves a bearer token to its account. Whether the account
// is active is left to the authorization gate.
func (u users) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	email, err := u.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := u.storage.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get user by email: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "user not found")
	}

	return user, nil
}

func (u users) UpdateMe(ctx context.Context,
	user domain.User,
	updates storage.UserProfileUpdates) (*domain.User, error) {
	updated, err := u.storage.UpdateUserProfile(ctx, user.ID, updates)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "phone number already registered")
		}

		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return updated, nil
}

func (u users) List(ctx context.Context, offset, limit uint) ([]domain.User, error) {
	res, err := u.storage.Users(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	return res, nil
}

func (u users) Get(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := u.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// EnsureMasterAdmin creates a master admin from input unless one already
// exists. The boolean reports whether an account was created.
func (u users) EnsureMasterAdmin(ctx context.Context, input RegisterInput) (*domain.User, bool, error) {
	exists, err := u.storage.UserExistsWithRole(ctx, domain.RoleMasterAdmin)
	if err != nil {
		return nil, false, fmt.Errorf("could not check for master admin: %w", err)
	}
	if exists {
		return nil, false, nil
	}

	user, err := u.create(ctx, input, domain.RoleMasterAdmin)
	if err != nil {
		return nil, false, err
	}

	return user, true, nil
}

func New(storage storage.Storage, tokens *auth.TokenManager) Users {
	return users{
		storage: storage,
		tokens:  tokens,
	}
}
