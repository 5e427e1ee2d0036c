package users_test

import (
	"context"
	"errors"
	"fmt"
	"plotmarket/internal/auth"
	"plotmarket/internal/users"
	"plotmarket/pkg/domain"
	"plotmarket/pkg/serrors"
	"plotmarket/pkg/storage"
	"testing"
	"time"

	mockstorage "plotmarket/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUsers(t *testing.T) (*mockstorage.MockStorage, *auth.TokenManager, users.Users) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	tm := auth.NewTokenManager(auth.Options{Secret: "secret", Issuer: "test", TTL: time.Hour})

	return st, tm, users.New(st, tm)
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := auth.HashPassword(password)
	require.NoError(t, err)

	return h
}

func TestUsers_Register(t *testing.T) {
	st, _, svc := newTestUsers(t)

	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.User) (*domain.User, error) {
			require.Equal(t, "zawadi@example.com", u.Email)
			require.Equal(t, domain.RoleUser, u.Role)
			require.True(t, u.IsActive)
			require.NotEqual(t, "pa55word", u.PasswordHash)
			ok, err := auth.CheckPassword(u.PasswordHash, "pa55word")
			require.NoError(t, err)
			require.True(t, ok)
			u.ID = domain.UserID(uuid.New())

			return &u, nil
		})

	user, err := svc.Register(context.Background(), users.RegisterInput{
		Email:    " zawadi@example.com ",
		Password: "pa55word",
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleUser, user.Role)
}

func TestUsers_Register_Duplicate(t *testing.T) {
	st, _, svc := newTestUsers(t)

	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: users_email_key", storage.ErrDuplicate))

	_, err := svc.Register(context.Background(), users.RegisterInput{Email: "a@example.com", Password: "x"})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestUsers_Register_MissingFields(t *testing.T) {
	_, _, svc := newTestUsers(t)

	_, err := svc.Register(context.Background(), users.RegisterInput{Email: "a@example.com"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestUsers_Login(t *testing.T) {
	st, tm, svc := newTestUsers(t)
	ctx := context.Background()
	user := &domain.User{Email: "Juma@example.com", PasswordHash: hashed(t, "right"), Role: domain.RoleUser}

	t.Run("success", func(t *testing.T) {
		st.EXPECT().UserByEmail(gomock.Any(), "juma@example.com").Return(user, nil)

		token, err := svc.Login(ctx, "juma@example.com", "right")
		require.NoError(t, err)
		require.Equal(t, "bearer", token.TokenType)

		sub, err := tm.Verify(token.AccessToken)
		require.NoError(t, err)
		require.Equal(t, user.Email, sub)
	})

	t.Run("wrong password", func(t *testing.T) {
		st.EXPECT().UserByEmail(gomock.Any(), "juma@example.com").Return(user, nil)

		_, err := svc.Login(ctx, "juma@example.com", "wrong")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		st.EXPECT().UserByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

		_, err := svc.Login(ctx, "nobody@example.com", "right")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("storage failure is internal", func(t *testing.T) {
		st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := svc.Login(ctx, "juma@example.com", "right")
		require.Error(t, err)
		require.Equal(t, serrors.ErrInternal, serrors.KindOf(err))
	})
}

func TestUsers_Authenticate(t *testing.T) {
	st, tm, svc := newTestUsers(t)
	ctx := context.Background()

	token, _, err := tm.Issue("neema@example.com")
	require.NoError(t, err)

	t.Run("known user", func(t *testing.T) {
		st.EXPECT().UserByEmail(gomock.Any(), "neema@example.com").
			Return(&domain.User{Email: "neema@example.com"}, nil)

		user, err := svc.Authenticate(ctx, token)
		require.NoError(t, err)
		require.Equal(t, "neema@example.com", user.Email)
	})

	t.Run("deleted user", func(t *testing.T) {
		st.EXPECT().UserByEmail(gomock.Any(), "neema@example.com").Return(nil, nil)

		_, err := svc.Authenticate(ctx, token)
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})

	t.Run("bad token", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "garbage")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	})
}

func TestUsers_UpdateMe(t *testing.T) {
	st, _, svc := newTestUsers(t)
	ctx := context.Background()
	me := domain.User{ID: domain.UserID(uuid.New()), Email: "me@example.com"}
	name := "Rehema"

	st.EXPECT().UpdateUserProfile(gomock.Any(), me.ID, storage.UserProfileUpdates{FirstName: &name}).
		Return(&domain.User{ID: me.ID, Email: me.Email, FirstName: name}, nil)

	res, err := svc.UpdateMe(ctx, me, storage.UserProfileUpdates{FirstName: &name})
	require.NoError(t, err)
	require.Equal(t, name, res.FirstName)

	st.EXPECT().UpdateUserProfile(gomock.Any(), me.ID, gomock.Any()).Return(nil, storage.ErrDuplicate)
	_, err = svc.UpdateMe(ctx, me, storage.UserProfileUpdates{})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestUsers_Get(t *testing.T) {
	st, _, svc := newTestUsers(t)
	id := domain.UserID(uuid.New())

	st.EXPECT().UserByID(gomock.Any(), id).Return(nil, nil)
	_, err := svc.Get(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	st.EXPECT().Users(gomock.Any(), uint(5), uint(10)).Return([]domain.User{{ID: id}}, nil)
	list, err := svc.List(context.Background(), 5, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestUsers_EnsureMasterAdmin(t *testing.T) {
	input := users.RegisterInput{Email: "admin@example.com", Password: "admin123"}

	t.Run("already exists", func(t *testing.T) {
		st, _, svc := newTestUsers(t)
		st.EXPECT().UserExistsWithRole(gomock.Any(), domain.RoleMasterAdmin).Return(true, nil)

		user, created, err := svc.EnsureMasterAdmin(context.Background(), input)
		require.NoError(t, err)
		require.False(t, created)
		require.Nil(t, user)
	})

	t.Run("created", func(t *testing.T) {
		st, _, svc := newTestUsers(t)
		st.EXPECT().UserExistsWithRole(gomock.Any(), domain.RoleMasterAdmin).Return(false, nil)
		st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u domain.User) (*domain.User, error) {
				require.Equal(t, domain.RoleMasterAdmin, u.Role)

				return &u, nil
			})

		user, created, err := svc.EnsureMasterAdmin(context.Background(), input)
		require.NoError(t, err)
		require.True(t, created)
		require.Equal(t, domain.RoleMasterAdmin, user.Role)
	})
}
