package orders_test

import (
	"context"
	"errors"
	"plotmarket/internal/orders"
	"plotmarket/pkg/domain"
	"plotmarket/pkg/metrics"
	"plotmarket/pkg/serrors"
	"plotmarket/pkg/storage"
	"testing"

	mockstorage "plotmarket/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/mock/gomock"
)

func newTestOrders(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, orders.Orders) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	m, err := metrics.NewOrders(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	return ctrl, st, orders.New(st, m)
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func buyer() domain.User {
	return domain.User{ID: domain.UserID(uuid.New()), Email: "buyer@example.com", Role: domain.RoleUser, IsActive: true}
}

func TestOrders_Create(t *testing.T) {
	ctrl, st, svc := newTestOrders(t)
	user := buyer()
	plotID := domain.PlotID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		gomock.InOrder(
			tx.EXPECT().ReservePlot(gomock.Any(), plotID, user.ID).
				Return(&domain.Plot{ID: plotID, Status: domain.PlotStatusPendingPayment}, nil),
			tx.EXPECT().StoreOrder(gomock.Any(), domain.Order{
				UserID: user.ID,
				PlotID: plotID,
				Status: domain.OrderStatusPending,
			}).DoAndReturn(func(_ context.Context, o domain.Order) (*domain.Order, error) {
				o.ID = domain.OrderID(uuid.New())

				return &o, nil
			}),
		)
	})

	order, err := svc.Create(context.Background(), user, plotID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusPending, order.Status)
	require.Equal(t, user.ID, order.UserID)
	require.Equal(t, plotID, order.PlotID)
}

func TestOrders_Create_FromOwnCartLock(t *testing.T) {
	ctrl, st, svc := newTestOrders(t)
	user := buyer()
	plotID := domain.PlotID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ReservePlot(gomock.Any(), plotID, user.ID).
			Return(&domain.Plot{ID: plotID, Status: domain.PlotStatusPendingPayment}, nil)
		tx.EXPECT().StoreOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o domain.Order) (*domain.Order, error) {
				o.ID = domain.OrderID(uuid.New())

				return &o, nil
			})
	})

	order, err := svc.Create(context.Background(), user, plotID)
	require.NoError(t, err)
	require.Equal(t, plotID, order.PlotID)
}

func TestOrders_Create_PlotNotFound(t *testing.T) {
	ctrl, st, svc := newTestOrders(t)
	plotID := domain.PlotID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ReservePlot(gomock.Any(), plotID, gomock.Any()).Return(nil, nil)
		tx.EXPECT().PlotByID(gomock.Any(), plotID).Return(nil, nil)
	})

	_, err := svc.Create(context.Background(), buyer(), plotID)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestOrders_Create_PlotUnavailable(t *testing.T) {
	for _, status := range []domain.PlotStatus{
		domain.PlotStatusLocked,
		domain.PlotStatusPendingPayment,
		domain.PlotStatusSold,
	} {
		t.Run(string(status), func(t *testing.T) {
			ctrl, st, svc := newTestOrders(t)
			plotID := domain.PlotID(uuid.New())

			expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
				tx.EXPECT().ReservePlot(gomock.Any(), plotID, gomock.Any()).Return(nil, nil)
				tx.EXPECT().PlotByID(gomock.Any(), plotID).Return(&domain.Plot{ID: plotID, Status: status}, nil)
			})

			_, err := svc.Create(context.Background(), buyer(), plotID)
			require.ErrorIs(t, err, serrors.ErrConflict)
		})
	}
}

func TestOrders_Create_StoreFailureIsInternal(t *testing.T) {
	ctrl, st, svc := newTestOrders(t)
	plotID := domain.PlotID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().ReservePlot(gomock.Any(), plotID, gomock.Any()).
			Return(&domain.Plot{ID: plotID}, nil)
		tx.EXPECT().StoreOrder(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	})

	_, err := svc.Create(context.Background(), buyer(), plotID)
	require.Error(t, err)
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(err))
}

func TestOrders_Update_PlotTransitions(t *testing.T) {
	tests := []struct {
		status     domain.OrderStatus
		plotStatus domain.PlotStatus
		touches    bool
	}{
		{domain.OrderStatusCompleted, domain.PlotStatusSold, true},
		{domain.OrderStatusCancelled, domain.PlotStatusAvailable, true},
		{domain.OrderStatusProcessing, "", false},
		{domain.OrderStatusPaymentFailed, "", false},
		{domain.OrderStatusPending, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			ctrl, st, svc := newTestOrders(t)
			existing := domain.Order{
				ID:     domain.OrderID(uuid.New()),
				UserID: domain.UserID(uuid.New()),
				PlotID: domain.PlotID(uuid.New()),
				Status: domain.OrderStatusPending,
			}

			expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
				tx.EXPECT().OrderByIDForUpdate(gomock.Any(), existing.ID).Return(&existing, nil)
				if tt.touches {
					tx.EXPECT().SetPlotStatus(gomock.Any(), existing.PlotID, tt.plotStatus).
						Return(&domain.Plot{ID: existing.PlotID, Status: tt.plotStatus}, nil)
				}
				tx.EXPECT().UpdateOrderStatus(gomock.Any(), existing.ID, tt.status).
					DoAndReturn(func(_ context.Context, _ domain.OrderID, s domain.OrderStatus) (*domain.Order, error) {
						o := existing
						o.Status = s

						return &o, nil
					})
			})

			res, err := svc.Update(context.Background(), existing.ID, tt.status)
			require.NoError(t, err)
			require.Equal(t, tt.status, res.Status)
		})
	}
}

func TestOrders_Update_Errors(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		_, _, svc := newTestOrders(t)

		_, err := svc.Update(context.Background(), domain.OrderID(uuid.New()), "shipped")
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("unknown order", func(t *testing.T) {
		ctrl, st, svc := newTestOrders(t)
		id := domain.OrderID(uuid.New())

		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().OrderByIDForUpdate(gomock.Any(), id).Return(nil, nil)
		})

		_, err := svc.Update(context.Background(), id, domain.OrderStatusCompleted)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("plot update failure aborts", func(t *testing.T) {
		ctrl, st, svc := newTestOrders(t)
		existing := domain.Order{ID: domain.OrderID(uuid.New()), PlotID: domain.PlotID(uuid.New())}

		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().OrderByIDForUpdate(gomock.Any(), existing.ID).Return(&existing, nil)
			tx.EXPECT().SetPlotStatus(gomock.Any(), existing.PlotID, domain.PlotStatusSold).
				Return(nil, errors.New("boom"))
		})

		_, err := svc.Update(context.Background(), existing.ID, domain.OrderStatusCompleted)
		require.Error(t, err)
	})
}

func TestOrders_List(t *testing.T) {
	user := buyer()
	plotID := domain.PlotID(uuid.New())
	list := []domain.Order{
		{ID: domain.OrderID(uuid.New()), UserID: user.ID, PlotID: plotID},
		{ID: domain.OrderID(uuid.New()), UserID: user.ID, PlotID: plotID},
	}

	t.Run("user sees own orders with details", func(t *testing.T) {
		_, st, svc := newTestOrders(t)

		st.EXPECT().Orders(gomock.Any(), storage.OrderFilter{UserID: &user.ID, Offset: 0, Limit: 10}).Return(list, nil)
		st.EXPECT().UsersByIDs(gomock.Any(), []domain.UserID{user.ID}).Return([]domain.User{user}, nil)
		st.EXPECT().PlotsByIDs(gomock.Any(), []domain.PlotID{plotID}).
			Return([]domain.Plot{{ID: plotID, Title: "Mbezi"}}, nil)

		res, err := svc.List(context.Background(), user, 0, 10)
		require.NoError(t, err)
		require.Len(t, res, 2)
		for _, o := range res {
			require.Equal(t, user.Email, o.User.Email)
			require.Equal(t, "Mbezi", o.Plot.Title)
		}
	})

	t.Run("admin sees every order", func(t *testing.T) {
		_, st, svc := newTestOrders(t)
		admin := domain.User{ID: domain.UserID(uuid.New()), Role: domain.RoleAdmin, IsActive: true}

		st.EXPECT().Orders(gomock.Any(), storage.OrderFilter{Limit: 10}).Return(nil, nil)

		res, err := svc.List(context.Background(), admin, 0, 10)
		require.NoError(t, err)
		require.Empty(t, res)
	})
}

func TestOrders_Get(t *testing.T) {
	owner := buyer()
	order := domain.Order{ID: domain.OrderID(uuid.New()), UserID: owner.ID, PlotID: domain.PlotID(uuid.New())}

	t.Run("owner", func(t *testing.T) {
		_, st, svc := newTestOrders(t)
		st.EXPECT().OrderByID(gomock.Any(), order.ID).Return(&order, nil)
		st.EXPECT().UsersByIDs(gomock.Any(), gomock.Any()).Return([]domain.User{owner}, nil)
		st.EXPECT().PlotsByIDs(gomock.Any(), gomock.Any()).Return([]domain.Plot{{ID: order.PlotID}}, nil)

		res, err := svc.Get(context.Background(), owner, order.ID)
		require.NoError(t, err)
		require.Equal(t, order.ID, res.ID)
		require.NotNil(t, res.Plot)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		_, st, svc := newTestOrders(t)
		st.EXPECT().OrderByID(gomock.Any(), order.ID).Return(&order, nil)

		_, err := svc.Get(context.Background(), buyer(), order.ID)
		require.ErrorIs(t, err, serrors.ErrForbidden)
	})

	t.Run("admin", func(t *testing.T) {
		_, st, svc := newTestOrders(t)
		admin := domain.User{ID: domain.UserID(uuid.New()), Role: domain.RoleMasterAdmin}
		st.EXPECT().OrderByID(gomock.Any(), order.ID).Return(&order, nil)
		st.EXPECT().UsersByIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
		st.EXPECT().PlotsByIDs(gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := svc.Get(context.Background(), admin, order.ID)
		require.NoError(t, err)
		require.Nil(t, res.User)
	})

	t.Run("missing", func(t *testing.T) {
		_, st, svc := newTestOrders(t)
		st.EXPECT().OrderByID(gomock.Any(), order.ID).Return(nil, nil)

		_, err := svc.Get(context.Background(), owner, order.ID)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})
}
