package v1handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"plotmarket/internal/api/handler/v1handler"
	"plotmarket/internal/users"
	"plotmarket/pkg/domain"
	"plotmarket/pkg/serrors"
	"plotmarket/pkg/storage"
	"strings"
	"testing"

	mocklocations "plotmarket/internal/locations/mock"
	mockorders "plotmarket/internal/orders/mock"
	mockplots "plotmarket/internal/plots/mock"
	mockusers "plotmarket/internal/users/mock"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type testAPI struct {
	router    http.Handler
	users     *mockusers.MockUsers
	locations *mocklocations.MockLocations
	plots     *mockplots.MockPlots
	orders    *mockorders.MockOrders
}

func newTestAPI(t *testing.T, ping error) *testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := &testAPI{
		users:     mockusers.NewMockUsers(ctrl),
		locations: mocklocations.NewMockLocations(ctrl),
		plots:     mockplots.NewMockPlots(ctrl),
		orders:    mockorders.NewMockOrders(ctrl),
	}

	r := chi.NewRouter()
	v1handler.New(v1handler.Deps{
		Users:     api.users,
		Locations: api.locations,
		Plots:     api.plots,
		Orders:    api.orders,
		Storage:   pinger{err: ping},
	}).Routes(r, nil)
	api.router = r

	return api
}

// as expects token to authenticate as user.
func (a *testAPI) as(token string, user domain.User) {
	a.users.EXPECT().Authenticate(gomock.Any(), token).Return(&user, nil).AnyTimes()
}

func (a *testAPI) do(t *testing.T, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) v1handler.ErrorResponse {
	t.Helper()

	var res v1handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	return res
}

func account(role domain.Role) domain.User {
	return domain.User{ID: domain.UserID(uuid.New()), Email: string(role) + "@example.com", Role: role, IsActive: true}
}

func TestRoot_AndHealth(t *testing.T) {
	api := newTestAPI(t, nil)

	rec := api.do(t, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), v1handler.Version)

	rec = api.do(t, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())

	down := newTestAPI(t, errors.New("connection refused"))
	rec = down.do(t, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLogin_JSON(t *testing.T) {
	api := newTestAPI(t, nil)
	api.users.EXPECT().Login(gomock.Any(), "a@example.com", "secret").
		Return(&users.Token{AccessToken: "tkn", TokenType: "bearer"}, nil)

	rec := api.do(t, http.MethodPost, "/auth/login", "", `{"email":"a@example.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"access_token":"tkn","token_type":"bearer"}`, rec.Body.String())
}

func TestLogin_Form(t *testing.T) {
	api := newTestAPI(t, nil)
	api.users.EXPECT().Login(gomock.Any(), "a@example.com", "secret").
		Return(&users.Token{AccessToken: "tkn", TokenType: "bearer"}, nil)

	form := url.Values{"username": {"a@example.com"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	api := newTestAPI(t, nil)
	api.users.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUnauthorized, "incorrect email or password"))

	rec := api.do(t, http.MethodPost, "/auth/login", "", `{"email":"a@example.com","password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	require.Equal(t, "incorrect email or password", decodeError(t, rec).Message)
}

func TestRegister_Validation(t *testing.T) {
	api := newTestAPI(t, nil)

	rec := api.do(t, http.MethodPost, "/auth/register", "", `{"email":"not-an-email","password":"x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, serrors.ErrBadRequest.Error(), decodeError(t, rec).Code)

	rec = api.do(t, http.MethodPost, "/auth/register", "", `{"email":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_Duplicate(t *testing.T) {
	api := newTestAPI(t, nil)
	api.users.EXPECT().Register(gomock.Any(), users.RegisterInput{Email: "a@example.com", Password: "pw"}).
		Return(nil, serrors.With(serrors.ErrConflict, "email or phone number already registered"))

	rec := api.do(t, http.MethodPost, "/auth/register", "", `{"email":"a@example.com","password":"pw"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, serrors.ErrConflict.Error(), decodeError(t, rec).Code)
}

func TestAuthentication(t *testing.T) {
	api := newTestAPI(t, nil)

	t.Run("missing token", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/users/me", "", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("invalid token", func(t *testing.T) {
		api.users.EXPECT().Authenticate(gomock.Any(), "bad").
			Return(nil, serrors.With(serrors.ErrUnauthorized, "could not validate credentials"))

		rec := api.do(t, http.MethodGet, "/users/me", "bad", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("inactive account", func(t *testing.T) {
		inactive := account(domain.RoleUser)
		inactive.IsActive = false
		api.as("inactive", inactive)

		rec := api.do(t, http.MethodGet, "/users/me", "inactive", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, serrors.ErrInactiveAccount.Error(), decodeError(t, rec).Code)
	})

	t.Run("me", func(t *testing.T) {
		me := account(domain.RoleUser)
		api.as("me", me)

		rec := api.do(t, http.MethodGet, "/users/me", "me", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var got domain.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Equal(t, me.ID, got.ID)
		require.NotContains(t, rec.Body.String(), "password")
	})
}

func TestUserDirectory_MasterAdminOnly(t *testing.T) {
	api := newTestAPI(t, nil)
	api.as("admin", account(domain.RoleAdmin))
	api.as("master", account(domain.RoleMasterAdmin))

	rec := api.do(t, http.MethodGet, "/users/", "admin", "")
	require.Equal(t, http.StatusForbidden, rec.Code)

	api.users.EXPECT().List(gomock.Any(), uint(10), uint(5)).Return([]domain.User{}, nil)
	rec = api.do(t, http.MethodGet, "/users/?skip=10&limit=5", "master", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodGet, "/users/?limit=-1", "master", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodGet, "/users/not-a-uuid", "master", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateMe(t *testing.T) {
	api := newTestAPI(t, nil)
	me := account(domain.RoleUser)
	api.as("me", me)

	name := "Amani"
	api.users.EXPECT().UpdateMe(gomock.Any(), me, storage.UserProfileUpdates{FirstName: &name}).
		Return(&domain.User{ID: me.ID, FirstName: name}, nil)

	rec := api.do(t, http.MethodPut, "/users/me", "me", `{"first_name":"Amani","role":"master_admin"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"first_name":"Amani"`)
}

func TestSearchPlots_ParsesFilter(t *testing.T) {
	api := newTestAPI(t, nil)

	minPrice := decimal.RequireFromString("1000000")
	maxArea := decimal.RequireFromString("800.5")
	var regionID, councilID int64 = 1, 3
	api.plots.EXPECT().Search(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f storage.PlotFilter) ([]domain.Plot, error) {
			require.Equal(t, "ocean view", f.Search)
			require.True(t, minPrice.Equal(*f.MinPrice))
			require.Nil(t, f.MaxPrice)
			require.Nil(t, f.MinArea)
			require.True(t, maxArea.Equal(*f.MaxArea))
			require.Equal(t, &regionID, f.RegionID)
			require.Nil(t, f.DistrictID)
			require.Equal(t, &councilID, f.CouncilID)
			require.Equal(t, "Commercial", f.UsageType)
			require.Equal(t, domain.PlotStatusSold, f.Status)
			require.Equal(t, uint(20), f.Offset)
			require.Equal(t, uint(10), f.Limit)

			return []domain.Plot{}, nil
		})

	rec := api.do(t, http.MethodGet,
		"/plots/?search=ocean+view&min_price=1000000&max_area=800.5&region_id=1&council_id=3"+
			"&usage_type=Commercial&status=sold&skip=20&limit=10", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestSearchPlots_BadNumbers(t *testing.T) {
	api := newTestAPI(t, nil)

	for _, q := range []string{"min_price=cheap", "region_id=dar", "skip=-3"} {
		rec := api.do(t, http.MethodGet, "/plots/?"+q, "", "")
		require.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestGetPlot(t *testing.T) {
	api := newTestAPI(t, nil)
	id := domain.PlotID(uuid.New())

	api.plots.EXPECT().Get(gomock.Any(), id).Return(&domain.Plot{ID: id, Title: "Msasani"}, nil)
	rec := api.do(t, http.MethodGet, "/plots/"+id.String(), "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodGet, "/plots/garbage", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatePlot(t *testing.T) {
	api := newTestAPI(t, nil)
	admin := account(domain.RoleAdmin)
	api.as("admin", admin)
	api.as("user", account(domain.RoleUser))

	body := `{"title":"Mbezi Beach","area_sqm":"600","price":"50000000","council_id":1}`

	rec := api.do(t, http.MethodPost, "/plots/", "user", body)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(t, http.MethodPost, "/plots/", "admin", `{"title":"no price"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	api.plots.EXPECT().Create(gomock.Any(), admin, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.User, p domain.Plot) (*domain.Plot, error) {
			require.Equal(t, "Mbezi Beach", p.Title)
			require.True(t, decimal.NewFromInt(50000000).Equal(p.Price))
			require.Equal(t, []string{}, p.ImageURLs)
			p.ID = domain.PlotID(uuid.New())
			p.Status = domain.PlotStatusAvailable

			return &p, nil
		})
	rec = api.do(t, http.MethodPost, "/plots/", "admin", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"available"`)
}

func TestUpdateAndDeletePlot(t *testing.T) {
	api := newTestAPI(t, nil)
	api.as("admin", account(domain.RoleAdmin))
	id := domain.PlotID(uuid.New())

	status := domain.PlotStatusLocked
	api.plots.EXPECT().Update(gomock.Any(), id, storage.PlotUpdates{Status: &status}).
		Return(&domain.Plot{ID: id, Status: status}, nil)
	rec := api.do(t, http.MethodPut, "/plots/"+id.String(), "admin", `{"status":"locked"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	api.plots.EXPECT().Delete(gomock.Any(), id).Return(serrors.With(serrors.ErrNotFound, "plot not found"))
	rec = api.do(t, http.MethodDelete, "/plots/"+id.String(), "admin", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlotLock(t *testing.T) {
	api := newTestAPI(t, nil)
	user := account(domain.RoleUser)
	api.as("user", user)
	id := domain.PlotID(uuid.New())

	rec := api.do(t, http.MethodPost, "/plots/"+id.String()+"/lock", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	api.plots.EXPECT().Lock(gomock.Any(), user, id).Return(&domain.Plot{ID: id, Status: domain.PlotStatusLocked}, nil)
	rec = api.do(t, http.MethodPost, "/plots/"+id.String()+"/lock", "user", "")
	require.Equal(t, http.StatusOK, rec.Code)

	api.plots.EXPECT().Unlock(gomock.Any(), user, id).
		Return(nil, serrors.With(serrors.ErrConflict, "plot is not locked by you"))
	rec = api.do(t, http.MethodDelete, "/plots/"+id.String()+"/lock", "user", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLocations(t *testing.T) {
	api := newTestAPI(t, nil)
	var regionID, districtID int64 = 1, 2

	api.locations.EXPECT().Regions(gomock.Any()).Return([]domain.Region{{ID: 1, Name: "Dar es Salaam"}}, nil)
	api.locations.EXPECT().Districts(gomock.Any(), &regionID).Return([]domain.District{}, nil)
	api.locations.EXPECT().Councils(gomock.Any(), &districtID).Return([]domain.Council{}, nil)
	api.locations.EXPECT().Councils(gomock.Any(), nil).Return([]domain.Council{}, nil)

	rec := api.do(t, http.MethodGet, "/plots/locations/regions", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{"id":1,"name":"Dar es Salaam"}]`, rec.Body.String())

	require.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/plots/locations/districts?region_id=1", "", "").Code)
	require.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/plots/locations/councils?district_id=2", "", "").Code)
	require.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/plots/locations/councils", "", "").Code)
}

func TestOrders(t *testing.T) {
	api := newTestAPI(t, nil)
	user := account(domain.RoleUser)
	admin := account(domain.RoleAdmin)
	api.as("user", user)
	api.as("admin", admin)
	plotID := domain.PlotID(uuid.New())
	orderID := domain.OrderID(uuid.New())

	t.Run("create", func(t *testing.T) {
		api.orders.EXPECT().Create(gomock.Any(), user, plotID).
			Return(&domain.Order{ID: orderID, PlotID: plotID, UserID: user.ID, Status: domain.OrderStatusPending}, nil)

		rec := api.do(t, http.MethodPost, "/orders/", "user", `{"plot_id":"`+plotID.String()+`"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"order_status":"pending"`)
	})

	t.Run("create on unavailable plot", func(t *testing.T) {
		api.orders.EXPECT().Create(gomock.Any(), user, plotID).
			Return(nil, serrors.With(serrors.ErrConflict, "plot is not available for purchase"))

		rec := api.do(t, http.MethodPost, "/orders/", "user", `{"plot_id":"`+plotID.String()+`"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "plot is not available for purchase", decodeError(t, rec).Message)
	})

	t.Run("create without plot", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/orders/", "user", `{}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get forbidden", func(t *testing.T) {
		api.orders.EXPECT().Get(gomock.Any(), user, orderID).
			Return(nil, serrors.With(serrors.ErrForbidden, "not enough permissions"))

		rec := api.do(t, http.MethodGet, "/orders/"+orderID.String(), "user", "")
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		api.orders.EXPECT().List(gomock.Any(), user, uint(0), uint(0)).Return([]domain.OrderDetails{}, nil)

		rec := api.do(t, http.MethodGet, "/orders/", "user", "")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("update is admin only", func(t *testing.T) {
		rec := api.do(t, http.MethodPut, "/orders/"+orderID.String(), "user", `{"order_status":"completed"}`)
		require.Equal(t, http.StatusForbidden, rec.Code)

		api.orders.EXPECT().Update(gomock.Any(), orderID, domain.OrderStatusCompleted).
			Return(&domain.Order{ID: orderID, Status: domain.OrderStatusCompleted}, nil)
		rec = api.do(t, http.MethodPut, "/orders/"+orderID.String(), "admin", `{"order_status":"completed"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}
