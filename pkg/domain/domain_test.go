package domain_test

import (
	"encoding/json"
	"plotmarket/pkg/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestOrderStatus_PlotTransition(t *testing.T) {
	tests := []struct {
		status   domain.OrderStatus
		want     domain.PlotStatus
		hasPlot  bool
		validity bool
	}{
		{domain.OrderStatusCompleted, domain.PlotStatusSold, true, true},
		{domain.OrderStatusCancelled, domain.PlotStatusAvailable, true, true},
		{domain.OrderStatusPending, "", false, true},
		{domain.OrderStatusProcessing, "", false, true},
		{domain.OrderStatusPaymentFailed, "", false, true},
		{domain.OrderStatus("shipped"), "", false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got, ok := tt.status.PlotTransition()
			require.Equal(t, tt.hasPlot, ok)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.validity, tt.status.Valid())
		})
	}
}

func TestRole(t *testing.T) {
	require.True(t, domain.RoleAdmin.IsAdmin())
	require.True(t, domain.RoleMasterAdmin.IsAdmin())
	require.False(t, domain.RoleUser.IsAdmin())
	require.False(t, domain.RolePartner.IsAdmin())
	require.False(t, domain.Role("root").Valid())
	require.True(t, domain.RolePartner.Valid())
}

func TestIDs_JSONRoundTrip(t *testing.T) {
	id := uuid.New()
	order := domain.Order{ID: domain.OrderID(id), Status: domain.OrderStatusPending}

	b, err := json.Marshal(order)
	require.NoError(t, err)
	require.Contains(t, string(b), `"id":"`+id.String()+`"`)

	var decoded domain.Order
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Equal(t, order.ID, decoded.ID)
}
