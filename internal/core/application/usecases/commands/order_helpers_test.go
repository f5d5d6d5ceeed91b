package commands_test

import (
	"testing"
	"time"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func buildOrder(t *testing.T, customerID kernel.UUID, method order.PaymentMethod) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "Gold Ring", 1, 12500)
	require.NoError(t, err)
	destination, err := kernel.NewDestination("Mumbai", "400001")
	require.NoError(t, err)
	ord, err := order.NewOrder(
		kernel.NewUUID(), customerID, []order.Item{item},
		destination, method, order.RewardPointsUsed{}, time.Now(),
	)
	require.NoError(t, err)
	return ord
}

func buildAssignedOrder(t *testing.T, customerID kernel.UUID, agentID kernel.UUID, method order.PaymentMethod) *order.Order {
	t.Helper()

	ord := buildOrder(t, customerID, method)
	require.NoError(t, ord.AssignAgent(agentID))
	return ord
}

func buildDeliveredOrder(t *testing.T, customerID kernel.UUID, agentID kernel.UUID) *order.Order {
	t.Helper()

	ord := buildAssignedOrder(t, customerID, agentID, order.Prepaid)
	require.NoError(t, ord.MarkPaid())
	require.NoError(t, ord.MarkDelivered())
	return ord
}
