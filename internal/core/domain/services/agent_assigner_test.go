package services_test

import (
	"testing"
	"time"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/agent"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/order"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderTo(t *testing.T, city, pincode string) *order.Order {
	t.Helper()

	destination, err := kernel.NewDestination(city, pincode)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Gold Ring", 1, 12500)
	require.NoError(t, err)
	ord, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), []order.Item{item},
		destination, order.Prepaid, order.RewardPointsUsed{}, time.Now(),
	)
	require.NoError(t, err)
	return ord
}

func newAgent(t *testing.T, name, city string, pincodes ...string) *agent.Agent {
	t.Helper()

	a, err := agent.NewAgent(kernel.NewUUID(), name, city, pincodes)
	require.NoError(t, err)
	return a
}

func TestAgentAssigner_Assign(t *testing.T) {
	assigner := services.NewAgentAssigner()

	t.Run("should prefer pincode match over city match", func(t *testing.T) {
		pincodeAgent := newAgent(t, "Asha", "Mumbai", "400001")
		cityAgent := newAgent(t, "Ravi", "Mumbai")
		ord := newOrderTo(t, "Mumbai", "400001")

		// The pincode match carries more load yet still wins: tiers are
		// evaluated strictly in order, load only breaks ties within a tier.
		loads := map[kernel.UUID]int{
			pincodeAgent.ID(): 5,
			cityAgent.ID():    0,
		}

		result, err := assigner.Assign(ord, []*agent.Agent{cityAgent, pincodeAgent}, loads)

		require.NoError(t, err)
		assert.True(t, result.IsEqual(pincodeAgent))
		require.NotNil(t, ord.Agent())
		assert.True(t, ord.Agent().IsEqual(pincodeAgent.ID()))
	})

	t.Run("should prefer city match over global fallback", func(t *testing.T) {
		cityAgent := newAgent(t, "Ravi", "Mumbai")
		otherAgent := newAgent(t, "Vikram", "Delhi")
		ord := newOrderTo(t, "Mumbai", "400099")

		loads := map[kernel.UUID]int{
			cityAgent.ID():  3,
			otherAgent.ID(): 0,
		}

		result, err := assigner.Assign(ord, []*agent.Agent{otherAgent, cityAgent}, loads)

		require.NoError(t, err)
		assert.True(t, result.IsEqual(cityAgent))
	})

	t.Run("should fall back to any agent when nothing matches", func(t *testing.T) {
		delhiAgent := newAgent(t, "Vikram", "Delhi", "110001")
		ord := newOrderTo(t, "Chennai", "600001")

		result, err := assigner.Assign(ord, []*agent.Agent{delhiAgent}, nil)

		require.NoError(t, err)
		assert.True(t, result.IsEqual(delhiAgent))
	})

	t.Run("should pick least loaded within the matching tier", func(t *testing.T) {
		busy := newAgent(t, "Asha", "Mumbai", "400001")
		idle := newAgent(t, "Meera", "Mumbai", "400001")
		ord := newOrderTo(t, "Mumbai", "400001")

		loads := map[kernel.UUID]int{
			busy.ID(): 4,
			idle.ID(): 1,
		}

		result, err := assigner.Assign(ord, []*agent.Agent{busy, idle}, loads)

		require.NoError(t, err)
		assert.True(t, result.IsEqual(idle))
	})

	t.Run("should treat agents missing from loads as idle", func(t *testing.T) {
		busy := newAgent(t, "Asha", "Mumbai", "400001")
		unknown := newAgent(t, "Meera", "Mumbai", "400001")
		ord := newOrderTo(t, "Mumbai", "400001")

		loads := map[kernel.UUID]int{busy.ID(): 2}

		result, err := assigner.Assign(ord, []*agent.Agent{busy, unknown}, loads)

		require.NoError(t, err)
		assert.True(t, result.IsEqual(unknown))
	})

	t.Run("should match pincode and city case-insensitively", func(t *testing.T) {
		cityAgent := newAgent(t, "Ravi", "MUMBAI")
		otherAgent := newAgent(t, "Vikram", "Delhi")
		ord := newOrderTo(t, "mumbai", "400050")

		result, err := assigner.Assign(ord, []*agent.Agent{otherAgent, cityAgent}, nil)

		require.NoError(t, err)
		assert.True(t, result.IsEqual(cityAgent))
	})

	t.Run("should return error when no agents registered", func(t *testing.T) {
		ord := newOrderTo(t, "Mumbai", "400001")

		result, err := assigner.Assign(ord, nil, nil)

		require.Error(t, err)
		assert.Nil(t, result)
		require.ErrorIs(t, err, services.ErrNoAgentAvailable)
		assert.Nil(t, ord.Agent())
	})

	t.Run("should refuse to reassign an assigned order", func(t *testing.T) {
		ag := newAgent(t, "Ravi", "Mumbai")
		ord := newOrderTo(t, "Mumbai", "400001")
		_, err := assigner.Assign(ord, []*agent.Agent{ag}, nil)
		require.NoError(t, err)

		_, err = assigner.Assign(ord, []*agent.Agent{ag}, nil)

		require.Error(t, err)
	})
}
