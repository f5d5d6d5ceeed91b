package agent_test

import (
	"testing"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/agent"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAgent(t *testing.T) {
	t.Run("creates_agent_with_normalized_coverage", func(t *testing.T) {
		// Given
		id := kernel.NewUUID()

		// When
		a, err := agent.NewAgent(id, "Ravi", "  Mumbai ", []string{" 400001", "400002 "})

		// Then
		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, id, a.ID())
		assert.Equal(t, "Ravi", a.Name())
		assert.Equal(t, "mumbai", a.ServiceArea())
		assert.Equal(t, []string{"400001", "400002"}, a.ServicePincodes())
	})

	t.Run("deduplicates_pincodes", func(t *testing.T) {
		a, err := agent.NewAgent(kernel.NewUUID(), "Ravi", "Delhi", []string{"110001", "110001", "110002"})

		require.NoError(t, err)
		assert.Equal(t, []string{"110001", "110002"}, a.ServicePincodes())
	})

	t.Run("allows_empty_pincode_set", func(t *testing.T) {
		a, err := agent.NewAgent(kernel.NewUUID(), "Ravi", "Delhi", nil)

		require.NoError(t, err)
		assert.Empty(t, a.ServicePincodes())
	})

	t.Run("requires_name", func(t *testing.T) {
		_, err := agent.NewAgent(kernel.NewUUID(), "", "Delhi", nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_service_area", func(t *testing.T) {
		_, err := agent.NewAgent(kernel.NewUUID(), "Ravi", "   ", nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_blank_pincode", func(t *testing.T) {
		_, err := agent.NewAgent(kernel.NewUUID(), "Ravi", "Delhi", []string{"110001", "  "})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_valid_id", func(t *testing.T) {
		_, err := agent.NewAgent(kernel.UUID{}, "Ravi", "Delhi", nil)

		require.Error(t, err)
	})
}

func TestAgent_Coverage(t *testing.T) {
	a, err := agent.NewAgent(kernel.NewUUID(), "Ravi", "Mumbai", []string{"400001"})
	require.NoError(t, err)

	t.Run("serves_pincode_ignores_whitespace", func(t *testing.T) {
		assert.True(t, a.ServesPincode(" 400001 "))
		assert.False(t, a.ServesPincode("400002"))
	})

	t.Run("serves_city_is_case_insensitive", func(t *testing.T) {
		assert.True(t, a.ServesCity("MUMBAI"))
		assert.True(t, a.ServesCity(" mumbai "))
		assert.False(t, a.ServesCity("Pune"))
	})
}

func TestAgent_UpdateCoverage(t *testing.T) {
	t.Run("replaces_area_and_pincodes", func(t *testing.T) {
		a, err := agent.NewAgent(kernel.NewUUID(), "Ravi", "Mumbai", []string{"400001"})
		require.NoError(t, err)

		err = a.UpdateCoverage("Pune", []string{"411001"})

		require.NoError(t, err)
		assert.Equal(t, "pune", a.ServiceArea())
		assert.Equal(t, []string{"411001"}, a.ServicePincodes())
	})

	t.Run("rejects_empty_area", func(t *testing.T) {
		a, err := agent.NewAgent(kernel.NewUUID(), "Ravi", "Mumbai", []string{"400001"})
		require.NoError(t, err)

		err = a.UpdateCoverage("", nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAgent_Validate(t *testing.T) {
	t.Run("unconstructed_agent_is_invalid", func(t *testing.T) {
		var a agent.Agent

		require.ErrorIs(t, a.Validate(), agent.ErrAgentIsNotConstructed)
	})
}
