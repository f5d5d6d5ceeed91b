package queries_test

import (
	"testing"

	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/application/usecases/queries"
	"github.com/dadicpbdm-ship-it/Jewellery-Working-Product-sub000/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetLoyaltyDashboardQuery_Valid(t *testing.T) {
	userID := kernel.NewUUID()

	query, err := queries.NewGetLoyaltyDashboardQuery(userID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, userID, query.UserID())
}

func TestNewGetLoyaltyDashboardQuery_InvalidUserID(t *testing.T) {
	_, err := queries.NewGetLoyaltyDashboardQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetLoyaltyDashboardQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetLoyaltyDashboardQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetLoyaltyDashboardQueryIsNotConstructed)
}
