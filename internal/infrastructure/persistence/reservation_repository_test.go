package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormReservationRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	repo := NewGormReservationRepository(db)

	businessID := uuid.New()
	branchID := uuid.New()
	orderID := uuid.New()
	flour := uuid.New()
	cheese := uuid.New()

	reqs := []inventory.Requirement{
		{ItemID: flour, Quantity: decimal.RequireFromString("0.25")},
		{ItemID: cheese, Quantity: decimal.RequireFromString("0.1")},
	}
	first := inventory.NewOrderReservation(businessID, &branchID, orderID, uuid.New(), reqs)
	second := inventory.NewOrderReservation(businessID, &branchID, orderID, uuid.New(), reqs[:1])
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	t.Run("FindByOrderItem restores components", func(t *testing.T) {
		found, err := repo.FindByOrderItem(ctx, businessID, orderID, first.OrderItemID)
		require.NoError(t, err)
		assert.Equal(t, inventory.ReservationReserved, found.Status)
		require.Len(t, found.Components, 2)
		assert.Equal(t, flour, found.Components[0].ItemID)
		assert.True(t, found.Components[1].Quantity.Equal(decimal.RequireFromString("0.1")))
		require.NotNil(t, found.BranchID)
		assert.Equal(t, branchID, *found.BranchID)
	})

	t.Run("FindByOrderItem returns ErrNotFound", func(t *testing.T) {
		_, err := repo.FindByOrderItem(ctx, businessID, orderID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("FindByOrder lists every item", func(t *testing.T) {
		list, err := repo.FindByOrder(ctx, businessID, orderID)
		require.NoError(t, err)
		assert.Len(t, list, 2)

		list, err = repo.FindByOrder(ctx, uuid.New(), orderID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("FindExpiredPendingDecisions honours the deadline", func(t *testing.T) {
		now := time.Now().UTC()
		require.NoError(t, first.MarkPendingDecision(now.Add(-2*time.Hour), time.Hour))
		require.NoError(t, second.MarkPendingDecision(now, time.Hour))
		require.NoError(t, repo.Save(ctx, first))
		require.NoError(t, repo.Save(ctx, second))

		expired, err := repo.FindExpiredPendingDecisions(ctx, now, 10)
		require.NoError(t, err)
		require.Len(t, expired, 1)
		assert.Equal(t, first.ID, expired[0].ID)
		assert.True(t, expired[0].IsDecisionExpired(now))

		later, err := repo.FindExpiredPendingDecisions(ctx, now.Add(2*time.Hour), 1)
		require.NoError(t, err)
		require.Len(t, later, 1)
		assert.Equal(t, first.ID, later[0].ID)
	})

	t.Run("resolved reservations leave the sweep", func(t *testing.T) {
		require.NoError(t, first.MarkWasted(inventory.DecisionAutoWaste))
		require.NoError(t, repo.Save(ctx, first))

		expired, err := repo.FindExpiredPendingDecisions(ctx, time.Now().UTC().Add(3*time.Hour), 0)
		require.NoError(t, err)
		require.Len(t, expired, 1)
		assert.Equal(t, second.ID, expired[0].ID)
	})
}
