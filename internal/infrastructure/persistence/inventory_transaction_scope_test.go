package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	appinv "github.com/restopos/backend/internal/application/inventory"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormTransactionScope_Execute(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	scope := NewGormTransactionScope(db)
	stock := NewGormStockRecordRepository(db)

	key := inventory.StockKey{BusinessID: uuid.New(), ItemID: uuid.New()}

	adjust := func(repos appinv.TransactionalRepositories, delta int64) error {
		rec, err := repos.StockRepo().GetOrCreate(ctx, key)
		if err != nil {
			return err
		}
		before, after := rec.ApplyDelta(decimal.NewFromInt(delta))
		if err := repos.StockRepo().Save(ctx, rec); err != nil {
			return err
		}
		m, err := inventory.NewInventoryMovement(rec, inventory.MovementManualAdjustment, decimal.NewFromInt(delta), before, after)
		if err != nil {
			return err
		}
		return repos.MovementRepo().Create(ctx, m)
	}

	t.Run("commits stock and movement together", func(t *testing.T) {
		require.NoError(t, scope.Execute(ctx, func(repos appinv.TransactionalRepositories) error {
			return adjust(repos, 12)
		}))

		rec, err := stock.Find(ctx, key)
		require.NoError(t, err)
		assert.True(t, rec.Quantity.Equal(decimal.NewFromInt(12)))

		movements, err := NewGormMovementRepository(db).List(ctx, inventory.MovementFilter{BusinessID: key.BusinessID})
		require.NoError(t, err)
		assert.Len(t, movements, 1)
	})

	t.Run("rolls back every write on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := scope.Execute(ctx, func(repos appinv.TransactionalRepositories) error {
			if err := adjust(repos, -5); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		rec, err := stock.Find(ctx, key)
		require.NoError(t, err)
		assert.True(t, rec.Quantity.Equal(decimal.NewFromInt(12)))

		movements, err := NewGormMovementRepository(db).List(ctx, inventory.MovementFilter{BusinessID: key.BusinessID})
		require.NoError(t, err)
		assert.Len(t, movements, 1)
	})

	t.Run("item repository joins the transaction", func(t *testing.T) {
		var itemID uuid.UUID
		err := scope.Execute(ctx, func(repos appinv.TransactionalRepositories) error {
			item, err := inventory.NewItem(&key.BusinessID, "Basil", "", "grams", "Kg", decimal.Zero)
			if err != nil {
				return err
			}
			itemID = item.ID
			if err := repos.ItemRepo().Save(ctx, item); err != nil {
				return err
			}
			return errors.New("abort")
		})
		require.Error(t, err)

		_, err = NewGormItemRepository(db).FindByID(ctx, itemID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
