package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormStockRecordRepository_FindForUpdate(t *testing.T) {
	t.Run("locks the business-level row", func(t *testing.T) {
		database, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()
		repo := NewGormStockRecordRepository(database.DB)

		key := inventory.StockKey{BusinessID: uuid.New(), ItemID: uuid.New()}
		rowID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(`SELECT \* FROM "stock_records" WHERE business_id = \$1 AND item_id = \$2 AND branch_id IS NULL .* FOR UPDATE`).
			WithArgs(key.BusinessID, key.ItemID, 1).
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "created_at", "updated_at", "version", "business_id", "branch_id", "item_id",
				"quantity", "reserved_quantity", "held_quantity", "min_quantity", "max_quantity",
			}).AddRow(
				rowID, now, now, 3, key.BusinessID, nil, key.ItemID,
				decimal.NewFromInt(12), decimal.NewFromInt(2), decimal.Zero, decimal.Zero, decimal.Zero,
			))

		rec, err := repo.FindForUpdate(context.Background(), key)

		require.NoError(t, err)
		assert.Equal(t, rowID, rec.ID)
		assert.Nil(t, rec.BranchID)
		assert.True(t, rec.Quantity.Equal(decimal.NewFromInt(12)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("locks a branch row", func(t *testing.T) {
		database, mock, mockDB := newMockDatabase(t)
		defer mockDB.Close()
		repo := NewGormStockRecordRepository(database.DB)

		branch := uuid.New()
		key := inventory.StockKey{BusinessID: uuid.New(), BranchID: &branch, ItemID: uuid.New()}

		mock.ExpectQuery(`SELECT \* FROM "stock_records" WHERE business_id = \$1 AND item_id = \$2 AND branch_id = \$3 .* FOR UPDATE`).
			WithArgs(key.BusinessID, key.ItemID, branch, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindForUpdate(context.Background(), key)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormStockRecordRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	repo := NewGormStockRecordRepository(db)

	businessID := uuid.New()
	branchA := uuid.New()
	itemID := uuid.New()
	businessKey := inventory.StockKey{BusinessID: businessID, ItemID: itemID}
	branchKey := inventory.StockKey{BusinessID: businessID, BranchID: &branchA, ItemID: itemID}

	t.Run("GetOrCreate inserts once per key", func(t *testing.T) {
		first, err := repo.GetOrCreate(ctx, businessKey)
		require.NoError(t, err)
		second, err := repo.GetOrCreate(ctx, businessKey)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		branchRow, err := repo.GetOrCreate(ctx, branchKey)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, branchRow.ID)
		assert.Equal(t, branchA, *branchRow.BranchID)
	})

	t.Run("Save persists quantities", func(t *testing.T) {
		rec, err := repo.Find(ctx, branchKey)
		require.NoError(t, err)
		rec.ApplyDelta(decimal.NewFromInt(40))
		require.NoError(t, rec.Reserve(decimal.NewFromInt(5)))
		rec.RecordCount(decimal.NewFromInt(40), time.Now())
		require.NoError(t, repo.Save(ctx, rec))

		found, err := repo.Find(ctx, branchKey)
		require.NoError(t, err)
		assert.True(t, found.Quantity.Equal(decimal.NewFromInt(40)))
		assert.True(t, found.ReservedQuantity.Equal(decimal.NewFromInt(5)))
		require.NotNil(t, found.LastCountQuantity)
		assert.True(t, found.LastCountQuantity.Equal(decimal.NewFromInt(40)))
	})

	t.Run("ListByBusiness with and without branch", func(t *testing.T) {
		all, err := repo.ListByBusiness(ctx, businessID, nil)
		require.NoError(t, err)
		assert.Len(t, all, 2)
		assert.Len(t, inventory.DedupeStock(all), 1)

		branchOnly, err := repo.ListByBusiness(ctx, businessID, &branchA)
		require.NoError(t, err)
		require.Len(t, branchOnly, 1)
		assert.True(t, branchOnly[0].IsBranchLevel())
	})

	t.Run("ListByItem returns every row of the item", func(t *testing.T) {
		other := inventory.StockKey{BusinessID: businessID, ItemID: uuid.New()}
		_, err := repo.GetOrCreate(ctx, other)
		require.NoError(t, err)

		rows, err := repo.ListByItem(ctx, businessID, itemID)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		for _, r := range rows {
			assert.Equal(t, itemID, r.ItemID)
		}

		none, err := repo.ListByItem(ctx, uuid.New(), itemID)
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestGormMovementRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	stock := NewGormStockRecordRepository(db)
	movements := NewGormMovementRepository(db)

	businessID := uuid.New()
	itemID := uuid.New()
	orderID := uuid.New()
	rec, err := stock.GetOrCreate(ctx, inventory.StockKey{BusinessID: businessID, ItemID: itemID})
	require.NoError(t, err)

	add := func(mt inventory.MovementType, delta int64, ref inventory.Reference) {
		before, after := rec.ApplyDelta(decimal.NewFromInt(delta))
		m, err := inventory.NewInventoryMovement(rec, mt, decimal.NewFromInt(delta), before, after)
		require.NoError(t, err)
		m.WithReference(ref)
		require.NoError(t, movements.Create(ctx, m))
	}
	add(inventory.MovementPurchaseReceive, 10, inventory.RefTo(inventory.ReferencePurchaseOrder, uuid.New()))
	add(inventory.MovementOrderConsume, -3, inventory.RefTo(inventory.ReferenceOrder, orderID))
	add(inventory.MovementOrderConsume, -20, inventory.RefTo(inventory.ReferenceOrder, orderID))

	t.Run("filters by movement type and reference", func(t *testing.T) {
		mt := inventory.MovementOrderConsume
		list, err := movements.List(ctx, inventory.MovementFilter{
			BusinessID:   businessID,
			MovementType: &mt,
			ReferenceID:  &orderID,
		})
		require.NoError(t, err)
		require.Len(t, list, 2)
		for _, m := range list {
			assert.Equal(t, inventory.ReferenceOrder, m.ReferenceType)
		}
	})

	t.Run("clamped movement keeps requested and applied deltas", func(t *testing.T) {
		list, err := movements.List(ctx, inventory.MovementFilter{BusinessID: businessID})
		require.NoError(t, err)
		require.Len(t, list, 3)

		var clamped *inventory.InventoryMovement
		for i := range list {
			if list[i].WasClamped() {
				clamped = &list[i]
			}
		}
		require.NotNil(t, clamped)
		assert.True(t, clamped.RequestedQuantity.Equal(decimal.NewFromInt(-20)))
		assert.True(t, clamped.Quantity.Equal(decimal.NewFromInt(-7)))
		assert.True(t, clamped.QuantityAfter.IsZero())
	})

	t.Run("pages results", func(t *testing.T) {
		list, err := movements.List(ctx, inventory.MovementFilter{
			BusinessID: businessID,
			Filter:     shared.Filter{Page: 2, PageSize: 2},
		})
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}
