package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/purchasing"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPurchaseOrder(t *testing.T, businessID uuid.UUID, number string) *purchasing.PurchaseOrder {
	t.Helper()
	po, err := purchasing.NewPurchaseOrder(businessID, nil, "Fresh Farms", number, []purchasing.LineInput{
		{ItemID: uuid.New(), ItemName: "Tomato", Quantity: decimal.NewFromInt(10)},
		{ItemID: uuid.New(), ItemName: "Onion", Quantity: decimal.NewFromInt(4)},
	})
	require.NoError(t, err)
	return po
}

func TestGormPurchaseOrderRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	repo := NewGormPurchaseOrderRepository(db)
	businessID := uuid.New()

	po := newTestPurchaseOrder(t, businessID, "PO-20260101-ABC123")
	require.NoError(t, repo.Save(ctx, po))

	t.Run("ExistsByOrderNumber is scoped to the business", func(t *testing.T) {
		exists, err := repo.ExistsByOrderNumber(ctx, businessID, "PO-20260101-ABC123")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByOrderNumber(ctx, uuid.New(), "PO-20260101-ABC123")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("counted lines round trip", func(t *testing.T) {
		require.NoError(t, po.Count([]purchasing.LineCount{
			{LineID: po.Lines[0].ID, CountedQuantity: decimal.NewFromInt(8), VarianceReason: purchasing.VarianceMissing, BarcodeScans: 1},
			{LineID: po.Lines[1].ID, CountedQuantity: decimal.NewFromInt(4), BarcodeScans: 2},
		}, nil))
		require.NoError(t, repo.Save(ctx, po))

		found, err := repo.FindByID(ctx, po.ID)
		require.NoError(t, err)
		assert.Equal(t, purchasing.StatusCounted, found.Status)
		line, ok := found.Line(po.Lines[0].ID)
		require.True(t, ok)
		require.NotNil(t, line.VarianceReason)
		assert.Equal(t, purchasing.VarianceMissing, *line.VarianceReason)
		assert.True(t, line.CountedQuantity.Equal(decimal.NewFromInt(8)))

		other, ok := found.Line(po.Lines[1].ID)
		require.True(t, ok)
		assert.Nil(t, other.VarianceReason)
		assert.Equal(t, 2, other.BarcodeScans)
	})

	t.Run("lines dropped from the order are deleted", func(t *testing.T) {
		draft := newTestPurchaseOrder(t, businessID, "PO-20260101-DEF456")
		require.NoError(t, repo.Save(ctx, draft))

		draft.Lines = draft.Lines[:1]
		require.NoError(t, repo.Save(ctx, draft))

		found, err := repo.FindByID(ctx, draft.ID)
		require.NoError(t, err)
		assert.Len(t, found.Lines, 1)
	})

	t.Run("missing order", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormActivityRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	repo := NewGormActivityRepository(db)

	po := newTestPurchaseOrder(t, uuid.New(), "PO-1")
	created := purchasing.NewActivity(po, purchasing.ActionCreated, nil, map[string]any{"lines": 2}, nil)
	require.NoError(t, repo.Create(ctx, created))

	pending := purchasing.StatusPending
	po.Status = purchasing.StatusCancelled
	actor := uuid.New()
	cancelled := purchasing.NewActivity(po, purchasing.ActionCancelled, &pending, map[string]any{"reason": "vendor closed"}, &actor)
	cancelled.CreatedAt = created.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Create(ctx, cancelled))

	history, err := repo.ListByPurchaseOrder(ctx, po.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, purchasing.ActionCreated, history[0].Action)
	assert.Nil(t, history[0].OldStatus)
	assert.Equal(t, purchasing.ActionCancelled, history[1].Action)
	require.NotNil(t, history[1].OldStatus)
	assert.Equal(t, purchasing.StatusPending, *history[1].OldStatus)
	assert.Equal(t, "vendor closed", history[1].Changes["reason"])
	assert.Equal(t, actor, *history[1].ActorID)
}

func TestGormBusinessSettingsRepository_TaxRate(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	repo := NewGormBusinessSettingsRepository(db)

	withRate := uuid.New()
	unset := uuid.New()
	rate := decimal.RequireFromString("0.16")
	require.NoError(t, db.Create(&models.BusinessSettingModel{BusinessID: withRate, PurchaseTaxRate: &rate}).Error)
	require.NoError(t, db.Create(&models.BusinessSettingModel{BusinessID: unset}).Error)

	got, ok, err := repo.TaxRate(ctx, withRate)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, got.Equal(rate))

	_, ok, err = repo.TaxRate(ctx, unset)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = repo.TaxRate(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)
}
