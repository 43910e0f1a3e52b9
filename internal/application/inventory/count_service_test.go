package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryCountService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	branch := uuid.New()
	flour := h.addItem(t, "Flour", valueobject.UnitGrams, valueobject.UnitKg, "0.01")
	sugar := h.addItem(t, "Sugar", valueobject.UnitGrams, valueobject.UnitKg, "0.02")
	salt := h.addItem(t, "Salt", valueobject.UnitGrams, valueobject.UnitKg, "0.001")
	h.setStock(t, h.key(flour.ID, &branch), "10")
	h.setStock(t, h.key(sugar.ID, &branch), "4")
	actor := uuid.New()

	c, err := h.countSvc.Create(ctx, h.business, &branch, " weekly ", &actor)
	require.NoError(t, err)
	require.Len(t, c.Lines, 3)
	expected := map[uuid.UUID]string{}
	for _, l := range c.Lines {
		expected[l.ItemID] = l.ExpectedQuantity.String()
	}
	assert.Equal(t, map[uuid.UUID]string{flour.ID: "10", sugar.ID: "4", salt.ID: "0"}, expected)
	assert.Equal(t, "weekly", c.Notes)

	line, err := h.countSvc.RecordCount(ctx, h.business, c.ID, flour.ID, dec("8.5"))
	require.NoError(t, err)
	assert.True(t, line.Variance.Equal(dec("-1.5")))
	_, err = h.countSvc.RecordCount(ctx, h.business, c.ID, sugar.ID, dec("4"))
	require.NoError(t, err)

	_, err = h.countSvc.Complete(ctx, h.business, c.ID, &actor)
	require.ErrorIs(t, err, shared.ErrValidation)
	assert.Contains(t, err.Error(), "Salt")
	assert.Empty(t, h.movements.all())

	_, err = h.countSvc.RecordCount(ctx, h.business, c.ID, salt.ID, dec("2"))
	require.NoError(t, err)

	done, err := h.countSvc.Complete(ctx, h.business, c.ID, &actor)
	require.NoError(t, err)
	assert.Equal(t, inventory.CountCompleted, done.Status)

	assert.True(t, h.stock.get(h.key(flour.ID, &branch)).Quantity.Equal(dec("8.5")))
	assert.True(t, h.stock.get(h.key(sugar.ID, &branch)).Quantity.Equal(dec("4")))
	assert.True(t, h.stock.get(h.key(salt.ID, &branch)).Quantity.Equal(dec("2")))

	moves := h.movements.all()
	require.Len(t, moves, 2, "only lines with a variance move stock")
	for _, m := range moves {
		assert.Equal(t, inventory.MovementCountAdjustment, m.MovementType)
		assert.Equal(t, inventory.ReferenceInventoryCount, m.ReferenceType)
	}

	stamped := h.stock.get(h.key(sugar.ID, &branch))
	require.NotNil(t, stamped.LastCountDate)
	assert.True(t, stamped.LastCountQuantity.Equal(dec("4")))

	events := h.events.byType(inventory.EventTypeInventoryCountCompleted)
	require.Len(t, events, 1)

	_, err = h.countSvc.Cancel(ctx, h.business, c.ID)
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestInventoryCountService_Cancel(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.addItem(t, "Flour", valueobject.UnitGrams, valueobject.UnitKg, "0.01")

	c, err := h.countSvc.Create(ctx, h.business, nil, "", nil)
	require.NoError(t, err)

	cancelled, err := h.countSvc.Cancel(ctx, h.business, c.ID)
	require.NoError(t, err)
	assert.Equal(t, inventory.CountCancelled, cancelled.Status)

	_, err = h.countSvc.RecordCount(ctx, h.business, c.ID, uuid.New(), dec("1"))
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestInventoryCountService_ScopedToBusiness(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	c, err := h.countSvc.Create(ctx, h.business, nil, "", nil)
	require.NoError(t, err)

	_, err = h.countSvc.Get(ctx, uuid.New(), c.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
