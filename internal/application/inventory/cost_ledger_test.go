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

// addSauce builds the Sauce composite: 400 g tomato at 0.01 and 100 mL oil
// at 0.03 per 0.5 Kg batch, 0.014 per gram
func (h *harness) addSauce(t *testing.T) (sauce, tomato, oil *inventory.Item) {
	t.Helper()
	tomato = h.addItem(t, "Tomato", valueobject.UnitGrams, valueobject.UnitKg, "0.01")
	oil = h.addItem(t, "Oil", valueobject.UnitML, valueobject.UnitL, "0.03")

	var err error
	sauce, err = inventory.NewCompositeItem(&h.business, "Sauce", "prep", valueobject.UnitGrams, valueobject.UnitKg, dec("0.5"), valueobject.UnitKg)
	require.NoError(t, err)
	h.items.put(sauce)

	c1, err := inventory.NewCompositeComponent(sauce, tomato, dec("400"))
	require.NoError(t, err)
	c2, err := inventory.NewCompositeComponent(sauce, oil, dec("100"))
	require.NoError(t, err)
	require.NoError(t, h.components.ReplaceForComposite(context.Background(), sauce.ID, []inventory.CompositeComponent{*c1, *c2}))
	return sauce, tomato, oil
}

// receive books a delivery the way purchase receiving does: stock first,
// then the cost position
func (h *harness) receive(t *testing.T, itemID uuid.UUID, qty, total string) *CostUpdate {
	t.Helper()
	h.adjust(t, itemID, qty, inventory.MovementPurchaseReceive)
	update, err := h.costs.Receive(context.Background(), h.business, itemID, dec(qty), dec(total))
	require.NoError(t, err)
	return update
}

func (h *harness) adjust(t *testing.T, itemID uuid.UUID, delta string, movement inventory.MovementType) {
	t.Helper()
	_, err := h.ledger.Adjust(context.Background(), AdjustInput{
		Key:          h.key(itemID, nil),
		Delta:        dec(delta),
		MovementType: movement,
	})
	require.NoError(t, err)
}

func TestCostLedger_Receive(t *testing.T) {
	ctx := context.Background()

	t.Run("first receipt sets cost per serving unit", func(t *testing.T) {
		h := newHarness(t)
		flour := h.addItem(t, "Flour", valueobject.UnitGrams, valueobject.UnitKg, "0")

		update := h.receive(t, flour.ID, "50", "625")
		assert.True(t, update.NewCost.Equal(dec("0.0125")), "got %s", update.NewCost)
		assert.True(t, update.ReceivedQuantity.Equal(dec("50000")))
		assert.True(t, update.TotalStockQuantity.Equal(dec("50000")))
		assert.True(t, update.TotalStockValue.Equal(dec("625")))

		stored, err := h.items.FindByID(ctx, flour.ID)
		require.NoError(t, err)
		assert.True(t, stored.CostPerUnit.Equal(dec("0.0125")))

		events := h.events.byType(inventory.EventTypeItemCostChanged)
		require.Len(t, events, 1)
		e := events[0].(*inventory.ItemCostChangedEvent)
		assert.Equal(t, inventory.CostSourceReceipt, e.Source)
		assert.True(t, e.PreviousCost.IsZero())
	})

	t.Run("second receipt blends into the weighted average", func(t *testing.T) {
		h := newHarness(t)
		flour := h.addItem(t, "Flour", valueobject.UnitGrams, valueobject.UnitKg, "0")

		h.receive(t, flour.ID, "50", "625")
		update := h.receive(t, flour.ID, "50", "875")
		assert.True(t, update.PreviousCost.Equal(dec("0.0125")))
		assert.True(t, update.NewCost.Equal(dec("0.015")), "got %s", update.NewCost)
		assert.True(t, update.TotalStockQuantity.Equal(dec("100000")))
	})

	t.Run("consumed stock no longer blends into the next receipt", func(t *testing.T) {
		h := newHarness(t)
		flour := h.addItem(t, "Flour", valueobject.UnitGrams, valueobject.UnitKg, "0")

		first := h.receive(t, flour.ID, "10", "100")
		assert.True(t, first.NewCost.Equal(dec("0.01")), "got %s", first.NewCost)
		h.adjust(t, flour.ID, "-10", inventory.MovementOrderConsume)

		update := h.receive(t, flour.ID, "10", "200")
		assert.True(t, update.NewCost.Equal(dec("0.02")), "got %s", update.NewCost)
		assert.True(t, update.TotalStockQuantity.Equal(dec("10000")), "got %s", update.TotalStockQuantity)
		assert.True(t, update.TotalStockValue.Equal(dec("200")), "got %s", update.TotalStockValue)
	})

	t.Run("partly consumed stock blends at its remaining quantity", func(t *testing.T) {
		h := newHarness(t)
		flour := h.addItem(t, "Flour", valueobject.UnitGrams, valueobject.UnitKg, "0")

		h.receive(t, flour.ID, "10", "100")
		h.adjust(t, flour.ID, "-5", inventory.MovementManualWaste)

		// 5000 g at 0.01 plus 5000 g at 0.03
		update := h.receive(t, flour.ID, "5", "150")
		assert.True(t, update.NewCost.Equal(dec("0.02")), "got %s", update.NewCost)
		assert.True(t, update.TotalStockQuantity.Equal(dec("10000")))
	})

	t.Run("reads the item under a row lock", func(t *testing.T) {
		h := newHarness(t)
		flour := h.addItem(t, "Flour", valueobject.UnitGrams, valueobject.UnitKg, "0")

		h.receive(t, flour.ID, "10", "100")
		assert.Equal(t, 1, h.items.locked(flour.ID))
	})

	t.Run("same cost publishes nothing", func(t *testing.T) {
		h := newHarness(t)
		flour := h.addItem(t, "Flour", valueobject.UnitGrams, valueobject.UnitKg, "0.0125")

		update := h.receive(t, flour.ID, "10", "125")
		assert.False(t, update.Changed())
		assert.Empty(t, h.events.byType(inventory.EventTypeItemCostChanged))
	})

	t.Run("shared item keeps a per-business position", func(t *testing.T) {
		h := newHarness(t)
		other := uuid.New()
		salt, err := inventory.NewItem(nil, "Salt", "pantry", valueobject.UnitGrams, valueobject.UnitKg, dec("0.001"))
		require.NoError(t, err)
		h.items.put(salt)

		update := h.receive(t, salt.ID, "10", "30")
		assert.True(t, update.NewCost.Equal(dec("0.003")))

		price, err := h.prices.Find(ctx, h.business, salt.ID)
		require.NoError(t, err)
		assert.True(t, price.Price.Equal(dec("0.003")))

		stored, err := h.items.FindByID(ctx, salt.ID)
		require.NoError(t, err)
		assert.True(t, stored.CostPerUnit.Equal(dec("0.001")), "shared default must not move")

		otherCost, err := h.costs.CurrentCost(ctx, other, salt.ID)
		require.NoError(t, err)
		assert.True(t, otherCost.Equal(dec("0.001")))
	})

	t.Run("zero quantity with cost keeps position", func(t *testing.T) {
		h := newHarness(t)
		flour := h.addItem(t, "Flour", valueobject.UnitGrams, valueobject.UnitKg, "0.01")
		h.receive(t, flour.ID, "10", "100")

		update, err := h.costs.Receive(ctx, h.business, flour.ID, dec("0"), dec("0"))
		require.NoError(t, err)
		assert.True(t, update.NewCost.Equal(dec("0.01")))
		assert.True(t, update.TotalStockQuantity.Equal(dec("10000")))
	})

	t.Run("validation", func(t *testing.T) {
		h := newHarness(t)
		flour := h.addItem(t, "Flour", valueobject.UnitGrams, valueobject.UnitKg, "0.01")

		_, err := h.costs.Receive(ctx, h.business, flour.ID, dec("1"), dec("-1"))
		assert.ErrorIs(t, err, shared.ErrValidation)

		_, err = h.costs.Receive(ctx, h.business, uuid.New(), dec("1"), dec("1"))
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = h.costs.Receive(ctx, uuid.New(), flour.ID, dec("1"), dec("1"))
		assert.ErrorIs(t, err, shared.ErrNotFound, "another business's item is invisible")
	})
}

func TestCostLedger_Composite(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	sauce, tomato, _ := h.addSauce(t)

	cost, err := h.costs.CompositeUnitCost(ctx, h.business, sauce.ID)
	require.NoError(t, err)
	assert.True(t, cost.Equal(dec("0.014")), "got %s", cost)

	update, err := h.costs.RecomputeComposite(ctx, h.business, sauce.ID)
	require.NoError(t, err)
	assert.True(t, update.NewCost.Equal(dec("0.014")))

	events := h.events.byType(inventory.EventTypeItemCostChanged)
	require.Len(t, events, 1)
	assert.Equal(t, inventory.CostSourceCascade, events[0].(*inventory.ItemCostChangedEvent).Source)

	// tomato doubles: 400*0.02 + 100*0.03 = 11 per 500 g
	stored, err := h.items.FindByID(ctx, tomato.ID)
	require.NoError(t, err)
	stored.SetCost(dec("0.02"))
	h.items.put(stored)

	cost, err = h.costs.CompositeUnitCost(ctx, h.business, sauce.ID)
	require.NoError(t, err)
	assert.True(t, cost.Equal(dec("0.022")), "got %s", cost)
}

func TestCostLedger_StockValue(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	flour := h.addItem(t, "Flour", valueobject.UnitGrams, valueobject.UnitKg, "0")
	h.receive(t, flour.ID, "50", "625")

	value, err := h.costs.StockValue(ctx, h.business, flour.ID)
	require.NoError(t, err)
	assert.True(t, value.TotalStockValue.Equal(dec("625")))
	assert.True(t, value.NewCost.Equal(dec("0.0125")))

	h.adjust(t, flour.ID, "-20", inventory.MovementOrderConsume)
	value, err = h.costs.StockValue(ctx, h.business, flour.ID)
	require.NoError(t, err)
	assert.True(t, value.TotalStockQuantity.Equal(dec("30000")), "got %s", value.TotalStockQuantity)
	assert.True(t, value.TotalStockValue.Equal(dec("375")), "got %s", value.TotalStockValue)
}
