package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("parses unit aliases", func(t *testing.T) {
		h := newHarness(t)
		item, err := h.itemSvc.Create(ctx, CreateItemInput{
			BusinessID:  &h.business,
			Name:        "Flour",
			ServingUnit: "g",
			StorageUnit: "kilo",
			CostPerUnit: dec("0.01"),
			Barcode:     " 4006381333931 ",
		})
		require.NoError(t, err)
		assert.Equal(t, "grams", item.ServingUnit.String())
		assert.Equal(t, "Kg", item.StorageUnit.String())
		assert.Equal(t, "4006381333931", item.Barcode)
	})

	t.Run("composite with batch", func(t *testing.T) {
		h := newHarness(t)
		item, err := h.itemSvc.Create(ctx, CreateItemInput{
			BusinessID:    &h.business,
			Name:          "Sauce",
			ServingUnit:   "grams",
			StorageUnit:   "Kg",
			IsComposite:   true,
			BatchQuantity: dec("2"),
			BatchUnit:     "kg",
		})
		require.NoError(t, err)
		assert.True(t, item.IsComposite)
		batch, err := item.BatchQuantityInServingUnits()
		require.NoError(t, err)
		assert.True(t, batch.Equal(dec("2000")))
	})

	tests := []struct {
		name    string
		input   func(h *harness) CreateItemInput
		wantErr error
	}{
		{
			name: "unknown unit",
			input: func(h *harness) CreateItemInput {
				return CreateItemInput{BusinessID: &h.business, Name: "X", ServingUnit: "cup", StorageUnit: "Kg"}
			},
			wantErr: shared.ErrValidation,
		},
		{
			name: "incompatible units",
			input: func(h *harness) CreateItemInput {
				return CreateItemInput{BusinessID: &h.business, Name: "X", ServingUnit: "grams", StorageUnit: "L"}
			},
			wantErr: shared.ErrIncompatibleUnits,
		},
		{
			name: "duplicate name",
			input: func(h *harness) CreateItemInput {
				return CreateItemInput{BusinessID: &h.business, Name: "flour", ServingUnit: "grams", StorageUnit: "Kg"}
			},
			wantErr: shared.ErrConflict,
		},
		{
			name: "duplicate barcode",
			input: func(h *harness) CreateItemInput {
				return CreateItemInput{BusinessID: &h.business, Name: "Rye", Barcode: "111", ServingUnit: "grams", StorageUnit: "Kg"}
			},
			wantErr: shared.ErrConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			_, err := h.itemSvc.Create(ctx, CreateItemInput{
				BusinessID: &h.business, Name: "Flour", Barcode: "111", ServingUnit: "grams", StorageUnit: "Kg",
			})
			require.NoError(t, err)

			_, err = h.itemSvc.Create(ctx, tt.input(h))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("same name in another business is fine", func(t *testing.T) {
		h := newHarness(t)
		other := uuid.New()
		_, err := h.itemSvc.Create(ctx, CreateItemInput{BusinessID: &h.business, Name: "Flour", ServingUnit: "grams", StorageUnit: "Kg"})
		require.NoError(t, err)
		_, err = h.itemSvc.Create(ctx, CreateItemInput{BusinessID: &other, Name: "Flour", ServingUnit: "grams", StorageUnit: "Kg"})
		assert.NoError(t, err)
	})
}

func TestItemService_ReplaceComponents(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	sauce, tomato, oil := h.addSauce(t)

	comps, err := h.itemSvc.ReplaceComponents(ctx, h.business, sauce.ID, []ComponentInput{
		{ItemID: tomato.ID, Quantity: dec("500")},
	})
	require.NoError(t, err)
	require.Len(t, comps, 1)

	cost, err := h.itemSvc.EffectiveCost(ctx, h.business, sauce.ID)
	require.NoError(t, err)
	assert.True(t, cost.Equal(dec("0.01")), "got %s", cost)

	listed, err := h.itemSvc.Components(ctx, h.business, sauce.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	_, err = h.itemSvc.ReplaceComponents(ctx, h.business, sauce.ID, []ComponentInput{
		{ItemID: oil.ID, Quantity: dec("1")},
		{ItemID: oil.ID, Quantity: dec("2")},
	})
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = h.itemSvc.ReplaceComponents(ctx, h.business, sauce.ID, nil)
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = h.itemSvc.ReplaceComponents(ctx, h.business, tomato.ID, []ComponentInput{{ItemID: oil.ID, Quantity: dec("1")}})
	assert.ErrorIs(t, err, shared.ErrValidation, "raw items have no components")

	_, err = h.itemSvc.ReplaceComponents(ctx, h.business, sauce.ID, []ComponentInput{{ItemID: sauce.ID, Quantity: dec("1")}})
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestItemService_SetBusinessPrice(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	salt, err := h.itemSvc.Create(ctx, CreateItemInput{Name: "Salt", ServingUnit: "grams", StorageUnit: "Kg", CostPerUnit: dec("0.001")})
	require.NoError(t, err)
	own, err := h.itemSvc.Create(ctx, CreateItemInput{BusinessID: &h.business, Name: "Flour", ServingUnit: "grams", StorageUnit: "Kg"})
	require.NoError(t, err)

	price, err := h.itemSvc.SetBusinessPrice(ctx, h.business, salt.ID, dec("0.002"))
	require.NoError(t, err)
	assert.True(t, price.Price.Equal(dec("0.002")))

	cost, err := h.itemSvc.EffectiveCost(ctx, h.business, salt.ID)
	require.NoError(t, err)
	assert.True(t, cost.Equal(dec("0.002")))

	_, err = h.itemSvc.SetBusinessPrice(ctx, h.business, salt.ID, dec("0.003"))
	require.NoError(t, err)

	events := h.events.byType(inventory.EventTypeItemCostChanged)
	require.Len(t, events, 2)
	last := events[1].(*inventory.ItemCostChangedEvent)
	assert.Equal(t, inventory.CostSourceOverride, last.Source)
	assert.True(t, last.PreviousCost.Equal(dec("0.002")))

	_, err = h.itemSvc.SetBusinessPrice(ctx, h.business, salt.ID, dec("-1"))
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = h.itemSvc.SetBusinessPrice(ctx, h.business, own.ID, dec("1"))
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestItemService_ListActive(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	_, err := h.itemSvc.Create(ctx, CreateItemInput{Name: "Salt", ServingUnit: "grams", StorageUnit: "Kg"})
	require.NoError(t, err)
	_, err = h.itemSvc.Create(ctx, CreateItemInput{BusinessID: &h.business, Name: "Flour", ServingUnit: "grams", StorageUnit: "Kg"})
	require.NoError(t, err)
	other := uuid.New()
	_, err = h.itemSvc.Create(ctx, CreateItemInput{BusinessID: &other, Name: "Rye", ServingUnit: "grams", StorageUnit: "Kg"})
	require.NoError(t, err)

	items, err := h.itemSvc.ListActive(ctx, h.business)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
