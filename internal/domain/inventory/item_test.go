package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	business := uuid.New()

	tests := []struct {
		name     string
		itemName string
		serving  valueobject.Unit
		storage  valueobject.Unit
		cost     string
		wantErr  error
	}{
		{"flour in kg", "Flour", valueobject.UnitGrams, valueobject.UnitKg, "0", nil},
		{"milk in liters", "Milk", valueobject.UnitML, valueobject.UnitL, "0.002", nil},
		{"eggs by piece", "Egg", valueobject.UnitPiece, valueobject.UnitPiece, "0.2", nil},
		{"blank name", "  ", valueobject.UnitGrams, valueobject.UnitKg, "0", shared.ErrValidation},
		{"kg storage served by piece", "Bun", valueobject.UnitPiece, valueobject.UnitKg, "0", shared.ErrIncompatibleUnits},
		{"liters served in grams", "Oil", valueobject.UnitGrams, valueobject.UnitL, "0", shared.ErrIncompatibleUnits},
		{"kg is not a serving unit", "Rice", valueobject.UnitKg, valueobject.UnitKg, "0", shared.ErrValidation},
		{"negative cost", "Salt", valueobject.UnitGrams, valueobject.UnitKg, "-1", shared.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewItem(&business, tt.itemName, "dry", tt.serving, tt.storage, dec(tt.cost))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ItemStatusActive, item.Status)
			assert.False(t, item.IsShared())
			assert.True(t, item.VisibleTo(business))
			assert.False(t, item.VisibleTo(uuid.New()))
		})
	}
}

func TestItem_ApplyReceipt(t *testing.T) {
	item, err := NewItem(nil, "Flour", "dry", valueobject.UnitGrams, valueobject.UnitKg, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, item.IsShared())

	prev := item.ApplyReceipt(decimal.Zero, dec("50000"), dec("0.0125"))
	assert.True(t, prev.IsZero())
	assert.True(t, dec("0.0125").Equal(item.CostPerUnit))
	assert.True(t, dec("50000").Equal(item.TotalStockQuantity))
	assert.True(t, dec("625").Equal(item.TotalStockValue))

	prev = item.ApplyReceipt(dec("50000"), dec("50000"), dec("0.0175"))
	assert.True(t, dec("0.0125").Equal(prev))
	assert.True(t, dec("0.015").Equal(item.CostPerUnit))
	assert.True(t, dec("100000").Equal(item.TotalStockQuantity))

	// everything was used before the next delivery
	prev = item.ApplyReceipt(decimal.Zero, dec("10000"), dec("0.02"))
	assert.True(t, dec("0.015").Equal(prev))
	assert.True(t, dec("0.02").Equal(item.CostPerUnit))
	assert.True(t, dec("10000").Equal(item.TotalStockQuantity))
	assert.True(t, dec("200").Equal(item.TotalStockValue))

	item.SetStockQuantity(dec("-5"))
	assert.True(t, item.TotalStockQuantity.IsZero())
	assert.True(t, item.TotalStockValue.IsZero())
}

func TestNewCompositeItem(t *testing.T) {
	business := uuid.New()

	sauce, err := NewCompositeItem(&business, "Sauce", "prep", valueobject.UnitGrams, valueobject.UnitKg, dec("0.5"), valueobject.UnitKg)
	require.NoError(t, err)
	assert.True(t, sauce.IsComposite)

	batch, err := sauce.BatchQuantityInServingUnits()
	require.NoError(t, err)
	assert.True(t, dec("500").Equal(batch))

	_, err = NewCompositeItem(&business, "Broth", "prep", valueobject.UnitML, valueobject.UnitL, decimal.Zero, "")
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = NewCompositeItem(&business, "Dough", "prep", valueobject.UnitGrams, valueobject.UnitKg, dec("1"), valueobject.UnitL)
	assert.ErrorIs(t, err, shared.ErrIncompatibleUnits)
}

func TestNewCompositeComponent(t *testing.T) {
	business := uuid.New()
	sauce, _ := NewCompositeItem(&business, "Sauce", "prep", valueobject.UnitGrams, valueobject.UnitKg, dec("500"), valueobject.UnitGrams)
	glaze, _ := NewCompositeItem(&business, "Glaze", "prep", valueobject.UnitGrams, valueobject.UnitKg, dec("100"), valueobject.UnitGrams)
	tomato, _ := NewItem(&business, "Tomato", "veg", valueobject.UnitGrams, valueobject.UnitKg, dec("0.01"))

	comp, err := NewCompositeComponent(sauce, tomato, dec("300"))
	require.NoError(t, err)
	assert.Equal(t, sauce.ID, comp.CompositeID)
	assert.Equal(t, tomato.ID, comp.ComponentItemID)

	_, err = NewCompositeComponent(sauce, glaze, dec("10"))
	assert.ErrorIs(t, err, shared.ErrValidation, "composite of composite is rejected")

	_, err = NewCompositeComponent(tomato, sauce, dec("10"))
	assert.ErrorIs(t, err, shared.ErrValidation, "raw item cannot have components")

	_, err = NewCompositeComponent(sauce, tomato, decimal.Zero)
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestNewBusinessItemPrice(t *testing.T) {
	business := uuid.New()
	shared_, _ := NewItem(nil, "Salt", "dry", valueobject.UnitGrams, valueobject.UnitKg, dec("0.001"))
	owned, _ := NewItem(&business, "House Salt", "dry", valueobject.UnitGrams, valueobject.UnitKg, dec("0.001"))

	price, err := NewBusinessItemPrice(business, shared_, dec("0.0012"))
	require.NoError(t, err)
	assert.Equal(t, shared_.ID, price.ItemID)

	_, err = NewBusinessItemPrice(business, owned, dec("0.0012"))
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = NewBusinessItemPrice(business, shared_, dec("-1"))
	assert.ErrorIs(t, err, shared.ErrValidation)

	assert.ErrorIs(t, price.SetPrice(dec("-0.1")), shared.ErrValidation)
	require.NoError(t, price.SetPrice(dec("0.002")))
	assert.True(t, dec("0.002").Equal(price.Price))
}
