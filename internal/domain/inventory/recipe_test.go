package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_IngredientsFor(t *testing.T) {
	bun := uuid.New()
	patty := uuid.New()
	cheese := uuid.New()

	small := ProductVariant{ID: uuid.New(), Name: "Small", SortOrder: 2,
		Ingredients: []RecipeIngredient{{ItemID: patty, Quantity: dec("100")}}}
	original := ProductVariant{ID: uuid.New(), Name: "original", SortOrder: 5,
		Ingredients: []RecipeIngredient{{ItemID: patty, Quantity: dec("150")}}}
	large := ProductVariant{ID: uuid.New(), Name: "Large", SortOrder: 1,
		Ingredients: []RecipeIngredient{{ItemID: patty, Quantity: dec("200")}}}

	t.Run("chosen variant", func(t *testing.T) {
		p := Product{Variants: []ProductVariant{small, original, large}}
		ings, ok := p.IngredientsFor(&small.ID)
		require.True(t, ok)
		assert.True(t, dec("100").Equal(ings[0].Quantity))
	})

	t.Run("unknown variant does not resolve", func(t *testing.T) {
		p := Product{Variants: []ProductVariant{small}}
		missing := uuid.New()
		_, ok := p.IngredientsFor(&missing)
		assert.False(t, ok)
	})

	t.Run("product without variants", func(t *testing.T) {
		p := Product{Ingredients: []RecipeIngredient{{ItemID: bun, Quantity: dec("1")}}}
		ings, ok := p.IngredientsFor(nil)
		require.True(t, ok)
		assert.Equal(t, bun, ings[0].ItemID)
	})

	t.Run("product-level list wins over default variant", func(t *testing.T) {
		p := Product{
			Ingredients: []RecipeIngredient{{ItemID: cheese, Quantity: dec("20")}},
			Variants:    []ProductVariant{small, original},
		}
		ings, ok := p.IngredientsFor(nil)
		require.True(t, ok)
		assert.Equal(t, cheese, ings[0].ItemID)
	})

	t.Run("falls back to the Original variant", func(t *testing.T) {
		p := Product{Variants: []ProductVariant{small, original, large}}
		ings, ok := p.IngredientsFor(nil)
		require.True(t, ok)
		assert.True(t, dec("150").Equal(ings[0].Quantity))
	})

	t.Run("falls back to lowest sort order", func(t *testing.T) {
		p := Product{Variants: []ProductVariant{small, large}}
		ings, ok := p.IngredientsFor(nil)
		require.True(t, ok)
		assert.True(t, dec("200").Equal(ings[0].Quantity))
	})
}

func TestProduct_UsesAny(t *testing.T) {
	patty := uuid.New()
	p := Product{Variants: []ProductVariant{{ID: uuid.New(),
		Ingredients: []RecipeIngredient{{ItemID: patty, Quantity: dec("1")}}}}}

	assert.True(t, p.UsesAny(map[uuid.UUID]struct{}{patty: {}}))
	assert.False(t, p.UsesAny(map[uuid.UUID]struct{}{uuid.New(): {}}))
}

func TestRequirementSet(t *testing.T) {
	flour := uuid.New()
	egg := uuid.New()

	set := NewRequirementSet()
	set.Add(flour, dec("0.2"))
	set.Add(egg, dec("2"))
	set.Add(flour, dec("0.3"))
	set.Add(egg, dec("0"))
	set.Add(egg, dec("-1"))
	set.Merge([]Requirement{{ItemID: egg, Quantity: dec("1")}})

	list := set.List()
	require.Len(t, list, 2)
	assert.Equal(t, flour, list[0].ItemID)
	assert.True(t, dec("0.5").Equal(list[0].Quantity))
	assert.True(t, dec("3").Equal(list[1].Quantity))
	assert.Equal(t, 2, set.Len())
}
