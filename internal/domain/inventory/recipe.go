package inventory

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultVariantName is the variant used when a product with variants is
// ordered without one and has no product-level recipe
const DefaultVariantName = "Original"

// RecipeIngredient is one ingredient line of a menu recipe. Quantity is
// already expressed in the item's storage unit.
type RecipeIngredient struct {
	ID       uuid.UUID
	ItemID   uuid.UUID
	Name     string
	Quantity decimal.Decimal
}

// ProductVariant is a sellable variant of a menu product (size, style)
type ProductVariant struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	Name        string
	SortOrder   int
	Cost        decimal.Decimal
	Ingredients []RecipeIngredient
}

// Product is a menu product with an optional product-level recipe and variants
type Product struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	Name        string
	Cost        decimal.Decimal
	Ingredients []RecipeIngredient
	Variants    []ProductVariant
}

// HasVariants reports whether the product is sold in variants
func (p *Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// Variant finds a variant by id
func (p *Product) Variant(id uuid.UUID) (*ProductVariant, bool) {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i], true
		}
	}
	return nil, false
}

// DefaultVariant returns the variant named "Original", else the first by sort order
func (p *Product) DefaultVariant() (*ProductVariant, bool) {
	if !p.HasVariants() {
		return nil, false
	}
	for i := range p.Variants {
		if strings.EqualFold(strings.TrimSpace(p.Variants[i].Name), DefaultVariantName) {
			return &p.Variants[i], true
		}
	}
	ordered := make([]int, len(p.Variants))
	for i := range ordered {
		ordered[i] = i
	}
	sort.SliceStable(ordered, func(a, b int) bool {
		return p.Variants[ordered[a]].SortOrder < p.Variants[ordered[b]].SortOrder
	})
	return &p.Variants[ordered[0]], true
}

// IngredientsFor picks the recipe for an order line:
//  1. the chosen variant
//  2. the product-level list when the product has no variants
//  3. the product-level list when present, else the default variant
//
// ok is false when nothing resolves.
func (p *Product) IngredientsFor(variantID *uuid.UUID) (ingredients []RecipeIngredient, ok bool) {
	if variantID != nil {
		v, found := p.Variant(*variantID)
		if !found {
			return nil, false
		}
		return v.Ingredients, true
	}
	if !p.HasVariants() || len(p.Ingredients) > 0 {
		return p.Ingredients, true
	}
	v, found := p.DefaultVariant()
	if !found {
		return nil, false
	}
	return v.Ingredients, true
}

// UsesAny reports whether the product-level or any variant recipe uses one of the items
func (p *Product) UsesAny(itemIDs map[uuid.UUID]struct{}) bool {
	if ingredientsUseAny(p.Ingredients, itemIDs) {
		return true
	}
	for _, v := range p.Variants {
		if ingredientsUseAny(v.Ingredients, itemIDs) {
			return true
		}
	}
	return false
}

func ingredientsUseAny(ingredients []RecipeIngredient, itemIDs map[uuid.UUID]struct{}) bool {
	for _, ing := range ingredients {
		if _, ok := itemIDs[ing.ItemID]; ok {
			return true
		}
	}
	return false
}

// Modifier is a catalog add-on. An extra of this modifier consumes
// Quantity storage units of ItemID.
type Modifier struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
	ItemID     *uuid.UUID
	Quantity   decimal.Decimal
}

// ModifierType tells whether a line modifier adds or removes stock usage
type ModifierType string

const (
	ModifierExtra   ModifierType = "extra"
	ModifierRemoval ModifierType = "removal"
)

// LineModifier is a modifier applied to one order line
type LineModifier struct {
	ModifierID *uuid.UUID
	Name       string
	Type       ModifierType
	Count      int
}

// OrderLine is the inventory view of one order item
type OrderLine struct {
	OrderItemID uuid.UUID
	ProductID   uuid.UUID
	VariantID   *uuid.UUID
	Quantity    decimal.Decimal
	Modifiers   []LineModifier
}

// Requirement is the stock an order needs of one item, in storage units
type Requirement struct {
	ItemID   uuid.UUID
	Quantity decimal.Decimal
}

// RequirementSet sums requirements per item, keeping first-seen order
type RequirementSet struct {
	index map[uuid.UUID]int
	items []Requirement
}

// NewRequirementSet creates an empty set
func NewRequirementSet() *RequirementSet {
	return &RequirementSet{index: make(map[uuid.UUID]int)}
}

// Add accumulates qty for item. Non-positive quantities are ignored.
func (s *RequirementSet) Add(itemID uuid.UUID, qty decimal.Decimal) {
	if !qty.IsPositive() {
		return
	}
	if pos, ok := s.index[itemID]; ok {
		s.items[pos].Quantity = s.items[pos].Quantity.Add(qty)
		return
	}
	s.index[itemID] = len(s.items)
	s.items = append(s.items, Requirement{ItemID: itemID, Quantity: qty})
}

// Merge adds every requirement of other
func (s *RequirementSet) Merge(reqs []Requirement) {
	for _, r := range reqs {
		s.Add(r.ItemID, r.Quantity)
	}
}

// List returns the aggregated requirements
func (s *RequirementSet) List() []Requirement {
	out := make([]Requirement, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of distinct items
func (s *RequirementSet) Len() int {
	return len(s.items)
}
