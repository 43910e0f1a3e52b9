package models

import (
	"sort"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// ProductModel is a menu product of the POS catalog. The catalog itself is
// owned by the menu service; this engine reads recipes and writes costs.
type ProductModel struct {
	BaseModel
	BusinessID  uuid.UUID               `gorm:"type:uuid;not null;index"`
	Name        string                  `gorm:"type:varchar(200);not null"`
	Cost        decimal.Decimal         `gorm:"type:decimal(18,6);not null;default:0"`
	Ingredients []RecipeIngredientModel `gorm:"foreignKey:ProductID;references:ID"`
	Variants    []ProductVariantModel   `gorm:"foreignKey:ProductID;references:ID"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product. Product-level
// ingredients are the rows without a variant.
func (m *ProductModel) ToDomain() *inventory.Product {
	p := &inventory.Product{
		ID:          m.ID,
		BusinessID:  m.BusinessID,
		Name:        m.Name,
		Cost:        m.Cost,
		Ingredients: make([]inventory.RecipeIngredient, 0, len(m.Ingredients)),
		Variants:    make([]inventory.ProductVariant, 0, len(m.Variants)),
	}
	for _, ing := range m.Ingredients {
		if ing.VariantID == nil {
			p.Ingredients = append(p.Ingredients, ing.ToDomain())
		}
	}
	variants := make([]ProductVariantModel, len(m.Variants))
	copy(variants, m.Variants)
	sort.SliceStable(variants, func(a, b int) bool {
		return variants[a].SortOrder < variants[b].SortOrder
	})
	for i := range variants {
		p.Variants = append(p.Variants, variants[i].ToDomain())
	}
	return p
}

// ProductVariantModel is a sellable variant of a product
type ProductVariantModel struct {
	BaseModel
	ProductID   uuid.UUID               `gorm:"type:uuid;not null;index"`
	Name        string                  `gorm:"type:varchar(100);not null"`
	SortOrder   int                     `gorm:"not null;default:0"`
	Cost        decimal.Decimal         `gorm:"type:decimal(18,6);not null;default:0"`
	Ingredients []RecipeIngredientModel `gorm:"foreignKey:VariantID;references:ID"`
}

// TableName returns the table name for GORM
func (ProductVariantModel) TableName() string {
	return "product_variants"
}

// ToDomain converts the persistence model to a domain ProductVariant
func (m *ProductVariantModel) ToDomain() inventory.ProductVariant {
	v := inventory.ProductVariant{
		ID:          m.ID,
		ProductID:   m.ProductID,
		Name:        m.Name,
		SortOrder:   m.SortOrder,
		Cost:        m.Cost,
		Ingredients: make([]inventory.RecipeIngredient, len(m.Ingredients)),
	}
	for i, ing := range m.Ingredients {
		v.Ingredients[i] = ing.ToDomain()
	}
	return v
}

// RecipeIngredientModel is one recipe line, attached to the product itself
// (variant_id NULL) or to one of its variants. Quantity is in the item's
// storage unit.
type RecipeIngredientModel struct {
	BaseModel
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	VariantID *uuid.UUID      `gorm:"type:uuid;index"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(200)"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,6);not null"`
}

// TableName returns the table name for GORM
func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}

// ToDomain converts the persistence model to a domain RecipeIngredient
func (m *RecipeIngredientModel) ToDomain() inventory.RecipeIngredient {
	return inventory.RecipeIngredient{
		ID:       m.ID,
		ItemID:   m.ItemID,
		Name:     m.Name,
		Quantity: m.Quantity,
	}
}

// ModifierModel is a catalog add-on that may consume an item
type ModifierModel struct {
	BaseModel
	BusinessID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(100);not null"`
	ItemID     *uuid.UUID      `gorm:"type:uuid"`
	Quantity   decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
}

// TableName returns the table name for GORM
func (ModifierModel) TableName() string {
	return "modifiers"
}

// ToDomain converts the persistence model to a domain Modifier
func (m *ModifierModel) ToDomain() *inventory.Modifier {
	return &inventory.Modifier{
		ID:         m.ID,
		BusinessID: m.BusinessID,
		Name:       m.Name,
		ItemID:     m.ItemID,
		Quantity:   m.Quantity,
	}
}
