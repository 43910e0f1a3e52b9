package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormRecipeRepository implements RecipeRepository over the menu catalog tables
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewGormRecipeRepository creates a new GormRecipeRepository
func NewGormRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

func (r *GormRecipeRepository) withRecipes(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Ingredients", "variant_id IS NULL").
		Preload("Variants").
		Preload("Variants.Ingredients")
}

// FindProduct loads a product with its variants and ingredients
func (r *GormRecipeRepository) FindProduct(ctx context.Context, id uuid.UUID) (*inventory.Product, error) {
	var model models.ProductModel
	if err := r.withRecipes(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindModifier finds a modifier by its ID
func (r *GormRecipeRepository) FindModifier(ctx context.Context, id uuid.UUID) (*inventory.Modifier, error) {
	var model models.ModifierModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindProductsUsingItems lists the business's products whose product-level
// or variant recipes use any of the items
func (r *GormRecipeRepository) FindProductsUsingItems(ctx context.Context, businessID uuid.UUID, itemIDs []uuid.UUID) ([]inventory.Product, error) {
	if len(itemIDs) == 0 {
		return []inventory.Product{}, nil
	}
	using := r.db.Model(&models.RecipeIngredientModel{}).
		Select("product_id").
		Where("item_id IN ?", itemIDs)

	var rows []models.ProductModel
	if err := r.withRecipes(ctx).
		Where("business_id = ? AND id IN (?)", businessID, using).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	products := make([]inventory.Product, len(rows))
	for i := range rows {
		products[i] = *rows[i].ToDomain()
	}
	return products, nil
}

// SaveCosts stores the product and variant costs
func (r *GormRecipeRepository) SaveCosts(ctx context.Context, product *inventory.Product) error {
	now := time.Now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ProductModel{}).
			Where("id = ?", product.ID).
			Updates(map[string]any{"cost": product.Cost, "updated_at": now}).Error; err != nil {
			return err
		}
		for _, v := range product.Variants {
			if err := tx.Model(&models.ProductVariantModel{}).
				Where("id = ? AND product_id = ?", v.ID, product.ID).
				Updates(map[string]any{"cost": v.Cost, "updated_at": now}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

var _ inventory.RecipeRepository = (*GormRecipeRepository)(nil)
