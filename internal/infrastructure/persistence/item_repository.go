package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemRepository implements ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds an item by its ID
func (r *GormItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Item, error) {
	var model models.ItemModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindVisible finds an item owned by the business or shared with everyone
func (r *GormItemRepository) FindVisible(ctx context.Context, businessID, id uuid.UUID) (*inventory.Item, error) {
	return r.findVisible(r.db.WithContext(ctx), businessID, id)
}

// FindVisibleForUpdate finds a visible item with SELECT ... FOR UPDATE.
// Must be called inside a transaction for the lock to be held.
func (r *GormItemRepository) FindVisibleForUpdate(ctx context.Context, businessID, id uuid.UUID) (*inventory.Item, error) {
	return r.findVisible(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), businessID, id)
}

func (r *GormItemRepository) findVisible(query *gorm.DB, businessID, id uuid.UUID) (*inventory.Item, error) {
	var model models.ItemModel
	if err := query.
		Where("id = ? AND (business_id = ? OR business_id IS NULL)", id, businessID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs returns the items that exist among ids
func (r *GormItemRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]inventory.Item, error) {
	if len(ids) == 0 {
		return []inventory.Item{}, nil
	}
	var rows []models.ItemModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return toItems(rows), nil
}

// ListActive lists active items owned by the business plus shared items
func (r *GormItemRepository) ListActive(ctx context.Context, businessID uuid.UUID) ([]inventory.Item, error) {
	var rows []models.ItemModel
	if err := r.db.WithContext(ctx).
		Where("status = ? AND (business_id = ? OR business_id IS NULL)", string(inventory.ItemStatusActive), businessID).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toItems(rows), nil
}

// ExistsByName checks name uniqueness within a business scope, ignoring case
func (r *GormItemRepository) ExistsByName(ctx context.Context, businessID *uuid.UUID, name string) (bool, error) {
	return r.exists(ctx, businessID, "LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name)))
}

// ExistsByBarcode checks barcode uniqueness within a business scope
func (r *GormItemRepository) ExistsByBarcode(ctx context.Context, businessID *uuid.UUID, barcode string) (bool, error) {
	return r.exists(ctx, businessID, "barcode = ?", strings.TrimSpace(barcode))
}

func (r *GormItemRepository) exists(ctx context.Context, businessID *uuid.UUID, cond string, arg any) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.ItemModel{}).Where(cond, arg)
	if businessID == nil {
		query = query.Where("business_id IS NULL")
	} else {
		query = query.Where("business_id = ?", *businessID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an item
func (r *GormItemRepository) Save(ctx context.Context, item *inventory.Item) error {
	return r.db.WithContext(ctx).Save(models.ItemModelFromDomain(item)).Error
}

func toItems(rows []models.ItemModel) []inventory.Item {
	items := make([]inventory.Item, len(rows))
	for i := range rows {
		items[i] = *rows[i].ToDomain()
	}
	return items
}

// GormBusinessItemPriceRepository implements BusinessItemPriceRepository using GORM
type GormBusinessItemPriceRepository struct {
	db *gorm.DB
}

// NewGormBusinessItemPriceRepository creates a new GormBusinessItemPriceRepository
func NewGormBusinessItemPriceRepository(db *gorm.DB) *GormBusinessItemPriceRepository {
	return &GormBusinessItemPriceRepository{db: db}
}

// Find finds a business's override of a shared item
func (r *GormBusinessItemPriceRepository) Find(ctx context.Context, businessID, itemID uuid.UUID) (*inventory.BusinessItemPrice, error) {
	var model models.BusinessItemPriceModel
	if err := r.db.WithContext(ctx).
		Where("business_id = ? AND item_id = ?", businessID, itemID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save upserts on (business, item)
func (r *GormBusinessItemPriceRepository) Save(ctx context.Context, price *inventory.BusinessItemPrice) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "business_id"}, {Name: "item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"price", "total_stock_quantity", "total_stock_value", "updated_at",
			}),
		}).
		Create(models.BusinessItemPriceModelFromDomain(price)).Error
}

// GormCompositeComponentRepository implements CompositeComponentRepository using GORM
type GormCompositeComponentRepository struct {
	db *gorm.DB
}

// NewGormCompositeComponentRepository creates a new GormCompositeComponentRepository
func NewGormCompositeComponentRepository(db *gorm.DB) *GormCompositeComponentRepository {
	return &GormCompositeComponentRepository{db: db}
}

// FindByComposite lists the components of a composite
func (r *GormCompositeComponentRepository) FindByComposite(ctx context.Context, compositeID uuid.UUID) ([]inventory.CompositeComponent, error) {
	var rows []models.CompositeComponentModel
	if err := r.db.WithContext(ctx).
		Where("composite_id = ?", compositeID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	comps := make([]inventory.CompositeComponent, len(rows))
	for i := range rows {
		comps[i] = rows[i].ToDomain()
	}
	return comps, nil
}

// FindCompositeIDsUsing lists composites that directly contain the item
func (r *GormCompositeComponentRepository) FindCompositeIDsUsing(ctx context.Context, itemID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.CompositeComponentModel{}).
		Distinct("composite_id").
		Where("component_item_id = ?", itemID).
		Pluck("composite_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// ReplaceForComposite swaps the whole component list of a composite
func (r *GormCompositeComponentRepository) ReplaceForComposite(ctx context.Context, compositeID uuid.UUID, components []inventory.CompositeComponent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("composite_id = ?", compositeID).Delete(&models.CompositeComponentModel{}).Error; err != nil {
			return err
		}
		if len(components) == 0 {
			return nil
		}
		rows := make([]models.CompositeComponentModel, len(components))
		for i, c := range components {
			rows[i] = models.CompositeComponentModelFromDomain(c)
			rows[i].CompositeID = compositeID
		}
		return tx.Create(&rows).Error
	})
}

var (
	_ inventory.ItemRepository               = (*GormItemRepository)(nil)
	_ inventory.BusinessItemPriceRepository  = (*GormBusinessItemPriceRepository)(nil)
	_ inventory.CompositeComponentRepository = (*GormCompositeComponentRepository)(nil)
)
