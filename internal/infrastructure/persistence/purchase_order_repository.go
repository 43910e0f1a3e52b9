package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/purchasing"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormPurchaseOrderRepository implements PurchaseOrderRepository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindByID finds a purchase order with its lines
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*purchasing.PurchaseOrder, error) {
	var model models.PurchaseOrderModel
	if err := r.db.WithContext(ctx).Preload("Lines").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByOrderNumber checks if an order number exists for a business
func (r *GormPurchaseOrderRepository) ExistsByOrderNumber(ctx context.Context, businessID uuid.UUID, orderNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PurchaseOrderModel{}).
		Where("business_id = ? AND order_number = ?", businessID, orderNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a purchase order. Lines no longer on the order are deleted.
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, po *purchasing.PurchaseOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.PurchaseOrderModelFromDomain(po)

		// Save the order without auto-saving associations
		if err := tx.Omit("Lines").Save(model).Error; err != nil {
			return err
		}

		lineIDs := make([]uuid.UUID, len(model.Lines))
		for i := range model.Lines {
			lineIDs[i] = model.Lines[i].ID
		}
		stale := tx.Where("purchase_order_id = ?", po.ID)
		if len(lineIDs) > 0 {
			stale = stale.Where("id NOT IN ?", lineIDs)
		}
		if err := stale.Delete(&models.PurchaseOrderLineModel{}).Error; err != nil {
			return err
		}

		for i := range model.Lines {
			if err := tx.Save(&model.Lines[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GormActivityRepository implements the append-only ActivityRepository using GORM
type GormActivityRepository struct {
	db *gorm.DB
}

// NewGormActivityRepository creates a new GormActivityRepository
func NewGormActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{db: db}
}

// Create appends an activity row
func (r *GormActivityRepository) Create(ctx context.Context, activity *purchasing.Activity) error {
	model, err := models.PurchaseOrderActivityModelFromDomain(activity)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(model).Error
}

// ListByPurchaseOrder lists the history of a purchase order, oldest first
func (r *GormActivityRepository) ListByPurchaseOrder(ctx context.Context, purchaseOrderID uuid.UUID) ([]purchasing.Activity, error) {
	var rows []models.PurchaseOrderActivityModel
	if err := r.db.WithContext(ctx).
		Where("purchase_order_id = ?", purchaseOrderID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]purchasing.Activity, 0, len(rows))
	for i := range rows {
		a, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, nil
}

// GormBusinessSettingsRepository reads per-business settings
type GormBusinessSettingsRepository struct {
	db *gorm.DB
}

// NewGormBusinessSettingsRepository creates a new GormBusinessSettingsRepository
func NewGormBusinessSettingsRepository(db *gorm.DB) *GormBusinessSettingsRepository {
	return &GormBusinessSettingsRepository{db: db}
}

// TaxRate returns the purchase tax rate of a business. ok is false when the
// business has no settings row or has left the rate unset.
func (r *GormBusinessSettingsRepository) TaxRate(ctx context.Context, businessID uuid.UUID) (decimal.Decimal, bool, error) {
	var model models.BusinessSettingModel
	if err := r.db.WithContext(ctx).First(&model, "business_id = ?", businessID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, err
	}
	if model.PurchaseTaxRate == nil {
		return decimal.Zero, false, nil
	}
	return *model.PurchaseTaxRate, true, nil
}

var (
	_ purchasing.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)
	_ purchasing.ActivityRepository      = (*GormActivityRepository)(nil)
	_ purchasing.TaxRateProvider         = (*GormBusinessSettingsRepository)(nil)
)
