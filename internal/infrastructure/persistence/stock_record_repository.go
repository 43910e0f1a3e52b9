package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockRecordRepository implements StockRecordRepository using GORM
type GormStockRecordRepository struct {
	db *gorm.DB
}

// NewGormStockRecordRepository creates a new GormStockRecordRepository
func NewGormStockRecordRepository(db *gorm.DB) *GormStockRecordRepository {
	return &GormStockRecordRepository{db: db}
}

// byKey narrows a query to the row of key. A nil branch matches the
// business-level row only.
func byKey(query *gorm.DB, key inventory.StockKey) *gorm.DB {
	query = query.Where("business_id = ? AND item_id = ?", key.BusinessID, key.ItemID)
	if key.BranchID == nil {
		return query.Where("branch_id IS NULL")
	}
	return query.Where("branch_id = ?", *key.BranchID)
}

// Find finds the stock row of key
func (r *GormStockRecordRepository) Find(ctx context.Context, key inventory.StockKey) (*inventory.StockRecord, error) {
	return r.find(byKey(r.db.WithContext(ctx), key))
}

// FindForUpdate finds the stock row of key with SELECT ... FOR UPDATE.
// Must be called inside a transaction for the lock to be held.
func (r *GormStockRecordRepository) FindForUpdate(ctx context.Context, key inventory.StockKey) (*inventory.StockRecord, error) {
	return r.find(byKey(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), key))
}

func (r *GormStockRecordRepository) find(query *gorm.DB) (*inventory.StockRecord, error) {
	var model models.StockRecordModel
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// GetOrCreate gets the existing stock row or inserts an empty one
func (r *GormStockRecordRepository) GetOrCreate(ctx context.Context, key inventory.StockKey) (*inventory.StockRecord, error) {
	record, err := r.Find(ctx, key)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	record, err = inventory.NewStockRecord(key)
	if err != nil {
		return nil, err
	}

	// Concurrent creators race on the unique key indexes; the loser reads the winner's row
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(models.StockRecordModelFromDomain(record))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return r.Find(ctx, key)
	}
	return record, nil
}

// ListByBusiness lists the rows of a business, or of one branch when branchID is set
func (r *GormStockRecordRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID, branchID *uuid.UUID) ([]inventory.StockRecord, error) {
	query := r.db.WithContext(ctx).Where("business_id = ?", businessID)
	if branchID != nil {
		query = query.Where("branch_id = ?", *branchID)
	}
	return r.list(query.Order("item_id ASC").Order("created_at ASC"))
}

// ListByItem lists the rows of one item in every branch of a business
func (r *GormStockRecordRepository) ListByItem(ctx context.Context, businessID, itemID uuid.UUID) ([]inventory.StockRecord, error) {
	return r.list(r.db.WithContext(ctx).
		Where("business_id = ? AND item_id = ?", businessID, itemID).
		Order("created_at ASC"))
}

func (r *GormStockRecordRepository) list(query *gorm.DB) ([]inventory.StockRecord, error) {
	var rows []models.StockRecordModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	records := make([]inventory.StockRecord, len(rows))
	for i := range rows {
		records[i] = *rows[i].ToDomain()
	}
	return records, nil
}

// Save creates or updates a stock row
func (r *GormStockRecordRepository) Save(ctx context.Context, record *inventory.StockRecord) error {
	return r.db.WithContext(ctx).Save(models.StockRecordModelFromDomain(record)).Error
}

// GormMovementRepository implements the append-only MovementRepository using GORM
type GormMovementRepository struct {
	db *gorm.DB
}

// NewGormMovementRepository creates a new GormMovementRepository
func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db}
}

// Create appends a movement
func (r *GormMovementRepository) Create(ctx context.Context, movement *inventory.InventoryMovement) error {
	return r.db.WithContext(ctx).Create(models.InventoryMovementModelFromDomain(movement)).Error
}

// List lists movements matching filter, newest first unless another sort is asked for
func (r *GormMovementRepository) List(ctx context.Context, filter inventory.MovementFilter) ([]inventory.InventoryMovement, error) {
	query := r.db.WithContext(ctx).Model(&models.InventoryMovementModel{}).
		Where("business_id = ?", filter.BusinessID)
	if filter.BranchID != nil {
		query = query.Where("branch_id = ?", *filter.BranchID)
	}
	if filter.ItemID != nil {
		query = query.Where("item_id = ?", *filter.ItemID)
	}
	if filter.MovementType != nil {
		query = query.Where("movement_type = ?", filter.MovementType.String())
	}
	if filter.ReferenceType != nil {
		query = query.Where("reference_type = ?", string(*filter.ReferenceType))
	}
	if filter.ReferenceID != nil {
		query = query.Where("reference_id = ?", *filter.ReferenceID)
	}
	if filter.Since != nil {
		query = query.Where("created_at >= ?", *filter.Since)
	}

	var rows []models.InventoryMovementModel
	if err := query.
		Order(orderClause(filter.SortBy, filter.SortOrder, MovementSortFields, "created_at")).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	movements := make([]inventory.InventoryMovement, len(rows))
	for i := range rows {
		movements[i] = *rows[i].ToDomain()
	}
	return movements, nil
}

var (
	_ inventory.StockRecordRepository = (*GormStockRecordRepository)(nil)
	_ inventory.MovementRepository    = (*GormMovementRepository)(nil)
)
