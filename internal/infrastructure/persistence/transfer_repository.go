package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTransferRepository implements TransferRepository using GORM
type GormTransferRepository struct {
	db *gorm.DB
}

// NewGormTransferRepository creates a new GormTransferRepository
func NewGormTransferRepository(db *gorm.DB) *GormTransferRepository {
	return &GormTransferRepository{db: db}
}

// FindByID finds a transfer with its lines
func (r *GormTransferRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Transfer, error) {
	var model models.TransferModel
	if err := r.db.WithContext(ctx).Preload("Lines").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save upserts the transfer and its lines
func (r *GormTransferRepository) Save(ctx context.Context, transfer *inventory.Transfer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.TransferModelFromDomain(transfer)
		if err := tx.Omit("Lines").Save(model).Error; err != nil {
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

// GormCountRepository implements CountRepository using GORM
type GormCountRepository struct {
	db *gorm.DB
}

// NewGormCountRepository creates a new GormCountRepository
func NewGormCountRepository(db *gorm.DB) *GormCountRepository {
	return &GormCountRepository{db: db}
}

// FindByID finds a count with its lines
func (r *GormCountRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryCount, error) {
	var model models.InventoryCountModel
	if err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("item_name ASC") }).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save upserts the count and its lines
func (r *GormCountRepository) Save(ctx context.Context, count *inventory.InventoryCount) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.InventoryCountModelFromDomain(count)
		if err := tx.Omit("Lines").Save(model).Error; err != nil {
			return err
		}
		if len(model.Lines) == 0 {
			return nil
		}
		// Counts can cover every active item, so lines go in batches
		for start := 0; start < len(model.Lines); start += lineBatchSize {
			end := min(start+lineBatchSize, len(model.Lines))
			if err := tx.Save(model.Lines[start:end]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

const lineBatchSize = 200

var (
	_ inventory.TransferRepository = (*GormTransferRepository)(nil)
	_ inventory.CountRepository    = (*GormCountRepository)(nil)
)
