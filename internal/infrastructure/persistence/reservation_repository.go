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

// GormReservationRepository implements ReservationRepository using GORM
type GormReservationRepository struct {
	db *gorm.DB
}

// NewGormReservationRepository creates a new GormReservationRepository
func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

// FindByOrder lists the reservations of every item of an order
func (r *GormReservationRepository) FindByOrder(ctx context.Context, businessID, orderID uuid.UUID) ([]inventory.OrderReservation, error) {
	var rows []models.OrderReservationModel
	if err := r.db.WithContext(ctx).
		Where("business_id = ? AND order_id = ?", businessID, orderID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return toReservations(rows)
}

// FindByOrderItem finds the reservation of one order item
func (r *GormReservationRepository) FindByOrderItem(ctx context.Context, businessID, orderID, orderItemID uuid.UUID) (*inventory.OrderReservation, error) {
	var model models.OrderReservationModel
	if err := r.db.WithContext(ctx).
		Where("business_id = ? AND order_id = ? AND order_item_id = ?", businessID, orderID, orderItemID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindExpiredPendingDecisions lists pending decisions with a deadline at or
// before now, oldest deadline first
func (r *GormReservationRepository) FindExpiredPendingDecisions(ctx context.Context, now time.Time, limit int) ([]inventory.OrderReservation, error) {
	query := r.db.WithContext(ctx).
		Where("status = ? AND decision_deadline <= ?", string(inventory.ReservationPendingDecision), now).
		Order("decision_deadline ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var rows []models.OrderReservationModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toReservations(rows)
}

// Save creates or updates a reservation
func (r *GormReservationRepository) Save(ctx context.Context, reservation *inventory.OrderReservation) error {
	model, err := models.OrderReservationModelFromDomain(reservation)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(model).Error
}

func toReservations(rows []models.OrderReservationModel) ([]inventory.OrderReservation, error) {
	out := make([]inventory.OrderReservation, 0, len(rows))
	for i := range rows {
		res, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	return out, nil
}

var _ inventory.ReservationRepository = (*GormReservationRepository)(nil)
