package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// InventoryCountService snapshots stock, collects a physical count and
// books the variances
type InventoryCountService struct {
	counts    inventory.CountRepository
	items     inventory.ItemRepository
	ledger    *StockLedger
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewInventoryCountService creates a new InventoryCountService
func NewInventoryCountService(
	counts inventory.CountRepository,
	items inventory.ItemRepository,
	ledger *StockLedger,
	logger *zap.Logger,
) *InventoryCountService {
	return &InventoryCountService{
		counts: counts,
		items:  items,
		ledger: ledger,
		logger: logger,
	}
}

// SetEventPublisher sets the event publisher for InventoryCountCompleted events
func (s *InventoryCountService) SetEventPublisher(publisher shared.EventPublisher) {
	s.publisher = publisher
}

// Create starts a count with one line per active item, expecting its
// current on-hand quantity
func (s *InventoryCountService) Create(ctx context.Context, businessID uuid.UUID, branchID *uuid.UUID, notes string, actor *uuid.UUID) (*inventory.InventoryCount, error) {
	items, err := s.items.ListActive(ctx, businessID)
	if err != nil {
		return nil, err
	}

	snapshot := make([]inventory.CountSnapshot, 0, len(items))
	for _, item := range items {
		qty := decimal.Zero
		rec, err := s.ledger.Find(ctx, inventory.StockKey{BusinessID: businessID, BranchID: branchID, ItemID: item.ID})
		switch {
		case err == nil:
			qty = rec.Quantity
		case !errors.Is(err, shared.ErrNotFound):
			return nil, fmt.Errorf("snapshot item %s: %w", item.Name, err)
		}
		snapshot = append(snapshot, inventory.CountSnapshot{ItemID: item.ID, ItemName: item.Name, Quantity: qty})
	}

	c, err := inventory.NewInventoryCount(businessID, branchID, notes, snapshot)
	if err != nil {
		return nil, err
	}
	if actor != nil {
		c.SetCreatedBy(*actor)
	}
	if err := s.counts.Save(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info("Inventory count started",
		zap.String("count_id", c.ID.String()),
		zap.Int("lines", len(c.Lines)),
	)
	return c, nil
}

// Get returns a count owned by the business
func (s *InventoryCountService) Get(ctx context.Context, businessID, id uuid.UUID) (*inventory.InventoryCount, error) {
	c, err := s.counts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.BelongsTo(businessID) {
		return nil, shared.NewNotFoundError("inventory count", id)
	}
	return c, nil
}

// RecordCount stores the counted quantity of one item
func (s *InventoryCountService) RecordCount(ctx context.Context, businessID, id, itemID uuid.UUID, counted decimal.Decimal) (*inventory.CountLine, error) {
	c, err := s.Get(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	line, err := c.RecordCount(itemID, counted)
	if err != nil {
		return nil, err
	}
	if err := s.counts.Save(ctx, c); err != nil {
		return nil, err
	}
	return line, nil
}

// Complete books every nonzero variance as a count adjustment and stamps
// the count on each stock row. Every line must have been counted.
func (s *InventoryCountService) Complete(ctx context.Context, businessID, id uuid.UUID, actor *uuid.UUID) (*inventory.InventoryCount, error) {
	c, err := s.Get(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if err := c.Complete(actor); err != nil {
		return nil, err
	}

	ref := inventory.RefTo(inventory.ReferenceInventoryCount, c.ID)
	adjusted := 0
	for _, l := range c.Lines {
		key := c.StockKey(l.ItemID)
		if l.HasVariance() {
			if _, err := s.ledger.Adjust(ctx, AdjustInput{
				Key:          key,
				Delta:        *l.Variance,
				MovementType: inventory.MovementCountAdjustment,
				Reference:    ref,
				ActorID:      actor,
			}); err != nil {
				return nil, fmt.Errorf("adjust item %s: %w", l.ItemName, err)
			}
			adjusted++
		}
		if _, err := s.ledger.RecordCount(ctx, key, *l.CountedQuantity, *c.CompletedAt); err != nil {
			return nil, fmt.Errorf("stamp count on item %s: %w", l.ItemName, err)
		}
	}

	if err := s.counts.Save(ctx, c); err != nil {
		return nil, err
	}
	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, inventory.NewInventoryCountCompletedEvent(c, adjusted))
	}
	s.logger.Info("Inventory count completed",
		zap.String("count_id", c.ID.String()),
		zap.Int("lines", len(c.Lines)),
		zap.Int("adjusted", adjusted),
		zap.Time("completed_at", *c.CompletedAt),
	)
	return c, nil
}

// Cancel abandons an in-progress count
func (s *InventoryCountService) Cancel(ctx context.Context, businessID, id uuid.UUID) (*inventory.InventoryCount, error) {
	c, err := s.Get(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if err := c.Cancel(); err != nil {
		return nil, err
	}
	if err := s.counts.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
