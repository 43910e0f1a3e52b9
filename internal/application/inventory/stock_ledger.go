package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AdjustInput describes one on-hand change
type AdjustInput struct {
	Key          inventory.StockKey
	Delta        decimal.Decimal // storage units, signed
	MovementType inventory.MovementType
	Reference    inventory.Reference
	UnitCost     decimal.Decimal // per storage unit
	Notes        string
	ActorID      *uuid.UUID
}

// StockLedger owns every change to stock rows. Adjust is the only path that
// changes on-hand quantity and every such change writes exactly one movement.
type StockLedger struct {
	scope     TransactionScope
	stock     inventory.StockRecordRepository
	movements inventory.MovementRepository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewStockLedger creates a new StockLedger
func NewStockLedger(
	scope TransactionScope,
	stock inventory.StockRecordRepository,
	movements inventory.MovementRepository,
	logger *zap.Logger,
) *StockLedger {
	return &StockLedger{
		scope:     scope,
		stock:     stock,
		movements: movements,
		logger:    logger,
	}
}

// SetEventPublisher sets the event publisher for StockAdjusted events
func (l *StockLedger) SetEventPublisher(publisher shared.EventPublisher) {
	l.publisher = publisher
}

// rowChange mutates a locked row and optionally asks for an on-hand delta
type rowChange func(rec *inventory.StockRecord) (*AdjustInput, error)

// apply locks the row for key, runs change and persists the result. When
// change returns an adjustment, the delta is applied with clamping and a
// movement is appended in the same transaction.
func (l *StockLedger) apply(ctx context.Context, key inventory.StockKey, change rowChange) (*inventory.StockRecord, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	var (
		record *inventory.StockRecord
		event  *inventory.StockAdjustedEvent
	)
	err := l.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		stockRepo := repos.StockRepo()
		if _, err := stockRepo.GetOrCreate(ctx, key); err != nil {
			return fmt.Errorf("get or create stock row %s: %w", key, err)
		}
		rec, err := stockRepo.FindForUpdate(ctx, key)
		if err != nil {
			return fmt.Errorf("lock stock row %s: %w", key, err)
		}

		adj, err := change(rec)
		if err != nil {
			return err
		}

		var movement *inventory.InventoryMovement
		if adj != nil {
			if !adj.MovementType.IsValid() {
				return shared.NewValidationError("unknown movement type %q", adj.MovementType)
			}
			before, after := rec.ApplyDelta(adj.Delta)
			movement, err = inventory.NewInventoryMovement(rec, adj.MovementType, adj.Delta, before, after)
			if err != nil {
				return err
			}
			movement.WithReference(adj.Reference).
				WithUnitCost(adj.UnitCost).
				WithNotes(adj.Notes).
				WithActor(adj.ActorID)
		}

		if err := stockRepo.Save(ctx, rec); err != nil {
			return fmt.Errorf("save stock row %s: %w", key, err)
		}
		if movement != nil {
			if err := repos.MovementRepo().Create(ctx, movement); err != nil {
				return fmt.Errorf("append movement: %w", err)
			}
			if movement.WasClamped() {
				l.logger.Warn("Stock adjustment clamped at zero",
					zap.String("stock_key", key.String()),
					zap.String("movement_type", movement.MovementType.String()),
					zap.String("requested", movement.RequestedQuantity.String()),
					zap.String("applied", movement.Quantity.String()),
				)
			}
			event = inventory.NewStockAdjustedEvent(rec, movement)
		}
		record = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	if event != nil && l.publisher != nil {
		// Errors are logged by the event bus, not propagated
		_ = l.publisher.Publish(ctx, event)
	}
	return record, nil
}

// GetOrCreate returns the stock row, creating an empty one when missing
func (l *StockLedger) GetOrCreate(ctx context.Context, key inventory.StockKey) (*inventory.StockRecord, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return l.stock.GetOrCreate(ctx, key)
}

// Find returns the stock row or shared.ErrNotFound
func (l *StockLedger) Find(ctx context.Context, key inventory.StockKey) (*inventory.StockRecord, error) {
	return l.stock.Find(ctx, key)
}

// Adjust applies a signed delta to on-hand quantity, floored at zero
func (l *StockLedger) Adjust(ctx context.Context, in AdjustInput) (*inventory.StockRecord, error) {
	return l.apply(ctx, in.Key, func(*inventory.StockRecord) (*AdjustInput, error) {
		return &in, nil
	})
}

// Reserve commits qty to an open order
func (l *StockLedger) Reserve(ctx context.Context, key inventory.StockKey, qty decimal.Decimal, ref inventory.Reference) (*inventory.StockRecord, error) {
	rec, err := l.apply(ctx, key, func(rec *inventory.StockRecord) (*AdjustInput, error) {
		return nil, rec.Reserve(qty)
	})
	if err != nil {
		return nil, err
	}
	l.logger.Debug("Stock reserved", l.refFields(key, qty, ref)...)
	return rec, nil
}

// Release returns reserved stock to available
func (l *StockLedger) Release(ctx context.Context, key inventory.StockKey, qty decimal.Decimal, ref inventory.Reference) (*inventory.StockRecord, error) {
	rec, err := l.apply(ctx, key, func(rec *inventory.StockRecord) (*AdjustInput, error) {
		return nil, rec.Release(qty)
	})
	if err != nil {
		return nil, err
	}
	l.logger.Debug("Stock released", l.refFields(key, qty, ref)...)
	return rec, nil
}

// Consume deducts reserved stock that was sold
func (l *StockLedger) Consume(ctx context.Context, key inventory.StockKey, qty decimal.Decimal, ref inventory.Reference) (*inventory.StockRecord, error) {
	return l.deductReserved(ctx, key, qty, inventory.MovementOrderConsume, ref)
}

// ReleaseAndDeductWaste deducts reserved stock that was prepared and then thrown away
func (l *StockLedger) ReleaseAndDeductWaste(ctx context.Context, key inventory.StockKey, qty decimal.Decimal, ref inventory.Reference) (*inventory.StockRecord, error) {
	return l.deductReserved(ctx, key, qty, inventory.MovementOrderWaste, ref)
}

func (l *StockLedger) deductReserved(ctx context.Context, key inventory.StockKey, qty decimal.Decimal, mt inventory.MovementType, ref inventory.Reference) (*inventory.StockRecord, error) {
	if !qty.IsPositive() {
		return nil, shared.NewValidationError("quantity must be positive")
	}
	return l.apply(ctx, key, func(rec *inventory.StockRecord) (*AdjustInput, error) {
		if err := rec.Release(qty); err != nil {
			return nil, err
		}
		return &AdjustInput{Key: key, Delta: qty.Neg(), MovementType: mt, Reference: ref}, nil
	})
}

// ProcessWaste deducts wasted stock that was never reserved. Waste tied to
// an order is logged as order waste, anything else as manual waste.
func (l *StockLedger) ProcessWaste(ctx context.Context, key inventory.StockKey, qty decimal.Decimal, ref inventory.Reference, notes string, actor *uuid.UUID) (*inventory.StockRecord, error) {
	if !qty.IsPositive() {
		return nil, shared.NewValidationError("waste quantity must be positive")
	}
	mt := inventory.MovementManualWaste
	if ref.Type == inventory.ReferenceOrder {
		mt = inventory.MovementOrderWaste
	}
	return l.Adjust(ctx, AdjustInput{
		Key:          key,
		Delta:        qty.Neg(),
		MovementType: mt,
		Reference:    ref,
		Notes:        notes,
		ActorID:      actor,
	})
}

// Hold commits qty to an in-flight transfer
func (l *StockLedger) Hold(ctx context.Context, key inventory.StockKey, qty decimal.Decimal, ref inventory.Reference) (*inventory.StockRecord, error) {
	rec, err := l.apply(ctx, key, func(rec *inventory.StockRecord) (*AdjustInput, error) {
		return nil, rec.Hold(qty)
	})
	if err != nil {
		return nil, err
	}
	l.logger.Debug("Stock held", l.refFields(key, qty, ref)...)
	return rec, nil
}

// ReleaseHold drops a transfer hold
func (l *StockLedger) ReleaseHold(ctx context.Context, key inventory.StockKey, qty decimal.Decimal, ref inventory.Reference) (*inventory.StockRecord, error) {
	rec, err := l.apply(ctx, key, func(rec *inventory.StockRecord) (*AdjustInput, error) {
		return nil, rec.ReleaseHold(qty)
	})
	if err != nil {
		return nil, err
	}
	l.logger.Debug("Stock hold released", l.refFields(key, qty, ref)...)
	return rec, nil
}

// TransferOut deducts qty from the source row of a transfer, dropping held
// of any hold placed at dispatch in the same transaction
func (l *StockLedger) TransferOut(ctx context.Context, key inventory.StockKey, qty, held decimal.Decimal, ref inventory.Reference, actor *uuid.UUID) (*inventory.StockRecord, error) {
	return l.apply(ctx, key, func(rec *inventory.StockRecord) (*AdjustInput, error) {
		if held.IsPositive() {
			if err := rec.ReleaseHold(held); err != nil {
				return nil, err
			}
		}
		return &AdjustInput{
			Key:          key,
			Delta:        qty.Neg(),
			MovementType: inventory.MovementTransferOut,
			Reference:    ref,
			ActorID:      actor,
		}, nil
	})
}

// SetLimits sets the reorder thresholds of a row
func (l *StockLedger) SetLimits(ctx context.Context, key inventory.StockKey, minQty, maxQty decimal.Decimal) (*inventory.StockRecord, error) {
	return l.apply(ctx, key, func(rec *inventory.StockRecord) (*AdjustInput, error) {
		return nil, rec.SetLimits(minQty, maxQty)
	})
}

// RecordCount stamps the result of a physical count on a row
func (l *StockLedger) RecordCount(ctx context.Context, key inventory.StockKey, qty decimal.Decimal, at time.Time) (*inventory.StockRecord, error) {
	return l.apply(ctx, key, func(rec *inventory.StockRecord) (*AdjustInput, error) {
		rec.RecordCount(qty, at)
		return nil, nil
	})
}

// ListStock lists a business's stock rows. With a branch it returns that
// branch's rows; without one it returns one row per item, preferring a
// branch row over the business-level row.
func (l *StockLedger) ListStock(ctx context.Context, businessID uuid.UUID, branchID *uuid.UUID) ([]inventory.StockRecord, error) {
	records, err := l.stock.ListByBusiness(ctx, businessID, branchID)
	if err != nil {
		return nil, err
	}
	if branchID != nil {
		return records, nil
	}
	return inventory.DedupeStock(records), nil
}

// LowStock lists rows at or below their configured minimum
func (l *StockLedger) LowStock(ctx context.Context, businessID uuid.UUID, branchID *uuid.UUID) ([]inventory.StockRecord, error) {
	records, err := l.ListStock(ctx, businessID, branchID)
	if err != nil {
		return nil, err
	}
	low := make([]inventory.StockRecord, 0)
	for _, r := range records {
		if r.IsLow() {
			low = append(low, r)
		}
	}
	return low, nil
}

// Movements queries the movement ledger
func (l *StockLedger) Movements(ctx context.Context, filter inventory.MovementFilter) ([]inventory.InventoryMovement, error) {
	if filter.BusinessID == uuid.Nil {
		return nil, shared.NewValidationError("business is required")
	}
	return l.movements.List(ctx, filter)
}

// Available returns the available quantity of a row, zero when it does not exist
func (l *StockLedger) Available(ctx context.Context, key inventory.StockKey) (decimal.Decimal, error) {
	rec, err := l.stock.Find(ctx, key)
	if errors.Is(err, shared.ErrNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return rec.Available(), nil
}

func (l *StockLedger) refFields(key inventory.StockKey, qty decimal.Decimal, ref inventory.Reference) []zap.Field {
	fields := []zap.Field{
		zap.String("stock_key", key.String()),
		zap.String("quantity", qty.String()),
		zap.String("reference_type", string(ref.Type)),
	}
	if ref.ID != nil {
		fields = append(fields, zap.String("reference_id", ref.ID.String()))
	}
	return fields
}
