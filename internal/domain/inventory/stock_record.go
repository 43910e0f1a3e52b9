package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// StockKey identifies one stock row. A nil BranchID is the business-level row.
type StockKey struct {
	BusinessID uuid.UUID
	BranchID   *uuid.UUID
	ItemID     uuid.UUID
}

// String renders the key for logs
func (k StockKey) String() string {
	branch := "-"
	if k.BranchID != nil {
		branch = k.BranchID.String()
	}
	return fmt.Sprintf("%s/%s/%s", k.BusinessID, branch, k.ItemID)
}

// Validate checks the key has its required parts
func (k StockKey) Validate() error {
	if k.BusinessID == uuid.Nil {
		return shared.NewValidationError("business is required")
	}
	if k.ItemID == uuid.Nil {
		return shared.NewValidationError("item is required")
	}
	if k.BranchID != nil && *k.BranchID == uuid.Nil {
		return shared.NewValidationError("branch id cannot be empty")
	}
	return nil
}

// StockRecord holds on-hand, reserved and held quantities (storage units)
// for one item at one business or branch. Every quantity is floored at zero.
type StockRecord struct {
	shared.BaseAggregateRoot
	BusinessID        uuid.UUID
	BranchID          *uuid.UUID
	ItemID            uuid.UUID
	Quantity          decimal.Decimal
	ReservedQuantity  decimal.Decimal
	HeldQuantity      decimal.Decimal
	MinQuantity       decimal.Decimal
	MaxQuantity       decimal.Decimal
	LastCountDate     *time.Time
	LastCountQuantity *decimal.Decimal
}

// NewStockRecord creates an empty stock row for key
func NewStockRecord(key StockKey) (*StockRecord, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return &StockRecord{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BusinessID:        key.BusinessID,
		BranchID:          key.BranchID,
		ItemID:            key.ItemID,
		Quantity:          decimal.Zero,
		ReservedQuantity:  decimal.Zero,
		HeldQuantity:      decimal.Zero,
		MinQuantity:       decimal.Zero,
		MaxQuantity:       decimal.Zero,
	}, nil
}

// Key returns the identifying key of the row
func (r *StockRecord) Key() StockKey {
	return StockKey{BusinessID: r.BusinessID, BranchID: r.BranchID, ItemID: r.ItemID}
}

// IsBranchLevel reports whether the row belongs to a specific branch
func (r *StockRecord) IsBranchLevel() bool {
	return r.BranchID != nil
}

// ApplyDelta changes the on-hand quantity, clamping at zero, and returns
// the quantity before and after
func (r *StockRecord) ApplyDelta(delta decimal.Decimal) (before, after decimal.Decimal) {
	before = r.Quantity
	after = floorZero(before.Add(delta))
	r.Quantity = after
	r.Touch()
	return before, after
}

// Reserve commits qty to an open order without touching on-hand quantity
func (r *StockRecord) Reserve(qty decimal.Decimal) error {
	if !qty.IsPositive() {
		return shared.NewValidationError("reserve quantity must be positive")
	}
	r.ReservedQuantity = r.ReservedQuantity.Add(qty)
	r.Touch()
	return nil
}

// Release returns reserved quantity to available. Releasing more than is
// reserved floors at zero, so a double release is harmless.
func (r *StockRecord) Release(qty decimal.Decimal) error {
	if qty.IsNegative() {
		return shared.NewValidationError("release quantity cannot be negative")
	}
	r.ReservedQuantity = floorZero(r.ReservedQuantity.Sub(qty))
	r.Touch()
	return nil
}

// Hold commits qty to an in-flight transfer
func (r *StockRecord) Hold(qty decimal.Decimal) error {
	if !qty.IsPositive() {
		return shared.NewValidationError("hold quantity must be positive")
	}
	r.HeldQuantity = r.HeldQuantity.Add(qty)
	r.Touch()
	return nil
}

// ReleaseHold drops a transfer hold, floored at zero
func (r *StockRecord) ReleaseHold(qty decimal.Decimal) error {
	if qty.IsNegative() {
		return shared.NewValidationError("hold quantity cannot be negative")
	}
	r.HeldQuantity = floorZero(r.HeldQuantity.Sub(qty))
	r.Touch()
	return nil
}

// Available returns quantity minus reserved and held, floored at zero
func (r *StockRecord) Available() decimal.Decimal {
	return floorZero(r.Quantity.Sub(r.ReservedQuantity).Sub(r.HeldQuantity))
}

// SetLimits sets the reorder thresholds. A zero max means unbounded.
func (r *StockRecord) SetLimits(minQty, maxQty decimal.Decimal) error {
	if minQty.IsNegative() || maxQty.IsNegative() {
		return shared.NewValidationError("stock limits cannot be negative")
	}
	if maxQty.IsPositive() && minQty.GreaterThan(maxQty) {
		return shared.NewValidationError("minimum %s exceeds maximum %s", minQty, maxQty)
	}
	r.MinQuantity = minQty
	r.MaxQuantity = maxQty
	r.Touch()
	return nil
}

// IsLow reports whether a configured minimum has been reached
func (r *StockRecord) IsLow() bool {
	return r.MinQuantity.IsPositive() && r.Quantity.LessThanOrEqual(r.MinQuantity)
}

// RecordCount stamps the result of a physical count
func (r *StockRecord) RecordCount(qty decimal.Decimal, at time.Time) {
	r.LastCountDate = &at
	r.LastCountQuantity = &qty
	r.Touch()
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// DedupeStock collapses rows to one per item, preferring a branch row over
// the business-level row when both exist. Input order is kept.
func DedupeStock(records []StockRecord) []StockRecord {
	index := make(map[uuid.UUID]int, len(records))
	out := make([]StockRecord, 0, len(records))
	for _, rec := range records {
		pos, seen := index[rec.ItemID]
		if !seen {
			index[rec.ItemID] = len(out)
			out = append(out, rec)
			continue
		}
		if !out[pos].IsBranchLevel() && rec.IsBranchLevel() {
			out[pos] = rec
		}
	}
	return out
}
