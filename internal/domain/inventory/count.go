package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CountStatus represents the state of an inventory count
type CountStatus string

const (
	CountInProgress CountStatus = "in_progress"
	CountCompleted  CountStatus = "completed"
	CountCancelled  CountStatus = "cancelled"
)

// CanTransitionTo checks the count transition table
func (s CountStatus) CanTransitionTo(target CountStatus) bool {
	return s == CountInProgress && (target == CountCompleted || target == CountCancelled)
}

// CountLine is the expected and counted quantity of one item
type CountLine struct {
	ID               uuid.UUID
	CountID          uuid.UUID
	ItemID           uuid.UUID
	ItemName         string
	ExpectedQuantity decimal.Decimal
	CountedQuantity  *decimal.Decimal
	Variance         *decimal.Decimal
}

// IsCounted reports whether a physical count was recorded
func (l *CountLine) IsCounted() bool {
	return l.CountedQuantity != nil
}

// HasVariance reports whether the count differs from the snapshot
func (l *CountLine) HasVariance() bool {
	return l.Variance != nil && !l.Variance.IsZero()
}

// InventoryCount snapshots expected quantities and reconciles them with a
// physical count
type InventoryCount struct {
	shared.BusinessAggregateRoot
	BranchID    *uuid.UUID
	Status      CountStatus
	Notes       string
	Lines       []CountLine
	CompletedAt *time.Time
	CompletedBy *uuid.UUID
}

// CountSnapshot is the expected quantity of one item at count creation
type CountSnapshot struct {
	ItemID   uuid.UUID
	ItemName string
	Quantity decimal.Decimal
}

// NewInventoryCount creates a count with one line per snapshot entry
func NewInventoryCount(businessID uuid.UUID, branchID *uuid.UUID, notes string, snapshot []CountSnapshot) (*InventoryCount, error) {
	if businessID == uuid.Nil {
		return nil, shared.NewValidationError("business is required")
	}
	c := &InventoryCount{
		BusinessAggregateRoot: shared.NewBusinessAggregateRoot(businessID),
		BranchID:              branchID,
		Status:                CountInProgress,
		Notes:                 strings.TrimSpace(notes),
		Lines:                 make([]CountLine, 0, len(snapshot)),
	}
	for _, s := range snapshot {
		c.Lines = append(c.Lines, CountLine{
			ID:               uuid.New(),
			CountID:          c.ID,
			ItemID:           s.ItemID,
			ItemName:         s.ItemName,
			ExpectedQuantity: s.Quantity,
		})
	}
	return c, nil
}

// StockKey returns the stock row a line reconciles
func (c *InventoryCount) StockKey(itemID uuid.UUID) StockKey {
	return StockKey{BusinessID: c.BusinessID, BranchID: c.BranchID, ItemID: itemID}
}

// RecordCount stores the counted quantity for an item and computes its variance
func (c *InventoryCount) RecordCount(itemID uuid.UUID, counted decimal.Decimal) (*CountLine, error) {
	if c.Status != CountInProgress {
		return nil, shared.NewStateError("inventory count is %s", c.Status)
	}
	if counted.IsNegative() {
		return nil, shared.NewValidationError("counted quantity cannot be negative")
	}
	for i := range c.Lines {
		if c.Lines[i].ItemID != itemID {
			continue
		}
		variance := counted.Sub(c.Lines[i].ExpectedQuantity)
		c.Lines[i].CountedQuantity = &counted
		c.Lines[i].Variance = &variance
		c.Touch()
		return &c.Lines[i], nil
	}
	return nil, shared.NewNotFoundError("count line for item", itemID)
}

// UncountedLines lists the lines still missing a physical count
func (c *InventoryCount) UncountedLines() []CountLine {
	var out []CountLine
	for _, l := range c.Lines {
		if !l.IsCounted() {
			out = append(out, l)
		}
	}
	return out
}

// Complete closes the count. Every line must have been counted.
func (c *InventoryCount) Complete(actor *uuid.UUID) error {
	if !c.Status.CanTransitionTo(CountCompleted) {
		return shared.NewStateError("inventory count is %s and cannot be completed", c.Status)
	}
	if missing := c.UncountedLines(); len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, l := range missing {
			names = append(names, l.ItemName)
		}
		return shared.NewValidationError("%d items not counted: %s", len(missing), strings.Join(names, ", "))
	}
	now := time.Now()
	c.Status = CountCompleted
	c.CompletedAt = &now
	c.CompletedBy = actor
	c.MarkModified()
	return nil
}

// Cancel abandons an in-progress count
func (c *InventoryCount) Cancel() error {
	if !c.Status.CanTransitionTo(CountCancelled) {
		return shared.NewStateError("inventory count is %s and cannot be cancelled", c.Status)
	}
	c.Status = CountCancelled
	c.MarkModified()
	return nil
}
