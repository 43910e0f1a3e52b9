package inventory

import (
	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeItem           = "Item"
	AggregateTypeStockRecord    = "StockRecord"
	AggregateTypeTransfer       = "Transfer"
	AggregateTypeInventoryCount = "InventoryCount"
)

// Event type constants
const (
	EventTypeItemCostChanged         = "ItemCostChanged"
	EventTypeStockAdjusted           = "StockAdjusted"
	EventTypeTransferReceived        = "TransferReceived"
	EventTypeInventoryCountCompleted = "InventoryCountCompleted"
)

// CostChangeSource says what moved an item's cost
type CostChangeSource string

const (
	CostSourceReceipt  CostChangeSource = "receipt"
	CostSourceCascade  CostChangeSource = "cascade"
	CostSourceOverride CostChangeSource = "override"
)

// ItemCostChangedEvent is raised when an item's cost per serving unit changes
// for a business. Dependents (composites, menu products) subscribe to it.
type ItemCostChangedEvent struct {
	shared.BaseDomainEvent
	ItemID       uuid.UUID        `json:"item_id"`
	PreviousCost decimal.Decimal  `json:"previous_cost"`
	NewCost      decimal.Decimal  `json:"new_cost"`
	Source       CostChangeSource `json:"source"`
}

// NewItemCostChangedEvent creates a new ItemCostChangedEvent
func NewItemCostChangedEvent(businessID, itemID uuid.UUID, previous, current decimal.Decimal, source CostChangeSource) *ItemCostChangedEvent {
	return &ItemCostChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemCostChanged, AggregateTypeItem, itemID, businessID),
		ItemID:          itemID,
		PreviousCost:    previous,
		NewCost:         current,
		Source:          source,
	}
}

// EventType returns the event type name
func (e *ItemCostChangedEvent) EventType() string {
	return EventTypeItemCostChanged
}

// StockAdjustedEvent is raised after every committed on-hand change
type StockAdjustedEvent struct {
	shared.BaseDomainEvent
	ItemID         uuid.UUID       `json:"item_id"`
	BranchID       *uuid.UUID      `json:"branch_id,omitempty"`
	MovementID     uuid.UUID       `json:"movement_id"`
	MovementType   MovementType    `json:"movement_type"`
	Quantity       decimal.Decimal `json:"quantity"`
	QuantityBefore decimal.Decimal `json:"quantity_before"`
	QuantityAfter  decimal.Decimal `json:"quantity_after"`
	BelowMinimum   bool            `json:"below_minimum"`
}

// NewStockAdjustedEvent creates a new StockAdjustedEvent
func NewStockAdjustedEvent(record *StockRecord, m *InventoryMovement) *StockAdjustedEvent {
	return &StockAdjustedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockAdjusted, AggregateTypeStockRecord, record.ID, record.BusinessID),
		ItemID:          record.ItemID,
		BranchID:        record.BranchID,
		MovementID:      m.ID,
		MovementType:    m.MovementType,
		Quantity:        m.Quantity,
		QuantityBefore:  m.QuantityBefore,
		QuantityAfter:   m.QuantityAfter,
		BelowMinimum:    record.IsLow(),
	}
}

// EventType returns the event type name
func (e *StockAdjustedEvent) EventType() string {
	return EventTypeStockAdjusted
}

// TransferReceivedEvent is raised when a transfer's stock has moved
type TransferReceivedEvent struct {
	shared.BaseDomainEvent
	FromBranchID uuid.UUID `json:"from_branch_id"`
	ToBusinessID uuid.UUID `json:"to_business_id"`
	ToBranchID   uuid.UUID `json:"to_branch_id"`
	LineCount    int       `json:"line_count"`
}

// NewTransferReceivedEvent creates a new TransferReceivedEvent
func NewTransferReceivedEvent(t *Transfer) *TransferReceivedEvent {
	return &TransferReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTransferReceived, AggregateTypeTransfer, t.ID, t.BusinessID),
		FromBranchID:    t.FromBranchID,
		ToBusinessID:    t.ToBusinessID,
		ToBranchID:      t.ToBranchID,
		LineCount:       len(t.Lines),
	}
}

// EventType returns the event type name
func (e *TransferReceivedEvent) EventType() string {
	return EventTypeTransferReceived
}

// InventoryCountCompletedEvent is raised when count variances have been applied
type InventoryCountCompletedEvent struct {
	shared.BaseDomainEvent
	BranchID      *uuid.UUID `json:"branch_id,omitempty"`
	LineCount     int        `json:"line_count"`
	AdjustedLines int        `json:"adjusted_lines"`
}

// NewInventoryCountCompletedEvent creates a new InventoryCountCompletedEvent
func NewInventoryCountCompletedEvent(c *InventoryCount, adjusted int) *InventoryCountCompletedEvent {
	return &InventoryCountCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInventoryCountCompleted, AggregateTypeInventoryCount, c.ID, c.BusinessID),
		BranchID:        c.BranchID,
		LineCount:       len(c.Lines),
		AdjustedLines:   adjusted,
	}
}

// EventType returns the event type name
func (e *InventoryCountCompletedEvent) EventType() string {
	return EventTypeInventoryCountCompleted
}
