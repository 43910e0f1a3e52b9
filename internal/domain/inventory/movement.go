package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MovementType classifies an inventory movement
type MovementType string

const (
	MovementPurchaseReceive  MovementType = "purchase_receive"
	MovementOrderConsume     MovementType = "order_consume"
	MovementOrderWaste       MovementType = "order_waste"
	MovementTransferOut      MovementType = "transfer_out"
	MovementTransferIn       MovementType = "transfer_in"
	MovementCountAdjustment  MovementType = "count_adjustment"
	MovementManualAdjustment MovementType = "manual_adjustment"
	MovementManualWaste      MovementType = "manual_waste"
)

// IsValid returns true if the movement type is known
func (t MovementType) IsValid() bool {
	switch t {
	case MovementPurchaseReceive,
		MovementOrderConsume,
		MovementOrderWaste,
		MovementTransferOut,
		MovementTransferIn,
		MovementCountAdjustment,
		MovementManualAdjustment,
		MovementManualWaste:
		return true
	}
	return false
}

// String returns the string representation of MovementType
func (t MovementType) String() string {
	return string(t)
}

// ReferenceType names the kind of entity that caused a movement
type ReferenceType string

const (
	ReferenceOrder          ReferenceType = "order"
	ReferencePurchaseOrder  ReferenceType = "purchase_order"
	ReferenceTransfer       ReferenceType = "transfer"
	ReferenceInventoryCount ReferenceType = "inventory_count"
	ReferenceManual         ReferenceType = "manual"
)

// Reference points at the entity that caused a stock change
type Reference struct {
	Type ReferenceType
	ID   *uuid.UUID
}

// RefTo builds a reference to an entity
func RefTo(t ReferenceType, id uuid.UUID) Reference {
	return Reference{Type: t, ID: &id}
}

// InventoryMovement is an immutable ledger row for one stock delta.
// Corrections are new movements; rows are never updated or deleted.
type InventoryMovement struct {
	shared.BaseEntity
	BusinessID        uuid.UUID
	BranchID          *uuid.UUID
	ItemID            uuid.UUID
	StockRecordID     uuid.UUID
	MovementType      MovementType
	RequestedQuantity decimal.Decimal // signed delta asked for
	Quantity          decimal.Decimal // signed delta actually applied after clamping
	QuantityBefore    decimal.Decimal
	QuantityAfter     decimal.Decimal
	UnitCost          decimal.Decimal
	ReferenceType     ReferenceType
	ReferenceID       *uuid.UUID
	Notes             string
	ActorID           *uuid.UUID
}

// NewInventoryMovement records the change applied to record
func NewInventoryMovement(record *StockRecord, movementType MovementType, requested, before, after decimal.Decimal) (*InventoryMovement, error) {
	if !movementType.IsValid() {
		return nil, shared.NewValidationError("unknown movement type %q", movementType)
	}
	return &InventoryMovement{
		BaseEntity:        shared.NewBaseEntity(),
		BusinessID:        record.BusinessID,
		BranchID:          record.BranchID,
		ItemID:            record.ItemID,
		StockRecordID:     record.ID,
		MovementType:      movementType,
		RequestedQuantity: requested,
		Quantity:          after.Sub(before),
		QuantityBefore:    before,
		QuantityAfter:     after,
		UnitCost:          decimal.Zero,
	}, nil
}

// WithReference sets the causing entity
func (m *InventoryMovement) WithReference(ref Reference) *InventoryMovement {
	m.ReferenceType = ref.Type
	m.ReferenceID = ref.ID
	return m
}

// WithUnitCost sets the unit cost (per storage unit) at the time of the movement
func (m *InventoryMovement) WithUnitCost(cost decimal.Decimal) *InventoryMovement {
	m.UnitCost = cost
	return m
}

// WithNotes sets free-text notes
func (m *InventoryMovement) WithNotes(notes string) *InventoryMovement {
	m.Notes = notes
	return m
}

// WithActor sets the user who caused the movement
func (m *InventoryMovement) WithActor(actorID *uuid.UUID) *InventoryMovement {
	m.ActorID = actorID
	return m
}

// WasClamped reports whether the requested delta was cut short at zero
func (m *InventoryMovement) WasClamped() bool {
	return !m.RequestedQuantity.Equal(m.Quantity)
}

// MovementFilter narrows a movement query
type MovementFilter struct {
	BusinessID    uuid.UUID
	BranchID      *uuid.UUID
	ItemID        *uuid.UUID
	MovementType  *MovementType
	ReferenceType *ReferenceType
	ReferenceID   *uuid.UUID
	Since         *time.Time
	SortBy        string
	SortOrder     string
	shared.Filter
}
