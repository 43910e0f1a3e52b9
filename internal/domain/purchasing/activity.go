package purchasing

import (
	"time"

	"github.com/google/uuid"
)

// Activity actions
const (
	ActionCreated   = "created"
	ActionCounted   = "counted"
	ActionReceived  = "received"
	ActionCancelled = "cancelled"
)

// Activity is one audit row of a purchase order's history
type Activity struct {
	ID              uuid.UUID
	BusinessID      uuid.UUID
	PurchaseOrderID uuid.UUID
	Action          string
	OldStatus       *Status
	NewStatus       Status
	Changes         map[string]any
	ActorID         *uuid.UUID
	CreatedAt       time.Time
}

// NewActivity records a transition of po from oldStatus
func NewActivity(po *PurchaseOrder, action string, oldStatus *Status, changes map[string]any, actor *uuid.UUID) *Activity {
	if changes == nil {
		changes = map[string]any{}
	}
	return &Activity{
		ID:              uuid.New(),
		BusinessID:      po.BusinessID,
		PurchaseOrderID: po.ID,
		Action:          action,
		OldStatus:       oldStatus,
		NewStatus:       po.Status,
		Changes:         changes,
		ActorID:         actor,
		CreatedAt:       time.Now(),
	}
}
