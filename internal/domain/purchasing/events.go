package purchasing

import (
	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypePurchaseOrder = "PurchaseOrder"

// Event type constants
const (
	EventTypePurchaseOrderReceived = "PurchaseOrderReceived"
)

// ReceivedLineInfo is a line summary carried by events
type ReceivedLineInfo struct {
	ItemID    uuid.UUID       `json:"item_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// PurchaseOrderReceivedEvent is raised after a purchase order has been
// received into stock
type PurchaseOrderReceivedEvent struct {
	shared.BaseDomainEvent
	OrderNumber string             `json:"order_number"`
	VendorName  string             `json:"vendor_name"`
	BranchID    *uuid.UUID         `json:"branch_id,omitempty"`
	Lines       []ReceivedLineInfo `json:"lines"`
	Subtotal    decimal.Decimal    `json:"subtotal"`
	TaxAmount   decimal.Decimal    `json:"tax_amount"`
	Total       decimal.Decimal    `json:"total"`
}

// NewPurchaseOrderReceivedEvent creates a new PurchaseOrderReceivedEvent
func NewPurchaseOrderReceivedEvent(po *PurchaseOrder, lines []ReceivedLine) *PurchaseOrderReceivedEvent {
	infos := make([]ReceivedLineInfo, len(lines))
	for i, l := range lines {
		infos[i] = ReceivedLineInfo{
			ItemID:    l.ItemID,
			Quantity:  l.Quantity,
			UnitCost:  l.UnitCost,
			TotalCost: l.TotalCost,
		}
	}
	return &PurchaseOrderReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderReceived, AggregateTypePurchaseOrder, po.ID, po.BusinessID),
		OrderNumber:     po.OrderNumber,
		VendorName:      po.VendorName,
		BranchID:        po.BranchID,
		Lines:           infos,
		Subtotal:        po.Subtotal,
		TaxAmount:       po.TaxAmount,
		Total:           po.Total,
	}
}

// EventType returns the event type name
func (e *PurchaseOrderReceivedEvent) EventType() string {
	return EventTypePurchaseOrderReceived
}
