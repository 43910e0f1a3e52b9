package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/purchasing"
	"github.com/shopspring/decimal"
)

// PurchaseOrderLineResponse is one line of a purchase order
type PurchaseOrderLineResponse struct {
	ID               uuid.UUID        `json:"id"`
	ItemID           uuid.UUID        `json:"item_id"`
	ItemName         string           `json:"item_name"`
	OrderedQuantity  decimal.Decimal  `json:"ordered_quantity"`
	CountedQuantity  *decimal.Decimal `json:"counted_quantity,omitempty"`
	ReceivedQuantity *decimal.Decimal `json:"received_quantity,omitempty"`
	VarianceReason   string           `json:"variance_reason,omitempty"`
	VarianceNote     string           `json:"variance_note,omitempty"`
	BarcodeScans     int              `json:"barcode_scans"`
	TotalCost        *decimal.Decimal `json:"total_cost,omitempty"`
	UnitCost         *decimal.Decimal `json:"unit_cost,omitempty"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID              uuid.UUID                   `json:"id"`
	BusinessID      uuid.UUID                   `json:"business_id"`
	BranchID        *uuid.UUID                  `json:"branch_id"`
	VendorName      string                      `json:"vendor_name"`
	OrderNumber     string                      `json:"order_number"`
	Status          string                      `json:"status"`
	Notes           string                      `json:"notes,omitempty"`
	Lines           []PurchaseOrderLineResponse `json:"lines"`
	InvoiceImageRef string                      `json:"invoice_image_ref,omitempty"`
	Subtotal        decimal.Decimal             `json:"subtotal"`
	TaxRate         decimal.Decimal             `json:"tax_rate"`
	TaxAmount       decimal.Decimal             `json:"tax_amount"`
	Total           decimal.Decimal             `json:"total"`
	CountedAt       *time.Time                  `json:"counted_at,omitempty"`
	ReceivedAt      *time.Time                  `json:"received_at,omitempty"`
	CancelledAt     *time.Time                  `json:"cancelled_at,omitempty"`
	CancelReason    string                      `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time                   `json:"created_at"`
	Version         int                         `json:"version"`
}

func toPurchaseOrderResponse(po *purchasing.PurchaseOrder) PurchaseOrderResponse {
	lines := make([]PurchaseOrderLineResponse, len(po.Lines))
	for i, l := range po.Lines {
		line := PurchaseOrderLineResponse{
			ID:               l.ID,
			ItemID:           l.ItemID,
			ItemName:         l.ItemName,
			OrderedQuantity:  l.OrderedQuantity,
			CountedQuantity:  l.CountedQuantity,
			ReceivedQuantity: l.ReceivedQuantity,
			VarianceNote:     l.VarianceNote,
			BarcodeScans:     l.BarcodeScans,
			TotalCost:        l.TotalCost,
			UnitCost:         l.UnitCost,
		}
		if l.VarianceReason != nil {
			line.VarianceReason = string(*l.VarianceReason)
		}
		lines[i] = line
	}
	return PurchaseOrderResponse{
		ID:              po.ID,
		BusinessID:      po.BusinessID,
		BranchID:        po.BranchID,
		VendorName:      po.VendorName,
		OrderNumber:     po.OrderNumber,
		Status:          po.Status.String(),
		Notes:           po.Notes,
		Lines:           lines,
		InvoiceImageRef: po.InvoiceImageRef,
		Subtotal:        po.Subtotal,
		TaxRate:         po.TaxRate,
		TaxAmount:       po.TaxAmount,
		Total:           po.Total,
		CountedAt:       po.CountedAt,
		ReceivedAt:      po.ReceivedAt,
		CancelledAt:     po.CancelledAt,
		CancelReason:    po.CancelReason,
		CreatedAt:       po.CreatedAt,
		Version:         po.Version,
	}
}

// ActivityResponse is one audit row of a purchase order
type ActivityResponse struct {
	ID        uuid.UUID      `json:"id"`
	Action    string         `json:"action"`
	OldStatus string         `json:"old_status,omitempty"`
	NewStatus string         `json:"new_status"`
	Changes   map[string]any `json:"changes,omitempty"`
	ActorID   *uuid.UUID     `json:"actor_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func toActivityResponses(activities []purchasing.Activity) []ActivityResponse {
	out := make([]ActivityResponse, len(activities))
	for i, a := range activities {
		resp := ActivityResponse{
			ID:        a.ID,
			Action:    a.Action,
			NewStatus: a.NewStatus.String(),
			Changes:   a.Changes,
			ActorID:   a.ActorID,
			CreatedAt: a.CreatedAt,
		}
		if a.OldStatus != nil {
			resp.OldStatus = a.OldStatus.String()
		}
		out[i] = resp
	}
	return out
}

// UploadURLResponse is a presigned invoice upload
type UploadURLResponse struct {
	Ref       string    `json:"ref"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
