package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// ItemResponse represents an item in API responses
type ItemResponse struct {
	ID                 uuid.UUID       `json:"id"`
	BusinessID         *uuid.UUID      `json:"business_id"`
	Name               string          `json:"name"`
	Category           string          `json:"category,omitempty"`
	Barcode            string          `json:"barcode,omitempty"`
	ServingUnit        string          `json:"serving_unit"`
	StorageUnit        string          `json:"storage_unit"`
	Status             string          `json:"status"`
	CostPerUnit        decimal.Decimal `json:"cost_per_unit"`
	TotalStockQuantity decimal.Decimal `json:"total_stock_quantity"`
	TotalStockValue    decimal.Decimal `json:"total_stock_value"`
	IsComposite        bool            `json:"is_composite"`
	BatchQuantity      decimal.Decimal `json:"batch_quantity"`
	BatchUnit          string          `json:"batch_unit,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	Version            int             `json:"version"`
}

func toItemResponse(item *inventory.Item) ItemResponse {
	return ItemResponse{
		ID:                 item.ID,
		BusinessID:         item.BusinessID,
		Name:               item.Name,
		Category:           item.Category,
		Barcode:            item.Barcode,
		ServingUnit:        item.ServingUnit.String(),
		StorageUnit:        item.StorageUnit.String(),
		Status:             string(item.Status),
		CostPerUnit:        item.CostPerUnit,
		TotalStockQuantity: item.TotalStockQuantity,
		TotalStockValue:    item.TotalStockValue,
		IsComposite:        item.IsComposite,
		BatchQuantity:      item.BatchQuantity,
		BatchUnit:          item.BatchUnit.String(),
		CreatedAt:          item.CreatedAt,
		UpdatedAt:          item.UpdatedAt,
		Version:            item.Version,
	}
}

// ComponentResponse is one component of a composite item
type ComponentResponse struct {
	ID              uuid.UUID       `json:"id"`
	ComponentItemID uuid.UUID       `json:"component_item_id"`
	Quantity        decimal.Decimal `json:"quantity"`
}

func toComponentResponses(components []inventory.CompositeComponent) []ComponentResponse {
	out := make([]ComponentResponse, len(components))
	for i, cc := range components {
		out[i] = ComponentResponse{
			ID:              cc.ID,
			ComponentItemID: cc.ComponentItemID,
			Quantity:        cc.Quantity,
		}
	}
	return out
}

// BusinessPriceResponse is a business's cost override for a shared item
type BusinessPriceResponse struct {
	BusinessID         uuid.UUID       `json:"business_id"`
	ItemID             uuid.UUID       `json:"item_id"`
	Price              decimal.Decimal `json:"price"`
	TotalStockQuantity decimal.Decimal `json:"total_stock_quantity"`
	TotalStockValue    decimal.Decimal `json:"total_stock_value"`
}

func toBusinessPriceResponse(p *inventory.BusinessItemPrice) BusinessPriceResponse {
	return BusinessPriceResponse{
		BusinessID:         p.BusinessID,
		ItemID:             p.ItemID,
		Price:              p.Price,
		TotalStockQuantity: p.TotalStockQuantity,
		TotalStockValue:    p.TotalStockValue,
	}
}

// StockResponse is one stock row
type StockResponse struct {
	ID                uuid.UUID        `json:"id"`
	BusinessID        uuid.UUID        `json:"business_id"`
	BranchID          *uuid.UUID       `json:"branch_id"`
	ItemID            uuid.UUID        `json:"item_id"`
	Quantity          decimal.Decimal  `json:"quantity"`
	ReservedQuantity  decimal.Decimal  `json:"reserved_quantity"`
	HeldQuantity      decimal.Decimal  `json:"held_quantity"`
	AvailableQuantity decimal.Decimal  `json:"available_quantity"`
	MinQuantity       decimal.Decimal  `json:"min_quantity"`
	MaxQuantity       decimal.Decimal  `json:"max_quantity"`
	IsLow             bool             `json:"is_low"`
	LastCountDate     *time.Time       `json:"last_count_date,omitempty"`
	LastCountQuantity *decimal.Decimal `json:"last_count_quantity,omitempty"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func toStockResponse(r *inventory.StockRecord) StockResponse {
	return StockResponse{
		ID:                r.ID,
		BusinessID:        r.BusinessID,
		BranchID:          r.BranchID,
		ItemID:            r.ItemID,
		Quantity:          r.Quantity,
		ReservedQuantity:  r.ReservedQuantity,
		HeldQuantity:      r.HeldQuantity,
		AvailableQuantity: r.Available(),
		MinQuantity:       r.MinQuantity,
		MaxQuantity:       r.MaxQuantity,
		IsLow:             r.IsLow(),
		LastCountDate:     r.LastCountDate,
		LastCountQuantity: r.LastCountQuantity,
		UpdatedAt:         r.UpdatedAt,
	}
}

func toStockResponses(records []inventory.StockRecord) []StockResponse {
	out := make([]StockResponse, len(records))
	for i := range records {
		out[i] = toStockResponse(&records[i])
	}
	return out
}

// MovementResponse is one ledger entry
type MovementResponse struct {
	ID                uuid.UUID       `json:"id"`
	BranchID          *uuid.UUID      `json:"branch_id"`
	ItemID            uuid.UUID       `json:"item_id"`
	MovementType      string          `json:"movement_type"`
	RequestedQuantity decimal.Decimal `json:"requested_quantity"`
	Quantity          decimal.Decimal `json:"quantity"`
	QuantityBefore    decimal.Decimal `json:"quantity_before"`
	QuantityAfter     decimal.Decimal `json:"quantity_after"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	ReferenceType     string          `json:"reference_type,omitempty"`
	ReferenceID       *uuid.UUID      `json:"reference_id,omitempty"`
	Notes             string          `json:"notes,omitempty"`
	ActorID           *uuid.UUID      `json:"actor_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

func toMovementResponses(movements []inventory.InventoryMovement) []MovementResponse {
	out := make([]MovementResponse, len(movements))
	for i, m := range movements {
		out[i] = MovementResponse{
			ID:                m.ID,
			BranchID:          m.BranchID,
			ItemID:            m.ItemID,
			MovementType:      m.MovementType.String(),
			RequestedQuantity: m.RequestedQuantity,
			Quantity:          m.Quantity,
			QuantityBefore:    m.QuantityBefore,
			QuantityAfter:     m.QuantityAfter,
			UnitCost:          m.UnitCost,
			ReferenceType:     string(m.ReferenceType),
			ReferenceID:       m.ReferenceID,
			Notes:             m.Notes,
			ActorID:           m.ActorID,
			CreatedAt:         m.CreatedAt,
		}
	}
	return out
}

// RequirementResponse is the quantity of one item needed, in storage units
type RequirementResponse struct {
	ItemID   uuid.UUID       `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

func toRequirementResponses(reqs []inventory.Requirement) []RequirementResponse {
	out := make([]RequirementResponse, len(reqs))
	for i, r := range reqs {
		out[i] = RequirementResponse{ItemID: r.ItemID, Quantity: r.Quantity}
	}
	return out
}

// ReservationResponse is the stock commitment of one order item
type ReservationResponse struct {
	ID               uuid.UUID             `json:"id"`
	OrderID          uuid.UUID             `json:"order_id"`
	OrderItemID      uuid.UUID             `json:"order_item_id"`
	BranchID         *uuid.UUID            `json:"branch_id"`
	Status           string                `json:"status"`
	Components       []RequirementResponse `json:"components"`
	CancelledAt      *time.Time            `json:"cancelled_at,omitempty"`
	DecisionDeadline *time.Time            `json:"decision_deadline,omitempty"`
	Decision         string                `json:"decision,omitempty"`
	ResolvedAt       *time.Time            `json:"resolved_at,omitempty"`
}

func toReservationResponse(r *inventory.OrderReservation) ReservationResponse {
	components := make([]RequirementResponse, len(r.Components))
	for i, cmp := range r.Components {
		components[i] = RequirementResponse{ItemID: cmp.ItemID, Quantity: cmp.Quantity}
	}
	return ReservationResponse{
		ID:               r.ID,
		OrderID:          r.OrderID,
		OrderItemID:      r.OrderItemID,
		BranchID:         r.BranchID,
		Status:           string(r.Status),
		Components:       components,
		CancelledAt:      r.CancelledAt,
		DecisionDeadline: r.DecisionDeadline,
		Decision:         string(r.Decision),
		ResolvedAt:       r.ResolvedAt,
	}
}

func toReservationResponses(reservations []inventory.OrderReservation) []ReservationResponse {
	out := make([]ReservationResponse, len(reservations))
	for i := range reservations {
		out[i] = toReservationResponse(&reservations[i])
	}
	return out
}

// TransferLineResponse is one line of a transfer
type TransferLineResponse struct {
	ID                uuid.UUID        `json:"id"`
	ItemID            uuid.UUID        `json:"item_id"`
	RequestedQuantity decimal.Decimal  `json:"requested_quantity"`
	ReceivedQuantity  *decimal.Decimal `json:"received_quantity,omitempty"`
}

// TransferResponse represents a transfer in API responses
type TransferResponse struct {
	ID           uuid.UUID              `json:"id"`
	BusinessID   uuid.UUID              `json:"business_id"`
	FromBranchID uuid.UUID              `json:"from_branch_id"`
	ToBusinessID uuid.UUID              `json:"to_business_id"`
	ToBranchID   uuid.UUID              `json:"to_branch_id"`
	Status       string                 `json:"status"`
	Notes        string                 `json:"notes,omitempty"`
	Lines        []TransferLineResponse `json:"lines"`
	DispatchedAt *time.Time             `json:"dispatched_at,omitempty"`
	ReceivedAt   *time.Time             `json:"received_at,omitempty"`
	ReceivedBy   *uuid.UUID             `json:"received_by,omitempty"`
	CancelledAt  *time.Time             `json:"cancelled_at,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

func toTransferResponse(t *inventory.Transfer) TransferResponse {
	lines := make([]TransferLineResponse, len(t.Lines))
	for i, l := range t.Lines {
		lines[i] = TransferLineResponse{
			ID:                l.ID,
			ItemID:            l.ItemID,
			RequestedQuantity: l.RequestedQuantity,
			ReceivedQuantity:  l.ReceivedQuantity,
		}
	}
	return TransferResponse{
		ID:           t.ID,
		BusinessID:   t.BusinessID,
		FromBranchID: t.FromBranchID,
		ToBusinessID: t.ToBusinessID,
		ToBranchID:   t.ToBranchID,
		Status:       string(t.Status),
		Notes:        t.Notes,
		Lines:        lines,
		DispatchedAt: t.DispatchedAt,
		ReceivedAt:   t.ReceivedAt,
		ReceivedBy:   t.ReceivedBy,
		CancelledAt:  t.CancelledAt,
		CreatedAt:    t.CreatedAt,
	}
}

// CountLineResponse is the expected and counted quantity of one item
type CountLineResponse struct {
	ID               uuid.UUID        `json:"id"`
	ItemID           uuid.UUID        `json:"item_id"`
	ItemName         string           `json:"item_name"`
	ExpectedQuantity decimal.Decimal  `json:"expected_quantity"`
	CountedQuantity  *decimal.Decimal `json:"counted_quantity,omitempty"`
	Variance         *decimal.Decimal `json:"variance,omitempty"`
}

func toCountLineResponse(l *inventory.CountLine) CountLineResponse {
	return CountLineResponse{
		ID:               l.ID,
		ItemID:           l.ItemID,
		ItemName:         l.ItemName,
		ExpectedQuantity: l.ExpectedQuantity,
		CountedQuantity:  l.CountedQuantity,
		Variance:         l.Variance,
	}
}

// CountResponse represents an inventory count in API responses
type CountResponse struct {
	ID          uuid.UUID           `json:"id"`
	BranchID    *uuid.UUID          `json:"branch_id"`
	Status      string              `json:"status"`
	Notes       string              `json:"notes,omitempty"`
	Lines       []CountLineResponse `json:"lines"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
	CompletedBy *uuid.UUID          `json:"completed_by,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

func toCountResponse(c *inventory.InventoryCount) CountResponse {
	lines := make([]CountLineResponse, len(c.Lines))
	for i := range c.Lines {
		lines[i] = toCountLineResponse(&c.Lines[i])
	}
	return CountResponse{
		ID:          c.ID,
		BranchID:    c.BranchID,
		Status:      string(c.Status),
		Notes:       c.Notes,
		Lines:       lines,
		CompletedAt: c.CompletedAt,
		CompletedBy: c.CompletedBy,
		CreatedAt:   c.CreatedAt,
	}
}
