package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// OrderReservationModel is the persistence model for the OrderReservation
// aggregate root. Components are stored inline as JSON; they are written
// once when the order item is reserved and never change.
type OrderReservationModel struct {
	BusinessAggregateModel
	BranchID         *uuid.UUID `gorm:"type:uuid"`
	OrderID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderItemID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_reservation_order_item"`
	Status           string     `gorm:"type:varchar(20);not null;index:idx_reservation_pending,priority:1"`
	ComponentsJSON   string     `gorm:"column:components;type:jsonb;not null;default:'[]'"`
	CancelledAt      *time.Time `gorm:""`
	DecisionDeadline *time.Time `gorm:"index:idx_reservation_pending,priority:2"`
	Decision         string     `gorm:"type:varchar(20)"`
	ResolvedAt       *time.Time `gorm:""`
}

// TableName returns the table name for GORM
func (OrderReservationModel) TableName() string {
	return "order_reservations"
}

type reservationComponentJSON struct {
	ItemID   uuid.UUID       `json:"item_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ToDomain converts the persistence model to a domain OrderReservation
func (m *OrderReservationModel) ToDomain() (*inventory.OrderReservation, error) {
	var comps []reservationComponentJSON
	if m.ComponentsJSON != "" {
		if err := json.Unmarshal([]byte(m.ComponentsJSON), &comps); err != nil {
			return nil, fmt.Errorf("decode components of reservation %s: %w", m.ID, err)
		}
	}
	r := &inventory.OrderReservation{
		BusinessAggregateRoot: m.ToDomainBusinessAggregateRoot(),
		BranchID:              m.BranchID,
		OrderID:               m.OrderID,
		OrderItemID:           m.OrderItemID,
		Status:                inventory.ReservationStatus(m.Status),
		Components:            make([]inventory.ReservationComponent, len(comps)),
		CancelledAt:           m.CancelledAt,
		DecisionDeadline:      m.DecisionDeadline,
		Decision:              inventory.WasteDecision(m.Decision),
		ResolvedAt:            m.ResolvedAt,
	}
	for i, c := range comps {
		r.Components[i] = inventory.ReservationComponent{ItemID: c.ItemID, Quantity: c.Quantity}
	}
	return r, nil
}

// OrderReservationModelFromDomain creates a persistence model from a domain OrderReservation
func OrderReservationModelFromDomain(r *inventory.OrderReservation) (*OrderReservationModel, error) {
	comps := make([]reservationComponentJSON, len(r.Components))
	for i, c := range r.Components {
		comps[i] = reservationComponentJSON{ItemID: c.ItemID, Quantity: c.Quantity}
	}
	raw, err := json.Marshal(comps)
	if err != nil {
		return nil, fmt.Errorf("encode components of reservation %s: %w", r.ID, err)
	}
	m := &OrderReservationModel{
		BranchID:         r.BranchID,
		OrderID:          r.OrderID,
		OrderItemID:      r.OrderItemID,
		Status:           string(r.Status),
		ComponentsJSON:   string(raw),
		CancelledAt:      r.CancelledAt,
		DecisionDeadline: r.DecisionDeadline,
		Decision:         string(r.Decision),
		ResolvedAt:       r.ResolvedAt,
	}
	m.FromDomainBusinessAggregateRoot(r.BusinessAggregateRoot)
	return m, nil
}
