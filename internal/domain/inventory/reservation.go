package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ReservationStatus tracks an order item's stock through its lifecycle
type ReservationStatus string

const (
	ReservationReserved        ReservationStatus = "reserved"
	ReservationConsumed        ReservationStatus = "consumed"
	ReservationReleased        ReservationStatus = "released"
	ReservationPendingDecision ReservationStatus = "pending_decision"
	ReservationWasted          ReservationStatus = "wasted"
)

// IsValid returns true if the status is known
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationReserved, ReservationConsumed, ReservationReleased,
		ReservationPendingDecision, ReservationWasted:
		return true
	}
	return false
}

// CanTransitionTo checks the reservation transition table
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	switch s {
	case ReservationReserved:
		return target == ReservationConsumed ||
			target == ReservationReleased ||
			target == ReservationPendingDecision
	case ReservationPendingDecision:
		return target == ReservationWasted || target == ReservationReleased
	case ReservationConsumed, ReservationReleased, ReservationWasted:
		return false
	}
	return false
}

// WasteDecision is the outcome for a cancelled item that was already prepared
type WasteDecision string

const (
	DecisionWaste     WasteDecision = "waste"
	DecisionReturn    WasteDecision = "return"
	DecisionAutoWaste WasteDecision = "auto_waste"
)

// IsValid returns true for decisions a user may submit
func (d WasteDecision) IsValid() bool {
	return d == DecisionWaste || d == DecisionReturn
}

// ReservationComponent is the stock one order item holds of one ingredient
type ReservationComponent struct {
	ItemID   uuid.UUID
	Quantity decimal.Decimal
}

// OrderReservation is the stock commitment of one order item
type OrderReservation struct {
	shared.BusinessAggregateRoot
	BranchID         *uuid.UUID
	OrderID          uuid.UUID
	OrderItemID      uuid.UUID
	Status           ReservationStatus
	Components       []ReservationComponent
	CancelledAt      *time.Time
	DecisionDeadline *time.Time
	Decision         WasteDecision
	ResolvedAt       *time.Time
}

// NewOrderReservation creates a reservation in the reserved state
func NewOrderReservation(businessID uuid.UUID, branchID *uuid.UUID, orderID, orderItemID uuid.UUID, reqs []Requirement) *OrderReservation {
	comps := make([]ReservationComponent, len(reqs))
	for i, r := range reqs {
		comps[i] = ReservationComponent{ItemID: r.ItemID, Quantity: r.Quantity}
	}
	return &OrderReservation{
		BusinessAggregateRoot: shared.NewBusinessAggregateRoot(businessID),
		BranchID:              branchID,
		OrderID:               orderID,
		OrderItemID:           orderItemID,
		Status:                ReservationReserved,
		Components:            comps,
	}
}

// StockKey returns the stock row a component lives in
func (r *OrderReservation) StockKey(itemID uuid.UUID) StockKey {
	return StockKey{BusinessID: r.BusinessID, BranchID: r.BranchID, ItemID: itemID}
}

func (r *OrderReservation) transition(target ReservationStatus) error {
	if !r.Status.CanTransitionTo(target) {
		return shared.NewStateError("order item %s is %s and cannot become %s", r.OrderItemID, r.Status, target)
	}
	r.Status = target
	r.MarkModified()
	return nil
}

// MarkConsumed records that the reserved stock left the shelf
func (r *OrderReservation) MarkConsumed() error {
	if err := r.transition(ReservationConsumed); err != nil {
		return err
	}
	now := time.Now()
	r.ResolvedAt = &now
	return nil
}

// MarkReleased records that the reserved stock went back to available
func (r *OrderReservation) MarkReleased(decision WasteDecision) error {
	if err := r.transition(ReservationReleased); err != nil {
		return err
	}
	now := time.Now()
	r.ResolvedAt = &now
	r.Decision = decision
	return nil
}

// MarkPendingDecision parks a cancelled, already-prepared item until
// someone decides between waste and return
func (r *OrderReservation) MarkPendingDecision(at time.Time, window time.Duration) error {
	if err := r.transition(ReservationPendingDecision); err != nil {
		return err
	}
	deadline := at.Add(window)
	r.CancelledAt = &at
	r.DecisionDeadline = &deadline
	return nil
}

// MarkWasted records that the reserved stock was spoiled
func (r *OrderReservation) MarkWasted(decision WasteDecision) error {
	if err := r.transition(ReservationWasted); err != nil {
		return err
	}
	now := time.Now()
	r.ResolvedAt = &now
	r.Decision = decision
	return nil
}

// IsDecisionExpired reports whether a pending decision is past its deadline
func (r *OrderReservation) IsDecisionExpired(now time.Time) bool {
	return r.Status == ReservationPendingDecision &&
		r.DecisionDeadline != nil &&
		!now.Before(*r.DecisionDeadline)
}
