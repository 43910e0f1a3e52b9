package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TransferStatus represents the state of an inter-branch transfer
type TransferStatus string

const (
	TransferPending   TransferStatus = "pending"
	TransferInTransit TransferStatus = "in_transit"
	TransferReceived  TransferStatus = "received"
	TransferCancelled TransferStatus = "cancelled"
)

// IsValid returns true if the status is known
func (s TransferStatus) IsValid() bool {
	switch s {
	case TransferPending, TransferInTransit, TransferReceived, TransferCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks the transfer transition table
func (s TransferStatus) CanTransitionTo(target TransferStatus) bool {
	switch s {
	case TransferPending:
		return target == TransferInTransit || target == TransferReceived || target == TransferCancelled
	case TransferInTransit:
		return target == TransferReceived || target == TransferCancelled
	case TransferReceived, TransferCancelled:
		return false
	}
	return false
}

// TransferLine is one item moving between branches
type TransferLine struct {
	ID                uuid.UUID
	TransferID        uuid.UUID
	ItemID            uuid.UUID
	RequestedQuantity decimal.Decimal
	ReceivedQuantity  *decimal.Decimal
}

// Transfer moves stock from one branch to another, possibly across
// businesses under common ownership. Stock moves only on receive.
type Transfer struct {
	shared.BusinessAggregateRoot
	FromBranchID uuid.UUID
	ToBusinessID uuid.UUID
	ToBranchID   uuid.UUID
	Status       TransferStatus
	Notes        string
	Lines        []TransferLine
	DispatchedAt *time.Time
	ReceivedAt   *time.Time
	ReceivedBy   *uuid.UUID
	CancelledAt  *time.Time
}

// TransferLineInput describes one requested line
type TransferLineInput struct {
	ItemID   uuid.UUID
	Quantity decimal.Decimal
}

// NewTransfer creates a pending transfer
func NewTransfer(fromBusiness, fromBranch, toBusiness, toBranch uuid.UUID, lines []TransferLineInput, notes string) (*Transfer, error) {
	if fromBusiness == uuid.Nil || toBusiness == uuid.Nil {
		return nil, shared.NewValidationError("source and destination business are required")
	}
	if fromBranch == uuid.Nil || toBranch == uuid.Nil {
		return nil, shared.NewValidationError("source and destination branch are required")
	}
	if fromBranch == toBranch {
		return nil, shared.NewValidationError("source and destination branch must differ")
	}
	if len(lines) == 0 {
		return nil, shared.NewValidationError("transfer needs at least one line")
	}

	t := &Transfer{
		BusinessAggregateRoot: shared.NewBusinessAggregateRoot(fromBusiness),
		FromBranchID:          fromBranch,
		ToBusinessID:          toBusiness,
		ToBranchID:            toBranch,
		Status:                TransferPending,
		Notes:                 notes,
		Lines:                 make([]TransferLine, 0, len(lines)),
	}
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for i, in := range lines {
		if in.ItemID == uuid.Nil {
			return nil, shared.NewValidationError("line %d: item is required", i+1)
		}
		if !in.Quantity.IsPositive() {
			return nil, shared.NewValidationError("line %d: quantity must be positive", i+1)
		}
		if _, dup := seen[in.ItemID]; dup {
			return nil, shared.NewValidationError("line %d: item %s listed twice", i+1, in.ItemID)
		}
		seen[in.ItemID] = struct{}{}
		t.Lines = append(t.Lines, TransferLine{
			ID:                uuid.New(),
			TransferID:        t.ID,
			ItemID:            in.ItemID,
			RequestedQuantity: in.Quantity,
		})
	}
	return t, nil
}

// VisibleTo reports whether either side of the transfer is the business
func (t *Transfer) VisibleTo(businessID uuid.UUID) bool {
	return t.BusinessID == businessID || t.ToBusinessID == businessID
}

// SourceKey returns the stock row the line leaves from
func (t *Transfer) SourceKey(itemID uuid.UUID) StockKey {
	branch := t.FromBranchID
	return StockKey{BusinessID: t.BusinessID, BranchID: &branch, ItemID: itemID}
}

// DestinationKey returns the stock row the line arrives in
func (t *Transfer) DestinationKey(itemID uuid.UUID) StockKey {
	branch := t.ToBranchID
	return StockKey{BusinessID: t.ToBusinessID, BranchID: &branch, ItemID: itemID}
}

func (t *Transfer) transition(target TransferStatus) error {
	if !t.Status.CanTransitionTo(target) {
		return shared.NewStateError("transfer is %s and cannot become %s", t.Status, target)
	}
	t.Status = target
	t.MarkModified()
	return nil
}

// Dispatch marks the goods as on their way
func (t *Transfer) Dispatch() error {
	if err := t.transition(TransferInTransit); err != nil {
		return err
	}
	now := time.Now()
	t.DispatchedAt = &now
	return nil
}

// Receive records received quantities. Lines missing from received take
// their requested quantity.
func (t *Transfer) Receive(received map[uuid.UUID]decimal.Decimal, actor *uuid.UUID) error {
	for lineID, qty := range received {
		if qty.IsNegative() {
			return shared.NewValidationError("received quantity for line %s cannot be negative", lineID)
		}
		if t.line(lineID) == nil {
			return shared.NewNotFoundError("transfer line", lineID)
		}
	}
	if err := t.transition(TransferReceived); err != nil {
		return err
	}
	for i := range t.Lines {
		qty, ok := received[t.Lines[i].ID]
		if !ok {
			qty = t.Lines[i].RequestedQuantity
		}
		t.Lines[i].ReceivedQuantity = &qty
	}
	now := time.Now()
	t.ReceivedAt = &now
	t.ReceivedBy = actor
	return nil
}

// Cancel abandons the transfer and returns whether holds had been placed
func (t *Transfer) Cancel() (wasDispatched bool, err error) {
	wasDispatched = t.Status == TransferInTransit
	if err := t.transition(TransferCancelled); err != nil {
		return false, err
	}
	now := time.Now()
	t.CancelledAt = &now
	return wasDispatched, nil
}

func (t *Transfer) line(id uuid.UUID) *TransferLine {
	for i := range t.Lines {
		if t.Lines[i].ID == id {
			return &t.Lines[i]
		}
	}
	return nil
}
