package purchasing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Status represents the status of a purchase order
type Status string

const (
	StatusPending   Status = "pending"
	StatusCounted   Status = "counted"
	StatusReceived  Status = "received"
	StatusCancelled Status = "cancelled"
)

// IsValid checks if the status is a valid Status
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCounted, StatusReceived, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s Status) CanTransitionTo(target Status) bool {
	switch s {
	case StatusPending:
		return target == StatusCounted || target == StatusReceived || target == StatusCancelled
	case StatusCounted:
		return target == StatusReceived || target == StatusCancelled
	case StatusReceived, StatusCancelled:
		return false // Terminal states
	}
	return false
}

// VarianceReason explains why fewer units arrived than were ordered
type VarianceReason string

const (
	VarianceMissing  VarianceReason = "missing"
	VarianceCanceled VarianceReason = "canceled"
	VarianceRejected VarianceReason = "rejected"
)

// IsValid checks if the reason is one of the accepted shortfall reasons
func (r VarianceReason) IsValid() bool {
	return r == VarianceMissing || r == VarianceCanceled || r == VarianceRejected
}

// Line is one item ordered from the vendor. Quantities are in the item's
// storage unit.
type Line struct {
	ID               uuid.UUID
	PurchaseOrderID  uuid.UUID
	ItemID           uuid.UUID
	ItemName         string
	OrderedQuantity  decimal.Decimal
	CountedQuantity  *decimal.Decimal
	ReceivedQuantity *decimal.Decimal
	VarianceReason   *VarianceReason
	VarianceNote     string
	BarcodeScans     int
	TotalCost        *decimal.Decimal
	UnitCost         *decimal.Decimal
}

// PurchaseOrder is a vendor order that is counted at the door and then
// received into stock against an invoice
type PurchaseOrder struct {
	shared.BusinessAggregateRoot
	BranchID        *uuid.UUID
	VendorName      string
	OrderNumber     string
	Status          Status
	Notes           string
	Lines           []Line
	InvoiceImageRef string
	Subtotal        decimal.Decimal
	TaxRate         decimal.Decimal
	TaxAmount       decimal.Decimal
	Total           decimal.Decimal
	CountedAt       *time.Time
	CountedBy       *uuid.UUID
	ReceivedAt      *time.Time
	ReceivedBy      *uuid.UUID
	CancelledAt     *time.Time
	CancelReason    string
}

// LineInput describes one ordered line
type LineInput struct {
	ItemID   uuid.UUID
	ItemName string
	Quantity decimal.Decimal
}

// NewPurchaseOrder creates a pending purchase order
func NewPurchaseOrder(businessID uuid.UUID, branchID *uuid.UUID, vendorName, orderNumber string, lines []LineInput) (*PurchaseOrder, error) {
	if businessID == uuid.Nil {
		return nil, shared.NewValidationError("business is required")
	}
	vendorName = strings.TrimSpace(vendorName)
	if vendorName == "" {
		return nil, shared.NewValidationError("vendor name is required")
	}
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, shared.NewValidationError("order number is required")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewValidationError("order number cannot exceed 50 characters")
	}
	if len(lines) == 0 {
		return nil, shared.NewValidationError("purchase order needs at least one line")
	}

	po := &PurchaseOrder{
		BusinessAggregateRoot: shared.NewBusinessAggregateRoot(businessID),
		BranchID:              branchID,
		VendorName:            vendorName,
		OrderNumber:           orderNumber,
		Status:                StatusPending,
		Lines:                 make([]Line, 0, len(lines)),
		Subtotal:              decimal.Zero,
		TaxRate:               decimal.Zero,
		TaxAmount:             decimal.Zero,
		Total:                 decimal.Zero,
	}
	for i, in := range lines {
		if in.ItemID == uuid.Nil {
			return nil, shared.NewValidationError("line %d: item is required", i+1)
		}
		if !in.Quantity.IsPositive() {
			return nil, shared.NewValidationError("line %d: ordered quantity must be positive", i+1)
		}
		po.Lines = append(po.Lines, Line{
			ID:              uuid.New(),
			PurchaseOrderID: po.ID,
			ItemID:          in.ItemID,
			ItemName:        in.ItemName,
			OrderedQuantity: in.Quantity,
		})
	}
	return po, nil
}

// Line finds a line by id
func (o *PurchaseOrder) Line(id uuid.UUID) (*Line, bool) {
	for i := range o.Lines {
		if o.Lines[i].ID == id {
			return &o.Lines[i], true
		}
	}
	return nil, false
}

func (o *PurchaseOrder) transition(target Status) error {
	if !o.Status.CanTransitionTo(target) {
		return shared.NewStateError("purchase order %s is %s and cannot become %s", o.OrderNumber, o.Status, target)
	}
	o.Status = target
	o.MarkModified()
	return nil
}

// LineCount is the door count of one line
type LineCount struct {
	LineID          uuid.UUID
	CountedQuantity decimal.Decimal
	VarianceReason  VarianceReason
	VarianceNote    string
	BarcodeScans    int
}

// Count records the door count of every line and moves the order to counted.
// A shortfall needs a reason, an excess needs a note, and every line must
// have been scanned at least once.
func (o *PurchaseOrder) Count(entries []LineCount, actor *uuid.UUID) error {
	if !o.Status.CanTransitionTo(StatusCounted) {
		return shared.NewStateError("purchase order %s is %s and cannot be counted", o.OrderNumber, o.Status)
	}

	byLine := make(map[uuid.UUID]LineCount, len(entries))
	for _, e := range entries {
		if _, ok := o.Line(e.LineID); !ok {
			return shared.NewNotFoundError("purchase order line", e.LineID)
		}
		byLine[e.LineID] = e
	}

	var problems []string
	for _, l := range o.Lines {
		e, ok := byLine[l.ID]
		if !ok {
			problems = append(problems, fmt.Sprintf("%s: count missing", l.label()))
			continue
		}
		problems = append(problems, l.countProblems(e)...)
	}
	if len(problems) > 0 {
		return shared.NewValidationError("invalid count: %s", strings.Join(problems, "; "))
	}

	for i := range o.Lines {
		e := byLine[o.Lines[i].ID]
		counted := e.CountedQuantity
		o.Lines[i].CountedQuantity = &counted
		o.Lines[i].BarcodeScans = e.BarcodeScans
		o.Lines[i].VarianceNote = strings.TrimSpace(e.VarianceNote)
		o.Lines[i].VarianceReason = nil
		if counted.LessThan(o.Lines[i].OrderedQuantity) {
			reason := e.VarianceReason
			o.Lines[i].VarianceReason = &reason
		}
	}

	if err := o.transition(StatusCounted); err != nil {
		return err
	}
	now := time.Now()
	o.CountedAt = &now
	o.CountedBy = actor
	return nil
}

func (l *Line) label() string {
	if l.ItemName != "" {
		return l.ItemName
	}
	return l.ID.String()
}

func (l *Line) countProblems(e LineCount) []string {
	var problems []string
	switch {
	case e.CountedQuantity.IsNegative():
		problems = append(problems, fmt.Sprintf("%s: counted quantity cannot be negative", l.label()))
	case e.CountedQuantity.LessThan(l.OrderedQuantity):
		if !e.VarianceReason.IsValid() {
			problems = append(problems, fmt.Sprintf("%s: shortfall needs a variance reason (missing, canceled, rejected)", l.label()))
		}
	case e.CountedQuantity.GreaterThan(l.OrderedQuantity):
		if strings.TrimSpace(e.VarianceNote) == "" {
			problems = append(problems, fmt.Sprintf("%s: excess needs a variance note", l.label()))
		}
	}
	if e.BarcodeScans < 1 {
		problems = append(problems, fmt.Sprintf("%s: scan the barcode at least once", l.label()))
	}
	return problems
}

// LineReceipt is the invoice data for one line
type LineReceipt struct {
	LineID           uuid.UUID
	TotalCost        *decimal.Decimal
	ReceivedQuantity *decimal.Decimal
}

// ReceivedLine is what a line contributes to stock and cost on receive
type ReceivedLine struct {
	LineID    uuid.UUID
	ItemID    uuid.UUID
	Quantity  decimal.Decimal // storage units
	TotalCost decimal.Decimal
	UnitCost  decimal.Decimal // per storage unit
}

// Receive prices every line against the invoice, computes totals and moves
// the order to received. It returns what each line brings into stock; the
// caller applies the stock and cost effects.
func (o *PurchaseOrder) Receive(invoiceImageRef string, receipts []LineReceipt, taxRate decimal.Decimal, actor *uuid.UUID) ([]ReceivedLine, error) {
	if !o.Status.CanTransitionTo(StatusReceived) {
		return nil, shared.NewStateError("purchase order %s is %s and cannot be received", o.OrderNumber, o.Status)
	}
	invoiceImageRef = strings.TrimSpace(invoiceImageRef)
	if invoiceImageRef == "" {
		return nil, shared.NewValidationError("invoice image is required")
	}
	if taxRate.IsNegative() {
		return nil, shared.NewValidationError("tax rate cannot be negative")
	}

	byLine := make(map[uuid.UUID]LineReceipt, len(receipts))
	for _, r := range receipts {
		if _, ok := o.Line(r.LineID); !ok {
			return nil, shared.NewNotFoundError("purchase order line", r.LineID)
		}
		byLine[r.LineID] = r
	}

	out := make([]ReceivedLine, 0, len(o.Lines))
	var problems []string
	for _, l := range o.Lines {
		r, ok := byLine[l.ID]
		if !ok || r.TotalCost == nil {
			problems = append(problems, fmt.Sprintf("%s: total cost missing", l.label()))
			continue
		}
		if r.TotalCost.IsNegative() {
			problems = append(problems, fmt.Sprintf("%s: total cost cannot be negative", l.label()))
			continue
		}
		qty, ok := o.receiveQuantity(l, r)
		if !ok {
			problems = append(problems, fmt.Sprintf("%s: received quantity missing", l.label()))
			continue
		}
		if qty.IsNegative() {
			problems = append(problems, fmt.Sprintf("%s: received quantity cannot be negative", l.label()))
			continue
		}
		unitCost := decimal.Zero
		if qty.IsPositive() {
			unitCost = r.TotalCost.Div(qty)
		}
		out = append(out, ReceivedLine{
			LineID:    l.ID,
			ItemID:    l.ItemID,
			Quantity:  qty,
			TotalCost: *r.TotalCost,
			UnitCost:  unitCost,
		})
	}
	if len(problems) > 0 {
		return nil, shared.NewValidationError("invalid receipt: %s", strings.Join(problems, "; "))
	}

	subtotal := decimal.Zero
	for _, rl := range out {
		line, _ := o.Line(rl.LineID)
		qty, total, unit := rl.Quantity, rl.TotalCost, rl.UnitCost
		line.ReceivedQuantity = &qty
		line.TotalCost = &total
		line.UnitCost = &unit
		subtotal = subtotal.Add(total)
	}

	if err := o.transition(StatusReceived); err != nil {
		return nil, err
	}
	now := time.Now()
	o.InvoiceImageRef = invoiceImageRef
	o.Subtotal = subtotal
	o.TaxRate = taxRate
	o.TaxAmount = subtotal.Mul(taxRate).Round(2)
	o.Total = o.Subtotal.Add(o.TaxAmount)
	o.ReceivedAt = &now
	o.ReceivedBy = actor
	return out, nil
}

// receiveQuantity prefers the door count on a counted order and falls back
// to the quantity supplied with the invoice
func (o *PurchaseOrder) receiveQuantity(l Line, r LineReceipt) (decimal.Decimal, bool) {
	if o.Status == StatusCounted && l.CountedQuantity != nil {
		return *l.CountedQuantity, true
	}
	if r.ReceivedQuantity != nil {
		return *r.ReceivedQuantity, true
	}
	return decimal.Zero, false
}

// Cancel abandons the order
func (o *PurchaseOrder) Cancel(reason string) error {
	if err := o.transition(StatusCancelled); err != nil {
		return err
	}
	now := time.Now()
	o.CancelledAt = &now
	o.CancelReason = strings.TrimSpace(reason)
	return nil
}
