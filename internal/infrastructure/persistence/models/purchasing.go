package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/purchasing"
	"github.com/shopspring/decimal"
)

// PurchaseOrderModel is the persistence model for the PurchaseOrder aggregate root.
type PurchaseOrderModel struct {
	BusinessAggregateModel
	BranchID        *uuid.UUID               `gorm:"type:uuid;index"`
	VendorName      string                   `gorm:"type:varchar(200);not null"`
	OrderNumber     string                   `gorm:"type:varchar(50);not null"`
	Status          string                   `gorm:"type:varchar(20);not null;default:'pending'"`
	Notes           string                   `gorm:"type:text"`
	InvoiceImageRef string                   `gorm:"type:varchar(500)"`
	Subtotal        decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	TaxRate         decimal.Decimal          `gorm:"type:decimal(9,6);not null;default:0"`
	TaxAmount       decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	Total           decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	CountedAt       *time.Time               `gorm:""`
	CountedBy       *uuid.UUID               `gorm:"type:uuid"`
	ReceivedAt      *time.Time               `gorm:"index"`
	ReceivedBy      *uuid.UUID               `gorm:"type:uuid"`
	CancelledAt     *time.Time               `gorm:""`
	CancelReason    string                   `gorm:"type:varchar(500)"`
	Lines           []PurchaseOrderLineModel `gorm:"foreignKey:PurchaseOrderID;references:ID"`
}

// TableName returns the table name for GORM
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// ToDomain converts the persistence model to a domain PurchaseOrder entity.
func (m *PurchaseOrderModel) ToDomain() *purchasing.PurchaseOrder {
	po := &purchasing.PurchaseOrder{
		BusinessAggregateRoot: m.ToDomainBusinessAggregateRoot(),
		BranchID:              m.BranchID,
		VendorName:            m.VendorName,
		OrderNumber:           m.OrderNumber,
		Status:                purchasing.Status(m.Status),
		Notes:                 m.Notes,
		InvoiceImageRef:       m.InvoiceImageRef,
		Subtotal:              m.Subtotal,
		TaxRate:               m.TaxRate,
		TaxAmount:             m.TaxAmount,
		Total:                 m.Total,
		CountedAt:             m.CountedAt,
		CountedBy:             m.CountedBy,
		ReceivedAt:            m.ReceivedAt,
		ReceivedBy:            m.ReceivedBy,
		CancelledAt:           m.CancelledAt,
		CancelReason:          m.CancelReason,
		Lines:                 make([]purchasing.Line, len(m.Lines)),
	}
	for i := range m.Lines {
		po.Lines[i] = m.Lines[i].ToDomain()
	}
	return po
}

// FromDomain populates the persistence model from a domain PurchaseOrder entity.
func (m *PurchaseOrderModel) FromDomain(po *purchasing.PurchaseOrder) {
	m.FromDomainBusinessAggregateRoot(po.BusinessAggregateRoot)
	m.BranchID = po.BranchID
	m.VendorName = po.VendorName
	m.OrderNumber = po.OrderNumber
	m.Status = po.Status.String()
	m.Notes = po.Notes
	m.InvoiceImageRef = po.InvoiceImageRef
	m.Subtotal = po.Subtotal
	m.TaxRate = po.TaxRate
	m.TaxAmount = po.TaxAmount
	m.Total = po.Total
	m.CountedAt = po.CountedAt
	m.CountedBy = po.CountedBy
	m.ReceivedAt = po.ReceivedAt
	m.ReceivedBy = po.ReceivedBy
	m.CancelledAt = po.CancelledAt
	m.CancelReason = po.CancelReason
	m.Lines = make([]PurchaseOrderLineModel, len(po.Lines))
	for i, l := range po.Lines {
		m.Lines[i] = PurchaseOrderLineModelFromDomain(po.ID, l)
	}
}

// PurchaseOrderModelFromDomain creates a new persistence model from a domain PurchaseOrder entity.
func PurchaseOrderModelFromDomain(po *purchasing.PurchaseOrder) *PurchaseOrderModel {
	m := &PurchaseOrderModel{}
	m.FromDomain(po)
	return m
}

// PurchaseOrderLineModel is the persistence model for one ordered line.
type PurchaseOrderLineModel struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key"`
	PurchaseOrderID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	ItemID           uuid.UUID        `gorm:"type:uuid;not null"`
	ItemName         string           `gorm:"type:varchar(200);not null"`
	OrderedQuantity  decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	CountedQuantity  *decimal.Decimal `gorm:"type:decimal(18,4)"`
	ReceivedQuantity *decimal.Decimal `gorm:"type:decimal(18,4)"`
	VarianceReason   *string          `gorm:"type:varchar(20)"`
	VarianceNote     string           `gorm:"type:varchar(500)"`
	BarcodeScans     int              `gorm:"not null;default:0"`
	TotalCost        *decimal.Decimal `gorm:"type:decimal(18,4)"`
	UnitCost         *decimal.Decimal `gorm:"type:decimal(18,6)"`
}

// TableName returns the table name for GORM
func (PurchaseOrderLineModel) TableName() string {
	return "purchase_order_lines"
}

// ToDomain converts the persistence model to a domain Line.
func (m *PurchaseOrderLineModel) ToDomain() purchasing.Line {
	l := purchasing.Line{
		ID:               m.ID,
		PurchaseOrderID:  m.PurchaseOrderID,
		ItemID:           m.ItemID,
		ItemName:         m.ItemName,
		OrderedQuantity:  m.OrderedQuantity,
		CountedQuantity:  m.CountedQuantity,
		ReceivedQuantity: m.ReceivedQuantity,
		VarianceNote:     m.VarianceNote,
		BarcodeScans:     m.BarcodeScans,
		TotalCost:        m.TotalCost,
		UnitCost:         m.UnitCost,
	}
	if m.VarianceReason != nil {
		reason := purchasing.VarianceReason(*m.VarianceReason)
		l.VarianceReason = &reason
	}
	return l
}

// PurchaseOrderLineModelFromDomain creates a persistence model for a line of order poID
func PurchaseOrderLineModelFromDomain(poID uuid.UUID, l purchasing.Line) PurchaseOrderLineModel {
	m := PurchaseOrderLineModel{
		ID:               l.ID,
		PurchaseOrderID:  poID,
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
		reason := string(*l.VarianceReason)
		m.VarianceReason = &reason
	}
	return m
}

// PurchaseOrderActivityModel is one audit row of a purchase order's history
type PurchaseOrderActivityModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key"`
	BusinessID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	PurchaseOrderID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Action          string     `gorm:"type:varchar(30);not null"`
	OldStatus       *string    `gorm:"type:varchar(20)"`
	NewStatus       string     `gorm:"type:varchar(20);not null"`
	ChangesJSON     string     `gorm:"column:changes;type:jsonb;not null;default:'{}'"`
	ActorID         *uuid.UUID `gorm:"type:uuid"`
	CreatedAt       time.Time  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderActivityModel) TableName() string {
	return "purchase_order_activities"
}

// ToDomain converts the persistence model to a domain Activity
func (m *PurchaseOrderActivityModel) ToDomain() (*purchasing.Activity, error) {
	a := &purchasing.Activity{
		ID:              m.ID,
		BusinessID:      m.BusinessID,
		PurchaseOrderID: m.PurchaseOrderID,
		Action:          m.Action,
		NewStatus:       purchasing.Status(m.NewStatus),
		Changes:         map[string]any{},
		ActorID:         m.ActorID,
		CreatedAt:       m.CreatedAt,
	}
	if m.OldStatus != nil {
		old := purchasing.Status(*m.OldStatus)
		a.OldStatus = &old
	}
	if m.ChangesJSON != "" {
		if err := json.Unmarshal([]byte(m.ChangesJSON), &a.Changes); err != nil {
			return nil, fmt.Errorf("decode changes of activity %s: %w", m.ID, err)
		}
	}
	return a, nil
}

// PurchaseOrderActivityModelFromDomain creates a persistence model from a domain Activity
func PurchaseOrderActivityModelFromDomain(a *purchasing.Activity) (*PurchaseOrderActivityModel, error) {
	changes := a.Changes
	if changes == nil {
		changes = map[string]any{}
	}
	raw, err := json.Marshal(changes)
	if err != nil {
		return nil, fmt.Errorf("encode changes of activity %s: %w", a.ID, err)
	}
	m := &PurchaseOrderActivityModel{
		ID:              a.ID,
		BusinessID:      a.BusinessID,
		PurchaseOrderID: a.PurchaseOrderID,
		Action:          a.Action,
		NewStatus:       a.NewStatus.String(),
		ChangesJSON:     string(raw),
		ActorID:         a.ActorID,
		CreatedAt:       a.CreatedAt,
	}
	if a.OldStatus != nil {
		old := a.OldStatus.String()
		m.OldStatus = &old
	}
	return m, nil
}

// BusinessSettingModel holds per-business settings the engine reads.
// A NULL purchase tax rate means the business has not configured one.
type BusinessSettingModel struct {
	BusinessID      uuid.UUID        `gorm:"type:uuid;primary_key"`
	PurchaseTaxRate *decimal.Decimal `gorm:"type:decimal(9,6)"`
	UpdatedAt       time.Time        `gorm:"not null"`
}

// TableName returns the table name for GORM
func (BusinessSettingModel) TableName() string {
	return "business_settings"
}
