package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// TransferModel is the persistence model for the Transfer aggregate root
type TransferModel struct {
	BusinessAggregateModel
	FromBranchID uuid.UUID           `gorm:"type:uuid;not null"`
	ToBusinessID uuid.UUID           `gorm:"type:uuid;not null;index"`
	ToBranchID   uuid.UUID           `gorm:"type:uuid;not null"`
	Status       string              `gorm:"type:varchar(20);not null;index"`
	Notes        string              `gorm:"type:text"`
	DispatchedAt *time.Time          `gorm:""`
	ReceivedAt   *time.Time          `gorm:""`
	ReceivedBy   *uuid.UUID          `gorm:"type:uuid"`
	CancelledAt  *time.Time          `gorm:""`
	Lines        []TransferLineModel `gorm:"foreignKey:TransferID;references:ID"`
}

// TableName returns the table name for GORM
func (TransferModel) TableName() string {
	return "transfers"
}

// ToDomain converts the persistence model to a domain Transfer
func (m *TransferModel) ToDomain() *inventory.Transfer {
	t := &inventory.Transfer{
		BusinessAggregateRoot: m.ToDomainBusinessAggregateRoot(),
		FromBranchID:          m.FromBranchID,
		ToBusinessID:          m.ToBusinessID,
		ToBranchID:            m.ToBranchID,
		Status:                inventory.TransferStatus(m.Status),
		Notes:                 m.Notes,
		DispatchedAt:          m.DispatchedAt,
		ReceivedAt:            m.ReceivedAt,
		ReceivedBy:            m.ReceivedBy,
		CancelledAt:           m.CancelledAt,
		Lines:                 make([]inventory.TransferLine, len(m.Lines)),
	}
	for i, l := range m.Lines {
		t.Lines[i] = inventory.TransferLine{
			ID:                l.ID,
			TransferID:        l.TransferID,
			ItemID:            l.ItemID,
			RequestedQuantity: l.RequestedQuantity,
			ReceivedQuantity:  l.ReceivedQuantity,
		}
	}
	return t
}

// TransferModelFromDomain creates a persistence model from a domain Transfer
func TransferModelFromDomain(t *inventory.Transfer) *TransferModel {
	m := &TransferModel{
		FromBranchID: t.FromBranchID,
		ToBusinessID: t.ToBusinessID,
		ToBranchID:   t.ToBranchID,
		Status:       string(t.Status),
		Notes:        t.Notes,
		DispatchedAt: t.DispatchedAt,
		ReceivedAt:   t.ReceivedAt,
		ReceivedBy:   t.ReceivedBy,
		CancelledAt:  t.CancelledAt,
		Lines:        make([]TransferLineModel, len(t.Lines)),
	}
	m.FromDomainBusinessAggregateRoot(t.BusinessAggregateRoot)
	for i, l := range t.Lines {
		m.Lines[i] = TransferLineModel{
			ID:                l.ID,
			TransferID:        t.ID,
			ItemID:            l.ItemID,
			RequestedQuantity: l.RequestedQuantity,
			ReceivedQuantity:  l.ReceivedQuantity,
		}
	}
	return m
}

// TransferLineModel is one item line of a transfer
type TransferLineModel struct {
	ID                uuid.UUID        `gorm:"type:uuid;primary_key"`
	TransferID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	ItemID            uuid.UUID        `gorm:"type:uuid;not null"`
	RequestedQuantity decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	ReceivedQuantity  *decimal.Decimal `gorm:"type:decimal(18,4)"`
}

// TableName returns the table name for GORM
func (TransferLineModel) TableName() string {
	return "transfer_lines"
}
