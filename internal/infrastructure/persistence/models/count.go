package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// InventoryCountModel is the persistence model for the InventoryCount aggregate root
type InventoryCountModel struct {
	BusinessAggregateModel
	BranchID    *uuid.UUID       `gorm:"type:uuid"`
	Status      string           `gorm:"type:varchar(20);not null;index"`
	Notes       string           `gorm:"type:text"`
	CompletedAt *time.Time       `gorm:""`
	CompletedBy *uuid.UUID       `gorm:"type:uuid"`
	Lines       []CountLineModel `gorm:"foreignKey:CountID;references:ID"`
}

// TableName returns the table name for GORM
func (InventoryCountModel) TableName() string {
	return "inventory_counts"
}

// ToDomain converts the persistence model to a domain InventoryCount
func (m *InventoryCountModel) ToDomain() *inventory.InventoryCount {
	c := &inventory.InventoryCount{
		BusinessAggregateRoot: m.ToDomainBusinessAggregateRoot(),
		BranchID:              m.BranchID,
		Status:                inventory.CountStatus(m.Status),
		Notes:                 m.Notes,
		CompletedAt:           m.CompletedAt,
		CompletedBy:           m.CompletedBy,
		Lines:                 make([]inventory.CountLine, len(m.Lines)),
	}
	for i, l := range m.Lines {
		c.Lines[i] = inventory.CountLine{
			ID:               l.ID,
			CountID:          l.CountID,
			ItemID:           l.ItemID,
			ItemName:         l.ItemName,
			ExpectedQuantity: l.ExpectedQuantity,
			CountedQuantity:  l.CountedQuantity,
			Variance:         l.Variance,
		}
	}
	return c
}

// InventoryCountModelFromDomain creates a persistence model from a domain InventoryCount
func InventoryCountModelFromDomain(c *inventory.InventoryCount) *InventoryCountModel {
	m := &InventoryCountModel{
		BranchID:    c.BranchID,
		Status:      string(c.Status),
		Notes:       c.Notes,
		CompletedAt: c.CompletedAt,
		CompletedBy: c.CompletedBy,
		Lines:       make([]CountLineModel, len(c.Lines)),
	}
	m.FromDomainBusinessAggregateRoot(c.BusinessAggregateRoot)
	for i, l := range c.Lines {
		m.Lines[i] = CountLineModel{
			ID:               l.ID,
			CountID:          c.ID,
			ItemID:           l.ItemID,
			ItemName:         l.ItemName,
			ExpectedQuantity: l.ExpectedQuantity,
			CountedQuantity:  l.CountedQuantity,
			Variance:         l.Variance,
		}
	}
	return m
}

// CountLineModel is the expected and counted quantity of one item
type CountLineModel struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key"`
	CountID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	ItemID           uuid.UUID        `gorm:"type:uuid;not null"`
	ItemName         string           `gorm:"type:varchar(200)"`
	ExpectedQuantity decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	CountedQuantity  *decimal.Decimal `gorm:"type:decimal(18,4)"`
	Variance         *decimal.Decimal `gorm:"type:decimal(18,4)"`
}

// TableName returns the table name for GORM
func (CountLineModel) TableName() string {
	return "inventory_count_lines"
}
