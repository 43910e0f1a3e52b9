package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ItemModel is the persistence model for the Item aggregate root.
// A NULL business_id marks a shared item.
type ItemModel struct {
	AggregateModel
	BusinessID         *uuid.UUID      `gorm:"type:uuid;index"`
	Name               string          `gorm:"type:varchar(200);not null"`
	Category           string          `gorm:"type:varchar(100)"`
	Barcode            string          `gorm:"type:varchar(64);index"`
	ServingUnit        string          `gorm:"type:varchar(16);not null"`
	StorageUnit        string          `gorm:"type:varchar(16);not null"`
	Status             string          `gorm:"type:varchar(20);not null;default:'active'"`
	CostPerUnit        decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	TotalStockQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalStockValue    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	IsComposite        bool            `gorm:"not null;default:false"`
	BatchQuantity      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	BatchUnit          string          `gorm:"type:varchar(16)"`
}

// TableName returns the table name for GORM
func (ItemModel) TableName() string {
	return "items"
}

// ToDomain converts the persistence model to a domain Item
func (m *ItemModel) ToDomain() *inventory.Item {
	return &inventory.Item{
		BaseAggregateRoot:  m.ToDomainAggregateRoot(),
		BusinessID:         m.BusinessID,
		Name:               m.Name,
		Category:           m.Category,
		Barcode:            m.Barcode,
		ServingUnit:        valueobject.Unit(m.ServingUnit),
		StorageUnit:        valueobject.Unit(m.StorageUnit),
		Status:             inventory.ItemStatus(m.Status),
		CostPerUnit:        m.CostPerUnit,
		TotalStockQuantity: m.TotalStockQuantity,
		TotalStockValue:    m.TotalStockValue,
		IsComposite:        m.IsComposite,
		BatchQuantity:      m.BatchQuantity,
		BatchUnit:          valueobject.Unit(m.BatchUnit),
	}
}

// FromDomain populates the persistence model from a domain Item
func (m *ItemModel) FromDomain(i *inventory.Item) {
	m.FromDomainAggregateRoot(i.BaseAggregateRoot)
	m.BusinessID = i.BusinessID
	m.Name = i.Name
	m.Category = i.Category
	m.Barcode = i.Barcode
	m.ServingUnit = i.ServingUnit.String()
	m.StorageUnit = i.StorageUnit.String()
	m.Status = string(i.Status)
	m.CostPerUnit = i.CostPerUnit
	m.TotalStockQuantity = i.TotalStockQuantity
	m.TotalStockValue = i.TotalStockValue
	m.IsComposite = i.IsComposite
	m.BatchQuantity = i.BatchQuantity
	m.BatchUnit = i.BatchUnit.String()
}

// ItemModelFromDomain creates a new persistence model from a domain Item
func ItemModelFromDomain(i *inventory.Item) *ItemModel {
	m := &ItemModel{}
	m.FromDomain(i)
	return m
}

// BusinessItemPriceModel is the persistence model for a business's
// override of a shared item
type BusinessItemPriceModel struct {
	BaseModel
	BusinessID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_business_item_price,priority:1"`
	ItemID             uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_business_item_price,priority:2"`
	Price              decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	TotalStockQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalStockValue    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (BusinessItemPriceModel) TableName() string {
	return "business_item_prices"
}

// ToDomain converts the persistence model to a domain BusinessItemPrice
func (m *BusinessItemPriceModel) ToDomain() *inventory.BusinessItemPrice {
	return &inventory.BusinessItemPrice{
		BaseEntity:         m.BaseModel.ToDomain(),
		BusinessID:         m.BusinessID,
		ItemID:             m.ItemID,
		Price:              m.Price,
		TotalStockQuantity: m.TotalStockQuantity,
		TotalStockValue:    m.TotalStockValue,
	}
}

// BusinessItemPriceModelFromDomain creates a persistence model from a domain BusinessItemPrice
func BusinessItemPriceModelFromDomain(p *inventory.BusinessItemPrice) *BusinessItemPriceModel {
	m := &BusinessItemPriceModel{
		BusinessID:         p.BusinessID,
		ItemID:             p.ItemID,
		Price:              p.Price,
		TotalStockQuantity: p.TotalStockQuantity,
		TotalStockValue:    p.TotalStockValue,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// CompositeComponentModel is one edge of the composite recipe graph
type CompositeComponentModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key"`
	CompositeID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ComponentItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CompositeComponentModel) TableName() string {
	return "composite_components"
}

// ToDomain converts the persistence model to a domain CompositeComponent
func (m *CompositeComponentModel) ToDomain() inventory.CompositeComponent {
	return inventory.CompositeComponent{
		ID:              m.ID,
		CompositeID:     m.CompositeID,
		ComponentItemID: m.ComponentItemID,
		Quantity:        m.Quantity,
		CreatedAt:       m.CreatedAt,
	}
}

// CompositeComponentModelFromDomain creates a persistence model from a domain CompositeComponent
func CompositeComponentModelFromDomain(c inventory.CompositeComponent) CompositeComponentModel {
	return CompositeComponentModel{
		ID:              c.ID,
		CompositeID:     c.CompositeID,
		ComponentItemID: c.ComponentItemID,
		Quantity:        c.Quantity,
		CreatedAt:       c.CreatedAt,
	}
}

// StockRecordModel is the persistence model for the StockRecord aggregate
// root. Uniqueness of (business, branch, item) with a NULL branch is
// enforced by partial indexes in the SQL migrations.
type StockRecordModel struct {
	AggregateModel
	BusinessID        uuid.UUID        `gorm:"type:uuid;not null;index:idx_stock_records_key,priority:1"`
	BranchID          *uuid.UUID       `gorm:"type:uuid;index:idx_stock_records_key,priority:2"`
	ItemID            uuid.UUID        `gorm:"type:uuid;not null;index:idx_stock_records_key,priority:3"`
	Quantity          decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	ReservedQuantity  decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	HeldQuantity      decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	MinQuantity       decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	MaxQuantity       decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"`
	LastCountDate     *time.Time       `gorm:""`
	LastCountQuantity *decimal.Decimal `gorm:"type:decimal(18,4)"`
}

// TableName returns the table name for GORM
func (StockRecordModel) TableName() string {
	return "stock_records"
}

// ToDomain converts the persistence model to a domain StockRecord
func (m *StockRecordModel) ToDomain() *inventory.StockRecord {
	return &inventory.StockRecord{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		BusinessID:        m.BusinessID,
		BranchID:          m.BranchID,
		ItemID:            m.ItemID,
		Quantity:          m.Quantity,
		ReservedQuantity:  m.ReservedQuantity,
		HeldQuantity:      m.HeldQuantity,
		MinQuantity:       m.MinQuantity,
		MaxQuantity:       m.MaxQuantity,
		LastCountDate:     m.LastCountDate,
		LastCountQuantity: m.LastCountQuantity,
	}
}

// FromDomain populates the persistence model from a domain StockRecord
func (m *StockRecordModel) FromDomain(r *inventory.StockRecord) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.BusinessID = r.BusinessID
	m.BranchID = r.BranchID
	m.ItemID = r.ItemID
	m.Quantity = r.Quantity
	m.ReservedQuantity = r.ReservedQuantity
	m.HeldQuantity = r.HeldQuantity
	m.MinQuantity = r.MinQuantity
	m.MaxQuantity = r.MaxQuantity
	m.LastCountDate = r.LastCountDate
	m.LastCountQuantity = r.LastCountQuantity
}

// StockRecordModelFromDomain creates a new persistence model from a domain StockRecord
func StockRecordModelFromDomain(r *inventory.StockRecord) *StockRecordModel {
	m := &StockRecordModel{}
	m.FromDomain(r)
	return m
}

// InventoryMovementModel is the persistence model for the append-only
// movement ledger
type InventoryMovementModel struct {
	BaseModel
	BusinessID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_movements_business_created,priority:1"`
	BranchID          *uuid.UUID      `gorm:"type:uuid;index"`
	ItemID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	StockRecordID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	MovementType      string          `gorm:"type:varchar(30);not null;index"`
	RequestedQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Quantity          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	QuantityBefore    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	QuantityAfter     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitCost          decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	ReferenceType     string          `gorm:"type:varchar(30);index:idx_movements_reference,priority:1"`
	ReferenceID       *uuid.UUID      `gorm:"type:uuid;index:idx_movements_reference,priority:2"`
	Notes             string          `gorm:"type:text"`
	ActorID           *uuid.UUID      `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (InventoryMovementModel) TableName() string {
	return "inventory_movements"
}

// ToDomain converts the persistence model to a domain InventoryMovement
func (m *InventoryMovementModel) ToDomain() *inventory.InventoryMovement {
	return &inventory.InventoryMovement{
		BaseEntity:        shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		BusinessID:        m.BusinessID,
		BranchID:          m.BranchID,
		ItemID:            m.ItemID,
		StockRecordID:     m.StockRecordID,
		MovementType:      inventory.MovementType(m.MovementType),
		RequestedQuantity: m.RequestedQuantity,
		Quantity:          m.Quantity,
		QuantityBefore:    m.QuantityBefore,
		QuantityAfter:     m.QuantityAfter,
		UnitCost:          m.UnitCost,
		ReferenceType:     inventory.ReferenceType(m.ReferenceType),
		ReferenceID:       m.ReferenceID,
		Notes:             m.Notes,
		ActorID:           m.ActorID,
	}
}

// InventoryMovementModelFromDomain creates a persistence model from a domain InventoryMovement
func InventoryMovementModelFromDomain(mv *inventory.InventoryMovement) *InventoryMovementModel {
	m := &InventoryMovementModel{
		BusinessID:        mv.BusinessID,
		BranchID:          mv.BranchID,
		ItemID:            mv.ItemID,
		StockRecordID:     mv.StockRecordID,
		MovementType:      mv.MovementType.String(),
		RequestedQuantity: mv.RequestedQuantity,
		Quantity:          mv.Quantity,
		QuantityBefore:    mv.QuantityBefore,
		QuantityAfter:     mv.QuantityAfter,
		UnitCost:          mv.UnitCost,
		ReferenceType:     string(mv.ReferenceType),
		ReferenceID:       mv.ReferenceID,
		Notes:             mv.Notes,
		ActorID:           mv.ActorID,
	}
	m.FromDomainBaseEntity(mv.BaseEntity)
	return m
}
