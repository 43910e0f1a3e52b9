package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// ItemStatus represents the lifecycle state of an item
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "active"
	ItemStatusInactive ItemStatus = "inactive"
)

// IsValid returns true if the status is a known ItemStatus
func (s ItemStatus) IsValid() bool {
	return s == ItemStatusActive || s == ItemStatusInactive
}

// Item is a stockable ingredient or a composite built from other items.
// A nil BusinessID marks a shared item visible to every business.
type Item struct {
	shared.BaseAggregateRoot
	BusinessID  *uuid.UUID
	Name        string
	Category    string
	Barcode     string
	ServingUnit valueobject.Unit
	StorageUnit valueobject.Unit
	Status      ItemStatus

	// Cost position in serving units
	CostPerUnit        decimal.Decimal
	TotalStockQuantity decimal.Decimal
	TotalStockValue    decimal.Decimal

	IsComposite   bool
	BatchQuantity decimal.Decimal
	BatchUnit     valueobject.Unit
}

// NewItem creates a raw (purchasable) item
func NewItem(businessID *uuid.UUID, name, category string, servingUnit, storageUnit valueobject.Unit, cost decimal.Decimal) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("item name is required")
	}
	if !servingUnit.IsServingUnit() {
		return nil, shared.NewValidationError("%q is not a serving unit", servingUnit)
	}
	if !storageUnit.IsValid() {
		return nil, shared.NewValidationError("unknown storage unit %q", storageUnit)
	}
	if !valueobject.AreCompatible(storageUnit, servingUnit) {
		return nil, shared.NewDomainError(shared.CodeIncompatibleUnits,
			"storage unit "+storageUnit.String()+" cannot hold an item served in "+servingUnit.String())
	}
	if cost.IsNegative() {
		return nil, shared.NewValidationError("cost cannot be negative")
	}

	return &Item{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		BusinessID:         businessID,
		Name:               name,
		Category:           strings.TrimSpace(category),
		ServingUnit:        servingUnit,
		StorageUnit:        storageUnit,
		Status:             ItemStatusActive,
		CostPerUnit:        cost.Round(CostPrecision),
		TotalStockQuantity: decimal.Zero,
		TotalStockValue:    decimal.Zero,
	}, nil
}

// NewCompositeItem creates an item produced in batches from other items
func NewCompositeItem(businessID *uuid.UUID, name, category string, servingUnit, storageUnit valueobject.Unit, batchQty decimal.Decimal, batchUnit valueobject.Unit) (*Item, error) {
	item, err := NewItem(businessID, name, category, servingUnit, storageUnit, decimal.Zero)
	if err != nil {
		return nil, err
	}
	if !batchQty.IsPositive() {
		return nil, shared.NewValidationError("batch quantity must be positive")
	}
	if batchUnit == "" {
		batchUnit = servingUnit
	}
	if !valueobject.AreCompatible(batchUnit, servingUnit) {
		return nil, shared.NewIncompatibleUnitsError(batchUnit.String(), servingUnit.String())
	}
	item.IsComposite = true
	item.BatchQuantity = batchQty
	item.BatchUnit = batchUnit
	return item, nil
}

// IsShared reports whether the item is a system default shared by all businesses
func (i *Item) IsShared() bool {
	return i.BusinessID == nil
}

// VisibleTo reports whether the business may use this item
func (i *Item) VisibleTo(businessID uuid.UUID) bool {
	return i.IsShared() || *i.BusinessID == businessID
}

// IsActive returns true if the item can be counted and ordered
func (i *Item) IsActive() bool {
	return i.Status == ItemStatusActive
}

// StorageFactor returns how many serving units one storage unit holds
func (i *Item) StorageFactor() (decimal.Decimal, error) {
	return valueobject.ConversionFactor(i.StorageUnit, i.ServingUnit)
}

// BatchQuantityInServingUnits returns the batch size of a composite in its serving unit
func (i *Item) BatchQuantityInServingUnits() (decimal.Decimal, error) {
	if !i.IsComposite {
		return decimal.Zero, shared.NewValidationError("item %s is not composite", i.Name)
	}
	return valueobject.ConvertUnits(i.BatchQuantity, i.BatchUnit, i.ServingUnit)
}

// ApplyReceipt folds a receipt into the item's cost position and returns
// the previous cost. existingQty is the on-hand stock before the receipt;
// all quantities are in serving units.
func (i *Item) ApplyReceipt(existingQty, qty, cost decimal.Decimal) decimal.Decimal {
	prev := i.CostPerUnit
	i.CostPerUnit, i.TotalStockQuantity, i.TotalStockValue = applyReceipt(
		existingQty, i.CostPerUnit, qty, cost)
	i.Touch()
	return prev
}

// SetStockQuantity replaces the on-hand cache and revalues it at the current cost
func (i *Item) SetStockQuantity(qty decimal.Decimal) {
	i.TotalStockQuantity = clampZero(qty)
	i.TotalStockValue = i.TotalStockQuantity.Mul(i.CostPerUnit)
}

// SetCost replaces the cost per serving unit and revalues the stock cache
func (i *Item) SetCost(cost decimal.Decimal) {
	i.CostPerUnit = cost.Round(CostPrecision)
	i.TotalStockValue = i.TotalStockQuantity.Mul(i.CostPerUnit)
	i.Touch()
}

// Deactivate hides the item from counts and new recipes
func (i *Item) Deactivate() {
	i.Status = ItemStatusInactive
	i.Touch()
}

// BusinessItemPrice overrides a shared item's cost for one business and
// holds that business's weighted-average position for the item
type BusinessItemPrice struct {
	shared.BaseEntity
	BusinessID         uuid.UUID
	ItemID             uuid.UUID
	Price              decimal.Decimal // per serving unit
	TotalStockQuantity decimal.Decimal
	TotalStockValue    decimal.Decimal
}

// NewBusinessItemPrice creates an override for a shared item
func NewBusinessItemPrice(businessID uuid.UUID, item *Item, price decimal.Decimal) (*BusinessItemPrice, error) {
	if businessID == uuid.Nil {
		return nil, shared.NewValidationError("business is required")
	}
	if !item.IsShared() {
		return nil, shared.NewValidationError("price overrides apply only to shared items")
	}
	if price.IsNegative() {
		return nil, shared.NewValidationError("price cannot be negative")
	}
	return &BusinessItemPrice{
		BaseEntity:         shared.NewBaseEntity(),
		BusinessID:         businessID,
		ItemID:             item.ID,
		Price:              price.Round(CostPrecision),
		TotalStockQuantity: decimal.Zero,
		TotalStockValue:    decimal.Zero,
	}, nil
}

// ApplyReceipt folds a receipt into the override position and returns the
// previous price. existingQty is the business's on-hand stock before the receipt.
func (p *BusinessItemPrice) ApplyReceipt(existingQty, qty, cost decimal.Decimal) decimal.Decimal {
	prev := p.Price
	p.Price, p.TotalStockQuantity, p.TotalStockValue = applyReceipt(
		existingQty, p.Price, qty, cost)
	p.Touch()
	return prev
}

// SetStockQuantity replaces the on-hand cache and revalues it at the override price
func (p *BusinessItemPrice) SetStockQuantity(qty decimal.Decimal) {
	p.TotalStockQuantity = clampZero(qty)
	p.TotalStockValue = p.TotalStockQuantity.Mul(p.Price)
}

// SetPrice replaces the override price
func (p *BusinessItemPrice) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewValidationError("price cannot be negative")
	}
	p.Price = price.Round(CostPrecision)
	p.TotalStockValue = p.TotalStockQuantity.Mul(p.Price)
	p.Touch()
	return nil
}

func applyReceipt(existingQty, existingCost, qty, cost decimal.Decimal) (newCost, newQty, newValue decimal.Decimal) {
	existingQty = clampZero(existingQty)
	qty = clampZero(qty)
	newCost = WeightedAverageCost(existingQty, existingCost, qty, cost)
	newQty = existingQty.Add(qty)
	newValue = newQty.Mul(newCost)
	return newCost, newQty, newValue
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// CompositeComponent is one edge of the composite recipe graph
type CompositeComponent struct {
	ID              uuid.UUID
	CompositeID     uuid.UUID
	ComponentItemID uuid.UUID
	Quantity        decimal.Decimal // serving units of the component per batch
	CreatedAt       time.Time
}

// NewCompositeComponent links a raw item into a composite recipe
func NewCompositeComponent(composite, component *Item, qty decimal.Decimal) (*CompositeComponent, error) {
	if !composite.IsComposite {
		return nil, shared.NewValidationError("item %s is not composite", composite.Name)
	}
	if component.IsComposite {
		return nil, shared.NewValidationError("composite %s cannot contain composite %s", composite.Name, component.Name)
	}
	if component.ID == composite.ID {
		return nil, shared.NewValidationError("item cannot contain itself")
	}
	if !qty.IsPositive() {
		return nil, shared.NewValidationError("component quantity must be positive")
	}
	return &CompositeComponent{
		ID:              uuid.New(),
		CompositeID:     composite.ID,
		ComponentItemID: component.ID,
		Quantity:        qty,
		CreatedAt:       time.Now(),
	}, nil
}
