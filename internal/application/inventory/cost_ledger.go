package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CostUpdate is the outcome of a receipt or a recomputation. Costs are per
// serving unit, quantities in serving units.
type CostUpdate struct {
	BusinessID         uuid.UUID       `json:"business_id"`
	ItemID             uuid.UUID       `json:"item_id"`
	PreviousCost       decimal.Decimal `json:"previous_cost"`
	NewCost            decimal.Decimal `json:"new_cost"`
	ReceivedQuantity   decimal.Decimal `json:"received_quantity"`
	ReceivedUnitCost   decimal.Decimal `json:"received_unit_cost"`
	TotalStockQuantity decimal.Decimal `json:"total_stock_quantity"`
	TotalStockValue    decimal.Decimal `json:"total_stock_value"`
}

// Changed reports whether the cost per serving unit moved
func (u *CostUpdate) Changed() bool {
	return !u.PreviousCost.Equal(u.NewCost)
}

// costPosition is the row that carries a business's cost for an item: the
// item itself when the business owns it, else the business's price override
type costPosition struct {
	item  *inventory.Item
	price *inventory.BusinessItemPrice
}

func (p *costPosition) cost() decimal.Decimal {
	if p.price != nil {
		return p.price.Price
	}
	return p.item.CostPerUnit
}

func (p *costPosition) quantity() decimal.Decimal {
	if p.price != nil {
		return p.price.TotalStockQuantity
	}
	return p.item.TotalStockQuantity
}

func (p *costPosition) value() decimal.Decimal {
	if p.price != nil {
		return p.price.TotalStockValue
	}
	return p.item.TotalStockValue
}

func (p *costPosition) applyReceipt(existingQty, qty, cost decimal.Decimal) decimal.Decimal {
	if p.price != nil {
		return p.price.ApplyReceipt(existingQty, qty, cost)
	}
	return p.item.ApplyReceipt(existingQty, qty, cost)
}

func (p *costPosition) setStockQuantity(qty decimal.Decimal) {
	if p.price != nil {
		p.price.SetStockQuantity(qty)
		return
	}
	p.item.SetStockQuantity(qty)
}

func (p *costPosition) setCost(cost decimal.Decimal) error {
	if p.price != nil {
		return p.price.SetPrice(cost)
	}
	p.item.SetCost(cost)
	return nil
}

func (p *costPosition) save(ctx context.Context, items inventory.ItemRepository, prices inventory.BusinessItemPriceRepository) error {
	if p.price != nil {
		return prices.Save(ctx, p.price)
	}
	return items.Save(ctx, p.item)
}

// loadPosition resolves the cost position of item for business. When
// create is set, a missing override of a shared item is started from the
// item's default cost.
func loadPosition(ctx context.Context, prices inventory.BusinessItemPriceRepository, businessID uuid.UUID, item *inventory.Item, create bool) (*costPosition, error) {
	if !item.IsShared() {
		return &costPosition{item: item}, nil
	}
	price, err := prices.Find(ctx, businessID, item.ID)
	switch {
	case err == nil:
		return &costPosition{item: item, price: price}, nil
	case !errors.Is(err, shared.ErrNotFound):
		return nil, fmt.Errorf("load price override: %w", err)
	case !create:
		return &costPosition{item: item}, nil
	}
	price, err = inventory.NewBusinessItemPrice(businessID, item, item.CostPerUnit)
	if err != nil {
		return nil, err
	}
	return &costPosition{item: item, price: price}, nil
}

// onHand sums the business's stock rows of item, in serving units
func onHand(ctx context.Context, stock inventory.StockRecordRepository, businessID uuid.UUID, item *inventory.Item) (decimal.Decimal, error) {
	factor, err := item.StorageFactor()
	if err != nil {
		return decimal.Zero, err
	}
	rows, err := stock.ListByItem(ctx, businessID, item.ID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("load stock of %s: %w", item.Name, err)
	}
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Quantity)
	}
	return total.Mul(factor), nil
}

// CostLedger maintains weighted average cost per serving unit
type CostLedger struct {
	scope      TransactionScope
	items      inventory.ItemRepository
	prices     inventory.BusinessItemPriceRepository
	components inventory.CompositeComponentRepository
	publisher  shared.EventPublisher
	logger     *zap.Logger
}

// NewCostLedger creates a new CostLedger
func NewCostLedger(
	scope TransactionScope,
	items inventory.ItemRepository,
	prices inventory.BusinessItemPriceRepository,
	components inventory.CompositeComponentRepository,
	logger *zap.Logger,
) *CostLedger {
	return &CostLedger{
		scope:      scope,
		items:      items,
		prices:     prices,
		components: components,
		logger:     logger,
	}
}

// SetEventPublisher sets the event publisher for ItemCostChanged events
func (c *CostLedger) SetEventPublisher(publisher shared.EventPublisher) {
	c.publisher = publisher
}

// Receive folds a purchase of receivedQty storage units costing totalCost
// into the business's cost position for the item. The receipt's stock must
// already be booked on the stock ledger: the business's on-hand stock minus
// receivedQty is the existing quantity it blends with.
func (c *CostLedger) Receive(ctx context.Context, businessID, itemID uuid.UUID, receivedQty, totalCost decimal.Decimal) (*CostUpdate, error) {
	if totalCost.IsNegative() {
		return nil, shared.NewValidationError("total cost cannot be negative")
	}

	var update *CostUpdate
	err := c.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		item, err := repos.ItemRepo().FindVisibleForUpdate(ctx, businessID, itemID)
		if err != nil {
			return err
		}
		factor, err := item.StorageFactor()
		if err != nil {
			return err
		}
		stocked, err := onHand(ctx, repos.StockRepo(), businessID, item)
		if err != nil {
			return err
		}

		perStorage := decimal.Zero
		if receivedQty.IsPositive() {
			perStorage = totalCost.Div(receivedQty)
		}
		receivedCost := perStorage.Div(factor)
		servingQty := receivedQty.Mul(factor)

		pos, err := loadPosition(ctx, repos.PriceRepo(), businessID, item, true)
		if err != nil {
			return err
		}
		prev := pos.cost()
		if servingQty.IsPositive() {
			pos.applyReceipt(stocked.Sub(servingQty), servingQty, receivedCost)
		} else {
			pos.setStockQuantity(stocked)
		}
		if err := pos.save(ctx, repos.ItemRepo(), repos.PriceRepo()); err != nil {
			return fmt.Errorf("save cost position: %w", err)
		}

		update = &CostUpdate{
			BusinessID:         businessID,
			ItemID:             item.ID,
			PreviousCost:       prev,
			NewCost:            pos.cost(),
			ReceivedQuantity:   servingQty,
			ReceivedUnitCost:   receivedCost,
			TotalStockQuantity: pos.quantity(),
			TotalStockValue:    pos.value(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Cost receipt applied",
		zap.String("business_id", businessID.String()),
		zap.String("item_id", itemID.String()),
		zap.String("previous_cost", update.PreviousCost.String()),
		zap.String("new_cost", update.NewCost.String()),
	)
	if update.Changed() {
		c.publish(ctx, inventory.NewItemCostChangedEvent(businessID, itemID, update.PreviousCost, update.NewCost, inventory.CostSourceReceipt))
	}
	return update, nil
}

// CurrentCost returns the effective cost per serving unit of an item for a
// business: its price override when one exists, else the item default
func (c *CostLedger) CurrentCost(ctx context.Context, businessID, itemID uuid.UUID) (decimal.Decimal, error) {
	item, err := c.items.FindVisible(ctx, businessID, itemID)
	if err != nil {
		return decimal.Zero, err
	}
	pos, err := loadPosition(ctx, c.prices, businessID, item, false)
	if err != nil {
		return decimal.Zero, err
	}
	return pos.cost(), nil
}

// StockValue returns the business's cost position for an item, valuing its
// current on-hand stock at the effective cost
func (c *CostLedger) StockValue(ctx context.Context, businessID, itemID uuid.UUID) (*CostUpdate, error) {
	var update *CostUpdate
	err := c.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		item, err := repos.ItemRepo().FindVisible(ctx, businessID, itemID)
		if err != nil {
			return err
		}
		pos, err := loadPosition(ctx, repos.PriceRepo(), businessID, item, false)
		if err != nil {
			return err
		}
		stocked, err := onHand(ctx, repos.StockRepo(), businessID, item)
		if err != nil {
			return err
		}
		update = &CostUpdate{
			BusinessID:         businessID,
			ItemID:             item.ID,
			PreviousCost:       pos.cost(),
			NewCost:            pos.cost(),
			TotalStockQuantity: stocked,
			TotalStockValue:    stocked.Mul(pos.cost()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return update, nil
}

// CompositeUnitCost computes the cost per serving unit of a composite from
// the current effective cost of its components
func (c *CostLedger) CompositeUnitCost(ctx context.Context, businessID, compositeID uuid.UUID) (decimal.Decimal, error) {
	composite, err := c.items.FindVisible(ctx, businessID, compositeID)
	if err != nil {
		return decimal.Zero, err
	}
	return c.compositeUnitCost(ctx, businessID, composite)
}

func (c *CostLedger) compositeUnitCost(ctx context.Context, businessID uuid.UUID, composite *inventory.Item) (decimal.Decimal, error) {
	batch, err := composite.BatchQuantityInServingUnits()
	if err != nil {
		return decimal.Zero, err
	}
	comps, err := c.components.FindByComposite(ctx, composite.ID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("load components of %s: %w", composite.Name, err)
	}

	costs := make([]inventory.ComponentCost, 0, len(comps))
	for _, comp := range comps {
		unitCost, err := c.CurrentCost(ctx, businessID, comp.ComponentItemID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("cost of component %s: %w", comp.ComponentItemID, err)
		}
		costs = append(costs, inventory.ComponentCost{Quantity: comp.Quantity, UnitCost: unitCost})
	}
	return inventory.CompositeUnitCost(costs, batch), nil
}

// RecomputeComposite stores a fresh composite unit cost on the business's
// cost position for the composite
func (c *CostLedger) RecomputeComposite(ctx context.Context, businessID, compositeID uuid.UUID) (*CostUpdate, error) {
	composite, err := c.items.FindVisible(ctx, businessID, compositeID)
	if err != nil {
		return nil, err
	}
	unitCost, err := c.compositeUnitCost(ctx, businessID, composite)
	if err != nil {
		return nil, err
	}

	var update *CostUpdate
	err = c.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		locked, err := repos.ItemRepo().FindVisibleForUpdate(ctx, businessID, compositeID)
		if err != nil {
			return err
		}
		stocked, err := onHand(ctx, repos.StockRepo(), businessID, locked)
		if err != nil {
			return err
		}
		pos, err := loadPosition(ctx, repos.PriceRepo(), businessID, locked, true)
		if err != nil {
			return err
		}
		prev := pos.cost()
		if err := pos.setCost(unitCost); err != nil {
			return err
		}
		pos.setStockQuantity(stocked)
		if err := pos.save(ctx, repos.ItemRepo(), repos.PriceRepo()); err != nil {
			return fmt.Errorf("save composite cost: %w", err)
		}
		update = &CostUpdate{
			BusinessID:         businessID,
			ItemID:             locked.ID,
			PreviousCost:       prev,
			NewCost:            pos.cost(),
			TotalStockQuantity: pos.quantity(),
			TotalStockValue:    pos.value(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if update.Changed() {
		c.publish(ctx, inventory.NewItemCostChangedEvent(businessID, composite.ID, update.PreviousCost, update.NewCost, inventory.CostSourceCascade))
	}
	return update, nil
}

func (c *CostLedger) publish(ctx context.Context, events ...shared.DomainEvent) {
	if c.publisher == nil {
		return
	}
	// Errors are logged by the event bus, not propagated
	_ = c.publisher.Publish(ctx, events...)
}
