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

// CostCascadeHandler pushes an item's new cost to everything built from it:
// the composites that contain it and the menu products whose recipes use
// the item or one of those composites. A failing dependent is logged and
// skipped so the rest still update.
type CostCascadeHandler struct {
	costs      *CostLedger
	items      inventory.ItemRepository
	components inventory.CompositeComponentRepository
	recipes    inventory.RecipeRepository
	logger     *zap.Logger
}

// NewCostCascadeHandler creates a new CostCascadeHandler
func NewCostCascadeHandler(
	costs *CostLedger,
	items inventory.ItemRepository,
	components inventory.CompositeComponentRepository,
	recipes inventory.RecipeRepository,
	logger *zap.Logger,
) *CostCascadeHandler {
	return &CostCascadeHandler{
		costs:      costs,
		items:      items,
		components: components,
		recipes:    recipes,
		logger:     logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *CostCascadeHandler) EventTypes() []string {
	return []string{inventory.EventTypeItemCostChanged}
}

// CascadeStats counts what one cascade touched
type CascadeStats struct {
	Composites       int
	CompositesFailed int
	Products         int
	ProductsFailed   int
}

// Handle processes an ItemCostChanged event
func (h *CostCascadeHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	e, ok := event.(*inventory.ItemCostChangedEvent)
	if !ok {
		h.logger.Warn("Unexpected event type for cost cascade",
			zap.String("event_type", event.EventType()),
		)
		return nil
	}
	// Composites never contain composites, so a cascaded change only
	// reaches products, which the originating cascade already covered.
	if e.Source == inventory.CostSourceCascade {
		return nil
	}

	stats, err := h.Cascade(ctx, e.BusinessID(), e.ItemID)
	if err != nil {
		return err
	}
	h.logger.Info("Cost cascade completed",
		zap.String("business_id", e.BusinessID().String()),
		zap.String("item_id", e.ItemID.String()),
		zap.String("new_cost", e.NewCost.String()),
		zap.Int("composites", stats.Composites),
		zap.Int("composites_failed", stats.CompositesFailed),
		zap.Int("products", stats.Products),
		zap.Int("products_failed", stats.ProductsFailed),
	)
	return nil
}

// Cascade recomputes the dependents of itemID for one business
func (h *CostCascadeHandler) Cascade(ctx context.Context, businessID, itemID uuid.UUID) (*CascadeStats, error) {
	stats := &CascadeStats{}

	compositeIDs, err := h.components.FindCompositeIDsUsing(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("find composites using %s: %w", itemID, err)
	}

	affected := []uuid.UUID{itemID}
	for _, compositeID := range compositeIDs {
		visible, err := h.compositeVisible(ctx, businessID, compositeID)
		if err != nil {
			h.logger.Error("Failed to load composite",
				zap.String("composite_id", compositeID.String()),
				zap.Error(err),
			)
			stats.CompositesFailed++
			continue
		}
		if !visible {
			continue
		}
		if _, err := h.costs.RecomputeComposite(ctx, businessID, compositeID); err != nil {
			h.logger.Error("Failed to recompute composite cost",
				zap.String("composite_id", compositeID.String()),
				zap.String("component_id", itemID.String()),
				zap.Error(err),
			)
			stats.CompositesFailed++
			continue
		}
		stats.Composites++
		affected = append(affected, compositeID)
	}

	products, err := h.recipes.FindProductsUsingItems(ctx, businessID, affected)
	if err != nil {
		return nil, fmt.Errorf("find products using %s: %w", itemID, err)
	}
	for i := range products {
		if err := h.recomputeProduct(ctx, businessID, &products[i]); err != nil {
			h.logger.Error("Failed to recompute product cost",
				zap.String("product_id", products[i].ID.String()),
				zap.String("product_name", products[i].Name),
				zap.Error(err),
			)
			stats.ProductsFailed++
			continue
		}
		stats.Products++
	}
	return stats, nil
}

// compositeVisible reports whether the business can see the composite.
// Component links are not scoped by business.
func (h *CostCascadeHandler) compositeVisible(ctx context.Context, businessID, compositeID uuid.UUID) (bool, error) {
	if _, err := h.items.FindVisible(ctx, businessID, compositeID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (h *CostCascadeHandler) recomputeProduct(ctx context.Context, businessID uuid.UUID, product *inventory.Product) error {
	cost, err := h.recipeCost(ctx, businessID, product.Ingredients)
	if err != nil {
		return err
	}
	product.Cost = cost
	for i := range product.Variants {
		cost, err := h.recipeCost(ctx, businessID, product.Variants[i].Ingredients)
		if err != nil {
			return fmt.Errorf("variant %s: %w", product.Variants[i].Name, err)
		}
		product.Variants[i].Cost = cost
	}
	return h.recipes.SaveCosts(ctx, product)
}

// recipeCost prices ingredient quantities, which are in storage units,
// against costs per serving unit
func (h *CostCascadeHandler) recipeCost(ctx context.Context, businessID uuid.UUID, ingredients []inventory.RecipeIngredient) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, ing := range ingredients {
		item, err := h.items.FindVisible(ctx, businessID, ing.ItemID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("ingredient %s: %w", ing.Name, err)
		}
		factor, err := item.StorageFactor()
		if err != nil {
			return decimal.Zero, err
		}
		unitCost, err := h.costs.CurrentCost(ctx, businessID, item.ID)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(ing.Quantity.Mul(factor).Mul(unitCost))
	}
	return total.Round(inventory.CostPrecision), nil
}

var _ shared.EventHandler = (*CostCascadeHandler)(nil)
