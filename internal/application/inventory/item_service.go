package inventory

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/restopos/backend/internal/domain/inventory"
	"github.com/restopos/backend/internal/domain/shared"
	"github.com/restopos/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateItemInput holds the fields of a new item
type CreateItemInput struct {
	BusinessID  *uuid.UUID // nil creates a shared item
	Name        string
	Category    string
	Barcode     string
	ServingUnit string
	StorageUnit string
	CostPerUnit decimal.Decimal

	// Composite items only
	IsComposite   bool
	BatchQuantity decimal.Decimal
	BatchUnit     string
}

// ComponentInput is one component of a composite
type ComponentInput struct {
	ItemID   uuid.UUID
	Quantity decimal.Decimal // serving units of the component per batch
}

// ItemService manages the item catalog and per-business price overrides
type ItemService struct {
	items      inventory.ItemRepository
	prices     inventory.BusinessItemPriceRepository
	components inventory.CompositeComponentRepository
	costs      *CostLedger
	publisher  shared.EventPublisher
	logger     *zap.Logger
}

// NewItemService creates a new ItemService
func NewItemService(
	items inventory.ItemRepository,
	prices inventory.BusinessItemPriceRepository,
	components inventory.CompositeComponentRepository,
	costs *CostLedger,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		items:      items,
		prices:     prices,
		components: components,
		costs:      costs,
		logger:     logger,
	}
}

// SetEventPublisher sets the event publisher for price override events
func (s *ItemService) SetEventPublisher(publisher shared.EventPublisher) {
	s.publisher = publisher
}

// Create validates and stores a new item
func (s *ItemService) Create(ctx context.Context, in CreateItemInput) (*inventory.Item, error) {
	serving, err := valueobject.ParseUnit(in.ServingUnit)
	if err != nil {
		return nil, err
	}
	storage, err := valueobject.ParseUnit(in.StorageUnit)
	if err != nil {
		return nil, err
	}

	var item *inventory.Item
	if in.IsComposite {
		batchUnit := serving
		if strings.TrimSpace(in.BatchUnit) != "" {
			if batchUnit, err = valueobject.ParseUnit(in.BatchUnit); err != nil {
				return nil, err
			}
		}
		item, err = inventory.NewCompositeItem(in.BusinessID, in.Name, in.Category, serving, storage, in.BatchQuantity, batchUnit)
	} else {
		item, err = inventory.NewItem(in.BusinessID, in.Name, in.Category, serving, storage, in.CostPerUnit)
	}
	if err != nil {
		return nil, err
	}

	exists, err := s.items.ExistsByName(ctx, in.BusinessID, item.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewConflictError("item %q already exists", item.Name)
	}
	if barcode := strings.TrimSpace(in.Barcode); barcode != "" {
		exists, err := s.items.ExistsByBarcode(ctx, in.BusinessID, barcode)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewConflictError("barcode %q is already used", barcode)
		}
		item.Barcode = barcode
	}

	if err := s.items.Save(ctx, item); err != nil {
		return nil, err
	}
	s.logger.Info("Item created",
		zap.String("item_id", item.ID.String()),
		zap.String("name", item.Name),
		zap.Bool("shared", item.IsShared()),
		zap.Bool("composite", item.IsComposite),
	)
	return item, nil
}

// Get returns an item visible to the business
func (s *ItemService) Get(ctx context.Context, businessID, itemID uuid.UUID) (*inventory.Item, error) {
	return s.items.FindVisible(ctx, businessID, itemID)
}

// ListActive lists the business's own active items plus shared items
func (s *ItemService) ListActive(ctx context.Context, businessID uuid.UUID) ([]inventory.Item, error) {
	return s.items.ListActive(ctx, businessID)
}

// Components lists the components of a composite
func (s *ItemService) Components(ctx context.Context, businessID, compositeID uuid.UUID) ([]inventory.CompositeComponent, error) {
	if _, err := s.items.FindVisible(ctx, businessID, compositeID); err != nil {
		return nil, err
	}
	return s.components.FindByComposite(ctx, compositeID)
}

// ReplaceComponents sets the recipe of a composite and recomputes its cost
func (s *ItemService) ReplaceComponents(ctx context.Context, businessID, compositeID uuid.UUID, inputs []ComponentInput) ([]inventory.CompositeComponent, error) {
	composite, err := s.items.FindVisible(ctx, businessID, compositeID)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, shared.NewValidationError("composite needs at least one component")
	}

	seen := make(map[uuid.UUID]struct{}, len(inputs))
	comps := make([]inventory.CompositeComponent, 0, len(inputs))
	for _, in := range inputs {
		if _, dup := seen[in.ItemID]; dup {
			return nil, shared.NewValidationError("component %s listed twice", in.ItemID)
		}
		seen[in.ItemID] = struct{}{}

		component, err := s.items.FindVisible(ctx, businessID, in.ItemID)
		if err != nil {
			return nil, err
		}
		comp, err := inventory.NewCompositeComponent(composite, component, in.Quantity)
		if err != nil {
			return nil, err
		}
		comps = append(comps, *comp)
	}

	if err := s.components.ReplaceForComposite(ctx, compositeID, comps); err != nil {
		return nil, err
	}
	if _, err := s.costs.RecomputeComposite(ctx, businessID, compositeID); err != nil {
		s.logger.Warn("Failed to recompute composite cost",
			zap.String("composite_id", compositeID.String()),
			zap.Error(err),
		)
	}
	return comps, nil
}

// SetBusinessPrice overrides a shared item's cost for one business
func (s *ItemService) SetBusinessPrice(ctx context.Context, businessID, itemID uuid.UUID, price decimal.Decimal) (*inventory.BusinessItemPrice, error) {
	item, err := s.items.FindVisible(ctx, businessID, itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsShared() {
		return nil, shared.NewValidationError("price overrides apply only to shared items")
	}

	override, err := s.prices.Find(ctx, businessID, itemID)
	previous := item.CostPerUnit
	switch {
	case err == nil:
		previous = override.Price
		if err := override.SetPrice(price); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		if override, err = inventory.NewBusinessItemPrice(businessID, item, price); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.prices.Save(ctx, override); err != nil {
		return nil, err
	}
	if !previous.Equal(override.Price) && s.publisher != nil {
		_ = s.publisher.Publish(ctx, inventory.NewItemCostChangedEvent(businessID, itemID, previous, override.Price, inventory.CostSourceOverride))
	}
	return override, nil
}

// EffectiveCost returns the business's cost per serving unit of an item
func (s *ItemService) EffectiveCost(ctx context.Context, businessID, itemID uuid.UUID) (decimal.Decimal, error) {
	return s.costs.CurrentCost(ctx, businessID, itemID)
}
